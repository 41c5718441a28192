package plot

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.FieldLogger]

func init() {
	SetLogger(nil)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by the plot package.
// By default nothing is logged; pass nil to restore that.
//
// Levels used:
//   - Warn: input corrected on the caller's behalf (equal limits widened)
//   - Debug: skipped paint passes, mask re-gridding
//   - Trace: individual label placement decisions
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	loggerPtr.Store(&l)
}

// Logger returns the current package logger.
func Logger() logrus.FieldLogger {
	return *loggerPtr.Load()
}
