// Command plotview is an interactive terminal viewer for plot documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
	"github.com/ha1tch/plot-toolkit/pkg/plotfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	demo    int
	logFile string
	level   string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "plotview [file]",
		Short: "View a plot document, or a built-in example, in the terminal",
		Example: `
plotview                 # start with the first example
plotview --demo 4        # start with example 4
plotview sine.toml       # view a plot document
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			closeLog, err := o.setupLogging()
			if err != nil {
				return err
			}
			defer closeLog()

			// Load before taking over the terminal so errors stay readable.
			var doc *plotfile.Document
			title := ""
			if len(args) == 1 {
				if doc, err = plotfile.Load(args[0]); err != nil {
					return err
				}
				title = doc.Title
				if title == "" {
					title = args[0]
				}
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()
			screen.EnableMouse()
			screen.Clear()

			v := newViewer(screen)
			if doc != nil {
				err = v.load(doc, title)
			} else {
				err = v.loadDemo(o.demo)
			}
			if err != nil {
				return err
			}
			v.run()
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&o.demo, "demo", "d", 1, fmt.Sprintf("example to show when no file is given (1-%d)", plotfile.NumDemos))
	fl.StringVar(&o.logFile, "log-file", "", "write logs to this file (the terminal is in use)")
	fl.StringVar(&o.level, "log-level", "info", "log level")
	return cmd
}

// setupLogging routes plot package logs to the log file, if any.
func (o *options) setupLogging() (func(), error) {
	if o.logFile == "" {
		plot.SetLogger(nil)
		return func() {}, nil
	}
	level, err := logrus.ParseLevel(o.level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	plot.SetLogger(newFileLogger(f, level))
	return func() { f.Close() }, nil
}

func newFileLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return logger
}
