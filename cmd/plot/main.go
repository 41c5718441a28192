// Command plot is a CLI tool for planning axis ticks and rendering plots.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	verbose  bool
	logLevel string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "plot <command> [options]",
		Short: "Plot toolkit: tick planning and plot rendering",
		Example: `
plot ticks 0 12                       # plan ticks for [0, 12]
plot render sine.toml -o sine.png     # render a plot document
plot render sine.yaml -o sine.svg     # engine chosen from the extension
plot demo 3 -o bars.png               # render a built-in example
plot demo 6 --export toml             # print an example as a document
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return o.setupLogging(c.ErrOrStderr())
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output")
	pf.StringVar(&o.logLevel, "log-level", "warning", "log level: "+levelNames())

	cmd.AddCommand(
		newTicksCmd(),
		newRenderCmd(),
		newInfoCmd(),
		newValidateCmd(),
		newDemoCmd(),
	)
	return cmd
}

// setupLogging builds a text logger on w and installs it as the plot
// package logger.
func (o *rootOptions) setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if o.verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	plot.SetLogger(logger)
	return nil
}

func levelNames() string {
	names := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}
