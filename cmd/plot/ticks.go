package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

var (
	heading = color.New(color.FgHiCyan).SprintFunc()
	major   = color.New(color.FgYellow, color.Bold).SprintFunc()
	minor   = color.New(color.FgWhite).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

type ticksOptions struct {
	format    string
	width     int
	precision int
	noColor   bool
}

func newTicksCmd() *cobra.Command {
	o := &ticksOptions{}
	cmd := &cobra.Command{
		Use:   "ticks <origin> <length>",
		Short: "Plan major and minor tick marks for an interval",
		Example: `
plot ticks 0 12
plot ticks -- -10 20                  # negative origins follow --
plot ticks 0 1 --format f --precision 2
`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			origin, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("origin: %w", err)
			}
			length, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("length: %w", err)
			}
			if len(o.format) != 1 {
				return fmt.Errorf("--format must be a single character, got %q", o.format)
			}
			if o.noColor {
				color.NoColor = true
			}
			f := plot.LabelFormat{Style: o.format[0], Width: o.width, Precision: o.precision}
			writeTicks(c.OutOrStdout(), origin, length, plot.PlanTicks(origin, length), f)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&o.format, "format", "f", "g", "label style: g, G, f, e, E or t (clock time)")
	fl.IntVarP(&o.width, "width", "w", 0, "label field width")
	fl.IntVarP(&o.precision, "precision", "p", -1, "label precision (-1 for the default)")
	fl.BoolVar(&o.noColor, "no-color", false, "disable coloured output")
	return cmd
}

func writeTicks(w io.Writer, origin, length float64, ts plot.TickSet, f plot.LabelFormat) {
	fmt.Fprintf(w, "%s [%g, %g]\n", heading("interval"), origin, origin+length)
	if ts.Empty() {
		fmt.Fprintf(w, "%s    %s\n", heading("major"), faint("(none)"))
		return
	}
	fmt.Fprintf(w, "%s    %s\n", heading("major"), major(formatTicks(ts.Major, f)))
	fmt.Fprintf(w, "%s    %s\n", heading("minor"), minor(formatTicks(ts.Minor, f)))
	if len(ts.Major) > 1 {
		fmt.Fprintf(w, "%s     %s\n", heading("step"), f.Format(ts.Major[1]-ts.Major[0]))
	}
}

func formatTicks(vs []float64, f plot.LabelFormat) string {
	if len(vs) == 0 {
		return "-"
	}
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = f.Format(v)
	}
	return strings.Join(labels, " ")
}
