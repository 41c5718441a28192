package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
	"github.com/ha1tch/plot-toolkit/pkg/plotfile"
)

var (
	good = color.New(color.FgGreen).SprintFunc()
	bad  = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show plot document information",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := plotfile.Load(args[0])
			if err != nil {
				return err
			}
			p, err := doc.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			writeInfo(c.OutOrStdout(), doc, p)
			return nil
		},
	}
}

func writeInfo(w io.Writer, doc *plotfile.Document, p *plot.Plot) {
	width, height := p.Size()
	if doc.Title != "" {
		fmt.Fprintf(w, "%s %s\n", heading("Title:"), doc.Title)
	}
	fmt.Fprintf(w, "%s %dx%d\n", heading("Size:"), width, height)
	pr := p.PixRect()
	fmt.Fprintf(w, "%s (%d,%d)-(%d,%d)\n", heading("Plot area:"), pr.Min.X, pr.Min.Y, pr.Max.X, pr.Max.Y)

	limits := "explicit"
	if doc.Limits == nil {
		limits = "from data"
	}
	d := p.DataRect()
	fmt.Fprintf(w, "%s x [%g, %g], y [%g, %g] (%s)\n", heading("Limits:"), d.X, d.Right(), d.Y, d.Bottom(), limits)
	if p.HasSecondaryLimits() {
		s := p.SecondaryDataRect()
		fmt.Fprintf(w, "%s x [%g, %g], y [%g, %g]\n", heading("Secondary:"), s.X, s.Right(), s.Y, s.Bottom())
	}

	fmt.Fprintln(w, heading("Axes:"))
	for _, id := range []plot.AxisID{plot.LeftAxis, plot.BottomAxis, plot.RightAxis, plot.TopAxis} {
		a := p.Axis(id)
		if !a.Visible() {
			fmt.Fprintf(w, "  %-6s %s\n", id, faint("hidden"))
			continue
		}
		labels := make([]string, len(a.MajorTickMarks()))
		for i, v := range a.MajorTickMarks() {
			labels[i] = strings.TrimSpace(a.TickLabel(v))
		}
		title := ""
		if a.Label() != "" {
			title = fmt.Sprintf(" %q", a.Label())
		}
		fmt.Fprintf(w, "  %-6s%s ticks %s (%d minor)\n", id, title, major(strings.Join(labels, " ")), len(a.MinorTickMarks()))
	}

	fmt.Fprintf(w, "%s %d\n", heading("Series:"), len(doc.Series))
	for i, o := range p.Objects() {
		name := doc.Series[i].Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		labelled := 0
		for _, pt := range o.Points() {
			if pt.Label != "" {
				labelled++
			}
		}
		fmt.Fprintf(w, "  %-12s %-20s %3d points, %d labelled, colour %s\n",
			name, o.PlotTypes(), o.Len(), labelled, plotfile.FormatColor(o.Pen().Color))
	}
}
