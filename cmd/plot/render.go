package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
	"github.com/ha1tch/plot-toolkit/pkg/plotfile"
)

// engine selects the Canvas implementation used for output.
type engine string

const (
	engineAuto   engine = ""
	engineRaster engine = "raster"
	engineGG     engine = "gg"
	engineSVG    engine = "svg"
)

var _ pflag.Value = (*engine)(nil)

func (e *engine) String() string { return string(*e) }

func (e *engine) Set(s string) error {
	switch v := engine(strings.ToLower(s)); v {
	case engineRaster, engineGG, engineSVG:
		*e = v
		return nil
	}
	return fmt.Errorf("must be one of raster, gg, svg")
}

func (e *engine) Type() string { return "engine" }

// resolve picks the engine from the output path when none was given.
func (e engine) resolve(out string) engine {
	if e != engineAuto {
		return e
	}
	if strings.EqualFold(filepath.Ext(out), ".svg") {
		return engineSVG
	}
	return engineRaster
}

func (e engine) ext() string {
	if e == engineSVG {
		return ".svg"
	}
	return ".png"
}

type outputOptions struct {
	out         string
	engine      engine
	fontSize    float64
	supersample int
}

func (o *outputOptions) addFlags(fl *pflag.FlagSet) {
	fl.StringVarP(&o.out, "output", "o", "", "output file (default: input name with .png or .svg; - for stdout)")
	fl.VarP(&o.engine, "engine", "e", "rendering engine: raster, gg or svg (default: from the output extension)")
	fl.Float64Var(&o.fontSize, "font-size", 11, "text size in pixels")
	fl.IntVar(&o.supersample, "supersample", 4, "raster engine scale factor for anti-aliasing")
}

// write renders p to the configured output. base names the default output
// file, without extension.
func (o *outputOptions) write(p *plot.Plot, base string, stdout io.Writer) (string, error) {
	eng := o.engine.resolve(o.out)
	path := o.out
	if path == "" {
		path = base + eng.ext()
	}

	w := stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		w = f
	}

	var err error
	switch eng {
	case engineSVG:
		err = plotfile.RenderSVG(p, w, plotfile.SVGOptions{FontSize: o.fontSize})
	case engineGG:
		err = plotfile.RenderVectorPNG(p, w, o.fontSize)
	default:
		err = plotfile.RenderPNG(p, w, plotfile.RasterOptions{FontSize: o.fontSize, Supersample: o.supersample})
	}
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	return path, nil
}

func newRenderCmd() *cobra.Command {
	o := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a plot document (TOML, JSON or YAML) to PNG or SVG",
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
			base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			path, err := o.write(p, base, c.OutOrStdout())
			if err != nil {
				return err
			}
			if path != "-" {
				fmt.Fprintf(c.ErrOrStderr(), "Rendered %s\n", path)
			}
			return nil
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check plot documents for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				doc, err := plotfile.Load(path)
				if err == nil {
					err = doc.Validate()
				}
				if err != nil {
					failed++
					fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", path, bad("invalid"))
					for _, line := range strings.Split(err.Error(), "\n") {
						fmt.Fprintf(c.OutOrStdout(), "  %s\n", line)
					}
					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", path, good("ok"))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}
