package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ha1tch/plot-toolkit/pkg/plotfile"
)

func newDemoCmd() *cobra.Command {
	o := &outputOptions{}
	var export string
	cmd := &cobra.Command{
		Use:   "demo [n]",
		Short: "List, render or export the built-in example plots",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				for n := 1; n <= plotfile.NumDemos; n++ {
					fmt.Fprintf(c.OutOrStdout(), "%d  %s\n", n, plotfile.DemoTitle(n))
				}
				return nil
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("demo number: %w", err)
			}
			doc, err := plotfile.Demo(n)
			if err != nil {
				return err
			}

			if export != "" {
				format, err := plotfile.ParseFormat(export)
				if err != nil {
					return err
				}
				data, err := plotfile.Marshal(doc, format)
				if err != nil {
					return err
				}
				_, err = c.OutOrStdout().Write(data)
				return err
			}

			p, err := doc.Build()
			if err != nil {
				return err
			}
			path, err := o.write(p, fmt.Sprintf("demo%d", n), c.OutOrStdout())
			if err != nil {
				return err
			}
			if path != "-" {
				fmt.Fprintf(c.ErrOrStderr(), "Rendered %s (%s)\n", path, plotfile.DemoTitle(n))
			}
			return nil
		},
	}
	o.addFlags(cmd.Flags())
	cmd.Flags().StringVar(&export, "export", "", "print the example as a toml, json or yaml document instead of rendering")
	return cmd
}
