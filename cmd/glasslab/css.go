package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glasslab/internal/glass"
)

type cssOptions struct {
	blur      float64
	opacity   float64
	tint      string
	outline   float64
	elevation float64
	noise     float64
	vars      bool
}

func newCSSCmd(app *appContext) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the glass CSS for the given parameters",
		Long:  `Print the CSS declarations for a glass surface. Parameters not given on the command line come from the settings file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.loadSettings()
			if err != nil {
				return err
			}
			log, err := app.commandLogger(cmd, settings, "css")
			if err != nil {
				return err
			}
			app.logSettings(log, settings)

			params := settings.Params()
			flags := cmd.Flags()
			if flags.Changed("blur") {
				params.Blur = opts.blur
			}
			if flags.Changed("opacity") {
				params.Opacity = opts.opacity
			}
			if flags.Changed("tint") {
				params.Tint = opts.tint
			}
			if flags.Changed("outline") {
				params.Outline = opts.outline
			}
			if flags.Changed("elevation") {
				params.Elevation = opts.elevation
			}
			if flags.Changed("noise") {
				params.Noise = opts.noise
			}

			style := glass.Compute(params)
			if !style.RGB.Valid() {
				log.With("tint", params.Tint).Warn("tint is not a valid hex colour")
			}

			out := cmd.OutOrStdout()
			if opts.vars {
				fmt.Fprintln(out, style.RootBlock())
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, style.CSS)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.blur, "blur", 0, "Blur radius in px")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", 0, "Tint opacity (0-1)")
	cmd.Flags().StringVar(&opts.tint, "tint", "", "Tint colour as #rrggbb")
	cmd.Flags().Float64Var(&opts.outline, "outline", 0, "Border alpha (0-1)")
	cmd.Flags().Float64Var(&opts.elevation, "elevation", 0, "Shadow blur in px")
	cmd.Flags().Float64Var(&opts.noise, "noise", 0, "Grain level (0-1)")
	cmd.Flags().BoolVar(&opts.vars, "vars", false, "Also print the custom properties as a :root block")

	return cmd
}
