package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glasslab",
		Short:         "Glasslab tunes glass surface CSS and estimates password strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a settings file (default ~/.glasslab/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs of interactive screens to this file")

	app := &appContext{flags: flags}

	cmd.AddCommand(newStudioCmd(app))
	cmd.AddCommand(newLabCmd(app))
	cmd.AddCommand(newCSSCmd(app))
	cmd.AddCommand(newAssessCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
