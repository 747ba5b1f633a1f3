package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glasslab/internal/tui/lab"
)

func newLabCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lab",
		Short: "Estimate password strength interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal("lab"); err != nil {
				return err
			}

			settings, err := app.loadSettings()
			if err != nil {
				return err
			}
			log, closeLog, err := app.screenLogger(settings, "lab")
			if err != nil {
				return err
			}
			defer closeLog()
			app.logSettings(log, settings)

			log.Info("lab started")
			if _, err := tea.NewProgram(lab.New(lab.Options{Logger: log}), tea.WithAltScreen()).Run(); err != nil {
				log.Error(err, "lab failed")
				return fmt.Errorf("failed to run lab: %w", err)
			}
			log.Info("lab closed")
			return nil
		},
	}

	return cmd
}
