package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glasslab/internal/tui/studio"
)

func newStudioCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Tune a glass surface interactively",
		Long:  `Open Glass Studio to adjust blur, opacity, tint, outline, elevation and noise with a live preview, then copy the generated CSS.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal("studio"); err != nil {
				return err
			}

			settings, err := app.loadSettings()
			if err != nil {
				return err
			}
			log, closeLog, err := app.screenLogger(settings, "studio")
			if err != nil {
				return err
			}
			defer closeLog()
			app.logSettings(log, settings)

			log.Info("studio started")
			m := studio.New(studio.Options{Settings: settings, Logger: log})
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				log.Error(err, "studio failed")
				return fmt.Errorf("failed to run studio: %w", err)
			}
			log.Info("studio closed")
			return nil
		},
	}

	return cmd
}
