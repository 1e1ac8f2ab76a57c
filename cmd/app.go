package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathpilot/pathpilot/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, svc, levels, client, err := services(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(svc, client, levels, client)
}
