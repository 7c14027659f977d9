package profile

import (
	"pocketapp/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		return printView(cmd.OutOrStdout(), app.Profile().State())
	},
}
