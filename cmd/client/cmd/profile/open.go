package profile

import (
	"errors"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/profile"

	"github.com/spf13/cobra"
)

var printOnly bool

var OpenCmd = &cobra.Command{
	Use:       "open <instagram|github>",
	Short:     "Открыть профиль в соцсети",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(profile.ProviderInstagram), string(profile.ProviderGithub)},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		provider, err := profile.ParseProvider(args[0])
		if err != nil {
			return err
		}

		if printOnly {
			url, err := app.Profile().SocialLink(provider)
			if err != nil {
				return err
			}
			ui.Muted(out, "%s", url)
			return nil
		}

		url, err := app.Profile().OpenSocial(provider)
		switch {
		case errors.Is(err, profile.ErrNoSocialLink):
			ui.Warn(out, "Ссылка не указана в профиле")
		case errors.Is(err, profile.ErrLinkOpen):
			ui.Warn(out, "Не удалось открыть ссылку: %s", url)
		case err != nil:
			return err
		default:
			ui.Success(out, "Открыто: %s", url)
		}
		return nil
	},
}

func init() {
	OpenCmd.Flags().BoolVar(&printOnly, "print", false, "только вывести ссылку")
}
