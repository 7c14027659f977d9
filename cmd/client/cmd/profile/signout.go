package profile

import (
	"errors"
	"fmt"
	"io"

	"pocketapp/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var assumeYes bool

var SignOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Выйти и удалить профиль",
	Long:  `Удаляет все сохраненные поля профиля, включая фото.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if !assumeYes {
			if !ui.IsInteractive() {
				return fmt.Errorf("подтвердите выход флагом --yes")
			}
			ok, err := confirmSignOut(ui.NewPrompter(cmd.InOrStdin(), out), out)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		view, err := app.Profile().SignOut(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		if ui.JSON {
			return printView(out, view)
		}
		ui.Success(out, "Вы вышли, профиль удален")
		return nil
	},
}

// confirmSignOut считает закрытый ввод отказом, остальные ошибки чтения возвращает.
func confirmSignOut(p *ui.Prompter, out io.Writer) (bool, error) {
	ok, err := p.Confirm("Удалить профиль?")
	switch {
	case errors.Is(err, io.EOF):
		ok = false
	case err != nil:
		return false, fmt.Errorf("чтение подтверждения: %w", err)
	}
	if !ok {
		ui.Muted(out, "Отменено")
	}
	return ok, nil
}

func init() {
	SignOutCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "не спрашивать подтверждение")
}
