package profile

import (
	"fmt"

	"pocketapp/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var AvatarCmd = &cobra.Command{
	Use:   "avatar <путь к изображению>",
	Short: "Обновить фото профиля",
	Long:  `Сохраняет ссылку на локальный файл изображения сразу, без сохранения остальных полей.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		view, err := app.SetAvatarFromFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка обновления фото: %w", err)
		}

		if ui.JSON {
			return printView(cmd.OutOrStdout(), view)
		}
		ui.Success(cmd.OutOrStdout(), "Фото обновлено: %s", *view.Committed.Avatar)
		return nil
	},
}
