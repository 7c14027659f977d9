package cmd

import (
	"pocketapp/cmd/client/cmd/explore"
	"pocketapp/cmd/client/cmd/feed"
	"pocketapp/cmd/client/cmd/profile"
	"pocketapp/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Подготовить клиент к работе",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию с данными и локальное хранилище
	2. Проверяет доступность picsum.photos для экрана explore`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		conf := app.Config()

		ui.Title(out, "Инициализация Pocket")
		ui.Success(out, "Директория данных: %s", conf.ConfigDir)
		ui.Success(out, "Хранилище: %s (%s)", conf.StoreDriver, conf.DataPath)

		if err := app.CheckConnection(cmd.Context()); err != nil {
			ui.Warn(out, "Не удалось подключиться к %s: %v", conf.PicsumURL, err)
			ui.Muted(out, "Лента и профиль работают офлайн, экран explore будет недоступен.")
		} else {
			ui.Success(out, "Соединение с %s установлено", conf.PicsumURL)
		}

		if !app.Profile().State().Committed.Exists() {
			ui.Muted(out, "Заполните профиль: pocket profile edit")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.EditCmd)
	profile.ProfileCmd.AddCommand(profile.SetCmd)
	profile.ProfileCmd.AddCommand(profile.AvatarCmd)
	profile.ProfileCmd.AddCommand(profile.OpenCmd)
	profile.ProfileCmd.AddCommand(profile.SignOutCmd)

	rootCmd.AddCommand(feed.FeedCmd)
	feed.FeedCmd.AddCommand(feed.ListCmd)
	feed.FeedCmd.AddCommand(feed.BrowseCmd)

	rootCmd.AddCommand(explore.ExploreCmd)
	explore.ExploreCmd.AddCommand(explore.ShowCmd)
}
