package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/feed"

	"github.com/spf13/cobra"
)

var BrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Интерактивный просмотр ленты",
	Long: `Команды:
  l <id>  поставить или снять лайк
  r       обновить ленту
  q       выход`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		if !ui.IsInteractive() {
			return fmt.Errorf("нужен терминал, используйте pocket feed list")
		}

		p := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return browse(cmd.Context(), app.Feed(), p, cmd.OutOrStdout())
	},
}

func browse(ctx context.Context, f feed.Servicer, p *ui.Prompter, out io.Writer) error {
	if err := printItems(out, f.Items()); err != nil {
		return err
	}

	for {
		line, err := p.Ask("[l <id>] лайк, [r] обновить, [q] выход")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "r", "refresh":
			ui.Muted(out, "Обновление...")
			if err := f.Refresh(ctx); err != nil {
				return err
			}
			if err := printItems(out, f.Items()); err != nil {
				return err
			}
		case "l", "like":
			if len(fields) < 2 {
				ui.Warn(out, "Укажите номер поста")
				continue
			}
			item, err := f.ToggleLike(fields[1])
			if errors.Is(err, feed.ErrPostNotFound) {
				ui.Warn(out, "Пост #%s не найден", fields[1])
				continue
			}
			if err != nil {
				return err
			}
			if item.Liked {
				ui.Success(out, "♥ %s: %d", item.Title, item.DisplayLikes)
			} else {
				ui.Muted(out, "♡ %s: %d", item.Title, item.DisplayLikes)
			}
		default:
			ui.Warn(out, "Неизвестная команда: %s", fields[0])
		}
	}
}
