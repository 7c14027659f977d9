package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/profile"

	"github.com/spf13/cobra"
)

var once bool

// ExploreCmd - родительская команда экрана случайных изображений
var ExploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Случайные изображения",
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать случайное изображение",
	Long: `Загружает метаданные случайного изображения с picsum.photos.

В терминале можно загрузить новое изображение или открыть текущее в браузере.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		snap, err := app.Explore().Mount(cmd.Context())
		if perr := printSnapshot(out, snap, err); perr != nil {
			return perr
		}

		if once || ui.JSON || !ui.IsInteractive() {
			return nil
		}

		p := ui.NewPrompter(cmd.InOrStdin(), out)
		return loop(cmd.Context(), app.Explore(), app.Opener(), p, out)
	},
}

func loop(ctx context.Context, v explore.Servicer, opener profile.Opener, p *ui.Prompter, out io.Writer) error {
	for {
		answer, err := p.Ask("[n] новое изображение, [o] открыть, [q] выход")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "q", "quit":
			return nil
		case "n", "next", "":
			snap, err := v.Load(ctx)
			if perr := printSnapshot(out, snap, err); perr != nil {
				return perr
			}
		case "o", "open":
			snap := v.Snapshot()
			if snap.Image == nil || opener == nil {
				ui.Warn(out, "Изображение еще не загружено")
				continue
			}
			if err := opener.Open(snap.Image.DownloadURL); err != nil {
				ui.Warn(out, "Не удалось открыть ссылку: %s", snap.Image.DownloadURL)
			}
		default:
			ui.Warn(out, "Неизвестная команда: %s", answer)
		}
	}
}

func printSnapshot(w io.Writer, snap explore.Snapshot, loadErr error) error {
	if ui.JSON {
		return ui.PrintJSON(w, snap)
	}

	if snap.State == explore.StateLoading || snap.Image == nil {
		ui.Muted(w, "Загрузка...")
		if loadErr != nil {
			ui.Warn(w, "Изображение не загружено, попробуйте еще раз")
		}
		return nil
	}

	img := snap.Image
	ui.Title(w, fmt.Sprintf("Изображение #%s", img.ID))
	fmt.Fprintf(w, "Автор: %s\n", img.Author)
	if img.Width > 0 && img.Height > 0 {
		fmt.Fprintf(w, "Размер: %dx%d\n", img.Width, img.Height)
	}
	fmt.Fprintf(w, "Ссылка: %s\n", img.DownloadURL)
	return nil
}

func init() {
	ShowCmd.Flags().BoolVar(&once, "once", false, "показать одно изображение и выйти")
}
