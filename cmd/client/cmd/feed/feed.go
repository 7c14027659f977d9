package feed

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/feed"

	"github.com/spf13/cobra"
)

// FeedCmd - родительская команда ленты
var FeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Лента постов",
	Long:  `Просмотр ленты. Лайки живут только до завершения команды.`,
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать ленту",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		return printItems(cmd.OutOrStdout(), app.Feed().Items())
	},
}

func printItems(w io.Writer, items []feed.Item) error {
	if ui.JSON {
		return ui.PrintJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "Лента пуста")
		return nil
	}

	for _, it := range items {
		ui.Title(w, it.Title)
		ui.Muted(w, "#%s · %s · %s", it.ID, it.Author, it.Time)
		fmt.Fprintln(w, it.Summary)

		heart := "♡"
		if it.Liked {
			heart = "♥"
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s %d\t💬 %d\t↗ %d\t\n", heart, it.DisplayLikes, it.Comments, it.Shares)
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Repeat("─", 40))
	}
	return nil
}
