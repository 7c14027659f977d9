package profile

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/profile"

	"github.com/spf13/cobra"
)

const (
	inputDateLayout   = "2006-01-02"
	displayDateLayout = "02.01.2006"
)

// ProfileCmd - родительская команда экрана профиля
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Профиль пользователя",
	Long: `Просмотр и редактирование профиля, фото, ссылки на соцсети и выход.

Профиль хранится локально и переживает перезапуск клиента.`,
}

type recordJSON struct {
	Name         *string `json:"name,omitempty"`
	Registration *string `json:"registration,omitempty"`
	Age          *string `json:"age,omitempty"`
	Address      *string `json:"address,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	Github       *string `json:"github,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Birthday     *string `json:"birthday,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
}

type viewJSON struct {
	Mode       string     `json:"mode"`
	HasProfile bool       `json:"has_profile"`
	Profile    recordJSON `json:"profile"`
}

func toJSON(v profile.View) viewJSON {
	c := v.Committed
	out := viewJSON{
		Mode:       string(v.Mode),
		HasProfile: c.Exists(),
		Profile: recordJSON{
			Name:         c.Name,
			Registration: c.Registration,
			Age:          c.Age,
			Address:      c.Address,
			Instagram:    c.Instagram,
			Github:       c.Github,
			Avatar:       c.Avatar,
		},
	}
	if c.Gender != nil {
		g := c.Gender.String()
		out.Profile.Gender = &g
	}
	if c.Birthday != nil {
		b := c.Birthday.Format(inputDateLayout)
		out.Profile.Birthday = &b
	}
	return out
}

func printView(w io.Writer, v profile.View) error {
	if ui.JSON {
		return ui.PrintJSON(w, toJSON(v))
	}

	c := v.Committed
	if !c.Exists() {
		ui.Title(w, "Профиль")
		ui.Muted(w, "Профиль еще не заполнен. Заполните его: pocket profile edit")
		if c.Avatar != nil {
			fmt.Fprintf(w, "Фото: %s\n", *c.Avatar)
		}
		return nil
	}

	ui.Title(w, *c.Name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Рег. номер:\t%s\n", text(c.Registration))
	fmt.Fprintf(tw, "Возраст:\t%s\n", text(c.Age))
	fmt.Fprintf(tw, "Пол:\t%s\n", gender(c.Gender))
	fmt.Fprintf(tw, "Дата рождения:\t%s\n", date(c.Birthday))
	fmt.Fprintf(tw, "Адрес:\t%s\n", text(c.Address))
	fmt.Fprintf(tw, "Instagram:\t%s\n", text(c.Instagram))
	fmt.Fprintf(tw, "GitHub:\t%s\n", text(c.Github))
	fmt.Fprintf(tw, "Фото:\t%s\n", text(c.Avatar))
	return tw.Flush()
}

func text(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func gender(g *profile.Gender) string {
	if g == nil {
		return profile.GenderUnset.DisplayName()
	}
	return g.DisplayName()
}

func date(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format(displayDateLayout)
}

// parseDate принимает YYYY-MM-DD или ДД.ММ.ГГГГ.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{inputDateLayout, displayDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("некорректная дата %q, ожидается YYYY-MM-DD", s)
}
