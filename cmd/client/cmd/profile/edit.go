package profile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/profile"

	"github.com/spf13/cobra"
)

var EditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Заполнить профиль в интерактивном режиме",
	Long: `Последовательно запрашивает поля профиля и сохраняет их.

Поля начинаются с пустых значений: сохранение перезаписывает весь профиль.
Имя обязательно. Пустая строка оставляет поле пустым.
Для неинтерактивного заполнения используйте: pocket profile set`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		if !ui.IsInteractive() {
			return fmt.Errorf("нужен терминал, используйте pocket profile set")
		}

		p := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return runEdit(cmd.Context(), app.Profile(), p, cmd.OutOrStdout())
	},
}

func runEdit(ctx context.Context, svc profile.Servicer, p *ui.Prompter, out io.Writer) error {
	svc.Edit()
	ui.Title(out, "Редактирование профиля")

	patch, err := askDraft(p, out)
	if err != nil {
		return cancelOnEOF(svc, out, err)
	}
	if _, err := svc.UpdateDraft(patch); err != nil {
		return err
	}

	for {
		ok, err := p.Confirm("Сохранить профиль?")
		if err != nil {
			return cancelOnEOF(svc, out, err)
		}
		if !ok {
			view := svc.Cancel()
			ui.Muted(out, "Изменения отменены")
			return printView(out, view)
		}

		view, err := svc.Save(ctx)
		switch {
		case err == nil:
			ui.Success(out, "Профиль сохранен")
			return printView(out, view)
		case errors.Is(err, profile.ErrNameRequired):
			ui.Warn(out, "Введите имя")
			name, err := p.Ask("Имя")
			if err != nil {
				return cancelOnEOF(svc, out, err)
			}
			if _, err := svc.UpdateDraft(profile.Patch{Name: &name}); err != nil {
				return err
			}
		case errors.Is(err, profile.ErrSaveFailed):
			ui.Warn(out, "Не удалось сохранить профиль: %v", err)
		default:
			return err
		}
	}
}

func askDraft(p *ui.Prompter, out io.Writer) (profile.Patch, error) {
	var patch profile.Patch

	fields := []struct {
		label string
		dst   **string
	}{
		{"Имя", &patch.Name},
		{"Рег. номер", &patch.Registration},
		{"Возраст", &patch.Age},
		{"Адрес", &patch.Address},
		{"Instagram", &patch.Instagram},
		{"GitHub", &patch.Github},
	}
	for _, f := range fields {
		v, err := p.Ask(f.label)
		if err != nil {
			return profile.Patch{}, err
		}
		*f.dst = &v
	}

	for {
		v, err := p.Ask("Пол (Male/Female/Other, пусто - не указан)")
		if err != nil {
			return profile.Patch{}, err
		}
		g, err := profile.ParseGender(v)
		if err != nil {
			ui.Warn(out, "Неизвестное значение: %s", v)
			continue
		}
		patch.Gender = &g
		break
	}

	for {
		v, err := p.Ask("Дата рождения (YYYY-MM-DD, пусто - не указана)")
		if err != nil {
			return profile.Patch{}, err
		}
		if v == "" {
			patch.ClearBirthday = true
			break
		}
		t, err := parseDate(v)
		if err != nil {
			ui.Warn(out, "%v", err)
			continue
		}
		patch.Birthday = &t
		break
	}

	return patch, nil
}

func cancelOnEOF(svc profile.Servicer, out io.Writer, err error) error {
	if !errors.Is(err, io.EOF) {
		return err
	}
	svc.Cancel()
	fmt.Fprintln(out)
	ui.Muted(out, "Редактирование прервано")
	return nil
}
