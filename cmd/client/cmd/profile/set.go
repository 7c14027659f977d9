package profile

import (
	"errors"
	"fmt"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/profile"

	"github.com/spf13/cobra"
)

var (
	setName         string
	setRegistration string
	setAge          string
	setAddress      string
	setInstagram    string
	setGithub       string
	setGender       string
	setBirthday     string
)

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Сохранить профиль из флагов",
	Long: `Сохраняет профиль без интерактивного ввода.

Сохранение перезаписывает все поля: не переданные флаги сохраняются пустыми.`,
	Example: `  pocket profile set --name "Radha" --github octocat --birthday 2001-03-09`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := ui.App(cmd.Context())
		if err != nil {
			return err
		}

		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := app.Profile()
		svc.Edit()
		if _, err := svc.UpdateDraft(patch); err != nil {
			return err
		}

		view, err := svc.Save(cmd.Context())
		if err != nil {
			if errors.Is(err, profile.ErrNameRequired) {
				return fmt.Errorf("введите имя: --name")
			}
			return fmt.Errorf("ошибка сохранения профиля: %w", err)
		}

		if !ui.JSON {
			ui.Success(cmd.OutOrStdout(), "Профиль сохранен")
		}
		return printView(cmd.OutOrStdout(), view)
	},
}

func patchFromFlags(cmd *cobra.Command) (profile.Patch, error) {
	var patch profile.Patch
	flags := cmd.Flags()

	strs := []struct {
		flag string
		val  *string
		dst  **string
	}{
		{"name", &setName, &patch.Name},
		{"reg", &setRegistration, &patch.Registration},
		{"age", &setAge, &patch.Age},
		{"address", &setAddress, &patch.Address},
		{"instagram", &setInstagram, &patch.Instagram},
		{"github", &setGithub, &patch.Github},
	}
	for _, s := range strs {
		if flags.Changed(s.flag) {
			v := *s.val
			*s.dst = &v
		}
	}

	if flags.Changed("gender") {
		g, err := profile.ParseGender(setGender)
		if err != nil {
			return profile.Patch{}, err
		}
		patch.Gender = &g
	}

	if flags.Changed("birthday") && setBirthday != "" {
		t, err := parseDate(setBirthday)
		if err != nil {
			return profile.Patch{}, err
		}
		patch.Birthday = &t
	}

	return patch, nil
}

func init() {
	SetCmd.Flags().StringVar(&setName, "name", "", "имя (обязательно)")
	SetCmd.Flags().StringVar(&setRegistration, "reg", "", "регистрационный номер")
	SetCmd.Flags().StringVar(&setAge, "age", "", "возраст")
	SetCmd.Flags().StringVar(&setAddress, "address", "", "адрес")
	SetCmd.Flags().StringVar(&setInstagram, "instagram", "", "Instagram: имя или ссылка")
	SetCmd.Flags().StringVar(&setGithub, "github", "", "GitHub: имя или ссылка")
	SetCmd.Flags().StringVar(&setGender, "gender", "", "пол: Male, Female, Other")
	SetCmd.Flags().StringVar(&setBirthday, "birthday", "", "дата рождения, YYYY-MM-DD")
}
