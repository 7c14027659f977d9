package profile

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender принимает значение без учета регистра, пустая строка означает "не указан".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnset, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	case "other":
		return GenderOther, nil
	}
	return GenderUnset, fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// Validate проверяет, что значение входит в перечисление.
func (g Gender) Validate() error {
	switch g {
	case GenderUnset, GenderMale, GenderFemale, GenderOther:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
}

func (g Gender) String() string {
	return string(g)
}

// DisplayName возвращает человекочитаемое название.
func (g Gender) DisplayName() string {
	switch g {
	case GenderMale:
		return "Мужской"
	case GenderFemale:
		return "Женский"
	case GenderOther:
		return "Другой"
	default:
		return "Не указан"
	}
}
