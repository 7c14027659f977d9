package profile

import (
	"strings"
	"time"
)

type Mode string

const (
	ModeEditing Mode = "editing"
	ModeViewing Mode = "viewing"
)

// Record - сохраненный профиль. nil означает, что поле отсутствует в хранилище,
// указатель на пустую строку - что поле сохранено пустым.
type Record struct {
	Name         *string
	Registration *string
	Age          *string
	Address      *string
	Instagram    *string
	Github       *string
	Gender       *Gender
	Birthday     *time.Time
	Avatar       *string
}

// Exists сообщает, есть ли сохраненный профиль.
func (r Record) Exists() bool {
	return r.Name != nil && *r.Name != ""
}

// Draft - редактируемые, еще не сохраненные поля.
type Draft struct {
	Name         string
	Registration string
	Age          string
	Address      string
	Instagram    string
	Github       string
	Gender       Gender
	Birthday     *time.Time
}

func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Validate проверяет черновик перед сохранением.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	return d.Gender.Validate()
}

// committed превращает черновик в сохраненную запись: после сохранения присутствуют все поля,
// кроме даты рождения, если она не выбрана.
func (d Draft) committed(avatar *string) Record {
	gender := d.Gender
	rec := Record{
		Name:         strPtr(d.Name),
		Registration: strPtr(d.Registration),
		Age:          strPtr(d.Age),
		Address:      strPtr(d.Address),
		Instagram:    strPtr(d.Instagram),
		Github:       strPtr(d.Github),
		Gender:       &gender,
		Avatar:       avatar,
	}
	if d.Birthday != nil {
		b := *d.Birthday
		rec.Birthday = &b
	}
	return rec
}

// Patch - частичное изменение черновика.
type Patch struct {
	Name          *string
	Registration  *string
	Age           *string
	Address       *string
	Instagram     *string
	Github        *string
	Gender        *Gender
	Birthday      *time.Time
	ClearBirthday bool
}

func (p Patch) apply(d Draft) (Draft, error) {
	if p.Gender != nil {
		if err := p.Gender.Validate(); err != nil {
			return d, err
		}
		d.Gender = *p.Gender
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Registration != nil {
		d.Registration = *p.Registration
	}
	if p.Age != nil {
		d.Age = *p.Age
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.Instagram != nil {
		d.Instagram = *p.Instagram
	}
	if p.Github != nil {
		d.Github = *p.Github
	}
	switch {
	case p.ClearBirthday:
		d.Birthday = nil
	case p.Birthday != nil:
		// хранилище держит дату с точностью до миллисекунд
		b := p.Birthday.UTC().Truncate(time.Millisecond)
		d.Birthday = &b
	}
	return d, nil
}

// View - снимок состояния экрана профиля.
type View struct {
	Mode      Mode
	Committed Record
	Draft     Draft
}

func strPtr(s string) *string {
	return &s
}
