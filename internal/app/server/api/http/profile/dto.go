package profile

import (
	"time"

	"pocketapp/internal/domain/profile"
)

type ProfileResponse struct {
	Mode       string    `json:"mode" enum:"editing,viewing" doc:"Режим экрана профиля"`
	HasProfile bool      `json:"has_profile" doc:"Есть ли сохраненный профиль"`
	Committed  Committed `json:"committed"`
	Draft      Draft     `json:"draft"`
}

// Committed - сохраненные поля. Отсутствующее поле не попадает в ответ.
type Committed struct {
	Name         *string    `json:"name,omitempty"`
	Registration *string    `json:"registration,omitempty"`
	Age          *string    `json:"age,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Instagram    *string    `json:"instagram,omitempty"`
	Github       *string    `json:"github,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
}

type Draft struct {
	Name         string     `json:"name"`
	Registration string     `json:"registration"`
	Age          string     `json:"age"`
	Address      string     `json:"address"`
	Instagram    string     `json:"instagram"`
	Github       string     `json:"github"`
	Gender       string     `json:"gender"`
	Birthday     *time.Time `json:"birthday,omitempty"`
}

type profileOutput struct {
	Body ProfileResponse
}

type DraftRequest struct {
	Name          *string `json:"name,omitempty" maxLength:"200"`
	Registration  *string `json:"registration,omitempty" maxLength:"100"`
	Age           *string `json:"age,omitempty" maxLength:"20" doc:"Хранится как текст"`
	Address       *string `json:"address,omitempty" maxLength:"1000"`
	Instagram     *string `json:"instagram,omitempty" maxLength:"200"`
	Github        *string `json:"github,omitempty" maxLength:"200"`
	Gender        *string `json:"gender,omitempty" doc:"Male, Female, Other или пустая строка"`
	Birthday      *string `json:"birthday,omitempty" doc:"Дата рождения, YYYY-MM-DD или RFC 3339"`
	ClearBirthday bool    `json:"clear_birthday,omitempty"`
}

type draftInput struct {
	Body DraftRequest
}

type AvatarRequest struct {
	URI string `json:"uri" minLength:"1" doc:"Ссылка на локальный файл изображения"`
}

type avatarInput struct {
	Body AvatarRequest
}

type socialInput struct {
	Provider string `path:"provider" doc:"instagram или github"`
}

type SocialResponse struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

type socialOutput struct {
	Body SocialResponse
}

func toResponse(v profile.View) ProfileResponse {
	c := v.Committed
	resp := ProfileResponse{
		Mode:       string(v.Mode),
		HasProfile: c.Exists(),
		Committed: Committed{
			Name:         c.Name,
			Registration: c.Registration,
			Age:          c.Age,
			Address:      c.Address,
			Instagram:    c.Instagram,
			Github:       c.Github,
			Birthday:     c.Birthday,
			Avatar:       c.Avatar,
		},
		Draft: Draft{
			Name:         v.Draft.Name,
			Registration: v.Draft.Registration,
			Age:          v.Draft.Age,
			Address:      v.Draft.Address,
			Instagram:    v.Draft.Instagram,
			Github:       v.Draft.Github,
			Gender:       string(v.Draft.Gender),
			Birthday:     v.Draft.Birthday,
		},
	}
	if c.Gender != nil {
		g := string(*c.Gender)
		resp.Committed.Gender = &g
	}
	return resp
}
