package storage

import (
	"context"
	"time"

	"pocketapp/internal/domain/profile"

	"golang.org/x/exp/slog"
)

// Ключи полей профиля в хранилище.
const (
	KeyName         = "userName"
	KeyRegistration = "userReg"
	KeyAge          = "userAge"
	KeyAddress      = "userAddress"
	KeyImage        = "userImage"
	KeyInstagram    = "userInsta"
	KeyGithub       = "userGit"
	KeyGender       = "userGender"
	KeyBirthday     = "userBirthday"
)

// ProfileKeys - полный список ключей профиля, удаляется при выходе.
var ProfileKeys = []string{
	KeyName,
	KeyRegistration,
	KeyAge,
	KeyAddress,
	KeyImage,
	KeyInstagram,
	KeyGithub,
	KeyGender,
	KeyBirthday,
}

// birthdayLayout совпадает с ISO-форматом, который писал мобильный клиент.
const birthdayLayout = "2006-01-02T15:04:05.000Z07:00"

type ProfileRepository struct {
	store Store
	log   *slog.Logger
}

func NewProfileRepository(store Store, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		store: store,
		log:   log.With("component", "profile_repository"),
	}
}

func (r *ProfileRepository) Load(ctx context.Context) (profile.Record, error) {
	values, err := r.store.GetMany(ctx, ProfileKeys...)
	if err != nil {
		return profile.Record{}, err
	}

	rec := profile.Record{
		Name:         lookup(values, KeyName),
		Registration: lookup(values, KeyRegistration),
		Age:          lookup(values, KeyAge),
		Address:      lookup(values, KeyAddress),
		Instagram:    lookup(values, KeyInstagram),
		Github:       lookup(values, KeyGithub),
		Avatar:       lookup(values, KeyImage),
	}

	if v, ok := values[KeyGender]; ok {
		g := profile.Gender(v)
		if err := g.Validate(); err != nil {
			r.log.Warn("stored gender is invalid", "value", v)
		} else {
			rec.Gender = &g
		}
	}

	if v := values[KeyBirthday]; v != "" {
		b, err := time.Parse(time.RFC3339, v)
		if err != nil {
			r.log.Warn("stored birthday is invalid", "value", v, "error", err)
		} else {
			rec.Birthday = &b
		}
	}

	return rec, nil
}

// Save перезаписывает все поля профиля, кроме аватара.
func (r *ProfileRepository) Save(ctx context.Context, d profile.Draft) error {
	birthday := ""
	if d.Birthday != nil {
		birthday = d.Birthday.UTC().Format(birthdayLayout)
	}

	return r.store.SetMany(ctx, map[string]string{
		KeyName:         d.Name,
		KeyRegistration: d.Registration,
		KeyAge:          d.Age,
		KeyAddress:      d.Address,
		KeyInstagram:    d.Instagram,
		KeyGithub:       d.Github,
		KeyGender:       string(d.Gender),
		KeyBirthday:     birthday,
	})
}

func (r *ProfileRepository) SaveAvatar(ctx context.Context, uri string) error {
	return r.store.Set(ctx, KeyImage, uri)
}

func (r *ProfileRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, ProfileKeys...)
}

func lookup(values map[string]string, key string) *string {
	v, ok := values[key]
	if !ok {
		return nil
	}
	return &v
}
