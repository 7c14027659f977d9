package profile

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderInstagram Provider = "instagram"
	ProviderGithub    Provider = "github"
)

func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderInstagram, ProviderGithub:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

// SocialURL строит ссылку на профиль. Значение со схемой http(s) используется как есть.
func SocialURL(provider Provider, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSocialLink, provider)
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, nil
	}

	switch provider {
	case ProviderInstagram:
		return "https://instagram.com/" + strings.TrimPrefix(value, "@"), nil
	case ProviderGithub:
		return "https://github.com/" + value, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, string(provider))
}

func (r Record) social(provider Provider) string {
	var v *string
	switch provider {
	case ProviderInstagram:
		v = r.Instagram
	case ProviderGithub:
		v = r.Github
	}
	if v == nil {
		return ""
	}
	return *v
}
