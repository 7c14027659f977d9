package profile

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrNotEditing      = errors.New("profile is not in editing mode")
	ErrSaveFailed      = errors.New("failed to save profile")
	ErrSignOutFailed   = errors.New("failed to sign out")
	ErrEmptyAvatar     = errors.New("avatar reference is empty")
	ErrAvatarFailed    = errors.New("failed to update avatar")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrUnknownProvider = errors.New("unknown social provider")
	ErrNoSocialLink    = errors.New("social link is not set")
	ErrLinkOpen        = errors.New("couldn't open the link")
)
