package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load(ctx context.Context) View
	State() View
	Edit() View
	UpdateDraft(p Patch) (View, error)
	Save(ctx context.Context) (View, error)
	Cancel() View
	SignOut(ctx context.Context) (View, error)
	SetAvatar(ctx context.Context, uri string) (View, error)
	SocialLink(provider Provider) (string, error)
	OpenSocial(provider Provider) (string, error)
}

// Service - сессия экрана профиля одного пользователя.
type Service struct {
	mu      sync.Mutex
	repo    Repository
	opener  Opener
	machine *Machine
	log     *slog.Logger
}

// NewService создает сервис. opener может быть nil, тогда OpenSocial всегда возвращает ErrLinkOpen.
func NewService(repo Repository, opener Opener, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		opener:  opener,
		machine: NewMachine(),
		log:     log.With("component", "profile_service"),
	}
}

// Load читает профиль из хранилища. Ошибка чтения не фатальна: остаются пустые значения.
func (s *Service) Load(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load profile", "error", err)
		return s.machine.View()
	}

	s.machine.Restore(rec)
	s.log.Debug("profile loaded", "mode", s.machine.Mode())
	return s.machine.View()
}

func (s *Service) State() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.View()
}

func (s *Service) Edit() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Edit()
	return s.machine.View()
}

func (s *Service) UpdateDraft(p Patch) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.Apply(p); err != nil {
		return s.machine.View(), err
	}
	return s.machine.View(), nil
}

// Save записывает черновик. При ошибке режим редактирования и черновик сохраняются.
func (s *Service) Save(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.machine.PrepareSave()
	if err != nil {
		s.log.Debug("save rejected", "error", err)
		return s.machine.View(), err
	}

	if err := s.repo.Save(ctx, draft); err != nil {
		s.log.Error("failed to save profile", "error", err)
		return s.machine.View(), fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.machine.Commit(draft)
	s.log.Info("profile saved")
	return s.machine.View(), nil
}

func (s *Service) Cancel() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Cancel()
	return s.machine.View()
}

// SignOut удаляет все поля профиля из хранилища.
func (s *Service) SignOut(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error("failed to clear profile", "error", err)
		return s.machine.View(), fmt.Errorf("%w: %v", ErrSignOutFailed, err)
	}

	s.machine.Reset()
	s.log.Info("signed out")
	return s.machine.View(), nil
}

// SetAvatar сразу сохраняет ссылку на изображение, без сохранения черновика.
func (s *Service) SetAvatar(ctx context.Context, uri string) (View, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return s.State(), ErrEmptyAvatar
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveAvatar(ctx, uri); err != nil {
		s.log.Error("failed to save avatar", "error", err)
		return s.machine.View(), fmt.Errorf("%w: %v", ErrAvatarFailed, err)
	}

	s.machine.SetAvatar(uri)
	return s.machine.View(), nil
}

// SocialLink возвращает ссылку на сохраненный профиль в соцсети.
func (s *Service) SocialLink(provider Provider) (string, error) {
	s.mu.Lock()
	value := s.machine.Committed().social(provider)
	s.mu.Unlock()

	return SocialURL(provider, value)
}

// OpenSocial открывает ссылку. Ошибка открытия не паникует, а возвращается как ErrLinkOpen.
func (s *Service) OpenSocial(provider Provider) (string, error) {
	url, err := s.SocialLink(provider)
	if err != nil {
		return "", err
	}

	if s.opener == nil {
		return url, fmt.Errorf("%w: no opener configured", ErrLinkOpen)
	}

	if err := s.safeOpen(url); err != nil {
		s.log.Warn("failed to open link", "url", url, "error", err)
		return url, fmt.Errorf("%w: %v", ErrLinkOpen, err)
	}
	return url, nil
}

func (s *Service) safeOpen(url string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprint(r))
		}
	}()
	return s.opener.Open(url)
}
