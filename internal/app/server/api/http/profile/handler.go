package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service    profile.Servicer
	metrics    *metrics.Metrics
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service profile.Servicer, m *metrics.Metrics, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		metrics:    m,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.editOp(), h.edit)
	huma.Register(api, h.updateDraftOp(), h.updateDraft)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.cancelOp(), h.cancel)
	huma.Register(api, h.signOutOp(), h.signOut)
	huma.Register(api, h.avatarOp(), h.avatar)
	huma.Register(api, h.socialOp(), h.social)
}

func (h *Handler) get(_ context.Context, _ *struct{}) (*profileOutput, error) {
	return &profileOutput{Body: toResponse(h.service.State())}, nil
}

func (h *Handler) edit(_ context.Context, _ *struct{}) (*profileOutput, error) {
	return &profileOutput{Body: toResponse(h.service.Edit())}, nil
}

func (h *Handler) updateDraft(_ context.Context, input *draftInput) (*profileOutput, error) {
	patch, err := toPatch(input.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}

	view, err := h.service.UpdateDraft(patch)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &profileOutput{Body: toResponse(view)}, nil
}

func (h *Handler) save(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	view, err := h.service.Save(ctx)
	h.metrics.ProfileSaves.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &profileOutput{Body: toResponse(view)}, nil
}

func (h *Handler) cancel(_ context.Context, _ *struct{}) (*profileOutput, error) {
	return &profileOutput{Body: toResponse(h.service.Cancel())}, nil
}

func (h *Handler) signOut(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	view, err := h.service.SignOut(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}
	h.metrics.ProfileSignOuts.Inc()
	return &profileOutput{Body: toResponse(view)}, nil
}

func (h *Handler) avatar(ctx context.Context, input *avatarInput) (*profileOutput, error) {
	view, err := h.service.SetAvatar(ctx, input.Body.URI)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &profileOutput{Body: toResponse(view)}, nil
}

func (h *Handler) social(_ context.Context, input *socialInput) (*socialOutput, error) {
	provider, err := profile.ParseProvider(input.Provider)
	if err != nil {
		return nil, toHTTPError(err)
	}

	url, err := h.service.SocialLink(provider)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &socialOutput{
		Body: SocialResponse{
			Provider: string(provider),
			URL:      url,
		},
	}, nil
}

func toPatch(req DraftRequest) (profile.Patch, error) {
	p := profile.Patch{
		Name:          req.Name,
		Registration:  req.Registration,
		Age:           req.Age,
		Address:       req.Address,
		Instagram:     req.Instagram,
		Github:        req.Github,
		ClearBirthday: req.ClearBirthday,
	}

	if req.Gender != nil {
		g, err := profile.ParseGender(*req.Gender)
		if err != nil {
			return profile.Patch{}, err
		}
		p.Gender = &g
	}

	if req.Birthday != nil && !req.ClearBirthday {
		t, err := parseBirthday(*req.Birthday)
		if err != nil {
			return profile.Patch{}, huma.Error422UnprocessableEntity("Invalid birthday, expected YYYY-MM-DD")
		}
		p.Birthday = &t
	}

	return p, nil
}

func parseBirthday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func toHTTPError(err error) error {
	var se huma.StatusError
	switch {
	case errors.As(err, &se):
		return err
	case errors.Is(err, profile.ErrNameRequired),
		errors.Is(err, profile.ErrInvalidGender),
		errors.Is(err, profile.ErrEmptyAvatar):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, profile.ErrNotEditing):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, profile.ErrUnknownProvider):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, profile.ErrNoSocialLink):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, profile.ErrSaveFailed):
		return huma.Error500InternalServerError(profile.ErrSaveFailed.Error())
	case errors.Is(err, profile.ErrSignOutFailed):
		return huma.Error500InternalServerError(profile.ErrSignOutFailed.Error())
	case errors.Is(err, profile.ErrAvatarFailed):
		return huma.Error500InternalServerError(profile.ErrAvatarFailed.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
