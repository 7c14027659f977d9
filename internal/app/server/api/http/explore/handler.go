package explore

import (
	"context"

	"pocketapp/internal/domain/explore"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    explore.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service explore.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.showOp(), h.show)
	huma.Register(api, h.nextOp(), h.next)
}

func (h *Handler) show(ctx context.Context, _ *struct{}) (*output, error) {
	snap, err := h.service.Mount(ctx)
	if err != nil {
		h.log.Debug("image not loaded, waiting for retry", "error", err)
	}
	return &output{Body: toResponse(snap)}, nil
}

func (h *Handler) next(ctx context.Context, _ *struct{}) (*output, error) {
	snap, err := h.service.Load(ctx)
	if err != nil {
		h.log.Debug("image not loaded, waiting for retry", "error", err)
	}
	return &output{Body: toResponse(snap)}, nil
}
