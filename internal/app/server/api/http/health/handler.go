package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const serviceName = "pocketapp"

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	startedAt  time.Time
	now        func() time.Time
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
		startedAt:  time.Now().UTC(),
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	uptime := h.now().Sub(h.startedAt)
	h.log.Debug("health check", "uptime", uptime)

	return &Output{
		Body: HealthResponse{
			Status:    "OK",
			Service:   serviceName,
			StartedAt: h.startedAt,
			Uptime:    int64(uptime / time.Second),
		},
	}, nil
}
