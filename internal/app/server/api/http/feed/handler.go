package feed

import (
	"context"
	"errors"
	"strconv"

	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/feed"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    feed.Servicer
	metrics    *metrics.Metrics
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service feed.Servicer, m *metrics.Metrics, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		metrics:    m,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.likeOp(), h.like)
	huma.Register(api, h.refreshOp(), h.refresh)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{
		Body: ListResponse{Items: h.service.Items()},
	}, nil
}

func (h *Handler) like(_ context.Context, input *likeInput) (*likeOutput, error) {
	item, err := h.service.ToggleLike(input.ID)
	if err != nil {
		if errors.Is(err, feed.ErrPostNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	h.metrics.FeedLikes.WithLabelValues(strconv.FormatBool(item.Liked)).Inc()
	return &likeOutput{Body: item}, nil
}

func (h *Handler) refresh(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if err := h.service.Refresh(ctx); err != nil {
		h.log.Warn("feed refresh interrupted", "error", err)
		return nil, huma.Error503ServiceUnavailable("Refresh interrupted", err)
	}

	h.metrics.FeedRefreshes.Inc()
	return &listOutput{
		Body: ListResponse{Items: h.service.Items()},
	}, nil
}
