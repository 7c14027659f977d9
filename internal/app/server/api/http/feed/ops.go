package feed

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "feed-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/feed",
		Summary:     "Лента постов",
		Tags:        []string{"feed"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) likeOp() huma.Operation {
	return huma.Operation{
		OperationID: "feed-like-toggle",
		Method:      http.MethodPost,
		Path:        "/api/v1/feed/{id}/like",
		Summary:     "Поставить или снять лайк",
		Tags:        []string{"feed"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID: "feed-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/feed/refresh",
		Summary:     "Обновить ленту",
		Description: "После короткой задержки возвращает исходные посты, лайки сбрасываются.",
		Tags:        []string{"feed"},
		Middlewares: h.middleware,
	}
}
