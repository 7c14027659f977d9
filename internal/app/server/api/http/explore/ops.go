package explore

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "explore-show",
		Method:      http.MethodGet,
		Path:        "/api/v1/explore",
		Summary:     "Текущее изображение",
		Description: "При первом обращении загружает случайное изображение.",
		Tags:        []string{"explore"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) nextOp() huma.Operation {
	return huma.Operation{
		OperationID: "explore-next",
		Method:      http.MethodPost,
		Path:        "/api/v1/explore/next",
		Summary:     "Загрузить новое изображение",
		Tags:        []string{"explore"},
		Middlewares: h.middleware,
	}
}
