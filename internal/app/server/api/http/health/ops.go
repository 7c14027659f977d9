package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Проверка сервиса",
		Description: "Отвечает, пока процесс API запущен. Хранилище и picsum не проверяются.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
