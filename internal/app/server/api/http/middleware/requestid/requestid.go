package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware берет идентификатор запроса из заголовка или генерирует новый
// и возвращает его в ответе.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.SetHeader(Header, id)
		next(huma.WithValue(ctx, ctxKey{}, id))
	}
}

// FromContext возвращает идентификатор запроса или пустую строку.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
