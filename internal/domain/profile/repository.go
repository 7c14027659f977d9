package profile

import "context"

type Repository interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, d Draft) error
	SaveAvatar(ctx context.Context, uri string) error
	Clear(ctx context.Context) error
}

// Opener открывает ссылку во внешнем приложении.
type Opener interface {
	Open(url string) error
}
