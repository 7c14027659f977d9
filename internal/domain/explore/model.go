package explore

import (
	"context"
	"fmt"
)

// Image - метаданные случайного изображения.
type Image struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// Validate проверяет обязательные поля ответа.
func (i Image) Validate() error {
	if i.ID == "" || i.DownloadURL == "" {
		return fmt.Errorf("%w: id=%q download_url=%q", ErrMalformedInfo, i.ID, i.DownloadURL)
	}
	return nil
}

// Fetcher получает метаданные изображения по числовому идентификатору.
type Fetcher interface {
	Info(ctx context.Context, id int) (Image, error)
}

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

type Snapshot struct {
	State State  `json:"state"`
	Image *Image `json:"image,omitempty"`
}
