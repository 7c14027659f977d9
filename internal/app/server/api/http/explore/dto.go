package explore

import "pocketapp/internal/domain/explore"

// ImageResponse - состояние экрана. Ошибка загрузки не отдается клиенту как ошибка:
// экран остается в состоянии loading до повторного запроса.
type ImageResponse struct {
	State string         `json:"state" enum:"loading,ready"`
	Image *explore.Image `json:"image,omitempty"`
}

type output struct {
	Body ImageResponse
}

func toResponse(s explore.Snapshot) ImageResponse {
	return ImageResponse{
		State: string(s.State),
		Image: s.Image,
	}
}
