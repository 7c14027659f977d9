package health

import "time"

type Input struct{}

type Output struct {
	Body HealthResponse
}

// HealthResponse - состояние процесса API.
type HealthResponse struct {
	Status    string    `json:"status" example:"OK" doc:"Статус сервиса"`
	Service   string    `json:"service" example:"pocketapp"`
	StartedAt time.Time `json:"started_at" doc:"Время запуска процесса"`
	Uptime    int64     `json:"uptime_seconds" minimum:"0"`
}
