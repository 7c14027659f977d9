// GET  /api/v1/health                   # Проверка сервиса
// GET  /api/v1/profile                  # Состояние профиля
// POST /api/v1/profile/edit             # Режим редактирования
// PATCH /api/v1/profile/draft           # Изменение черновика
// POST /api/v1/profile/save             # Сохранение
// POST /api/v1/profile/cancel           # Отмена
// POST /api/v1/profile/sign-out         # Выход
// PUT  /api/v1/profile/avatar           # Фото профиля
// GET  /api/v1/profile/social/{provider} # Ссылка на соцсеть
// GET  /api/v1/feed                     # Лента
// POST /api/v1/feed/{id}/like           # Лайк
// POST /api/v1/feed/refresh             # Обновление ленты
// GET  /api/v1/explore                  # Случайное изображение
// POST /api/v1/explore/next             # Новое изображение
// GET  /metrics                         # Prometheus

package api

import (
	exploreAPI "pocketapp/internal/app/server/api/http/explore"
	feedAPI "pocketapp/internal/app/server/api/http/feed"
	healthAPI "pocketapp/internal/app/server/api/http/health"
	"pocketapp/internal/app/server/api/http/middleware"
	"pocketapp/internal/app/server/api/http/middleware/logger"
	"pocketapp/internal/app/server/api/http/middleware/requestid"
	profileAPI "pocketapp/internal/app/server/api/http/profile"
	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/feed"
	"pocketapp/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

// Services - сервисы экранов одной пользовательской сессии.
type Services struct {
	Profile profile.Servicer
	Feed    feed.Servicer
	Explore explore.Servicer
}

type Handlers struct {
	Health  *healthAPI.Handler
	Profile *profileAPI.Handler
	Feed    *feedAPI.Handler
	Explore *exploreAPI.Handler
}

// New создает *chi.Mux со всеми операциями и эндпоинтом метрик.
func New(services Services, m *metrics.Metrics, gatherer prometheus.Gatherer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	config := huma.DefaultConfig("Pocketapp API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(services, m, log)
	h.Health.SetupRoutes(API)
	h.Profile.SetupRoutes(API)
	h.Feed.SetupRoutes(API)
	h.Explore.SetupRoutes(API)

	return mux
}

func handlers(services Services, m *metrics.Metrics, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	profileHandler := profileAPI.NewHandler(services.Profile, m, log, middlewares.GetAllAndClear())

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	feedHandler := feedAPI.NewHandler(services.Feed, m, log, middlewares.GetAllAndClear())

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	exploreHandler := exploreAPI.NewHandler(services.Explore, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Profile: profileHandler,
		Feed:    feedHandler,
		Explore: exploreHandler,
	}
}
