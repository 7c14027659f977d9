package metrics

import (
	"context"

	"pocketapp/internal/domain/explore"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pocketapp"

// Metrics - счетчики действий пользователя на экранах.
type Metrics struct {
	ProfileSaves    *prometheus.CounterVec
	ProfileSignOuts prometheus.Counter
	FeedLikes       *prometheus.CounterVec
	FeedRefreshes   prometheus.Counter
	ImageFetches    *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ProfileSaves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "saves_total",
			Help:      "Profile save attempts by result.",
		}, []string{"result"}),
		ProfileSignOuts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "sign_outs_total",
			Help:      "Completed sign-outs.",
		}),
		FeedLikes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "like_toggles_total",
			Help:      "Like toggles by resulting state.",
		}, []string{"state"}),
		FeedRefreshes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "refreshes_total",
			Help:      "Completed feed refreshes.",
		}),
		ImageFetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "image_fetches_total",
			Help:      "Random image fetches by result.",
		}, []string{"result"}),
	}
}

// Result превращает ошибку в метку результата.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

type instrumentedFetcher struct {
	next    explore.Fetcher
	fetches *prometheus.CounterVec
}

// InstrumentFetcher считает запросы метаданных изображений по результату.
func (m *Metrics) InstrumentFetcher(f explore.Fetcher) explore.Fetcher {
	return &instrumentedFetcher{next: f, fetches: m.ImageFetches}
}

func (f *instrumentedFetcher) Info(ctx context.Context, id int) (explore.Image, error) {
	img, err := f.next.Info(ctx, id)
	f.fetches.WithLabelValues(Result(err)).Inc()
	return img, err
}
