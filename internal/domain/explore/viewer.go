package explore

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/exp/slog"
)

// DefaultMaxID - верхняя граница (не включительно) случайного идентификатора.
const DefaultMaxID = 1000

type Servicer interface {
	Mount(ctx context.Context) (Snapshot, error)
	Load(ctx context.Context) (Snapshot, error)
	Snapshot() Snapshot
}

// Viewer показывает одно случайное изображение. Ошибка загрузки оставляет экран в состоянии загрузки
// до ручного повтора.
type Viewer struct {
	mu      sync.Mutex
	fetcher Fetcher
	maxID   int
	randID  func(n int) int
	state   State
	current *Image
	mounted bool
	gen     uint64
	log     *slog.Logger
}

type Option func(*Viewer)

// WithRand подменяет генератор идентификаторов.
func WithRand(fn func(n int) int) Option {
	return func(v *Viewer) {
		v.randID = fn
	}
}

func NewViewer(fetcher Fetcher, maxID int, log *slog.Logger, opts ...Option) *Viewer {
	if maxID <= 0 {
		maxID = DefaultMaxID
	}
	v := &Viewer{
		fetcher: fetcher,
		maxID:   maxID,
		randID:  rand.Intn,
		state:   StateLoading,
		log:     log.With("component", "explore_viewer"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount загружает изображение при первом показе экрана.
func (v *Viewer) Mount(ctx context.Context) (Snapshot, error) {
	v.mu.Lock()
	if v.mounted {
		defer v.mu.Unlock()
		return v.snapshot(), nil
	}
	v.mounted = true
	v.mu.Unlock()

	return v.Load(ctx)
}

// Load выбирает случайный идентификатор и загружает изображение заново.
// Показывается результат последнего начатого запроса: ответ, пришедший после
// более нового Load, отбрасывается.
func (v *Viewer) Load(ctx context.Context) (Snapshot, error) {
	v.mu.Lock()
	v.mounted = true
	v.gen++
	gen := v.gen
	v.state = StateLoading
	v.current = nil
	id := v.randID(v.maxID)
	v.mu.Unlock()

	img, err := v.fetcher.Info(ctx, id)
	if err == nil {
		err = img.Validate()
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		v.log.Debug("stale image response dropped", "id", id)
		return v.snapshot(), nil
	}

	if err != nil {
		v.log.Warn("image fetch failed", "id", id, "error", err)
		return v.snapshot(), fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	v.current = &img
	v.state = StateReady
	v.log.Debug("image loaded", "id", img.ID, "author", img.Author)
	return v.snapshot(), nil
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

func (v *Viewer) snapshot() Snapshot {
	s := Snapshot{State: v.state}
	if v.current != nil {
		img := *v.current
		s.Image = &img
	}
	return s
}
