package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// DefaultRefreshDelay - задержка имитации обновления ленты.
const DefaultRefreshDelay = time.Second

type Servicer interface {
	Items() []Item
	Get(id string) (Item, error)
	ToggleLike(id string) (Item, error)
	Refresh(ctx context.Context) error
}

// Feed - лента постов с лайками, которые живут только в памяти.
type Feed struct {
	mu    sync.RWMutex
	posts []Post
	liked map[string]struct{}
	delay time.Duration
	log   *slog.Logger
}

func New(delay time.Duration, log *slog.Logger) *Feed {
	if delay < 0 {
		delay = 0
	}
	return &Feed{
		posts: Seed(),
		liked: make(map[string]struct{}),
		delay: delay,
		log:   log.With("component", "feed"),
	}
}

// Items возвращает посты в исходном порядке.
func (f *Feed) Items() []Item {
	f.mu.RLock()
	defer f.mu.RUnlock()

	items := make([]Item, 0, len(f.posts))
	for _, p := range f.posts {
		_, liked := f.liked[p.ID]
		items = append(items, newItem(p, liked))
	}
	return items
}

func (f *Feed) Get(id string) (Item, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.find(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	_, liked := f.liked[id]
	return newItem(p, liked), nil
}

// ToggleLike ставит или снимает лайк.
func (f *Feed) ToggleLike(id string) (Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.find(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	_, liked := f.liked[id]
	if liked {
		delete(f.liked, id)
	} else {
		f.liked[id] = struct{}{}
	}

	f.log.Debug("like toggled", "post_id", id, "liked", !liked)
	return newItem(p, !liked), nil
}

// Refresh после задержки заменяет ленту копией исходных постов и сбрасывает лайки.
// При отмене контекста лента не меняется.
func (f *Feed) Refresh(ctx context.Context) error {
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	f.mu.Lock()
	f.posts = Seed()
	f.liked = make(map[string]struct{})
	f.mu.Unlock()

	f.log.Debug("feed refreshed")
	return nil
}

func (f *Feed) find(id string) (Post, bool) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
