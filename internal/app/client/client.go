package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pocketapp/internal/app/client/config"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/feed"
	"pocketapp/internal/domain/profile"
	"pocketapp/internal/infrastructure/picsum"
	"pocketapp/internal/infrastructure/storage"
	"pocketapp/internal/infrastructure/storage/memory"

	"golang.org/x/exp/slog"
)

// App связывает хранилище и сервисы всех экранов для CLI.
type App struct {
	config  *config.Config
	log     *slog.Logger
	store   storage.Store
	picsum  *picsum.Client
	opener  profile.Opener
	profile *profile.Service
	feed    *feed.Feed
	viewer  *explore.Viewer
}

// Option настраивает App при создании.
type Option func(*options)

type options struct {
	opener  profile.Opener
	fetcher explore.Fetcher
}

// WithOpener подменяет открытие ссылок в браузере.
func WithOpener(o profile.Opener) Option {
	return func(opts *options) {
		opts.opener = o
	}
}

// WithFetcher подменяет источник метаданных изображений.
func WithFetcher(f explore.Fetcher) Option {
	return func(opts *options) {
		opts.fetcher = f
	}
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	o := options{opener: BrowserOpener{}}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := storage.Open(ctx, storage.Options{
		Driver:         cfg.StoreDriver,
		Path:           cfg.DataPath,
		RedisAddr:      cfg.RedisAddr,
		DatabaseURI:    cfg.DatabaseURI,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		if cfg.StoreDriver != storage.DriverSQLite {
			return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		store = memory.New()
	}

	picsumClient := picsum.New(cfg.PicsumURL, cfg.HTTPTimeout, log)
	if o.fetcher == nil {
		o.fetcher = picsumClient
	}

	app := &App{
		config:  cfg,
		log:     log,
		store:   store,
		picsum:  picsumClient,
		opener:  o.opener,
		profile: profile.NewService(storage.NewProfileRepository(store, log), o.opener, log),
		feed:    feed.New(cfg.RefreshDelay, log),
		viewer:  explore.NewViewer(o.fetcher, cfg.ImageMaxID, log),
	}

	app.profile.Load(ctx)
	return app, nil
}

func (a *App) Profile() *profile.Service {
	return a.profile
}

func (a *App) Feed() *feed.Feed {
	return a.feed
}

func (a *App) Explore() *explore.Viewer {
	return a.viewer
}

// Opener открывает внешние ссылки.
func (a *App) Opener() profile.Opener {
	return a.opener
}

func (a *App) Config() *config.Config {
	return a.config
}

// SetAvatarFromFile сохраняет ссылку на локальный файл изображения как file:// URI.
func (a *App) SetAvatarFromFile(ctx context.Context, path string) (profile.View, error) {
	uri, err := fileURI(path)
	if err != nil {
		return a.profile.State(), err
	}
	return a.profile.SetAvatar(ctx, uri)
}

// CheckConnection проверяет доступность сервиса изображений
func (a *App) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.picsum.HealthCheck(ctx)
}

func (a *App) Close() error {
	return a.store.Close()
}

func fileURI(path string) (string, error) {
	if path == "" {
		return "", profile.ErrEmptyAvatar
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("некорректный путь %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("файл изображения недоступен: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q является директорией", path)
	}

	return "file://" + filepath.ToSlash(abs), nil
}
