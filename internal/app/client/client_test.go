package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pocketapp/internal/app/client/config"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) Open(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Info(ctx context.Context, id int) (explore.Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(explore.Image), args.Error(1)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Env:         "local",
		ConfigDir:   dir,
		StoreDriver: "sqlite",
		DataPath:    filepath.Join(dir, "profile.db"),
		PicsumURL:   "http://127.0.0.1:1",
		ImageMaxID:  10,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestApp_ProfilePersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := New(ctx, cfg, slog.Default())
	require.NoError(t, err)

	_, err = app.Profile().UpdateDraft(profile.Patch{Name: ptr("Radha"), Github: ptr("octocat")})
	require.NoError(t, err)
	_, err = app.Profile().Save(ctx)
	require.NoError(t, err)
	require.NoError(t, app.Close())

	app, err = New(ctx, cfg, slog.Default())
	require.NoError(t, err)
	defer app.Close()

	view := app.Profile().State()
	assert.Equal(t, profile.ModeViewing, view.Mode)
	assert.Equal(t, "Radha", *view.Committed.Name)
	assert.Equal(t, "octocat", *view.Committed.Github)
}

func TestApp_UnknownDriverFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "cassandra"

	_, err := New(context.Background(), cfg, slog.Default())

	assert.Error(t, err)
}

func TestApp_OpenSocialUsesOpener(t *testing.T) {
	ctx := context.Background()
	opener := new(MockOpener)
	opener.On("Open", "https://github.com/octocat").Return(errors.New("no browser"))

	app, err := New(ctx, testConfig(t), slog.Default(), WithOpener(opener))
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Profile().UpdateDraft(profile.Patch{Name: ptr("Radha"), Github: ptr("octocat")})
	require.NoError(t, err)
	_, err = app.Profile().Save(ctx)
	require.NoError(t, err)

	url, err := app.Profile().OpenSocial(profile.ProviderGithub)

	assert.ErrorIs(t, err, profile.ErrLinkOpen)
	assert.Equal(t, "https://github.com/octocat", url)
	opener.AssertExpectations(t)
}

func TestApp_SetAvatarFromFile(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	app, err := New(ctx, cfg, slog.Default())
	require.NoError(t, err)
	defer app.Close()

	img := filepath.Join(cfg.ConfigDir, "me.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0o600))

	view, err := app.SetAvatarFromFile(ctx, img)
	require.NoError(t, err)
	require.NotNil(t, view.Committed.Avatar)
	assert.True(t, strings.HasPrefix(*view.Committed.Avatar, "file://"))
	assert.True(t, strings.HasSuffix(*view.Committed.Avatar, "/me.png"))

	_, err = app.SetAvatarFromFile(ctx, filepath.Join(cfg.ConfigDir, "missing.png"))
	assert.Error(t, err)

	_, err = app.SetAvatarFromFile(ctx, "")
	assert.ErrorIs(t, err, profile.ErrEmptyAvatar)
}

func TestApp_ExploreUsesFetcher(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockFetcher)
	fetcher.On("Info", mock.Anything, mock.AnythingOfType("int")).
		Return(explore.Image{ID: "3", Author: "Alejandro Escamilla", DownloadURL: "https://picsum.photos/id/3/10/10"}, nil)

	app, err := New(ctx, testConfig(t), slog.Default(), WithFetcher(fetcher))
	require.NoError(t, err)
	defer app.Close()

	snap, err := app.Explore().Mount(ctx)

	require.NoError(t, err)
	assert.Equal(t, explore.StateReady, snap.State)
	assert.Equal(t, "3", snap.Image.ID)
}

func TestApp_CheckConnectionFails(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), slog.Default())
	require.NoError(t, err)
	defer app.Close()

	assert.Error(t, app.CheckConnection(context.Background()))
}
