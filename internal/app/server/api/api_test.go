package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pocketapp/internal/app/server/api/http/middleware/requestid"
	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/feed"
	"pocketapp/internal/domain/profile"
	"pocketapp/internal/infrastructure/storage"
	"pocketapp/internal/infrastructure/storage/memory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type stubFetcher struct{}

func (stubFetcher) Info(_ context.Context, id int) (explore.Image, error) {
	return explore.Image{ID: "10", Author: "Paul Jarvis", DownloadURL: "https://picsum.photos/id/10/2500/1667"}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slog.Default()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	repo := storage.NewProfileRepository(memory.New(), log)
	services := Services{
		Profile: profile.NewService(repo, nil, log),
		Feed:    feed.New(0, log),
		Explore: explore.NewViewer(m.InstrumentFetcher(stubFetcher{}), 0, log),
	}

	srv := httptest.NewServer(New(services, m, reg, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_ProfileFlowAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/profile/save", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	resp, err = http.Get(srv.URL + "/api/v1/explore")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, `pocketapp_profile_saves_total{result="error"} 1`)
	assert.Contains(t, body, `pocketapp_explore_image_fetches_total{result="ok"} 1`)
}

func TestNew_RequestIDPassthrough(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set(requestid.Header, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(requestid.Header))
}

func TestNew_RegistersAllOperations(t *testing.T) {
	log := slog.Default()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	services := Services{
		Profile: profile.NewService(storage.NewProfileRepository(memory.New(), log), nil, log),
		Feed:    feed.New(0, log),
		Explore: explore.NewViewer(stubFetcher{}, 0, log),
	}

	require.NotPanics(t, func() {
		New(services, m, reg, log)
	})
}
