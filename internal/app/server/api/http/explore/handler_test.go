package explore

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pocketapp/internal/domain/explore"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Info(ctx context.Context, id int) (explore.Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(explore.Image), args.Error(1)
}

func newAPI(t *testing.T, f explore.Fetcher) humatest.TestAPI {
	t.Helper()

	viewer := explore.NewViewer(f, 10, slog.Default(), explore.WithRand(func(int) int { return 7 }))
	_, api := humatest.New(t)
	NewHandler(viewer, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func TestHandler_ShowMountsOnce(t *testing.T) {
	f := new(MockFetcher)
	f.On("Info", mock.Anything, 7).
		Return(explore.Image{ID: "7", Author: "Alejandro Escamilla", DownloadURL: "https://picsum.photos/id/7/4728/3168"}, nil).
		Once()
	api := newAPI(t, f)

	first := api.Get("/api/v1/explore")
	second := api.Get("/api/v1/explore")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `"state":"ready"`)
	assert.Contains(t, second.Body.String(), `"author":"Alejandro Escamilla"`)
	f.AssertNumberOfCalls(t, "Info", 1)
}

func TestHandler_FetchFailureStaysLoading(t *testing.T) {
	f := new(MockFetcher)
	f.On("Info", mock.Anything, 7).Return(explore.Image{}, errors.New("connection refused")).Once()
	f.On("Info", mock.Anything, 7).Return(explore.Image{ID: "7", DownloadURL: "https://picsum.photos/id/7/10/10"}, nil).Once()
	api := newAPI(t, f)

	resp := api.Get("/api/v1/explore")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"state":"loading"`)
	assert.NotContains(t, resp.Body.String(), `"image"`)

	resp = api.Post("/api/v1/explore/next")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"state":"ready"`)
	f.AssertExpectations(t)
}
