package feed

import (
	"context"
	"net/http"
	"testing"

	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/feed"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Items() []feed.Item {
	args := m.Called()
	return args.Get(0).([]feed.Item)
}

func (m *MockService) Get(id string) (feed.Item, error) {
	args := m.Called(id)
	return args.Get(0).(feed.Item), args.Error(1)
}

func (m *MockService) ToggleLike(id string) (feed.Item, error) {
	args := m.Called(id)
	return args.Get(0).(feed.Item), args.Error(1)
}

func (m *MockService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newAPI(t *testing.T, svc feed.Servicer) (*metrics.Metrics, humatest.TestAPI) {
	t.Helper()

	m := metrics.New(prometheus.NewRegistry())
	_, api := humatest.New(t)
	NewHandler(svc, m, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return m, api
}

func TestHandler_List(t *testing.T) {
	_, api := newAPI(t, feed.New(0, slog.Default()))

	resp := api.Get("/api/v1/feed")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"1"`)
	assert.Contains(t, resp.Body.String(), `"liked":false`)
}

func TestHandler_Like(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantLiked  string
	}{
		{name: "existing post", id: "1", wantStatus: http.StatusOK, wantLiked: `"liked":true`},
		{name: "unknown post", id: "404", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m, api := newAPI(t, feed.New(0, slog.Default()))

			// Act
			resp := api.Post("/api/v1/feed/" + tt.id + "/like")

			// Assert
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantLiked != "" {
				assert.Contains(t, resp.Body.String(), tt.wantLiked)
				assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedLikes.WithLabelValues("true")))
			}
		})
	}
}

func TestHandler_LikeTwiceRestoresCount(t *testing.T) {
	svc := feed.New(0, slog.Default())
	_, api := newAPI(t, svc)
	base, err := svc.Get("2")
	require.NoError(t, err)

	api.Post("/api/v1/feed/2/like")
	api.Post("/api/v1/feed/2/like")

	item, err := svc.Get("2")
	require.NoError(t, err)
	assert.False(t, item.Liked)
	assert.Equal(t, base.DisplayLikes, item.DisplayLikes)
}

func TestHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Refresh", mock.Anything).Return(nil)
		svc.On("Items").Return([]feed.Item{})
		m, api := newAPI(t, svc)

		resp := api.Post("/api/v1/feed/refresh")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedRefreshes))
		svc.AssertExpectations(t)
	})

	t.Run("interrupted", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Refresh", mock.Anything).Return(context.Canceled)
		m, api := newAPI(t, svc)

		resp := api.Post("/api/v1/feed/refresh")

		assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
		assert.Equal(t, 0.0, testutil.ToFloat64(m.FeedRefreshes))
		svc.AssertNotCalled(t, "Items")
	})
}
