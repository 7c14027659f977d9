package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pocketapp/internal/app/server/api/http/middleware/requestid"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		Pong bool `json:"pong"`
	}
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		fail      bool
		wantLevel string
		wantCode  int
	}{
		{name: "success", wantLevel: "INFO", wantCode: http.StatusOK},
		{name: "server error", fail: true, wantLevel: "ERROR", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			_, api := humatest.New(t)
			huma.Register(api, huma.Operation{
				OperationID: "ping",
				Method:      http.MethodGet,
				Path:        "/ping",
				Middlewares: huma.Middlewares{requestid.Middleware(), New(log).Middleware()},
			}, func(_ context.Context, _ *struct{}) (*pingOutput, error) {
				if tt.fail {
					return nil, huma.Error500InternalServerError("boom")
				}
				return &pingOutput{}, nil
			})

			// Act
			resp := api.Get("/ping", requestid.Header+": req-1")

			// Assert
			require.Equal(t, tt.wantCode, resp.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "ping", entry["operation"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, "/ping", entry["path"])
			assert.Equal(t, float64(tt.wantCode), entry["status"])
		})
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusNoContent))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusServiceUnavailable))
}
