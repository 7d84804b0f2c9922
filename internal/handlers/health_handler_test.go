// internal/handlers/health_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/cdi-tracker/internal/handlers"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		stopRedis      bool
		expectedStatus int
		expected       string
	}{
		{name: "healthy", expectedStatus: http.StatusOK, expected: "healthy"},
		{name: "database_down", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expected: "degraded"},
		{name: "redis_down", stopRedis: true, expectedStatus: http.StatusServiceUnavailable, expected: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			database := mocks.NewMockDatabase(ctrl)
			database.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
			if tt.pingErr == nil {
				database.EXPECT().Health(gomock.Any()).Return(map[string]any{"total_conns": 4})
			}

			r := helpers.SetupTestRedis(t)
			if tt.stopRedis {
				r.Server.Close()
			}

			hs := &handlers.Handlers{
				Health: handlers.NewHealthHandler(database, r.Client, nil, helpers.LoadTestConfig(), helpers.TestLogger()),
			}
			w := serve(t, hs, http.MethodGet, "/health", nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var status handlers.HealthStatus
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.expected, status.Status)
			assert.Equal(t, "test", status.Environment)
			assert.NotContains(t, status.Services, "asynq")
		})
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	database := mocks.NewMockDatabase(ctrl)
	r := helpers.SetupTestRedis(t)
	hs := &handlers.Handlers{
		Health: handlers.NewHealthHandler(database, r.Client, nil, helpers.LoadTestConfig(), helpers.TestLogger()),
	}

	database.EXPECT().Ping(gomock.Any()).Return(nil)
	w := serve(t, hs, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)

	database.EXPECT().Ping(gomock.Any()).Return(errors.New("timeout"))
	w = serve(t, hs, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"not ready"`)
}
