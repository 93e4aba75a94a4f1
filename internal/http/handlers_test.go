package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quotientlabs/contfrac/internal/logging"
	"github.com/quotientlabs/contfrac/internal/middleware"
	"github.com/quotientlabs/contfrac/internal/monitoring"
	contfracProvider "github.com/quotientlabs/contfrac/internal/providers/contfrac"
	"github.com/quotientlabs/contfrac/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(contfracProvider.NewProvider(contfracProvider.DefaultLimits())))

	handlers := NewHandlers(registry, &logging.Logger{Logger: zap.NewNop()}, testMetrics)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router
}

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = monitoring.NewMetrics()

func execute(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestListServices(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Services []struct {
			ID string `json:"id"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "contfrac", resp.Services[0].ID)
}

func TestExecuteService(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Expand", func(t *testing.T) {
		w := execute(t, router, gin.H{
			"tool_id": "contfrac.expand",
			"params":  gin.H{"x": []interface{}{649, 200}},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Coefficients []int64 `json:"coefficients"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, []int64{3, 4, 12, 4}, resp.Data.Coefficients)
	})

	t.Run("Domain failure is a 200 with error payload", func(t *testing.T) {
		w := execute(t, router, gin.H{
			"tool_id": "contfrac.evaluate",
			"params":  gin.H{"coefficients": []interface{}{1, 0}},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool    `json:"success"`
			Error   *string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
	})

	t.Run("Unknown service", func(t *testing.T) {
		w := execute(t, router, gin.H{
			"tool_id": "nope.tool",
			"params":  gin.H{},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
