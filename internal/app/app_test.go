//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/segment-insights/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeApp(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	router, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, router)

	t.Run("serves liveness without the engine", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers the API routes", func(t *testing.T) {
		routes := make(map[string]bool)
		for _, route := range router.Routes() {
			routes[route.Path] = true
		}

		for _, path := range []string{
			"/api/health",
			"/api/kpis",
			"/api/revenue_by_segment",
			"/api/revenue_share_by_segment",
			"/api/avg_order_value_by_segment",
			"/api/orders_count_by_segment",
			"/api/monthly_revenue_by_segment",
			"/api/top_customers",
			"/api/dashboard",
		} {
			assert.True(t, routes[path], "missing route %s", path)
		}
	})
}

func TestNewServer(t *testing.T) {
	router := gin.New()

	t.Run("applies defaults", func(t *testing.T) {
		server := NewServer(router, "8080")
		assert.Equal(t, ":8080", server.httpServer.Addr)
		assert.Equal(t, 10*time.Second, server.shutdownTimeout)
	})

	t.Run("applies shutdown timeout option", func(t *testing.T) {
		server := NewServer(router, "8080", WithShutdownTimeout(time.Second))
		assert.Equal(t, time.Second, server.shutdownTimeout)
	})
}

func TestServer_Shutdown(t *testing.T) {
	server := NewServer(gin.New(), "0", WithShutdownTimeout(time.Second))
	assert.NoError(t, server.Shutdown())
}
