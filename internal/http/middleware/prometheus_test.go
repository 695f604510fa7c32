package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromApp(t *testing.T) (*fiber.App, *PrometheusMiddleware) {
	t.Helper()
	promMiddleware, err := NewPrometheusMiddleware(prometheus.NewRegistry())
	require.NoError(t, err)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	return app, promMiddleware
}

func TestPrometheusMiddleware(t *testing.T) {
	app, pm := newPromApp(t)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/test", "200")))

	_, err = app.Test(httptest.NewRequest("DELETE", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.requestCount.WithLabelValues("DELETE", "/test", "200")))

	// The status label comes from the fiber.Error code, not the pre-error response.
	_, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/error", "400")))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, pm := newPromApp(t)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(pm.requestCount))
	assert.Equal(t, 0, testutil.CollectAndCount(pm.requestDuration))
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	app, pm := newPromApp(t)

	app.Get("/documents/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/documents/123", nil))
	require.NoError(t, err)

	// The route pattern keeps label cardinality bounded.
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/documents/:id", "200")))
	assert.NotZero(t, testutil.CollectAndCount(pm.requestDuration))
}
