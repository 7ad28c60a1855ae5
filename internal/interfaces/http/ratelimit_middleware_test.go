package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apihttp "github.com/jhoicas/consultoria-api/internal/interfaces/http"
)

func TestRateLimiter_BloqueaTrasElBurst(t *testing.T) {
	rl := apihttp.NewRateLimiter(apihttp.RateLimiterConfig{
		Rate:            rate.Limit(1.0 / 60.0), // 1 req/min: el refill no interfiere
		Burst:           3,
		CleanupInterval: time.Minute,
	})
	defer rl.Stop()

	app := fiber.New()
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "petición %d dentro del burst", i+1)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, resp.Body).Code)
}
