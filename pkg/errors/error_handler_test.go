package errors

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunucudaki kurulumun aynısı: app-level ErrorHandler + recover middleware
func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: HandleError})
	app.Use(recover.New())
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleError_FetchErrorClientClass(t *testing.T) {
	app := newTestApp()
	app.Get("/stale", func(c *fiber.Ctx) error {
		return ErrFormatNotFound(nil)
	})

	status, body := doRequest(t, app, "/stale")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Requested format is no longer available for this video.", body["error"])
}

func TestHandleError_FetchErrorServerClass(t *testing.T) {
	app := newTestApp()
	app.Get("/lost", func(c *fiber.Ctx) error {
		return ErrOutputMissing(nil)
	})

	status, body := doRequest(t, app, "/lost")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
}

func TestHandleError_PanicKeepsEnvelope(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected state")
	})

	status, body := doRequest(t, app, "/boom")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An unexpected server error occurred.", body["error"])
}

func TestHandleError_FiberErrorKeepsStatus(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, "/no-such-route")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}
