package cmd_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shift/cmd"
	httpin "shift/internal/adapters/in/http"
	"shift/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "shift-test", logger.LevelInfo)
	app := cmd.NewCompositionRoot(cmd.Config{HTTPPort: "0"}, log)

	t.Run("handlers_share_one_store", func(t *testing.T) {
		e, err := httpin.NewRouter(app.CreateServer(), app.Logger())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/drivers", strings.NewReader(`{"name":"Alice"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		// A second server from the same root sees the registration.
		other, err := httpin.NewRouter(app.CreateServer(), app.Logger())
		require.NoError(t, err)
		rec = httptest.NewRecorder()
		other.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/drivers/Alice", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Logged out"`)
	})

	t.Run("job_manager_uses_default_schedule", func(t *testing.T) {
		jm := app.CreateJobManager()

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
