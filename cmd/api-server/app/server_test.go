package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"

	"readings-api-server/cmd/api-server/app/options"
	db "readings-api-server/internal/database"
)

func newTestApp(t *testing.T, mode string) *Server {
	t.Helper()

	conn, err := db.Open(sqlite.Open(filepath.Join(t.TempDir(), "server.db")), logger.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	timeout := 5
	opts := &options.Options{
		Mode:           &mode,
		RequestTimeout: &timeout,
	}
	log := zaptest.NewLogger(t)
	return &Server{
		app:    NewApp(conn, opts, log),
		db:     conn,
		logger: log,
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newTestApp(t, "release")

	resp, err := server.app.Test(httptest.NewRequest("GET", "/nope", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "Route '/nope' does not exist in this API!", body["message"])
}

func TestReadingRoundTrip(t *testing.T) {
	server := newTestApp(t, "release")

	req := httptest.NewRequest("POST", "/devices/abc/readings/",
		strings.NewReader(`{"type": "temperature", "value": 42, "date_created": 1000}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp, err = server.app.Test(httptest.NewRequest("GET", "/devices/abc/readings/max/?type=temperature", nil), -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"value": 42}]`, string(body))
}

func TestDebugModeMountsPprof(t *testing.T) {
	resp, err := newTestApp(t, "debug").app.Test(httptest.NewRequest("GET", "/debug/pprof/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = newTestApp(t, "release").app.Test(httptest.NewRequest("GET", "/debug/pprof/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestShutdownClosesDatabase(t *testing.T) {
	server := newTestApp(t, "release")

	require.NoError(t, server.Shutdown(context.Background()))

	sqlDB, err := server.db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
