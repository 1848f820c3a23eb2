package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger: slog.Default(),
	}
}

func TestSetupRouter_HealthEndpoint(t *testing.T) {
	t.Parallel()

	router := testApplication().setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSetupRouter_RegistersAPIRoutes(t *testing.T) {
	t.Parallel()

	router := testApplication().setupRouter()

	// A malformed command body is rejected before any service is touched,
	// which proves the route is wired.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/api/command", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown paths fall through to chi's 404.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunMigrations_Validation(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}

	err := runMigrations(cfg, "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")

	err = runMigrations(cfg, "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is empty")
}

func TestSlogGooseLogger(t *testing.T) {
	t.Parallel()

	logger := &slogGooseLogger{}
	logger.Printf("applied %d migrations", 1)
	logger.Fatalf("migration %s failed", "00001")
}
