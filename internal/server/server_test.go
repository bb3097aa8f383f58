package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/bootstrap"
	"github.com/yigit/studentrecords/internal/config"
)

func newTestServer(t *testing.T, origins string) *Server {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Database.Driver = config.DriverMemory
	cfg.CORS.AllowedOrigins = origins

	storage, err := bootstrap.SetupDatabase(cfg, zerolog.Nop())
	require.NoError(t, err)

	return &Server{
		config:  cfg,
		router:  bootstrap.SetupRouter(cfg, bootstrap.BuildDependencies(storage.Repos, zerolog.Nop()), zerolog.Nop()),
		storage: storage,
		logger:  zerolog.Nop(),
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestHandler_CORSRejectsUnknownOrigin(t *testing.T) {
	srv := newTestServer(t, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestShutdown_WithoutListener(t *testing.T) {
	srv := newTestServer(t, "*")
	assert.NoError(t, srv.Shutdown(t.Context()))
}
