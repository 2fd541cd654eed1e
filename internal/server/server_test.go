package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	srv := New(logger, Config{Addr: ":0", Dir: dir, ShutdownTimeout: time.Second})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
}

func TestServesExportedReports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "time-report-test.html"), []byte("<html>r</html>"), 0o644))

	ts := newTestServer(t, dir)

	resp, err := http.Get(ts.URL + "/time-report-test.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<html>r</html>", string(body))
}

func TestMissingFileIs404(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, err := http.Get(ts.URL + "/nope.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
