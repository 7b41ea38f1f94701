package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/pkg/logger"
)

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "events")
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestInitializeApp_FileStorage(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(data,
		[]byte(`[{"Id":1,"Title":"Some random book","Author":"Jacob Wal","Year":2013}]`), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
server:
  mode: test
files:
  book_json: `+data+`
metrics:
  enabled: false
swagger:
  enabled: false
`), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	app, cleanup, err := InitializeApp(cfg, logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	app.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/BookCollection/books/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Id":1,"Title":"Some random book","Author":"Jacob Wal","Year":2013}`, w.Body.String())
}

func TestInitializeApp_BrokenStore(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(data, []byte(`{broken`), 0o644))

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "test"},
		Storage: config.StorageConfig{Driver: config.DriverFile},
		Files:   config.FilesConfig{BookJSON: data},
	}

	_, _, err := InitializeApp(cfg, logger.NewNop())
	assert.Error(t, err)
}
