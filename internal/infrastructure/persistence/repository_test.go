package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/jsonfile"
)

func TestNewBookRepository_File(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverFile},
		Files:   config.FilesConfig{BookJSON: filepath.Join(t.TempDir(), "books.json")},
	}

	repo, cleanup, err := NewBookRepository(cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	fileRepo, ok := repo.(*jsonfile.BookRepository)
	require.True(t, ok)
	assert.Equal(t, cfg.Files.BookJSON, fileRepo.Path())
}

func TestNewBookRepository_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}

	_, _, err := NewBookRepository(cfg, zap.NewNop())
	assert.Error(t, err)
}
