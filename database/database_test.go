package database

import (
	"path/filepath"
	"testing"

	"echoprep/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLiteDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestNewDatabase_EmptyDriverFallsBackToSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := NewDatabase(cfg)
	assert.Error(t, err)
}
