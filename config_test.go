package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/landmark-routing/graph"
	"github.com/ttpr0/landmark-routing/routing"
	"github.com/ttpr0/landmark-routing/store"
)

func _ClearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "UPLOAD_FOLDER", "STATIC_DIR", "ALLOWED_ORIGINS", "MAX_UPLOAD_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestReadConfigDefaults(t *testing.T) {
	_ClearEnv(t)

	config, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, "5000", config.Server.Port)
	assert.Equal(t, int64(16*1024*1024), config.Server.MaxUploadBytes)
	assert.Equal(t, INFO, config.Logging.Level)
}

func TestReadConfigFileAndEnv(t *testing.T) {
	_ClearEnv(t)
	file := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: "8000"
  allowed-origins: ["http://localhost:3000"]
datasets:
  upload-folder: data
  cache: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	config, err := ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "8000", config.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, config.Server.AllowedOrigins)
	assert.Equal(t, "data", config.Datasets.UploadFolder)
	assert.True(t, config.Datasets.Cache)
	assert.False(t, config.Datasets.Watch)
	assert.Equal(t, DEBUG, config.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, int64(16*1024*1024), config.Server.MaxUploadBytes)

	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_FOLDER", "/tmp/uploads")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("LOG_LEVEL", "warn")
	config, err = ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "9000", config.Server.Port)
	assert.Equal(t, "/tmp/uploads", config.Datasets.UploadFolder)
	assert.Equal(t, int64(1024), config.Server.MaxUploadBytes)
	assert.Equal(t, WARN, config.Logging.Level)
}

func TestReadConfigErrors(t *testing.T) {
	_ClearEnv(t)
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("logging:\n  level: loud\n"), 0o644))
	_, err := ReadConfig(file)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(file, []byte("server: ["), 0o644))
	_, err = ReadConfig(file)
	assert.Error(t, err)

	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestErrorResult(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		outcome string
	}{
		{fmt.Errorf("%w: campus.geojson", store.ErrDatasetNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: ..", store.ErrInvalidName), http.StatusBadRequest, "bad_request"},
		{&UnknownLandmarkError{Start: "a", End: "z"}, http.StatusBadRequest, "bad_request"},
		{routing.ErrNoRoute, http.StatusNotFound, "not_found"},
		{fmt.Errorf("parse: %w", graph.NewDataFormatError(3, "missing name", nil)), http.StatusUnprocessableEntity, "invalid_dataset"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "error"},
	}
	for _, c := range cases {
		res := ErrorResult(c.err)
		assert.Equal(t, c.status, res.status, c.err.Error())
		assert.Equal(t, c.outcome, Outcome(res), c.err.Error())
	}
	assert.Equal(t, "ok", Outcome(OK(1)))
}
