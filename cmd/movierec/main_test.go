package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/config"
)

func TestLogOutput(t *testing.T) {
	cfg := &config.AppConfig{}
	w, closeLog, err := logOutput(cfg)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
	closeLog()

	cfg.Logging.File = filepath.Join(t.TempDir(), "movierec.log")
	w, closeLog, err = logOutput(cfg)
	require.NoError(t, err)
	_, err = io.WriteString(w, "line\n")
	require.NoError(t, err)
	closeLog()
	data, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	cfg.Logging.File = filepath.Join(t.TempDir(), "missing-dir", "movierec.log")
	w, closeLog, err = logOutput(cfg)
	assert.Error(t, err)
	assert.Equal(t, io.Discard, w)
	closeLog()
}
