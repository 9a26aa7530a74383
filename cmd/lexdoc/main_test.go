package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		m := NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help", func(t *testing.T) {
		m := NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("unknown command", func(t *testing.T) {
		m := NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("serve fails without engine config", func(t *testing.T) {
		m := NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		defer m.Close()

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{
			"serve",
			"--engine-config", filepath.Join(t.TempDir(), "missing.yaml"),
		}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "engine config")
	})
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("LEXDOC_DB", "/tmp/custom.db")
		assert.Equal(t, "/tmp/custom.db", defaultDBPath())
	})
}
