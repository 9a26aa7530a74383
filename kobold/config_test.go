package kobold_test

import (
	"os"
	"path/filepath"
	"testing"

	"lexdoc"
	"lexdoc/kobold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads all recognized fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
base_url: http://localhost:5001
max_context_length: 2048
max_length: 512
temperature: 0.7
top_p: 0.9
top_k: 40
top_a: 0
min_p: 0.05
tfs: 1
typical: 1
repetition_penalty: 1.1
repetition_penalty_range: 320
quiet: true
`)

		cfg, err := kobold.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5001", cfg.BaseURL)
		assert.Equal(t, 2048, cfg.MaxContextLength)
		assert.Equal(t, 512, cfg.MaxLength)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 0.9, cfg.TopP)
		assert.Equal(t, 40, cfg.TopK)
		assert.Equal(t, 0.05, cfg.MinP)
		assert.Equal(t, 1.1, cfg.RepetitionPenalty)
		assert.Equal(t, 320, cfg.RepetitionPenaltyRange)
		assert.True(t, cfg.Quiet)
	})

	t.Run("applies defaults for generate path and timeout", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
base_url: http://localhost:5001
max_context_length: 2048
max_length: 512
temperature: 0.7
repetition_penalty: 1.1
`)

		cfg, err := kobold.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, kobold.DefaultGeneratePath, cfg.GeneratePath)
		assert.Equal(t, kobold.DefaultTimeoutSecs, cfg.TimeoutSecs)
	})

	t.Run("rejects missing base URL", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
max_context_length: 2048
max_length: 512
temperature: 0.7
repetition_penalty: 1.1
`)

		_, err := kobold.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(err))
	})

	t.Run("rejects non-positive max context length", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
base_url: http://localhost:5001
max_length: 512
temperature: 0.7
repetition_penalty: 1.1
`)

		_, err := kobold.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(err))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := kobold.LoadConfig("/nonexistent/engine.yaml")
		require.Error(t, err)
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "base_url: [unclosed")

		_, err := kobold.LoadConfig(path)
		require.Error(t, err)
	})
}
