package kobold_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexdoc"
	"lexdoc/kobold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) kobold.Config {
	return kobold.Config{
		BaseURL:                baseURL,
		GeneratePath:           kobold.DefaultGeneratePath,
		MaxContextLength:       2048,
		MaxLength:              512,
		Temperature:            0.7,
		TopP:                   0.9,
		TopK:                   40,
		TFS:                    1,
		Typical:                1,
		RepetitionPenalty:      1.1,
		RepetitionPenaltyRange: 320,
		TimeoutSecs:            5,
	}
}

func TestAsker_BuildPrompt(t *testing.T) {
	t.Parallel()

	asker := kobold.NewAsker(testConfig("http://localhost:5001"))

	prompt := asker.BuildPrompt("tekst", "co to jest?")

	assert.True(t, len(prompt) > 0)
	assert.Contains(t, prompt, "[INST]")
	assert.Contains(t, prompt, "[/INST]")
	assert.Contains(t, prompt, "Plik:\ntekst")
	assert.Contains(t, prompt, "co to jest?")
	assert.Contains(t, prompt, "doradca prawny")
}

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("sends the configured parameter set", func(t *testing.T) {
		t.Parallel()

		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, kobold.DefaultGeneratePath, r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"results":[{"text":"odpowiedź"}]}`))
		}))
		defer server.Close()

		asker := kobold.NewAsker(testConfig(server.URL))

		_, err := asker.Ask(context.Background(), "tekst", "co to jest?")
		require.NoError(t, err)

		assert.Equal(t, float64(2048), received["max_context_length"])
		assert.Equal(t, float64(512), received["max_length"])
		assert.Equal(t, 0.7, received["temperature"])
		assert.Equal(t, 1.1, received["rep_pen"])
		assert.Equal(t, float64(320), received["rep_pen_range"])
		assert.Equal(t, 0.9, received["top_p"])
		assert.Equal(t, float64(40), received["top_k"])
		assert.Contains(t, received["prompt"], "co to jest?")
	})

	t.Run("strips speaker prefixes from results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[{"text":"Doradca: to jest ustawa"},{"text":"bez prefiksu"}]}`))
		}))
		defer server.Close()

		asker := kobold.NewAsker(testConfig(server.URL))

		answer, err := asker.Ask(context.Background(), "tekst", "co to jest?")
		require.NoError(t, err)

		var decoded struct {
			Results []struct {
				Text string `json:"text"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal([]byte(answer), &decoded))
		require.Len(t, decoded.Results, 2)
		assert.Equal(t, "to jest ustawa", decoded.Results[0].Text)
		assert.Equal(t, "bez prefiksu", decoded.Results[1].Text)
	})

	t.Run("returns EPROCESSING on engine error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		asker := kobold.NewAsker(testConfig(server.URL))

		_, err := asker.Ask(context.Background(), "tekst", "co to jest?")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})

	t.Run("returns EPROCESSING on malformed response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		asker := kobold.NewAsker(testConfig(server.URL))

		_, err := asker.Ask(context.Background(), "tekst", "co to jest?")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})

	t.Run("returns EPROCESSING when engine is unreachable", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig("http://127.0.0.1:1")
		asker := kobold.NewAsker(cfg)

		_, err := asker.Ask(context.Background(), "tekst", "co to jest?")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})
}

func TestAsker_CheckEngine(t *testing.T) {
	t.Parallel()

	t.Run("marks engine ready on success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		asker := kobold.NewAsker(testConfig(server.URL))
		assert.False(t, asker.Ready())

		require.NoError(t, asker.CheckEngine(context.Background()))
		assert.True(t, asker.Ready())
	})

	t.Run("leaves engine unready on failure", func(t *testing.T) {
		t.Parallel()

		asker := kobold.NewAsker(testConfig("http://127.0.0.1:1"))

		err := asker.CheckEngine(context.Background())
		require.Error(t, err)
		assert.False(t, asker.Ready())
	})
}
