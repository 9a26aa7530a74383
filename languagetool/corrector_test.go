package languagetool_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexdoc"
	"lexdoc/languagetool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrector_Correct(t *testing.T) {
	t.Parallel()

	t.Run("applies replacements from the checker", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v2/check", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "Art 1 Ustawa", r.PostForm.Get("text"))
			assert.Equal(t, "pl-PL", r.PostForm.Get("language"))

			w.Header().Set("Content-Type", "application/json")
			// "Art" -> "Art." at offset 0, length 3.
			_, _ = w.Write([]byte(`{"matches":[{"offset":0,"length":3,"replacements":[{"value":"Art."}]}]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		result, err := corrector.Correct(context.Background(), "Art 1 Ustawa")
		require.NoError(t, err)
		assert.Equal(t, "Art 1 Ustawa", result.Original)
		assert.Equal(t, "Art. 1 Ustawa", result.Corrected)
	})

	t.Run("applies multiple replacements without shifting offsets", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"matches":[
				{"offset":0,"length":3,"replacements":[{"value":"Art."}]},
				{"offset":6,"length":6,"replacements":[{"value":"Ustawa."}]}
			]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		result, err := corrector.Correct(context.Background(), "Art 1 Ustawa")
		require.NoError(t, err)
		assert.Equal(t, "Art. 1 Ustawa.", result.Corrected)
	})

	t.Run("handles character offsets in multibyte text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			// "artykuł" starts at character 3 in "ww artykuł".
			_, _ = w.Write([]byte(`{"matches":[{"offset":3,"length":7,"replacements":[{"value":"Artykuł"}]}]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		result, err := corrector.Correct(context.Background(), "ww artykuł")
		require.NoError(t, err)
		assert.Equal(t, "ww Artykuł", result.Corrected)
	})

	t.Run("normalizes line endings in the original text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"matches":[]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		result, err := corrector.Correct(context.Background(), "a\r\nb\rc")
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc", result.Original)
		assert.Equal(t, "a\nb\nc", result.Corrected)
	})

	t.Run("keeps text unchanged when a match has no replacements", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"matches":[{"offset":0,"length":3,"replacements":[]}]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		result, err := corrector.Correct(context.Background(), "Art 1")
		require.NoError(t, err)
		assert.Equal(t, "Art 1", result.Corrected)
	})

	t.Run("returns EPROCESSING on server error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		_, err := corrector.Correct(context.Background(), "Art 1")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})

	t.Run("returns EPROCESSING on malformed response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		_, err := corrector.Correct(context.Background(), "Art 1")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})

	t.Run("returns EPROCESSING on out-of-range match", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"matches":[{"offset":100,"length":5,"replacements":[{"value":"x"}]}]}`))
		}))
		defer server.Close()

		corrector := languagetool.NewCorrector(server.URL)

		_, err := corrector.Correct(context.Background(), "short")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EPROCESSING, lexdoc.ErrorCode(err))
	})
}
