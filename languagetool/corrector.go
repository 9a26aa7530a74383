// Package languagetool provides a grammar correction implementation of
// lexdoc.Corrector backed by a LanguageTool HTTP server.
package languagetool

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"lexdoc"
)

// DefaultTimeout is the default timeout for correction requests. Long
// documents can take a while to check.
const DefaultTimeout = 60 * time.Second

// DefaultLanguage is the language code sent to the checker.
const DefaultLanguage = "pl-PL"

// Ensure Corrector implements lexdoc.Corrector at compile time.
var _ lexdoc.Corrector = (*Corrector)(nil)

// Corrector applies grammar and spelling correction through the
// LanguageTool /v2/check endpoint.
type Corrector struct {
	baseURL  string
	language string
	client   *http.Client
	timeout  time.Duration
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithLanguage sets the checker language. Defaults to DefaultLanguage.
func WithLanguage(lang string) Option {
	return func(c *Corrector) {
		c.language = lang
	}
}

// WithTimeout sets the timeout for check requests.
func WithTimeout(d time.Duration) Option {
	return func(c *Corrector) {
		c.timeout = d
	}
}

// NewCorrector creates a new Corrector talking to the LanguageTool server
// at baseURL.
func NewCorrector(baseURL string, opts ...Option) *Corrector {
	c := &Corrector{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: DefaultLanguage,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// checkResponse is the subset of the LanguageTool response we consume.
type checkResponse struct {
	Matches []match `json:"matches"`
}

type match struct {
	Offset       int `json:"offset"`
	Length       int `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
}

// Correct normalizes line endings in the input, runs it through the
// checker and applies the top replacement of every match.
func (c *Corrector) Correct(ctx context.Context, text string) (*lexdoc.Correction, error) {
	original := normalizeNewlines(text)

	form := url.Values{
		"text":     {original},
		"language": {c.language},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "failed to build correction request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "correction service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "correction service returned HTTP %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var check checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "malformed correction response: %v", err)
	}

	corrected, err := applyMatches(original, check.Matches)
	if err != nil {
		return nil, err
	}

	return &lexdoc.Correction{
		Original:  original,
		Corrected: corrected,
	}, nil
}

// normalizeNewlines rewrites \r\n and bare \r to \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// applyMatches applies the first replacement of every match to text.
// Offsets and lengths are character-based, so the text is edited as runes,
// back to front to keep earlier offsets valid.
func applyMatches(text string, matches []match) (string, error) {
	runes := []rune(text)

	sorted := make([]match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset > sorted[j].Offset })

	for _, m := range sorted {
		if len(m.Replacements) == 0 {
			continue
		}
		if m.Offset < 0 || m.Length < 0 || m.Offset+m.Length > len(runes) {
			return "", lexdoc.Errorf(lexdoc.EPROCESSING,
				"malformed correction response: match out of range (offset=%d length=%d)", m.Offset, m.Length)
		}
		replacement := []rune(m.Replacements[0].Value)
		out := make([]rune, 0, len(runes)-m.Length+len(replacement))
		out = append(out, runes[:m.Offset]...)
		out = append(out, replacement...)
		out = append(out, runes[m.Offset+m.Length:]...)
		runes = out
	}

	return string(runes), nil
}
