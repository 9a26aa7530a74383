package kobold

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"lexdoc"
)

// Ensure Asker implements lexdoc.Asker at compile time.
var _ lexdoc.Asker = (*Asker)(nil)

// Asker sends generate requests to a KoboldCpp-compatible server. The
// sampling parameters are fixed per process, taken from Config.
type Asker struct {
	cfg    Config
	client *http.Client
	ready  atomic.Bool
}

// NewAsker creates a new Asker from a validated configuration.
func NewAsker(cfg Config) *Asker {
	return &Asker{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
	}
}

// CheckEngine probes the engine once and records readiness. The flag is
// informational; it does not gate subsequent calls.
func (a *Asker) CheckEngine(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return lexdoc.Errorf(lexdoc.EPROCESSING, "inference engine unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return lexdoc.Errorf(lexdoc.EPROCESSING, "inference engine returned HTTP %d", resp.StatusCode)
	}

	a.ready.Store(true)
	return nil
}

// Ready reports whether the startup probe succeeded.
func (a *Asker) Ready() bool {
	return a.ready.Load()
}

// BuildPrompt builds the instruction-formatted prompt: a fixed Polish
// legal-advisor preamble embedding the context text, followed by the
// question, wrapped in an instruction delimiter pair.
func (a *Asker) BuildPrompt(contextText, question string) string {
	system := fmt.Sprintf(
		"Jako pomocny doradca prawny przeanalizuj podany tekst i odpowiedz po polsku na poniższe pytania.\n\nPlik:\n%s\nOdpowiedź na pytanie powinna być udzielona w języku polskim.",
		contextText)
	return fmt.Sprintf("[INST]%s\n\n\n%s[/INST]", system, question)
}

// generateRequest mirrors the KoboldCpp generate API parameter set.
type generateRequest struct {
	Prompt           string  `json:"prompt"`
	MaxNewTokens     int     `json:"max_new_tokens"`
	MaxContextLength int     `json:"max_context_length"`
	MaxLength        int     `json:"max_length"`
	Temperature      float64 `json:"temperature"`
	RepPen           float64 `json:"rep_pen"`
	RepPenRange      int     `json:"rep_pen_range"`
	TFS              float64 `json:"tfs"`
	Typical          float64 `json:"typical"`
	TopA             float64 `json:"top_a"`
	TopK             int     `json:"top_k"`
	TopP             float64 `json:"top_p"`
	MinP             float64 `json:"min_p"`
	Quiet            bool    `json:"quiet"`
}

// generateResponse is the engine's result envelope.
type generateResponse struct {
	Results []generateResult `json:"results"`
}

type generateResult struct {
	Text string `json:"text"`
}

// Ask sends the prompt built from contextText and question and returns the
// cleaned result set serialized as indented JSON. The caller decides final
// shaping.
func (a *Asker) Ask(ctx context.Context, contextText, question string) (string, error) {
	payload := generateRequest{
		Prompt:           a.BuildPrompt(contextText, question),
		MaxNewTokens:     a.cfg.MaxContextLength,
		MaxContextLength: a.cfg.MaxContextLength,
		MaxLength:        a.cfg.MaxLength,
		Temperature:      a.cfg.Temperature,
		RepPen:           a.cfg.RepetitionPenalty,
		RepPenRange:      a.cfg.RepetitionPenaltyRange,
		TFS:              a.cfg.TFS,
		Typical:          a.cfg.Typical,
		TopA:             a.cfg.TopA,
		TopK:             a.cfg.TopK,
		TopP:             a.cfg.TopP,
		MinP:             a.cfg.MinP,
		Quiet:            a.cfg.Quiet,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to encode generate request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.cfg.BaseURL+a.cfg.GeneratePath, bytes.NewReader(body))
	if err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to build generate request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "inference engine unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "inference engine returned HTTP %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "malformed inference response: %v", err)
	}

	for i := range result.Results {
		result.Results[i].Text = removeSpeakerPrefix(result.Results[i].Text)
	}

	cleaned, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to encode inference result: %v", err)
	}

	return string(cleaned), nil
}

// removeSpeakerPrefix strips a leading "speaker name:" artifact from
// generated text. The text is split on the first colon; if one is found
// the remainder is used, otherwise the text is returned unchanged.
func removeSpeakerPrefix(text string) string {
	if _, rest, ok := strings.Cut(text, ":"); ok {
		return strings.TrimSpace(rest)
	}
	return text
}
