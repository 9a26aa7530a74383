// Package kobold provides an implementation of lexdoc.Asker backed by a
// locally hosted KoboldCpp-compatible inference server.
package kobold

import (
	"fmt"
	"os"

	"lexdoc"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file leaves a field unset.
const (
	DefaultGeneratePath = "/api/v1/generate"
	DefaultTimeoutSecs  = 120
)

// Config holds the connection and sampling parameters for the inference
// engine. It is loaded once at startup and immutable for the process
// lifetime.
type Config struct {
	// BaseURL is the locally addressed inference endpoint,
	// e.g. "http://localhost:5001".
	BaseURL string `yaml:"base_url"`

	// GeneratePath is the path of the generate endpoint.
	GeneratePath string `yaml:"generate_path"`

	// MaxContextLength caps the token window the engine considers.
	MaxContextLength int `yaml:"max_context_length"`

	// MaxLength caps the length of the generated output.
	MaxLength int `yaml:"max_length"`

	// Temperature scales token probabilities without removing options.
	// Lower values are more deterministic.
	Temperature float64 `yaml:"temperature"`

	// TopP keeps only tokens within the top cumulative probability P.
	// 1 disables the effect.
	TopP float64 `yaml:"top_p"`

	// TopK limits sampling to the K most likely tokens. 0 disables.
	TopK int `yaml:"top_k"`

	// TopA removes tokens below top_a*m^2 where m is the maximum
	// softmax probability. 0 disables.
	TopA float64 `yaml:"top_a"`

	// MinP removes tokens under a fixed probability floor. 0 disables.
	MinP float64 `yaml:"min_p"`

	// TFS is tail-free sampling, an alternative to TopP based on second
	// order derivatives. 1 disables.
	TFS float64 `yaml:"tfs"`

	// Typical enables typical sampling. 1 disables.
	Typical float64 `yaml:"typical"`

	// RepetitionPenalty penalizes recently used tokens.
	RepetitionPenalty float64 `yaml:"repetition_penalty"`

	// RepetitionPenaltyRange is the token window the penalty applies to.
	RepetitionPenaltyRange int `yaml:"repetition_penalty_range"`

	// Quiet suppresses engine-side prompt logging.
	Quiet bool `yaml:"quiet"`

	// TimeoutSecs bounds each generate request.
	TimeoutSecs int `yaml:"timeout"`
}

// LoadConfig reads and validates the engine configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read engine config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse engine config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GeneratePath == "" {
		c.GeneratePath = DefaultGeneratePath
	}
	if c.TimeoutSecs == 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine base URL required")
	}
	if c.MaxContextLength <= 0 {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine max context length must be positive")
	}
	if c.MaxLength <= 0 {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine max length must be positive")
	}
	if c.Temperature < 0 {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine temperature must not be negative")
	}
	if c.RepetitionPenalty <= 0 {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine repetition penalty must be positive")
	}
	if c.TimeoutSecs <= 0 {
		return lexdoc.Errorf(lexdoc.EINVALID, "engine timeout must be positive")
	}
	return nil
}
