// Package tutor asks a language model to explain the current induction
// readings in plain words.
//
// Explain never fails: a missing credential, a transport error and an
// empty answer each map to a fixed fallback sentence, so callers can show
// the result directly.
package tutor

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	FallbackMissingKey  = "API Key is missing. Please configure the environment to use the AI tutor."
	FallbackUnavailable = "The AI tutor is currently unavailable. Please check your connection or API key."
	FallbackEmpty       = "I couldn't generate an explanation at this moment."
)

// Request is the moment to explain.
type Request struct {
	EMF      float64 `json:"emf"`
	Flux     float64 `json:"flux"`
	Velocity float64 `json:"velocity"`
	Turns    int     `json:"turns"`
}

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Tutor struct {
	gen     Generator
	logger  *log.Logger
	timeout time.Duration
}

// New returns a tutor backed by gen. A nil gen means no credential was
// configured.
func New(gen Generator, logger *log.Logger, timeout time.Duration) *Tutor {
	if logger == nil {
		logger = log.Default()
	}
	return &Tutor{gen: gen, logger: logger, timeout: timeout}
}

func (t *Tutor) Available() bool { return t.gen != nil }

func (t *Tutor) Explain(ctx context.Context, req Request) string {
	if t.gen == nil {
		return FallbackMissingKey
	}

	prompt, err := Prompt(req)
	if err != nil {
		t.logger.Error("tutor prompt", "err", err)
		return FallbackUnavailable
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		t.logger.Warn("tutor unavailable", "err", err, "elapsed", time.Since(start))
		return FallbackUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		t.logger.Warn("tutor returned no text")
		return FallbackEmpty
	}
	t.logger.Debug("tutor answered", "chars", len(text), "elapsed", time.Since(start))
	return text
}
