package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"
)

var ErrMissingKey = errors.New("tutor: missing API key")

// Gemini generates text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// FromKey builds a tutor for apiKey. An empty key yields a tutor that
// always answers FallbackMissingKey.
func FromKey(ctx context.Context, apiKey, model string, logger *log.Logger, timeout time.Duration) (*Tutor, error) {
	if apiKey == "" {
		return New(nil, logger, timeout), nil
	}
	g, err := NewGemini(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	return New(g, logger, timeout), nil
}
