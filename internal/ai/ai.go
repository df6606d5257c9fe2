/*
Package ai builds summarization prompts and sends them to the Gemini API.
*/
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("gemini API key is required")
	ErrEmptyResponse = errors.New("gemini returned an empty response")
)

// Summarizer turns a prompt into a model completion.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

type GeminiSummarizer struct {
	cfg GeminiConfig
}

func NewGeminiSummarizer(cfg GeminiConfig) *GeminiSummarizer {
	return &GeminiSummarizer{cfg: cfg}
}

// Model returns the model name requests are sent to.
func (s *GeminiSummarizer) Model() string {
	return s.cfg.Model
}

// Summarize sends prompt as a single user turn and returns the completion text.
func (s *GeminiSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      s.cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  s.cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: s.cfg.BaseURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
