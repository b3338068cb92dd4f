package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prepdeck/interview-api/internal/config"
	"google.golang.org/genai"
)

// Invocation failure taxonomy. Both are surfaced to callers as a generic
// failure; the underlying cause is only logged. The caller may retry the
// whole request, the adapter itself never retries.
var (
	ErrModelUnavailable = errors.New("model unavailable")
	ErrModelTimeout     = errors.New("model timeout")
)

// TextGenerator is the single capability the interview flows need from a
// generative backend.
type TextGenerator interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

type GeminiService struct {
	Client         *genai.Client
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		RequestTimeout: 90 * time.Second,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		model,
		genai.Text(prompt),
		genConfig,
	)
	if err != nil {
		return "", classifyInvocationError(timeoutCtx, err)
	}
	if err := s.validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return result.Text(), nil
}

// classifyInvocationError maps a transport/API error onto the invocation
// taxonomy: deadline hits become ErrModelTimeout, everything else
// ErrModelUnavailable.
func classifyInvocationError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("%w: %v", ErrModelTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
