package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAPIKeyMissing is returned when no upstream API key is configured.
	ErrAPIKeyMissing = errors.New("upstream API key not configured")

	// ErrNoChoices is returned when the upstream answered 200 with an
	// empty choice list.
	ErrNoChoices = errors.New("no choices in response")

	// ErrAllModelsFailed is returned when every candidate in a fallback
	// list failed.
	ErrAllModelsFailed = errors.New("all models failed to respond")
)

// UpstreamError is a non-2xx answer from the chat-completions endpoint.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// Message is one chat message. Content is either a plain string or a
// []ContentPart for multimodal requests.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL references an image by URL or data URI.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// SystemMessage builds a system-role text message.
func SystemMessage(text string) Message {
	return Message{Role: "system", Content: text}
}

// UserMessage builds a user-role text message.
func UserMessage(text string) Message {
	return Message{Role: "user", Content: text}
}

// UserImageMessage builds a user-role message pairing an instruction with
// an image.
func UserImageMessage(text, imageURL, detail string) Message {
	return Message{
		Role: "user",
		Content: []ContentPart{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &ImageURL{URL: imageURL, Detail: detail}},
		},
	}
}

// Request is a chat-completions call.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
}

// ModelParams is one candidate in an ordered fallback list.
type ModelParams struct {
	Name        string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// DefaultCandidates is the standard fallback chain for conversational
// features.
func DefaultCandidates() []ModelParams {
	return []ModelParams{
		{Name: "chatgpt-4o-latest", Temperature: 0.3, MaxTokens: 1000},
		{Name: "gpt-3.5-turbo", Temperature: 0.3, MaxTokens: 800},
	}
}

// ActionCandidates is the fallback chain for the action-prompt feature,
// which needs less output room than the conversational chain.
func ActionCandidates() []ModelParams {
	return []ModelParams{
		{Name: "chatgpt-4o-latest", Temperature: 0.3, MaxTokens: 800},
		{Name: "gpt-3.5-turbo", Temperature: 0.3, MaxTokens: 600},
	}
}

// EnhancementCandidates is the fallback chain for the enhancement feature,
// which needs the larger output window of the primary model.
func EnhancementCandidates() []ModelParams {
	return []ModelParams{
		{Name: "chatgpt-4o-latest", Temperature: 0.1, MaxTokens: 2500, TopP: 0.95},
		{Name: "gpt-4o", Temperature: 0.2, MaxTokens: 2000},
	}
}

// Completer is the upstream surface the HTTP layer depends on.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	CompleteWithFallback(ctx context.Context, candidates []ModelParams, messages []Message) (content, model string, err error)
}

// Service calls an OpenAI-compatible chat-completions endpoint.
type Service struct {
	config     *Config
	httpClient *http.Client
}

// NewService creates a client over the given configuration. A nil config
// falls back to the environment singleton.
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = GetConfig()
	}
	return &Service{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete performs one chat-completions call and returns the first
// choice's message content.
func (s *Service) Complete(ctx context.Context, req Request) (string, error) {
	if s.config.APIKey == "" {
		return "", ErrAPIKeyMissing
	}
	if req.Model == "" {
		req.Model = s.config.Model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrNoChoices
	}
	return parsed.Choices[0].Message.Content, nil
}

// CompleteWithFallback tries each candidate in order and returns the first
// successful completion along with the model that produced it. The list is
// fixed; there is no retry of a failed candidate.
func (s *Service) CompleteWithFallback(ctx context.Context, candidates []ModelParams, messages []Message) (string, string, error) {
	var lastErr error
	for _, candidate := range candidates {
		content, err := s.Complete(ctx, Request{
			Model:       candidate.Name,
			Messages:    messages,
			Temperature: candidate.Temperature,
			MaxTokens:   candidate.MaxTokens,
			TopP:        candidate.TopP,
		})
		if err != nil {
			lastErr = err
			continue
		}
		return content, candidate.Name, nil
	}
	if lastErr == nil {
		return "", "", ErrAllModelsFailed
	}
	return "", "", fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr)
}
