package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/exp/slog"
)

// Analyzer is the external-model contract consumed by the orchestration
// layer. One call is one model invocation; retry policy belongs to callers.
type Analyzer interface {
	Analyze(ctx context.Context, lyrics, language string) (*Result, error)
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	log     *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		log:     log.With("component", "analysis_client"),
	}
}

func (c *Client) Analyze(ctx context.Context, lyrics, language string) (*Result, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: "You are a helpful assistant that outputs strictly JSON."},
			{Role: "user", Content: buildPrompt(lyrics, language)},
		},
		Stream: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("AI request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.log.Error("AI returned error status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrMalformedResponse, err)
	}

	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrMalformedResponse)
	}

	content := stripFences(apiResp.Choices[0].Message.Content)

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.log.Error("AI JSON parse error", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := validateResult(&result, language); err != nil {
		c.log.Error("AI response failed validation", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &result, nil
}

// stripFences removes a leading ```json or bare ``` fence and a trailing
// ``` fence. Models add them despite the prompt forbidding markdown.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// validateResult enforces the response schema beyond what json.Unmarshal
// checks: contiguous 0-based line indices, non-empty line texts, minimally
// filled vocab entries and native-script readings for Korean and Japanese.
func validateResult(r *Result, language string) error {
	if len(r.Lines) == 0 {
		return fmt.Errorf("no lines")
	}

	sort.Slice(r.Lines, func(i, j int) bool {
		return r.Lines[i].LineIndex < r.Lines[j].LineIndex
	})

	for i, line := range r.Lines {
		if line.LineIndex != i {
			return fmt.Errorf("line indices not contiguous: expected %d, got %d", i, line.LineIndex)
		}
		if strings.TrimSpace(line.OriginalText) == "" {
			return fmt.Errorf("line %d has empty original text", i)
		}
	}

	for i, v := range r.Vocab {
		if strings.TrimSpace(v.Word) == "" || strings.TrimSpace(v.Meaning) == "" {
			return fmt.Errorf("vocab entry %d missing word or meaning", i)
		}
		if !readingScriptOK(language, v.Reading) {
			return fmt.Errorf("vocab entry %d reading %q is not in the native script for %q", i, v.Reading, language)
		}
	}

	return nil
}

// readingScriptOK checks the language-conditional reading contract: Korean
// readings must contain Hangul, Japanese readings must contain kana. Other
// languages and empty readings pass.
func readingScriptOK(language, reading string) bool {
	if reading == "" {
		return true
	}

	switch strings.ToLower(language) {
	case "ko":
		for _, r := range reading {
			if unicode.Is(unicode.Hangul, r) {
				return true
			}
		}
		return false
	case "ja":
		for _, r := range reading {
			if unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
