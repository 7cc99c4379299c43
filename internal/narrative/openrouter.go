package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"rainythoughts/internal/content"
	"rainythoughts/internal/storage"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouter generates flavor text through the OpenRouter chat API. Any
// failure (missing key, timeout, malformed response) falls back to the
// static pools, so a dead network never blocks a battle.
type OpenRouter struct {
	apiKey     string
	model      string
	httpClient *http.Client
	journal    *storage.JournalRepo
	static     *Static
	log        *zap.Logger
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Journal *storage.JournalRepo
	Logger  *zap.Logger
}

func NewOpenRouter(cfg OpenRouterConfig) *OpenRouter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenRouter{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		journal:    cfg.Journal,
		static:     NewStatic(),
		log:        log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

func (c *OpenRouter) Generate(ctx context.Context, ch *content.Character, kind Kind, defeats int) (string, error) {
	text, err := c.generate(ctx, ch, kind, defeats)
	if err == nil {
		return text, nil
	}
	c.log.Warn("narrative generation failed, using static pool",
		zap.String("character", ch.ID),
		zap.String("kind", string(kind)),
		zap.Error(err))
	return c.static.Generate(ctx, ch, kind, defeats)
}

func (c *OpenRouter) generate(ctx context.Context, ch *content.Character, kind Kind, defeats int) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	var problems []string
	if ch.Category == content.CategoryDemon && c.journal != nil {
		// Demons read only the "problems" category; the rest of the
		// journal stays private.
		if entries, err := c.journal.Entries(ctx, storage.JournalProblems); err == nil {
			problems = entries
		}
	}

	system, user := buildPrompt(ch, kind, defeats, problems)
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.9,
		MaxTokens:   256,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	text = strings.Trim(text, `"`)
	if text == "" {
		return "", fmt.Errorf("blank completion")
	}
	return text, nil
}

// NewGenerator picks the right implementation for the configuration:
// OpenRouter when a key is present, static pools otherwise.
func NewGenerator(cfg OpenRouterConfig) Generator {
	if cfg.APIKey == "" {
		return NewStatic()
	}
	return NewOpenRouter(cfg)
}
