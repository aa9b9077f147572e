package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gen01-ai/interview-assistant/config"
	"github.com/gen01-ai/interview-assistant/internal/chat"
)

const (
	defaultBaseURL = "https://api.cohere.com/v2"
	defaultModel   = "command-r-plus-08-2024"
	defaultTimeout = 60 * time.Second
)

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls the Cohere v2 chat endpoint with a full conversation and
// returns the assistant's reply. One attempt per call, no retries; the
// HTTP client's timeout bounds how long a request may hang.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  httpDoer
	logger  *zap.SugaredLogger
}

// New constructs a Client initialized from cfg.
func New(cfg config.CohereConfig, logger *zap.SugaredLogger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: base,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ChatOptions tunes a single chat-completion call.
type ChatOptions struct {
	MaxTokens   int
	Temperature float64
}

type chatAPIRequest struct {
	Model       string      `json:"model"`
	Messages    []chat.Turn `json:"messages"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// messageContent accepts both reply shapes the API produces: a plain
// JSON string or an ordered array of typed content blocks.
type messageContent struct {
	text     string
	segments []string
	isText   bool
}

func (m *messageContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*m = messageContent{}
		return nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*m = messageContent{text: text, isText: true}
		return nil
	}

	var blocks []contentBlock
	if err := json.Unmarshal(trimmed, &blocks); err != nil {
		return err
	}

	segments := make([]string, 0, len(blocks))
	for _, block := range blocks {
		segments = append(segments, block.Text)
	}
	*m = messageContent{segments: segments}
	return nil
}

type chatAPIMessage struct {
	Role    string         `json:"role"`
	Content messageContent `json:"content"`
}

type chatAPIResponse struct {
	ID           string         `json:"id"`
	Message      chatAPIMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

// Chat sends the ordered conversation to the chat endpoint and returns
// the assistant reply.
func (c *Client) Chat(ctx context.Context, turns []chat.Turn, opts ChatOptions) (*chat.Reply, error) {
	if c.apiKey == "" {
		return nil, errors.New("cohere api key is not configured")
	}

	payload := chatAPIRequest{
		Model:    c.model,
		Messages: turns,
	}
	if opts.MaxTokens > 0 {
		payload.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		payload.Temperature = opts.Temperature
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal chat payload: %w", err)
	}

	endpoint := c.baseURL + "/chat"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}

	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("call cohere api: %w", err)
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, buildAPIError(response.StatusCode, respBody)
	}

	var apiResp chatAPIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}

	content := apiResp.Message.Content
	if content.isText {
		return &chat.Reply{Text: content.text}, nil
	}
	return &chat.Reply{Segments: content.segments}, nil
}
