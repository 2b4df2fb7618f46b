package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/FyefoxxM/diff-explainer/common"
	"github.com/FyefoxxM/diff-explainer/logger"
	"github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouter is a streaming client for OpenRouter's OpenAI-compatible chat
// completions endpoint. One client issues one request per invocation; there
// is no retry.
type OpenRouter struct {
	apiKey     string
	modelName  string
	apiTimeout int // in seconds
	baseURL    string
	referer    string
	title      string
	client     *http.Client
}

// NewOpenRouter creates a new OpenRouter client
func NewOpenRouter(apiKey string, opts ...Option) (*OpenRouter, error) {
	if apiKey == "" {
		errMsg := "OpenRouter API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	c := &OpenRouter{
		apiKey:     apiKey,
		modelName:  common.DefaultModel,
		apiTimeout: common.DefaultAPITimeout,
		baseURL:    openRouterURL,
	}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				c.modelName = modelName
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				c.apiTimeout = timeout
			}
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok && url != "" {
				c.baseURL = url
			}
		case RefererOption:
			if referer, ok := opt.Value.(string); ok {
				c.referer = referer
			}
		case TitleOption:
			if title, ok := opt.Value.(string); ok {
				c.title = title
			}
		}
	}

	c.client = &http.Client{Timeout: time.Duration(c.apiTimeout) * time.Second}

	logger.Debugf("OpenRouter client initialized with model: %s, timeout: %d seconds",
		c.modelName, c.apiTimeout)

	return c, nil
}

// Model returns the model identifier requests are issued with.
func (c *OpenRouter) Model() string {
	return c.modelName
}

// StreamExplanation posts prompt as a single user message and returns the
// response stream. The caller owns the stream and must Close it on every
// path. Cancelling ctx aborts the request and any in-flight read.
func (c *OpenRouter) StreamExplanation(ctx context.Context, prompt string) (*Stream, error) {
	body := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: true,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	logger.Debugf("Sending streaming request to OpenRouter with model %s", c.modelName)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	return newStream(resp.Body), nil
}

// classifyTransportError maps a transport failure onto the fixed failure
// kinds. Context cancellation passes through untouched so the driver can
// recognize a user interrupt.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	return &ConnectError{Err: err}
}
