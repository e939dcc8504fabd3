package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mindhaven/mindhaven-backend/internal/config"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
)

// Client relays one user message to the completion provider and returns the
// assistant's reply text.
type Client interface {
	Relay(ctx context.Context, message string) (string, error)
}

// systemPrompt is sent with every relayed message; the relay keeps no
// conversation state.
const systemPrompt = "You are a warm, supportive companion for a mental-health community. " +
	"Listen, validate feelings, and suggest gentle next steps. You are not a therapist " +
	"and you never diagnose; encourage reaching out to a professional when things sound serious."

// fallbackReply is returned when the provider answers 200 with an empty or
// unexpected choice shape.
const fallbackReply = "I'm here for you. Could you tell me a little more about how you're feeling?"

type client struct {
	log        *logging.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds the provider client from config. The API key is the only
// required field. No client-side timeout is set; the call rides on the
// transport's own defaults.
func NewClient(cfg config.Config, log *logging.Logger) (Client, error) {
	if strings.TrimSpace(cfg.ChatAPIKey) == "" {
		return nil, fmt.Errorf("missing CHAT_API_KEY")
	}
	return &client{
		log:        log,
		baseURL:    strings.TrimRight(cfg.ChatBaseURL, "/"),
		apiKey:     cfg.ChatAPIKey,
		model:      cfg.ChatModel,
		httpClient: &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *client) Relay(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		c.log.Warn("completion returned no usable choice", "model", c.model)
		return fallbackReply, nil
	}
	return out.Choices[0].Message.Content, nil
}

// Disabled stands in when no API key is configured; every relay fails and
// surfaces as the generic upstream error.
type Disabled struct{}

func (Disabled) Relay(context.Context, string) (string, error) {
	return "", fmt.Errorf("chat relay not configured")
}
