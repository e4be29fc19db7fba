package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"
)

type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Message Message `json:"message"`
}

type Response struct {
	Choices []Choice `json:"choices"`
}

// Client wraps the OpenAI chat completions endpoint. The base URL is
// injectable so tests can point it at a local server.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewClientFromEnv builds a client from OPENAI_API_KEY, OPENAI_BASE_URL and
// OPENAI_MODEL.
func NewClientFromEnv() *Client {
	return &Client{
		BaseURL:    os.Getenv("OPENAI_BASE_URL"),
		APIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:      os.Getenv("OPENAI_MODEL"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends the conversation and returns the assistant's reply. An empty
// string with nil error means the model produced no choices; callers decide
// the fallback text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	reqBody := Request{
		Model:       model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var completion Response
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// BuildMessages assembles the system prompt, prior conversation and current
// user message in OpenAI order.
func BuildMessages(req models.ChatRequest, snapshot *models.Snapshot) []Message {
	messages := []Message{{Role: "system", Content: BuildSystemPrompt(snapshot)}}
	for _, msg := range req.ConversationHistory {
		role := "assistant"
		if msg.IsUser {
			role = "user"
		}
		messages = append(messages, Message{Role: role, Content: msg.Text})
	}
	return append(messages, Message{Role: "user", Content: req.Message})
}
