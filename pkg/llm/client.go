package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/warit/newsgen/pkg/config"
)

// Client talks to an OpenAI-compatible chat completion endpoint. The default
// configuration points it at Google's Gemini compatibility API, the model id
// is chosen per call from the stored settings.
type Client struct {
	client *openai.Client
	config config.AIConfig
}

// NewClient creates a client for the configured endpoint
func NewClient(cfg config.AIConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// ExtractFromImage sends the prompt together with the image, encoded as a
// base64 data URL, and returns the raw model output. No retry, a transport
// failure propagates to the caller.
func (c *Client) ExtractFromImage(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	}

	return c.complete(ctx, req)
}

// ExtractFromText sends the prompt and the document text as a labeled input
// block and returns the raw model output
func (c *Client) ExtractFromText(ctx context.Context, model, prompt, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: "ข้อมูล input:\n" + text},
		},
	}

	return c.complete(ctx, req)
}

// GenerateArticle serializes the structured event data to pretty-printed JSON
// and asks the model for a finished article. The output is opaque prose and
// returned as-is.
func (c *Client) GenerateArticle(ctx context.Context, model, prompt string, data any) (string, error) {
	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal event data: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: "ข้อมูลสำหรับเขียนข่าว:\n" + string(serialized)},
		},
	}

	return c.complete(ctx, req)
}

// complete runs a single chat completion request
func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return resp.Choices[0].Message.Content, nil
}
