package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"faq-service/internal/models"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language/display"
)

// chatClient is the subset of *openai.Client the provider needs.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIProvider struct {
	client      chatClient
	model       string
	temperature float32
}

type OpenAIConfig struct {
	APIKey      string
	Model       string  // default: gpt-4o-mini
	Temperature float32 // default: 0.3
	BaseURL     string
}

func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	return newOpenAIProvider(openai.NewClientWithConfig(config), cfg)
}

func newOpenAIProvider(client chatClient, cfg OpenAIConfig) *OpenAIProvider {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Translate(ctx context.Context, text string, target models.LanguageCode) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(target)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", &ProviderError{Message: "empty translation from OpenAI"}
	}
	return out, nil
}

func languageName(code models.LanguageCode) string {
	name := display.English.Tags().Name(code.Tag())
	if name == "" {
		return code.String()
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

func systemPrompt(target models.LanguageCode) string {
	return fmt.Sprintf(`You are a professional translator for a customer-facing FAQ.
Translate the user's message into %s.
- Keep the meaning, tone and formatting of the source.
- Do not translate URLs, email addresses, product names or placeholders such as {name}.
- Reply with the translated text only, without quotes, notes or explanations.`, languageName(target))
}

func isRetryableError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retryableStatus(reqErr.HTTPStatusCode)
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{"rate limit", "timeout", "connection refused", "connection reset", "temporary"} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

var _ Provider = (*OpenAIProvider)(nil)
