// Package translate fans FAQ text out to a translation provider and merges
// the results into a translations map, degrading gracefully on failure.
package translate

import (
	"context"
	"fmt"

	"faq-service/internal/models"
)

// Provider translates a single text into the target language.
type Provider interface {
	Translate(ctx context.Context, text string, target models.LanguageCode) (string, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, text string, target models.LanguageCode) (string, error)

func (f ProviderFunc) Translate(ctx context.Context, text string, target models.LanguageCode) (string, error) {
	return f(ctx, text, target)
}

// ProviderError indicates a provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
