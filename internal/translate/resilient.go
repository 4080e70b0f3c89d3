package translate

import (
	"context"
	"errors"
	"time"

	"faq-service/internal/models"

	"golang.org/x/time/rate"
)

type ResilientConfig struct {
	Timeout    time.Duration // per attempt; 0 disables
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// RequestsPerMinute caps outbound calls; 0 disables the limiter.
	RequestsPerMinute int
}

func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		Timeout:           15 * time.Second,
		MaxRetries:        2,
		BaseDelay:         500 * time.Millisecond,
		MaxDelay:          10 * time.Second,
		RequestsPerMinute: 60,
	}
}

// Resilient wraps a Provider with a per-call timeout, a token-bucket rate
// limit and exponential-backoff retry of retryable provider errors.
type Resilient struct {
	provider Provider
	config   ResilientConfig
	limiter  *rate.Limiter
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewResilient(provider Provider, cfg ResilientConfig) *Resilient {
	r := &Resilient{
		provider: provider,
		config:   cfg,
		sleep:    sleepContext,
	}
	if cfg.RequestsPerMinute > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}
	return r
}

func (r *Resilient) Translate(ctx context.Context, text string, target models.LanguageCode) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		out, err := r.attempt(ctx, text, target)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return "", err
		}

		if attempt < r.config.MaxRetries {
			if err := r.sleep(ctx, r.backoff(attempt)); err != nil {
				return "", err
			}
		}
	}

	return "", lastErr
}

func (r *Resilient) attempt(ctx context.Context, text string, target models.LanguageCode) (string, error) {
	if r.config.Timeout <= 0 {
		return r.provider.Translate(ctx, text, target)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	out, err := r.provider.Translate(callCtx, text, target)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return "", &ProviderError{Message: "translation timed out", Cause: err, Retryable: true}
	}
	return out, err
}

// maxBackoff bounds doubling so large attempt counts cannot overflow.
const maxBackoff = time.Hour

func (r *Resilient) backoff(attempt int) time.Duration {
	delay := r.config.BaseDelay
	for i := 0; i < attempt && delay < maxBackoff; i++ {
		delay *= 2
	}
	if r.config.MaxDelay > 0 && delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}
	return delay
}

// IsRetryable reports whether err is a ProviderError marked retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ Provider = (*Resilient)(nil)
