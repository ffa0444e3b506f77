package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"syllabus-extraction/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// It is the single gateway to the reasoning services: all callers share
// its rate limiter, so concurrent chunk workers cannot exceed upstream
// quotas.
type Manager struct {
	providers []Provider
	config    *Config
	limiter   *rate.Limiter
	logger    log.Logger
}

// Config defines configuration for the provider Manager
type Config struct {
	FallbackEnabled   bool
	RetryDelay        time.Duration
	MaxTotalTimeout   time.Duration // global timeout for the entire fallback chain
	RequestsPerMinute int           // shared upstream rate limit; 0 disables limiting
}

// NewManager creates a new provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), config.RequestsPerMinute)
	}
	return &Manager{
		providers: providers,
		config:    config,
		limiter:   limiter,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	var tried int

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				tried, ctx.Err())
		default:
		}

		tried++
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry calls the provider, retrying at most once and only on
// transient transport failures. Application errors are returned as-is:
// resending a rejected prompt burns quota without changing the outcome.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	resp, err := m.generateOnce(ctx, provider, req)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return nil, err
	}

	if m.config.RetryDelay > 0 {
		select {
		case <-time.After(m.config.RetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return m.generateOnce(ctx, provider, req)
}

func (m *Manager) generateOnce(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return provider.GenerateContent(ctx, req)
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
