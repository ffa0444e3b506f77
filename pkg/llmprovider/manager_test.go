package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	errs      []error // consumed per call; nil entry means success
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	idx := m.callCount
	m.callCount++
	if idx < len(m.errs) && m.errs[idx] != nil {
		return nil, m.errs[idx]
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoCount int
	warnCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoCount++
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnCount++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider string) *Response {
	return &Response{
		Text:         "ok",
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func testManagerConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryDelay:      time.Millisecond,
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, testManagerConfig(), logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if logger.warnCount != 0 {
		t.Errorf("Expected 0 warn logs, got: %d", logger.warnCount)
	}
}

func TestGenerateContent_RetriesOnceOnTransientFailure(t *testing.T) {
	transient := fmt.Errorf("%w: connection reset", ErrUnavailable)
	primary := &mockProvider{
		name: "primary", model: "primary-model",
		errs:     []error{transient, nil},
		response: okResponse("primary"),
	}

	manager := NewManager([]Provider{primary}, testManagerConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected success after one retry, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected primary response, got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected exactly 2 calls (original + one retry), got: %d", primary.callCount)
	}
}

func TestGenerateContent_NoSecondRetryOnTransientFailure(t *testing.T) {
	transient := fmt.Errorf("%w: connection reset", ErrUnavailable)
	primary := &mockProvider{
		name: "primary", model: "primary-model",
		errs: []error{transient, transient, transient},
	}

	cfg := testManagerConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{primary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected error when provider keeps failing")
	}
	if primary.callCount != 2 {
		t.Errorf("Transient failures retry at most once, expected 2 calls, got: %d", primary.callCount)
	}
}

func TestGenerateContent_NoRetryOnApplicationError(t *testing.T) {
	rejected := fmt.Errorf("%w: quota exceeded", ErrUpstream)
	primary := &mockProvider{
		name: "primary", model: "primary-model",
		errs: []error{rejected, nil},
	}

	cfg := testManagerConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{primary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected error on application failure")
	}
	if primary.callCount != 1 {
		t.Errorf("Application errors must not retry, expected 1 call, got: %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	rejected := fmt.Errorf("%w: bad request", ErrUpstream)
	primary := &mockProvider{name: "primary", model: "primary-model", errs: []error{rejected}}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, testManagerConfig(), logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected fallback success, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary response, got: %s", resp.ProviderName)
	}
	if logger.warnCount != 1 {
		t.Errorf("Expected 1 warn log for the failed provider, got: %d", logger.warnCount)
	}
}

func TestGenerateContent_FallbackDisabledStopsAtPrimary(t *testing.T) {
	rejected := fmt.Errorf("%w: bad request", ErrUpstream)
	primary := &mockProvider{name: "primary", model: "primary-model", errs: []error{rejected}}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	cfg := testManagerConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary must not be called with fallback disabled, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	transient := fmt.Errorf("%w: timeout", ErrUnavailable)
	primary := &mockProvider{name: "primary", model: "primary-model", errs: []error{transient, transient}}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", errs: []error{transient, transient}}

	manager := NewManager([]Provider{primary, secondary}, testManagerConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
}

// cancellingProvider cancels the request context during its call before
// failing, simulating a deadline that expires mid-chain.
type cancellingProvider struct {
	mockProvider
	cancel context.CancelFunc
}

func (p *cancellingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.cancel()
	return p.mockProvider.GenerateContent(ctx, req)
}

func TestGenerateContent_TimeoutReportsProvidersActuallyTried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	primary := &cancellingProvider{
		mockProvider: mockProvider{
			name:  "primary",
			model: "primary-model",
			errs:  []error{fmt.Errorf("%w: rejected", ErrUpstream)},
		},
		cancel: cancel,
	}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	manager := NewManager([]Provider{primary, secondary}, testManagerConfig(), &mockLogger{})

	_, err := manager.GenerateContent(ctx, &Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected an error when the context expires mid-chain")
	}
	if !strings.Contains(err.Error(), "after trying 1 provider(s)") {
		t.Errorf("Error must report the providers actually tried, got: %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary was never tried and must not be counted, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, testManagerConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "hello"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}
