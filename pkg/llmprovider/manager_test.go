package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: f.name, Usage: &llmprovider.Usage{}}, nil
}

func TestManager_Complete(t *testing.T) {
	req := &llmprovider.Request{UserPrompt: "hi", Temperature: 0.2, MaxTokens: 100}

	t.Run("No Providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{}, &mockLogger{})
		if _, err := m.Complete(context.Background(), req); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Wins", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", text: "from p1"}
		p2 := &fakeProvider{name: "p2", text: "from p2"}
		m := llmprovider.NewManager([]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.Complete(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from p1" {
			t.Errorf("expected p1 response, got %q", resp.Text)
		}
		if p2.calls != 0 {
			t.Errorf("p2 should not be called when p1 succeeds")
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("boom")}
		p2 := &fakeProvider{name: "p2", text: "from p2"}
		m := llmprovider.NewManager([]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.Complete(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from p2" {
			t.Errorf("expected p2 response, got %q", resp.Text)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("boom")}
		p2 := &fakeProvider{name: "p2", text: "from p2"}
		m := llmprovider.NewManager([]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: false}, &mockLogger{})

		_, err := m.Complete(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
		if p2.calls != 0 {
			t.Errorf("p2 should not be called with fallback disabled")
		}
	})

	t.Run("Single Attempt By Default", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("boom")}
		m := llmprovider.NewManager([]llmprovider.Provider{p1},
			&llmprovider.Config{}, &mockLogger{})

		_, _ = m.Complete(context.Background(), req)
		if p1.calls != 1 {
			t.Errorf("expected exactly 1 attempt, got %d", p1.calls)
		}
	})

	t.Run("Retry Attempts Honored", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("boom")}
		m := llmprovider.NewManager([]llmprovider.Provider{p1},
			&llmprovider.Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

		_, _ = m.Complete(context.Background(), req)
		if p1.calls != 3 {
			t.Errorf("expected 3 attempts, got %d", p1.calls)
		}
	})

	t.Run("Global Timeout", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("boom")}
		m := llmprovider.NewManager([]llmprovider.Provider{p1},
			&llmprovider.Config{
				FallbackEnabled: true,
				RetryAttempts:   5,
				RetryDelay:      50 * time.Millisecond,
				MaxTotalTimeout: 10 * time.Millisecond,
			}, &mockLogger{})

		start := time.Now()
		_, err := m.Complete(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error")
		}
		if time.Since(start) > time.Second {
			t.Errorf("timeout not enforced")
		}
	})

	t.Run("Rate Limiter Spaces Calls", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", text: "ok"}
		m := llmprovider.NewManager([]llmprovider.Provider{p1},
			&llmprovider.Config{RatePerSecond: 50, RateBurst: 1}, &mockLogger{})

		start := time.Now()
		for i := 0; i < 3; i++ {
			if _, err := m.Complete(context.Background(), req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		// 3 calls at 50/s with burst 1 need at least ~40ms.
		if time.Since(start) < 30*time.Millisecond {
			t.Errorf("rate limiter did not space calls")
		}
	})
}
