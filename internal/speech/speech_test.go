package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"frostdesk/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.SpeechConfig{
		ServiceURL:    url,
		APIKey:        "test-key",
		ListenSeconds: 5,
	})
}

func TestClientListen_LowercasesTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/listen" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`{"status":"ok","text":"  My Fridge Is NOT Cooling "}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Listen(context.Background())
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if got != "my fridge is not cooling" {
		t.Errorf("Listen() = %q", got)
	}
}

func TestClientListen_TypedErrors(t *testing.T) {
	tests := []struct {
		status string
		want   error
	}{
		{"timeout", ErrTimeout},
		{"unintelligible", ErrUnintelligible},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"` + tt.status + `"}`))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Listen(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("Listen() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClientListen_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"status":"ok","text":"hello"}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Listen(context.Background())
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Listen() = %q", got)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

type stubRecognizer struct {
	replies []string
	errs    []error
	calls   int
}

func (s *stubRecognizer) Listen(_ context.Context) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.errs) {
		i = len(s.errs) - 1
	}
	return s.replies[i], s.errs[i]
}

func TestCaptureWithRetry_Bounded(t *testing.T) {
	r := &stubRecognizer{
		replies: []string{""},
		errs:    []error{ErrTimeout},
	}
	_, err := CaptureWithRetry(context.Background(), r, 3, nil)
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("expected ErrAttemptsExhausted, got %v", err)
	}
	if r.calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", r.calls)
	}
}

func TestCaptureWithRetry_RecoversAfterFailure(t *testing.T) {
	r := &stubRecognizer{
		replies: []string{"", "warranty please"},
		errs:    []error{ErrUnintelligible, nil},
	}
	got, err := CaptureWithRetry(context.Background(), r, 3, nil)
	if err != nil {
		t.Fatalf("CaptureWithRetry() error = %v", err)
	}
	if got != "warranty please" {
		t.Errorf("CaptureWithRetry() = %q", got)
	}
}

func TestCaptureWithRetry_UnavailableAbortsImmediately(t *testing.T) {
	r := &stubRecognizer{
		replies: []string{""},
		errs:    []error{ErrUnavailable},
	}
	_, err := CaptureWithRetry(context.Background(), r, 3, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if r.calls != 1 {
		t.Errorf("expected a single attempt, got %d", r.calls)
	}
}
