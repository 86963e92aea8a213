package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"frostdesk/internal/config"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Client captures one utterance through a hosted transcription service.
// The service records from the caller's device for the configured listen
// window and returns the transcript.
type Client struct {
	baseURL       string
	apiKey        string
	listenSeconds int
}

func NewClient(cfg config.SpeechConfig) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.ServiceURL, "/"),
		apiKey:        cfg.APIKey,
		listenSeconds: cfg.ListenSeconds,
	}
}

type listenRequest struct {
	ListenSeconds int `json:"listen_seconds"`
}

type listenResponse struct {
	Status string `json:"status"` // ok, timeout, unintelligible
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

// Listen blocks for up to the listen window plus transport time.
// Server errors are retried with exponential backoff before giving up.
func (c *Client) Listen(ctx context.Context) (string, error) {
	body, err := json.Marshal(listenRequest{ListenSeconds: c.listenSeconds})
	if err != nil {
		return "", fmt.Errorf("speech: marshal request: %w", err)
	}

	var out listenResponse
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 10 * time.Second

	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/listen", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("speech: server error: %s", raw)
			return lastErr
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("speech: unexpected status %d: %s", resp.StatusCode, raw)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			lastErr = fmt.Errorf("speech: decode response: %w", err)
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}

	switch out.Status {
	case "ok":
		return strings.ToLower(strings.TrimSpace(out.Text)), nil
	case "timeout":
		return "", ErrTimeout
	case "unintelligible":
		return "", ErrUnintelligible
	default:
		return "", fmt.Errorf("speech: unexpected status %q: %s", out.Status, out.Reason)
	}
}
