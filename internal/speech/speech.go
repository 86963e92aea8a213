// README: Speech capture contract and the bounded retry loop around it.
package speech

import (
	"context"
	"errors"

	"frostdesk/internal/logger"
)

var (
	// ErrTimeout means no speech was detected within the listen window.
	ErrTimeout = errors.New("speech: no speech detected")
	// ErrUnintelligible means audio was captured but could not be transcribed.
	ErrUnintelligible = errors.New("speech: could not understand the audio")
	// ErrUnavailable means the transcription service cannot be reached.
	ErrUnavailable = errors.New("speech: service unavailable")
	// ErrAttemptsExhausted is returned when the bounded capture loop gives up;
	// callers should fall back to typed input.
	ErrAttemptsExhausted = errors.New("speech: max capture attempts exhausted")
)

// Recognizer converts one live utterance into lowercase text or fails with one
// of the errors above.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// CaptureWithRetry listens up to maxAttempts times. Timeouts and unintelligible
// audio are retried; an unavailable service aborts immediately since retrying
// will not help within an interactive turn.
func CaptureWithRetry(ctx context.Context, r Recognizer, maxAttempts int, log *logger.Logger) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := r.Listen(ctx)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrUnavailable) || ctx.Err() != nil {
			return "", err
		}
		if log != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("speech capture failed")
		}
	}
	return "", ErrAttemptsExhausted
}
