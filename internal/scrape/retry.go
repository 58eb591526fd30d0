package scrape

import (
	"context"
	"crypto/rand"
	"errors"
	"math"
	"math/big"
	"net/http"
	"time"
)

// retryPolicy implements jittered exponential backoff for transient fetch
// failures. Client errors other than 429 are not retried: a 403 today will
// be a 403 in two seconds.
type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

func newRetryPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts: 2,
		baseDelay:   250 * time.Millisecond,
		maxDelay:    2 * time.Second,
	}
}

func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	if err == nil || attempt >= p.maxAttempts {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var fe *fetchError
	if errors.As(err, &fe) && fe.status >= 400 && fe.status < 500 && fe.status != http.StatusTooManyRequests {
		return false
	}
	return true
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.baseDelay) * math.Pow(2, float64(attempt))
	if delay > float64(p.maxDelay) {
		delay = float64(p.maxDelay)
	}
	return time.Duration(delay/2) + randomJitter(time.Duration(delay)/2)
}

func randomJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return limit / 2
	}
	return time.Duration(n.Int64())
}
