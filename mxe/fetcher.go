package mxe

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"arena-mpc/crypto"
	"arena-mpc/shared"
)

// KeySource answers "what is the MXE cluster's current x25519 public key for
// this program". Implementations may fail transiently; the call is
// idempotent and safe to retry.
type KeySource interface {
	MXEPublicKey(ctx context.Context, programID solana.PublicKey) ([]byte, error)
}

// FetchResult reports the obtained key and how many attempts it took.
type FetchResult struct {
	Key      [crypto.KeySize]byte
	Attempts int
}

// Fetcher queries a KeySource until it yields a usable key or the retry
// budget is exhausted. Attempts are sequential with a fixed delay between
// them; there is no backoff.
type Fetcher struct {
	Source     KeySource
	MaxRetries int
	RetryDelay time.Duration

	// Log receives per-attempt debug output. Nil disables it.
	Log *shared.Logger
}

// NewFetcher builds a Fetcher from the effective preparation options.
// Per-attempt logging is wired only when the Debug option is set.
func NewFetcher(source KeySource, opts shared.PrepareOptions, log *shared.Logger) *Fetcher {
	f := &Fetcher{
		Source:     source,
		MaxRetries: opts.MaxRetries,
		RetryDelay: opts.RetryDelay,
	}
	if opts.Debug {
		f.Log = log
	}
	return f
}

// Fetch runs up to MaxRetries attempts, sleeping RetryDelay between them
// (so MaxRetries-1 delays on full exhaustion). A short or empty key counts
// as a failed attempt. Exhaustion surfaces as MXEConnectionFailed carrying
// the retry count.
func (f *Fetcher) Fetch(ctx context.Context, programID solana.PublicKey) (*FetchResult, error) {
	var lastErr error

	for attempt := 1; attempt <= f.MaxRetries; attempt++ {
		key, err := f.Source.MXEPublicKey(ctx, programID)
		if err == nil && len(key) == crypto.KeySize {
			if f.Log != nil {
				f.Log.Debug("obtained MXE public key",
					zap.Int("attempt", attempt),
					zap.String("program_id", programID.String()))
			}
			result := &FetchResult{Attempts: attempt}
			copy(result.Key[:], key)
			return result, nil
		}

		if err == nil {
			err = shared.Errorf(shared.KindMXEConnectionFailed,
				"key source returned %d bytes, want %d", len(key), crypto.KeySize)
		}
		lastErr = err
		if f.Log != nil {
			f.Log.Debug("MXE public key attempt failed",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", f.MaxRetries),
				zap.Error(err))
		}

		if attempt == f.MaxRetries {
			break
		}
		if err := sleep(ctx, f.RetryDelay); err != nil {
			return nil, shared.Wrap(shared.KindMXEConnectionFailed, err,
				"interrupted after %d attempts", attempt)
		}
	}

	return nil, shared.Wrap(shared.KindMXEConnectionFailed, lastErr,
		"no MXE public key after %d attempts", f.MaxRetries)
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
