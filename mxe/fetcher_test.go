package mxe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"

	"arena-mpc/crypto"
	"arena-mpc/shared"
)

// scriptedSource fails a fixed number of times before handing out a key.
type scriptedSource struct {
	failures int
	key      []byte
	calls    int
}

func (s *scriptedSource) MXEPublicKey(ctx context.Context, programID solana.PublicKey) ([]byte, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("gateway unavailable")
	}
	return s.key, nil
}

func testKey(t *testing.T) []byte {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return kp.PublicKey[:]
}

func testOpts(maxRetries int) shared.PrepareOptions {
	return shared.PrepareOptions{MaxRetries: maxRetries, RetryDelay: time.Millisecond}.WithDefaults()
}

func TestFetch(t *testing.T) {
	programID := solana.SystemProgramID

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		source := &scriptedSource{key: testKey(t)}
		f := NewFetcher(source, testOpts(10), nil)

		result, err := f.Fetch(context.Background(), programID)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if result.Attempts != 1 {
			t.Errorf("Attempts = %d, want 1", result.Attempts)
		}
	})

	t.Run("ReportsAttemptsUsed", func(t *testing.T) {
		key := testKey(t)
		source := &scriptedSource{failures: 3, key: key}
		f := NewFetcher(source, testOpts(10), nil)

		result, err := f.Fetch(context.Background(), programID)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if result.Attempts != 4 {
			t.Errorf("Attempts = %d, want 4", result.Attempts)
		}
		if !bytes.Equal(result.Key[:], key) {
			t.Error("returned key does not match source key")
		}
	})

	t.Run("ExhaustsAfterMaxRetries", func(t *testing.T) {
		source := &scriptedSource{failures: 100, key: testKey(t)}
		f := NewFetcher(source, testOpts(5), nil)

		_, err := f.Fetch(context.Background(), programID)
		if !shared.IsKind(err, shared.KindMXEConnectionFailed) {
			t.Fatalf("Fetch kind = %q, want %q", shared.KindOf(err), shared.KindMXEConnectionFailed)
		}
		if source.calls != 5 {
			t.Errorf("source called %d times, want exactly 5", source.calls)
		}
		if !strings.Contains(err.Error(), "5") {
			t.Errorf("error %q should carry the retry count", err)
		}
	})

	t.Run("ShortKeyCountsAsFailure", func(t *testing.T) {
		source := &scriptedSource{key: []byte{1, 2, 3}}
		f := NewFetcher(source, testOpts(3), nil)

		_, err := f.Fetch(context.Background(), programID)
		if !shared.IsKind(err, shared.KindMXEConnectionFailed) {
			t.Fatalf("Fetch kind = %q, want %q", shared.KindOf(err), shared.KindMXEConnectionFailed)
		}
		if source.calls != 3 {
			t.Errorf("source called %d times, want 3", source.calls)
		}
	})

	t.Run("FixedDelayBetweenAttempts", func(t *testing.T) {
		source := &scriptedSource{failures: 100}
		f := &Fetcher{Source: source, MaxRetries: 4, RetryDelay: 20 * time.Millisecond}

		start := time.Now()
		_, err := f.Fetch(context.Background(), solana.SystemProgramID)
		elapsed := time.Since(start)

		if err == nil {
			t.Fatal("expected exhaustion")
		}
		// 4 attempts mean exactly 3 delays.
		if elapsed < 60*time.Millisecond {
			t.Errorf("elapsed %v, want at least 60ms (3 delays)", elapsed)
		}
	})

	t.Run("ContextCancelInterruptsWait", func(t *testing.T) {
		source := &scriptedSource{failures: 100}
		f := &Fetcher{Source: source, MaxRetries: 10, RetryDelay: time.Minute}

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		_, err := f.Fetch(ctx, solana.SystemProgramID)
		if err == nil {
			t.Fatal("expected error after cancellation")
		}
		if time.Since(start) > 10*time.Second {
			t.Error("cancellation did not interrupt the wait")
		}
	})
}
