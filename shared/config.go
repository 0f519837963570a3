package shared

import (
	"os"
	"strconv"
	"time"
)

// Defaults for PrepareOptions. The nonce and offset widths match the MXE
// cipher parameters: 16-byte nonces, 8-byte computation offsets.
const (
	DefaultMaxRetries = 10
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultNonceLen   = 16
	DefaultOffsetLen  = 8
)

// PrepareOptions configures a single battle preparation call. The zero value
// means "use defaults"; callers override individual fields only.
type PrepareOptions struct {
	// MaxRetries bounds the MXE public key fetch. Must be positive.
	MaxRetries int
	// RetryDelay is the fixed wait between fetch attempts.
	RetryDelay time.Duration
	// NonceLen is the cipher nonce width in bytes.
	NonceLen int
	// OffsetLen is how many random bytes feed the computation offset.
	// Capped at 8 (the offset is a uint64).
	OffsetLen int
	// Debug enables per-attempt logging of the key fetch.
	Debug bool
}

// DefaultPrepareOptions returns the documented defaults.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		NonceLen:   DefaultNonceLen,
		OffsetLen:  DefaultOffsetLen,
	}
}

// WithDefaults merges unset fields with the documented defaults and returns
// the effective options. The receiver is not modified.
func (o PrepareOptions) WithDefaults() PrepareOptions {
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	if o.NonceLen <= 0 {
		o.NonceLen = DefaultNonceLen
	}
	if o.OffsetLen <= 0 || o.OffsetLen > 8 {
		o.OffsetLen = DefaultOffsetLen
	}
	return o
}

// Helper functions for environment variable handling
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
