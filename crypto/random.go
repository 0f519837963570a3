package crypto

import (
	"crypto/rand"
	"encoding/binary"

	"arena-mpc/shared"
)

// GenerateNonce returns exactly n fresh CSPRNG bytes. The caller must never
// reuse a nonce with the same shared secret; freshness per call is the
// confidentiality boundary of the cipher.
func GenerateNonce(n int) ([]byte, error) {
	if n <= 0 {
		return nil, shared.Errorf(shared.KindInvalidInput, "nonce length must be positive, got %d", n)
	}
	nonce := make([]byte, n)
	if _, err := rand.Read(nonce); err != nil {
		return nil, shared.Wrap(shared.KindKeyGenerationFailed, err, "reading nonce bytes")
	}
	return nonce, nil
}

// GenerateComputationOffset draws n random bytes (n in [1,8]) and reads them
// as a little-endian unsigned integer. The offset tags one preparation call
// so repeated preparations for the same program do not collide on the
// derived computation account.
func GenerateComputationOffset(n int) (uint64, error) {
	if n <= 0 || n > 8 {
		return 0, shared.Errorf(shared.KindInvalidInput, "offset length must be in [1,8], got %d", n)
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:n]); err != nil {
		return 0, shared.Wrap(shared.KindKeyGenerationFailed, err, "reading offset bytes")
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
