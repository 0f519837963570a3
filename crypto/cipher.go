package crypto

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"arena-mpc/shared"
	"arena-mpc/stats"
)

// cipherLabel domain-separates the per-message key schedule.
const cipherLabel = "arena-mpc/stats-cipher/v1"

// Encrypt encrypts a single 256-bit plaintext integer under the shared
// secret and nonce. The key schedule expands (secret, nonce) into a
// per-message XChaCha20 key and nonce via HKDF-SHA256; the 32-byte
// little-endian plaintext block is XORed with the keystream.
//
// The same (secret, nonce) pair always produces the same keystream, so a
// nonce must never be reused for two different plaintexts under one secret.
func Encrypt(plaintext *big.Int, secret [KeySize]byte, nonce []byte) ([stats.EncodedLen]byte, error) {
	var out [stats.EncodedLen]byte

	block, err := stats.FromInteger(plaintext)
	if err != nil {
		return out, shared.Wrap(shared.KindEncryptionFailed, err, "serializing plaintext integer")
	}

	if err := xorKeystream(block[:], secret, nonce); err != nil {
		return out, err
	}

	return block, nil
}

// Decrypt inverts Encrypt. The MXE side normally performs decryption; this
// is provided for collaborators and round-trip tests.
func Decrypt(ciphertext [stats.EncodedLen]byte, secret [KeySize]byte, nonce []byte) (*big.Int, error) {
	block := ciphertext
	if err := xorKeystream(block[:], secret, nonce); err != nil {
		return nil, err
	}
	return stats.ToInteger(block), nil
}

// xorKeystream applies the (secret, nonce)-determined keystream in place.
func xorKeystream(block []byte, secret [KeySize]byte, nonce []byte) error {
	if len(nonce) == 0 {
		return shared.Errorf(shared.KindEncryptionFailed, "nonce must not be empty")
	}

	kdf := hkdf.New(sha256.New, secret[:], nonce, []byte(cipherLabel))

	key := make([]byte, chacha20.KeySize)
	xnonce := make([]byte, chacha20.NonceSizeX)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return shared.Wrap(shared.KindEncryptionFailed, err, "deriving message key")
	}
	if _, err := io.ReadFull(kdf, xnonce); err != nil {
		return shared.Wrap(shared.KindEncryptionFailed, err, "deriving message nonce")
	}
	defer ZeroBytes(key)

	stream, err := chacha20.NewUnauthenticatedCipher(key, xnonce)
	if err != nil {
		return shared.Wrap(shared.KindEncryptionFailed, err, "initializing cipher")
	}
	stream.XORKeyStream(block, block)

	return nil
}
