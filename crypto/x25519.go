package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"arena-mpc/shared"
)

// KeySize is the width of X25519 scalars, points and derived secrets.
const KeySize = 32

// KeyPair holds an ephemeral X25519 key pair. A fresh pair is generated per
// preparation call and discarded once the shared secret is derived.
type KeyPair struct {
	PrivateKey [KeySize]byte
	PublicKey  [KeySize]byte
}

// GenerateKeyPair draws a 32-byte private scalar from the CSPRNG and computes
// the matching public point on Curve25519.
func GenerateKeyPair() (*KeyPair, error) {
	var kp KeyPair
	if _, err := rand.Read(kp.PrivateKey[:]); err != nil {
		return nil, shared.Wrap(shared.KindKeyGenerationFailed, err, "reading private scalar")
	}

	pub, err := curve25519.X25519(kp.PrivateKey[:], curve25519.Basepoint)
	if err != nil {
		return nil, shared.Wrap(shared.KindKeyGenerationFailed, err, "computing public point")
	}
	copy(kp.PublicKey[:], pub)

	return &kp, nil
}

// SharedSecret performs X25519 scalar multiplication of the local private key
// with the remote public key.
func (kp *KeyPair) SharedSecret(remotePublicKey [KeySize]byte) ([KeySize]byte, error) {
	var secret [KeySize]byte

	s, err := curve25519.X25519(kp.PrivateKey[:], remotePublicKey[:])
	if err != nil {
		return secret, shared.Wrap(shared.KindKeyGenerationFailed, err, "deriving shared secret")
	}
	copy(secret[:], s)

	return secret, nil
}

// Zero overwrites the private scalar. Called once the shared secret has been
// derived; the public key is not sensitive.
func (kp *KeyPair) Zero() {
	ZeroBytes(kp.PrivateKey[:])
}

// ZeroBytes overwrites a byte slice in memory with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
