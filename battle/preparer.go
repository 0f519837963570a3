package battle

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"arena-mpc/accounts"
	"arena-mpc/crypto"
	"arena-mpc/mxe"
	"arena-mpc/shared"
	"arena-mpc/stats"
)

// PreparationResult is everything the caller needs to embed the encrypted
// battle into a transaction. It is transient; nothing in it is persisted
// here.
type PreparationResult struct {
	ComputationOffset uint64
	EncryptedStats    [stats.EncodedLen]byte
	ClientPublicKey   [crypto.KeySize]byte
	Nonce             *big.Int
	Accounts          *accounts.Bundle
}

// Preparer runs the battle preparation pipeline: validate stats, obtain the
// MXE public key, derive a shared secret, encrypt the stats, derive the
// account bundle.
type Preparer struct {
	source mxe.KeySource
	log    *shared.Logger
}

// NewPreparer builds a Preparer. A nil logger disables logging.
func NewPreparer(source mxe.KeySource, log *shared.Logger) *Preparer {
	if log == nil {
		log = shared.NewNopLogger()
	}
	return &Preparer{source: source, log: log}
}

// Prepare executes one preparation call. Only the key fetch retries; any
// other failure aborts immediately and no partial result is returned.
// Each call draws its own key pair, nonce and computation offset.
func (p *Preparer) Prepare(ctx context.Context, programID solana.PublicKey, record stats.BattleStats, opts shared.PrepareOptions) (*PreparationResult, error) {
	opts = opts.WithDefaults()
	log := p.log.WithRequest(uuid.NewString()).With(zap.String("program_id", programID.String()))

	if err := record.Validate(); err != nil {
		return nil, err
	}

	fetcher := mxe.NewFetcher(p.source, opts, p.log)
	fetched, err := fetcher.Fetch(ctx, programID)
	if err != nil {
		return nil, err
	}
	log.Debug("MXE public key obtained", zap.Int("attempts", fetched.Attempts))

	keyPair, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	defer keyPair.Zero()

	secret, err := keyPair.SharedSecret(fetched.Key)
	if err != nil {
		return nil, err
	}
	defer crypto.ZeroBytes(secret[:])

	nonce, err := crypto.GenerateNonce(opts.NonceLen)
	if err != nil {
		return nil, err
	}
	offset, err := crypto.GenerateComputationOffset(opts.OffsetLen)
	if err != nil {
		return nil, err
	}

	encoded, err := stats.Encode(record)
	if err != nil {
		return nil, err
	}
	ciphertext, err := crypto.Encrypt(stats.ToInteger(encoded), secret, nonce)
	if err != nil {
		return nil, err
	}

	bundle, err := accounts.Derive(programID, offset)
	if err != nil {
		return nil, err
	}
	log.Debug("account bundle derived",
		zap.Uint64("computation_offset", offset),
		zap.String("computation_account", bundle.Computation.String()))

	return &PreparationResult{
		ComputationOffset: offset,
		EncryptedStats:    ciphertext,
		ClientPublicKey:   keyPair.PublicKey,
		Nonce:             nonceInteger(nonce),
		Accounts:          bundle,
	}, nil
}

// nonceInteger reads the nonce bytes as one little-endian unsigned integer,
// the form the downstream instruction encoding expects.
func nonceInteger(nonce []byte) *big.Int {
	be := make([]byte, len(nonce))
	for i, b := range nonce {
		be[len(nonce)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
