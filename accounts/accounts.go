package accounts

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"arena-mpc/shared"
)

// Well-known addresses referenced by every battle computation. These never
// change across calls or deployments within one network.
var (
	// MXEProgramID is the on-chain MPC execution program.
	MXEProgramID = solana.MustPublicKeyFromBase58("FunRZnSmV2PpRawvXm6szTFCRZHjJe8RZaVqwEPsK75N")
	// FeePoolAccount collects computation fees.
	FeePoolAccount = solana.MustPublicKeyFromBase58("9AcvUJri7N7WnHBNZ9UXoFP27duM3GSbpHUeYyNLFRSa")
	// ClusterAccount identifies the MXE node cluster executing computations.
	ClusterAccount = solana.MustPublicKeyFromBase58("uEbSeLpdwWDJy2R2wSn6ic9aPc5hT9PDWTZq3KfB1tR")
)

// PDA seed labels. Changing any of these is a breaking protocol change.
const (
	seedMXE         = "MXE"
	seedMempool     = "Mempool"
	seedExecPool    = "ExecPool"
	seedCompDef     = "CompDef"
	seedComputation = "Computation"

	// battleResultSeed derives the battle result account under the battle
	// program itself.
	battleResultSeed = "battle_result"
)

// Bundle is the fixed set of accounts a battle transaction must reference.
// It is fully determined by (programID, computationOffset); no two fields of
// a well-formed bundle are equal.
type Bundle struct {
	// Derived from the battle program ID alone.
	MXE           solana.PublicKey
	Mempool       solana.PublicKey
	ExecutingPool solana.PublicKey
	CompDef       solana.PublicKey

	// Derived from (programID, computationOffset).
	Computation solana.PublicKey

	// Derived from a fixed label and the battle program ID.
	BattleResult solana.PublicKey

	// Constants.
	FeePool       solana.PublicKey
	Cluster       solana.PublicKey
	Clock         solana.PublicKey
	SystemProgram solana.PublicKey
	MXEProgram    solana.PublicKey
}

// Derive computes the account bundle for one battle computation. It is a
// pure function of its inputs.
func Derive(programID solana.PublicKey, computationOffset uint64) (*Bundle, error) {
	b := &Bundle{
		FeePool:       FeePoolAccount,
		Cluster:       ClusterAccount,
		Clock:         solana.SysVarClockPubkey,
		SystemProgram: solana.SystemProgramID,
		MXEProgram:    MXEProgramID,
	}

	var err error
	if b.MXE, err = mxePDA(seedMXE, programID); err != nil {
		return nil, err
	}
	if b.Mempool, err = mxePDA(seedMempool, programID); err != nil {
		return nil, err
	}
	if b.ExecutingPool, err = mxePDA(seedExecPool, programID); err != nil {
		return nil, err
	}
	if b.CompDef, err = mxePDA(seedCompDef, programID); err != nil {
		return nil, err
	}

	var offsetLE [8]byte
	binary.LittleEndian.PutUint64(offsetLE[:], computationOffset)
	b.Computation, _, err = solana.FindProgramAddress(
		[][]byte{[]byte(seedComputation), programID.Bytes(), offsetLE[:]},
		MXEProgramID,
	)
	if err != nil {
		return nil, shared.Wrap(shared.KindAccountDerivationFailed, err,
			"deriving computation account for offset %d", computationOffset)
	}

	b.BattleResult, _, err = solana.FindProgramAddress(
		[][]byte{[]byte(battleResultSeed)},
		programID,
	)
	if err != nil {
		return nil, shared.Wrap(shared.KindAccountDerivationFailed, err, "deriving battle result account")
	}

	return b, nil
}

// mxePDA derives a label+programID address under the MXE program.
func mxePDA(label string, programID solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(label), programID.Bytes()},
		MXEProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, shared.Wrap(shared.KindAccountDerivationFailed, err,
			"deriving %s account", label)
	}
	return addr, nil
}

// List returns the bundle in transaction account order.
func (b *Bundle) List() []solana.PublicKey {
	return []solana.PublicKey{
		b.MXE, b.Mempool, b.ExecutingPool, b.CompDef,
		b.Computation, b.BattleResult,
		b.FeePool, b.Cluster, b.Clock, b.SystemProgram, b.MXEProgram,
	}
}

// Distinct reports whether all accounts in the bundle differ pairwise.
func (b *Bundle) Distinct() bool {
	seen := make(map[solana.PublicKey]struct{}, 11)
	for _, pk := range b.List() {
		if _, dup := seen[pk]; dup {
			return false
		}
		seen[pk] = struct{}{}
	}
	return true
}
