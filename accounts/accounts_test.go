package accounts

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

var testProgramID = solana.MustPublicKeyFromBase58("64LHiQ3ELgJXGbAB6WzT2WNpKrUdHZEV1Mv3oRX6vaEg")

func TestDerive(t *testing.T) {
	t.Run("PureFunction", func(t *testing.T) {
		a, err := Derive(testProgramID, 42)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		b, err := Derive(testProgramID, 42)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if *a != *b {
			t.Error("same inputs produced different bundles")
		}
	})

	t.Run("OffsetOnlyMovesComputationAccount", func(t *testing.T) {
		a, err := Derive(testProgramID, 1)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		b, err := Derive(testProgramID, 2)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}

		if a.Computation == b.Computation {
			t.Error("different offsets yielded the same computation account")
		}

		same := []struct {
			name string
			x, y solana.PublicKey
		}{
			{"mxe", a.MXE, b.MXE},
			{"mempool", a.Mempool, b.Mempool},
			{"executing pool", a.ExecutingPool, b.ExecutingPool},
			{"comp def", a.CompDef, b.CompDef},
			{"battle result", a.BattleResult, b.BattleResult},
			{"fee pool", a.FeePool, b.FeePool},
			{"cluster", a.Cluster, b.Cluster},
			{"clock", a.Clock, b.Clock},
			{"system program", a.SystemProgram, b.SystemProgram},
			{"mxe program", a.MXEProgram, b.MXEProgram},
		}
		for _, s := range same {
			if s.x != s.y {
				t.Errorf("%s account changed with the offset", s.name)
			}
		}
	})

	t.Run("ProgramIDMovesDerivedAccounts", func(t *testing.T) {
		other := solana.MustPublicKeyFromBase58("FunRZnSmV2PpRawvXm6szTFCRZHjJe8RZaVqwEPsK75N")
		a, err := Derive(testProgramID, 7)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		b, err := Derive(other, 7)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if a.MXE == b.MXE || a.Mempool == b.Mempool || a.BattleResult == b.BattleResult {
			t.Error("program-derived accounts did not change with the program ID")
		}
	})

	t.Run("BundleIsDistinct", func(t *testing.T) {
		b, err := Derive(testProgramID, 99)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if got := len(b.List()); got != 11 {
			t.Fatalf("bundle has %d accounts, want 11", got)
		}
		if !b.Distinct() {
			t.Error("bundle contains duplicate accounts")
		}
	})

	t.Run("ConstantsAreWellKnown", func(t *testing.T) {
		b, err := Derive(testProgramID, 0)
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if b.SystemProgram != solana.SystemProgramID {
			t.Error("system program constant mismatch")
		}
		if b.Clock != solana.SysVarClockPubkey {
			t.Error("clock sysvar constant mismatch")
		}
		if b.MXEProgram != MXEProgramID {
			t.Error("MXE program constant mismatch")
		}
	})
}
