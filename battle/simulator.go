package battle

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"
)

// Outcome is the result of a simulated battle.
type Outcome string

const (
	Victory Outcome = "Victory"
	Defeat  Outcome = "Defeat"
	Draw    Outcome = "Draw"
)

// Opponent is a randomly drawn adversary for the UI mock.
type Opponent struct {
	Name     string
	Strength uint64
}

// SimulatedOutcome mimics what the MXE computation would return. The proof
// is opaque filler; nothing here is cryptographic.
type SimulatedOutcome struct {
	Outcome  Outcome
	Proof    string
	Opponent Opponent
}

var opponentNames = []string{
	"Ironclad Golem",
	"Shadow Reaver",
	"Storm Caller",
	"Bone Warden",
	"Ember Knight",
}

const (
	minOpponentStrength = 40
	maxOpponentStrength = 100
)

// outcomeBucket holds the cumulative victory/draw thresholds compared
// against one uniform draw; the remainder is defeat.
type outcomeBucket struct {
	victory float64
	draw    float64
}

// bucketFor maps the strength difference to its probability bucket.
func bucketFor(diff int64) outcomeBucket {
	switch {
	case diff > 20:
		return outcomeBucket{victory: 0.85, draw: 0.15}
	case diff > 0:
		return outcomeBucket{victory: 0.60, draw: 0.25}
	case diff == 0:
		return outcomeBucket{victory: 0.40, draw: 0.30}
	case diff >= -20:
		return outcomeBucket{victory: 0.25, draw: 0.25}
	default:
		return outcomeBucket{victory: 0.05, draw: 0.10}
	}
}

// resolveOutcome buckets the strength difference and compares one uniform
// draw u in [0,1) against the bucket's thresholds.
func resolveOutcome(strength, opponentStrength uint64, u float64) Outcome {
	bucket := bucketFor(int64(strength) - int64(opponentStrength))
	switch {
	case u < bucket.victory:
		return Victory
	case u < bucket.victory+bucket.draw:
		return Draw
	default:
		return Defeat
	}
}

// SimulateOutcome resolves a mock battle after the given delay. It draws a
// random opponent with strength in [40,100] and decides the outcome from the
// strength difference. Used only for UI testing; the real outcome comes from
// the MXE computation.
func SimulateOutcome(ctx context.Context, strength uint64, delay time.Duration) (*SimulatedOutcome, error) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	opponent := Opponent{
		Name:     opponentNames[rand.IntN(len(opponentNames))],
		Strength: uint64(minOpponentStrength + rand.IntN(maxOpponentStrength-minOpponentStrength+1)),
	}
	outcome := resolveOutcome(strength, opponent.Strength, rand.Float64())

	var proofBytes [16]byte
	for i := range proofBytes {
		proofBytes[i] = byte(rand.IntN(256))
	}

	return &SimulatedOutcome{
		Outcome:  outcome,
		Proof:    fmt.Sprintf("sim-proof-%s", hex.EncodeToString(proofBytes[:])),
		Opponent: opponent,
	}, nil
}
