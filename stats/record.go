package stats

import (
	"arena-mpc/shared"
)

// MaxFieldValue is the inclusive upper bound for every stat field.
const MaxFieldValue = 100

// BattleStats is the 4-field statistics record encrypted into the battle
// preparation payload. Field order is fixed: Strength, Agility, Endurance,
// Intelligence.
type BattleStats struct {
	Strength     uint64
	Agility      uint64
	Endurance    uint64
	Intelligence uint64
}

// Validate checks every field against [0, MaxFieldValue] in field order and
// fails on the first violation, naming the field. Fields are unsigned, so
// only the upper bound can be violated.
func (s BattleStats) Validate() error {
	fields := []struct {
		name  string
		value uint64
	}{
		{"strength", s.Strength},
		{"agility", s.Agility},
		{"endurance", s.Endurance},
		{"intelligence", s.Intelligence},
	}
	for _, f := range fields {
		if f.value > MaxFieldValue {
			return shared.Errorf(shared.KindInvalidInput,
				"stat %q must be between 0 and %d, got %d", f.name, MaxFieldValue, f.value)
		}
	}
	return nil
}
