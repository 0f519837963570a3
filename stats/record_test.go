package stats

import (
	"strings"
	"testing"

	"arena-mpc/shared"
)

func TestValidate(t *testing.T) {
	t.Run("AllFieldsInRange", func(t *testing.T) {
		records := []BattleStats{
			{},
			{Strength: 100, Agility: 100, Endurance: 100, Intelligence: 100},
			{Strength: 85, Agility: 70, Endurance: 90, Intelligence: 75},
			{Strength: 0, Agility: 1, Endurance: 99, Intelligence: 50},
		}
		for _, r := range records {
			if err := r.Validate(); err != nil {
				t.Errorf("Validate(%+v) = %v, want nil", r, err)
			}
		}
	})

	t.Run("OutOfRangeFieldIsNamed", func(t *testing.T) {
		cases := []struct {
			record BattleStats
			field  string
		}{
			{BattleStats{Strength: 101}, "strength"},
			{BattleStats{Agility: 150}, "agility"},
			{BattleStats{Endurance: 101}, "endurance"},
			{BattleStats{Intelligence: 9999}, "intelligence"},
		}
		for _, c := range cases {
			err := c.record.Validate()
			if err == nil {
				t.Fatalf("Validate(%+v) = nil, want error", c.record)
			}
			if !shared.IsKind(err, shared.KindInvalidInput) {
				t.Errorf("Validate(%+v) kind = %q, want %q", c.record, shared.KindOf(err), shared.KindInvalidInput)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Errorf("Validate(%+v) error %q does not name field %q", c.record, err, c.field)
			}
		}
	})

	t.Run("FirstFailingFieldWins", func(t *testing.T) {
		r := BattleStats{Strength: 50, Agility: 200, Endurance: 300, Intelligence: 400}
		err := r.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "agility") {
			t.Errorf("error %q should name the first out-of-range field (agility)", err)
		}
		if strings.Contains(err.Error(), "endurance") {
			t.Errorf("error %q should not aggregate later fields", err)
		}
	})
}
