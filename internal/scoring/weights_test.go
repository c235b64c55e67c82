package scoring

import (
	"math"
	"testing"
)

func TestWeightTablesSumTo100(t *testing.T) {
	for _, level := range []CandidateLevel{LevelFresher, LevelJunior, LevelMid, LevelSenior} {
		table := WeightsFor(level)
		if got := table.Total(); got != 100 {
			t.Fatalf("%s weights sum to %d", level, got)
		}
		if len(table) != len(Tiers) {
			t.Fatalf("%s table has %d tiers, want %d", level, len(table), len(Tiers))
		}
	}
}

func TestWeightsForExactValues(t *testing.T) {
	cases := []struct {
		level CandidateLevel
		tier  Tier
		want  int
	}{
		{LevelFresher, TierExperience, 0},
		{LevelFresher, TierProjects, 25},
		{LevelJunior, TierExperience, 15},
		{LevelMid, TierExperience, 25},
		{LevelSenior, TierExperience, 32},
		{LevelSenior, TierContact, 2},
		{LevelFresher, TierContact, 1},
	}
	for _, tc := range cases {
		if got := WeightsFor(tc.level)[tc.tier]; got != tc.want {
			t.Fatalf("%s/%s: expected %d, got %d", tc.level, tc.tier, tc.want, got)
		}
	}
}

func TestWeightsForUnknownLevelIsSenior(t *testing.T) {
	got := WeightsFor(CandidateLevel("principal"))
	if got[TierExperience] != 32 {
		t.Fatalf("expected senior table, got %v", got)
	}
}

func TestWeightsForReturnsCopy(t *testing.T) {
	table := WeightsFor(LevelMid)
	table[TierSkills] = 99
	if WeightsFor(LevelMid)[TierSkills] != 20 {
		t.Fatalf("mutating a returned table must not leak")
	}
}

func TestApplyWeights(t *testing.T) {
	in := map[string]TierScore{
		"experience": {Percentage: 80, Weight: 10, WeightedContribution: 8},
		"culture":    {Percentage: 50, Weight: 4},
	}

	out := ApplyWeights(in, LevelFresher)

	if len(out) != 2 {
		t.Fatalf("expected no new keys, got %d", len(out))
	}
	exp := out["experience"]
	if exp.Weight != 0 || exp.WeightedContribution != 0 {
		t.Fatalf("expected fresher experience to be zeroed, got %+v", exp)
	}
	culture := out["culture"]
	if culture.Weight != 4 || math.Abs(culture.WeightedContribution-2) > 1e-9 {
		t.Fatalf("expected unknown tier to keep its weight, got %+v", culture)
	}
	if in["experience"].Weight != 10 {
		t.Fatalf("input map must not be mutated")
	}

	senior := ApplyWeights(in, LevelSenior)["experience"]
	if senior.Weight != 32 || math.Abs(senior.WeightedContribution-25.6) > 1e-9 {
		t.Fatalf("unexpected senior contribution: %+v", senior)
	}
}

func TestApplyWeightsEmpty(t *testing.T) {
	if out := ApplyWeights(nil, LevelMid); len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}
