package scoring

import (
	"math"
	"strings"
	"testing"
)

func qualityWith(label QualityLabel, m ContentMetrics) QualityAssessment {
	return QualityAssessment{IsValid: label != QualityInvalid, Quality: label, ContentMetrics: m}
}

func TestAdjust(t *testing.T) {
	strongFresher := ContentMetrics{HasProjects: true, UniqueSkillCount: 5}

	cases := []struct {
		name      string
		base      float64
		quality   QualityAssessment
		level     CandidateLevel
		wantFinal int
		wantBonus int
		wantMult  float64
	}{
		{"excellent senior keeps score", 80, qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 80, 0, 1.0},
		{"invalid is heavily reduced", 80, qualityWith(QualityInvalid, ContentMetrics{}), LevelSenior, 32, 0, 0.4},
		{"good rounds", 77, qualityWith(QualityGood, ContentMetrics{}), LevelMid, 73, 0, 0.95},
		{"fair", 60, qualityWith(QualityFair, ContentMetrics{}), LevelJunior, 51, 0, 0.85},
		{"poor", 50, qualityWith(QualityPoor, ContentMetrics{}), LevelJunior, 35, 0, 0.70},
		{"fresher bonus clamps at 100", 100, qualityWith(QualityExcellent, strongFresher), LevelFresher, 100, 5, 1.0},
		{"fresher bonus applied", 80, qualityWith(QualityGood, strongFresher), LevelFresher, 81, 5, 0.95},
		{"no bonus for invalid fresher", 70, qualityWith(QualityInvalid, strongFresher), LevelFresher, 28, 0, 0.4},
		{"no bonus with four skills", 70, qualityWith(QualityExcellent, ContentMetrics{HasProjects: true, UniqueSkillCount: 4}), LevelFresher, 70, 0, 1.0},
		{"no bonus for junior", 70, qualityWith(QualityExcellent, strongFresher), LevelJunior, 70, 0, 1.0},
		{"negative base clamps to zero", -20, qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 0, 0, 1.0},
		{"huge base clamps to 100", 1e20, qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 100, 0, 1.0},
		{"enormous base clamps to 100", 1e300, qualityWith(QualityGood, ContentMetrics{}), LevelMid, 100, 0, 0.95},
		{"infinite base clamps to 100", math.Inf(1), qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 100, 0, 1.0},
		{"negative infinity clamps to zero", math.Inf(-1), qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 0, 0, 1.0},
		{"NaN base becomes zero", math.NaN(), qualityWith(QualityExcellent, ContentMetrics{}), LevelSenior, 0, 0, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Adjust(tc.base, tc.quality, tc.level)
			if got.FinalScore != tc.wantFinal {
				t.Fatalf("expected final %d, got %d", tc.wantFinal, got.FinalScore)
			}
			if got.CandidateLevelBonus != tc.wantBonus {
				t.Fatalf("expected bonus %d, got %d", tc.wantBonus, got.CandidateLevelBonus)
			}
			if got.QualityMultiplier != tc.wantMult {
				t.Fatalf("expected multiplier %v, got %v", tc.wantMult, got.QualityMultiplier)
			}
			if got.BaseScore != tc.base && !math.IsNaN(tc.base) {
				t.Fatalf("expected base score echoed")
			}
			if got.Explanation == "" {
				t.Fatalf("expected explanation")
			}
			if (tc.wantBonus > 0) != strings.Contains(got.Explanation, "Fresher bonus") {
				t.Fatalf("bonus sentence mismatch: %q", got.Explanation)
			}
		})
	}
}

func TestAdjustUnknownLabelTreatedAsInvalid(t *testing.T) {
	got := Adjust(50, QualityAssessment{Quality: "weird"}, LevelSenior)
	if got.QualityMultiplier != 0.4 || got.FinalScore != 20 {
		t.Fatalf("unexpected adjustment: %+v", got)
	}
}
