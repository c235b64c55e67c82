package scoring

import "math"

const (
	fresherBonus          = 5
	fresherBonusMinSkills = 5
)

var qualityMultipliers = map[QualityLabel]float64{
	QualityExcellent: 1.00,
	QualityGood:      0.95,
	QualityFair:      0.85,
	QualityPoor:      0.70,
	QualityInvalid:   0.40,
}

var adjustmentExplanations = map[QualityLabel]string{
	QualityExcellent: "Resume input quality is excellent; the score reflects the full analysis.",
	QualityGood:      "Resume input quality is good; a minor adjustment was applied (x0.95).",
	QualityFair:      "Resume input quality is fair; the score was reduced to reflect limited content (x0.85).",
	QualityPoor:      "Resume input quality is poor; the score was significantly reduced (x0.70).",
	QualityInvalid:   "Resume input could not be reliably analyzed; the score was heavily reduced (x0.40).",
}

const bonusExplanation = " Fresher bonus (+5) applied for strong projects and skills."

// QualityMultiplier returns the score multiplier for a quality label.
func QualityMultiplier(label QualityLabel) float64 {
	if m, ok := qualityMultipliers[label]; ok {
		return m
	}
	return qualityMultipliers[QualityInvalid]
}

// Adjust scales a base score by input quality, adds the fresher bonus when
// earned, and clamps the result to [0,100].
func Adjust(baseScore float64, quality QualityAssessment, level CandidateLevel) ScoreAdjustment {
	label := quality.Quality
	if _, ok := qualityMultipliers[label]; !ok {
		label = QualityInvalid
	}
	multiplier := QualityMultiplier(label)

	bonus := 0
	if level == LevelFresher &&
		label != QualityInvalid &&
		quality.ContentMetrics.HasProjects &&
		quality.ContentMetrics.UniqueSkillCount >= fresherBonusMinSkills {
		bonus = fresherBonus
	}

	final := clampScore(math.Round(baseScore*multiplier + float64(bonus)))

	explanation := adjustmentExplanations[label]
	if bonus > 0 {
		explanation += bonusExplanation
	}

	return ScoreAdjustment{
		BaseScore:           baseScore,
		QualityMultiplier:   multiplier,
		CandidateLevelBonus: bonus,
		FinalScore:          final,
		Explanation:         explanation,
	}
}

// clampScore bounds v to [0,100] before the integer conversion so huge or
// infinite inputs cannot overflow. NaN maps to 0.
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(0, math.Min(100, v)))
}
