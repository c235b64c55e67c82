package scoring

// EvaluateInput carries everything one evaluation needs.
type EvaluateInput struct {
	ResumeText        string               `json:"resumeText"`
	ResumeData        *ResumeData          `json:"resumeData,omitempty"`
	BaseScore         float64              `json:"baseScore"`
	Level             CandidateLevel       `json:"level"`
	TierScores        map[string]TierScore `json:"tierScores,omitempty"`
	HasJobDescription bool                 `json:"hasJobDescription"`
}

// Evaluation bundles the outputs of the assess, weight, adjust and confidence steps.
type Evaluation struct {
	Level                CandidateLevel       `json:"level"`
	Quality              QualityAssessment    `json:"quality"`
	Weights              WeightTable          `json:"weights"`
	TierScores           map[string]TierScore `json:"tierScores,omitempty"`
	Adjustment           ScoreAdjustment      `json:"adjustment"`
	Confidence           ConfidenceLevel      `json:"confidence"`
	MatchBand            string               `json:"matchBand"`
	InterviewProbability string               `json:"interviewProbability"`
}

// Evaluate runs the scoring steps in order for a single resume.
func Evaluate(in EvaluateInput) Evaluation {
	level := ParseCandidateLevel(string(in.Level))
	quality := Assess(in.ResumeText, in.ResumeData)
	adjustment := Adjust(in.BaseScore, quality, level)

	var tiers map[string]TierScore
	if len(in.TierScores) > 0 {
		tiers = ApplyWeights(in.TierScores, level)
	}

	final := adjustment.FinalScore
	return Evaluation{
		Level:                level,
		Quality:              quality,
		Weights:              WeightsFor(level),
		TierScores:           tiers,
		Adjustment:           adjustment,
		Confidence:           Confidence(final, quality, in.HasJobDescription),
		MatchBand:            MatchBand(final),
		InterviewProbability: InterviewProbability(final),
	}
}
