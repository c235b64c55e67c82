package scoring

import "testing"

func TestConfidence(t *testing.T) {
	complete := ContentMetrics{HasContactInfo: true, HasSkills: true, HasEducation: true, HasProjects: true}

	cases := []struct {
		name  string
		score int
		q     QualityAssessment
		hasJD bool
		want  ConfidenceLevel
	}{
		{"high score short-circuits", 90, qualityWith(QualityInvalid, ContentMetrics{}), false, ConfidenceHigh},
		{"boundary 85", 85, qualityWith(QualityPoor, ContentMetrics{}), false, ConfidenceHigh},
		{"good with jd reaches high", 70, qualityWith(QualityGood, ContentMetrics{}), true, ConfidenceHigh},
		{"fair mid score is medium", 60, qualityWith(QualityFair, ContentMetrics{}), false, ConfidenceMedium},
		{"completeness lifts to medium", 50, qualityWith(QualityFair, complete), false, ConfidenceMedium},
		{"poor low score", 50, qualityWith(QualityPoor, ContentMetrics{}), false, ConfidenceLow},
		{"invalid low score", 10, qualityWith(QualityInvalid, complete), true, ConfidenceLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Confidence(tc.score, tc.q, tc.hasJD); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMatchBandAndProbability(t *testing.T) {
	cases := []struct {
		score int
		band  string
		prob  string
	}{
		{100, "Excellent Match", "70-85%"},
		{85, "Excellent Match", "70-85%"},
		{84, "Very Good Match", "50-70%"},
		{75, "Very Good Match", "50-70%"},
		{65, "Good Match", "35-50%"},
		{55, "Fair Match", "20-35%"},
		{45, "Below Average", "10-20%"},
		{44, "Poor Match", "5-10%"},
		{25, "Very Poor", "2-5%"},
		{15, "Inadequate", "1-2%"},
		{14, "Minimal Match", "0-1%"},
		{0, "Minimal Match", "0-1%"},
	}
	for _, tc := range cases {
		if got := MatchBand(tc.score); got != tc.band {
			t.Fatalf("MatchBand(%d) = %q, want %q", tc.score, got, tc.band)
		}
		if got := InterviewProbability(tc.score); got != tc.prob {
			t.Fatalf("InterviewProbability(%d) = %q, want %q", tc.score, got, tc.prob)
		}
	}
}
