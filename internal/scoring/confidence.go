package scoring

const highConfidenceScore = 85

var qualityPoints = map[QualityLabel]int{
	QualityInvalid:   0,
	QualityPoor:      1,
	QualityFair:      2,
	QualityGood:      3,
	QualityExcellent: 4,
}

// Confidence grades how trustworthy a final score is given the input quality
// and whether a job description was supplied.
func Confidence(score int, quality QualityAssessment, hasJobDescription bool) ConfidenceLevel {
	if score >= highConfidenceScore {
		return ConfidenceHigh
	}

	points := qualityPoints[quality.Quality]
	points += scoreConfidencePoints(score)
	if hasJobDescription {
		points++
	}
	if contentComplete(quality.ContentMetrics) {
		points++
	}

	switch {
	case points >= 7:
		return ConfidenceHigh
	case points >= 4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func scoreConfidencePoints(score int) int {
	switch {
	case score >= 75:
		return 4
	case score >= 65:
		return 3
	case score >= 55:
		return 2
	case score >= 45:
		return 1
	default:
		return 0
	}
}

func contentComplete(m ContentMetrics) bool {
	present := 0
	for _, ok := range []bool{m.HasContactInfo, m.HasSkills, m.HasEducation, m.HasExperience || m.HasProjects} {
		if ok {
			present++
		}
	}
	return present >= 4
}

type band struct {
	min         int
	label       string
	probability string
}

// bands is ordered from the highest threshold down; the last entry catches everything.
var bands = []band{
	{85, "Excellent Match", "70-85%"},
	{75, "Very Good Match", "50-70%"},
	{65, "Good Match", "35-50%"},
	{55, "Fair Match", "20-35%"},
	{45, "Below Average", "10-20%"},
	{35, "Poor Match", "5-10%"},
	{25, "Very Poor", "2-5%"},
	{15, "Inadequate", "1-2%"},
}

var floorBand = band{label: "Minimal Match", probability: "0-1%"}

func bandFor(score int) band {
	for _, b := range bands {
		if score >= b.min {
			return b
		}
	}
	return floorBand
}

// MatchBand labels a score on the nine-step match ladder.
func MatchBand(score int) string {
	return bandFor(score).label
}

// InterviewProbability returns the interview likelihood range for a score.
func InterviewProbability(score int) string {
	return bandFor(score).probability
}
