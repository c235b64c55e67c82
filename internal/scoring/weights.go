package scoring

// Tier names a scoring dimension whose weight depends on candidate level.
type Tier string

const (
	TierSkills         Tier = "skills"
	TierExperience     Tier = "experience"
	TierProjects       Tier = "projects"
	TierEducation      Tier = "education"
	TierKeywords       Tier = "keywords"
	TierFormatting     Tier = "formatting"
	TierAchievements   Tier = "achievements"
	TierCertifications Tier = "certifications"
	TierSummary        Tier = "summary"
	TierContact        Tier = "contact"
)

// Tiers lists every tier in display order.
var Tiers = []Tier{
	TierSkills, TierExperience, TierProjects, TierEducation, TierKeywords,
	TierFormatting, TierAchievements, TierCertifications, TierSummary, TierContact,
}

// WeightTable maps every tier to an integer percentage weight.
type WeightTable map[Tier]int

// Total sums the table's weights. Every built-in table totals 100.
func (t WeightTable) Total() int {
	total := 0
	for _, w := range t {
		total += w
	}
	return total
}

// TierScore is an externally computed score for one tier.
type TierScore struct {
	Percentage           float64 `json:"percentage"`
	Weight               float64 `json:"weight"`
	WeightedContribution float64 `json:"weighted_contribution"`
	Score                float64 `json:"score,omitempty"`
	MaxScore             float64 `json:"max_score,omitempty"`
	Label                string  `json:"label,omitempty"`
}

var (
	fresherWeights = WeightTable{
		TierSkills: 25, TierExperience: 0, TierProjects: 25, TierEducation: 15, TierKeywords: 15,
		TierFormatting: 8, TierAchievements: 5, TierCertifications: 4, TierSummary: 2, TierContact: 1,
	}
	juniorWeights = WeightTable{
		TierSkills: 22, TierExperience: 15, TierProjects: 18, TierEducation: 10, TierKeywords: 15,
		TierFormatting: 7, TierAchievements: 5, TierCertifications: 4, TierSummary: 2, TierContact: 2,
	}
	midWeights = WeightTable{
		TierSkills: 20, TierExperience: 25, TierProjects: 12, TierEducation: 6, TierKeywords: 15,
		TierFormatting: 7, TierAchievements: 8, TierCertifications: 3, TierSummary: 2, TierContact: 2,
	}
	seniorWeights = WeightTable{
		TierSkills: 18, TierExperience: 32, TierProjects: 8, TierEducation: 4, TierKeywords: 15,
		TierFormatting: 6, TierAchievements: 10, TierCertifications: 3, TierSummary: 2, TierContact: 2,
	}
)

// WeightsFor returns a copy of the weight table for a candidate level.
// Unknown levels get the senior table.
func WeightsFor(level CandidateLevel) WeightTable {
	var src WeightTable
	switch level {
	case LevelFresher:
		src = fresherWeights
	case LevelJunior:
		src = juniorWeights
	case LevelMid:
		src = midWeights
	default:
		src = seniorWeights
	}
	out := make(WeightTable, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// ApplyWeights re-weights tier scores for a candidate level. Only keys present
// in scores appear in the result; keys the table does not know keep their
// existing weight. The input map is not modified.
func ApplyWeights(scores map[string]TierScore, level CandidateLevel) map[string]TierScore {
	table := WeightsFor(level)
	out := make(map[string]TierScore, len(scores))
	for name, ts := range scores {
		weight := ts.Weight
		if w, ok := table[Tier(name)]; ok {
			weight = float64(w)
		}
		ts.Weight = weight
		ts.WeightedContribution = ts.Percentage * weight / 100
		out[name] = ts
	}
	return out
}
