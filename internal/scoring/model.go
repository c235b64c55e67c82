package scoring

import "strings"

// QualityLabel is the categorical outcome of an input quality assessment.
type QualityLabel string

const (
	QualityExcellent QualityLabel = "excellent"
	QualityGood      QualityLabel = "good"
	QualityFair      QualityLabel = "fair"
	QualityPoor      QualityLabel = "poor"
	QualityInvalid   QualityLabel = "invalid"
)

// CandidateLevel is the experience band a candidate was classified into.
type CandidateLevel string

const (
	LevelFresher CandidateLevel = "fresher"
	LevelJunior  CandidateLevel = "junior"
	LevelMid     CandidateLevel = "mid"
	LevelSenior  CandidateLevel = "senior"
)

// ParseCandidateLevel maps free-form input onto a CandidateLevel.
// Anything unrecognized is treated as senior.
func ParseCandidateLevel(raw string) CandidateLevel {
	switch CandidateLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case LevelFresher:
		return LevelFresher
	case LevelJunior:
		return LevelJunior
	case LevelMid:
		return LevelMid
	default:
		return LevelSenior
	}
}

// ConfidenceLevel describes how much a final score can be trusted.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceHigh   ConfidenceLevel = "High"
)

// ContentMetrics holds the independent content signals computed from a resume.
type ContentMetrics struct {
	WordCount        int  `json:"wordCount"`
	SectionCount     int  `json:"sectionCount"`
	BulletCount      int  `json:"bulletCount"`
	UniqueSkillCount int  `json:"uniqueSkillCount"`
	HasContactInfo   bool `json:"hasContactInfo"`
	HasSkills        bool `json:"hasSkills"`
	HasEducation     bool `json:"hasEducation"`
	HasExperience    bool `json:"hasExperience"`
	HasProjects      bool `json:"hasProjects"`
}

// QualityAssessment is the result of assessing raw resume input.
type QualityAssessment struct {
	IsValid        bool           `json:"isValid"`
	Quality        QualityLabel   `json:"quality"`
	QualityScore   int            `json:"qualityScore"`
	Issues         []string       `json:"issues"`
	ContentMetrics ContentMetrics `json:"contentMetrics"`
}

// ScoreAdjustment explains how a base score was turned into a final score.
type ScoreAdjustment struct {
	BaseScore           float64 `json:"baseScore"`
	QualityMultiplier   float64 `json:"qualityMultiplier"`
	CandidateLevelBonus int     `json:"candidateLevelBonus"`
	FinalScore          int     `json:"finalScore"`
	Explanation         string  `json:"explanation"`
}

// ResumeData is a structured resume as produced by an upstream parser.
type ResumeData struct {
	Skills         []SkillCategory  `json:"skills"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Projects       []Project        `json:"projects"`
}

// SkillCategory groups skills under a heading such as "Languages".
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

// WorkExperience is a single role with its bullet points.
type WorkExperience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

// Project is a single project entry with its bullet points.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Bullets      []string `json:"bullets"`
}
