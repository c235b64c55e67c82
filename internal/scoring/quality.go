package scoring

import (
	"strings"
)

const (
	issueVeryShort   = "Resume text is very short (under 50 words)"
	issueShort       = "Resume text is brief (under 100 words)"
	issueNoContact   = "No contact information (email or phone) detected"
	issueNoContent   = "No skills, experience, or projects detected"
	issueFewSections = "Fewer than two recognizable resume sections"
)

// Assess inspects raw resume text, and optionally its parsed structure, and
// grades how much usable content it carries. It never fails: empty or garbage
// input lands in the invalid band.
func Assess(resumeText string, data *ResumeData) QualityAssessment {
	lower := strings.ToLower(resumeText)

	metrics := ContentMetrics{
		WordCount:        countWords(resumeText),
		SectionCount:     countSections(resumeText),
		HasContactInfo:   detectContactInfo(resumeText),
		HasSkills:        resolvePresence(structuredSkills(data), func() bool { return textHasSkills(resumeText, lower) }),
		HasEducation:     resolvePresence(structuredEducation(data), func() bool { return matchesSection(sectionEducation, resumeText) }),
		HasExperience:    resolvePresence(structuredExperience(data), func() bool { return textHasExperience(resumeText) }),
		HasProjects:      resolvePresence(structuredProjects(data), func() bool { return matchesSection(sectionProjects, resumeText) }),
		BulletCount:      countBullets(resumeText, data),
		UniqueSkillCount: countUniqueSkills(lower, data),
	}

	score := qualityScore(metrics)
	label := qualityLabel(score)

	return QualityAssessment{
		IsValid:        label != QualityInvalid,
		Quality:        label,
		QualityScore:   score,
		Issues:         collectIssues(metrics),
		ContentMetrics: metrics,
	}
}

// presenceSignal is what the structured resume says about one section.
// available is false when the structured source is absent or empty, in which
// case the raw-text fallback decides.
type presenceSignal struct {
	available bool
	found     bool
}

func resolvePresence(structured presenceSignal, fallback func() bool) bool {
	if structured.available {
		return structured.found
	}
	return fallback()
}

func structuredSkills(data *ResumeData) presenceSignal {
	if data == nil || len(data.Skills) == 0 {
		return presenceSignal{}
	}
	for _, cat := range data.Skills {
		if len(cat.Skills) > 0 {
			return presenceSignal{available: true, found: true}
		}
	}
	return presenceSignal{available: true}
}

func structuredEducation(data *ResumeData) presenceSignal {
	if data == nil || len(data.Education) == 0 {
		return presenceSignal{}
	}
	return presenceSignal{available: true, found: true}
}

func structuredExperience(data *ResumeData) presenceSignal {
	if data == nil || len(data.WorkExperience) == 0 {
		return presenceSignal{}
	}
	for _, exp := range data.WorkExperience {
		if len(exp.Bullets) > 0 {
			return presenceSignal{available: true, found: true}
		}
	}
	return presenceSignal{available: true}
}

func structuredProjects(data *ResumeData) presenceSignal {
	if data == nil || len(data.Projects) == 0 {
		return presenceSignal{}
	}
	for _, p := range data.Projects {
		if len(p.Bullets) > 0 {
			return presenceSignal{available: true, found: true}
		}
	}
	return presenceSignal{available: true}
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func countSections(text string) int {
	count := 0
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(text) {
			count++
		}
	}
	return count
}

func matchesSection(kind sectionKind, text string) bool {
	p := sectionPatternFor(kind)
	return p != nil && p.MatchString(text)
}

func detectContactInfo(text string) bool {
	return emailPattern.MatchString(text) || phonePattern.MatchString(text)
}

func textHasSkills(text, lower string) bool {
	if matchesSection(sectionSkills, text) {
		return true
	}
	for _, term := range techVocabulary {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func textHasExperience(text string) bool {
	return matchesSection(sectionExperience, text) && actionVerbs.MatchString(text)
}

func countBullets(text string, data *ResumeData) int {
	structured := 0
	if data != nil {
		for _, exp := range data.WorkExperience {
			structured += len(exp.Bullets)
		}
		for _, p := range data.Projects {
			structured += len(p.Bullets)
		}
	}
	textual := len(bulletPattern.FindAllStringIndex(text, -1))
	return max(structured, textual)
}

func countUniqueSkills(lower string, data *ResumeData) int {
	seen := make(map[string]struct{})
	if data != nil {
		for _, cat := range data.Skills {
			for _, s := range cat.Skills {
				key := strings.ToLower(strings.TrimSpace(s))
				if key == "" {
					continue
				}
				seen[key] = struct{}{}
			}
		}
	}
	for _, term := range techVocabulary {
		if strings.Contains(lower, term) {
			seen[term] = struct{}{}
		}
	}
	return len(seen)
}

func collectIssues(m ContentMetrics) []string {
	issues := []string{}
	if m.WordCount < 50 {
		issues = append(issues, issueVeryShort)
	} else if m.WordCount < 100 {
		issues = append(issues, issueShort)
	}
	if !m.HasContactInfo {
		issues = append(issues, issueNoContact)
	}
	if !(m.HasSkills || m.HasExperience || m.HasProjects) {
		issues = append(issues, issueNoContent)
	}
	if m.SectionCount < 2 {
		issues = append(issues, issueFewSections)
	}
	return issues
}

func qualityScore(m ContentMetrics) int {
	return wordCountPoints(m.WordCount) +
		presencePoints(m) +
		depthPoints(m.BulletCount, m.UniqueSkillCount) +
		sectionCountPoints(m.SectionCount)
}

func wordCountPoints(words int) int {
	switch {
	case words >= 400:
		return 20
	case words >= 200:
		return 15
	case words >= 100:
		return 10
	case words >= 50:
		return 5
	default:
		return 0
	}
}

func presencePoints(m ContentMetrics) int {
	points := 0
	if m.HasContactInfo {
		points += 5
	}
	if m.HasSkills {
		points += 8
	}
	if m.HasEducation {
		points += 5
	}
	if m.HasExperience {
		points += 7
	}
	if m.HasProjects {
		points += 5
	}
	return points
}

func depthPoints(bullets, skills int) int {
	return ladderPoints(bullets) + ladderPoints(skills)
}

// ladderPoints is shared by the bullet and unique-skill depth buckets.
func ladderPoints(n int) int {
	switch {
	case n >= 10:
		return 15
	case n >= 5:
		return 10
	case n >= 2:
		return 5
	default:
		return 0
	}
}

func sectionCountPoints(sections int) int {
	switch {
	case sections >= 5:
		return 20
	case sections >= 3:
		return 15
	case sections >= 2:
		return 10
	case sections >= 1:
		return 5
	default:
		return 0
	}
}

func qualityLabel(score int) QualityLabel {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityFair
	case score >= 20:
		return QualityPoor
	default:
		return QualityInvalid
	}
}
