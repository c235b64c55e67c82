package scoring

import "regexp"

type sectionKind string

const (
	sectionExperience     sectionKind = "experience"
	sectionEducation      sectionKind = "education"
	sectionSkills         sectionKind = "skills"
	sectionProjects       sectionKind = "projects"
	sectionCertifications sectionKind = "certifications"
	sectionSummary        sectionKind = "summary"
	sectionAchievements   sectionKind = "achievements"
	sectionPublications   sectionKind = "publications"
	sectionInterests      sectionKind = "languages_interests"
)

type sectionPattern struct {
	kind    sectionKind
	pattern *regexp.Regexp
}

// sectionPatterns is ordered; SectionCount counts matched kinds, not occurrences.
var sectionPatterns = []sectionPattern{
	{sectionExperience, regexp.MustCompile(`(?i)\b(work experience|professional experience|experience|employment|work history)\b`)},
	{sectionEducation, regexp.MustCompile(`(?i)\b(education|academic|qualifications)\b`)},
	{sectionSkills, regexp.MustCompile(`(?i)\b(technical skills|skills|technologies|competencies)\b`)},
	{sectionProjects, regexp.MustCompile(`(?i)\b(projects|personal projects|academic projects)\b`)},
	{sectionCertifications, regexp.MustCompile(`(?i)\b(certifications?|certificates?|licenses)\b`)},
	{sectionSummary, regexp.MustCompile(`(?i)\b(summary|objective|profile|about me)\b`)},
	{sectionAchievements, regexp.MustCompile(`(?i)\b(achievements|awards|honors|accomplishments)\b`)},
	{sectionPublications, regexp.MustCompile(`(?i)\b(publications|research)\b`)},
	{sectionInterests, regexp.MustCompile(`(?i)\b(languages|interests|hobbies)\b`)},
}

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	bulletPattern = regexp.MustCompile(`(?m)^\s*[•\-\*▪◦●‣–➤►]\s+`)
	actionVerbs   = regexp.MustCompile(`(?i)\b(developed|built|designed|implemented|led|managed|created|improved|optimized|delivered|launched|architected|engineered|maintained|collaborated|automated|reduced|increased)\b`)
)

// phonePattern needs a + country code, a parenthesized area code or grouped
// digits; bare digit runs such as years, ids and counts do not count.
var phonePattern = regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?(?:[\s.-]?\d{2,5}){2,4}` +
	`|\(\d{2,4}\)[\s.-]?\d{3,4}[\s.-]?\d{3,4}` +
	`|\b\d{3}[.-]\d{3}[.-]\d{4}\b` +
	`|\b\d{3} \d{3} \d{4}\b`)

// techVocabulary is matched as lowercase substrings of the resume text.
var techVocabulary = []string{
	"javascript", "typescript", "python", "java", "golang", "c++", "c#", "ruby", "php", "kotlin", "swift", "rust", "scala",
	"react", "angular", "vue", "node", "express", "django", "flask", "spring", "next.js",
	"html", "css", "tailwind", "sql", "mysql", "postgresql", "mongodb", "redis", "graphql",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "jenkins", "git", "linux",
	"kafka", "tensorflow", "pytorch", "pandas", "machine learning",
}

func sectionPatternFor(kind sectionKind) *regexp.Regexp {
	for _, sp := range sectionPatterns {
		if sp.kind == kind {
			return sp.pattern
		}
	}
	return nil
}
