package jobconfigs

import (
	"sort"
	"strconv"
	"strings"
)

const (
	PlatformLinkedIn  = "linkedin"
	PlatformIndeed    = "indeed"
	PlatformGlassdoor = "glassdoor"
	PlatformNaukri    = "naukri"

	defaultFetchFrequencyHours = 24
	defaultMaxResults          = 50
)

type platformDefaults struct {
	search SearchConfig
	actors []string
}

var platformTable = map[string]platformDefaults{
	PlatformLinkedIn: {
		search: SearchConfig{
			Keywords:        []string{"software engineer"},
			Location:        "United States",
			MaxResults:      intPtr(100),
			DatePosted:      "past-week",
			JobType:         "full-time",
			ExperienceLevel: "entry-level",
		},
		actors: []string{"bebity~linkedin-jobs-scraper", "curious_coder~linkedin-jobs-scraper"},
	},
	PlatformIndeed: {
		search: SearchConfig{
			Keywords:   []string{"software developer"},
			Location:   "Remote",
			MaxResults: intPtr(100),
			DatePosted: "7",
			JobType:    "fulltime",
		},
		actors: []string{"misceres~indeed-scraper", "hynekhruska~indeed-scraper"},
	},
	PlatformGlassdoor: {
		search: SearchConfig{
			Keywords:   []string{"software engineer"},
			Location:   "United States",
			MaxResults: intPtr(50),
			JobType:    "fulltime",
		},
		actors: []string{"bebity~glassdoor-jobs-scraper"},
	},
	PlatformNaukri: {
		search: SearchConfig{
			Keywords:        []string{"software developer"},
			Location:        "Bangalore",
			MaxResults:      intPtr(100),
			DatePosted:      "7",
			ExperienceLevel: "0-2",
		},
		actors: []string{"muhammetakkurtt~naukri-job-scraper"},
	},
}

// Platforms lists the platforms with built-in defaults, sorted.
func Platforms() []string {
	out := make([]string, 0, len(platformTable))
	for name := range platformTable {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultSearchConfig returns the default criteria for a platform. Unknown
// platforms get a generic config.
func DefaultSearchConfig(platform string) SearchConfig {
	if d, ok := platformTable[normalizePlatform(platform)]; ok {
		return cloneSearchConfig(d.search)
	}
	return SearchConfig{
		Keywords:   []string{"software engineer"},
		MaxResults: intPtr(defaultMaxResults),
	}
}

// ActorsFor lists the known actor ids for a platform; unknown platforms get none.
func ActorsFor(platform string) []string {
	d, ok := platformTable[normalizePlatform(platform)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), d.actors...)
}

// DefaultActor is the first known actor for a platform, or "".
func DefaultActor(platform string) string {
	actors := ActorsFor(platform)
	if len(actors) == 0 {
		return ""
	}
	return actors[0]
}

// FormatSearchConfigForDisplay renders a one-line summary of cfg.
func FormatSearchConfigForDisplay(cfg SearchConfig) string {
	var parts []string
	if kw := nonEmpty(cfg.Keywords); len(kw) > 0 {
		parts = append(parts, "Keywords: "+strings.Join(kw, ", "))
	}
	if cfg.Location != "" {
		parts = append(parts, "Location: "+cfg.Location)
	}
	if cfg.MaxResults != nil {
		parts = append(parts, "Max results: "+strconv.Itoa(*cfg.MaxResults))
	}
	if cfg.DatePosted != "" {
		parts = append(parts, "Posted: "+cfg.DatePosted)
	}
	if cfg.JobType != "" {
		parts = append(parts, "Job type: "+cfg.JobType)
	}
	if cfg.ExperienceLevel != "" {
		parts = append(parts, "Experience: "+cfg.ExperienceLevel)
	}
	if cfg.RemoteOnly {
		parts = append(parts, "Remote only")
	}
	if len(parts) == 0 {
		return "No search criteria"
	}
	return strings.Join(parts, " | ")
}

func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneSearchConfig(cfg SearchConfig) SearchConfig {
	out := cfg
	out.Keywords = append([]string(nil), cfg.Keywords...)
	if cfg.MaxResults != nil {
		out.MaxResults = intPtr(*cfg.MaxResults)
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
