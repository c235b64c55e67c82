package jobconfigs

import "time"

// SyncStatus is the lifecycle state of a sync log row.
type SyncStatus string

const (
	SyncRunning SyncStatus = "running"
	SyncSuccess SyncStatus = "success"
	SyncFailed  SyncStatus = "failed"
)

// SearchConfig holds the search criteria sent to the scraping actor.
type SearchConfig struct {
	Keywords        []string `json:"keywords" validate:"required,min=1,dive,required"`
	Location        string   `json:"location,omitempty"`
	MaxResults      *int     `json:"maxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	DatePosted      string   `json:"datePosted,omitempty"`
	JobType         string   `json:"jobType,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	RemoteOnly      bool     `json:"remoteOnly,omitempty"`
}

// JobFetchConfig describes one scheduled job-board fetch.
type JobFetchConfig struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Platform            string       `json:"platform"`
	ActorID             string       `json:"actorId"`
	SearchConfig        SearchConfig `json:"searchConfig"`
	IsActive            bool         `json:"isActive"`
	FetchFrequencyHours int          `json:"fetchFrequencyHours"`
	LastSyncedAt        *time.Time   `json:"lastSyncedAt,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// DueAt reports whether the config should be synced at now.
func (c JobFetchConfig) DueAt(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.LastSyncedAt == nil {
		return true
	}
	freq := c.FetchFrequencyHours
	if freq <= 0 {
		freq = defaultFetchFrequencyHours
	}
	return !now.Before(c.LastSyncedAt.Add(time.Duration(freq) * time.Hour))
}

// JobSyncLog records one sync run.
type JobSyncLog struct {
	ID           string     `json:"id"`
	ConfigID     string     `json:"configId"`
	Status       SyncStatus `json:"status"`
	JobsFetched  int        `json:"jobsFetched"`
	JobsCreated  int        `json:"jobsCreated"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CreateInput is the payload for creating a config. Omitted actor and search
// config are filled from platform defaults.
type CreateInput struct {
	Name                string        `json:"name" validate:"required"`
	Platform            string        `json:"platform" validate:"required"`
	ActorID             string        `json:"actorId"`
	SearchConfig        *SearchConfig `json:"searchConfig"`
	IsActive            *bool         `json:"isActive"`
	FetchFrequencyHours int           `json:"fetchFrequencyHours" validate:"omitempty,min=1,max=168"`
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Name                *string       `json:"name" validate:"omitempty,min=1"`
	Platform            *string       `json:"platform" validate:"omitempty,min=1"`
	ActorID             *string       `json:"actorId"`
	SearchConfig        *SearchConfig `json:"searchConfig"`
	IsActive            *bool         `json:"isActive"`
	FetchFrequencyHours *int          `json:"fetchFrequencyHours" validate:"omitempty,min=1,max=168"`
}

// SyncErrorKind classifies a failed TriggerSync.
type SyncErrorKind string

const (
	SyncKindNone          SyncErrorKind = ""
	SyncKindNotFound      SyncErrorKind = "not_found"
	SyncKindInactive      SyncErrorKind = "inactive"
	SyncKindRemoteFailure SyncErrorKind = "remote_failure"
	SyncKindStoreFailure  SyncErrorKind = "store_failure"
)

// SyncResult is the outcome of TriggerSync. It never carries a Go error.
type SyncResult struct {
	Success     bool          `json:"success"`
	Kind        SyncErrorKind `json:"kind,omitempty"`
	Message     string        `json:"message"`
	ConfigID    string        `json:"configId"`
	JobsFetched int           `json:"jobsFetched"`
	JobsCreated int           `json:"jobsCreated"`
}

// ValidationResult lists every search config problem found.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ConnectionResult is the outcome of a platform credential check.
type ConnectionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ActorInfo is actor metadata as reported by the scraping platform.
type ActorInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SyncStats aggregates configs and sync logs.
type SyncStats struct {
	TotalConfigs     int        `json:"totalConfigs"`
	ActiveConfigs    int        `json:"activeConfigs"`
	TotalSyncs       int        `json:"totalSyncs"`
	SuccessfulSyncs  int        `json:"successfulSyncs"`
	FailedSyncs      int        `json:"failedSyncs"`
	TotalJobsFetched int        `json:"totalJobsFetched"`
	TotalJobsCreated int        `json:"totalJobsCreated"`
	LastSyncAt       *time.Time `json:"lastSyncAt,omitempty"`
}
