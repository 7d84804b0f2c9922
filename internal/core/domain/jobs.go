// internal/core/domain/jobs.go
package domain

import "time"

// JobStatus tracks a background export or import
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// ExportJob is a sales workbook export and where it ended up
type ExportJob struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	ObjectKey   string     `json:"object_key,omitempty"`
	Events      int        `json:"events"`
	Error       string     `json:"error,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ImportJob is a lot workbook import and its per-row outcome
type ImportJob struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	FileName    string     `json:"file_name"`
	Rows        int        `json:"rows"`
	Inserted    int        `json:"inserted"`
	Merged      int        `json:"merged"`
	Errors      []string   `json:"errors,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
