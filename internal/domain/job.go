package domain

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks one asynchronous rewind.
type Job struct {
	ID          string        `json:"id"`
	Request     RewindRequest `json:"request"`
	Fingerprint string        `json:"fingerprint"`
	Status      JobStatus     `json:"status"`
	Stage       Stage         `json:"stage"`
	Section     int           `json:"section"`
	Error       string        `json:"error,omitempty"`
	Timeline    *Timeline     `json:"timeline,omitempty"`
	Attempts    int           `json:"attempts"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}
