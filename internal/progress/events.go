package progress

import "time"

const (
	EventJobStarted   = "job.started"
	EventJobProgress  = "job.progress"
	EventJobCompleted = "job.completed"
	EventJobFailed    = "job.failed"
)

// Processing stages reported while a job runs.
const (
	StageReading   = "reading"
	StageCleaning  = "cleaning"
	StageExporting = "exporting"
)

// JobEvent is broadcast to every connected feed client as an upload
// moves through the cleaning pipeline.
type JobEvent struct {
	Type           string    `json:"type"`
	JobID          string    `json:"job_id"`
	Filename       string    `json:"filename,omitempty"`
	Stage          string    `json:"stage,omitempty"`
	Done           int       `json:"done,omitempty"`
	Total          int       `json:"total,omitempty"`
	UniqueContacts int       `json:"unique_contacts,omitempty"`
	Duplicates     int       `json:"duplicates,omitempty"`
	Rejected       int       `json:"rejected,omitempty"`
	Error          string    `json:"error,omitempty"`
	At             time.Time `json:"at"`
}

func Started(jobID, filename string) JobEvent {
	return JobEvent{Type: EventJobStarted, JobID: jobID, Filename: filename, At: time.Now().UTC()}
}

func Progress(jobID, stage string, done, total int) JobEvent {
	return JobEvent{Type: EventJobProgress, JobID: jobID, Stage: stage, Done: done, Total: total, At: time.Now().UTC()}
}

func Completed(jobID string, unique, duplicates, rejected int) JobEvent {
	return JobEvent{
		Type:           EventJobCompleted,
		JobID:          jobID,
		UniqueContacts: unique,
		Duplicates:     duplicates,
		Rejected:       rejected,
		At:             time.Now().UTC(),
	}
}

func Failed(jobID, msg string) JobEvent {
	return JobEvent{Type: EventJobFailed, JobID: jobID, Error: msg, At: time.Now().UTC()}
}
