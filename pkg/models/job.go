package models

import "time"

// CleanJob records the outcome of one upload: how many raw records the
// source produced and how many contacts survived cleaning.
type CleanJob struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Filename       string    `json:"filename"`
	SourceType     string    `json:"source_type"` // "csv", "xlsx", "xls", "pst"
	TotalRecords   int       `json:"total_records"`
	UniqueContacts int       `json:"unique_contacts"`
	Duplicates     int       `json:"duplicates"`
	Rejected       int       `json:"rejected"`
	CreatedAt      time.Time `json:"created_at"`
}
