package domain

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// VideoRecord is immutable after insertion: records are only ever
// created or deleted, never updated in place.
type VideoRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"uploadDate"`
	FileSize    int64     `json:"fileSize"`
	Duration    *float64  `json:"duration,omitempty"`
	Path        string    `json:"path"`
}

// ListQuery carries the raw listing parameters. Zero values mean
// "not set"; the service substitutes defaults.
type ListQuery struct {
	Title      string
	UploadDate *time.Time
	Page       int
	Limit      int
}

type ListResult struct {
	Total  int           `json:"total"`
	Page   int           `json:"page"`
	Videos []VideoRecord `json:"videos"`
}
