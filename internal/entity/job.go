package entity

import "time"

// Job represents a monitored delivery channel for data transfer between layers.
type Job struct {
	ID          string    `json:"id"`
	JobName     string    `json:"job_name"`
	JobFilename string    `json:"job_filename"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
