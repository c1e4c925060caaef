package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provenance identifies the caller of an evaluation request.
type Provenance struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
}

// QueryLogEntry is one audit record. Write-once.
type QueryLogEntry struct {
	ID           uuid.UUID         `json:"id"`
	JobID        string            `json:"job_id"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	Result       string            `json:"result"`
	Explanation  string            `json:"explanation,omitempty"`
	IPAddress    string            `json:"ip_address"`
	UserAgent    string            `json:"user_agent,omitempty"`
	Referer      string            `json:"referer,omitempty"`
	Fingerprint  string            `json:"fingerprint"`
	ReceivedAt   time.Time         `json:"received_at"`
	HistoryCount int               `json:"history_count"`
}
