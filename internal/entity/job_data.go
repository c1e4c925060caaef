package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobData is one accepted submission together with its derived temporal
// context and the classification outcome. Immutable once written.
type JobData struct {
	ID           uuid.UUID         `json:"id"`
	JobID        string            `json:"job_id"`
	Attributes   map[string]string `json:"attributes"`
	ReceivedAt   time.Time         `json:"received_at"`
	Weekday      string            `json:"weekday"`
	Month        string            `json:"month"`
	IsHoliday    bool              `json:"is_holiday"`
	IsOutlier    bool              `json:"is_outlier"`
	ForcedResult bool              `json:"forced_result"`
}
