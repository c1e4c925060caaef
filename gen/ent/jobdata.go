// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
)

// JobData is the model entity for the JobData schema.
type JobData struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Attributes holds the value of the "attributes" field.
	Attributes map[string]string `json:"attributes,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Weekday holds the value of the "weekday" field.
	Weekday string `json:"weekday,omitempty"`
	// Month holds the value of the "month" field.
	Month string `json:"month,omitempty"`
	// IsHoliday holds the value of the "is_holiday" field.
	IsHoliday bool `json:"is_holiday,omitempty"`
	// IsOutlier holds the value of the "is_outlier" field.
	IsOutlier bool `json:"is_outlier,omitempty"`
	// ForcedResult holds the value of the "forced_result" field.
	ForcedResult bool `json:"forced_result,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobDataQuery when eager-loading is set.
	Edges        JobDataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobDataEdges holds the relations/edges for other nodes in the graph.
type JobDataEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobDataEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobData) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobdata.FieldAttributes:
			values[i] = new([]byte)
		case jobdata.FieldIsHoliday, jobdata.FieldIsOutlier, jobdata.FieldForcedResult:
			values[i] = new(sql.NullBool)
		case jobdata.FieldJobID, jobdata.FieldWeekday, jobdata.FieldMonth:
			values[i] = new(sql.NullString)
		case jobdata.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		case jobdata.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobData fields.
func (_m *JobData) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobdata.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobdata.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case jobdata.FieldAttributes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attributes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attributes); err != nil {
					return fmt.Errorf("unmarshal field attributes: %w", err)
				}
			}
		case jobdata.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case jobdata.FieldWeekday:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weekday", values[i])
			} else if value.Valid {
				_m.Weekday = value.String
			}
		case jobdata.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case jobdata.FieldIsHoliday:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_holiday", values[i])
			} else if value.Valid {
				_m.IsHoliday = value.Bool
			}
		case jobdata.FieldIsOutlier:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_outlier", values[i])
			} else if value.Valid {
				_m.IsOutlier = value.Bool
			}
		case jobdata.FieldForcedResult:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field forced_result", values[i])
			} else if value.Valid {
				_m.ForcedResult = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobData.
// This includes values selected through modifiers, order, etc.
func (_m *JobData) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobData entity.
func (_m *JobData) QueryJob() *JobQuery {
	return NewJobDataClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobData.
// Note that you need to call JobData.Unwrap() before calling this method if this JobData
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobData) Update() *JobDataUpdateOne {
	return NewJobDataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobData entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobData) Unwrap() *JobData {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobData is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobData) String() string {
	var builder strings.Builder
	builder.WriteString("JobData(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("attributes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attributes))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("weekday=")
	builder.WriteString(_m.Weekday)
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("is_holiday=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsHoliday))
	builder.WriteString(", ")
	builder.WriteString("is_outlier=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOutlier))
	builder.WriteString(", ")
	builder.WriteString("forced_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForcedResult))
	builder.WriteByte(')')
	return builder.String()
}

// JobDataSlice is a parsable slice of JobData.
type JobDataSlice []*JobData
