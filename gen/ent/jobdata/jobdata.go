// Code generated by ent, DO NOT EDIT.

package jobdata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobdata type in the database.
	Label = "job_data"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldAttributes holds the string denoting the attributes field in the database.
	FieldAttributes = "attributes"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldWeekday holds the string denoting the weekday field in the database.
	FieldWeekday = "weekday"
	// FieldMonth holds the string denoting the month field in the database.
	FieldMonth = "month"
	// FieldIsHoliday holds the string denoting the is_holiday field in the database.
	FieldIsHoliday = "is_holiday"
	// FieldIsOutlier holds the string denoting the is_outlier field in the database.
	FieldIsOutlier = "is_outlier"
	// FieldForcedResult holds the string denoting the forced_result field in the database.
	FieldForcedResult = "forced_result"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the jobdata in the database.
	Table = "job_data"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_data"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobdata fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldAttributes,
	FieldReceivedAt,
	FieldWeekday,
	FieldMonth,
	FieldIsHoliday,
	FieldIsOutlier,
	FieldForcedResult,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	JobIDValidator func(string) error
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
	// WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	WeekdayValidator func(string) error
	// MonthValidator is a validator for the "month" field. It is called by the builders before save.
	MonthValidator func(string) error
	// DefaultIsHoliday holds the default value on creation for the "is_holiday" field.
	DefaultIsHoliday bool
	// DefaultIsOutlier holds the default value on creation for the "is_outlier" field.
	DefaultIsOutlier bool
	// DefaultForcedResult holds the default value on creation for the "forced_result" field.
	DefaultForcedResult bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobData queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByWeekday orders the results by the weekday field.
func ByWeekday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekday, opts...).ToFunc()
}

// ByMonth orders the results by the month field.
func ByMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonth, opts...).ToFunc()
}

// ByIsHoliday orders the results by the is_holiday field.
func ByIsHoliday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHoliday, opts...).ToFunc()
}

// ByIsOutlier orders the results by the is_outlier field.
func ByIsOutlier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOutlier, opts...).ToFunc()
}

// ByForcedResult orders the results by the forced_result field.
func ByForcedResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForcedResult, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
