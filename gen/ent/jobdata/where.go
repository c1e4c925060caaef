// Code generated by ent, DO NOT EDIT.

package jobdata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobData {
	return predicate.JobData(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldJobID, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldReceivedAt, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldWeekday, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldMonth, v))
}

// IsHoliday applies equality check predicate on the "is_holiday" field. It's identical to IsHolidayEQ.
func IsHoliday(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldIsHoliday, v))
}

// IsOutlier applies equality check predicate on the "is_outlier" field. It's identical to IsOutlierEQ.
func IsOutlier(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldIsOutlier, v))
}

// ForcedResult applies equality check predicate on the "forced_result" field. It's identical to ForcedResultEQ.
func ForcedResult(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldForcedResult, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContainsFold(FieldJobID, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.JobData {
	return predicate.JobData(sql.FieldLTE(FieldReceivedAt, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLTE(FieldWeekday, v))
}

// WeekdayContains applies the Contains predicate on the "weekday" field.
func WeekdayContains(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContains(FieldWeekday, v))
}

// WeekdayHasPrefix applies the HasPrefix predicate on the "weekday" field.
func WeekdayHasPrefix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasPrefix(FieldWeekday, v))
}

// WeekdayHasSuffix applies the HasSuffix predicate on the "weekday" field.
func WeekdayHasSuffix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasSuffix(FieldWeekday, v))
}

// WeekdayEqualFold applies the EqualFold predicate on the "weekday" field.
func WeekdayEqualFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEqualFold(FieldWeekday, v))
}

// WeekdayContainsFold applies the ContainsFold predicate on the "weekday" field.
func WeekdayContainsFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContainsFold(FieldWeekday, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.JobData {
	return predicate.JobData(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.JobData {
	return predicate.JobData(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.JobData {
	return predicate.JobData(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.JobData {
	return predicate.JobData(sql.FieldContainsFold(FieldMonth, v))
}

// IsHolidayEQ applies the EQ predicate on the "is_holiday" field.
func IsHolidayEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldIsHoliday, v))
}

// IsHolidayNEQ applies the NEQ predicate on the "is_holiday" field.
func IsHolidayNEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldIsHoliday, v))
}

// IsOutlierEQ applies the EQ predicate on the "is_outlier" field.
func IsOutlierEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldIsOutlier, v))
}

// IsOutlierNEQ applies the NEQ predicate on the "is_outlier" field.
func IsOutlierNEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldIsOutlier, v))
}

// ForcedResultEQ applies the EQ predicate on the "forced_result" field.
func ForcedResultEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldEQ(FieldForcedResult, v))
}

// ForcedResultNEQ applies the NEQ predicate on the "forced_result" field.
func ForcedResultNEQ(v bool) predicate.JobData {
	return predicate.JobData(sql.FieldNEQ(FieldForcedResult, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobData {
	return predicate.JobData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobData {
	return predicate.JobData(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobData) predicate.JobData {
	return predicate.JobData(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobData) predicate.JobData {
	return predicate.JobData(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobData) predicate.JobData {
	return predicate.JobData(sql.NotPredicates(p))
}
