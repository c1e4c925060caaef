// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
	"github.com/monailabs/monai/gen/ent/predicate"
)

// JobDataUpdate is the builder for updating JobData entities.
type JobDataUpdate struct {
	config
	hooks    []Hook
	mutation *JobDataMutation
}

// Where appends a list predicates to the JobDataUpdate builder.
func (_u *JobDataUpdate) Where(ps ...predicate.JobData) *JobDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobDataUpdate) SetJobID(v string) *JobDataUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableJobID(v *string) *JobDataUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *JobDataUpdate) SetAttributes(v map[string]string) *JobDataUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *JobDataUpdate) SetWeekday(v string) *JobDataUpdate {
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableWeekday(v *string) *JobDataUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *JobDataUpdate) SetMonth(v string) *JobDataUpdate {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableMonth(v *string) *JobDataUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetIsHoliday sets the "is_holiday" field.
func (_u *JobDataUpdate) SetIsHoliday(v bool) *JobDataUpdate {
	_u.mutation.SetIsHoliday(v)
	return _u
}

// SetNillableIsHoliday sets the "is_holiday" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableIsHoliday(v *bool) *JobDataUpdate {
	if v != nil {
		_u.SetIsHoliday(*v)
	}
	return _u
}

// SetIsOutlier sets the "is_outlier" field.
func (_u *JobDataUpdate) SetIsOutlier(v bool) *JobDataUpdate {
	_u.mutation.SetIsOutlier(v)
	return _u
}

// SetNillableIsOutlier sets the "is_outlier" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableIsOutlier(v *bool) *JobDataUpdate {
	if v != nil {
		_u.SetIsOutlier(*v)
	}
	return _u
}

// SetForcedResult sets the "forced_result" field.
func (_u *JobDataUpdate) SetForcedResult(v bool) *JobDataUpdate {
	_u.mutation.SetForcedResult(v)
	return _u
}

// SetNillableForcedResult sets the "forced_result" field if the given value is not nil.
func (_u *JobDataUpdate) SetNillableForcedResult(v *bool) *JobDataUpdate {
	if v != nil {
		_u.SetForcedResult(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobDataUpdate) SetJob(v *Job) *JobDataUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobDataMutation object of the builder.
func (_u *JobDataUpdate) Mutation() *JobDataMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobDataUpdate) ClearJob() *JobDataUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobDataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobDataUpdate) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := jobdata.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "JobData.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weekday(); ok {
		if err := jobdata.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "JobData.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := jobdata.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "JobData.month": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobData.job"`)
	}
	return nil
}

func (_u *JobDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobdata.Table, jobdata.Columns, sqlgraph.NewFieldSpec(jobdata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(jobdata.FieldAttributes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(jobdata.FieldWeekday, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(jobdata.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHoliday(); ok {
		_spec.SetField(jobdata.FieldIsHoliday, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsOutlier(); ok {
		_spec.SetField(jobdata.FieldIsOutlier, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForcedResult(); ok {
		_spec.SetField(jobdata.FieldForcedResult, field.TypeBool, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdata.JobTable,
			Columns: []string{jobdata.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdata.JobTable,
			Columns: []string{jobdata.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobDataUpdateOne is the builder for updating a single JobData entity.
type JobDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobDataMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobDataUpdateOne) SetJobID(v string) *JobDataUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableJobID(v *string) *JobDataUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *JobDataUpdateOne) SetAttributes(v map[string]string) *JobDataUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *JobDataUpdateOne) SetWeekday(v string) *JobDataUpdateOne {
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableWeekday(v *string) *JobDataUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *JobDataUpdateOne) SetMonth(v string) *JobDataUpdateOne {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableMonth(v *string) *JobDataUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetIsHoliday sets the "is_holiday" field.
func (_u *JobDataUpdateOne) SetIsHoliday(v bool) *JobDataUpdateOne {
	_u.mutation.SetIsHoliday(v)
	return _u
}

// SetNillableIsHoliday sets the "is_holiday" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableIsHoliday(v *bool) *JobDataUpdateOne {
	if v != nil {
		_u.SetIsHoliday(*v)
	}
	return _u
}

// SetIsOutlier sets the "is_outlier" field.
func (_u *JobDataUpdateOne) SetIsOutlier(v bool) *JobDataUpdateOne {
	_u.mutation.SetIsOutlier(v)
	return _u
}

// SetNillableIsOutlier sets the "is_outlier" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableIsOutlier(v *bool) *JobDataUpdateOne {
	if v != nil {
		_u.SetIsOutlier(*v)
	}
	return _u
}

// SetForcedResult sets the "forced_result" field.
func (_u *JobDataUpdateOne) SetForcedResult(v bool) *JobDataUpdateOne {
	_u.mutation.SetForcedResult(v)
	return _u
}

// SetNillableForcedResult sets the "forced_result" field if the given value is not nil.
func (_u *JobDataUpdateOne) SetNillableForcedResult(v *bool) *JobDataUpdateOne {
	if v != nil {
		_u.SetForcedResult(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobDataUpdateOne) SetJob(v *Job) *JobDataUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobDataMutation object of the builder.
func (_u *JobDataUpdateOne) Mutation() *JobDataMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobDataUpdateOne) ClearJob() *JobDataUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobDataUpdate builder.
func (_u *JobDataUpdateOne) Where(ps ...predicate.JobData) *JobDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobDataUpdateOne) Select(field string, fields ...string) *JobDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobData entity.
func (_u *JobDataUpdateOne) Save(ctx context.Context) (*JobData, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobDataUpdateOne) SaveX(ctx context.Context) *JobData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobDataUpdateOne) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := jobdata.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "JobData.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weekday(); ok {
		if err := jobdata.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "JobData.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := jobdata.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "JobData.month": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobData.job"`)
	}
	return nil
}

func (_u *JobDataUpdateOne) sqlSave(ctx context.Context) (_node *JobData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobdata.Table, jobdata.Columns, sqlgraph.NewFieldSpec(jobdata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobdata.FieldID)
		for _, f := range fields {
			if !jobdata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobdata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(jobdata.FieldAttributes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(jobdata.FieldWeekday, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(jobdata.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHoliday(); ok {
		_spec.SetField(jobdata.FieldIsHoliday, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsOutlier(); ok {
		_spec.SetField(jobdata.FieldIsOutlier, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForcedResult(); ok {
		_spec.SetField(jobdata.FieldForcedResult, field.TypeBool, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdata.JobTable,
			Columns: []string{jobdata.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdata.JobTable,
			Columns: []string{jobdata.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
