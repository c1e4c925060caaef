// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
)

// JobDataCreate is the builder for creating a JobData entity.
type JobDataCreate struct {
	config
	mutation *JobDataMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobDataCreate) SetJobID(v string) *JobDataCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *JobDataCreate) SetAttributes(v map[string]string) *JobDataCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *JobDataCreate) SetReceivedAt(v time.Time) *JobDataCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *JobDataCreate) SetNillableReceivedAt(v *time.Time) *JobDataCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *JobDataCreate) SetWeekday(v string) *JobDataCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *JobDataCreate) SetMonth(v string) *JobDataCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetIsHoliday sets the "is_holiday" field.
func (_c *JobDataCreate) SetIsHoliday(v bool) *JobDataCreate {
	_c.mutation.SetIsHoliday(v)
	return _c
}

// SetNillableIsHoliday sets the "is_holiday" field if the given value is not nil.
func (_c *JobDataCreate) SetNillableIsHoliday(v *bool) *JobDataCreate {
	if v != nil {
		_c.SetIsHoliday(*v)
	}
	return _c
}

// SetIsOutlier sets the "is_outlier" field.
func (_c *JobDataCreate) SetIsOutlier(v bool) *JobDataCreate {
	_c.mutation.SetIsOutlier(v)
	return _c
}

// SetNillableIsOutlier sets the "is_outlier" field if the given value is not nil.
func (_c *JobDataCreate) SetNillableIsOutlier(v *bool) *JobDataCreate {
	if v != nil {
		_c.SetIsOutlier(*v)
	}
	return _c
}

// SetForcedResult sets the "forced_result" field.
func (_c *JobDataCreate) SetForcedResult(v bool) *JobDataCreate {
	_c.mutation.SetForcedResult(v)
	return _c
}

// SetNillableForcedResult sets the "forced_result" field if the given value is not nil.
func (_c *JobDataCreate) SetNillableForcedResult(v *bool) *JobDataCreate {
	if v != nil {
		_c.SetForcedResult(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobDataCreate) SetID(v uuid.UUID) *JobDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobDataCreate) SetNillableID(v *uuid.UUID) *JobDataCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobDataCreate) SetJob(v *Job) *JobDataCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobDataMutation object of the builder.
func (_c *JobDataCreate) Mutation() *JobDataMutation {
	return _c.mutation
}

// Save creates the JobData in the database.
func (_c *JobDataCreate) Save(ctx context.Context) (*JobData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobDataCreate) SaveX(ctx context.Context) *JobData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobDataCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := jobdata.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.IsHoliday(); !ok {
		v := jobdata.DefaultIsHoliday
		_c.mutation.SetIsHoliday(v)
	}
	if _, ok := _c.mutation.IsOutlier(); !ok {
		v := jobdata.DefaultIsOutlier
		_c.mutation.SetIsOutlier(v)
	}
	if _, ok := _c.mutation.ForcedResult(); !ok {
		v := jobdata.DefaultForcedResult
		_c.mutation.SetForcedResult(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobdata.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobDataCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobData.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := jobdata.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "JobData.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attributes(); !ok {
		return &ValidationError{Name: "attributes", err: errors.New(`ent: missing required field "JobData.attributes"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "JobData.received_at"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`ent: missing required field "JobData.weekday"`)}
	}
	if v, ok := _c.mutation.Weekday(); ok {
		if err := jobdata.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "JobData.weekday": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "JobData.month"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := jobdata.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "JobData.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsHoliday(); !ok {
		return &ValidationError{Name: "is_holiday", err: errors.New(`ent: missing required field "JobData.is_holiday"`)}
	}
	if _, ok := _c.mutation.IsOutlier(); !ok {
		return &ValidationError{Name: "is_outlier", err: errors.New(`ent: missing required field "JobData.is_outlier"`)}
	}
	if _, ok := _c.mutation.ForcedResult(); !ok {
		return &ValidationError{Name: "forced_result", err: errors.New(`ent: missing required field "JobData.forced_result"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobData.job"`)}
	}
	return nil
}

func (_c *JobDataCreate) sqlSave(ctx context.Context) (*JobData, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobDataCreate) createSpec() (*JobData, *sqlgraph.CreateSpec) {
	var (
		_node = &JobData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobdata.Table, sqlgraph.NewFieldSpec(jobdata.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(jobdata.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(jobdata.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(jobdata.FieldWeekday, field.TypeString, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(jobdata.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.IsHoliday(); ok {
		_spec.SetField(jobdata.FieldIsHoliday, field.TypeBool, value)
		_node.IsHoliday = value
	}
	if value, ok := _c.mutation.IsOutlier(); ok {
		_spec.SetField(jobdata.FieldIsOutlier, field.TypeBool, value)
		_node.IsOutlier = value
	}
	if value, ok := _c.mutation.ForcedResult(); ok {
		_spec.SetField(jobdata.FieldForcedResult, field.TypeBool, value)
		_node.ForcedResult = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobDataCreateBulk is the builder for creating many JobData entities in bulk.
type JobDataCreateBulk struct {
	config
	err      error
	builders []*JobDataCreate
}

// Save creates the JobData entities in the database.
func (_c *JobDataCreateBulk) Save(ctx context.Context) ([]*JobData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobDataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobDataCreateBulk) SaveX(ctx context.Context) []*JobData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
