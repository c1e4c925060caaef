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
	"github.com/monailabs/monai/gen/ent/querylog"
)

// QueryLogCreate is the builder for creating a QueryLog entity.
type QueryLogCreate struct {
	config
	mutation *QueryLogMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *QueryLogCreate) SetJobID(v string) *QueryLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *QueryLogCreate) SetAttributes(v map[string]string) *QueryLogCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *QueryLogCreate) SetResult(v string) *QueryLogCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QueryLogCreate) SetExplanation(v string) *QueryLogCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableExplanation(v *string) *QueryLogCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *QueryLogCreate) SetIPAddress(v string) *QueryLogCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *QueryLogCreate) SetUserAgent(v string) *QueryLogCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableUserAgent(v *string) *QueryLogCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetReferer sets the "referer" field.
func (_c *QueryLogCreate) SetReferer(v string) *QueryLogCreate {
	_c.mutation.SetReferer(v)
	return _c
}

// SetNillableReferer sets the "referer" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableReferer(v *string) *QueryLogCreate {
	if v != nil {
		_c.SetReferer(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *QueryLogCreate) SetFingerprint(v string) *QueryLogCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *QueryLogCreate) SetReceivedAt(v time.Time) *QueryLogCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableReceivedAt(v *time.Time) *QueryLogCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetHistoryCount sets the "history_count" field.
func (_c *QueryLogCreate) SetHistoryCount(v int) *QueryLogCreate {
	_c.mutation.SetHistoryCount(v)
	return _c
}

// SetNillableHistoryCount sets the "history_count" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableHistoryCount(v *int) *QueryLogCreate {
	if v != nil {
		_c.SetHistoryCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryLogCreate) SetID(v uuid.UUID) *QueryLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QueryLogCreate) SetNillableID(v *uuid.UUID) *QueryLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the QueryLogMutation object of the builder.
func (_c *QueryLogCreate) Mutation() *QueryLogMutation {
	return _c.mutation
}

// Save creates the QueryLog in the database.
func (_c *QueryLogCreate) Save(ctx context.Context) (*QueryLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryLogCreate) SaveX(ctx context.Context) *QueryLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryLogCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := querylog.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.HistoryCount(); !ok {
		v := querylog.DefaultHistoryCount
		_c.mutation.SetHistoryCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := querylog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryLogCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "QueryLog.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := querylog.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "QueryLog.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "QueryLog.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := querylog.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "QueryLog.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IPAddress(); !ok {
		return &ValidationError{Name: "ip_address", err: errors.New(`ent: missing required field "QueryLog.ip_address"`)}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := querylog.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "QueryLog.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "QueryLog.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := querylog.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "QueryLog.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "QueryLog.received_at"`)}
	}
	if _, ok := _c.mutation.HistoryCount(); !ok {
		return &ValidationError{Name: "history_count", err: errors.New(`ent: missing required field "QueryLog.history_count"`)}
	}
	return nil
}

func (_c *QueryLogCreate) sqlSave(ctx context.Context) (*QueryLog, error) {
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

func (_c *QueryLogCreate) createSpec() (*QueryLog, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(querylog.Table, sqlgraph.NewFieldSpec(querylog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(querylog.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(querylog.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(querylog.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(querylog.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(querylog.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(querylog.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.Referer(); ok {
		_spec.SetField(querylog.FieldReferer, field.TypeString, value)
		_node.Referer = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(querylog.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(querylog.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.HistoryCount(); ok {
		_spec.SetField(querylog.FieldHistoryCount, field.TypeInt, value)
		_node.HistoryCount = value
	}
	return _node, _spec
}

// QueryLogCreateBulk is the builder for creating many QueryLog entities in bulk.
type QueryLogCreateBulk struct {
	config
	err      error
	builders []*QueryLogCreate
}

// Save creates the QueryLog entities in the database.
func (_c *QueryLogCreateBulk) Save(ctx context.Context) ([]*QueryLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryLogMutation)
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
func (_c *QueryLogCreateBulk) SaveX(ctx context.Context) []*QueryLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
