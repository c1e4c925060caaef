// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monailabs/monai/gen/ent/predicate"
	"github.com/monailabs/monai/gen/ent/querylog"
)

// QueryLogUpdate is the builder for updating QueryLog entities.
type QueryLogUpdate struct {
	config
	hooks    []Hook
	mutation *QueryLogMutation
}

// Where appends a list predicates to the QueryLogUpdate builder.
func (_u *QueryLogUpdate) Where(ps ...predicate.QueryLog) *QueryLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *QueryLogUpdate) SetAttributes(v map[string]string) *QueryLogUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *QueryLogUpdate) ClearAttributes() *QueryLogUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QueryLogUpdate) SetExplanation(v string) *QueryLogUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QueryLogUpdate) SetNillableExplanation(v *string) *QueryLogUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QueryLogUpdate) ClearExplanation() *QueryLogUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetHistoryCount sets the "history_count" field.
func (_u *QueryLogUpdate) SetHistoryCount(v int) *QueryLogUpdate {
	_u.mutation.ResetHistoryCount()
	_u.mutation.SetHistoryCount(v)
	return _u
}

// SetNillableHistoryCount sets the "history_count" field if the given value is not nil.
func (_u *QueryLogUpdate) SetNillableHistoryCount(v *int) *QueryLogUpdate {
	if v != nil {
		_u.SetHistoryCount(*v)
	}
	return _u
}

// AddHistoryCount adds value to the "history_count" field.
func (_u *QueryLogUpdate) AddHistoryCount(v int) *QueryLogUpdate {
	_u.mutation.AddHistoryCount(v)
	return _u
}

// Mutation returns the QueryLogMutation object of the builder.
func (_u *QueryLogUpdate) Mutation() *QueryLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(querylog.Table, querylog.Columns, sqlgraph.NewFieldSpec(querylog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(querylog.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(querylog.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(querylog.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(querylog.FieldExplanation, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(querylog.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.RefererCleared() {
		_spec.ClearField(querylog.FieldReferer, field.TypeString)
	}
	if value, ok := _u.mutation.HistoryCount(); ok {
		_spec.SetField(querylog.FieldHistoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHistoryCount(); ok {
		_spec.AddField(querylog.FieldHistoryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryLogUpdateOne is the builder for updating a single QueryLog entity.
type QueryLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryLogMutation
}

// SetAttributes sets the "attributes" field.
func (_u *QueryLogUpdateOne) SetAttributes(v map[string]string) *QueryLogUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *QueryLogUpdateOne) ClearAttributes() *QueryLogUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QueryLogUpdateOne) SetExplanation(v string) *QueryLogUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QueryLogUpdateOne) SetNillableExplanation(v *string) *QueryLogUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QueryLogUpdateOne) ClearExplanation() *QueryLogUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetHistoryCount sets the "history_count" field.
func (_u *QueryLogUpdateOne) SetHistoryCount(v int) *QueryLogUpdateOne {
	_u.mutation.ResetHistoryCount()
	_u.mutation.SetHistoryCount(v)
	return _u
}

// SetNillableHistoryCount sets the "history_count" field if the given value is not nil.
func (_u *QueryLogUpdateOne) SetNillableHistoryCount(v *int) *QueryLogUpdateOne {
	if v != nil {
		_u.SetHistoryCount(*v)
	}
	return _u
}

// AddHistoryCount adds value to the "history_count" field.
func (_u *QueryLogUpdateOne) AddHistoryCount(v int) *QueryLogUpdateOne {
	_u.mutation.AddHistoryCount(v)
	return _u
}

// Mutation returns the QueryLogMutation object of the builder.
func (_u *QueryLogUpdateOne) Mutation() *QueryLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryLogUpdate builder.
func (_u *QueryLogUpdateOne) Where(ps ...predicate.QueryLog) *QueryLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryLogUpdateOne) Select(field string, fields ...string) *QueryLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryLog entity.
func (_u *QueryLogUpdateOne) Save(ctx context.Context) (*QueryLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryLogUpdateOne) SaveX(ctx context.Context) *QueryLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryLogUpdateOne) sqlSave(ctx context.Context) (_node *QueryLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(querylog.Table, querylog.Columns, sqlgraph.NewFieldSpec(querylog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, querylog.FieldID)
		for _, f := range fields {
			if !querylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != querylog.FieldID {
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
		_spec.SetField(querylog.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(querylog.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(querylog.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(querylog.FieldExplanation, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(querylog.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.RefererCleared() {
		_spec.ClearField(querylog.FieldReferer, field.TypeString)
	}
	if value, ok := _u.mutation.HistoryCount(); ok {
		_spec.SetField(querylog.FieldHistoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHistoryCount(); ok {
		_spec.AddField(querylog.FieldHistoryCount, field.TypeInt, value)
	}
	_node = &QueryLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
