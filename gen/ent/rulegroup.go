// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/rulegroup"
)

// RuleGroup is the model entity for the RuleGroup schema.
type RuleGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RuleGroupQuery when eager-loading is set.
	Edges        RuleGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RuleGroupEdges holds the relations/edges for other nodes in the graph.
type RuleGroupEdges struct {
	// Rules holds the value of the rules edge.
	Rules []*Rule `json:"rules,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RulesOrErr returns the Rules value or an error if the edge
// was not loaded in eager-loading.
func (e RuleGroupEdges) RulesOrErr() ([]*Rule, error) {
	if e.loadedTypes[0] {
		return e.Rules, nil
	}
	return nil, &NotLoadedError{edge: "rules"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e RuleGroupEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuleGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rulegroup.FieldIsActive:
			values[i] = new(sql.NullBool)
		case rulegroup.FieldName, rulegroup.FieldDescription:
			values[i] = new(sql.NullString)
		case rulegroup.FieldCreatedAt, rulegroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case rulegroup.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuleGroup fields.
func (_m *RuleGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rulegroup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rulegroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case rulegroup.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case rulegroup.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case rulegroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rulegroup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RuleGroup.
// This includes values selected through modifiers, order, etc.
func (_m *RuleGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRules queries the "rules" edge of the RuleGroup entity.
func (_m *RuleGroup) QueryRules() *RuleQuery {
	return NewRuleGroupClient(_m.config).QueryRules(_m)
}

// QueryJobs queries the "jobs" edge of the RuleGroup entity.
func (_m *RuleGroup) QueryJobs() *JobQuery {
	return NewRuleGroupClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this RuleGroup.
// Note that you need to call RuleGroup.Unwrap() before calling this method if this RuleGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuleGroup) Update() *RuleGroupUpdateOne {
	return NewRuleGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuleGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuleGroup) Unwrap() *RuleGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuleGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuleGroup) String() string {
	var builder strings.Builder
	builder.WriteString("RuleGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RuleGroups is a parsable slice of RuleGroup.
type RuleGroups []*RuleGroup
