// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
	"github.com/monailabs/monai/gen/ent/predicate"
	"github.com/monailabs/monai/gen/ent/querylog"
	"github.com/monailabs/monai/gen/ent/rule"
	"github.com/monailabs/monai/gen/ent/rulegroup"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob       = "Job"
	TypeJobData   = "JobData"
	TypeQueryLog  = "QueryLog"
	TypeRule      = "Rule"
	TypeRuleGroup = "RuleGroup"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	job_name           *string
	job_filename       *string
	description        *string
	is_active          *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	rule_groups        map[uuid.UUID]struct{}
	removedrule_groups map[uuid.UUID]struct{}
	clearedrule_groups bool
	executions         map[uuid.UUID]struct{}
	removedexecutions  map[uuid.UUID]struct{}
	clearedexecutions  bool
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobName sets the "job_name" field.
func (m *JobMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *JobMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ResetJobName resets all changes to the "job_name" field.
func (m *JobMutation) ResetJobName() {
	m.job_name = nil
}

// SetJobFilename sets the "job_filename" field.
func (m *JobMutation) SetJobFilename(s string) {
	m.job_filename = &s
}

// JobFilename returns the value of the "job_filename" field in the mutation.
func (m *JobMutation) JobFilename() (r string, exists bool) {
	v := m.job_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldJobFilename returns the old "job_filename" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobFilename: %w", err)
	}
	return oldValue.JobFilename, nil
}

// ResetJobFilename resets all changes to the "job_filename" field.
func (m *JobMutation) ResetJobFilename() {
	m.job_filename = nil
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *JobMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[job.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *JobMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[job.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, job.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *JobMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *JobMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *JobMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRuleGroupIDs adds the "rule_groups" edge to the RuleGroup entity by ids.
func (m *JobMutation) AddRuleGroupIDs(ids ...uuid.UUID) {
	if m.rule_groups == nil {
		m.rule_groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rule_groups[ids[i]] = struct{}{}
	}
}

// ClearRuleGroups clears the "rule_groups" edge to the RuleGroup entity.
func (m *JobMutation) ClearRuleGroups() {
	m.clearedrule_groups = true
}

// RuleGroupsCleared reports if the "rule_groups" edge to the RuleGroup entity was cleared.
func (m *JobMutation) RuleGroupsCleared() bool {
	return m.clearedrule_groups
}

// RemoveRuleGroupIDs removes the "rule_groups" edge to the RuleGroup entity by IDs.
func (m *JobMutation) RemoveRuleGroupIDs(ids ...uuid.UUID) {
	if m.removedrule_groups == nil {
		m.removedrule_groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rule_groups, ids[i])
		m.removedrule_groups[ids[i]] = struct{}{}
	}
}

// RemovedRuleGroups returns the removed IDs of the "rule_groups" edge to the RuleGroup entity.
func (m *JobMutation) RemovedRuleGroupsIDs() (ids []uuid.UUID) {
	for id := range m.removedrule_groups {
		ids = append(ids, id)
	}
	return
}

// RuleGroupsIDs returns the "rule_groups" edge IDs in the mutation.
func (m *JobMutation) RuleGroupsIDs() (ids []uuid.UUID) {
	for id := range m.rule_groups {
		ids = append(ids, id)
	}
	return
}

// ResetRuleGroups resets all changes to the "rule_groups" edge.
func (m *JobMutation) ResetRuleGroups() {
	m.rule_groups = nil
	m.clearedrule_groups = false
	m.removedrule_groups = nil
}

// AddExecutionIDs adds the "executions" edge to the JobData entity by ids.
func (m *JobMutation) AddExecutionIDs(ids ...uuid.UUID) {
	if m.executions == nil {
		m.executions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the JobData entity.
func (m *JobMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the JobData entity was cleared.
func (m *JobMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the JobData entity by IDs.
func (m *JobMutation) RemoveExecutionIDs(ids ...uuid.UUID) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the JobData entity.
func (m *JobMutation) RemovedExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *JobMutation) ExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *JobMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job_name != nil {
		fields = append(fields, job.FieldJobName)
	}
	if m.job_filename != nil {
		fields = append(fields, job.FieldJobFilename)
	}
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, job.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldJobName:
		return m.JobName()
	case job.FieldJobFilename:
		return m.JobFilename()
	case job.FieldDescription:
		return m.Description()
	case job.FieldIsActive:
		return m.IsActive()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldJobName:
		return m.OldJobName(ctx)
	case job.FieldJobFilename:
		return m.OldJobFilename(ctx)
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldIsActive:
		return m.OldIsActive(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case job.FieldJobFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobFilename(v)
		return nil
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldDescription) {
		fields = append(fields, job.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldJobName:
		m.ResetJobName()
		return nil
	case job.FieldJobFilename:
		m.ResetJobFilename()
		return nil
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldIsActive:
		m.ResetIsActive()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.rule_groups != nil {
		edges = append(edges, job.EdgeRuleGroups)
	}
	if m.executions != nil {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeRuleGroups:
		ids := make([]ent.Value, 0, len(m.rule_groups))
		for id := range m.rule_groups {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrule_groups != nil {
		edges = append(edges, job.EdgeRuleGroups)
	}
	if m.removedexecutions != nil {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeRuleGroups:
		ids := make([]ent.Value, 0, len(m.removedrule_groups))
		for id := range m.removedrule_groups {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrule_groups {
		edges = append(edges, job.EdgeRuleGroups)
	}
	if m.clearedexecutions {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeRuleGroups:
		return m.clearedrule_groups
	case job.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeRuleGroups:
		m.ResetRuleGroups()
		return nil
	case job.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobDataMutation represents an operation that mutates the JobData nodes in the graph.
type JobDataMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	attributes    *map[string]string
	received_at   *time.Time
	weekday       *string
	month         *string
	is_holiday    *bool
	is_outlier    *bool
	forced_result *bool
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobData, error)
	predicates    []predicate.JobData
}

var _ ent.Mutation = (*JobDataMutation)(nil)

// jobdataOption allows management of the mutation configuration using functional options.
type jobdataOption func(*JobDataMutation)

// newJobDataMutation creates new mutation for the JobData entity.
func newJobDataMutation(c config, op Op, opts ...jobdataOption) *JobDataMutation {
	m := &JobDataMutation{
		config:        c,
		op:            op,
		typ:           TypeJobData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobDataID sets the ID field of the mutation.
func withJobDataID(id uuid.UUID) jobdataOption {
	return func(m *JobDataMutation) {
		var (
			err   error
			once  sync.Once
			value *JobData
		)
		m.oldValue = func(ctx context.Context) (*JobData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobData sets the old JobData of the mutation.
func withJobData(node *JobData) jobdataOption {
	return func(m *JobDataMutation) {
		m.oldValue = func(context.Context) (*JobData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobData entities.
func (m *JobDataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobDataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobDataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobDataMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobDataMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobDataMutation) ResetJobID() {
	m.job = nil
}

// SetAttributes sets the "attributes" field.
func (m *JobDataMutation) SetAttributes(value map[string]string) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *JobDataMutation) Attributes() (r map[string]string, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldAttributes(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *JobDataMutation) ResetAttributes() {
	m.attributes = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *JobDataMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *JobDataMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *JobDataMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetWeekday sets the "weekday" field.
func (m *JobDataMutation) SetWeekday(s string) {
	m.weekday = &s
}

// Weekday returns the value of the "weekday" field in the mutation.
func (m *JobDataMutation) Weekday() (r string, exists bool) {
	v := m.weekday
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekday returns the old "weekday" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldWeekday(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekday: %w", err)
	}
	return oldValue.Weekday, nil
}

// ResetWeekday resets all changes to the "weekday" field.
func (m *JobDataMutation) ResetWeekday() {
	m.weekday = nil
}

// SetMonth sets the "month" field.
func (m *JobDataMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *JobDataMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *JobDataMutation) ResetMonth() {
	m.month = nil
}

// SetIsHoliday sets the "is_holiday" field.
func (m *JobDataMutation) SetIsHoliday(b bool) {
	m.is_holiday = &b
}

// IsHoliday returns the value of the "is_holiday" field in the mutation.
func (m *JobDataMutation) IsHoliday() (r bool, exists bool) {
	v := m.is_holiday
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHoliday returns the old "is_holiday" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldIsHoliday(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHoliday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHoliday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHoliday: %w", err)
	}
	return oldValue.IsHoliday, nil
}

// ResetIsHoliday resets all changes to the "is_holiday" field.
func (m *JobDataMutation) ResetIsHoliday() {
	m.is_holiday = nil
}

// SetIsOutlier sets the "is_outlier" field.
func (m *JobDataMutation) SetIsOutlier(b bool) {
	m.is_outlier = &b
}

// IsOutlier returns the value of the "is_outlier" field in the mutation.
func (m *JobDataMutation) IsOutlier() (r bool, exists bool) {
	v := m.is_outlier
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOutlier returns the old "is_outlier" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldIsOutlier(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOutlier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOutlier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOutlier: %w", err)
	}
	return oldValue.IsOutlier, nil
}

// ResetIsOutlier resets all changes to the "is_outlier" field.
func (m *JobDataMutation) ResetIsOutlier() {
	m.is_outlier = nil
}

// SetForcedResult sets the "forced_result" field.
func (m *JobDataMutation) SetForcedResult(b bool) {
	m.forced_result = &b
}

// ForcedResult returns the value of the "forced_result" field in the mutation.
func (m *JobDataMutation) ForcedResult() (r bool, exists bool) {
	v := m.forced_result
	if v == nil {
		return
	}
	return *v, true
}

// OldForcedResult returns the old "forced_result" field's value of the JobData entity.
// If the JobData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDataMutation) OldForcedResult(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForcedResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForcedResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForcedResult: %w", err)
	}
	return oldValue.ForcedResult, nil
}

// ResetForcedResult resets all changes to the "forced_result" field.
func (m *JobDataMutation) ResetForcedResult() {
	m.forced_result = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobDataMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobdata.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobDataMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobDataMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobDataMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobDataMutation builder.
func (m *JobDataMutation) Where(ps ...predicate.JobData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobData).
func (m *JobDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobDataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job != nil {
		fields = append(fields, jobdata.FieldJobID)
	}
	if m.attributes != nil {
		fields = append(fields, jobdata.FieldAttributes)
	}
	if m.received_at != nil {
		fields = append(fields, jobdata.FieldReceivedAt)
	}
	if m.weekday != nil {
		fields = append(fields, jobdata.FieldWeekday)
	}
	if m.month != nil {
		fields = append(fields, jobdata.FieldMonth)
	}
	if m.is_holiday != nil {
		fields = append(fields, jobdata.FieldIsHoliday)
	}
	if m.is_outlier != nil {
		fields = append(fields, jobdata.FieldIsOutlier)
	}
	if m.forced_result != nil {
		fields = append(fields, jobdata.FieldForcedResult)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobdata.FieldJobID:
		return m.JobID()
	case jobdata.FieldAttributes:
		return m.Attributes()
	case jobdata.FieldReceivedAt:
		return m.ReceivedAt()
	case jobdata.FieldWeekday:
		return m.Weekday()
	case jobdata.FieldMonth:
		return m.Month()
	case jobdata.FieldIsHoliday:
		return m.IsHoliday()
	case jobdata.FieldIsOutlier:
		return m.IsOutlier()
	case jobdata.FieldForcedResult:
		return m.ForcedResult()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobdata.FieldJobID:
		return m.OldJobID(ctx)
	case jobdata.FieldAttributes:
		return m.OldAttributes(ctx)
	case jobdata.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case jobdata.FieldWeekday:
		return m.OldWeekday(ctx)
	case jobdata.FieldMonth:
		return m.OldMonth(ctx)
	case jobdata.FieldIsHoliday:
		return m.OldIsHoliday(ctx)
	case jobdata.FieldIsOutlier:
		return m.OldIsOutlier(ctx)
	case jobdata.FieldForcedResult:
		return m.OldForcedResult(ctx)
	}
	return nil, fmt.Errorf("unknown JobData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobdata.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobdata.FieldAttributes:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case jobdata.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case jobdata.FieldWeekday:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekday(v)
		return nil
	case jobdata.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case jobdata.FieldIsHoliday:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHoliday(v)
		return nil
	case jobdata.FieldIsOutlier:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOutlier(v)
		return nil
	case jobdata.FieldForcedResult:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForcedResult(v)
		return nil
	}
	return fmt.Errorf("unknown JobData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobDataMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobDataMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobDataMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobDataMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobDataMutation) ResetField(name string) error {
	switch name {
	case jobdata.FieldJobID:
		m.ResetJobID()
		return nil
	case jobdata.FieldAttributes:
		m.ResetAttributes()
		return nil
	case jobdata.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case jobdata.FieldWeekday:
		m.ResetWeekday()
		return nil
	case jobdata.FieldMonth:
		m.ResetMonth()
		return nil
	case jobdata.FieldIsHoliday:
		m.ResetIsHoliday()
		return nil
	case jobdata.FieldIsOutlier:
		m.ResetIsOutlier()
		return nil
	case jobdata.FieldForcedResult:
		m.ResetForcedResult()
		return nil
	}
	return fmt.Errorf("unknown JobData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobdata.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobdata.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobdata.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobDataMutation) EdgeCleared(name string) bool {
	switch name {
	case jobdata.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobDataMutation) ClearEdge(name string) error {
	switch name {
	case jobdata.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobDataMutation) ResetEdge(name string) error {
	switch name {
	case jobdata.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobData edge %s", name)
}

// QueryLogMutation represents an operation that mutates the QueryLog nodes in the graph.
type QueryLogMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	job_id           *string
	attributes       *map[string]string
	result           *string
	explanation      *string
	ip_address       *string
	user_agent       *string
	referer          *string
	fingerprint      *string
	received_at      *time.Time
	history_count    *int
	addhistory_count *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*QueryLog, error)
	predicates       []predicate.QueryLog
}

var _ ent.Mutation = (*QueryLogMutation)(nil)

// querylogOption allows management of the mutation configuration using functional options.
type querylogOption func(*QueryLogMutation)

// newQueryLogMutation creates new mutation for the QueryLog entity.
func newQueryLogMutation(c config, op Op, opts ...querylogOption) *QueryLogMutation {
	m := &QueryLogMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryLogID sets the ID field of the mutation.
func withQueryLogID(id uuid.UUID) querylogOption {
	return func(m *QueryLogMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryLog
		)
		m.oldValue = func(ctx context.Context) (*QueryLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryLog sets the old QueryLog of the mutation.
func withQueryLog(node *QueryLog) querylogOption {
	return func(m *QueryLogMutation) {
		m.oldValue = func(context.Context) (*QueryLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueryLog entities.
func (m *QueryLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *QueryLogMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *QueryLogMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *QueryLogMutation) ResetJobID() {
	m.job_id = nil
}

// SetAttributes sets the "attributes" field.
func (m *QueryLogMutation) SetAttributes(value map[string]string) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *QueryLogMutation) Attributes() (r map[string]string, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldAttributes(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *QueryLogMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[querylog.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *QueryLogMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[querylog.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *QueryLogMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, querylog.FieldAttributes)
}

// SetResult sets the "result" field.
func (m *QueryLogMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *QueryLogMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *QueryLogMutation) ResetResult() {
	m.result = nil
}

// SetExplanation sets the "explanation" field.
func (m *QueryLogMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QueryLogMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QueryLogMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[querylog.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QueryLogMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[querylog.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QueryLogMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, querylog.FieldExplanation)
}

// SetIPAddress sets the "ip_address" field.
func (m *QueryLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *QueryLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *QueryLogMutation) ResetIPAddress() {
	m.ip_address = nil
}

// SetUserAgent sets the "user_agent" field.
func (m *QueryLogMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *QueryLogMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *QueryLogMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[querylog.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *QueryLogMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[querylog.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *QueryLogMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, querylog.FieldUserAgent)
}

// SetReferer sets the "referer" field.
func (m *QueryLogMutation) SetReferer(s string) {
	m.referer = &s
}

// Referer returns the value of the "referer" field in the mutation.
func (m *QueryLogMutation) Referer() (r string, exists bool) {
	v := m.referer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferer returns the old "referer" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldReferer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferer: %w", err)
	}
	return oldValue.Referer, nil
}

// ClearReferer clears the value of the "referer" field.
func (m *QueryLogMutation) ClearReferer() {
	m.referer = nil
	m.clearedFields[querylog.FieldReferer] = struct{}{}
}

// RefererCleared returns if the "referer" field was cleared in this mutation.
func (m *QueryLogMutation) RefererCleared() bool {
	_, ok := m.clearedFields[querylog.FieldReferer]
	return ok
}

// ResetReferer resets all changes to the "referer" field.
func (m *QueryLogMutation) ResetReferer() {
	m.referer = nil
	delete(m.clearedFields, querylog.FieldReferer)
}

// SetFingerprint sets the "fingerprint" field.
func (m *QueryLogMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *QueryLogMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *QueryLogMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *QueryLogMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *QueryLogMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *QueryLogMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetHistoryCount sets the "history_count" field.
func (m *QueryLogMutation) SetHistoryCount(i int) {
	m.history_count = &i
	m.addhistory_count = nil
}

// HistoryCount returns the value of the "history_count" field in the mutation.
func (m *QueryLogMutation) HistoryCount() (r int, exists bool) {
	v := m.history_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHistoryCount returns the old "history_count" field's value of the QueryLog entity.
// If the QueryLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryLogMutation) OldHistoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistoryCount: %w", err)
	}
	return oldValue.HistoryCount, nil
}

// AddHistoryCount adds i to the "history_count" field.
func (m *QueryLogMutation) AddHistoryCount(i int) {
	if m.addhistory_count != nil {
		*m.addhistory_count += i
	} else {
		m.addhistory_count = &i
	}
}

// AddedHistoryCount returns the value that was added to the "history_count" field in this mutation.
func (m *QueryLogMutation) AddedHistoryCount() (r int, exists bool) {
	v := m.addhistory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHistoryCount resets all changes to the "history_count" field.
func (m *QueryLogMutation) ResetHistoryCount() {
	m.history_count = nil
	m.addhistory_count = nil
}

// Where appends a list predicates to the QueryLogMutation builder.
func (m *QueryLogMutation) Where(ps ...predicate.QueryLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryLog).
func (m *QueryLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.job_id != nil {
		fields = append(fields, querylog.FieldJobID)
	}
	if m.attributes != nil {
		fields = append(fields, querylog.FieldAttributes)
	}
	if m.result != nil {
		fields = append(fields, querylog.FieldResult)
	}
	if m.explanation != nil {
		fields = append(fields, querylog.FieldExplanation)
	}
	if m.ip_address != nil {
		fields = append(fields, querylog.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, querylog.FieldUserAgent)
	}
	if m.referer != nil {
		fields = append(fields, querylog.FieldReferer)
	}
	if m.fingerprint != nil {
		fields = append(fields, querylog.FieldFingerprint)
	}
	if m.received_at != nil {
		fields = append(fields, querylog.FieldReceivedAt)
	}
	if m.history_count != nil {
		fields = append(fields, querylog.FieldHistoryCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case querylog.FieldJobID:
		return m.JobID()
	case querylog.FieldAttributes:
		return m.Attributes()
	case querylog.FieldResult:
		return m.Result()
	case querylog.FieldExplanation:
		return m.Explanation()
	case querylog.FieldIPAddress:
		return m.IPAddress()
	case querylog.FieldUserAgent:
		return m.UserAgent()
	case querylog.FieldReferer:
		return m.Referer()
	case querylog.FieldFingerprint:
		return m.Fingerprint()
	case querylog.FieldReceivedAt:
		return m.ReceivedAt()
	case querylog.FieldHistoryCount:
		return m.HistoryCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case querylog.FieldJobID:
		return m.OldJobID(ctx)
	case querylog.FieldAttributes:
		return m.OldAttributes(ctx)
	case querylog.FieldResult:
		return m.OldResult(ctx)
	case querylog.FieldExplanation:
		return m.OldExplanation(ctx)
	case querylog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case querylog.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case querylog.FieldReferer:
		return m.OldReferer(ctx)
	case querylog.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case querylog.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case querylog.FieldHistoryCount:
		return m.OldHistoryCount(ctx)
	}
	return nil, fmt.Errorf("unknown QueryLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case querylog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case querylog.FieldAttributes:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case querylog.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case querylog.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case querylog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case querylog.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case querylog.FieldReferer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferer(v)
		return nil
	case querylog.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case querylog.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case querylog.FieldHistoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistoryCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueryLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryLogMutation) AddedFields() []string {
	var fields []string
	if m.addhistory_count != nil {
		fields = append(fields, querylog.FieldHistoryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case querylog.FieldHistoryCount:
		return m.AddedHistoryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case querylog.FieldHistoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHistoryCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueryLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(querylog.FieldAttributes) {
		fields = append(fields, querylog.FieldAttributes)
	}
	if m.FieldCleared(querylog.FieldExplanation) {
		fields = append(fields, querylog.FieldExplanation)
	}
	if m.FieldCleared(querylog.FieldUserAgent) {
		fields = append(fields, querylog.FieldUserAgent)
	}
	if m.FieldCleared(querylog.FieldReferer) {
		fields = append(fields, querylog.FieldReferer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryLogMutation) ClearField(name string) error {
	switch name {
	case querylog.FieldAttributes:
		m.ClearAttributes()
		return nil
	case querylog.FieldExplanation:
		m.ClearExplanation()
		return nil
	case querylog.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case querylog.FieldReferer:
		m.ClearReferer()
		return nil
	}
	return fmt.Errorf("unknown QueryLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryLogMutation) ResetField(name string) error {
	switch name {
	case querylog.FieldJobID:
		m.ResetJobID()
		return nil
	case querylog.FieldAttributes:
		m.ResetAttributes()
		return nil
	case querylog.FieldResult:
		m.ResetResult()
		return nil
	case querylog.FieldExplanation:
		m.ResetExplanation()
		return nil
	case querylog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case querylog.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case querylog.FieldReferer:
		m.ResetReferer()
		return nil
	case querylog.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case querylog.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case querylog.FieldHistoryCount:
		m.ResetHistoryCount()
		return nil
	}
	return fmt.Errorf("unknown QueryLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueryLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueryLog edge %s", name)
}

// RuleMutation represents an operation that mutates the Rule nodes in the graph.
type RuleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	description   *string
	rule_text     *string
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	groups        map[uuid.UUID]struct{}
	removedgroups map[uuid.UUID]struct{}
	clearedgroups bool
	done          bool
	oldValue      func(context.Context) (*Rule, error)
	predicates    []predicate.Rule
}

var _ ent.Mutation = (*RuleMutation)(nil)

// ruleOption allows management of the mutation configuration using functional options.
type ruleOption func(*RuleMutation)

// newRuleMutation creates new mutation for the Rule entity.
func newRuleMutation(c config, op Op, opts ...ruleOption) *RuleMutation {
	m := &RuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleID sets the ID field of the mutation.
func withRuleID(id uuid.UUID) ruleOption {
	return func(m *RuleMutation) {
		var (
			err   error
			once  sync.Once
			value *Rule
		)
		m.oldValue = func(ctx context.Context) (*Rule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRule sets the old Rule of the mutation.
func withRule(node *Rule) ruleOption {
	return func(m *RuleMutation) {
		m.oldValue = func(context.Context) (*Rule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rule entities.
func (m *RuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RuleMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[rule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[rule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, rule.FieldDescription)
}

// SetRuleText sets the "rule_text" field.
func (m *RuleMutation) SetRuleText(s string) {
	m.rule_text = &s
}

// RuleText returns the value of the "rule_text" field in the mutation.
func (m *RuleMutation) RuleText() (r string, exists bool) {
	v := m.rule_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleText returns the old "rule_text" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldRuleText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleText: %w", err)
	}
	return oldValue.RuleText, nil
}

// ResetRuleText resets all changes to the "rule_text" field.
func (m *RuleMutation) ResetRuleText() {
	m.rule_text = nil
}

// SetIsActive sets the "is_active" field.
func (m *RuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddGroupIDs adds the "groups" edge to the RuleGroup entity by ids.
func (m *RuleMutation) AddGroupIDs(ids ...uuid.UUID) {
	if m.groups == nil {
		m.groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the RuleGroup entity.
func (m *RuleMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the RuleGroup entity was cleared.
func (m *RuleMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the RuleGroup entity by IDs.
func (m *RuleMutation) RemoveGroupIDs(ids ...uuid.UUID) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the RuleGroup entity.
func (m *RuleMutation) RemovedGroupsIDs() (ids []uuid.UUID) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *RuleMutation) GroupsIDs() (ids []uuid.UUID) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *RuleMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// Where appends a list predicates to the RuleMutation builder.
func (m *RuleMutation) Where(ps ...predicate.Rule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rule).
func (m *RuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, rule.FieldName)
	}
	if m.description != nil {
		fields = append(fields, rule.FieldDescription)
	}
	if m.rule_text != nil {
		fields = append(fields, rule.FieldRuleText)
	}
	if m.is_active != nil {
		fields = append(fields, rule.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, rule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rule.FieldName:
		return m.Name()
	case rule.FieldDescription:
		return m.Description()
	case rule.FieldRuleText:
		return m.RuleText()
	case rule.FieldIsActive:
		return m.IsActive()
	case rule.FieldCreatedAt:
		return m.CreatedAt()
	case rule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rule.FieldName:
		return m.OldName(ctx)
	case rule.FieldDescription:
		return m.OldDescription(ctx)
	case rule.FieldRuleText:
		return m.OldRuleText(ctx)
	case rule.FieldIsActive:
		return m.OldIsActive(ctx)
	case rule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case rule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case rule.FieldRuleText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleText(v)
		return nil
	case rule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case rule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Rule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rule.FieldDescription) {
		fields = append(fields, rule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleMutation) ClearField(name string) error {
	switch name {
	case rule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Rule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleMutation) ResetField(name string) error {
	switch name {
	case rule.FieldName:
		m.ResetName()
		return nil
	case rule.FieldDescription:
		m.ResetDescription()
		return nil
	case rule.FieldRuleText:
		m.ResetRuleText()
		return nil
	case rule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case rule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.groups != nil {
		edges = append(edges, rule.EdgeGroups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgroups != nil {
		edges = append(edges, rule.EdgeGroups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroups {
		edges = append(edges, rule.EdgeGroups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleMutation) EdgeCleared(name string) bool {
	switch name {
	case rule.EdgeGroups:
		return m.clearedgroups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Rule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleMutation) ResetEdge(name string) error {
	switch name {
	case rule.EdgeGroups:
		m.ResetGroups()
		return nil
	}
	return fmt.Errorf("unknown Rule edge %s", name)
}

// RuleGroupMutation represents an operation that mutates the RuleGroup nodes in the graph.
type RuleGroupMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	description   *string
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	rules         map[uuid.UUID]struct{}
	removedrules  map[uuid.UUID]struct{}
	clearedrules  bool
	jobs          map[string]struct{}
	removedjobs   map[string]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*RuleGroup, error)
	predicates    []predicate.RuleGroup
}

var _ ent.Mutation = (*RuleGroupMutation)(nil)

// rulegroupOption allows management of the mutation configuration using functional options.
type rulegroupOption func(*RuleGroupMutation)

// newRuleGroupMutation creates new mutation for the RuleGroup entity.
func newRuleGroupMutation(c config, op Op, opts ...rulegroupOption) *RuleGroupMutation {
	m := &RuleGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeRuleGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleGroupID sets the ID field of the mutation.
func withRuleGroupID(id uuid.UUID) rulegroupOption {
	return func(m *RuleGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *RuleGroup
		)
		m.oldValue = func(ctx context.Context) (*RuleGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuleGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuleGroup sets the old RuleGroup of the mutation.
func withRuleGroup(node *RuleGroup) rulegroupOption {
	return func(m *RuleGroupMutation) {
		m.oldValue = func(context.Context) (*RuleGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RuleGroup entities.
func (m *RuleGroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleGroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleGroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuleGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RuleGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RuleGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RuleGroup entity.
// If the RuleGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RuleGroupMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RuleGroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RuleGroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RuleGroup entity.
// If the RuleGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleGroupMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RuleGroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[rulegroup.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RuleGroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[rulegroup.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RuleGroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, rulegroup.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *RuleGroupMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RuleGroupMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the RuleGroup entity.
// If the RuleGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleGroupMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RuleGroupMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RuleGroup entity.
// If the RuleGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuleGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuleGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RuleGroup entity.
// If the RuleGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuleGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRuleIDs adds the "rules" edge to the Rule entity by ids.
func (m *RuleGroupMutation) AddRuleIDs(ids ...uuid.UUID) {
	if m.rules == nil {
		m.rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the Rule entity.
func (m *RuleGroupMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the Rule entity was cleared.
func (m *RuleGroupMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the Rule entity by IDs.
func (m *RuleGroupMutation) RemoveRuleIDs(ids ...uuid.UUID) {
	if m.removedrules == nil {
		m.removedrules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the Rule entity.
func (m *RuleGroupMutation) RemovedRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *RuleGroupMutation) RulesIDs() (ids []uuid.UUID) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *RuleGroupMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *RuleGroupMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *RuleGroupMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *RuleGroupMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *RuleGroupMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *RuleGroupMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *RuleGroupMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *RuleGroupMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the RuleGroupMutation builder.
func (m *RuleGroupMutation) Where(ps ...predicate.RuleGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuleGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuleGroup).
func (m *RuleGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleGroupMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, rulegroup.FieldName)
	}
	if m.description != nil {
		fields = append(fields, rulegroup.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, rulegroup.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, rulegroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rulegroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rulegroup.FieldName:
		return m.Name()
	case rulegroup.FieldDescription:
		return m.Description()
	case rulegroup.FieldIsActive:
		return m.IsActive()
	case rulegroup.FieldCreatedAt:
		return m.CreatedAt()
	case rulegroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rulegroup.FieldName:
		return m.OldName(ctx)
	case rulegroup.FieldDescription:
		return m.OldDescription(ctx)
	case rulegroup.FieldIsActive:
		return m.OldIsActive(ctx)
	case rulegroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rulegroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RuleGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rulegroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case rulegroup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case rulegroup.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case rulegroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rulegroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RuleGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RuleGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rulegroup.FieldDescription) {
		fields = append(fields, rulegroup.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleGroupMutation) ClearField(name string) error {
	switch name {
	case rulegroup.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown RuleGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleGroupMutation) ResetField(name string) error {
	switch name {
	case rulegroup.FieldName:
		m.ResetName()
		return nil
	case rulegroup.FieldDescription:
		m.ResetDescription()
		return nil
	case rulegroup.FieldIsActive:
		m.ResetIsActive()
		return nil
	case rulegroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rulegroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RuleGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.rules != nil {
		edges = append(edges, rulegroup.EdgeRules)
	}
	if m.jobs != nil {
		edges = append(edges, rulegroup.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rulegroup.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	case rulegroup.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrules != nil {
		edges = append(edges, rulegroup.EdgeRules)
	}
	if m.removedjobs != nil {
		edges = append(edges, rulegroup.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rulegroup.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	case rulegroup.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrules {
		edges = append(edges, rulegroup.EdgeRules)
	}
	if m.clearedjobs {
		edges = append(edges, rulegroup.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case rulegroup.EdgeRules:
		return m.clearedrules
	case rulegroup.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RuleGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleGroupMutation) ResetEdge(name string) error {
	switch name {
	case rulegroup.EdgeRules:
		m.ResetRules()
		return nil
	case rulegroup.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown RuleGroup edge %s", name)
}
