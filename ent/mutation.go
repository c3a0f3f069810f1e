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
	"github.com/scribeflow/scribeflow/ent/event"
	"github.com/scribeflow/scribeflow/ent/predicate"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
	"github.com/scribeflow/scribeflow/ent/summary"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/ent/taskstage"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent             = "Event"
	TypeQuotaEntry        = "QuotaEntry"
	TypeSummary           = "Summary"
	TypeTask              = "Task"
	TypeTaskStage         = "TaskStage"
	TypeTranscriptSegment = "TranscriptSegment"
	TypeUsageRecord       = "UsageRecord"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *EventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *EventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// QuotaEntryMutation represents an operation that mutates the QuotaEntry nodes in the graph.
type QuotaEntryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	owner            *string
	provider         *string
	variant          *quotaentry.Variant
	window_type      *quotaentry.WindowType
	window_start     *time.Time
	window_end       *time.Time
	quota_seconds    *float64
	addquota_seconds *float64
	used_seconds     *float64
	addused_seconds  *float64
	status           *quotaentry.Status
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*QuotaEntry, error)
	predicates       []predicate.QuotaEntry
}

var _ ent.Mutation = (*QuotaEntryMutation)(nil)

// quotaentryOption allows management of the mutation configuration using functional options.
type quotaentryOption func(*QuotaEntryMutation)

// newQuotaEntryMutation creates new mutation for the QuotaEntry entity.
func newQuotaEntryMutation(c config, op Op, opts ...quotaentryOption) *QuotaEntryMutation {
	m := &QuotaEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaEntryID sets the ID field of the mutation.
func withQuotaEntryID(id string) quotaentryOption {
	return func(m *QuotaEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaEntry
		)
		m.oldValue = func(ctx context.Context) (*QuotaEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaEntry sets the old QuotaEntry of the mutation.
func withQuotaEntry(node *QuotaEntry) quotaentryOption {
	return func(m *QuotaEntryMutation) {
		m.oldValue = func(context.Context) (*QuotaEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuotaEntry entities.
func (m *QuotaEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *QuotaEntryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *QuotaEntryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *QuotaEntryMutation) ResetOwner() {
	m.owner = nil
}

// SetProvider sets the "provider" field.
func (m *QuotaEntryMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *QuotaEntryMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *QuotaEntryMutation) ResetProvider() {
	m.provider = nil
}

// SetVariant sets the "variant" field.
func (m *QuotaEntryMutation) SetVariant(q quotaentry.Variant) {
	m.variant = &q
}

// Variant returns the value of the "variant" field in the mutation.
func (m *QuotaEntryMutation) Variant() (r quotaentry.Variant, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldVariant(ctx context.Context) (v quotaentry.Variant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *QuotaEntryMutation) ResetVariant() {
	m.variant = nil
}

// SetWindowType sets the "window_type" field.
func (m *QuotaEntryMutation) SetWindowType(qt quotaentry.WindowType) {
	m.window_type = &qt
}

// WindowType returns the value of the "window_type" field in the mutation.
func (m *QuotaEntryMutation) WindowType() (r quotaentry.WindowType, exists bool) {
	v := m.window_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowType returns the old "window_type" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldWindowType(ctx context.Context) (v quotaentry.WindowType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowType: %w", err)
	}
	return oldValue.WindowType, nil
}

// ResetWindowType resets all changes to the "window_type" field.
func (m *QuotaEntryMutation) ResetWindowType() {
	m.window_type = nil
}

// SetWindowStart sets the "window_start" field.
func (m *QuotaEntryMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *QuotaEntryMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *QuotaEntryMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *QuotaEntryMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *QuotaEntryMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldWindowEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ClearWindowEnd clears the value of the "window_end" field.
func (m *QuotaEntryMutation) ClearWindowEnd() {
	m.window_end = nil
	m.clearedFields[quotaentry.FieldWindowEnd] = struct{}{}
}

// WindowEndCleared returns if the "window_end" field was cleared in this mutation.
func (m *QuotaEntryMutation) WindowEndCleared() bool {
	_, ok := m.clearedFields[quotaentry.FieldWindowEnd]
	return ok
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *QuotaEntryMutation) ResetWindowEnd() {
	m.window_end = nil
	delete(m.clearedFields, quotaentry.FieldWindowEnd)
}

// SetQuotaSeconds sets the "quota_seconds" field.
func (m *QuotaEntryMutation) SetQuotaSeconds(f float64) {
	m.quota_seconds = &f
	m.addquota_seconds = nil
}

// QuotaSeconds returns the value of the "quota_seconds" field in the mutation.
func (m *QuotaEntryMutation) QuotaSeconds() (r float64, exists bool) {
	v := m.quota_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldQuotaSeconds returns the old "quota_seconds" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldQuotaSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuotaSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuotaSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuotaSeconds: %w", err)
	}
	return oldValue.QuotaSeconds, nil
}

// AddQuotaSeconds adds f to the "quota_seconds" field.
func (m *QuotaEntryMutation) AddQuotaSeconds(f float64) {
	if m.addquota_seconds != nil {
		*m.addquota_seconds += f
	} else {
		m.addquota_seconds = &f
	}
}

// AddedQuotaSeconds returns the value that was added to the "quota_seconds" field in this mutation.
func (m *QuotaEntryMutation) AddedQuotaSeconds() (r float64, exists bool) {
	v := m.addquota_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuotaSeconds resets all changes to the "quota_seconds" field.
func (m *QuotaEntryMutation) ResetQuotaSeconds() {
	m.quota_seconds = nil
	m.addquota_seconds = nil
}

// SetUsedSeconds sets the "used_seconds" field.
func (m *QuotaEntryMutation) SetUsedSeconds(f float64) {
	m.used_seconds = &f
	m.addused_seconds = nil
}

// UsedSeconds returns the value of the "used_seconds" field in the mutation.
func (m *QuotaEntryMutation) UsedSeconds() (r float64, exists bool) {
	v := m.used_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedSeconds returns the old "used_seconds" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldUsedSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedSeconds: %w", err)
	}
	return oldValue.UsedSeconds, nil
}

// AddUsedSeconds adds f to the "used_seconds" field.
func (m *QuotaEntryMutation) AddUsedSeconds(f float64) {
	if m.addused_seconds != nil {
		*m.addused_seconds += f
	} else {
		m.addused_seconds = &f
	}
}

// AddedUsedSeconds returns the value that was added to the "used_seconds" field in this mutation.
func (m *QuotaEntryMutation) AddedUsedSeconds() (r float64, exists bool) {
	v := m.addused_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedSeconds resets all changes to the "used_seconds" field.
func (m *QuotaEntryMutation) ResetUsedSeconds() {
	m.used_seconds = nil
	m.addused_seconds = nil
}

// SetStatus sets the "status" field.
func (m *QuotaEntryMutation) SetStatus(q quotaentry.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QuotaEntryMutation) Status() (r quotaentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldStatus(ctx context.Context) (v quotaentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuotaEntryMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuotaEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuotaEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QuotaEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuotaEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuotaEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuotaEntry entity.
// If the QuotaEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QuotaEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QuotaEntryMutation builder.
func (m *QuotaEntryMutation) Where(ps ...predicate.QuotaEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaEntry).
func (m *QuotaEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner != nil {
		fields = append(fields, quotaentry.FieldOwner)
	}
	if m.provider != nil {
		fields = append(fields, quotaentry.FieldProvider)
	}
	if m.variant != nil {
		fields = append(fields, quotaentry.FieldVariant)
	}
	if m.window_type != nil {
		fields = append(fields, quotaentry.FieldWindowType)
	}
	if m.window_start != nil {
		fields = append(fields, quotaentry.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, quotaentry.FieldWindowEnd)
	}
	if m.quota_seconds != nil {
		fields = append(fields, quotaentry.FieldQuotaSeconds)
	}
	if m.used_seconds != nil {
		fields = append(fields, quotaentry.FieldUsedSeconds)
	}
	if m.status != nil {
		fields = append(fields, quotaentry.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, quotaentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, quotaentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotaentry.FieldOwner:
		return m.Owner()
	case quotaentry.FieldProvider:
		return m.Provider()
	case quotaentry.FieldVariant:
		return m.Variant()
	case quotaentry.FieldWindowType:
		return m.WindowType()
	case quotaentry.FieldWindowStart:
		return m.WindowStart()
	case quotaentry.FieldWindowEnd:
		return m.WindowEnd()
	case quotaentry.FieldQuotaSeconds:
		return m.QuotaSeconds()
	case quotaentry.FieldUsedSeconds:
		return m.UsedSeconds()
	case quotaentry.FieldStatus:
		return m.Status()
	case quotaentry.FieldCreatedAt:
		return m.CreatedAt()
	case quotaentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotaentry.FieldOwner:
		return m.OldOwner(ctx)
	case quotaentry.FieldProvider:
		return m.OldProvider(ctx)
	case quotaentry.FieldVariant:
		return m.OldVariant(ctx)
	case quotaentry.FieldWindowType:
		return m.OldWindowType(ctx)
	case quotaentry.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case quotaentry.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case quotaentry.FieldQuotaSeconds:
		return m.OldQuotaSeconds(ctx)
	case quotaentry.FieldUsedSeconds:
		return m.OldUsedSeconds(ctx)
	case quotaentry.FieldStatus:
		return m.OldStatus(ctx)
	case quotaentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case quotaentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotaentry.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case quotaentry.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case quotaentry.FieldVariant:
		v, ok := value.(quotaentry.Variant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case quotaentry.FieldWindowType:
		v, ok := value.(quotaentry.WindowType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowType(v)
		return nil
	case quotaentry.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case quotaentry.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case quotaentry.FieldQuotaSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuotaSeconds(v)
		return nil
	case quotaentry.FieldUsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedSeconds(v)
		return nil
	case quotaentry.FieldStatus:
		v, ok := value.(quotaentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case quotaentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case quotaentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaEntryMutation) AddedFields() []string {
	var fields []string
	if m.addquota_seconds != nil {
		fields = append(fields, quotaentry.FieldQuotaSeconds)
	}
	if m.addused_seconds != nil {
		fields = append(fields, quotaentry.FieldUsedSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotaentry.FieldQuotaSeconds:
		return m.AddedQuotaSeconds()
	case quotaentry.FieldUsedSeconds:
		return m.AddedUsedSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotaentry.FieldQuotaSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuotaSeconds(v)
		return nil
	case quotaentry.FieldUsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quotaentry.FieldWindowEnd) {
		fields = append(fields, quotaentry.FieldWindowEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaEntryMutation) ClearField(name string) error {
	switch name {
	case quotaentry.FieldWindowEnd:
		m.ClearWindowEnd()
		return nil
	}
	return fmt.Errorf("unknown QuotaEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaEntryMutation) ResetField(name string) error {
	switch name {
	case quotaentry.FieldOwner:
		m.ResetOwner()
		return nil
	case quotaentry.FieldProvider:
		m.ResetProvider()
		return nil
	case quotaentry.FieldVariant:
		m.ResetVariant()
		return nil
	case quotaentry.FieldWindowType:
		m.ResetWindowType()
		return nil
	case quotaentry.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case quotaentry.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case quotaentry.FieldQuotaSeconds:
		m.ResetQuotaSeconds()
		return nil
	case quotaentry.FieldUsedSeconds:
		m.ResetUsedSeconds()
		return nil
	case quotaentry.FieldStatus:
		m.ResetStatus()
		return nil
	case quotaentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case quotaentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaEntry edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	summary_type   *summary.SummaryType
	version        *int
	addversion     *int
	is_active      *bool
	content        *string
	visual_format  *string
	visual_content *string
	image_key      *string
	model_used     *string
	prompt_version *string
	token_count    *int
	addtoken_count *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*Summary, error)
	predicates     []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id string) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Summary entities.
func (m *SummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SummaryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SummaryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SummaryMutation) ResetTaskID() {
	m.task = nil
}

// SetSummaryType sets the "summary_type" field.
func (m *SummaryMutation) SetSummaryType(st summary.SummaryType) {
	m.summary_type = &st
}

// SummaryType returns the value of the "summary_type" field in the mutation.
func (m *SummaryMutation) SummaryType() (r summary.SummaryType, exists bool) {
	v := m.summary_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryType returns the old "summary_type" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldSummaryType(ctx context.Context) (v summary.SummaryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryType: %w", err)
	}
	return oldValue.SummaryType, nil
}

// ResetSummaryType resets all changes to the "summary_type" field.
func (m *SummaryMutation) ResetSummaryType() {
	m.summary_type = nil
}

// SetVersion sets the "version" field.
func (m *SummaryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SummaryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SummaryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SummaryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SummaryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsActive sets the "is_active" field.
func (m *SummaryMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SummaryMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldIsActive(ctx context.Context) (v bool, err error) {
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
func (m *SummaryMutation) ResetIsActive() {
	m.is_active = nil
}

// SetContent sets the "content" field.
func (m *SummaryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SummaryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummaryMutation) ResetContent() {
	m.content = nil
}

// SetVisualFormat sets the "visual_format" field.
func (m *SummaryMutation) SetVisualFormat(s string) {
	m.visual_format = &s
}

// VisualFormat returns the value of the "visual_format" field in the mutation.
func (m *SummaryMutation) VisualFormat() (r string, exists bool) {
	v := m.visual_format
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualFormat returns the old "visual_format" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldVisualFormat(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualFormat: %w", err)
	}
	return oldValue.VisualFormat, nil
}

// ClearVisualFormat clears the value of the "visual_format" field.
func (m *SummaryMutation) ClearVisualFormat() {
	m.visual_format = nil
	m.clearedFields[summary.FieldVisualFormat] = struct{}{}
}

// VisualFormatCleared returns if the "visual_format" field was cleared in this mutation.
func (m *SummaryMutation) VisualFormatCleared() bool {
	_, ok := m.clearedFields[summary.FieldVisualFormat]
	return ok
}

// ResetVisualFormat resets all changes to the "visual_format" field.
func (m *SummaryMutation) ResetVisualFormat() {
	m.visual_format = nil
	delete(m.clearedFields, summary.FieldVisualFormat)
}

// SetVisualContent sets the "visual_content" field.
func (m *SummaryMutation) SetVisualContent(s string) {
	m.visual_content = &s
}

// VisualContent returns the value of the "visual_content" field in the mutation.
func (m *SummaryMutation) VisualContent() (r string, exists bool) {
	v := m.visual_content
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualContent returns the old "visual_content" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldVisualContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualContent: %w", err)
	}
	return oldValue.VisualContent, nil
}

// ClearVisualContent clears the value of the "visual_content" field.
func (m *SummaryMutation) ClearVisualContent() {
	m.visual_content = nil
	m.clearedFields[summary.FieldVisualContent] = struct{}{}
}

// VisualContentCleared returns if the "visual_content" field was cleared in this mutation.
func (m *SummaryMutation) VisualContentCleared() bool {
	_, ok := m.clearedFields[summary.FieldVisualContent]
	return ok
}

// ResetVisualContent resets all changes to the "visual_content" field.
func (m *SummaryMutation) ResetVisualContent() {
	m.visual_content = nil
	delete(m.clearedFields, summary.FieldVisualContent)
}

// SetImageKey sets the "image_key" field.
func (m *SummaryMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *SummaryMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *SummaryMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[summary.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *SummaryMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[summary.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *SummaryMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, summary.FieldImageKey)
}

// SetModelUsed sets the "model_used" field.
func (m *SummaryMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *SummaryMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *SummaryMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[summary.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *SummaryMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[summary.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *SummaryMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, summary.FieldModelUsed)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *SummaryMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *SummaryMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *SummaryMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[summary.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *SummaryMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[summary.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *SummaryMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, summary.FieldPromptVersion)
}

// SetTokenCount sets the "token_count" field.
func (m *SummaryMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *SummaryMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *SummaryMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *SummaryMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *SummaryMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[summary.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *SummaryMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[summary.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *SummaryMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, summary.FieldTokenCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SummaryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[summary.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SummaryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SummaryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SummaryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, summary.FieldTaskID)
	}
	if m.summary_type != nil {
		fields = append(fields, summary.FieldSummaryType)
	}
	if m.version != nil {
		fields = append(fields, summary.FieldVersion)
	}
	if m.is_active != nil {
		fields = append(fields, summary.FieldIsActive)
	}
	if m.content != nil {
		fields = append(fields, summary.FieldContent)
	}
	if m.visual_format != nil {
		fields = append(fields, summary.FieldVisualFormat)
	}
	if m.visual_content != nil {
		fields = append(fields, summary.FieldVisualContent)
	}
	if m.image_key != nil {
		fields = append(fields, summary.FieldImageKey)
	}
	if m.model_used != nil {
		fields = append(fields, summary.FieldModelUsed)
	}
	if m.prompt_version != nil {
		fields = append(fields, summary.FieldPromptVersion)
	}
	if m.token_count != nil {
		fields = append(fields, summary.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, summary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldTaskID:
		return m.TaskID()
	case summary.FieldSummaryType:
		return m.SummaryType()
	case summary.FieldVersion:
		return m.Version()
	case summary.FieldIsActive:
		return m.IsActive()
	case summary.FieldContent:
		return m.Content()
	case summary.FieldVisualFormat:
		return m.VisualFormat()
	case summary.FieldVisualContent:
		return m.VisualContent()
	case summary.FieldImageKey:
		return m.ImageKey()
	case summary.FieldModelUsed:
		return m.ModelUsed()
	case summary.FieldPromptVersion:
		return m.PromptVersion()
	case summary.FieldTokenCount:
		return m.TokenCount()
	case summary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldTaskID:
		return m.OldTaskID(ctx)
	case summary.FieldSummaryType:
		return m.OldSummaryType(ctx)
	case summary.FieldVersion:
		return m.OldVersion(ctx)
	case summary.FieldIsActive:
		return m.OldIsActive(ctx)
	case summary.FieldContent:
		return m.OldContent(ctx)
	case summary.FieldVisualFormat:
		return m.OldVisualFormat(ctx)
	case summary.FieldVisualContent:
		return m.OldVisualContent(ctx)
	case summary.FieldImageKey:
		return m.OldImageKey(ctx)
	case summary.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case summary.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case summary.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case summary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case summary.FieldSummaryType:
		v, ok := value.(summary.SummaryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryType(v)
		return nil
	case summary.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case summary.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case summary.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case summary.FieldVisualFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualFormat(v)
		return nil
	case summary.FieldVisualContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualContent(v)
		return nil
	case summary.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	case summary.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case summary.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case summary.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case summary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, summary.FieldVersion)
	}
	if m.addtoken_count != nil {
		fields = append(fields, summary.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldVersion:
		return m.AddedVersion()
	case summary.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summary.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case summary.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summary.FieldVisualFormat) {
		fields = append(fields, summary.FieldVisualFormat)
	}
	if m.FieldCleared(summary.FieldVisualContent) {
		fields = append(fields, summary.FieldVisualContent)
	}
	if m.FieldCleared(summary.FieldImageKey) {
		fields = append(fields, summary.FieldImageKey)
	}
	if m.FieldCleared(summary.FieldModelUsed) {
		fields = append(fields, summary.FieldModelUsed)
	}
	if m.FieldCleared(summary.FieldPromptVersion) {
		fields = append(fields, summary.FieldPromptVersion)
	}
	if m.FieldCleared(summary.FieldTokenCount) {
		fields = append(fields, summary.FieldTokenCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	switch name {
	case summary.FieldVisualFormat:
		m.ClearVisualFormat()
		return nil
	case summary.FieldVisualContent:
		m.ClearVisualContent()
		return nil
	case summary.FieldImageKey:
		m.ClearImageKey()
		return nil
	case summary.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	case summary.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case summary.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	}
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldTaskID:
		m.ResetTaskID()
		return nil
	case summary.FieldSummaryType:
		m.ResetSummaryType()
		return nil
	case summary.FieldVersion:
		m.ResetVersion()
		return nil
	case summary.FieldIsActive:
		m.ResetIsActive()
		return nil
	case summary.FieldContent:
		m.ResetContent()
		return nil
	case summary.FieldVisualFormat:
		m.ResetVisualFormat()
		return nil
	case summary.FieldVisualContent:
		m.ResetVisualContent()
		return nil
	case summary.FieldImageKey:
		m.ResetImageKey()
		return nil
	case summary.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case summary.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case summary.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case summary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, summary.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, summary.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case summary.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	switch name {
	case summary.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	switch name {
	case summary.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Summary edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	title               *string
	kind                *task.Kind
	source_type         *task.SourceType
	file_key            *string
	source_url          *string
	content_hash        *string
	options             *map[string]interface{}
	status              *task.Status
	progress            *int
	addprogress         *int
	duration_seconds    *float64
	addduration_seconds *float64
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	pod_id              *string
	last_heartbeat_at   *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	stages              map[string]struct{}
	removedstages       map[string]struct{}
	clearedstages       bool
	segments            map[string]struct{}
	removedsegments     map[string]struct{}
	clearedsegments     bool
	summaries           map[string]struct{}
	removedsummaries    map[string]struct{}
	clearedsummaries    bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TaskMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[task.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TaskMutation) TitleCleared() bool {
	_, ok := m.clearedFields[task.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, task.FieldTitle)
}

// SetKind sets the "kind" field.
func (m *TaskMutation) SetKind(t task.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskMutation) Kind() (r task.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKind(ctx context.Context) (v task.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskMutation) ResetKind() {
	m.kind = nil
}

// SetSourceType sets the "source_type" field.
func (m *TaskMutation) SetSourceType(tt task.SourceType) {
	m.source_type = &tt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TaskMutation) SourceType() (r task.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceType(ctx context.Context) (v task.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TaskMutation) ResetSourceType() {
	m.source_type = nil
}

// SetFileKey sets the "file_key" field.
func (m *TaskMutation) SetFileKey(s string) {
	m.file_key = &s
}

// FileKey returns the value of the "file_key" field in the mutation.
func (m *TaskMutation) FileKey() (r string, exists bool) {
	v := m.file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKey returns the old "file_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFileKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKey: %w", err)
	}
	return oldValue.FileKey, nil
}

// ClearFileKey clears the value of the "file_key" field.
func (m *TaskMutation) ClearFileKey() {
	m.file_key = nil
	m.clearedFields[task.FieldFileKey] = struct{}{}
}

// FileKeyCleared returns if the "file_key" field was cleared in this mutation.
func (m *TaskMutation) FileKeyCleared() bool {
	_, ok := m.clearedFields[task.FieldFileKey]
	return ok
}

// ResetFileKey resets all changes to the "file_key" field.
func (m *TaskMutation) ResetFileKey() {
	m.file_key = nil
	delete(m.clearedFields, task.FieldFileKey)
}

// SetSourceURL sets the "source_url" field.
func (m *TaskMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TaskMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *TaskMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[task.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *TaskMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[task.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TaskMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, task.FieldSourceURL)
}

// SetContentHash sets the "content_hash" field.
func (m *TaskMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *TaskMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *TaskMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[task.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *TaskMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[task.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *TaskMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, task.FieldContentHash)
}

// SetOptions sets the "options" field.
func (m *TaskMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *TaskMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *TaskMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[task.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *TaskMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[task.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *TaskMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, task.FieldOptions)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *TaskMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *TaskMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *TaskMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *TaskMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *TaskMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[task.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *TaskMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[task.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *TaskMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, task.FieldDurationSeconds)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TaskMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TaskMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[task.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, task.FieldDeletedAt)
}

// AddStageIDs adds the "stages" edge to the TaskStage entity by ids.
func (m *TaskMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the TaskStage entity.
func (m *TaskMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the TaskStage entity was cleared.
func (m *TaskMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the TaskStage entity by IDs.
func (m *TaskMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the TaskStage entity.
func (m *TaskMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *TaskMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *TaskMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddSegmentIDs adds the "segments" edge to the TranscriptSegment entity by ids.
func (m *TaskMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TranscriptSegment entity.
func (m *TaskMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TranscriptSegment entity was cleared.
func (m *TaskMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TranscriptSegment entity by IDs.
func (m *TaskMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TranscriptSegment entity.
func (m *TaskMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *TaskMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *TaskMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by ids.
func (m *TaskMutation) AddSummaryIDs(ids ...string) {
	if m.summaries == nil {
		m.summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.summaries[ids[i]] = struct{}{}
	}
}

// ClearSummaries clears the "summaries" edge to the Summary entity.
func (m *TaskMutation) ClearSummaries() {
	m.clearedsummaries = true
}

// SummariesCleared reports if the "summaries" edge to the Summary entity was cleared.
func (m *TaskMutation) SummariesCleared() bool {
	return m.clearedsummaries
}

// RemoveSummaryIDs removes the "summaries" edge to the Summary entity by IDs.
func (m *TaskMutation) RemoveSummaryIDs(ids ...string) {
	if m.removedsummaries == nil {
		m.removedsummaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.summaries, ids[i])
		m.removedsummaries[ids[i]] = struct{}{}
	}
}

// RemovedSummaries returns the removed IDs of the "summaries" edge to the Summary entity.
func (m *TaskMutation) RemovedSummariesIDs() (ids []string) {
	for id := range m.removedsummaries {
		ids = append(ids, id)
	}
	return
}

// SummariesIDs returns the "summaries" edge IDs in the mutation.
func (m *TaskMutation) SummariesIDs() (ids []string) {
	for id := range m.summaries {
		ids = append(ids, id)
	}
	return
}

// ResetSummaries resets all changes to the "summaries" edge.
func (m *TaskMutation) ResetSummaries() {
	m.summaries = nil
	m.clearedsummaries = false
	m.removedsummaries = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.kind != nil {
		fields = append(fields, task.FieldKind)
	}
	if m.source_type != nil {
		fields = append(fields, task.FieldSourceType)
	}
	if m.file_key != nil {
		fields = append(fields, task.FieldFileKey)
	}
	if m.source_url != nil {
		fields = append(fields, task.FieldSourceURL)
	}
	if m.content_hash != nil {
		fields = append(fields, task.FieldContentHash)
	}
	if m.options != nil {
		fields = append(fields, task.FieldOptions)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.duration_seconds != nil {
		fields = append(fields, task.FieldDurationSeconds)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldKind:
		return m.Kind()
	case task.FieldSourceType:
		return m.SourceType()
	case task.FieldFileKey:
		return m.FileKey()
	case task.FieldSourceURL:
		return m.SourceURL()
	case task.FieldContentHash:
		return m.ContentHash()
	case task.FieldOptions:
		return m.Options()
	case task.FieldStatus:
		return m.Status()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldDurationSeconds:
		return m.DurationSeconds()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldKind:
		return m.OldKind(ctx)
	case task.FieldSourceType:
		return m.OldSourceType(ctx)
	case task.FieldFileKey:
		return m.OldFileKey(ctx)
	case task.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case task.FieldContentHash:
		return m.OldContentHash(ctx)
	case task.FieldOptions:
		return m.OldOptions(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldKind:
		v, ok := value.(task.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case task.FieldSourceType:
		v, ok := value.(task.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case task.FieldFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKey(v)
		return nil
	case task.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case task.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case task.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, task.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTitle) {
		fields = append(fields, task.FieldTitle)
	}
	if m.FieldCleared(task.FieldFileKey) {
		fields = append(fields, task.FieldFileKey)
	}
	if m.FieldCleared(task.FieldSourceURL) {
		fields = append(fields, task.FieldSourceURL)
	}
	if m.FieldCleared(task.FieldContentHash) {
		fields = append(fields, task.FieldContentHash)
	}
	if m.FieldCleared(task.FieldOptions) {
		fields = append(fields, task.FieldOptions)
	}
	if m.FieldCleared(task.FieldDurationSeconds) {
		fields = append(fields, task.FieldDurationSeconds)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldDeletedAt) {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ClearTitle()
		return nil
	case task.FieldFileKey:
		m.ClearFileKey()
		return nil
	case task.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case task.FieldContentHash:
		m.ClearContentHash()
		return nil
	case task.FieldOptions:
		m.ClearOptions()
		return nil
	case task.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldKind:
		m.ResetKind()
		return nil
	case task.FieldSourceType:
		m.ResetSourceType()
		return nil
	case task.FieldFileKey:
		m.ResetFileKey()
		return nil
	case task.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case task.FieldContentHash:
		m.ResetContentHash()
		return nil
	case task.FieldOptions:
		m.ResetOptions()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.stages != nil {
		edges = append(edges, task.EdgeStages)
	}
	if m.segments != nil {
		edges = append(edges, task.EdgeSegments)
	}
	if m.summaries != nil {
		edges = append(edges, task.EdgeSummaries)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.summaries))
		for id := range m.summaries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedstages != nil {
		edges = append(edges, task.EdgeStages)
	}
	if m.removedsegments != nil {
		edges = append(edges, task.EdgeSegments)
	}
	if m.removedsummaries != nil {
		edges = append(edges, task.EdgeSummaries)
	}
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.removedsummaries))
		for id := range m.removedsummaries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedstages {
		edges = append(edges, task.EdgeStages)
	}
	if m.clearedsegments {
		edges = append(edges, task.EdgeSegments)
	}
	if m.clearedsummaries {
		edges = append(edges, task.EdgeSummaries)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeStages:
		return m.clearedstages
	case task.EdgeSegments:
		return m.clearedsegments
	case task.EdgeSummaries:
		return m.clearedsummaries
	case task.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeStages:
		m.ResetStages()
		return nil
	case task.EdgeSegments:
		m.ResetSegments()
		return nil
	case task.EdgeSummaries:
		m.ResetSummaries()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskStageMutation represents an operation that mutates the TaskStage nodes in the graph.
type TaskStageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	stage_type    *taskstage.StageType
	status        *taskstage.Status
	attempt_id    *string
	is_active     *bool
	started_at    *time.Time
	completed_at  *time.Time
	error_message *string
	output        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskStage, error)
	predicates    []predicate.TaskStage
}

var _ ent.Mutation = (*TaskStageMutation)(nil)

// taskstageOption allows management of the mutation configuration using functional options.
type taskstageOption func(*TaskStageMutation)

// newTaskStageMutation creates new mutation for the TaskStage entity.
func newTaskStageMutation(c config, op Op, opts ...taskstageOption) *TaskStageMutation {
	m := &TaskStageMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskStageID sets the ID field of the mutation.
func withTaskStageID(id string) taskstageOption {
	return func(m *TaskStageMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskStage
		)
		m.oldValue = func(ctx context.Context) (*TaskStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskStage sets the old TaskStage of the mutation.
func withTaskStage(node *TaskStage) taskstageOption {
	return func(m *TaskStageMutation) {
		m.oldValue = func(context.Context) (*TaskStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskStage entities.
func (m *TaskStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskStageMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskStageMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskStageMutation) ResetTaskID() {
	m.task = nil
}

// SetStageType sets the "stage_type" field.
func (m *TaskStageMutation) SetStageType(tt taskstage.StageType) {
	m.stage_type = &tt
}

// StageType returns the value of the "stage_type" field in the mutation.
func (m *TaskStageMutation) StageType() (r taskstage.StageType, exists bool) {
	v := m.stage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStageType returns the old "stage_type" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStageType(ctx context.Context) (v taskstage.StageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageType: %w", err)
	}
	return oldValue.StageType, nil
}

// ResetStageType resets all changes to the "stage_type" field.
func (m *TaskStageMutation) ResetStageType() {
	m.stage_type = nil
}

// SetStatus sets the "status" field.
func (m *TaskStageMutation) SetStatus(t taskstage.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskStageMutation) Status() (r taskstage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStatus(ctx context.Context) (v taskstage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskStageMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *TaskStageMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *TaskStageMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *TaskStageMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *TaskStageMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TaskStageMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldIsActive(ctx context.Context) (v bool, err error) {
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
func (m *TaskStageMutation) ResetIsActive() {
	m.is_active = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskStageMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskStageMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskStageMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[taskstage.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskStageMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskStageMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, taskstage.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskStageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskStageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskStageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskstage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskStageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskStageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskstage.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskStageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskStageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskStageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[taskstage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskStageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskStageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, taskstage.FieldErrorMessage)
}

// SetOutput sets the "output" field.
func (m *TaskStageMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskStageMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskStageMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[taskstage.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskStageMutation) OutputCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskStageMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, taskstage.FieldOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskStageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskStageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskStageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskStageMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskstage.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskStageMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskStageMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskStageMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskStageMutation builder.
func (m *TaskStageMutation) Where(ps ...predicate.TaskStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskStage).
func (m *TaskStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskStageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, taskstage.FieldTaskID)
	}
	if m.stage_type != nil {
		fields = append(fields, taskstage.FieldStageType)
	}
	if m.status != nil {
		fields = append(fields, taskstage.FieldStatus)
	}
	if m.attempt_id != nil {
		fields = append(fields, taskstage.FieldAttemptID)
	}
	if m.is_active != nil {
		fields = append(fields, taskstage.FieldIsActive)
	}
	if m.started_at != nil {
		fields = append(fields, taskstage.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskstage.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, taskstage.FieldErrorMessage)
	}
	if m.output != nil {
		fields = append(fields, taskstage.FieldOutput)
	}
	if m.created_at != nil {
		fields = append(fields, taskstage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskstage.FieldTaskID:
		return m.TaskID()
	case taskstage.FieldStageType:
		return m.StageType()
	case taskstage.FieldStatus:
		return m.Status()
	case taskstage.FieldAttemptID:
		return m.AttemptID()
	case taskstage.FieldIsActive:
		return m.IsActive()
	case taskstage.FieldStartedAt:
		return m.StartedAt()
	case taskstage.FieldCompletedAt:
		return m.CompletedAt()
	case taskstage.FieldErrorMessage:
		return m.ErrorMessage()
	case taskstage.FieldOutput:
		return m.Output()
	case taskstage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskstage.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskstage.FieldStageType:
		return m.OldStageType(ctx)
	case taskstage.FieldStatus:
		return m.OldStatus(ctx)
	case taskstage.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case taskstage.FieldIsActive:
		return m.OldIsActive(ctx)
	case taskstage.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskstage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskstage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case taskstage.FieldOutput:
		return m.OldOutput(ctx)
	case taskstage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskstage.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskstage.FieldStageType:
		v, ok := value.(taskstage.StageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageType(v)
		return nil
	case taskstage.FieldStatus:
		v, ok := value.(taskstage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskstage.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case taskstage.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case taskstage.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskstage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskstage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case taskstage.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case taskstage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskStageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskStageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskStageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskstage.FieldStartedAt) {
		fields = append(fields, taskstage.FieldStartedAt)
	}
	if m.FieldCleared(taskstage.FieldCompletedAt) {
		fields = append(fields, taskstage.FieldCompletedAt)
	}
	if m.FieldCleared(taskstage.FieldErrorMessage) {
		fields = append(fields, taskstage.FieldErrorMessage)
	}
	if m.FieldCleared(taskstage.FieldOutput) {
		fields = append(fields, taskstage.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskStageMutation) ClearField(name string) error {
	switch name {
	case taskstage.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case taskstage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case taskstage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case taskstage.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown TaskStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskStageMutation) ResetField(name string) error {
	switch name {
	case taskstage.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskstage.FieldStageType:
		m.ResetStageType()
		return nil
	case taskstage.FieldStatus:
		m.ResetStatus()
		return nil
	case taskstage.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case taskstage.FieldIsActive:
		m.ResetIsActive()
		return nil
	case taskstage.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskstage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskstage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case taskstage.FieldOutput:
		m.ResetOutput()
		return nil
	case taskstage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskstage.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskstage.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskStageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskstage.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskStageMutation) EdgeCleared(name string) bool {
	switch name {
	case taskstage.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskStageMutation) ClearEdge(name string) error {
	switch name {
	case taskstage.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskStageMutation) ResetEdge(name string) error {
	switch name {
	case taskstage.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskStage edge %s", name)
}

// TranscriptSegmentMutation represents an operation that mutates the TranscriptSegment nodes in the graph.
type TranscriptSegmentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	speaker_id       *string
	start_seconds    *float64
	addstart_seconds *float64
	end_seconds      *float64
	addend_seconds   *float64
	content          *string
	confidence       *float64
	addconfidence    *float64
	words            *[]map[string]interface{}
	appendwords      []map[string]interface{}
	is_edited        *bool
	original_content *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*TranscriptSegment, error)
	predicates       []predicate.TranscriptSegment
}

var _ ent.Mutation = (*TranscriptSegmentMutation)(nil)

// transcriptsegmentOption allows management of the mutation configuration using functional options.
type transcriptsegmentOption func(*TranscriptSegmentMutation)

// newTranscriptSegmentMutation creates new mutation for the TranscriptSegment entity.
func newTranscriptSegmentMutation(c config, op Op, opts ...transcriptsegmentOption) *TranscriptSegmentMutation {
	m := &TranscriptSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptSegmentID sets the ID field of the mutation.
func withTranscriptSegmentID(id string) transcriptsegmentOption {
	return func(m *TranscriptSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptSegment
		)
		m.oldValue = func(ctx context.Context) (*TranscriptSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptSegment sets the old TranscriptSegment of the mutation.
func withTranscriptSegment(node *TranscriptSegment) transcriptsegmentOption {
	return func(m *TranscriptSegmentMutation) {
		m.oldValue = func(context.Context) (*TranscriptSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptSegment entities.
func (m *TranscriptSegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptSegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptSegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TranscriptSegmentMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TranscriptSegmentMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TranscriptSegmentMutation) ResetTaskID() {
	m.task = nil
}

// SetSpeakerID sets the "speaker_id" field.
func (m *TranscriptSegmentMutation) SetSpeakerID(s string) {
	m.speaker_id = &s
}

// SpeakerID returns the value of the "speaker_id" field in the mutation.
func (m *TranscriptSegmentMutation) SpeakerID() (r string, exists bool) {
	v := m.speaker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerID returns the old "speaker_id" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldSpeakerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerID: %w", err)
	}
	return oldValue.SpeakerID, nil
}

// ClearSpeakerID clears the value of the "speaker_id" field.
func (m *TranscriptSegmentMutation) ClearSpeakerID() {
	m.speaker_id = nil
	m.clearedFields[transcriptsegment.FieldSpeakerID] = struct{}{}
}

// SpeakerIDCleared returns if the "speaker_id" field was cleared in this mutation.
func (m *TranscriptSegmentMutation) SpeakerIDCleared() bool {
	_, ok := m.clearedFields[transcriptsegment.FieldSpeakerID]
	return ok
}

// ResetSpeakerID resets all changes to the "speaker_id" field.
func (m *TranscriptSegmentMutation) ResetSpeakerID() {
	m.speaker_id = nil
	delete(m.clearedFields, transcriptsegment.FieldSpeakerID)
}

// SetStartSeconds sets the "start_seconds" field.
func (m *TranscriptSegmentMutation) SetStartSeconds(f float64) {
	m.start_seconds = &f
	m.addstart_seconds = nil
}

// StartSeconds returns the value of the "start_seconds" field in the mutation.
func (m *TranscriptSegmentMutation) StartSeconds() (r float64, exists bool) {
	v := m.start_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSeconds returns the old "start_seconds" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldStartSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSeconds: %w", err)
	}
	return oldValue.StartSeconds, nil
}

// AddStartSeconds adds f to the "start_seconds" field.
func (m *TranscriptSegmentMutation) AddStartSeconds(f float64) {
	if m.addstart_seconds != nil {
		*m.addstart_seconds += f
	} else {
		m.addstart_seconds = &f
	}
}

// AddedStartSeconds returns the value that was added to the "start_seconds" field in this mutation.
func (m *TranscriptSegmentMutation) AddedStartSeconds() (r float64, exists bool) {
	v := m.addstart_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSeconds resets all changes to the "start_seconds" field.
func (m *TranscriptSegmentMutation) ResetStartSeconds() {
	m.start_seconds = nil
	m.addstart_seconds = nil
}

// SetEndSeconds sets the "end_seconds" field.
func (m *TranscriptSegmentMutation) SetEndSeconds(f float64) {
	m.end_seconds = &f
	m.addend_seconds = nil
}

// EndSeconds returns the value of the "end_seconds" field in the mutation.
func (m *TranscriptSegmentMutation) EndSeconds() (r float64, exists bool) {
	v := m.end_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSeconds returns the old "end_seconds" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldEndSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSeconds: %w", err)
	}
	return oldValue.EndSeconds, nil
}

// AddEndSeconds adds f to the "end_seconds" field.
func (m *TranscriptSegmentMutation) AddEndSeconds(f float64) {
	if m.addend_seconds != nil {
		*m.addend_seconds += f
	} else {
		m.addend_seconds = &f
	}
}

// AddedEndSeconds returns the value that was added to the "end_seconds" field in this mutation.
func (m *TranscriptSegmentMutation) AddedEndSeconds() (r float64, exists bool) {
	v := m.addend_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSeconds resets all changes to the "end_seconds" field.
func (m *TranscriptSegmentMutation) ResetEndSeconds() {
	m.end_seconds = nil
	m.addend_seconds = nil
}

// SetContent sets the "content" field.
func (m *TranscriptSegmentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TranscriptSegmentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TranscriptSegmentMutation) ResetContent() {
	m.content = nil
}

// SetConfidence sets the "confidence" field.
func (m *TranscriptSegmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TranscriptSegmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TranscriptSegmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TranscriptSegmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TranscriptSegmentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[transcriptsegment.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TranscriptSegmentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[transcriptsegment.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TranscriptSegmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, transcriptsegment.FieldConfidence)
}

// SetWords sets the "words" field.
func (m *TranscriptSegmentMutation) SetWords(value []map[string]interface{}) {
	m.words = &value
	m.appendwords = nil
}

// Words returns the value of the "words" field in the mutation.
func (m *TranscriptSegmentMutation) Words() (r []map[string]interface{}, exists bool) {
	v := m.words
	if v == nil {
		return
	}
	return *v, true
}

// OldWords returns the old "words" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldWords(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWords: %w", err)
	}
	return oldValue.Words, nil
}

// AppendWords adds value to the "words" field.
func (m *TranscriptSegmentMutation) AppendWords(value []map[string]interface{}) {
	m.appendwords = append(m.appendwords, value...)
}

// AppendedWords returns the list of values that were appended to the "words" field in this mutation.
func (m *TranscriptSegmentMutation) AppendedWords() ([]map[string]interface{}, bool) {
	if len(m.appendwords) == 0 {
		return nil, false
	}
	return m.appendwords, true
}

// ClearWords clears the value of the "words" field.
func (m *TranscriptSegmentMutation) ClearWords() {
	m.words = nil
	m.appendwords = nil
	m.clearedFields[transcriptsegment.FieldWords] = struct{}{}
}

// WordsCleared returns if the "words" field was cleared in this mutation.
func (m *TranscriptSegmentMutation) WordsCleared() bool {
	_, ok := m.clearedFields[transcriptsegment.FieldWords]
	return ok
}

// ResetWords resets all changes to the "words" field.
func (m *TranscriptSegmentMutation) ResetWords() {
	m.words = nil
	m.appendwords = nil
	delete(m.clearedFields, transcriptsegment.FieldWords)
}

// SetIsEdited sets the "is_edited" field.
func (m *TranscriptSegmentMutation) SetIsEdited(b bool) {
	m.is_edited = &b
}

// IsEdited returns the value of the "is_edited" field in the mutation.
func (m *TranscriptSegmentMutation) IsEdited() (r bool, exists bool) {
	v := m.is_edited
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEdited returns the old "is_edited" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldIsEdited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEdited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEdited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEdited: %w", err)
	}
	return oldValue.IsEdited, nil
}

// ResetIsEdited resets all changes to the "is_edited" field.
func (m *TranscriptSegmentMutation) ResetIsEdited() {
	m.is_edited = nil
}

// SetOriginalContent sets the "original_content" field.
func (m *TranscriptSegmentMutation) SetOriginalContent(s string) {
	m.original_content = &s
}

// OriginalContent returns the value of the "original_content" field in the mutation.
func (m *TranscriptSegmentMutation) OriginalContent() (r string, exists bool) {
	v := m.original_content
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalContent returns the old "original_content" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldOriginalContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalContent: %w", err)
	}
	return oldValue.OriginalContent, nil
}

// ClearOriginalContent clears the value of the "original_content" field.
func (m *TranscriptSegmentMutation) ClearOriginalContent() {
	m.original_content = nil
	m.clearedFields[transcriptsegment.FieldOriginalContent] = struct{}{}
}

// OriginalContentCleared returns if the "original_content" field was cleared in this mutation.
func (m *TranscriptSegmentMutation) OriginalContentCleared() bool {
	_, ok := m.clearedFields[transcriptsegment.FieldOriginalContent]
	return ok
}

// ResetOriginalContent resets all changes to the "original_content" field.
func (m *TranscriptSegmentMutation) ResetOriginalContent() {
	m.original_content = nil
	delete(m.clearedFields, transcriptsegment.FieldOriginalContent)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptSegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptSegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TranscriptSegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TranscriptSegmentMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[transcriptsegment.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TranscriptSegmentMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TranscriptSegmentMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TranscriptSegmentMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TranscriptSegmentMutation builder.
func (m *TranscriptSegmentMutation) Where(ps ...predicate.TranscriptSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptSegment).
func (m *TranscriptSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptSegmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, transcriptsegment.FieldTaskID)
	}
	if m.speaker_id != nil {
		fields = append(fields, transcriptsegment.FieldSpeakerID)
	}
	if m.start_seconds != nil {
		fields = append(fields, transcriptsegment.FieldStartSeconds)
	}
	if m.end_seconds != nil {
		fields = append(fields, transcriptsegment.FieldEndSeconds)
	}
	if m.content != nil {
		fields = append(fields, transcriptsegment.FieldContent)
	}
	if m.confidence != nil {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	if m.words != nil {
		fields = append(fields, transcriptsegment.FieldWords)
	}
	if m.is_edited != nil {
		fields = append(fields, transcriptsegment.FieldIsEdited)
	}
	if m.original_content != nil {
		fields = append(fields, transcriptsegment.FieldOriginalContent)
	}
	if m.created_at != nil {
		fields = append(fields, transcriptsegment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptsegment.FieldTaskID:
		return m.TaskID()
	case transcriptsegment.FieldSpeakerID:
		return m.SpeakerID()
	case transcriptsegment.FieldStartSeconds:
		return m.StartSeconds()
	case transcriptsegment.FieldEndSeconds:
		return m.EndSeconds()
	case transcriptsegment.FieldContent:
		return m.Content()
	case transcriptsegment.FieldConfidence:
		return m.Confidence()
	case transcriptsegment.FieldWords:
		return m.Words()
	case transcriptsegment.FieldIsEdited:
		return m.IsEdited()
	case transcriptsegment.FieldOriginalContent:
		return m.OriginalContent()
	case transcriptsegment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptsegment.FieldTaskID:
		return m.OldTaskID(ctx)
	case transcriptsegment.FieldSpeakerID:
		return m.OldSpeakerID(ctx)
	case transcriptsegment.FieldStartSeconds:
		return m.OldStartSeconds(ctx)
	case transcriptsegment.FieldEndSeconds:
		return m.OldEndSeconds(ctx)
	case transcriptsegment.FieldContent:
		return m.OldContent(ctx)
	case transcriptsegment.FieldConfidence:
		return m.OldConfidence(ctx)
	case transcriptsegment.FieldWords:
		return m.OldWords(ctx)
	case transcriptsegment.FieldIsEdited:
		return m.OldIsEdited(ctx)
	case transcriptsegment.FieldOriginalContent:
		return m.OldOriginalContent(ctx)
	case transcriptsegment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptsegment.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case transcriptsegment.FieldSpeakerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerID(v)
		return nil
	case transcriptsegment.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSeconds(v)
		return nil
	case transcriptsegment.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSeconds(v)
		return nil
	case transcriptsegment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case transcriptsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case transcriptsegment.FieldWords:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWords(v)
		return nil
	case transcriptsegment.FieldIsEdited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEdited(v)
		return nil
	case transcriptsegment.FieldOriginalContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalContent(v)
		return nil
	case transcriptsegment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptSegmentMutation) AddedFields() []string {
	var fields []string
	if m.addstart_seconds != nil {
		fields = append(fields, transcriptsegment.FieldStartSeconds)
	}
	if m.addend_seconds != nil {
		fields = append(fields, transcriptsegment.FieldEndSeconds)
	}
	if m.addconfidence != nil {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptSegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptsegment.FieldStartSeconds:
		return m.AddedStartSeconds()
	case transcriptsegment.FieldEndSeconds:
		return m.AddedEndSeconds()
	case transcriptsegment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptsegment.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSeconds(v)
		return nil
	case transcriptsegment.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSeconds(v)
		return nil
	case transcriptsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptsegment.FieldSpeakerID) {
		fields = append(fields, transcriptsegment.FieldSpeakerID)
	}
	if m.FieldCleared(transcriptsegment.FieldConfidence) {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	if m.FieldCleared(transcriptsegment.FieldWords) {
		fields = append(fields, transcriptsegment.FieldWords)
	}
	if m.FieldCleared(transcriptsegment.FieldOriginalContent) {
		fields = append(fields, transcriptsegment.FieldOriginalContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptSegmentMutation) ClearField(name string) error {
	switch name {
	case transcriptsegment.FieldSpeakerID:
		m.ClearSpeakerID()
		return nil
	case transcriptsegment.FieldConfidence:
		m.ClearConfidence()
		return nil
	case transcriptsegment.FieldWords:
		m.ClearWords()
		return nil
	case transcriptsegment.FieldOriginalContent:
		m.ClearOriginalContent()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptSegmentMutation) ResetField(name string) error {
	switch name {
	case transcriptsegment.FieldTaskID:
		m.ResetTaskID()
		return nil
	case transcriptsegment.FieldSpeakerID:
		m.ResetSpeakerID()
		return nil
	case transcriptsegment.FieldStartSeconds:
		m.ResetStartSeconds()
		return nil
	case transcriptsegment.FieldEndSeconds:
		m.ResetEndSeconds()
		return nil
	case transcriptsegment.FieldContent:
		m.ResetContent()
		return nil
	case transcriptsegment.FieldConfidence:
		m.ResetConfidence()
		return nil
	case transcriptsegment.FieldWords:
		m.ResetWords()
		return nil
	case transcriptsegment.FieldIsEdited:
		m.ResetIsEdited()
		return nil
	case transcriptsegment.FieldOriginalContent:
		m.ResetOriginalContent()
		return nil
	case transcriptsegment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, transcriptsegment.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptsegment.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptSegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, transcriptsegment.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptsegment.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptSegmentMutation) ClearEdge(name string) error {
	switch name {
	case transcriptsegment.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptSegmentMutation) ResetEdge(name string) error {
	switch name {
	case transcriptsegment.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment edge %s", name)
}

// UsageRecordMutation represents an operation that mutates the UsageRecord nodes in the graph.
type UsageRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	service_type        *usagerecord.ServiceType
	provider            *string
	user_id             *string
	task_id             *string
	cost                *float64
	addcost             *float64
	tokens              *int
	addtokens           *int
	duration_seconds    *float64
	addduration_seconds *float64
	request_id          *string
	attempt             *int
	addattempt          *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*UsageRecord, error)
	predicates          []predicate.UsageRecord
}

var _ ent.Mutation = (*UsageRecordMutation)(nil)

// usagerecordOption allows management of the mutation configuration using functional options.
type usagerecordOption func(*UsageRecordMutation)

// newUsageRecordMutation creates new mutation for the UsageRecord entity.
func newUsageRecordMutation(c config, op Op, opts ...usagerecordOption) *UsageRecordMutation {
	m := &UsageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageRecordID sets the ID field of the mutation.
func withUsageRecordID(id string) usagerecordOption {
	return func(m *UsageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageRecord
		)
		m.oldValue = func(ctx context.Context) (*UsageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageRecord sets the old UsageRecord of the mutation.
func withUsageRecord(node *UsageRecord) usagerecordOption {
	return func(m *UsageRecordMutation) {
		m.oldValue = func(context.Context) (*UsageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageRecord entities.
func (m *UsageRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServiceType sets the "service_type" field.
func (m *UsageRecordMutation) SetServiceType(ut usagerecord.ServiceType) {
	m.service_type = &ut
}

// ServiceType returns the value of the "service_type" field in the mutation.
func (m *UsageRecordMutation) ServiceType() (r usagerecord.ServiceType, exists bool) {
	v := m.service_type
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceType returns the old "service_type" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldServiceType(ctx context.Context) (v usagerecord.ServiceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceType: %w", err)
	}
	return oldValue.ServiceType, nil
}

// ResetServiceType resets all changes to the "service_type" field.
func (m *UsageRecordMutation) ResetServiceType() {
	m.service_type = nil
}

// SetProvider sets the "provider" field.
func (m *UsageRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *UsageRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *UsageRecordMutation) ResetProvider() {
	m.provider = nil
}

// SetUserID sets the "user_id" field.
func (m *UsageRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *UsageRecordMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[usagerecord.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *UsageRecordMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageRecordMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, usagerecord.FieldUserID)
}

// SetTaskID sets the "task_id" field.
func (m *UsageRecordMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *UsageRecordMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *UsageRecordMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[usagerecord.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *UsageRecordMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *UsageRecordMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, usagerecord.FieldTaskID)
}

// SetCost sets the "cost" field.
func (m *UsageRecordMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *UsageRecordMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *UsageRecordMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *UsageRecordMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *UsageRecordMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetTokens sets the "tokens" field.
func (m *UsageRecordMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *UsageRecordMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *UsageRecordMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *UsageRecordMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokens clears the value of the "tokens" field.
func (m *UsageRecordMutation) ClearTokens() {
	m.tokens = nil
	m.addtokens = nil
	m.clearedFields[usagerecord.FieldTokens] = struct{}{}
}

// TokensCleared returns if the "tokens" field was cleared in this mutation.
func (m *UsageRecordMutation) TokensCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldTokens]
	return ok
}

// ResetTokens resets all changes to the "tokens" field.
func (m *UsageRecordMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
	delete(m.clearedFields, usagerecord.FieldTokens)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *UsageRecordMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *UsageRecordMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *UsageRecordMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *UsageRecordMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *UsageRecordMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[usagerecord.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *UsageRecordMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *UsageRecordMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, usagerecord.FieldDurationSeconds)
}

// SetRequestID sets the "request_id" field.
func (m *UsageRecordMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *UsageRecordMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *UsageRecordMutation) ResetRequestID() {
	m.request_id = nil
}

// SetAttempt sets the "attempt" field.
func (m *UsageRecordMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *UsageRecordMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *UsageRecordMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *UsageRecordMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *UsageRecordMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UsageRecordMutation builder.
func (m *UsageRecordMutation) Where(ps ...predicate.UsageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageRecord).
func (m *UsageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.service_type != nil {
		fields = append(fields, usagerecord.FieldServiceType)
	}
	if m.provider != nil {
		fields = append(fields, usagerecord.FieldProvider)
	}
	if m.user_id != nil {
		fields = append(fields, usagerecord.FieldUserID)
	}
	if m.task_id != nil {
		fields = append(fields, usagerecord.FieldTaskID)
	}
	if m.cost != nil {
		fields = append(fields, usagerecord.FieldCost)
	}
	if m.tokens != nil {
		fields = append(fields, usagerecord.FieldTokens)
	}
	if m.duration_seconds != nil {
		fields = append(fields, usagerecord.FieldDurationSeconds)
	}
	if m.request_id != nil {
		fields = append(fields, usagerecord.FieldRequestID)
	}
	if m.attempt != nil {
		fields = append(fields, usagerecord.FieldAttempt)
	}
	if m.created_at != nil {
		fields = append(fields, usagerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldServiceType:
		return m.ServiceType()
	case usagerecord.FieldProvider:
		return m.Provider()
	case usagerecord.FieldUserID:
		return m.UserID()
	case usagerecord.FieldTaskID:
		return m.TaskID()
	case usagerecord.FieldCost:
		return m.Cost()
	case usagerecord.FieldTokens:
		return m.Tokens()
	case usagerecord.FieldDurationSeconds:
		return m.DurationSeconds()
	case usagerecord.FieldRequestID:
		return m.RequestID()
	case usagerecord.FieldAttempt:
		return m.Attempt()
	case usagerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagerecord.FieldServiceType:
		return m.OldServiceType(ctx)
	case usagerecord.FieldProvider:
		return m.OldProvider(ctx)
	case usagerecord.FieldUserID:
		return m.OldUserID(ctx)
	case usagerecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case usagerecord.FieldCost:
		return m.OldCost(ctx)
	case usagerecord.FieldTokens:
		return m.OldTokens(ctx)
	case usagerecord.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case usagerecord.FieldRequestID:
		return m.OldRequestID(ctx)
	case usagerecord.FieldAttempt:
		return m.OldAttempt(ctx)
	case usagerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldServiceType:
		v, ok := value.(usagerecord.ServiceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceType(v)
		return nil
	case usagerecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case usagerecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagerecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case usagerecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case usagerecord.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case usagerecord.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case usagerecord.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case usagerecord.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case usagerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcost != nil {
		fields = append(fields, usagerecord.FieldCost)
	}
	if m.addtokens != nil {
		fields = append(fields, usagerecord.FieldTokens)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, usagerecord.FieldDurationSeconds)
	}
	if m.addattempt != nil {
		fields = append(fields, usagerecord.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldCost:
		return m.AddedCost()
	case usagerecord.FieldTokens:
		return m.AddedTokens()
	case usagerecord.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case usagerecord.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case usagerecord.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	case usagerecord.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case usagerecord.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagerecord.FieldUserID) {
		fields = append(fields, usagerecord.FieldUserID)
	}
	if m.FieldCleared(usagerecord.FieldTaskID) {
		fields = append(fields, usagerecord.FieldTaskID)
	}
	if m.FieldCleared(usagerecord.FieldTokens) {
		fields = append(fields, usagerecord.FieldTokens)
	}
	if m.FieldCleared(usagerecord.FieldDurationSeconds) {
		fields = append(fields, usagerecord.FieldDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageRecordMutation) ClearField(name string) error {
	switch name {
	case usagerecord.FieldUserID:
		m.ClearUserID()
		return nil
	case usagerecord.FieldTaskID:
		m.ClearTaskID()
		return nil
	case usagerecord.FieldTokens:
		m.ClearTokens()
		return nil
	case usagerecord.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageRecordMutation) ResetField(name string) error {
	switch name {
	case usagerecord.FieldServiceType:
		m.ResetServiceType()
		return nil
	case usagerecord.FieldProvider:
		m.ResetProvider()
		return nil
	case usagerecord.FieldUserID:
		m.ResetUserID()
		return nil
	case usagerecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case usagerecord.FieldCost:
		m.ResetCost()
		return nil
	case usagerecord.FieldTokens:
		m.ResetTokens()
		return nil
	case usagerecord.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case usagerecord.FieldRequestID:
		m.ResetRequestID()
		return nil
	case usagerecord.FieldAttempt:
		m.ResetAttempt()
		return nil
	case usagerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord edge %s", name)
}
