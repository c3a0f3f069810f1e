// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
)

// TranscriptSegmentCreate is the builder for creating a TranscriptSegment entity.
type TranscriptSegmentCreate struct {
	config
	mutation *TranscriptSegmentMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TranscriptSegmentCreate) SetTaskID(v string) *TranscriptSegmentCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSpeakerID sets the "speaker_id" field.
func (_c *TranscriptSegmentCreate) SetSpeakerID(v string) *TranscriptSegmentCreate {
	_c.mutation.SetSpeakerID(v)
	return _c
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableSpeakerID(v *string) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetSpeakerID(*v)
	}
	return _c
}

// SetStartSeconds sets the "start_seconds" field.
func (_c *TranscriptSegmentCreate) SetStartSeconds(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetStartSeconds(v)
	return _c
}

// SetEndSeconds sets the "end_seconds" field.
func (_c *TranscriptSegmentCreate) SetEndSeconds(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetEndSeconds(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TranscriptSegmentCreate) SetContent(v string) *TranscriptSegmentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranscriptSegmentCreate) SetConfidence(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableConfidence(v *float64) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetWords sets the "words" field.
func (_c *TranscriptSegmentCreate) SetWords(v []map[string]interface{}) *TranscriptSegmentCreate {
	_c.mutation.SetWords(v)
	return _c
}

// SetIsEdited sets the "is_edited" field.
func (_c *TranscriptSegmentCreate) SetIsEdited(v bool) *TranscriptSegmentCreate {
	_c.mutation.SetIsEdited(v)
	return _c
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableIsEdited(v *bool) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetIsEdited(*v)
	}
	return _c
}

// SetOriginalContent sets the "original_content" field.
func (_c *TranscriptSegmentCreate) SetOriginalContent(v string) *TranscriptSegmentCreate {
	_c.mutation.SetOriginalContent(v)
	return _c
}

// SetNillableOriginalContent sets the "original_content" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableOriginalContent(v *string) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetOriginalContent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptSegmentCreate) SetCreatedAt(v time.Time) *TranscriptSegmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableCreatedAt(v *time.Time) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptSegmentCreate) SetID(v string) *TranscriptSegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TranscriptSegmentCreate) SetTask(v *Task) *TranscriptSegmentCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_c *TranscriptSegmentCreate) Mutation() *TranscriptSegmentMutation {
	return _c.mutation
}

// Save creates the TranscriptSegment in the database.
func (_c *TranscriptSegmentCreate) Save(ctx context.Context) (*TranscriptSegment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptSegmentCreate) SaveX(ctx context.Context) *TranscriptSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptSegmentCreate) defaults() {
	if _, ok := _c.mutation.IsEdited(); !ok {
		v := transcriptsegment.DefaultIsEdited
		_c.mutation.SetIsEdited(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcriptsegment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptSegmentCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TranscriptSegment.task_id"`)}
	}
	if _, ok := _c.mutation.StartSeconds(); !ok {
		return &ValidationError{Name: "start_seconds", err: errors.New(`ent: missing required field "TranscriptSegment.start_seconds"`)}
	}
	if _, ok := _c.mutation.EndSeconds(); !ok {
		return &ValidationError{Name: "end_seconds", err: errors.New(`ent: missing required field "TranscriptSegment.end_seconds"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TranscriptSegment.content"`)}
	}
	if _, ok := _c.mutation.IsEdited(); !ok {
		return &ValidationError{Name: "is_edited", err: errors.New(`ent: missing required field "TranscriptSegment.is_edited"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranscriptSegment.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TranscriptSegment.task"`)}
	}
	return nil
}

func (_c *TranscriptSegmentCreate) sqlSave(ctx context.Context) (*TranscriptSegment, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TranscriptSegment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptSegmentCreate) createSpec() (*TranscriptSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptsegment.Table, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SpeakerID(); ok {
		_spec.SetField(transcriptsegment.FieldSpeakerID, field.TypeString, value)
		_node.SpeakerID = &value
	}
	if value, ok := _c.mutation.StartSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldStartSeconds, field.TypeFloat64, value)
		_node.StartSeconds = value
	}
	if value, ok := _c.mutation.EndSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldEndSeconds, field.TypeFloat64, value)
		_node.EndSeconds = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(transcriptsegment.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Words(); ok {
		_spec.SetField(transcriptsegment.FieldWords, field.TypeJSON, value)
		_node.Words = value
	}
	if value, ok := _c.mutation.IsEdited(); ok {
		_spec.SetField(transcriptsegment.FieldIsEdited, field.TypeBool, value)
		_node.IsEdited = value
	}
	if value, ok := _c.mutation.OriginalContent(); ok {
		_spec.SetField(transcriptsegment.FieldOriginalContent, field.TypeString, value)
		_node.OriginalContent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcriptsegment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptsegment.TaskTable,
			Columns: []string{transcriptsegment.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptSegmentCreateBulk is the builder for creating many TranscriptSegment entities in bulk.
type TranscriptSegmentCreateBulk struct {
	config
	err      error
	builders []*TranscriptSegmentCreate
}

// Save creates the TranscriptSegment entities in the database.
func (_c *TranscriptSegmentCreateBulk) Save(ctx context.Context) ([]*TranscriptSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptSegmentMutation)
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
func (_c *TranscriptSegmentCreateBulk) SaveX(ctx context.Context) []*TranscriptSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
