// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/summary"
	"github.com/scribeflow/scribeflow/ent/task"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *SummaryCreate) SetTaskID(v string) *SummaryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSummaryType sets the "summary_type" field.
func (_c *SummaryCreate) SetSummaryType(v summary.SummaryType) *SummaryCreate {
	_c.mutation.SetSummaryType(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SummaryCreate) SetVersion(v int) *SummaryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableVersion(v *int) *SummaryCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SummaryCreate) SetIsActive(v bool) *SummaryCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableIsActive(v *bool) *SummaryCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *SummaryCreate) SetContent(v string) *SummaryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetVisualFormat sets the "visual_format" field.
func (_c *SummaryCreate) SetVisualFormat(v string) *SummaryCreate {
	_c.mutation.SetVisualFormat(v)
	return _c
}

// SetNillableVisualFormat sets the "visual_format" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableVisualFormat(v *string) *SummaryCreate {
	if v != nil {
		_c.SetVisualFormat(*v)
	}
	return _c
}

// SetVisualContent sets the "visual_content" field.
func (_c *SummaryCreate) SetVisualContent(v string) *SummaryCreate {
	_c.mutation.SetVisualContent(v)
	return _c
}

// SetNillableVisualContent sets the "visual_content" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableVisualContent(v *string) *SummaryCreate {
	if v != nil {
		_c.SetVisualContent(*v)
	}
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *SummaryCreate) SetImageKey(v string) *SummaryCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableImageKey(v *string) *SummaryCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *SummaryCreate) SetModelUsed(v string) *SummaryCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableModelUsed(v *string) *SummaryCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *SummaryCreate) SetPromptVersion(v string) *SummaryCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *SummaryCreate) SetNillablePromptVersion(v *string) *SummaryCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *SummaryCreate) SetTokenCount(v int) *SummaryCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableTokenCount(v *int) *SummaryCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v string) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SummaryCreate) SetTask(v *Task) *SummaryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := summary.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := summary.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Summary.task_id"`)}
	}
	if _, ok := _c.mutation.SummaryType(); !ok {
		return &ValidationError{Name: "summary_type", err: errors.New(`ent: missing required field "Summary.summary_type"`)}
	}
	if v, ok := _c.mutation.SummaryType(); ok {
		if err := summary.SummaryTypeValidator(v); err != nil {
			return &ValidationError{Name: "summary_type", err: fmt.Errorf(`ent: validator failed for field "Summary.summary_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Summary.version"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Summary.is_active"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Summary.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Summary.task"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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
			return nil, fmt.Errorf("unexpected Summary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SummaryType(); ok {
		_spec.SetField(summary.FieldSummaryType, field.TypeEnum, value)
		_node.SummaryType = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(summary.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(summary.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.VisualFormat(); ok {
		_spec.SetField(summary.FieldVisualFormat, field.TypeString, value)
		_node.VisualFormat = &value
	}
	if value, ok := _c.mutation.VisualContent(); ok {
		_spec.SetField(summary.FieldVisualContent, field.TypeString, value)
		_node.VisualContent = &value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(summary.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(summary.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(summary.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.TaskTable,
			Columns: []string{summary.TaskColumn},
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

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
