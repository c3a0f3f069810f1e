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
	"github.com/scribeflow/scribeflow/ent/taskstage"
)

// TaskStageCreate is the builder for creating a TaskStage entity.
type TaskStageCreate struct {
	config
	mutation *TaskStageMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskStageCreate) SetTaskID(v string) *TaskStageCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStageType sets the "stage_type" field.
func (_c *TaskStageCreate) SetStageType(v taskstage.StageType) *TaskStageCreate {
	_c.mutation.SetStageType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskStageCreate) SetStatus(v taskstage.Status) *TaskStageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableStatus(v *taskstage.Status) *TaskStageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *TaskStageCreate) SetAttemptID(v string) *TaskStageCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TaskStageCreate) SetIsActive(v bool) *TaskStageCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableIsActive(v *bool) *TaskStageCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskStageCreate) SetStartedAt(v time.Time) *TaskStageCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableStartedAt(v *time.Time) *TaskStageCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskStageCreate) SetCompletedAt(v time.Time) *TaskStageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableCompletedAt(v *time.Time) *TaskStageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskStageCreate) SetErrorMessage(v string) *TaskStageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableErrorMessage(v *string) *TaskStageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *TaskStageCreate) SetOutput(v map[string]interface{}) *TaskStageCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskStageCreate) SetCreatedAt(v time.Time) *TaskStageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableCreatedAt(v *time.Time) *TaskStageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskStageCreate) SetID(v string) *TaskStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskStageCreate) SetTask(v *Task) *TaskStageCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskStageMutation object of the builder.
func (_c *TaskStageCreate) Mutation() *TaskStageMutation {
	return _c.mutation
}

// Save creates the TaskStage in the database.
func (_c *TaskStageCreate) Save(ctx context.Context) (*TaskStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskStageCreate) SaveX(ctx context.Context) *TaskStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskStageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := taskstage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := taskstage.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskstage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskStageCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskStage.task_id"`)}
	}
	if _, ok := _c.mutation.StageType(); !ok {
		return &ValidationError{Name: "stage_type", err: errors.New(`ent: missing required field "TaskStage.stage_type"`)}
	}
	if v, ok := _c.mutation.StageType(); ok {
		if err := taskstage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "TaskStage.stage_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskStage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "TaskStage.attempt_id"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "TaskStage.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskStage.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskStage.task"`)}
	}
	return nil
}

func (_c *TaskStageCreate) sqlSave(ctx context.Context) (*TaskStage, error) {
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
			return nil, fmt.Errorf("unexpected TaskStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskStageCreate) createSpec() (*TaskStage, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskstage.Table, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageType(); ok {
		_spec.SetField(taskstage.FieldStageType, field.TypeEnum, value)
		_node.StageType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(taskstage.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(taskstage.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(taskstage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskstage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskstage.TaskTable,
			Columns: []string{taskstage.TaskColumn},
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

// TaskStageCreateBulk is the builder for creating many TaskStage entities in bulk.
type TaskStageCreateBulk struct {
	config
	err      error
	builders []*TaskStageCreate
}

// Save creates the TaskStage entities in the database.
func (_c *TaskStageCreateBulk) Save(ctx context.Context) ([]*TaskStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskStageMutation)
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
func (_c *TaskStageCreateBulk) SaveX(ctx context.Context) []*TaskStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
