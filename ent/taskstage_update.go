// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/predicate"
	"github.com/scribeflow/scribeflow/ent/taskstage"
)

// TaskStageUpdate is the builder for updating TaskStage entities.
type TaskStageUpdate struct {
	config
	hooks     []Hook
	mutation  *TaskStageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the TaskStageUpdate builder.
func (_u *TaskStageUpdate) Where(ps ...predicate.TaskStage) *TaskStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *TaskStageUpdate) SetStageType(v taskstage.StageType) *TaskStageUpdate {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableStageType(v *taskstage.StageType) *TaskStageUpdate {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStageUpdate) SetStatus(v taskstage.Status) *TaskStageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableStatus(v *taskstage.Status) *TaskStageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaskStageUpdate) SetIsActive(v bool) *TaskStageUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableIsActive(v *bool) *TaskStageUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStageUpdate) SetStartedAt(v time.Time) *TaskStageUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableStartedAt(v *time.Time) *TaskStageUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStageUpdate) ClearStartedAt() *TaskStageUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStageUpdate) SetCompletedAt(v time.Time) *TaskStageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableCompletedAt(v *time.Time) *TaskStageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStageUpdate) ClearCompletedAt() *TaskStageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskStageUpdate) SetErrorMessage(v string) *TaskStageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableErrorMessage(v *string) *TaskStageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskStageUpdate) ClearErrorMessage() *TaskStageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskStageUpdate) SetOutput(v map[string]interface{}) *TaskStageUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskStageUpdate) ClearOutput() *TaskStageUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// Mutation returns the TaskStageMutation object of the builder.
func (_u *TaskStageUpdate) Mutation() *TaskStageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskStageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStageUpdate) check() error {
	if v, ok := _u.mutation.StageType(); ok {
		if err := taskstage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "TaskStage.stage_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStage.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TaskStageUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TaskStageUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TaskStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstage.Table, taskstage.Columns, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(taskstage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(taskstage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskstage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskstage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskstage.FieldOutput, field.TypeJSON)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskStageUpdateOne is the builder for updating a single TaskStage entity.
type TaskStageUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *TaskStageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetStageType sets the "stage_type" field.
func (_u *TaskStageUpdateOne) SetStageType(v taskstage.StageType) *TaskStageUpdateOne {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableStageType(v *taskstage.StageType) *TaskStageUpdateOne {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStageUpdateOne) SetStatus(v taskstage.Status) *TaskStageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableStatus(v *taskstage.Status) *TaskStageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaskStageUpdateOne) SetIsActive(v bool) *TaskStageUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableIsActive(v *bool) *TaskStageUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStageUpdateOne) SetStartedAt(v time.Time) *TaskStageUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableStartedAt(v *time.Time) *TaskStageUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStageUpdateOne) ClearStartedAt() *TaskStageUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStageUpdateOne) SetCompletedAt(v time.Time) *TaskStageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskStageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStageUpdateOne) ClearCompletedAt() *TaskStageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskStageUpdateOne) SetErrorMessage(v string) *TaskStageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableErrorMessage(v *string) *TaskStageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskStageUpdateOne) ClearErrorMessage() *TaskStageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskStageUpdateOne) SetOutput(v map[string]interface{}) *TaskStageUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskStageUpdateOne) ClearOutput() *TaskStageUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// Mutation returns the TaskStageMutation object of the builder.
func (_u *TaskStageUpdateOne) Mutation() *TaskStageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskStageUpdate builder.
func (_u *TaskStageUpdateOne) Where(ps ...predicate.TaskStage) *TaskStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskStageUpdateOne) Select(field string, fields ...string) *TaskStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskStage entity.
func (_u *TaskStageUpdateOne) Save(ctx context.Context) (*TaskStage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStageUpdateOne) SaveX(ctx context.Context) *TaskStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStageUpdateOne) check() error {
	if v, ok := _u.mutation.StageType(); ok {
		if err := taskstage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "TaskStage.stage_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStage.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TaskStageUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TaskStageUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TaskStageUpdateOne) sqlSave(ctx context.Context) (_node *TaskStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstage.Table, taskstage.Columns, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskstage.FieldID)
		for _, f := range fields {
			if !taskstage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskstage.FieldID {
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
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(taskstage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(taskstage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskstage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskstage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskstage.FieldOutput, field.TypeJSON)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &TaskStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
