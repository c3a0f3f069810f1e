// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/predicate"
	"github.com/scribeflow/scribeflow/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks     []Hook
	mutation  *SummaryMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummaryType sets the "summary_type" field.
func (_u *SummaryUpdate) SetSummaryType(v summary.SummaryType) *SummaryUpdate {
	_u.mutation.SetSummaryType(v)
	return _u
}

// SetNillableSummaryType sets the "summary_type" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableSummaryType(v *summary.SummaryType) *SummaryUpdate {
	if v != nil {
		_u.SetSummaryType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SummaryUpdate) SetVersion(v int) *SummaryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableVersion(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SummaryUpdate) AddVersion(v int) *SummaryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SummaryUpdate) SetIsActive(v bool) *SummaryUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableIsActive(v *bool) *SummaryUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummaryUpdate) SetContent(v string) *SummaryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableContent(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVisualFormat sets the "visual_format" field.
func (_u *SummaryUpdate) SetVisualFormat(v string) *SummaryUpdate {
	_u.mutation.SetVisualFormat(v)
	return _u
}

// SetNillableVisualFormat sets the "visual_format" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableVisualFormat(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetVisualFormat(*v)
	}
	return _u
}

// ClearVisualFormat clears the value of the "visual_format" field.
func (_u *SummaryUpdate) ClearVisualFormat() *SummaryUpdate {
	_u.mutation.ClearVisualFormat()
	return _u
}

// SetVisualContent sets the "visual_content" field.
func (_u *SummaryUpdate) SetVisualContent(v string) *SummaryUpdate {
	_u.mutation.SetVisualContent(v)
	return _u
}

// SetNillableVisualContent sets the "visual_content" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableVisualContent(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetVisualContent(*v)
	}
	return _u
}

// ClearVisualContent clears the value of the "visual_content" field.
func (_u *SummaryUpdate) ClearVisualContent() *SummaryUpdate {
	_u.mutation.ClearVisualContent()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *SummaryUpdate) SetImageKey(v string) *SummaryUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableImageKey(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *SummaryUpdate) ClearImageKey() *SummaryUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *SummaryUpdate) SetModelUsed(v string) *SummaryUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableModelUsed(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *SummaryUpdate) ClearModelUsed() *SummaryUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SummaryUpdate) SetPromptVersion(v string) *SummaryUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillablePromptVersion(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SummaryUpdate) ClearPromptVersion() *SummaryUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SummaryUpdate) SetTokenCount(v int) *SummaryUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableTokenCount(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SummaryUpdate) AddTokenCount(v int) *SummaryUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *SummaryUpdate) ClearTokenCount() *SummaryUpdate {
	_u.mutation.ClearTokenCount()
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdate) check() error {
	if v, ok := _u.mutation.SummaryType(); ok {
		if err := summary.SummaryTypeValidator(v); err != nil {
			return &ValidationError{Name: "summary_type", err: fmt.Errorf(`ent: validator failed for field "Summary.summary_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SummaryUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SummaryUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SummaryType(); ok {
		_spec.SetField(summary.FieldSummaryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(summary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(summary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(summary.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisualFormat(); ok {
		_spec.SetField(summary.FieldVisualFormat, field.TypeString, value)
	}
	if _u.mutation.VisualFormatCleared() {
		_spec.ClearField(summary.FieldVisualFormat, field.TypeString)
	}
	if value, ok := _u.mutation.VisualContent(); ok {
		_spec.SetField(summary.FieldVisualContent, field.TypeString, value)
	}
	if _u.mutation.VisualContentCleared() {
		_spec.ClearField(summary.FieldVisualContent, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(summary.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(summary.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(summary.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(summary.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(summary.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(summary.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(summary.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(summary.FieldTokenCount, field.TypeInt)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SummaryMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetSummaryType sets the "summary_type" field.
func (_u *SummaryUpdateOne) SetSummaryType(v summary.SummaryType) *SummaryUpdateOne {
	_u.mutation.SetSummaryType(v)
	return _u
}

// SetNillableSummaryType sets the "summary_type" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableSummaryType(v *summary.SummaryType) *SummaryUpdateOne {
	if v != nil {
		_u.SetSummaryType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SummaryUpdateOne) SetVersion(v int) *SummaryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableVersion(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SummaryUpdateOne) AddVersion(v int) *SummaryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SummaryUpdateOne) SetIsActive(v bool) *SummaryUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableIsActive(v *bool) *SummaryUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummaryUpdateOne) SetContent(v string) *SummaryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableContent(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVisualFormat sets the "visual_format" field.
func (_u *SummaryUpdateOne) SetVisualFormat(v string) *SummaryUpdateOne {
	_u.mutation.SetVisualFormat(v)
	return _u
}

// SetNillableVisualFormat sets the "visual_format" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableVisualFormat(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetVisualFormat(*v)
	}
	return _u
}

// ClearVisualFormat clears the value of the "visual_format" field.
func (_u *SummaryUpdateOne) ClearVisualFormat() *SummaryUpdateOne {
	_u.mutation.ClearVisualFormat()
	return _u
}

// SetVisualContent sets the "visual_content" field.
func (_u *SummaryUpdateOne) SetVisualContent(v string) *SummaryUpdateOne {
	_u.mutation.SetVisualContent(v)
	return _u
}

// SetNillableVisualContent sets the "visual_content" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableVisualContent(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetVisualContent(*v)
	}
	return _u
}

// ClearVisualContent clears the value of the "visual_content" field.
func (_u *SummaryUpdateOne) ClearVisualContent() *SummaryUpdateOne {
	_u.mutation.ClearVisualContent()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *SummaryUpdateOne) SetImageKey(v string) *SummaryUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableImageKey(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *SummaryUpdateOne) ClearImageKey() *SummaryUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *SummaryUpdateOne) SetModelUsed(v string) *SummaryUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableModelUsed(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *SummaryUpdateOne) ClearModelUsed() *SummaryUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SummaryUpdateOne) SetPromptVersion(v string) *SummaryUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillablePromptVersion(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SummaryUpdateOne) ClearPromptVersion() *SummaryUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SummaryUpdateOne) SetTokenCount(v int) *SummaryUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableTokenCount(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SummaryUpdateOne) AddTokenCount(v int) *SummaryUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *SummaryUpdateOne) ClearTokenCount() *SummaryUpdateOne {
	_u.mutation.ClearTokenCount()
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdateOne) check() error {
	if v, ok := _u.mutation.SummaryType(); ok {
		if err := summary.SummaryTypeValidator(v); err != nil {
			return &ValidationError{Name: "summary_type", err: fmt.Errorf(`ent: validator failed for field "Summary.summary_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SummaryUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SummaryUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.SummaryType(); ok {
		_spec.SetField(summary.FieldSummaryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(summary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(summary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(summary.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisualFormat(); ok {
		_spec.SetField(summary.FieldVisualFormat, field.TypeString, value)
	}
	if _u.mutation.VisualFormatCleared() {
		_spec.ClearField(summary.FieldVisualFormat, field.TypeString)
	}
	if value, ok := _u.mutation.VisualContent(); ok {
		_spec.SetField(summary.FieldVisualContent, field.TypeString, value)
	}
	if _u.mutation.VisualContentCleared() {
		_spec.ClearField(summary.FieldVisualContent, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(summary.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(summary.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(summary.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(summary.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(summary.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(summary.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(summary.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(summary.FieldTokenCount, field.TypeInt)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
