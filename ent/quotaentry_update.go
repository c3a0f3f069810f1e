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
	"github.com/scribeflow/scribeflow/ent/quotaentry"
)

// QuotaEntryUpdate is the builder for updating QuotaEntry entities.
type QuotaEntryUpdate struct {
	config
	hooks     []Hook
	mutation  *QuotaEntryMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the QuotaEntryUpdate builder.
func (_u *QuotaEntryUpdate) Where(ps ...predicate.QuotaEntry) *QuotaEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *QuotaEntryUpdate) SetOwner(v string) *QuotaEntryUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableOwner(v *string) *QuotaEntryUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *QuotaEntryUpdate) SetProvider(v string) *QuotaEntryUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableProvider(v *string) *QuotaEntryUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *QuotaEntryUpdate) SetVariant(v quotaentry.Variant) *QuotaEntryUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableVariant(v *quotaentry.Variant) *QuotaEntryUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetWindowType sets the "window_type" field.
func (_u *QuotaEntryUpdate) SetWindowType(v quotaentry.WindowType) *QuotaEntryUpdate {
	_u.mutation.SetWindowType(v)
	return _u
}

// SetNillableWindowType sets the "window_type" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableWindowType(v *quotaentry.WindowType) *QuotaEntryUpdate {
	if v != nil {
		_u.SetWindowType(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *QuotaEntryUpdate) SetWindowStart(v time.Time) *QuotaEntryUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableWindowStart(v *time.Time) *QuotaEntryUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *QuotaEntryUpdate) SetWindowEnd(v time.Time) *QuotaEntryUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableWindowEnd(v *time.Time) *QuotaEntryUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// ClearWindowEnd clears the value of the "window_end" field.
func (_u *QuotaEntryUpdate) ClearWindowEnd() *QuotaEntryUpdate {
	_u.mutation.ClearWindowEnd()
	return _u
}

// SetQuotaSeconds sets the "quota_seconds" field.
func (_u *QuotaEntryUpdate) SetQuotaSeconds(v float64) *QuotaEntryUpdate {
	_u.mutation.ResetQuotaSeconds()
	_u.mutation.SetQuotaSeconds(v)
	return _u
}

// SetNillableQuotaSeconds sets the "quota_seconds" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableQuotaSeconds(v *float64) *QuotaEntryUpdate {
	if v != nil {
		_u.SetQuotaSeconds(*v)
	}
	return _u
}

// AddQuotaSeconds adds value to the "quota_seconds" field.
func (_u *QuotaEntryUpdate) AddQuotaSeconds(v float64) *QuotaEntryUpdate {
	_u.mutation.AddQuotaSeconds(v)
	return _u
}

// SetUsedSeconds sets the "used_seconds" field.
func (_u *QuotaEntryUpdate) SetUsedSeconds(v float64) *QuotaEntryUpdate {
	_u.mutation.ResetUsedSeconds()
	_u.mutation.SetUsedSeconds(v)
	return _u
}

// SetNillableUsedSeconds sets the "used_seconds" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableUsedSeconds(v *float64) *QuotaEntryUpdate {
	if v != nil {
		_u.SetUsedSeconds(*v)
	}
	return _u
}

// AddUsedSeconds adds value to the "used_seconds" field.
func (_u *QuotaEntryUpdate) AddUsedSeconds(v float64) *QuotaEntryUpdate {
	_u.mutation.AddUsedSeconds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuotaEntryUpdate) SetStatus(v quotaentry.Status) *QuotaEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuotaEntryUpdate) SetNillableStatus(v *quotaentry.Status) *QuotaEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaEntryUpdate) SetUpdatedAt(v time.Time) *QuotaEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaEntryMutation object of the builder.
func (_u *QuotaEntryUpdate) Mutation() *QuotaEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotaentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaEntryUpdate) check() error {
	if v, ok := _u.mutation.Variant(); ok {
		if err := quotaentry.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WindowType(); ok {
		if err := quotaentry.WindowTypeValidator(v); err != nil {
			return &ValidationError{Name: "window_type", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.window_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := quotaentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaEntryUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaEntryUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotaentry.Table, quotaentry.Columns, sqlgraph.NewFieldSpec(quotaentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(quotaentry.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(quotaentry.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(quotaentry.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WindowType(); ok {
		_spec.SetField(quotaentry.FieldWindowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(quotaentry.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(quotaentry.FieldWindowEnd, field.TypeTime, value)
	}
	if _u.mutation.WindowEndCleared() {
		_spec.ClearField(quotaentry.FieldWindowEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.QuotaSeconds(); ok {
		_spec.SetField(quotaentry.FieldQuotaSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuotaSeconds(); ok {
		_spec.AddField(quotaentry.FieldQuotaSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsedSeconds(); ok {
		_spec.SetField(quotaentry.FieldUsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedSeconds(); ok {
		_spec.AddField(quotaentry.FieldUsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quotaentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaEntryUpdateOne is the builder for updating a single QuotaEntry entity.
type QuotaEntryUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *QuotaEntryMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetOwner sets the "owner" field.
func (_u *QuotaEntryUpdateOne) SetOwner(v string) *QuotaEntryUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableOwner(v *string) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *QuotaEntryUpdateOne) SetProvider(v string) *QuotaEntryUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableProvider(v *string) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *QuotaEntryUpdateOne) SetVariant(v quotaentry.Variant) *QuotaEntryUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableVariant(v *quotaentry.Variant) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetWindowType sets the "window_type" field.
func (_u *QuotaEntryUpdateOne) SetWindowType(v quotaentry.WindowType) *QuotaEntryUpdateOne {
	_u.mutation.SetWindowType(v)
	return _u
}

// SetNillableWindowType sets the "window_type" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableWindowType(v *quotaentry.WindowType) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetWindowType(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *QuotaEntryUpdateOne) SetWindowStart(v time.Time) *QuotaEntryUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableWindowStart(v *time.Time) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *QuotaEntryUpdateOne) SetWindowEnd(v time.Time) *QuotaEntryUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableWindowEnd(v *time.Time) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// ClearWindowEnd clears the value of the "window_end" field.
func (_u *QuotaEntryUpdateOne) ClearWindowEnd() *QuotaEntryUpdateOne {
	_u.mutation.ClearWindowEnd()
	return _u
}

// SetQuotaSeconds sets the "quota_seconds" field.
func (_u *QuotaEntryUpdateOne) SetQuotaSeconds(v float64) *QuotaEntryUpdateOne {
	_u.mutation.ResetQuotaSeconds()
	_u.mutation.SetQuotaSeconds(v)
	return _u
}

// SetNillableQuotaSeconds sets the "quota_seconds" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableQuotaSeconds(v *float64) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetQuotaSeconds(*v)
	}
	return _u
}

// AddQuotaSeconds adds value to the "quota_seconds" field.
func (_u *QuotaEntryUpdateOne) AddQuotaSeconds(v float64) *QuotaEntryUpdateOne {
	_u.mutation.AddQuotaSeconds(v)
	return _u
}

// SetUsedSeconds sets the "used_seconds" field.
func (_u *QuotaEntryUpdateOne) SetUsedSeconds(v float64) *QuotaEntryUpdateOne {
	_u.mutation.ResetUsedSeconds()
	_u.mutation.SetUsedSeconds(v)
	return _u
}

// SetNillableUsedSeconds sets the "used_seconds" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableUsedSeconds(v *float64) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetUsedSeconds(*v)
	}
	return _u
}

// AddUsedSeconds adds value to the "used_seconds" field.
func (_u *QuotaEntryUpdateOne) AddUsedSeconds(v float64) *QuotaEntryUpdateOne {
	_u.mutation.AddUsedSeconds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuotaEntryUpdateOne) SetStatus(v quotaentry.Status) *QuotaEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuotaEntryUpdateOne) SetNillableStatus(v *quotaentry.Status) *QuotaEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaEntryUpdateOne) SetUpdatedAt(v time.Time) *QuotaEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaEntryMutation object of the builder.
func (_u *QuotaEntryUpdateOne) Mutation() *QuotaEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaEntryUpdate builder.
func (_u *QuotaEntryUpdateOne) Where(ps ...predicate.QuotaEntry) *QuotaEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaEntryUpdateOne) Select(field string, fields ...string) *QuotaEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaEntry entity.
func (_u *QuotaEntryUpdateOne) Save(ctx context.Context) (*QuotaEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaEntryUpdateOne) SaveX(ctx context.Context) *QuotaEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotaentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Variant(); ok {
		if err := quotaentry.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WindowType(); ok {
		if err := quotaentry.WindowTypeValidator(v); err != nil {
			return &ValidationError{Name: "window_type", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.window_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := quotaentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *QuotaEntryUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *QuotaEntryUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *QuotaEntryUpdateOne) sqlSave(ctx context.Context) (_node *QuotaEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotaentry.Table, quotaentry.Columns, sqlgraph.NewFieldSpec(quotaentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotaentry.FieldID)
		for _, f := range fields {
			if !quotaentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotaentry.FieldID {
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
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(quotaentry.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(quotaentry.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(quotaentry.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WindowType(); ok {
		_spec.SetField(quotaentry.FieldWindowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(quotaentry.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(quotaentry.FieldWindowEnd, field.TypeTime, value)
	}
	if _u.mutation.WindowEndCleared() {
		_spec.ClearField(quotaentry.FieldWindowEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.QuotaSeconds(); ok {
		_spec.SetField(quotaentry.FieldQuotaSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuotaSeconds(); ok {
		_spec.AddField(quotaentry.FieldQuotaSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsedSeconds(); ok {
		_spec.SetField(quotaentry.FieldUsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedSeconds(); ok {
		_spec.AddField(quotaentry.FieldUsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quotaentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &QuotaEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
