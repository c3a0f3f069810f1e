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
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks     []Hook
	mutation  *UsageRecordMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *UsageRecordUpdate) SetServiceType(v usagerecord.ServiceType) *UsageRecordUpdate {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableServiceType(v *usagerecord.ServiceType) *UsageRecordUpdate {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *UsageRecordUpdate) SetProvider(v string) *UsageRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableProvider(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageRecordUpdate) SetUserID(v string) *UsageRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableUserID(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UsageRecordUpdate) ClearUserID() *UsageRecordUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *UsageRecordUpdate) SetTaskID(v string) *UsageRecordUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTaskID(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *UsageRecordUpdate) ClearTaskID() *UsageRecordUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageRecordUpdate) SetCost(v float64) *UsageRecordUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCost(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageRecordUpdate) AddCost(v float64) *UsageRecordUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *UsageRecordUpdate) SetTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *UsageRecordUpdate) AddTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *UsageRecordUpdate) ClearTokens() *UsageRecordUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *UsageRecordUpdate) SetDurationSeconds(v float64) *UsageRecordUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableDurationSeconds(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *UsageRecordUpdate) AddDurationSeconds(v float64) *UsageRecordUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *UsageRecordUpdate) ClearDurationSeconds() *UsageRecordUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := usagerecord.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.service_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *UsageRecordUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *UsageRecordUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(usagerecord.FieldServiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(usagerecord.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(usagerecord.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(usagerecord.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(usagerecord.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(usagerecord.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(usagerecord.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(usagerecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(usagerecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(usagerecord.FieldDurationSeconds, field.TypeFloat64)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *UsageRecordMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetServiceType sets the "service_type" field.
func (_u *UsageRecordUpdateOne) SetServiceType(v usagerecord.ServiceType) *UsageRecordUpdateOne {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableServiceType(v *usagerecord.ServiceType) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *UsageRecordUpdateOne) SetProvider(v string) *UsageRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableProvider(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageRecordUpdateOne) SetUserID(v string) *UsageRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableUserID(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UsageRecordUpdateOne) ClearUserID() *UsageRecordUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *UsageRecordUpdateOne) SetTaskID(v string) *UsageRecordUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTaskID(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *UsageRecordUpdateOne) ClearTaskID() *UsageRecordUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageRecordUpdateOne) SetCost(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCost(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageRecordUpdateOne) AddCost(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *UsageRecordUpdateOne) SetTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *UsageRecordUpdateOne) AddTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *UsageRecordUpdateOne) ClearTokens() *UsageRecordUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *UsageRecordUpdateOne) SetDurationSeconds(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableDurationSeconds(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *UsageRecordUpdateOne) AddDurationSeconds(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *UsageRecordUpdateOne) ClearDurationSeconds() *UsageRecordUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := usagerecord.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.service_type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *UsageRecordUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *UsageRecordUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(usagerecord.FieldServiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(usagerecord.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(usagerecord.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(usagerecord.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(usagerecord.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(usagerecord.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(usagerecord.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(usagerecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(usagerecord.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(usagerecord.FieldDurationSeconds, field.TypeFloat64)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
