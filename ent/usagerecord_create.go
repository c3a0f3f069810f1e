// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
}

// SetServiceType sets the "service_type" field.
func (_c *UsageRecordCreate) SetServiceType(v usagerecord.ServiceType) *UsageRecordCreate {
	_c.mutation.SetServiceType(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *UsageRecordCreate) SetProvider(v string) *UsageRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UsageRecordCreate) SetUserID(v string) *UsageRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableUserID(v *string) *UsageRecordCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *UsageRecordCreate) SetTaskID(v string) *UsageRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableTaskID(v *string) *UsageRecordCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *UsageRecordCreate) SetCost(v float64) *UsageRecordCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *UsageRecordCreate) SetTokens(v int) *UsageRecordCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableTokens(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *UsageRecordCreate) SetDurationSeconds(v float64) *UsageRecordCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableDurationSeconds(v *float64) *UsageRecordCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *UsageRecordCreate) SetRequestID(v string) *UsageRecordCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *UsageRecordCreate) SetAttempt(v int) *UsageRecordCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableAttempt(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageRecordCreate) SetCreatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCreatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageRecordCreate) SetID(v string) *UsageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := usagerecord.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.ServiceType(); !ok {
		return &ValidationError{Name: "service_type", err: errors.New(`ent: missing required field "UsageRecord.service_type"`)}
	}
	if v, ok := _c.mutation.ServiceType(); ok {
		if err := usagerecord.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.service_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "UsageRecord.provider"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "UsageRecord.cost"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "UsageRecord.request_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "UsageRecord.attempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageRecord.created_at"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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
			return nil, fmt.Errorf("unexpected UsageRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ServiceType(); ok {
		_spec.SetField(usagerecord.FieldServiceType, field.TypeEnum, value)
		_node.ServiceType = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(usagerecord.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(usagerecord.FieldTokens, field.TypeInt, value)
		_node.Tokens = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(usagerecord.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(usagerecord.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(usagerecord.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
