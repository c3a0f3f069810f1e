// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
)

// QuotaEntryCreate is the builder for creating a QuotaEntry entity.
type QuotaEntryCreate struct {
	config
	mutation *QuotaEntryMutation
	hooks    []Hook
}

// SetOwner sets the "owner" field.
func (_c *QuotaEntryCreate) SetOwner(v string) *QuotaEntryCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *QuotaEntryCreate) SetProvider(v string) *QuotaEntryCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *QuotaEntryCreate) SetVariant(v quotaentry.Variant) *QuotaEntryCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetWindowType sets the "window_type" field.
func (_c *QuotaEntryCreate) SetWindowType(v quotaentry.WindowType) *QuotaEntryCreate {
	_c.mutation.SetWindowType(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *QuotaEntryCreate) SetWindowStart(v time.Time) *QuotaEntryCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *QuotaEntryCreate) SetWindowEnd(v time.Time) *QuotaEntryCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_c *QuotaEntryCreate) SetNillableWindowEnd(v *time.Time) *QuotaEntryCreate {
	if v != nil {
		_c.SetWindowEnd(*v)
	}
	return _c
}

// SetQuotaSeconds sets the "quota_seconds" field.
func (_c *QuotaEntryCreate) SetQuotaSeconds(v float64) *QuotaEntryCreate {
	_c.mutation.SetQuotaSeconds(v)
	return _c
}

// SetUsedSeconds sets the "used_seconds" field.
func (_c *QuotaEntryCreate) SetUsedSeconds(v float64) *QuotaEntryCreate {
	_c.mutation.SetUsedSeconds(v)
	return _c
}

// SetNillableUsedSeconds sets the "used_seconds" field if the given value is not nil.
func (_c *QuotaEntryCreate) SetNillableUsedSeconds(v *float64) *QuotaEntryCreate {
	if v != nil {
		_c.SetUsedSeconds(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuotaEntryCreate) SetStatus(v quotaentry.Status) *QuotaEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuotaEntryCreate) SetNillableStatus(v *quotaentry.Status) *QuotaEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuotaEntryCreate) SetCreatedAt(v time.Time) *QuotaEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuotaEntryCreate) SetNillableCreatedAt(v *time.Time) *QuotaEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaEntryCreate) SetUpdatedAt(v time.Time) *QuotaEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaEntryCreate) SetNillableUpdatedAt(v *time.Time) *QuotaEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaEntryCreate) SetID(v string) *QuotaEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuotaEntryMutation object of the builder.
func (_c *QuotaEntryCreate) Mutation() *QuotaEntryMutation {
	return _c.mutation
}

// Save creates the QuotaEntry in the database.
func (_c *QuotaEntryCreate) Save(ctx context.Context) (*QuotaEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaEntryCreate) SaveX(ctx context.Context) *QuotaEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaEntryCreate) defaults() {
	if _, ok := _c.mutation.UsedSeconds(); !ok {
		v := quotaentry.DefaultUsedSeconds
		_c.mutation.SetUsedSeconds(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := quotaentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quotaentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotaentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaEntryCreate) check() error {
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "QuotaEntry.owner"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "QuotaEntry.provider"`)}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "QuotaEntry.variant"`)}
	}
	if v, ok := _c.mutation.Variant(); ok {
		if err := quotaentry.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.variant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowType(); !ok {
		return &ValidationError{Name: "window_type", err: errors.New(`ent: missing required field "QuotaEntry.window_type"`)}
	}
	if v, ok := _c.mutation.WindowType(); ok {
		if err := quotaentry.WindowTypeValidator(v); err != nil {
			return &ValidationError{Name: "window_type", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.window_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "QuotaEntry.window_start"`)}
	}
	if _, ok := _c.mutation.QuotaSeconds(); !ok {
		return &ValidationError{Name: "quota_seconds", err: errors.New(`ent: missing required field "QuotaEntry.quota_seconds"`)}
	}
	if _, ok := _c.mutation.UsedSeconds(); !ok {
		return &ValidationError{Name: "used_seconds", err: errors.New(`ent: missing required field "QuotaEntry.used_seconds"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuotaEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := quotaentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuotaEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuotaEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaEntry.updated_at"`)}
	}
	return nil
}

func (_c *QuotaEntryCreate) sqlSave(ctx context.Context) (*QuotaEntry, error) {
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
			return nil, fmt.Errorf("unexpected QuotaEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuotaEntryCreate) createSpec() (*QuotaEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotaentry.Table, sqlgraph.NewFieldSpec(quotaentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(quotaentry.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(quotaentry.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(quotaentry.FieldVariant, field.TypeEnum, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.WindowType(); ok {
		_spec.SetField(quotaentry.FieldWindowType, field.TypeEnum, value)
		_node.WindowType = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(quotaentry.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(quotaentry.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = &value
	}
	if value, ok := _c.mutation.QuotaSeconds(); ok {
		_spec.SetField(quotaentry.FieldQuotaSeconds, field.TypeFloat64, value)
		_node.QuotaSeconds = value
	}
	if value, ok := _c.mutation.UsedSeconds(); ok {
		_spec.SetField(quotaentry.FieldUsedSeconds, field.TypeFloat64, value)
		_node.UsedSeconds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quotaentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quotaentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QuotaEntryCreateBulk is the builder for creating many QuotaEntry entities in bulk.
type QuotaEntryCreateBulk struct {
	config
	err      error
	builders []*QuotaEntryCreate
}

// Save creates the QuotaEntry entities in the database.
func (_c *QuotaEntryCreateBulk) Save(ctx context.Context) ([]*QuotaEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaEntryMutation)
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
func (_c *QuotaEntryCreateBulk) SaveX(ctx context.Context) []*QuotaEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
