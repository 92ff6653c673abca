// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
)

// IntelligenceProviderCreate is the builder for creating a IntelligenceProvider entity.
type IntelligenceProviderCreate struct {
	config
	mutation *IntelligenceProviderMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *IntelligenceProviderCreate) SetName(v string) *IntelligenceProviderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProviderType sets the "provider_type" field.
func (_c *IntelligenceProviderCreate) SetProviderType(v string) *IntelligenceProviderCreate {
	_c.mutation.SetProviderType(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *IntelligenceProviderCreate) SetConfig(v map[string]interface{}) *IntelligenceProviderCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *IntelligenceProviderCreate) SetIsActive(v bool) *IntelligenceProviderCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *IntelligenceProviderCreate) SetNillableIsActive(v *bool) *IntelligenceProviderCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntelligenceProviderCreate) SetCreatedAt(v time.Time) *IntelligenceProviderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntelligenceProviderCreate) SetNillableCreatedAt(v *time.Time) *IntelligenceProviderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntelligenceProviderCreate) SetUpdatedAt(v time.Time) *IntelligenceProviderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntelligenceProviderCreate) SetNillableUpdatedAt(v *time.Time) *IntelligenceProviderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntelligenceProviderCreate) SetID(v string) *IntelligenceProviderCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntelligenceProviderMutation object of the builder.
func (_c *IntelligenceProviderCreate) Mutation() *IntelligenceProviderMutation {
	return _c.mutation
}

// Save creates the IntelligenceProvider in the database.
func (_c *IntelligenceProviderCreate) Save(ctx context.Context) (*IntelligenceProvider, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntelligenceProviderCreate) SaveX(ctx context.Context) *IntelligenceProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntelligenceProviderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntelligenceProviderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntelligenceProviderCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := intelligenceprovider.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intelligenceprovider.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := intelligenceprovider.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntelligenceProviderCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "IntelligenceProvider.name"`)}
	}
	if _, ok := _c.mutation.ProviderType(); !ok {
		return &ValidationError{Name: "provider_type", err: errors.New(`ent: missing required field "IntelligenceProvider.provider_type"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "IntelligenceProvider.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntelligenceProvider.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IntelligenceProvider.updated_at"`)}
	}
	return nil
}

func (_c *IntelligenceProviderCreate) sqlSave(ctx context.Context) (*IntelligenceProvider, error) {
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
			return nil, fmt.Errorf("unexpected IntelligenceProvider.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntelligenceProviderCreate) createSpec() (*IntelligenceProvider, *sqlgraph.CreateSpec) {
	var (
		_node = &IntelligenceProvider{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intelligenceprovider.Table, sqlgraph.NewFieldSpec(intelligenceprovider.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(intelligenceprovider.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ProviderType(); ok {
		_spec.SetField(intelligenceprovider.FieldProviderType, field.TypeString, value)
		_node.ProviderType = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(intelligenceprovider.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(intelligenceprovider.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IntelligenceProviderCreateBulk is the builder for creating many IntelligenceProvider entities in bulk.
type IntelligenceProviderCreateBulk struct {
	config
	err      error
	builders []*IntelligenceProviderCreate
}

// Save creates the IntelligenceProvider entities in the database.
func (_c *IntelligenceProviderCreateBulk) Save(ctx context.Context) ([]*IntelligenceProvider, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntelligenceProvider, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntelligenceProviderMutation)
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
func (_c *IntelligenceProviderCreateBulk) SaveX(ctx context.Context) []*IntelligenceProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntelligenceProviderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntelligenceProviderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
