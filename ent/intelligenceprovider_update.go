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
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// IntelligenceProviderUpdate is the builder for updating IntelligenceProvider entities.
type IntelligenceProviderUpdate struct {
	config
	hooks    []Hook
	mutation *IntelligenceProviderMutation
}

// Where appends a list predicates to the IntelligenceProviderUpdate builder.
func (_u *IntelligenceProviderUpdate) Where(ps ...predicate.IntelligenceProvider) *IntelligenceProviderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *IntelligenceProviderUpdate) SetName(v string) *IntelligenceProviderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntelligenceProviderUpdate) SetNillableName(v *string) *IntelligenceProviderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProviderType sets the "provider_type" field.
func (_u *IntelligenceProviderUpdate) SetProviderType(v string) *IntelligenceProviderUpdate {
	_u.mutation.SetProviderType(v)
	return _u
}

// SetNillableProviderType sets the "provider_type" field if the given value is not nil.
func (_u *IntelligenceProviderUpdate) SetNillableProviderType(v *string) *IntelligenceProviderUpdate {
	if v != nil {
		_u.SetProviderType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntelligenceProviderUpdate) SetConfig(v map[string]interface{}) *IntelligenceProviderUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntelligenceProviderUpdate) ClearConfig() *IntelligenceProviderUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *IntelligenceProviderUpdate) SetIsActive(v bool) *IntelligenceProviderUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *IntelligenceProviderUpdate) SetNillableIsActive(v *bool) *IntelligenceProviderUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntelligenceProviderUpdate) SetCreatedAt(v time.Time) *IntelligenceProviderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntelligenceProviderUpdate) SetNillableCreatedAt(v *time.Time) *IntelligenceProviderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntelligenceProviderUpdate) SetUpdatedAt(v time.Time) *IntelligenceProviderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntelligenceProviderMutation object of the builder.
func (_u *IntelligenceProviderUpdate) Mutation() *IntelligenceProviderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntelligenceProviderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntelligenceProviderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntelligenceProviderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntelligenceProviderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntelligenceProviderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intelligenceprovider.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *IntelligenceProviderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(intelligenceprovider.Table, intelligenceprovider.Columns, sqlgraph.NewFieldSpec(intelligenceprovider.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(intelligenceprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderType(); ok {
		_spec.SetField(intelligenceprovider.FieldProviderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(intelligenceprovider.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(intelligenceprovider.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(intelligenceprovider.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intelligenceprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntelligenceProviderUpdateOne is the builder for updating a single IntelligenceProvider entity.
type IntelligenceProviderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntelligenceProviderMutation
}

// SetName sets the "name" field.
func (_u *IntelligenceProviderUpdateOne) SetName(v string) *IntelligenceProviderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntelligenceProviderUpdateOne) SetNillableName(v *string) *IntelligenceProviderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProviderType sets the "provider_type" field.
func (_u *IntelligenceProviderUpdateOne) SetProviderType(v string) *IntelligenceProviderUpdateOne {
	_u.mutation.SetProviderType(v)
	return _u
}

// SetNillableProviderType sets the "provider_type" field if the given value is not nil.
func (_u *IntelligenceProviderUpdateOne) SetNillableProviderType(v *string) *IntelligenceProviderUpdateOne {
	if v != nil {
		_u.SetProviderType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntelligenceProviderUpdateOne) SetConfig(v map[string]interface{}) *IntelligenceProviderUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntelligenceProviderUpdateOne) ClearConfig() *IntelligenceProviderUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *IntelligenceProviderUpdateOne) SetIsActive(v bool) *IntelligenceProviderUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *IntelligenceProviderUpdateOne) SetNillableIsActive(v *bool) *IntelligenceProviderUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntelligenceProviderUpdateOne) SetCreatedAt(v time.Time) *IntelligenceProviderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntelligenceProviderUpdateOne) SetNillableCreatedAt(v *time.Time) *IntelligenceProviderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntelligenceProviderUpdateOne) SetUpdatedAt(v time.Time) *IntelligenceProviderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntelligenceProviderMutation object of the builder.
func (_u *IntelligenceProviderUpdateOne) Mutation() *IntelligenceProviderMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntelligenceProviderUpdate builder.
func (_u *IntelligenceProviderUpdateOne) Where(ps ...predicate.IntelligenceProvider) *IntelligenceProviderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntelligenceProviderUpdateOne) Select(field string, fields ...string) *IntelligenceProviderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntelligenceProvider entity.
func (_u *IntelligenceProviderUpdateOne) Save(ctx context.Context) (*IntelligenceProvider, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntelligenceProviderUpdateOne) SaveX(ctx context.Context) *IntelligenceProvider {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntelligenceProviderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntelligenceProviderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntelligenceProviderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intelligenceprovider.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *IntelligenceProviderUpdateOne) sqlSave(ctx context.Context) (_node *IntelligenceProvider, err error) {
	_spec := sqlgraph.NewUpdateSpec(intelligenceprovider.Table, intelligenceprovider.Columns, sqlgraph.NewFieldSpec(intelligenceprovider.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntelligenceProvider.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intelligenceprovider.FieldID)
		for _, f := range fields {
			if !intelligenceprovider.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intelligenceprovider.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(intelligenceprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderType(); ok {
		_spec.SetField(intelligenceprovider.FieldProviderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(intelligenceprovider.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(intelligenceprovider.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(intelligenceprovider.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intelligenceprovider.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &IntelligenceProvider{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intelligenceprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
