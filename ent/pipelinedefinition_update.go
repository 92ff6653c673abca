// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/pipelinedefinition"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// PipelineDefinitionUpdate is the builder for updating PipelineDefinition entities.
type PipelineDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineDefinitionMutation
}

// Where appends a list predicates to the PipelineDefinitionUpdate builder.
func (_u *PipelineDefinitionUpdate) Where(ps ...predicate.PipelineDefinition) *PipelineDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineDefinitionUpdate) SetName(v string) *PipelineDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineDefinitionUpdate) SetNillableName(v *string) *PipelineDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineDefinitionUpdate) SetVersion(v int) *PipelineDefinitionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineDefinitionUpdate) SetNillableVersion(v *int) *PipelineDefinitionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineDefinitionUpdate) AddVersion(v int) *PipelineDefinitionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineDefinitionUpdate) SetDescription(v string) *PipelineDefinitionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineDefinitionUpdate) SetNillableDescription(v *string) *PipelineDefinitionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineDefinitionUpdate) ClearDescription() *PipelineDefinitionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *PipelineDefinitionUpdate) SetConfig(v map[string]interface{}) *PipelineDefinitionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *PipelineDefinitionUpdate) SetTags(v []string) *PipelineDefinitionUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PipelineDefinitionUpdate) AppendTags(v []string) *PipelineDefinitionUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PipelineDefinitionUpdate) ClearTags() *PipelineDefinitionUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PipelineDefinitionUpdate) SetIsActive(v bool) *PipelineDefinitionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PipelineDefinitionUpdate) SetNillableIsActive(v *bool) *PipelineDefinitionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineDefinitionUpdate) SetCreatedAt(v time.Time) *PipelineDefinitionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineDefinitionUpdate) SetNillableCreatedAt(v *time.Time) *PipelineDefinitionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineDefinitionUpdate) SetUpdatedAt(v time.Time) *PipelineDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineDefinitionMutation object of the builder.
func (_u *PipelineDefinitionUpdate) Mutation() *PipelineDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinedefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := pipelinedefinition.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "PipelineDefinition.version": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinedefinition.Table, pipelinedefinition.Columns, sqlgraph.NewFieldSpec(pipelinedefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinedefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelinedefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelinedefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipelinedefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipelinedefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pipelinedefinition.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(pipelinedefinition.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinedefinition.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(pipelinedefinition.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pipelinedefinition.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinedefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinedefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinedefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineDefinitionUpdateOne is the builder for updating a single PipelineDefinition entity.
type PipelineDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineDefinitionMutation
}

// SetName sets the "name" field.
func (_u *PipelineDefinitionUpdateOne) SetName(v string) *PipelineDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineDefinitionUpdateOne) SetNillableName(v *string) *PipelineDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineDefinitionUpdateOne) SetVersion(v int) *PipelineDefinitionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineDefinitionUpdateOne) SetNillableVersion(v *int) *PipelineDefinitionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineDefinitionUpdateOne) AddVersion(v int) *PipelineDefinitionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineDefinitionUpdateOne) SetDescription(v string) *PipelineDefinitionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineDefinitionUpdateOne) SetNillableDescription(v *string) *PipelineDefinitionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineDefinitionUpdateOne) ClearDescription() *PipelineDefinitionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *PipelineDefinitionUpdateOne) SetConfig(v map[string]interface{}) *PipelineDefinitionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *PipelineDefinitionUpdateOne) SetTags(v []string) *PipelineDefinitionUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PipelineDefinitionUpdateOne) AppendTags(v []string) *PipelineDefinitionUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PipelineDefinitionUpdateOne) ClearTags() *PipelineDefinitionUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PipelineDefinitionUpdateOne) SetIsActive(v bool) *PipelineDefinitionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PipelineDefinitionUpdateOne) SetNillableIsActive(v *bool) *PipelineDefinitionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineDefinitionUpdateOne) SetCreatedAt(v time.Time) *PipelineDefinitionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineDefinitionUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineDefinitionUpdateOne) SetUpdatedAt(v time.Time) *PipelineDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineDefinitionMutation object of the builder.
func (_u *PipelineDefinitionUpdateOne) Mutation() *PipelineDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineDefinitionUpdate builder.
func (_u *PipelineDefinitionUpdateOne) Where(ps ...predicate.PipelineDefinition) *PipelineDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineDefinitionUpdateOne) Select(field string, fields ...string) *PipelineDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineDefinition entity.
func (_u *PipelineDefinitionUpdateOne) Save(ctx context.Context) (*PipelineDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineDefinitionUpdateOne) SaveX(ctx context.Context) *PipelineDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinedefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := pipelinedefinition.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "PipelineDefinition.version": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *PipelineDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinedefinition.Table, pipelinedefinition.Columns, sqlgraph.NewFieldSpec(pipelinedefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinedefinition.FieldID)
		for _, f := range fields {
			if !pipelinedefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinedefinition.FieldID {
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
		_spec.SetField(pipelinedefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelinedefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelinedefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipelinedefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipelinedefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pipelinedefinition.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(pipelinedefinition.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinedefinition.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(pipelinedefinition.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pipelinedefinition.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinedefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinedefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PipelineDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinedefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
