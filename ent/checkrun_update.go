// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/checkrun"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// CheckRunUpdate is the builder for updating CheckRun entities.
type CheckRunUpdate struct {
	config
	hooks    []Hook
	mutation *CheckRunMutation
}

// Where appends a list predicates to the CheckRunUpdate builder.
func (_u *CheckRunUpdate) Where(ps ...predicate.CheckRun) *CheckRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CheckRunMutation object of the builder.
func (_u *CheckRunUpdate) Mutation() *CheckRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkrun.Table, checkrun.Columns, sqlgraph.NewFieldSpec(checkrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(checkrun.FieldHostname, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(checkrun.FieldMessage, field.TypeString)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(checkrun.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(checkrun.FieldError, field.TypeString)
	}
	if _u.mutation.PipelineRunIDCleared() {
		_spec.ClearField(checkrun.FieldPipelineRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckRunUpdateOne is the builder for updating a single CheckRun entity.
type CheckRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckRunMutation
}

// Mutation returns the CheckRunMutation object of the builder.
func (_u *CheckRunUpdateOne) Mutation() *CheckRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckRunUpdate builder.
func (_u *CheckRunUpdateOne) Where(ps ...predicate.CheckRun) *CheckRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckRunUpdateOne) Select(field string, fields ...string) *CheckRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckRun entity.
func (_u *CheckRunUpdateOne) Save(ctx context.Context) (*CheckRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckRunUpdateOne) SaveX(ctx context.Context) *CheckRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckRunUpdateOne) sqlSave(ctx context.Context) (_node *CheckRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkrun.Table, checkrun.Columns, sqlgraph.NewFieldSpec(checkrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkrun.FieldID)
		for _, f := range fields {
			if !checkrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkrun.FieldID {
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
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(checkrun.FieldHostname, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(checkrun.FieldMessage, field.TypeString)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(checkrun.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(checkrun.FieldError, field.TypeString)
	}
	if _u.mutation.PipelineRunIDCleared() {
		_spec.ClearField(checkrun.FieldPipelineRunID, field.TypeString)
	}
	_node = &CheckRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
