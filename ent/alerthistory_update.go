// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/alerthistory"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// AlertHistoryUpdate is the builder for updating AlertHistory entities.
type AlertHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *AlertHistoryMutation
}

// Where appends a list predicates to the AlertHistoryUpdate builder.
func (_u *AlertHistoryUpdate) Where(ps ...predicate.AlertHistory) *AlertHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AlertHistoryMutation object of the builder.
func (_u *AlertHistoryUpdate) Mutation() *AlertHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertHistoryUpdate) check() error {
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertHistory.alert"`)
	}
	return nil
}

func (_u *AlertHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alerthistory.Table, alerthistory.Columns, sqlgraph.NewFieldSpec(alerthistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(alerthistory.FieldDetails, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alerthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertHistoryUpdateOne is the builder for updating a single AlertHistory entity.
type AlertHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertHistoryMutation
}

// Mutation returns the AlertHistoryMutation object of the builder.
func (_u *AlertHistoryUpdateOne) Mutation() *AlertHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertHistoryUpdate builder.
func (_u *AlertHistoryUpdateOne) Where(ps ...predicate.AlertHistory) *AlertHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertHistoryUpdateOne) Select(field string, fields ...string) *AlertHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertHistory entity.
func (_u *AlertHistoryUpdateOne) Save(ctx context.Context) (*AlertHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertHistoryUpdateOne) SaveX(ctx context.Context) *AlertHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertHistoryUpdateOne) check() error {
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertHistory.alert"`)
	}
	return nil
}

func (_u *AlertHistoryUpdateOne) sqlSave(ctx context.Context) (_node *AlertHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alerthistory.Table, alerthistory.Columns, sqlgraph.NewFieldSpec(alerthistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alerthistory.FieldID)
		for _, f := range fields {
			if !alerthistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alerthistory.FieldID {
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
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(alerthistory.FieldDetails, field.TypeString)
	}
	_node = &AlertHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alerthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
