// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/alerthistory"
)

// AlertHistoryCreate is the builder for creating a AlertHistory entity.
type AlertHistoryCreate struct {
	config
	mutation *AlertHistoryMutation
	hooks    []Hook
}

// SetAlertID sets the "alert_id" field.
func (_c *AlertHistoryCreate) SetAlertID(v string) *AlertHistoryCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetPreviousStatus sets the "previous_status" field.
func (_c *AlertHistoryCreate) SetPreviousStatus(v string) *AlertHistoryCreate {
	_c.mutation.SetPreviousStatus(v)
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *AlertHistoryCreate) SetNewStatus(v string) *AlertHistoryCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *AlertHistoryCreate) SetDetails(v string) *AlertHistoryCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *AlertHistoryCreate) SetNillableDetails(v *string) *AlertHistoryCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertHistoryCreate) SetCreatedAt(v time.Time) *AlertHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertHistoryCreate) SetNillableCreatedAt(v *time.Time) *AlertHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertHistoryCreate) SetID(v string) *AlertHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAlert sets the "alert" edge to the Alert entity.
func (_c *AlertHistoryCreate) SetAlert(v *Alert) *AlertHistoryCreate {
	return _c.SetAlertID(v.ID)
}

// Mutation returns the AlertHistoryMutation object of the builder.
func (_c *AlertHistoryCreate) Mutation() *AlertHistoryMutation {
	return _c.mutation
}

// Save creates the AlertHistory in the database.
func (_c *AlertHistoryCreate) Save(ctx context.Context) (*AlertHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertHistoryCreate) SaveX(ctx context.Context) *AlertHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alerthistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertHistoryCreate) check() error {
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "AlertHistory.alert_id"`)}
	}
	if _, ok := _c.mutation.PreviousStatus(); !ok {
		return &ValidationError{Name: "previous_status", err: errors.New(`ent: missing required field "AlertHistory.previous_status"`)}
	}
	if _, ok := _c.mutation.NewStatus(); !ok {
		return &ValidationError{Name: "new_status", err: errors.New(`ent: missing required field "AlertHistory.new_status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertHistory.created_at"`)}
	}
	if len(_c.mutation.AlertIDs()) == 0 {
		return &ValidationError{Name: "alert", err: errors.New(`ent: missing required edge "AlertHistory.alert"`)}
	}
	return nil
}

func (_c *AlertHistoryCreate) sqlSave(ctx context.Context) (*AlertHistory, error) {
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
			return nil, fmt.Errorf("unexpected AlertHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertHistoryCreate) createSpec() (*AlertHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alerthistory.Table, sqlgraph.NewFieldSpec(alerthistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PreviousStatus(); ok {
		_spec.SetField(alerthistory.FieldPreviousStatus, field.TypeString, value)
		_node.PreviousStatus = value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(alerthistory.FieldNewStatus, field.TypeString, value)
		_node.NewStatus = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(alerthistory.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alerthistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alerthistory.AlertTable,
			Columns: []string{alerthistory.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlertID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertHistoryCreateBulk is the builder for creating many AlertHistory entities in bulk.
type AlertHistoryCreateBulk struct {
	config
	err      error
	builders []*AlertHistoryCreate
}

// Save creates the AlertHistory entities in the database.
func (_c *AlertHistoryCreateBulk) Save(ctx context.Context) ([]*AlertHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertHistoryMutation)
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
func (_c *AlertHistoryCreateBulk) SaveX(ctx context.Context) []*AlertHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
