// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// IntelligenceProviderDelete is the builder for deleting a IntelligenceProvider entity.
type IntelligenceProviderDelete struct {
	config
	hooks    []Hook
	mutation *IntelligenceProviderMutation
}

// Where appends a list predicates to the IntelligenceProviderDelete builder.
func (_d *IntelligenceProviderDelete) Where(ps ...predicate.IntelligenceProvider) *IntelligenceProviderDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IntelligenceProviderDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntelligenceProviderDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IntelligenceProviderDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(intelligenceprovider.Table, sqlgraph.NewFieldSpec(intelligenceprovider.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// IntelligenceProviderDeleteOne is the builder for deleting a single IntelligenceProvider entity.
type IntelligenceProviderDeleteOne struct {
	_d *IntelligenceProviderDelete
}

// Where appends a list predicates to the IntelligenceProviderDelete builder.
func (_d *IntelligenceProviderDeleteOne) Where(ps ...predicate.IntelligenceProvider) *IntelligenceProviderDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IntelligenceProviderDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{intelligenceprovider.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntelligenceProviderDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
