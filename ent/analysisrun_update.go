// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/ent/predicate"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AnalysisRunUpdate is the builder for updating AnalysisRun entities.
type AnalysisRunUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdate) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AnalysisRunUpdate) SetIncidentID(v string) *AnalysisRunUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableIncidentID(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AnalysisRunUpdate) ClearIncidentID() *AnalysisRunUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AnalysisRunUpdate) SetProvider(v string) *AnalysisRunUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableProvider(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderConfig sets the "provider_config" field.
func (_u *AnalysisRunUpdate) SetProviderConfig(v map[string]interface{}) *AnalysisRunUpdate {
	_u.mutation.SetProviderConfig(v)
	return _u
}

// ClearProviderConfig clears the value of the "provider_config" field.
func (_u *AnalysisRunUpdate) ClearProviderConfig() *AnalysisRunUpdate {
	_u.mutation.ClearProviderConfig()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AnalysisRunUpdate) SetRecommendations(v []models.Recommendation) *AnalysisRunUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AnalysisRunUpdate) AppendRecommendations(v []models.Recommendation) *AnalysisRunUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AnalysisRunUpdate) ClearRecommendations() *AnalysisRunUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AnalysisRunUpdate) SetTotalTokens(v int) *AnalysisRunUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTotalTokens(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AnalysisRunUpdate) AddTotalTokens(v int) *AnalysisRunUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *AnalysisRunUpdate) ClearTotalTokens() *AnalysisRunUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisRunUpdate) SetStatus(v analysisrun.Status) *AnalysisRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableStatus(v *analysisrun.Status) *AnalysisRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *AnalysisRunUpdate) SetError(v string) *AnalysisRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableError(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AnalysisRunUpdate) ClearError() *AnalysisRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *AnalysisRunUpdate) SetIncident(v *Incident) *AnalysisRunUpdate {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdate) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *AnalysisRunUpdate) ClearIncident() *AnalysisRunUpdate {
	_u.mutation.ClearIncident()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PipelineRunIDCleared() {
		_spec.ClearField(analysisrun.FieldPipelineRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(analysisrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderConfig(); ok {
		_spec.SetField(analysisrun.FieldProviderConfig, field.TypeJSON, value)
	}
	if _u.mutation.ProviderConfigCleared() {
		_spec.ClearField(analysisrun.FieldProviderConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(analysisrun.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisrun.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(analysisrun.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(analysisrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(analysisrun.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(analysisrun.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(analysisrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(analysisrun.FieldError, field.TypeString)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrun.IncidentTable,
			Columns: []string{analysisrun.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrun.IncidentTable,
			Columns: []string{analysisrun.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRunUpdateOne is the builder for updating a single AnalysisRun entity.
type AnalysisRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// SetIncidentID sets the "incident_id" field.
func (_u *AnalysisRunUpdateOne) SetIncidentID(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableIncidentID(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AnalysisRunUpdateOne) ClearIncidentID() *AnalysisRunUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AnalysisRunUpdateOne) SetProvider(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableProvider(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderConfig sets the "provider_config" field.
func (_u *AnalysisRunUpdateOne) SetProviderConfig(v map[string]interface{}) *AnalysisRunUpdateOne {
	_u.mutation.SetProviderConfig(v)
	return _u
}

// ClearProviderConfig clears the value of the "provider_config" field.
func (_u *AnalysisRunUpdateOne) ClearProviderConfig() *AnalysisRunUpdateOne {
	_u.mutation.ClearProviderConfig()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AnalysisRunUpdateOne) SetRecommendations(v []models.Recommendation) *AnalysisRunUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AnalysisRunUpdateOne) AppendRecommendations(v []models.Recommendation) *AnalysisRunUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AnalysisRunUpdateOne) ClearRecommendations() *AnalysisRunUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AnalysisRunUpdateOne) SetTotalTokens(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTotalTokens(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AnalysisRunUpdateOne) AddTotalTokens(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *AnalysisRunUpdateOne) ClearTotalTokens() *AnalysisRunUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisRunUpdateOne) SetStatus(v analysisrun.Status) *AnalysisRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableStatus(v *analysisrun.Status) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *AnalysisRunUpdateOne) SetError(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableError(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AnalysisRunUpdateOne) ClearError() *AnalysisRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *AnalysisRunUpdateOne) SetIncident(v *Incident) *AnalysisRunUpdateOne {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdateOne) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *AnalysisRunUpdateOne) ClearIncident() *AnalysisRunUpdateOne {
	_u.mutation.ClearIncident()
	return _u
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdateOne) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRunUpdateOne) Select(field string, fields ...string) *AnalysisRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRun entity.
func (_u *AnalysisRunUpdateOne) Save(ctx context.Context) (*AnalysisRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) SaveX(ctx context.Context) *AnalysisRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrun.FieldID)
		for _, f := range fields {
			if !analysisrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrun.FieldID {
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
	if _u.mutation.PipelineRunIDCleared() {
		_spec.ClearField(analysisrun.FieldPipelineRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(analysisrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderConfig(); ok {
		_spec.SetField(analysisrun.FieldProviderConfig, field.TypeJSON, value)
	}
	if _u.mutation.ProviderConfigCleared() {
		_spec.ClearField(analysisrun.FieldProviderConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(analysisrun.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisrun.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(analysisrun.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(analysisrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(analysisrun.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(analysisrun.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(analysisrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(analysisrun.FieldError, field.TypeString)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrun.IncidentTable,
			Columns: []string{analysisrun.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrun.IncidentTable,
			Columns: []string{analysisrun.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
