// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/territory"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TerritoryUpdate is the builder for updating Territory entities.
type TerritoryUpdate struct {
	config
	hooks    []Hook
	mutation *TerritoryMutation
}

// Where appends a list predicates to the TerritoryUpdate builder.
func (_u *TerritoryUpdate) Where(ps ...predicate.Territory) *TerritoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TerritoryUpdate) SetName(v string) *TerritoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TerritoryUpdate) SetNillableName(v *string) *TerritoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TerritoryUpdate) SetCreatedAt(v time.Time) *TerritoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TerritoryUpdate) SetNillableCreatedAt(v *time.Time) *TerritoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TerritoryUpdate) SetUpdatedAt(v time.Time) *TerritoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAreaIDs adds the "areas" edge to the Area entity by IDs.
func (_u *TerritoryUpdate) AddAreaIDs(ids ...uuid.UUID) *TerritoryUpdate {
	_u.mutation.AddAreaIDs(ids...)
	return _u
}

// AddAreas adds the "areas" edges to the Area entity.
func (_u *TerritoryUpdate) AddAreas(v ...*Area) *TerritoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAreaIDs(ids...)
}

// Mutation returns the TerritoryMutation object of the builder.
func (_u *TerritoryUpdate) Mutation() *TerritoryMutation {
	return _u.mutation
}

// ClearAreas clears all "areas" edges to the Area entity.
func (_u *TerritoryUpdate) ClearAreas() *TerritoryUpdate {
	_u.mutation.ClearAreas()
	return _u
}

// RemoveAreaIDs removes the "areas" edge to Area entities by IDs.
func (_u *TerritoryUpdate) RemoveAreaIDs(ids ...uuid.UUID) *TerritoryUpdate {
	_u.mutation.RemoveAreaIDs(ids...)
	return _u
}

// RemoveAreas removes "areas" edges to Area entities.
func (_u *TerritoryUpdate) RemoveAreas(v ...*Area) *TerritoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAreaIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TerritoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TerritoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TerritoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TerritoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TerritoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := territory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TerritoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := territory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Territory.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TerritoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(territory.Table, territory.Columns, sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(territory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(territory.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(territory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAreasIDs(); len(nodes) > 0 && !_u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{territory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TerritoryUpdateOne is the builder for updating a single Territory entity.
type TerritoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TerritoryMutation
}

// SetName sets the "name" field.
func (_u *TerritoryUpdateOne) SetName(v string) *TerritoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TerritoryUpdateOne) SetNillableName(v *string) *TerritoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TerritoryUpdateOne) SetCreatedAt(v time.Time) *TerritoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TerritoryUpdateOne) SetNillableCreatedAt(v *time.Time) *TerritoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TerritoryUpdateOne) SetUpdatedAt(v time.Time) *TerritoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAreaIDs adds the "areas" edge to the Area entity by IDs.
func (_u *TerritoryUpdateOne) AddAreaIDs(ids ...uuid.UUID) *TerritoryUpdateOne {
	_u.mutation.AddAreaIDs(ids...)
	return _u
}

// AddAreas adds the "areas" edges to the Area entity.
func (_u *TerritoryUpdateOne) AddAreas(v ...*Area) *TerritoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAreaIDs(ids...)
}

// Mutation returns the TerritoryMutation object of the builder.
func (_u *TerritoryUpdateOne) Mutation() *TerritoryMutation {
	return _u.mutation
}

// ClearAreas clears all "areas" edges to the Area entity.
func (_u *TerritoryUpdateOne) ClearAreas() *TerritoryUpdateOne {
	_u.mutation.ClearAreas()
	return _u
}

// RemoveAreaIDs removes the "areas" edge to Area entities by IDs.
func (_u *TerritoryUpdateOne) RemoveAreaIDs(ids ...uuid.UUID) *TerritoryUpdateOne {
	_u.mutation.RemoveAreaIDs(ids...)
	return _u
}

// RemoveAreas removes "areas" edges to Area entities.
func (_u *TerritoryUpdateOne) RemoveAreas(v ...*Area) *TerritoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAreaIDs(ids...)
}

// Where appends a list predicates to the TerritoryUpdate builder.
func (_u *TerritoryUpdateOne) Where(ps ...predicate.Territory) *TerritoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TerritoryUpdateOne) Select(field string, fields ...string) *TerritoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Territory entity.
func (_u *TerritoryUpdateOne) Save(ctx context.Context) (*Territory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TerritoryUpdateOne) SaveX(ctx context.Context) *Territory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TerritoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TerritoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TerritoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := territory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TerritoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := territory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Territory.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TerritoryUpdateOne) sqlSave(ctx context.Context) (_node *Territory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(territory.Table, territory.Columns, sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Territory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, territory.FieldID)
		for _, f := range fields {
			if !territory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != territory.FieldID {
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
		_spec.SetField(territory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(territory.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(territory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAreasIDs(); len(nodes) > 0 && !_u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   territory.AreasTable,
			Columns: []string{territory.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Territory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{territory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
