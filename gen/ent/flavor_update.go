// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/tubmovement"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FlavorUpdate is the builder for updating Flavor entities.
type FlavorUpdate struct {
	config
	hooks    []Hook
	mutation *FlavorMutation
}

// Where appends a list predicates to the FlavorUpdate builder.
func (_u *FlavorUpdate) Where(ps ...predicate.Flavor) *FlavorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FlavorUpdate) SetName(v string) *FlavorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlavorUpdate) SetNillableName(v *string) *FlavorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSeasonal sets the "seasonal" field.
func (_u *FlavorUpdate) SetSeasonal(v bool) *FlavorUpdate {
	_u.mutation.SetSeasonal(v)
	return _u
}

// SetNillableSeasonal sets the "seasonal" field if the given value is not nil.
func (_u *FlavorUpdate) SetNillableSeasonal(v *bool) *FlavorUpdate {
	if v != nil {
		_u.SetSeasonal(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlavorUpdate) SetCreatedAt(v time.Time) *FlavorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlavorUpdate) SetNillableCreatedAt(v *time.Time) *FlavorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlavorUpdate) SetUpdatedAt(v time.Time) *FlavorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by IDs.
func (_u *FlavorUpdate) AddMovementIDs(ids ...uuid.UUID) *FlavorUpdate {
	_u.mutation.AddMovementIDs(ids...)
	return _u
}

// AddMovements adds the "movements" edges to the TubMovement entity.
func (_u *FlavorUpdate) AddMovements(v ...*TubMovement) *FlavorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMovementIDs(ids...)
}

// Mutation returns the FlavorMutation object of the builder.
func (_u *FlavorUpdate) Mutation() *FlavorMutation {
	return _u.mutation
}

// ClearMovements clears all "movements" edges to the TubMovement entity.
func (_u *FlavorUpdate) ClearMovements() *FlavorUpdate {
	_u.mutation.ClearMovements()
	return _u
}

// RemoveMovementIDs removes the "movements" edge to TubMovement entities by IDs.
func (_u *FlavorUpdate) RemoveMovementIDs(ids ...uuid.UUID) *FlavorUpdate {
	_u.mutation.RemoveMovementIDs(ids...)
	return _u
}

// RemoveMovements removes "movements" edges to TubMovement entities.
func (_u *FlavorUpdate) RemoveMovements(v ...*TubMovement) *FlavorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMovementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlavorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlavorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlavorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlavorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlavorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flavor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlavorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := flavor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Flavor.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FlavorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flavor.Table, flavor.Columns, sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(flavor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seasonal(); ok {
		_spec.SetField(flavor.FieldSeasonal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flavor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flavor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMovementsIDs(); len(nodes) > 0 && !_u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MovementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flavor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlavorUpdateOne is the builder for updating a single Flavor entity.
type FlavorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlavorMutation
}

// SetName sets the "name" field.
func (_u *FlavorUpdateOne) SetName(v string) *FlavorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlavorUpdateOne) SetNillableName(v *string) *FlavorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSeasonal sets the "seasonal" field.
func (_u *FlavorUpdateOne) SetSeasonal(v bool) *FlavorUpdateOne {
	_u.mutation.SetSeasonal(v)
	return _u
}

// SetNillableSeasonal sets the "seasonal" field if the given value is not nil.
func (_u *FlavorUpdateOne) SetNillableSeasonal(v *bool) *FlavorUpdateOne {
	if v != nil {
		_u.SetSeasonal(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlavorUpdateOne) SetCreatedAt(v time.Time) *FlavorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlavorUpdateOne) SetNillableCreatedAt(v *time.Time) *FlavorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlavorUpdateOne) SetUpdatedAt(v time.Time) *FlavorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by IDs.
func (_u *FlavorUpdateOne) AddMovementIDs(ids ...uuid.UUID) *FlavorUpdateOne {
	_u.mutation.AddMovementIDs(ids...)
	return _u
}

// AddMovements adds the "movements" edges to the TubMovement entity.
func (_u *FlavorUpdateOne) AddMovements(v ...*TubMovement) *FlavorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMovementIDs(ids...)
}

// Mutation returns the FlavorMutation object of the builder.
func (_u *FlavorUpdateOne) Mutation() *FlavorMutation {
	return _u.mutation
}

// ClearMovements clears all "movements" edges to the TubMovement entity.
func (_u *FlavorUpdateOne) ClearMovements() *FlavorUpdateOne {
	_u.mutation.ClearMovements()
	return _u
}

// RemoveMovementIDs removes the "movements" edge to TubMovement entities by IDs.
func (_u *FlavorUpdateOne) RemoveMovementIDs(ids ...uuid.UUID) *FlavorUpdateOne {
	_u.mutation.RemoveMovementIDs(ids...)
	return _u
}

// RemoveMovements removes "movements" edges to TubMovement entities.
func (_u *FlavorUpdateOne) RemoveMovements(v ...*TubMovement) *FlavorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMovementIDs(ids...)
}

// Where appends a list predicates to the FlavorUpdate builder.
func (_u *FlavorUpdateOne) Where(ps ...predicate.Flavor) *FlavorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlavorUpdateOne) Select(field string, fields ...string) *FlavorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flavor entity.
func (_u *FlavorUpdateOne) Save(ctx context.Context) (*Flavor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlavorUpdateOne) SaveX(ctx context.Context) *Flavor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlavorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlavorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlavorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flavor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlavorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := flavor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Flavor.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FlavorUpdateOne) sqlSave(ctx context.Context) (_node *Flavor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flavor.Table, flavor.Columns, sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flavor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flavor.FieldID)
		for _, f := range fields {
			if !flavor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flavor.FieldID {
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
		_spec.SetField(flavor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seasonal(); ok {
		_spec.SetField(flavor.FieldSeasonal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flavor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flavor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMovementsIDs(); len(nodes) > 0 && !_u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MovementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flavor.MovementsTable,
			Columns: []string{flavor.MovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Flavor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flavor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
