// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/territory"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AreaUpdate is the builder for updating Area entities.
type AreaUpdate struct {
	config
	hooks    []Hook
	mutation *AreaMutation
}

// Where appends a list predicates to the AreaUpdate builder.
func (_u *AreaUpdate) Where(ps ...predicate.Area) *AreaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerritoryID sets the "territory_id" field.
func (_u *AreaUpdate) SetTerritoryID(v uuid.UUID) *AreaUpdate {
	_u.mutation.SetTerritoryID(v)
	return _u
}

// SetNillableTerritoryID sets the "territory_id" field if the given value is not nil.
func (_u *AreaUpdate) SetNillableTerritoryID(v *uuid.UUID) *AreaUpdate {
	if v != nil {
		_u.SetTerritoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AreaUpdate) SetName(v string) *AreaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AreaUpdate) SetNillableName(v *string) *AreaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AreaUpdate) SetCreatedAt(v time.Time) *AreaUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AreaUpdate) SetNillableCreatedAt(v *time.Time) *AreaUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AreaUpdate) SetUpdatedAt(v time.Time) *AreaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTerritory sets the "territory" edge to the Territory entity.
func (_u *AreaUpdate) SetTerritory(v *Territory) *AreaUpdate {
	return _u.SetTerritoryID(v.ID)
}

// AddBranchIDs adds the "branches" edge to the Branch entity by IDs.
func (_u *AreaUpdate) AddBranchIDs(ids ...uuid.UUID) *AreaUpdate {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the Branch entity.
func (_u *AreaUpdate) AddBranches(v ...*Branch) *AreaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// Mutation returns the AreaMutation object of the builder.
func (_u *AreaUpdate) Mutation() *AreaMutation {
	return _u.mutation
}

// ClearTerritory clears the "territory" edge to the Territory entity.
func (_u *AreaUpdate) ClearTerritory() *AreaUpdate {
	_u.mutation.ClearTerritory()
	return _u
}

// ClearBranches clears all "branches" edges to the Branch entity.
func (_u *AreaUpdate) ClearBranches() *AreaUpdate {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to Branch entities by IDs.
func (_u *AreaUpdate) RemoveBranchIDs(ids ...uuid.UUID) *AreaUpdate {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to Branch entities.
func (_u *AreaUpdate) RemoveBranches(v ...*Branch) *AreaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AreaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AreaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AreaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AreaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AreaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := area.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AreaUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := area.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Area.name": %w`, err)}
		}
	}
	if _u.mutation.TerritoryCleared() && len(_u.mutation.TerritoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Area.territory"`)
	}
	return nil
}

func (_u *AreaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(area.Table, area.Columns, sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(area.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(area.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(area.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerritoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   area.TerritoryTable,
			Columns: []string{area.TerritoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TerritoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   area.TerritoryTable,
			Columns: []string{area.TerritoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{area.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AreaUpdateOne is the builder for updating a single Area entity.
type AreaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AreaMutation
}

// SetTerritoryID sets the "territory_id" field.
func (_u *AreaUpdateOne) SetTerritoryID(v uuid.UUID) *AreaUpdateOne {
	_u.mutation.SetTerritoryID(v)
	return _u
}

// SetNillableTerritoryID sets the "territory_id" field if the given value is not nil.
func (_u *AreaUpdateOne) SetNillableTerritoryID(v *uuid.UUID) *AreaUpdateOne {
	if v != nil {
		_u.SetTerritoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AreaUpdateOne) SetName(v string) *AreaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AreaUpdateOne) SetNillableName(v *string) *AreaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AreaUpdateOne) SetCreatedAt(v time.Time) *AreaUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AreaUpdateOne) SetNillableCreatedAt(v *time.Time) *AreaUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AreaUpdateOne) SetUpdatedAt(v time.Time) *AreaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTerritory sets the "territory" edge to the Territory entity.
func (_u *AreaUpdateOne) SetTerritory(v *Territory) *AreaUpdateOne {
	return _u.SetTerritoryID(v.ID)
}

// AddBranchIDs adds the "branches" edge to the Branch entity by IDs.
func (_u *AreaUpdateOne) AddBranchIDs(ids ...uuid.UUID) *AreaUpdateOne {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the Branch entity.
func (_u *AreaUpdateOne) AddBranches(v ...*Branch) *AreaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// Mutation returns the AreaMutation object of the builder.
func (_u *AreaUpdateOne) Mutation() *AreaMutation {
	return _u.mutation
}

// ClearTerritory clears the "territory" edge to the Territory entity.
func (_u *AreaUpdateOne) ClearTerritory() *AreaUpdateOne {
	_u.mutation.ClearTerritory()
	return _u
}

// ClearBranches clears all "branches" edges to the Branch entity.
func (_u *AreaUpdateOne) ClearBranches() *AreaUpdateOne {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to Branch entities by IDs.
func (_u *AreaUpdateOne) RemoveBranchIDs(ids ...uuid.UUID) *AreaUpdateOne {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to Branch entities.
func (_u *AreaUpdateOne) RemoveBranches(v ...*Branch) *AreaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// Where appends a list predicates to the AreaUpdate builder.
func (_u *AreaUpdateOne) Where(ps ...predicate.Area) *AreaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AreaUpdateOne) Select(field string, fields ...string) *AreaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Area entity.
func (_u *AreaUpdateOne) Save(ctx context.Context) (*Area, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AreaUpdateOne) SaveX(ctx context.Context) *Area {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AreaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AreaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AreaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := area.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AreaUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := area.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Area.name": %w`, err)}
		}
	}
	if _u.mutation.TerritoryCleared() && len(_u.mutation.TerritoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Area.territory"`)
	}
	return nil
}

func (_u *AreaUpdateOne) sqlSave(ctx context.Context) (_node *Area, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(area.Table, area.Columns, sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Area.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, area.FieldID)
		for _, f := range fields {
			if !area.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != area.FieldID {
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
		_spec.SetField(area.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(area.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(area.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerritoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   area.TerritoryTable,
			Columns: []string{area.TerritoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TerritoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   area.TerritoryTable,
			Columns: []string{area.TerritoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(territory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   area.BranchesTable,
			Columns: []string{area.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Area{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{area.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
