// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/tubmovement"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TubMovementUpdate is the builder for updating TubMovement entities.
type TubMovementUpdate struct {
	config
	hooks    []Hook
	mutation *TubMovementMutation
}

// Where appends a list predicates to the TubMovementUpdate builder.
func (_u *TubMovementUpdate) Where(ps ...predicate.TubMovement) *TubMovementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *TubMovementUpdate) SetBranchID(v uuid.UUID) *TubMovementUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *TubMovementUpdate) SetNillableBranchID(v *uuid.UUID) *TubMovementUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetFlavorID sets the "flavor_id" field.
func (_u *TubMovementUpdate) SetFlavorID(v uuid.UUID) *TubMovementUpdate {
	_u.mutation.SetFlavorID(v)
	return _u
}

// SetNillableFlavorID sets the "flavor_id" field if the given value is not nil.
func (_u *TubMovementUpdate) SetNillableFlavorID(v *uuid.UUID) *TubMovementUpdate {
	if v != nil {
		_u.SetFlavorID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TubMovementUpdate) SetKind(v string) *TubMovementUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TubMovementUpdate) SetNillableKind(v *string) *TubMovementUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *TubMovementUpdate) SetQuantity(v int) *TubMovementUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *TubMovementUpdate) SetNillableQuantity(v *int) *TubMovementUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *TubMovementUpdate) AddQuantity(v int) *TubMovementUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *TubMovementUpdate) SetNote(v string) *TubMovementUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TubMovementUpdate) SetNillableNote(v *string) *TubMovementUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *TubMovementUpdate) ClearNote() *TubMovementUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *TubMovementUpdate) SetBranch(v *Branch) *TubMovementUpdate {
	return _u.SetBranchID(v.ID)
}

// SetFlavor sets the "flavor" edge to the Flavor entity.
func (_u *TubMovementUpdate) SetFlavor(v *Flavor) *TubMovementUpdate {
	return _u.SetFlavorID(v.ID)
}

// Mutation returns the TubMovementMutation object of the builder.
func (_u *TubMovementUpdate) Mutation() *TubMovementMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *TubMovementUpdate) ClearBranch() *TubMovementUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// ClearFlavor clears the "flavor" edge to the Flavor entity.
func (_u *TubMovementUpdate) ClearFlavor() *TubMovementUpdate {
	_u.mutation.ClearFlavor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TubMovementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TubMovementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TubMovementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TubMovementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TubMovementUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := tubmovement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TubMovement.kind": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TubMovement.branch"`)
	}
	if _u.mutation.FlavorCleared() && len(_u.mutation.FlavorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TubMovement.flavor"`)
	}
	return nil
}

func (_u *TubMovementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tubmovement.Table, tubmovement.Columns, sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(tubmovement.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(tubmovement.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(tubmovement.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(tubmovement.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(tubmovement.FieldNote, field.TypeString)
	}
	if _u.mutation.BranchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.BranchTable,
			Columns: []string{tubmovement.BranchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.BranchTable,
			Columns: []string{tubmovement.BranchColumn},
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
	if _u.mutation.FlavorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.FlavorTable,
			Columns: []string{tubmovement.FlavorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlavorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.FlavorTable,
			Columns: []string{tubmovement.FlavorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tubmovement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TubMovementUpdateOne is the builder for updating a single TubMovement entity.
type TubMovementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TubMovementMutation
}

// SetBranchID sets the "branch_id" field.
func (_u *TubMovementUpdateOne) SetBranchID(v uuid.UUID) *TubMovementUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *TubMovementUpdateOne) SetNillableBranchID(v *uuid.UUID) *TubMovementUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetFlavorID sets the "flavor_id" field.
func (_u *TubMovementUpdateOne) SetFlavorID(v uuid.UUID) *TubMovementUpdateOne {
	_u.mutation.SetFlavorID(v)
	return _u
}

// SetNillableFlavorID sets the "flavor_id" field if the given value is not nil.
func (_u *TubMovementUpdateOne) SetNillableFlavorID(v *uuid.UUID) *TubMovementUpdateOne {
	if v != nil {
		_u.SetFlavorID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TubMovementUpdateOne) SetKind(v string) *TubMovementUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TubMovementUpdateOne) SetNillableKind(v *string) *TubMovementUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *TubMovementUpdateOne) SetQuantity(v int) *TubMovementUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *TubMovementUpdateOne) SetNillableQuantity(v *int) *TubMovementUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *TubMovementUpdateOne) AddQuantity(v int) *TubMovementUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *TubMovementUpdateOne) SetNote(v string) *TubMovementUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TubMovementUpdateOne) SetNillableNote(v *string) *TubMovementUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *TubMovementUpdateOne) ClearNote() *TubMovementUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *TubMovementUpdateOne) SetBranch(v *Branch) *TubMovementUpdateOne {
	return _u.SetBranchID(v.ID)
}

// SetFlavor sets the "flavor" edge to the Flavor entity.
func (_u *TubMovementUpdateOne) SetFlavor(v *Flavor) *TubMovementUpdateOne {
	return _u.SetFlavorID(v.ID)
}

// Mutation returns the TubMovementMutation object of the builder.
func (_u *TubMovementUpdateOne) Mutation() *TubMovementMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *TubMovementUpdateOne) ClearBranch() *TubMovementUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// ClearFlavor clears the "flavor" edge to the Flavor entity.
func (_u *TubMovementUpdateOne) ClearFlavor() *TubMovementUpdateOne {
	_u.mutation.ClearFlavor()
	return _u
}

// Where appends a list predicates to the TubMovementUpdate builder.
func (_u *TubMovementUpdateOne) Where(ps ...predicate.TubMovement) *TubMovementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TubMovementUpdateOne) Select(field string, fields ...string) *TubMovementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TubMovement entity.
func (_u *TubMovementUpdateOne) Save(ctx context.Context) (*TubMovement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TubMovementUpdateOne) SaveX(ctx context.Context) *TubMovement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TubMovementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TubMovementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TubMovementUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := tubmovement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TubMovement.kind": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TubMovement.branch"`)
	}
	if _u.mutation.FlavorCleared() && len(_u.mutation.FlavorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TubMovement.flavor"`)
	}
	return nil
}

func (_u *TubMovementUpdateOne) sqlSave(ctx context.Context) (_node *TubMovement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tubmovement.Table, tubmovement.Columns, sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TubMovement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tubmovement.FieldID)
		for _, f := range fields {
			if !tubmovement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tubmovement.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(tubmovement.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(tubmovement.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(tubmovement.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(tubmovement.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(tubmovement.FieldNote, field.TypeString)
	}
	if _u.mutation.BranchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.BranchTable,
			Columns: []string{tubmovement.BranchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.BranchTable,
			Columns: []string{tubmovement.BranchColumn},
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
	if _u.mutation.FlavorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.FlavorTable,
			Columns: []string{tubmovement.FlavorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlavorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tubmovement.FlavorTable,
			Columns: []string{tubmovement.FlavorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TubMovement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tubmovement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
