// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/tubmovement"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TubMovementCreate is the builder for creating a TubMovement entity.
type TubMovementCreate struct {
	config
	mutation *TubMovementMutation
	hooks    []Hook
}

// SetBranchID sets the "branch_id" field.
func (_c *TubMovementCreate) SetBranchID(v uuid.UUID) *TubMovementCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetFlavorID sets the "flavor_id" field.
func (_c *TubMovementCreate) SetFlavorID(v uuid.UUID) *TubMovementCreate {
	_c.mutation.SetFlavorID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TubMovementCreate) SetKind(v string) *TubMovementCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *TubMovementCreate) SetQuantity(v int) *TubMovementCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *TubMovementCreate) SetNote(v string) *TubMovementCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *TubMovementCreate) SetNillableNote(v *string) *TubMovementCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetMovedAt sets the "moved_at" field.
func (_c *TubMovementCreate) SetMovedAt(v time.Time) *TubMovementCreate {
	_c.mutation.SetMovedAt(v)
	return _c
}

// SetNillableMovedAt sets the "moved_at" field if the given value is not nil.
func (_c *TubMovementCreate) SetNillableMovedAt(v *time.Time) *TubMovementCreate {
	if v != nil {
		_c.SetMovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TubMovementCreate) SetID(v uuid.UUID) *TubMovementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TubMovementCreate) SetNillableID(v *uuid.UUID) *TubMovementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_c *TubMovementCreate) SetBranch(v *Branch) *TubMovementCreate {
	return _c.SetBranchID(v.ID)
}

// SetFlavor sets the "flavor" edge to the Flavor entity.
func (_c *TubMovementCreate) SetFlavor(v *Flavor) *TubMovementCreate {
	return _c.SetFlavorID(v.ID)
}

// Mutation returns the TubMovementMutation object of the builder.
func (_c *TubMovementCreate) Mutation() *TubMovementMutation {
	return _c.mutation
}

// Save creates the TubMovement in the database.
func (_c *TubMovementCreate) Save(ctx context.Context) (*TubMovement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TubMovementCreate) SaveX(ctx context.Context) *TubMovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TubMovementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TubMovementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TubMovementCreate) defaults() {
	if _, ok := _c.mutation.MovedAt(); !ok {
		v := tubmovement.DefaultMovedAt()
		_c.mutation.SetMovedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tubmovement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TubMovementCreate) check() error {
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`ent: missing required field "TubMovement.branch_id"`)}
	}
	if _, ok := _c.mutation.FlavorID(); !ok {
		return &ValidationError{Name: "flavor_id", err: errors.New(`ent: missing required field "TubMovement.flavor_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TubMovement.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := tubmovement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TubMovement.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "TubMovement.quantity"`)}
	}
	if _, ok := _c.mutation.MovedAt(); !ok {
		return &ValidationError{Name: "moved_at", err: errors.New(`ent: missing required field "TubMovement.moved_at"`)}
	}
	if len(_c.mutation.BranchIDs()) == 0 {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required edge "TubMovement.branch"`)}
	}
	if len(_c.mutation.FlavorIDs()) == 0 {
		return &ValidationError{Name: "flavor", err: errors.New(`ent: missing required edge "TubMovement.flavor"`)}
	}
	return nil
}

func (_c *TubMovementCreate) sqlSave(ctx context.Context) (*TubMovement, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TubMovementCreate) createSpec() (*TubMovement, *sqlgraph.CreateSpec) {
	var (
		_node = &TubMovement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tubmovement.Table, sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(tubmovement.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(tubmovement.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(tubmovement.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.MovedAt(); ok {
		_spec.SetField(tubmovement.FieldMovedAt, field.TypeTime, value)
		_node.MovedAt = value
	}
	if nodes := _c.mutation.BranchIDs(); len(nodes) > 0 {
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
		_node.BranchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FlavorIDs(); len(nodes) > 0 {
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
		_node.FlavorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TubMovementCreateBulk is the builder for creating many TubMovement entities in bulk.
type TubMovementCreateBulk struct {
	config
	err      error
	builders []*TubMovementCreate
}

// Save creates the TubMovement entities in the database.
func (_c *TubMovementCreateBulk) Save(ctx context.Context) ([]*TubMovement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TubMovement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TubMovementMutation)
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
func (_c *TubMovementCreateBulk) SaveX(ctx context.Context) []*TubMovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TubMovementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TubMovementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
