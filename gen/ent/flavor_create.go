// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/tubmovement"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FlavorCreate is the builder for creating a Flavor entity.
type FlavorCreate struct {
	config
	mutation *FlavorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FlavorCreate) SetName(v string) *FlavorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSeasonal sets the "seasonal" field.
func (_c *FlavorCreate) SetSeasonal(v bool) *FlavorCreate {
	_c.mutation.SetSeasonal(v)
	return _c
}

// SetNillableSeasonal sets the "seasonal" field if the given value is not nil.
func (_c *FlavorCreate) SetNillableSeasonal(v *bool) *FlavorCreate {
	if v != nil {
		_c.SetSeasonal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlavorCreate) SetCreatedAt(v time.Time) *FlavorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlavorCreate) SetNillableCreatedAt(v *time.Time) *FlavorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlavorCreate) SetUpdatedAt(v time.Time) *FlavorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FlavorCreate) SetNillableUpdatedAt(v *time.Time) *FlavorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlavorCreate) SetID(v uuid.UUID) *FlavorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FlavorCreate) SetNillableID(v *uuid.UUID) *FlavorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by IDs.
func (_c *FlavorCreate) AddMovementIDs(ids ...uuid.UUID) *FlavorCreate {
	_c.mutation.AddMovementIDs(ids...)
	return _c
}

// AddMovements adds the "movements" edges to the TubMovement entity.
func (_c *FlavorCreate) AddMovements(v ...*TubMovement) *FlavorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMovementIDs(ids...)
}

// Mutation returns the FlavorMutation object of the builder.
func (_c *FlavorCreate) Mutation() *FlavorMutation {
	return _c.mutation
}

// Save creates the Flavor in the database.
func (_c *FlavorCreate) Save(ctx context.Context) (*Flavor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlavorCreate) SaveX(ctx context.Context) *Flavor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlavorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlavorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlavorCreate) defaults() {
	if _, ok := _c.mutation.Seasonal(); !ok {
		v := flavor.DefaultSeasonal
		_c.mutation.SetSeasonal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flavor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := flavor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := flavor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlavorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Flavor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := flavor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Flavor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seasonal(); !ok {
		return &ValidationError{Name: "seasonal", err: errors.New(`ent: missing required field "Flavor.seasonal"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flavor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Flavor.updated_at"`)}
	}
	return nil
}

func (_c *FlavorCreate) sqlSave(ctx context.Context) (*Flavor, error) {
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

func (_c *FlavorCreate) createSpec() (*Flavor, *sqlgraph.CreateSpec) {
	var (
		_node = &Flavor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flavor.Table, sqlgraph.NewFieldSpec(flavor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(flavor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Seasonal(); ok {
		_spec.SetField(flavor.FieldSeasonal, field.TypeBool, value)
		_node.Seasonal = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flavor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flavor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MovementsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlavorCreateBulk is the builder for creating many Flavor entities in bulk.
type FlavorCreateBulk struct {
	config
	err      error
	builders []*FlavorCreate
}

// Save creates the Flavor entities in the database.
func (_c *FlavorCreateBulk) Save(ctx context.Context) ([]*Flavor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flavor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlavorMutation)
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
func (_c *FlavorCreateBulk) SaveX(ctx context.Context) []*Flavor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlavorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlavorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
