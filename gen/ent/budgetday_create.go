// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BudgetDayCreate is the builder for creating a BudgetDay entity.
type BudgetDayCreate struct {
	config
	mutation *BudgetDayMutation
	hooks    []Hook
}

// SetBranchID sets the "branch_id" field.
func (_c *BudgetDayCreate) SetBranchID(v uuid.UUID) *BudgetDayCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetBusinessDate sets the "business_date" field.
func (_c *BudgetDayCreate) SetBusinessDate(v time.Time) *BudgetDayCreate {
	_c.mutation.SetBusinessDate(v)
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *BudgetDayCreate) SetWeekday(v string) *BudgetDayCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetBudgetAmount sets the "budget_amount" field.
func (_c *BudgetDayCreate) SetBudgetAmount(v float64) *BudgetDayCreate {
	_c.mutation.SetBudgetAmount(v)
	return _c
}

// SetBudgetGuestCount sets the "budget_guest_count" field.
func (_c *BudgetDayCreate) SetBudgetGuestCount(v int) *BudgetDayCreate {
	_c.mutation.SetBudgetGuestCount(v)
	return _c
}

// SetNillableBudgetGuestCount sets the "budget_guest_count" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableBudgetGuestCount(v *int) *BudgetDayCreate {
	if v != nil {
		_c.SetBudgetGuestCount(*v)
	}
	return _c
}

// SetLySales sets the "ly_sales" field.
func (_c *BudgetDayCreate) SetLySales(v float64) *BudgetDayCreate {
	_c.mutation.SetLySales(v)
	return _c
}

// SetNillableLySales sets the "ly_sales" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableLySales(v *float64) *BudgetDayCreate {
	if v != nil {
		_c.SetLySales(*v)
	}
	return _c
}

// SetLyGuestCount sets the "ly_guest_count" field.
func (_c *BudgetDayCreate) SetLyGuestCount(v int) *BudgetDayCreate {
	_c.mutation.SetLyGuestCount(v)
	return _c
}

// SetNillableLyGuestCount sets the "ly_guest_count" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableLyGuestCount(v *int) *BudgetDayCreate {
	if v != nil {
		_c.SetLyGuestCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetDayCreate) SetCreatedAt(v time.Time) *BudgetDayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableCreatedAt(v *time.Time) *BudgetDayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetDayCreate) SetUpdatedAt(v time.Time) *BudgetDayCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableUpdatedAt(v *time.Time) *BudgetDayCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetDayCreate) SetID(v uuid.UUID) *BudgetDayCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BudgetDayCreate) SetNillableID(v *uuid.UUID) *BudgetDayCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_c *BudgetDayCreate) SetBranch(v *Branch) *BudgetDayCreate {
	return _c.SetBranchID(v.ID)
}

// Mutation returns the BudgetDayMutation object of the builder.
func (_c *BudgetDayCreate) Mutation() *BudgetDayMutation {
	return _c.mutation
}

// Save creates the BudgetDay in the database.
func (_c *BudgetDayCreate) Save(ctx context.Context) (*BudgetDay, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetDayCreate) SaveX(ctx context.Context) *BudgetDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetDayCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budgetday.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetday.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := budgetday.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetDayCreate) check() error {
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`ent: missing required field "BudgetDay.branch_id"`)}
	}
	if _, ok := _c.mutation.BusinessDate(); !ok {
		return &ValidationError{Name: "business_date", err: errors.New(`ent: missing required field "BudgetDay.business_date"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`ent: missing required field "BudgetDay.weekday"`)}
	}
	if v, ok := _c.mutation.Weekday(); ok {
		if err := budgetday.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "BudgetDay.weekday": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BudgetAmount(); !ok {
		return &ValidationError{Name: "budget_amount", err: errors.New(`ent: missing required field "BudgetDay.budget_amount"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BudgetDay.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetDay.updated_at"`)}
	}
	if len(_c.mutation.BranchIDs()) == 0 {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required edge "BudgetDay.branch"`)}
	}
	return nil
}

func (_c *BudgetDayCreate) sqlSave(ctx context.Context) (*BudgetDay, error) {
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

func (_c *BudgetDayCreate) createSpec() (*BudgetDay, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetday.Table, sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BusinessDate(); ok {
		_spec.SetField(budgetday.FieldBusinessDate, field.TypeTime, value)
		_node.BusinessDate = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(budgetday.FieldWeekday, field.TypeString, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.BudgetAmount(); ok {
		_spec.SetField(budgetday.FieldBudgetAmount, field.TypeFloat64, value)
		_node.BudgetAmount = value
	}
	if value, ok := _c.mutation.BudgetGuestCount(); ok {
		_spec.SetField(budgetday.FieldBudgetGuestCount, field.TypeInt, value)
		_node.BudgetGuestCount = &value
	}
	if value, ok := _c.mutation.LySales(); ok {
		_spec.SetField(budgetday.FieldLySales, field.TypeFloat64, value)
		_node.LySales = &value
	}
	if value, ok := _c.mutation.LyGuestCount(); ok {
		_spec.SetField(budgetday.FieldLyGuestCount, field.TypeInt, value)
		_node.LyGuestCount = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budgetday.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetday.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BranchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetday.BranchTable,
			Columns: []string{budgetday.BranchColumn},
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
	return _node, _spec
}

// BudgetDayCreateBulk is the builder for creating many BudgetDay entities in bulk.
type BudgetDayCreateBulk struct {
	config
	err      error
	builders []*BudgetDayCreate
}

// Save creates the BudgetDay entities in the database.
func (_c *BudgetDayCreateBulk) Save(ctx context.Context) ([]*BudgetDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetDayMutation)
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
func (_c *BudgetDayCreateBulk) SaveX(ctx context.Context) []*BudgetDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
