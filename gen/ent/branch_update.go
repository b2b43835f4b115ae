// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/salesrecord"
	"salestracker/gen/ent/tubmovement"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BranchUpdate is the builder for updating Branch entities.
type BranchUpdate struct {
	config
	hooks    []Hook
	mutation *BranchMutation
}

// Where appends a list predicates to the BranchUpdate builder.
func (_u *BranchUpdate) Where(ps ...predicate.Branch) *BranchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *BranchUpdate) SetAreaID(v uuid.UUID) *BranchUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *BranchUpdate) SetNillableAreaID(v *uuid.UUID) *BranchUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BranchUpdate) SetName(v string) *BranchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BranchUpdate) SetNillableName(v *string) *BranchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *BranchUpdate) SetCode(v string) *BranchUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BranchUpdate) SetNillableCode(v *string) *BranchUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *BranchUpdate) ClearCode() *BranchUpdate {
	_u.mutation.ClearCode()
	return _u
}

// SetActive sets the "active" field.
func (_u *BranchUpdate) SetActive(v bool) *BranchUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BranchUpdate) SetNillableActive(v *bool) *BranchUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BranchUpdate) SetCreatedAt(v time.Time) *BranchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BranchUpdate) SetNillableCreatedAt(v *time.Time) *BranchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BranchUpdate) SetUpdatedAt(v time.Time) *BranchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArea sets the "area" edge to the Area entity.
func (_u *BranchUpdate) SetArea(v *Area) *BranchUpdate {
	return _u.SetAreaID(v.ID)
}

// AddSaleIDs adds the "sales" edge to the SalesRecord entity by IDs.
func (_u *BranchUpdate) AddSaleIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.AddSaleIDs(ids...)
	return _u
}

// AddSales adds the "sales" edges to the SalesRecord entity.
func (_u *BranchUpdate) AddSales(v ...*SalesRecord) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSaleIDs(ids...)
}

// AddBudgetDayIDs adds the "budget_days" edge to the BudgetDay entity by IDs.
func (_u *BranchUpdate) AddBudgetDayIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.AddBudgetDayIDs(ids...)
	return _u
}

// AddBudgetDays adds the "budget_days" edges to the BudgetDay entity.
func (_u *BranchUpdate) AddBudgetDays(v ...*BudgetDay) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBudgetDayIDs(ids...)
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by IDs.
func (_u *BranchUpdate) AddMovementIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.AddMovementIDs(ids...)
	return _u
}

// AddMovements adds the "movements" edges to the TubMovement entity.
func (_u *BranchUpdate) AddMovements(v ...*TubMovement) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMovementIDs(ids...)
}

// Mutation returns the BranchMutation object of the builder.
func (_u *BranchUpdate) Mutation() *BranchMutation {
	return _u.mutation
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *BranchUpdate) ClearArea() *BranchUpdate {
	_u.mutation.ClearArea()
	return _u
}

// ClearSales clears all "sales" edges to the SalesRecord entity.
func (_u *BranchUpdate) ClearSales() *BranchUpdate {
	_u.mutation.ClearSales()
	return _u
}

// RemoveSaleIDs removes the "sales" edge to SalesRecord entities by IDs.
func (_u *BranchUpdate) RemoveSaleIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.RemoveSaleIDs(ids...)
	return _u
}

// RemoveSales removes "sales" edges to SalesRecord entities.
func (_u *BranchUpdate) RemoveSales(v ...*SalesRecord) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSaleIDs(ids...)
}

// ClearBudgetDays clears all "budget_days" edges to the BudgetDay entity.
func (_u *BranchUpdate) ClearBudgetDays() *BranchUpdate {
	_u.mutation.ClearBudgetDays()
	return _u
}

// RemoveBudgetDayIDs removes the "budget_days" edge to BudgetDay entities by IDs.
func (_u *BranchUpdate) RemoveBudgetDayIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.RemoveBudgetDayIDs(ids...)
	return _u
}

// RemoveBudgetDays removes "budget_days" edges to BudgetDay entities.
func (_u *BranchUpdate) RemoveBudgetDays(v ...*BudgetDay) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBudgetDayIDs(ids...)
}

// ClearMovements clears all "movements" edges to the TubMovement entity.
func (_u *BranchUpdate) ClearMovements() *BranchUpdate {
	_u.mutation.ClearMovements()
	return _u
}

// RemoveMovementIDs removes the "movements" edge to TubMovement entities by IDs.
func (_u *BranchUpdate) RemoveMovementIDs(ids ...uuid.UUID) *BranchUpdate {
	_u.mutation.RemoveMovementIDs(ids...)
	return _u
}

// RemoveMovements removes "movements" edges to TubMovement entities.
func (_u *BranchUpdate) RemoveMovements(v ...*TubMovement) *BranchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMovementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BranchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BranchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BranchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BranchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BranchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := branch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BranchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := branch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Branch.name": %w`, err)}
		}
	}
	if _u.mutation.AreaCleared() && len(_u.mutation.AreaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Branch.area"`)
	}
	return nil
}

func (_u *BranchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(branch.Table, branch.Columns, sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(branch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(branch.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(branch.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(branch.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(branch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(branch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branch.AreaTable,
			Columns: []string{branch.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branch.AreaTable,
			Columns: []string{branch.AreaColumn},
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
	if _u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesIDs(); len(nodes) > 0 && !_u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBudgetDaysIDs(); len(nodes) > 0 && !_u.mutation.BudgetDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetDaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
			err = &NotFoundError{branch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BranchUpdateOne is the builder for updating a single Branch entity.
type BranchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BranchMutation
}

// SetAreaID sets the "area_id" field.
func (_u *BranchUpdateOne) SetAreaID(v uuid.UUID) *BranchUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *BranchUpdateOne) SetNillableAreaID(v *uuid.UUID) *BranchUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BranchUpdateOne) SetName(v string) *BranchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BranchUpdateOne) SetNillableName(v *string) *BranchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *BranchUpdateOne) SetCode(v string) *BranchUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BranchUpdateOne) SetNillableCode(v *string) *BranchUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *BranchUpdateOne) ClearCode() *BranchUpdateOne {
	_u.mutation.ClearCode()
	return _u
}

// SetActive sets the "active" field.
func (_u *BranchUpdateOne) SetActive(v bool) *BranchUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BranchUpdateOne) SetNillableActive(v *bool) *BranchUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BranchUpdateOne) SetCreatedAt(v time.Time) *BranchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BranchUpdateOne) SetNillableCreatedAt(v *time.Time) *BranchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BranchUpdateOne) SetUpdatedAt(v time.Time) *BranchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArea sets the "area" edge to the Area entity.
func (_u *BranchUpdateOne) SetArea(v *Area) *BranchUpdateOne {
	return _u.SetAreaID(v.ID)
}

// AddSaleIDs adds the "sales" edge to the SalesRecord entity by IDs.
func (_u *BranchUpdateOne) AddSaleIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.AddSaleIDs(ids...)
	return _u
}

// AddSales adds the "sales" edges to the SalesRecord entity.
func (_u *BranchUpdateOne) AddSales(v ...*SalesRecord) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSaleIDs(ids...)
}

// AddBudgetDayIDs adds the "budget_days" edge to the BudgetDay entity by IDs.
func (_u *BranchUpdateOne) AddBudgetDayIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.AddBudgetDayIDs(ids...)
	return _u
}

// AddBudgetDays adds the "budget_days" edges to the BudgetDay entity.
func (_u *BranchUpdateOne) AddBudgetDays(v ...*BudgetDay) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBudgetDayIDs(ids...)
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by IDs.
func (_u *BranchUpdateOne) AddMovementIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.AddMovementIDs(ids...)
	return _u
}

// AddMovements adds the "movements" edges to the TubMovement entity.
func (_u *BranchUpdateOne) AddMovements(v ...*TubMovement) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMovementIDs(ids...)
}

// Mutation returns the BranchMutation object of the builder.
func (_u *BranchUpdateOne) Mutation() *BranchMutation {
	return _u.mutation
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *BranchUpdateOne) ClearArea() *BranchUpdateOne {
	_u.mutation.ClearArea()
	return _u
}

// ClearSales clears all "sales" edges to the SalesRecord entity.
func (_u *BranchUpdateOne) ClearSales() *BranchUpdateOne {
	_u.mutation.ClearSales()
	return _u
}

// RemoveSaleIDs removes the "sales" edge to SalesRecord entities by IDs.
func (_u *BranchUpdateOne) RemoveSaleIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.RemoveSaleIDs(ids...)
	return _u
}

// RemoveSales removes "sales" edges to SalesRecord entities.
func (_u *BranchUpdateOne) RemoveSales(v ...*SalesRecord) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSaleIDs(ids...)
}

// ClearBudgetDays clears all "budget_days" edges to the BudgetDay entity.
func (_u *BranchUpdateOne) ClearBudgetDays() *BranchUpdateOne {
	_u.mutation.ClearBudgetDays()
	return _u
}

// RemoveBudgetDayIDs removes the "budget_days" edge to BudgetDay entities by IDs.
func (_u *BranchUpdateOne) RemoveBudgetDayIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.RemoveBudgetDayIDs(ids...)
	return _u
}

// RemoveBudgetDays removes "budget_days" edges to BudgetDay entities.
func (_u *BranchUpdateOne) RemoveBudgetDays(v ...*BudgetDay) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBudgetDayIDs(ids...)
}

// ClearMovements clears all "movements" edges to the TubMovement entity.
func (_u *BranchUpdateOne) ClearMovements() *BranchUpdateOne {
	_u.mutation.ClearMovements()
	return _u
}

// RemoveMovementIDs removes the "movements" edge to TubMovement entities by IDs.
func (_u *BranchUpdateOne) RemoveMovementIDs(ids ...uuid.UUID) *BranchUpdateOne {
	_u.mutation.RemoveMovementIDs(ids...)
	return _u
}

// RemoveMovements removes "movements" edges to TubMovement entities.
func (_u *BranchUpdateOne) RemoveMovements(v ...*TubMovement) *BranchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMovementIDs(ids...)
}

// Where appends a list predicates to the BranchUpdate builder.
func (_u *BranchUpdateOne) Where(ps ...predicate.Branch) *BranchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BranchUpdateOne) Select(field string, fields ...string) *BranchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Branch entity.
func (_u *BranchUpdateOne) Save(ctx context.Context) (*Branch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BranchUpdateOne) SaveX(ctx context.Context) *Branch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BranchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BranchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BranchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := branch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BranchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := branch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Branch.name": %w`, err)}
		}
	}
	if _u.mutation.AreaCleared() && len(_u.mutation.AreaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Branch.area"`)
	}
	return nil
}

func (_u *BranchUpdateOne) sqlSave(ctx context.Context) (_node *Branch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(branch.Table, branch.Columns, sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Branch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, branch.FieldID)
		for _, f := range fields {
			if !branch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != branch.FieldID {
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
		_spec.SetField(branch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(branch.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(branch.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(branch.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(branch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(branch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branch.AreaTable,
			Columns: []string{branch.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branch.AreaTable,
			Columns: []string{branch.AreaColumn},
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
	if _u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesIDs(); len(nodes) > 0 && !_u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.SalesTable,
			Columns: []string{branch.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBudgetDaysIDs(); len(nodes) > 0 && !_u.mutation.BudgetDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetDaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.BudgetDaysTable,
			Columns: []string{branch.BudgetDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
			Table:   branch.MovementsTable,
			Columns: []string{branch.MovementsColumn},
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
	_node = &Branch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{branch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
