// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BudgetDayUpdate is the builder for updating BudgetDay entities.
type BudgetDayUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetDayMutation
}

// Where appends a list predicates to the BudgetDayUpdate builder.
func (_u *BudgetDayUpdate) Where(ps ...predicate.BudgetDay) *BudgetDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *BudgetDayUpdate) SetBranchID(v uuid.UUID) *BudgetDayUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableBranchID(v *uuid.UUID) *BudgetDayUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *BudgetDayUpdate) SetWeekday(v string) *BudgetDayUpdate {
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableWeekday(v *string) *BudgetDayUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// SetBudgetAmount sets the "budget_amount" field.
func (_u *BudgetDayUpdate) SetBudgetAmount(v float64) *BudgetDayUpdate {
	_u.mutation.ResetBudgetAmount()
	_u.mutation.SetBudgetAmount(v)
	return _u
}

// SetNillableBudgetAmount sets the "budget_amount" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableBudgetAmount(v *float64) *BudgetDayUpdate {
	if v != nil {
		_u.SetBudgetAmount(*v)
	}
	return _u
}

// AddBudgetAmount adds value to the "budget_amount" field.
func (_u *BudgetDayUpdate) AddBudgetAmount(v float64) *BudgetDayUpdate {
	_u.mutation.AddBudgetAmount(v)
	return _u
}

// SetBudgetGuestCount sets the "budget_guest_count" field.
func (_u *BudgetDayUpdate) SetBudgetGuestCount(v int) *BudgetDayUpdate {
	_u.mutation.ResetBudgetGuestCount()
	_u.mutation.SetBudgetGuestCount(v)
	return _u
}

// SetNillableBudgetGuestCount sets the "budget_guest_count" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableBudgetGuestCount(v *int) *BudgetDayUpdate {
	if v != nil {
		_u.SetBudgetGuestCount(*v)
	}
	return _u
}

// AddBudgetGuestCount adds value to the "budget_guest_count" field.
func (_u *BudgetDayUpdate) AddBudgetGuestCount(v int) *BudgetDayUpdate {
	_u.mutation.AddBudgetGuestCount(v)
	return _u
}

// ClearBudgetGuestCount clears the value of the "budget_guest_count" field.
func (_u *BudgetDayUpdate) ClearBudgetGuestCount() *BudgetDayUpdate {
	_u.mutation.ClearBudgetGuestCount()
	return _u
}

// SetLySales sets the "ly_sales" field.
func (_u *BudgetDayUpdate) SetLySales(v float64) *BudgetDayUpdate {
	_u.mutation.ResetLySales()
	_u.mutation.SetLySales(v)
	return _u
}

// SetNillableLySales sets the "ly_sales" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableLySales(v *float64) *BudgetDayUpdate {
	if v != nil {
		_u.SetLySales(*v)
	}
	return _u
}

// AddLySales adds value to the "ly_sales" field.
func (_u *BudgetDayUpdate) AddLySales(v float64) *BudgetDayUpdate {
	_u.mutation.AddLySales(v)
	return _u
}

// ClearLySales clears the value of the "ly_sales" field.
func (_u *BudgetDayUpdate) ClearLySales() *BudgetDayUpdate {
	_u.mutation.ClearLySales()
	return _u
}

// SetLyGuestCount sets the "ly_guest_count" field.
func (_u *BudgetDayUpdate) SetLyGuestCount(v int) *BudgetDayUpdate {
	_u.mutation.ResetLyGuestCount()
	_u.mutation.SetLyGuestCount(v)
	return _u
}

// SetNillableLyGuestCount sets the "ly_guest_count" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableLyGuestCount(v *int) *BudgetDayUpdate {
	if v != nil {
		_u.SetLyGuestCount(*v)
	}
	return _u
}

// AddLyGuestCount adds value to the "ly_guest_count" field.
func (_u *BudgetDayUpdate) AddLyGuestCount(v int) *BudgetDayUpdate {
	_u.mutation.AddLyGuestCount(v)
	return _u
}

// ClearLyGuestCount clears the value of the "ly_guest_count" field.
func (_u *BudgetDayUpdate) ClearLyGuestCount() *BudgetDayUpdate {
	_u.mutation.ClearLyGuestCount()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BudgetDayUpdate) SetCreatedAt(v time.Time) *BudgetDayUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BudgetDayUpdate) SetNillableCreatedAt(v *time.Time) *BudgetDayUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetDayUpdate) SetUpdatedAt(v time.Time) *BudgetDayUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *BudgetDayUpdate) SetBranch(v *Branch) *BudgetDayUpdate {
	return _u.SetBranchID(v.ID)
}

// Mutation returns the BudgetDayMutation object of the builder.
func (_u *BudgetDayUpdate) Mutation() *BudgetDayMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *BudgetDayUpdate) ClearBranch() *BudgetDayUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetDayUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetDayUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetDayUpdate) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := budgetday.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "BudgetDay.weekday": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDay.branch"`)
	}
	return nil
}

func (_u *BudgetDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetday.Table, budgetday.Columns, sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(budgetday.FieldWeekday, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetAmount(); ok {
		_spec.SetField(budgetday.FieldBudgetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetAmount(); ok {
		_spec.AddField(budgetday.FieldBudgetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BudgetGuestCount(); ok {
		_spec.SetField(budgetday.FieldBudgetGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetGuestCount(); ok {
		_spec.AddField(budgetday.FieldBudgetGuestCount, field.TypeInt, value)
	}
	if _u.mutation.BudgetGuestCountCleared() {
		_spec.ClearField(budgetday.FieldBudgetGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.LySales(); ok {
		_spec.SetField(budgetday.FieldLySales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLySales(); ok {
		_spec.AddField(budgetday.FieldLySales, field.TypeFloat64, value)
	}
	if _u.mutation.LySalesCleared() {
		_spec.ClearField(budgetday.FieldLySales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LyGuestCount(); ok {
		_spec.SetField(budgetday.FieldLyGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLyGuestCount(); ok {
		_spec.AddField(budgetday.FieldLyGuestCount, field.TypeInt, value)
	}
	if _u.mutation.LyGuestCountCleared() {
		_spec.ClearField(budgetday.FieldLyGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(budgetday.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetday.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BranchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetDayUpdateOne is the builder for updating a single BudgetDay entity.
type BudgetDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetDayMutation
}

// SetBranchID sets the "branch_id" field.
func (_u *BudgetDayUpdateOne) SetBranchID(v uuid.UUID) *BudgetDayUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableBranchID(v *uuid.UUID) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *BudgetDayUpdateOne) SetWeekday(v string) *BudgetDayUpdateOne {
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableWeekday(v *string) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// SetBudgetAmount sets the "budget_amount" field.
func (_u *BudgetDayUpdateOne) SetBudgetAmount(v float64) *BudgetDayUpdateOne {
	_u.mutation.ResetBudgetAmount()
	_u.mutation.SetBudgetAmount(v)
	return _u
}

// SetNillableBudgetAmount sets the "budget_amount" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableBudgetAmount(v *float64) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetBudgetAmount(*v)
	}
	return _u
}

// AddBudgetAmount adds value to the "budget_amount" field.
func (_u *BudgetDayUpdateOne) AddBudgetAmount(v float64) *BudgetDayUpdateOne {
	_u.mutation.AddBudgetAmount(v)
	return _u
}

// SetBudgetGuestCount sets the "budget_guest_count" field.
func (_u *BudgetDayUpdateOne) SetBudgetGuestCount(v int) *BudgetDayUpdateOne {
	_u.mutation.ResetBudgetGuestCount()
	_u.mutation.SetBudgetGuestCount(v)
	return _u
}

// SetNillableBudgetGuestCount sets the "budget_guest_count" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableBudgetGuestCount(v *int) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetBudgetGuestCount(*v)
	}
	return _u
}

// AddBudgetGuestCount adds value to the "budget_guest_count" field.
func (_u *BudgetDayUpdateOne) AddBudgetGuestCount(v int) *BudgetDayUpdateOne {
	_u.mutation.AddBudgetGuestCount(v)
	return _u
}

// ClearBudgetGuestCount clears the value of the "budget_guest_count" field.
func (_u *BudgetDayUpdateOne) ClearBudgetGuestCount() *BudgetDayUpdateOne {
	_u.mutation.ClearBudgetGuestCount()
	return _u
}

// SetLySales sets the "ly_sales" field.
func (_u *BudgetDayUpdateOne) SetLySales(v float64) *BudgetDayUpdateOne {
	_u.mutation.ResetLySales()
	_u.mutation.SetLySales(v)
	return _u
}

// SetNillableLySales sets the "ly_sales" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableLySales(v *float64) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetLySales(*v)
	}
	return _u
}

// AddLySales adds value to the "ly_sales" field.
func (_u *BudgetDayUpdateOne) AddLySales(v float64) *BudgetDayUpdateOne {
	_u.mutation.AddLySales(v)
	return _u
}

// ClearLySales clears the value of the "ly_sales" field.
func (_u *BudgetDayUpdateOne) ClearLySales() *BudgetDayUpdateOne {
	_u.mutation.ClearLySales()
	return _u
}

// SetLyGuestCount sets the "ly_guest_count" field.
func (_u *BudgetDayUpdateOne) SetLyGuestCount(v int) *BudgetDayUpdateOne {
	_u.mutation.ResetLyGuestCount()
	_u.mutation.SetLyGuestCount(v)
	return _u
}

// SetNillableLyGuestCount sets the "ly_guest_count" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableLyGuestCount(v *int) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetLyGuestCount(*v)
	}
	return _u
}

// AddLyGuestCount adds value to the "ly_guest_count" field.
func (_u *BudgetDayUpdateOne) AddLyGuestCount(v int) *BudgetDayUpdateOne {
	_u.mutation.AddLyGuestCount(v)
	return _u
}

// ClearLyGuestCount clears the value of the "ly_guest_count" field.
func (_u *BudgetDayUpdateOne) ClearLyGuestCount() *BudgetDayUpdateOne {
	_u.mutation.ClearLyGuestCount()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BudgetDayUpdateOne) SetCreatedAt(v time.Time) *BudgetDayUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BudgetDayUpdateOne) SetNillableCreatedAt(v *time.Time) *BudgetDayUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetDayUpdateOne) SetUpdatedAt(v time.Time) *BudgetDayUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *BudgetDayUpdateOne) SetBranch(v *Branch) *BudgetDayUpdateOne {
	return _u.SetBranchID(v.ID)
}

// Mutation returns the BudgetDayMutation object of the builder.
func (_u *BudgetDayUpdateOne) Mutation() *BudgetDayMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *BudgetDayUpdateOne) ClearBranch() *BudgetDayUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// Where appends a list predicates to the BudgetDayUpdate builder.
func (_u *BudgetDayUpdateOne) Where(ps ...predicate.BudgetDay) *BudgetDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetDayUpdateOne) Select(field string, fields ...string) *BudgetDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetDay entity.
func (_u *BudgetDayUpdateOne) Save(ctx context.Context) (*BudgetDay, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetDayUpdateOne) SaveX(ctx context.Context) *BudgetDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetDayUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetDayUpdateOne) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := budgetday.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`ent: validator failed for field "BudgetDay.weekday": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDay.branch"`)
	}
	return nil
}

func (_u *BudgetDayUpdateOne) sqlSave(ctx context.Context) (_node *BudgetDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetday.Table, budgetday.Columns, sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetday.FieldID)
		for _, f := range fields {
			if !budgetday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetday.FieldID {
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
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(budgetday.FieldWeekday, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetAmount(); ok {
		_spec.SetField(budgetday.FieldBudgetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetAmount(); ok {
		_spec.AddField(budgetday.FieldBudgetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BudgetGuestCount(); ok {
		_spec.SetField(budgetday.FieldBudgetGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetGuestCount(); ok {
		_spec.AddField(budgetday.FieldBudgetGuestCount, field.TypeInt, value)
	}
	if _u.mutation.BudgetGuestCountCleared() {
		_spec.ClearField(budgetday.FieldBudgetGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.LySales(); ok {
		_spec.SetField(budgetday.FieldLySales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLySales(); ok {
		_spec.AddField(budgetday.FieldLySales, field.TypeFloat64, value)
	}
	if _u.mutation.LySalesCleared() {
		_spec.ClearField(budgetday.FieldLySales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LyGuestCount(); ok {
		_spec.SetField(budgetday.FieldLyGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLyGuestCount(); ok {
		_spec.AddField(budgetday.FieldLyGuestCount, field.TypeInt, value)
	}
	if _u.mutation.LyGuestCountCleared() {
		_spec.ClearField(budgetday.FieldLyGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(budgetday.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetday.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BranchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BudgetDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
