// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/salesrecord"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SalesRecordUpdate is the builder for updating SalesRecord entities.
type SalesRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SalesRecordMutation
}

// Where appends a list predicates to the SalesRecordUpdate builder.
func (_u *SalesRecordUpdate) Where(ps ...predicate.SalesRecord) *SalesRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *SalesRecordUpdate) SetBranchID(v uuid.UUID) *SalesRecordUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableBranchID(v *uuid.UUID) *SalesRecordUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *SalesRecordUpdate) SetWindow(v string) *SalesRecordUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableWindow(v *string) *SalesRecordUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SalesRecordUpdate) SetKind(v string) *SalesRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableKind(v *string) *SalesRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetGrossSales sets the "gross_sales" field.
func (_u *SalesRecordUpdate) SetGrossSales(v float64) *SalesRecordUpdate {
	_u.mutation.ResetGrossSales()
	_u.mutation.SetGrossSales(v)
	return _u
}

// SetNillableGrossSales sets the "gross_sales" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableGrossSales(v *float64) *SalesRecordUpdate {
	if v != nil {
		_u.SetGrossSales(*v)
	}
	return _u
}

// AddGrossSales adds value to the "gross_sales" field.
func (_u *SalesRecordUpdate) AddGrossSales(v float64) *SalesRecordUpdate {
	_u.mutation.AddGrossSales(v)
	return _u
}

// ClearGrossSales clears the value of the "gross_sales" field.
func (_u *SalesRecordUpdate) ClearGrossSales() *SalesRecordUpdate {
	_u.mutation.ClearGrossSales()
	return _u
}

// SetNetSales sets the "net_sales" field.
func (_u *SalesRecordUpdate) SetNetSales(v float64) *SalesRecordUpdate {
	_u.mutation.ResetNetSales()
	_u.mutation.SetNetSales(v)
	return _u
}

// SetNillableNetSales sets the "net_sales" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableNetSales(v *float64) *SalesRecordUpdate {
	if v != nil {
		_u.SetNetSales(*v)
	}
	return _u
}

// AddNetSales adds value to the "net_sales" field.
func (_u *SalesRecordUpdate) AddNetSales(v float64) *SalesRecordUpdate {
	_u.mutation.AddNetSales(v)
	return _u
}

// ClearNetSales clears the value of the "net_sales" field.
func (_u *SalesRecordUpdate) ClearNetSales() *SalesRecordUpdate {
	_u.mutation.ClearNetSales()
	return _u
}

// SetGuestCount sets the "guest_count" field.
func (_u *SalesRecordUpdate) SetGuestCount(v int) *SalesRecordUpdate {
	_u.mutation.ResetGuestCount()
	_u.mutation.SetGuestCount(v)
	return _u
}

// SetNillableGuestCount sets the "guest_count" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableGuestCount(v *int) *SalesRecordUpdate {
	if v != nil {
		_u.SetGuestCount(*v)
	}
	return _u
}

// AddGuestCount adds value to the "guest_count" field.
func (_u *SalesRecordUpdate) AddGuestCount(v int) *SalesRecordUpdate {
	_u.mutation.AddGuestCount(v)
	return _u
}

// ClearGuestCount clears the value of the "guest_count" field.
func (_u *SalesRecordUpdate) ClearGuestCount() *SalesRecordUpdate {
	_u.mutation.ClearGuestCount()
	return _u
}

// SetCashSales sets the "cash_sales" field.
func (_u *SalesRecordUpdate) SetCashSales(v float64) *SalesRecordUpdate {
	_u.mutation.ResetCashSales()
	_u.mutation.SetCashSales(v)
	return _u
}

// SetNillableCashSales sets the "cash_sales" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableCashSales(v *float64) *SalesRecordUpdate {
	if v != nil {
		_u.SetCashSales(*v)
	}
	return _u
}

// AddCashSales adds value to the "cash_sales" field.
func (_u *SalesRecordUpdate) AddCashSales(v float64) *SalesRecordUpdate {
	_u.mutation.AddCashSales(v)
	return _u
}

// ClearCashSales clears the value of the "cash_sales" field.
func (_u *SalesRecordUpdate) ClearCashSales() *SalesRecordUpdate {
	_u.mutation.ClearCashSales()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *SalesRecordUpdate) SetCategories(v json.RawMessage) *SalesRecordUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *SalesRecordUpdate) AppendCategories(v json.RawMessage) *SalesRecordUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *SalesRecordUpdate) ClearCategories() *SalesRecordUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SalesRecordUpdate) SetStatus(v string) *SalesRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableStatus(v *string) *SalesRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *SalesRecordUpdate) SetExtractionConfidence(v float32) *SalesRecordUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableExtractionConfidence(v *float32) *SalesRecordUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *SalesRecordUpdate) AddExtractionConfidence(v float32) *SalesRecordUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *SalesRecordUpdate) ClearExtractionConfidence() *SalesRecordUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetBranchRaw sets the "branch_raw" field.
func (_u *SalesRecordUpdate) SetBranchRaw(v string) *SalesRecordUpdate {
	_u.mutation.SetBranchRaw(v)
	return _u
}

// SetNillableBranchRaw sets the "branch_raw" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableBranchRaw(v *string) *SalesRecordUpdate {
	if v != nil {
		_u.SetBranchRaw(*v)
	}
	return _u
}

// ClearBranchRaw clears the value of the "branch_raw" field.
func (_u *SalesRecordUpdate) ClearBranchRaw() *SalesRecordUpdate {
	_u.mutation.ClearBranchRaw()
	return _u
}

// SetBranchMatch sets the "branch_match" field.
func (_u *SalesRecordUpdate) SetBranchMatch(v bool) *SalesRecordUpdate {
	_u.mutation.SetBranchMatch(v)
	return _u
}

// SetNillableBranchMatch sets the "branch_match" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableBranchMatch(v *bool) *SalesRecordUpdate {
	if v != nil {
		_u.SetBranchMatch(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *SalesRecordUpdate) SetRawText(v string) *SalesRecordUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableRawText(v *string) *SalesRecordUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *SalesRecordUpdate) ClearRawText() *SalesRecordUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SalesRecordUpdate) SetCreatedAt(v time.Time) *SalesRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SalesRecordUpdate) SetNillableCreatedAt(v *time.Time) *SalesRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesRecordUpdate) SetUpdatedAt(v time.Time) *SalesRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *SalesRecordUpdate) SetBranch(v *Branch) *SalesRecordUpdate {
	return _u.SetBranchID(v.ID)
}

// Mutation returns the SalesRecordMutation object of the builder.
func (_u *SalesRecordUpdate) Mutation() *SalesRecordMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *SalesRecordUpdate) ClearBranch() *SalesRecordUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalesRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalesRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salesrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesRecordUpdate) check() error {
	if v, ok := _u.mutation.Window(); ok {
		if err := salesrecord.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.window": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := salesrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := salesrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.status": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SalesRecord.branch"`)
	}
	return nil
}

func (_u *SalesRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesrecord.Table, salesrecord.Columns, sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(salesrecord.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(salesrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossSales(); ok {
		_spec.SetField(salesrecord.FieldGrossSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossSales(); ok {
		_spec.AddField(salesrecord.FieldGrossSales, field.TypeFloat64, value)
	}
	if _u.mutation.GrossSalesCleared() {
		_spec.ClearField(salesrecord.FieldGrossSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetSales(); ok {
		_spec.SetField(salesrecord.FieldNetSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetSales(); ok {
		_spec.AddField(salesrecord.FieldNetSales, field.TypeFloat64, value)
	}
	if _u.mutation.NetSalesCleared() {
		_spec.ClearField(salesrecord.FieldNetSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GuestCount(); ok {
		_spec.SetField(salesrecord.FieldGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGuestCount(); ok {
		_spec.AddField(salesrecord.FieldGuestCount, field.TypeInt, value)
	}
	if _u.mutation.GuestCountCleared() {
		_spec.ClearField(salesrecord.FieldGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CashSales(); ok {
		_spec.SetField(salesrecord.FieldCashSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashSales(); ok {
		_spec.AddField(salesrecord.FieldCashSales, field.TypeFloat64, value)
	}
	if _u.mutation.CashSalesCleared() {
		_spec.ClearField(salesrecord.FieldCashSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(salesrecord.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, salesrecord.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(salesrecord.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(salesrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(salesrecord.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(salesrecord.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(salesrecord.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BranchRaw(); ok {
		_spec.SetField(salesrecord.FieldBranchRaw, field.TypeString, value)
	}
	if _u.mutation.BranchRawCleared() {
		_spec.ClearField(salesrecord.FieldBranchRaw, field.TypeString)
	}
	if value, ok := _u.mutation.BranchMatch(); ok {
		_spec.SetField(salesrecord.FieldBranchMatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(salesrecord.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(salesrecord.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(salesrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salesrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BranchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesrecord.BranchTable,
			Columns: []string{salesrecord.BranchColumn},
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
			Table:   salesrecord.BranchTable,
			Columns: []string{salesrecord.BranchColumn},
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
			err = &NotFoundError{salesrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalesRecordUpdateOne is the builder for updating a single SalesRecord entity.
type SalesRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalesRecordMutation
}

// SetBranchID sets the "branch_id" field.
func (_u *SalesRecordUpdateOne) SetBranchID(v uuid.UUID) *SalesRecordUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableBranchID(v *uuid.UUID) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *SalesRecordUpdateOne) SetWindow(v string) *SalesRecordUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableWindow(v *string) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SalesRecordUpdateOne) SetKind(v string) *SalesRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableKind(v *string) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetGrossSales sets the "gross_sales" field.
func (_u *SalesRecordUpdateOne) SetGrossSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.ResetGrossSales()
	_u.mutation.SetGrossSales(v)
	return _u
}

// SetNillableGrossSales sets the "gross_sales" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableGrossSales(v *float64) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetGrossSales(*v)
	}
	return _u
}

// AddGrossSales adds value to the "gross_sales" field.
func (_u *SalesRecordUpdateOne) AddGrossSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.AddGrossSales(v)
	return _u
}

// ClearGrossSales clears the value of the "gross_sales" field.
func (_u *SalesRecordUpdateOne) ClearGrossSales() *SalesRecordUpdateOne {
	_u.mutation.ClearGrossSales()
	return _u
}

// SetNetSales sets the "net_sales" field.
func (_u *SalesRecordUpdateOne) SetNetSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.ResetNetSales()
	_u.mutation.SetNetSales(v)
	return _u
}

// SetNillableNetSales sets the "net_sales" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableNetSales(v *float64) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetNetSales(*v)
	}
	return _u
}

// AddNetSales adds value to the "net_sales" field.
func (_u *SalesRecordUpdateOne) AddNetSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.AddNetSales(v)
	return _u
}

// ClearNetSales clears the value of the "net_sales" field.
func (_u *SalesRecordUpdateOne) ClearNetSales() *SalesRecordUpdateOne {
	_u.mutation.ClearNetSales()
	return _u
}

// SetGuestCount sets the "guest_count" field.
func (_u *SalesRecordUpdateOne) SetGuestCount(v int) *SalesRecordUpdateOne {
	_u.mutation.ResetGuestCount()
	_u.mutation.SetGuestCount(v)
	return _u
}

// SetNillableGuestCount sets the "guest_count" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableGuestCount(v *int) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetGuestCount(*v)
	}
	return _u
}

// AddGuestCount adds value to the "guest_count" field.
func (_u *SalesRecordUpdateOne) AddGuestCount(v int) *SalesRecordUpdateOne {
	_u.mutation.AddGuestCount(v)
	return _u
}

// ClearGuestCount clears the value of the "guest_count" field.
func (_u *SalesRecordUpdateOne) ClearGuestCount() *SalesRecordUpdateOne {
	_u.mutation.ClearGuestCount()
	return _u
}

// SetCashSales sets the "cash_sales" field.
func (_u *SalesRecordUpdateOne) SetCashSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.ResetCashSales()
	_u.mutation.SetCashSales(v)
	return _u
}

// SetNillableCashSales sets the "cash_sales" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableCashSales(v *float64) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetCashSales(*v)
	}
	return _u
}

// AddCashSales adds value to the "cash_sales" field.
func (_u *SalesRecordUpdateOne) AddCashSales(v float64) *SalesRecordUpdateOne {
	_u.mutation.AddCashSales(v)
	return _u
}

// ClearCashSales clears the value of the "cash_sales" field.
func (_u *SalesRecordUpdateOne) ClearCashSales() *SalesRecordUpdateOne {
	_u.mutation.ClearCashSales()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *SalesRecordUpdateOne) SetCategories(v json.RawMessage) *SalesRecordUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *SalesRecordUpdateOne) AppendCategories(v json.RawMessage) *SalesRecordUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *SalesRecordUpdateOne) ClearCategories() *SalesRecordUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SalesRecordUpdateOne) SetStatus(v string) *SalesRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableStatus(v *string) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *SalesRecordUpdateOne) SetExtractionConfidence(v float32) *SalesRecordUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableExtractionConfidence(v *float32) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *SalesRecordUpdateOne) AddExtractionConfidence(v float32) *SalesRecordUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *SalesRecordUpdateOne) ClearExtractionConfidence() *SalesRecordUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetBranchRaw sets the "branch_raw" field.
func (_u *SalesRecordUpdateOne) SetBranchRaw(v string) *SalesRecordUpdateOne {
	_u.mutation.SetBranchRaw(v)
	return _u
}

// SetNillableBranchRaw sets the "branch_raw" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableBranchRaw(v *string) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetBranchRaw(*v)
	}
	return _u
}

// ClearBranchRaw clears the value of the "branch_raw" field.
func (_u *SalesRecordUpdateOne) ClearBranchRaw() *SalesRecordUpdateOne {
	_u.mutation.ClearBranchRaw()
	return _u
}

// SetBranchMatch sets the "branch_match" field.
func (_u *SalesRecordUpdateOne) SetBranchMatch(v bool) *SalesRecordUpdateOne {
	_u.mutation.SetBranchMatch(v)
	return _u
}

// SetNillableBranchMatch sets the "branch_match" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableBranchMatch(v *bool) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetBranchMatch(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *SalesRecordUpdateOne) SetRawText(v string) *SalesRecordUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableRawText(v *string) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *SalesRecordUpdateOne) ClearRawText() *SalesRecordUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SalesRecordUpdateOne) SetCreatedAt(v time.Time) *SalesRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SalesRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *SalesRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesRecordUpdateOne) SetUpdatedAt(v time.Time) *SalesRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *SalesRecordUpdateOne) SetBranch(v *Branch) *SalesRecordUpdateOne {
	return _u.SetBranchID(v.ID)
}

// Mutation returns the SalesRecordMutation object of the builder.
func (_u *SalesRecordUpdateOne) Mutation() *SalesRecordMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *SalesRecordUpdateOne) ClearBranch() *SalesRecordUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// Where appends a list predicates to the SalesRecordUpdate builder.
func (_u *SalesRecordUpdateOne) Where(ps ...predicate.SalesRecord) *SalesRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalesRecordUpdateOne) Select(field string, fields ...string) *SalesRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalesRecord entity.
func (_u *SalesRecordUpdateOne) Save(ctx context.Context) (*SalesRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesRecordUpdateOne) SaveX(ctx context.Context) *SalesRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalesRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salesrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Window(); ok {
		if err := salesrecord.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.window": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := salesrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := salesrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.status": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SalesRecord.branch"`)
	}
	return nil
}

func (_u *SalesRecordUpdateOne) sqlSave(ctx context.Context) (_node *SalesRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesrecord.Table, salesrecord.Columns, sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalesRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salesrecord.FieldID)
		for _, f := range fields {
			if !salesrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salesrecord.FieldID {
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
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(salesrecord.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(salesrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossSales(); ok {
		_spec.SetField(salesrecord.FieldGrossSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossSales(); ok {
		_spec.AddField(salesrecord.FieldGrossSales, field.TypeFloat64, value)
	}
	if _u.mutation.GrossSalesCleared() {
		_spec.ClearField(salesrecord.FieldGrossSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetSales(); ok {
		_spec.SetField(salesrecord.FieldNetSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetSales(); ok {
		_spec.AddField(salesrecord.FieldNetSales, field.TypeFloat64, value)
	}
	if _u.mutation.NetSalesCleared() {
		_spec.ClearField(salesrecord.FieldNetSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GuestCount(); ok {
		_spec.SetField(salesrecord.FieldGuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGuestCount(); ok {
		_spec.AddField(salesrecord.FieldGuestCount, field.TypeInt, value)
	}
	if _u.mutation.GuestCountCleared() {
		_spec.ClearField(salesrecord.FieldGuestCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CashSales(); ok {
		_spec.SetField(salesrecord.FieldCashSales, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashSales(); ok {
		_spec.AddField(salesrecord.FieldCashSales, field.TypeFloat64, value)
	}
	if _u.mutation.CashSalesCleared() {
		_spec.ClearField(salesrecord.FieldCashSales, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(salesrecord.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, salesrecord.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(salesrecord.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(salesrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(salesrecord.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(salesrecord.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(salesrecord.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BranchRaw(); ok {
		_spec.SetField(salesrecord.FieldBranchRaw, field.TypeString, value)
	}
	if _u.mutation.BranchRawCleared() {
		_spec.ClearField(salesrecord.FieldBranchRaw, field.TypeString)
	}
	if value, ok := _u.mutation.BranchMatch(); ok {
		_spec.SetField(salesrecord.FieldBranchMatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(salesrecord.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(salesrecord.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(salesrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salesrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BranchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesrecord.BranchTable,
			Columns: []string{salesrecord.BranchColumn},
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
			Table:   salesrecord.BranchTable,
			Columns: []string{salesrecord.BranchColumn},
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
	_node = &SalesRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
