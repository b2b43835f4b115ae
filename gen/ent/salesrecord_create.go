// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/salesrecord"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SalesRecordCreate is the builder for creating a SalesRecord entity.
type SalesRecordCreate struct {
	config
	mutation *SalesRecordMutation
	hooks    []Hook
}

// SetBranchID sets the "branch_id" field.
func (_c *SalesRecordCreate) SetBranchID(v uuid.UUID) *SalesRecordCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetBusinessDate sets the "business_date" field.
func (_c *SalesRecordCreate) SetBusinessDate(v time.Time) *SalesRecordCreate {
	_c.mutation.SetBusinessDate(v)
	return _c
}

// SetWindow sets the "window" field.
func (_c *SalesRecordCreate) SetWindow(v string) *SalesRecordCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SalesRecordCreate) SetKind(v string) *SalesRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetGrossSales sets the "gross_sales" field.
func (_c *SalesRecordCreate) SetGrossSales(v float64) *SalesRecordCreate {
	_c.mutation.SetGrossSales(v)
	return _c
}

// SetNillableGrossSales sets the "gross_sales" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableGrossSales(v *float64) *SalesRecordCreate {
	if v != nil {
		_c.SetGrossSales(*v)
	}
	return _c
}

// SetNetSales sets the "net_sales" field.
func (_c *SalesRecordCreate) SetNetSales(v float64) *SalesRecordCreate {
	_c.mutation.SetNetSales(v)
	return _c
}

// SetNillableNetSales sets the "net_sales" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableNetSales(v *float64) *SalesRecordCreate {
	if v != nil {
		_c.SetNetSales(*v)
	}
	return _c
}

// SetGuestCount sets the "guest_count" field.
func (_c *SalesRecordCreate) SetGuestCount(v int) *SalesRecordCreate {
	_c.mutation.SetGuestCount(v)
	return _c
}

// SetNillableGuestCount sets the "guest_count" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableGuestCount(v *int) *SalesRecordCreate {
	if v != nil {
		_c.SetGuestCount(*v)
	}
	return _c
}

// SetCashSales sets the "cash_sales" field.
func (_c *SalesRecordCreate) SetCashSales(v float64) *SalesRecordCreate {
	_c.mutation.SetCashSales(v)
	return _c
}

// SetNillableCashSales sets the "cash_sales" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableCashSales(v *float64) *SalesRecordCreate {
	if v != nil {
		_c.SetCashSales(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *SalesRecordCreate) SetCategories(v json.RawMessage) *SalesRecordCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SalesRecordCreate) SetStatus(v string) *SalesRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableStatus(v *string) *SalesRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *SalesRecordCreate) SetExtractionConfidence(v float32) *SalesRecordCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableExtractionConfidence(v *float32) *SalesRecordCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetBranchRaw sets the "branch_raw" field.
func (_c *SalesRecordCreate) SetBranchRaw(v string) *SalesRecordCreate {
	_c.mutation.SetBranchRaw(v)
	return _c
}

// SetNillableBranchRaw sets the "branch_raw" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableBranchRaw(v *string) *SalesRecordCreate {
	if v != nil {
		_c.SetBranchRaw(*v)
	}
	return _c
}

// SetBranchMatch sets the "branch_match" field.
func (_c *SalesRecordCreate) SetBranchMatch(v bool) *SalesRecordCreate {
	_c.mutation.SetBranchMatch(v)
	return _c
}

// SetNillableBranchMatch sets the "branch_match" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableBranchMatch(v *bool) *SalesRecordCreate {
	if v != nil {
		_c.SetBranchMatch(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *SalesRecordCreate) SetRawText(v string) *SalesRecordCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableRawText(v *string) *SalesRecordCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SalesRecordCreate) SetCreatedAt(v time.Time) *SalesRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableCreatedAt(v *time.Time) *SalesRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SalesRecordCreate) SetUpdatedAt(v time.Time) *SalesRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableUpdatedAt(v *time.Time) *SalesRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SalesRecordCreate) SetID(v uuid.UUID) *SalesRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SalesRecordCreate) SetNillableID(v *uuid.UUID) *SalesRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_c *SalesRecordCreate) SetBranch(v *Branch) *SalesRecordCreate {
	return _c.SetBranchID(v.ID)
}

// Mutation returns the SalesRecordMutation object of the builder.
func (_c *SalesRecordCreate) Mutation() *SalesRecordMutation {
	return _c.mutation
}

// Save creates the SalesRecord in the database.
func (_c *SalesRecordCreate) Save(ctx context.Context) (*SalesRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalesRecordCreate) SaveX(ctx context.Context) *SalesRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalesRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := salesrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BranchMatch(); !ok {
		v := salesrecord.DefaultBranchMatch
		_c.mutation.SetBranchMatch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := salesrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := salesrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := salesrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalesRecordCreate) check() error {
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`ent: missing required field "SalesRecord.branch_id"`)}
	}
	if _, ok := _c.mutation.BusinessDate(); !ok {
		return &ValidationError{Name: "business_date", err: errors.New(`ent: missing required field "SalesRecord.business_date"`)}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "SalesRecord.window"`)}
	}
	if v, ok := _c.mutation.Window(); ok {
		if err := salesrecord.WindowValidator(v); err != nil {
			return &ValidationError{Name: "window", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.window": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SalesRecord.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := salesrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SalesRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := salesrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SalesRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BranchMatch(); !ok {
		return &ValidationError{Name: "branch_match", err: errors.New(`ent: missing required field "SalesRecord.branch_match"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SalesRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SalesRecord.updated_at"`)}
	}
	if len(_c.mutation.BranchIDs()) == 0 {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required edge "SalesRecord.branch"`)}
	}
	return nil
}

func (_c *SalesRecordCreate) sqlSave(ctx context.Context) (*SalesRecord, error) {
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

func (_c *SalesRecordCreate) createSpec() (*SalesRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SalesRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salesrecord.Table, sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BusinessDate(); ok {
		_spec.SetField(salesrecord.FieldBusinessDate, field.TypeTime, value)
		_node.BusinessDate = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(salesrecord.FieldWindow, field.TypeString, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(salesrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.GrossSales(); ok {
		_spec.SetField(salesrecord.FieldGrossSales, field.TypeFloat64, value)
		_node.GrossSales = &value
	}
	if value, ok := _c.mutation.NetSales(); ok {
		_spec.SetField(salesrecord.FieldNetSales, field.TypeFloat64, value)
		_node.NetSales = &value
	}
	if value, ok := _c.mutation.GuestCount(); ok {
		_spec.SetField(salesrecord.FieldGuestCount, field.TypeInt, value)
		_node.GuestCount = &value
	}
	if value, ok := _c.mutation.CashSales(); ok {
		_spec.SetField(salesrecord.FieldCashSales, field.TypeFloat64, value)
		_node.CashSales = &value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(salesrecord.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(salesrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(salesrecord.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.BranchRaw(); ok {
		_spec.SetField(salesrecord.FieldBranchRaw, field.TypeString, value)
		_node.BranchRaw = &value
	}
	if value, ok := _c.mutation.BranchMatch(); ok {
		_spec.SetField(salesrecord.FieldBranchMatch, field.TypeBool, value)
		_node.BranchMatch = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(salesrecord.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(salesrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(salesrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BranchIDs(); len(nodes) > 0 {
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
		_node.BranchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SalesRecordCreateBulk is the builder for creating many SalesRecord entities in bulk.
type SalesRecordCreateBulk struct {
	config
	err      error
	builders []*SalesRecordCreate
}

// Save creates the SalesRecord entities in the database.
func (_c *SalesRecordCreateBulk) Save(ctx context.Context) ([]*SalesRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalesRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalesRecordMutation)
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
func (_c *SalesRecordCreateBulk) SaveX(ctx context.Context) []*SalesRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
