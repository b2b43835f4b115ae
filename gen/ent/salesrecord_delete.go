// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/salesrecord"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SalesRecordDelete is the builder for deleting a SalesRecord entity.
type SalesRecordDelete struct {
	config
	hooks    []Hook
	mutation *SalesRecordMutation
}

// Where appends a list predicates to the SalesRecordDelete builder.
func (_d *SalesRecordDelete) Where(ps ...predicate.SalesRecord) *SalesRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SalesRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SalesRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SalesRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(salesrecord.Table, sqlgraph.NewFieldSpec(salesrecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SalesRecordDeleteOne is the builder for deleting a single SalesRecord entity.
type SalesRecordDeleteOne struct {
	_d *SalesRecordDelete
}

// Where appends a list predicates to the SalesRecordDelete builder.
func (_d *SalesRecordDeleteOne) Where(ps ...predicate.SalesRecord) *SalesRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SalesRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{salesrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SalesRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
