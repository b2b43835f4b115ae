// Code generated by ent, DO NOT EDIT.

package tubmovement

import (
	"salestracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLTE(FieldID, id))
}

// BranchID applies equality check predicate on the "branch_id" field. It's identical to BranchIDEQ.
func BranchID(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldBranchID, v))
}

// FlavorID applies equality check predicate on the "flavor_id" field. It's identical to FlavorIDEQ.
func FlavorID(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldFlavorID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldKind, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldQuantity, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldNote, v))
}

// MovedAt applies equality check predicate on the "moved_at" field. It's identical to MovedAtEQ.
func MovedAt(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldMovedAt, v))
}

// BranchIDEQ applies the EQ predicate on the "branch_id" field.
func BranchIDEQ(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldBranchID, v))
}

// BranchIDNEQ applies the NEQ predicate on the "branch_id" field.
func BranchIDNEQ(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldBranchID, v))
}

// BranchIDIn applies the In predicate on the "branch_id" field.
func BranchIDIn(vs ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldBranchID, vs...))
}

// BranchIDNotIn applies the NotIn predicate on the "branch_id" field.
func BranchIDNotIn(vs ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldBranchID, vs...))
}

// FlavorIDEQ applies the EQ predicate on the "flavor_id" field.
func FlavorIDEQ(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldFlavorID, v))
}

// FlavorIDNEQ applies the NEQ predicate on the "flavor_id" field.
func FlavorIDNEQ(v uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldFlavorID, v))
}

// FlavorIDIn applies the In predicate on the "flavor_id" field.
func FlavorIDIn(vs ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldFlavorID, vs...))
}

// FlavorIDNotIn applies the NotIn predicate on the "flavor_id" field.
func FlavorIDNotIn(vs ...uuid.UUID) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldFlavorID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldContainsFold(FieldKind, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLTE(FieldQuantity, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldContainsFold(FieldNote, v))
}

// MovedAtEQ applies the EQ predicate on the "moved_at" field.
func MovedAtEQ(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldEQ(FieldMovedAt, v))
}

// MovedAtNEQ applies the NEQ predicate on the "moved_at" field.
func MovedAtNEQ(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNEQ(FieldMovedAt, v))
}

// MovedAtIn applies the In predicate on the "moved_at" field.
func MovedAtIn(vs ...time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldIn(FieldMovedAt, vs...))
}

// MovedAtNotIn applies the NotIn predicate on the "moved_at" field.
func MovedAtNotIn(vs ...time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldNotIn(FieldMovedAt, vs...))
}

// MovedAtGT applies the GT predicate on the "moved_at" field.
func MovedAtGT(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGT(FieldMovedAt, v))
}

// MovedAtGTE applies the GTE predicate on the "moved_at" field.
func MovedAtGTE(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldGTE(FieldMovedAt, v))
}

// MovedAtLT applies the LT predicate on the "moved_at" field.
func MovedAtLT(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLT(FieldMovedAt, v))
}

// MovedAtLTE applies the LTE predicate on the "moved_at" field.
func MovedAtLTE(v time.Time) predicate.TubMovement {
	return predicate.TubMovement(sql.FieldLTE(FieldMovedAt, v))
}

// HasBranch applies the HasEdge predicate on the "branch" edge.
func HasBranch() predicate.TubMovement {
	return predicate.TubMovement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchWith applies the HasEdge predicate on the "branch" edge with a given conditions (other predicates).
func HasBranchWith(preds ...predicate.Branch) predicate.TubMovement {
	return predicate.TubMovement(func(s *sql.Selector) {
		step := newBranchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFlavor applies the HasEdge predicate on the "flavor" edge.
func HasFlavor() predicate.TubMovement {
	return predicate.TubMovement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FlavorTable, FlavorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlavorWith applies the HasEdge predicate on the "flavor" edge with a given conditions (other predicates).
func HasFlavorWith(preds ...predicate.Flavor) predicate.TubMovement {
	return predicate.TubMovement(func(s *sql.Selector) {
		step := newFlavorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TubMovement) predicate.TubMovement {
	return predicate.TubMovement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TubMovement) predicate.TubMovement {
	return predicate.TubMovement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TubMovement) predicate.TubMovement {
	return predicate.TubMovement(sql.NotPredicates(p))
}
