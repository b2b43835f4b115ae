// Code generated by ent, DO NOT EDIT.

package budgetday

import (
	"salestracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldID, id))
}

// BranchID applies equality check predicate on the "branch_id" field. It's identical to BranchIDEQ.
func BranchID(v uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBranchID, v))
}

// BusinessDate applies equality check predicate on the "business_date" field. It's identical to BusinessDateEQ.
func BusinessDate(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBusinessDate, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldWeekday, v))
}

// BudgetAmount applies equality check predicate on the "budget_amount" field. It's identical to BudgetAmountEQ.
func BudgetAmount(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBudgetAmount, v))
}

// BudgetGuestCount applies equality check predicate on the "budget_guest_count" field. It's identical to BudgetGuestCountEQ.
func BudgetGuestCount(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBudgetGuestCount, v))
}

// LySales applies equality check predicate on the "ly_sales" field. It's identical to LySalesEQ.
func LySales(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldLySales, v))
}

// LyGuestCount applies equality check predicate on the "ly_guest_count" field. It's identical to LyGuestCountEQ.
func LyGuestCount(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldLyGuestCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldUpdatedAt, v))
}

// BranchIDEQ applies the EQ predicate on the "branch_id" field.
func BranchIDEQ(v uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBranchID, v))
}

// BranchIDNEQ applies the NEQ predicate on the "branch_id" field.
func BranchIDNEQ(v uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldBranchID, v))
}

// BranchIDIn applies the In predicate on the "branch_id" field.
func BranchIDIn(vs ...uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldBranchID, vs...))
}

// BranchIDNotIn applies the NotIn predicate on the "branch_id" field.
func BranchIDNotIn(vs ...uuid.UUID) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldBranchID, vs...))
}

// BusinessDateEQ applies the EQ predicate on the "business_date" field.
func BusinessDateEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBusinessDate, v))
}

// BusinessDateNEQ applies the NEQ predicate on the "business_date" field.
func BusinessDateNEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldBusinessDate, v))
}

// BusinessDateIn applies the In predicate on the "business_date" field.
func BusinessDateIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldBusinessDate, vs...))
}

// BusinessDateNotIn applies the NotIn predicate on the "business_date" field.
func BusinessDateNotIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldBusinessDate, vs...))
}

// BusinessDateGT applies the GT predicate on the "business_date" field.
func BusinessDateGT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldBusinessDate, v))
}

// BusinessDateGTE applies the GTE predicate on the "business_date" field.
func BusinessDateGTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldBusinessDate, v))
}

// BusinessDateLT applies the LT predicate on the "business_date" field.
func BusinessDateLT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldBusinessDate, v))
}

// BusinessDateLTE applies the LTE predicate on the "business_date" field.
func BusinessDateLTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldBusinessDate, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldWeekday, v))
}

// WeekdayContains applies the Contains predicate on the "weekday" field.
func WeekdayContains(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldContains(FieldWeekday, v))
}

// WeekdayHasPrefix applies the HasPrefix predicate on the "weekday" field.
func WeekdayHasPrefix(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldHasPrefix(FieldWeekday, v))
}

// WeekdayHasSuffix applies the HasSuffix predicate on the "weekday" field.
func WeekdayHasSuffix(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldHasSuffix(FieldWeekday, v))
}

// WeekdayEqualFold applies the EqualFold predicate on the "weekday" field.
func WeekdayEqualFold(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEqualFold(FieldWeekday, v))
}

// WeekdayContainsFold applies the ContainsFold predicate on the "weekday" field.
func WeekdayContainsFold(v string) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldContainsFold(FieldWeekday, v))
}

// BudgetAmountEQ applies the EQ predicate on the "budget_amount" field.
func BudgetAmountEQ(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBudgetAmount, v))
}

// BudgetAmountNEQ applies the NEQ predicate on the "budget_amount" field.
func BudgetAmountNEQ(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldBudgetAmount, v))
}

// BudgetAmountIn applies the In predicate on the "budget_amount" field.
func BudgetAmountIn(vs ...float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldBudgetAmount, vs...))
}

// BudgetAmountNotIn applies the NotIn predicate on the "budget_amount" field.
func BudgetAmountNotIn(vs ...float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldBudgetAmount, vs...))
}

// BudgetAmountGT applies the GT predicate on the "budget_amount" field.
func BudgetAmountGT(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldBudgetAmount, v))
}

// BudgetAmountGTE applies the GTE predicate on the "budget_amount" field.
func BudgetAmountGTE(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldBudgetAmount, v))
}

// BudgetAmountLT applies the LT predicate on the "budget_amount" field.
func BudgetAmountLT(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldBudgetAmount, v))
}

// BudgetAmountLTE applies the LTE predicate on the "budget_amount" field.
func BudgetAmountLTE(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldBudgetAmount, v))
}

// BudgetGuestCountEQ applies the EQ predicate on the "budget_guest_count" field.
func BudgetGuestCountEQ(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldBudgetGuestCount, v))
}

// BudgetGuestCountNEQ applies the NEQ predicate on the "budget_guest_count" field.
func BudgetGuestCountNEQ(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldBudgetGuestCount, v))
}

// BudgetGuestCountIn applies the In predicate on the "budget_guest_count" field.
func BudgetGuestCountIn(vs ...int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldBudgetGuestCount, vs...))
}

// BudgetGuestCountNotIn applies the NotIn predicate on the "budget_guest_count" field.
func BudgetGuestCountNotIn(vs ...int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldBudgetGuestCount, vs...))
}

// BudgetGuestCountGT applies the GT predicate on the "budget_guest_count" field.
func BudgetGuestCountGT(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldBudgetGuestCount, v))
}

// BudgetGuestCountGTE applies the GTE predicate on the "budget_guest_count" field.
func BudgetGuestCountGTE(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldBudgetGuestCount, v))
}

// BudgetGuestCountLT applies the LT predicate on the "budget_guest_count" field.
func BudgetGuestCountLT(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldBudgetGuestCount, v))
}

// BudgetGuestCountLTE applies the LTE predicate on the "budget_guest_count" field.
func BudgetGuestCountLTE(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldBudgetGuestCount, v))
}

// BudgetGuestCountIsNil applies the IsNil predicate on the "budget_guest_count" field.
func BudgetGuestCountIsNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIsNull(FieldBudgetGuestCount))
}

// BudgetGuestCountNotNil applies the NotNil predicate on the "budget_guest_count" field.
func BudgetGuestCountNotNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotNull(FieldBudgetGuestCount))
}

// LySalesEQ applies the EQ predicate on the "ly_sales" field.
func LySalesEQ(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldLySales, v))
}

// LySalesNEQ applies the NEQ predicate on the "ly_sales" field.
func LySalesNEQ(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldLySales, v))
}

// LySalesIn applies the In predicate on the "ly_sales" field.
func LySalesIn(vs ...float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldLySales, vs...))
}

// LySalesNotIn applies the NotIn predicate on the "ly_sales" field.
func LySalesNotIn(vs ...float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldLySales, vs...))
}

// LySalesGT applies the GT predicate on the "ly_sales" field.
func LySalesGT(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldLySales, v))
}

// LySalesGTE applies the GTE predicate on the "ly_sales" field.
func LySalesGTE(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldLySales, v))
}

// LySalesLT applies the LT predicate on the "ly_sales" field.
func LySalesLT(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldLySales, v))
}

// LySalesLTE applies the LTE predicate on the "ly_sales" field.
func LySalesLTE(v float64) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldLySales, v))
}

// LySalesIsNil applies the IsNil predicate on the "ly_sales" field.
func LySalesIsNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIsNull(FieldLySales))
}

// LySalesNotNil applies the NotNil predicate on the "ly_sales" field.
func LySalesNotNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotNull(FieldLySales))
}

// LyGuestCountEQ applies the EQ predicate on the "ly_guest_count" field.
func LyGuestCountEQ(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldLyGuestCount, v))
}

// LyGuestCountNEQ applies the NEQ predicate on the "ly_guest_count" field.
func LyGuestCountNEQ(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldLyGuestCount, v))
}

// LyGuestCountIn applies the In predicate on the "ly_guest_count" field.
func LyGuestCountIn(vs ...int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldLyGuestCount, vs...))
}

// LyGuestCountNotIn applies the NotIn predicate on the "ly_guest_count" field.
func LyGuestCountNotIn(vs ...int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldLyGuestCount, vs...))
}

// LyGuestCountGT applies the GT predicate on the "ly_guest_count" field.
func LyGuestCountGT(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldLyGuestCount, v))
}

// LyGuestCountGTE applies the GTE predicate on the "ly_guest_count" field.
func LyGuestCountGTE(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldLyGuestCount, v))
}

// LyGuestCountLT applies the LT predicate on the "ly_guest_count" field.
func LyGuestCountLT(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldLyGuestCount, v))
}

// LyGuestCountLTE applies the LTE predicate on the "ly_guest_count" field.
func LyGuestCountLTE(v int) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldLyGuestCount, v))
}

// LyGuestCountIsNil applies the IsNil predicate on the "ly_guest_count" field.
func LyGuestCountIsNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIsNull(FieldLyGuestCount))
}

// LyGuestCountNotNil applies the NotNil predicate on the "ly_guest_count" field.
func LyGuestCountNotNil() predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotNull(FieldLyGuestCount))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetDay {
	return predicate.BudgetDay(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBranch applies the HasEdge predicate on the "branch" edge.
func HasBranch() predicate.BudgetDay {
	return predicate.BudgetDay(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchWith applies the HasEdge predicate on the "branch" edge with a given conditions (other predicates).
func HasBranchWith(preds ...predicate.Branch) predicate.BudgetDay {
	return predicate.BudgetDay(func(s *sql.Selector) {
		step := newBranchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetDay) predicate.BudgetDay {
	return predicate.BudgetDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetDay) predicate.BudgetDay {
	return predicate.BudgetDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetDay) predicate.BudgetDay {
	return predicate.BudgetDay(sql.NotPredicates(p))
}
