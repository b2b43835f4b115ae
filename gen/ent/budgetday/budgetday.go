// Code generated by ent, DO NOT EDIT.

package budgetday

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the budgetday type in the database.
	Label = "budget_day"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBranchID holds the string denoting the branch_id field in the database.
	FieldBranchID = "branch_id"
	// FieldBusinessDate holds the string denoting the business_date field in the database.
	FieldBusinessDate = "business_date"
	// FieldWeekday holds the string denoting the weekday field in the database.
	FieldWeekday = "weekday"
	// FieldBudgetAmount holds the string denoting the budget_amount field in the database.
	FieldBudgetAmount = "budget_amount"
	// FieldBudgetGuestCount holds the string denoting the budget_guest_count field in the database.
	FieldBudgetGuestCount = "budget_guest_count"
	// FieldLySales holds the string denoting the ly_sales field in the database.
	FieldLySales = "ly_sales"
	// FieldLyGuestCount holds the string denoting the ly_guest_count field in the database.
	FieldLyGuestCount = "ly_guest_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBranch holds the string denoting the branch edge name in mutations.
	EdgeBranch = "branch"
	// Table holds the table name of the budgetday in the database.
	Table = "budget_days"
	// BranchTable is the table that holds the branch relation/edge.
	BranchTable = "budget_days"
	// BranchInverseTable is the table name for the Branch entity.
	// It exists in this package in order to avoid circular dependency with the "branch" package.
	BranchInverseTable = "branches"
	// BranchColumn is the table column denoting the branch relation/edge.
	BranchColumn = "branch_id"
)

// Columns holds all SQL columns for budgetday fields.
var Columns = []string{
	FieldID,
	FieldBranchID,
	FieldBusinessDate,
	FieldWeekday,
	FieldBudgetAmount,
	FieldBudgetGuestCount,
	FieldLySales,
	FieldLyGuestCount,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	WeekdayValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BudgetDay queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBranchID orders the results by the branch_id field.
func ByBranchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchID, opts...).ToFunc()
}

// ByBusinessDate orders the results by the business_date field.
func ByBusinessDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessDate, opts...).ToFunc()
}

// ByWeekday orders the results by the weekday field.
func ByWeekday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekday, opts...).ToFunc()
}

// ByBudgetAmount orders the results by the budget_amount field.
func ByBudgetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetAmount, opts...).ToFunc()
}

// ByBudgetGuestCount orders the results by the budget_guest_count field.
func ByBudgetGuestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetGuestCount, opts...).ToFunc()
}

// ByLySales orders the results by the ly_sales field.
func ByLySales(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLySales, opts...).ToFunc()
}

// ByLyGuestCount orders the results by the ly_guest_count field.
func ByLyGuestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLyGuestCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBranchField orders the results by branch field.
func ByBranchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBranchStep(), sql.OrderByField(field, opts...))
	}
}
func newBranchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BranchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
	)
}
