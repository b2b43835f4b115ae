// Code generated by ent, DO NOT EDIT.

package salesrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the salesrecord type in the database.
	Label = "sales_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBranchID holds the string denoting the branch_id field in the database.
	FieldBranchID = "branch_id"
	// FieldBusinessDate holds the string denoting the business_date field in the database.
	FieldBusinessDate = "business_date"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldGrossSales holds the string denoting the gross_sales field in the database.
	FieldGrossSales = "gross_sales"
	// FieldNetSales holds the string denoting the net_sales field in the database.
	FieldNetSales = "net_sales"
	// FieldGuestCount holds the string denoting the guest_count field in the database.
	FieldGuestCount = "guest_count"
	// FieldCashSales holds the string denoting the cash_sales field in the database.
	FieldCashSales = "cash_sales"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldBranchRaw holds the string denoting the branch_raw field in the database.
	FieldBranchRaw = "branch_raw"
	// FieldBranchMatch holds the string denoting the branch_match field in the database.
	FieldBranchMatch = "branch_match"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBranch holds the string denoting the branch edge name in mutations.
	EdgeBranch = "branch"
	// Table holds the table name of the salesrecord in the database.
	Table = "sales_records"
	// BranchTable is the table that holds the branch relation/edge.
	BranchTable = "sales_records"
	// BranchInverseTable is the table name for the Branch entity.
	// It exists in this package in order to avoid circular dependency with the "branch" package.
	BranchInverseTable = "branches"
	// BranchColumn is the table column denoting the branch relation/edge.
	BranchColumn = "branch_id"
)

// Columns holds all SQL columns for salesrecord fields.
var Columns = []string{
	FieldID,
	FieldBranchID,
	FieldBusinessDate,
	FieldWindow,
	FieldKind,
	FieldGrossSales,
	FieldNetSales,
	FieldGuestCount,
	FieldCashSales,
	FieldCategories,
	FieldStatus,
	FieldExtractionConfidence,
	FieldBranchRaw,
	FieldBranchMatch,
	FieldRawText,
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
	// WindowValidator is a validator for the "window" field. It is called by the builders before save.
	WindowValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultBranchMatch holds the default value on creation for the "branch_match" field.
	DefaultBranchMatch bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SalesRecord queries.
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

// ByWindow orders the results by the window field.
func ByWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindow, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByGrossSales orders the results by the gross_sales field.
func ByGrossSales(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossSales, opts...).ToFunc()
}

// ByNetSales orders the results by the net_sales field.
func ByNetSales(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetSales, opts...).ToFunc()
}

// ByGuestCount orders the results by the guest_count field.
func ByGuestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuestCount, opts...).ToFunc()
}

// ByCashSales orders the results by the cash_sales field.
func ByCashSales(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashSales, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByBranchRaw orders the results by the branch_raw field.
func ByBranchRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchRaw, opts...).ToFunc()
}

// ByBranchMatch orders the results by the branch_match field.
func ByBranchMatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchMatch, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
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
