// Code generated by ent, DO NOT EDIT.

package tubmovement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tubmovement type in the database.
	Label = "tub_movement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBranchID holds the string denoting the branch_id field in the database.
	FieldBranchID = "branch_id"
	// FieldFlavorID holds the string denoting the flavor_id field in the database.
	FieldFlavorID = "flavor_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldMovedAt holds the string denoting the moved_at field in the database.
	FieldMovedAt = "moved_at"
	// EdgeBranch holds the string denoting the branch edge name in mutations.
	EdgeBranch = "branch"
	// EdgeFlavor holds the string denoting the flavor edge name in mutations.
	EdgeFlavor = "flavor"
	// Table holds the table name of the tubmovement in the database.
	Table = "tub_movements"
	// BranchTable is the table that holds the branch relation/edge.
	BranchTable = "tub_movements"
	// BranchInverseTable is the table name for the Branch entity.
	// It exists in this package in order to avoid circular dependency with the "branch" package.
	BranchInverseTable = "branches"
	// BranchColumn is the table column denoting the branch relation/edge.
	BranchColumn = "branch_id"
	// FlavorTable is the table that holds the flavor relation/edge.
	FlavorTable = "tub_movements"
	// FlavorInverseTable is the table name for the Flavor entity.
	// It exists in this package in order to avoid circular dependency with the "flavor" package.
	FlavorInverseTable = "flavors"
	// FlavorColumn is the table column denoting the flavor relation/edge.
	FlavorColumn = "flavor_id"
)

// Columns holds all SQL columns for tubmovement fields.
var Columns = []string{
	FieldID,
	FieldBranchID,
	FieldFlavorID,
	FieldKind,
	FieldQuantity,
	FieldNote,
	FieldMovedAt,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultMovedAt holds the default value on creation for the "moved_at" field.
	DefaultMovedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TubMovement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBranchID orders the results by the branch_id field.
func ByBranchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchID, opts...).ToFunc()
}

// ByFlavorID orders the results by the flavor_id field.
func ByFlavorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlavorID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByMovedAt orders the results by the moved_at field.
func ByMovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovedAt, opts...).ToFunc()
}

// ByBranchField orders the results by branch field.
func ByBranchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBranchStep(), sql.OrderByField(field, opts...))
	}
}

// ByFlavorField orders the results by flavor field.
func ByFlavorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlavorStep(), sql.OrderByField(field, opts...))
	}
}
func newBranchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BranchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
	)
}
func newFlavorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlavorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlavorTable, FlavorColumn),
	)
}
