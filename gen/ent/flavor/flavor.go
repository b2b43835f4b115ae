// Code generated by ent, DO NOT EDIT.

package flavor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the flavor type in the database.
	Label = "flavor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSeasonal holds the string denoting the seasonal field in the database.
	FieldSeasonal = "seasonal"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMovements holds the string denoting the movements edge name in mutations.
	EdgeMovements = "movements"
	// Table holds the table name of the flavor in the database.
	Table = "flavors"
	// MovementsTable is the table that holds the movements relation/edge.
	MovementsTable = "tub_movements"
	// MovementsInverseTable is the table name for the TubMovement entity.
	// It exists in this package in order to avoid circular dependency with the "tubmovement" package.
	MovementsInverseTable = "tub_movements"
	// MovementsColumn is the table column denoting the movements relation/edge.
	MovementsColumn = "flavor_id"
)

// Columns holds all SQL columns for flavor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSeasonal,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultSeasonal holds the default value on creation for the "seasonal" field.
	DefaultSeasonal bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Flavor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySeasonal orders the results by the seasonal field.
func BySeasonal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeasonal, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMovementsCount orders the results by movements count.
func ByMovementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMovementsStep(), opts...)
	}
}

// ByMovements orders the results by movements terms.
func ByMovements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMovementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMovementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MovementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MovementsTable, MovementsColumn),
	)
}
