// Code generated by ent, DO NOT EDIT.

package area

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the area type in the database.
	Label = "area"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTerritoryID holds the string denoting the territory_id field in the database.
	FieldTerritoryID = "territory_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTerritory holds the string denoting the territory edge name in mutations.
	EdgeTerritory = "territory"
	// EdgeBranches holds the string denoting the branches edge name in mutations.
	EdgeBranches = "branches"
	// Table holds the table name of the area in the database.
	Table = "areas"
	// TerritoryTable is the table that holds the territory relation/edge.
	TerritoryTable = "areas"
	// TerritoryInverseTable is the table name for the Territory entity.
	// It exists in this package in order to avoid circular dependency with the "territory" package.
	TerritoryInverseTable = "territories"
	// TerritoryColumn is the table column denoting the territory relation/edge.
	TerritoryColumn = "territory_id"
	// BranchesTable is the table that holds the branches relation/edge.
	BranchesTable = "branches"
	// BranchesInverseTable is the table name for the Branch entity.
	// It exists in this package in order to avoid circular dependency with the "branch" package.
	BranchesInverseTable = "branches"
	// BranchesColumn is the table column denoting the branches relation/edge.
	BranchesColumn = "area_id"
)

// Columns holds all SQL columns for area fields.
var Columns = []string{
	FieldID,
	FieldTerritoryID,
	FieldName,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Area queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTerritoryID orders the results by the territory_id field.
func ByTerritoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerritoryID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTerritoryField orders the results by territory field.
func ByTerritoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTerritoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByBranchesCount orders the results by branches count.
func ByBranchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBranchesStep(), opts...)
	}
}

// ByBranches orders the results by branches terms.
func ByBranches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBranchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTerritoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TerritoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TerritoryTable, TerritoryColumn),
	)
}
func newBranchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BranchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BranchesTable, BranchesColumn),
	)
}
