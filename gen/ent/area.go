// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/territory"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Area is the model entity for the Area schema.
type Area struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TerritoryID holds the value of the "territory_id" field.
	TerritoryID uuid.UUID `json:"territory_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AreaQuery when eager-loading is set.
	Edges        AreaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AreaEdges holds the relations/edges for other nodes in the graph.
type AreaEdges struct {
	// Territory holds the value of the territory edge.
	Territory *Territory `json:"territory,omitempty"`
	// Branches holds the value of the branches edge.
	Branches []*Branch `json:"branches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TerritoryOrErr returns the Territory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AreaEdges) TerritoryOrErr() (*Territory, error) {
	if e.Territory != nil {
		return e.Territory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: territory.Label}
	}
	return nil, &NotLoadedError{edge: "territory"}
}

// BranchesOrErr returns the Branches value or an error if the edge
// was not loaded in eager-loading.
func (e AreaEdges) BranchesOrErr() ([]*Branch, error) {
	if e.loadedTypes[1] {
		return e.Branches, nil
	}
	return nil, &NotLoadedError{edge: "branches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Area) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case area.FieldName:
			values[i] = new(sql.NullString)
		case area.FieldCreatedAt, area.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case area.FieldID, area.FieldTerritoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Area fields.
func (_m *Area) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case area.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case area.FieldTerritoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field territory_id", values[i])
			} else if value != nil {
				_m.TerritoryID = *value
			}
		case area.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case area.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case area.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Area.
// This includes values selected through modifiers, order, etc.
func (_m *Area) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTerritory queries the "territory" edge of the Area entity.
func (_m *Area) QueryTerritory() *TerritoryQuery {
	return NewAreaClient(_m.config).QueryTerritory(_m)
}

// QueryBranches queries the "branches" edge of the Area entity.
func (_m *Area) QueryBranches() *BranchQuery {
	return NewAreaClient(_m.config).QueryBranches(_m)
}

// Update returns a builder for updating this Area.
// Note that you need to call Area.Unwrap() before calling this method if this Area
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Area) Update() *AreaUpdateOne {
	return NewAreaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Area entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Area) Unwrap() *Area {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Area is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Area) String() string {
	var builder strings.Builder
	builder.WriteString("Area(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("territory_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TerritoryID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Areas is a parsable slice of Area.
type Areas []*Area
