// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/territory"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Territory is the model entity for the Territory schema.
type Territory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TerritoryQuery when eager-loading is set.
	Edges        TerritoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TerritoryEdges holds the relations/edges for other nodes in the graph.
type TerritoryEdges struct {
	// Areas holds the value of the areas edge.
	Areas []*Area `json:"areas,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AreasOrErr returns the Areas value or an error if the edge
// was not loaded in eager-loading.
func (e TerritoryEdges) AreasOrErr() ([]*Area, error) {
	if e.loadedTypes[0] {
		return e.Areas, nil
	}
	return nil, &NotLoadedError{edge: "areas"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Territory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case territory.FieldName:
			values[i] = new(sql.NullString)
		case territory.FieldCreatedAt, territory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case territory.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Territory fields.
func (_m *Territory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case territory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case territory.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case territory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case territory.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Territory.
// This includes values selected through modifiers, order, etc.
func (_m *Territory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAreas queries the "areas" edge of the Territory entity.
func (_m *Territory) QueryAreas() *AreaQuery {
	return NewTerritoryClient(_m.config).QueryAreas(_m)
}

// Update returns a builder for updating this Territory.
// Note that you need to call Territory.Unwrap() before calling this method if this Territory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Territory) Update() *TerritoryUpdateOne {
	return NewTerritoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Territory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Territory) Unwrap() *Territory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Territory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Territory) String() string {
	var builder strings.Builder
	builder.WriteString("Territory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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

// Territories is a parsable slice of Territory.
type Territories []*Territory
