// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/flavor"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Flavor is the model entity for the Flavor schema.
type Flavor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Seasonal holds the value of the "seasonal" field.
	Seasonal bool `json:"seasonal,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlavorQuery when eager-loading is set.
	Edges        FlavorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlavorEdges holds the relations/edges for other nodes in the graph.
type FlavorEdges struct {
	// Movements holds the value of the movements edge.
	Movements []*TubMovement `json:"movements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MovementsOrErr returns the Movements value or an error if the edge
// was not loaded in eager-loading.
func (e FlavorEdges) MovementsOrErr() ([]*TubMovement, error) {
	if e.loadedTypes[0] {
		return e.Movements, nil
	}
	return nil, &NotLoadedError{edge: "movements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flavor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flavor.FieldSeasonal:
			values[i] = new(sql.NullBool)
		case flavor.FieldName:
			values[i] = new(sql.NullString)
		case flavor.FieldCreatedAt, flavor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case flavor.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flavor fields.
func (_m *Flavor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flavor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case flavor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case flavor.FieldSeasonal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field seasonal", values[i])
			} else if value.Valid {
				_m.Seasonal = value.Bool
			}
		case flavor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flavor.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Flavor.
// This includes values selected through modifiers, order, etc.
func (_m *Flavor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMovements queries the "movements" edge of the Flavor entity.
func (_m *Flavor) QueryMovements() *TubMovementQuery {
	return NewFlavorClient(_m.config).QueryMovements(_m)
}

// Update returns a builder for updating this Flavor.
// Note that you need to call Flavor.Unwrap() before calling this method if this Flavor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flavor) Update() *FlavorUpdateOne {
	return NewFlavorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flavor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flavor) Unwrap() *Flavor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flavor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flavor) String() string {
	var builder strings.Builder
	builder.WriteString("Flavor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("seasonal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seasonal))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Flavors is a parsable slice of Flavor.
type Flavors []*Flavor
