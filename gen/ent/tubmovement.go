// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/tubmovement"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// TubMovement is the model entity for the TubMovement schema.
type TubMovement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BranchID holds the value of the "branch_id" field.
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	// FlavorID holds the value of the "flavor_id" field.
	FlavorID uuid.UUID `json:"flavor_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Note holds the value of the "note" field.
	Note *string `json:"note,omitempty"`
	// MovedAt holds the value of the "moved_at" field.
	MovedAt time.Time `json:"moved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TubMovementQuery when eager-loading is set.
	Edges        TubMovementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TubMovementEdges holds the relations/edges for other nodes in the graph.
type TubMovementEdges struct {
	// Branch holds the value of the branch edge.
	Branch *Branch `json:"branch,omitempty"`
	// Flavor holds the value of the flavor edge.
	Flavor *Flavor `json:"flavor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BranchOrErr returns the Branch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TubMovementEdges) BranchOrErr() (*Branch, error) {
	if e.Branch != nil {
		return e.Branch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: branch.Label}
	}
	return nil, &NotLoadedError{edge: "branch"}
}

// FlavorOrErr returns the Flavor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TubMovementEdges) FlavorOrErr() (*Flavor, error) {
	if e.Flavor != nil {
		return e.Flavor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: flavor.Label}
	}
	return nil, &NotLoadedError{edge: "flavor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TubMovement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tubmovement.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case tubmovement.FieldKind, tubmovement.FieldNote:
			values[i] = new(sql.NullString)
		case tubmovement.FieldMovedAt:
			values[i] = new(sql.NullTime)
		case tubmovement.FieldID, tubmovement.FieldBranchID, tubmovement.FieldFlavorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TubMovement fields.
func (_m *TubMovement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tubmovement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tubmovement.FieldBranchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field branch_id", values[i])
			} else if value != nil {
				_m.BranchID = *value
			}
		case tubmovement.FieldFlavorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field flavor_id", values[i])
			} else if value != nil {
				_m.FlavorID = *value
			}
		case tubmovement.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case tubmovement.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case tubmovement.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		case tubmovement.FieldMovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field moved_at", values[i])
			} else if value.Valid {
				_m.MovedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TubMovement.
// This includes values selected through modifiers, order, etc.
func (_m *TubMovement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBranch queries the "branch" edge of the TubMovement entity.
func (_m *TubMovement) QueryBranch() *BranchQuery {
	return NewTubMovementClient(_m.config).QueryBranch(_m)
}

// QueryFlavor queries the "flavor" edge of the TubMovement entity.
func (_m *TubMovement) QueryFlavor() *FlavorQuery {
	return NewTubMovementClient(_m.config).QueryFlavor(_m)
}

// Update returns a builder for updating this TubMovement.
// Note that you need to call TubMovement.Unwrap() before calling this method if this TubMovement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TubMovement) Update() *TubMovementUpdateOne {
	return NewTubMovementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TubMovement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TubMovement) Unwrap() *TubMovement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TubMovement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TubMovement) String() string {
	var builder strings.Builder
	builder.WriteString("TubMovement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("branch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchID))
	builder.WriteString(", ")
	builder.WriteString("flavor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlavorID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("moved_at=")
	builder.WriteString(_m.MovedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TubMovements is a parsable slice of TubMovement.
type TubMovements []*TubMovement
