// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Branch is the model entity for the Branch schema.
type Branch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AreaID holds the value of the "area_id" field.
	AreaID uuid.UUID `json:"area_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Code holds the value of the "code" field.
	Code *string `json:"code,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BranchQuery when eager-loading is set.
	Edges        BranchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BranchEdges holds the relations/edges for other nodes in the graph.
type BranchEdges struct {
	// Area holds the value of the area edge.
	Area *Area `json:"area,omitempty"`
	// Sales holds the value of the sales edge.
	Sales []*SalesRecord `json:"sales,omitempty"`
	// BudgetDays holds the value of the budget_days edge.
	BudgetDays []*BudgetDay `json:"budget_days,omitempty"`
	// Movements holds the value of the movements edge.
	Movements []*TubMovement `json:"movements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AreaOrErr returns the Area value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BranchEdges) AreaOrErr() (*Area, error) {
	if e.Area != nil {
		return e.Area, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: area.Label}
	}
	return nil, &NotLoadedError{edge: "area"}
}

// SalesOrErr returns the Sales value or an error if the edge
// was not loaded in eager-loading.
func (e BranchEdges) SalesOrErr() ([]*SalesRecord, error) {
	if e.loadedTypes[1] {
		return e.Sales, nil
	}
	return nil, &NotLoadedError{edge: "sales"}
}

// BudgetDaysOrErr returns the BudgetDays value or an error if the edge
// was not loaded in eager-loading.
func (e BranchEdges) BudgetDaysOrErr() ([]*BudgetDay, error) {
	if e.loadedTypes[2] {
		return e.BudgetDays, nil
	}
	return nil, &NotLoadedError{edge: "budget_days"}
}

// MovementsOrErr returns the Movements value or an error if the edge
// was not loaded in eager-loading.
func (e BranchEdges) MovementsOrErr() ([]*TubMovement, error) {
	if e.loadedTypes[3] {
		return e.Movements, nil
	}
	return nil, &NotLoadedError{edge: "movements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Branch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case branch.FieldActive:
			values[i] = new(sql.NullBool)
		case branch.FieldName, branch.FieldCode:
			values[i] = new(sql.NullString)
		case branch.FieldCreatedAt, branch.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case branch.FieldID, branch.FieldAreaID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Branch fields.
func (_m *Branch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case branch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case branch.FieldAreaID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field area_id", values[i])
			} else if value != nil {
				_m.AreaID = *value
			}
		case branch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case branch.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = new(string)
				*_m.Code = value.String
			}
		case branch.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case branch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case branch.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Branch.
// This includes values selected through modifiers, order, etc.
func (_m *Branch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArea queries the "area" edge of the Branch entity.
func (_m *Branch) QueryArea() *AreaQuery {
	return NewBranchClient(_m.config).QueryArea(_m)
}

// QuerySales queries the "sales" edge of the Branch entity.
func (_m *Branch) QuerySales() *SalesRecordQuery {
	return NewBranchClient(_m.config).QuerySales(_m)
}

// QueryBudgetDays queries the "budget_days" edge of the Branch entity.
func (_m *Branch) QueryBudgetDays() *BudgetDayQuery {
	return NewBranchClient(_m.config).QueryBudgetDays(_m)
}

// QueryMovements queries the "movements" edge of the Branch entity.
func (_m *Branch) QueryMovements() *TubMovementQuery {
	return NewBranchClient(_m.config).QueryMovements(_m)
}

// Update returns a builder for updating this Branch.
// Note that you need to call Branch.Unwrap() before calling this method if this Branch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Branch) Update() *BranchUpdateOne {
	return NewBranchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Branch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Branch) Unwrap() *Branch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Branch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Branch) String() string {
	var builder strings.Builder
	builder.WriteString("Branch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("area_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AreaID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Code; v != nil {
		builder.WriteString("code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Branches is a parsable slice of Branch.
type Branches []*Branch
