// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// BudgetDay is the model entity for the BudgetDay schema.
type BudgetDay struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BranchID holds the value of the "branch_id" field.
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	// BusinessDate holds the value of the "business_date" field.
	BusinessDate time.Time `json:"business_date,omitempty"`
	// Weekday holds the value of the "weekday" field.
	Weekday string `json:"weekday,omitempty"`
	// BudgetAmount holds the value of the "budget_amount" field.
	BudgetAmount float64 `json:"budget_amount,omitempty"`
	// BudgetGuestCount holds the value of the "budget_guest_count" field.
	BudgetGuestCount *int `json:"budget_guest_count,omitempty"`
	// LySales holds the value of the "ly_sales" field.
	LySales *float64 `json:"ly_sales,omitempty"`
	// LyGuestCount holds the value of the "ly_guest_count" field.
	LyGuestCount *int `json:"ly_guest_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BudgetDayQuery when eager-loading is set.
	Edges        BudgetDayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BudgetDayEdges holds the relations/edges for other nodes in the graph.
type BudgetDayEdges struct {
	// Branch holds the value of the branch edge.
	Branch *Branch `json:"branch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BranchOrErr returns the Branch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BudgetDayEdges) BranchOrErr() (*Branch, error) {
	if e.Branch != nil {
		return e.Branch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: branch.Label}
	}
	return nil, &NotLoadedError{edge: "branch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetday.FieldBudgetAmount, budgetday.FieldLySales:
			values[i] = new(sql.NullFloat64)
		case budgetday.FieldBudgetGuestCount, budgetday.FieldLyGuestCount:
			values[i] = new(sql.NullInt64)
		case budgetday.FieldWeekday:
			values[i] = new(sql.NullString)
		case budgetday.FieldBusinessDate, budgetday.FieldCreatedAt, budgetday.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case budgetday.FieldID, budgetday.FieldBranchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetDay fields.
func (_m *BudgetDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetday.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case budgetday.FieldBranchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field branch_id", values[i])
			} else if value != nil {
				_m.BranchID = *value
			}
		case budgetday.FieldBusinessDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field business_date", values[i])
			} else if value.Valid {
				_m.BusinessDate = value.Time
			}
		case budgetday.FieldWeekday:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weekday", values[i])
			} else if value.Valid {
				_m.Weekday = value.String
			}
		case budgetday.FieldBudgetAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_amount", values[i])
			} else if value.Valid {
				_m.BudgetAmount = value.Float64
			}
		case budgetday.FieldBudgetGuestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_guest_count", values[i])
			} else if value.Valid {
				_m.BudgetGuestCount = new(int)
				*_m.BudgetGuestCount = int(value.Int64)
			}
		case budgetday.FieldLySales:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ly_sales", values[i])
			} else if value.Valid {
				_m.LySales = new(float64)
				*_m.LySales = value.Float64
			}
		case budgetday.FieldLyGuestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ly_guest_count", values[i])
			} else if value.Valid {
				_m.LyGuestCount = new(int)
				*_m.LyGuestCount = int(value.Int64)
			}
		case budgetday.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case budgetday.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetDay.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetDay) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBranch queries the "branch" edge of the BudgetDay entity.
func (_m *BudgetDay) QueryBranch() *BranchQuery {
	return NewBudgetDayClient(_m.config).QueryBranch(_m)
}

// Update returns a builder for updating this BudgetDay.
// Note that you need to call BudgetDay.Unwrap() before calling this method if this BudgetDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetDay) Update() *BudgetDayUpdateOne {
	return NewBudgetDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetDay) Unwrap() *BudgetDay {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetDay is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetDay) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("branch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchID))
	builder.WriteString(", ")
	builder.WriteString("business_date=")
	builder.WriteString(_m.BusinessDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("weekday=")
	builder.WriteString(_m.Weekday)
	builder.WriteString(", ")
	builder.WriteString("budget_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetAmount))
	builder.WriteString(", ")
	if v := _m.BudgetGuestCount; v != nil {
		builder.WriteString("budget_guest_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LySales; v != nil {
		builder.WriteString("ly_sales=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LyGuestCount; v != nil {
		builder.WriteString("ly_guest_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetDays is a parsable slice of BudgetDay.
type BudgetDays []*BudgetDay
