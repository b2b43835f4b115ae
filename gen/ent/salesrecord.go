// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/salesrecord"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SalesRecord is the model entity for the SalesRecord schema.
type SalesRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BranchID holds the value of the "branch_id" field.
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	// BusinessDate holds the value of the "business_date" field.
	BusinessDate time.Time `json:"business_date,omitempty"`
	// Window holds the value of the "window" field.
	Window string `json:"window,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// GrossSales holds the value of the "gross_sales" field.
	GrossSales *float64 `json:"gross_sales,omitempty"`
	// NetSales holds the value of the "net_sales" field.
	NetSales *float64 `json:"net_sales,omitempty"`
	// GuestCount holds the value of the "guest_count" field.
	GuestCount *int `json:"guest_count,omitempty"`
	// CashSales holds the value of the "cash_sales" field.
	CashSales *float64 `json:"cash_sales,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories json.RawMessage `json:"categories,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence *float32 `json:"extraction_confidence,omitempty"`
	// BranchRaw holds the value of the "branch_raw" field.
	BranchRaw *string `json:"branch_raw,omitempty"`
	// BranchMatch holds the value of the "branch_match" field.
	BranchMatch bool `json:"branch_match,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SalesRecordQuery when eager-loading is set.
	Edges        SalesRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SalesRecordEdges holds the relations/edges for other nodes in the graph.
type SalesRecordEdges struct {
	// Branch holds the value of the branch edge.
	Branch *Branch `json:"branch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BranchOrErr returns the Branch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SalesRecordEdges) BranchOrErr() (*Branch, error) {
	if e.Branch != nil {
		return e.Branch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: branch.Label}
	}
	return nil, &NotLoadedError{edge: "branch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salesrecord.FieldCategories:
			values[i] = new([]byte)
		case salesrecord.FieldBranchMatch:
			values[i] = new(sql.NullBool)
		case salesrecord.FieldGrossSales, salesrecord.FieldNetSales, salesrecord.FieldCashSales, salesrecord.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case salesrecord.FieldGuestCount:
			values[i] = new(sql.NullInt64)
		case salesrecord.FieldWindow, salesrecord.FieldKind, salesrecord.FieldStatus, salesrecord.FieldBranchRaw, salesrecord.FieldRawText:
			values[i] = new(sql.NullString)
		case salesrecord.FieldBusinessDate, salesrecord.FieldCreatedAt, salesrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case salesrecord.FieldID, salesrecord.FieldBranchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesRecord fields.
func (_m *SalesRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salesrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case salesrecord.FieldBranchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field branch_id", values[i])
			} else if value != nil {
				_m.BranchID = *value
			}
		case salesrecord.FieldBusinessDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field business_date", values[i])
			} else if value.Valid {
				_m.BusinessDate = value.Time
			}
		case salesrecord.FieldWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value.Valid {
				_m.Window = value.String
			}
		case salesrecord.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case salesrecord.FieldGrossSales:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_sales", values[i])
			} else if value.Valid {
				_m.GrossSales = new(float64)
				*_m.GrossSales = value.Float64
			}
		case salesrecord.FieldNetSales:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_sales", values[i])
			} else if value.Valid {
				_m.NetSales = new(float64)
				*_m.NetSales = value.Float64
			}
		case salesrecord.FieldGuestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field guest_count", values[i])
			} else if value.Valid {
				_m.GuestCount = new(int)
				*_m.GuestCount = int(value.Int64)
			}
		case salesrecord.FieldCashSales:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_sales", values[i])
			} else if value.Valid {
				_m.CashSales = new(float64)
				*_m.CashSales = value.Float64
			}
		case salesrecord.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case salesrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case salesrecord.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = new(float32)
				*_m.ExtractionConfidence = float32(value.Float64)
			}
		case salesrecord.FieldBranchRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_raw", values[i])
			} else if value.Valid {
				_m.BranchRaw = new(string)
				*_m.BranchRaw = value.String
			}
		case salesrecord.FieldBranchMatch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field branch_match", values[i])
			} else if value.Valid {
				_m.BranchMatch = value.Bool
			}
		case salesrecord.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case salesrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case salesrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SalesRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SalesRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBranch queries the "branch" edge of the SalesRecord entity.
func (_m *SalesRecord) QueryBranch() *BranchQuery {
	return NewSalesRecordClient(_m.config).QueryBranch(_m)
}

// Update returns a builder for updating this SalesRecord.
// Note that you need to call SalesRecord.Unwrap() before calling this method if this SalesRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesRecord) Update() *SalesRecordUpdateOne {
	return NewSalesRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesRecord) Unwrap() *SalesRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SalesRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("branch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchID))
	builder.WriteString(", ")
	builder.WriteString("business_date=")
	builder.WriteString(_m.BusinessDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(_m.Window)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	if v := _m.GrossSales; v != nil {
		builder.WriteString("gross_sales=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetSales; v != nil {
		builder.WriteString("net_sales=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GuestCount; v != nil {
		builder.WriteString("guest_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CashSales; v != nil {
		builder.WriteString("cash_sales=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ExtractionConfidence; v != nil {
		builder.WriteString("extraction_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BranchRaw; v != nil {
		builder.WriteString("branch_raw=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("branch_match=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchMatch))
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
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

// SalesRecords is a parsable slice of SalesRecord.
type SalesRecords []*SalesRecord
