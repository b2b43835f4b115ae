// Code generated by ent, DO NOT EDIT.

package salesrecord

import (
	"salestracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldID, id))
}

// BranchID applies equality check predicate on the "branch_id" field. It's identical to BranchIDEQ.
func BranchID(v uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchID, v))
}

// BusinessDate applies equality check predicate on the "business_date" field. It's identical to BusinessDateEQ.
func BusinessDate(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBusinessDate, v))
}

// Window applies equality check predicate on the "window" field. It's identical to WindowEQ.
func Window(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldWindow, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldKind, v))
}

// GrossSales applies equality check predicate on the "gross_sales" field. It's identical to GrossSalesEQ.
func GrossSales(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldGrossSales, v))
}

// NetSales applies equality check predicate on the "net_sales" field. It's identical to NetSalesEQ.
func NetSales(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldNetSales, v))
}

// GuestCount applies equality check predicate on the "guest_count" field. It's identical to GuestCountEQ.
func GuestCount(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldGuestCount, v))
}

// CashSales applies equality check predicate on the "cash_sales" field. It's identical to CashSalesEQ.
func CashSales(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldCashSales, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldStatus, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldExtractionConfidence, v))
}

// BranchRaw applies equality check predicate on the "branch_raw" field. It's identical to BranchRawEQ.
func BranchRaw(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchRaw, v))
}

// BranchMatch applies equality check predicate on the "branch_match" field. It's identical to BranchMatchEQ.
func BranchMatch(v bool) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchMatch, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// BranchIDEQ applies the EQ predicate on the "branch_id" field.
func BranchIDEQ(v uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchID, v))
}

// BranchIDNEQ applies the NEQ predicate on the "branch_id" field.
func BranchIDNEQ(v uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldBranchID, v))
}

// BranchIDIn applies the In predicate on the "branch_id" field.
func BranchIDIn(vs ...uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldBranchID, vs...))
}

// BranchIDNotIn applies the NotIn predicate on the "branch_id" field.
func BranchIDNotIn(vs ...uuid.UUID) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldBranchID, vs...))
}

// BusinessDateEQ applies the EQ predicate on the "business_date" field.
func BusinessDateEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBusinessDate, v))
}

// BusinessDateNEQ applies the NEQ predicate on the "business_date" field.
func BusinessDateNEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldBusinessDate, v))
}

// BusinessDateIn applies the In predicate on the "business_date" field.
func BusinessDateIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldBusinessDate, vs...))
}

// BusinessDateNotIn applies the NotIn predicate on the "business_date" field.
func BusinessDateNotIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldBusinessDate, vs...))
}

// BusinessDateGT applies the GT predicate on the "business_date" field.
func BusinessDateGT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldBusinessDate, v))
}

// BusinessDateGTE applies the GTE predicate on the "business_date" field.
func BusinessDateGTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldBusinessDate, v))
}

// BusinessDateLT applies the LT predicate on the "business_date" field.
func BusinessDateLT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldBusinessDate, v))
}

// BusinessDateLTE applies the LTE predicate on the "business_date" field.
func BusinessDateLTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldBusinessDate, v))
}

// WindowEQ applies the EQ predicate on the "window" field.
func WindowEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldWindow, v))
}

// WindowNEQ applies the NEQ predicate on the "window" field.
func WindowNEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldWindow, v))
}

// WindowIn applies the In predicate on the "window" field.
func WindowIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldWindow, vs...))
}

// WindowNotIn applies the NotIn predicate on the "window" field.
func WindowNotIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldWindow, vs...))
}

// WindowGT applies the GT predicate on the "window" field.
func WindowGT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldWindow, v))
}

// WindowGTE applies the GTE predicate on the "window" field.
func WindowGTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldWindow, v))
}

// WindowLT applies the LT predicate on the "window" field.
func WindowLT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldWindow, v))
}

// WindowLTE applies the LTE predicate on the "window" field.
func WindowLTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldWindow, v))
}

// WindowContains applies the Contains predicate on the "window" field.
func WindowContains(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContains(FieldWindow, v))
}

// WindowHasPrefix applies the HasPrefix predicate on the "window" field.
func WindowHasPrefix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasPrefix(FieldWindow, v))
}

// WindowHasSuffix applies the HasSuffix predicate on the "window" field.
func WindowHasSuffix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasSuffix(FieldWindow, v))
}

// WindowEqualFold applies the EqualFold predicate on the "window" field.
func WindowEqualFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEqualFold(FieldWindow, v))
}

// WindowContainsFold applies the ContainsFold predicate on the "window" field.
func WindowContainsFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContainsFold(FieldWindow, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContainsFold(FieldKind, v))
}

// GrossSalesEQ applies the EQ predicate on the "gross_sales" field.
func GrossSalesEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldGrossSales, v))
}

// GrossSalesNEQ applies the NEQ predicate on the "gross_sales" field.
func GrossSalesNEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldGrossSales, v))
}

// GrossSalesIn applies the In predicate on the "gross_sales" field.
func GrossSalesIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldGrossSales, vs...))
}

// GrossSalesNotIn applies the NotIn predicate on the "gross_sales" field.
func GrossSalesNotIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldGrossSales, vs...))
}

// GrossSalesGT applies the GT predicate on the "gross_sales" field.
func GrossSalesGT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldGrossSales, v))
}

// GrossSalesGTE applies the GTE predicate on the "gross_sales" field.
func GrossSalesGTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldGrossSales, v))
}

// GrossSalesLT applies the LT predicate on the "gross_sales" field.
func GrossSalesLT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldGrossSales, v))
}

// GrossSalesLTE applies the LTE predicate on the "gross_sales" field.
func GrossSalesLTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldGrossSales, v))
}

// GrossSalesIsNil applies the IsNil predicate on the "gross_sales" field.
func GrossSalesIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldGrossSales))
}

// GrossSalesNotNil applies the NotNil predicate on the "gross_sales" field.
func GrossSalesNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldGrossSales))
}

// NetSalesEQ applies the EQ predicate on the "net_sales" field.
func NetSalesEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldNetSales, v))
}

// NetSalesNEQ applies the NEQ predicate on the "net_sales" field.
func NetSalesNEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldNetSales, v))
}

// NetSalesIn applies the In predicate on the "net_sales" field.
func NetSalesIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldNetSales, vs...))
}

// NetSalesNotIn applies the NotIn predicate on the "net_sales" field.
func NetSalesNotIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldNetSales, vs...))
}

// NetSalesGT applies the GT predicate on the "net_sales" field.
func NetSalesGT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldNetSales, v))
}

// NetSalesGTE applies the GTE predicate on the "net_sales" field.
func NetSalesGTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldNetSales, v))
}

// NetSalesLT applies the LT predicate on the "net_sales" field.
func NetSalesLT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldNetSales, v))
}

// NetSalesLTE applies the LTE predicate on the "net_sales" field.
func NetSalesLTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldNetSales, v))
}

// NetSalesIsNil applies the IsNil predicate on the "net_sales" field.
func NetSalesIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldNetSales))
}

// NetSalesNotNil applies the NotNil predicate on the "net_sales" field.
func NetSalesNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldNetSales))
}

// GuestCountEQ applies the EQ predicate on the "guest_count" field.
func GuestCountEQ(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldGuestCount, v))
}

// GuestCountNEQ applies the NEQ predicate on the "guest_count" field.
func GuestCountNEQ(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldGuestCount, v))
}

// GuestCountIn applies the In predicate on the "guest_count" field.
func GuestCountIn(vs ...int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldGuestCount, vs...))
}

// GuestCountNotIn applies the NotIn predicate on the "guest_count" field.
func GuestCountNotIn(vs ...int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldGuestCount, vs...))
}

// GuestCountGT applies the GT predicate on the "guest_count" field.
func GuestCountGT(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldGuestCount, v))
}

// GuestCountGTE applies the GTE predicate on the "guest_count" field.
func GuestCountGTE(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldGuestCount, v))
}

// GuestCountLT applies the LT predicate on the "guest_count" field.
func GuestCountLT(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldGuestCount, v))
}

// GuestCountLTE applies the LTE predicate on the "guest_count" field.
func GuestCountLTE(v int) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldGuestCount, v))
}

// GuestCountIsNil applies the IsNil predicate on the "guest_count" field.
func GuestCountIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldGuestCount))
}

// GuestCountNotNil applies the NotNil predicate on the "guest_count" field.
func GuestCountNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldGuestCount))
}

// CashSalesEQ applies the EQ predicate on the "cash_sales" field.
func CashSalesEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldCashSales, v))
}

// CashSalesNEQ applies the NEQ predicate on the "cash_sales" field.
func CashSalesNEQ(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldCashSales, v))
}

// CashSalesIn applies the In predicate on the "cash_sales" field.
func CashSalesIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldCashSales, vs...))
}

// CashSalesNotIn applies the NotIn predicate on the "cash_sales" field.
func CashSalesNotIn(vs ...float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldCashSales, vs...))
}

// CashSalesGT applies the GT predicate on the "cash_sales" field.
func CashSalesGT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldCashSales, v))
}

// CashSalesGTE applies the GTE predicate on the "cash_sales" field.
func CashSalesGTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldCashSales, v))
}

// CashSalesLT applies the LT predicate on the "cash_sales" field.
func CashSalesLT(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldCashSales, v))
}

// CashSalesLTE applies the LTE predicate on the "cash_sales" field.
func CashSalesLTE(v float64) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldCashSales, v))
}

// CashSalesIsNil applies the IsNil predicate on the "cash_sales" field.
func CashSalesIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldCashSales))
}

// CashSalesNotNil applies the NotNil predicate on the "cash_sales" field.
func CashSalesNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldCashSales))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldCategories))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldExtractionConfidence))
}

// BranchRawEQ applies the EQ predicate on the "branch_raw" field.
func BranchRawEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchRaw, v))
}

// BranchRawNEQ applies the NEQ predicate on the "branch_raw" field.
func BranchRawNEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldBranchRaw, v))
}

// BranchRawIn applies the In predicate on the "branch_raw" field.
func BranchRawIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldBranchRaw, vs...))
}

// BranchRawNotIn applies the NotIn predicate on the "branch_raw" field.
func BranchRawNotIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldBranchRaw, vs...))
}

// BranchRawGT applies the GT predicate on the "branch_raw" field.
func BranchRawGT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldBranchRaw, v))
}

// BranchRawGTE applies the GTE predicate on the "branch_raw" field.
func BranchRawGTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldBranchRaw, v))
}

// BranchRawLT applies the LT predicate on the "branch_raw" field.
func BranchRawLT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldBranchRaw, v))
}

// BranchRawLTE applies the LTE predicate on the "branch_raw" field.
func BranchRawLTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldBranchRaw, v))
}

// BranchRawContains applies the Contains predicate on the "branch_raw" field.
func BranchRawContains(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContains(FieldBranchRaw, v))
}

// BranchRawHasPrefix applies the HasPrefix predicate on the "branch_raw" field.
func BranchRawHasPrefix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasPrefix(FieldBranchRaw, v))
}

// BranchRawHasSuffix applies the HasSuffix predicate on the "branch_raw" field.
func BranchRawHasSuffix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasSuffix(FieldBranchRaw, v))
}

// BranchRawIsNil applies the IsNil predicate on the "branch_raw" field.
func BranchRawIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldBranchRaw))
}

// BranchRawNotNil applies the NotNil predicate on the "branch_raw" field.
func BranchRawNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldBranchRaw))
}

// BranchRawEqualFold applies the EqualFold predicate on the "branch_raw" field.
func BranchRawEqualFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEqualFold(FieldBranchRaw, v))
}

// BranchRawContainsFold applies the ContainsFold predicate on the "branch_raw" field.
func BranchRawContainsFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContainsFold(FieldBranchRaw, v))
}

// BranchMatchEQ applies the EQ predicate on the "branch_match" field.
func BranchMatchEQ(v bool) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldBranchMatch, v))
}

// BranchMatchNEQ applies the NEQ predicate on the "branch_match" field.
func BranchMatchNEQ(v bool) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldBranchMatch, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SalesRecord {
	return predicate.SalesRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBranch applies the HasEdge predicate on the "branch" edge.
func HasBranch() predicate.SalesRecord {
	return predicate.SalesRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchWith applies the HasEdge predicate on the "branch" edge with a given conditions (other predicates).
func HasBranchWith(preds ...predicate.Branch) predicate.SalesRecord {
	return predicate.SalesRecord(func(s *sql.Selector) {
		step := newBranchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalesRecord) predicate.SalesRecord {
	return predicate.SalesRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalesRecord) predicate.SalesRecord {
	return predicate.SalesRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalesRecord) predicate.SalesRecord {
	return predicate.SalesRecord(sql.NotPredicates(p))
}
