// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: salestracker/v1/salestracker.proto

package salestrackerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CategoryLine struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity        int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	SalesAmount     string                 `protobuf:"bytes,3,opt,name=sales_amount,json=salesAmount,proto3" json:"sales_amount,omitempty"`
	ContributionPct string                 `protobuf:"bytes,4,opt,name=contribution_pct,json=contributionPct,proto3" json:"contribution_pct,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CategoryLine) Reset() {
	*x = CategoryLine{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryLine) ProtoMessage() {}

func (x *CategoryLine) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryLine.ProtoReflect.Descriptor instead.
func (*CategoryLine) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{0}
}

func (x *CategoryLine) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CategoryLine) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CategoryLine) GetSalesAmount() string {
	if x != nil {
		return x.SalesAmount
	}
	return ""
}

func (x *CategoryLine) GetContributionPct() string {
	if x != nil {
		return x.ContributionPct
	}
	return ""
}

type SalesSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GrossSales    string                 `protobuf:"bytes,1,opt,name=gross_sales,json=grossSales,proto3" json:"gross_sales,omitempty"`
	NetSales      string                 `protobuf:"bytes,2,opt,name=net_sales,json=netSales,proto3" json:"net_sales,omitempty"`
	GuestCount    int32                  `protobuf:"varint,3,opt,name=guest_count,json=guestCount,proto3" json:"guest_count,omitempty"`
	CashSales     string                 `protobuf:"bytes,4,opt,name=cash_sales,json=cashSales,proto3" json:"cash_sales,omitempty"`
	Categories    []*CategoryLine        `protobuf:"bytes,5,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SalesSummary) Reset() {
	*x = SalesSummary{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SalesSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SalesSummary) ProtoMessage() {}

func (x *SalesSummary) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SalesSummary.ProtoReflect.Descriptor instead.
func (*SalesSummary) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{1}
}

func (x *SalesSummary) GetGrossSales() string {
	if x != nil {
		return x.GrossSales
	}
	return ""
}

func (x *SalesSummary) GetNetSales() string {
	if x != nil {
		return x.NetSales
	}
	return ""
}

func (x *SalesSummary) GetGuestCount() int32 {
	if x != nil {
		return x.GuestCount
	}
	return 0
}

func (x *SalesSummary) GetCashSales() string {
	if x != nil {
		return x.CashSales
	}
	return ""
}

func (x *SalesSummary) GetCategories() []*CategoryLine {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ParseReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	BranchName    string                 `protobuf:"bytes,3,opt,name=branch_name,json=branchName,proto3" json:"branch_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptRequest) Reset() {
	*x = ParseReceiptRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptRequest) ProtoMessage() {}

func (x *ParseReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptRequest.ProtoReflect.Descriptor instead.
func (*ParseReceiptRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{2}
}

func (x *ParseReceiptRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ParseReceiptRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ParseReceiptRequest) GetBranchName() string {
	if x != nil {
		return x.BranchName
	}
	return ""
}

type ParseReceiptResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Summary        *SalesSummary          `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	BranchRaw      string                 `protobuf:"bytes,2,opt,name=branch_raw,json=branchRaw,proto3" json:"branch_raw,omitempty"`
	BranchStrategy string                 `protobuf:"bytes,3,opt,name=branch_strategy,json=branchStrategy,proto3" json:"branch_strategy,omitempty"`
	BranchMatch    bool                   `protobuf:"varint,4,opt,name=branch_match,json=branchMatch,proto3" json:"branch_match,omitempty"`
	Confidence     float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ParseReceiptResponse) Reset() {
	*x = ParseReceiptResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptResponse) ProtoMessage() {}

func (x *ParseReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptResponse.ProtoReflect.Descriptor instead.
func (*ParseReceiptResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{3}
}

func (x *ParseReceiptResponse) GetSummary() *SalesSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

func (x *ParseReceiptResponse) GetBranchRaw() string {
	if x != nil {
		return x.BranchRaw
	}
	return ""
}

func (x *ParseReceiptResponse) GetBranchStrategy() string {
	if x != nil {
		return x.BranchStrategy
	}
	return ""
}

func (x *ParseReceiptResponse) GetBranchMatch() bool {
	if x != nil {
		return x.BranchMatch
	}
	return false
}

func (x *ParseReceiptResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type SalesRecord struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BranchId             string                 `protobuf:"bytes,2,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	BusinessDate         string                 `protobuf:"bytes,3,opt,name=business_date,json=businessDate,proto3" json:"business_date,omitempty"`
	Window               string                 `protobuf:"bytes,4,opt,name=window,proto3" json:"window,omitempty"`
	Kind                 string                 `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	GrossSales           string                 `protobuf:"bytes,6,opt,name=gross_sales,json=grossSales,proto3" json:"gross_sales,omitempty"`
	NetSales             string                 `protobuf:"bytes,7,opt,name=net_sales,json=netSales,proto3" json:"net_sales,omitempty"`
	GuestCount           int32                  `protobuf:"varint,8,opt,name=guest_count,json=guestCount,proto3" json:"guest_count,omitempty"`
	CashSales            string                 `protobuf:"bytes,9,opt,name=cash_sales,json=cashSales,proto3" json:"cash_sales,omitempty"`
	Categories           []*CategoryLine        `protobuf:"bytes,10,rep,name=categories,proto3" json:"categories,omitempty"`
	Status               string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,12,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	BranchRaw            string                 `protobuf:"bytes,13,opt,name=branch_raw,json=branchRaw,proto3" json:"branch_raw,omitempty"`
	BranchMatch          bool                   `protobuf:"varint,14,opt,name=branch_match,json=branchMatch,proto3" json:"branch_match,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt            string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *SalesRecord) Reset() {
	*x = SalesRecord{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SalesRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SalesRecord) ProtoMessage() {}

func (x *SalesRecord) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SalesRecord.ProtoReflect.Descriptor instead.
func (*SalesRecord) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{4}
}

func (x *SalesRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SalesRecord) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *SalesRecord) GetBusinessDate() string {
	if x != nil {
		return x.BusinessDate
	}
	return ""
}

func (x *SalesRecord) GetWindow() string {
	if x != nil {
		return x.Window
	}
	return ""
}

func (x *SalesRecord) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SalesRecord) GetGrossSales() string {
	if x != nil {
		return x.GrossSales
	}
	return ""
}

func (x *SalesRecord) GetNetSales() string {
	if x != nil {
		return x.NetSales
	}
	return ""
}

func (x *SalesRecord) GetGuestCount() int32 {
	if x != nil {
		return x.GuestCount
	}
	return 0
}

func (x *SalesRecord) GetCashSales() string {
	if x != nil {
		return x.CashSales
	}
	return ""
}

func (x *SalesRecord) GetCategories() []*CategoryLine {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *SalesRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SalesRecord) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *SalesRecord) GetBranchRaw() string {
	if x != nil {
		return x.BranchRaw
	}
	return ""
}

func (x *SalesRecord) GetBranchMatch() bool {
	if x != nil {
		return x.BranchMatch
	}
	return false
}

func (x *SalesRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *SalesRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SubmitSalesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	BusinessDate  string                 `protobuf:"bytes,2,opt,name=business_date,json=businessDate,proto3" json:"business_date,omitempty"`
	Window        string                 `protobuf:"bytes,3,opt,name=window,proto3" json:"window,omitempty"`
	Kind          string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	Text          string                 `protobuf:"bytes,5,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSalesRequest) Reset() {
	*x = SubmitSalesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSalesRequest) ProtoMessage() {}

func (x *SubmitSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSalesRequest.ProtoReflect.Descriptor instead.
func (*SubmitSalesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitSalesRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *SubmitSalesRequest) GetBusinessDate() string {
	if x != nil {
		return x.BusinessDate
	}
	return ""
}

func (x *SubmitSalesRequest) GetWindow() string {
	if x != nil {
		return x.Window
	}
	return ""
}

func (x *SubmitSalesRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SubmitSalesRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type SubmitManualSalesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	BusinessDate  string                 `protobuf:"bytes,2,opt,name=business_date,json=businessDate,proto3" json:"business_date,omitempty"`
	Window        string                 `protobuf:"bytes,3,opt,name=window,proto3" json:"window,omitempty"`
	Kind          string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	GrossSales    string                 `protobuf:"bytes,5,opt,name=gross_sales,json=grossSales,proto3" json:"gross_sales,omitempty"`
	NetSales      string                 `protobuf:"bytes,6,opt,name=net_sales,json=netSales,proto3" json:"net_sales,omitempty"`
	GuestCount    int32                  `protobuf:"varint,7,opt,name=guest_count,json=guestCount,proto3" json:"guest_count,omitempty"`
	CashSales     string                 `protobuf:"bytes,8,opt,name=cash_sales,json=cashSales,proto3" json:"cash_sales,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitManualSalesRequest) Reset() {
	*x = SubmitManualSalesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitManualSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitManualSalesRequest) ProtoMessage() {}

func (x *SubmitManualSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitManualSalesRequest.ProtoReflect.Descriptor instead.
func (*SubmitManualSalesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitManualSalesRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetBusinessDate() string {
	if x != nil {
		return x.BusinessDate
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetWindow() string {
	if x != nil {
		return x.Window
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetGrossSales() string {
	if x != nil {
		return x.GrossSales
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetNetSales() string {
	if x != nil {
		return x.NetSales
	}
	return ""
}

func (x *SubmitManualSalesRequest) GetGuestCount() int32 {
	if x != nil {
		return x.GuestCount
	}
	return 0
}

func (x *SubmitManualSalesRequest) GetCashSales() string {
	if x != nil {
		return x.CashSales
	}
	return ""
}

type SubmitSalesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *SalesRecord           `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSalesResponse) Reset() {
	*x = SubmitSalesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSalesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSalesResponse) ProtoMessage() {}

func (x *SubmitSalesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSalesResponse.ProtoReflect.Descriptor instead.
func (*SubmitSalesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitSalesResponse) GetRecord() *SalesRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListSalesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSalesRequest) Reset() {
	*x = ListSalesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSalesRequest) ProtoMessage() {}

func (x *ListSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSalesRequest.ProtoReflect.Descriptor instead.
func (*ListSalesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{8}
}

func (x *ListSalesRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *ListSalesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListSalesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListFlaggedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFlaggedRequest) Reset() {
	*x = ListFlaggedRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFlaggedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFlaggedRequest) ProtoMessage() {}

func (x *ListFlaggedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFlaggedRequest.ProtoReflect.Descriptor instead.
func (*ListFlaggedRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{9}
}

func (x *ListFlaggedRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

type ListSalesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*SalesRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSalesResponse) Reset() {
	*x = ListSalesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSalesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSalesResponse) ProtoMessage() {}

func (x *ListSalesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSalesResponse.ProtoReflect.Descriptor instead.
func (*ListSalesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{10}
}

func (x *ListSalesResponse) GetRecords() []*SalesRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ExportSalesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSalesRequest) Reset() {
	*x = ExportSalesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSalesRequest) ProtoMessage() {}

func (x *ExportSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSalesRequest.ProtoReflect.Descriptor instead.
func (*ExportSalesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{11}
}

func (x *ExportSalesRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *ExportSalesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportSalesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportSalesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSalesResponse) Reset() {
	*x = ExportSalesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSalesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSalesResponse) ProtoMessage() {}

func (x *ExportSalesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSalesResponse.ProtoReflect.Descriptor instead.
func (*ExportSalesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{12}
}

func (x *ExportSalesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Territory struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Territory) Reset() {
	*x = Territory{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Territory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Territory) ProtoMessage() {}

func (x *Territory) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Territory.ProtoReflect.Descriptor instead.
func (*Territory) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{13}
}

func (x *Territory) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Territory) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Area struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TerritoryId   string                 `protobuf:"bytes,2,opt,name=territory_id,json=territoryId,proto3" json:"territory_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Area) Reset() {
	*x = Area{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Area) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Area) ProtoMessage() {}

func (x *Area) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Area.ProtoReflect.Descriptor instead.
func (*Area) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{14}
}

func (x *Area) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Area) GetTerritoryId() string {
	if x != nil {
		return x.TerritoryId
	}
	return ""
}

func (x *Area) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Branch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AreaId        string                 `protobuf:"bytes,2,opt,name=area_id,json=areaId,proto3" json:"area_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Code          string                 `protobuf:"bytes,4,opt,name=code,proto3" json:"code,omitempty"`
	Active        bool                   `protobuf:"varint,5,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Branch) Reset() {
	*x = Branch{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Branch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Branch) ProtoMessage() {}

func (x *Branch) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Branch.ProtoReflect.Descriptor instead.
func (*Branch) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{15}
}

func (x *Branch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Branch) GetAreaId() string {
	if x != nil {
		return x.AreaId
	}
	return ""
}

func (x *Branch) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Branch) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Branch) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type ListTerritoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTerritoriesRequest) Reset() {
	*x = ListTerritoriesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTerritoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTerritoriesRequest) ProtoMessage() {}

func (x *ListTerritoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTerritoriesRequest.ProtoReflect.Descriptor instead.
func (*ListTerritoriesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{16}
}

type ListTerritoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Territories   []*Territory           `protobuf:"bytes,1,rep,name=territories,proto3" json:"territories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTerritoriesResponse) Reset() {
	*x = ListTerritoriesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTerritoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTerritoriesResponse) ProtoMessage() {}

func (x *ListTerritoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTerritoriesResponse.ProtoReflect.Descriptor instead.
func (*ListTerritoriesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{17}
}

func (x *ListTerritoriesResponse) GetTerritories() []*Territory {
	if x != nil {
		return x.Territories
	}
	return nil
}

type ListAreasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TerritoryId   string                 `protobuf:"bytes,1,opt,name=territory_id,json=territoryId,proto3" json:"territory_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAreasRequest) Reset() {
	*x = ListAreasRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAreasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAreasRequest) ProtoMessage() {}

func (x *ListAreasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAreasRequest.ProtoReflect.Descriptor instead.
func (*ListAreasRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{18}
}

func (x *ListAreasRequest) GetTerritoryId() string {
	if x != nil {
		return x.TerritoryId
	}
	return ""
}

type ListAreasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Areas         []*Area                `protobuf:"bytes,1,rep,name=areas,proto3" json:"areas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAreasResponse) Reset() {
	*x = ListAreasResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAreasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAreasResponse) ProtoMessage() {}

func (x *ListAreasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAreasResponse.ProtoReflect.Descriptor instead.
func (*ListAreasResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{19}
}

func (x *ListAreasResponse) GetAreas() []*Area {
	if x != nil {
		return x.Areas
	}
	return nil
}

type ListBranchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AreaId        string                 `protobuf:"bytes,1,opt,name=area_id,json=areaId,proto3" json:"area_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBranchesRequest) Reset() {
	*x = ListBranchesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBranchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBranchesRequest) ProtoMessage() {}

func (x *ListBranchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBranchesRequest.ProtoReflect.Descriptor instead.
func (*ListBranchesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{20}
}

func (x *ListBranchesRequest) GetAreaId() string {
	if x != nil {
		return x.AreaId
	}
	return ""
}

type ListBranchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Branches      []*Branch              `protobuf:"bytes,1,rep,name=branches,proto3" json:"branches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBranchesResponse) Reset() {
	*x = ListBranchesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBranchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBranchesResponse) ProtoMessage() {}

func (x *ListBranchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBranchesResponse.ProtoReflect.Descriptor instead.
func (*ListBranchesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{21}
}

func (x *ListBranchesResponse) GetBranches() []*Branch {
	if x != nil {
		return x.Branches
	}
	return nil
}

type CreateBranchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AreaId        string                 `protobuf:"bytes,1,opt,name=area_id,json=areaId,proto3" json:"area_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBranchRequest) Reset() {
	*x = CreateBranchRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBranchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBranchRequest) ProtoMessage() {}

func (x *CreateBranchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBranchRequest.ProtoReflect.Descriptor instead.
func (*CreateBranchRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{22}
}

func (x *CreateBranchRequest) GetAreaId() string {
	if x != nil {
		return x.AreaId
	}
	return ""
}

func (x *CreateBranchRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateBranchRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type CreateBranchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Branch        *Branch                `protobuf:"bytes,1,opt,name=branch,proto3" json:"branch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBranchResponse) Reset() {
	*x = CreateBranchResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBranchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBranchResponse) ProtoMessage() {}

func (x *CreateBranchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBranchResponse.ProtoReflect.Descriptor instead.
func (*CreateBranchResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{23}
}

func (x *CreateBranchResponse) GetBranch() *Branch {
	if x != nil {
		return x.Branch
	}
	return nil
}

type UploadBudgetSheetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	Month         string                 `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"`
	SheetJson     string                 `protobuf:"bytes,3,opt,name=sheet_json,json=sheetJson,proto3" json:"sheet_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadBudgetSheetRequest) Reset() {
	*x = UploadBudgetSheetRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBudgetSheetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBudgetSheetRequest) ProtoMessage() {}

func (x *UploadBudgetSheetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBudgetSheetRequest.ProtoReflect.Descriptor instead.
func (*UploadBudgetSheetRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{24}
}

func (x *UploadBudgetSheetRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *UploadBudgetSheetRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *UploadBudgetSheetRequest) GetSheetJson() string {
	if x != nil {
		return x.SheetJson
	}
	return ""
}

type UploadBudgetSheetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DaysSaved     int32                  `protobuf:"varint,1,opt,name=days_saved,json=daysSaved,proto3" json:"days_saved,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadBudgetSheetResponse) Reset() {
	*x = UploadBudgetSheetResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBudgetSheetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBudgetSheetResponse) ProtoMessage() {}

func (x *UploadBudgetSheetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBudgetSheetResponse.ProtoReflect.Descriptor instead.
func (*UploadBudgetSheetResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{25}
}

func (x *UploadBudgetSheetResponse) GetDaysSaved() int32 {
	if x != nil {
		return x.DaysSaved
	}
	return 0
}

type BudgetDay struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	BusinessDate     string                 `protobuf:"bytes,1,opt,name=business_date,json=businessDate,proto3" json:"business_date,omitempty"`
	Weekday          string                 `protobuf:"bytes,2,opt,name=weekday,proto3" json:"weekday,omitempty"`
	BudgetAmount     string                 `protobuf:"bytes,3,opt,name=budget_amount,json=budgetAmount,proto3" json:"budget_amount,omitempty"`
	BudgetGuestCount int32                  `protobuf:"varint,4,opt,name=budget_guest_count,json=budgetGuestCount,proto3" json:"budget_guest_count,omitempty"`
	LySales          string                 `protobuf:"bytes,5,opt,name=ly_sales,json=lySales,proto3" json:"ly_sales,omitempty"`
	LyGuestCount     int32                  `protobuf:"varint,6,opt,name=ly_guest_count,json=lyGuestCount,proto3" json:"ly_guest_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *BudgetDay) Reset() {
	*x = BudgetDay{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BudgetDay) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BudgetDay) ProtoMessage() {}

func (x *BudgetDay) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BudgetDay.ProtoReflect.Descriptor instead.
func (*BudgetDay) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{26}
}

func (x *BudgetDay) GetBusinessDate() string {
	if x != nil {
		return x.BusinessDate
	}
	return ""
}

func (x *BudgetDay) GetWeekday() string {
	if x != nil {
		return x.Weekday
	}
	return ""
}

func (x *BudgetDay) GetBudgetAmount() string {
	if x != nil {
		return x.BudgetAmount
	}
	return ""
}

func (x *BudgetDay) GetBudgetGuestCount() int32 {
	if x != nil {
		return x.BudgetGuestCount
	}
	return 0
}

func (x *BudgetDay) GetLySales() string {
	if x != nil {
		return x.LySales
	}
	return ""
}

func (x *BudgetDay) GetLyGuestCount() int32 {
	if x != nil {
		return x.LyGuestCount
	}
	return 0
}

type Advice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Priority      string                 `protobuf:"bytes,2,opt,name=priority,proto3" json:"priority,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Detail        string                 `protobuf:"bytes,4,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Advice) Reset() {
	*x = Advice{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Advice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Advice) ProtoMessage() {}

func (x *Advice) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Advice.ProtoReflect.Descriptor instead.
func (*Advice) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{27}
}

func (x *Advice) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Advice) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *Advice) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Advice) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

type GetDailyAdviceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDailyAdviceRequest) Reset() {
	*x = GetDailyAdviceRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDailyAdviceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyAdviceRequest) ProtoMessage() {}

func (x *GetDailyAdviceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyAdviceRequest.ProtoReflect.Descriptor instead.
func (*GetDailyAdviceRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{28}
}

func (x *GetDailyAdviceRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *GetDailyAdviceRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type GetDailyAdviceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Budget        *BudgetDay             `protobuf:"bytes,1,opt,name=budget,proto3" json:"budget,omitempty"`
	Advice        []*Advice              `protobuf:"bytes,2,rep,name=advice,proto3" json:"advice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDailyAdviceResponse) Reset() {
	*x = GetDailyAdviceResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDailyAdviceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyAdviceResponse) ProtoMessage() {}

func (x *GetDailyAdviceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyAdviceResponse.ProtoReflect.Descriptor instead.
func (*GetDailyAdviceResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{29}
}

func (x *GetDailyAdviceResponse) GetBudget() *BudgetDay {
	if x != nil {
		return x.Budget
	}
	return nil
}

func (x *GetDailyAdviceResponse) GetAdvice() []*Advice {
	if x != nil {
		return x.Advice
	}
	return nil
}

type Flavor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Seasonal      bool                   `protobuf:"varint,3,opt,name=seasonal,proto3" json:"seasonal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Flavor) Reset() {
	*x = Flavor{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Flavor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Flavor) ProtoMessage() {}

func (x *Flavor) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Flavor.ProtoReflect.Descriptor instead.
func (*Flavor) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{30}
}

func (x *Flavor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Flavor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Flavor) GetSeasonal() bool {
	if x != nil {
		return x.Seasonal
	}
	return false
}

type ListFlavorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFlavorsRequest) Reset() {
	*x = ListFlavorsRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFlavorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFlavorsRequest) ProtoMessage() {}

func (x *ListFlavorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFlavorsRequest.ProtoReflect.Descriptor instead.
func (*ListFlavorsRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{31}
}

type ListFlavorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flavors       []*Flavor              `protobuf:"bytes,1,rep,name=flavors,proto3" json:"flavors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFlavorsResponse) Reset() {
	*x = ListFlavorsResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFlavorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFlavorsResponse) ProtoMessage() {}

func (x *ListFlavorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFlavorsResponse.ProtoReflect.Descriptor instead.
func (*ListFlavorsResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{32}
}

func (x *ListFlavorsResponse) GetFlavors() []*Flavor {
	if x != nil {
		return x.Flavors
	}
	return nil
}

type CreateFlavorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Seasonal      bool                   `protobuf:"varint,2,opt,name=seasonal,proto3" json:"seasonal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFlavorRequest) Reset() {
	*x = CreateFlavorRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFlavorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFlavorRequest) ProtoMessage() {}

func (x *CreateFlavorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFlavorRequest.ProtoReflect.Descriptor instead.
func (*CreateFlavorRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{33}
}

func (x *CreateFlavorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFlavorRequest) GetSeasonal() bool {
	if x != nil {
		return x.Seasonal
	}
	return false
}

type CreateFlavorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flavor        *Flavor                `protobuf:"bytes,1,opt,name=flavor,proto3" json:"flavor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFlavorResponse) Reset() {
	*x = CreateFlavorResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFlavorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFlavorResponse) ProtoMessage() {}

func (x *CreateFlavorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFlavorResponse.ProtoReflect.Descriptor instead.
func (*CreateFlavorResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{34}
}

func (x *CreateFlavorResponse) GetFlavor() *Flavor {
	if x != nil {
		return x.Flavor
	}
	return nil
}

type RecordMovementRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	FlavorId      string                 `protobuf:"bytes,2,opt,name=flavor_id,json=flavorId,proto3" json:"flavor_id,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Quantity      int32                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Note          string                 `protobuf:"bytes,5,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordMovementRequest) Reset() {
	*x = RecordMovementRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordMovementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordMovementRequest) ProtoMessage() {}

func (x *RecordMovementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordMovementRequest.ProtoReflect.Descriptor instead.
func (*RecordMovementRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{35}
}

func (x *RecordMovementRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

func (x *RecordMovementRequest) GetFlavorId() string {
	if x != nil {
		return x.FlavorId
	}
	return ""
}

func (x *RecordMovementRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *RecordMovementRequest) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *RecordMovementRequest) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type RecordMovementResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MovementId    string                 `protobuf:"bytes,1,opt,name=movement_id,json=movementId,proto3" json:"movement_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordMovementResponse) Reset() {
	*x = RecordMovementResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordMovementResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordMovementResponse) ProtoMessage() {}

func (x *RecordMovementResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordMovementResponse.ProtoReflect.Descriptor instead.
func (*RecordMovementResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{36}
}

func (x *RecordMovementResponse) GetMovementId() string {
	if x != nil {
		return x.MovementId
	}
	return ""
}

type TubBalance struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FlavorId      string                 `protobuf:"bytes,1,opt,name=flavor_id,json=flavorId,proto3" json:"flavor_id,omitempty"`
	FlavorName    string                 `protobuf:"bytes,2,opt,name=flavor_name,json=flavorName,proto3" json:"flavor_name,omitempty"`
	OnHand        int32                  `protobuf:"varint,3,opt,name=on_hand,json=onHand,proto3" json:"on_hand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TubBalance) Reset() {
	*x = TubBalance{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TubBalance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TubBalance) ProtoMessage() {}

func (x *TubBalance) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TubBalance.ProtoReflect.Descriptor instead.
func (*TubBalance) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{37}
}

func (x *TubBalance) GetFlavorId() string {
	if x != nil {
		return x.FlavorId
	}
	return ""
}

func (x *TubBalance) GetFlavorName() string {
	if x != nil {
		return x.FlavorName
	}
	return ""
}

func (x *TubBalance) GetOnHand() int32 {
	if x != nil {
		return x.OnHand
	}
	return 0
}

type GetBalancesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BranchId      string                 `protobuf:"bytes,1,opt,name=branch_id,json=branchId,proto3" json:"branch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalancesRequest) Reset() {
	*x = GetBalancesRequest{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalancesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalancesRequest) ProtoMessage() {}

func (x *GetBalancesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalancesRequest.ProtoReflect.Descriptor instead.
func (*GetBalancesRequest) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{38}
}

func (x *GetBalancesRequest) GetBranchId() string {
	if x != nil {
		return x.BranchId
	}
	return ""
}

type GetBalancesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balances      []*TubBalance          `protobuf:"bytes,1,rep,name=balances,proto3" json:"balances,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalancesResponse) Reset() {
	*x = GetBalancesResponse{}
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalancesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalancesResponse) ProtoMessage() {}

func (x *GetBalancesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salestracker_v1_salestracker_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalancesResponse.ProtoReflect.Descriptor instead.
func (*GetBalancesResponse) Descriptor() ([]byte, []int) {
	return file_salestracker_v1_salestracker_proto_rawDescGZIP(), []int{39}
}

func (x *GetBalancesResponse) GetBalances() []*TubBalance {
	if x != nil {
		return x.Balances
	}
	return nil
}

var File_salestracker_v1_salestracker_proto protoreflect.FileDescriptor

const file_salestracker_v1_salestracker_proto_rawDesc = "" +
	"\n" +
	"\"salestracker/v1/salestracker.proto\x12\x0fsalestracker.v1\"\x8c\x01\n" +
	"\fCategoryLine\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\x12!\n" +
	"\fsales_amount\x18\x03 \x01(\tR\vsalesAmount\x12)\n" +
	"\x10contribution_pct\x18\x04 \x01(\tR\x0fcontributionPct\"\xcb\x01\n" +
	"\fSalesSummary\x12\x1f\n" +
	"\vgross_sales\x18\x01 \x01(\tR\n" +
	"grossSales\x12\x1b\n" +
	"\tnet_sales\x18\x02 \x01(\tR\bnetSales\x12\x1f\n" +
	"\vguest_count\x18\x03 \x01(\x05R\n" +
	"guestCount\x12\x1d\n" +
	"\n" +
	"cash_sales\x18\x04 \x01(\tR\tcashSales\x12=\n" +
	"\n" +
	"categories\x18\x05 \x03(\v2\x1d.salestracker.v1.CategoryLineR\n" +
	"categories\"^\n" +
	"\x13ParseReceiptRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12\x1f\n" +
	"\vbranch_name\x18\x03 \x01(\tR\n" +
	"branchName\"\xda\x01\n" +
	"\x14ParseReceiptResponse\x127\n" +
	"\asummary\x18\x01 \x01(\v2\x1d.salestracker.v1.SalesSummaryR\asummary\x12\x1d\n" +
	"\n" +
	"branch_raw\x18\x02 \x01(\tR\tbranchRaw\x12'\n" +
	"\x0fbranch_strategy\x18\x03 \x01(\tR\x0ebranchStrategy\x12!\n" +
	"\fbranch_match\x18\x04 \x01(\bR\vbranchMatch\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\"\x95\x04\n" +
	"\vSalesRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tbranch_id\x18\x02 \x01(\tR\bbranchId\x12#\n" +
	"\rbusiness_date\x18\x03 \x01(\tR\fbusinessDate\x12\x16\n" +
	"\x06window\x18\x04 \x01(\tR\x06window\x12\x12\n" +
	"\x04kind\x18\x05 \x01(\tR\x04kind\x12\x1f\n" +
	"\vgross_sales\x18\x06 \x01(\tR\n" +
	"grossSales\x12\x1b\n" +
	"\tnet_sales\x18\a \x01(\tR\bnetSales\x12\x1f\n" +
	"\vguest_count\x18\b \x01(\x05R\n" +
	"guestCount\x12\x1d\n" +
	"\n" +
	"cash_sales\x18\t \x01(\tR\tcashSales\x12=\n" +
	"\n" +
	"categories\x18\n" +
	" \x03(\v2\x1d.salestracker.v1.CategoryLineR\n" +
	"categories\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x123\n" +
	"\x15extraction_confidence\x18\f \x01(\x02R\x14extractionConfidence\x12\x1d\n" +
	"\n" +
	"branch_raw\x18\r \x01(\tR\tbranchRaw\x12!\n" +
	"\fbranch_match\x18\x0e \x01(\bR\vbranchMatch\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"\x96\x01\n" +
	"\x12SubmitSalesRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12#\n" +
	"\rbusiness_date\x18\x02 \x01(\tR\fbusinessDate\x12\x16\n" +
	"\x06window\x18\x03 \x01(\tR\x06window\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x12\n" +
	"\x04text\x18\x05 \x01(\tR\x04text\"\x86\x02\n" +
	"\x18SubmitManualSalesRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12#\n" +
	"\rbusiness_date\x18\x02 \x01(\tR\fbusinessDate\x12\x16\n" +
	"\x06window\x18\x03 \x01(\tR\x06window\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x1f\n" +
	"\vgross_sales\x18\x05 \x01(\tR\n" +
	"grossSales\x12\x1b\n" +
	"\tnet_sales\x18\x06 \x01(\tR\bnetSales\x12\x1f\n" +
	"\vguest_count\x18\a \x01(\x05R\n" +
	"guestCount\x12\x1d\n" +
	"\n" +
	"cash_sales\x18\b \x01(\tR\tcashSales\"K\n" +
	"\x13SubmitSalesResponse\x124\n" +
	"\x06record\x18\x01 \x01(\v2\x1c.salestracker.v1.SalesRecordR\x06record\"e\n" +
	"\x10ListSalesRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"1\n" +
	"\x12ListFlaggedRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\"K\n" +
	"\x11ListSalesResponse\x126\n" +
	"\arecords\x18\x01 \x03(\v2\x1c.salestracker.v1.SalesRecordR\arecords\"g\n" +
	"\x12ExportSalesRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\")\n" +
	"\x13ExportSalesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"/\n" +
	"\tTerritory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"M\n" +
	"\x04Area\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fterritory_id\x18\x02 \x01(\tR\vterritoryId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\"q\n" +
	"\x06Branch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aarea_id\x18\x02 \x01(\tR\x06areaId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04code\x18\x04 \x01(\tR\x04code\x12\x16\n" +
	"\x06active\x18\x05 \x01(\bR\x06active\"\x18\n" +
	"\x16ListTerritoriesRequest\"W\n" +
	"\x17ListTerritoriesResponse\x12<\n" +
	"\vterritories\x18\x01 \x03(\v2\x1a.salestracker.v1.TerritoryR\vterritories\"5\n" +
	"\x10ListAreasRequest\x12!\n" +
	"\fterritory_id\x18\x01 \x01(\tR\vterritoryId\"@\n" +
	"\x11ListAreasResponse\x12+\n" +
	"\x05areas\x18\x01 \x03(\v2\x15.salestracker.v1.AreaR\x05areas\".\n" +
	"\x13ListBranchesRequest\x12\x17\n" +
	"\aarea_id\x18\x01 \x01(\tR\x06areaId\"K\n" +
	"\x14ListBranchesResponse\x123\n" +
	"\bbranches\x18\x01 \x03(\v2\x17.salestracker.v1.BranchR\bbranches\"V\n" +
	"\x13CreateBranchRequest\x12\x17\n" +
	"\aarea_id\x18\x01 \x01(\tR\x06areaId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\"G\n" +
	"\x14CreateBranchResponse\x12/\n" +
	"\x06branch\x18\x01 \x01(\v2\x17.salestracker.v1.BranchR\x06branch\"l\n" +
	"\x18UploadBudgetSheetRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12\x14\n" +
	"\x05month\x18\x02 \x01(\tR\x05month\x12\x1d\n" +
	"\n" +
	"sheet_json\x18\x03 \x01(\tR\tsheetJson\":\n" +
	"\x19UploadBudgetSheetResponse\x12\x1d\n" +
	"\n" +
	"days_saved\x18\x01 \x01(\x05R\tdaysSaved\"\xde\x01\n" +
	"\tBudgetDay\x12#\n" +
	"\rbusiness_date\x18\x01 \x01(\tR\fbusinessDate\x12\x18\n" +
	"\aweekday\x18\x02 \x01(\tR\aweekday\x12#\n" +
	"\rbudget_amount\x18\x03 \x01(\tR\fbudgetAmount\x12,\n" +
	"\x12budget_guest_count\x18\x04 \x01(\x05R\x10budgetGuestCount\x12\x19\n" +
	"\bly_sales\x18\x05 \x01(\tR\alySales\x12$\n" +
	"\x0ely_guest_count\x18\x06 \x01(\x05R\flyGuestCount\"f\n" +
	"\x06Advice\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\tR\bpriority\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x16\n" +
	"\x06detail\x18\x04 \x01(\tR\x06detail\"H\n" +
	"\x15GetDailyAdviceRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\"}\n" +
	"\x16GetDailyAdviceResponse\x122\n" +
	"\x06budget\x18\x01 \x01(\v2\x1a.salestracker.v1.BudgetDayR\x06budget\x12/\n" +
	"\x06advice\x18\x02 \x03(\v2\x17.salestracker.v1.AdviceR\x06advice\"H\n" +
	"\x06Flavor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bseasonal\x18\x03 \x01(\bR\bseasonal\"\x14\n" +
	"\x12ListFlavorsRequest\"H\n" +
	"\x13ListFlavorsResponse\x121\n" +
	"\aflavors\x18\x01 \x03(\v2\x17.salestracker.v1.FlavorR\aflavors\"E\n" +
	"\x13CreateFlavorRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bseasonal\x18\x02 \x01(\bR\bseasonal\"G\n" +
	"\x14CreateFlavorResponse\x12/\n" +
	"\x06flavor\x18\x01 \x01(\v2\x17.salestracker.v1.FlavorR\x06flavor\"\x95\x01\n" +
	"\x15RecordMovementRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\x12\x1b\n" +
	"\tflavor_id\x18\x02 \x01(\tR\bflavorId\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x05R\bquantity\x12\x12\n" +
	"\x04note\x18\x05 \x01(\tR\x04note\"9\n" +
	"\x16RecordMovementResponse\x12\x1f\n" +
	"\vmovement_id\x18\x01 \x01(\tR\n" +
	"movementId\"c\n" +
	"\n" +
	"TubBalance\x12\x1b\n" +
	"\tflavor_id\x18\x01 \x01(\tR\bflavorId\x12\x1f\n" +
	"\vflavor_name\x18\x02 \x01(\tR\n" +
	"flavorName\x12\x17\n" +
	"\aon_hand\x18\x03 \x01(\x05R\x06onHand\"1\n" +
	"\x12GetBalancesRequest\x12\x1b\n" +
	"\tbranch_id\x18\x01 \x01(\tR\bbranchId\"N\n" +
	"\x13GetBalancesResponse\x127\n" +
	"\bbalances\x18\x01 \x03(\v2\x1b.salestracker.v1.TubBalanceR\bbalances2p\n" +
	"\x11ExtractionService\x12[\n" +
	"\fParseReceipt\x12$.salestracker.v1.ParseReceiptRequest\x1a%.salestracker.v1.ParseReceiptResponse2\xd4\x03\n" +
	"\fSalesService\x12X\n" +
	"\vSubmitSales\x12#.salestracker.v1.SubmitSalesRequest\x1a$.salestracker.v1.SubmitSalesResponse\x12d\n" +
	"\x11SubmitManualSales\x12).salestracker.v1.SubmitManualSalesRequest\x1a$.salestracker.v1.SubmitSalesResponse\x12R\n" +
	"\tListSales\x12!.salestracker.v1.ListSalesRequest\x1a\".salestracker.v1.ListSalesResponse\x12V\n" +
	"\vListFlagged\x12#.salestracker.v1.ListFlaggedRequest\x1a\".salestracker.v1.ListSalesResponse\x12X\n" +
	"\vExportSales\x12#.salestracker.v1.ExportSalesRequest\x1a$.salestracker.v1.ExportSalesResponse2\x85\x03\n" +
	"\x0fBranchesService\x12d\n" +
	"\x0fListTerritories\x12'.salestracker.v1.ListTerritoriesRequest\x1a(.salestracker.v1.ListTerritoriesResponse\x12R\n" +
	"\tListAreas\x12!.salestracker.v1.ListAreasRequest\x1a\".salestracker.v1.ListAreasResponse\x12[\n" +
	"\fListBranches\x12$.salestracker.v1.ListBranchesRequest\x1a%.salestracker.v1.ListBranchesResponse\x12[\n" +
	"\fCreateBranch\x12$.salestracker.v1.CreateBranchRequest\x1a%.salestracker.v1.CreateBranchResponse2\xde\x01\n" +
	"\rBudgetService\x12j\n" +
	"\x11UploadBudgetSheet\x12).salestracker.v1.UploadBudgetSheetRequest\x1a*.salestracker.v1.UploadBudgetSheetResponse\x12a\n" +
	"\x0eGetDailyAdvice\x12&.salestracker.v1.GetDailyAdviceRequest\x1a'.salestracker.v1.GetDailyAdviceResponse2\x86\x03\n" +
	"\x10InventoryService\x12X\n" +
	"\vListFlavors\x12#.salestracker.v1.ListFlavorsRequest\x1a$.salestracker.v1.ListFlavorsResponse\x12[\n" +
	"\fCreateFlavor\x12$.salestracker.v1.CreateFlavorRequest\x1a%.salestracker.v1.CreateFlavorResponse\x12a\n" +
	"\x0eRecordMovement\x12&.salestracker.v1.RecordMovementRequest\x1a'.salestracker.v1.RecordMovementResponse\x12X\n" +
	"\vGetBalances\x12#.salestracker.v1.GetBalancesRequest\x1a$.salestracker.v1.GetBalancesResponseB7Z5salestracker/gen/proto/salestracker/v1;salestrackerv1b\x06proto3"

var (
	file_salestracker_v1_salestracker_proto_rawDescOnce sync.Once
	file_salestracker_v1_salestracker_proto_rawDescData []byte
)

func file_salestracker_v1_salestracker_proto_rawDescGZIP() []byte {
	file_salestracker_v1_salestracker_proto_rawDescOnce.Do(func() {
		file_salestracker_v1_salestracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_salestracker_v1_salestracker_proto_rawDesc), len(file_salestracker_v1_salestracker_proto_rawDesc)))
	})
	return file_salestracker_v1_salestracker_proto_rawDescData
}

var file_salestracker_v1_salestracker_proto_msgTypes = make([]protoimpl.MessageInfo, 40)
var file_salestracker_v1_salestracker_proto_goTypes = []any{
	(*CategoryLine)(nil),              // 0: salestracker.v1.CategoryLine
	(*SalesSummary)(nil),              // 1: salestracker.v1.SalesSummary
	(*ParseReceiptRequest)(nil),       // 2: salestracker.v1.ParseReceiptRequest
	(*ParseReceiptResponse)(nil),      // 3: salestracker.v1.ParseReceiptResponse
	(*SalesRecord)(nil),               // 4: salestracker.v1.SalesRecord
	(*SubmitSalesRequest)(nil),        // 5: salestracker.v1.SubmitSalesRequest
	(*SubmitManualSalesRequest)(nil),  // 6: salestracker.v1.SubmitManualSalesRequest
	(*SubmitSalesResponse)(nil),       // 7: salestracker.v1.SubmitSalesResponse
	(*ListSalesRequest)(nil),          // 8: salestracker.v1.ListSalesRequest
	(*ListFlaggedRequest)(nil),        // 9: salestracker.v1.ListFlaggedRequest
	(*ListSalesResponse)(nil),         // 10: salestracker.v1.ListSalesResponse
	(*ExportSalesRequest)(nil),        // 11: salestracker.v1.ExportSalesRequest
	(*ExportSalesResponse)(nil),       // 12: salestracker.v1.ExportSalesResponse
	(*Territory)(nil),                 // 13: salestracker.v1.Territory
	(*Area)(nil),                      // 14: salestracker.v1.Area
	(*Branch)(nil),                    // 15: salestracker.v1.Branch
	(*ListTerritoriesRequest)(nil),    // 16: salestracker.v1.ListTerritoriesRequest
	(*ListTerritoriesResponse)(nil),   // 17: salestracker.v1.ListTerritoriesResponse
	(*ListAreasRequest)(nil),          // 18: salestracker.v1.ListAreasRequest
	(*ListAreasResponse)(nil),         // 19: salestracker.v1.ListAreasResponse
	(*ListBranchesRequest)(nil),       // 20: salestracker.v1.ListBranchesRequest
	(*ListBranchesResponse)(nil),      // 21: salestracker.v1.ListBranchesResponse
	(*CreateBranchRequest)(nil),       // 22: salestracker.v1.CreateBranchRequest
	(*CreateBranchResponse)(nil),      // 23: salestracker.v1.CreateBranchResponse
	(*UploadBudgetSheetRequest)(nil),  // 24: salestracker.v1.UploadBudgetSheetRequest
	(*UploadBudgetSheetResponse)(nil), // 25: salestracker.v1.UploadBudgetSheetResponse
	(*BudgetDay)(nil),                 // 26: salestracker.v1.BudgetDay
	(*Advice)(nil),                    // 27: salestracker.v1.Advice
	(*GetDailyAdviceRequest)(nil),     // 28: salestracker.v1.GetDailyAdviceRequest
	(*GetDailyAdviceResponse)(nil),    // 29: salestracker.v1.GetDailyAdviceResponse
	(*Flavor)(nil),                    // 30: salestracker.v1.Flavor
	(*ListFlavorsRequest)(nil),        // 31: salestracker.v1.ListFlavorsRequest
	(*ListFlavorsResponse)(nil),       // 32: salestracker.v1.ListFlavorsResponse
	(*CreateFlavorRequest)(nil),       // 33: salestracker.v1.CreateFlavorRequest
	(*CreateFlavorResponse)(nil),      // 34: salestracker.v1.CreateFlavorResponse
	(*RecordMovementRequest)(nil),     // 35: salestracker.v1.RecordMovementRequest
	(*RecordMovementResponse)(nil),    // 36: salestracker.v1.RecordMovementResponse
	(*TubBalance)(nil),                // 37: salestracker.v1.TubBalance
	(*GetBalancesRequest)(nil),        // 38: salestracker.v1.GetBalancesRequest
	(*GetBalancesResponse)(nil),       // 39: salestracker.v1.GetBalancesResponse
}
var file_salestracker_v1_salestracker_proto_depIdxs = []int32{
	0,  // 0: salestracker.v1.SalesSummary.categories:type_name -> salestracker.v1.CategoryLine
	1,  // 1: salestracker.v1.ParseReceiptResponse.summary:type_name -> salestracker.v1.SalesSummary
	0,  // 2: salestracker.v1.SalesRecord.categories:type_name -> salestracker.v1.CategoryLine
	4,  // 3: salestracker.v1.SubmitSalesResponse.record:type_name -> salestracker.v1.SalesRecord
	4,  // 4: salestracker.v1.ListSalesResponse.records:type_name -> salestracker.v1.SalesRecord
	13, // 5: salestracker.v1.ListTerritoriesResponse.territories:type_name -> salestracker.v1.Territory
	14, // 6: salestracker.v1.ListAreasResponse.areas:type_name -> salestracker.v1.Area
	15, // 7: salestracker.v1.ListBranchesResponse.branches:type_name -> salestracker.v1.Branch
	15, // 8: salestracker.v1.CreateBranchResponse.branch:type_name -> salestracker.v1.Branch
	26, // 9: salestracker.v1.GetDailyAdviceResponse.budget:type_name -> salestracker.v1.BudgetDay
	27, // 10: salestracker.v1.GetDailyAdviceResponse.advice:type_name -> salestracker.v1.Advice
	30, // 11: salestracker.v1.ListFlavorsResponse.flavors:type_name -> salestracker.v1.Flavor
	30, // 12: salestracker.v1.CreateFlavorResponse.flavor:type_name -> salestracker.v1.Flavor
	37, // 13: salestracker.v1.GetBalancesResponse.balances:type_name -> salestracker.v1.TubBalance
	2,  // 14: salestracker.v1.ExtractionService.ParseReceipt:input_type -> salestracker.v1.ParseReceiptRequest
	5,  // 15: salestracker.v1.SalesService.SubmitSales:input_type -> salestracker.v1.SubmitSalesRequest
	6,  // 16: salestracker.v1.SalesService.SubmitManualSales:input_type -> salestracker.v1.SubmitManualSalesRequest
	8,  // 17: salestracker.v1.SalesService.ListSales:input_type -> salestracker.v1.ListSalesRequest
	9,  // 18: salestracker.v1.SalesService.ListFlagged:input_type -> salestracker.v1.ListFlaggedRequest
	11, // 19: salestracker.v1.SalesService.ExportSales:input_type -> salestracker.v1.ExportSalesRequest
	16, // 20: salestracker.v1.BranchesService.ListTerritories:input_type -> salestracker.v1.ListTerritoriesRequest
	18, // 21: salestracker.v1.BranchesService.ListAreas:input_type -> salestracker.v1.ListAreasRequest
	20, // 22: salestracker.v1.BranchesService.ListBranches:input_type -> salestracker.v1.ListBranchesRequest
	22, // 23: salestracker.v1.BranchesService.CreateBranch:input_type -> salestracker.v1.CreateBranchRequest
	24, // 24: salestracker.v1.BudgetService.UploadBudgetSheet:input_type -> salestracker.v1.UploadBudgetSheetRequest
	28, // 25: salestracker.v1.BudgetService.GetDailyAdvice:input_type -> salestracker.v1.GetDailyAdviceRequest
	31, // 26: salestracker.v1.InventoryService.ListFlavors:input_type -> salestracker.v1.ListFlavorsRequest
	33, // 27: salestracker.v1.InventoryService.CreateFlavor:input_type -> salestracker.v1.CreateFlavorRequest
	35, // 28: salestracker.v1.InventoryService.RecordMovement:input_type -> salestracker.v1.RecordMovementRequest
	38, // 29: salestracker.v1.InventoryService.GetBalances:input_type -> salestracker.v1.GetBalancesRequest
	3,  // 30: salestracker.v1.ExtractionService.ParseReceipt:output_type -> salestracker.v1.ParseReceiptResponse
	7,  // 31: salestracker.v1.SalesService.SubmitSales:output_type -> salestracker.v1.SubmitSalesResponse
	7,  // 32: salestracker.v1.SalesService.SubmitManualSales:output_type -> salestracker.v1.SubmitSalesResponse
	10, // 33: salestracker.v1.SalesService.ListSales:output_type -> salestracker.v1.ListSalesResponse
	10, // 34: salestracker.v1.SalesService.ListFlagged:output_type -> salestracker.v1.ListSalesResponse
	12, // 35: salestracker.v1.SalesService.ExportSales:output_type -> salestracker.v1.ExportSalesResponse
	17, // 36: salestracker.v1.BranchesService.ListTerritories:output_type -> salestracker.v1.ListTerritoriesResponse
	19, // 37: salestracker.v1.BranchesService.ListAreas:output_type -> salestracker.v1.ListAreasResponse
	21, // 38: salestracker.v1.BranchesService.ListBranches:output_type -> salestracker.v1.ListBranchesResponse
	23, // 39: salestracker.v1.BranchesService.CreateBranch:output_type -> salestracker.v1.CreateBranchResponse
	25, // 40: salestracker.v1.BudgetService.UploadBudgetSheet:output_type -> salestracker.v1.UploadBudgetSheetResponse
	29, // 41: salestracker.v1.BudgetService.GetDailyAdvice:output_type -> salestracker.v1.GetDailyAdviceResponse
	32, // 42: salestracker.v1.InventoryService.ListFlavors:output_type -> salestracker.v1.ListFlavorsResponse
	34, // 43: salestracker.v1.InventoryService.CreateFlavor:output_type -> salestracker.v1.CreateFlavorResponse
	36, // 44: salestracker.v1.InventoryService.RecordMovement:output_type -> salestracker.v1.RecordMovementResponse
	39, // 45: salestracker.v1.InventoryService.GetBalances:output_type -> salestracker.v1.GetBalancesResponse
	30, // [30:46] is the sub-list for method output_type
	14, // [14:30] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_salestracker_v1_salestracker_proto_init() }
func file_salestracker_v1_salestracker_proto_init() {
	if File_salestracker_v1_salestracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_salestracker_v1_salestracker_proto_rawDesc), len(file_salestracker_v1_salestracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   40,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_salestracker_v1_salestracker_proto_goTypes,
		DependencyIndexes: file_salestracker_v1_salestracker_proto_depIdxs,
		MessageInfos:      file_salestracker_v1_salestracker_proto_msgTypes,
	}.Build()
	File_salestracker_v1_salestracker_proto = out.File
	file_salestracker_v1_salestracker_proto_goTypes = nil
	file_salestracker_v1_salestracker_proto_depIdxs = nil
}
