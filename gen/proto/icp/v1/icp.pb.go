// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: icp/v1/icp.proto

package icpv1

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

// Tank is an aquarium that reports are filed against.
type Tank struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	VolumeLiters  float64                `protobuf:"fixed64,3,opt,name=volume_liters,json=volumeLiters,proto3" json:"volume_liters,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Tank) Reset() {
	*x = Tank{}
	mi := &file_icp_v1_icp_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Tank) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Tank) ProtoMessage() {}

func (x *Tank) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Tank.ProtoReflect.Descriptor instead.
func (*Tank) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{0}
}

func (x *Tank) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Tank) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Tank) GetVolumeLiters() float64 {
	if x != nil {
		return x.VolumeLiters
	}
	return 0
}

func (x *Tank) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Tank) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Tank) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// TestSummary is the list-view projection of one stored test record.
// The full record (all element readings and narrative) travels as
// record_json in GetTestResponse.
type TestSummary struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TankId             string                 `protobuf:"bytes,2,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	TestDate           string                 `protobuf:"bytes,3,opt,name=test_date,json=testDate,proto3" json:"test_date,omitempty"` // YYYY-MM-DD
	LabName            string                 `protobuf:"bytes,4,opt,name=lab_name,json=labName,proto3" json:"lab_name,omitempty"`
	WaterType          string                 `protobuf:"bytes,5,opt,name=water_type,json=waterType,proto3" json:"water_type,omitempty"`
	TestId             string                 `protobuf:"bytes,6,opt,name=test_id,json=testId,proto3" json:"test_id,omitempty"`
	ScoreMajorElements int32                  `protobuf:"varint,7,opt,name=score_major_elements,json=scoreMajorElements,proto3" json:"score_major_elements,omitempty"`
	ScoreMinorElements int32                  `protobuf:"varint,8,opt,name=score_minor_elements,json=scoreMinorElements,proto3" json:"score_minor_elements,omitempty"`
	ScorePollutants    int32                  `protobuf:"varint,9,opt,name=score_pollutants,json=scorePollutants,proto3" json:"score_pollutants,omitempty"`
	ScoreBaseElements  int32                  `protobuf:"varint,10,opt,name=score_base_elements,json=scoreBaseElements,proto3" json:"score_base_elements,omitempty"`
	ScoreOverall       int32                  `protobuf:"varint,11,opt,name=score_overall,json=scoreOverall,proto3" json:"score_overall,omitempty"`
	PdfFilename        string                 `protobuf:"bytes,12,opt,name=pdf_filename,json=pdfFilename,proto3" json:"pdf_filename,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *TestSummary) Reset() {
	*x = TestSummary{}
	mi := &file_icp_v1_icp_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestSummary) ProtoMessage() {}

func (x *TestSummary) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestSummary.ProtoReflect.Descriptor instead.
func (*TestSummary) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{1}
}

func (x *TestSummary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TestSummary) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *TestSummary) GetTestDate() string {
	if x != nil {
		return x.TestDate
	}
	return ""
}

func (x *TestSummary) GetLabName() string {
	if x != nil {
		return x.LabName
	}
	return ""
}

func (x *TestSummary) GetWaterType() string {
	if x != nil {
		return x.WaterType
	}
	return ""
}

func (x *TestSummary) GetTestId() string {
	if x != nil {
		return x.TestId
	}
	return ""
}

func (x *TestSummary) GetScoreMajorElements() int32 {
	if x != nil {
		return x.ScoreMajorElements
	}
	return 0
}

func (x *TestSummary) GetScoreMinorElements() int32 {
	if x != nil {
		return x.ScoreMinorElements
	}
	return 0
}

func (x *TestSummary) GetScorePollutants() int32 {
	if x != nil {
		return x.ScorePollutants
	}
	return 0
}

func (x *TestSummary) GetScoreBaseElements() int32 {
	if x != nil {
		return x.ScoreBaseElements
	}
	return 0
}

func (x *TestSummary) GetScoreOverall() int32 {
	if x != nil {
		return x.ScoreOverall
	}
	return 0
}

func (x *TestSummary) GetPdfFilename() string {
	if x != nil {
		return x.PdfFilename
	}
	return ""
}

func (x *TestSummary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateTankRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	VolumeLiters  float64                `protobuf:"fixed64,2,opt,name=volume_liters,json=volumeLiters,proto3" json:"volume_liters,omitempty"` // 0 = unknown
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTankRequest) Reset() {
	*x = CreateTankRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTankRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTankRequest) ProtoMessage() {}

func (x *CreateTankRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTankRequest.ProtoReflect.Descriptor instead.
func (*CreateTankRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{2}
}

func (x *CreateTankRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTankRequest) GetVolumeLiters() float64 {
	if x != nil {
		return x.VolumeLiters
	}
	return 0
}

func (x *CreateTankRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateTankResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tank          *Tank                  `protobuf:"bytes,1,opt,name=tank,proto3" json:"tank,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTankResponse) Reset() {
	*x = CreateTankResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTankResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTankResponse) ProtoMessage() {}

func (x *CreateTankResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTankResponse.ProtoReflect.Descriptor instead.
func (*CreateTankResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{3}
}

func (x *CreateTankResponse) GetTank() *Tank {
	if x != nil {
		return x.Tank
	}
	return nil
}

type ListTanksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTanksRequest) Reset() {
	*x = ListTanksRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTanksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTanksRequest) ProtoMessage() {}

func (x *ListTanksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTanksRequest.ProtoReflect.Descriptor instead.
func (*ListTanksRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{4}
}

type ListTanksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tanks         []*Tank                `protobuf:"bytes,1,rep,name=tanks,proto3" json:"tanks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTanksResponse) Reset() {
	*x = ListTanksResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTanksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTanksResponse) ProtoMessage() {}

func (x *ListTanksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTanksResponse.ProtoReflect.Descriptor instead.
func (*ListTanksResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{5}
}

func (x *ListTanksResponse) GetTanks() []*Tank {
	if x != nil {
		return x.Tanks
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{6}
}

func (x *IngestFileRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{7}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{9}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

// ParseJob reports the pipeline lifecycle of one ingested file.
type ParseJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	TankId        string                 `protobuf:"bytes,3,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	Format        string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // QUEUED | RUNNING | TEXT_OK | PARSED | FAILED
	ErrorMessage  string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Pages         int32                  `protobuf:"varint,7,opt,name=pages,proto3" json:"pages,omitempty"`
	RecordsCount  int32                  `protobuf:"varint,8,opt,name=records_count,json=recordsCount,proto3" json:"records_count,omitempty"`
	StartedAt     string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJob) Reset() {
	*x = ParseJob{}
	mi := &file_icp_v1_icp_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJob) ProtoMessage() {}

func (x *ParseJob) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJob.ProtoReflect.Descriptor instead.
func (*ParseJob) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{10}
}

func (x *ParseJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ParseJob) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *ParseJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ParseJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ParseJob) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ParseJob) GetRecordsCount() int32 {
	if x != nil {
		return x.RecordsCount
	}
	return 0
}

func (x *ParseJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{11}
}

func (x *ListJobsRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ParseJob            `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{12}
}

func (x *ListJobsResponse) GetJobs() []*ParseJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ListTestsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTestsRequest) Reset() {
	*x = ListTestsRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTestsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTestsRequest) ProtoMessage() {}

func (x *ListTestsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTestsRequest.ProtoReflect.Descriptor instead.
func (*ListTestsRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{13}
}

func (x *ListTestsRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *ListTestsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListTestsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListTestsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tests         []*TestSummary         `protobuf:"bytes,1,rep,name=tests,proto3" json:"tests,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTestsResponse) Reset() {
	*x = ListTestsResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTestsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTestsResponse) ProtoMessage() {}

func (x *ListTestsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTestsResponse.ProtoReflect.Descriptor instead.
func (*ListTestsResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{14}
}

func (x *ListTestsResponse) GetTests() []*TestSummary {
	if x != nil {
		return x.Tests
	}
	return nil
}

type GetTestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTestRequest) Reset() {
	*x = GetTestRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTestRequest) ProtoMessage() {}

func (x *GetTestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTestRequest.ProtoReflect.Descriptor instead.
func (*GetTestRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{15}
}

func (x *GetTestRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTestResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Test  *TestSummary           `protobuf:"bytes,1,opt,name=test,proto3" json:"test,omitempty"`
	// Full parsed record as JSON (element values, statuses, narrative).
	RecordJson    []byte `protobuf:"bytes,2,opt,name=record_json,json=recordJson,proto3" json:"record_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTestResponse) Reset() {
	*x = GetTestResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTestResponse) ProtoMessage() {}

func (x *GetTestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTestResponse.ProtoReflect.Descriptor instead.
func (*GetTestResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{16}
}

func (x *GetTestResponse) GetTest() *TestSummary {
	if x != nil {
		return x.Test
	}
	return nil
}

func (x *GetTestResponse) GetRecordJson() []byte {
	if x != nil {
		return x.RecordJson
	}
	return nil
}

type GetLatestTestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestTestRequest) Reset() {
	*x = GetLatestTestRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestTestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestTestRequest) ProtoMessage() {}

func (x *GetLatestTestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestTestRequest.ProtoReflect.Descriptor instead.
func (*GetLatestTestRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{17}
}

func (x *GetLatestTestRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

type DeleteTestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTestRequest) Reset() {
	*x = DeleteTestRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTestRequest) ProtoMessage() {}

func (x *DeleteTestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTestRequest.ProtoReflect.Descriptor instead.
func (*DeleteTestRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteTestRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteTestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTestResponse) Reset() {
	*x = DeleteTestResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTestResponse) ProtoMessage() {}

func (x *DeleteTestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTestResponse.ProtoReflect.Descriptor instead.
func (*DeleteTestResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{19}
}

type ExportTestsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TankId        string                 `protobuf:"bytes,1,opt,name=tank_id,json=tankId,proto3" json:"tank_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTestsRequest) Reset() {
	*x = ExportTestsRequest{}
	mi := &file_icp_v1_icp_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTestsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTestsRequest) ProtoMessage() {}

func (x *ExportTestsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTestsRequest.ProtoReflect.Descriptor instead.
func (*ExportTestsRequest) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{20}
}

func (x *ExportTestsRequest) GetTankId() string {
	if x != nil {
		return x.TankId
	}
	return ""
}

func (x *ExportTestsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTestsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportTestsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTestsResponse) Reset() {
	*x = ExportTestsResponse{}
	mi := &file_icp_v1_icp_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTestsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTestsResponse) ProtoMessage() {}

func (x *ExportTestsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_icp_v1_icp_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTestsResponse.ProtoReflect.Descriptor instead.
func (*ExportTestsResponse) Descriptor() ([]byte, []int) {
	return file_icp_v1_icp_proto_rawDescGZIP(), []int{21}
}

func (x *ExportTestsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_icp_v1_icp_proto protoreflect.FileDescriptor

const file_icp_v1_icp_proto_rawDesc = "" +
	"\n" +
	"\x10icp/v1/icp.proto\x12\x06icp.v1\"\xaf\x01\n" +
	"\x04Tank\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rvolume_liters\x18\x03 \x01(\x01R\fvolumeLiters\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xcc\x03\n" +
	"\vTestSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\atank_id\x18\x02 \x01(\tR\x06tankId\x12\x1b\n" +
	"\ttest_date\x18\x03 \x01(\tR\btestDate\x12\x19\n" +
	"\blab_name\x18\x04 \x01(\tR\alabName\x12\x1d\n" +
	"\n" +
	"water_type\x18\x05 \x01(\tR\twaterType\x12\x17\n" +
	"\atest_id\x18\x06 \x01(\tR\x06testId\x120\n" +
	"\x14score_major_elements\x18\a \x01(\x05R\x12scoreMajorElements\x120\n" +
	"\x14score_minor_elements\x18\b \x01(\x05R\x12scoreMinorElements\x12)\n" +
	"\x10score_pollutants\x18\t \x01(\x05R\x0fscorePollutants\x12.\n" +
	"\x13score_base_elements\x18\n" +
	" \x01(\x05R\x11scoreBaseElements\x12#\n" +
	"\rscore_overall\x18\v \x01(\x05R\fscoreOverall\x12!\n" +
	"\fpdf_filename\x18\f \x01(\tR\vpdfFilename\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"n\n" +
	"\x11CreateTankRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rvolume_liters\x18\x02 \x01(\x01R\fvolumeLiters\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"6\n" +
	"\x12CreateTankResponse\x12 \n" +
	"\x04tank\x18\x01 \x01(\v2\f.icp.v1.TankR\x04tank\"\x12\n" +
	"\x10ListTanksRequest\"7\n" +
	"\x11ListTanksResponse\x12\"\n" +
	"\x05tanks\x18\x01 \x03(\v2\f.icp.v1.TankR\x05tanks\"@\n" +
	"\x11IngestFileRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"o\n" +
	"\x16IngestDirectoryRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xd9\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x120\n" +
	"\aresults\x18\x06 \x03(\v2\x16.icp.v1.IngestResponseR\aresults\"\x9c\x02\n" +
	"\bParseJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x17\n" +
	"\atank_id\x18\x03 \x01(\tR\x06tankId\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x14\n" +
	"\x05pages\x18\a \x01(\x05R\x05pages\x12#\n" +
	"\rrecords_count\x18\b \x01(\x05R\frecordsCount\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"*\n" +
	"\x0fListJobsRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\"8\n" +
	"\x10ListJobsResponse\x12$\n" +
	"\x04jobs\x18\x01 \x03(\v2\x10.icp.v1.ParseJobR\x04jobs\"a\n" +
	"\x10ListTestsRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\">\n" +
	"\x11ListTestsResponse\x12)\n" +
	"\x05tests\x18\x01 \x03(\v2\x13.icp.v1.TestSummaryR\x05tests\" \n" +
	"\x0eGetTestRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"[\n" +
	"\x0fGetTestResponse\x12'\n" +
	"\x04test\x18\x01 \x01(\v2\x13.icp.v1.TestSummaryR\x04test\x12\x1f\n" +
	"\vrecord_json\x18\x02 \x01(\fR\n" +
	"recordJson\"/\n" +
	"\x14GetLatestTestRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\"#\n" +
	"\x11DeleteTestRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x14\n" +
	"\x12DeleteTestResponse\"c\n" +
	"\x12ExportTestsRequest\x12\x17\n" +
	"\atank_id\x18\x01 \x01(\tR\x06tankId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\")\n" +
	"\x13ExportTestsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x95\x01\n" +
	"\fTanksService\x12C\n" +
	"\n" +
	"CreateTank\x12\x19.icp.v1.CreateTankRequest\x1a\x1a.icp.v1.CreateTankResponse\x12@\n" +
	"\tListTanks\x12\x18.icp.v1.ListTanksRequest\x1a\x19.icp.v1.ListTanksResponse2\xe6\x01\n" +
	"\x10IngestionService\x12?\n" +
	"\n" +
	"IngestFile\x12\x19.icp.v1.IngestFileRequest\x1a\x16.icp.v1.IngestResponse\x12R\n" +
	"\x0fIngestDirectory\x12\x1e.icp.v1.IngestDirectoryRequest\x1a\x1f.icp.v1.IngestDirectoryResponse\x12=\n" +
	"\bListJobs\x12\x17.icp.v1.ListJobsRequest\x1a\x18.icp.v1.ListJobsResponse2\xe1\x02\n" +
	"\fTestsService\x12@\n" +
	"\tListTests\x12\x18.icp.v1.ListTestsRequest\x1a\x19.icp.v1.ListTestsResponse\x12:\n" +
	"\aGetTest\x12\x16.icp.v1.GetTestRequest\x1a\x17.icp.v1.GetTestResponse\x12F\n" +
	"\rGetLatestTest\x12\x1c.icp.v1.GetLatestTestRequest\x1a\x17.icp.v1.GetTestResponse\x12C\n" +
	"\n" +
	"DeleteTest\x12\x19.icp.v1.DeleteTestRequest\x1a\x1a.icp.v1.DeleteTestResponse\x12F\n" +
	"\vExportTests\x12\x1a.icp.v1.ExportTestsRequest\x1a\x1b.icp.v1.ExportTestsResponseB9Z7github.com/reefwatch/icp-tracker/gen/proto/icp/v1;icpv1b\x06proto3"

var (
	file_icp_v1_icp_proto_rawDescOnce sync.Once
	file_icp_v1_icp_proto_rawDescData []byte
)

func file_icp_v1_icp_proto_rawDescGZIP() []byte {
	file_icp_v1_icp_proto_rawDescOnce.Do(func() {
		file_icp_v1_icp_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_icp_v1_icp_proto_rawDesc), len(file_icp_v1_icp_proto_rawDesc)))
	})
	return file_icp_v1_icp_proto_rawDescData
}

var file_icp_v1_icp_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_icp_v1_icp_proto_goTypes = []any{
	(*Tank)(nil),                    // 0: icp.v1.Tank
	(*TestSummary)(nil),             // 1: icp.v1.TestSummary
	(*CreateTankRequest)(nil),       // 2: icp.v1.CreateTankRequest
	(*CreateTankResponse)(nil),      // 3: icp.v1.CreateTankResponse
	(*ListTanksRequest)(nil),        // 4: icp.v1.ListTanksRequest
	(*ListTanksResponse)(nil),       // 5: icp.v1.ListTanksResponse
	(*IngestFileRequest)(nil),       // 6: icp.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 7: icp.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 8: icp.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 9: icp.v1.IngestDirectoryResponse
	(*ParseJob)(nil),                // 10: icp.v1.ParseJob
	(*ListJobsRequest)(nil),         // 11: icp.v1.ListJobsRequest
	(*ListJobsResponse)(nil),        // 12: icp.v1.ListJobsResponse
	(*ListTestsRequest)(nil),        // 13: icp.v1.ListTestsRequest
	(*ListTestsResponse)(nil),       // 14: icp.v1.ListTestsResponse
	(*GetTestRequest)(nil),          // 15: icp.v1.GetTestRequest
	(*GetTestResponse)(nil),         // 16: icp.v1.GetTestResponse
	(*GetLatestTestRequest)(nil),    // 17: icp.v1.GetLatestTestRequest
	(*DeleteTestRequest)(nil),       // 18: icp.v1.DeleteTestRequest
	(*DeleteTestResponse)(nil),      // 19: icp.v1.DeleteTestResponse
	(*ExportTestsRequest)(nil),      // 20: icp.v1.ExportTestsRequest
	(*ExportTestsResponse)(nil),     // 21: icp.v1.ExportTestsResponse
}
var file_icp_v1_icp_proto_depIdxs = []int32{
	0,  // 0: icp.v1.CreateTankResponse.tank:type_name -> icp.v1.Tank
	0,  // 1: icp.v1.ListTanksResponse.tanks:type_name -> icp.v1.Tank
	7,  // 2: icp.v1.IngestDirectoryResponse.results:type_name -> icp.v1.IngestResponse
	10, // 3: icp.v1.ListJobsResponse.jobs:type_name -> icp.v1.ParseJob
	1,  // 4: icp.v1.ListTestsResponse.tests:type_name -> icp.v1.TestSummary
	1,  // 5: icp.v1.GetTestResponse.test:type_name -> icp.v1.TestSummary
	2,  // 6: icp.v1.TanksService.CreateTank:input_type -> icp.v1.CreateTankRequest
	4,  // 7: icp.v1.TanksService.ListTanks:input_type -> icp.v1.ListTanksRequest
	6,  // 8: icp.v1.IngestionService.IngestFile:input_type -> icp.v1.IngestFileRequest
	8,  // 9: icp.v1.IngestionService.IngestDirectory:input_type -> icp.v1.IngestDirectoryRequest
	11, // 10: icp.v1.IngestionService.ListJobs:input_type -> icp.v1.ListJobsRequest
	13, // 11: icp.v1.TestsService.ListTests:input_type -> icp.v1.ListTestsRequest
	15, // 12: icp.v1.TestsService.GetTest:input_type -> icp.v1.GetTestRequest
	17, // 13: icp.v1.TestsService.GetLatestTest:input_type -> icp.v1.GetLatestTestRequest
	18, // 14: icp.v1.TestsService.DeleteTest:input_type -> icp.v1.DeleteTestRequest
	20, // 15: icp.v1.TestsService.ExportTests:input_type -> icp.v1.ExportTestsRequest
	3,  // 16: icp.v1.TanksService.CreateTank:output_type -> icp.v1.CreateTankResponse
	5,  // 17: icp.v1.TanksService.ListTanks:output_type -> icp.v1.ListTanksResponse
	7,  // 18: icp.v1.IngestionService.IngestFile:output_type -> icp.v1.IngestResponse
	9,  // 19: icp.v1.IngestionService.IngestDirectory:output_type -> icp.v1.IngestDirectoryResponse
	12, // 20: icp.v1.IngestionService.ListJobs:output_type -> icp.v1.ListJobsResponse
	14, // 21: icp.v1.TestsService.ListTests:output_type -> icp.v1.ListTestsResponse
	16, // 22: icp.v1.TestsService.GetTest:output_type -> icp.v1.GetTestResponse
	16, // 23: icp.v1.TestsService.GetLatestTest:output_type -> icp.v1.GetTestResponse
	19, // 24: icp.v1.TestsService.DeleteTest:output_type -> icp.v1.DeleteTestResponse
	21, // 25: icp.v1.TestsService.ExportTests:output_type -> icp.v1.ExportTestsResponse
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_icp_v1_icp_proto_init() }
func file_icp_v1_icp_proto_init() {
	if File_icp_v1_icp_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_icp_v1_icp_proto_rawDesc), len(file_icp_v1_icp_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_icp_v1_icp_proto_goTypes,
		DependencyIndexes: file_icp_v1_icp_proto_depIdxs,
		MessageInfos:      file_icp_v1_icp_proto_msgTypes,
	}.Build()
	File_icp_v1_icp_proto = out.File
	file_icp_v1_icp_proto_goTypes = nil
	file_icp_v1_icp_proto_depIdxs = nil
}
