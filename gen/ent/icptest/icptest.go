// Code generated by ent, DO NOT EDIT.

package icptest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
)

const (
	// Label holds the string label denoting the icptest type in the database.
	Label = "icp_test"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTankID holds the string denoting the tank_id field in the database.
	FieldTankID = "tank_id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldTestDate holds the string denoting the test_date field in the database.
	FieldTestDate = "test_date"
	// FieldLabName holds the string denoting the lab_name field in the database.
	FieldLabName = "lab_name"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldWaterType holds the string denoting the water_type field in the database.
	FieldWaterType = "water_type"
	// FieldSampleDate holds the string denoting the sample_date field in the database.
	FieldSampleDate = "sample_date"
	// FieldReceivedDate holds the string denoting the received_date field in the database.
	FieldReceivedDate = "received_date"
	// FieldEvaluatedDate holds the string denoting the evaluated_date field in the database.
	FieldEvaluatedDate = "evaluated_date"
	// FieldScoreMajorElements holds the string denoting the score_major_elements field in the database.
	FieldScoreMajorElements = "score_major_elements"
	// FieldScoreMinorElements holds the string denoting the score_minor_elements field in the database.
	FieldScoreMinorElements = "score_minor_elements"
	// FieldScorePollutants holds the string denoting the score_pollutants field in the database.
	FieldScorePollutants = "score_pollutants"
	// FieldScoreBaseElements holds the string denoting the score_base_elements field in the database.
	FieldScoreBaseElements = "score_base_elements"
	// FieldScoreOverall holds the string denoting the score_overall field in the database.
	FieldScoreOverall = "score_overall"
	// FieldSalinity holds the string denoting the salinity field in the database.
	FieldSalinity = "salinity"
	// FieldSalinityStatus holds the string denoting the salinity_status field in the database.
	FieldSalinityStatus = "salinity_status"
	// FieldKh holds the string denoting the kh field in the database.
	FieldKh = "kh"
	// FieldKhStatus holds the string denoting the kh_status field in the database.
	FieldKhStatus = "kh_status"
	// FieldCl holds the string denoting the cl field in the database.
	FieldCl = "cl"
	// FieldClStatus holds the string denoting the cl_status field in the database.
	FieldClStatus = "cl_status"
	// FieldNa holds the string denoting the na field in the database.
	FieldNa = "na"
	// FieldNaStatus holds the string denoting the na_status field in the database.
	FieldNaStatus = "na_status"
	// FieldMg holds the string denoting the mg field in the database.
	FieldMg = "mg"
	// FieldMgStatus holds the string denoting the mg_status field in the database.
	FieldMgStatus = "mg_status"
	// FieldS holds the string denoting the s field in the database.
	FieldS = "s"
	// FieldSStatus holds the string denoting the s_status field in the database.
	FieldSStatus = "s_status"
	// FieldCa holds the string denoting the ca field in the database.
	FieldCa = "ca"
	// FieldCaStatus holds the string denoting the ca_status field in the database.
	FieldCaStatus = "ca_status"
	// FieldK holds the string denoting the k field in the database.
	FieldK = "k"
	// FieldKStatus holds the string denoting the k_status field in the database.
	FieldKStatus = "k_status"
	// FieldBr holds the string denoting the br field in the database.
	FieldBr = "br"
	// FieldBrStatus holds the string denoting the br_status field in the database.
	FieldBrStatus = "br_status"
	// FieldSr holds the string denoting the sr field in the database.
	FieldSr = "sr"
	// FieldSrStatus holds the string denoting the sr_status field in the database.
	FieldSrStatus = "sr_status"
	// FieldB holds the string denoting the b field in the database.
	FieldB = "b"
	// FieldBStatus holds the string denoting the b_status field in the database.
	FieldBStatus = "b_status"
	// FieldF holds the string denoting the f field in the database.
	FieldF = "f"
	// FieldFStatus holds the string denoting the f_status field in the database.
	FieldFStatus = "f_status"
	// FieldLi holds the string denoting the li field in the database.
	FieldLi = "li"
	// FieldLiStatus holds the string denoting the li_status field in the database.
	FieldLiStatus = "li_status"
	// FieldSi holds the string denoting the si field in the database.
	FieldSi = "si"
	// FieldSiStatus holds the string denoting the si_status field in the database.
	FieldSiStatus = "si_status"
	// FieldI holds the string denoting the i field in the database.
	FieldI = "i"
	// FieldIStatus holds the string denoting the i_status field in the database.
	FieldIStatus = "i_status"
	// FieldBa holds the string denoting the ba field in the database.
	FieldBa = "ba"
	// FieldBaStatus holds the string denoting the ba_status field in the database.
	FieldBaStatus = "ba_status"
	// FieldMo holds the string denoting the mo field in the database.
	FieldMo = "mo"
	// FieldMoStatus holds the string denoting the mo_status field in the database.
	FieldMoStatus = "mo_status"
	// FieldNi holds the string denoting the ni field in the database.
	FieldNi = "ni"
	// FieldNiStatus holds the string denoting the ni_status field in the database.
	FieldNiStatus = "ni_status"
	// FieldMn holds the string denoting the mn field in the database.
	FieldMn = "mn"
	// FieldMnStatus holds the string denoting the mn_status field in the database.
	FieldMnStatus = "mn_status"
	// FieldAs holds the string denoting the as field in the database.
	FieldAs = "as"
	// FieldAsStatus holds the string denoting the as_status field in the database.
	FieldAsStatus = "as_status"
	// FieldBe holds the string denoting the be field in the database.
	FieldBe = "be"
	// FieldBeStatus holds the string denoting the be_status field in the database.
	FieldBeStatus = "be_status"
	// FieldCr holds the string denoting the cr field in the database.
	FieldCr = "cr"
	// FieldCrStatus holds the string denoting the cr_status field in the database.
	FieldCrStatus = "cr_status"
	// FieldCo holds the string denoting the co field in the database.
	FieldCo = "co"
	// FieldCoStatus holds the string denoting the co_status field in the database.
	FieldCoStatus = "co_status"
	// FieldFe holds the string denoting the fe field in the database.
	FieldFe = "fe"
	// FieldFeStatus holds the string denoting the fe_status field in the database.
	FieldFeStatus = "fe_status"
	// FieldCu holds the string denoting the cu field in the database.
	FieldCu = "cu"
	// FieldCuStatus holds the string denoting the cu_status field in the database.
	FieldCuStatus = "cu_status"
	// FieldSe holds the string denoting the se field in the database.
	FieldSe = "se"
	// FieldSeStatus holds the string denoting the se_status field in the database.
	FieldSeStatus = "se_status"
	// FieldAg holds the string denoting the ag field in the database.
	FieldAg = "ag"
	// FieldAgStatus holds the string denoting the ag_status field in the database.
	FieldAgStatus = "ag_status"
	// FieldV holds the string denoting the v field in the database.
	FieldV = "v"
	// FieldVStatus holds the string denoting the v_status field in the database.
	FieldVStatus = "v_status"
	// FieldZn holds the string denoting the zn field in the database.
	FieldZn = "zn"
	// FieldZnStatus holds the string denoting the zn_status field in the database.
	FieldZnStatus = "zn_status"
	// FieldSn holds the string denoting the sn field in the database.
	FieldSn = "sn"
	// FieldSnStatus holds the string denoting the sn_status field in the database.
	FieldSnStatus = "sn_status"
	// FieldNo3 holds the string denoting the no3 field in the database.
	FieldNo3 = "no3"
	// FieldNo3Status holds the string denoting the no3_status field in the database.
	FieldNo3Status = "no3_status"
	// FieldP holds the string denoting the p field in the database.
	FieldP = "p"
	// FieldPStatus holds the string denoting the p_status field in the database.
	FieldPStatus = "p_status"
	// FieldPo4 holds the string denoting the po4 field in the database.
	FieldPo4 = "po4"
	// FieldPo4Status holds the string denoting the po4_status field in the database.
	FieldPo4Status = "po4_status"
	// FieldAl holds the string denoting the al field in the database.
	FieldAl = "al"
	// FieldAlStatus holds the string denoting the al_status field in the database.
	FieldAlStatus = "al_status"
	// FieldSb holds the string denoting the sb field in the database.
	FieldSb = "sb"
	// FieldSbStatus holds the string denoting the sb_status field in the database.
	FieldSbStatus = "sb_status"
	// FieldBi holds the string denoting the bi field in the database.
	FieldBi = "bi"
	// FieldBiStatus holds the string denoting the bi_status field in the database.
	FieldBiStatus = "bi_status"
	// FieldPb holds the string denoting the pb field in the database.
	FieldPb = "pb"
	// FieldPbStatus holds the string denoting the pb_status field in the database.
	FieldPbStatus = "pb_status"
	// FieldCd holds the string denoting the cd field in the database.
	FieldCd = "cd"
	// FieldCdStatus holds the string denoting the cd_status field in the database.
	FieldCdStatus = "cd_status"
	// FieldLa holds the string denoting the la field in the database.
	FieldLa = "la"
	// FieldLaStatus holds the string denoting the la_status field in the database.
	FieldLaStatus = "la_status"
	// FieldTl holds the string denoting the tl field in the database.
	FieldTl = "tl"
	// FieldTlStatus holds the string denoting the tl_status field in the database.
	FieldTlStatus = "tl_status"
	// FieldTi holds the string denoting the ti field in the database.
	FieldTi = "ti"
	// FieldTiStatus holds the string denoting the ti_status field in the database.
	FieldTiStatus = "ti_status"
	// FieldW holds the string denoting the w field in the database.
	FieldW = "w"
	// FieldWStatus holds the string denoting the w_status field in the database.
	FieldWStatus = "w_status"
	// FieldHg holds the string denoting the hg field in the database.
	FieldHg = "hg"
	// FieldHgStatus holds the string denoting the hg_status field in the database.
	FieldHgStatus = "hg_status"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldDosingInstructions holds the string denoting the dosing_instructions field in the database.
	FieldDosingInstructions = "dosing_instructions"
	// FieldPdfFilename holds the string denoting the pdf_filename field in the database.
	FieldPdfFilename = "pdf_filename"
	// FieldPdfPath holds the string denoting the pdf_path field in the database.
	FieldPdfPath = "pdf_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTank holds the string denoting the tank edge name in mutations.
	EdgeTank = "tank"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the icptest in the database.
	Table = "icp_tests"
	// TankTable is the table that holds the tank relation/edge.
	TankTable = "icp_tests"
	// TankInverseTable is the table name for the Tank entity.
	// It exists in this package in order to avoid circular dependency with the "tank" package.
	TankInverseTable = "tanks"
	// TankColumn is the table column denoting the tank relation/edge.
	TankColumn = "tank_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "icp_tests"
	// FileInverseTable is the table name for the ReportFile entity.
	// It exists in this package in order to avoid circular dependency with the "reportfile" package.
	FileInverseTable = "report_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for icptest fields.
var Columns = []string{
	FieldID,
	FieldTankID,
	FieldFileID,
	FieldTestDate,
	FieldLabName,
	FieldTestID,
	FieldWaterType,
	FieldSampleDate,
	FieldReceivedDate,
	FieldEvaluatedDate,
	FieldScoreMajorElements,
	FieldScoreMinorElements,
	FieldScorePollutants,
	FieldScoreBaseElements,
	FieldScoreOverall,
	FieldSalinity,
	FieldSalinityStatus,
	FieldKh,
	FieldKhStatus,
	FieldCl,
	FieldClStatus,
	FieldNa,
	FieldNaStatus,
	FieldMg,
	FieldMgStatus,
	FieldS,
	FieldSStatus,
	FieldCa,
	FieldCaStatus,
	FieldK,
	FieldKStatus,
	FieldBr,
	FieldBrStatus,
	FieldSr,
	FieldSrStatus,
	FieldB,
	FieldBStatus,
	FieldF,
	FieldFStatus,
	FieldLi,
	FieldLiStatus,
	FieldSi,
	FieldSiStatus,
	FieldI,
	FieldIStatus,
	FieldBa,
	FieldBaStatus,
	FieldMo,
	FieldMoStatus,
	FieldNi,
	FieldNiStatus,
	FieldMn,
	FieldMnStatus,
	FieldAs,
	FieldAsStatus,
	FieldBe,
	FieldBeStatus,
	FieldCr,
	FieldCrStatus,
	FieldCo,
	FieldCoStatus,
	FieldFe,
	FieldFeStatus,
	FieldCu,
	FieldCuStatus,
	FieldSe,
	FieldSeStatus,
	FieldAg,
	FieldAgStatus,
	FieldV,
	FieldVStatus,
	FieldZn,
	FieldZnStatus,
	FieldSn,
	FieldSnStatus,
	FieldNo3,
	FieldNo3Status,
	FieldP,
	FieldPStatus,
	FieldPo4,
	FieldPo4Status,
	FieldAl,
	FieldAlStatus,
	FieldSb,
	FieldSbStatus,
	FieldBi,
	FieldBiStatus,
	FieldPb,
	FieldPbStatus,
	FieldCd,
	FieldCdStatus,
	FieldLa,
	FieldLaStatus,
	FieldTl,
	FieldTlStatus,
	FieldTi,
	FieldTiStatus,
	FieldW,
	FieldWStatus,
	FieldHg,
	FieldHgStatus,
	FieldRecommendations,
	FieldDosingInstructions,
	FieldPdfFilename,
	FieldPdfPath,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LabNameValidator is a validator for the "lab_name" field. It is called by the builders before save.
	LabNameValidator func(string) error
	// DefaultWaterType holds the default value on creation for the "water_type" field.
	DefaultWaterType constants.WaterType
	// WaterTypeValidator is a validator for the "water_type" field. It is called by the builders before save.
	WaterTypeValidator func(string) error
	// SalinityStatusValidator is a validator for the "salinity_status" field. It is called by the builders before save.
	SalinityStatusValidator func(string) error
	// KhStatusValidator is a validator for the "kh_status" field. It is called by the builders before save.
	KhStatusValidator func(string) error
	// ClStatusValidator is a validator for the "cl_status" field. It is called by the builders before save.
	ClStatusValidator func(string) error
	// NaStatusValidator is a validator for the "na_status" field. It is called by the builders before save.
	NaStatusValidator func(string) error
	// MgStatusValidator is a validator for the "mg_status" field. It is called by the builders before save.
	MgStatusValidator func(string) error
	// SStatusValidator is a validator for the "s_status" field. It is called by the builders before save.
	SStatusValidator func(string) error
	// CaStatusValidator is a validator for the "ca_status" field. It is called by the builders before save.
	CaStatusValidator func(string) error
	// KStatusValidator is a validator for the "k_status" field. It is called by the builders before save.
	KStatusValidator func(string) error
	// BrStatusValidator is a validator for the "br_status" field. It is called by the builders before save.
	BrStatusValidator func(string) error
	// SrStatusValidator is a validator for the "sr_status" field. It is called by the builders before save.
	SrStatusValidator func(string) error
	// BStatusValidator is a validator for the "b_status" field. It is called by the builders before save.
	BStatusValidator func(string) error
	// FStatusValidator is a validator for the "f_status" field. It is called by the builders before save.
	FStatusValidator func(string) error
	// LiStatusValidator is a validator for the "li_status" field. It is called by the builders before save.
	LiStatusValidator func(string) error
	// SiStatusValidator is a validator for the "si_status" field. It is called by the builders before save.
	SiStatusValidator func(string) error
	// IStatusValidator is a validator for the "i_status" field. It is called by the builders before save.
	IStatusValidator func(string) error
	// BaStatusValidator is a validator for the "ba_status" field. It is called by the builders before save.
	BaStatusValidator func(string) error
	// MoStatusValidator is a validator for the "mo_status" field. It is called by the builders before save.
	MoStatusValidator func(string) error
	// NiStatusValidator is a validator for the "ni_status" field. It is called by the builders before save.
	NiStatusValidator func(string) error
	// MnStatusValidator is a validator for the "mn_status" field. It is called by the builders before save.
	MnStatusValidator func(string) error
	// AsStatusValidator is a validator for the "as_status" field. It is called by the builders before save.
	AsStatusValidator func(string) error
	// BeStatusValidator is a validator for the "be_status" field. It is called by the builders before save.
	BeStatusValidator func(string) error
	// CrStatusValidator is a validator for the "cr_status" field. It is called by the builders before save.
	CrStatusValidator func(string) error
	// CoStatusValidator is a validator for the "co_status" field. It is called by the builders before save.
	CoStatusValidator func(string) error
	// FeStatusValidator is a validator for the "fe_status" field. It is called by the builders before save.
	FeStatusValidator func(string) error
	// CuStatusValidator is a validator for the "cu_status" field. It is called by the builders before save.
	CuStatusValidator func(string) error
	// SeStatusValidator is a validator for the "se_status" field. It is called by the builders before save.
	SeStatusValidator func(string) error
	// AgStatusValidator is a validator for the "ag_status" field. It is called by the builders before save.
	AgStatusValidator func(string) error
	// VStatusValidator is a validator for the "v_status" field. It is called by the builders before save.
	VStatusValidator func(string) error
	// ZnStatusValidator is a validator for the "zn_status" field. It is called by the builders before save.
	ZnStatusValidator func(string) error
	// SnStatusValidator is a validator for the "sn_status" field. It is called by the builders before save.
	SnStatusValidator func(string) error
	// No3StatusValidator is a validator for the "no3_status" field. It is called by the builders before save.
	No3StatusValidator func(string) error
	// PStatusValidator is a validator for the "p_status" field. It is called by the builders before save.
	PStatusValidator func(string) error
	// Po4StatusValidator is a validator for the "po4_status" field. It is called by the builders before save.
	Po4StatusValidator func(string) error
	// AlStatusValidator is a validator for the "al_status" field. It is called by the builders before save.
	AlStatusValidator func(string) error
	// SbStatusValidator is a validator for the "sb_status" field. It is called by the builders before save.
	SbStatusValidator func(string) error
	// BiStatusValidator is a validator for the "bi_status" field. It is called by the builders before save.
	BiStatusValidator func(string) error
	// PbStatusValidator is a validator for the "pb_status" field. It is called by the builders before save.
	PbStatusValidator func(string) error
	// CdStatusValidator is a validator for the "cd_status" field. It is called by the builders before save.
	CdStatusValidator func(string) error
	// LaStatusValidator is a validator for the "la_status" field. It is called by the builders before save.
	LaStatusValidator func(string) error
	// TlStatusValidator is a validator for the "tl_status" field. It is called by the builders before save.
	TlStatusValidator func(string) error
	// TiStatusValidator is a validator for the "ti_status" field. It is called by the builders before save.
	TiStatusValidator func(string) error
	// WStatusValidator is a validator for the "w_status" field. It is called by the builders before save.
	WStatusValidator func(string) error
	// HgStatusValidator is a validator for the "hg_status" field. It is called by the builders before save.
	HgStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the IcpTest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTankID orders the results by the tank_id field.
func ByTankID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTankID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByTestDate orders the results by the test_date field.
func ByTestDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestDate, opts...).ToFunc()
}

// ByLabName orders the results by the lab_name field.
func ByLabName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabName, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByWaterType orders the results by the water_type field.
func ByWaterType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterType, opts...).ToFunc()
}

// BySampleDate orders the results by the sample_date field.
func BySampleDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleDate, opts...).ToFunc()
}

// ByReceivedDate orders the results by the received_date field.
func ByReceivedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedDate, opts...).ToFunc()
}

// ByEvaluatedDate orders the results by the evaluated_date field.
func ByEvaluatedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedDate, opts...).ToFunc()
}

// ByScoreMajorElements orders the results by the score_major_elements field.
func ByScoreMajorElements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreMajorElements, opts...).ToFunc()
}

// ByScoreMinorElements orders the results by the score_minor_elements field.
func ByScoreMinorElements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreMinorElements, opts...).ToFunc()
}

// ByScorePollutants orders the results by the score_pollutants field.
func ByScorePollutants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePollutants, opts...).ToFunc()
}

// ByScoreBaseElements orders the results by the score_base_elements field.
func ByScoreBaseElements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreBaseElements, opts...).ToFunc()
}

// ByScoreOverall orders the results by the score_overall field.
func ByScoreOverall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreOverall, opts...).ToFunc()
}

// BySalinity orders the results by the salinity field.
func BySalinity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalinity, opts...).ToFunc()
}

// BySalinityStatus orders the results by the salinity_status field.
func BySalinityStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalinityStatus, opts...).ToFunc()
}

// ByKh orders the results by the kh field.
func ByKh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKh, opts...).ToFunc()
}

// ByKhStatus orders the results by the kh_status field.
func ByKhStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKhStatus, opts...).ToFunc()
}

// ByCl orders the results by the cl field.
func ByCl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCl, opts...).ToFunc()
}

// ByClStatus orders the results by the cl_status field.
func ByClStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClStatus, opts...).ToFunc()
}

// ByNa orders the results by the na field.
func ByNa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNa, opts...).ToFunc()
}

// ByNaStatus orders the results by the na_status field.
func ByNaStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNaStatus, opts...).ToFunc()
}

// ByMg orders the results by the mg field.
func ByMg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMg, opts...).ToFunc()
}

// ByMgStatus orders the results by the mg_status field.
func ByMgStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMgStatus, opts...).ToFunc()
}

// ByS orders the results by the s field.
func ByS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS, opts...).ToFunc()
}

// BySStatus orders the results by the s_status field.
func BySStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSStatus, opts...).ToFunc()
}

// ByCa orders the results by the ca field.
func ByCa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCa, opts...).ToFunc()
}

// ByCaStatus orders the results by the ca_status field.
func ByCaStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaStatus, opts...).ToFunc()
}

// ByK orders the results by the k field.
func ByK(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldK, opts...).ToFunc()
}

// ByKStatus orders the results by the k_status field.
func ByKStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKStatus, opts...).ToFunc()
}

// ByBr orders the results by the br field.
func ByBr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBr, opts...).ToFunc()
}

// ByBrStatus orders the results by the br_status field.
func ByBrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrStatus, opts...).ToFunc()
}

// BySr orders the results by the sr field.
func BySr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSr, opts...).ToFunc()
}

// BySrStatus orders the results by the sr_status field.
func BySrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrStatus, opts...).ToFunc()
}

// ByB orders the results by the b field.
func ByB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldB, opts...).ToFunc()
}

// ByBStatus orders the results by the b_status field.
func ByBStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBStatus, opts...).ToFunc()
}

// ByF orders the results by the f field.
func ByF(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldF, opts...).ToFunc()
}

// ByFStatus orders the results by the f_status field.
func ByFStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFStatus, opts...).ToFunc()
}

// ByLi orders the results by the li field.
func ByLi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLi, opts...).ToFunc()
}

// ByLiStatus orders the results by the li_status field.
func ByLiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLiStatus, opts...).ToFunc()
}

// BySi orders the results by the si field.
func BySi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSi, opts...).ToFunc()
}

// BySiStatus orders the results by the si_status field.
func BySiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiStatus, opts...).ToFunc()
}

// ByI orders the results by the i field.
func ByI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldI, opts...).ToFunc()
}

// ByIStatus orders the results by the i_status field.
func ByIStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIStatus, opts...).ToFunc()
}

// ByBa orders the results by the ba field.
func ByBa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBa, opts...).ToFunc()
}

// ByBaStatus orders the results by the ba_status field.
func ByBaStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaStatus, opts...).ToFunc()
}

// ByMo orders the results by the mo field.
func ByMo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMo, opts...).ToFunc()
}

// ByMoStatus orders the results by the mo_status field.
func ByMoStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoStatus, opts...).ToFunc()
}

// ByNi orders the results by the ni field.
func ByNi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNi, opts...).ToFunc()
}

// ByNiStatus orders the results by the ni_status field.
func ByNiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNiStatus, opts...).ToFunc()
}

// ByMn orders the results by the mn field.
func ByMn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMn, opts...).ToFunc()
}

// ByMnStatus orders the results by the mn_status field.
func ByMnStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMnStatus, opts...).ToFunc()
}

// ByAs orders the results by the as field.
func ByAs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAs, opts...).ToFunc()
}

// ByAsStatus orders the results by the as_status field.
func ByAsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsStatus, opts...).ToFunc()
}

// ByBe orders the results by the be field.
func ByBe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBe, opts...).ToFunc()
}

// ByBeStatus orders the results by the be_status field.
func ByBeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeStatus, opts...).ToFunc()
}

// ByCr orders the results by the cr field.
func ByCr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCr, opts...).ToFunc()
}

// ByCrStatus orders the results by the cr_status field.
func ByCrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrStatus, opts...).ToFunc()
}

// ByCo orders the results by the co field.
func ByCo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCo, opts...).ToFunc()
}

// ByCoStatus orders the results by the co_status field.
func ByCoStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoStatus, opts...).ToFunc()
}

// ByFe orders the results by the fe field.
func ByFe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFe, opts...).ToFunc()
}

// ByFeStatus orders the results by the fe_status field.
func ByFeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeStatus, opts...).ToFunc()
}

// ByCu orders the results by the cu field.
func ByCu(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCu, opts...).ToFunc()
}

// ByCuStatus orders the results by the cu_status field.
func ByCuStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuStatus, opts...).ToFunc()
}

// BySe orders the results by the se field.
func BySe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSe, opts...).ToFunc()
}

// BySeStatus orders the results by the se_status field.
func BySeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeStatus, opts...).ToFunc()
}

// ByAg orders the results by the ag field.
func ByAg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAg, opts...).ToFunc()
}

// ByAgStatus orders the results by the ag_status field.
func ByAgStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgStatus, opts...).ToFunc()
}

// ByV orders the results by the v field.
func ByV(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldV, opts...).ToFunc()
}

// ByVStatus orders the results by the v_status field.
func ByVStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVStatus, opts...).ToFunc()
}

// ByZn orders the results by the zn field.
func ByZn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZn, opts...).ToFunc()
}

// ByZnStatus orders the results by the zn_status field.
func ByZnStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZnStatus, opts...).ToFunc()
}

// BySn orders the results by the sn field.
func BySn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSn, opts...).ToFunc()
}

// BySnStatus orders the results by the sn_status field.
func BySnStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnStatus, opts...).ToFunc()
}

// ByNo3 orders the results by the no3 field.
func ByNo3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNo3, opts...).ToFunc()
}

// ByNo3Status orders the results by the no3_status field.
func ByNo3Status(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNo3Status, opts...).ToFunc()
}

// ByP orders the results by the p field.
func ByP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP, opts...).ToFunc()
}

// ByPStatus orders the results by the p_status field.
func ByPStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPStatus, opts...).ToFunc()
}

// ByPo4 orders the results by the po4 field.
func ByPo4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPo4, opts...).ToFunc()
}

// ByPo4Status orders the results by the po4_status field.
func ByPo4Status(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPo4Status, opts...).ToFunc()
}

// ByAl orders the results by the al field.
func ByAl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAl, opts...).ToFunc()
}

// ByAlStatus orders the results by the al_status field.
func ByAlStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlStatus, opts...).ToFunc()
}

// BySb orders the results by the sb field.
func BySb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSb, opts...).ToFunc()
}

// BySbStatus orders the results by the sb_status field.
func BySbStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSbStatus, opts...).ToFunc()
}

// ByBi orders the results by the bi field.
func ByBi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBi, opts...).ToFunc()
}

// ByBiStatus orders the results by the bi_status field.
func ByBiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiStatus, opts...).ToFunc()
}

// ByPb orders the results by the pb field.
func ByPb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPb, opts...).ToFunc()
}

// ByPbStatus orders the results by the pb_status field.
func ByPbStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPbStatus, opts...).ToFunc()
}

// ByCd orders the results by the cd field.
func ByCd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCd, opts...).ToFunc()
}

// ByCdStatus orders the results by the cd_status field.
func ByCdStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCdStatus, opts...).ToFunc()
}

// ByLa orders the results by the la field.
func ByLa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLa, opts...).ToFunc()
}

// ByLaStatus orders the results by the la_status field.
func ByLaStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaStatus, opts...).ToFunc()
}

// ByTl orders the results by the tl field.
func ByTl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTl, opts...).ToFunc()
}

// ByTlStatus orders the results by the tl_status field.
func ByTlStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTlStatus, opts...).ToFunc()
}

// ByTi orders the results by the ti field.
func ByTi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTi, opts...).ToFunc()
}

// ByTiStatus orders the results by the ti_status field.
func ByTiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiStatus, opts...).ToFunc()
}

// ByW orders the results by the w field.
func ByW(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldW, opts...).ToFunc()
}

// ByWStatus orders the results by the w_status field.
func ByWStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWStatus, opts...).ToFunc()
}

// ByHg orders the results by the hg field.
func ByHg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHg, opts...).ToFunc()
}

// ByHgStatus orders the results by the hg_status field.
func ByHgStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHgStatus, opts...).ToFunc()
}

// ByDosingInstructions orders the results by the dosing_instructions field.
func ByDosingInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDosingInstructions, opts...).ToFunc()
}

// ByPdfFilename orders the results by the pdf_filename field.
func ByPdfFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFilename, opts...).ToFunc()
}

// ByPdfPath orders the results by the pdf_path field.
func ByPdfPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfPath, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTankField orders the results by tank field.
func ByTankField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTankStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newTankStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TankInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TankTable, TankColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
