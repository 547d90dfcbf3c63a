// Code generated by ent, DO NOT EDIT.

package icptest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldID, id))
}

// TankID applies equality check predicate on the "tank_id" field. It's identical to TankIDEQ.
func TankID(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTankID, v))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldFileID, v))
}

// TestDate applies equality check predicate on the "test_date" field. It's identical to TestDateEQ.
func TestDate(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTestDate, v))
}

// LabName applies equality check predicate on the "lab_name" field. It's identical to LabNameEQ.
func LabName(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLabName, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTestID, v))
}

// WaterType applies equality check predicate on the "water_type" field. It's identical to WaterTypeEQ.
func WaterType(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldWaterType, vc))
}

// SampleDate applies equality check predicate on the "sample_date" field. It's identical to SampleDateEQ.
func SampleDate(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSampleDate, v))
}

// ReceivedDate applies equality check predicate on the "received_date" field. It's identical to ReceivedDateEQ.
func ReceivedDate(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldReceivedDate, v))
}

// EvaluatedDate applies equality check predicate on the "evaluated_date" field. It's identical to EvaluatedDateEQ.
func EvaluatedDate(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldEvaluatedDate, v))
}

// ScoreMajorElements applies equality check predicate on the "score_major_elements" field. It's identical to ScoreMajorElementsEQ.
func ScoreMajorElements(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreMajorElements, v))
}

// ScoreMinorElements applies equality check predicate on the "score_minor_elements" field. It's identical to ScoreMinorElementsEQ.
func ScoreMinorElements(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreMinorElements, v))
}

// ScorePollutants applies equality check predicate on the "score_pollutants" field. It's identical to ScorePollutantsEQ.
func ScorePollutants(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScorePollutants, v))
}

// ScoreBaseElements applies equality check predicate on the "score_base_elements" field. It's identical to ScoreBaseElementsEQ.
func ScoreBaseElements(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreBaseElements, v))
}

// ScoreOverall applies equality check predicate on the "score_overall" field. It's identical to ScoreOverallEQ.
func ScoreOverall(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreOverall, v))
}

// Salinity applies equality check predicate on the "salinity" field. It's identical to SalinityEQ.
func Salinity(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSalinity, v))
}

// SalinityStatus applies equality check predicate on the "salinity_status" field. It's identical to SalinityStatusEQ.
func SalinityStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSalinityStatus, vc))
}

// Kh applies equality check predicate on the "kh" field. It's identical to KhEQ.
func Kh(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldKh, v))
}

// KhStatus applies equality check predicate on the "kh_status" field. It's identical to KhStatusEQ.
func KhStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldKhStatus, vc))
}

// Cl applies equality check predicate on the "cl" field. It's identical to ClEQ.
func Cl(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCl, v))
}

// ClStatus applies equality check predicate on the "cl_status" field. It's identical to ClStatusEQ.
func ClStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldClStatus, vc))
}

// Na applies equality check predicate on the "na" field. It's identical to NaEQ.
func Na(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNa, v))
}

// NaStatus applies equality check predicate on the "na_status" field. It's identical to NaStatusEQ.
func NaStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNaStatus, vc))
}

// Mg applies equality check predicate on the "mg" field. It's identical to MgEQ.
func Mg(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMg, v))
}

// MgStatus applies equality check predicate on the "mg_status" field. It's identical to MgStatusEQ.
func MgStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMgStatus, vc))
}

// S applies equality check predicate on the "s" field. It's identical to SEQ.
func S(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldS, v))
}

// SStatus applies equality check predicate on the "s_status" field. It's identical to SStatusEQ.
func SStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSStatus, vc))
}

// Ca applies equality check predicate on the "ca" field. It's identical to CaEQ.
func Ca(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCa, v))
}

// CaStatus applies equality check predicate on the "ca_status" field. It's identical to CaStatusEQ.
func CaStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCaStatus, vc))
}

// K applies equality check predicate on the "k" field. It's identical to KEQ.
func K(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldK, v))
}

// KStatus applies equality check predicate on the "k_status" field. It's identical to KStatusEQ.
func KStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldKStatus, vc))
}

// Br applies equality check predicate on the "br" field. It's identical to BrEQ.
func Br(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBr, v))
}

// BrStatus applies equality check predicate on the "br_status" field. It's identical to BrStatusEQ.
func BrStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBrStatus, vc))
}

// Sr applies equality check predicate on the "sr" field. It's identical to SrEQ.
func Sr(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSr, v))
}

// SrStatus applies equality check predicate on the "sr_status" field. It's identical to SrStatusEQ.
func SrStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSrStatus, vc))
}

// B applies equality check predicate on the "b" field. It's identical to BEQ.
func B(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldB, v))
}

// BStatus applies equality check predicate on the "b_status" field. It's identical to BStatusEQ.
func BStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBStatus, vc))
}

// F applies equality check predicate on the "f" field. It's identical to FEQ.
func F(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldF, v))
}

// FStatus applies equality check predicate on the "f_status" field. It's identical to FStatusEQ.
func FStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldFStatus, vc))
}

// Li applies equality check predicate on the "li" field. It's identical to LiEQ.
func Li(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLi, v))
}

// LiStatus applies equality check predicate on the "li_status" field. It's identical to LiStatusEQ.
func LiStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldLiStatus, vc))
}

// Si applies equality check predicate on the "si" field. It's identical to SiEQ.
func Si(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSi, v))
}

// SiStatus applies equality check predicate on the "si_status" field. It's identical to SiStatusEQ.
func SiStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSiStatus, vc))
}

// I applies equality check predicate on the "i" field. It's identical to IEQ.
func I(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldI, v))
}

// IStatus applies equality check predicate on the "i_status" field. It's identical to IStatusEQ.
func IStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldIStatus, vc))
}

// Ba applies equality check predicate on the "ba" field. It's identical to BaEQ.
func Ba(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBa, v))
}

// BaStatus applies equality check predicate on the "ba_status" field. It's identical to BaStatusEQ.
func BaStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBaStatus, vc))
}

// Mo applies equality check predicate on the "mo" field. It's identical to MoEQ.
func Mo(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMo, v))
}

// MoStatus applies equality check predicate on the "mo_status" field. It's identical to MoStatusEQ.
func MoStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMoStatus, vc))
}

// Ni applies equality check predicate on the "ni" field. It's identical to NiEQ.
func Ni(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNi, v))
}

// NiStatus applies equality check predicate on the "ni_status" field. It's identical to NiStatusEQ.
func NiStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNiStatus, vc))
}

// Mn applies equality check predicate on the "mn" field. It's identical to MnEQ.
func Mn(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMn, v))
}

// MnStatus applies equality check predicate on the "mn_status" field. It's identical to MnStatusEQ.
func MnStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMnStatus, vc))
}

// As applies equality check predicate on the "as" field. It's identical to AsEQ.
func As(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAs, v))
}

// AsStatus applies equality check predicate on the "as_status" field. It's identical to AsStatusEQ.
func AsStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAsStatus, vc))
}

// Be applies equality check predicate on the "be" field. It's identical to BeEQ.
func Be(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBe, v))
}

// BeStatus applies equality check predicate on the "be_status" field. It's identical to BeStatusEQ.
func BeStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBeStatus, vc))
}

// Cr applies equality check predicate on the "cr" field. It's identical to CrEQ.
func Cr(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCr, v))
}

// CrStatus applies equality check predicate on the "cr_status" field. It's identical to CrStatusEQ.
func CrStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCrStatus, vc))
}

// Co applies equality check predicate on the "co" field. It's identical to CoEQ.
func Co(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCo, v))
}

// CoStatus applies equality check predicate on the "co_status" field. It's identical to CoStatusEQ.
func CoStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCoStatus, vc))
}

// Fe applies equality check predicate on the "fe" field. It's identical to FeEQ.
func Fe(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldFe, v))
}

// FeStatus applies equality check predicate on the "fe_status" field. It's identical to FeStatusEQ.
func FeStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldFeStatus, vc))
}

// Cu applies equality check predicate on the "cu" field. It's identical to CuEQ.
func Cu(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCu, v))
}

// CuStatus applies equality check predicate on the "cu_status" field. It's identical to CuStatusEQ.
func CuStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCuStatus, vc))
}

// Se applies equality check predicate on the "se" field. It's identical to SeEQ.
func Se(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSe, v))
}

// SeStatus applies equality check predicate on the "se_status" field. It's identical to SeStatusEQ.
func SeStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSeStatus, vc))
}

// Ag applies equality check predicate on the "ag" field. It's identical to AgEQ.
func Ag(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAg, v))
}

// AgStatus applies equality check predicate on the "ag_status" field. It's identical to AgStatusEQ.
func AgStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAgStatus, vc))
}

// V applies equality check predicate on the "v" field. It's identical to VEQ.
func V(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldV, v))
}

// VStatus applies equality check predicate on the "v_status" field. It's identical to VStatusEQ.
func VStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldVStatus, vc))
}

// Zn applies equality check predicate on the "zn" field. It's identical to ZnEQ.
func Zn(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldZn, v))
}

// ZnStatus applies equality check predicate on the "zn_status" field. It's identical to ZnStatusEQ.
func ZnStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldZnStatus, vc))
}

// Sn applies equality check predicate on the "sn" field. It's identical to SnEQ.
func Sn(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSn, v))
}

// SnStatus applies equality check predicate on the "sn_status" field. It's identical to SnStatusEQ.
func SnStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSnStatus, vc))
}

// No3 applies equality check predicate on the "no3" field. It's identical to No3EQ.
func No3(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNo3, v))
}

// No3Status applies equality check predicate on the "no3_status" field. It's identical to No3StatusEQ.
func No3Status(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNo3Status, vc))
}

// P applies equality check predicate on the "p" field. It's identical to PEQ.
func P(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldP, v))
}

// PStatus applies equality check predicate on the "p_status" field. It's identical to PStatusEQ.
func PStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPStatus, vc))
}

// Po4 applies equality check predicate on the "po4" field. It's identical to Po4EQ.
func Po4(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPo4, v))
}

// Po4Status applies equality check predicate on the "po4_status" field. It's identical to Po4StatusEQ.
func Po4Status(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPo4Status, vc))
}

// Al applies equality check predicate on the "al" field. It's identical to AlEQ.
func Al(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAl, v))
}

// AlStatus applies equality check predicate on the "al_status" field. It's identical to AlStatusEQ.
func AlStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAlStatus, vc))
}

// Sb applies equality check predicate on the "sb" field. It's identical to SbEQ.
func Sb(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSb, v))
}

// SbStatus applies equality check predicate on the "sb_status" field. It's identical to SbStatusEQ.
func SbStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSbStatus, vc))
}

// Bi applies equality check predicate on the "bi" field. It's identical to BiEQ.
func Bi(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBi, v))
}

// BiStatus applies equality check predicate on the "bi_status" field. It's identical to BiStatusEQ.
func BiStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBiStatus, vc))
}

// Pb applies equality check predicate on the "pb" field. It's identical to PbEQ.
func Pb(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPb, v))
}

// PbStatus applies equality check predicate on the "pb_status" field. It's identical to PbStatusEQ.
func PbStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPbStatus, vc))
}

// Cd applies equality check predicate on the "cd" field. It's identical to CdEQ.
func Cd(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCd, v))
}

// CdStatus applies equality check predicate on the "cd_status" field. It's identical to CdStatusEQ.
func CdStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCdStatus, vc))
}

// La applies equality check predicate on the "la" field. It's identical to LaEQ.
func La(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLa, v))
}

// LaStatus applies equality check predicate on the "la_status" field. It's identical to LaStatusEQ.
func LaStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldLaStatus, vc))
}

// Tl applies equality check predicate on the "tl" field. It's identical to TlEQ.
func Tl(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTl, v))
}

// TlStatus applies equality check predicate on the "tl_status" field. It's identical to TlStatusEQ.
func TlStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldTlStatus, vc))
}

// Ti applies equality check predicate on the "ti" field. It's identical to TiEQ.
func Ti(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTi, v))
}

// TiStatus applies equality check predicate on the "ti_status" field. It's identical to TiStatusEQ.
func TiStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldTiStatus, vc))
}

// W applies equality check predicate on the "w" field. It's identical to WEQ.
func W(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldW, v))
}

// WStatus applies equality check predicate on the "w_status" field. It's identical to WStatusEQ.
func WStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldWStatus, vc))
}

// Hg applies equality check predicate on the "hg" field. It's identical to HgEQ.
func Hg(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldHg, v))
}

// HgStatus applies equality check predicate on the "hg_status" field. It's identical to HgStatusEQ.
func HgStatus(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldHgStatus, vc))
}

// DosingInstructions applies equality check predicate on the "dosing_instructions" field. It's identical to DosingInstructionsEQ.
func DosingInstructions(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldDosingInstructions, v))
}

// PdfFilename applies equality check predicate on the "pdf_filename" field. It's identical to PdfFilenameEQ.
func PdfFilename(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfPath applies equality check predicate on the "pdf_path" field. It's identical to PdfPathEQ.
func PdfPath(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPdfPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// TankIDEQ applies the EQ predicate on the "tank_id" field.
func TankIDEQ(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTankID, v))
}

// TankIDNEQ applies the NEQ predicate on the "tank_id" field.
func TankIDNEQ(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldTankID, v))
}

// TankIDIn applies the In predicate on the "tank_id" field.
func TankIDIn(vs ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldTankID, vs...))
}

// TankIDNotIn applies the NotIn predicate on the "tank_id" field.
func TankIDNotIn(vs ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldTankID, vs...))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldFileID, vs...))
}

// FileIDIsNil applies the IsNil predicate on the "file_id" field.
func FileIDIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldFileID))
}

// FileIDNotNil applies the NotNil predicate on the "file_id" field.
func FileIDNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldFileID))
}

// TestDateEQ applies the EQ predicate on the "test_date" field.
func TestDateEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTestDate, v))
}

// TestDateNEQ applies the NEQ predicate on the "test_date" field.
func TestDateNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldTestDate, v))
}

// TestDateIn applies the In predicate on the "test_date" field.
func TestDateIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldTestDate, vs...))
}

// TestDateNotIn applies the NotIn predicate on the "test_date" field.
func TestDateNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldTestDate, vs...))
}

// TestDateGT applies the GT predicate on the "test_date" field.
func TestDateGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldTestDate, v))
}

// TestDateGTE applies the GTE predicate on the "test_date" field.
func TestDateGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldTestDate, v))
}

// TestDateLT applies the LT predicate on the "test_date" field.
func TestDateLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldTestDate, v))
}

// TestDateLTE applies the LTE predicate on the "test_date" field.
func TestDateLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldTestDate, v))
}

// LabNameEQ applies the EQ predicate on the "lab_name" field.
func LabNameEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLabName, v))
}

// LabNameNEQ applies the NEQ predicate on the "lab_name" field.
func LabNameNEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldLabName, v))
}

// LabNameIn applies the In predicate on the "lab_name" field.
func LabNameIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldLabName, vs...))
}

// LabNameNotIn applies the NotIn predicate on the "lab_name" field.
func LabNameNotIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldLabName, vs...))
}

// LabNameGT applies the GT predicate on the "lab_name" field.
func LabNameGT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldLabName, v))
}

// LabNameGTE applies the GTE predicate on the "lab_name" field.
func LabNameGTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldLabName, v))
}

// LabNameLT applies the LT predicate on the "lab_name" field.
func LabNameLT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldLabName, v))
}

// LabNameLTE applies the LTE predicate on the "lab_name" field.
func LabNameLTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldLabName, v))
}

// LabNameContains applies the Contains predicate on the "lab_name" field.
func LabNameContains(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContains(FieldLabName, v))
}

// LabNameHasPrefix applies the HasPrefix predicate on the "lab_name" field.
func LabNameHasPrefix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasPrefix(FieldLabName, v))
}

// LabNameHasSuffix applies the HasSuffix predicate on the "lab_name" field.
func LabNameHasSuffix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasSuffix(FieldLabName, v))
}

// LabNameEqualFold applies the EqualFold predicate on the "lab_name" field.
func LabNameEqualFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEqualFold(FieldLabName, v))
}

// LabNameContainsFold applies the ContainsFold predicate on the "lab_name" field.
func LabNameContainsFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContainsFold(FieldLabName, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDIsNil applies the IsNil predicate on the "test_id" field.
func TestIDIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldTestID))
}

// TestIDNotNil applies the NotNil predicate on the "test_id" field.
func TestIDNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldTestID))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContainsFold(FieldTestID, v))
}

// WaterTypeEQ applies the EQ predicate on the "water_type" field.
func WaterTypeEQ(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldWaterType, vc))
}

// WaterTypeNEQ applies the NEQ predicate on the "water_type" field.
func WaterTypeNEQ(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldWaterType, vc))
}

// WaterTypeIn applies the In predicate on the "water_type" field.
func WaterTypeIn(vs ...constants.WaterType) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldWaterType, v...))
}

// WaterTypeNotIn applies the NotIn predicate on the "water_type" field.
func WaterTypeNotIn(vs ...constants.WaterType) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldWaterType, v...))
}

// WaterTypeGT applies the GT predicate on the "water_type" field.
func WaterTypeGT(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldWaterType, vc))
}

// WaterTypeGTE applies the GTE predicate on the "water_type" field.
func WaterTypeGTE(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldWaterType, vc))
}

// WaterTypeLT applies the LT predicate on the "water_type" field.
func WaterTypeLT(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldWaterType, vc))
}

// WaterTypeLTE applies the LTE predicate on the "water_type" field.
func WaterTypeLTE(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldWaterType, vc))
}

// WaterTypeContains applies the Contains predicate on the "water_type" field.
func WaterTypeContains(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldWaterType, vc))
}

// WaterTypeHasPrefix applies the HasPrefix predicate on the "water_type" field.
func WaterTypeHasPrefix(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldWaterType, vc))
}

// WaterTypeHasSuffix applies the HasSuffix predicate on the "water_type" field.
func WaterTypeHasSuffix(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldWaterType, vc))
}

// WaterTypeEqualFold applies the EqualFold predicate on the "water_type" field.
func WaterTypeEqualFold(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldWaterType, vc))
}

// WaterTypeContainsFold applies the ContainsFold predicate on the "water_type" field.
func WaterTypeContainsFold(v constants.WaterType) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldWaterType, vc))
}

// SampleDateEQ applies the EQ predicate on the "sample_date" field.
func SampleDateEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSampleDate, v))
}

// SampleDateNEQ applies the NEQ predicate on the "sample_date" field.
func SampleDateNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSampleDate, v))
}

// SampleDateIn applies the In predicate on the "sample_date" field.
func SampleDateIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSampleDate, vs...))
}

// SampleDateNotIn applies the NotIn predicate on the "sample_date" field.
func SampleDateNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSampleDate, vs...))
}

// SampleDateGT applies the GT predicate on the "sample_date" field.
func SampleDateGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSampleDate, v))
}

// SampleDateGTE applies the GTE predicate on the "sample_date" field.
func SampleDateGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSampleDate, v))
}

// SampleDateLT applies the LT predicate on the "sample_date" field.
func SampleDateLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSampleDate, v))
}

// SampleDateLTE applies the LTE predicate on the "sample_date" field.
func SampleDateLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSampleDate, v))
}

// SampleDateIsNil applies the IsNil predicate on the "sample_date" field.
func SampleDateIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSampleDate))
}

// SampleDateNotNil applies the NotNil predicate on the "sample_date" field.
func SampleDateNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSampleDate))
}

// ReceivedDateEQ applies the EQ predicate on the "received_date" field.
func ReceivedDateEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldReceivedDate, v))
}

// ReceivedDateNEQ applies the NEQ predicate on the "received_date" field.
func ReceivedDateNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldReceivedDate, v))
}

// ReceivedDateIn applies the In predicate on the "received_date" field.
func ReceivedDateIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldReceivedDate, vs...))
}

// ReceivedDateNotIn applies the NotIn predicate on the "received_date" field.
func ReceivedDateNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldReceivedDate, vs...))
}

// ReceivedDateGT applies the GT predicate on the "received_date" field.
func ReceivedDateGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldReceivedDate, v))
}

// ReceivedDateGTE applies the GTE predicate on the "received_date" field.
func ReceivedDateGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldReceivedDate, v))
}

// ReceivedDateLT applies the LT predicate on the "received_date" field.
func ReceivedDateLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldReceivedDate, v))
}

// ReceivedDateLTE applies the LTE predicate on the "received_date" field.
func ReceivedDateLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldReceivedDate, v))
}

// ReceivedDateIsNil applies the IsNil predicate on the "received_date" field.
func ReceivedDateIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldReceivedDate))
}

// ReceivedDateNotNil applies the NotNil predicate on the "received_date" field.
func ReceivedDateNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldReceivedDate))
}

// EvaluatedDateEQ applies the EQ predicate on the "evaluated_date" field.
func EvaluatedDateEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldEvaluatedDate, v))
}

// EvaluatedDateNEQ applies the NEQ predicate on the "evaluated_date" field.
func EvaluatedDateNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldEvaluatedDate, v))
}

// EvaluatedDateIn applies the In predicate on the "evaluated_date" field.
func EvaluatedDateIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldEvaluatedDate, vs...))
}

// EvaluatedDateNotIn applies the NotIn predicate on the "evaluated_date" field.
func EvaluatedDateNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldEvaluatedDate, vs...))
}

// EvaluatedDateGT applies the GT predicate on the "evaluated_date" field.
func EvaluatedDateGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldEvaluatedDate, v))
}

// EvaluatedDateGTE applies the GTE predicate on the "evaluated_date" field.
func EvaluatedDateGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldEvaluatedDate, v))
}

// EvaluatedDateLT applies the LT predicate on the "evaluated_date" field.
func EvaluatedDateLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldEvaluatedDate, v))
}

// EvaluatedDateLTE applies the LTE predicate on the "evaluated_date" field.
func EvaluatedDateLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldEvaluatedDate, v))
}

// EvaluatedDateIsNil applies the IsNil predicate on the "evaluated_date" field.
func EvaluatedDateIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldEvaluatedDate))
}

// EvaluatedDateNotNil applies the NotNil predicate on the "evaluated_date" field.
func EvaluatedDateNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldEvaluatedDate))
}

// ScoreMajorElementsEQ applies the EQ predicate on the "score_major_elements" field.
func ScoreMajorElementsEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreMajorElements, v))
}

// ScoreMajorElementsNEQ applies the NEQ predicate on the "score_major_elements" field.
func ScoreMajorElementsNEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldScoreMajorElements, v))
}

// ScoreMajorElementsIn applies the In predicate on the "score_major_elements" field.
func ScoreMajorElementsIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldScoreMajorElements, vs...))
}

// ScoreMajorElementsNotIn applies the NotIn predicate on the "score_major_elements" field.
func ScoreMajorElementsNotIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldScoreMajorElements, vs...))
}

// ScoreMajorElementsGT applies the GT predicate on the "score_major_elements" field.
func ScoreMajorElementsGT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldScoreMajorElements, v))
}

// ScoreMajorElementsGTE applies the GTE predicate on the "score_major_elements" field.
func ScoreMajorElementsGTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldScoreMajorElements, v))
}

// ScoreMajorElementsLT applies the LT predicate on the "score_major_elements" field.
func ScoreMajorElementsLT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldScoreMajorElements, v))
}

// ScoreMajorElementsLTE applies the LTE predicate on the "score_major_elements" field.
func ScoreMajorElementsLTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldScoreMajorElements, v))
}

// ScoreMajorElementsIsNil applies the IsNil predicate on the "score_major_elements" field.
func ScoreMajorElementsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldScoreMajorElements))
}

// ScoreMajorElementsNotNil applies the NotNil predicate on the "score_major_elements" field.
func ScoreMajorElementsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldScoreMajorElements))
}

// ScoreMinorElementsEQ applies the EQ predicate on the "score_minor_elements" field.
func ScoreMinorElementsEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreMinorElements, v))
}

// ScoreMinorElementsNEQ applies the NEQ predicate on the "score_minor_elements" field.
func ScoreMinorElementsNEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldScoreMinorElements, v))
}

// ScoreMinorElementsIn applies the In predicate on the "score_minor_elements" field.
func ScoreMinorElementsIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldScoreMinorElements, vs...))
}

// ScoreMinorElementsNotIn applies the NotIn predicate on the "score_minor_elements" field.
func ScoreMinorElementsNotIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldScoreMinorElements, vs...))
}

// ScoreMinorElementsGT applies the GT predicate on the "score_minor_elements" field.
func ScoreMinorElementsGT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldScoreMinorElements, v))
}

// ScoreMinorElementsGTE applies the GTE predicate on the "score_minor_elements" field.
func ScoreMinorElementsGTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldScoreMinorElements, v))
}

// ScoreMinorElementsLT applies the LT predicate on the "score_minor_elements" field.
func ScoreMinorElementsLT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldScoreMinorElements, v))
}

// ScoreMinorElementsLTE applies the LTE predicate on the "score_minor_elements" field.
func ScoreMinorElementsLTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldScoreMinorElements, v))
}

// ScoreMinorElementsIsNil applies the IsNil predicate on the "score_minor_elements" field.
func ScoreMinorElementsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldScoreMinorElements))
}

// ScoreMinorElementsNotNil applies the NotNil predicate on the "score_minor_elements" field.
func ScoreMinorElementsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldScoreMinorElements))
}

// ScorePollutantsEQ applies the EQ predicate on the "score_pollutants" field.
func ScorePollutantsEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScorePollutants, v))
}

// ScorePollutantsNEQ applies the NEQ predicate on the "score_pollutants" field.
func ScorePollutantsNEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldScorePollutants, v))
}

// ScorePollutantsIn applies the In predicate on the "score_pollutants" field.
func ScorePollutantsIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldScorePollutants, vs...))
}

// ScorePollutantsNotIn applies the NotIn predicate on the "score_pollutants" field.
func ScorePollutantsNotIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldScorePollutants, vs...))
}

// ScorePollutantsGT applies the GT predicate on the "score_pollutants" field.
func ScorePollutantsGT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldScorePollutants, v))
}

// ScorePollutantsGTE applies the GTE predicate on the "score_pollutants" field.
func ScorePollutantsGTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldScorePollutants, v))
}

// ScorePollutantsLT applies the LT predicate on the "score_pollutants" field.
func ScorePollutantsLT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldScorePollutants, v))
}

// ScorePollutantsLTE applies the LTE predicate on the "score_pollutants" field.
func ScorePollutantsLTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldScorePollutants, v))
}

// ScorePollutantsIsNil applies the IsNil predicate on the "score_pollutants" field.
func ScorePollutantsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldScorePollutants))
}

// ScorePollutantsNotNil applies the NotNil predicate on the "score_pollutants" field.
func ScorePollutantsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldScorePollutants))
}

// ScoreBaseElementsEQ applies the EQ predicate on the "score_base_elements" field.
func ScoreBaseElementsEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreBaseElements, v))
}

// ScoreBaseElementsNEQ applies the NEQ predicate on the "score_base_elements" field.
func ScoreBaseElementsNEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldScoreBaseElements, v))
}

// ScoreBaseElementsIn applies the In predicate on the "score_base_elements" field.
func ScoreBaseElementsIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldScoreBaseElements, vs...))
}

// ScoreBaseElementsNotIn applies the NotIn predicate on the "score_base_elements" field.
func ScoreBaseElementsNotIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldScoreBaseElements, vs...))
}

// ScoreBaseElementsGT applies the GT predicate on the "score_base_elements" field.
func ScoreBaseElementsGT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldScoreBaseElements, v))
}

// ScoreBaseElementsGTE applies the GTE predicate on the "score_base_elements" field.
func ScoreBaseElementsGTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldScoreBaseElements, v))
}

// ScoreBaseElementsLT applies the LT predicate on the "score_base_elements" field.
func ScoreBaseElementsLT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldScoreBaseElements, v))
}

// ScoreBaseElementsLTE applies the LTE predicate on the "score_base_elements" field.
func ScoreBaseElementsLTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldScoreBaseElements, v))
}

// ScoreBaseElementsIsNil applies the IsNil predicate on the "score_base_elements" field.
func ScoreBaseElementsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldScoreBaseElements))
}

// ScoreBaseElementsNotNil applies the NotNil predicate on the "score_base_elements" field.
func ScoreBaseElementsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldScoreBaseElements))
}

// ScoreOverallEQ applies the EQ predicate on the "score_overall" field.
func ScoreOverallEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldScoreOverall, v))
}

// ScoreOverallNEQ applies the NEQ predicate on the "score_overall" field.
func ScoreOverallNEQ(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldScoreOverall, v))
}

// ScoreOverallIn applies the In predicate on the "score_overall" field.
func ScoreOverallIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldScoreOverall, vs...))
}

// ScoreOverallNotIn applies the NotIn predicate on the "score_overall" field.
func ScoreOverallNotIn(vs ...int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldScoreOverall, vs...))
}

// ScoreOverallGT applies the GT predicate on the "score_overall" field.
func ScoreOverallGT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldScoreOverall, v))
}

// ScoreOverallGTE applies the GTE predicate on the "score_overall" field.
func ScoreOverallGTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldScoreOverall, v))
}

// ScoreOverallLT applies the LT predicate on the "score_overall" field.
func ScoreOverallLT(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldScoreOverall, v))
}

// ScoreOverallLTE applies the LTE predicate on the "score_overall" field.
func ScoreOverallLTE(v int) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldScoreOverall, v))
}

// ScoreOverallIsNil applies the IsNil predicate on the "score_overall" field.
func ScoreOverallIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldScoreOverall))
}

// ScoreOverallNotNil applies the NotNil predicate on the "score_overall" field.
func ScoreOverallNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldScoreOverall))
}

// SalinityEQ applies the EQ predicate on the "salinity" field.
func SalinityEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSalinity, v))
}

// SalinityNEQ applies the NEQ predicate on the "salinity" field.
func SalinityNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSalinity, v))
}

// SalinityIn applies the In predicate on the "salinity" field.
func SalinityIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSalinity, vs...))
}

// SalinityNotIn applies the NotIn predicate on the "salinity" field.
func SalinityNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSalinity, vs...))
}

// SalinityGT applies the GT predicate on the "salinity" field.
func SalinityGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSalinity, v))
}

// SalinityGTE applies the GTE predicate on the "salinity" field.
func SalinityGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSalinity, v))
}

// SalinityLT applies the LT predicate on the "salinity" field.
func SalinityLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSalinity, v))
}

// SalinityLTE applies the LTE predicate on the "salinity" field.
func SalinityLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSalinity, v))
}

// SalinityIsNil applies the IsNil predicate on the "salinity" field.
func SalinityIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSalinity))
}

// SalinityNotNil applies the NotNil predicate on the "salinity" field.
func SalinityNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSalinity))
}

// SalinityStatusEQ applies the EQ predicate on the "salinity_status" field.
func SalinityStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSalinityStatus, vc))
}

// SalinityStatusNEQ applies the NEQ predicate on the "salinity_status" field.
func SalinityStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSalinityStatus, vc))
}

// SalinityStatusIn applies the In predicate on the "salinity_status" field.
func SalinityStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSalinityStatus, v...))
}

// SalinityStatusNotIn applies the NotIn predicate on the "salinity_status" field.
func SalinityStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSalinityStatus, v...))
}

// SalinityStatusGT applies the GT predicate on the "salinity_status" field.
func SalinityStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSalinityStatus, vc))
}

// SalinityStatusGTE applies the GTE predicate on the "salinity_status" field.
func SalinityStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSalinityStatus, vc))
}

// SalinityStatusLT applies the LT predicate on the "salinity_status" field.
func SalinityStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSalinityStatus, vc))
}

// SalinityStatusLTE applies the LTE predicate on the "salinity_status" field.
func SalinityStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSalinityStatus, vc))
}

// SalinityStatusContains applies the Contains predicate on the "salinity_status" field.
func SalinityStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSalinityStatus, vc))
}

// SalinityStatusHasPrefix applies the HasPrefix predicate on the "salinity_status" field.
func SalinityStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSalinityStatus, vc))
}

// SalinityStatusHasSuffix applies the HasSuffix predicate on the "salinity_status" field.
func SalinityStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSalinityStatus, vc))
}

// SalinityStatusIsNil applies the IsNil predicate on the "salinity_status" field.
func SalinityStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSalinityStatus))
}

// SalinityStatusNotNil applies the NotNil predicate on the "salinity_status" field.
func SalinityStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSalinityStatus))
}

// SalinityStatusEqualFold applies the EqualFold predicate on the "salinity_status" field.
func SalinityStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSalinityStatus, vc))
}

// SalinityStatusContainsFold applies the ContainsFold predicate on the "salinity_status" field.
func SalinityStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSalinityStatus, vc))
}

// KhEQ applies the EQ predicate on the "kh" field.
func KhEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldKh, v))
}

// KhNEQ applies the NEQ predicate on the "kh" field.
func KhNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldKh, v))
}

// KhIn applies the In predicate on the "kh" field.
func KhIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldKh, vs...))
}

// KhNotIn applies the NotIn predicate on the "kh" field.
func KhNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldKh, vs...))
}

// KhGT applies the GT predicate on the "kh" field.
func KhGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldKh, v))
}

// KhGTE applies the GTE predicate on the "kh" field.
func KhGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldKh, v))
}

// KhLT applies the LT predicate on the "kh" field.
func KhLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldKh, v))
}

// KhLTE applies the LTE predicate on the "kh" field.
func KhLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldKh, v))
}

// KhIsNil applies the IsNil predicate on the "kh" field.
func KhIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldKh))
}

// KhNotNil applies the NotNil predicate on the "kh" field.
func KhNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldKh))
}

// KhStatusEQ applies the EQ predicate on the "kh_status" field.
func KhStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldKhStatus, vc))
}

// KhStatusNEQ applies the NEQ predicate on the "kh_status" field.
func KhStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldKhStatus, vc))
}

// KhStatusIn applies the In predicate on the "kh_status" field.
func KhStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldKhStatus, v...))
}

// KhStatusNotIn applies the NotIn predicate on the "kh_status" field.
func KhStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldKhStatus, v...))
}

// KhStatusGT applies the GT predicate on the "kh_status" field.
func KhStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldKhStatus, vc))
}

// KhStatusGTE applies the GTE predicate on the "kh_status" field.
func KhStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldKhStatus, vc))
}

// KhStatusLT applies the LT predicate on the "kh_status" field.
func KhStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldKhStatus, vc))
}

// KhStatusLTE applies the LTE predicate on the "kh_status" field.
func KhStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldKhStatus, vc))
}

// KhStatusContains applies the Contains predicate on the "kh_status" field.
func KhStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldKhStatus, vc))
}

// KhStatusHasPrefix applies the HasPrefix predicate on the "kh_status" field.
func KhStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldKhStatus, vc))
}

// KhStatusHasSuffix applies the HasSuffix predicate on the "kh_status" field.
func KhStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldKhStatus, vc))
}

// KhStatusIsNil applies the IsNil predicate on the "kh_status" field.
func KhStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldKhStatus))
}

// KhStatusNotNil applies the NotNil predicate on the "kh_status" field.
func KhStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldKhStatus))
}

// KhStatusEqualFold applies the EqualFold predicate on the "kh_status" field.
func KhStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldKhStatus, vc))
}

// KhStatusContainsFold applies the ContainsFold predicate on the "kh_status" field.
func KhStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldKhStatus, vc))
}

// ClEQ applies the EQ predicate on the "cl" field.
func ClEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCl, v))
}

// ClNEQ applies the NEQ predicate on the "cl" field.
func ClNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCl, v))
}

// ClIn applies the In predicate on the "cl" field.
func ClIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCl, vs...))
}

// ClNotIn applies the NotIn predicate on the "cl" field.
func ClNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCl, vs...))
}

// ClGT applies the GT predicate on the "cl" field.
func ClGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCl, v))
}

// ClGTE applies the GTE predicate on the "cl" field.
func ClGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCl, v))
}

// ClLT applies the LT predicate on the "cl" field.
func ClLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCl, v))
}

// ClLTE applies the LTE predicate on the "cl" field.
func ClLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCl, v))
}

// ClIsNil applies the IsNil predicate on the "cl" field.
func ClIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCl))
}

// ClNotNil applies the NotNil predicate on the "cl" field.
func ClNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCl))
}

// ClStatusEQ applies the EQ predicate on the "cl_status" field.
func ClStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldClStatus, vc))
}

// ClStatusNEQ applies the NEQ predicate on the "cl_status" field.
func ClStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldClStatus, vc))
}

// ClStatusIn applies the In predicate on the "cl_status" field.
func ClStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldClStatus, v...))
}

// ClStatusNotIn applies the NotIn predicate on the "cl_status" field.
func ClStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldClStatus, v...))
}

// ClStatusGT applies the GT predicate on the "cl_status" field.
func ClStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldClStatus, vc))
}

// ClStatusGTE applies the GTE predicate on the "cl_status" field.
func ClStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldClStatus, vc))
}

// ClStatusLT applies the LT predicate on the "cl_status" field.
func ClStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldClStatus, vc))
}

// ClStatusLTE applies the LTE predicate on the "cl_status" field.
func ClStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldClStatus, vc))
}

// ClStatusContains applies the Contains predicate on the "cl_status" field.
func ClStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldClStatus, vc))
}

// ClStatusHasPrefix applies the HasPrefix predicate on the "cl_status" field.
func ClStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldClStatus, vc))
}

// ClStatusHasSuffix applies the HasSuffix predicate on the "cl_status" field.
func ClStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldClStatus, vc))
}

// ClStatusIsNil applies the IsNil predicate on the "cl_status" field.
func ClStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldClStatus))
}

// ClStatusNotNil applies the NotNil predicate on the "cl_status" field.
func ClStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldClStatus))
}

// ClStatusEqualFold applies the EqualFold predicate on the "cl_status" field.
func ClStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldClStatus, vc))
}

// ClStatusContainsFold applies the ContainsFold predicate on the "cl_status" field.
func ClStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldClStatus, vc))
}

// NaEQ applies the EQ predicate on the "na" field.
func NaEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNa, v))
}

// NaNEQ applies the NEQ predicate on the "na" field.
func NaNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldNa, v))
}

// NaIn applies the In predicate on the "na" field.
func NaIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldNa, vs...))
}

// NaNotIn applies the NotIn predicate on the "na" field.
func NaNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldNa, vs...))
}

// NaGT applies the GT predicate on the "na" field.
func NaGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldNa, v))
}

// NaGTE applies the GTE predicate on the "na" field.
func NaGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldNa, v))
}

// NaLT applies the LT predicate on the "na" field.
func NaLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldNa, v))
}

// NaLTE applies the LTE predicate on the "na" field.
func NaLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldNa, v))
}

// NaIsNil applies the IsNil predicate on the "na" field.
func NaIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNa))
}

// NaNotNil applies the NotNil predicate on the "na" field.
func NaNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNa))
}

// NaStatusEQ applies the EQ predicate on the "na_status" field.
func NaStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNaStatus, vc))
}

// NaStatusNEQ applies the NEQ predicate on the "na_status" field.
func NaStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldNaStatus, vc))
}

// NaStatusIn applies the In predicate on the "na_status" field.
func NaStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldNaStatus, v...))
}

// NaStatusNotIn applies the NotIn predicate on the "na_status" field.
func NaStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldNaStatus, v...))
}

// NaStatusGT applies the GT predicate on the "na_status" field.
func NaStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldNaStatus, vc))
}

// NaStatusGTE applies the GTE predicate on the "na_status" field.
func NaStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldNaStatus, vc))
}

// NaStatusLT applies the LT predicate on the "na_status" field.
func NaStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldNaStatus, vc))
}

// NaStatusLTE applies the LTE predicate on the "na_status" field.
func NaStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldNaStatus, vc))
}

// NaStatusContains applies the Contains predicate on the "na_status" field.
func NaStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldNaStatus, vc))
}

// NaStatusHasPrefix applies the HasPrefix predicate on the "na_status" field.
func NaStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldNaStatus, vc))
}

// NaStatusHasSuffix applies the HasSuffix predicate on the "na_status" field.
func NaStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldNaStatus, vc))
}

// NaStatusIsNil applies the IsNil predicate on the "na_status" field.
func NaStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNaStatus))
}

// NaStatusNotNil applies the NotNil predicate on the "na_status" field.
func NaStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNaStatus))
}

// NaStatusEqualFold applies the EqualFold predicate on the "na_status" field.
func NaStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldNaStatus, vc))
}

// NaStatusContainsFold applies the ContainsFold predicate on the "na_status" field.
func NaStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldNaStatus, vc))
}

// MgEQ applies the EQ predicate on the "mg" field.
func MgEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMg, v))
}

// MgNEQ applies the NEQ predicate on the "mg" field.
func MgNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldMg, v))
}

// MgIn applies the In predicate on the "mg" field.
func MgIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldMg, vs...))
}

// MgNotIn applies the NotIn predicate on the "mg" field.
func MgNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldMg, vs...))
}

// MgGT applies the GT predicate on the "mg" field.
func MgGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldMg, v))
}

// MgGTE applies the GTE predicate on the "mg" field.
func MgGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldMg, v))
}

// MgLT applies the LT predicate on the "mg" field.
func MgLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldMg, v))
}

// MgLTE applies the LTE predicate on the "mg" field.
func MgLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldMg, v))
}

// MgIsNil applies the IsNil predicate on the "mg" field.
func MgIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMg))
}

// MgNotNil applies the NotNil predicate on the "mg" field.
func MgNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMg))
}

// MgStatusEQ applies the EQ predicate on the "mg_status" field.
func MgStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMgStatus, vc))
}

// MgStatusNEQ applies the NEQ predicate on the "mg_status" field.
func MgStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldMgStatus, vc))
}

// MgStatusIn applies the In predicate on the "mg_status" field.
func MgStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldMgStatus, v...))
}

// MgStatusNotIn applies the NotIn predicate on the "mg_status" field.
func MgStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldMgStatus, v...))
}

// MgStatusGT applies the GT predicate on the "mg_status" field.
func MgStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldMgStatus, vc))
}

// MgStatusGTE applies the GTE predicate on the "mg_status" field.
func MgStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldMgStatus, vc))
}

// MgStatusLT applies the LT predicate on the "mg_status" field.
func MgStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldMgStatus, vc))
}

// MgStatusLTE applies the LTE predicate on the "mg_status" field.
func MgStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldMgStatus, vc))
}

// MgStatusContains applies the Contains predicate on the "mg_status" field.
func MgStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldMgStatus, vc))
}

// MgStatusHasPrefix applies the HasPrefix predicate on the "mg_status" field.
func MgStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldMgStatus, vc))
}

// MgStatusHasSuffix applies the HasSuffix predicate on the "mg_status" field.
func MgStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldMgStatus, vc))
}

// MgStatusIsNil applies the IsNil predicate on the "mg_status" field.
func MgStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMgStatus))
}

// MgStatusNotNil applies the NotNil predicate on the "mg_status" field.
func MgStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMgStatus))
}

// MgStatusEqualFold applies the EqualFold predicate on the "mg_status" field.
func MgStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldMgStatus, vc))
}

// MgStatusContainsFold applies the ContainsFold predicate on the "mg_status" field.
func MgStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldMgStatus, vc))
}

// SEQ applies the EQ predicate on the "s" field.
func SEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldS, v))
}

// SNEQ applies the NEQ predicate on the "s" field.
func SNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldS, v))
}

// SIn applies the In predicate on the "s" field.
func SIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldS, vs...))
}

// SNotIn applies the NotIn predicate on the "s" field.
func SNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldS, vs...))
}

// SGT applies the GT predicate on the "s" field.
func SGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldS, v))
}

// SGTE applies the GTE predicate on the "s" field.
func SGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldS, v))
}

// SLT applies the LT predicate on the "s" field.
func SLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldS, v))
}

// SLTE applies the LTE predicate on the "s" field.
func SLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldS, v))
}

// SIsNil applies the IsNil predicate on the "s" field.
func SIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldS))
}

// SNotNil applies the NotNil predicate on the "s" field.
func SNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldS))
}

// SStatusEQ applies the EQ predicate on the "s_status" field.
func SStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSStatus, vc))
}

// SStatusNEQ applies the NEQ predicate on the "s_status" field.
func SStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSStatus, vc))
}

// SStatusIn applies the In predicate on the "s_status" field.
func SStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSStatus, v...))
}

// SStatusNotIn applies the NotIn predicate on the "s_status" field.
func SStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSStatus, v...))
}

// SStatusGT applies the GT predicate on the "s_status" field.
func SStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSStatus, vc))
}

// SStatusGTE applies the GTE predicate on the "s_status" field.
func SStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSStatus, vc))
}

// SStatusLT applies the LT predicate on the "s_status" field.
func SStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSStatus, vc))
}

// SStatusLTE applies the LTE predicate on the "s_status" field.
func SStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSStatus, vc))
}

// SStatusContains applies the Contains predicate on the "s_status" field.
func SStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSStatus, vc))
}

// SStatusHasPrefix applies the HasPrefix predicate on the "s_status" field.
func SStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSStatus, vc))
}

// SStatusHasSuffix applies the HasSuffix predicate on the "s_status" field.
func SStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSStatus, vc))
}

// SStatusIsNil applies the IsNil predicate on the "s_status" field.
func SStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSStatus))
}

// SStatusNotNil applies the NotNil predicate on the "s_status" field.
func SStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSStatus))
}

// SStatusEqualFold applies the EqualFold predicate on the "s_status" field.
func SStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSStatus, vc))
}

// SStatusContainsFold applies the ContainsFold predicate on the "s_status" field.
func SStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSStatus, vc))
}

// CaEQ applies the EQ predicate on the "ca" field.
func CaEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCa, v))
}

// CaNEQ applies the NEQ predicate on the "ca" field.
func CaNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCa, v))
}

// CaIn applies the In predicate on the "ca" field.
func CaIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCa, vs...))
}

// CaNotIn applies the NotIn predicate on the "ca" field.
func CaNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCa, vs...))
}

// CaGT applies the GT predicate on the "ca" field.
func CaGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCa, v))
}

// CaGTE applies the GTE predicate on the "ca" field.
func CaGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCa, v))
}

// CaLT applies the LT predicate on the "ca" field.
func CaLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCa, v))
}

// CaLTE applies the LTE predicate on the "ca" field.
func CaLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCa, v))
}

// CaIsNil applies the IsNil predicate on the "ca" field.
func CaIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCa))
}

// CaNotNil applies the NotNil predicate on the "ca" field.
func CaNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCa))
}

// CaStatusEQ applies the EQ predicate on the "ca_status" field.
func CaStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCaStatus, vc))
}

// CaStatusNEQ applies the NEQ predicate on the "ca_status" field.
func CaStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldCaStatus, vc))
}

// CaStatusIn applies the In predicate on the "ca_status" field.
func CaStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldCaStatus, v...))
}

// CaStatusNotIn applies the NotIn predicate on the "ca_status" field.
func CaStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldCaStatus, v...))
}

// CaStatusGT applies the GT predicate on the "ca_status" field.
func CaStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldCaStatus, vc))
}

// CaStatusGTE applies the GTE predicate on the "ca_status" field.
func CaStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldCaStatus, vc))
}

// CaStatusLT applies the LT predicate on the "ca_status" field.
func CaStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldCaStatus, vc))
}

// CaStatusLTE applies the LTE predicate on the "ca_status" field.
func CaStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldCaStatus, vc))
}

// CaStatusContains applies the Contains predicate on the "ca_status" field.
func CaStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldCaStatus, vc))
}

// CaStatusHasPrefix applies the HasPrefix predicate on the "ca_status" field.
func CaStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldCaStatus, vc))
}

// CaStatusHasSuffix applies the HasSuffix predicate on the "ca_status" field.
func CaStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldCaStatus, vc))
}

// CaStatusIsNil applies the IsNil predicate on the "ca_status" field.
func CaStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCaStatus))
}

// CaStatusNotNil applies the NotNil predicate on the "ca_status" field.
func CaStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCaStatus))
}

// CaStatusEqualFold applies the EqualFold predicate on the "ca_status" field.
func CaStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldCaStatus, vc))
}

// CaStatusContainsFold applies the ContainsFold predicate on the "ca_status" field.
func CaStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldCaStatus, vc))
}

// KEQ applies the EQ predicate on the "k" field.
func KEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldK, v))
}

// KNEQ applies the NEQ predicate on the "k" field.
func KNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldK, v))
}

// KIn applies the In predicate on the "k" field.
func KIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldK, vs...))
}

// KNotIn applies the NotIn predicate on the "k" field.
func KNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldK, vs...))
}

// KGT applies the GT predicate on the "k" field.
func KGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldK, v))
}

// KGTE applies the GTE predicate on the "k" field.
func KGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldK, v))
}

// KLT applies the LT predicate on the "k" field.
func KLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldK, v))
}

// KLTE applies the LTE predicate on the "k" field.
func KLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldK, v))
}

// KIsNil applies the IsNil predicate on the "k" field.
func KIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldK))
}

// KNotNil applies the NotNil predicate on the "k" field.
func KNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldK))
}

// KStatusEQ applies the EQ predicate on the "k_status" field.
func KStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldKStatus, vc))
}

// KStatusNEQ applies the NEQ predicate on the "k_status" field.
func KStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldKStatus, vc))
}

// KStatusIn applies the In predicate on the "k_status" field.
func KStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldKStatus, v...))
}

// KStatusNotIn applies the NotIn predicate on the "k_status" field.
func KStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldKStatus, v...))
}

// KStatusGT applies the GT predicate on the "k_status" field.
func KStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldKStatus, vc))
}

// KStatusGTE applies the GTE predicate on the "k_status" field.
func KStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldKStatus, vc))
}

// KStatusLT applies the LT predicate on the "k_status" field.
func KStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldKStatus, vc))
}

// KStatusLTE applies the LTE predicate on the "k_status" field.
func KStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldKStatus, vc))
}

// KStatusContains applies the Contains predicate on the "k_status" field.
func KStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldKStatus, vc))
}

// KStatusHasPrefix applies the HasPrefix predicate on the "k_status" field.
func KStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldKStatus, vc))
}

// KStatusHasSuffix applies the HasSuffix predicate on the "k_status" field.
func KStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldKStatus, vc))
}

// KStatusIsNil applies the IsNil predicate on the "k_status" field.
func KStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldKStatus))
}

// KStatusNotNil applies the NotNil predicate on the "k_status" field.
func KStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldKStatus))
}

// KStatusEqualFold applies the EqualFold predicate on the "k_status" field.
func KStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldKStatus, vc))
}

// KStatusContainsFold applies the ContainsFold predicate on the "k_status" field.
func KStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldKStatus, vc))
}

// BrEQ applies the EQ predicate on the "br" field.
func BrEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBr, v))
}

// BrNEQ applies the NEQ predicate on the "br" field.
func BrNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldBr, v))
}

// BrIn applies the In predicate on the "br" field.
func BrIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldBr, vs...))
}

// BrNotIn applies the NotIn predicate on the "br" field.
func BrNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldBr, vs...))
}

// BrGT applies the GT predicate on the "br" field.
func BrGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldBr, v))
}

// BrGTE applies the GTE predicate on the "br" field.
func BrGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldBr, v))
}

// BrLT applies the LT predicate on the "br" field.
func BrLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldBr, v))
}

// BrLTE applies the LTE predicate on the "br" field.
func BrLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldBr, v))
}

// BrIsNil applies the IsNil predicate on the "br" field.
func BrIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBr))
}

// BrNotNil applies the NotNil predicate on the "br" field.
func BrNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBr))
}

// BrStatusEQ applies the EQ predicate on the "br_status" field.
func BrStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBrStatus, vc))
}

// BrStatusNEQ applies the NEQ predicate on the "br_status" field.
func BrStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldBrStatus, vc))
}

// BrStatusIn applies the In predicate on the "br_status" field.
func BrStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldBrStatus, v...))
}

// BrStatusNotIn applies the NotIn predicate on the "br_status" field.
func BrStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldBrStatus, v...))
}

// BrStatusGT applies the GT predicate on the "br_status" field.
func BrStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldBrStatus, vc))
}

// BrStatusGTE applies the GTE predicate on the "br_status" field.
func BrStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldBrStatus, vc))
}

// BrStatusLT applies the LT predicate on the "br_status" field.
func BrStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldBrStatus, vc))
}

// BrStatusLTE applies the LTE predicate on the "br_status" field.
func BrStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldBrStatus, vc))
}

// BrStatusContains applies the Contains predicate on the "br_status" field.
func BrStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldBrStatus, vc))
}

// BrStatusHasPrefix applies the HasPrefix predicate on the "br_status" field.
func BrStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldBrStatus, vc))
}

// BrStatusHasSuffix applies the HasSuffix predicate on the "br_status" field.
func BrStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldBrStatus, vc))
}

// BrStatusIsNil applies the IsNil predicate on the "br_status" field.
func BrStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBrStatus))
}

// BrStatusNotNil applies the NotNil predicate on the "br_status" field.
func BrStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBrStatus))
}

// BrStatusEqualFold applies the EqualFold predicate on the "br_status" field.
func BrStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldBrStatus, vc))
}

// BrStatusContainsFold applies the ContainsFold predicate on the "br_status" field.
func BrStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldBrStatus, vc))
}

// SrEQ applies the EQ predicate on the "sr" field.
func SrEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSr, v))
}

// SrNEQ applies the NEQ predicate on the "sr" field.
func SrNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSr, v))
}

// SrIn applies the In predicate on the "sr" field.
func SrIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSr, vs...))
}

// SrNotIn applies the NotIn predicate on the "sr" field.
func SrNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSr, vs...))
}

// SrGT applies the GT predicate on the "sr" field.
func SrGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSr, v))
}

// SrGTE applies the GTE predicate on the "sr" field.
func SrGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSr, v))
}

// SrLT applies the LT predicate on the "sr" field.
func SrLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSr, v))
}

// SrLTE applies the LTE predicate on the "sr" field.
func SrLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSr, v))
}

// SrIsNil applies the IsNil predicate on the "sr" field.
func SrIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSr))
}

// SrNotNil applies the NotNil predicate on the "sr" field.
func SrNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSr))
}

// SrStatusEQ applies the EQ predicate on the "sr_status" field.
func SrStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSrStatus, vc))
}

// SrStatusNEQ applies the NEQ predicate on the "sr_status" field.
func SrStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSrStatus, vc))
}

// SrStatusIn applies the In predicate on the "sr_status" field.
func SrStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSrStatus, v...))
}

// SrStatusNotIn applies the NotIn predicate on the "sr_status" field.
func SrStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSrStatus, v...))
}

// SrStatusGT applies the GT predicate on the "sr_status" field.
func SrStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSrStatus, vc))
}

// SrStatusGTE applies the GTE predicate on the "sr_status" field.
func SrStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSrStatus, vc))
}

// SrStatusLT applies the LT predicate on the "sr_status" field.
func SrStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSrStatus, vc))
}

// SrStatusLTE applies the LTE predicate on the "sr_status" field.
func SrStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSrStatus, vc))
}

// SrStatusContains applies the Contains predicate on the "sr_status" field.
func SrStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSrStatus, vc))
}

// SrStatusHasPrefix applies the HasPrefix predicate on the "sr_status" field.
func SrStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSrStatus, vc))
}

// SrStatusHasSuffix applies the HasSuffix predicate on the "sr_status" field.
func SrStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSrStatus, vc))
}

// SrStatusIsNil applies the IsNil predicate on the "sr_status" field.
func SrStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSrStatus))
}

// SrStatusNotNil applies the NotNil predicate on the "sr_status" field.
func SrStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSrStatus))
}

// SrStatusEqualFold applies the EqualFold predicate on the "sr_status" field.
func SrStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSrStatus, vc))
}

// SrStatusContainsFold applies the ContainsFold predicate on the "sr_status" field.
func SrStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSrStatus, vc))
}

// BEQ applies the EQ predicate on the "b" field.
func BEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldB, v))
}

// BNEQ applies the NEQ predicate on the "b" field.
func BNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldB, v))
}

// BIn applies the In predicate on the "b" field.
func BIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldB, vs...))
}

// BNotIn applies the NotIn predicate on the "b" field.
func BNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldB, vs...))
}

// BGT applies the GT predicate on the "b" field.
func BGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldB, v))
}

// BGTE applies the GTE predicate on the "b" field.
func BGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldB, v))
}

// BLT applies the LT predicate on the "b" field.
func BLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldB, v))
}

// BLTE applies the LTE predicate on the "b" field.
func BLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldB, v))
}

// BIsNil applies the IsNil predicate on the "b" field.
func BIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldB))
}

// BNotNil applies the NotNil predicate on the "b" field.
func BNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldB))
}

// BStatusEQ applies the EQ predicate on the "b_status" field.
func BStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBStatus, vc))
}

// BStatusNEQ applies the NEQ predicate on the "b_status" field.
func BStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldBStatus, vc))
}

// BStatusIn applies the In predicate on the "b_status" field.
func BStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldBStatus, v...))
}

// BStatusNotIn applies the NotIn predicate on the "b_status" field.
func BStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldBStatus, v...))
}

// BStatusGT applies the GT predicate on the "b_status" field.
func BStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldBStatus, vc))
}

// BStatusGTE applies the GTE predicate on the "b_status" field.
func BStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldBStatus, vc))
}

// BStatusLT applies the LT predicate on the "b_status" field.
func BStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldBStatus, vc))
}

// BStatusLTE applies the LTE predicate on the "b_status" field.
func BStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldBStatus, vc))
}

// BStatusContains applies the Contains predicate on the "b_status" field.
func BStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldBStatus, vc))
}

// BStatusHasPrefix applies the HasPrefix predicate on the "b_status" field.
func BStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldBStatus, vc))
}

// BStatusHasSuffix applies the HasSuffix predicate on the "b_status" field.
func BStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldBStatus, vc))
}

// BStatusIsNil applies the IsNil predicate on the "b_status" field.
func BStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBStatus))
}

// BStatusNotNil applies the NotNil predicate on the "b_status" field.
func BStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBStatus))
}

// BStatusEqualFold applies the EqualFold predicate on the "b_status" field.
func BStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldBStatus, vc))
}

// BStatusContainsFold applies the ContainsFold predicate on the "b_status" field.
func BStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldBStatus, vc))
}

// FEQ applies the EQ predicate on the "f" field.
func FEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldF, v))
}

// FNEQ applies the NEQ predicate on the "f" field.
func FNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldF, v))
}

// FIn applies the In predicate on the "f" field.
func FIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldF, vs...))
}

// FNotIn applies the NotIn predicate on the "f" field.
func FNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldF, vs...))
}

// FGT applies the GT predicate on the "f" field.
func FGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldF, v))
}

// FGTE applies the GTE predicate on the "f" field.
func FGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldF, v))
}

// FLT applies the LT predicate on the "f" field.
func FLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldF, v))
}

// FLTE applies the LTE predicate on the "f" field.
func FLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldF, v))
}

// FIsNil applies the IsNil predicate on the "f" field.
func FIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldF))
}

// FNotNil applies the NotNil predicate on the "f" field.
func FNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldF))
}

// FStatusEQ applies the EQ predicate on the "f_status" field.
func FStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldFStatus, vc))
}

// FStatusNEQ applies the NEQ predicate on the "f_status" field.
func FStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldFStatus, vc))
}

// FStatusIn applies the In predicate on the "f_status" field.
func FStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldFStatus, v...))
}

// FStatusNotIn applies the NotIn predicate on the "f_status" field.
func FStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldFStatus, v...))
}

// FStatusGT applies the GT predicate on the "f_status" field.
func FStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldFStatus, vc))
}

// FStatusGTE applies the GTE predicate on the "f_status" field.
func FStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldFStatus, vc))
}

// FStatusLT applies the LT predicate on the "f_status" field.
func FStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldFStatus, vc))
}

// FStatusLTE applies the LTE predicate on the "f_status" field.
func FStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldFStatus, vc))
}

// FStatusContains applies the Contains predicate on the "f_status" field.
func FStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldFStatus, vc))
}

// FStatusHasPrefix applies the HasPrefix predicate on the "f_status" field.
func FStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldFStatus, vc))
}

// FStatusHasSuffix applies the HasSuffix predicate on the "f_status" field.
func FStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldFStatus, vc))
}

// FStatusIsNil applies the IsNil predicate on the "f_status" field.
func FStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldFStatus))
}

// FStatusNotNil applies the NotNil predicate on the "f_status" field.
func FStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldFStatus))
}

// FStatusEqualFold applies the EqualFold predicate on the "f_status" field.
func FStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldFStatus, vc))
}

// FStatusContainsFold applies the ContainsFold predicate on the "f_status" field.
func FStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldFStatus, vc))
}

// LiEQ applies the EQ predicate on the "li" field.
func LiEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLi, v))
}

// LiNEQ applies the NEQ predicate on the "li" field.
func LiNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldLi, v))
}

// LiIn applies the In predicate on the "li" field.
func LiIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldLi, vs...))
}

// LiNotIn applies the NotIn predicate on the "li" field.
func LiNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldLi, vs...))
}

// LiGT applies the GT predicate on the "li" field.
func LiGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldLi, v))
}

// LiGTE applies the GTE predicate on the "li" field.
func LiGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldLi, v))
}

// LiLT applies the LT predicate on the "li" field.
func LiLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldLi, v))
}

// LiLTE applies the LTE predicate on the "li" field.
func LiLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldLi, v))
}

// LiIsNil applies the IsNil predicate on the "li" field.
func LiIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldLi))
}

// LiNotNil applies the NotNil predicate on the "li" field.
func LiNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldLi))
}

// LiStatusEQ applies the EQ predicate on the "li_status" field.
func LiStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldLiStatus, vc))
}

// LiStatusNEQ applies the NEQ predicate on the "li_status" field.
func LiStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldLiStatus, vc))
}

// LiStatusIn applies the In predicate on the "li_status" field.
func LiStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldLiStatus, v...))
}

// LiStatusNotIn applies the NotIn predicate on the "li_status" field.
func LiStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldLiStatus, v...))
}

// LiStatusGT applies the GT predicate on the "li_status" field.
func LiStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldLiStatus, vc))
}

// LiStatusGTE applies the GTE predicate on the "li_status" field.
func LiStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldLiStatus, vc))
}

// LiStatusLT applies the LT predicate on the "li_status" field.
func LiStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldLiStatus, vc))
}

// LiStatusLTE applies the LTE predicate on the "li_status" field.
func LiStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldLiStatus, vc))
}

// LiStatusContains applies the Contains predicate on the "li_status" field.
func LiStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldLiStatus, vc))
}

// LiStatusHasPrefix applies the HasPrefix predicate on the "li_status" field.
func LiStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldLiStatus, vc))
}

// LiStatusHasSuffix applies the HasSuffix predicate on the "li_status" field.
func LiStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldLiStatus, vc))
}

// LiStatusIsNil applies the IsNil predicate on the "li_status" field.
func LiStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldLiStatus))
}

// LiStatusNotNil applies the NotNil predicate on the "li_status" field.
func LiStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldLiStatus))
}

// LiStatusEqualFold applies the EqualFold predicate on the "li_status" field.
func LiStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldLiStatus, vc))
}

// LiStatusContainsFold applies the ContainsFold predicate on the "li_status" field.
func LiStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldLiStatus, vc))
}

// SiEQ applies the EQ predicate on the "si" field.
func SiEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSi, v))
}

// SiNEQ applies the NEQ predicate on the "si" field.
func SiNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSi, v))
}

// SiIn applies the In predicate on the "si" field.
func SiIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSi, vs...))
}

// SiNotIn applies the NotIn predicate on the "si" field.
func SiNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSi, vs...))
}

// SiGT applies the GT predicate on the "si" field.
func SiGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSi, v))
}

// SiGTE applies the GTE predicate on the "si" field.
func SiGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSi, v))
}

// SiLT applies the LT predicate on the "si" field.
func SiLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSi, v))
}

// SiLTE applies the LTE predicate on the "si" field.
func SiLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSi, v))
}

// SiIsNil applies the IsNil predicate on the "si" field.
func SiIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSi))
}

// SiNotNil applies the NotNil predicate on the "si" field.
func SiNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSi))
}

// SiStatusEQ applies the EQ predicate on the "si_status" field.
func SiStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSiStatus, vc))
}

// SiStatusNEQ applies the NEQ predicate on the "si_status" field.
func SiStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSiStatus, vc))
}

// SiStatusIn applies the In predicate on the "si_status" field.
func SiStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSiStatus, v...))
}

// SiStatusNotIn applies the NotIn predicate on the "si_status" field.
func SiStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSiStatus, v...))
}

// SiStatusGT applies the GT predicate on the "si_status" field.
func SiStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSiStatus, vc))
}

// SiStatusGTE applies the GTE predicate on the "si_status" field.
func SiStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSiStatus, vc))
}

// SiStatusLT applies the LT predicate on the "si_status" field.
func SiStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSiStatus, vc))
}

// SiStatusLTE applies the LTE predicate on the "si_status" field.
func SiStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSiStatus, vc))
}

// SiStatusContains applies the Contains predicate on the "si_status" field.
func SiStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSiStatus, vc))
}

// SiStatusHasPrefix applies the HasPrefix predicate on the "si_status" field.
func SiStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSiStatus, vc))
}

// SiStatusHasSuffix applies the HasSuffix predicate on the "si_status" field.
func SiStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSiStatus, vc))
}

// SiStatusIsNil applies the IsNil predicate on the "si_status" field.
func SiStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSiStatus))
}

// SiStatusNotNil applies the NotNil predicate on the "si_status" field.
func SiStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSiStatus))
}

// SiStatusEqualFold applies the EqualFold predicate on the "si_status" field.
func SiStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSiStatus, vc))
}

// SiStatusContainsFold applies the ContainsFold predicate on the "si_status" field.
func SiStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSiStatus, vc))
}

// IEQ applies the EQ predicate on the "i" field.
func IEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldI, v))
}

// INEQ applies the NEQ predicate on the "i" field.
func INEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldI, v))
}

// IIn applies the In predicate on the "i" field.
func IIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldI, vs...))
}

// INotIn applies the NotIn predicate on the "i" field.
func INotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldI, vs...))
}

// IGT applies the GT predicate on the "i" field.
func IGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldI, v))
}

// IGTE applies the GTE predicate on the "i" field.
func IGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldI, v))
}

// ILT applies the LT predicate on the "i" field.
func ILT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldI, v))
}

// ILTE applies the LTE predicate on the "i" field.
func ILTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldI, v))
}

// IIsNil applies the IsNil predicate on the "i" field.
func IIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldI))
}

// INotNil applies the NotNil predicate on the "i" field.
func INotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldI))
}

// IStatusEQ applies the EQ predicate on the "i_status" field.
func IStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldIStatus, vc))
}

// IStatusNEQ applies the NEQ predicate on the "i_status" field.
func IStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldIStatus, vc))
}

// IStatusIn applies the In predicate on the "i_status" field.
func IStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldIStatus, v...))
}

// IStatusNotIn applies the NotIn predicate on the "i_status" field.
func IStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldIStatus, v...))
}

// IStatusGT applies the GT predicate on the "i_status" field.
func IStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldIStatus, vc))
}

// IStatusGTE applies the GTE predicate on the "i_status" field.
func IStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldIStatus, vc))
}

// IStatusLT applies the LT predicate on the "i_status" field.
func IStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldIStatus, vc))
}

// IStatusLTE applies the LTE predicate on the "i_status" field.
func IStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldIStatus, vc))
}

// IStatusContains applies the Contains predicate on the "i_status" field.
func IStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldIStatus, vc))
}

// IStatusHasPrefix applies the HasPrefix predicate on the "i_status" field.
func IStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldIStatus, vc))
}

// IStatusHasSuffix applies the HasSuffix predicate on the "i_status" field.
func IStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldIStatus, vc))
}

// IStatusIsNil applies the IsNil predicate on the "i_status" field.
func IStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldIStatus))
}

// IStatusNotNil applies the NotNil predicate on the "i_status" field.
func IStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldIStatus))
}

// IStatusEqualFold applies the EqualFold predicate on the "i_status" field.
func IStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldIStatus, vc))
}

// IStatusContainsFold applies the ContainsFold predicate on the "i_status" field.
func IStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldIStatus, vc))
}

// BaEQ applies the EQ predicate on the "ba" field.
func BaEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBa, v))
}

// BaNEQ applies the NEQ predicate on the "ba" field.
func BaNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldBa, v))
}

// BaIn applies the In predicate on the "ba" field.
func BaIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldBa, vs...))
}

// BaNotIn applies the NotIn predicate on the "ba" field.
func BaNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldBa, vs...))
}

// BaGT applies the GT predicate on the "ba" field.
func BaGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldBa, v))
}

// BaGTE applies the GTE predicate on the "ba" field.
func BaGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldBa, v))
}

// BaLT applies the LT predicate on the "ba" field.
func BaLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldBa, v))
}

// BaLTE applies the LTE predicate on the "ba" field.
func BaLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldBa, v))
}

// BaIsNil applies the IsNil predicate on the "ba" field.
func BaIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBa))
}

// BaNotNil applies the NotNil predicate on the "ba" field.
func BaNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBa))
}

// BaStatusEQ applies the EQ predicate on the "ba_status" field.
func BaStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBaStatus, vc))
}

// BaStatusNEQ applies the NEQ predicate on the "ba_status" field.
func BaStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldBaStatus, vc))
}

// BaStatusIn applies the In predicate on the "ba_status" field.
func BaStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldBaStatus, v...))
}

// BaStatusNotIn applies the NotIn predicate on the "ba_status" field.
func BaStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldBaStatus, v...))
}

// BaStatusGT applies the GT predicate on the "ba_status" field.
func BaStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldBaStatus, vc))
}

// BaStatusGTE applies the GTE predicate on the "ba_status" field.
func BaStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldBaStatus, vc))
}

// BaStatusLT applies the LT predicate on the "ba_status" field.
func BaStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldBaStatus, vc))
}

// BaStatusLTE applies the LTE predicate on the "ba_status" field.
func BaStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldBaStatus, vc))
}

// BaStatusContains applies the Contains predicate on the "ba_status" field.
func BaStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldBaStatus, vc))
}

// BaStatusHasPrefix applies the HasPrefix predicate on the "ba_status" field.
func BaStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldBaStatus, vc))
}

// BaStatusHasSuffix applies the HasSuffix predicate on the "ba_status" field.
func BaStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldBaStatus, vc))
}

// BaStatusIsNil applies the IsNil predicate on the "ba_status" field.
func BaStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBaStatus))
}

// BaStatusNotNil applies the NotNil predicate on the "ba_status" field.
func BaStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBaStatus))
}

// BaStatusEqualFold applies the EqualFold predicate on the "ba_status" field.
func BaStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldBaStatus, vc))
}

// BaStatusContainsFold applies the ContainsFold predicate on the "ba_status" field.
func BaStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldBaStatus, vc))
}

// MoEQ applies the EQ predicate on the "mo" field.
func MoEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMo, v))
}

// MoNEQ applies the NEQ predicate on the "mo" field.
func MoNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldMo, v))
}

// MoIn applies the In predicate on the "mo" field.
func MoIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldMo, vs...))
}

// MoNotIn applies the NotIn predicate on the "mo" field.
func MoNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldMo, vs...))
}

// MoGT applies the GT predicate on the "mo" field.
func MoGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldMo, v))
}

// MoGTE applies the GTE predicate on the "mo" field.
func MoGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldMo, v))
}

// MoLT applies the LT predicate on the "mo" field.
func MoLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldMo, v))
}

// MoLTE applies the LTE predicate on the "mo" field.
func MoLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldMo, v))
}

// MoIsNil applies the IsNil predicate on the "mo" field.
func MoIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMo))
}

// MoNotNil applies the NotNil predicate on the "mo" field.
func MoNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMo))
}

// MoStatusEQ applies the EQ predicate on the "mo_status" field.
func MoStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMoStatus, vc))
}

// MoStatusNEQ applies the NEQ predicate on the "mo_status" field.
func MoStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldMoStatus, vc))
}

// MoStatusIn applies the In predicate on the "mo_status" field.
func MoStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldMoStatus, v...))
}

// MoStatusNotIn applies the NotIn predicate on the "mo_status" field.
func MoStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldMoStatus, v...))
}

// MoStatusGT applies the GT predicate on the "mo_status" field.
func MoStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldMoStatus, vc))
}

// MoStatusGTE applies the GTE predicate on the "mo_status" field.
func MoStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldMoStatus, vc))
}

// MoStatusLT applies the LT predicate on the "mo_status" field.
func MoStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldMoStatus, vc))
}

// MoStatusLTE applies the LTE predicate on the "mo_status" field.
func MoStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldMoStatus, vc))
}

// MoStatusContains applies the Contains predicate on the "mo_status" field.
func MoStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldMoStatus, vc))
}

// MoStatusHasPrefix applies the HasPrefix predicate on the "mo_status" field.
func MoStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldMoStatus, vc))
}

// MoStatusHasSuffix applies the HasSuffix predicate on the "mo_status" field.
func MoStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldMoStatus, vc))
}

// MoStatusIsNil applies the IsNil predicate on the "mo_status" field.
func MoStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMoStatus))
}

// MoStatusNotNil applies the NotNil predicate on the "mo_status" field.
func MoStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMoStatus))
}

// MoStatusEqualFold applies the EqualFold predicate on the "mo_status" field.
func MoStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldMoStatus, vc))
}

// MoStatusContainsFold applies the ContainsFold predicate on the "mo_status" field.
func MoStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldMoStatus, vc))
}

// NiEQ applies the EQ predicate on the "ni" field.
func NiEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNi, v))
}

// NiNEQ applies the NEQ predicate on the "ni" field.
func NiNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldNi, v))
}

// NiIn applies the In predicate on the "ni" field.
func NiIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldNi, vs...))
}

// NiNotIn applies the NotIn predicate on the "ni" field.
func NiNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldNi, vs...))
}

// NiGT applies the GT predicate on the "ni" field.
func NiGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldNi, v))
}

// NiGTE applies the GTE predicate on the "ni" field.
func NiGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldNi, v))
}

// NiLT applies the LT predicate on the "ni" field.
func NiLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldNi, v))
}

// NiLTE applies the LTE predicate on the "ni" field.
func NiLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldNi, v))
}

// NiIsNil applies the IsNil predicate on the "ni" field.
func NiIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNi))
}

// NiNotNil applies the NotNil predicate on the "ni" field.
func NiNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNi))
}

// NiStatusEQ applies the EQ predicate on the "ni_status" field.
func NiStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNiStatus, vc))
}

// NiStatusNEQ applies the NEQ predicate on the "ni_status" field.
func NiStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldNiStatus, vc))
}

// NiStatusIn applies the In predicate on the "ni_status" field.
func NiStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldNiStatus, v...))
}

// NiStatusNotIn applies the NotIn predicate on the "ni_status" field.
func NiStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldNiStatus, v...))
}

// NiStatusGT applies the GT predicate on the "ni_status" field.
func NiStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldNiStatus, vc))
}

// NiStatusGTE applies the GTE predicate on the "ni_status" field.
func NiStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldNiStatus, vc))
}

// NiStatusLT applies the LT predicate on the "ni_status" field.
func NiStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldNiStatus, vc))
}

// NiStatusLTE applies the LTE predicate on the "ni_status" field.
func NiStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldNiStatus, vc))
}

// NiStatusContains applies the Contains predicate on the "ni_status" field.
func NiStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldNiStatus, vc))
}

// NiStatusHasPrefix applies the HasPrefix predicate on the "ni_status" field.
func NiStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldNiStatus, vc))
}

// NiStatusHasSuffix applies the HasSuffix predicate on the "ni_status" field.
func NiStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldNiStatus, vc))
}

// NiStatusIsNil applies the IsNil predicate on the "ni_status" field.
func NiStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNiStatus))
}

// NiStatusNotNil applies the NotNil predicate on the "ni_status" field.
func NiStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNiStatus))
}

// NiStatusEqualFold applies the EqualFold predicate on the "ni_status" field.
func NiStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldNiStatus, vc))
}

// NiStatusContainsFold applies the ContainsFold predicate on the "ni_status" field.
func NiStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldNiStatus, vc))
}

// MnEQ applies the EQ predicate on the "mn" field.
func MnEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldMn, v))
}

// MnNEQ applies the NEQ predicate on the "mn" field.
func MnNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldMn, v))
}

// MnIn applies the In predicate on the "mn" field.
func MnIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldMn, vs...))
}

// MnNotIn applies the NotIn predicate on the "mn" field.
func MnNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldMn, vs...))
}

// MnGT applies the GT predicate on the "mn" field.
func MnGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldMn, v))
}

// MnGTE applies the GTE predicate on the "mn" field.
func MnGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldMn, v))
}

// MnLT applies the LT predicate on the "mn" field.
func MnLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldMn, v))
}

// MnLTE applies the LTE predicate on the "mn" field.
func MnLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldMn, v))
}

// MnIsNil applies the IsNil predicate on the "mn" field.
func MnIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMn))
}

// MnNotNil applies the NotNil predicate on the "mn" field.
func MnNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMn))
}

// MnStatusEQ applies the EQ predicate on the "mn_status" field.
func MnStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldMnStatus, vc))
}

// MnStatusNEQ applies the NEQ predicate on the "mn_status" field.
func MnStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldMnStatus, vc))
}

// MnStatusIn applies the In predicate on the "mn_status" field.
func MnStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldMnStatus, v...))
}

// MnStatusNotIn applies the NotIn predicate on the "mn_status" field.
func MnStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldMnStatus, v...))
}

// MnStatusGT applies the GT predicate on the "mn_status" field.
func MnStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldMnStatus, vc))
}

// MnStatusGTE applies the GTE predicate on the "mn_status" field.
func MnStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldMnStatus, vc))
}

// MnStatusLT applies the LT predicate on the "mn_status" field.
func MnStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldMnStatus, vc))
}

// MnStatusLTE applies the LTE predicate on the "mn_status" field.
func MnStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldMnStatus, vc))
}

// MnStatusContains applies the Contains predicate on the "mn_status" field.
func MnStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldMnStatus, vc))
}

// MnStatusHasPrefix applies the HasPrefix predicate on the "mn_status" field.
func MnStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldMnStatus, vc))
}

// MnStatusHasSuffix applies the HasSuffix predicate on the "mn_status" field.
func MnStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldMnStatus, vc))
}

// MnStatusIsNil applies the IsNil predicate on the "mn_status" field.
func MnStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldMnStatus))
}

// MnStatusNotNil applies the NotNil predicate on the "mn_status" field.
func MnStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldMnStatus))
}

// MnStatusEqualFold applies the EqualFold predicate on the "mn_status" field.
func MnStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldMnStatus, vc))
}

// MnStatusContainsFold applies the ContainsFold predicate on the "mn_status" field.
func MnStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldMnStatus, vc))
}

// AsEQ applies the EQ predicate on the "as" field.
func AsEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAs, v))
}

// AsNEQ applies the NEQ predicate on the "as" field.
func AsNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldAs, v))
}

// AsIn applies the In predicate on the "as" field.
func AsIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldAs, vs...))
}

// AsNotIn applies the NotIn predicate on the "as" field.
func AsNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldAs, vs...))
}

// AsGT applies the GT predicate on the "as" field.
func AsGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldAs, v))
}

// AsGTE applies the GTE predicate on the "as" field.
func AsGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldAs, v))
}

// AsLT applies the LT predicate on the "as" field.
func AsLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldAs, v))
}

// AsLTE applies the LTE predicate on the "as" field.
func AsLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldAs, v))
}

// AsIsNil applies the IsNil predicate on the "as" field.
func AsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAs))
}

// AsNotNil applies the NotNil predicate on the "as" field.
func AsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAs))
}

// AsStatusEQ applies the EQ predicate on the "as_status" field.
func AsStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAsStatus, vc))
}

// AsStatusNEQ applies the NEQ predicate on the "as_status" field.
func AsStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldAsStatus, vc))
}

// AsStatusIn applies the In predicate on the "as_status" field.
func AsStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldAsStatus, v...))
}

// AsStatusNotIn applies the NotIn predicate on the "as_status" field.
func AsStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldAsStatus, v...))
}

// AsStatusGT applies the GT predicate on the "as_status" field.
func AsStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldAsStatus, vc))
}

// AsStatusGTE applies the GTE predicate on the "as_status" field.
func AsStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldAsStatus, vc))
}

// AsStatusLT applies the LT predicate on the "as_status" field.
func AsStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldAsStatus, vc))
}

// AsStatusLTE applies the LTE predicate on the "as_status" field.
func AsStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldAsStatus, vc))
}

// AsStatusContains applies the Contains predicate on the "as_status" field.
func AsStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldAsStatus, vc))
}

// AsStatusHasPrefix applies the HasPrefix predicate on the "as_status" field.
func AsStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldAsStatus, vc))
}

// AsStatusHasSuffix applies the HasSuffix predicate on the "as_status" field.
func AsStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldAsStatus, vc))
}

// AsStatusIsNil applies the IsNil predicate on the "as_status" field.
func AsStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAsStatus))
}

// AsStatusNotNil applies the NotNil predicate on the "as_status" field.
func AsStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAsStatus))
}

// AsStatusEqualFold applies the EqualFold predicate on the "as_status" field.
func AsStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldAsStatus, vc))
}

// AsStatusContainsFold applies the ContainsFold predicate on the "as_status" field.
func AsStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldAsStatus, vc))
}

// BeEQ applies the EQ predicate on the "be" field.
func BeEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBe, v))
}

// BeNEQ applies the NEQ predicate on the "be" field.
func BeNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldBe, v))
}

// BeIn applies the In predicate on the "be" field.
func BeIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldBe, vs...))
}

// BeNotIn applies the NotIn predicate on the "be" field.
func BeNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldBe, vs...))
}

// BeGT applies the GT predicate on the "be" field.
func BeGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldBe, v))
}

// BeGTE applies the GTE predicate on the "be" field.
func BeGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldBe, v))
}

// BeLT applies the LT predicate on the "be" field.
func BeLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldBe, v))
}

// BeLTE applies the LTE predicate on the "be" field.
func BeLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldBe, v))
}

// BeIsNil applies the IsNil predicate on the "be" field.
func BeIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBe))
}

// BeNotNil applies the NotNil predicate on the "be" field.
func BeNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBe))
}

// BeStatusEQ applies the EQ predicate on the "be_status" field.
func BeStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBeStatus, vc))
}

// BeStatusNEQ applies the NEQ predicate on the "be_status" field.
func BeStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldBeStatus, vc))
}

// BeStatusIn applies the In predicate on the "be_status" field.
func BeStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldBeStatus, v...))
}

// BeStatusNotIn applies the NotIn predicate on the "be_status" field.
func BeStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldBeStatus, v...))
}

// BeStatusGT applies the GT predicate on the "be_status" field.
func BeStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldBeStatus, vc))
}

// BeStatusGTE applies the GTE predicate on the "be_status" field.
func BeStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldBeStatus, vc))
}

// BeStatusLT applies the LT predicate on the "be_status" field.
func BeStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldBeStatus, vc))
}

// BeStatusLTE applies the LTE predicate on the "be_status" field.
func BeStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldBeStatus, vc))
}

// BeStatusContains applies the Contains predicate on the "be_status" field.
func BeStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldBeStatus, vc))
}

// BeStatusHasPrefix applies the HasPrefix predicate on the "be_status" field.
func BeStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldBeStatus, vc))
}

// BeStatusHasSuffix applies the HasSuffix predicate on the "be_status" field.
func BeStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldBeStatus, vc))
}

// BeStatusIsNil applies the IsNil predicate on the "be_status" field.
func BeStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBeStatus))
}

// BeStatusNotNil applies the NotNil predicate on the "be_status" field.
func BeStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBeStatus))
}

// BeStatusEqualFold applies the EqualFold predicate on the "be_status" field.
func BeStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldBeStatus, vc))
}

// BeStatusContainsFold applies the ContainsFold predicate on the "be_status" field.
func BeStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldBeStatus, vc))
}

// CrEQ applies the EQ predicate on the "cr" field.
func CrEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCr, v))
}

// CrNEQ applies the NEQ predicate on the "cr" field.
func CrNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCr, v))
}

// CrIn applies the In predicate on the "cr" field.
func CrIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCr, vs...))
}

// CrNotIn applies the NotIn predicate on the "cr" field.
func CrNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCr, vs...))
}

// CrGT applies the GT predicate on the "cr" field.
func CrGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCr, v))
}

// CrGTE applies the GTE predicate on the "cr" field.
func CrGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCr, v))
}

// CrLT applies the LT predicate on the "cr" field.
func CrLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCr, v))
}

// CrLTE applies the LTE predicate on the "cr" field.
func CrLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCr, v))
}

// CrIsNil applies the IsNil predicate on the "cr" field.
func CrIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCr))
}

// CrNotNil applies the NotNil predicate on the "cr" field.
func CrNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCr))
}

// CrStatusEQ applies the EQ predicate on the "cr_status" field.
func CrStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCrStatus, vc))
}

// CrStatusNEQ applies the NEQ predicate on the "cr_status" field.
func CrStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldCrStatus, vc))
}

// CrStatusIn applies the In predicate on the "cr_status" field.
func CrStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldCrStatus, v...))
}

// CrStatusNotIn applies the NotIn predicate on the "cr_status" field.
func CrStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldCrStatus, v...))
}

// CrStatusGT applies the GT predicate on the "cr_status" field.
func CrStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldCrStatus, vc))
}

// CrStatusGTE applies the GTE predicate on the "cr_status" field.
func CrStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldCrStatus, vc))
}

// CrStatusLT applies the LT predicate on the "cr_status" field.
func CrStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldCrStatus, vc))
}

// CrStatusLTE applies the LTE predicate on the "cr_status" field.
func CrStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldCrStatus, vc))
}

// CrStatusContains applies the Contains predicate on the "cr_status" field.
func CrStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldCrStatus, vc))
}

// CrStatusHasPrefix applies the HasPrefix predicate on the "cr_status" field.
func CrStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldCrStatus, vc))
}

// CrStatusHasSuffix applies the HasSuffix predicate on the "cr_status" field.
func CrStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldCrStatus, vc))
}

// CrStatusIsNil applies the IsNil predicate on the "cr_status" field.
func CrStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCrStatus))
}

// CrStatusNotNil applies the NotNil predicate on the "cr_status" field.
func CrStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCrStatus))
}

// CrStatusEqualFold applies the EqualFold predicate on the "cr_status" field.
func CrStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldCrStatus, vc))
}

// CrStatusContainsFold applies the ContainsFold predicate on the "cr_status" field.
func CrStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldCrStatus, vc))
}

// CoEQ applies the EQ predicate on the "co" field.
func CoEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCo, v))
}

// CoNEQ applies the NEQ predicate on the "co" field.
func CoNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCo, v))
}

// CoIn applies the In predicate on the "co" field.
func CoIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCo, vs...))
}

// CoNotIn applies the NotIn predicate on the "co" field.
func CoNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCo, vs...))
}

// CoGT applies the GT predicate on the "co" field.
func CoGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCo, v))
}

// CoGTE applies the GTE predicate on the "co" field.
func CoGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCo, v))
}

// CoLT applies the LT predicate on the "co" field.
func CoLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCo, v))
}

// CoLTE applies the LTE predicate on the "co" field.
func CoLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCo, v))
}

// CoIsNil applies the IsNil predicate on the "co" field.
func CoIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCo))
}

// CoNotNil applies the NotNil predicate on the "co" field.
func CoNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCo))
}

// CoStatusEQ applies the EQ predicate on the "co_status" field.
func CoStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCoStatus, vc))
}

// CoStatusNEQ applies the NEQ predicate on the "co_status" field.
func CoStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldCoStatus, vc))
}

// CoStatusIn applies the In predicate on the "co_status" field.
func CoStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldCoStatus, v...))
}

// CoStatusNotIn applies the NotIn predicate on the "co_status" field.
func CoStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldCoStatus, v...))
}

// CoStatusGT applies the GT predicate on the "co_status" field.
func CoStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldCoStatus, vc))
}

// CoStatusGTE applies the GTE predicate on the "co_status" field.
func CoStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldCoStatus, vc))
}

// CoStatusLT applies the LT predicate on the "co_status" field.
func CoStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldCoStatus, vc))
}

// CoStatusLTE applies the LTE predicate on the "co_status" field.
func CoStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldCoStatus, vc))
}

// CoStatusContains applies the Contains predicate on the "co_status" field.
func CoStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldCoStatus, vc))
}

// CoStatusHasPrefix applies the HasPrefix predicate on the "co_status" field.
func CoStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldCoStatus, vc))
}

// CoStatusHasSuffix applies the HasSuffix predicate on the "co_status" field.
func CoStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldCoStatus, vc))
}

// CoStatusIsNil applies the IsNil predicate on the "co_status" field.
func CoStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCoStatus))
}

// CoStatusNotNil applies the NotNil predicate on the "co_status" field.
func CoStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCoStatus))
}

// CoStatusEqualFold applies the EqualFold predicate on the "co_status" field.
func CoStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldCoStatus, vc))
}

// CoStatusContainsFold applies the ContainsFold predicate on the "co_status" field.
func CoStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldCoStatus, vc))
}

// FeEQ applies the EQ predicate on the "fe" field.
func FeEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldFe, v))
}

// FeNEQ applies the NEQ predicate on the "fe" field.
func FeNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldFe, v))
}

// FeIn applies the In predicate on the "fe" field.
func FeIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldFe, vs...))
}

// FeNotIn applies the NotIn predicate on the "fe" field.
func FeNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldFe, vs...))
}

// FeGT applies the GT predicate on the "fe" field.
func FeGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldFe, v))
}

// FeGTE applies the GTE predicate on the "fe" field.
func FeGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldFe, v))
}

// FeLT applies the LT predicate on the "fe" field.
func FeLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldFe, v))
}

// FeLTE applies the LTE predicate on the "fe" field.
func FeLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldFe, v))
}

// FeIsNil applies the IsNil predicate on the "fe" field.
func FeIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldFe))
}

// FeNotNil applies the NotNil predicate on the "fe" field.
func FeNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldFe))
}

// FeStatusEQ applies the EQ predicate on the "fe_status" field.
func FeStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldFeStatus, vc))
}

// FeStatusNEQ applies the NEQ predicate on the "fe_status" field.
func FeStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldFeStatus, vc))
}

// FeStatusIn applies the In predicate on the "fe_status" field.
func FeStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldFeStatus, v...))
}

// FeStatusNotIn applies the NotIn predicate on the "fe_status" field.
func FeStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldFeStatus, v...))
}

// FeStatusGT applies the GT predicate on the "fe_status" field.
func FeStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldFeStatus, vc))
}

// FeStatusGTE applies the GTE predicate on the "fe_status" field.
func FeStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldFeStatus, vc))
}

// FeStatusLT applies the LT predicate on the "fe_status" field.
func FeStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldFeStatus, vc))
}

// FeStatusLTE applies the LTE predicate on the "fe_status" field.
func FeStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldFeStatus, vc))
}

// FeStatusContains applies the Contains predicate on the "fe_status" field.
func FeStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldFeStatus, vc))
}

// FeStatusHasPrefix applies the HasPrefix predicate on the "fe_status" field.
func FeStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldFeStatus, vc))
}

// FeStatusHasSuffix applies the HasSuffix predicate on the "fe_status" field.
func FeStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldFeStatus, vc))
}

// FeStatusIsNil applies the IsNil predicate on the "fe_status" field.
func FeStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldFeStatus))
}

// FeStatusNotNil applies the NotNil predicate on the "fe_status" field.
func FeStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldFeStatus))
}

// FeStatusEqualFold applies the EqualFold predicate on the "fe_status" field.
func FeStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldFeStatus, vc))
}

// FeStatusContainsFold applies the ContainsFold predicate on the "fe_status" field.
func FeStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldFeStatus, vc))
}

// CuEQ applies the EQ predicate on the "cu" field.
func CuEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCu, v))
}

// CuNEQ applies the NEQ predicate on the "cu" field.
func CuNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCu, v))
}

// CuIn applies the In predicate on the "cu" field.
func CuIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCu, vs...))
}

// CuNotIn applies the NotIn predicate on the "cu" field.
func CuNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCu, vs...))
}

// CuGT applies the GT predicate on the "cu" field.
func CuGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCu, v))
}

// CuGTE applies the GTE predicate on the "cu" field.
func CuGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCu, v))
}

// CuLT applies the LT predicate on the "cu" field.
func CuLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCu, v))
}

// CuLTE applies the LTE predicate on the "cu" field.
func CuLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCu, v))
}

// CuIsNil applies the IsNil predicate on the "cu" field.
func CuIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCu))
}

// CuNotNil applies the NotNil predicate on the "cu" field.
func CuNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCu))
}

// CuStatusEQ applies the EQ predicate on the "cu_status" field.
func CuStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCuStatus, vc))
}

// CuStatusNEQ applies the NEQ predicate on the "cu_status" field.
func CuStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldCuStatus, vc))
}

// CuStatusIn applies the In predicate on the "cu_status" field.
func CuStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldCuStatus, v...))
}

// CuStatusNotIn applies the NotIn predicate on the "cu_status" field.
func CuStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldCuStatus, v...))
}

// CuStatusGT applies the GT predicate on the "cu_status" field.
func CuStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldCuStatus, vc))
}

// CuStatusGTE applies the GTE predicate on the "cu_status" field.
func CuStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldCuStatus, vc))
}

// CuStatusLT applies the LT predicate on the "cu_status" field.
func CuStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldCuStatus, vc))
}

// CuStatusLTE applies the LTE predicate on the "cu_status" field.
func CuStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldCuStatus, vc))
}

// CuStatusContains applies the Contains predicate on the "cu_status" field.
func CuStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldCuStatus, vc))
}

// CuStatusHasPrefix applies the HasPrefix predicate on the "cu_status" field.
func CuStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldCuStatus, vc))
}

// CuStatusHasSuffix applies the HasSuffix predicate on the "cu_status" field.
func CuStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldCuStatus, vc))
}

// CuStatusIsNil applies the IsNil predicate on the "cu_status" field.
func CuStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCuStatus))
}

// CuStatusNotNil applies the NotNil predicate on the "cu_status" field.
func CuStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCuStatus))
}

// CuStatusEqualFold applies the EqualFold predicate on the "cu_status" field.
func CuStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldCuStatus, vc))
}

// CuStatusContainsFold applies the ContainsFold predicate on the "cu_status" field.
func CuStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldCuStatus, vc))
}

// SeEQ applies the EQ predicate on the "se" field.
func SeEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSe, v))
}

// SeNEQ applies the NEQ predicate on the "se" field.
func SeNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSe, v))
}

// SeIn applies the In predicate on the "se" field.
func SeIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSe, vs...))
}

// SeNotIn applies the NotIn predicate on the "se" field.
func SeNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSe, vs...))
}

// SeGT applies the GT predicate on the "se" field.
func SeGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSe, v))
}

// SeGTE applies the GTE predicate on the "se" field.
func SeGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSe, v))
}

// SeLT applies the LT predicate on the "se" field.
func SeLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSe, v))
}

// SeLTE applies the LTE predicate on the "se" field.
func SeLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSe, v))
}

// SeIsNil applies the IsNil predicate on the "se" field.
func SeIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSe))
}

// SeNotNil applies the NotNil predicate on the "se" field.
func SeNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSe))
}

// SeStatusEQ applies the EQ predicate on the "se_status" field.
func SeStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSeStatus, vc))
}

// SeStatusNEQ applies the NEQ predicate on the "se_status" field.
func SeStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSeStatus, vc))
}

// SeStatusIn applies the In predicate on the "se_status" field.
func SeStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSeStatus, v...))
}

// SeStatusNotIn applies the NotIn predicate on the "se_status" field.
func SeStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSeStatus, v...))
}

// SeStatusGT applies the GT predicate on the "se_status" field.
func SeStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSeStatus, vc))
}

// SeStatusGTE applies the GTE predicate on the "se_status" field.
func SeStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSeStatus, vc))
}

// SeStatusLT applies the LT predicate on the "se_status" field.
func SeStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSeStatus, vc))
}

// SeStatusLTE applies the LTE predicate on the "se_status" field.
func SeStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSeStatus, vc))
}

// SeStatusContains applies the Contains predicate on the "se_status" field.
func SeStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSeStatus, vc))
}

// SeStatusHasPrefix applies the HasPrefix predicate on the "se_status" field.
func SeStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSeStatus, vc))
}

// SeStatusHasSuffix applies the HasSuffix predicate on the "se_status" field.
func SeStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSeStatus, vc))
}

// SeStatusIsNil applies the IsNil predicate on the "se_status" field.
func SeStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSeStatus))
}

// SeStatusNotNil applies the NotNil predicate on the "se_status" field.
func SeStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSeStatus))
}

// SeStatusEqualFold applies the EqualFold predicate on the "se_status" field.
func SeStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSeStatus, vc))
}

// SeStatusContainsFold applies the ContainsFold predicate on the "se_status" field.
func SeStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSeStatus, vc))
}

// AgEQ applies the EQ predicate on the "ag" field.
func AgEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAg, v))
}

// AgNEQ applies the NEQ predicate on the "ag" field.
func AgNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldAg, v))
}

// AgIn applies the In predicate on the "ag" field.
func AgIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldAg, vs...))
}

// AgNotIn applies the NotIn predicate on the "ag" field.
func AgNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldAg, vs...))
}

// AgGT applies the GT predicate on the "ag" field.
func AgGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldAg, v))
}

// AgGTE applies the GTE predicate on the "ag" field.
func AgGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldAg, v))
}

// AgLT applies the LT predicate on the "ag" field.
func AgLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldAg, v))
}

// AgLTE applies the LTE predicate on the "ag" field.
func AgLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldAg, v))
}

// AgIsNil applies the IsNil predicate on the "ag" field.
func AgIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAg))
}

// AgNotNil applies the NotNil predicate on the "ag" field.
func AgNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAg))
}

// AgStatusEQ applies the EQ predicate on the "ag_status" field.
func AgStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAgStatus, vc))
}

// AgStatusNEQ applies the NEQ predicate on the "ag_status" field.
func AgStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldAgStatus, vc))
}

// AgStatusIn applies the In predicate on the "ag_status" field.
func AgStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldAgStatus, v...))
}

// AgStatusNotIn applies the NotIn predicate on the "ag_status" field.
func AgStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldAgStatus, v...))
}

// AgStatusGT applies the GT predicate on the "ag_status" field.
func AgStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldAgStatus, vc))
}

// AgStatusGTE applies the GTE predicate on the "ag_status" field.
func AgStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldAgStatus, vc))
}

// AgStatusLT applies the LT predicate on the "ag_status" field.
func AgStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldAgStatus, vc))
}

// AgStatusLTE applies the LTE predicate on the "ag_status" field.
func AgStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldAgStatus, vc))
}

// AgStatusContains applies the Contains predicate on the "ag_status" field.
func AgStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldAgStatus, vc))
}

// AgStatusHasPrefix applies the HasPrefix predicate on the "ag_status" field.
func AgStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldAgStatus, vc))
}

// AgStatusHasSuffix applies the HasSuffix predicate on the "ag_status" field.
func AgStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldAgStatus, vc))
}

// AgStatusIsNil applies the IsNil predicate on the "ag_status" field.
func AgStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAgStatus))
}

// AgStatusNotNil applies the NotNil predicate on the "ag_status" field.
func AgStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAgStatus))
}

// AgStatusEqualFold applies the EqualFold predicate on the "ag_status" field.
func AgStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldAgStatus, vc))
}

// AgStatusContainsFold applies the ContainsFold predicate on the "ag_status" field.
func AgStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldAgStatus, vc))
}

// VEQ applies the EQ predicate on the "v" field.
func VEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldV, v))
}

// VNEQ applies the NEQ predicate on the "v" field.
func VNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldV, v))
}

// VIn applies the In predicate on the "v" field.
func VIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldV, vs...))
}

// VNotIn applies the NotIn predicate on the "v" field.
func VNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldV, vs...))
}

// VGT applies the GT predicate on the "v" field.
func VGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldV, v))
}

// VGTE applies the GTE predicate on the "v" field.
func VGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldV, v))
}

// VLT applies the LT predicate on the "v" field.
func VLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldV, v))
}

// VLTE applies the LTE predicate on the "v" field.
func VLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldV, v))
}

// VIsNil applies the IsNil predicate on the "v" field.
func VIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldV))
}

// VNotNil applies the NotNil predicate on the "v" field.
func VNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldV))
}

// VStatusEQ applies the EQ predicate on the "v_status" field.
func VStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldVStatus, vc))
}

// VStatusNEQ applies the NEQ predicate on the "v_status" field.
func VStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldVStatus, vc))
}

// VStatusIn applies the In predicate on the "v_status" field.
func VStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldVStatus, v...))
}

// VStatusNotIn applies the NotIn predicate on the "v_status" field.
func VStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldVStatus, v...))
}

// VStatusGT applies the GT predicate on the "v_status" field.
func VStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldVStatus, vc))
}

// VStatusGTE applies the GTE predicate on the "v_status" field.
func VStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldVStatus, vc))
}

// VStatusLT applies the LT predicate on the "v_status" field.
func VStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldVStatus, vc))
}

// VStatusLTE applies the LTE predicate on the "v_status" field.
func VStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldVStatus, vc))
}

// VStatusContains applies the Contains predicate on the "v_status" field.
func VStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldVStatus, vc))
}

// VStatusHasPrefix applies the HasPrefix predicate on the "v_status" field.
func VStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldVStatus, vc))
}

// VStatusHasSuffix applies the HasSuffix predicate on the "v_status" field.
func VStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldVStatus, vc))
}

// VStatusIsNil applies the IsNil predicate on the "v_status" field.
func VStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldVStatus))
}

// VStatusNotNil applies the NotNil predicate on the "v_status" field.
func VStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldVStatus))
}

// VStatusEqualFold applies the EqualFold predicate on the "v_status" field.
func VStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldVStatus, vc))
}

// VStatusContainsFold applies the ContainsFold predicate on the "v_status" field.
func VStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldVStatus, vc))
}

// ZnEQ applies the EQ predicate on the "zn" field.
func ZnEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldZn, v))
}

// ZnNEQ applies the NEQ predicate on the "zn" field.
func ZnNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldZn, v))
}

// ZnIn applies the In predicate on the "zn" field.
func ZnIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldZn, vs...))
}

// ZnNotIn applies the NotIn predicate on the "zn" field.
func ZnNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldZn, vs...))
}

// ZnGT applies the GT predicate on the "zn" field.
func ZnGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldZn, v))
}

// ZnGTE applies the GTE predicate on the "zn" field.
func ZnGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldZn, v))
}

// ZnLT applies the LT predicate on the "zn" field.
func ZnLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldZn, v))
}

// ZnLTE applies the LTE predicate on the "zn" field.
func ZnLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldZn, v))
}

// ZnIsNil applies the IsNil predicate on the "zn" field.
func ZnIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldZn))
}

// ZnNotNil applies the NotNil predicate on the "zn" field.
func ZnNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldZn))
}

// ZnStatusEQ applies the EQ predicate on the "zn_status" field.
func ZnStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldZnStatus, vc))
}

// ZnStatusNEQ applies the NEQ predicate on the "zn_status" field.
func ZnStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldZnStatus, vc))
}

// ZnStatusIn applies the In predicate on the "zn_status" field.
func ZnStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldZnStatus, v...))
}

// ZnStatusNotIn applies the NotIn predicate on the "zn_status" field.
func ZnStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldZnStatus, v...))
}

// ZnStatusGT applies the GT predicate on the "zn_status" field.
func ZnStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldZnStatus, vc))
}

// ZnStatusGTE applies the GTE predicate on the "zn_status" field.
func ZnStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldZnStatus, vc))
}

// ZnStatusLT applies the LT predicate on the "zn_status" field.
func ZnStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldZnStatus, vc))
}

// ZnStatusLTE applies the LTE predicate on the "zn_status" field.
func ZnStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldZnStatus, vc))
}

// ZnStatusContains applies the Contains predicate on the "zn_status" field.
func ZnStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldZnStatus, vc))
}

// ZnStatusHasPrefix applies the HasPrefix predicate on the "zn_status" field.
func ZnStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldZnStatus, vc))
}

// ZnStatusHasSuffix applies the HasSuffix predicate on the "zn_status" field.
func ZnStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldZnStatus, vc))
}

// ZnStatusIsNil applies the IsNil predicate on the "zn_status" field.
func ZnStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldZnStatus))
}

// ZnStatusNotNil applies the NotNil predicate on the "zn_status" field.
func ZnStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldZnStatus))
}

// ZnStatusEqualFold applies the EqualFold predicate on the "zn_status" field.
func ZnStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldZnStatus, vc))
}

// ZnStatusContainsFold applies the ContainsFold predicate on the "zn_status" field.
func ZnStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldZnStatus, vc))
}

// SnEQ applies the EQ predicate on the "sn" field.
func SnEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSn, v))
}

// SnNEQ applies the NEQ predicate on the "sn" field.
func SnNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSn, v))
}

// SnIn applies the In predicate on the "sn" field.
func SnIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSn, vs...))
}

// SnNotIn applies the NotIn predicate on the "sn" field.
func SnNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSn, vs...))
}

// SnGT applies the GT predicate on the "sn" field.
func SnGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSn, v))
}

// SnGTE applies the GTE predicate on the "sn" field.
func SnGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSn, v))
}

// SnLT applies the LT predicate on the "sn" field.
func SnLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSn, v))
}

// SnLTE applies the LTE predicate on the "sn" field.
func SnLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSn, v))
}

// SnIsNil applies the IsNil predicate on the "sn" field.
func SnIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSn))
}

// SnNotNil applies the NotNil predicate on the "sn" field.
func SnNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSn))
}

// SnStatusEQ applies the EQ predicate on the "sn_status" field.
func SnStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSnStatus, vc))
}

// SnStatusNEQ applies the NEQ predicate on the "sn_status" field.
func SnStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSnStatus, vc))
}

// SnStatusIn applies the In predicate on the "sn_status" field.
func SnStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSnStatus, v...))
}

// SnStatusNotIn applies the NotIn predicate on the "sn_status" field.
func SnStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSnStatus, v...))
}

// SnStatusGT applies the GT predicate on the "sn_status" field.
func SnStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSnStatus, vc))
}

// SnStatusGTE applies the GTE predicate on the "sn_status" field.
func SnStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSnStatus, vc))
}

// SnStatusLT applies the LT predicate on the "sn_status" field.
func SnStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSnStatus, vc))
}

// SnStatusLTE applies the LTE predicate on the "sn_status" field.
func SnStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSnStatus, vc))
}

// SnStatusContains applies the Contains predicate on the "sn_status" field.
func SnStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSnStatus, vc))
}

// SnStatusHasPrefix applies the HasPrefix predicate on the "sn_status" field.
func SnStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSnStatus, vc))
}

// SnStatusHasSuffix applies the HasSuffix predicate on the "sn_status" field.
func SnStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSnStatus, vc))
}

// SnStatusIsNil applies the IsNil predicate on the "sn_status" field.
func SnStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSnStatus))
}

// SnStatusNotNil applies the NotNil predicate on the "sn_status" field.
func SnStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSnStatus))
}

// SnStatusEqualFold applies the EqualFold predicate on the "sn_status" field.
func SnStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSnStatus, vc))
}

// SnStatusContainsFold applies the ContainsFold predicate on the "sn_status" field.
func SnStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSnStatus, vc))
}

// No3EQ applies the EQ predicate on the "no3" field.
func No3EQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldNo3, v))
}

// No3NEQ applies the NEQ predicate on the "no3" field.
func No3NEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldNo3, v))
}

// No3In applies the In predicate on the "no3" field.
func No3In(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldNo3, vs...))
}

// No3NotIn applies the NotIn predicate on the "no3" field.
func No3NotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldNo3, vs...))
}

// No3GT applies the GT predicate on the "no3" field.
func No3GT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldNo3, v))
}

// No3GTE applies the GTE predicate on the "no3" field.
func No3GTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldNo3, v))
}

// No3LT applies the LT predicate on the "no3" field.
func No3LT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldNo3, v))
}

// No3LTE applies the LTE predicate on the "no3" field.
func No3LTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldNo3, v))
}

// No3IsNil applies the IsNil predicate on the "no3" field.
func No3IsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNo3))
}

// No3NotNil applies the NotNil predicate on the "no3" field.
func No3NotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNo3))
}

// No3StatusEQ applies the EQ predicate on the "no3_status" field.
func No3StatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldNo3Status, vc))
}

// No3StatusNEQ applies the NEQ predicate on the "no3_status" field.
func No3StatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldNo3Status, vc))
}

// No3StatusIn applies the In predicate on the "no3_status" field.
func No3StatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldNo3Status, v...))
}

// No3StatusNotIn applies the NotIn predicate on the "no3_status" field.
func No3StatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldNo3Status, v...))
}

// No3StatusGT applies the GT predicate on the "no3_status" field.
func No3StatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldNo3Status, vc))
}

// No3StatusGTE applies the GTE predicate on the "no3_status" field.
func No3StatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldNo3Status, vc))
}

// No3StatusLT applies the LT predicate on the "no3_status" field.
func No3StatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldNo3Status, vc))
}

// No3StatusLTE applies the LTE predicate on the "no3_status" field.
func No3StatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldNo3Status, vc))
}

// No3StatusContains applies the Contains predicate on the "no3_status" field.
func No3StatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldNo3Status, vc))
}

// No3StatusHasPrefix applies the HasPrefix predicate on the "no3_status" field.
func No3StatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldNo3Status, vc))
}

// No3StatusHasSuffix applies the HasSuffix predicate on the "no3_status" field.
func No3StatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldNo3Status, vc))
}

// No3StatusIsNil applies the IsNil predicate on the "no3_status" field.
func No3StatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldNo3Status))
}

// No3StatusNotNil applies the NotNil predicate on the "no3_status" field.
func No3StatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldNo3Status))
}

// No3StatusEqualFold applies the EqualFold predicate on the "no3_status" field.
func No3StatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldNo3Status, vc))
}

// No3StatusContainsFold applies the ContainsFold predicate on the "no3_status" field.
func No3StatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldNo3Status, vc))
}

// PEQ applies the EQ predicate on the "p" field.
func PEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldP, v))
}

// PNEQ applies the NEQ predicate on the "p" field.
func PNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldP, v))
}

// PIn applies the In predicate on the "p" field.
func PIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldP, vs...))
}

// PNotIn applies the NotIn predicate on the "p" field.
func PNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldP, vs...))
}

// PGT applies the GT predicate on the "p" field.
func PGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldP, v))
}

// PGTE applies the GTE predicate on the "p" field.
func PGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldP, v))
}

// PLT applies the LT predicate on the "p" field.
func PLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldP, v))
}

// PLTE applies the LTE predicate on the "p" field.
func PLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldP, v))
}

// PIsNil applies the IsNil predicate on the "p" field.
func PIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldP))
}

// PNotNil applies the NotNil predicate on the "p" field.
func PNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldP))
}

// PStatusEQ applies the EQ predicate on the "p_status" field.
func PStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPStatus, vc))
}

// PStatusNEQ applies the NEQ predicate on the "p_status" field.
func PStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldPStatus, vc))
}

// PStatusIn applies the In predicate on the "p_status" field.
func PStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldPStatus, v...))
}

// PStatusNotIn applies the NotIn predicate on the "p_status" field.
func PStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldPStatus, v...))
}

// PStatusGT applies the GT predicate on the "p_status" field.
func PStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldPStatus, vc))
}

// PStatusGTE applies the GTE predicate on the "p_status" field.
func PStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldPStatus, vc))
}

// PStatusLT applies the LT predicate on the "p_status" field.
func PStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldPStatus, vc))
}

// PStatusLTE applies the LTE predicate on the "p_status" field.
func PStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldPStatus, vc))
}

// PStatusContains applies the Contains predicate on the "p_status" field.
func PStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldPStatus, vc))
}

// PStatusHasPrefix applies the HasPrefix predicate on the "p_status" field.
func PStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldPStatus, vc))
}

// PStatusHasSuffix applies the HasSuffix predicate on the "p_status" field.
func PStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldPStatus, vc))
}

// PStatusIsNil applies the IsNil predicate on the "p_status" field.
func PStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPStatus))
}

// PStatusNotNil applies the NotNil predicate on the "p_status" field.
func PStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPStatus))
}

// PStatusEqualFold applies the EqualFold predicate on the "p_status" field.
func PStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldPStatus, vc))
}

// PStatusContainsFold applies the ContainsFold predicate on the "p_status" field.
func PStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldPStatus, vc))
}

// Po4EQ applies the EQ predicate on the "po4" field.
func Po4EQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPo4, v))
}

// Po4NEQ applies the NEQ predicate on the "po4" field.
func Po4NEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldPo4, v))
}

// Po4In applies the In predicate on the "po4" field.
func Po4In(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldPo4, vs...))
}

// Po4NotIn applies the NotIn predicate on the "po4" field.
func Po4NotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldPo4, vs...))
}

// Po4GT applies the GT predicate on the "po4" field.
func Po4GT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldPo4, v))
}

// Po4GTE applies the GTE predicate on the "po4" field.
func Po4GTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldPo4, v))
}

// Po4LT applies the LT predicate on the "po4" field.
func Po4LT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldPo4, v))
}

// Po4LTE applies the LTE predicate on the "po4" field.
func Po4LTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldPo4, v))
}

// Po4IsNil applies the IsNil predicate on the "po4" field.
func Po4IsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPo4))
}

// Po4NotNil applies the NotNil predicate on the "po4" field.
func Po4NotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPo4))
}

// Po4StatusEQ applies the EQ predicate on the "po4_status" field.
func Po4StatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPo4Status, vc))
}

// Po4StatusNEQ applies the NEQ predicate on the "po4_status" field.
func Po4StatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldPo4Status, vc))
}

// Po4StatusIn applies the In predicate on the "po4_status" field.
func Po4StatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldPo4Status, v...))
}

// Po4StatusNotIn applies the NotIn predicate on the "po4_status" field.
func Po4StatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldPo4Status, v...))
}

// Po4StatusGT applies the GT predicate on the "po4_status" field.
func Po4StatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldPo4Status, vc))
}

// Po4StatusGTE applies the GTE predicate on the "po4_status" field.
func Po4StatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldPo4Status, vc))
}

// Po4StatusLT applies the LT predicate on the "po4_status" field.
func Po4StatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldPo4Status, vc))
}

// Po4StatusLTE applies the LTE predicate on the "po4_status" field.
func Po4StatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldPo4Status, vc))
}

// Po4StatusContains applies the Contains predicate on the "po4_status" field.
func Po4StatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldPo4Status, vc))
}

// Po4StatusHasPrefix applies the HasPrefix predicate on the "po4_status" field.
func Po4StatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldPo4Status, vc))
}

// Po4StatusHasSuffix applies the HasSuffix predicate on the "po4_status" field.
func Po4StatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldPo4Status, vc))
}

// Po4StatusIsNil applies the IsNil predicate on the "po4_status" field.
func Po4StatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPo4Status))
}

// Po4StatusNotNil applies the NotNil predicate on the "po4_status" field.
func Po4StatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPo4Status))
}

// Po4StatusEqualFold applies the EqualFold predicate on the "po4_status" field.
func Po4StatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldPo4Status, vc))
}

// Po4StatusContainsFold applies the ContainsFold predicate on the "po4_status" field.
func Po4StatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldPo4Status, vc))
}

// AlEQ applies the EQ predicate on the "al" field.
func AlEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldAl, v))
}

// AlNEQ applies the NEQ predicate on the "al" field.
func AlNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldAl, v))
}

// AlIn applies the In predicate on the "al" field.
func AlIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldAl, vs...))
}

// AlNotIn applies the NotIn predicate on the "al" field.
func AlNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldAl, vs...))
}

// AlGT applies the GT predicate on the "al" field.
func AlGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldAl, v))
}

// AlGTE applies the GTE predicate on the "al" field.
func AlGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldAl, v))
}

// AlLT applies the LT predicate on the "al" field.
func AlLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldAl, v))
}

// AlLTE applies the LTE predicate on the "al" field.
func AlLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldAl, v))
}

// AlIsNil applies the IsNil predicate on the "al" field.
func AlIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAl))
}

// AlNotNil applies the NotNil predicate on the "al" field.
func AlNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAl))
}

// AlStatusEQ applies the EQ predicate on the "al_status" field.
func AlStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldAlStatus, vc))
}

// AlStatusNEQ applies the NEQ predicate on the "al_status" field.
func AlStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldAlStatus, vc))
}

// AlStatusIn applies the In predicate on the "al_status" field.
func AlStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldAlStatus, v...))
}

// AlStatusNotIn applies the NotIn predicate on the "al_status" field.
func AlStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldAlStatus, v...))
}

// AlStatusGT applies the GT predicate on the "al_status" field.
func AlStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldAlStatus, vc))
}

// AlStatusGTE applies the GTE predicate on the "al_status" field.
func AlStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldAlStatus, vc))
}

// AlStatusLT applies the LT predicate on the "al_status" field.
func AlStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldAlStatus, vc))
}

// AlStatusLTE applies the LTE predicate on the "al_status" field.
func AlStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldAlStatus, vc))
}

// AlStatusContains applies the Contains predicate on the "al_status" field.
func AlStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldAlStatus, vc))
}

// AlStatusHasPrefix applies the HasPrefix predicate on the "al_status" field.
func AlStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldAlStatus, vc))
}

// AlStatusHasSuffix applies the HasSuffix predicate on the "al_status" field.
func AlStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldAlStatus, vc))
}

// AlStatusIsNil applies the IsNil predicate on the "al_status" field.
func AlStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldAlStatus))
}

// AlStatusNotNil applies the NotNil predicate on the "al_status" field.
func AlStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldAlStatus))
}

// AlStatusEqualFold applies the EqualFold predicate on the "al_status" field.
func AlStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldAlStatus, vc))
}

// AlStatusContainsFold applies the ContainsFold predicate on the "al_status" field.
func AlStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldAlStatus, vc))
}

// SbEQ applies the EQ predicate on the "sb" field.
func SbEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldSb, v))
}

// SbNEQ applies the NEQ predicate on the "sb" field.
func SbNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldSb, v))
}

// SbIn applies the In predicate on the "sb" field.
func SbIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldSb, vs...))
}

// SbNotIn applies the NotIn predicate on the "sb" field.
func SbNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldSb, vs...))
}

// SbGT applies the GT predicate on the "sb" field.
func SbGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldSb, v))
}

// SbGTE applies the GTE predicate on the "sb" field.
func SbGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldSb, v))
}

// SbLT applies the LT predicate on the "sb" field.
func SbLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldSb, v))
}

// SbLTE applies the LTE predicate on the "sb" field.
func SbLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldSb, v))
}

// SbIsNil applies the IsNil predicate on the "sb" field.
func SbIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSb))
}

// SbNotNil applies the NotNil predicate on the "sb" field.
func SbNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSb))
}

// SbStatusEQ applies the EQ predicate on the "sb_status" field.
func SbStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldSbStatus, vc))
}

// SbStatusNEQ applies the NEQ predicate on the "sb_status" field.
func SbStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldSbStatus, vc))
}

// SbStatusIn applies the In predicate on the "sb_status" field.
func SbStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldSbStatus, v...))
}

// SbStatusNotIn applies the NotIn predicate on the "sb_status" field.
func SbStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldSbStatus, v...))
}

// SbStatusGT applies the GT predicate on the "sb_status" field.
func SbStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldSbStatus, vc))
}

// SbStatusGTE applies the GTE predicate on the "sb_status" field.
func SbStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldSbStatus, vc))
}

// SbStatusLT applies the LT predicate on the "sb_status" field.
func SbStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldSbStatus, vc))
}

// SbStatusLTE applies the LTE predicate on the "sb_status" field.
func SbStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldSbStatus, vc))
}

// SbStatusContains applies the Contains predicate on the "sb_status" field.
func SbStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldSbStatus, vc))
}

// SbStatusHasPrefix applies the HasPrefix predicate on the "sb_status" field.
func SbStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldSbStatus, vc))
}

// SbStatusHasSuffix applies the HasSuffix predicate on the "sb_status" field.
func SbStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldSbStatus, vc))
}

// SbStatusIsNil applies the IsNil predicate on the "sb_status" field.
func SbStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldSbStatus))
}

// SbStatusNotNil applies the NotNil predicate on the "sb_status" field.
func SbStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldSbStatus))
}

// SbStatusEqualFold applies the EqualFold predicate on the "sb_status" field.
func SbStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldSbStatus, vc))
}

// SbStatusContainsFold applies the ContainsFold predicate on the "sb_status" field.
func SbStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldSbStatus, vc))
}

// BiEQ applies the EQ predicate on the "bi" field.
func BiEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldBi, v))
}

// BiNEQ applies the NEQ predicate on the "bi" field.
func BiNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldBi, v))
}

// BiIn applies the In predicate on the "bi" field.
func BiIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldBi, vs...))
}

// BiNotIn applies the NotIn predicate on the "bi" field.
func BiNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldBi, vs...))
}

// BiGT applies the GT predicate on the "bi" field.
func BiGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldBi, v))
}

// BiGTE applies the GTE predicate on the "bi" field.
func BiGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldBi, v))
}

// BiLT applies the LT predicate on the "bi" field.
func BiLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldBi, v))
}

// BiLTE applies the LTE predicate on the "bi" field.
func BiLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldBi, v))
}

// BiIsNil applies the IsNil predicate on the "bi" field.
func BiIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBi))
}

// BiNotNil applies the NotNil predicate on the "bi" field.
func BiNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBi))
}

// BiStatusEQ applies the EQ predicate on the "bi_status" field.
func BiStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldBiStatus, vc))
}

// BiStatusNEQ applies the NEQ predicate on the "bi_status" field.
func BiStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldBiStatus, vc))
}

// BiStatusIn applies the In predicate on the "bi_status" field.
func BiStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldBiStatus, v...))
}

// BiStatusNotIn applies the NotIn predicate on the "bi_status" field.
func BiStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldBiStatus, v...))
}

// BiStatusGT applies the GT predicate on the "bi_status" field.
func BiStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldBiStatus, vc))
}

// BiStatusGTE applies the GTE predicate on the "bi_status" field.
func BiStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldBiStatus, vc))
}

// BiStatusLT applies the LT predicate on the "bi_status" field.
func BiStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldBiStatus, vc))
}

// BiStatusLTE applies the LTE predicate on the "bi_status" field.
func BiStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldBiStatus, vc))
}

// BiStatusContains applies the Contains predicate on the "bi_status" field.
func BiStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldBiStatus, vc))
}

// BiStatusHasPrefix applies the HasPrefix predicate on the "bi_status" field.
func BiStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldBiStatus, vc))
}

// BiStatusHasSuffix applies the HasSuffix predicate on the "bi_status" field.
func BiStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldBiStatus, vc))
}

// BiStatusIsNil applies the IsNil predicate on the "bi_status" field.
func BiStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldBiStatus))
}

// BiStatusNotNil applies the NotNil predicate on the "bi_status" field.
func BiStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldBiStatus))
}

// BiStatusEqualFold applies the EqualFold predicate on the "bi_status" field.
func BiStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldBiStatus, vc))
}

// BiStatusContainsFold applies the ContainsFold predicate on the "bi_status" field.
func BiStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldBiStatus, vc))
}

// PbEQ applies the EQ predicate on the "pb" field.
func PbEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPb, v))
}

// PbNEQ applies the NEQ predicate on the "pb" field.
func PbNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldPb, v))
}

// PbIn applies the In predicate on the "pb" field.
func PbIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldPb, vs...))
}

// PbNotIn applies the NotIn predicate on the "pb" field.
func PbNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldPb, vs...))
}

// PbGT applies the GT predicate on the "pb" field.
func PbGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldPb, v))
}

// PbGTE applies the GTE predicate on the "pb" field.
func PbGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldPb, v))
}

// PbLT applies the LT predicate on the "pb" field.
func PbLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldPb, v))
}

// PbLTE applies the LTE predicate on the "pb" field.
func PbLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldPb, v))
}

// PbIsNil applies the IsNil predicate on the "pb" field.
func PbIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPb))
}

// PbNotNil applies the NotNil predicate on the "pb" field.
func PbNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPb))
}

// PbStatusEQ applies the EQ predicate on the "pb_status" field.
func PbStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldPbStatus, vc))
}

// PbStatusNEQ applies the NEQ predicate on the "pb_status" field.
func PbStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldPbStatus, vc))
}

// PbStatusIn applies the In predicate on the "pb_status" field.
func PbStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldPbStatus, v...))
}

// PbStatusNotIn applies the NotIn predicate on the "pb_status" field.
func PbStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldPbStatus, v...))
}

// PbStatusGT applies the GT predicate on the "pb_status" field.
func PbStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldPbStatus, vc))
}

// PbStatusGTE applies the GTE predicate on the "pb_status" field.
func PbStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldPbStatus, vc))
}

// PbStatusLT applies the LT predicate on the "pb_status" field.
func PbStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldPbStatus, vc))
}

// PbStatusLTE applies the LTE predicate on the "pb_status" field.
func PbStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldPbStatus, vc))
}

// PbStatusContains applies the Contains predicate on the "pb_status" field.
func PbStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldPbStatus, vc))
}

// PbStatusHasPrefix applies the HasPrefix predicate on the "pb_status" field.
func PbStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldPbStatus, vc))
}

// PbStatusHasSuffix applies the HasSuffix predicate on the "pb_status" field.
func PbStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldPbStatus, vc))
}

// PbStatusIsNil applies the IsNil predicate on the "pb_status" field.
func PbStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPbStatus))
}

// PbStatusNotNil applies the NotNil predicate on the "pb_status" field.
func PbStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPbStatus))
}

// PbStatusEqualFold applies the EqualFold predicate on the "pb_status" field.
func PbStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldPbStatus, vc))
}

// PbStatusContainsFold applies the ContainsFold predicate on the "pb_status" field.
func PbStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldPbStatus, vc))
}

// CdEQ applies the EQ predicate on the "cd" field.
func CdEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCd, v))
}

// CdNEQ applies the NEQ predicate on the "cd" field.
func CdNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCd, v))
}

// CdIn applies the In predicate on the "cd" field.
func CdIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCd, vs...))
}

// CdNotIn applies the NotIn predicate on the "cd" field.
func CdNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCd, vs...))
}

// CdGT applies the GT predicate on the "cd" field.
func CdGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCd, v))
}

// CdGTE applies the GTE predicate on the "cd" field.
func CdGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCd, v))
}

// CdLT applies the LT predicate on the "cd" field.
func CdLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCd, v))
}

// CdLTE applies the LTE predicate on the "cd" field.
func CdLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCd, v))
}

// CdIsNil applies the IsNil predicate on the "cd" field.
func CdIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCd))
}

// CdNotNil applies the NotNil predicate on the "cd" field.
func CdNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCd))
}

// CdStatusEQ applies the EQ predicate on the "cd_status" field.
func CdStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldCdStatus, vc))
}

// CdStatusNEQ applies the NEQ predicate on the "cd_status" field.
func CdStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldCdStatus, vc))
}

// CdStatusIn applies the In predicate on the "cd_status" field.
func CdStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldCdStatus, v...))
}

// CdStatusNotIn applies the NotIn predicate on the "cd_status" field.
func CdStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldCdStatus, v...))
}

// CdStatusGT applies the GT predicate on the "cd_status" field.
func CdStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldCdStatus, vc))
}

// CdStatusGTE applies the GTE predicate on the "cd_status" field.
func CdStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldCdStatus, vc))
}

// CdStatusLT applies the LT predicate on the "cd_status" field.
func CdStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldCdStatus, vc))
}

// CdStatusLTE applies the LTE predicate on the "cd_status" field.
func CdStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldCdStatus, vc))
}

// CdStatusContains applies the Contains predicate on the "cd_status" field.
func CdStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldCdStatus, vc))
}

// CdStatusHasPrefix applies the HasPrefix predicate on the "cd_status" field.
func CdStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldCdStatus, vc))
}

// CdStatusHasSuffix applies the HasSuffix predicate on the "cd_status" field.
func CdStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldCdStatus, vc))
}

// CdStatusIsNil applies the IsNil predicate on the "cd_status" field.
func CdStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldCdStatus))
}

// CdStatusNotNil applies the NotNil predicate on the "cd_status" field.
func CdStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldCdStatus))
}

// CdStatusEqualFold applies the EqualFold predicate on the "cd_status" field.
func CdStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldCdStatus, vc))
}

// CdStatusContainsFold applies the ContainsFold predicate on the "cd_status" field.
func CdStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldCdStatus, vc))
}

// LaEQ applies the EQ predicate on the "la" field.
func LaEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldLa, v))
}

// LaNEQ applies the NEQ predicate on the "la" field.
func LaNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldLa, v))
}

// LaIn applies the In predicate on the "la" field.
func LaIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldLa, vs...))
}

// LaNotIn applies the NotIn predicate on the "la" field.
func LaNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldLa, vs...))
}

// LaGT applies the GT predicate on the "la" field.
func LaGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldLa, v))
}

// LaGTE applies the GTE predicate on the "la" field.
func LaGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldLa, v))
}

// LaLT applies the LT predicate on the "la" field.
func LaLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldLa, v))
}

// LaLTE applies the LTE predicate on the "la" field.
func LaLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldLa, v))
}

// LaIsNil applies the IsNil predicate on the "la" field.
func LaIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldLa))
}

// LaNotNil applies the NotNil predicate on the "la" field.
func LaNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldLa))
}

// LaStatusEQ applies the EQ predicate on the "la_status" field.
func LaStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldLaStatus, vc))
}

// LaStatusNEQ applies the NEQ predicate on the "la_status" field.
func LaStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldLaStatus, vc))
}

// LaStatusIn applies the In predicate on the "la_status" field.
func LaStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldLaStatus, v...))
}

// LaStatusNotIn applies the NotIn predicate on the "la_status" field.
func LaStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldLaStatus, v...))
}

// LaStatusGT applies the GT predicate on the "la_status" field.
func LaStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldLaStatus, vc))
}

// LaStatusGTE applies the GTE predicate on the "la_status" field.
func LaStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldLaStatus, vc))
}

// LaStatusLT applies the LT predicate on the "la_status" field.
func LaStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldLaStatus, vc))
}

// LaStatusLTE applies the LTE predicate on the "la_status" field.
func LaStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldLaStatus, vc))
}

// LaStatusContains applies the Contains predicate on the "la_status" field.
func LaStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldLaStatus, vc))
}

// LaStatusHasPrefix applies the HasPrefix predicate on the "la_status" field.
func LaStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldLaStatus, vc))
}

// LaStatusHasSuffix applies the HasSuffix predicate on the "la_status" field.
func LaStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldLaStatus, vc))
}

// LaStatusIsNil applies the IsNil predicate on the "la_status" field.
func LaStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldLaStatus))
}

// LaStatusNotNil applies the NotNil predicate on the "la_status" field.
func LaStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldLaStatus))
}

// LaStatusEqualFold applies the EqualFold predicate on the "la_status" field.
func LaStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldLaStatus, vc))
}

// LaStatusContainsFold applies the ContainsFold predicate on the "la_status" field.
func LaStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldLaStatus, vc))
}

// TlEQ applies the EQ predicate on the "tl" field.
func TlEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTl, v))
}

// TlNEQ applies the NEQ predicate on the "tl" field.
func TlNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldTl, v))
}

// TlIn applies the In predicate on the "tl" field.
func TlIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldTl, vs...))
}

// TlNotIn applies the NotIn predicate on the "tl" field.
func TlNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldTl, vs...))
}

// TlGT applies the GT predicate on the "tl" field.
func TlGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldTl, v))
}

// TlGTE applies the GTE predicate on the "tl" field.
func TlGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldTl, v))
}

// TlLT applies the LT predicate on the "tl" field.
func TlLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldTl, v))
}

// TlLTE applies the LTE predicate on the "tl" field.
func TlLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldTl, v))
}

// TlIsNil applies the IsNil predicate on the "tl" field.
func TlIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldTl))
}

// TlNotNil applies the NotNil predicate on the "tl" field.
func TlNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldTl))
}

// TlStatusEQ applies the EQ predicate on the "tl_status" field.
func TlStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldTlStatus, vc))
}

// TlStatusNEQ applies the NEQ predicate on the "tl_status" field.
func TlStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldTlStatus, vc))
}

// TlStatusIn applies the In predicate on the "tl_status" field.
func TlStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldTlStatus, v...))
}

// TlStatusNotIn applies the NotIn predicate on the "tl_status" field.
func TlStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldTlStatus, v...))
}

// TlStatusGT applies the GT predicate on the "tl_status" field.
func TlStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldTlStatus, vc))
}

// TlStatusGTE applies the GTE predicate on the "tl_status" field.
func TlStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldTlStatus, vc))
}

// TlStatusLT applies the LT predicate on the "tl_status" field.
func TlStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldTlStatus, vc))
}

// TlStatusLTE applies the LTE predicate on the "tl_status" field.
func TlStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldTlStatus, vc))
}

// TlStatusContains applies the Contains predicate on the "tl_status" field.
func TlStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldTlStatus, vc))
}

// TlStatusHasPrefix applies the HasPrefix predicate on the "tl_status" field.
func TlStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldTlStatus, vc))
}

// TlStatusHasSuffix applies the HasSuffix predicate on the "tl_status" field.
func TlStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldTlStatus, vc))
}

// TlStatusIsNil applies the IsNil predicate on the "tl_status" field.
func TlStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldTlStatus))
}

// TlStatusNotNil applies the NotNil predicate on the "tl_status" field.
func TlStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldTlStatus))
}

// TlStatusEqualFold applies the EqualFold predicate on the "tl_status" field.
func TlStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldTlStatus, vc))
}

// TlStatusContainsFold applies the ContainsFold predicate on the "tl_status" field.
func TlStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldTlStatus, vc))
}

// TiEQ applies the EQ predicate on the "ti" field.
func TiEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldTi, v))
}

// TiNEQ applies the NEQ predicate on the "ti" field.
func TiNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldTi, v))
}

// TiIn applies the In predicate on the "ti" field.
func TiIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldTi, vs...))
}

// TiNotIn applies the NotIn predicate on the "ti" field.
func TiNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldTi, vs...))
}

// TiGT applies the GT predicate on the "ti" field.
func TiGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldTi, v))
}

// TiGTE applies the GTE predicate on the "ti" field.
func TiGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldTi, v))
}

// TiLT applies the LT predicate on the "ti" field.
func TiLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldTi, v))
}

// TiLTE applies the LTE predicate on the "ti" field.
func TiLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldTi, v))
}

// TiIsNil applies the IsNil predicate on the "ti" field.
func TiIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldTi))
}

// TiNotNil applies the NotNil predicate on the "ti" field.
func TiNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldTi))
}

// TiStatusEQ applies the EQ predicate on the "ti_status" field.
func TiStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldTiStatus, vc))
}

// TiStatusNEQ applies the NEQ predicate on the "ti_status" field.
func TiStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldTiStatus, vc))
}

// TiStatusIn applies the In predicate on the "ti_status" field.
func TiStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldTiStatus, v...))
}

// TiStatusNotIn applies the NotIn predicate on the "ti_status" field.
func TiStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldTiStatus, v...))
}

// TiStatusGT applies the GT predicate on the "ti_status" field.
func TiStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldTiStatus, vc))
}

// TiStatusGTE applies the GTE predicate on the "ti_status" field.
func TiStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldTiStatus, vc))
}

// TiStatusLT applies the LT predicate on the "ti_status" field.
func TiStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldTiStatus, vc))
}

// TiStatusLTE applies the LTE predicate on the "ti_status" field.
func TiStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldTiStatus, vc))
}

// TiStatusContains applies the Contains predicate on the "ti_status" field.
func TiStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldTiStatus, vc))
}

// TiStatusHasPrefix applies the HasPrefix predicate on the "ti_status" field.
func TiStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldTiStatus, vc))
}

// TiStatusHasSuffix applies the HasSuffix predicate on the "ti_status" field.
func TiStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldTiStatus, vc))
}

// TiStatusIsNil applies the IsNil predicate on the "ti_status" field.
func TiStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldTiStatus))
}

// TiStatusNotNil applies the NotNil predicate on the "ti_status" field.
func TiStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldTiStatus))
}

// TiStatusEqualFold applies the EqualFold predicate on the "ti_status" field.
func TiStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldTiStatus, vc))
}

// TiStatusContainsFold applies the ContainsFold predicate on the "ti_status" field.
func TiStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldTiStatus, vc))
}

// WEQ applies the EQ predicate on the "w" field.
func WEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldW, v))
}

// WNEQ applies the NEQ predicate on the "w" field.
func WNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldW, v))
}

// WIn applies the In predicate on the "w" field.
func WIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldW, vs...))
}

// WNotIn applies the NotIn predicate on the "w" field.
func WNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldW, vs...))
}

// WGT applies the GT predicate on the "w" field.
func WGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldW, v))
}

// WGTE applies the GTE predicate on the "w" field.
func WGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldW, v))
}

// WLT applies the LT predicate on the "w" field.
func WLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldW, v))
}

// WLTE applies the LTE predicate on the "w" field.
func WLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldW, v))
}

// WIsNil applies the IsNil predicate on the "w" field.
func WIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldW))
}

// WNotNil applies the NotNil predicate on the "w" field.
func WNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldW))
}

// WStatusEQ applies the EQ predicate on the "w_status" field.
func WStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldWStatus, vc))
}

// WStatusNEQ applies the NEQ predicate on the "w_status" field.
func WStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldWStatus, vc))
}

// WStatusIn applies the In predicate on the "w_status" field.
func WStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldWStatus, v...))
}

// WStatusNotIn applies the NotIn predicate on the "w_status" field.
func WStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldWStatus, v...))
}

// WStatusGT applies the GT predicate on the "w_status" field.
func WStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldWStatus, vc))
}

// WStatusGTE applies the GTE predicate on the "w_status" field.
func WStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldWStatus, vc))
}

// WStatusLT applies the LT predicate on the "w_status" field.
func WStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldWStatus, vc))
}

// WStatusLTE applies the LTE predicate on the "w_status" field.
func WStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldWStatus, vc))
}

// WStatusContains applies the Contains predicate on the "w_status" field.
func WStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldWStatus, vc))
}

// WStatusHasPrefix applies the HasPrefix predicate on the "w_status" field.
func WStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldWStatus, vc))
}

// WStatusHasSuffix applies the HasSuffix predicate on the "w_status" field.
func WStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldWStatus, vc))
}

// WStatusIsNil applies the IsNil predicate on the "w_status" field.
func WStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldWStatus))
}

// WStatusNotNil applies the NotNil predicate on the "w_status" field.
func WStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldWStatus))
}

// WStatusEqualFold applies the EqualFold predicate on the "w_status" field.
func WStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldWStatus, vc))
}

// WStatusContainsFold applies the ContainsFold predicate on the "w_status" field.
func WStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldWStatus, vc))
}

// HgEQ applies the EQ predicate on the "hg" field.
func HgEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldHg, v))
}

// HgNEQ applies the NEQ predicate on the "hg" field.
func HgNEQ(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldHg, v))
}

// HgIn applies the In predicate on the "hg" field.
func HgIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldHg, vs...))
}

// HgNotIn applies the NotIn predicate on the "hg" field.
func HgNotIn(vs ...float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldHg, vs...))
}

// HgGT applies the GT predicate on the "hg" field.
func HgGT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldHg, v))
}

// HgGTE applies the GTE predicate on the "hg" field.
func HgGTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldHg, v))
}

// HgLT applies the LT predicate on the "hg" field.
func HgLT(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldHg, v))
}

// HgLTE applies the LTE predicate on the "hg" field.
func HgLTE(v float64) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldHg, v))
}

// HgIsNil applies the IsNil predicate on the "hg" field.
func HgIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldHg))
}

// HgNotNil applies the NotNil predicate on the "hg" field.
func HgNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldHg))
}

// HgStatusEQ applies the EQ predicate on the "hg_status" field.
func HgStatusEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEQ(FieldHgStatus, vc))
}

// HgStatusNEQ applies the NEQ predicate on the "hg_status" field.
func HgStatusNEQ(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldNEQ(FieldHgStatus, vc))
}

// HgStatusIn applies the In predicate on the "hg_status" field.
func HgStatusIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldIn(FieldHgStatus, v...))
}

// HgStatusNotIn applies the NotIn predicate on the "hg_status" field.
func HgStatusNotIn(vs ...constants.ElementStatus) predicate.IcpTest {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.IcpTest(sql.FieldNotIn(FieldHgStatus, v...))
}

// HgStatusGT applies the GT predicate on the "hg_status" field.
func HgStatusGT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGT(FieldHgStatus, vc))
}

// HgStatusGTE applies the GTE predicate on the "hg_status" field.
func HgStatusGTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldGTE(FieldHgStatus, vc))
}

// HgStatusLT applies the LT predicate on the "hg_status" field.
func HgStatusLT(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLT(FieldHgStatus, vc))
}

// HgStatusLTE applies the LTE predicate on the "hg_status" field.
func HgStatusLTE(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldLTE(FieldHgStatus, vc))
}

// HgStatusContains applies the Contains predicate on the "hg_status" field.
func HgStatusContains(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContains(FieldHgStatus, vc))
}

// HgStatusHasPrefix applies the HasPrefix predicate on the "hg_status" field.
func HgStatusHasPrefix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasPrefix(FieldHgStatus, vc))
}

// HgStatusHasSuffix applies the HasSuffix predicate on the "hg_status" field.
func HgStatusHasSuffix(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldHasSuffix(FieldHgStatus, vc))
}

// HgStatusIsNil applies the IsNil predicate on the "hg_status" field.
func HgStatusIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldHgStatus))
}

// HgStatusNotNil applies the NotNil predicate on the "hg_status" field.
func HgStatusNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldHgStatus))
}

// HgStatusEqualFold applies the EqualFold predicate on the "hg_status" field.
func HgStatusEqualFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldEqualFold(FieldHgStatus, vc))
}

// HgStatusContainsFold applies the ContainsFold predicate on the "hg_status" field.
func HgStatusContainsFold(v constants.ElementStatus) predicate.IcpTest {
	vc := string(v)
	return predicate.IcpTest(sql.FieldContainsFold(FieldHgStatus, vc))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldRecommendations))
}

// DosingInstructionsEQ applies the EQ predicate on the "dosing_instructions" field.
func DosingInstructionsEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldDosingInstructions, v))
}

// DosingInstructionsNEQ applies the NEQ predicate on the "dosing_instructions" field.
func DosingInstructionsNEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldDosingInstructions, v))
}

// DosingInstructionsIn applies the In predicate on the "dosing_instructions" field.
func DosingInstructionsIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldDosingInstructions, vs...))
}

// DosingInstructionsNotIn applies the NotIn predicate on the "dosing_instructions" field.
func DosingInstructionsNotIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldDosingInstructions, vs...))
}

// DosingInstructionsGT applies the GT predicate on the "dosing_instructions" field.
func DosingInstructionsGT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldDosingInstructions, v))
}

// DosingInstructionsGTE applies the GTE predicate on the "dosing_instructions" field.
func DosingInstructionsGTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldDosingInstructions, v))
}

// DosingInstructionsLT applies the LT predicate on the "dosing_instructions" field.
func DosingInstructionsLT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldDosingInstructions, v))
}

// DosingInstructionsLTE applies the LTE predicate on the "dosing_instructions" field.
func DosingInstructionsLTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldDosingInstructions, v))
}

// DosingInstructionsContains applies the Contains predicate on the "dosing_instructions" field.
func DosingInstructionsContains(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContains(FieldDosingInstructions, v))
}

// DosingInstructionsHasPrefix applies the HasPrefix predicate on the "dosing_instructions" field.
func DosingInstructionsHasPrefix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasPrefix(FieldDosingInstructions, v))
}

// DosingInstructionsHasSuffix applies the HasSuffix predicate on the "dosing_instructions" field.
func DosingInstructionsHasSuffix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasSuffix(FieldDosingInstructions, v))
}

// DosingInstructionsIsNil applies the IsNil predicate on the "dosing_instructions" field.
func DosingInstructionsIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldDosingInstructions))
}

// DosingInstructionsNotNil applies the NotNil predicate on the "dosing_instructions" field.
func DosingInstructionsNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldDosingInstructions))
}

// DosingInstructionsEqualFold applies the EqualFold predicate on the "dosing_instructions" field.
func DosingInstructionsEqualFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEqualFold(FieldDosingInstructions, v))
}

// DosingInstructionsContainsFold applies the ContainsFold predicate on the "dosing_instructions" field.
func DosingInstructionsContainsFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContainsFold(FieldDosingInstructions, v))
}

// PdfFilenameEQ applies the EQ predicate on the "pdf_filename" field.
func PdfFilenameEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfFilenameNEQ applies the NEQ predicate on the "pdf_filename" field.
func PdfFilenameNEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldPdfFilename, v))
}

// PdfFilenameIn applies the In predicate on the "pdf_filename" field.
func PdfFilenameIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldPdfFilename, vs...))
}

// PdfFilenameNotIn applies the NotIn predicate on the "pdf_filename" field.
func PdfFilenameNotIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldPdfFilename, vs...))
}

// PdfFilenameGT applies the GT predicate on the "pdf_filename" field.
func PdfFilenameGT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldPdfFilename, v))
}

// PdfFilenameGTE applies the GTE predicate on the "pdf_filename" field.
func PdfFilenameGTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldPdfFilename, v))
}

// PdfFilenameLT applies the LT predicate on the "pdf_filename" field.
func PdfFilenameLT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldPdfFilename, v))
}

// PdfFilenameLTE applies the LTE predicate on the "pdf_filename" field.
func PdfFilenameLTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldPdfFilename, v))
}

// PdfFilenameContains applies the Contains predicate on the "pdf_filename" field.
func PdfFilenameContains(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContains(FieldPdfFilename, v))
}

// PdfFilenameHasPrefix applies the HasPrefix predicate on the "pdf_filename" field.
func PdfFilenameHasPrefix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasPrefix(FieldPdfFilename, v))
}

// PdfFilenameHasSuffix applies the HasSuffix predicate on the "pdf_filename" field.
func PdfFilenameHasSuffix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasSuffix(FieldPdfFilename, v))
}

// PdfFilenameIsNil applies the IsNil predicate on the "pdf_filename" field.
func PdfFilenameIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPdfFilename))
}

// PdfFilenameNotNil applies the NotNil predicate on the "pdf_filename" field.
func PdfFilenameNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPdfFilename))
}

// PdfFilenameEqualFold applies the EqualFold predicate on the "pdf_filename" field.
func PdfFilenameEqualFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEqualFold(FieldPdfFilename, v))
}

// PdfFilenameContainsFold applies the ContainsFold predicate on the "pdf_filename" field.
func PdfFilenameContainsFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContainsFold(FieldPdfFilename, v))
}

// PdfPathEQ applies the EQ predicate on the "pdf_path" field.
func PdfPathEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldPdfPath, v))
}

// PdfPathNEQ applies the NEQ predicate on the "pdf_path" field.
func PdfPathNEQ(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldPdfPath, v))
}

// PdfPathIn applies the In predicate on the "pdf_path" field.
func PdfPathIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldPdfPath, vs...))
}

// PdfPathNotIn applies the NotIn predicate on the "pdf_path" field.
func PdfPathNotIn(vs ...string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldPdfPath, vs...))
}

// PdfPathGT applies the GT predicate on the "pdf_path" field.
func PdfPathGT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldPdfPath, v))
}

// PdfPathGTE applies the GTE predicate on the "pdf_path" field.
func PdfPathGTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldPdfPath, v))
}

// PdfPathLT applies the LT predicate on the "pdf_path" field.
func PdfPathLT(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldPdfPath, v))
}

// PdfPathLTE applies the LTE predicate on the "pdf_path" field.
func PdfPathLTE(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldPdfPath, v))
}

// PdfPathContains applies the Contains predicate on the "pdf_path" field.
func PdfPathContains(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContains(FieldPdfPath, v))
}

// PdfPathHasPrefix applies the HasPrefix predicate on the "pdf_path" field.
func PdfPathHasPrefix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasPrefix(FieldPdfPath, v))
}

// PdfPathHasSuffix applies the HasSuffix predicate on the "pdf_path" field.
func PdfPathHasSuffix(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldHasSuffix(FieldPdfPath, v))
}

// PdfPathIsNil applies the IsNil predicate on the "pdf_path" field.
func PdfPathIsNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIsNull(FieldPdfPath))
}

// PdfPathNotNil applies the NotNil predicate on the "pdf_path" field.
func PdfPathNotNil() predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotNull(FieldPdfPath))
}

// PdfPathEqualFold applies the EqualFold predicate on the "pdf_path" field.
func PdfPathEqualFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEqualFold(FieldPdfPath, v))
}

// PdfPathContainsFold applies the ContainsFold predicate on the "pdf_path" field.
func PdfPathContainsFold(v string) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldContainsFold(FieldPdfPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IcpTest {
	return predicate.IcpTest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTank applies the HasEdge predicate on the "tank" edge.
func HasTank() predicate.IcpTest {
	return predicate.IcpTest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TankTable, TankColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTankWith applies the HasEdge predicate on the "tank" edge with a given conditions (other predicates).
func HasTankWith(preds ...predicate.Tank) predicate.IcpTest {
	return predicate.IcpTest(func(s *sql.Selector) {
		step := newTankStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.IcpTest {
	return predicate.IcpTest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.ReportFile) predicate.IcpTest {
	return predicate.IcpTest(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IcpTest) predicate.IcpTest {
	return predicate.IcpTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IcpTest) predicate.IcpTest {
	return predicate.IcpTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IcpTest) predicate.IcpTest {
	return predicate.IcpTest(sql.NotPredicates(p))
}
