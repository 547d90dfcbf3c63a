// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// IcpTest is the model entity for the IcpTest schema.
type IcpTest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TankID holds the value of the "tank_id" field.
	TankID uuid.UUID `json:"tank_id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID *uuid.UUID `json:"file_id,omitempty"`
	// TestDate holds the value of the "test_date" field.
	TestDate time.Time `json:"test_date,omitempty"`
	// LabName holds the value of the "lab_name" field.
	LabName string `json:"lab_name,omitempty"`
	// TestID holds the value of the "test_id" field.
	TestID *string `json:"test_id,omitempty"`
	// WaterType holds the value of the "water_type" field.
	WaterType constants.WaterType `json:"water_type,omitempty"`
	// SampleDate holds the value of the "sample_date" field.
	SampleDate *time.Time `json:"sample_date,omitempty"`
	// ReceivedDate holds the value of the "received_date" field.
	ReceivedDate *time.Time `json:"received_date,omitempty"`
	// EvaluatedDate holds the value of the "evaluated_date" field.
	EvaluatedDate *time.Time `json:"evaluated_date,omitempty"`
	// ScoreMajorElements holds the value of the "score_major_elements" field.
	ScoreMajorElements *int `json:"score_major_elements,omitempty"`
	// ScoreMinorElements holds the value of the "score_minor_elements" field.
	ScoreMinorElements *int `json:"score_minor_elements,omitempty"`
	// ScorePollutants holds the value of the "score_pollutants" field.
	ScorePollutants *int `json:"score_pollutants,omitempty"`
	// ScoreBaseElements holds the value of the "score_base_elements" field.
	ScoreBaseElements *int `json:"score_base_elements,omitempty"`
	// ScoreOverall holds the value of the "score_overall" field.
	ScoreOverall *int `json:"score_overall,omitempty"`
	// Salinity holds the value of the "salinity" field.
	Salinity *float64 `json:"salinity,omitempty"`
	// SalinityStatus holds the value of the "salinity_status" field.
	SalinityStatus *constants.ElementStatus `json:"salinity_status,omitempty"`
	// Kh holds the value of the "kh" field.
	Kh *float64 `json:"kh,omitempty"`
	// KhStatus holds the value of the "kh_status" field.
	KhStatus *constants.ElementStatus `json:"kh_status,omitempty"`
	// Cl holds the value of the "cl" field.
	Cl *float64 `json:"cl,omitempty"`
	// ClStatus holds the value of the "cl_status" field.
	ClStatus *constants.ElementStatus `json:"cl_status,omitempty"`
	// Na holds the value of the "na" field.
	Na *float64 `json:"na,omitempty"`
	// NaStatus holds the value of the "na_status" field.
	NaStatus *constants.ElementStatus `json:"na_status,omitempty"`
	// Mg holds the value of the "mg" field.
	Mg *float64 `json:"mg,omitempty"`
	// MgStatus holds the value of the "mg_status" field.
	MgStatus *constants.ElementStatus `json:"mg_status,omitempty"`
	// S holds the value of the "s" field.
	S *float64 `json:"s,omitempty"`
	// SStatus holds the value of the "s_status" field.
	SStatus *constants.ElementStatus `json:"s_status,omitempty"`
	// Ca holds the value of the "ca" field.
	Ca *float64 `json:"ca,omitempty"`
	// CaStatus holds the value of the "ca_status" field.
	CaStatus *constants.ElementStatus `json:"ca_status,omitempty"`
	// K holds the value of the "k" field.
	K *float64 `json:"k,omitempty"`
	// KStatus holds the value of the "k_status" field.
	KStatus *constants.ElementStatus `json:"k_status,omitempty"`
	// Br holds the value of the "br" field.
	Br *float64 `json:"br,omitempty"`
	// BrStatus holds the value of the "br_status" field.
	BrStatus *constants.ElementStatus `json:"br_status,omitempty"`
	// Sr holds the value of the "sr" field.
	Sr *float64 `json:"sr,omitempty"`
	// SrStatus holds the value of the "sr_status" field.
	SrStatus *constants.ElementStatus `json:"sr_status,omitempty"`
	// B holds the value of the "b" field.
	B *float64 `json:"b,omitempty"`
	// BStatus holds the value of the "b_status" field.
	BStatus *constants.ElementStatus `json:"b_status,omitempty"`
	// F holds the value of the "f" field.
	F *float64 `json:"f,omitempty"`
	// FStatus holds the value of the "f_status" field.
	FStatus *constants.ElementStatus `json:"f_status,omitempty"`
	// Li holds the value of the "li" field.
	Li *float64 `json:"li,omitempty"`
	// LiStatus holds the value of the "li_status" field.
	LiStatus *constants.ElementStatus `json:"li_status,omitempty"`
	// Si holds the value of the "si" field.
	Si *float64 `json:"si,omitempty"`
	// SiStatus holds the value of the "si_status" field.
	SiStatus *constants.ElementStatus `json:"si_status,omitempty"`
	// I holds the value of the "i" field.
	I *float64 `json:"i,omitempty"`
	// IStatus holds the value of the "i_status" field.
	IStatus *constants.ElementStatus `json:"i_status,omitempty"`
	// Ba holds the value of the "ba" field.
	Ba *float64 `json:"ba,omitempty"`
	// BaStatus holds the value of the "ba_status" field.
	BaStatus *constants.ElementStatus `json:"ba_status,omitempty"`
	// Mo holds the value of the "mo" field.
	Mo *float64 `json:"mo,omitempty"`
	// MoStatus holds the value of the "mo_status" field.
	MoStatus *constants.ElementStatus `json:"mo_status,omitempty"`
	// Ni holds the value of the "ni" field.
	Ni *float64 `json:"ni,omitempty"`
	// NiStatus holds the value of the "ni_status" field.
	NiStatus *constants.ElementStatus `json:"ni_status,omitempty"`
	// Mn holds the value of the "mn" field.
	Mn *float64 `json:"mn,omitempty"`
	// MnStatus holds the value of the "mn_status" field.
	MnStatus *constants.ElementStatus `json:"mn_status,omitempty"`
	// As holds the value of the "as" field.
	As *float64 `json:"as,omitempty"`
	// AsStatus holds the value of the "as_status" field.
	AsStatus *constants.ElementStatus `json:"as_status,omitempty"`
	// Be holds the value of the "be" field.
	Be *float64 `json:"be,omitempty"`
	// BeStatus holds the value of the "be_status" field.
	BeStatus *constants.ElementStatus `json:"be_status,omitempty"`
	// Cr holds the value of the "cr" field.
	Cr *float64 `json:"cr,omitempty"`
	// CrStatus holds the value of the "cr_status" field.
	CrStatus *constants.ElementStatus `json:"cr_status,omitempty"`
	// Co holds the value of the "co" field.
	Co *float64 `json:"co,omitempty"`
	// CoStatus holds the value of the "co_status" field.
	CoStatus *constants.ElementStatus `json:"co_status,omitempty"`
	// Fe holds the value of the "fe" field.
	Fe *float64 `json:"fe,omitempty"`
	// FeStatus holds the value of the "fe_status" field.
	FeStatus *constants.ElementStatus `json:"fe_status,omitempty"`
	// Cu holds the value of the "cu" field.
	Cu *float64 `json:"cu,omitempty"`
	// CuStatus holds the value of the "cu_status" field.
	CuStatus *constants.ElementStatus `json:"cu_status,omitempty"`
	// Se holds the value of the "se" field.
	Se *float64 `json:"se,omitempty"`
	// SeStatus holds the value of the "se_status" field.
	SeStatus *constants.ElementStatus `json:"se_status,omitempty"`
	// Ag holds the value of the "ag" field.
	Ag *float64 `json:"ag,omitempty"`
	// AgStatus holds the value of the "ag_status" field.
	AgStatus *constants.ElementStatus `json:"ag_status,omitempty"`
	// V holds the value of the "v" field.
	V *float64 `json:"v,omitempty"`
	// VStatus holds the value of the "v_status" field.
	VStatus *constants.ElementStatus `json:"v_status,omitempty"`
	// Zn holds the value of the "zn" field.
	Zn *float64 `json:"zn,omitempty"`
	// ZnStatus holds the value of the "zn_status" field.
	ZnStatus *constants.ElementStatus `json:"zn_status,omitempty"`
	// Sn holds the value of the "sn" field.
	Sn *float64 `json:"sn,omitempty"`
	// SnStatus holds the value of the "sn_status" field.
	SnStatus *constants.ElementStatus `json:"sn_status,omitempty"`
	// No3 holds the value of the "no3" field.
	No3 *float64 `json:"no3,omitempty"`
	// No3Status holds the value of the "no3_status" field.
	No3Status *constants.ElementStatus `json:"no3_status,omitempty"`
	// P holds the value of the "p" field.
	P *float64 `json:"p,omitempty"`
	// PStatus holds the value of the "p_status" field.
	PStatus *constants.ElementStatus `json:"p_status,omitempty"`
	// Po4 holds the value of the "po4" field.
	Po4 *float64 `json:"po4,omitempty"`
	// Po4Status holds the value of the "po4_status" field.
	Po4Status *constants.ElementStatus `json:"po4_status,omitempty"`
	// Al holds the value of the "al" field.
	Al *float64 `json:"al,omitempty"`
	// AlStatus holds the value of the "al_status" field.
	AlStatus *constants.ElementStatus `json:"al_status,omitempty"`
	// Sb holds the value of the "sb" field.
	Sb *float64 `json:"sb,omitempty"`
	// SbStatus holds the value of the "sb_status" field.
	SbStatus *constants.ElementStatus `json:"sb_status,omitempty"`
	// Bi holds the value of the "bi" field.
	Bi *float64 `json:"bi,omitempty"`
	// BiStatus holds the value of the "bi_status" field.
	BiStatus *constants.ElementStatus `json:"bi_status,omitempty"`
	// Pb holds the value of the "pb" field.
	Pb *float64 `json:"pb,omitempty"`
	// PbStatus holds the value of the "pb_status" field.
	PbStatus *constants.ElementStatus `json:"pb_status,omitempty"`
	// Cd holds the value of the "cd" field.
	Cd *float64 `json:"cd,omitempty"`
	// CdStatus holds the value of the "cd_status" field.
	CdStatus *constants.ElementStatus `json:"cd_status,omitempty"`
	// La holds the value of the "la" field.
	La *float64 `json:"la,omitempty"`
	// LaStatus holds the value of the "la_status" field.
	LaStatus *constants.ElementStatus `json:"la_status,omitempty"`
	// Tl holds the value of the "tl" field.
	Tl *float64 `json:"tl,omitempty"`
	// TlStatus holds the value of the "tl_status" field.
	TlStatus *constants.ElementStatus `json:"tl_status,omitempty"`
	// Ti holds the value of the "ti" field.
	Ti *float64 `json:"ti,omitempty"`
	// TiStatus holds the value of the "ti_status" field.
	TiStatus *constants.ElementStatus `json:"ti_status,omitempty"`
	// W holds the value of the "w" field.
	W *float64 `json:"w,omitempty"`
	// WStatus holds the value of the "w_status" field.
	WStatus *constants.ElementStatus `json:"w_status,omitempty"`
	// Hg holds the value of the "hg" field.
	Hg *float64 `json:"hg,omitempty"`
	// HgStatus holds the value of the "hg_status" field.
	HgStatus *constants.ElementStatus `json:"hg_status,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// DosingInstructions holds the value of the "dosing_instructions" field.
	DosingInstructions *string `json:"dosing_instructions,omitempty"`
	// PdfFilename holds the value of the "pdf_filename" field.
	PdfFilename *string `json:"pdf_filename,omitempty"`
	// PdfPath holds the value of the "pdf_path" field.
	PdfPath *string `json:"pdf_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IcpTestQuery when eager-loading is set.
	Edges        IcpTestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IcpTestEdges holds the relations/edges for other nodes in the graph.
type IcpTestEdges struct {
	// Tank holds the value of the tank edge.
	Tank *Tank `json:"tank,omitempty"`
	// File holds the value of the file edge.
	File *ReportFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TankOrErr returns the Tank value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IcpTestEdges) TankOrErr() (*Tank, error) {
	if e.Tank != nil {
		return e.Tank, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tank.Label}
	}
	return nil, &NotLoadedError{edge: "tank"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IcpTestEdges) FileOrErr() (*ReportFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: reportfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IcpTest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case icptest.FieldFileID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case icptest.FieldRecommendations:
			values[i] = new([]byte)
		case icptest.FieldSalinity, icptest.FieldKh, icptest.FieldCl, icptest.FieldNa, icptest.FieldMg, icptest.FieldS, icptest.FieldCa, icptest.FieldK, icptest.FieldBr, icptest.FieldSr, icptest.FieldB, icptest.FieldF, icptest.FieldLi, icptest.FieldSi, icptest.FieldI, icptest.FieldBa, icptest.FieldMo, icptest.FieldNi, icptest.FieldMn, icptest.FieldAs, icptest.FieldBe, icptest.FieldCr, icptest.FieldCo, icptest.FieldFe, icptest.FieldCu, icptest.FieldSe, icptest.FieldAg, icptest.FieldV, icptest.FieldZn, icptest.FieldSn, icptest.FieldNo3, icptest.FieldP, icptest.FieldPo4, icptest.FieldAl, icptest.FieldSb, icptest.FieldBi, icptest.FieldPb, icptest.FieldCd, icptest.FieldLa, icptest.FieldTl, icptest.FieldTi, icptest.FieldW, icptest.FieldHg:
			values[i] = new(sql.NullFloat64)
		case icptest.FieldScoreMajorElements, icptest.FieldScoreMinorElements, icptest.FieldScorePollutants, icptest.FieldScoreBaseElements, icptest.FieldScoreOverall:
			values[i] = new(sql.NullInt64)
		case icptest.FieldLabName, icptest.FieldTestID, icptest.FieldWaterType, icptest.FieldSalinityStatus, icptest.FieldKhStatus, icptest.FieldClStatus, icptest.FieldNaStatus, icptest.FieldMgStatus, icptest.FieldSStatus, icptest.FieldCaStatus, icptest.FieldKStatus, icptest.FieldBrStatus, icptest.FieldSrStatus, icptest.FieldBStatus, icptest.FieldFStatus, icptest.FieldLiStatus, icptest.FieldSiStatus, icptest.FieldIStatus, icptest.FieldBaStatus, icptest.FieldMoStatus, icptest.FieldNiStatus, icptest.FieldMnStatus, icptest.FieldAsStatus, icptest.FieldBeStatus, icptest.FieldCrStatus, icptest.FieldCoStatus, icptest.FieldFeStatus, icptest.FieldCuStatus, icptest.FieldSeStatus, icptest.FieldAgStatus, icptest.FieldVStatus, icptest.FieldZnStatus, icptest.FieldSnStatus, icptest.FieldNo3Status, icptest.FieldPStatus, icptest.FieldPo4Status, icptest.FieldAlStatus, icptest.FieldSbStatus, icptest.FieldBiStatus, icptest.FieldPbStatus, icptest.FieldCdStatus, icptest.FieldLaStatus, icptest.FieldTlStatus, icptest.FieldTiStatus, icptest.FieldWStatus, icptest.FieldHgStatus, icptest.FieldDosingInstructions, icptest.FieldPdfFilename, icptest.FieldPdfPath:
			values[i] = new(sql.NullString)
		case icptest.FieldTestDate, icptest.FieldSampleDate, icptest.FieldReceivedDate, icptest.FieldEvaluatedDate, icptest.FieldCreatedAt, icptest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case icptest.FieldID, icptest.FieldTankID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IcpTest fields.
func (_m *IcpTest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case icptest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case icptest.FieldTankID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tank_id", values[i])
			} else if value != nil {
				_m.TankID = *value
			}
		case icptest.FieldFileID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value.Valid {
				_m.FileID = new(uuid.UUID)
				*_m.FileID = *value.S.(*uuid.UUID)
			}
		case icptest.FieldTestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field test_date", values[i])
			} else if value.Valid {
				_m.TestDate = value.Time
			}
		case icptest.FieldLabName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lab_name", values[i])
			} else if value.Valid {
				_m.LabName = value.String
			}
		case icptest.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = new(string)
				*_m.TestID = value.String
			}
		case icptest.FieldWaterType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field water_type", values[i])
			} else if value.Valid {
				_m.WaterType = constants.WaterType(value.String)
			}
		case icptest.FieldSampleDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sample_date", values[i])
			} else if value.Valid {
				_m.SampleDate = new(time.Time)
				*_m.SampleDate = value.Time
			}
		case icptest.FieldReceivedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_date", values[i])
			} else if value.Valid {
				_m.ReceivedDate = new(time.Time)
				*_m.ReceivedDate = value.Time
			}
		case icptest.FieldEvaluatedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_date", values[i])
			} else if value.Valid {
				_m.EvaluatedDate = new(time.Time)
				*_m.EvaluatedDate = value.Time
			}
		case icptest.FieldScoreMajorElements:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_major_elements", values[i])
			} else if value.Valid {
				_m.ScoreMajorElements = new(int)
				*_m.ScoreMajorElements = int(value.Int64)
			}
		case icptest.FieldScoreMinorElements:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_minor_elements", values[i])
			} else if value.Valid {
				_m.ScoreMinorElements = new(int)
				*_m.ScoreMinorElements = int(value.Int64)
			}
		case icptest.FieldScorePollutants:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_pollutants", values[i])
			} else if value.Valid {
				_m.ScorePollutants = new(int)
				*_m.ScorePollutants = int(value.Int64)
			}
		case icptest.FieldScoreBaseElements:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_base_elements", values[i])
			} else if value.Valid {
				_m.ScoreBaseElements = new(int)
				*_m.ScoreBaseElements = int(value.Int64)
			}
		case icptest.FieldScoreOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_overall", values[i])
			} else if value.Valid {
				_m.ScoreOverall = new(int)
				*_m.ScoreOverall = int(value.Int64)
			}
		case icptest.FieldSalinity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field salinity", values[i])
			} else if value.Valid {
				_m.Salinity = new(float64)
				*_m.Salinity = value.Float64
			}
		case icptest.FieldSalinityStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field salinity_status", values[i])
			} else if value.Valid {
				_m.SalinityStatus = new(constants.ElementStatus)
				*_m.SalinityStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldKh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field kh", values[i])
			} else if value.Valid {
				_m.Kh = new(float64)
				*_m.Kh = value.Float64
			}
		case icptest.FieldKhStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kh_status", values[i])
			} else if value.Valid {
				_m.KhStatus = new(constants.ElementStatus)
				*_m.KhStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCl:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cl", values[i])
			} else if value.Valid {
				_m.Cl = new(float64)
				*_m.Cl = value.Float64
			}
		case icptest.FieldClStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cl_status", values[i])
			} else if value.Valid {
				_m.ClStatus = new(constants.ElementStatus)
				*_m.ClStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldNa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field na", values[i])
			} else if value.Valid {
				_m.Na = new(float64)
				*_m.Na = value.Float64
			}
		case icptest.FieldNaStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field na_status", values[i])
			} else if value.Valid {
				_m.NaStatus = new(constants.ElementStatus)
				*_m.NaStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldMg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mg", values[i])
			} else if value.Valid {
				_m.Mg = new(float64)
				*_m.Mg = value.Float64
			}
		case icptest.FieldMgStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mg_status", values[i])
			} else if value.Valid {
				_m.MgStatus = new(constants.ElementStatus)
				*_m.MgStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldS:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field s", values[i])
			} else if value.Valid {
				_m.S = new(float64)
				*_m.S = value.Float64
			}
		case icptest.FieldSStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s_status", values[i])
			} else if value.Valid {
				_m.SStatus = new(constants.ElementStatus)
				*_m.SStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ca", values[i])
			} else if value.Valid {
				_m.Ca = new(float64)
				*_m.Ca = value.Float64
			}
		case icptest.FieldCaStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ca_status", values[i])
			} else if value.Valid {
				_m.CaStatus = new(constants.ElementStatus)
				*_m.CaStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldK:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field k", values[i])
			} else if value.Valid {
				_m.K = new(float64)
				*_m.K = value.Float64
			}
		case icptest.FieldKStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field k_status", values[i])
			} else if value.Valid {
				_m.KStatus = new(constants.ElementStatus)
				*_m.KStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldBr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field br", values[i])
			} else if value.Valid {
				_m.Br = new(float64)
				*_m.Br = value.Float64
			}
		case icptest.FieldBrStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field br_status", values[i])
			} else if value.Valid {
				_m.BrStatus = new(constants.ElementStatus)
				*_m.BrStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldSr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sr", values[i])
			} else if value.Valid {
				_m.Sr = new(float64)
				*_m.Sr = value.Float64
			}
		case icptest.FieldSrStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sr_status", values[i])
			} else if value.Valid {
				_m.SrStatus = new(constants.ElementStatus)
				*_m.SrStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field b", values[i])
			} else if value.Valid {
				_m.B = new(float64)
				*_m.B = value.Float64
			}
		case icptest.FieldBStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field b_status", values[i])
			} else if value.Valid {
				_m.BStatus = new(constants.ElementStatus)
				*_m.BStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldF:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field f", values[i])
			} else if value.Valid {
				_m.F = new(float64)
				*_m.F = value.Float64
			}
		case icptest.FieldFStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field f_status", values[i])
			} else if value.Valid {
				_m.FStatus = new(constants.ElementStatus)
				*_m.FStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldLi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field li", values[i])
			} else if value.Valid {
				_m.Li = new(float64)
				*_m.Li = value.Float64
			}
		case icptest.FieldLiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field li_status", values[i])
			} else if value.Valid {
				_m.LiStatus = new(constants.ElementStatus)
				*_m.LiStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldSi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field si", values[i])
			} else if value.Valid {
				_m.Si = new(float64)
				*_m.Si = value.Float64
			}
		case icptest.FieldSiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field si_status", values[i])
			} else if value.Valid {
				_m.SiStatus = new(constants.ElementStatus)
				*_m.SiStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldI:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field i", values[i])
			} else if value.Valid {
				_m.I = new(float64)
				*_m.I = value.Float64
			}
		case icptest.FieldIStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field i_status", values[i])
			} else if value.Valid {
				_m.IStatus = new(constants.ElementStatus)
				*_m.IStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldBa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ba", values[i])
			} else if value.Valid {
				_m.Ba = new(float64)
				*_m.Ba = value.Float64
			}
		case icptest.FieldBaStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ba_status", values[i])
			} else if value.Valid {
				_m.BaStatus = new(constants.ElementStatus)
				*_m.BaStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldMo:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mo", values[i])
			} else if value.Valid {
				_m.Mo = new(float64)
				*_m.Mo = value.Float64
			}
		case icptest.FieldMoStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mo_status", values[i])
			} else if value.Valid {
				_m.MoStatus = new(constants.ElementStatus)
				*_m.MoStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldNi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ni", values[i])
			} else if value.Valid {
				_m.Ni = new(float64)
				*_m.Ni = value.Float64
			}
		case icptest.FieldNiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ni_status", values[i])
			} else if value.Valid {
				_m.NiStatus = new(constants.ElementStatus)
				*_m.NiStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldMn:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mn", values[i])
			} else if value.Valid {
				_m.Mn = new(float64)
				*_m.Mn = value.Float64
			}
		case icptest.FieldMnStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mn_status", values[i])
			} else if value.Valid {
				_m.MnStatus = new(constants.ElementStatus)
				*_m.MnStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldAs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field as", values[i])
			} else if value.Valid {
				_m.As = new(float64)
				*_m.As = value.Float64
			}
		case icptest.FieldAsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field as_status", values[i])
			} else if value.Valid {
				_m.AsStatus = new(constants.ElementStatus)
				*_m.AsStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldBe:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field be", values[i])
			} else if value.Valid {
				_m.Be = new(float64)
				*_m.Be = value.Float64
			}
		case icptest.FieldBeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field be_status", values[i])
			} else if value.Valid {
				_m.BeStatus = new(constants.ElementStatus)
				*_m.BeStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cr", values[i])
			} else if value.Valid {
				_m.Cr = new(float64)
				*_m.Cr = value.Float64
			}
		case icptest.FieldCrStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cr_status", values[i])
			} else if value.Valid {
				_m.CrStatus = new(constants.ElementStatus)
				*_m.CrStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCo:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field co", values[i])
			} else if value.Valid {
				_m.Co = new(float64)
				*_m.Co = value.Float64
			}
		case icptest.FieldCoStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field co_status", values[i])
			} else if value.Valid {
				_m.CoStatus = new(constants.ElementStatus)
				*_m.CoStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldFe:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fe", values[i])
			} else if value.Valid {
				_m.Fe = new(float64)
				*_m.Fe = value.Float64
			}
		case icptest.FieldFeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fe_status", values[i])
			} else if value.Valid {
				_m.FeStatus = new(constants.ElementStatus)
				*_m.FeStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCu:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cu", values[i])
			} else if value.Valid {
				_m.Cu = new(float64)
				*_m.Cu = value.Float64
			}
		case icptest.FieldCuStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cu_status", values[i])
			} else if value.Valid {
				_m.CuStatus = new(constants.ElementStatus)
				*_m.CuStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldSe:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field se", values[i])
			} else if value.Valid {
				_m.Se = new(float64)
				*_m.Se = value.Float64
			}
		case icptest.FieldSeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field se_status", values[i])
			} else if value.Valid {
				_m.SeStatus = new(constants.ElementStatus)
				*_m.SeStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldAg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ag", values[i])
			} else if value.Valid {
				_m.Ag = new(float64)
				*_m.Ag = value.Float64
			}
		case icptest.FieldAgStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ag_status", values[i])
			} else if value.Valid {
				_m.AgStatus = new(constants.ElementStatus)
				*_m.AgStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldV:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field v", values[i])
			} else if value.Valid {
				_m.V = new(float64)
				*_m.V = value.Float64
			}
		case icptest.FieldVStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field v_status", values[i])
			} else if value.Valid {
				_m.VStatus = new(constants.ElementStatus)
				*_m.VStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldZn:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field zn", values[i])
			} else if value.Valid {
				_m.Zn = new(float64)
				*_m.Zn = value.Float64
			}
		case icptest.FieldZnStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zn_status", values[i])
			} else if value.Valid {
				_m.ZnStatus = new(constants.ElementStatus)
				*_m.ZnStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldSn:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sn", values[i])
			} else if value.Valid {
				_m.Sn = new(float64)
				*_m.Sn = value.Float64
			}
		case icptest.FieldSnStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sn_status", values[i])
			} else if value.Valid {
				_m.SnStatus = new(constants.ElementStatus)
				*_m.SnStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldNo3:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field no3", values[i])
			} else if value.Valid {
				_m.No3 = new(float64)
				*_m.No3 = value.Float64
			}
		case icptest.FieldNo3Status:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field no3_status", values[i])
			} else if value.Valid {
				_m.No3Status = new(constants.ElementStatus)
				*_m.No3Status = constants.ElementStatus(value.String)
			}
		case icptest.FieldP:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p", values[i])
			} else if value.Valid {
				_m.P = new(float64)
				*_m.P = value.Float64
			}
		case icptest.FieldPStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field p_status", values[i])
			} else if value.Valid {
				_m.PStatus = new(constants.ElementStatus)
				*_m.PStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldPo4:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field po4", values[i])
			} else if value.Valid {
				_m.Po4 = new(float64)
				*_m.Po4 = value.Float64
			}
		case icptest.FieldPo4Status:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po4_status", values[i])
			} else if value.Valid {
				_m.Po4Status = new(constants.ElementStatus)
				*_m.Po4Status = constants.ElementStatus(value.String)
			}
		case icptest.FieldAl:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field al", values[i])
			} else if value.Valid {
				_m.Al = new(float64)
				*_m.Al = value.Float64
			}
		case icptest.FieldAlStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field al_status", values[i])
			} else if value.Valid {
				_m.AlStatus = new(constants.ElementStatus)
				*_m.AlStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldSb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sb", values[i])
			} else if value.Valid {
				_m.Sb = new(float64)
				*_m.Sb = value.Float64
			}
		case icptest.FieldSbStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sb_status", values[i])
			} else if value.Valid {
				_m.SbStatus = new(constants.ElementStatus)
				*_m.SbStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldBi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bi", values[i])
			} else if value.Valid {
				_m.Bi = new(float64)
				*_m.Bi = value.Float64
			}
		case icptest.FieldBiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bi_status", values[i])
			} else if value.Valid {
				_m.BiStatus = new(constants.ElementStatus)
				*_m.BiStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldPb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pb", values[i])
			} else if value.Valid {
				_m.Pb = new(float64)
				*_m.Pb = value.Float64
			}
		case icptest.FieldPbStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pb_status", values[i])
			} else if value.Valid {
				_m.PbStatus = new(constants.ElementStatus)
				*_m.PbStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldCd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cd", values[i])
			} else if value.Valid {
				_m.Cd = new(float64)
				*_m.Cd = value.Float64
			}
		case icptest.FieldCdStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cd_status", values[i])
			} else if value.Valid {
				_m.CdStatus = new(constants.ElementStatus)
				*_m.CdStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldLa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field la", values[i])
			} else if value.Valid {
				_m.La = new(float64)
				*_m.La = value.Float64
			}
		case icptest.FieldLaStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field la_status", values[i])
			} else if value.Valid {
				_m.LaStatus = new(constants.ElementStatus)
				*_m.LaStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldTl:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tl", values[i])
			} else if value.Valid {
				_m.Tl = new(float64)
				*_m.Tl = value.Float64
			}
		case icptest.FieldTlStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tl_status", values[i])
			} else if value.Valid {
				_m.TlStatus = new(constants.ElementStatus)
				*_m.TlStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldTi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ti", values[i])
			} else if value.Valid {
				_m.Ti = new(float64)
				*_m.Ti = value.Float64
			}
		case icptest.FieldTiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ti_status", values[i])
			} else if value.Valid {
				_m.TiStatus = new(constants.ElementStatus)
				*_m.TiStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldW:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field w", values[i])
			} else if value.Valid {
				_m.W = new(float64)
				*_m.W = value.Float64
			}
		case icptest.FieldWStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field w_status", values[i])
			} else if value.Valid {
				_m.WStatus = new(constants.ElementStatus)
				*_m.WStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldHg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hg", values[i])
			} else if value.Valid {
				_m.Hg = new(float64)
				*_m.Hg = value.Float64
			}
		case icptest.FieldHgStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hg_status", values[i])
			} else if value.Valid {
				_m.HgStatus = new(constants.ElementStatus)
				*_m.HgStatus = constants.ElementStatus(value.String)
			}
		case icptest.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case icptest.FieldDosingInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosing_instructions", values[i])
			} else if value.Valid {
				_m.DosingInstructions = new(string)
				*_m.DosingInstructions = value.String
			}
		case icptest.FieldPdfFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_filename", values[i])
			} else if value.Valid {
				_m.PdfFilename = new(string)
				*_m.PdfFilename = value.String
			}
		case icptest.FieldPdfPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_path", values[i])
			} else if value.Valid {
				_m.PdfPath = new(string)
				*_m.PdfPath = value.String
			}
		case icptest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case icptest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IcpTest.
// This includes values selected through modifiers, order, etc.
func (_m *IcpTest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTank queries the "tank" edge of the IcpTest entity.
func (_m *IcpTest) QueryTank() *TankQuery {
	return NewIcpTestClient(_m.config).QueryTank(_m)
}

// QueryFile queries the "file" edge of the IcpTest entity.
func (_m *IcpTest) QueryFile() *ReportFileQuery {
	return NewIcpTestClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this IcpTest.
// Note that you need to call IcpTest.Unwrap() before calling this method if this IcpTest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IcpTest) Update() *IcpTestUpdateOne {
	return NewIcpTestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IcpTest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IcpTest) Unwrap() *IcpTest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IcpTest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IcpTest) String() string {
	var builder strings.Builder
	builder.WriteString("IcpTest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tank_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TankID))
	builder.WriteString(", ")
	if v := _m.FileID; v != nil {
		builder.WriteString("file_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("test_date=")
	builder.WriteString(_m.TestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lab_name=")
	builder.WriteString(_m.LabName)
	builder.WriteString(", ")
	if v := _m.TestID; v != nil {
		builder.WriteString("test_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("water_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.WaterType))
	builder.WriteString(", ")
	if v := _m.SampleDate; v != nil {
		builder.WriteString("sample_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReceivedDate; v != nil {
		builder.WriteString("received_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EvaluatedDate; v != nil {
		builder.WriteString("evaluated_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ScoreMajorElements; v != nil {
		builder.WriteString("score_major_elements=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScoreMinorElements; v != nil {
		builder.WriteString("score_minor_elements=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScorePollutants; v != nil {
		builder.WriteString("score_pollutants=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScoreBaseElements; v != nil {
		builder.WriteString("score_base_elements=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScoreOverall; v != nil {
		builder.WriteString("score_overall=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Salinity; v != nil {
		builder.WriteString("salinity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SalinityStatus; v != nil {
		builder.WriteString("salinity_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Kh; v != nil {
		builder.WriteString("kh=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.KhStatus; v != nil {
		builder.WriteString("kh_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cl; v != nil {
		builder.WriteString("cl=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClStatus; v != nil {
		builder.WriteString("cl_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Na; v != nil {
		builder.WriteString("na=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NaStatus; v != nil {
		builder.WriteString("na_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Mg; v != nil {
		builder.WriteString("mg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MgStatus; v != nil {
		builder.WriteString("mg_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.S; v != nil {
		builder.WriteString("s=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SStatus; v != nil {
		builder.WriteString("s_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ca; v != nil {
		builder.WriteString("ca=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CaStatus; v != nil {
		builder.WriteString("ca_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.K; v != nil {
		builder.WriteString("k=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.KStatus; v != nil {
		builder.WriteString("k_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Br; v != nil {
		builder.WriteString("br=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BrStatus; v != nil {
		builder.WriteString("br_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sr; v != nil {
		builder.WriteString("sr=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SrStatus; v != nil {
		builder.WriteString("sr_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.B; v != nil {
		builder.WriteString("b=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BStatus; v != nil {
		builder.WriteString("b_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.F; v != nil {
		builder.WriteString("f=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FStatus; v != nil {
		builder.WriteString("f_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Li; v != nil {
		builder.WriteString("li=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LiStatus; v != nil {
		builder.WriteString("li_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Si; v != nil {
		builder.WriteString("si=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SiStatus; v != nil {
		builder.WriteString("si_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.I; v != nil {
		builder.WriteString("i=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IStatus; v != nil {
		builder.WriteString("i_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ba; v != nil {
		builder.WriteString("ba=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BaStatus; v != nil {
		builder.WriteString("ba_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Mo; v != nil {
		builder.WriteString("mo=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MoStatus; v != nil {
		builder.WriteString("mo_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ni; v != nil {
		builder.WriteString("ni=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NiStatus; v != nil {
		builder.WriteString("ni_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Mn; v != nil {
		builder.WriteString("mn=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MnStatus; v != nil {
		builder.WriteString("mn_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.As; v != nil {
		builder.WriteString("as=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AsStatus; v != nil {
		builder.WriteString("as_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Be; v != nil {
		builder.WriteString("be=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BeStatus; v != nil {
		builder.WriteString("be_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cr; v != nil {
		builder.WriteString("cr=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CrStatus; v != nil {
		builder.WriteString("cr_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Co; v != nil {
		builder.WriteString("co=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoStatus; v != nil {
		builder.WriteString("co_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Fe; v != nil {
		builder.WriteString("fe=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FeStatus; v != nil {
		builder.WriteString("fe_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cu; v != nil {
		builder.WriteString("cu=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CuStatus; v != nil {
		builder.WriteString("cu_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Se; v != nil {
		builder.WriteString("se=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SeStatus; v != nil {
		builder.WriteString("se_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ag; v != nil {
		builder.WriteString("ag=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgStatus; v != nil {
		builder.WriteString("ag_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.V; v != nil {
		builder.WriteString("v=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VStatus; v != nil {
		builder.WriteString("v_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Zn; v != nil {
		builder.WriteString("zn=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ZnStatus; v != nil {
		builder.WriteString("zn_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sn; v != nil {
		builder.WriteString("sn=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SnStatus; v != nil {
		builder.WriteString("sn_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.No3; v != nil {
		builder.WriteString("no3=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.No3Status; v != nil {
		builder.WriteString("no3_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.P; v != nil {
		builder.WriteString("p=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PStatus; v != nil {
		builder.WriteString("p_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Po4; v != nil {
		builder.WriteString("po4=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Po4Status; v != nil {
		builder.WriteString("po4_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Al; v != nil {
		builder.WriteString("al=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AlStatus; v != nil {
		builder.WriteString("al_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sb; v != nil {
		builder.WriteString("sb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SbStatus; v != nil {
		builder.WriteString("sb_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Bi; v != nil {
		builder.WriteString("bi=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BiStatus; v != nil {
		builder.WriteString("bi_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Pb; v != nil {
		builder.WriteString("pb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PbStatus; v != nil {
		builder.WriteString("pb_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cd; v != nil {
		builder.WriteString("cd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CdStatus; v != nil {
		builder.WriteString("cd_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.La; v != nil {
		builder.WriteString("la=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LaStatus; v != nil {
		builder.WriteString("la_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tl; v != nil {
		builder.WriteString("tl=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TlStatus; v != nil {
		builder.WriteString("tl_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ti; v != nil {
		builder.WriteString("ti=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TiStatus; v != nil {
		builder.WriteString("ti_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.W; v != nil {
		builder.WriteString("w=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WStatus; v != nil {
		builder.WriteString("w_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Hg; v != nil {
		builder.WriteString("hg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HgStatus; v != nil {
		builder.WriteString("hg_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	if v := _m.DosingInstructions; v != nil {
		builder.WriteString("dosing_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PdfFilename; v != nil {
		builder.WriteString("pdf_filename=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PdfPath; v != nil {
		builder.WriteString("pdf_path=")
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

// IcpTests is a parsable slice of IcpTest.
type IcpTests []*IcpTest
