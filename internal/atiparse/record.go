package atiparse

import (
	"time"

	"github.com/reefwatch/icp-tracker/constants"
)

// Record is one parsed test result: the flat union of document metadata,
// one water section's quality scores, element readings and narrative text.
// Every extracted field is independently optional; nil means "not printed in
// this report", which is distinct from a true zero reading.
type Record struct {
	LabName   string              `json:"lab_name"`
	WaterType constants.WaterType `json:"water_type"`

	TestID        *string    `json:"test_id,omitempty"`
	TestDate      *time.Time `json:"test_date,omitempty"`
	SampleDate    *time.Time `json:"sample_date,omitempty"`
	ReceivedDate  *time.Time `json:"received_date,omitempty"`
	EvaluatedDate *time.Time `json:"evaluated_date,omitempty"`

	// Quality scores (0-100)
	ScoreMajorElements *int `json:"score_major_elements,omitempty"`
	ScoreMinorElements *int `json:"score_minor_elements,omitempty"`
	ScorePollutants    *int `json:"score_pollutants,omitempty"`
	ScoreBaseElements  *int `json:"score_base_elements,omitempty"`
	ScoreOverall       *int `json:"score_overall,omitempty"`

	// Base elements
	Salinity       *float64                 `json:"salinity,omitempty"` // PSU
	SalinityStatus *constants.ElementStatus `json:"salinity_status,omitempty"`
	KH             *float64                 `json:"kh,omitempty"` // °dKH
	KHStatus       *constants.ElementStatus `json:"kh_status,omitempty"`

	// Major elements (mg/l)
	Cl       *float64                 `json:"cl,omitempty"` // Chloride
	ClStatus *constants.ElementStatus `json:"cl_status,omitempty"`
	Na       *float64                 `json:"na,omitempty"` // Sodium
	NaStatus *constants.ElementStatus `json:"na_status,omitempty"`
	Mg       *float64                 `json:"mg,omitempty"` // Magnesium
	MgStatus *constants.ElementStatus `json:"mg_status,omitempty"`
	S        *float64                 `json:"s,omitempty"` // Sulfur
	SStatus  *constants.ElementStatus `json:"s_status,omitempty"`
	Ca       *float64                 `json:"ca,omitempty"` // Calcium
	CaStatus *constants.ElementStatus `json:"ca_status,omitempty"`
	K        *float64                 `json:"k,omitempty"` // Potassium
	KStatus  *constants.ElementStatus `json:"k_status,omitempty"`
	Br       *float64                 `json:"br,omitempty"` // Bromine
	BrStatus *constants.ElementStatus `json:"br_status,omitempty"`
	Sr       *float64                 `json:"sr,omitempty"` // Strontium
	SrStatus *constants.ElementStatus `json:"sr_status,omitempty"`
	B        *float64                 `json:"b,omitempty"` // Boron
	BStatus  *constants.ElementStatus `json:"b_status,omitempty"`
	F        *float64                 `json:"f,omitempty"` // Fluorine
	FStatus  *constants.ElementStatus `json:"f_status,omitempty"`

	// Minor elements (µg/l)
	Li       *float64                 `json:"li,omitempty"` // Lithium
	LiStatus *constants.ElementStatus `json:"li_status,omitempty"`
	Si       *float64                 `json:"si,omitempty"` // Silicon
	SiStatus *constants.ElementStatus `json:"si_status,omitempty"`
	I        *float64                 `json:"i,omitempty"` // Iodine
	IStatus  *constants.ElementStatus `json:"i_status,omitempty"`
	Ba       *float64                 `json:"ba,omitempty"` // Barium
	BaStatus *constants.ElementStatus `json:"ba_status,omitempty"`
	Mo       *float64                 `json:"mo,omitempty"` // Molybdenum
	MoStatus *constants.ElementStatus `json:"mo_status,omitempty"`
	Ni       *float64                 `json:"ni,omitempty"` // Nickel
	NiStatus *constants.ElementStatus `json:"ni_status,omitempty"`
	Mn       *float64                 `json:"mn,omitempty"` // Manganese
	MnStatus *constants.ElementStatus `json:"mn_status,omitempty"`
	As       *float64                 `json:"as,omitempty"` // Arsenic
	AsStatus *constants.ElementStatus `json:"as_status,omitempty"`
	Be       *float64                 `json:"be,omitempty"` // Beryllium
	BeStatus *constants.ElementStatus `json:"be_status,omitempty"`
	Cr       *float64                 `json:"cr,omitempty"` // Chrome
	CrStatus *constants.ElementStatus `json:"cr_status,omitempty"`
	Co       *float64                 `json:"co,omitempty"` // Cobalt
	CoStatus *constants.ElementStatus `json:"co_status,omitempty"`
	Fe       *float64                 `json:"fe,omitempty"` // Iron
	FeStatus *constants.ElementStatus `json:"fe_status,omitempty"`
	Cu       *float64                 `json:"cu,omitempty"` // Copper
	CuStatus *constants.ElementStatus `json:"cu_status,omitempty"`
	Se       *float64                 `json:"se,omitempty"` // Selenium
	SeStatus *constants.ElementStatus `json:"se_status,omitempty"`
	Ag       *float64                 `json:"ag,omitempty"` // Silver
	AgStatus *constants.ElementStatus `json:"ag_status,omitempty"`
	V        *float64                 `json:"v,omitempty"` // Vanadium
	VStatus  *constants.ElementStatus `json:"v_status,omitempty"`
	Zn       *float64                 `json:"zn,omitempty"` // Zinc
	ZnStatus *constants.ElementStatus `json:"zn_status,omitempty"`
	Sn       *float64                 `json:"sn,omitempty"` // Tin
	SnStatus *constants.ElementStatus `json:"sn_status,omitempty"`

	// Nutrients
	NO3       *float64                 `json:"no3,omitempty"` // Nitrate (mg/l)
	NO3Status *constants.ElementStatus `json:"no3_status,omitempty"`
	P         *float64                 `json:"p,omitempty"` // Phosphorus (µg/l)
	PStatus   *constants.ElementStatus `json:"p_status,omitempty"`
	PO4       *float64                 `json:"po4,omitempty"` // Phosphate (mg/l)
	PO4Status *constants.ElementStatus `json:"po4_status,omitempty"`

	// Pollutants (µg/l)
	Al       *float64                 `json:"al,omitempty"` // Aluminium
	AlStatus *constants.ElementStatus `json:"al_status,omitempty"`
	Sb       *float64                 `json:"sb,omitempty"` // Antimony
	SbStatus *constants.ElementStatus `json:"sb_status,omitempty"`
	Bi       *float64                 `json:"bi,omitempty"` // Bismuth
	BiStatus *constants.ElementStatus `json:"bi_status,omitempty"`
	Pb       *float64                 `json:"pb,omitempty"` // Lead
	PbStatus *constants.ElementStatus `json:"pb_status,omitempty"`
	Cd       *float64                 `json:"cd,omitempty"` // Cadmium
	CdStatus *constants.ElementStatus `json:"cd_status,omitempty"`
	La       *float64                 `json:"la,omitempty"` // Lanthanum
	LaStatus *constants.ElementStatus `json:"la_status,omitempty"`
	Tl       *float64                 `json:"tl,omitempty"` // Thallium
	TlStatus *constants.ElementStatus `json:"tl_status,omitempty"`
	Ti       *float64                 `json:"ti,omitempty"` // Titanium
	TiStatus *constants.ElementStatus `json:"ti_status,omitempty"`
	W        *float64                 `json:"w,omitempty"` // Tungsten
	WStatus  *constants.ElementStatus `json:"w_status,omitempty"`
	Hg       *float64                 `json:"hg,omitempty"` // Mercury
	HgStatus *constants.ElementStatus `json:"hg_status,omitempty"`

	Recommendations    []string `json:"recommendations,omitempty"`
	DosingInstructions *string  `json:"dosing_instructions,omitempty"`
}

// Reading is one element's extracted value and status. Both fields are
// independently optional: a "---" line reports a status with no value, and a
// line without a status vocabulary reports a value alone.
type Reading struct {
	Value  *float64
	Status *constants.ElementStatus
}
