// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// IcpTestCreate is the builder for creating a IcpTest entity.
type IcpTestCreate struct {
	config
	mutation *IcpTestMutation
	hooks    []Hook
}

// SetTankID sets the "tank_id" field.
func (_c *IcpTestCreate) SetTankID(v uuid.UUID) *IcpTestCreate {
	_c.mutation.SetTankID(v)
	return _c
}

// SetFileID sets the "file_id" field.
func (_c *IcpTestCreate) SetFileID(v uuid.UUID) *IcpTestCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableFileID(v *uuid.UUID) *IcpTestCreate {
	if v != nil {
		_c.SetFileID(*v)
	}
	return _c
}

// SetTestDate sets the "test_date" field.
func (_c *IcpTestCreate) SetTestDate(v time.Time) *IcpTestCreate {
	_c.mutation.SetTestDate(v)
	return _c
}

// SetLabName sets the "lab_name" field.
func (_c *IcpTestCreate) SetLabName(v string) *IcpTestCreate {
	_c.mutation.SetLabName(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *IcpTestCreate) SetTestID(v string) *IcpTestCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableTestID(v *string) *IcpTestCreate {
	if v != nil {
		_c.SetTestID(*v)
	}
	return _c
}

// SetWaterType sets the "water_type" field.
func (_c *IcpTestCreate) SetWaterType(v constants.WaterType) *IcpTestCreate {
	_c.mutation.SetWaterType(v)
	return _c
}

// SetNillableWaterType sets the "water_type" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableWaterType(v *constants.WaterType) *IcpTestCreate {
	if v != nil {
		_c.SetWaterType(*v)
	}
	return _c
}

// SetSampleDate sets the "sample_date" field.
func (_c *IcpTestCreate) SetSampleDate(v time.Time) *IcpTestCreate {
	_c.mutation.SetSampleDate(v)
	return _c
}

// SetNillableSampleDate sets the "sample_date" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSampleDate(v *time.Time) *IcpTestCreate {
	if v != nil {
		_c.SetSampleDate(*v)
	}
	return _c
}

// SetReceivedDate sets the "received_date" field.
func (_c *IcpTestCreate) SetReceivedDate(v time.Time) *IcpTestCreate {
	_c.mutation.SetReceivedDate(v)
	return _c
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableReceivedDate(v *time.Time) *IcpTestCreate {
	if v != nil {
		_c.SetReceivedDate(*v)
	}
	return _c
}

// SetEvaluatedDate sets the "evaluated_date" field.
func (_c *IcpTestCreate) SetEvaluatedDate(v time.Time) *IcpTestCreate {
	_c.mutation.SetEvaluatedDate(v)
	return _c
}

// SetNillableEvaluatedDate sets the "evaluated_date" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableEvaluatedDate(v *time.Time) *IcpTestCreate {
	if v != nil {
		_c.SetEvaluatedDate(*v)
	}
	return _c
}

// SetScoreMajorElements sets the "score_major_elements" field.
func (_c *IcpTestCreate) SetScoreMajorElements(v int) *IcpTestCreate {
	_c.mutation.SetScoreMajorElements(v)
	return _c
}

// SetNillableScoreMajorElements sets the "score_major_elements" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableScoreMajorElements(v *int) *IcpTestCreate {
	if v != nil {
		_c.SetScoreMajorElements(*v)
	}
	return _c
}

// SetScoreMinorElements sets the "score_minor_elements" field.
func (_c *IcpTestCreate) SetScoreMinorElements(v int) *IcpTestCreate {
	_c.mutation.SetScoreMinorElements(v)
	return _c
}

// SetNillableScoreMinorElements sets the "score_minor_elements" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableScoreMinorElements(v *int) *IcpTestCreate {
	if v != nil {
		_c.SetScoreMinorElements(*v)
	}
	return _c
}

// SetScorePollutants sets the "score_pollutants" field.
func (_c *IcpTestCreate) SetScorePollutants(v int) *IcpTestCreate {
	_c.mutation.SetScorePollutants(v)
	return _c
}

// SetNillableScorePollutants sets the "score_pollutants" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableScorePollutants(v *int) *IcpTestCreate {
	if v != nil {
		_c.SetScorePollutants(*v)
	}
	return _c
}

// SetScoreBaseElements sets the "score_base_elements" field.
func (_c *IcpTestCreate) SetScoreBaseElements(v int) *IcpTestCreate {
	_c.mutation.SetScoreBaseElements(v)
	return _c
}

// SetNillableScoreBaseElements sets the "score_base_elements" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableScoreBaseElements(v *int) *IcpTestCreate {
	if v != nil {
		_c.SetScoreBaseElements(*v)
	}
	return _c
}

// SetScoreOverall sets the "score_overall" field.
func (_c *IcpTestCreate) SetScoreOverall(v int) *IcpTestCreate {
	_c.mutation.SetScoreOverall(v)
	return _c
}

// SetNillableScoreOverall sets the "score_overall" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableScoreOverall(v *int) *IcpTestCreate {
	if v != nil {
		_c.SetScoreOverall(*v)
	}
	return _c
}

// SetSalinity sets the "salinity" field.
func (_c *IcpTestCreate) SetSalinity(v float64) *IcpTestCreate {
	_c.mutation.SetSalinity(v)
	return _c
}

// SetNillableSalinity sets the "salinity" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSalinity(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSalinity(*v)
	}
	return _c
}

// SetSalinityStatus sets the "salinity_status" field.
func (_c *IcpTestCreate) SetSalinityStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSalinityStatus(v)
	return _c
}

// SetNillableSalinityStatus sets the "salinity_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSalinityStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSalinityStatus(*v)
	}
	return _c
}

// SetKh sets the "kh" field.
func (_c *IcpTestCreate) SetKh(v float64) *IcpTestCreate {
	_c.mutation.SetKh(v)
	return _c
}

// SetNillableKh sets the "kh" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableKh(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetKh(*v)
	}
	return _c
}

// SetKhStatus sets the "kh_status" field.
func (_c *IcpTestCreate) SetKhStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetKhStatus(v)
	return _c
}

// SetNillableKhStatus sets the "kh_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableKhStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetKhStatus(*v)
	}
	return _c
}

// SetCl sets the "cl" field.
func (_c *IcpTestCreate) SetCl(v float64) *IcpTestCreate {
	_c.mutation.SetCl(v)
	return _c
}

// SetNillableCl sets the "cl" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCl(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCl(*v)
	}
	return _c
}

// SetClStatus sets the "cl_status" field.
func (_c *IcpTestCreate) SetClStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetClStatus(v)
	return _c
}

// SetNillableClStatus sets the "cl_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableClStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetClStatus(*v)
	}
	return _c
}

// SetNa sets the "na" field.
func (_c *IcpTestCreate) SetNa(v float64) *IcpTestCreate {
	_c.mutation.SetNa(v)
	return _c
}

// SetNillableNa sets the "na" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNa(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetNa(*v)
	}
	return _c
}

// SetNaStatus sets the "na_status" field.
func (_c *IcpTestCreate) SetNaStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetNaStatus(v)
	return _c
}

// SetNillableNaStatus sets the "na_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNaStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetNaStatus(*v)
	}
	return _c
}

// SetMg sets the "mg" field.
func (_c *IcpTestCreate) SetMg(v float64) *IcpTestCreate {
	_c.mutation.SetMg(v)
	return _c
}

// SetNillableMg sets the "mg" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMg(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetMg(*v)
	}
	return _c
}

// SetMgStatus sets the "mg_status" field.
func (_c *IcpTestCreate) SetMgStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetMgStatus(v)
	return _c
}

// SetNillableMgStatus sets the "mg_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMgStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetMgStatus(*v)
	}
	return _c
}

// SetS sets the "s" field.
func (_c *IcpTestCreate) SetS(v float64) *IcpTestCreate {
	_c.mutation.SetS(v)
	return _c
}

// SetNillableS sets the "s" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableS(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetS(*v)
	}
	return _c
}

// SetSStatus sets the "s_status" field.
func (_c *IcpTestCreate) SetSStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSStatus(v)
	return _c
}

// SetNillableSStatus sets the "s_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSStatus(*v)
	}
	return _c
}

// SetCa sets the "ca" field.
func (_c *IcpTestCreate) SetCa(v float64) *IcpTestCreate {
	_c.mutation.SetCa(v)
	return _c
}

// SetNillableCa sets the "ca" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCa(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCa(*v)
	}
	return _c
}

// SetCaStatus sets the "ca_status" field.
func (_c *IcpTestCreate) SetCaStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetCaStatus(v)
	return _c
}

// SetNillableCaStatus sets the "ca_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCaStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetCaStatus(*v)
	}
	return _c
}

// SetK sets the "k" field.
func (_c *IcpTestCreate) SetK(v float64) *IcpTestCreate {
	_c.mutation.SetK(v)
	return _c
}

// SetNillableK sets the "k" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableK(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetK(*v)
	}
	return _c
}

// SetKStatus sets the "k_status" field.
func (_c *IcpTestCreate) SetKStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetKStatus(v)
	return _c
}

// SetNillableKStatus sets the "k_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableKStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetKStatus(*v)
	}
	return _c
}

// SetBr sets the "br" field.
func (_c *IcpTestCreate) SetBr(v float64) *IcpTestCreate {
	_c.mutation.SetBr(v)
	return _c
}

// SetNillableBr sets the "br" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBr(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetBr(*v)
	}
	return _c
}

// SetBrStatus sets the "br_status" field.
func (_c *IcpTestCreate) SetBrStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetBrStatus(v)
	return _c
}

// SetNillableBrStatus sets the "br_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBrStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetBrStatus(*v)
	}
	return _c
}

// SetSr sets the "sr" field.
func (_c *IcpTestCreate) SetSr(v float64) *IcpTestCreate {
	_c.mutation.SetSr(v)
	return _c
}

// SetNillableSr sets the "sr" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSr(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSr(*v)
	}
	return _c
}

// SetSrStatus sets the "sr_status" field.
func (_c *IcpTestCreate) SetSrStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSrStatus(v)
	return _c
}

// SetNillableSrStatus sets the "sr_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSrStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSrStatus(*v)
	}
	return _c
}

// SetB sets the "b" field.
func (_c *IcpTestCreate) SetB(v float64) *IcpTestCreate {
	_c.mutation.SetB(v)
	return _c
}

// SetNillableB sets the "b" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableB(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetB(*v)
	}
	return _c
}

// SetBStatus sets the "b_status" field.
func (_c *IcpTestCreate) SetBStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetBStatus(v)
	return _c
}

// SetNillableBStatus sets the "b_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetBStatus(*v)
	}
	return _c
}

// SetF sets the "f" field.
func (_c *IcpTestCreate) SetF(v float64) *IcpTestCreate {
	_c.mutation.SetF(v)
	return _c
}

// SetNillableF sets the "f" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableF(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetF(*v)
	}
	return _c
}

// SetFStatus sets the "f_status" field.
func (_c *IcpTestCreate) SetFStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetFStatus(v)
	return _c
}

// SetNillableFStatus sets the "f_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableFStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetFStatus(*v)
	}
	return _c
}

// SetLi sets the "li" field.
func (_c *IcpTestCreate) SetLi(v float64) *IcpTestCreate {
	_c.mutation.SetLi(v)
	return _c
}

// SetNillableLi sets the "li" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableLi(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetLi(*v)
	}
	return _c
}

// SetLiStatus sets the "li_status" field.
func (_c *IcpTestCreate) SetLiStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetLiStatus(v)
	return _c
}

// SetNillableLiStatus sets the "li_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableLiStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetLiStatus(*v)
	}
	return _c
}

// SetSi sets the "si" field.
func (_c *IcpTestCreate) SetSi(v float64) *IcpTestCreate {
	_c.mutation.SetSi(v)
	return _c
}

// SetNillableSi sets the "si" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSi(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSi(*v)
	}
	return _c
}

// SetSiStatus sets the "si_status" field.
func (_c *IcpTestCreate) SetSiStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSiStatus(v)
	return _c
}

// SetNillableSiStatus sets the "si_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSiStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSiStatus(*v)
	}
	return _c
}

// SetI sets the "i" field.
func (_c *IcpTestCreate) SetI(v float64) *IcpTestCreate {
	_c.mutation.SetI(v)
	return _c
}

// SetNillableI sets the "i" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableI(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetI(*v)
	}
	return _c
}

// SetIStatus sets the "i_status" field.
func (_c *IcpTestCreate) SetIStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetIStatus(v)
	return _c
}

// SetNillableIStatus sets the "i_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableIStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetIStatus(*v)
	}
	return _c
}

// SetBa sets the "ba" field.
func (_c *IcpTestCreate) SetBa(v float64) *IcpTestCreate {
	_c.mutation.SetBa(v)
	return _c
}

// SetNillableBa sets the "ba" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBa(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetBa(*v)
	}
	return _c
}

// SetBaStatus sets the "ba_status" field.
func (_c *IcpTestCreate) SetBaStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetBaStatus(v)
	return _c
}

// SetNillableBaStatus sets the "ba_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBaStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetBaStatus(*v)
	}
	return _c
}

// SetMo sets the "mo" field.
func (_c *IcpTestCreate) SetMo(v float64) *IcpTestCreate {
	_c.mutation.SetMo(v)
	return _c
}

// SetNillableMo sets the "mo" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMo(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetMo(*v)
	}
	return _c
}

// SetMoStatus sets the "mo_status" field.
func (_c *IcpTestCreate) SetMoStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetMoStatus(v)
	return _c
}

// SetNillableMoStatus sets the "mo_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMoStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetMoStatus(*v)
	}
	return _c
}

// SetNi sets the "ni" field.
func (_c *IcpTestCreate) SetNi(v float64) *IcpTestCreate {
	_c.mutation.SetNi(v)
	return _c
}

// SetNillableNi sets the "ni" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNi(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetNi(*v)
	}
	return _c
}

// SetNiStatus sets the "ni_status" field.
func (_c *IcpTestCreate) SetNiStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetNiStatus(v)
	return _c
}

// SetNillableNiStatus sets the "ni_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNiStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetNiStatus(*v)
	}
	return _c
}

// SetMn sets the "mn" field.
func (_c *IcpTestCreate) SetMn(v float64) *IcpTestCreate {
	_c.mutation.SetMn(v)
	return _c
}

// SetNillableMn sets the "mn" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMn(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetMn(*v)
	}
	return _c
}

// SetMnStatus sets the "mn_status" field.
func (_c *IcpTestCreate) SetMnStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetMnStatus(v)
	return _c
}

// SetNillableMnStatus sets the "mn_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableMnStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetMnStatus(*v)
	}
	return _c
}

// SetAs sets the "as" field.
func (_c *IcpTestCreate) SetAs(v float64) *IcpTestCreate {
	_c.mutation.SetAs(v)
	return _c
}

// SetNillableAs sets the "as" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAs(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetAs(*v)
	}
	return _c
}

// SetAsStatus sets the "as_status" field.
func (_c *IcpTestCreate) SetAsStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetAsStatus(v)
	return _c
}

// SetNillableAsStatus sets the "as_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAsStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetAsStatus(*v)
	}
	return _c
}

// SetBe sets the "be" field.
func (_c *IcpTestCreate) SetBe(v float64) *IcpTestCreate {
	_c.mutation.SetBe(v)
	return _c
}

// SetNillableBe sets the "be" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBe(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetBe(*v)
	}
	return _c
}

// SetBeStatus sets the "be_status" field.
func (_c *IcpTestCreate) SetBeStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetBeStatus(v)
	return _c
}

// SetNillableBeStatus sets the "be_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBeStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetBeStatus(*v)
	}
	return _c
}

// SetCr sets the "cr" field.
func (_c *IcpTestCreate) SetCr(v float64) *IcpTestCreate {
	_c.mutation.SetCr(v)
	return _c
}

// SetNillableCr sets the "cr" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCr(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCr(*v)
	}
	return _c
}

// SetCrStatus sets the "cr_status" field.
func (_c *IcpTestCreate) SetCrStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetCrStatus(v)
	return _c
}

// SetNillableCrStatus sets the "cr_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCrStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetCrStatus(*v)
	}
	return _c
}

// SetCo sets the "co" field.
func (_c *IcpTestCreate) SetCo(v float64) *IcpTestCreate {
	_c.mutation.SetCo(v)
	return _c
}

// SetNillableCo sets the "co" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCo(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCo(*v)
	}
	return _c
}

// SetCoStatus sets the "co_status" field.
func (_c *IcpTestCreate) SetCoStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetCoStatus(v)
	return _c
}

// SetNillableCoStatus sets the "co_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCoStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetCoStatus(*v)
	}
	return _c
}

// SetFe sets the "fe" field.
func (_c *IcpTestCreate) SetFe(v float64) *IcpTestCreate {
	_c.mutation.SetFe(v)
	return _c
}

// SetNillableFe sets the "fe" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableFe(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetFe(*v)
	}
	return _c
}

// SetFeStatus sets the "fe_status" field.
func (_c *IcpTestCreate) SetFeStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetFeStatus(v)
	return _c
}

// SetNillableFeStatus sets the "fe_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableFeStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetFeStatus(*v)
	}
	return _c
}

// SetCu sets the "cu" field.
func (_c *IcpTestCreate) SetCu(v float64) *IcpTestCreate {
	_c.mutation.SetCu(v)
	return _c
}

// SetNillableCu sets the "cu" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCu(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCu(*v)
	}
	return _c
}

// SetCuStatus sets the "cu_status" field.
func (_c *IcpTestCreate) SetCuStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetCuStatus(v)
	return _c
}

// SetNillableCuStatus sets the "cu_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCuStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetCuStatus(*v)
	}
	return _c
}

// SetSe sets the "se" field.
func (_c *IcpTestCreate) SetSe(v float64) *IcpTestCreate {
	_c.mutation.SetSe(v)
	return _c
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSe(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSe(*v)
	}
	return _c
}

// SetSeStatus sets the "se_status" field.
func (_c *IcpTestCreate) SetSeStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSeStatus(v)
	return _c
}

// SetNillableSeStatus sets the "se_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSeStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSeStatus(*v)
	}
	return _c
}

// SetAg sets the "ag" field.
func (_c *IcpTestCreate) SetAg(v float64) *IcpTestCreate {
	_c.mutation.SetAg(v)
	return _c
}

// SetNillableAg sets the "ag" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAg(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetAg(*v)
	}
	return _c
}

// SetAgStatus sets the "ag_status" field.
func (_c *IcpTestCreate) SetAgStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetAgStatus(v)
	return _c
}

// SetNillableAgStatus sets the "ag_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAgStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetAgStatus(*v)
	}
	return _c
}

// SetV sets the "v" field.
func (_c *IcpTestCreate) SetV(v float64) *IcpTestCreate {
	_c.mutation.SetV(v)
	return _c
}

// SetNillableV sets the "v" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableV(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetV(*v)
	}
	return _c
}

// SetVStatus sets the "v_status" field.
func (_c *IcpTestCreate) SetVStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetVStatus(v)
	return _c
}

// SetNillableVStatus sets the "v_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableVStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetVStatus(*v)
	}
	return _c
}

// SetZn sets the "zn" field.
func (_c *IcpTestCreate) SetZn(v float64) *IcpTestCreate {
	_c.mutation.SetZn(v)
	return _c
}

// SetNillableZn sets the "zn" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableZn(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetZn(*v)
	}
	return _c
}

// SetZnStatus sets the "zn_status" field.
func (_c *IcpTestCreate) SetZnStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetZnStatus(v)
	return _c
}

// SetNillableZnStatus sets the "zn_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableZnStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetZnStatus(*v)
	}
	return _c
}

// SetSn sets the "sn" field.
func (_c *IcpTestCreate) SetSn(v float64) *IcpTestCreate {
	_c.mutation.SetSn(v)
	return _c
}

// SetNillableSn sets the "sn" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSn(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSn(*v)
	}
	return _c
}

// SetSnStatus sets the "sn_status" field.
func (_c *IcpTestCreate) SetSnStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSnStatus(v)
	return _c
}

// SetNillableSnStatus sets the "sn_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSnStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSnStatus(*v)
	}
	return _c
}

// SetNo3 sets the "no3" field.
func (_c *IcpTestCreate) SetNo3(v float64) *IcpTestCreate {
	_c.mutation.SetNo3(v)
	return _c
}

// SetNillableNo3 sets the "no3" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNo3(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetNo3(*v)
	}
	return _c
}

// SetNo3Status sets the "no3_status" field.
func (_c *IcpTestCreate) SetNo3Status(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetNo3Status(v)
	return _c
}

// SetNillableNo3Status sets the "no3_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableNo3Status(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetNo3Status(*v)
	}
	return _c
}

// SetP sets the "p" field.
func (_c *IcpTestCreate) SetP(v float64) *IcpTestCreate {
	_c.mutation.SetP(v)
	return _c
}

// SetNillableP sets the "p" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableP(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetP(*v)
	}
	return _c
}

// SetPStatus sets the "p_status" field.
func (_c *IcpTestCreate) SetPStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetPStatus(v)
	return _c
}

// SetNillablePStatus sets the "p_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetPStatus(*v)
	}
	return _c
}

// SetPo4 sets the "po4" field.
func (_c *IcpTestCreate) SetPo4(v float64) *IcpTestCreate {
	_c.mutation.SetPo4(v)
	return _c
}

// SetNillablePo4 sets the "po4" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePo4(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetPo4(*v)
	}
	return _c
}

// SetPo4Status sets the "po4_status" field.
func (_c *IcpTestCreate) SetPo4Status(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetPo4Status(v)
	return _c
}

// SetNillablePo4Status sets the "po4_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePo4Status(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetPo4Status(*v)
	}
	return _c
}

// SetAl sets the "al" field.
func (_c *IcpTestCreate) SetAl(v float64) *IcpTestCreate {
	_c.mutation.SetAl(v)
	return _c
}

// SetNillableAl sets the "al" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAl(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetAl(*v)
	}
	return _c
}

// SetAlStatus sets the "al_status" field.
func (_c *IcpTestCreate) SetAlStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetAlStatus(v)
	return _c
}

// SetNillableAlStatus sets the "al_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableAlStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetAlStatus(*v)
	}
	return _c
}

// SetSb sets the "sb" field.
func (_c *IcpTestCreate) SetSb(v float64) *IcpTestCreate {
	_c.mutation.SetSb(v)
	return _c
}

// SetNillableSb sets the "sb" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSb(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetSb(*v)
	}
	return _c
}

// SetSbStatus sets the "sb_status" field.
func (_c *IcpTestCreate) SetSbStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetSbStatus(v)
	return _c
}

// SetNillableSbStatus sets the "sb_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableSbStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetSbStatus(*v)
	}
	return _c
}

// SetBi sets the "bi" field.
func (_c *IcpTestCreate) SetBi(v float64) *IcpTestCreate {
	_c.mutation.SetBi(v)
	return _c
}

// SetNillableBi sets the "bi" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBi(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetBi(*v)
	}
	return _c
}

// SetBiStatus sets the "bi_status" field.
func (_c *IcpTestCreate) SetBiStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetBiStatus(v)
	return _c
}

// SetNillableBiStatus sets the "bi_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableBiStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetBiStatus(*v)
	}
	return _c
}

// SetPb sets the "pb" field.
func (_c *IcpTestCreate) SetPb(v float64) *IcpTestCreate {
	_c.mutation.SetPb(v)
	return _c
}

// SetNillablePb sets the "pb" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePb(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetPb(*v)
	}
	return _c
}

// SetPbStatus sets the "pb_status" field.
func (_c *IcpTestCreate) SetPbStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetPbStatus(v)
	return _c
}

// SetNillablePbStatus sets the "pb_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePbStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetPbStatus(*v)
	}
	return _c
}

// SetCd sets the "cd" field.
func (_c *IcpTestCreate) SetCd(v float64) *IcpTestCreate {
	_c.mutation.SetCd(v)
	return _c
}

// SetNillableCd sets the "cd" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCd(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetCd(*v)
	}
	return _c
}

// SetCdStatus sets the "cd_status" field.
func (_c *IcpTestCreate) SetCdStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetCdStatus(v)
	return _c
}

// SetNillableCdStatus sets the "cd_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCdStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetCdStatus(*v)
	}
	return _c
}

// SetLa sets the "la" field.
func (_c *IcpTestCreate) SetLa(v float64) *IcpTestCreate {
	_c.mutation.SetLa(v)
	return _c
}

// SetNillableLa sets the "la" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableLa(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetLa(*v)
	}
	return _c
}

// SetLaStatus sets the "la_status" field.
func (_c *IcpTestCreate) SetLaStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetLaStatus(v)
	return _c
}

// SetNillableLaStatus sets the "la_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableLaStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetLaStatus(*v)
	}
	return _c
}

// SetTl sets the "tl" field.
func (_c *IcpTestCreate) SetTl(v float64) *IcpTestCreate {
	_c.mutation.SetTl(v)
	return _c
}

// SetNillableTl sets the "tl" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableTl(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetTl(*v)
	}
	return _c
}

// SetTlStatus sets the "tl_status" field.
func (_c *IcpTestCreate) SetTlStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetTlStatus(v)
	return _c
}

// SetNillableTlStatus sets the "tl_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableTlStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetTlStatus(*v)
	}
	return _c
}

// SetTi sets the "ti" field.
func (_c *IcpTestCreate) SetTi(v float64) *IcpTestCreate {
	_c.mutation.SetTi(v)
	return _c
}

// SetNillableTi sets the "ti" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableTi(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetTi(*v)
	}
	return _c
}

// SetTiStatus sets the "ti_status" field.
func (_c *IcpTestCreate) SetTiStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetTiStatus(v)
	return _c
}

// SetNillableTiStatus sets the "ti_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableTiStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetTiStatus(*v)
	}
	return _c
}

// SetW sets the "w" field.
func (_c *IcpTestCreate) SetW(v float64) *IcpTestCreate {
	_c.mutation.SetW(v)
	return _c
}

// SetNillableW sets the "w" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableW(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetW(*v)
	}
	return _c
}

// SetWStatus sets the "w_status" field.
func (_c *IcpTestCreate) SetWStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetWStatus(v)
	return _c
}

// SetNillableWStatus sets the "w_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableWStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetWStatus(*v)
	}
	return _c
}

// SetHg sets the "hg" field.
func (_c *IcpTestCreate) SetHg(v float64) *IcpTestCreate {
	_c.mutation.SetHg(v)
	return _c
}

// SetNillableHg sets the "hg" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableHg(v *float64) *IcpTestCreate {
	if v != nil {
		_c.SetHg(*v)
	}
	return _c
}

// SetHgStatus sets the "hg_status" field.
func (_c *IcpTestCreate) SetHgStatus(v constants.ElementStatus) *IcpTestCreate {
	_c.mutation.SetHgStatus(v)
	return _c
}

// SetNillableHgStatus sets the "hg_status" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableHgStatus(v *constants.ElementStatus) *IcpTestCreate {
	if v != nil {
		_c.SetHgStatus(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *IcpTestCreate) SetRecommendations(v []string) *IcpTestCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetDosingInstructions sets the "dosing_instructions" field.
func (_c *IcpTestCreate) SetDosingInstructions(v string) *IcpTestCreate {
	_c.mutation.SetDosingInstructions(v)
	return _c
}

// SetNillableDosingInstructions sets the "dosing_instructions" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableDosingInstructions(v *string) *IcpTestCreate {
	if v != nil {
		_c.SetDosingInstructions(*v)
	}
	return _c
}

// SetPdfFilename sets the "pdf_filename" field.
func (_c *IcpTestCreate) SetPdfFilename(v string) *IcpTestCreate {
	_c.mutation.SetPdfFilename(v)
	return _c
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePdfFilename(v *string) *IcpTestCreate {
	if v != nil {
		_c.SetPdfFilename(*v)
	}
	return _c
}

// SetPdfPath sets the "pdf_path" field.
func (_c *IcpTestCreate) SetPdfPath(v string) *IcpTestCreate {
	_c.mutation.SetPdfPath(v)
	return _c
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillablePdfPath(v *string) *IcpTestCreate {
	if v != nil {
		_c.SetPdfPath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IcpTestCreate) SetCreatedAt(v time.Time) *IcpTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableCreatedAt(v *time.Time) *IcpTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IcpTestCreate) SetUpdatedAt(v time.Time) *IcpTestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableUpdatedAt(v *time.Time) *IcpTestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IcpTestCreate) SetID(v uuid.UUID) *IcpTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IcpTestCreate) SetNillableID(v *uuid.UUID) *IcpTestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTank sets the "tank" edge to the Tank entity.
func (_c *IcpTestCreate) SetTank(v *Tank) *IcpTestCreate {
	return _c.SetTankID(v.ID)
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_c *IcpTestCreate) SetFile(v *ReportFile) *IcpTestCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the IcpTestMutation object of the builder.
func (_c *IcpTestCreate) Mutation() *IcpTestMutation {
	return _c.mutation
}

// Save creates the IcpTest in the database.
func (_c *IcpTestCreate) Save(ctx context.Context) (*IcpTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IcpTestCreate) SaveX(ctx context.Context) *IcpTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IcpTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IcpTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IcpTestCreate) defaults() {
	if _, ok := _c.mutation.WaterType(); !ok {
		v := icptest.DefaultWaterType
		_c.mutation.SetWaterType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := icptest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := icptest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := icptest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IcpTestCreate) check() error {
	if _, ok := _c.mutation.TankID(); !ok {
		return &ValidationError{Name: "tank_id", err: errors.New(`ent: missing required field "IcpTest.tank_id"`)}
	}
	if _, ok := _c.mutation.TestDate(); !ok {
		return &ValidationError{Name: "test_date", err: errors.New(`ent: missing required field "IcpTest.test_date"`)}
	}
	if _, ok := _c.mutation.LabName(); !ok {
		return &ValidationError{Name: "lab_name", err: errors.New(`ent: missing required field "IcpTest.lab_name"`)}
	}
	if v, ok := _c.mutation.LabName(); ok {
		if err := icptest.LabNameValidator(v); err != nil {
			return &ValidationError{Name: "lab_name", err: fmt.Errorf(`ent: validator failed for field "IcpTest.lab_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WaterType(); !ok {
		return &ValidationError{Name: "water_type", err: errors.New(`ent: missing required field "IcpTest.water_type"`)}
	}
	if v, ok := _c.mutation.WaterType(); ok {
		if err := icptest.WaterTypeValidator(string(v)); err != nil {
			return &ValidationError{Name: "water_type", err: fmt.Errorf(`ent: validator failed for field "IcpTest.water_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SalinityStatus(); ok {
		if err := icptest.SalinityStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "salinity_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.salinity_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.KhStatus(); ok {
		if err := icptest.KhStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "kh_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.kh_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ClStatus(); ok {
		if err := icptest.ClStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cl_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NaStatus(); ok {
		if err := icptest.NaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "na_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.na_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MgStatus(); ok {
		if err := icptest.MgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mg_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SStatus(); ok {
		if err := icptest.SStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "s_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.s_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CaStatus(); ok {
		if err := icptest.CaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ca_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ca_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.KStatus(); ok {
		if err := icptest.KStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "k_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.k_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BrStatus(); ok {
		if err := icptest.BrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "br_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.br_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SrStatus(); ok {
		if err := icptest.SrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sr_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BStatus(); ok {
		if err := icptest.BStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "b_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.b_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FStatus(); ok {
		if err := icptest.FStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "f_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.f_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LiStatus(); ok {
		if err := icptest.LiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "li_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.li_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SiStatus(); ok {
		if err := icptest.SiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "si_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.si_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IStatus(); ok {
		if err := icptest.IStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "i_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.i_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BaStatus(); ok {
		if err := icptest.BaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ba_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ba_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MoStatus(); ok {
		if err := icptest.MoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mo_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mo_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NiStatus(); ok {
		if err := icptest.NiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ni_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ni_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MnStatus(); ok {
		if err := icptest.MnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mn_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AsStatus(); ok {
		if err := icptest.AsStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "as_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.as_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BeStatus(); ok {
		if err := icptest.BeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "be_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.be_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CrStatus(); ok {
		if err := icptest.CrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cr_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CoStatus(); ok {
		if err := icptest.CoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "co_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.co_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FeStatus(); ok {
		if err := icptest.FeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "fe_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.fe_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CuStatus(); ok {
		if err := icptest.CuStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cu_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cu_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SeStatus(); ok {
		if err := icptest.SeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "se_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.se_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AgStatus(); ok {
		if err := icptest.AgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ag_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ag_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.VStatus(); ok {
		if err := icptest.VStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "v_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.v_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ZnStatus(); ok {
		if err := icptest.ZnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "zn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.zn_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SnStatus(); ok {
		if err := icptest.SnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sn_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.No3Status(); ok {
		if err := icptest.No3StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "no3_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.no3_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PStatus(); ok {
		if err := icptest.PStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "p_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.p_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Po4Status(); ok {
		if err := icptest.Po4StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "po4_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.po4_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AlStatus(); ok {
		if err := icptest.AlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "al_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.al_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SbStatus(); ok {
		if err := icptest.SbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sb_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BiStatus(); ok {
		if err := icptest.BiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "bi_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.bi_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PbStatus(); ok {
		if err := icptest.PbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "pb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.pb_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CdStatus(); ok {
		if err := icptest.CdStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cd_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cd_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LaStatus(); ok {
		if err := icptest.LaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "la_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.la_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TlStatus(); ok {
		if err := icptest.TlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "tl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.tl_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TiStatus(); ok {
		if err := icptest.TiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ti_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ti_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WStatus(); ok {
		if err := icptest.WStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "w_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.w_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.HgStatus(); ok {
		if err := icptest.HgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "hg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.hg_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IcpTest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IcpTest.updated_at"`)}
	}
	if len(_c.mutation.TankIDs()) == 0 {
		return &ValidationError{Name: "tank", err: errors.New(`ent: missing required edge "IcpTest.tank"`)}
	}
	return nil
}

func (_c *IcpTestCreate) sqlSave(ctx context.Context) (*IcpTest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IcpTestCreate) createSpec() (*IcpTest, *sqlgraph.CreateSpec) {
	var (
		_node = &IcpTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(icptest.Table, sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TestDate(); ok {
		_spec.SetField(icptest.FieldTestDate, field.TypeTime, value)
		_node.TestDate = value
	}
	if value, ok := _c.mutation.LabName(); ok {
		_spec.SetField(icptest.FieldLabName, field.TypeString, value)
		_node.LabName = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(icptest.FieldTestID, field.TypeString, value)
		_node.TestID = &value
	}
	if value, ok := _c.mutation.WaterType(); ok {
		_spec.SetField(icptest.FieldWaterType, field.TypeString, value)
		_node.WaterType = value
	}
	if value, ok := _c.mutation.SampleDate(); ok {
		_spec.SetField(icptest.FieldSampleDate, field.TypeTime, value)
		_node.SampleDate = &value
	}
	if value, ok := _c.mutation.ReceivedDate(); ok {
		_spec.SetField(icptest.FieldReceivedDate, field.TypeTime, value)
		_node.ReceivedDate = &value
	}
	if value, ok := _c.mutation.EvaluatedDate(); ok {
		_spec.SetField(icptest.FieldEvaluatedDate, field.TypeTime, value)
		_node.EvaluatedDate = &value
	}
	if value, ok := _c.mutation.ScoreMajorElements(); ok {
		_spec.SetField(icptest.FieldScoreMajorElements, field.TypeInt, value)
		_node.ScoreMajorElements = &value
	}
	if value, ok := _c.mutation.ScoreMinorElements(); ok {
		_spec.SetField(icptest.FieldScoreMinorElements, field.TypeInt, value)
		_node.ScoreMinorElements = &value
	}
	if value, ok := _c.mutation.ScorePollutants(); ok {
		_spec.SetField(icptest.FieldScorePollutants, field.TypeInt, value)
		_node.ScorePollutants = &value
	}
	if value, ok := _c.mutation.ScoreBaseElements(); ok {
		_spec.SetField(icptest.FieldScoreBaseElements, field.TypeInt, value)
		_node.ScoreBaseElements = &value
	}
	if value, ok := _c.mutation.ScoreOverall(); ok {
		_spec.SetField(icptest.FieldScoreOverall, field.TypeInt, value)
		_node.ScoreOverall = &value
	}
	if value, ok := _c.mutation.Salinity(); ok {
		_spec.SetField(icptest.FieldSalinity, field.TypeFloat64, value)
		_node.Salinity = &value
	}
	if value, ok := _c.mutation.SalinityStatus(); ok {
		_spec.SetField(icptest.FieldSalinityStatus, field.TypeString, value)
		_node.SalinityStatus = &value
	}
	if value, ok := _c.mutation.Kh(); ok {
		_spec.SetField(icptest.FieldKh, field.TypeFloat64, value)
		_node.Kh = &value
	}
	if value, ok := _c.mutation.KhStatus(); ok {
		_spec.SetField(icptest.FieldKhStatus, field.TypeString, value)
		_node.KhStatus = &value
	}
	if value, ok := _c.mutation.Cl(); ok {
		_spec.SetField(icptest.FieldCl, field.TypeFloat64, value)
		_node.Cl = &value
	}
	if value, ok := _c.mutation.ClStatus(); ok {
		_spec.SetField(icptest.FieldClStatus, field.TypeString, value)
		_node.ClStatus = &value
	}
	if value, ok := _c.mutation.Na(); ok {
		_spec.SetField(icptest.FieldNa, field.TypeFloat64, value)
		_node.Na = &value
	}
	if value, ok := _c.mutation.NaStatus(); ok {
		_spec.SetField(icptest.FieldNaStatus, field.TypeString, value)
		_node.NaStatus = &value
	}
	if value, ok := _c.mutation.Mg(); ok {
		_spec.SetField(icptest.FieldMg, field.TypeFloat64, value)
		_node.Mg = &value
	}
	if value, ok := _c.mutation.MgStatus(); ok {
		_spec.SetField(icptest.FieldMgStatus, field.TypeString, value)
		_node.MgStatus = &value
	}
	if value, ok := _c.mutation.S(); ok {
		_spec.SetField(icptest.FieldS, field.TypeFloat64, value)
		_node.S = &value
	}
	if value, ok := _c.mutation.SStatus(); ok {
		_spec.SetField(icptest.FieldSStatus, field.TypeString, value)
		_node.SStatus = &value
	}
	if value, ok := _c.mutation.Ca(); ok {
		_spec.SetField(icptest.FieldCa, field.TypeFloat64, value)
		_node.Ca = &value
	}
	if value, ok := _c.mutation.CaStatus(); ok {
		_spec.SetField(icptest.FieldCaStatus, field.TypeString, value)
		_node.CaStatus = &value
	}
	if value, ok := _c.mutation.K(); ok {
		_spec.SetField(icptest.FieldK, field.TypeFloat64, value)
		_node.K = &value
	}
	if value, ok := _c.mutation.KStatus(); ok {
		_spec.SetField(icptest.FieldKStatus, field.TypeString, value)
		_node.KStatus = &value
	}
	if value, ok := _c.mutation.Br(); ok {
		_spec.SetField(icptest.FieldBr, field.TypeFloat64, value)
		_node.Br = &value
	}
	if value, ok := _c.mutation.BrStatus(); ok {
		_spec.SetField(icptest.FieldBrStatus, field.TypeString, value)
		_node.BrStatus = &value
	}
	if value, ok := _c.mutation.Sr(); ok {
		_spec.SetField(icptest.FieldSr, field.TypeFloat64, value)
		_node.Sr = &value
	}
	if value, ok := _c.mutation.SrStatus(); ok {
		_spec.SetField(icptest.FieldSrStatus, field.TypeString, value)
		_node.SrStatus = &value
	}
	if value, ok := _c.mutation.B(); ok {
		_spec.SetField(icptest.FieldB, field.TypeFloat64, value)
		_node.B = &value
	}
	if value, ok := _c.mutation.BStatus(); ok {
		_spec.SetField(icptest.FieldBStatus, field.TypeString, value)
		_node.BStatus = &value
	}
	if value, ok := _c.mutation.F(); ok {
		_spec.SetField(icptest.FieldF, field.TypeFloat64, value)
		_node.F = &value
	}
	if value, ok := _c.mutation.FStatus(); ok {
		_spec.SetField(icptest.FieldFStatus, field.TypeString, value)
		_node.FStatus = &value
	}
	if value, ok := _c.mutation.Li(); ok {
		_spec.SetField(icptest.FieldLi, field.TypeFloat64, value)
		_node.Li = &value
	}
	if value, ok := _c.mutation.LiStatus(); ok {
		_spec.SetField(icptest.FieldLiStatus, field.TypeString, value)
		_node.LiStatus = &value
	}
	if value, ok := _c.mutation.Si(); ok {
		_spec.SetField(icptest.FieldSi, field.TypeFloat64, value)
		_node.Si = &value
	}
	if value, ok := _c.mutation.SiStatus(); ok {
		_spec.SetField(icptest.FieldSiStatus, field.TypeString, value)
		_node.SiStatus = &value
	}
	if value, ok := _c.mutation.I(); ok {
		_spec.SetField(icptest.FieldI, field.TypeFloat64, value)
		_node.I = &value
	}
	if value, ok := _c.mutation.IStatus(); ok {
		_spec.SetField(icptest.FieldIStatus, field.TypeString, value)
		_node.IStatus = &value
	}
	if value, ok := _c.mutation.Ba(); ok {
		_spec.SetField(icptest.FieldBa, field.TypeFloat64, value)
		_node.Ba = &value
	}
	if value, ok := _c.mutation.BaStatus(); ok {
		_spec.SetField(icptest.FieldBaStatus, field.TypeString, value)
		_node.BaStatus = &value
	}
	if value, ok := _c.mutation.Mo(); ok {
		_spec.SetField(icptest.FieldMo, field.TypeFloat64, value)
		_node.Mo = &value
	}
	if value, ok := _c.mutation.MoStatus(); ok {
		_spec.SetField(icptest.FieldMoStatus, field.TypeString, value)
		_node.MoStatus = &value
	}
	if value, ok := _c.mutation.Ni(); ok {
		_spec.SetField(icptest.FieldNi, field.TypeFloat64, value)
		_node.Ni = &value
	}
	if value, ok := _c.mutation.NiStatus(); ok {
		_spec.SetField(icptest.FieldNiStatus, field.TypeString, value)
		_node.NiStatus = &value
	}
	if value, ok := _c.mutation.Mn(); ok {
		_spec.SetField(icptest.FieldMn, field.TypeFloat64, value)
		_node.Mn = &value
	}
	if value, ok := _c.mutation.MnStatus(); ok {
		_spec.SetField(icptest.FieldMnStatus, field.TypeString, value)
		_node.MnStatus = &value
	}
	if value, ok := _c.mutation.As(); ok {
		_spec.SetField(icptest.FieldAs, field.TypeFloat64, value)
		_node.As = &value
	}
	if value, ok := _c.mutation.AsStatus(); ok {
		_spec.SetField(icptest.FieldAsStatus, field.TypeString, value)
		_node.AsStatus = &value
	}
	if value, ok := _c.mutation.Be(); ok {
		_spec.SetField(icptest.FieldBe, field.TypeFloat64, value)
		_node.Be = &value
	}
	if value, ok := _c.mutation.BeStatus(); ok {
		_spec.SetField(icptest.FieldBeStatus, field.TypeString, value)
		_node.BeStatus = &value
	}
	if value, ok := _c.mutation.Cr(); ok {
		_spec.SetField(icptest.FieldCr, field.TypeFloat64, value)
		_node.Cr = &value
	}
	if value, ok := _c.mutation.CrStatus(); ok {
		_spec.SetField(icptest.FieldCrStatus, field.TypeString, value)
		_node.CrStatus = &value
	}
	if value, ok := _c.mutation.Co(); ok {
		_spec.SetField(icptest.FieldCo, field.TypeFloat64, value)
		_node.Co = &value
	}
	if value, ok := _c.mutation.CoStatus(); ok {
		_spec.SetField(icptest.FieldCoStatus, field.TypeString, value)
		_node.CoStatus = &value
	}
	if value, ok := _c.mutation.Fe(); ok {
		_spec.SetField(icptest.FieldFe, field.TypeFloat64, value)
		_node.Fe = &value
	}
	if value, ok := _c.mutation.FeStatus(); ok {
		_spec.SetField(icptest.FieldFeStatus, field.TypeString, value)
		_node.FeStatus = &value
	}
	if value, ok := _c.mutation.Cu(); ok {
		_spec.SetField(icptest.FieldCu, field.TypeFloat64, value)
		_node.Cu = &value
	}
	if value, ok := _c.mutation.CuStatus(); ok {
		_spec.SetField(icptest.FieldCuStatus, field.TypeString, value)
		_node.CuStatus = &value
	}
	if value, ok := _c.mutation.Se(); ok {
		_spec.SetField(icptest.FieldSe, field.TypeFloat64, value)
		_node.Se = &value
	}
	if value, ok := _c.mutation.SeStatus(); ok {
		_spec.SetField(icptest.FieldSeStatus, field.TypeString, value)
		_node.SeStatus = &value
	}
	if value, ok := _c.mutation.Ag(); ok {
		_spec.SetField(icptest.FieldAg, field.TypeFloat64, value)
		_node.Ag = &value
	}
	if value, ok := _c.mutation.AgStatus(); ok {
		_spec.SetField(icptest.FieldAgStatus, field.TypeString, value)
		_node.AgStatus = &value
	}
	if value, ok := _c.mutation.V(); ok {
		_spec.SetField(icptest.FieldV, field.TypeFloat64, value)
		_node.V = &value
	}
	if value, ok := _c.mutation.VStatus(); ok {
		_spec.SetField(icptest.FieldVStatus, field.TypeString, value)
		_node.VStatus = &value
	}
	if value, ok := _c.mutation.Zn(); ok {
		_spec.SetField(icptest.FieldZn, field.TypeFloat64, value)
		_node.Zn = &value
	}
	if value, ok := _c.mutation.ZnStatus(); ok {
		_spec.SetField(icptest.FieldZnStatus, field.TypeString, value)
		_node.ZnStatus = &value
	}
	if value, ok := _c.mutation.Sn(); ok {
		_spec.SetField(icptest.FieldSn, field.TypeFloat64, value)
		_node.Sn = &value
	}
	if value, ok := _c.mutation.SnStatus(); ok {
		_spec.SetField(icptest.FieldSnStatus, field.TypeString, value)
		_node.SnStatus = &value
	}
	if value, ok := _c.mutation.No3(); ok {
		_spec.SetField(icptest.FieldNo3, field.TypeFloat64, value)
		_node.No3 = &value
	}
	if value, ok := _c.mutation.No3Status(); ok {
		_spec.SetField(icptest.FieldNo3Status, field.TypeString, value)
		_node.No3Status = &value
	}
	if value, ok := _c.mutation.P(); ok {
		_spec.SetField(icptest.FieldP, field.TypeFloat64, value)
		_node.P = &value
	}
	if value, ok := _c.mutation.PStatus(); ok {
		_spec.SetField(icptest.FieldPStatus, field.TypeString, value)
		_node.PStatus = &value
	}
	if value, ok := _c.mutation.Po4(); ok {
		_spec.SetField(icptest.FieldPo4, field.TypeFloat64, value)
		_node.Po4 = &value
	}
	if value, ok := _c.mutation.Po4Status(); ok {
		_spec.SetField(icptest.FieldPo4Status, field.TypeString, value)
		_node.Po4Status = &value
	}
	if value, ok := _c.mutation.Al(); ok {
		_spec.SetField(icptest.FieldAl, field.TypeFloat64, value)
		_node.Al = &value
	}
	if value, ok := _c.mutation.AlStatus(); ok {
		_spec.SetField(icptest.FieldAlStatus, field.TypeString, value)
		_node.AlStatus = &value
	}
	if value, ok := _c.mutation.Sb(); ok {
		_spec.SetField(icptest.FieldSb, field.TypeFloat64, value)
		_node.Sb = &value
	}
	if value, ok := _c.mutation.SbStatus(); ok {
		_spec.SetField(icptest.FieldSbStatus, field.TypeString, value)
		_node.SbStatus = &value
	}
	if value, ok := _c.mutation.Bi(); ok {
		_spec.SetField(icptest.FieldBi, field.TypeFloat64, value)
		_node.Bi = &value
	}
	if value, ok := _c.mutation.BiStatus(); ok {
		_spec.SetField(icptest.FieldBiStatus, field.TypeString, value)
		_node.BiStatus = &value
	}
	if value, ok := _c.mutation.Pb(); ok {
		_spec.SetField(icptest.FieldPb, field.TypeFloat64, value)
		_node.Pb = &value
	}
	if value, ok := _c.mutation.PbStatus(); ok {
		_spec.SetField(icptest.FieldPbStatus, field.TypeString, value)
		_node.PbStatus = &value
	}
	if value, ok := _c.mutation.Cd(); ok {
		_spec.SetField(icptest.FieldCd, field.TypeFloat64, value)
		_node.Cd = &value
	}
	if value, ok := _c.mutation.CdStatus(); ok {
		_spec.SetField(icptest.FieldCdStatus, field.TypeString, value)
		_node.CdStatus = &value
	}
	if value, ok := _c.mutation.La(); ok {
		_spec.SetField(icptest.FieldLa, field.TypeFloat64, value)
		_node.La = &value
	}
	if value, ok := _c.mutation.LaStatus(); ok {
		_spec.SetField(icptest.FieldLaStatus, field.TypeString, value)
		_node.LaStatus = &value
	}
	if value, ok := _c.mutation.Tl(); ok {
		_spec.SetField(icptest.FieldTl, field.TypeFloat64, value)
		_node.Tl = &value
	}
	if value, ok := _c.mutation.TlStatus(); ok {
		_spec.SetField(icptest.FieldTlStatus, field.TypeString, value)
		_node.TlStatus = &value
	}
	if value, ok := _c.mutation.Ti(); ok {
		_spec.SetField(icptest.FieldTi, field.TypeFloat64, value)
		_node.Ti = &value
	}
	if value, ok := _c.mutation.TiStatus(); ok {
		_spec.SetField(icptest.FieldTiStatus, field.TypeString, value)
		_node.TiStatus = &value
	}
	if value, ok := _c.mutation.W(); ok {
		_spec.SetField(icptest.FieldW, field.TypeFloat64, value)
		_node.W = &value
	}
	if value, ok := _c.mutation.WStatus(); ok {
		_spec.SetField(icptest.FieldWStatus, field.TypeString, value)
		_node.WStatus = &value
	}
	if value, ok := _c.mutation.Hg(); ok {
		_spec.SetField(icptest.FieldHg, field.TypeFloat64, value)
		_node.Hg = &value
	}
	if value, ok := _c.mutation.HgStatus(); ok {
		_spec.SetField(icptest.FieldHgStatus, field.TypeString, value)
		_node.HgStatus = &value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(icptest.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.DosingInstructions(); ok {
		_spec.SetField(icptest.FieldDosingInstructions, field.TypeString, value)
		_node.DosingInstructions = &value
	}
	if value, ok := _c.mutation.PdfFilename(); ok {
		_spec.SetField(icptest.FieldPdfFilename, field.TypeString, value)
		_node.PdfFilename = &value
	}
	if value, ok := _c.mutation.PdfPath(); ok {
		_spec.SetField(icptest.FieldPdfPath, field.TypeString, value)
		_node.PdfPath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(icptest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(icptest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TankIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   icptest.TankTable,
			Columns: []string{icptest.TankColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tank.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TankID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   icptest.FileTable,
			Columns: []string{icptest.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IcpTestCreateBulk is the builder for creating many IcpTest entities in bulk.
type IcpTestCreateBulk struct {
	config
	err      error
	builders []*IcpTestCreate
}

// Save creates the IcpTest entities in the database.
func (_c *IcpTestCreateBulk) Save(ctx context.Context) ([]*IcpTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IcpTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IcpTestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IcpTestCreateBulk) SaveX(ctx context.Context) []*IcpTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IcpTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IcpTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
