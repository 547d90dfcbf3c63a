// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/predicate"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// IcpTestUpdate is the builder for updating IcpTest entities.
type IcpTestUpdate struct {
	config
	hooks    []Hook
	mutation *IcpTestMutation
}

// Where appends a list predicates to the IcpTestUpdate builder.
func (_u *IcpTestUpdate) Where(ps ...predicate.IcpTest) *IcpTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTankID sets the "tank_id" field.
func (_u *IcpTestUpdate) SetTankID(v uuid.UUID) *IcpTestUpdate {
	_u.mutation.SetTankID(v)
	return _u
}

// SetNillableTankID sets the "tank_id" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTankID(v *uuid.UUID) *IcpTestUpdate {
	if v != nil {
		_u.SetTankID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *IcpTestUpdate) SetFileID(v uuid.UUID) *IcpTestUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableFileID(v *uuid.UUID) *IcpTestUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *IcpTestUpdate) ClearFileID() *IcpTestUpdate {
	_u.mutation.ClearFileID()
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *IcpTestUpdate) SetTestDate(v time.Time) *IcpTestUpdate {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTestDate(v *time.Time) *IcpTestUpdate {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetLabName sets the "lab_name" field.
func (_u *IcpTestUpdate) SetLabName(v string) *IcpTestUpdate {
	_u.mutation.SetLabName(v)
	return _u
}

// SetNillableLabName sets the "lab_name" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableLabName(v *string) *IcpTestUpdate {
	if v != nil {
		_u.SetLabName(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *IcpTestUpdate) SetTestID(v string) *IcpTestUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTestID(v *string) *IcpTestUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// ClearTestID clears the value of the "test_id" field.
func (_u *IcpTestUpdate) ClearTestID() *IcpTestUpdate {
	_u.mutation.ClearTestID()
	return _u
}

// SetWaterType sets the "water_type" field.
func (_u *IcpTestUpdate) SetWaterType(v constants.WaterType) *IcpTestUpdate {
	_u.mutation.SetWaterType(v)
	return _u
}

// SetNillableWaterType sets the "water_type" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableWaterType(v *constants.WaterType) *IcpTestUpdate {
	if v != nil {
		_u.SetWaterType(*v)
	}
	return _u
}

// SetSampleDate sets the "sample_date" field.
func (_u *IcpTestUpdate) SetSampleDate(v time.Time) *IcpTestUpdate {
	_u.mutation.SetSampleDate(v)
	return _u
}

// SetNillableSampleDate sets the "sample_date" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSampleDate(v *time.Time) *IcpTestUpdate {
	if v != nil {
		_u.SetSampleDate(*v)
	}
	return _u
}

// ClearSampleDate clears the value of the "sample_date" field.
func (_u *IcpTestUpdate) ClearSampleDate() *IcpTestUpdate {
	_u.mutation.ClearSampleDate()
	return _u
}

// SetReceivedDate sets the "received_date" field.
func (_u *IcpTestUpdate) SetReceivedDate(v time.Time) *IcpTestUpdate {
	_u.mutation.SetReceivedDate(v)
	return _u
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableReceivedDate(v *time.Time) *IcpTestUpdate {
	if v != nil {
		_u.SetReceivedDate(*v)
	}
	return _u
}

// ClearReceivedDate clears the value of the "received_date" field.
func (_u *IcpTestUpdate) ClearReceivedDate() *IcpTestUpdate {
	_u.mutation.ClearReceivedDate()
	return _u
}

// SetEvaluatedDate sets the "evaluated_date" field.
func (_u *IcpTestUpdate) SetEvaluatedDate(v time.Time) *IcpTestUpdate {
	_u.mutation.SetEvaluatedDate(v)
	return _u
}

// SetNillableEvaluatedDate sets the "evaluated_date" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableEvaluatedDate(v *time.Time) *IcpTestUpdate {
	if v != nil {
		_u.SetEvaluatedDate(*v)
	}
	return _u
}

// ClearEvaluatedDate clears the value of the "evaluated_date" field.
func (_u *IcpTestUpdate) ClearEvaluatedDate() *IcpTestUpdate {
	_u.mutation.ClearEvaluatedDate()
	return _u
}

// SetScoreMajorElements sets the "score_major_elements" field.
func (_u *IcpTestUpdate) SetScoreMajorElements(v int) *IcpTestUpdate {
	_u.mutation.ResetScoreMajorElements()
	_u.mutation.SetScoreMajorElements(v)
	return _u
}

// SetNillableScoreMajorElements sets the "score_major_elements" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableScoreMajorElements(v *int) *IcpTestUpdate {
	if v != nil {
		_u.SetScoreMajorElements(*v)
	}
	return _u
}

// AddScoreMajorElements adds value to the "score_major_elements" field.
func (_u *IcpTestUpdate) AddScoreMajorElements(v int) *IcpTestUpdate {
	_u.mutation.AddScoreMajorElements(v)
	return _u
}

// ClearScoreMajorElements clears the value of the "score_major_elements" field.
func (_u *IcpTestUpdate) ClearScoreMajorElements() *IcpTestUpdate {
	_u.mutation.ClearScoreMajorElements()
	return _u
}

// SetScoreMinorElements sets the "score_minor_elements" field.
func (_u *IcpTestUpdate) SetScoreMinorElements(v int) *IcpTestUpdate {
	_u.mutation.ResetScoreMinorElements()
	_u.mutation.SetScoreMinorElements(v)
	return _u
}

// SetNillableScoreMinorElements sets the "score_minor_elements" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableScoreMinorElements(v *int) *IcpTestUpdate {
	if v != nil {
		_u.SetScoreMinorElements(*v)
	}
	return _u
}

// AddScoreMinorElements adds value to the "score_minor_elements" field.
func (_u *IcpTestUpdate) AddScoreMinorElements(v int) *IcpTestUpdate {
	_u.mutation.AddScoreMinorElements(v)
	return _u
}

// ClearScoreMinorElements clears the value of the "score_minor_elements" field.
func (_u *IcpTestUpdate) ClearScoreMinorElements() *IcpTestUpdate {
	_u.mutation.ClearScoreMinorElements()
	return _u
}

// SetScorePollutants sets the "score_pollutants" field.
func (_u *IcpTestUpdate) SetScorePollutants(v int) *IcpTestUpdate {
	_u.mutation.ResetScorePollutants()
	_u.mutation.SetScorePollutants(v)
	return _u
}

// SetNillableScorePollutants sets the "score_pollutants" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableScorePollutants(v *int) *IcpTestUpdate {
	if v != nil {
		_u.SetScorePollutants(*v)
	}
	return _u
}

// AddScorePollutants adds value to the "score_pollutants" field.
func (_u *IcpTestUpdate) AddScorePollutants(v int) *IcpTestUpdate {
	_u.mutation.AddScorePollutants(v)
	return _u
}

// ClearScorePollutants clears the value of the "score_pollutants" field.
func (_u *IcpTestUpdate) ClearScorePollutants() *IcpTestUpdate {
	_u.mutation.ClearScorePollutants()
	return _u
}

// SetScoreBaseElements sets the "score_base_elements" field.
func (_u *IcpTestUpdate) SetScoreBaseElements(v int) *IcpTestUpdate {
	_u.mutation.ResetScoreBaseElements()
	_u.mutation.SetScoreBaseElements(v)
	return _u
}

// SetNillableScoreBaseElements sets the "score_base_elements" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableScoreBaseElements(v *int) *IcpTestUpdate {
	if v != nil {
		_u.SetScoreBaseElements(*v)
	}
	return _u
}

// AddScoreBaseElements adds value to the "score_base_elements" field.
func (_u *IcpTestUpdate) AddScoreBaseElements(v int) *IcpTestUpdate {
	_u.mutation.AddScoreBaseElements(v)
	return _u
}

// ClearScoreBaseElements clears the value of the "score_base_elements" field.
func (_u *IcpTestUpdate) ClearScoreBaseElements() *IcpTestUpdate {
	_u.mutation.ClearScoreBaseElements()
	return _u
}

// SetScoreOverall sets the "score_overall" field.
func (_u *IcpTestUpdate) SetScoreOverall(v int) *IcpTestUpdate {
	_u.mutation.ResetScoreOverall()
	_u.mutation.SetScoreOverall(v)
	return _u
}

// SetNillableScoreOverall sets the "score_overall" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableScoreOverall(v *int) *IcpTestUpdate {
	if v != nil {
		_u.SetScoreOverall(*v)
	}
	return _u
}

// AddScoreOverall adds value to the "score_overall" field.
func (_u *IcpTestUpdate) AddScoreOverall(v int) *IcpTestUpdate {
	_u.mutation.AddScoreOverall(v)
	return _u
}

// ClearScoreOverall clears the value of the "score_overall" field.
func (_u *IcpTestUpdate) ClearScoreOverall() *IcpTestUpdate {
	_u.mutation.ClearScoreOverall()
	return _u
}

// SetSalinity sets the "salinity" field.
func (_u *IcpTestUpdate) SetSalinity(v float64) *IcpTestUpdate {
	_u.mutation.ResetSalinity()
	_u.mutation.SetSalinity(v)
	return _u
}

// SetNillableSalinity sets the "salinity" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSalinity(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSalinity(*v)
	}
	return _u
}

// AddSalinity adds value to the "salinity" field.
func (_u *IcpTestUpdate) AddSalinity(v float64) *IcpTestUpdate {
	_u.mutation.AddSalinity(v)
	return _u
}

// ClearSalinity clears the value of the "salinity" field.
func (_u *IcpTestUpdate) ClearSalinity() *IcpTestUpdate {
	_u.mutation.ClearSalinity()
	return _u
}

// SetSalinityStatus sets the "salinity_status" field.
func (_u *IcpTestUpdate) SetSalinityStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSalinityStatus(v)
	return _u
}

// SetNillableSalinityStatus sets the "salinity_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSalinityStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSalinityStatus(*v)
	}
	return _u
}

// ClearSalinityStatus clears the value of the "salinity_status" field.
func (_u *IcpTestUpdate) ClearSalinityStatus() *IcpTestUpdate {
	_u.mutation.ClearSalinityStatus()
	return _u
}

// SetKh sets the "kh" field.
func (_u *IcpTestUpdate) SetKh(v float64) *IcpTestUpdate {
	_u.mutation.ResetKh()
	_u.mutation.SetKh(v)
	return _u
}

// SetNillableKh sets the "kh" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableKh(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetKh(*v)
	}
	return _u
}

// AddKh adds value to the "kh" field.
func (_u *IcpTestUpdate) AddKh(v float64) *IcpTestUpdate {
	_u.mutation.AddKh(v)
	return _u
}

// ClearKh clears the value of the "kh" field.
func (_u *IcpTestUpdate) ClearKh() *IcpTestUpdate {
	_u.mutation.ClearKh()
	return _u
}

// SetKhStatus sets the "kh_status" field.
func (_u *IcpTestUpdate) SetKhStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetKhStatus(v)
	return _u
}

// SetNillableKhStatus sets the "kh_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableKhStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetKhStatus(*v)
	}
	return _u
}

// ClearKhStatus clears the value of the "kh_status" field.
func (_u *IcpTestUpdate) ClearKhStatus() *IcpTestUpdate {
	_u.mutation.ClearKhStatus()
	return _u
}

// SetCl sets the "cl" field.
func (_u *IcpTestUpdate) SetCl(v float64) *IcpTestUpdate {
	_u.mutation.ResetCl()
	_u.mutation.SetCl(v)
	return _u
}

// SetNillableCl sets the "cl" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCl(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCl(*v)
	}
	return _u
}

// AddCl adds value to the "cl" field.
func (_u *IcpTestUpdate) AddCl(v float64) *IcpTestUpdate {
	_u.mutation.AddCl(v)
	return _u
}

// ClearCl clears the value of the "cl" field.
func (_u *IcpTestUpdate) ClearCl() *IcpTestUpdate {
	_u.mutation.ClearCl()
	return _u
}

// SetClStatus sets the "cl_status" field.
func (_u *IcpTestUpdate) SetClStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetClStatus(v)
	return _u
}

// SetNillableClStatus sets the "cl_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableClStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetClStatus(*v)
	}
	return _u
}

// ClearClStatus clears the value of the "cl_status" field.
func (_u *IcpTestUpdate) ClearClStatus() *IcpTestUpdate {
	_u.mutation.ClearClStatus()
	return _u
}

// SetNa sets the "na" field.
func (_u *IcpTestUpdate) SetNa(v float64) *IcpTestUpdate {
	_u.mutation.ResetNa()
	_u.mutation.SetNa(v)
	return _u
}

// SetNillableNa sets the "na" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNa(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetNa(*v)
	}
	return _u
}

// AddNa adds value to the "na" field.
func (_u *IcpTestUpdate) AddNa(v float64) *IcpTestUpdate {
	_u.mutation.AddNa(v)
	return _u
}

// ClearNa clears the value of the "na" field.
func (_u *IcpTestUpdate) ClearNa() *IcpTestUpdate {
	_u.mutation.ClearNa()
	return _u
}

// SetNaStatus sets the "na_status" field.
func (_u *IcpTestUpdate) SetNaStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetNaStatus(v)
	return _u
}

// SetNillableNaStatus sets the "na_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNaStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetNaStatus(*v)
	}
	return _u
}

// ClearNaStatus clears the value of the "na_status" field.
func (_u *IcpTestUpdate) ClearNaStatus() *IcpTestUpdate {
	_u.mutation.ClearNaStatus()
	return _u
}

// SetMg sets the "mg" field.
func (_u *IcpTestUpdate) SetMg(v float64) *IcpTestUpdate {
	_u.mutation.ResetMg()
	_u.mutation.SetMg(v)
	return _u
}

// SetNillableMg sets the "mg" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMg(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetMg(*v)
	}
	return _u
}

// AddMg adds value to the "mg" field.
func (_u *IcpTestUpdate) AddMg(v float64) *IcpTestUpdate {
	_u.mutation.AddMg(v)
	return _u
}

// ClearMg clears the value of the "mg" field.
func (_u *IcpTestUpdate) ClearMg() *IcpTestUpdate {
	_u.mutation.ClearMg()
	return _u
}

// SetMgStatus sets the "mg_status" field.
func (_u *IcpTestUpdate) SetMgStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetMgStatus(v)
	return _u
}

// SetNillableMgStatus sets the "mg_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMgStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetMgStatus(*v)
	}
	return _u
}

// ClearMgStatus clears the value of the "mg_status" field.
func (_u *IcpTestUpdate) ClearMgStatus() *IcpTestUpdate {
	_u.mutation.ClearMgStatus()
	return _u
}

// SetS sets the "s" field.
func (_u *IcpTestUpdate) SetS(v float64) *IcpTestUpdate {
	_u.mutation.ResetS()
	_u.mutation.SetS(v)
	return _u
}

// SetNillableS sets the "s" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableS(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetS(*v)
	}
	return _u
}

// AddS adds value to the "s" field.
func (_u *IcpTestUpdate) AddS(v float64) *IcpTestUpdate {
	_u.mutation.AddS(v)
	return _u
}

// ClearS clears the value of the "s" field.
func (_u *IcpTestUpdate) ClearS() *IcpTestUpdate {
	_u.mutation.ClearS()
	return _u
}

// SetSStatus sets the "s_status" field.
func (_u *IcpTestUpdate) SetSStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSStatus(v)
	return _u
}

// SetNillableSStatus sets the "s_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSStatus(*v)
	}
	return _u
}

// ClearSStatus clears the value of the "s_status" field.
func (_u *IcpTestUpdate) ClearSStatus() *IcpTestUpdate {
	_u.mutation.ClearSStatus()
	return _u
}

// SetCa sets the "ca" field.
func (_u *IcpTestUpdate) SetCa(v float64) *IcpTestUpdate {
	_u.mutation.ResetCa()
	_u.mutation.SetCa(v)
	return _u
}

// SetNillableCa sets the "ca" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCa(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCa(*v)
	}
	return _u
}

// AddCa adds value to the "ca" field.
func (_u *IcpTestUpdate) AddCa(v float64) *IcpTestUpdate {
	_u.mutation.AddCa(v)
	return _u
}

// ClearCa clears the value of the "ca" field.
func (_u *IcpTestUpdate) ClearCa() *IcpTestUpdate {
	_u.mutation.ClearCa()
	return _u
}

// SetCaStatus sets the "ca_status" field.
func (_u *IcpTestUpdate) SetCaStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetCaStatus(v)
	return _u
}

// SetNillableCaStatus sets the "ca_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCaStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetCaStatus(*v)
	}
	return _u
}

// ClearCaStatus clears the value of the "ca_status" field.
func (_u *IcpTestUpdate) ClearCaStatus() *IcpTestUpdate {
	_u.mutation.ClearCaStatus()
	return _u
}

// SetK sets the "k" field.
func (_u *IcpTestUpdate) SetK(v float64) *IcpTestUpdate {
	_u.mutation.ResetK()
	_u.mutation.SetK(v)
	return _u
}

// SetNillableK sets the "k" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableK(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetK(*v)
	}
	return _u
}

// AddK adds value to the "k" field.
func (_u *IcpTestUpdate) AddK(v float64) *IcpTestUpdate {
	_u.mutation.AddK(v)
	return _u
}

// ClearK clears the value of the "k" field.
func (_u *IcpTestUpdate) ClearK() *IcpTestUpdate {
	_u.mutation.ClearK()
	return _u
}

// SetKStatus sets the "k_status" field.
func (_u *IcpTestUpdate) SetKStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetKStatus(v)
	return _u
}

// SetNillableKStatus sets the "k_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableKStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetKStatus(*v)
	}
	return _u
}

// ClearKStatus clears the value of the "k_status" field.
func (_u *IcpTestUpdate) ClearKStatus() *IcpTestUpdate {
	_u.mutation.ClearKStatus()
	return _u
}

// SetBr sets the "br" field.
func (_u *IcpTestUpdate) SetBr(v float64) *IcpTestUpdate {
	_u.mutation.ResetBr()
	_u.mutation.SetBr(v)
	return _u
}

// SetNillableBr sets the "br" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBr(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetBr(*v)
	}
	return _u
}

// AddBr adds value to the "br" field.
func (_u *IcpTestUpdate) AddBr(v float64) *IcpTestUpdate {
	_u.mutation.AddBr(v)
	return _u
}

// ClearBr clears the value of the "br" field.
func (_u *IcpTestUpdate) ClearBr() *IcpTestUpdate {
	_u.mutation.ClearBr()
	return _u
}

// SetBrStatus sets the "br_status" field.
func (_u *IcpTestUpdate) SetBrStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetBrStatus(v)
	return _u
}

// SetNillableBrStatus sets the "br_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBrStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetBrStatus(*v)
	}
	return _u
}

// ClearBrStatus clears the value of the "br_status" field.
func (_u *IcpTestUpdate) ClearBrStatus() *IcpTestUpdate {
	_u.mutation.ClearBrStatus()
	return _u
}

// SetSr sets the "sr" field.
func (_u *IcpTestUpdate) SetSr(v float64) *IcpTestUpdate {
	_u.mutation.ResetSr()
	_u.mutation.SetSr(v)
	return _u
}

// SetNillableSr sets the "sr" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSr(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSr(*v)
	}
	return _u
}

// AddSr adds value to the "sr" field.
func (_u *IcpTestUpdate) AddSr(v float64) *IcpTestUpdate {
	_u.mutation.AddSr(v)
	return _u
}

// ClearSr clears the value of the "sr" field.
func (_u *IcpTestUpdate) ClearSr() *IcpTestUpdate {
	_u.mutation.ClearSr()
	return _u
}

// SetSrStatus sets the "sr_status" field.
func (_u *IcpTestUpdate) SetSrStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSrStatus(v)
	return _u
}

// SetNillableSrStatus sets the "sr_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSrStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSrStatus(*v)
	}
	return _u
}

// ClearSrStatus clears the value of the "sr_status" field.
func (_u *IcpTestUpdate) ClearSrStatus() *IcpTestUpdate {
	_u.mutation.ClearSrStatus()
	return _u
}

// SetB sets the "b" field.
func (_u *IcpTestUpdate) SetB(v float64) *IcpTestUpdate {
	_u.mutation.ResetB()
	_u.mutation.SetB(v)
	return _u
}

// SetNillableB sets the "b" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableB(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetB(*v)
	}
	return _u
}

// AddB adds value to the "b" field.
func (_u *IcpTestUpdate) AddB(v float64) *IcpTestUpdate {
	_u.mutation.AddB(v)
	return _u
}

// ClearB clears the value of the "b" field.
func (_u *IcpTestUpdate) ClearB() *IcpTestUpdate {
	_u.mutation.ClearB()
	return _u
}

// SetBStatus sets the "b_status" field.
func (_u *IcpTestUpdate) SetBStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetBStatus(v)
	return _u
}

// SetNillableBStatus sets the "b_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetBStatus(*v)
	}
	return _u
}

// ClearBStatus clears the value of the "b_status" field.
func (_u *IcpTestUpdate) ClearBStatus() *IcpTestUpdate {
	_u.mutation.ClearBStatus()
	return _u
}

// SetF sets the "f" field.
func (_u *IcpTestUpdate) SetF(v float64) *IcpTestUpdate {
	_u.mutation.ResetF()
	_u.mutation.SetF(v)
	return _u
}

// SetNillableF sets the "f" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableF(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetF(*v)
	}
	return _u
}

// AddF adds value to the "f" field.
func (_u *IcpTestUpdate) AddF(v float64) *IcpTestUpdate {
	_u.mutation.AddF(v)
	return _u
}

// ClearF clears the value of the "f" field.
func (_u *IcpTestUpdate) ClearF() *IcpTestUpdate {
	_u.mutation.ClearF()
	return _u
}

// SetFStatus sets the "f_status" field.
func (_u *IcpTestUpdate) SetFStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetFStatus(v)
	return _u
}

// SetNillableFStatus sets the "f_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableFStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetFStatus(*v)
	}
	return _u
}

// ClearFStatus clears the value of the "f_status" field.
func (_u *IcpTestUpdate) ClearFStatus() *IcpTestUpdate {
	_u.mutation.ClearFStatus()
	return _u
}

// SetLi sets the "li" field.
func (_u *IcpTestUpdate) SetLi(v float64) *IcpTestUpdate {
	_u.mutation.ResetLi()
	_u.mutation.SetLi(v)
	return _u
}

// SetNillableLi sets the "li" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableLi(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetLi(*v)
	}
	return _u
}

// AddLi adds value to the "li" field.
func (_u *IcpTestUpdate) AddLi(v float64) *IcpTestUpdate {
	_u.mutation.AddLi(v)
	return _u
}

// ClearLi clears the value of the "li" field.
func (_u *IcpTestUpdate) ClearLi() *IcpTestUpdate {
	_u.mutation.ClearLi()
	return _u
}

// SetLiStatus sets the "li_status" field.
func (_u *IcpTestUpdate) SetLiStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetLiStatus(v)
	return _u
}

// SetNillableLiStatus sets the "li_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableLiStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetLiStatus(*v)
	}
	return _u
}

// ClearLiStatus clears the value of the "li_status" field.
func (_u *IcpTestUpdate) ClearLiStatus() *IcpTestUpdate {
	_u.mutation.ClearLiStatus()
	return _u
}

// SetSi sets the "si" field.
func (_u *IcpTestUpdate) SetSi(v float64) *IcpTestUpdate {
	_u.mutation.ResetSi()
	_u.mutation.SetSi(v)
	return _u
}

// SetNillableSi sets the "si" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSi(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSi(*v)
	}
	return _u
}

// AddSi adds value to the "si" field.
func (_u *IcpTestUpdate) AddSi(v float64) *IcpTestUpdate {
	_u.mutation.AddSi(v)
	return _u
}

// ClearSi clears the value of the "si" field.
func (_u *IcpTestUpdate) ClearSi() *IcpTestUpdate {
	_u.mutation.ClearSi()
	return _u
}

// SetSiStatus sets the "si_status" field.
func (_u *IcpTestUpdate) SetSiStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSiStatus(v)
	return _u
}

// SetNillableSiStatus sets the "si_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSiStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSiStatus(*v)
	}
	return _u
}

// ClearSiStatus clears the value of the "si_status" field.
func (_u *IcpTestUpdate) ClearSiStatus() *IcpTestUpdate {
	_u.mutation.ClearSiStatus()
	return _u
}

// SetI sets the "i" field.
func (_u *IcpTestUpdate) SetI(v float64) *IcpTestUpdate {
	_u.mutation.ResetI()
	_u.mutation.SetI(v)
	return _u
}

// SetNillableI sets the "i" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableI(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetI(*v)
	}
	return _u
}

// AddI adds value to the "i" field.
func (_u *IcpTestUpdate) AddI(v float64) *IcpTestUpdate {
	_u.mutation.AddI(v)
	return _u
}

// ClearI clears the value of the "i" field.
func (_u *IcpTestUpdate) ClearI() *IcpTestUpdate {
	_u.mutation.ClearI()
	return _u
}

// SetIStatus sets the "i_status" field.
func (_u *IcpTestUpdate) SetIStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetIStatus(v)
	return _u
}

// SetNillableIStatus sets the "i_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableIStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetIStatus(*v)
	}
	return _u
}

// ClearIStatus clears the value of the "i_status" field.
func (_u *IcpTestUpdate) ClearIStatus() *IcpTestUpdate {
	_u.mutation.ClearIStatus()
	return _u
}

// SetBa sets the "ba" field.
func (_u *IcpTestUpdate) SetBa(v float64) *IcpTestUpdate {
	_u.mutation.ResetBa()
	_u.mutation.SetBa(v)
	return _u
}

// SetNillableBa sets the "ba" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBa(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetBa(*v)
	}
	return _u
}

// AddBa adds value to the "ba" field.
func (_u *IcpTestUpdate) AddBa(v float64) *IcpTestUpdate {
	_u.mutation.AddBa(v)
	return _u
}

// ClearBa clears the value of the "ba" field.
func (_u *IcpTestUpdate) ClearBa() *IcpTestUpdate {
	_u.mutation.ClearBa()
	return _u
}

// SetBaStatus sets the "ba_status" field.
func (_u *IcpTestUpdate) SetBaStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetBaStatus(v)
	return _u
}

// SetNillableBaStatus sets the "ba_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBaStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetBaStatus(*v)
	}
	return _u
}

// ClearBaStatus clears the value of the "ba_status" field.
func (_u *IcpTestUpdate) ClearBaStatus() *IcpTestUpdate {
	_u.mutation.ClearBaStatus()
	return _u
}

// SetMo sets the "mo" field.
func (_u *IcpTestUpdate) SetMo(v float64) *IcpTestUpdate {
	_u.mutation.ResetMo()
	_u.mutation.SetMo(v)
	return _u
}

// SetNillableMo sets the "mo" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMo(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetMo(*v)
	}
	return _u
}

// AddMo adds value to the "mo" field.
func (_u *IcpTestUpdate) AddMo(v float64) *IcpTestUpdate {
	_u.mutation.AddMo(v)
	return _u
}

// ClearMo clears the value of the "mo" field.
func (_u *IcpTestUpdate) ClearMo() *IcpTestUpdate {
	_u.mutation.ClearMo()
	return _u
}

// SetMoStatus sets the "mo_status" field.
func (_u *IcpTestUpdate) SetMoStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetMoStatus(v)
	return _u
}

// SetNillableMoStatus sets the "mo_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMoStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetMoStatus(*v)
	}
	return _u
}

// ClearMoStatus clears the value of the "mo_status" field.
func (_u *IcpTestUpdate) ClearMoStatus() *IcpTestUpdate {
	_u.mutation.ClearMoStatus()
	return _u
}

// SetNi sets the "ni" field.
func (_u *IcpTestUpdate) SetNi(v float64) *IcpTestUpdate {
	_u.mutation.ResetNi()
	_u.mutation.SetNi(v)
	return _u
}

// SetNillableNi sets the "ni" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNi(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetNi(*v)
	}
	return _u
}

// AddNi adds value to the "ni" field.
func (_u *IcpTestUpdate) AddNi(v float64) *IcpTestUpdate {
	_u.mutation.AddNi(v)
	return _u
}

// ClearNi clears the value of the "ni" field.
func (_u *IcpTestUpdate) ClearNi() *IcpTestUpdate {
	_u.mutation.ClearNi()
	return _u
}

// SetNiStatus sets the "ni_status" field.
func (_u *IcpTestUpdate) SetNiStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetNiStatus(v)
	return _u
}

// SetNillableNiStatus sets the "ni_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNiStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetNiStatus(*v)
	}
	return _u
}

// ClearNiStatus clears the value of the "ni_status" field.
func (_u *IcpTestUpdate) ClearNiStatus() *IcpTestUpdate {
	_u.mutation.ClearNiStatus()
	return _u
}

// SetMn sets the "mn" field.
func (_u *IcpTestUpdate) SetMn(v float64) *IcpTestUpdate {
	_u.mutation.ResetMn()
	_u.mutation.SetMn(v)
	return _u
}

// SetNillableMn sets the "mn" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMn(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetMn(*v)
	}
	return _u
}

// AddMn adds value to the "mn" field.
func (_u *IcpTestUpdate) AddMn(v float64) *IcpTestUpdate {
	_u.mutation.AddMn(v)
	return _u
}

// ClearMn clears the value of the "mn" field.
func (_u *IcpTestUpdate) ClearMn() *IcpTestUpdate {
	_u.mutation.ClearMn()
	return _u
}

// SetMnStatus sets the "mn_status" field.
func (_u *IcpTestUpdate) SetMnStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetMnStatus(v)
	return _u
}

// SetNillableMnStatus sets the "mn_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableMnStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetMnStatus(*v)
	}
	return _u
}

// ClearMnStatus clears the value of the "mn_status" field.
func (_u *IcpTestUpdate) ClearMnStatus() *IcpTestUpdate {
	_u.mutation.ClearMnStatus()
	return _u
}

// SetAs sets the "as" field.
func (_u *IcpTestUpdate) SetAs(v float64) *IcpTestUpdate {
	_u.mutation.ResetAs()
	_u.mutation.SetAs(v)
	return _u
}

// SetNillableAs sets the "as" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAs(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetAs(*v)
	}
	return _u
}

// AddAs adds value to the "as" field.
func (_u *IcpTestUpdate) AddAs(v float64) *IcpTestUpdate {
	_u.mutation.AddAs(v)
	return _u
}

// ClearAs clears the value of the "as" field.
func (_u *IcpTestUpdate) ClearAs() *IcpTestUpdate {
	_u.mutation.ClearAs()
	return _u
}

// SetAsStatus sets the "as_status" field.
func (_u *IcpTestUpdate) SetAsStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetAsStatus(v)
	return _u
}

// SetNillableAsStatus sets the "as_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAsStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetAsStatus(*v)
	}
	return _u
}

// ClearAsStatus clears the value of the "as_status" field.
func (_u *IcpTestUpdate) ClearAsStatus() *IcpTestUpdate {
	_u.mutation.ClearAsStatus()
	return _u
}

// SetBe sets the "be" field.
func (_u *IcpTestUpdate) SetBe(v float64) *IcpTestUpdate {
	_u.mutation.ResetBe()
	_u.mutation.SetBe(v)
	return _u
}

// SetNillableBe sets the "be" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBe(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetBe(*v)
	}
	return _u
}

// AddBe adds value to the "be" field.
func (_u *IcpTestUpdate) AddBe(v float64) *IcpTestUpdate {
	_u.mutation.AddBe(v)
	return _u
}

// ClearBe clears the value of the "be" field.
func (_u *IcpTestUpdate) ClearBe() *IcpTestUpdate {
	_u.mutation.ClearBe()
	return _u
}

// SetBeStatus sets the "be_status" field.
func (_u *IcpTestUpdate) SetBeStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetBeStatus(v)
	return _u
}

// SetNillableBeStatus sets the "be_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBeStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetBeStatus(*v)
	}
	return _u
}

// ClearBeStatus clears the value of the "be_status" field.
func (_u *IcpTestUpdate) ClearBeStatus() *IcpTestUpdate {
	_u.mutation.ClearBeStatus()
	return _u
}

// SetCr sets the "cr" field.
func (_u *IcpTestUpdate) SetCr(v float64) *IcpTestUpdate {
	_u.mutation.ResetCr()
	_u.mutation.SetCr(v)
	return _u
}

// SetNillableCr sets the "cr" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCr(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCr(*v)
	}
	return _u
}

// AddCr adds value to the "cr" field.
func (_u *IcpTestUpdate) AddCr(v float64) *IcpTestUpdate {
	_u.mutation.AddCr(v)
	return _u
}

// ClearCr clears the value of the "cr" field.
func (_u *IcpTestUpdate) ClearCr() *IcpTestUpdate {
	_u.mutation.ClearCr()
	return _u
}

// SetCrStatus sets the "cr_status" field.
func (_u *IcpTestUpdate) SetCrStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetCrStatus(v)
	return _u
}

// SetNillableCrStatus sets the "cr_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCrStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetCrStatus(*v)
	}
	return _u
}

// ClearCrStatus clears the value of the "cr_status" field.
func (_u *IcpTestUpdate) ClearCrStatus() *IcpTestUpdate {
	_u.mutation.ClearCrStatus()
	return _u
}

// SetCo sets the "co" field.
func (_u *IcpTestUpdate) SetCo(v float64) *IcpTestUpdate {
	_u.mutation.ResetCo()
	_u.mutation.SetCo(v)
	return _u
}

// SetNillableCo sets the "co" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCo(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCo(*v)
	}
	return _u
}

// AddCo adds value to the "co" field.
func (_u *IcpTestUpdate) AddCo(v float64) *IcpTestUpdate {
	_u.mutation.AddCo(v)
	return _u
}

// ClearCo clears the value of the "co" field.
func (_u *IcpTestUpdate) ClearCo() *IcpTestUpdate {
	_u.mutation.ClearCo()
	return _u
}

// SetCoStatus sets the "co_status" field.
func (_u *IcpTestUpdate) SetCoStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetCoStatus(v)
	return _u
}

// SetNillableCoStatus sets the "co_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCoStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetCoStatus(*v)
	}
	return _u
}

// ClearCoStatus clears the value of the "co_status" field.
func (_u *IcpTestUpdate) ClearCoStatus() *IcpTestUpdate {
	_u.mutation.ClearCoStatus()
	return _u
}

// SetFe sets the "fe" field.
func (_u *IcpTestUpdate) SetFe(v float64) *IcpTestUpdate {
	_u.mutation.ResetFe()
	_u.mutation.SetFe(v)
	return _u
}

// SetNillableFe sets the "fe" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableFe(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetFe(*v)
	}
	return _u
}

// AddFe adds value to the "fe" field.
func (_u *IcpTestUpdate) AddFe(v float64) *IcpTestUpdate {
	_u.mutation.AddFe(v)
	return _u
}

// ClearFe clears the value of the "fe" field.
func (_u *IcpTestUpdate) ClearFe() *IcpTestUpdate {
	_u.mutation.ClearFe()
	return _u
}

// SetFeStatus sets the "fe_status" field.
func (_u *IcpTestUpdate) SetFeStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetFeStatus(v)
	return _u
}

// SetNillableFeStatus sets the "fe_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableFeStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetFeStatus(*v)
	}
	return _u
}

// ClearFeStatus clears the value of the "fe_status" field.
func (_u *IcpTestUpdate) ClearFeStatus() *IcpTestUpdate {
	_u.mutation.ClearFeStatus()
	return _u
}

// SetCu sets the "cu" field.
func (_u *IcpTestUpdate) SetCu(v float64) *IcpTestUpdate {
	_u.mutation.ResetCu()
	_u.mutation.SetCu(v)
	return _u
}

// SetNillableCu sets the "cu" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCu(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCu(*v)
	}
	return _u
}

// AddCu adds value to the "cu" field.
func (_u *IcpTestUpdate) AddCu(v float64) *IcpTestUpdate {
	_u.mutation.AddCu(v)
	return _u
}

// ClearCu clears the value of the "cu" field.
func (_u *IcpTestUpdate) ClearCu() *IcpTestUpdate {
	_u.mutation.ClearCu()
	return _u
}

// SetCuStatus sets the "cu_status" field.
func (_u *IcpTestUpdate) SetCuStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetCuStatus(v)
	return _u
}

// SetNillableCuStatus sets the "cu_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCuStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetCuStatus(*v)
	}
	return _u
}

// ClearCuStatus clears the value of the "cu_status" field.
func (_u *IcpTestUpdate) ClearCuStatus() *IcpTestUpdate {
	_u.mutation.ClearCuStatus()
	return _u
}

// SetSe sets the "se" field.
func (_u *IcpTestUpdate) SetSe(v float64) *IcpTestUpdate {
	_u.mutation.ResetSe()
	_u.mutation.SetSe(v)
	return _u
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSe(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSe(*v)
	}
	return _u
}

// AddSe adds value to the "se" field.
func (_u *IcpTestUpdate) AddSe(v float64) *IcpTestUpdate {
	_u.mutation.AddSe(v)
	return _u
}

// ClearSe clears the value of the "se" field.
func (_u *IcpTestUpdate) ClearSe() *IcpTestUpdate {
	_u.mutation.ClearSe()
	return _u
}

// SetSeStatus sets the "se_status" field.
func (_u *IcpTestUpdate) SetSeStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSeStatus(v)
	return _u
}

// SetNillableSeStatus sets the "se_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSeStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSeStatus(*v)
	}
	return _u
}

// ClearSeStatus clears the value of the "se_status" field.
func (_u *IcpTestUpdate) ClearSeStatus() *IcpTestUpdate {
	_u.mutation.ClearSeStatus()
	return _u
}

// SetAg sets the "ag" field.
func (_u *IcpTestUpdate) SetAg(v float64) *IcpTestUpdate {
	_u.mutation.ResetAg()
	_u.mutation.SetAg(v)
	return _u
}

// SetNillableAg sets the "ag" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAg(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetAg(*v)
	}
	return _u
}

// AddAg adds value to the "ag" field.
func (_u *IcpTestUpdate) AddAg(v float64) *IcpTestUpdate {
	_u.mutation.AddAg(v)
	return _u
}

// ClearAg clears the value of the "ag" field.
func (_u *IcpTestUpdate) ClearAg() *IcpTestUpdate {
	_u.mutation.ClearAg()
	return _u
}

// SetAgStatus sets the "ag_status" field.
func (_u *IcpTestUpdate) SetAgStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetAgStatus(v)
	return _u
}

// SetNillableAgStatus sets the "ag_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAgStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetAgStatus(*v)
	}
	return _u
}

// ClearAgStatus clears the value of the "ag_status" field.
func (_u *IcpTestUpdate) ClearAgStatus() *IcpTestUpdate {
	_u.mutation.ClearAgStatus()
	return _u
}

// SetV sets the "v" field.
func (_u *IcpTestUpdate) SetV(v float64) *IcpTestUpdate {
	_u.mutation.ResetV()
	_u.mutation.SetV(v)
	return _u
}

// SetNillableV sets the "v" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableV(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetV(*v)
	}
	return _u
}

// AddV adds value to the "v" field.
func (_u *IcpTestUpdate) AddV(v float64) *IcpTestUpdate {
	_u.mutation.AddV(v)
	return _u
}

// ClearV clears the value of the "v" field.
func (_u *IcpTestUpdate) ClearV() *IcpTestUpdate {
	_u.mutation.ClearV()
	return _u
}

// SetVStatus sets the "v_status" field.
func (_u *IcpTestUpdate) SetVStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetVStatus(v)
	return _u
}

// SetNillableVStatus sets the "v_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableVStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetVStatus(*v)
	}
	return _u
}

// ClearVStatus clears the value of the "v_status" field.
func (_u *IcpTestUpdate) ClearVStatus() *IcpTestUpdate {
	_u.mutation.ClearVStatus()
	return _u
}

// SetZn sets the "zn" field.
func (_u *IcpTestUpdate) SetZn(v float64) *IcpTestUpdate {
	_u.mutation.ResetZn()
	_u.mutation.SetZn(v)
	return _u
}

// SetNillableZn sets the "zn" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableZn(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetZn(*v)
	}
	return _u
}

// AddZn adds value to the "zn" field.
func (_u *IcpTestUpdate) AddZn(v float64) *IcpTestUpdate {
	_u.mutation.AddZn(v)
	return _u
}

// ClearZn clears the value of the "zn" field.
func (_u *IcpTestUpdate) ClearZn() *IcpTestUpdate {
	_u.mutation.ClearZn()
	return _u
}

// SetZnStatus sets the "zn_status" field.
func (_u *IcpTestUpdate) SetZnStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetZnStatus(v)
	return _u
}

// SetNillableZnStatus sets the "zn_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableZnStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetZnStatus(*v)
	}
	return _u
}

// ClearZnStatus clears the value of the "zn_status" field.
func (_u *IcpTestUpdate) ClearZnStatus() *IcpTestUpdate {
	_u.mutation.ClearZnStatus()
	return _u
}

// SetSn sets the "sn" field.
func (_u *IcpTestUpdate) SetSn(v float64) *IcpTestUpdate {
	_u.mutation.ResetSn()
	_u.mutation.SetSn(v)
	return _u
}

// SetNillableSn sets the "sn" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSn(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSn(*v)
	}
	return _u
}

// AddSn adds value to the "sn" field.
func (_u *IcpTestUpdate) AddSn(v float64) *IcpTestUpdate {
	_u.mutation.AddSn(v)
	return _u
}

// ClearSn clears the value of the "sn" field.
func (_u *IcpTestUpdate) ClearSn() *IcpTestUpdate {
	_u.mutation.ClearSn()
	return _u
}

// SetSnStatus sets the "sn_status" field.
func (_u *IcpTestUpdate) SetSnStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSnStatus(v)
	return _u
}

// SetNillableSnStatus sets the "sn_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSnStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSnStatus(*v)
	}
	return _u
}

// ClearSnStatus clears the value of the "sn_status" field.
func (_u *IcpTestUpdate) ClearSnStatus() *IcpTestUpdate {
	_u.mutation.ClearSnStatus()
	return _u
}

// SetNo3 sets the "no3" field.
func (_u *IcpTestUpdate) SetNo3(v float64) *IcpTestUpdate {
	_u.mutation.ResetNo3()
	_u.mutation.SetNo3(v)
	return _u
}

// SetNillableNo3 sets the "no3" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNo3(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetNo3(*v)
	}
	return _u
}

// AddNo3 adds value to the "no3" field.
func (_u *IcpTestUpdate) AddNo3(v float64) *IcpTestUpdate {
	_u.mutation.AddNo3(v)
	return _u
}

// ClearNo3 clears the value of the "no3" field.
func (_u *IcpTestUpdate) ClearNo3() *IcpTestUpdate {
	_u.mutation.ClearNo3()
	return _u
}

// SetNo3Status sets the "no3_status" field.
func (_u *IcpTestUpdate) SetNo3Status(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetNo3Status(v)
	return _u
}

// SetNillableNo3Status sets the "no3_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableNo3Status(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetNo3Status(*v)
	}
	return _u
}

// ClearNo3Status clears the value of the "no3_status" field.
func (_u *IcpTestUpdate) ClearNo3Status() *IcpTestUpdate {
	_u.mutation.ClearNo3Status()
	return _u
}

// SetP sets the "p" field.
func (_u *IcpTestUpdate) SetP(v float64) *IcpTestUpdate {
	_u.mutation.ResetP()
	_u.mutation.SetP(v)
	return _u
}

// SetNillableP sets the "p" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableP(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetP(*v)
	}
	return _u
}

// AddP adds value to the "p" field.
func (_u *IcpTestUpdate) AddP(v float64) *IcpTestUpdate {
	_u.mutation.AddP(v)
	return _u
}

// ClearP clears the value of the "p" field.
func (_u *IcpTestUpdate) ClearP() *IcpTestUpdate {
	_u.mutation.ClearP()
	return _u
}

// SetPStatus sets the "p_status" field.
func (_u *IcpTestUpdate) SetPStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetPStatus(v)
	return _u
}

// SetNillablePStatus sets the "p_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetPStatus(*v)
	}
	return _u
}

// ClearPStatus clears the value of the "p_status" field.
func (_u *IcpTestUpdate) ClearPStatus() *IcpTestUpdate {
	_u.mutation.ClearPStatus()
	return _u
}

// SetPo4 sets the "po4" field.
func (_u *IcpTestUpdate) SetPo4(v float64) *IcpTestUpdate {
	_u.mutation.ResetPo4()
	_u.mutation.SetPo4(v)
	return _u
}

// SetNillablePo4 sets the "po4" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePo4(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetPo4(*v)
	}
	return _u
}

// AddPo4 adds value to the "po4" field.
func (_u *IcpTestUpdate) AddPo4(v float64) *IcpTestUpdate {
	_u.mutation.AddPo4(v)
	return _u
}

// ClearPo4 clears the value of the "po4" field.
func (_u *IcpTestUpdate) ClearPo4() *IcpTestUpdate {
	_u.mutation.ClearPo4()
	return _u
}

// SetPo4Status sets the "po4_status" field.
func (_u *IcpTestUpdate) SetPo4Status(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetPo4Status(v)
	return _u
}

// SetNillablePo4Status sets the "po4_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePo4Status(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetPo4Status(*v)
	}
	return _u
}

// ClearPo4Status clears the value of the "po4_status" field.
func (_u *IcpTestUpdate) ClearPo4Status() *IcpTestUpdate {
	_u.mutation.ClearPo4Status()
	return _u
}

// SetAl sets the "al" field.
func (_u *IcpTestUpdate) SetAl(v float64) *IcpTestUpdate {
	_u.mutation.ResetAl()
	_u.mutation.SetAl(v)
	return _u
}

// SetNillableAl sets the "al" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAl(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetAl(*v)
	}
	return _u
}

// AddAl adds value to the "al" field.
func (_u *IcpTestUpdate) AddAl(v float64) *IcpTestUpdate {
	_u.mutation.AddAl(v)
	return _u
}

// ClearAl clears the value of the "al" field.
func (_u *IcpTestUpdate) ClearAl() *IcpTestUpdate {
	_u.mutation.ClearAl()
	return _u
}

// SetAlStatus sets the "al_status" field.
func (_u *IcpTestUpdate) SetAlStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetAlStatus(v)
	return _u
}

// SetNillableAlStatus sets the "al_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableAlStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetAlStatus(*v)
	}
	return _u
}

// ClearAlStatus clears the value of the "al_status" field.
func (_u *IcpTestUpdate) ClearAlStatus() *IcpTestUpdate {
	_u.mutation.ClearAlStatus()
	return _u
}

// SetSb sets the "sb" field.
func (_u *IcpTestUpdate) SetSb(v float64) *IcpTestUpdate {
	_u.mutation.ResetSb()
	_u.mutation.SetSb(v)
	return _u
}

// SetNillableSb sets the "sb" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSb(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetSb(*v)
	}
	return _u
}

// AddSb adds value to the "sb" field.
func (_u *IcpTestUpdate) AddSb(v float64) *IcpTestUpdate {
	_u.mutation.AddSb(v)
	return _u
}

// ClearSb clears the value of the "sb" field.
func (_u *IcpTestUpdate) ClearSb() *IcpTestUpdate {
	_u.mutation.ClearSb()
	return _u
}

// SetSbStatus sets the "sb_status" field.
func (_u *IcpTestUpdate) SetSbStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetSbStatus(v)
	return _u
}

// SetNillableSbStatus sets the "sb_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableSbStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetSbStatus(*v)
	}
	return _u
}

// ClearSbStatus clears the value of the "sb_status" field.
func (_u *IcpTestUpdate) ClearSbStatus() *IcpTestUpdate {
	_u.mutation.ClearSbStatus()
	return _u
}

// SetBi sets the "bi" field.
func (_u *IcpTestUpdate) SetBi(v float64) *IcpTestUpdate {
	_u.mutation.ResetBi()
	_u.mutation.SetBi(v)
	return _u
}

// SetNillableBi sets the "bi" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBi(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetBi(*v)
	}
	return _u
}

// AddBi adds value to the "bi" field.
func (_u *IcpTestUpdate) AddBi(v float64) *IcpTestUpdate {
	_u.mutation.AddBi(v)
	return _u
}

// ClearBi clears the value of the "bi" field.
func (_u *IcpTestUpdate) ClearBi() *IcpTestUpdate {
	_u.mutation.ClearBi()
	return _u
}

// SetBiStatus sets the "bi_status" field.
func (_u *IcpTestUpdate) SetBiStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetBiStatus(v)
	return _u
}

// SetNillableBiStatus sets the "bi_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableBiStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetBiStatus(*v)
	}
	return _u
}

// ClearBiStatus clears the value of the "bi_status" field.
func (_u *IcpTestUpdate) ClearBiStatus() *IcpTestUpdate {
	_u.mutation.ClearBiStatus()
	return _u
}

// SetPb sets the "pb" field.
func (_u *IcpTestUpdate) SetPb(v float64) *IcpTestUpdate {
	_u.mutation.ResetPb()
	_u.mutation.SetPb(v)
	return _u
}

// SetNillablePb sets the "pb" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePb(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetPb(*v)
	}
	return _u
}

// AddPb adds value to the "pb" field.
func (_u *IcpTestUpdate) AddPb(v float64) *IcpTestUpdate {
	_u.mutation.AddPb(v)
	return _u
}

// ClearPb clears the value of the "pb" field.
func (_u *IcpTestUpdate) ClearPb() *IcpTestUpdate {
	_u.mutation.ClearPb()
	return _u
}

// SetPbStatus sets the "pb_status" field.
func (_u *IcpTestUpdate) SetPbStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetPbStatus(v)
	return _u
}

// SetNillablePbStatus sets the "pb_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePbStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetPbStatus(*v)
	}
	return _u
}

// ClearPbStatus clears the value of the "pb_status" field.
func (_u *IcpTestUpdate) ClearPbStatus() *IcpTestUpdate {
	_u.mutation.ClearPbStatus()
	return _u
}

// SetCd sets the "cd" field.
func (_u *IcpTestUpdate) SetCd(v float64) *IcpTestUpdate {
	_u.mutation.ResetCd()
	_u.mutation.SetCd(v)
	return _u
}

// SetNillableCd sets the "cd" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCd(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetCd(*v)
	}
	return _u
}

// AddCd adds value to the "cd" field.
func (_u *IcpTestUpdate) AddCd(v float64) *IcpTestUpdate {
	_u.mutation.AddCd(v)
	return _u
}

// ClearCd clears the value of the "cd" field.
func (_u *IcpTestUpdate) ClearCd() *IcpTestUpdate {
	_u.mutation.ClearCd()
	return _u
}

// SetCdStatus sets the "cd_status" field.
func (_u *IcpTestUpdate) SetCdStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetCdStatus(v)
	return _u
}

// SetNillableCdStatus sets the "cd_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCdStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetCdStatus(*v)
	}
	return _u
}

// ClearCdStatus clears the value of the "cd_status" field.
func (_u *IcpTestUpdate) ClearCdStatus() *IcpTestUpdate {
	_u.mutation.ClearCdStatus()
	return _u
}

// SetLa sets the "la" field.
func (_u *IcpTestUpdate) SetLa(v float64) *IcpTestUpdate {
	_u.mutation.ResetLa()
	_u.mutation.SetLa(v)
	return _u
}

// SetNillableLa sets the "la" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableLa(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetLa(*v)
	}
	return _u
}

// AddLa adds value to the "la" field.
func (_u *IcpTestUpdate) AddLa(v float64) *IcpTestUpdate {
	_u.mutation.AddLa(v)
	return _u
}

// ClearLa clears the value of the "la" field.
func (_u *IcpTestUpdate) ClearLa() *IcpTestUpdate {
	_u.mutation.ClearLa()
	return _u
}

// SetLaStatus sets the "la_status" field.
func (_u *IcpTestUpdate) SetLaStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetLaStatus(v)
	return _u
}

// SetNillableLaStatus sets the "la_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableLaStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetLaStatus(*v)
	}
	return _u
}

// ClearLaStatus clears the value of the "la_status" field.
func (_u *IcpTestUpdate) ClearLaStatus() *IcpTestUpdate {
	_u.mutation.ClearLaStatus()
	return _u
}

// SetTl sets the "tl" field.
func (_u *IcpTestUpdate) SetTl(v float64) *IcpTestUpdate {
	_u.mutation.ResetTl()
	_u.mutation.SetTl(v)
	return _u
}

// SetNillableTl sets the "tl" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTl(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetTl(*v)
	}
	return _u
}

// AddTl adds value to the "tl" field.
func (_u *IcpTestUpdate) AddTl(v float64) *IcpTestUpdate {
	_u.mutation.AddTl(v)
	return _u
}

// ClearTl clears the value of the "tl" field.
func (_u *IcpTestUpdate) ClearTl() *IcpTestUpdate {
	_u.mutation.ClearTl()
	return _u
}

// SetTlStatus sets the "tl_status" field.
func (_u *IcpTestUpdate) SetTlStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetTlStatus(v)
	return _u
}

// SetNillableTlStatus sets the "tl_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTlStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetTlStatus(*v)
	}
	return _u
}

// ClearTlStatus clears the value of the "tl_status" field.
func (_u *IcpTestUpdate) ClearTlStatus() *IcpTestUpdate {
	_u.mutation.ClearTlStatus()
	return _u
}

// SetTi sets the "ti" field.
func (_u *IcpTestUpdate) SetTi(v float64) *IcpTestUpdate {
	_u.mutation.ResetTi()
	_u.mutation.SetTi(v)
	return _u
}

// SetNillableTi sets the "ti" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTi(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetTi(*v)
	}
	return _u
}

// AddTi adds value to the "ti" field.
func (_u *IcpTestUpdate) AddTi(v float64) *IcpTestUpdate {
	_u.mutation.AddTi(v)
	return _u
}

// ClearTi clears the value of the "ti" field.
func (_u *IcpTestUpdate) ClearTi() *IcpTestUpdate {
	_u.mutation.ClearTi()
	return _u
}

// SetTiStatus sets the "ti_status" field.
func (_u *IcpTestUpdate) SetTiStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetTiStatus(v)
	return _u
}

// SetNillableTiStatus sets the "ti_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableTiStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetTiStatus(*v)
	}
	return _u
}

// ClearTiStatus clears the value of the "ti_status" field.
func (_u *IcpTestUpdate) ClearTiStatus() *IcpTestUpdate {
	_u.mutation.ClearTiStatus()
	return _u
}

// SetW sets the "w" field.
func (_u *IcpTestUpdate) SetW(v float64) *IcpTestUpdate {
	_u.mutation.ResetW()
	_u.mutation.SetW(v)
	return _u
}

// SetNillableW sets the "w" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableW(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetW(*v)
	}
	return _u
}

// AddW adds value to the "w" field.
func (_u *IcpTestUpdate) AddW(v float64) *IcpTestUpdate {
	_u.mutation.AddW(v)
	return _u
}

// ClearW clears the value of the "w" field.
func (_u *IcpTestUpdate) ClearW() *IcpTestUpdate {
	_u.mutation.ClearW()
	return _u
}

// SetWStatus sets the "w_status" field.
func (_u *IcpTestUpdate) SetWStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetWStatus(v)
	return _u
}

// SetNillableWStatus sets the "w_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableWStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetWStatus(*v)
	}
	return _u
}

// ClearWStatus clears the value of the "w_status" field.
func (_u *IcpTestUpdate) ClearWStatus() *IcpTestUpdate {
	_u.mutation.ClearWStatus()
	return _u
}

// SetHg sets the "hg" field.
func (_u *IcpTestUpdate) SetHg(v float64) *IcpTestUpdate {
	_u.mutation.ResetHg()
	_u.mutation.SetHg(v)
	return _u
}

// SetNillableHg sets the "hg" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableHg(v *float64) *IcpTestUpdate {
	if v != nil {
		_u.SetHg(*v)
	}
	return _u
}

// AddHg adds value to the "hg" field.
func (_u *IcpTestUpdate) AddHg(v float64) *IcpTestUpdate {
	_u.mutation.AddHg(v)
	return _u
}

// ClearHg clears the value of the "hg" field.
func (_u *IcpTestUpdate) ClearHg() *IcpTestUpdate {
	_u.mutation.ClearHg()
	return _u
}

// SetHgStatus sets the "hg_status" field.
func (_u *IcpTestUpdate) SetHgStatus(v constants.ElementStatus) *IcpTestUpdate {
	_u.mutation.SetHgStatus(v)
	return _u
}

// SetNillableHgStatus sets the "hg_status" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableHgStatus(v *constants.ElementStatus) *IcpTestUpdate {
	if v != nil {
		_u.SetHgStatus(*v)
	}
	return _u
}

// ClearHgStatus clears the value of the "hg_status" field.
func (_u *IcpTestUpdate) ClearHgStatus() *IcpTestUpdate {
	_u.mutation.ClearHgStatus()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *IcpTestUpdate) SetRecommendations(v []string) *IcpTestUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *IcpTestUpdate) AppendRecommendations(v []string) *IcpTestUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *IcpTestUpdate) ClearRecommendations() *IcpTestUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDosingInstructions sets the "dosing_instructions" field.
func (_u *IcpTestUpdate) SetDosingInstructions(v string) *IcpTestUpdate {
	_u.mutation.SetDosingInstructions(v)
	return _u
}

// SetNillableDosingInstructions sets the "dosing_instructions" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableDosingInstructions(v *string) *IcpTestUpdate {
	if v != nil {
		_u.SetDosingInstructions(*v)
	}
	return _u
}

// ClearDosingInstructions clears the value of the "dosing_instructions" field.
func (_u *IcpTestUpdate) ClearDosingInstructions() *IcpTestUpdate {
	_u.mutation.ClearDosingInstructions()
	return _u
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *IcpTestUpdate) SetPdfFilename(v string) *IcpTestUpdate {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePdfFilename(v *string) *IcpTestUpdate {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// ClearPdfFilename clears the value of the "pdf_filename" field.
func (_u *IcpTestUpdate) ClearPdfFilename() *IcpTestUpdate {
	_u.mutation.ClearPdfFilename()
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *IcpTestUpdate) SetPdfPath(v string) *IcpTestUpdate {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillablePdfPath(v *string) *IcpTestUpdate {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (_u *IcpTestUpdate) ClearPdfPath() *IcpTestUpdate {
	_u.mutation.ClearPdfPath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IcpTestUpdate) SetCreatedAt(v time.Time) *IcpTestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IcpTestUpdate) SetNillableCreatedAt(v *time.Time) *IcpTestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IcpTestUpdate) SetUpdatedAt(v time.Time) *IcpTestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTank sets the "tank" edge to the Tank entity.
func (_u *IcpTestUpdate) SetTank(v *Tank) *IcpTestUpdate {
	return _u.SetTankID(v.ID)
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_u *IcpTestUpdate) SetFile(v *ReportFile) *IcpTestUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the IcpTestMutation object of the builder.
func (_u *IcpTestUpdate) Mutation() *IcpTestMutation {
	return _u.mutation
}

// ClearTank clears the "tank" edge to the Tank entity.
func (_u *IcpTestUpdate) ClearTank() *IcpTestUpdate {
	_u.mutation.ClearTank()
	return _u
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (_u *IcpTestUpdate) ClearFile() *IcpTestUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IcpTestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IcpTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IcpTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IcpTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IcpTestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := icptest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IcpTestUpdate) check() error {
	if v, ok := _u.mutation.LabName(); ok {
		if err := icptest.LabNameValidator(v); err != nil {
			return &ValidationError{Name: "lab_name", err: fmt.Errorf(`ent: validator failed for field "IcpTest.lab_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaterType(); ok {
		if err := icptest.WaterTypeValidator(string(v)); err != nil {
			return &ValidationError{Name: "water_type", err: fmt.Errorf(`ent: validator failed for field "IcpTest.water_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalinityStatus(); ok {
		if err := icptest.SalinityStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "salinity_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.salinity_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KhStatus(); ok {
		if err := icptest.KhStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "kh_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.kh_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClStatus(); ok {
		if err := icptest.ClStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cl_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NaStatus(); ok {
		if err := icptest.NaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "na_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.na_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MgStatus(); ok {
		if err := icptest.MgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mg_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SStatus(); ok {
		if err := icptest.SStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "s_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.s_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaStatus(); ok {
		if err := icptest.CaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ca_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ca_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KStatus(); ok {
		if err := icptest.KStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "k_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.k_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrStatus(); ok {
		if err := icptest.BrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "br_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.br_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SrStatus(); ok {
		if err := icptest.SrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BStatus(); ok {
		if err := icptest.BStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "b_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.b_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FStatus(); ok {
		if err := icptest.FStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "f_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.f_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LiStatus(); ok {
		if err := icptest.LiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "li_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.li_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiStatus(); ok {
		if err := icptest.SiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "si_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.si_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IStatus(); ok {
		if err := icptest.IStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "i_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.i_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaStatus(); ok {
		if err := icptest.BaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ba_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ba_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MoStatus(); ok {
		if err := icptest.MoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mo_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mo_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NiStatus(); ok {
		if err := icptest.NiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ni_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ni_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MnStatus(); ok {
		if err := icptest.MnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AsStatus(); ok {
		if err := icptest.AsStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "as_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.as_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BeStatus(); ok {
		if err := icptest.BeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "be_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.be_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CrStatus(); ok {
		if err := icptest.CrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoStatus(); ok {
		if err := icptest.CoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "co_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.co_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeStatus(); ok {
		if err := icptest.FeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "fe_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.fe_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CuStatus(); ok {
		if err := icptest.CuStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cu_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cu_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeStatus(); ok {
		if err := icptest.SeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "se_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.se_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgStatus(); ok {
		if err := icptest.AgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ag_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ag_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VStatus(); ok {
		if err := icptest.VStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "v_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.v_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZnStatus(); ok {
		if err := icptest.ZnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "zn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.zn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SnStatus(); ok {
		if err := icptest.SnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.No3Status(); ok {
		if err := icptest.No3StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "no3_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.no3_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PStatus(); ok {
		if err := icptest.PStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "p_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.p_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Po4Status(); ok {
		if err := icptest.Po4StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "po4_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.po4_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlStatus(); ok {
		if err := icptest.AlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "al_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.al_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SbStatus(); ok {
		if err := icptest.SbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sb_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BiStatus(); ok {
		if err := icptest.BiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "bi_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.bi_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PbStatus(); ok {
		if err := icptest.PbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "pb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.pb_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CdStatus(); ok {
		if err := icptest.CdStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cd_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cd_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LaStatus(); ok {
		if err := icptest.LaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "la_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.la_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TlStatus(); ok {
		if err := icptest.TlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "tl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.tl_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiStatus(); ok {
		if err := icptest.TiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ti_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ti_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WStatus(); ok {
		if err := icptest.WStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "w_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.w_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HgStatus(); ok {
		if err := icptest.HgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "hg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.hg_status": %w`, err)}
		}
	}
	if _u.mutation.TankCleared() && len(_u.mutation.TankIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IcpTest.tank"`)
	}
	return nil
}

func (_u *IcpTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(icptest.Table, icptest.Columns, sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(icptest.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LabName(); ok {
		_spec.SetField(icptest.FieldLabName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(icptest.FieldTestID, field.TypeString, value)
	}
	if _u.mutation.TestIDCleared() {
		_spec.ClearField(icptest.FieldTestID, field.TypeString)
	}
	if value, ok := _u.mutation.WaterType(); ok {
		_spec.SetField(icptest.FieldWaterType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleDate(); ok {
		_spec.SetField(icptest.FieldSampleDate, field.TypeTime, value)
	}
	if _u.mutation.SampleDateCleared() {
		_spec.ClearField(icptest.FieldSampleDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReceivedDate(); ok {
		_spec.SetField(icptest.FieldReceivedDate, field.TypeTime, value)
	}
	if _u.mutation.ReceivedDateCleared() {
		_spec.ClearField(icptest.FieldReceivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EvaluatedDate(); ok {
		_spec.SetField(icptest.FieldEvaluatedDate, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedDateCleared() {
		_spec.ClearField(icptest.FieldEvaluatedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ScoreMajorElements(); ok {
		_spec.SetField(icptest.FieldScoreMajorElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreMajorElements(); ok {
		_spec.AddField(icptest.FieldScoreMajorElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreMajorElementsCleared() {
		_spec.ClearField(icptest.FieldScoreMajorElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreMinorElements(); ok {
		_spec.SetField(icptest.FieldScoreMinorElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreMinorElements(); ok {
		_spec.AddField(icptest.FieldScoreMinorElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreMinorElementsCleared() {
		_spec.ClearField(icptest.FieldScoreMinorElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScorePollutants(); ok {
		_spec.SetField(icptest.FieldScorePollutants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePollutants(); ok {
		_spec.AddField(icptest.FieldScorePollutants, field.TypeInt, value)
	}
	if _u.mutation.ScorePollutantsCleared() {
		_spec.ClearField(icptest.FieldScorePollutants, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreBaseElements(); ok {
		_spec.SetField(icptest.FieldScoreBaseElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreBaseElements(); ok {
		_spec.AddField(icptest.FieldScoreBaseElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreBaseElementsCleared() {
		_spec.ClearField(icptest.FieldScoreBaseElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreOverall(); ok {
		_spec.SetField(icptest.FieldScoreOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreOverall(); ok {
		_spec.AddField(icptest.FieldScoreOverall, field.TypeInt, value)
	}
	if _u.mutation.ScoreOverallCleared() {
		_spec.ClearField(icptest.FieldScoreOverall, field.TypeInt)
	}
	if value, ok := _u.mutation.Salinity(); ok {
		_spec.SetField(icptest.FieldSalinity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalinity(); ok {
		_spec.AddField(icptest.FieldSalinity, field.TypeFloat64, value)
	}
	if _u.mutation.SalinityCleared() {
		_spec.ClearField(icptest.FieldSalinity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SalinityStatus(); ok {
		_spec.SetField(icptest.FieldSalinityStatus, field.TypeString, value)
	}
	if _u.mutation.SalinityStatusCleared() {
		_spec.ClearField(icptest.FieldSalinityStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Kh(); ok {
		_spec.SetField(icptest.FieldKh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKh(); ok {
		_spec.AddField(icptest.FieldKh, field.TypeFloat64, value)
	}
	if _u.mutation.KhCleared() {
		_spec.ClearField(icptest.FieldKh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.KhStatus(); ok {
		_spec.SetField(icptest.FieldKhStatus, field.TypeString, value)
	}
	if _u.mutation.KhStatusCleared() {
		_spec.ClearField(icptest.FieldKhStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cl(); ok {
		_spec.SetField(icptest.FieldCl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCl(); ok {
		_spec.AddField(icptest.FieldCl, field.TypeFloat64, value)
	}
	if _u.mutation.ClCleared() {
		_spec.ClearField(icptest.FieldCl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClStatus(); ok {
		_spec.SetField(icptest.FieldClStatus, field.TypeString, value)
	}
	if _u.mutation.ClStatusCleared() {
		_spec.ClearField(icptest.FieldClStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Na(); ok {
		_spec.SetField(icptest.FieldNa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNa(); ok {
		_spec.AddField(icptest.FieldNa, field.TypeFloat64, value)
	}
	if _u.mutation.NaCleared() {
		_spec.ClearField(icptest.FieldNa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NaStatus(); ok {
		_spec.SetField(icptest.FieldNaStatus, field.TypeString, value)
	}
	if _u.mutation.NaStatusCleared() {
		_spec.ClearField(icptest.FieldNaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mg(); ok {
		_spec.SetField(icptest.FieldMg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMg(); ok {
		_spec.AddField(icptest.FieldMg, field.TypeFloat64, value)
	}
	if _u.mutation.MgCleared() {
		_spec.ClearField(icptest.FieldMg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MgStatus(); ok {
		_spec.SetField(icptest.FieldMgStatus, field.TypeString, value)
	}
	if _u.mutation.MgStatusCleared() {
		_spec.ClearField(icptest.FieldMgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.S(); ok {
		_spec.SetField(icptest.FieldS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedS(); ok {
		_spec.AddField(icptest.FieldS, field.TypeFloat64, value)
	}
	if _u.mutation.SCleared() {
		_spec.ClearField(icptest.FieldS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SStatus(); ok {
		_spec.SetField(icptest.FieldSStatus, field.TypeString, value)
	}
	if _u.mutation.SStatusCleared() {
		_spec.ClearField(icptest.FieldSStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ca(); ok {
		_spec.SetField(icptest.FieldCa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCa(); ok {
		_spec.AddField(icptest.FieldCa, field.TypeFloat64, value)
	}
	if _u.mutation.CaCleared() {
		_spec.ClearField(icptest.FieldCa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CaStatus(); ok {
		_spec.SetField(icptest.FieldCaStatus, field.TypeString, value)
	}
	if _u.mutation.CaStatusCleared() {
		_spec.ClearField(icptest.FieldCaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.K(); ok {
		_spec.SetField(icptest.FieldK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedK(); ok {
		_spec.AddField(icptest.FieldK, field.TypeFloat64, value)
	}
	if _u.mutation.KCleared() {
		_spec.ClearField(icptest.FieldK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.KStatus(); ok {
		_spec.SetField(icptest.FieldKStatus, field.TypeString, value)
	}
	if _u.mutation.KStatusCleared() {
		_spec.ClearField(icptest.FieldKStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Br(); ok {
		_spec.SetField(icptest.FieldBr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBr(); ok {
		_spec.AddField(icptest.FieldBr, field.TypeFloat64, value)
	}
	if _u.mutation.BrCleared() {
		_spec.ClearField(icptest.FieldBr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BrStatus(); ok {
		_spec.SetField(icptest.FieldBrStatus, field.TypeString, value)
	}
	if _u.mutation.BrStatusCleared() {
		_spec.ClearField(icptest.FieldBrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sr(); ok {
		_spec.SetField(icptest.FieldSr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSr(); ok {
		_spec.AddField(icptest.FieldSr, field.TypeFloat64, value)
	}
	if _u.mutation.SrCleared() {
		_spec.ClearField(icptest.FieldSr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SrStatus(); ok {
		_spec.SetField(icptest.FieldSrStatus, field.TypeString, value)
	}
	if _u.mutation.SrStatusCleared() {
		_spec.ClearField(icptest.FieldSrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.B(); ok {
		_spec.SetField(icptest.FieldB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedB(); ok {
		_spec.AddField(icptest.FieldB, field.TypeFloat64, value)
	}
	if _u.mutation.BCleared() {
		_spec.ClearField(icptest.FieldB, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BStatus(); ok {
		_spec.SetField(icptest.FieldBStatus, field.TypeString, value)
	}
	if _u.mutation.BStatusCleared() {
		_spec.ClearField(icptest.FieldBStatus, field.TypeString)
	}
	if value, ok := _u.mutation.F(); ok {
		_spec.SetField(icptest.FieldF, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedF(); ok {
		_spec.AddField(icptest.FieldF, field.TypeFloat64, value)
	}
	if _u.mutation.FCleared() {
		_spec.ClearField(icptest.FieldF, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FStatus(); ok {
		_spec.SetField(icptest.FieldFStatus, field.TypeString, value)
	}
	if _u.mutation.FStatusCleared() {
		_spec.ClearField(icptest.FieldFStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Li(); ok {
		_spec.SetField(icptest.FieldLi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLi(); ok {
		_spec.AddField(icptest.FieldLi, field.TypeFloat64, value)
	}
	if _u.mutation.LiCleared() {
		_spec.ClearField(icptest.FieldLi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LiStatus(); ok {
		_spec.SetField(icptest.FieldLiStatus, field.TypeString, value)
	}
	if _u.mutation.LiStatusCleared() {
		_spec.ClearField(icptest.FieldLiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Si(); ok {
		_spec.SetField(icptest.FieldSi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSi(); ok {
		_spec.AddField(icptest.FieldSi, field.TypeFloat64, value)
	}
	if _u.mutation.SiCleared() {
		_spec.ClearField(icptest.FieldSi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SiStatus(); ok {
		_spec.SetField(icptest.FieldSiStatus, field.TypeString, value)
	}
	if _u.mutation.SiStatusCleared() {
		_spec.ClearField(icptest.FieldSiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.I(); ok {
		_spec.SetField(icptest.FieldI, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedI(); ok {
		_spec.AddField(icptest.FieldI, field.TypeFloat64, value)
	}
	if _u.mutation.ICleared() {
		_spec.ClearField(icptest.FieldI, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IStatus(); ok {
		_spec.SetField(icptest.FieldIStatus, field.TypeString, value)
	}
	if _u.mutation.IStatusCleared() {
		_spec.ClearField(icptest.FieldIStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ba(); ok {
		_spec.SetField(icptest.FieldBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBa(); ok {
		_spec.AddField(icptest.FieldBa, field.TypeFloat64, value)
	}
	if _u.mutation.BaCleared() {
		_spec.ClearField(icptest.FieldBa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaStatus(); ok {
		_spec.SetField(icptest.FieldBaStatus, field.TypeString, value)
	}
	if _u.mutation.BaStatusCleared() {
		_spec.ClearField(icptest.FieldBaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mo(); ok {
		_spec.SetField(icptest.FieldMo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMo(); ok {
		_spec.AddField(icptest.FieldMo, field.TypeFloat64, value)
	}
	if _u.mutation.MoCleared() {
		_spec.ClearField(icptest.FieldMo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoStatus(); ok {
		_spec.SetField(icptest.FieldMoStatus, field.TypeString, value)
	}
	if _u.mutation.MoStatusCleared() {
		_spec.ClearField(icptest.FieldMoStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ni(); ok {
		_spec.SetField(icptest.FieldNi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNi(); ok {
		_spec.AddField(icptest.FieldNi, field.TypeFloat64, value)
	}
	if _u.mutation.NiCleared() {
		_spec.ClearField(icptest.FieldNi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NiStatus(); ok {
		_spec.SetField(icptest.FieldNiStatus, field.TypeString, value)
	}
	if _u.mutation.NiStatusCleared() {
		_spec.ClearField(icptest.FieldNiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mn(); ok {
		_spec.SetField(icptest.FieldMn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMn(); ok {
		_spec.AddField(icptest.FieldMn, field.TypeFloat64, value)
	}
	if _u.mutation.MnCleared() {
		_spec.ClearField(icptest.FieldMn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MnStatus(); ok {
		_spec.SetField(icptest.FieldMnStatus, field.TypeString, value)
	}
	if _u.mutation.MnStatusCleared() {
		_spec.ClearField(icptest.FieldMnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.As(); ok {
		_spec.SetField(icptest.FieldAs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAs(); ok {
		_spec.AddField(icptest.FieldAs, field.TypeFloat64, value)
	}
	if _u.mutation.AsCleared() {
		_spec.ClearField(icptest.FieldAs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AsStatus(); ok {
		_spec.SetField(icptest.FieldAsStatus, field.TypeString, value)
	}
	if _u.mutation.AsStatusCleared() {
		_spec.ClearField(icptest.FieldAsStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Be(); ok {
		_spec.SetField(icptest.FieldBe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBe(); ok {
		_spec.AddField(icptest.FieldBe, field.TypeFloat64, value)
	}
	if _u.mutation.BeCleared() {
		_spec.ClearField(icptest.FieldBe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BeStatus(); ok {
		_spec.SetField(icptest.FieldBeStatus, field.TypeString, value)
	}
	if _u.mutation.BeStatusCleared() {
		_spec.ClearField(icptest.FieldBeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cr(); ok {
		_spec.SetField(icptest.FieldCr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCr(); ok {
		_spec.AddField(icptest.FieldCr, field.TypeFloat64, value)
	}
	if _u.mutation.CrCleared() {
		_spec.ClearField(icptest.FieldCr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CrStatus(); ok {
		_spec.SetField(icptest.FieldCrStatus, field.TypeString, value)
	}
	if _u.mutation.CrStatusCleared() {
		_spec.ClearField(icptest.FieldCrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Co(); ok {
		_spec.SetField(icptest.FieldCo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCo(); ok {
		_spec.AddField(icptest.FieldCo, field.TypeFloat64, value)
	}
	if _u.mutation.CoCleared() {
		_spec.ClearField(icptest.FieldCo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoStatus(); ok {
		_spec.SetField(icptest.FieldCoStatus, field.TypeString, value)
	}
	if _u.mutation.CoStatusCleared() {
		_spec.ClearField(icptest.FieldCoStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Fe(); ok {
		_spec.SetField(icptest.FieldFe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFe(); ok {
		_spec.AddField(icptest.FieldFe, field.TypeFloat64, value)
	}
	if _u.mutation.FeCleared() {
		_spec.ClearField(icptest.FieldFe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeStatus(); ok {
		_spec.SetField(icptest.FieldFeStatus, field.TypeString, value)
	}
	if _u.mutation.FeStatusCleared() {
		_spec.ClearField(icptest.FieldFeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cu(); ok {
		_spec.SetField(icptest.FieldCu, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCu(); ok {
		_spec.AddField(icptest.FieldCu, field.TypeFloat64, value)
	}
	if _u.mutation.CuCleared() {
		_spec.ClearField(icptest.FieldCu, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CuStatus(); ok {
		_spec.SetField(icptest.FieldCuStatus, field.TypeString, value)
	}
	if _u.mutation.CuStatusCleared() {
		_spec.ClearField(icptest.FieldCuStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Se(); ok {
		_spec.SetField(icptest.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSe(); ok {
		_spec.AddField(icptest.FieldSe, field.TypeFloat64, value)
	}
	if _u.mutation.SeCleared() {
		_spec.ClearField(icptest.FieldSe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SeStatus(); ok {
		_spec.SetField(icptest.FieldSeStatus, field.TypeString, value)
	}
	if _u.mutation.SeStatusCleared() {
		_spec.ClearField(icptest.FieldSeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ag(); ok {
		_spec.SetField(icptest.FieldAg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAg(); ok {
		_spec.AddField(icptest.FieldAg, field.TypeFloat64, value)
	}
	if _u.mutation.AgCleared() {
		_spec.ClearField(icptest.FieldAg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AgStatus(); ok {
		_spec.SetField(icptest.FieldAgStatus, field.TypeString, value)
	}
	if _u.mutation.AgStatusCleared() {
		_spec.ClearField(icptest.FieldAgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.V(); ok {
		_spec.SetField(icptest.FieldV, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedV(); ok {
		_spec.AddField(icptest.FieldV, field.TypeFloat64, value)
	}
	if _u.mutation.VCleared() {
		_spec.ClearField(icptest.FieldV, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VStatus(); ok {
		_spec.SetField(icptest.FieldVStatus, field.TypeString, value)
	}
	if _u.mutation.VStatusCleared() {
		_spec.ClearField(icptest.FieldVStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Zn(); ok {
		_spec.SetField(icptest.FieldZn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZn(); ok {
		_spec.AddField(icptest.FieldZn, field.TypeFloat64, value)
	}
	if _u.mutation.ZnCleared() {
		_spec.ClearField(icptest.FieldZn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ZnStatus(); ok {
		_spec.SetField(icptest.FieldZnStatus, field.TypeString, value)
	}
	if _u.mutation.ZnStatusCleared() {
		_spec.ClearField(icptest.FieldZnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sn(); ok {
		_spec.SetField(icptest.FieldSn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSn(); ok {
		_spec.AddField(icptest.FieldSn, field.TypeFloat64, value)
	}
	if _u.mutation.SnCleared() {
		_spec.ClearField(icptest.FieldSn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SnStatus(); ok {
		_spec.SetField(icptest.FieldSnStatus, field.TypeString, value)
	}
	if _u.mutation.SnStatusCleared() {
		_spec.ClearField(icptest.FieldSnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.No3(); ok {
		_spec.SetField(icptest.FieldNo3, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNo3(); ok {
		_spec.AddField(icptest.FieldNo3, field.TypeFloat64, value)
	}
	if _u.mutation.No3Cleared() {
		_spec.ClearField(icptest.FieldNo3, field.TypeFloat64)
	}
	if value, ok := _u.mutation.No3Status(); ok {
		_spec.SetField(icptest.FieldNo3Status, field.TypeString, value)
	}
	if _u.mutation.No3StatusCleared() {
		_spec.ClearField(icptest.FieldNo3Status, field.TypeString)
	}
	if value, ok := _u.mutation.P(); ok {
		_spec.SetField(icptest.FieldP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP(); ok {
		_spec.AddField(icptest.FieldP, field.TypeFloat64, value)
	}
	if _u.mutation.PCleared() {
		_spec.ClearField(icptest.FieldP, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PStatus(); ok {
		_spec.SetField(icptest.FieldPStatus, field.TypeString, value)
	}
	if _u.mutation.PStatusCleared() {
		_spec.ClearField(icptest.FieldPStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Po4(); ok {
		_spec.SetField(icptest.FieldPo4, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPo4(); ok {
		_spec.AddField(icptest.FieldPo4, field.TypeFloat64, value)
	}
	if _u.mutation.Po4Cleared() {
		_spec.ClearField(icptest.FieldPo4, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Po4Status(); ok {
		_spec.SetField(icptest.FieldPo4Status, field.TypeString, value)
	}
	if _u.mutation.Po4StatusCleared() {
		_spec.ClearField(icptest.FieldPo4Status, field.TypeString)
	}
	if value, ok := _u.mutation.Al(); ok {
		_spec.SetField(icptest.FieldAl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAl(); ok {
		_spec.AddField(icptest.FieldAl, field.TypeFloat64, value)
	}
	if _u.mutation.AlCleared() {
		_spec.ClearField(icptest.FieldAl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AlStatus(); ok {
		_spec.SetField(icptest.FieldAlStatus, field.TypeString, value)
	}
	if _u.mutation.AlStatusCleared() {
		_spec.ClearField(icptest.FieldAlStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sb(); ok {
		_spec.SetField(icptest.FieldSb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSb(); ok {
		_spec.AddField(icptest.FieldSb, field.TypeFloat64, value)
	}
	if _u.mutation.SbCleared() {
		_spec.ClearField(icptest.FieldSb, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SbStatus(); ok {
		_spec.SetField(icptest.FieldSbStatus, field.TypeString, value)
	}
	if _u.mutation.SbStatusCleared() {
		_spec.ClearField(icptest.FieldSbStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Bi(); ok {
		_spec.SetField(icptest.FieldBi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBi(); ok {
		_spec.AddField(icptest.FieldBi, field.TypeFloat64, value)
	}
	if _u.mutation.BiCleared() {
		_spec.ClearField(icptest.FieldBi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BiStatus(); ok {
		_spec.SetField(icptest.FieldBiStatus, field.TypeString, value)
	}
	if _u.mutation.BiStatusCleared() {
		_spec.ClearField(icptest.FieldBiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Pb(); ok {
		_spec.SetField(icptest.FieldPb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPb(); ok {
		_spec.AddField(icptest.FieldPb, field.TypeFloat64, value)
	}
	if _u.mutation.PbCleared() {
		_spec.ClearField(icptest.FieldPb, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PbStatus(); ok {
		_spec.SetField(icptest.FieldPbStatus, field.TypeString, value)
	}
	if _u.mutation.PbStatusCleared() {
		_spec.ClearField(icptest.FieldPbStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cd(); ok {
		_spec.SetField(icptest.FieldCd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCd(); ok {
		_spec.AddField(icptest.FieldCd, field.TypeFloat64, value)
	}
	if _u.mutation.CdCleared() {
		_spec.ClearField(icptest.FieldCd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CdStatus(); ok {
		_spec.SetField(icptest.FieldCdStatus, field.TypeString, value)
	}
	if _u.mutation.CdStatusCleared() {
		_spec.ClearField(icptest.FieldCdStatus, field.TypeString)
	}
	if value, ok := _u.mutation.La(); ok {
		_spec.SetField(icptest.FieldLa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLa(); ok {
		_spec.AddField(icptest.FieldLa, field.TypeFloat64, value)
	}
	if _u.mutation.LaCleared() {
		_spec.ClearField(icptest.FieldLa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaStatus(); ok {
		_spec.SetField(icptest.FieldLaStatus, field.TypeString, value)
	}
	if _u.mutation.LaStatusCleared() {
		_spec.ClearField(icptest.FieldLaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Tl(); ok {
		_spec.SetField(icptest.FieldTl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTl(); ok {
		_spec.AddField(icptest.FieldTl, field.TypeFloat64, value)
	}
	if _u.mutation.TlCleared() {
		_spec.ClearField(icptest.FieldTl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TlStatus(); ok {
		_spec.SetField(icptest.FieldTlStatus, field.TypeString, value)
	}
	if _u.mutation.TlStatusCleared() {
		_spec.ClearField(icptest.FieldTlStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ti(); ok {
		_spec.SetField(icptest.FieldTi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTi(); ok {
		_spec.AddField(icptest.FieldTi, field.TypeFloat64, value)
	}
	if _u.mutation.TiCleared() {
		_spec.ClearField(icptest.FieldTi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TiStatus(); ok {
		_spec.SetField(icptest.FieldTiStatus, field.TypeString, value)
	}
	if _u.mutation.TiStatusCleared() {
		_spec.ClearField(icptest.FieldTiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.W(); ok {
		_spec.SetField(icptest.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedW(); ok {
		_spec.AddField(icptest.FieldW, field.TypeFloat64, value)
	}
	if _u.mutation.WCleared() {
		_spec.ClearField(icptest.FieldW, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WStatus(); ok {
		_spec.SetField(icptest.FieldWStatus, field.TypeString, value)
	}
	if _u.mutation.WStatusCleared() {
		_spec.ClearField(icptest.FieldWStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Hg(); ok {
		_spec.SetField(icptest.FieldHg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHg(); ok {
		_spec.AddField(icptest.FieldHg, field.TypeFloat64, value)
	}
	if _u.mutation.HgCleared() {
		_spec.ClearField(icptest.FieldHg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HgStatus(); ok {
		_spec.SetField(icptest.FieldHgStatus, field.TypeString, value)
	}
	if _u.mutation.HgStatusCleared() {
		_spec.ClearField(icptest.FieldHgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(icptest.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, icptest.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(icptest.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.DosingInstructions(); ok {
		_spec.SetField(icptest.FieldDosingInstructions, field.TypeString, value)
	}
	if _u.mutation.DosingInstructionsCleared() {
		_spec.ClearField(icptest.FieldDosingInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(icptest.FieldPdfFilename, field.TypeString, value)
	}
	if _u.mutation.PdfFilenameCleared() {
		_spec.ClearField(icptest.FieldPdfFilename, field.TypeString)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(icptest.FieldPdfPath, field.TypeString, value)
	}
	if _u.mutation.PdfPathCleared() {
		_spec.ClearField(icptest.FieldPdfPath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(icptest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(icptest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TankCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TankIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{icptest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IcpTestUpdateOne is the builder for updating a single IcpTest entity.
type IcpTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IcpTestMutation
}

// SetTankID sets the "tank_id" field.
func (_u *IcpTestUpdateOne) SetTankID(v uuid.UUID) *IcpTestUpdateOne {
	_u.mutation.SetTankID(v)
	return _u
}

// SetNillableTankID sets the "tank_id" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTankID(v *uuid.UUID) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTankID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *IcpTestUpdateOne) SetFileID(v uuid.UUID) *IcpTestUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableFileID(v *uuid.UUID) *IcpTestUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *IcpTestUpdateOne) ClearFileID() *IcpTestUpdateOne {
	_u.mutation.ClearFileID()
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *IcpTestUpdateOne) SetTestDate(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTestDate(v *time.Time) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetLabName sets the "lab_name" field.
func (_u *IcpTestUpdateOne) SetLabName(v string) *IcpTestUpdateOne {
	_u.mutation.SetLabName(v)
	return _u
}

// SetNillableLabName sets the "lab_name" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableLabName(v *string) *IcpTestUpdateOne {
	if v != nil {
		_u.SetLabName(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *IcpTestUpdateOne) SetTestID(v string) *IcpTestUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTestID(v *string) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// ClearTestID clears the value of the "test_id" field.
func (_u *IcpTestUpdateOne) ClearTestID() *IcpTestUpdateOne {
	_u.mutation.ClearTestID()
	return _u
}

// SetWaterType sets the "water_type" field.
func (_u *IcpTestUpdateOne) SetWaterType(v constants.WaterType) *IcpTestUpdateOne {
	_u.mutation.SetWaterType(v)
	return _u
}

// SetNillableWaterType sets the "water_type" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableWaterType(v *constants.WaterType) *IcpTestUpdateOne {
	if v != nil {
		_u.SetWaterType(*v)
	}
	return _u
}

// SetSampleDate sets the "sample_date" field.
func (_u *IcpTestUpdateOne) SetSampleDate(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetSampleDate(v)
	return _u
}

// SetNillableSampleDate sets the "sample_date" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSampleDate(v *time.Time) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSampleDate(*v)
	}
	return _u
}

// ClearSampleDate clears the value of the "sample_date" field.
func (_u *IcpTestUpdateOne) ClearSampleDate() *IcpTestUpdateOne {
	_u.mutation.ClearSampleDate()
	return _u
}

// SetReceivedDate sets the "received_date" field.
func (_u *IcpTestUpdateOne) SetReceivedDate(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetReceivedDate(v)
	return _u
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableReceivedDate(v *time.Time) *IcpTestUpdateOne {
	if v != nil {
		_u.SetReceivedDate(*v)
	}
	return _u
}

// ClearReceivedDate clears the value of the "received_date" field.
func (_u *IcpTestUpdateOne) ClearReceivedDate() *IcpTestUpdateOne {
	_u.mutation.ClearReceivedDate()
	return _u
}

// SetEvaluatedDate sets the "evaluated_date" field.
func (_u *IcpTestUpdateOne) SetEvaluatedDate(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetEvaluatedDate(v)
	return _u
}

// SetNillableEvaluatedDate sets the "evaluated_date" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableEvaluatedDate(v *time.Time) *IcpTestUpdateOne {
	if v != nil {
		_u.SetEvaluatedDate(*v)
	}
	return _u
}

// ClearEvaluatedDate clears the value of the "evaluated_date" field.
func (_u *IcpTestUpdateOne) ClearEvaluatedDate() *IcpTestUpdateOne {
	_u.mutation.ClearEvaluatedDate()
	return _u
}

// SetScoreMajorElements sets the "score_major_elements" field.
func (_u *IcpTestUpdateOne) SetScoreMajorElements(v int) *IcpTestUpdateOne {
	_u.mutation.ResetScoreMajorElements()
	_u.mutation.SetScoreMajorElements(v)
	return _u
}

// SetNillableScoreMajorElements sets the "score_major_elements" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableScoreMajorElements(v *int) *IcpTestUpdateOne {
	if v != nil {
		_u.SetScoreMajorElements(*v)
	}
	return _u
}

// AddScoreMajorElements adds value to the "score_major_elements" field.
func (_u *IcpTestUpdateOne) AddScoreMajorElements(v int) *IcpTestUpdateOne {
	_u.mutation.AddScoreMajorElements(v)
	return _u
}

// ClearScoreMajorElements clears the value of the "score_major_elements" field.
func (_u *IcpTestUpdateOne) ClearScoreMajorElements() *IcpTestUpdateOne {
	_u.mutation.ClearScoreMajorElements()
	return _u
}

// SetScoreMinorElements sets the "score_minor_elements" field.
func (_u *IcpTestUpdateOne) SetScoreMinorElements(v int) *IcpTestUpdateOne {
	_u.mutation.ResetScoreMinorElements()
	_u.mutation.SetScoreMinorElements(v)
	return _u
}

// SetNillableScoreMinorElements sets the "score_minor_elements" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableScoreMinorElements(v *int) *IcpTestUpdateOne {
	if v != nil {
		_u.SetScoreMinorElements(*v)
	}
	return _u
}

// AddScoreMinorElements adds value to the "score_minor_elements" field.
func (_u *IcpTestUpdateOne) AddScoreMinorElements(v int) *IcpTestUpdateOne {
	_u.mutation.AddScoreMinorElements(v)
	return _u
}

// ClearScoreMinorElements clears the value of the "score_minor_elements" field.
func (_u *IcpTestUpdateOne) ClearScoreMinorElements() *IcpTestUpdateOne {
	_u.mutation.ClearScoreMinorElements()
	return _u
}

// SetScorePollutants sets the "score_pollutants" field.
func (_u *IcpTestUpdateOne) SetScorePollutants(v int) *IcpTestUpdateOne {
	_u.mutation.ResetScorePollutants()
	_u.mutation.SetScorePollutants(v)
	return _u
}

// SetNillableScorePollutants sets the "score_pollutants" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableScorePollutants(v *int) *IcpTestUpdateOne {
	if v != nil {
		_u.SetScorePollutants(*v)
	}
	return _u
}

// AddScorePollutants adds value to the "score_pollutants" field.
func (_u *IcpTestUpdateOne) AddScorePollutants(v int) *IcpTestUpdateOne {
	_u.mutation.AddScorePollutants(v)
	return _u
}

// ClearScorePollutants clears the value of the "score_pollutants" field.
func (_u *IcpTestUpdateOne) ClearScorePollutants() *IcpTestUpdateOne {
	_u.mutation.ClearScorePollutants()
	return _u
}

// SetScoreBaseElements sets the "score_base_elements" field.
func (_u *IcpTestUpdateOne) SetScoreBaseElements(v int) *IcpTestUpdateOne {
	_u.mutation.ResetScoreBaseElements()
	_u.mutation.SetScoreBaseElements(v)
	return _u
}

// SetNillableScoreBaseElements sets the "score_base_elements" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableScoreBaseElements(v *int) *IcpTestUpdateOne {
	if v != nil {
		_u.SetScoreBaseElements(*v)
	}
	return _u
}

// AddScoreBaseElements adds value to the "score_base_elements" field.
func (_u *IcpTestUpdateOne) AddScoreBaseElements(v int) *IcpTestUpdateOne {
	_u.mutation.AddScoreBaseElements(v)
	return _u
}

// ClearScoreBaseElements clears the value of the "score_base_elements" field.
func (_u *IcpTestUpdateOne) ClearScoreBaseElements() *IcpTestUpdateOne {
	_u.mutation.ClearScoreBaseElements()
	return _u
}

// SetScoreOverall sets the "score_overall" field.
func (_u *IcpTestUpdateOne) SetScoreOverall(v int) *IcpTestUpdateOne {
	_u.mutation.ResetScoreOverall()
	_u.mutation.SetScoreOverall(v)
	return _u
}

// SetNillableScoreOverall sets the "score_overall" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableScoreOverall(v *int) *IcpTestUpdateOne {
	if v != nil {
		_u.SetScoreOverall(*v)
	}
	return _u
}

// AddScoreOverall adds value to the "score_overall" field.
func (_u *IcpTestUpdateOne) AddScoreOverall(v int) *IcpTestUpdateOne {
	_u.mutation.AddScoreOverall(v)
	return _u
}

// ClearScoreOverall clears the value of the "score_overall" field.
func (_u *IcpTestUpdateOne) ClearScoreOverall() *IcpTestUpdateOne {
	_u.mutation.ClearScoreOverall()
	return _u
}

// SetSalinity sets the "salinity" field.
func (_u *IcpTestUpdateOne) SetSalinity(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSalinity()
	_u.mutation.SetSalinity(v)
	return _u
}

// SetNillableSalinity sets the "salinity" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSalinity(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSalinity(*v)
	}
	return _u
}

// AddSalinity adds value to the "salinity" field.
func (_u *IcpTestUpdateOne) AddSalinity(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSalinity(v)
	return _u
}

// ClearSalinity clears the value of the "salinity" field.
func (_u *IcpTestUpdateOne) ClearSalinity() *IcpTestUpdateOne {
	_u.mutation.ClearSalinity()
	return _u
}

// SetSalinityStatus sets the "salinity_status" field.
func (_u *IcpTestUpdateOne) SetSalinityStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSalinityStatus(v)
	return _u
}

// SetNillableSalinityStatus sets the "salinity_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSalinityStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSalinityStatus(*v)
	}
	return _u
}

// ClearSalinityStatus clears the value of the "salinity_status" field.
func (_u *IcpTestUpdateOne) ClearSalinityStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSalinityStatus()
	return _u
}

// SetKh sets the "kh" field.
func (_u *IcpTestUpdateOne) SetKh(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetKh()
	_u.mutation.SetKh(v)
	return _u
}

// SetNillableKh sets the "kh" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableKh(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetKh(*v)
	}
	return _u
}

// AddKh adds value to the "kh" field.
func (_u *IcpTestUpdateOne) AddKh(v float64) *IcpTestUpdateOne {
	_u.mutation.AddKh(v)
	return _u
}

// ClearKh clears the value of the "kh" field.
func (_u *IcpTestUpdateOne) ClearKh() *IcpTestUpdateOne {
	_u.mutation.ClearKh()
	return _u
}

// SetKhStatus sets the "kh_status" field.
func (_u *IcpTestUpdateOne) SetKhStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetKhStatus(v)
	return _u
}

// SetNillableKhStatus sets the "kh_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableKhStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetKhStatus(*v)
	}
	return _u
}

// ClearKhStatus clears the value of the "kh_status" field.
func (_u *IcpTestUpdateOne) ClearKhStatus() *IcpTestUpdateOne {
	_u.mutation.ClearKhStatus()
	return _u
}

// SetCl sets the "cl" field.
func (_u *IcpTestUpdateOne) SetCl(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCl()
	_u.mutation.SetCl(v)
	return _u
}

// SetNillableCl sets the "cl" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCl(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCl(*v)
	}
	return _u
}

// AddCl adds value to the "cl" field.
func (_u *IcpTestUpdateOne) AddCl(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCl(v)
	return _u
}

// ClearCl clears the value of the "cl" field.
func (_u *IcpTestUpdateOne) ClearCl() *IcpTestUpdateOne {
	_u.mutation.ClearCl()
	return _u
}

// SetClStatus sets the "cl_status" field.
func (_u *IcpTestUpdateOne) SetClStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetClStatus(v)
	return _u
}

// SetNillableClStatus sets the "cl_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableClStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetClStatus(*v)
	}
	return _u
}

// ClearClStatus clears the value of the "cl_status" field.
func (_u *IcpTestUpdateOne) ClearClStatus() *IcpTestUpdateOne {
	_u.mutation.ClearClStatus()
	return _u
}

// SetNa sets the "na" field.
func (_u *IcpTestUpdateOne) SetNa(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetNa()
	_u.mutation.SetNa(v)
	return _u
}

// SetNillableNa sets the "na" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNa(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNa(*v)
	}
	return _u
}

// AddNa adds value to the "na" field.
func (_u *IcpTestUpdateOne) AddNa(v float64) *IcpTestUpdateOne {
	_u.mutation.AddNa(v)
	return _u
}

// ClearNa clears the value of the "na" field.
func (_u *IcpTestUpdateOne) ClearNa() *IcpTestUpdateOne {
	_u.mutation.ClearNa()
	return _u
}

// SetNaStatus sets the "na_status" field.
func (_u *IcpTestUpdateOne) SetNaStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetNaStatus(v)
	return _u
}

// SetNillableNaStatus sets the "na_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNaStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNaStatus(*v)
	}
	return _u
}

// ClearNaStatus clears the value of the "na_status" field.
func (_u *IcpTestUpdateOne) ClearNaStatus() *IcpTestUpdateOne {
	_u.mutation.ClearNaStatus()
	return _u
}

// SetMg sets the "mg" field.
func (_u *IcpTestUpdateOne) SetMg(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetMg()
	_u.mutation.SetMg(v)
	return _u
}

// SetNillableMg sets the "mg" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMg(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMg(*v)
	}
	return _u
}

// AddMg adds value to the "mg" field.
func (_u *IcpTestUpdateOne) AddMg(v float64) *IcpTestUpdateOne {
	_u.mutation.AddMg(v)
	return _u
}

// ClearMg clears the value of the "mg" field.
func (_u *IcpTestUpdateOne) ClearMg() *IcpTestUpdateOne {
	_u.mutation.ClearMg()
	return _u
}

// SetMgStatus sets the "mg_status" field.
func (_u *IcpTestUpdateOne) SetMgStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetMgStatus(v)
	return _u
}

// SetNillableMgStatus sets the "mg_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMgStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMgStatus(*v)
	}
	return _u
}

// ClearMgStatus clears the value of the "mg_status" field.
func (_u *IcpTestUpdateOne) ClearMgStatus() *IcpTestUpdateOne {
	_u.mutation.ClearMgStatus()
	return _u
}

// SetS sets the "s" field.
func (_u *IcpTestUpdateOne) SetS(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetS()
	_u.mutation.SetS(v)
	return _u
}

// SetNillableS sets the "s" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableS(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetS(*v)
	}
	return _u
}

// AddS adds value to the "s" field.
func (_u *IcpTestUpdateOne) AddS(v float64) *IcpTestUpdateOne {
	_u.mutation.AddS(v)
	return _u
}

// ClearS clears the value of the "s" field.
func (_u *IcpTestUpdateOne) ClearS() *IcpTestUpdateOne {
	_u.mutation.ClearS()
	return _u
}

// SetSStatus sets the "s_status" field.
func (_u *IcpTestUpdateOne) SetSStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSStatus(v)
	return _u
}

// SetNillableSStatus sets the "s_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSStatus(*v)
	}
	return _u
}

// ClearSStatus clears the value of the "s_status" field.
func (_u *IcpTestUpdateOne) ClearSStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSStatus()
	return _u
}

// SetCa sets the "ca" field.
func (_u *IcpTestUpdateOne) SetCa(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCa()
	_u.mutation.SetCa(v)
	return _u
}

// SetNillableCa sets the "ca" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCa(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCa(*v)
	}
	return _u
}

// AddCa adds value to the "ca" field.
func (_u *IcpTestUpdateOne) AddCa(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCa(v)
	return _u
}

// ClearCa clears the value of the "ca" field.
func (_u *IcpTestUpdateOne) ClearCa() *IcpTestUpdateOne {
	_u.mutation.ClearCa()
	return _u
}

// SetCaStatus sets the "ca_status" field.
func (_u *IcpTestUpdateOne) SetCaStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetCaStatus(v)
	return _u
}

// SetNillableCaStatus sets the "ca_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCaStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCaStatus(*v)
	}
	return _u
}

// ClearCaStatus clears the value of the "ca_status" field.
func (_u *IcpTestUpdateOne) ClearCaStatus() *IcpTestUpdateOne {
	_u.mutation.ClearCaStatus()
	return _u
}

// SetK sets the "k" field.
func (_u *IcpTestUpdateOne) SetK(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetK()
	_u.mutation.SetK(v)
	return _u
}

// SetNillableK sets the "k" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableK(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetK(*v)
	}
	return _u
}

// AddK adds value to the "k" field.
func (_u *IcpTestUpdateOne) AddK(v float64) *IcpTestUpdateOne {
	_u.mutation.AddK(v)
	return _u
}

// ClearK clears the value of the "k" field.
func (_u *IcpTestUpdateOne) ClearK() *IcpTestUpdateOne {
	_u.mutation.ClearK()
	return _u
}

// SetKStatus sets the "k_status" field.
func (_u *IcpTestUpdateOne) SetKStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetKStatus(v)
	return _u
}

// SetNillableKStatus sets the "k_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableKStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetKStatus(*v)
	}
	return _u
}

// ClearKStatus clears the value of the "k_status" field.
func (_u *IcpTestUpdateOne) ClearKStatus() *IcpTestUpdateOne {
	_u.mutation.ClearKStatus()
	return _u
}

// SetBr sets the "br" field.
func (_u *IcpTestUpdateOne) SetBr(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetBr()
	_u.mutation.SetBr(v)
	return _u
}

// SetNillableBr sets the "br" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBr(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBr(*v)
	}
	return _u
}

// AddBr adds value to the "br" field.
func (_u *IcpTestUpdateOne) AddBr(v float64) *IcpTestUpdateOne {
	_u.mutation.AddBr(v)
	return _u
}

// ClearBr clears the value of the "br" field.
func (_u *IcpTestUpdateOne) ClearBr() *IcpTestUpdateOne {
	_u.mutation.ClearBr()
	return _u
}

// SetBrStatus sets the "br_status" field.
func (_u *IcpTestUpdateOne) SetBrStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetBrStatus(v)
	return _u
}

// SetNillableBrStatus sets the "br_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBrStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBrStatus(*v)
	}
	return _u
}

// ClearBrStatus clears the value of the "br_status" field.
func (_u *IcpTestUpdateOne) ClearBrStatus() *IcpTestUpdateOne {
	_u.mutation.ClearBrStatus()
	return _u
}

// SetSr sets the "sr" field.
func (_u *IcpTestUpdateOne) SetSr(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSr()
	_u.mutation.SetSr(v)
	return _u
}

// SetNillableSr sets the "sr" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSr(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSr(*v)
	}
	return _u
}

// AddSr adds value to the "sr" field.
func (_u *IcpTestUpdateOne) AddSr(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSr(v)
	return _u
}

// ClearSr clears the value of the "sr" field.
func (_u *IcpTestUpdateOne) ClearSr() *IcpTestUpdateOne {
	_u.mutation.ClearSr()
	return _u
}

// SetSrStatus sets the "sr_status" field.
func (_u *IcpTestUpdateOne) SetSrStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSrStatus(v)
	return _u
}

// SetNillableSrStatus sets the "sr_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSrStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSrStatus(*v)
	}
	return _u
}

// ClearSrStatus clears the value of the "sr_status" field.
func (_u *IcpTestUpdateOne) ClearSrStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSrStatus()
	return _u
}

// SetB sets the "b" field.
func (_u *IcpTestUpdateOne) SetB(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetB()
	_u.mutation.SetB(v)
	return _u
}

// SetNillableB sets the "b" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableB(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetB(*v)
	}
	return _u
}

// AddB adds value to the "b" field.
func (_u *IcpTestUpdateOne) AddB(v float64) *IcpTestUpdateOne {
	_u.mutation.AddB(v)
	return _u
}

// ClearB clears the value of the "b" field.
func (_u *IcpTestUpdateOne) ClearB() *IcpTestUpdateOne {
	_u.mutation.ClearB()
	return _u
}

// SetBStatus sets the "b_status" field.
func (_u *IcpTestUpdateOne) SetBStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetBStatus(v)
	return _u
}

// SetNillableBStatus sets the "b_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBStatus(*v)
	}
	return _u
}

// ClearBStatus clears the value of the "b_status" field.
func (_u *IcpTestUpdateOne) ClearBStatus() *IcpTestUpdateOne {
	_u.mutation.ClearBStatus()
	return _u
}

// SetF sets the "f" field.
func (_u *IcpTestUpdateOne) SetF(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetF()
	_u.mutation.SetF(v)
	return _u
}

// SetNillableF sets the "f" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableF(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetF(*v)
	}
	return _u
}

// AddF adds value to the "f" field.
func (_u *IcpTestUpdateOne) AddF(v float64) *IcpTestUpdateOne {
	_u.mutation.AddF(v)
	return _u
}

// ClearF clears the value of the "f" field.
func (_u *IcpTestUpdateOne) ClearF() *IcpTestUpdateOne {
	_u.mutation.ClearF()
	return _u
}

// SetFStatus sets the "f_status" field.
func (_u *IcpTestUpdateOne) SetFStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetFStatus(v)
	return _u
}

// SetNillableFStatus sets the "f_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableFStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetFStatus(*v)
	}
	return _u
}

// ClearFStatus clears the value of the "f_status" field.
func (_u *IcpTestUpdateOne) ClearFStatus() *IcpTestUpdateOne {
	_u.mutation.ClearFStatus()
	return _u
}

// SetLi sets the "li" field.
func (_u *IcpTestUpdateOne) SetLi(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetLi()
	_u.mutation.SetLi(v)
	return _u
}

// SetNillableLi sets the "li" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableLi(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetLi(*v)
	}
	return _u
}

// AddLi adds value to the "li" field.
func (_u *IcpTestUpdateOne) AddLi(v float64) *IcpTestUpdateOne {
	_u.mutation.AddLi(v)
	return _u
}

// ClearLi clears the value of the "li" field.
func (_u *IcpTestUpdateOne) ClearLi() *IcpTestUpdateOne {
	_u.mutation.ClearLi()
	return _u
}

// SetLiStatus sets the "li_status" field.
func (_u *IcpTestUpdateOne) SetLiStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetLiStatus(v)
	return _u
}

// SetNillableLiStatus sets the "li_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableLiStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetLiStatus(*v)
	}
	return _u
}

// ClearLiStatus clears the value of the "li_status" field.
func (_u *IcpTestUpdateOne) ClearLiStatus() *IcpTestUpdateOne {
	_u.mutation.ClearLiStatus()
	return _u
}

// SetSi sets the "si" field.
func (_u *IcpTestUpdateOne) SetSi(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSi()
	_u.mutation.SetSi(v)
	return _u
}

// SetNillableSi sets the "si" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSi(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSi(*v)
	}
	return _u
}

// AddSi adds value to the "si" field.
func (_u *IcpTestUpdateOne) AddSi(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSi(v)
	return _u
}

// ClearSi clears the value of the "si" field.
func (_u *IcpTestUpdateOne) ClearSi() *IcpTestUpdateOne {
	_u.mutation.ClearSi()
	return _u
}

// SetSiStatus sets the "si_status" field.
func (_u *IcpTestUpdateOne) SetSiStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSiStatus(v)
	return _u
}

// SetNillableSiStatus sets the "si_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSiStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSiStatus(*v)
	}
	return _u
}

// ClearSiStatus clears the value of the "si_status" field.
func (_u *IcpTestUpdateOne) ClearSiStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSiStatus()
	return _u
}

// SetI sets the "i" field.
func (_u *IcpTestUpdateOne) SetI(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetI()
	_u.mutation.SetI(v)
	return _u
}

// SetNillableI sets the "i" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableI(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetI(*v)
	}
	return _u
}

// AddI adds value to the "i" field.
func (_u *IcpTestUpdateOne) AddI(v float64) *IcpTestUpdateOne {
	_u.mutation.AddI(v)
	return _u
}

// ClearI clears the value of the "i" field.
func (_u *IcpTestUpdateOne) ClearI() *IcpTestUpdateOne {
	_u.mutation.ClearI()
	return _u
}

// SetIStatus sets the "i_status" field.
func (_u *IcpTestUpdateOne) SetIStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetIStatus(v)
	return _u
}

// SetNillableIStatus sets the "i_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableIStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetIStatus(*v)
	}
	return _u
}

// ClearIStatus clears the value of the "i_status" field.
func (_u *IcpTestUpdateOne) ClearIStatus() *IcpTestUpdateOne {
	_u.mutation.ClearIStatus()
	return _u
}

// SetBa sets the "ba" field.
func (_u *IcpTestUpdateOne) SetBa(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetBa()
	_u.mutation.SetBa(v)
	return _u
}

// SetNillableBa sets the "ba" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBa(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBa(*v)
	}
	return _u
}

// AddBa adds value to the "ba" field.
func (_u *IcpTestUpdateOne) AddBa(v float64) *IcpTestUpdateOne {
	_u.mutation.AddBa(v)
	return _u
}

// ClearBa clears the value of the "ba" field.
func (_u *IcpTestUpdateOne) ClearBa() *IcpTestUpdateOne {
	_u.mutation.ClearBa()
	return _u
}

// SetBaStatus sets the "ba_status" field.
func (_u *IcpTestUpdateOne) SetBaStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetBaStatus(v)
	return _u
}

// SetNillableBaStatus sets the "ba_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBaStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBaStatus(*v)
	}
	return _u
}

// ClearBaStatus clears the value of the "ba_status" field.
func (_u *IcpTestUpdateOne) ClearBaStatus() *IcpTestUpdateOne {
	_u.mutation.ClearBaStatus()
	return _u
}

// SetMo sets the "mo" field.
func (_u *IcpTestUpdateOne) SetMo(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetMo()
	_u.mutation.SetMo(v)
	return _u
}

// SetNillableMo sets the "mo" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMo(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMo(*v)
	}
	return _u
}

// AddMo adds value to the "mo" field.
func (_u *IcpTestUpdateOne) AddMo(v float64) *IcpTestUpdateOne {
	_u.mutation.AddMo(v)
	return _u
}

// ClearMo clears the value of the "mo" field.
func (_u *IcpTestUpdateOne) ClearMo() *IcpTestUpdateOne {
	_u.mutation.ClearMo()
	return _u
}

// SetMoStatus sets the "mo_status" field.
func (_u *IcpTestUpdateOne) SetMoStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetMoStatus(v)
	return _u
}

// SetNillableMoStatus sets the "mo_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMoStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMoStatus(*v)
	}
	return _u
}

// ClearMoStatus clears the value of the "mo_status" field.
func (_u *IcpTestUpdateOne) ClearMoStatus() *IcpTestUpdateOne {
	_u.mutation.ClearMoStatus()
	return _u
}

// SetNi sets the "ni" field.
func (_u *IcpTestUpdateOne) SetNi(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetNi()
	_u.mutation.SetNi(v)
	return _u
}

// SetNillableNi sets the "ni" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNi(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNi(*v)
	}
	return _u
}

// AddNi adds value to the "ni" field.
func (_u *IcpTestUpdateOne) AddNi(v float64) *IcpTestUpdateOne {
	_u.mutation.AddNi(v)
	return _u
}

// ClearNi clears the value of the "ni" field.
func (_u *IcpTestUpdateOne) ClearNi() *IcpTestUpdateOne {
	_u.mutation.ClearNi()
	return _u
}

// SetNiStatus sets the "ni_status" field.
func (_u *IcpTestUpdateOne) SetNiStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetNiStatus(v)
	return _u
}

// SetNillableNiStatus sets the "ni_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNiStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNiStatus(*v)
	}
	return _u
}

// ClearNiStatus clears the value of the "ni_status" field.
func (_u *IcpTestUpdateOne) ClearNiStatus() *IcpTestUpdateOne {
	_u.mutation.ClearNiStatus()
	return _u
}

// SetMn sets the "mn" field.
func (_u *IcpTestUpdateOne) SetMn(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetMn()
	_u.mutation.SetMn(v)
	return _u
}

// SetNillableMn sets the "mn" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMn(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMn(*v)
	}
	return _u
}

// AddMn adds value to the "mn" field.
func (_u *IcpTestUpdateOne) AddMn(v float64) *IcpTestUpdateOne {
	_u.mutation.AddMn(v)
	return _u
}

// ClearMn clears the value of the "mn" field.
func (_u *IcpTestUpdateOne) ClearMn() *IcpTestUpdateOne {
	_u.mutation.ClearMn()
	return _u
}

// SetMnStatus sets the "mn_status" field.
func (_u *IcpTestUpdateOne) SetMnStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetMnStatus(v)
	return _u
}

// SetNillableMnStatus sets the "mn_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableMnStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetMnStatus(*v)
	}
	return _u
}

// ClearMnStatus clears the value of the "mn_status" field.
func (_u *IcpTestUpdateOne) ClearMnStatus() *IcpTestUpdateOne {
	_u.mutation.ClearMnStatus()
	return _u
}

// SetAs sets the "as" field.
func (_u *IcpTestUpdateOne) SetAs(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetAs()
	_u.mutation.SetAs(v)
	return _u
}

// SetNillableAs sets the "as" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAs(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAs(*v)
	}
	return _u
}

// AddAs adds value to the "as" field.
func (_u *IcpTestUpdateOne) AddAs(v float64) *IcpTestUpdateOne {
	_u.mutation.AddAs(v)
	return _u
}

// ClearAs clears the value of the "as" field.
func (_u *IcpTestUpdateOne) ClearAs() *IcpTestUpdateOne {
	_u.mutation.ClearAs()
	return _u
}

// SetAsStatus sets the "as_status" field.
func (_u *IcpTestUpdateOne) SetAsStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetAsStatus(v)
	return _u
}

// SetNillableAsStatus sets the "as_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAsStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAsStatus(*v)
	}
	return _u
}

// ClearAsStatus clears the value of the "as_status" field.
func (_u *IcpTestUpdateOne) ClearAsStatus() *IcpTestUpdateOne {
	_u.mutation.ClearAsStatus()
	return _u
}

// SetBe sets the "be" field.
func (_u *IcpTestUpdateOne) SetBe(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetBe()
	_u.mutation.SetBe(v)
	return _u
}

// SetNillableBe sets the "be" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBe(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBe(*v)
	}
	return _u
}

// AddBe adds value to the "be" field.
func (_u *IcpTestUpdateOne) AddBe(v float64) *IcpTestUpdateOne {
	_u.mutation.AddBe(v)
	return _u
}

// ClearBe clears the value of the "be" field.
func (_u *IcpTestUpdateOne) ClearBe() *IcpTestUpdateOne {
	_u.mutation.ClearBe()
	return _u
}

// SetBeStatus sets the "be_status" field.
func (_u *IcpTestUpdateOne) SetBeStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetBeStatus(v)
	return _u
}

// SetNillableBeStatus sets the "be_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBeStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBeStatus(*v)
	}
	return _u
}

// ClearBeStatus clears the value of the "be_status" field.
func (_u *IcpTestUpdateOne) ClearBeStatus() *IcpTestUpdateOne {
	_u.mutation.ClearBeStatus()
	return _u
}

// SetCr sets the "cr" field.
func (_u *IcpTestUpdateOne) SetCr(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCr()
	_u.mutation.SetCr(v)
	return _u
}

// SetNillableCr sets the "cr" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCr(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCr(*v)
	}
	return _u
}

// AddCr adds value to the "cr" field.
func (_u *IcpTestUpdateOne) AddCr(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCr(v)
	return _u
}

// ClearCr clears the value of the "cr" field.
func (_u *IcpTestUpdateOne) ClearCr() *IcpTestUpdateOne {
	_u.mutation.ClearCr()
	return _u
}

// SetCrStatus sets the "cr_status" field.
func (_u *IcpTestUpdateOne) SetCrStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetCrStatus(v)
	return _u
}

// SetNillableCrStatus sets the "cr_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCrStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCrStatus(*v)
	}
	return _u
}

// ClearCrStatus clears the value of the "cr_status" field.
func (_u *IcpTestUpdateOne) ClearCrStatus() *IcpTestUpdateOne {
	_u.mutation.ClearCrStatus()
	return _u
}

// SetCo sets the "co" field.
func (_u *IcpTestUpdateOne) SetCo(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCo()
	_u.mutation.SetCo(v)
	return _u
}

// SetNillableCo sets the "co" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCo(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCo(*v)
	}
	return _u
}

// AddCo adds value to the "co" field.
func (_u *IcpTestUpdateOne) AddCo(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCo(v)
	return _u
}

// ClearCo clears the value of the "co" field.
func (_u *IcpTestUpdateOne) ClearCo() *IcpTestUpdateOne {
	_u.mutation.ClearCo()
	return _u
}

// SetCoStatus sets the "co_status" field.
func (_u *IcpTestUpdateOne) SetCoStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetCoStatus(v)
	return _u
}

// SetNillableCoStatus sets the "co_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCoStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCoStatus(*v)
	}
	return _u
}

// ClearCoStatus clears the value of the "co_status" field.
func (_u *IcpTestUpdateOne) ClearCoStatus() *IcpTestUpdateOne {
	_u.mutation.ClearCoStatus()
	return _u
}

// SetFe sets the "fe" field.
func (_u *IcpTestUpdateOne) SetFe(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetFe()
	_u.mutation.SetFe(v)
	return _u
}

// SetNillableFe sets the "fe" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableFe(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetFe(*v)
	}
	return _u
}

// AddFe adds value to the "fe" field.
func (_u *IcpTestUpdateOne) AddFe(v float64) *IcpTestUpdateOne {
	_u.mutation.AddFe(v)
	return _u
}

// ClearFe clears the value of the "fe" field.
func (_u *IcpTestUpdateOne) ClearFe() *IcpTestUpdateOne {
	_u.mutation.ClearFe()
	return _u
}

// SetFeStatus sets the "fe_status" field.
func (_u *IcpTestUpdateOne) SetFeStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetFeStatus(v)
	return _u
}

// SetNillableFeStatus sets the "fe_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableFeStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetFeStatus(*v)
	}
	return _u
}

// ClearFeStatus clears the value of the "fe_status" field.
func (_u *IcpTestUpdateOne) ClearFeStatus() *IcpTestUpdateOne {
	_u.mutation.ClearFeStatus()
	return _u
}

// SetCu sets the "cu" field.
func (_u *IcpTestUpdateOne) SetCu(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCu()
	_u.mutation.SetCu(v)
	return _u
}

// SetNillableCu sets the "cu" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCu(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCu(*v)
	}
	return _u
}

// AddCu adds value to the "cu" field.
func (_u *IcpTestUpdateOne) AddCu(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCu(v)
	return _u
}

// ClearCu clears the value of the "cu" field.
func (_u *IcpTestUpdateOne) ClearCu() *IcpTestUpdateOne {
	_u.mutation.ClearCu()
	return _u
}

// SetCuStatus sets the "cu_status" field.
func (_u *IcpTestUpdateOne) SetCuStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetCuStatus(v)
	return _u
}

// SetNillableCuStatus sets the "cu_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCuStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCuStatus(*v)
	}
	return _u
}

// ClearCuStatus clears the value of the "cu_status" field.
func (_u *IcpTestUpdateOne) ClearCuStatus() *IcpTestUpdateOne {
	_u.mutation.ClearCuStatus()
	return _u
}

// SetSe sets the "se" field.
func (_u *IcpTestUpdateOne) SetSe(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSe()
	_u.mutation.SetSe(v)
	return _u
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSe(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSe(*v)
	}
	return _u
}

// AddSe adds value to the "se" field.
func (_u *IcpTestUpdateOne) AddSe(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSe(v)
	return _u
}

// ClearSe clears the value of the "se" field.
func (_u *IcpTestUpdateOne) ClearSe() *IcpTestUpdateOne {
	_u.mutation.ClearSe()
	return _u
}

// SetSeStatus sets the "se_status" field.
func (_u *IcpTestUpdateOne) SetSeStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSeStatus(v)
	return _u
}

// SetNillableSeStatus sets the "se_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSeStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSeStatus(*v)
	}
	return _u
}

// ClearSeStatus clears the value of the "se_status" field.
func (_u *IcpTestUpdateOne) ClearSeStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSeStatus()
	return _u
}

// SetAg sets the "ag" field.
func (_u *IcpTestUpdateOne) SetAg(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetAg()
	_u.mutation.SetAg(v)
	return _u
}

// SetNillableAg sets the "ag" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAg(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAg(*v)
	}
	return _u
}

// AddAg adds value to the "ag" field.
func (_u *IcpTestUpdateOne) AddAg(v float64) *IcpTestUpdateOne {
	_u.mutation.AddAg(v)
	return _u
}

// ClearAg clears the value of the "ag" field.
func (_u *IcpTestUpdateOne) ClearAg() *IcpTestUpdateOne {
	_u.mutation.ClearAg()
	return _u
}

// SetAgStatus sets the "ag_status" field.
func (_u *IcpTestUpdateOne) SetAgStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetAgStatus(v)
	return _u
}

// SetNillableAgStatus sets the "ag_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAgStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAgStatus(*v)
	}
	return _u
}

// ClearAgStatus clears the value of the "ag_status" field.
func (_u *IcpTestUpdateOne) ClearAgStatus() *IcpTestUpdateOne {
	_u.mutation.ClearAgStatus()
	return _u
}

// SetV sets the "v" field.
func (_u *IcpTestUpdateOne) SetV(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetV()
	_u.mutation.SetV(v)
	return _u
}

// SetNillableV sets the "v" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableV(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetV(*v)
	}
	return _u
}

// AddV adds value to the "v" field.
func (_u *IcpTestUpdateOne) AddV(v float64) *IcpTestUpdateOne {
	_u.mutation.AddV(v)
	return _u
}

// ClearV clears the value of the "v" field.
func (_u *IcpTestUpdateOne) ClearV() *IcpTestUpdateOne {
	_u.mutation.ClearV()
	return _u
}

// SetVStatus sets the "v_status" field.
func (_u *IcpTestUpdateOne) SetVStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetVStatus(v)
	return _u
}

// SetNillableVStatus sets the "v_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableVStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetVStatus(*v)
	}
	return _u
}

// ClearVStatus clears the value of the "v_status" field.
func (_u *IcpTestUpdateOne) ClearVStatus() *IcpTestUpdateOne {
	_u.mutation.ClearVStatus()
	return _u
}

// SetZn sets the "zn" field.
func (_u *IcpTestUpdateOne) SetZn(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetZn()
	_u.mutation.SetZn(v)
	return _u
}

// SetNillableZn sets the "zn" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableZn(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetZn(*v)
	}
	return _u
}

// AddZn adds value to the "zn" field.
func (_u *IcpTestUpdateOne) AddZn(v float64) *IcpTestUpdateOne {
	_u.mutation.AddZn(v)
	return _u
}

// ClearZn clears the value of the "zn" field.
func (_u *IcpTestUpdateOne) ClearZn() *IcpTestUpdateOne {
	_u.mutation.ClearZn()
	return _u
}

// SetZnStatus sets the "zn_status" field.
func (_u *IcpTestUpdateOne) SetZnStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetZnStatus(v)
	return _u
}

// SetNillableZnStatus sets the "zn_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableZnStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetZnStatus(*v)
	}
	return _u
}

// ClearZnStatus clears the value of the "zn_status" field.
func (_u *IcpTestUpdateOne) ClearZnStatus() *IcpTestUpdateOne {
	_u.mutation.ClearZnStatus()
	return _u
}

// SetSn sets the "sn" field.
func (_u *IcpTestUpdateOne) SetSn(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSn()
	_u.mutation.SetSn(v)
	return _u
}

// SetNillableSn sets the "sn" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSn(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSn(*v)
	}
	return _u
}

// AddSn adds value to the "sn" field.
func (_u *IcpTestUpdateOne) AddSn(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSn(v)
	return _u
}

// ClearSn clears the value of the "sn" field.
func (_u *IcpTestUpdateOne) ClearSn() *IcpTestUpdateOne {
	_u.mutation.ClearSn()
	return _u
}

// SetSnStatus sets the "sn_status" field.
func (_u *IcpTestUpdateOne) SetSnStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSnStatus(v)
	return _u
}

// SetNillableSnStatus sets the "sn_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSnStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSnStatus(*v)
	}
	return _u
}

// ClearSnStatus clears the value of the "sn_status" field.
func (_u *IcpTestUpdateOne) ClearSnStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSnStatus()
	return _u
}

// SetNo3 sets the "no3" field.
func (_u *IcpTestUpdateOne) SetNo3(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetNo3()
	_u.mutation.SetNo3(v)
	return _u
}

// SetNillableNo3 sets the "no3" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNo3(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNo3(*v)
	}
	return _u
}

// AddNo3 adds value to the "no3" field.
func (_u *IcpTestUpdateOne) AddNo3(v float64) *IcpTestUpdateOne {
	_u.mutation.AddNo3(v)
	return _u
}

// ClearNo3 clears the value of the "no3" field.
func (_u *IcpTestUpdateOne) ClearNo3() *IcpTestUpdateOne {
	_u.mutation.ClearNo3()
	return _u
}

// SetNo3Status sets the "no3_status" field.
func (_u *IcpTestUpdateOne) SetNo3Status(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetNo3Status(v)
	return _u
}

// SetNillableNo3Status sets the "no3_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableNo3Status(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetNo3Status(*v)
	}
	return _u
}

// ClearNo3Status clears the value of the "no3_status" field.
func (_u *IcpTestUpdateOne) ClearNo3Status() *IcpTestUpdateOne {
	_u.mutation.ClearNo3Status()
	return _u
}

// SetP sets the "p" field.
func (_u *IcpTestUpdateOne) SetP(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetP()
	_u.mutation.SetP(v)
	return _u
}

// SetNillableP sets the "p" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableP(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetP(*v)
	}
	return _u
}

// AddP adds value to the "p" field.
func (_u *IcpTestUpdateOne) AddP(v float64) *IcpTestUpdateOne {
	_u.mutation.AddP(v)
	return _u
}

// ClearP clears the value of the "p" field.
func (_u *IcpTestUpdateOne) ClearP() *IcpTestUpdateOne {
	_u.mutation.ClearP()
	return _u
}

// SetPStatus sets the "p_status" field.
func (_u *IcpTestUpdateOne) SetPStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetPStatus(v)
	return _u
}

// SetNillablePStatus sets the "p_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPStatus(*v)
	}
	return _u
}

// ClearPStatus clears the value of the "p_status" field.
func (_u *IcpTestUpdateOne) ClearPStatus() *IcpTestUpdateOne {
	_u.mutation.ClearPStatus()
	return _u
}

// SetPo4 sets the "po4" field.
func (_u *IcpTestUpdateOne) SetPo4(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetPo4()
	_u.mutation.SetPo4(v)
	return _u
}

// SetNillablePo4 sets the "po4" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePo4(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPo4(*v)
	}
	return _u
}

// AddPo4 adds value to the "po4" field.
func (_u *IcpTestUpdateOne) AddPo4(v float64) *IcpTestUpdateOne {
	_u.mutation.AddPo4(v)
	return _u
}

// ClearPo4 clears the value of the "po4" field.
func (_u *IcpTestUpdateOne) ClearPo4() *IcpTestUpdateOne {
	_u.mutation.ClearPo4()
	return _u
}

// SetPo4Status sets the "po4_status" field.
func (_u *IcpTestUpdateOne) SetPo4Status(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetPo4Status(v)
	return _u
}

// SetNillablePo4Status sets the "po4_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePo4Status(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPo4Status(*v)
	}
	return _u
}

// ClearPo4Status clears the value of the "po4_status" field.
func (_u *IcpTestUpdateOne) ClearPo4Status() *IcpTestUpdateOne {
	_u.mutation.ClearPo4Status()
	return _u
}

// SetAl sets the "al" field.
func (_u *IcpTestUpdateOne) SetAl(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetAl()
	_u.mutation.SetAl(v)
	return _u
}

// SetNillableAl sets the "al" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAl(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAl(*v)
	}
	return _u
}

// AddAl adds value to the "al" field.
func (_u *IcpTestUpdateOne) AddAl(v float64) *IcpTestUpdateOne {
	_u.mutation.AddAl(v)
	return _u
}

// ClearAl clears the value of the "al" field.
func (_u *IcpTestUpdateOne) ClearAl() *IcpTestUpdateOne {
	_u.mutation.ClearAl()
	return _u
}

// SetAlStatus sets the "al_status" field.
func (_u *IcpTestUpdateOne) SetAlStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetAlStatus(v)
	return _u
}

// SetNillableAlStatus sets the "al_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableAlStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetAlStatus(*v)
	}
	return _u
}

// ClearAlStatus clears the value of the "al_status" field.
func (_u *IcpTestUpdateOne) ClearAlStatus() *IcpTestUpdateOne {
	_u.mutation.ClearAlStatus()
	return _u
}

// SetSb sets the "sb" field.
func (_u *IcpTestUpdateOne) SetSb(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetSb()
	_u.mutation.SetSb(v)
	return _u
}

// SetNillableSb sets the "sb" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSb(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSb(*v)
	}
	return _u
}

// AddSb adds value to the "sb" field.
func (_u *IcpTestUpdateOne) AddSb(v float64) *IcpTestUpdateOne {
	_u.mutation.AddSb(v)
	return _u
}

// ClearSb clears the value of the "sb" field.
func (_u *IcpTestUpdateOne) ClearSb() *IcpTestUpdateOne {
	_u.mutation.ClearSb()
	return _u
}

// SetSbStatus sets the "sb_status" field.
func (_u *IcpTestUpdateOne) SetSbStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetSbStatus(v)
	return _u
}

// SetNillableSbStatus sets the "sb_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableSbStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetSbStatus(*v)
	}
	return _u
}

// ClearSbStatus clears the value of the "sb_status" field.
func (_u *IcpTestUpdateOne) ClearSbStatus() *IcpTestUpdateOne {
	_u.mutation.ClearSbStatus()
	return _u
}

// SetBi sets the "bi" field.
func (_u *IcpTestUpdateOne) SetBi(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetBi()
	_u.mutation.SetBi(v)
	return _u
}

// SetNillableBi sets the "bi" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBi(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBi(*v)
	}
	return _u
}

// AddBi adds value to the "bi" field.
func (_u *IcpTestUpdateOne) AddBi(v float64) *IcpTestUpdateOne {
	_u.mutation.AddBi(v)
	return _u
}

// ClearBi clears the value of the "bi" field.
func (_u *IcpTestUpdateOne) ClearBi() *IcpTestUpdateOne {
	_u.mutation.ClearBi()
	return _u
}

// SetBiStatus sets the "bi_status" field.
func (_u *IcpTestUpdateOne) SetBiStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetBiStatus(v)
	return _u
}

// SetNillableBiStatus sets the "bi_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableBiStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetBiStatus(*v)
	}
	return _u
}

// ClearBiStatus clears the value of the "bi_status" field.
func (_u *IcpTestUpdateOne) ClearBiStatus() *IcpTestUpdateOne {
	_u.mutation.ClearBiStatus()
	return _u
}

// SetPb sets the "pb" field.
func (_u *IcpTestUpdateOne) SetPb(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetPb()
	_u.mutation.SetPb(v)
	return _u
}

// SetNillablePb sets the "pb" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePb(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPb(*v)
	}
	return _u
}

// AddPb adds value to the "pb" field.
func (_u *IcpTestUpdateOne) AddPb(v float64) *IcpTestUpdateOne {
	_u.mutation.AddPb(v)
	return _u
}

// ClearPb clears the value of the "pb" field.
func (_u *IcpTestUpdateOne) ClearPb() *IcpTestUpdateOne {
	_u.mutation.ClearPb()
	return _u
}

// SetPbStatus sets the "pb_status" field.
func (_u *IcpTestUpdateOne) SetPbStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetPbStatus(v)
	return _u
}

// SetNillablePbStatus sets the "pb_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePbStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPbStatus(*v)
	}
	return _u
}

// ClearPbStatus clears the value of the "pb_status" field.
func (_u *IcpTestUpdateOne) ClearPbStatus() *IcpTestUpdateOne {
	_u.mutation.ClearPbStatus()
	return _u
}

// SetCd sets the "cd" field.
func (_u *IcpTestUpdateOne) SetCd(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetCd()
	_u.mutation.SetCd(v)
	return _u
}

// SetNillableCd sets the "cd" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCd(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCd(*v)
	}
	return _u
}

// AddCd adds value to the "cd" field.
func (_u *IcpTestUpdateOne) AddCd(v float64) *IcpTestUpdateOne {
	_u.mutation.AddCd(v)
	return _u
}

// ClearCd clears the value of the "cd" field.
func (_u *IcpTestUpdateOne) ClearCd() *IcpTestUpdateOne {
	_u.mutation.ClearCd()
	return _u
}

// SetCdStatus sets the "cd_status" field.
func (_u *IcpTestUpdateOne) SetCdStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetCdStatus(v)
	return _u
}

// SetNillableCdStatus sets the "cd_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCdStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCdStatus(*v)
	}
	return _u
}

// ClearCdStatus clears the value of the "cd_status" field.
func (_u *IcpTestUpdateOne) ClearCdStatus() *IcpTestUpdateOne {
	_u.mutation.ClearCdStatus()
	return _u
}

// SetLa sets the "la" field.
func (_u *IcpTestUpdateOne) SetLa(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetLa()
	_u.mutation.SetLa(v)
	return _u
}

// SetNillableLa sets the "la" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableLa(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetLa(*v)
	}
	return _u
}

// AddLa adds value to the "la" field.
func (_u *IcpTestUpdateOne) AddLa(v float64) *IcpTestUpdateOne {
	_u.mutation.AddLa(v)
	return _u
}

// ClearLa clears the value of the "la" field.
func (_u *IcpTestUpdateOne) ClearLa() *IcpTestUpdateOne {
	_u.mutation.ClearLa()
	return _u
}

// SetLaStatus sets the "la_status" field.
func (_u *IcpTestUpdateOne) SetLaStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetLaStatus(v)
	return _u
}

// SetNillableLaStatus sets the "la_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableLaStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetLaStatus(*v)
	}
	return _u
}

// ClearLaStatus clears the value of the "la_status" field.
func (_u *IcpTestUpdateOne) ClearLaStatus() *IcpTestUpdateOne {
	_u.mutation.ClearLaStatus()
	return _u
}

// SetTl sets the "tl" field.
func (_u *IcpTestUpdateOne) SetTl(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetTl()
	_u.mutation.SetTl(v)
	return _u
}

// SetNillableTl sets the "tl" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTl(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTl(*v)
	}
	return _u
}

// AddTl adds value to the "tl" field.
func (_u *IcpTestUpdateOne) AddTl(v float64) *IcpTestUpdateOne {
	_u.mutation.AddTl(v)
	return _u
}

// ClearTl clears the value of the "tl" field.
func (_u *IcpTestUpdateOne) ClearTl() *IcpTestUpdateOne {
	_u.mutation.ClearTl()
	return _u
}

// SetTlStatus sets the "tl_status" field.
func (_u *IcpTestUpdateOne) SetTlStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetTlStatus(v)
	return _u
}

// SetNillableTlStatus sets the "tl_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTlStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTlStatus(*v)
	}
	return _u
}

// ClearTlStatus clears the value of the "tl_status" field.
func (_u *IcpTestUpdateOne) ClearTlStatus() *IcpTestUpdateOne {
	_u.mutation.ClearTlStatus()
	return _u
}

// SetTi sets the "ti" field.
func (_u *IcpTestUpdateOne) SetTi(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetTi()
	_u.mutation.SetTi(v)
	return _u
}

// SetNillableTi sets the "ti" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTi(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTi(*v)
	}
	return _u
}

// AddTi adds value to the "ti" field.
func (_u *IcpTestUpdateOne) AddTi(v float64) *IcpTestUpdateOne {
	_u.mutation.AddTi(v)
	return _u
}

// ClearTi clears the value of the "ti" field.
func (_u *IcpTestUpdateOne) ClearTi() *IcpTestUpdateOne {
	_u.mutation.ClearTi()
	return _u
}

// SetTiStatus sets the "ti_status" field.
func (_u *IcpTestUpdateOne) SetTiStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetTiStatus(v)
	return _u
}

// SetNillableTiStatus sets the "ti_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableTiStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetTiStatus(*v)
	}
	return _u
}

// ClearTiStatus clears the value of the "ti_status" field.
func (_u *IcpTestUpdateOne) ClearTiStatus() *IcpTestUpdateOne {
	_u.mutation.ClearTiStatus()
	return _u
}

// SetW sets the "w" field.
func (_u *IcpTestUpdateOne) SetW(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetW()
	_u.mutation.SetW(v)
	return _u
}

// SetNillableW sets the "w" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableW(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetW(*v)
	}
	return _u
}

// AddW adds value to the "w" field.
func (_u *IcpTestUpdateOne) AddW(v float64) *IcpTestUpdateOne {
	_u.mutation.AddW(v)
	return _u
}

// ClearW clears the value of the "w" field.
func (_u *IcpTestUpdateOne) ClearW() *IcpTestUpdateOne {
	_u.mutation.ClearW()
	return _u
}

// SetWStatus sets the "w_status" field.
func (_u *IcpTestUpdateOne) SetWStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetWStatus(v)
	return _u
}

// SetNillableWStatus sets the "w_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableWStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetWStatus(*v)
	}
	return _u
}

// ClearWStatus clears the value of the "w_status" field.
func (_u *IcpTestUpdateOne) ClearWStatus() *IcpTestUpdateOne {
	_u.mutation.ClearWStatus()
	return _u
}

// SetHg sets the "hg" field.
func (_u *IcpTestUpdateOne) SetHg(v float64) *IcpTestUpdateOne {
	_u.mutation.ResetHg()
	_u.mutation.SetHg(v)
	return _u
}

// SetNillableHg sets the "hg" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableHg(v *float64) *IcpTestUpdateOne {
	if v != nil {
		_u.SetHg(*v)
	}
	return _u
}

// AddHg adds value to the "hg" field.
func (_u *IcpTestUpdateOne) AddHg(v float64) *IcpTestUpdateOne {
	_u.mutation.AddHg(v)
	return _u
}

// ClearHg clears the value of the "hg" field.
func (_u *IcpTestUpdateOne) ClearHg() *IcpTestUpdateOne {
	_u.mutation.ClearHg()
	return _u
}

// SetHgStatus sets the "hg_status" field.
func (_u *IcpTestUpdateOne) SetHgStatus(v constants.ElementStatus) *IcpTestUpdateOne {
	_u.mutation.SetHgStatus(v)
	return _u
}

// SetNillableHgStatus sets the "hg_status" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableHgStatus(v *constants.ElementStatus) *IcpTestUpdateOne {
	if v != nil {
		_u.SetHgStatus(*v)
	}
	return _u
}

// ClearHgStatus clears the value of the "hg_status" field.
func (_u *IcpTestUpdateOne) ClearHgStatus() *IcpTestUpdateOne {
	_u.mutation.ClearHgStatus()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *IcpTestUpdateOne) SetRecommendations(v []string) *IcpTestUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *IcpTestUpdateOne) AppendRecommendations(v []string) *IcpTestUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *IcpTestUpdateOne) ClearRecommendations() *IcpTestUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDosingInstructions sets the "dosing_instructions" field.
func (_u *IcpTestUpdateOne) SetDosingInstructions(v string) *IcpTestUpdateOne {
	_u.mutation.SetDosingInstructions(v)
	return _u
}

// SetNillableDosingInstructions sets the "dosing_instructions" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableDosingInstructions(v *string) *IcpTestUpdateOne {
	if v != nil {
		_u.SetDosingInstructions(*v)
	}
	return _u
}

// ClearDosingInstructions clears the value of the "dosing_instructions" field.
func (_u *IcpTestUpdateOne) ClearDosingInstructions() *IcpTestUpdateOne {
	_u.mutation.ClearDosingInstructions()
	return _u
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *IcpTestUpdateOne) SetPdfFilename(v string) *IcpTestUpdateOne {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePdfFilename(v *string) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// ClearPdfFilename clears the value of the "pdf_filename" field.
func (_u *IcpTestUpdateOne) ClearPdfFilename() *IcpTestUpdateOne {
	_u.mutation.ClearPdfFilename()
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *IcpTestUpdateOne) SetPdfPath(v string) *IcpTestUpdateOne {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillablePdfPath(v *string) *IcpTestUpdateOne {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (_u *IcpTestUpdateOne) ClearPdfPath() *IcpTestUpdateOne {
	_u.mutation.ClearPdfPath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IcpTestUpdateOne) SetCreatedAt(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IcpTestUpdateOne) SetNillableCreatedAt(v *time.Time) *IcpTestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IcpTestUpdateOne) SetUpdatedAt(v time.Time) *IcpTestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTank sets the "tank" edge to the Tank entity.
func (_u *IcpTestUpdateOne) SetTank(v *Tank) *IcpTestUpdateOne {
	return _u.SetTankID(v.ID)
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_u *IcpTestUpdateOne) SetFile(v *ReportFile) *IcpTestUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the IcpTestMutation object of the builder.
func (_u *IcpTestUpdateOne) Mutation() *IcpTestMutation {
	return _u.mutation
}

// ClearTank clears the "tank" edge to the Tank entity.
func (_u *IcpTestUpdateOne) ClearTank() *IcpTestUpdateOne {
	_u.mutation.ClearTank()
	return _u
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (_u *IcpTestUpdateOne) ClearFile() *IcpTestUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the IcpTestUpdate builder.
func (_u *IcpTestUpdateOne) Where(ps ...predicate.IcpTest) *IcpTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IcpTestUpdateOne) Select(field string, fields ...string) *IcpTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IcpTest entity.
func (_u *IcpTestUpdateOne) Save(ctx context.Context) (*IcpTest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IcpTestUpdateOne) SaveX(ctx context.Context) *IcpTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IcpTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IcpTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IcpTestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := icptest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IcpTestUpdateOne) check() error {
	if v, ok := _u.mutation.LabName(); ok {
		if err := icptest.LabNameValidator(v); err != nil {
			return &ValidationError{Name: "lab_name", err: fmt.Errorf(`ent: validator failed for field "IcpTest.lab_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaterType(); ok {
		if err := icptest.WaterTypeValidator(string(v)); err != nil {
			return &ValidationError{Name: "water_type", err: fmt.Errorf(`ent: validator failed for field "IcpTest.water_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalinityStatus(); ok {
		if err := icptest.SalinityStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "salinity_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.salinity_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KhStatus(); ok {
		if err := icptest.KhStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "kh_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.kh_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClStatus(); ok {
		if err := icptest.ClStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cl_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NaStatus(); ok {
		if err := icptest.NaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "na_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.na_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MgStatus(); ok {
		if err := icptest.MgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mg_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SStatus(); ok {
		if err := icptest.SStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "s_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.s_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaStatus(); ok {
		if err := icptest.CaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ca_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ca_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KStatus(); ok {
		if err := icptest.KStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "k_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.k_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrStatus(); ok {
		if err := icptest.BrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "br_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.br_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SrStatus(); ok {
		if err := icptest.SrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BStatus(); ok {
		if err := icptest.BStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "b_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.b_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FStatus(); ok {
		if err := icptest.FStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "f_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.f_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LiStatus(); ok {
		if err := icptest.LiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "li_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.li_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiStatus(); ok {
		if err := icptest.SiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "si_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.si_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IStatus(); ok {
		if err := icptest.IStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "i_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.i_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaStatus(); ok {
		if err := icptest.BaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ba_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ba_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MoStatus(); ok {
		if err := icptest.MoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mo_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mo_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NiStatus(); ok {
		if err := icptest.NiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ni_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ni_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MnStatus(); ok {
		if err := icptest.MnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "mn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.mn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AsStatus(); ok {
		if err := icptest.AsStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "as_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.as_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BeStatus(); ok {
		if err := icptest.BeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "be_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.be_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CrStatus(); ok {
		if err := icptest.CrStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cr_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoStatus(); ok {
		if err := icptest.CoStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "co_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.co_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeStatus(); ok {
		if err := icptest.FeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "fe_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.fe_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CuStatus(); ok {
		if err := icptest.CuStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cu_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cu_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeStatus(); ok {
		if err := icptest.SeStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "se_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.se_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgStatus(); ok {
		if err := icptest.AgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ag_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ag_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VStatus(); ok {
		if err := icptest.VStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "v_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.v_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZnStatus(); ok {
		if err := icptest.ZnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "zn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.zn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SnStatus(); ok {
		if err := icptest.SnStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sn_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sn_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.No3Status(); ok {
		if err := icptest.No3StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "no3_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.no3_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PStatus(); ok {
		if err := icptest.PStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "p_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.p_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Po4Status(); ok {
		if err := icptest.Po4StatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "po4_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.po4_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlStatus(); ok {
		if err := icptest.AlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "al_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.al_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SbStatus(); ok {
		if err := icptest.SbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "sb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.sb_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BiStatus(); ok {
		if err := icptest.BiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "bi_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.bi_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PbStatus(); ok {
		if err := icptest.PbStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "pb_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.pb_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CdStatus(); ok {
		if err := icptest.CdStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "cd_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.cd_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LaStatus(); ok {
		if err := icptest.LaStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "la_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.la_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TlStatus(); ok {
		if err := icptest.TlStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "tl_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.tl_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiStatus(); ok {
		if err := icptest.TiStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "ti_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.ti_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WStatus(); ok {
		if err := icptest.WStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "w_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.w_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HgStatus(); ok {
		if err := icptest.HgStatusValidator(string(v)); err != nil {
			return &ValidationError{Name: "hg_status", err: fmt.Errorf(`ent: validator failed for field "IcpTest.hg_status": %w`, err)}
		}
	}
	if _u.mutation.TankCleared() && len(_u.mutation.TankIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IcpTest.tank"`)
	}
	return nil
}

func (_u *IcpTestUpdateOne) sqlSave(ctx context.Context) (_node *IcpTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(icptest.Table, icptest.Columns, sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IcpTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, icptest.FieldID)
		for _, f := range fields {
			if !icptest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != icptest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(icptest.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LabName(); ok {
		_spec.SetField(icptest.FieldLabName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(icptest.FieldTestID, field.TypeString, value)
	}
	if _u.mutation.TestIDCleared() {
		_spec.ClearField(icptest.FieldTestID, field.TypeString)
	}
	if value, ok := _u.mutation.WaterType(); ok {
		_spec.SetField(icptest.FieldWaterType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleDate(); ok {
		_spec.SetField(icptest.FieldSampleDate, field.TypeTime, value)
	}
	if _u.mutation.SampleDateCleared() {
		_spec.ClearField(icptest.FieldSampleDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReceivedDate(); ok {
		_spec.SetField(icptest.FieldReceivedDate, field.TypeTime, value)
	}
	if _u.mutation.ReceivedDateCleared() {
		_spec.ClearField(icptest.FieldReceivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EvaluatedDate(); ok {
		_spec.SetField(icptest.FieldEvaluatedDate, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedDateCleared() {
		_spec.ClearField(icptest.FieldEvaluatedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ScoreMajorElements(); ok {
		_spec.SetField(icptest.FieldScoreMajorElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreMajorElements(); ok {
		_spec.AddField(icptest.FieldScoreMajorElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreMajorElementsCleared() {
		_spec.ClearField(icptest.FieldScoreMajorElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreMinorElements(); ok {
		_spec.SetField(icptest.FieldScoreMinorElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreMinorElements(); ok {
		_spec.AddField(icptest.FieldScoreMinorElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreMinorElementsCleared() {
		_spec.ClearField(icptest.FieldScoreMinorElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScorePollutants(); ok {
		_spec.SetField(icptest.FieldScorePollutants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePollutants(); ok {
		_spec.AddField(icptest.FieldScorePollutants, field.TypeInt, value)
	}
	if _u.mutation.ScorePollutantsCleared() {
		_spec.ClearField(icptest.FieldScorePollutants, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreBaseElements(); ok {
		_spec.SetField(icptest.FieldScoreBaseElements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreBaseElements(); ok {
		_spec.AddField(icptest.FieldScoreBaseElements, field.TypeInt, value)
	}
	if _u.mutation.ScoreBaseElementsCleared() {
		_spec.ClearField(icptest.FieldScoreBaseElements, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreOverall(); ok {
		_spec.SetField(icptest.FieldScoreOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreOverall(); ok {
		_spec.AddField(icptest.FieldScoreOverall, field.TypeInt, value)
	}
	if _u.mutation.ScoreOverallCleared() {
		_spec.ClearField(icptest.FieldScoreOverall, field.TypeInt)
	}
	if value, ok := _u.mutation.Salinity(); ok {
		_spec.SetField(icptest.FieldSalinity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalinity(); ok {
		_spec.AddField(icptest.FieldSalinity, field.TypeFloat64, value)
	}
	if _u.mutation.SalinityCleared() {
		_spec.ClearField(icptest.FieldSalinity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SalinityStatus(); ok {
		_spec.SetField(icptest.FieldSalinityStatus, field.TypeString, value)
	}
	if _u.mutation.SalinityStatusCleared() {
		_spec.ClearField(icptest.FieldSalinityStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Kh(); ok {
		_spec.SetField(icptest.FieldKh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKh(); ok {
		_spec.AddField(icptest.FieldKh, field.TypeFloat64, value)
	}
	if _u.mutation.KhCleared() {
		_spec.ClearField(icptest.FieldKh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.KhStatus(); ok {
		_spec.SetField(icptest.FieldKhStatus, field.TypeString, value)
	}
	if _u.mutation.KhStatusCleared() {
		_spec.ClearField(icptest.FieldKhStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cl(); ok {
		_spec.SetField(icptest.FieldCl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCl(); ok {
		_spec.AddField(icptest.FieldCl, field.TypeFloat64, value)
	}
	if _u.mutation.ClCleared() {
		_spec.ClearField(icptest.FieldCl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClStatus(); ok {
		_spec.SetField(icptest.FieldClStatus, field.TypeString, value)
	}
	if _u.mutation.ClStatusCleared() {
		_spec.ClearField(icptest.FieldClStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Na(); ok {
		_spec.SetField(icptest.FieldNa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNa(); ok {
		_spec.AddField(icptest.FieldNa, field.TypeFloat64, value)
	}
	if _u.mutation.NaCleared() {
		_spec.ClearField(icptest.FieldNa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NaStatus(); ok {
		_spec.SetField(icptest.FieldNaStatus, field.TypeString, value)
	}
	if _u.mutation.NaStatusCleared() {
		_spec.ClearField(icptest.FieldNaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mg(); ok {
		_spec.SetField(icptest.FieldMg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMg(); ok {
		_spec.AddField(icptest.FieldMg, field.TypeFloat64, value)
	}
	if _u.mutation.MgCleared() {
		_spec.ClearField(icptest.FieldMg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MgStatus(); ok {
		_spec.SetField(icptest.FieldMgStatus, field.TypeString, value)
	}
	if _u.mutation.MgStatusCleared() {
		_spec.ClearField(icptest.FieldMgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.S(); ok {
		_spec.SetField(icptest.FieldS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedS(); ok {
		_spec.AddField(icptest.FieldS, field.TypeFloat64, value)
	}
	if _u.mutation.SCleared() {
		_spec.ClearField(icptest.FieldS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SStatus(); ok {
		_spec.SetField(icptest.FieldSStatus, field.TypeString, value)
	}
	if _u.mutation.SStatusCleared() {
		_spec.ClearField(icptest.FieldSStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ca(); ok {
		_spec.SetField(icptest.FieldCa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCa(); ok {
		_spec.AddField(icptest.FieldCa, field.TypeFloat64, value)
	}
	if _u.mutation.CaCleared() {
		_spec.ClearField(icptest.FieldCa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CaStatus(); ok {
		_spec.SetField(icptest.FieldCaStatus, field.TypeString, value)
	}
	if _u.mutation.CaStatusCleared() {
		_spec.ClearField(icptest.FieldCaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.K(); ok {
		_spec.SetField(icptest.FieldK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedK(); ok {
		_spec.AddField(icptest.FieldK, field.TypeFloat64, value)
	}
	if _u.mutation.KCleared() {
		_spec.ClearField(icptest.FieldK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.KStatus(); ok {
		_spec.SetField(icptest.FieldKStatus, field.TypeString, value)
	}
	if _u.mutation.KStatusCleared() {
		_spec.ClearField(icptest.FieldKStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Br(); ok {
		_spec.SetField(icptest.FieldBr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBr(); ok {
		_spec.AddField(icptest.FieldBr, field.TypeFloat64, value)
	}
	if _u.mutation.BrCleared() {
		_spec.ClearField(icptest.FieldBr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BrStatus(); ok {
		_spec.SetField(icptest.FieldBrStatus, field.TypeString, value)
	}
	if _u.mutation.BrStatusCleared() {
		_spec.ClearField(icptest.FieldBrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sr(); ok {
		_spec.SetField(icptest.FieldSr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSr(); ok {
		_spec.AddField(icptest.FieldSr, field.TypeFloat64, value)
	}
	if _u.mutation.SrCleared() {
		_spec.ClearField(icptest.FieldSr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SrStatus(); ok {
		_spec.SetField(icptest.FieldSrStatus, field.TypeString, value)
	}
	if _u.mutation.SrStatusCleared() {
		_spec.ClearField(icptest.FieldSrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.B(); ok {
		_spec.SetField(icptest.FieldB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedB(); ok {
		_spec.AddField(icptest.FieldB, field.TypeFloat64, value)
	}
	if _u.mutation.BCleared() {
		_spec.ClearField(icptest.FieldB, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BStatus(); ok {
		_spec.SetField(icptest.FieldBStatus, field.TypeString, value)
	}
	if _u.mutation.BStatusCleared() {
		_spec.ClearField(icptest.FieldBStatus, field.TypeString)
	}
	if value, ok := _u.mutation.F(); ok {
		_spec.SetField(icptest.FieldF, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedF(); ok {
		_spec.AddField(icptest.FieldF, field.TypeFloat64, value)
	}
	if _u.mutation.FCleared() {
		_spec.ClearField(icptest.FieldF, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FStatus(); ok {
		_spec.SetField(icptest.FieldFStatus, field.TypeString, value)
	}
	if _u.mutation.FStatusCleared() {
		_spec.ClearField(icptest.FieldFStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Li(); ok {
		_spec.SetField(icptest.FieldLi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLi(); ok {
		_spec.AddField(icptest.FieldLi, field.TypeFloat64, value)
	}
	if _u.mutation.LiCleared() {
		_spec.ClearField(icptest.FieldLi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LiStatus(); ok {
		_spec.SetField(icptest.FieldLiStatus, field.TypeString, value)
	}
	if _u.mutation.LiStatusCleared() {
		_spec.ClearField(icptest.FieldLiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Si(); ok {
		_spec.SetField(icptest.FieldSi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSi(); ok {
		_spec.AddField(icptest.FieldSi, field.TypeFloat64, value)
	}
	if _u.mutation.SiCleared() {
		_spec.ClearField(icptest.FieldSi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SiStatus(); ok {
		_spec.SetField(icptest.FieldSiStatus, field.TypeString, value)
	}
	if _u.mutation.SiStatusCleared() {
		_spec.ClearField(icptest.FieldSiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.I(); ok {
		_spec.SetField(icptest.FieldI, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedI(); ok {
		_spec.AddField(icptest.FieldI, field.TypeFloat64, value)
	}
	if _u.mutation.ICleared() {
		_spec.ClearField(icptest.FieldI, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IStatus(); ok {
		_spec.SetField(icptest.FieldIStatus, field.TypeString, value)
	}
	if _u.mutation.IStatusCleared() {
		_spec.ClearField(icptest.FieldIStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ba(); ok {
		_spec.SetField(icptest.FieldBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBa(); ok {
		_spec.AddField(icptest.FieldBa, field.TypeFloat64, value)
	}
	if _u.mutation.BaCleared() {
		_spec.ClearField(icptest.FieldBa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaStatus(); ok {
		_spec.SetField(icptest.FieldBaStatus, field.TypeString, value)
	}
	if _u.mutation.BaStatusCleared() {
		_spec.ClearField(icptest.FieldBaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mo(); ok {
		_spec.SetField(icptest.FieldMo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMo(); ok {
		_spec.AddField(icptest.FieldMo, field.TypeFloat64, value)
	}
	if _u.mutation.MoCleared() {
		_spec.ClearField(icptest.FieldMo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MoStatus(); ok {
		_spec.SetField(icptest.FieldMoStatus, field.TypeString, value)
	}
	if _u.mutation.MoStatusCleared() {
		_spec.ClearField(icptest.FieldMoStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ni(); ok {
		_spec.SetField(icptest.FieldNi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNi(); ok {
		_spec.AddField(icptest.FieldNi, field.TypeFloat64, value)
	}
	if _u.mutation.NiCleared() {
		_spec.ClearField(icptest.FieldNi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NiStatus(); ok {
		_spec.SetField(icptest.FieldNiStatus, field.TypeString, value)
	}
	if _u.mutation.NiStatusCleared() {
		_spec.ClearField(icptest.FieldNiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Mn(); ok {
		_spec.SetField(icptest.FieldMn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMn(); ok {
		_spec.AddField(icptest.FieldMn, field.TypeFloat64, value)
	}
	if _u.mutation.MnCleared() {
		_spec.ClearField(icptest.FieldMn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MnStatus(); ok {
		_spec.SetField(icptest.FieldMnStatus, field.TypeString, value)
	}
	if _u.mutation.MnStatusCleared() {
		_spec.ClearField(icptest.FieldMnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.As(); ok {
		_spec.SetField(icptest.FieldAs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAs(); ok {
		_spec.AddField(icptest.FieldAs, field.TypeFloat64, value)
	}
	if _u.mutation.AsCleared() {
		_spec.ClearField(icptest.FieldAs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AsStatus(); ok {
		_spec.SetField(icptest.FieldAsStatus, field.TypeString, value)
	}
	if _u.mutation.AsStatusCleared() {
		_spec.ClearField(icptest.FieldAsStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Be(); ok {
		_spec.SetField(icptest.FieldBe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBe(); ok {
		_spec.AddField(icptest.FieldBe, field.TypeFloat64, value)
	}
	if _u.mutation.BeCleared() {
		_spec.ClearField(icptest.FieldBe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BeStatus(); ok {
		_spec.SetField(icptest.FieldBeStatus, field.TypeString, value)
	}
	if _u.mutation.BeStatusCleared() {
		_spec.ClearField(icptest.FieldBeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cr(); ok {
		_spec.SetField(icptest.FieldCr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCr(); ok {
		_spec.AddField(icptest.FieldCr, field.TypeFloat64, value)
	}
	if _u.mutation.CrCleared() {
		_spec.ClearField(icptest.FieldCr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CrStatus(); ok {
		_spec.SetField(icptest.FieldCrStatus, field.TypeString, value)
	}
	if _u.mutation.CrStatusCleared() {
		_spec.ClearField(icptest.FieldCrStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Co(); ok {
		_spec.SetField(icptest.FieldCo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCo(); ok {
		_spec.AddField(icptest.FieldCo, field.TypeFloat64, value)
	}
	if _u.mutation.CoCleared() {
		_spec.ClearField(icptest.FieldCo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoStatus(); ok {
		_spec.SetField(icptest.FieldCoStatus, field.TypeString, value)
	}
	if _u.mutation.CoStatusCleared() {
		_spec.ClearField(icptest.FieldCoStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Fe(); ok {
		_spec.SetField(icptest.FieldFe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFe(); ok {
		_spec.AddField(icptest.FieldFe, field.TypeFloat64, value)
	}
	if _u.mutation.FeCleared() {
		_spec.ClearField(icptest.FieldFe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeStatus(); ok {
		_spec.SetField(icptest.FieldFeStatus, field.TypeString, value)
	}
	if _u.mutation.FeStatusCleared() {
		_spec.ClearField(icptest.FieldFeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cu(); ok {
		_spec.SetField(icptest.FieldCu, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCu(); ok {
		_spec.AddField(icptest.FieldCu, field.TypeFloat64, value)
	}
	if _u.mutation.CuCleared() {
		_spec.ClearField(icptest.FieldCu, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CuStatus(); ok {
		_spec.SetField(icptest.FieldCuStatus, field.TypeString, value)
	}
	if _u.mutation.CuStatusCleared() {
		_spec.ClearField(icptest.FieldCuStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Se(); ok {
		_spec.SetField(icptest.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSe(); ok {
		_spec.AddField(icptest.FieldSe, field.TypeFloat64, value)
	}
	if _u.mutation.SeCleared() {
		_spec.ClearField(icptest.FieldSe, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SeStatus(); ok {
		_spec.SetField(icptest.FieldSeStatus, field.TypeString, value)
	}
	if _u.mutation.SeStatusCleared() {
		_spec.ClearField(icptest.FieldSeStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ag(); ok {
		_spec.SetField(icptest.FieldAg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAg(); ok {
		_spec.AddField(icptest.FieldAg, field.TypeFloat64, value)
	}
	if _u.mutation.AgCleared() {
		_spec.ClearField(icptest.FieldAg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AgStatus(); ok {
		_spec.SetField(icptest.FieldAgStatus, field.TypeString, value)
	}
	if _u.mutation.AgStatusCleared() {
		_spec.ClearField(icptest.FieldAgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.V(); ok {
		_spec.SetField(icptest.FieldV, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedV(); ok {
		_spec.AddField(icptest.FieldV, field.TypeFloat64, value)
	}
	if _u.mutation.VCleared() {
		_spec.ClearField(icptest.FieldV, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VStatus(); ok {
		_spec.SetField(icptest.FieldVStatus, field.TypeString, value)
	}
	if _u.mutation.VStatusCleared() {
		_spec.ClearField(icptest.FieldVStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Zn(); ok {
		_spec.SetField(icptest.FieldZn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZn(); ok {
		_spec.AddField(icptest.FieldZn, field.TypeFloat64, value)
	}
	if _u.mutation.ZnCleared() {
		_spec.ClearField(icptest.FieldZn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ZnStatus(); ok {
		_spec.SetField(icptest.FieldZnStatus, field.TypeString, value)
	}
	if _u.mutation.ZnStatusCleared() {
		_spec.ClearField(icptest.FieldZnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sn(); ok {
		_spec.SetField(icptest.FieldSn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSn(); ok {
		_spec.AddField(icptest.FieldSn, field.TypeFloat64, value)
	}
	if _u.mutation.SnCleared() {
		_spec.ClearField(icptest.FieldSn, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SnStatus(); ok {
		_spec.SetField(icptest.FieldSnStatus, field.TypeString, value)
	}
	if _u.mutation.SnStatusCleared() {
		_spec.ClearField(icptest.FieldSnStatus, field.TypeString)
	}
	if value, ok := _u.mutation.No3(); ok {
		_spec.SetField(icptest.FieldNo3, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNo3(); ok {
		_spec.AddField(icptest.FieldNo3, field.TypeFloat64, value)
	}
	if _u.mutation.No3Cleared() {
		_spec.ClearField(icptest.FieldNo3, field.TypeFloat64)
	}
	if value, ok := _u.mutation.No3Status(); ok {
		_spec.SetField(icptest.FieldNo3Status, field.TypeString, value)
	}
	if _u.mutation.No3StatusCleared() {
		_spec.ClearField(icptest.FieldNo3Status, field.TypeString)
	}
	if value, ok := _u.mutation.P(); ok {
		_spec.SetField(icptest.FieldP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP(); ok {
		_spec.AddField(icptest.FieldP, field.TypeFloat64, value)
	}
	if _u.mutation.PCleared() {
		_spec.ClearField(icptest.FieldP, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PStatus(); ok {
		_spec.SetField(icptest.FieldPStatus, field.TypeString, value)
	}
	if _u.mutation.PStatusCleared() {
		_spec.ClearField(icptest.FieldPStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Po4(); ok {
		_spec.SetField(icptest.FieldPo4, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPo4(); ok {
		_spec.AddField(icptest.FieldPo4, field.TypeFloat64, value)
	}
	if _u.mutation.Po4Cleared() {
		_spec.ClearField(icptest.FieldPo4, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Po4Status(); ok {
		_spec.SetField(icptest.FieldPo4Status, field.TypeString, value)
	}
	if _u.mutation.Po4StatusCleared() {
		_spec.ClearField(icptest.FieldPo4Status, field.TypeString)
	}
	if value, ok := _u.mutation.Al(); ok {
		_spec.SetField(icptest.FieldAl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAl(); ok {
		_spec.AddField(icptest.FieldAl, field.TypeFloat64, value)
	}
	if _u.mutation.AlCleared() {
		_spec.ClearField(icptest.FieldAl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AlStatus(); ok {
		_spec.SetField(icptest.FieldAlStatus, field.TypeString, value)
	}
	if _u.mutation.AlStatusCleared() {
		_spec.ClearField(icptest.FieldAlStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Sb(); ok {
		_spec.SetField(icptest.FieldSb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSb(); ok {
		_spec.AddField(icptest.FieldSb, field.TypeFloat64, value)
	}
	if _u.mutation.SbCleared() {
		_spec.ClearField(icptest.FieldSb, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SbStatus(); ok {
		_spec.SetField(icptest.FieldSbStatus, field.TypeString, value)
	}
	if _u.mutation.SbStatusCleared() {
		_spec.ClearField(icptest.FieldSbStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Bi(); ok {
		_spec.SetField(icptest.FieldBi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBi(); ok {
		_spec.AddField(icptest.FieldBi, field.TypeFloat64, value)
	}
	if _u.mutation.BiCleared() {
		_spec.ClearField(icptest.FieldBi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BiStatus(); ok {
		_spec.SetField(icptest.FieldBiStatus, field.TypeString, value)
	}
	if _u.mutation.BiStatusCleared() {
		_spec.ClearField(icptest.FieldBiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Pb(); ok {
		_spec.SetField(icptest.FieldPb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPb(); ok {
		_spec.AddField(icptest.FieldPb, field.TypeFloat64, value)
	}
	if _u.mutation.PbCleared() {
		_spec.ClearField(icptest.FieldPb, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PbStatus(); ok {
		_spec.SetField(icptest.FieldPbStatus, field.TypeString, value)
	}
	if _u.mutation.PbStatusCleared() {
		_spec.ClearField(icptest.FieldPbStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Cd(); ok {
		_spec.SetField(icptest.FieldCd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCd(); ok {
		_spec.AddField(icptest.FieldCd, field.TypeFloat64, value)
	}
	if _u.mutation.CdCleared() {
		_spec.ClearField(icptest.FieldCd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CdStatus(); ok {
		_spec.SetField(icptest.FieldCdStatus, field.TypeString, value)
	}
	if _u.mutation.CdStatusCleared() {
		_spec.ClearField(icptest.FieldCdStatus, field.TypeString)
	}
	if value, ok := _u.mutation.La(); ok {
		_spec.SetField(icptest.FieldLa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLa(); ok {
		_spec.AddField(icptest.FieldLa, field.TypeFloat64, value)
	}
	if _u.mutation.LaCleared() {
		_spec.ClearField(icptest.FieldLa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaStatus(); ok {
		_spec.SetField(icptest.FieldLaStatus, field.TypeString, value)
	}
	if _u.mutation.LaStatusCleared() {
		_spec.ClearField(icptest.FieldLaStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Tl(); ok {
		_spec.SetField(icptest.FieldTl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTl(); ok {
		_spec.AddField(icptest.FieldTl, field.TypeFloat64, value)
	}
	if _u.mutation.TlCleared() {
		_spec.ClearField(icptest.FieldTl, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TlStatus(); ok {
		_spec.SetField(icptest.FieldTlStatus, field.TypeString, value)
	}
	if _u.mutation.TlStatusCleared() {
		_spec.ClearField(icptest.FieldTlStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Ti(); ok {
		_spec.SetField(icptest.FieldTi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTi(); ok {
		_spec.AddField(icptest.FieldTi, field.TypeFloat64, value)
	}
	if _u.mutation.TiCleared() {
		_spec.ClearField(icptest.FieldTi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TiStatus(); ok {
		_spec.SetField(icptest.FieldTiStatus, field.TypeString, value)
	}
	if _u.mutation.TiStatusCleared() {
		_spec.ClearField(icptest.FieldTiStatus, field.TypeString)
	}
	if value, ok := _u.mutation.W(); ok {
		_spec.SetField(icptest.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedW(); ok {
		_spec.AddField(icptest.FieldW, field.TypeFloat64, value)
	}
	if _u.mutation.WCleared() {
		_spec.ClearField(icptest.FieldW, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WStatus(); ok {
		_spec.SetField(icptest.FieldWStatus, field.TypeString, value)
	}
	if _u.mutation.WStatusCleared() {
		_spec.ClearField(icptest.FieldWStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Hg(); ok {
		_spec.SetField(icptest.FieldHg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHg(); ok {
		_spec.AddField(icptest.FieldHg, field.TypeFloat64, value)
	}
	if _u.mutation.HgCleared() {
		_spec.ClearField(icptest.FieldHg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HgStatus(); ok {
		_spec.SetField(icptest.FieldHgStatus, field.TypeString, value)
	}
	if _u.mutation.HgStatusCleared() {
		_spec.ClearField(icptest.FieldHgStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(icptest.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, icptest.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(icptest.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.DosingInstructions(); ok {
		_spec.SetField(icptest.FieldDosingInstructions, field.TypeString, value)
	}
	if _u.mutation.DosingInstructionsCleared() {
		_spec.ClearField(icptest.FieldDosingInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(icptest.FieldPdfFilename, field.TypeString, value)
	}
	if _u.mutation.PdfFilenameCleared() {
		_spec.ClearField(icptest.FieldPdfFilename, field.TypeString)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(icptest.FieldPdfPath, field.TypeString, value)
	}
	if _u.mutation.PdfPathCleared() {
		_spec.ClearField(icptest.FieldPdfPath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(icptest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(icptest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TankCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TankIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IcpTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{icptest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
