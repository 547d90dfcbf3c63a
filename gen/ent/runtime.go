// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/db/ent/schema"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/parsejob"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	icptestFields := schema.IcpTest{}.Fields()
	_ = icptestFields
	// icptestDescLabName is the schema descriptor for lab_name field.
	icptestDescLabName := icptestFields[4].Descriptor()
	// icptest.LabNameValidator is a validator for the "lab_name" field. It is called by the builders before save.
	icptest.LabNameValidator = icptestDescLabName.Validators[0].(func(string) error)
	// icptestDescWaterType is the schema descriptor for water_type field.
	icptestDescWaterType := icptestFields[6].Descriptor()
	// icptest.DefaultWaterType holds the default value on creation for the water_type field.
	icptest.DefaultWaterType = constants.WaterType(icptestDescWaterType.Default.(string))
	// icptest.WaterTypeValidator is a validator for the "water_type" field. It is called by the builders before save.
	icptest.WaterTypeValidator = icptestDescWaterType.Validators[0].(func(string) error)
	// icptestDescSalinityStatus is the schema descriptor for salinity_status field.
	icptestDescSalinityStatus := icptestFields[16].Descriptor()
	// icptest.SalinityStatusValidator is a validator for the "salinity_status" field. It is called by the builders before save.
	icptest.SalinityStatusValidator = icptestDescSalinityStatus.Validators[0].(func(string) error)
	// icptestDescKhStatus is the schema descriptor for kh_status field.
	icptestDescKhStatus := icptestFields[18].Descriptor()
	// icptest.KhStatusValidator is a validator for the "kh_status" field. It is called by the builders before save.
	icptest.KhStatusValidator = icptestDescKhStatus.Validators[0].(func(string) error)
	// icptestDescClStatus is the schema descriptor for cl_status field.
	icptestDescClStatus := icptestFields[20].Descriptor()
	// icptest.ClStatusValidator is a validator for the "cl_status" field. It is called by the builders before save.
	icptest.ClStatusValidator = icptestDescClStatus.Validators[0].(func(string) error)
	// icptestDescNaStatus is the schema descriptor for na_status field.
	icptestDescNaStatus := icptestFields[22].Descriptor()
	// icptest.NaStatusValidator is a validator for the "na_status" field. It is called by the builders before save.
	icptest.NaStatusValidator = icptestDescNaStatus.Validators[0].(func(string) error)
	// icptestDescMgStatus is the schema descriptor for mg_status field.
	icptestDescMgStatus := icptestFields[24].Descriptor()
	// icptest.MgStatusValidator is a validator for the "mg_status" field. It is called by the builders before save.
	icptest.MgStatusValidator = icptestDescMgStatus.Validators[0].(func(string) error)
	// icptestDescSStatus is the schema descriptor for s_status field.
	icptestDescSStatus := icptestFields[26].Descriptor()
	// icptest.SStatusValidator is a validator for the "s_status" field. It is called by the builders before save.
	icptest.SStatusValidator = icptestDescSStatus.Validators[0].(func(string) error)
	// icptestDescCaStatus is the schema descriptor for ca_status field.
	icptestDescCaStatus := icptestFields[28].Descriptor()
	// icptest.CaStatusValidator is a validator for the "ca_status" field. It is called by the builders before save.
	icptest.CaStatusValidator = icptestDescCaStatus.Validators[0].(func(string) error)
	// icptestDescKStatus is the schema descriptor for k_status field.
	icptestDescKStatus := icptestFields[30].Descriptor()
	// icptest.KStatusValidator is a validator for the "k_status" field. It is called by the builders before save.
	icptest.KStatusValidator = icptestDescKStatus.Validators[0].(func(string) error)
	// icptestDescBrStatus is the schema descriptor for br_status field.
	icptestDescBrStatus := icptestFields[32].Descriptor()
	// icptest.BrStatusValidator is a validator for the "br_status" field. It is called by the builders before save.
	icptest.BrStatusValidator = icptestDescBrStatus.Validators[0].(func(string) error)
	// icptestDescSrStatus is the schema descriptor for sr_status field.
	icptestDescSrStatus := icptestFields[34].Descriptor()
	// icptest.SrStatusValidator is a validator for the "sr_status" field. It is called by the builders before save.
	icptest.SrStatusValidator = icptestDescSrStatus.Validators[0].(func(string) error)
	// icptestDescBStatus is the schema descriptor for b_status field.
	icptestDescBStatus := icptestFields[36].Descriptor()
	// icptest.BStatusValidator is a validator for the "b_status" field. It is called by the builders before save.
	icptest.BStatusValidator = icptestDescBStatus.Validators[0].(func(string) error)
	// icptestDescFStatus is the schema descriptor for f_status field.
	icptestDescFStatus := icptestFields[38].Descriptor()
	// icptest.FStatusValidator is a validator for the "f_status" field. It is called by the builders before save.
	icptest.FStatusValidator = icptestDescFStatus.Validators[0].(func(string) error)
	// icptestDescLiStatus is the schema descriptor for li_status field.
	icptestDescLiStatus := icptestFields[40].Descriptor()
	// icptest.LiStatusValidator is a validator for the "li_status" field. It is called by the builders before save.
	icptest.LiStatusValidator = icptestDescLiStatus.Validators[0].(func(string) error)
	// icptestDescSiStatus is the schema descriptor for si_status field.
	icptestDescSiStatus := icptestFields[42].Descriptor()
	// icptest.SiStatusValidator is a validator for the "si_status" field. It is called by the builders before save.
	icptest.SiStatusValidator = icptestDescSiStatus.Validators[0].(func(string) error)
	// icptestDescIStatus is the schema descriptor for i_status field.
	icptestDescIStatus := icptestFields[44].Descriptor()
	// icptest.IStatusValidator is a validator for the "i_status" field. It is called by the builders before save.
	icptest.IStatusValidator = icptestDescIStatus.Validators[0].(func(string) error)
	// icptestDescBaStatus is the schema descriptor for ba_status field.
	icptestDescBaStatus := icptestFields[46].Descriptor()
	// icptest.BaStatusValidator is a validator for the "ba_status" field. It is called by the builders before save.
	icptest.BaStatusValidator = icptestDescBaStatus.Validators[0].(func(string) error)
	// icptestDescMoStatus is the schema descriptor for mo_status field.
	icptestDescMoStatus := icptestFields[48].Descriptor()
	// icptest.MoStatusValidator is a validator for the "mo_status" field. It is called by the builders before save.
	icptest.MoStatusValidator = icptestDescMoStatus.Validators[0].(func(string) error)
	// icptestDescNiStatus is the schema descriptor for ni_status field.
	icptestDescNiStatus := icptestFields[50].Descriptor()
	// icptest.NiStatusValidator is a validator for the "ni_status" field. It is called by the builders before save.
	icptest.NiStatusValidator = icptestDescNiStatus.Validators[0].(func(string) error)
	// icptestDescMnStatus is the schema descriptor for mn_status field.
	icptestDescMnStatus := icptestFields[52].Descriptor()
	// icptest.MnStatusValidator is a validator for the "mn_status" field. It is called by the builders before save.
	icptest.MnStatusValidator = icptestDescMnStatus.Validators[0].(func(string) error)
	// icptestDescAsStatus is the schema descriptor for as_status field.
	icptestDescAsStatus := icptestFields[54].Descriptor()
	// icptest.AsStatusValidator is a validator for the "as_status" field. It is called by the builders before save.
	icptest.AsStatusValidator = icptestDescAsStatus.Validators[0].(func(string) error)
	// icptestDescBeStatus is the schema descriptor for be_status field.
	icptestDescBeStatus := icptestFields[56].Descriptor()
	// icptest.BeStatusValidator is a validator for the "be_status" field. It is called by the builders before save.
	icptest.BeStatusValidator = icptestDescBeStatus.Validators[0].(func(string) error)
	// icptestDescCrStatus is the schema descriptor for cr_status field.
	icptestDescCrStatus := icptestFields[58].Descriptor()
	// icptest.CrStatusValidator is a validator for the "cr_status" field. It is called by the builders before save.
	icptest.CrStatusValidator = icptestDescCrStatus.Validators[0].(func(string) error)
	// icptestDescCoStatus is the schema descriptor for co_status field.
	icptestDescCoStatus := icptestFields[60].Descriptor()
	// icptest.CoStatusValidator is a validator for the "co_status" field. It is called by the builders before save.
	icptest.CoStatusValidator = icptestDescCoStatus.Validators[0].(func(string) error)
	// icptestDescFeStatus is the schema descriptor for fe_status field.
	icptestDescFeStatus := icptestFields[62].Descriptor()
	// icptest.FeStatusValidator is a validator for the "fe_status" field. It is called by the builders before save.
	icptest.FeStatusValidator = icptestDescFeStatus.Validators[0].(func(string) error)
	// icptestDescCuStatus is the schema descriptor for cu_status field.
	icptestDescCuStatus := icptestFields[64].Descriptor()
	// icptest.CuStatusValidator is a validator for the "cu_status" field. It is called by the builders before save.
	icptest.CuStatusValidator = icptestDescCuStatus.Validators[0].(func(string) error)
	// icptestDescSeStatus is the schema descriptor for se_status field.
	icptestDescSeStatus := icptestFields[66].Descriptor()
	// icptest.SeStatusValidator is a validator for the "se_status" field. It is called by the builders before save.
	icptest.SeStatusValidator = icptestDescSeStatus.Validators[0].(func(string) error)
	// icptestDescAgStatus is the schema descriptor for ag_status field.
	icptestDescAgStatus := icptestFields[68].Descriptor()
	// icptest.AgStatusValidator is a validator for the "ag_status" field. It is called by the builders before save.
	icptest.AgStatusValidator = icptestDescAgStatus.Validators[0].(func(string) error)
	// icptestDescVStatus is the schema descriptor for v_status field.
	icptestDescVStatus := icptestFields[70].Descriptor()
	// icptest.VStatusValidator is a validator for the "v_status" field. It is called by the builders before save.
	icptest.VStatusValidator = icptestDescVStatus.Validators[0].(func(string) error)
	// icptestDescZnStatus is the schema descriptor for zn_status field.
	icptestDescZnStatus := icptestFields[72].Descriptor()
	// icptest.ZnStatusValidator is a validator for the "zn_status" field. It is called by the builders before save.
	icptest.ZnStatusValidator = icptestDescZnStatus.Validators[0].(func(string) error)
	// icptestDescSnStatus is the schema descriptor for sn_status field.
	icptestDescSnStatus := icptestFields[74].Descriptor()
	// icptest.SnStatusValidator is a validator for the "sn_status" field. It is called by the builders before save.
	icptest.SnStatusValidator = icptestDescSnStatus.Validators[0].(func(string) error)
	// icptestDescNo3Status is the schema descriptor for no3_status field.
	icptestDescNo3Status := icptestFields[76].Descriptor()
	// icptest.No3StatusValidator is a validator for the "no3_status" field. It is called by the builders before save.
	icptest.No3StatusValidator = icptestDescNo3Status.Validators[0].(func(string) error)
	// icptestDescPStatus is the schema descriptor for p_status field.
	icptestDescPStatus := icptestFields[78].Descriptor()
	// icptest.PStatusValidator is a validator for the "p_status" field. It is called by the builders before save.
	icptest.PStatusValidator = icptestDescPStatus.Validators[0].(func(string) error)
	// icptestDescPo4Status is the schema descriptor for po4_status field.
	icptestDescPo4Status := icptestFields[80].Descriptor()
	// icptest.Po4StatusValidator is a validator for the "po4_status" field. It is called by the builders before save.
	icptest.Po4StatusValidator = icptestDescPo4Status.Validators[0].(func(string) error)
	// icptestDescAlStatus is the schema descriptor for al_status field.
	icptestDescAlStatus := icptestFields[82].Descriptor()
	// icptest.AlStatusValidator is a validator for the "al_status" field. It is called by the builders before save.
	icptest.AlStatusValidator = icptestDescAlStatus.Validators[0].(func(string) error)
	// icptestDescSbStatus is the schema descriptor for sb_status field.
	icptestDescSbStatus := icptestFields[84].Descriptor()
	// icptest.SbStatusValidator is a validator for the "sb_status" field. It is called by the builders before save.
	icptest.SbStatusValidator = icptestDescSbStatus.Validators[0].(func(string) error)
	// icptestDescBiStatus is the schema descriptor for bi_status field.
	icptestDescBiStatus := icptestFields[86].Descriptor()
	// icptest.BiStatusValidator is a validator for the "bi_status" field. It is called by the builders before save.
	icptest.BiStatusValidator = icptestDescBiStatus.Validators[0].(func(string) error)
	// icptestDescPbStatus is the schema descriptor for pb_status field.
	icptestDescPbStatus := icptestFields[88].Descriptor()
	// icptest.PbStatusValidator is a validator for the "pb_status" field. It is called by the builders before save.
	icptest.PbStatusValidator = icptestDescPbStatus.Validators[0].(func(string) error)
	// icptestDescCdStatus is the schema descriptor for cd_status field.
	icptestDescCdStatus := icptestFields[90].Descriptor()
	// icptest.CdStatusValidator is a validator for the "cd_status" field. It is called by the builders before save.
	icptest.CdStatusValidator = icptestDescCdStatus.Validators[0].(func(string) error)
	// icptestDescLaStatus is the schema descriptor for la_status field.
	icptestDescLaStatus := icptestFields[92].Descriptor()
	// icptest.LaStatusValidator is a validator for the "la_status" field. It is called by the builders before save.
	icptest.LaStatusValidator = icptestDescLaStatus.Validators[0].(func(string) error)
	// icptestDescTlStatus is the schema descriptor for tl_status field.
	icptestDescTlStatus := icptestFields[94].Descriptor()
	// icptest.TlStatusValidator is a validator for the "tl_status" field. It is called by the builders before save.
	icptest.TlStatusValidator = icptestDescTlStatus.Validators[0].(func(string) error)
	// icptestDescTiStatus is the schema descriptor for ti_status field.
	icptestDescTiStatus := icptestFields[96].Descriptor()
	// icptest.TiStatusValidator is a validator for the "ti_status" field. It is called by the builders before save.
	icptest.TiStatusValidator = icptestDescTiStatus.Validators[0].(func(string) error)
	// icptestDescWStatus is the schema descriptor for w_status field.
	icptestDescWStatus := icptestFields[98].Descriptor()
	// icptest.WStatusValidator is a validator for the "w_status" field. It is called by the builders before save.
	icptest.WStatusValidator = icptestDescWStatus.Validators[0].(func(string) error)
	// icptestDescHgStatus is the schema descriptor for hg_status field.
	icptestDescHgStatus := icptestFields[100].Descriptor()
	// icptest.HgStatusValidator is a validator for the "hg_status" field. It is called by the builders before save.
	icptest.HgStatusValidator = icptestDescHgStatus.Validators[0].(func(string) error)
	// icptestDescCreatedAt is the schema descriptor for created_at field.
	icptestDescCreatedAt := icptestFields[105].Descriptor()
	// icptest.DefaultCreatedAt holds the default value on creation for the created_at field.
	icptest.DefaultCreatedAt = icptestDescCreatedAt.Default.(func() time.Time)
	// icptestDescUpdatedAt is the schema descriptor for updated_at field.
	icptestDescUpdatedAt := icptestFields[106].Descriptor()
	// icptest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	icptest.DefaultUpdatedAt = icptestDescUpdatedAt.Default.(func() time.Time)
	// icptest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	icptest.UpdateDefaultUpdatedAt = icptestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// icptestDescID is the schema descriptor for id field.
	icptestDescID := icptestFields[0].Descriptor()
	// icptest.DefaultID holds the default value on creation for the id field.
	icptest.DefaultID = icptestDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[3].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[4].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	reportfileFields := schema.ReportFile{}.Fields()
	_ = reportfileFields
	// reportfileDescSourcePath is the schema descriptor for source_path field.
	reportfileDescSourcePath := reportfileFields[2].Descriptor()
	// reportfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	reportfile.SourcePathValidator = reportfileDescSourcePath.Validators[0].(func(string) error)
	// reportfileDescContentHash is the schema descriptor for content_hash field.
	reportfileDescContentHash := reportfileFields[3].Descriptor()
	// reportfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	reportfile.ContentHashValidator = reportfileDescContentHash.Validators[0].(func([]byte) error)
	// reportfileDescFilename is the schema descriptor for filename field.
	reportfileDescFilename := reportfileFields[4].Descriptor()
	// reportfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	reportfile.FilenameValidator = reportfileDescFilename.Validators[0].(func(string) error)
	// reportfileDescFileExt is the schema descriptor for file_ext field.
	reportfileDescFileExt := reportfileFields[5].Descriptor()
	// reportfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	reportfile.FileExtValidator = reportfileDescFileExt.Validators[0].(func(string) error)
	// reportfileDescFileSize is the schema descriptor for file_size field.
	reportfileDescFileSize := reportfileFields[6].Descriptor()
	// reportfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	reportfile.FileSizeValidator = reportfileDescFileSize.Validators[0].(func(int) error)
	// reportfileDescUploadedAt is the schema descriptor for uploaded_at field.
	reportfileDescUploadedAt := reportfileFields[7].Descriptor()
	// reportfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	reportfile.DefaultUploadedAt = reportfileDescUploadedAt.Default.(func() time.Time)
	// reportfileDescID is the schema descriptor for id field.
	reportfileDescID := reportfileFields[0].Descriptor()
	// reportfile.DefaultID holds the default value on creation for the id field.
	reportfile.DefaultID = reportfileDescID.Default.(func() uuid.UUID)
	tankFields := schema.Tank{}.Fields()
	_ = tankFields
	// tankDescName is the schema descriptor for name field.
	tankDescName := tankFields[1].Descriptor()
	// tank.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tank.NameValidator = tankDescName.Validators[0].(func(string) error)
	// tankDescCreatedAt is the schema descriptor for created_at field.
	tankDescCreatedAt := tankFields[4].Descriptor()
	// tank.DefaultCreatedAt holds the default value on creation for the created_at field.
	tank.DefaultCreatedAt = tankDescCreatedAt.Default.(func() time.Time)
	// tankDescUpdatedAt is the schema descriptor for updated_at field.
	tankDescUpdatedAt := tankFields[5].Descriptor()
	// tank.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tank.DefaultUpdatedAt = tankDescUpdatedAt.Default.(func() time.Time)
	// tank.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tank.UpdateDefaultUpdatedAt = tankDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tankDescID is the schema descriptor for id field.
	tankDescID := tankFields[0].Descriptor()
	// tank.DefaultID holds the default value on creation for the id field.
	tank.DefaultID = tankDescID.Default.(func() uuid.UUID)
}
