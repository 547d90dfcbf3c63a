package utils

import (
	"time"

	"github.com/reefwatch/icp-tracker/gen/ent"
	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
	"github.com/reefwatch/icp-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int32 {
	if p == nil {
		return 0
	}
	return int32(*p)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToPBTank(t *entity.Tank) *icppb.Tank {
	pb := &icppb.Tank{
		Id:          t.ID.String(),
		Name:        t.Name,
		Description: strOrEmpty(t.Description),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.VolumeLiters != nil {
		pb.VolumeLiters = *t.VolumeLiters
	}
	return pb
}

func ToPBTestSummary(t *ent.IcpTest) *icppb.TestSummary {
	return &icppb.TestSummary{
		Id:                 t.ID.String(),
		TankId:             t.TankID.String(),
		TestDate:           t.TestDate.Format("2006-01-02"),
		LabName:            t.LabName,
		WaterType:          string(t.WaterType),
		TestId:             strOrEmpty(t.TestID),
		ScoreMajorElements: intOrZero(t.ScoreMajorElements),
		ScoreMinorElements: intOrZero(t.ScoreMinorElements),
		ScorePollutants:    intOrZero(t.ScorePollutants),
		ScoreBaseElements:  intOrZero(t.ScoreBaseElements),
		ScoreOverall:       intOrZero(t.ScoreOverall),
		PdfFilename:        strOrEmpty(t.PdfFilename),
		CreatedAt:          t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToTank(e *ent.Tank) *entity.Tank {
	return &entity.Tank{
		ID:           e.ID,
		Name:         e.Name,
		VolumeLiters: e.VolumeLiters,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToReportFile(e *ent.ReportFile) *entity.ReportFile {
	return &entity.ReportFile{
		ID:          e.ID,
		TankID:      e.TankID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToParseJob(e *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:           e.ID,
		FileID:       e.FileID,
		TankID:       e.TankID,
		Format:       e.Format,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		Status:       e.Status,
		ErrorMessage: e.ErrorMessage,
		RawText:      e.RawText,
		Pages:        e.Pages,
		RecordsCount: e.RecordsCount,
		ParsedJSON:   e.ParsedJSON,
	}
}

func ToPBParseJob(j *entity.ParseJob) *icppb.ParseJob {
	pb := &icppb.ParseJob{
		Id:           j.ID.String(),
		FileId:       j.FileID.String(),
		TankId:       j.TankID.String(),
		Format:       j.Format,
		Status:       strOrEmpty(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		Pages:        intOrZero(j.Pages),
		RecordsCount: intOrZero(j.RecordsCount),
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

// ToRecord maps a stored test row back onto the parser's record shape, which
// is the canonical JSON form for API responses and exports.
func ToRecord(e *ent.IcpTest) *atiparse.Record {
	testDate := e.TestDate
	return &atiparse.Record{
		LabName:   e.LabName,
		WaterType: e.WaterType,

		TestID:        e.TestID,
		TestDate:      &testDate,
		SampleDate:    e.SampleDate,
		ReceivedDate:  e.ReceivedDate,
		EvaluatedDate: e.EvaluatedDate,

		ScoreMajorElements: e.ScoreMajorElements,
		ScoreMinorElements: e.ScoreMinorElements,
		ScorePollutants:    e.ScorePollutants,
		ScoreBaseElements:  e.ScoreBaseElements,
		ScoreOverall:       e.ScoreOverall,

		Salinity: e.Salinity, SalinityStatus: e.SalinityStatus,
		KH: e.Kh, KHStatus: e.KhStatus,

		Cl: e.Cl, ClStatus: e.ClStatus,
		Na: e.Na, NaStatus: e.NaStatus,
		Mg: e.Mg, MgStatus: e.MgStatus,
		S: e.S, SStatus: e.SStatus,
		Ca: e.Ca, CaStatus: e.CaStatus,
		K: e.K, KStatus: e.KStatus,
		Br: e.Br, BrStatus: e.BrStatus,
		Sr: e.Sr, SrStatus: e.SrStatus,
		B: e.B, BStatus: e.BStatus,
		F: e.F, FStatus: e.FStatus,

		Li: e.Li, LiStatus: e.LiStatus,
		Si: e.Si, SiStatus: e.SiStatus,
		I: e.I, IStatus: e.IStatus,
		Ba: e.Ba, BaStatus: e.BaStatus,
		Mo: e.Mo, MoStatus: e.MoStatus,
		Ni: e.Ni, NiStatus: e.NiStatus,
		Mn: e.Mn, MnStatus: e.MnStatus,
		As: e.As, AsStatus: e.AsStatus,
		Be: e.Be, BeStatus: e.BeStatus,
		Cr: e.Cr, CrStatus: e.CrStatus,
		Co: e.Co, CoStatus: e.CoStatus,
		Fe: e.Fe, FeStatus: e.FeStatus,
		Cu: e.Cu, CuStatus: e.CuStatus,
		Se: e.Se, SeStatus: e.SeStatus,
		Ag: e.Ag, AgStatus: e.AgStatus,
		V: e.V, VStatus: e.VStatus,
		Zn: e.Zn, ZnStatus: e.ZnStatus,
		Sn: e.Sn, SnStatus: e.SnStatus,

		NO3: e.No3, NO3Status: e.No3Status,
		P: e.P, PStatus: e.PStatus,
		PO4: e.Po4, PO4Status: e.Po4Status,

		Al: e.Al, AlStatus: e.AlStatus,
		Sb: e.Sb, SbStatus: e.SbStatus,
		Bi: e.Bi, BiStatus: e.BiStatus,
		Pb: e.Pb, PbStatus: e.PbStatus,
		Cd: e.Cd, CdStatus: e.CdStatus,
		La: e.La, LaStatus: e.LaStatus,
		Tl: e.Tl, TlStatus: e.TlStatus,
		Ti: e.Ti, TiStatus: e.TiStatus,
		W: e.W, WStatus: e.WStatus,
		Hg: e.Hg, HgStatus: e.HgStatus,

		Recommendations:    e.Recommendations,
		DosingInstructions: e.DosingInstructions,
	}
}
