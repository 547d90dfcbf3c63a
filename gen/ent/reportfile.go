// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// ReportFile is the model entity for the ReportFile schema.
type ReportFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TankID holds the value of the "tank_id" field.
	TankID uuid.UUID `json:"tank_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportFileQuery when eager-loading is set.
	Edges        ReportFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportFileEdges holds the relations/edges for other nodes in the graph.
type ReportFileEdges struct {
	// Tank holds the value of the tank edge.
	Tank *Tank `json:"tank,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ParseJob `json:"jobs,omitempty"`
	// Tests holds the value of the tests edge.
	Tests []*IcpTest `json:"tests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TankOrErr returns the Tank value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportFileEdges) TankOrErr() (*Tank, error) {
	if e.Tank != nil {
		return e.Tank, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tank.Label}
	}
	return nil, &NotLoadedError{edge: "tank"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ReportFileEdges) JobsOrErr() ([]*ParseJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// TestsOrErr returns the Tests value or an error if the edge
// was not loaded in eager-loading.
func (e ReportFileEdges) TestsOrErr() ([]*IcpTest, error) {
	if e.loadedTypes[2] {
		return e.Tests, nil
	}
	return nil, &NotLoadedError{edge: "tests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportfile.FieldContentHash:
			values[i] = new([]byte)
		case reportfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case reportfile.FieldSourcePath, reportfile.FieldFilename, reportfile.FieldFileExt:
			values[i] = new(sql.NullString)
		case reportfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case reportfile.FieldID, reportfile.FieldTankID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportFile fields.
func (_m *ReportFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reportfile.FieldTankID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tank_id", values[i])
			} else if value != nil {
				_m.TankID = *value
			}
		case reportfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case reportfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case reportfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case reportfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case reportfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case reportfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportFile.
// This includes values selected through modifiers, order, etc.
func (_m *ReportFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTank queries the "tank" edge of the ReportFile entity.
func (_m *ReportFile) QueryTank() *TankQuery {
	return NewReportFileClient(_m.config).QueryTank(_m)
}

// QueryJobs queries the "jobs" edge of the ReportFile entity.
func (_m *ReportFile) QueryJobs() *ParseJobQuery {
	return NewReportFileClient(_m.config).QueryJobs(_m)
}

// QueryTests queries the "tests" edge of the ReportFile entity.
func (_m *ReportFile) QueryTests() *IcpTestQuery {
	return NewReportFileClient(_m.config).QueryTests(_m)
}

// Update returns a builder for updating this ReportFile.
// Note that you need to call ReportFile.Unwrap() before calling this method if this ReportFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportFile) Update() *ReportFileUpdateOne {
	return NewReportFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportFile) Unwrap() *ReportFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportFile) String() string {
	var builder strings.Builder
	builder.WriteString("ReportFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tank_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TankID))
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReportFiles is a parsable slice of ReportFile.
type ReportFiles []*ReportFile
