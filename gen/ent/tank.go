// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// Tank is the model entity for the Tank schema.
type Tank struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// VolumeLiters holds the value of the "volume_liters" field.
	VolumeLiters *float64 `json:"volume_liters,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TankQuery when eager-loading is set.
	Edges        TankEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TankEdges holds the relations/edges for other nodes in the graph.
type TankEdges struct {
	// Tests holds the value of the tests edge.
	Tests []*IcpTest `json:"tests,omitempty"`
	// Files holds the value of the files edge.
	Files []*ReportFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ParseJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TestsOrErr returns the Tests value or an error if the edge
// was not loaded in eager-loading.
func (e TankEdges) TestsOrErr() ([]*IcpTest, error) {
	if e.loadedTypes[0] {
		return e.Tests, nil
	}
	return nil, &NotLoadedError{edge: "tests"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e TankEdges) FilesOrErr() ([]*ReportFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e TankEdges) JobsOrErr() ([]*ParseJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tank) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tank.FieldVolumeLiters:
			values[i] = new(sql.NullFloat64)
		case tank.FieldName, tank.FieldDescription:
			values[i] = new(sql.NullString)
		case tank.FieldCreatedAt, tank.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tank.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tank fields.
func (_m *Tank) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tank.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tank.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tank.FieldVolumeLiters:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field volume_liters", values[i])
			} else if value.Valid {
				_m.VolumeLiters = new(float64)
				*_m.VolumeLiters = value.Float64
			}
		case tank.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case tank.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tank.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Tank.
// This includes values selected through modifiers, order, etc.
func (_m *Tank) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTests queries the "tests" edge of the Tank entity.
func (_m *Tank) QueryTests() *IcpTestQuery {
	return NewTankClient(_m.config).QueryTests(_m)
}

// QueryFiles queries the "files" edge of the Tank entity.
func (_m *Tank) QueryFiles() *ReportFileQuery {
	return NewTankClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Tank entity.
func (_m *Tank) QueryJobs() *ParseJobQuery {
	return NewTankClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Tank.
// Note that you need to call Tank.Unwrap() before calling this method if this Tank
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tank) Update() *TankUpdateOne {
	return NewTankClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tank entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tank) Unwrap() *Tank {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tank is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tank) String() string {
	var builder strings.Builder
	builder.WriteString("Tank(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.VolumeLiters; v != nil {
		builder.WriteString("volume_liters=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
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

// Tanks is a parsable slice of Tank.
type Tanks []*Tank
