// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/parsejob"
	"github.com/reefwatch/icp-tracker/gen/ent/predicate"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIcpTest    = "IcpTest"
	TypeParseJob   = "ParseJob"
	TypeReportFile = "ReportFile"
	TypeTank       = "Tank"
)

// IcpTestMutation represents an operation that mutates the IcpTest nodes in the graph.
type IcpTestMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	test_date               *time.Time
	lab_name                *string
	test_id                 *string
	water_type              *constants.WaterType
	sample_date             *time.Time
	received_date           *time.Time
	evaluated_date          *time.Time
	score_major_elements    *int
	addscore_major_elements *int
	score_minor_elements    *int
	addscore_minor_elements *int
	score_pollutants        *int
	addscore_pollutants     *int
	score_base_elements     *int
	addscore_base_elements  *int
	score_overall           *int
	addscore_overall        *int
	salinity                *float64
	addsalinity             *float64
	salinity_status         *constants.ElementStatus
	kh                      *float64
	addkh                   *float64
	kh_status               *constants.ElementStatus
	cl                      *float64
	addcl                   *float64
	cl_status               *constants.ElementStatus
	na                      *float64
	addna                   *float64
	na_status               *constants.ElementStatus
	mg                      *float64
	addmg                   *float64
	mg_status               *constants.ElementStatus
	s                       *float64
	adds                    *float64
	s_status                *constants.ElementStatus
	ca                      *float64
	addca                   *float64
	ca_status               *constants.ElementStatus
	k                       *float64
	addk                    *float64
	k_status                *constants.ElementStatus
	br                      *float64
	addbr                   *float64
	br_status               *constants.ElementStatus
	sr                      *float64
	addsr                   *float64
	sr_status               *constants.ElementStatus
	b                       *float64
	addb                    *float64
	b_status                *constants.ElementStatus
	f                       *float64
	addf                    *float64
	f_status                *constants.ElementStatus
	li                      *float64
	addli                   *float64
	li_status               *constants.ElementStatus
	si                      *float64
	addsi                   *float64
	si_status               *constants.ElementStatus
	i                       *float64
	addi                    *float64
	i_status                *constants.ElementStatus
	ba                      *float64
	addba                   *float64
	ba_status               *constants.ElementStatus
	mo                      *float64
	addmo                   *float64
	mo_status               *constants.ElementStatus
	ni                      *float64
	addni                   *float64
	ni_status               *constants.ElementStatus
	mn                      *float64
	addmn                   *float64
	mn_status               *constants.ElementStatus
	as                      *float64
	addas                   *float64
	as_status               *constants.ElementStatus
	be                      *float64
	addbe                   *float64
	be_status               *constants.ElementStatus
	cr                      *float64
	addcr                   *float64
	cr_status               *constants.ElementStatus
	co                      *float64
	addco                   *float64
	co_status               *constants.ElementStatus
	fe                      *float64
	addfe                   *float64
	fe_status               *constants.ElementStatus
	cu                      *float64
	addcu                   *float64
	cu_status               *constants.ElementStatus
	se                      *float64
	addse                   *float64
	se_status               *constants.ElementStatus
	ag                      *float64
	addag                   *float64
	ag_status               *constants.ElementStatus
	v                       *float64
	addv                    *float64
	v_status                *constants.ElementStatus
	zn                      *float64
	addzn                   *float64
	zn_status               *constants.ElementStatus
	sn                      *float64
	addsn                   *float64
	sn_status               *constants.ElementStatus
	no3                     *float64
	addno3                  *float64
	no3_status              *constants.ElementStatus
	p                       *float64
	addp                    *float64
	p_status                *constants.ElementStatus
	po4                     *float64
	addpo4                  *float64
	po4_status              *constants.ElementStatus
	al                      *float64
	addal                   *float64
	al_status               *constants.ElementStatus
	sb                      *float64
	addsb                   *float64
	sb_status               *constants.ElementStatus
	bi                      *float64
	addbi                   *float64
	bi_status               *constants.ElementStatus
	pb                      *float64
	addpb                   *float64
	pb_status               *constants.ElementStatus
	cd                      *float64
	addcd                   *float64
	cd_status               *constants.ElementStatus
	la                      *float64
	addla                   *float64
	la_status               *constants.ElementStatus
	tl                      *float64
	addtl                   *float64
	tl_status               *constants.ElementStatus
	ti                      *float64
	addti                   *float64
	ti_status               *constants.ElementStatus
	w                       *float64
	addw                    *float64
	w_status                *constants.ElementStatus
	hg                      *float64
	addhg                   *float64
	hg_status               *constants.ElementStatus
	recommendations         *[]string
	appendrecommendations   []string
	dosing_instructions     *string
	pdf_filename            *string
	pdf_path                *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	tank                    *uuid.UUID
	clearedtank             bool
	file                    *uuid.UUID
	clearedfile             bool
	done                    bool
	oldValue                func(context.Context) (*IcpTest, error)
	predicates              []predicate.IcpTest
}

var _ ent.Mutation = (*IcpTestMutation)(nil)

// icptestOption allows management of the mutation configuration using functional options.
type icptestOption func(*IcpTestMutation)

// newIcpTestMutation creates new mutation for the IcpTest entity.
func newIcpTestMutation(c config, op Op, opts ...icptestOption) *IcpTestMutation {
	m := &IcpTestMutation{
		config:        c,
		op:            op,
		typ:           TypeIcpTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIcpTestID sets the ID field of the mutation.
func withIcpTestID(id uuid.UUID) icptestOption {
	return func(m *IcpTestMutation) {
		var (
			err   error
			once  sync.Once
			value *IcpTest
		)
		m.oldValue = func(ctx context.Context) (*IcpTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IcpTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIcpTest sets the old IcpTest of the mutation.
func withIcpTest(node *IcpTest) icptestOption {
	return func(m *IcpTestMutation) {
		m.oldValue = func(context.Context) (*IcpTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IcpTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IcpTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IcpTest entities.
func (m *IcpTestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IcpTestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IcpTestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IcpTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTankID sets the "tank_id" field.
func (m *IcpTestMutation) SetTankID(u uuid.UUID) {
	m.tank = &u
}

// TankID returns the value of the "tank_id" field in the mutation.
func (m *IcpTestMutation) TankID() (r uuid.UUID, exists bool) {
	v := m.tank
	if v == nil {
		return
	}
	return *v, true
}

// OldTankID returns the old "tank_id" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTankID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTankID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTankID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTankID: %w", err)
	}
	return oldValue.TankID, nil
}

// ResetTankID resets all changes to the "tank_id" field.
func (m *IcpTestMutation) ResetTankID() {
	m.tank = nil
}

// SetFileID sets the "file_id" field.
func (m *IcpTestMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *IcpTestMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldFileID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ClearFileID clears the value of the "file_id" field.
func (m *IcpTestMutation) ClearFileID() {
	m.file = nil
	m.clearedFields[icptest.FieldFileID] = struct{}{}
}

// FileIDCleared returns if the "file_id" field was cleared in this mutation.
func (m *IcpTestMutation) FileIDCleared() bool {
	_, ok := m.clearedFields[icptest.FieldFileID]
	return ok
}

// ResetFileID resets all changes to the "file_id" field.
func (m *IcpTestMutation) ResetFileID() {
	m.file = nil
	delete(m.clearedFields, icptest.FieldFileID)
}

// SetTestDate sets the "test_date" field.
func (m *IcpTestMutation) SetTestDate(t time.Time) {
	m.test_date = &t
}

// TestDate returns the value of the "test_date" field in the mutation.
func (m *IcpTestMutation) TestDate() (r time.Time, exists bool) {
	v := m.test_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDate returns the old "test_date" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDate: %w", err)
	}
	return oldValue.TestDate, nil
}

// ResetTestDate resets all changes to the "test_date" field.
func (m *IcpTestMutation) ResetTestDate() {
	m.test_date = nil
}

// SetLabName sets the "lab_name" field.
func (m *IcpTestMutation) SetLabName(s string) {
	m.lab_name = &s
}

// LabName returns the value of the "lab_name" field in the mutation.
func (m *IcpTestMutation) LabName() (r string, exists bool) {
	v := m.lab_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLabName returns the old "lab_name" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldLabName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabName: %w", err)
	}
	return oldValue.LabName, nil
}

// ResetLabName resets all changes to the "lab_name" field.
func (m *IcpTestMutation) ResetLabName() {
	m.lab_name = nil
}

// SetTestID sets the "test_id" field.
func (m *IcpTestMutation) SetTestID(s string) {
	m.test_id = &s
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *IcpTestMutation) TestID() (r string, exists bool) {
	v := m.test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ClearTestID clears the value of the "test_id" field.
func (m *IcpTestMutation) ClearTestID() {
	m.test_id = nil
	m.clearedFields[icptest.FieldTestID] = struct{}{}
}

// TestIDCleared returns if the "test_id" field was cleared in this mutation.
func (m *IcpTestMutation) TestIDCleared() bool {
	_, ok := m.clearedFields[icptest.FieldTestID]
	return ok
}

// ResetTestID resets all changes to the "test_id" field.
func (m *IcpTestMutation) ResetTestID() {
	m.test_id = nil
	delete(m.clearedFields, icptest.FieldTestID)
}

// SetWaterType sets the "water_type" field.
func (m *IcpTestMutation) SetWaterType(ct constants.WaterType) {
	m.water_type = &ct
}

// WaterType returns the value of the "water_type" field in the mutation.
func (m *IcpTestMutation) WaterType() (r constants.WaterType, exists bool) {
	v := m.water_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterType returns the old "water_type" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldWaterType(ctx context.Context) (v constants.WaterType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterType: %w", err)
	}
	return oldValue.WaterType, nil
}

// ResetWaterType resets all changes to the "water_type" field.
func (m *IcpTestMutation) ResetWaterType() {
	m.water_type = nil
}

// SetSampleDate sets the "sample_date" field.
func (m *IcpTestMutation) SetSampleDate(t time.Time) {
	m.sample_date = &t
}

// SampleDate returns the value of the "sample_date" field in the mutation.
func (m *IcpTestMutation) SampleDate() (r time.Time, exists bool) {
	v := m.sample_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleDate returns the old "sample_date" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSampleDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleDate: %w", err)
	}
	return oldValue.SampleDate, nil
}

// ClearSampleDate clears the value of the "sample_date" field.
func (m *IcpTestMutation) ClearSampleDate() {
	m.sample_date = nil
	m.clearedFields[icptest.FieldSampleDate] = struct{}{}
}

// SampleDateCleared returns if the "sample_date" field was cleared in this mutation.
func (m *IcpTestMutation) SampleDateCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSampleDate]
	return ok
}

// ResetSampleDate resets all changes to the "sample_date" field.
func (m *IcpTestMutation) ResetSampleDate() {
	m.sample_date = nil
	delete(m.clearedFields, icptest.FieldSampleDate)
}

// SetReceivedDate sets the "received_date" field.
func (m *IcpTestMutation) SetReceivedDate(t time.Time) {
	m.received_date = &t
}

// ReceivedDate returns the value of the "received_date" field in the mutation.
func (m *IcpTestMutation) ReceivedDate() (r time.Time, exists bool) {
	v := m.received_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedDate returns the old "received_date" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldReceivedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedDate: %w", err)
	}
	return oldValue.ReceivedDate, nil
}

// ClearReceivedDate clears the value of the "received_date" field.
func (m *IcpTestMutation) ClearReceivedDate() {
	m.received_date = nil
	m.clearedFields[icptest.FieldReceivedDate] = struct{}{}
}

// ReceivedDateCleared returns if the "received_date" field was cleared in this mutation.
func (m *IcpTestMutation) ReceivedDateCleared() bool {
	_, ok := m.clearedFields[icptest.FieldReceivedDate]
	return ok
}

// ResetReceivedDate resets all changes to the "received_date" field.
func (m *IcpTestMutation) ResetReceivedDate() {
	m.received_date = nil
	delete(m.clearedFields, icptest.FieldReceivedDate)
}

// SetEvaluatedDate sets the "evaluated_date" field.
func (m *IcpTestMutation) SetEvaluatedDate(t time.Time) {
	m.evaluated_date = &t
}

// EvaluatedDate returns the value of the "evaluated_date" field in the mutation.
func (m *IcpTestMutation) EvaluatedDate() (r time.Time, exists bool) {
	v := m.evaluated_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedDate returns the old "evaluated_date" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldEvaluatedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedDate: %w", err)
	}
	return oldValue.EvaluatedDate, nil
}

// ClearEvaluatedDate clears the value of the "evaluated_date" field.
func (m *IcpTestMutation) ClearEvaluatedDate() {
	m.evaluated_date = nil
	m.clearedFields[icptest.FieldEvaluatedDate] = struct{}{}
}

// EvaluatedDateCleared returns if the "evaluated_date" field was cleared in this mutation.
func (m *IcpTestMutation) EvaluatedDateCleared() bool {
	_, ok := m.clearedFields[icptest.FieldEvaluatedDate]
	return ok
}

// ResetEvaluatedDate resets all changes to the "evaluated_date" field.
func (m *IcpTestMutation) ResetEvaluatedDate() {
	m.evaluated_date = nil
	delete(m.clearedFields, icptest.FieldEvaluatedDate)
}

// SetScoreMajorElements sets the "score_major_elements" field.
func (m *IcpTestMutation) SetScoreMajorElements(i int) {
	m.score_major_elements = &i
	m.addscore_major_elements = nil
}

// ScoreMajorElements returns the value of the "score_major_elements" field in the mutation.
func (m *IcpTestMutation) ScoreMajorElements() (r int, exists bool) {
	v := m.score_major_elements
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreMajorElements returns the old "score_major_elements" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldScoreMajorElements(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreMajorElements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreMajorElements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreMajorElements: %w", err)
	}
	return oldValue.ScoreMajorElements, nil
}

// AddScoreMajorElements adds i to the "score_major_elements" field.
func (m *IcpTestMutation) AddScoreMajorElements(i int) {
	if m.addscore_major_elements != nil {
		*m.addscore_major_elements += i
	} else {
		m.addscore_major_elements = &i
	}
}

// AddedScoreMajorElements returns the value that was added to the "score_major_elements" field in this mutation.
func (m *IcpTestMutation) AddedScoreMajorElements() (r int, exists bool) {
	v := m.addscore_major_elements
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreMajorElements clears the value of the "score_major_elements" field.
func (m *IcpTestMutation) ClearScoreMajorElements() {
	m.score_major_elements = nil
	m.addscore_major_elements = nil
	m.clearedFields[icptest.FieldScoreMajorElements] = struct{}{}
}

// ScoreMajorElementsCleared returns if the "score_major_elements" field was cleared in this mutation.
func (m *IcpTestMutation) ScoreMajorElementsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldScoreMajorElements]
	return ok
}

// ResetScoreMajorElements resets all changes to the "score_major_elements" field.
func (m *IcpTestMutation) ResetScoreMajorElements() {
	m.score_major_elements = nil
	m.addscore_major_elements = nil
	delete(m.clearedFields, icptest.FieldScoreMajorElements)
}

// SetScoreMinorElements sets the "score_minor_elements" field.
func (m *IcpTestMutation) SetScoreMinorElements(i int) {
	m.score_minor_elements = &i
	m.addscore_minor_elements = nil
}

// ScoreMinorElements returns the value of the "score_minor_elements" field in the mutation.
func (m *IcpTestMutation) ScoreMinorElements() (r int, exists bool) {
	v := m.score_minor_elements
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreMinorElements returns the old "score_minor_elements" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldScoreMinorElements(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreMinorElements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreMinorElements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreMinorElements: %w", err)
	}
	return oldValue.ScoreMinorElements, nil
}

// AddScoreMinorElements adds i to the "score_minor_elements" field.
func (m *IcpTestMutation) AddScoreMinorElements(i int) {
	if m.addscore_minor_elements != nil {
		*m.addscore_minor_elements += i
	} else {
		m.addscore_minor_elements = &i
	}
}

// AddedScoreMinorElements returns the value that was added to the "score_minor_elements" field in this mutation.
func (m *IcpTestMutation) AddedScoreMinorElements() (r int, exists bool) {
	v := m.addscore_minor_elements
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreMinorElements clears the value of the "score_minor_elements" field.
func (m *IcpTestMutation) ClearScoreMinorElements() {
	m.score_minor_elements = nil
	m.addscore_minor_elements = nil
	m.clearedFields[icptest.FieldScoreMinorElements] = struct{}{}
}

// ScoreMinorElementsCleared returns if the "score_minor_elements" field was cleared in this mutation.
func (m *IcpTestMutation) ScoreMinorElementsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldScoreMinorElements]
	return ok
}

// ResetScoreMinorElements resets all changes to the "score_minor_elements" field.
func (m *IcpTestMutation) ResetScoreMinorElements() {
	m.score_minor_elements = nil
	m.addscore_minor_elements = nil
	delete(m.clearedFields, icptest.FieldScoreMinorElements)
}

// SetScorePollutants sets the "score_pollutants" field.
func (m *IcpTestMutation) SetScorePollutants(i int) {
	m.score_pollutants = &i
	m.addscore_pollutants = nil
}

// ScorePollutants returns the value of the "score_pollutants" field in the mutation.
func (m *IcpTestMutation) ScorePollutants() (r int, exists bool) {
	v := m.score_pollutants
	if v == nil {
		return
	}
	return *v, true
}

// OldScorePollutants returns the old "score_pollutants" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldScorePollutants(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorePollutants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorePollutants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorePollutants: %w", err)
	}
	return oldValue.ScorePollutants, nil
}

// AddScorePollutants adds i to the "score_pollutants" field.
func (m *IcpTestMutation) AddScorePollutants(i int) {
	if m.addscore_pollutants != nil {
		*m.addscore_pollutants += i
	} else {
		m.addscore_pollutants = &i
	}
}

// AddedScorePollutants returns the value that was added to the "score_pollutants" field in this mutation.
func (m *IcpTestMutation) AddedScorePollutants() (r int, exists bool) {
	v := m.addscore_pollutants
	if v == nil {
		return
	}
	return *v, true
}

// ClearScorePollutants clears the value of the "score_pollutants" field.
func (m *IcpTestMutation) ClearScorePollutants() {
	m.score_pollutants = nil
	m.addscore_pollutants = nil
	m.clearedFields[icptest.FieldScorePollutants] = struct{}{}
}

// ScorePollutantsCleared returns if the "score_pollutants" field was cleared in this mutation.
func (m *IcpTestMutation) ScorePollutantsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldScorePollutants]
	return ok
}

// ResetScorePollutants resets all changes to the "score_pollutants" field.
func (m *IcpTestMutation) ResetScorePollutants() {
	m.score_pollutants = nil
	m.addscore_pollutants = nil
	delete(m.clearedFields, icptest.FieldScorePollutants)
}

// SetScoreBaseElements sets the "score_base_elements" field.
func (m *IcpTestMutation) SetScoreBaseElements(i int) {
	m.score_base_elements = &i
	m.addscore_base_elements = nil
}

// ScoreBaseElements returns the value of the "score_base_elements" field in the mutation.
func (m *IcpTestMutation) ScoreBaseElements() (r int, exists bool) {
	v := m.score_base_elements
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreBaseElements returns the old "score_base_elements" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldScoreBaseElements(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreBaseElements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreBaseElements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreBaseElements: %w", err)
	}
	return oldValue.ScoreBaseElements, nil
}

// AddScoreBaseElements adds i to the "score_base_elements" field.
func (m *IcpTestMutation) AddScoreBaseElements(i int) {
	if m.addscore_base_elements != nil {
		*m.addscore_base_elements += i
	} else {
		m.addscore_base_elements = &i
	}
}

// AddedScoreBaseElements returns the value that was added to the "score_base_elements" field in this mutation.
func (m *IcpTestMutation) AddedScoreBaseElements() (r int, exists bool) {
	v := m.addscore_base_elements
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreBaseElements clears the value of the "score_base_elements" field.
func (m *IcpTestMutation) ClearScoreBaseElements() {
	m.score_base_elements = nil
	m.addscore_base_elements = nil
	m.clearedFields[icptest.FieldScoreBaseElements] = struct{}{}
}

// ScoreBaseElementsCleared returns if the "score_base_elements" field was cleared in this mutation.
func (m *IcpTestMutation) ScoreBaseElementsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldScoreBaseElements]
	return ok
}

// ResetScoreBaseElements resets all changes to the "score_base_elements" field.
func (m *IcpTestMutation) ResetScoreBaseElements() {
	m.score_base_elements = nil
	m.addscore_base_elements = nil
	delete(m.clearedFields, icptest.FieldScoreBaseElements)
}

// SetScoreOverall sets the "score_overall" field.
func (m *IcpTestMutation) SetScoreOverall(i int) {
	m.score_overall = &i
	m.addscore_overall = nil
}

// ScoreOverall returns the value of the "score_overall" field in the mutation.
func (m *IcpTestMutation) ScoreOverall() (r int, exists bool) {
	v := m.score_overall
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreOverall returns the old "score_overall" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldScoreOverall(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreOverall: %w", err)
	}
	return oldValue.ScoreOverall, nil
}

// AddScoreOverall adds i to the "score_overall" field.
func (m *IcpTestMutation) AddScoreOverall(i int) {
	if m.addscore_overall != nil {
		*m.addscore_overall += i
	} else {
		m.addscore_overall = &i
	}
}

// AddedScoreOverall returns the value that was added to the "score_overall" field in this mutation.
func (m *IcpTestMutation) AddedScoreOverall() (r int, exists bool) {
	v := m.addscore_overall
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreOverall clears the value of the "score_overall" field.
func (m *IcpTestMutation) ClearScoreOverall() {
	m.score_overall = nil
	m.addscore_overall = nil
	m.clearedFields[icptest.FieldScoreOverall] = struct{}{}
}

// ScoreOverallCleared returns if the "score_overall" field was cleared in this mutation.
func (m *IcpTestMutation) ScoreOverallCleared() bool {
	_, ok := m.clearedFields[icptest.FieldScoreOverall]
	return ok
}

// ResetScoreOverall resets all changes to the "score_overall" field.
func (m *IcpTestMutation) ResetScoreOverall() {
	m.score_overall = nil
	m.addscore_overall = nil
	delete(m.clearedFields, icptest.FieldScoreOverall)
}

// SetSalinity sets the "salinity" field.
func (m *IcpTestMutation) SetSalinity(f float64) {
	m.salinity = &f
	m.addsalinity = nil
}

// Salinity returns the value of the "salinity" field in the mutation.
func (m *IcpTestMutation) Salinity() (r float64, exists bool) {
	v := m.salinity
	if v == nil {
		return
	}
	return *v, true
}

// OldSalinity returns the old "salinity" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSalinity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalinity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalinity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalinity: %w", err)
	}
	return oldValue.Salinity, nil
}

// AddSalinity adds f to the "salinity" field.
func (m *IcpTestMutation) AddSalinity(f float64) {
	if m.addsalinity != nil {
		*m.addsalinity += f
	} else {
		m.addsalinity = &f
	}
}

// AddedSalinity returns the value that was added to the "salinity" field in this mutation.
func (m *IcpTestMutation) AddedSalinity() (r float64, exists bool) {
	v := m.addsalinity
	if v == nil {
		return
	}
	return *v, true
}

// ClearSalinity clears the value of the "salinity" field.
func (m *IcpTestMutation) ClearSalinity() {
	m.salinity = nil
	m.addsalinity = nil
	m.clearedFields[icptest.FieldSalinity] = struct{}{}
}

// SalinityCleared returns if the "salinity" field was cleared in this mutation.
func (m *IcpTestMutation) SalinityCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSalinity]
	return ok
}

// ResetSalinity resets all changes to the "salinity" field.
func (m *IcpTestMutation) ResetSalinity() {
	m.salinity = nil
	m.addsalinity = nil
	delete(m.clearedFields, icptest.FieldSalinity)
}

// SetSalinityStatus sets the "salinity_status" field.
func (m *IcpTestMutation) SetSalinityStatus(cs constants.ElementStatus) {
	m.salinity_status = &cs
}

// SalinityStatus returns the value of the "salinity_status" field in the mutation.
func (m *IcpTestMutation) SalinityStatus() (r constants.ElementStatus, exists bool) {
	v := m.salinity_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSalinityStatus returns the old "salinity_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSalinityStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalinityStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalinityStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalinityStatus: %w", err)
	}
	return oldValue.SalinityStatus, nil
}

// ClearSalinityStatus clears the value of the "salinity_status" field.
func (m *IcpTestMutation) ClearSalinityStatus() {
	m.salinity_status = nil
	m.clearedFields[icptest.FieldSalinityStatus] = struct{}{}
}

// SalinityStatusCleared returns if the "salinity_status" field was cleared in this mutation.
func (m *IcpTestMutation) SalinityStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSalinityStatus]
	return ok
}

// ResetSalinityStatus resets all changes to the "salinity_status" field.
func (m *IcpTestMutation) ResetSalinityStatus() {
	m.salinity_status = nil
	delete(m.clearedFields, icptest.FieldSalinityStatus)
}

// SetKh sets the "kh" field.
func (m *IcpTestMutation) SetKh(f float64) {
	m.kh = &f
	m.addkh = nil
}

// Kh returns the value of the "kh" field in the mutation.
func (m *IcpTestMutation) Kh() (r float64, exists bool) {
	v := m.kh
	if v == nil {
		return
	}
	return *v, true
}

// OldKh returns the old "kh" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldKh(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKh: %w", err)
	}
	return oldValue.Kh, nil
}

// AddKh adds f to the "kh" field.
func (m *IcpTestMutation) AddKh(f float64) {
	if m.addkh != nil {
		*m.addkh += f
	} else {
		m.addkh = &f
	}
}

// AddedKh returns the value that was added to the "kh" field in this mutation.
func (m *IcpTestMutation) AddedKh() (r float64, exists bool) {
	v := m.addkh
	if v == nil {
		return
	}
	return *v, true
}

// ClearKh clears the value of the "kh" field.
func (m *IcpTestMutation) ClearKh() {
	m.kh = nil
	m.addkh = nil
	m.clearedFields[icptest.FieldKh] = struct{}{}
}

// KhCleared returns if the "kh" field was cleared in this mutation.
func (m *IcpTestMutation) KhCleared() bool {
	_, ok := m.clearedFields[icptest.FieldKh]
	return ok
}

// ResetKh resets all changes to the "kh" field.
func (m *IcpTestMutation) ResetKh() {
	m.kh = nil
	m.addkh = nil
	delete(m.clearedFields, icptest.FieldKh)
}

// SetKhStatus sets the "kh_status" field.
func (m *IcpTestMutation) SetKhStatus(cs constants.ElementStatus) {
	m.kh_status = &cs
}

// KhStatus returns the value of the "kh_status" field in the mutation.
func (m *IcpTestMutation) KhStatus() (r constants.ElementStatus, exists bool) {
	v := m.kh_status
	if v == nil {
		return
	}
	return *v, true
}

// OldKhStatus returns the old "kh_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldKhStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKhStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKhStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKhStatus: %w", err)
	}
	return oldValue.KhStatus, nil
}

// ClearKhStatus clears the value of the "kh_status" field.
func (m *IcpTestMutation) ClearKhStatus() {
	m.kh_status = nil
	m.clearedFields[icptest.FieldKhStatus] = struct{}{}
}

// KhStatusCleared returns if the "kh_status" field was cleared in this mutation.
func (m *IcpTestMutation) KhStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldKhStatus]
	return ok
}

// ResetKhStatus resets all changes to the "kh_status" field.
func (m *IcpTestMutation) ResetKhStatus() {
	m.kh_status = nil
	delete(m.clearedFields, icptest.FieldKhStatus)
}

// SetCl sets the "cl" field.
func (m *IcpTestMutation) SetCl(f float64) {
	m.cl = &f
	m.addcl = nil
}

// Cl returns the value of the "cl" field in the mutation.
func (m *IcpTestMutation) Cl() (r float64, exists bool) {
	v := m.cl
	if v == nil {
		return
	}
	return *v, true
}

// OldCl returns the old "cl" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCl(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCl: %w", err)
	}
	return oldValue.Cl, nil
}

// AddCl adds f to the "cl" field.
func (m *IcpTestMutation) AddCl(f float64) {
	if m.addcl != nil {
		*m.addcl += f
	} else {
		m.addcl = &f
	}
}

// AddedCl returns the value that was added to the "cl" field in this mutation.
func (m *IcpTestMutation) AddedCl() (r float64, exists bool) {
	v := m.addcl
	if v == nil {
		return
	}
	return *v, true
}

// ClearCl clears the value of the "cl" field.
func (m *IcpTestMutation) ClearCl() {
	m.cl = nil
	m.addcl = nil
	m.clearedFields[icptest.FieldCl] = struct{}{}
}

// ClCleared returns if the "cl" field was cleared in this mutation.
func (m *IcpTestMutation) ClCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCl]
	return ok
}

// ResetCl resets all changes to the "cl" field.
func (m *IcpTestMutation) ResetCl() {
	m.cl = nil
	m.addcl = nil
	delete(m.clearedFields, icptest.FieldCl)
}

// SetClStatus sets the "cl_status" field.
func (m *IcpTestMutation) SetClStatus(cs constants.ElementStatus) {
	m.cl_status = &cs
}

// ClStatus returns the value of the "cl_status" field in the mutation.
func (m *IcpTestMutation) ClStatus() (r constants.ElementStatus, exists bool) {
	v := m.cl_status
	if v == nil {
		return
	}
	return *v, true
}

// OldClStatus returns the old "cl_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldClStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClStatus: %w", err)
	}
	return oldValue.ClStatus, nil
}

// ClearClStatus clears the value of the "cl_status" field.
func (m *IcpTestMutation) ClearClStatus() {
	m.cl_status = nil
	m.clearedFields[icptest.FieldClStatus] = struct{}{}
}

// ClStatusCleared returns if the "cl_status" field was cleared in this mutation.
func (m *IcpTestMutation) ClStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldClStatus]
	return ok
}

// ResetClStatus resets all changes to the "cl_status" field.
func (m *IcpTestMutation) ResetClStatus() {
	m.cl_status = nil
	delete(m.clearedFields, icptest.FieldClStatus)
}

// SetNa sets the "na" field.
func (m *IcpTestMutation) SetNa(f float64) {
	m.na = &f
	m.addna = nil
}

// Na returns the value of the "na" field in the mutation.
func (m *IcpTestMutation) Na() (r float64, exists bool) {
	v := m.na
	if v == nil {
		return
	}
	return *v, true
}

// OldNa returns the old "na" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNa: %w", err)
	}
	return oldValue.Na, nil
}

// AddNa adds f to the "na" field.
func (m *IcpTestMutation) AddNa(f float64) {
	if m.addna != nil {
		*m.addna += f
	} else {
		m.addna = &f
	}
}

// AddedNa returns the value that was added to the "na" field in this mutation.
func (m *IcpTestMutation) AddedNa() (r float64, exists bool) {
	v := m.addna
	if v == nil {
		return
	}
	return *v, true
}

// ClearNa clears the value of the "na" field.
func (m *IcpTestMutation) ClearNa() {
	m.na = nil
	m.addna = nil
	m.clearedFields[icptest.FieldNa] = struct{}{}
}

// NaCleared returns if the "na" field was cleared in this mutation.
func (m *IcpTestMutation) NaCleared() bool {
	_, ok := m.clearedFields[icptest.FieldNa]
	return ok
}

// ResetNa resets all changes to the "na" field.
func (m *IcpTestMutation) ResetNa() {
	m.na = nil
	m.addna = nil
	delete(m.clearedFields, icptest.FieldNa)
}

// SetNaStatus sets the "na_status" field.
func (m *IcpTestMutation) SetNaStatus(cs constants.ElementStatus) {
	m.na_status = &cs
}

// NaStatus returns the value of the "na_status" field in the mutation.
func (m *IcpTestMutation) NaStatus() (r constants.ElementStatus, exists bool) {
	v := m.na_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNaStatus returns the old "na_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNaStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNaStatus: %w", err)
	}
	return oldValue.NaStatus, nil
}

// ClearNaStatus clears the value of the "na_status" field.
func (m *IcpTestMutation) ClearNaStatus() {
	m.na_status = nil
	m.clearedFields[icptest.FieldNaStatus] = struct{}{}
}

// NaStatusCleared returns if the "na_status" field was cleared in this mutation.
func (m *IcpTestMutation) NaStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldNaStatus]
	return ok
}

// ResetNaStatus resets all changes to the "na_status" field.
func (m *IcpTestMutation) ResetNaStatus() {
	m.na_status = nil
	delete(m.clearedFields, icptest.FieldNaStatus)
}

// SetMg sets the "mg" field.
func (m *IcpTestMutation) SetMg(f float64) {
	m.mg = &f
	m.addmg = nil
}

// Mg returns the value of the "mg" field in the mutation.
func (m *IcpTestMutation) Mg() (r float64, exists bool) {
	v := m.mg
	if v == nil {
		return
	}
	return *v, true
}

// OldMg returns the old "mg" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMg: %w", err)
	}
	return oldValue.Mg, nil
}

// AddMg adds f to the "mg" field.
func (m *IcpTestMutation) AddMg(f float64) {
	if m.addmg != nil {
		*m.addmg += f
	} else {
		m.addmg = &f
	}
}

// AddedMg returns the value that was added to the "mg" field in this mutation.
func (m *IcpTestMutation) AddedMg() (r float64, exists bool) {
	v := m.addmg
	if v == nil {
		return
	}
	return *v, true
}

// ClearMg clears the value of the "mg" field.
func (m *IcpTestMutation) ClearMg() {
	m.mg = nil
	m.addmg = nil
	m.clearedFields[icptest.FieldMg] = struct{}{}
}

// MgCleared returns if the "mg" field was cleared in this mutation.
func (m *IcpTestMutation) MgCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMg]
	return ok
}

// ResetMg resets all changes to the "mg" field.
func (m *IcpTestMutation) ResetMg() {
	m.mg = nil
	m.addmg = nil
	delete(m.clearedFields, icptest.FieldMg)
}

// SetMgStatus sets the "mg_status" field.
func (m *IcpTestMutation) SetMgStatus(cs constants.ElementStatus) {
	m.mg_status = &cs
}

// MgStatus returns the value of the "mg_status" field in the mutation.
func (m *IcpTestMutation) MgStatus() (r constants.ElementStatus, exists bool) {
	v := m.mg_status
	if v == nil {
		return
	}
	return *v, true
}

// OldMgStatus returns the old "mg_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMgStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMgStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMgStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMgStatus: %w", err)
	}
	return oldValue.MgStatus, nil
}

// ClearMgStatus clears the value of the "mg_status" field.
func (m *IcpTestMutation) ClearMgStatus() {
	m.mg_status = nil
	m.clearedFields[icptest.FieldMgStatus] = struct{}{}
}

// MgStatusCleared returns if the "mg_status" field was cleared in this mutation.
func (m *IcpTestMutation) MgStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMgStatus]
	return ok
}

// ResetMgStatus resets all changes to the "mg_status" field.
func (m *IcpTestMutation) ResetMgStatus() {
	m.mg_status = nil
	delete(m.clearedFields, icptest.FieldMgStatus)
}

// SetS sets the "s" field.
func (m *IcpTestMutation) SetS(f float64) {
	m.s = &f
	m.adds = nil
}

// S returns the value of the "s" field in the mutation.
func (m *IcpTestMutation) S() (r float64, exists bool) {
	v := m.s
	if v == nil {
		return
	}
	return *v, true
}

// OldS returns the old "s" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldS(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS: %w", err)
	}
	return oldValue.S, nil
}

// AddS adds f to the "s" field.
func (m *IcpTestMutation) AddS(f float64) {
	if m.adds != nil {
		*m.adds += f
	} else {
		m.adds = &f
	}
}

// AddedS returns the value that was added to the "s" field in this mutation.
func (m *IcpTestMutation) AddedS() (r float64, exists bool) {
	v := m.adds
	if v == nil {
		return
	}
	return *v, true
}

// ClearS clears the value of the "s" field.
func (m *IcpTestMutation) ClearS() {
	m.s = nil
	m.adds = nil
	m.clearedFields[icptest.FieldS] = struct{}{}
}

// SCleared returns if the "s" field was cleared in this mutation.
func (m *IcpTestMutation) SCleared() bool {
	_, ok := m.clearedFields[icptest.FieldS]
	return ok
}

// ResetS resets all changes to the "s" field.
func (m *IcpTestMutation) ResetS() {
	m.s = nil
	m.adds = nil
	delete(m.clearedFields, icptest.FieldS)
}

// SetSStatus sets the "s_status" field.
func (m *IcpTestMutation) SetSStatus(cs constants.ElementStatus) {
	m.s_status = &cs
}

// SStatus returns the value of the "s_status" field in the mutation.
func (m *IcpTestMutation) SStatus() (r constants.ElementStatus, exists bool) {
	v := m.s_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSStatus returns the old "s_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSStatus: %w", err)
	}
	return oldValue.SStatus, nil
}

// ClearSStatus clears the value of the "s_status" field.
func (m *IcpTestMutation) ClearSStatus() {
	m.s_status = nil
	m.clearedFields[icptest.FieldSStatus] = struct{}{}
}

// SStatusCleared returns if the "s_status" field was cleared in this mutation.
func (m *IcpTestMutation) SStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSStatus]
	return ok
}

// ResetSStatus resets all changes to the "s_status" field.
func (m *IcpTestMutation) ResetSStatus() {
	m.s_status = nil
	delete(m.clearedFields, icptest.FieldSStatus)
}

// SetCa sets the "ca" field.
func (m *IcpTestMutation) SetCa(f float64) {
	m.ca = &f
	m.addca = nil
}

// Ca returns the value of the "ca" field in the mutation.
func (m *IcpTestMutation) Ca() (r float64, exists bool) {
	v := m.ca
	if v == nil {
		return
	}
	return *v, true
}

// OldCa returns the old "ca" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCa: %w", err)
	}
	return oldValue.Ca, nil
}

// AddCa adds f to the "ca" field.
func (m *IcpTestMutation) AddCa(f float64) {
	if m.addca != nil {
		*m.addca += f
	} else {
		m.addca = &f
	}
}

// AddedCa returns the value that was added to the "ca" field in this mutation.
func (m *IcpTestMutation) AddedCa() (r float64, exists bool) {
	v := m.addca
	if v == nil {
		return
	}
	return *v, true
}

// ClearCa clears the value of the "ca" field.
func (m *IcpTestMutation) ClearCa() {
	m.ca = nil
	m.addca = nil
	m.clearedFields[icptest.FieldCa] = struct{}{}
}

// CaCleared returns if the "ca" field was cleared in this mutation.
func (m *IcpTestMutation) CaCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCa]
	return ok
}

// ResetCa resets all changes to the "ca" field.
func (m *IcpTestMutation) ResetCa() {
	m.ca = nil
	m.addca = nil
	delete(m.clearedFields, icptest.FieldCa)
}

// SetCaStatus sets the "ca_status" field.
func (m *IcpTestMutation) SetCaStatus(cs constants.ElementStatus) {
	m.ca_status = &cs
}

// CaStatus returns the value of the "ca_status" field in the mutation.
func (m *IcpTestMutation) CaStatus() (r constants.ElementStatus, exists bool) {
	v := m.ca_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCaStatus returns the old "ca_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCaStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaStatus: %w", err)
	}
	return oldValue.CaStatus, nil
}

// ClearCaStatus clears the value of the "ca_status" field.
func (m *IcpTestMutation) ClearCaStatus() {
	m.ca_status = nil
	m.clearedFields[icptest.FieldCaStatus] = struct{}{}
}

// CaStatusCleared returns if the "ca_status" field was cleared in this mutation.
func (m *IcpTestMutation) CaStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCaStatus]
	return ok
}

// ResetCaStatus resets all changes to the "ca_status" field.
func (m *IcpTestMutation) ResetCaStatus() {
	m.ca_status = nil
	delete(m.clearedFields, icptest.FieldCaStatus)
}

// SetK sets the "k" field.
func (m *IcpTestMutation) SetK(f float64) {
	m.k = &f
	m.addk = nil
}

// K returns the value of the "k" field in the mutation.
func (m *IcpTestMutation) K() (r float64, exists bool) {
	v := m.k
	if v == nil {
		return
	}
	return *v, true
}

// OldK returns the old "k" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldK(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldK is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldK requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldK: %w", err)
	}
	return oldValue.K, nil
}

// AddK adds f to the "k" field.
func (m *IcpTestMutation) AddK(f float64) {
	if m.addk != nil {
		*m.addk += f
	} else {
		m.addk = &f
	}
}

// AddedK returns the value that was added to the "k" field in this mutation.
func (m *IcpTestMutation) AddedK() (r float64, exists bool) {
	v := m.addk
	if v == nil {
		return
	}
	return *v, true
}

// ClearK clears the value of the "k" field.
func (m *IcpTestMutation) ClearK() {
	m.k = nil
	m.addk = nil
	m.clearedFields[icptest.FieldK] = struct{}{}
}

// KCleared returns if the "k" field was cleared in this mutation.
func (m *IcpTestMutation) KCleared() bool {
	_, ok := m.clearedFields[icptest.FieldK]
	return ok
}

// ResetK resets all changes to the "k" field.
func (m *IcpTestMutation) ResetK() {
	m.k = nil
	m.addk = nil
	delete(m.clearedFields, icptest.FieldK)
}

// SetKStatus sets the "k_status" field.
func (m *IcpTestMutation) SetKStatus(cs constants.ElementStatus) {
	m.k_status = &cs
}

// KStatus returns the value of the "k_status" field in the mutation.
func (m *IcpTestMutation) KStatus() (r constants.ElementStatus, exists bool) {
	v := m.k_status
	if v == nil {
		return
	}
	return *v, true
}

// OldKStatus returns the old "k_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldKStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKStatus: %w", err)
	}
	return oldValue.KStatus, nil
}

// ClearKStatus clears the value of the "k_status" field.
func (m *IcpTestMutation) ClearKStatus() {
	m.k_status = nil
	m.clearedFields[icptest.FieldKStatus] = struct{}{}
}

// KStatusCleared returns if the "k_status" field was cleared in this mutation.
func (m *IcpTestMutation) KStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldKStatus]
	return ok
}

// ResetKStatus resets all changes to the "k_status" field.
func (m *IcpTestMutation) ResetKStatus() {
	m.k_status = nil
	delete(m.clearedFields, icptest.FieldKStatus)
}

// SetBr sets the "br" field.
func (m *IcpTestMutation) SetBr(f float64) {
	m.br = &f
	m.addbr = nil
}

// Br returns the value of the "br" field in the mutation.
func (m *IcpTestMutation) Br() (r float64, exists bool) {
	v := m.br
	if v == nil {
		return
	}
	return *v, true
}

// OldBr returns the old "br" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBr: %w", err)
	}
	return oldValue.Br, nil
}

// AddBr adds f to the "br" field.
func (m *IcpTestMutation) AddBr(f float64) {
	if m.addbr != nil {
		*m.addbr += f
	} else {
		m.addbr = &f
	}
}

// AddedBr returns the value that was added to the "br" field in this mutation.
func (m *IcpTestMutation) AddedBr() (r float64, exists bool) {
	v := m.addbr
	if v == nil {
		return
	}
	return *v, true
}

// ClearBr clears the value of the "br" field.
func (m *IcpTestMutation) ClearBr() {
	m.br = nil
	m.addbr = nil
	m.clearedFields[icptest.FieldBr] = struct{}{}
}

// BrCleared returns if the "br" field was cleared in this mutation.
func (m *IcpTestMutation) BrCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBr]
	return ok
}

// ResetBr resets all changes to the "br" field.
func (m *IcpTestMutation) ResetBr() {
	m.br = nil
	m.addbr = nil
	delete(m.clearedFields, icptest.FieldBr)
}

// SetBrStatus sets the "br_status" field.
func (m *IcpTestMutation) SetBrStatus(cs constants.ElementStatus) {
	m.br_status = &cs
}

// BrStatus returns the value of the "br_status" field in the mutation.
func (m *IcpTestMutation) BrStatus() (r constants.ElementStatus, exists bool) {
	v := m.br_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBrStatus returns the old "br_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBrStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrStatus: %w", err)
	}
	return oldValue.BrStatus, nil
}

// ClearBrStatus clears the value of the "br_status" field.
func (m *IcpTestMutation) ClearBrStatus() {
	m.br_status = nil
	m.clearedFields[icptest.FieldBrStatus] = struct{}{}
}

// BrStatusCleared returns if the "br_status" field was cleared in this mutation.
func (m *IcpTestMutation) BrStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBrStatus]
	return ok
}

// ResetBrStatus resets all changes to the "br_status" field.
func (m *IcpTestMutation) ResetBrStatus() {
	m.br_status = nil
	delete(m.clearedFields, icptest.FieldBrStatus)
}

// SetSr sets the "sr" field.
func (m *IcpTestMutation) SetSr(f float64) {
	m.sr = &f
	m.addsr = nil
}

// Sr returns the value of the "sr" field in the mutation.
func (m *IcpTestMutation) Sr() (r float64, exists bool) {
	v := m.sr
	if v == nil {
		return
	}
	return *v, true
}

// OldSr returns the old "sr" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSr: %w", err)
	}
	return oldValue.Sr, nil
}

// AddSr adds f to the "sr" field.
func (m *IcpTestMutation) AddSr(f float64) {
	if m.addsr != nil {
		*m.addsr += f
	} else {
		m.addsr = &f
	}
}

// AddedSr returns the value that was added to the "sr" field in this mutation.
func (m *IcpTestMutation) AddedSr() (r float64, exists bool) {
	v := m.addsr
	if v == nil {
		return
	}
	return *v, true
}

// ClearSr clears the value of the "sr" field.
func (m *IcpTestMutation) ClearSr() {
	m.sr = nil
	m.addsr = nil
	m.clearedFields[icptest.FieldSr] = struct{}{}
}

// SrCleared returns if the "sr" field was cleared in this mutation.
func (m *IcpTestMutation) SrCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSr]
	return ok
}

// ResetSr resets all changes to the "sr" field.
func (m *IcpTestMutation) ResetSr() {
	m.sr = nil
	m.addsr = nil
	delete(m.clearedFields, icptest.FieldSr)
}

// SetSrStatus sets the "sr_status" field.
func (m *IcpTestMutation) SetSrStatus(cs constants.ElementStatus) {
	m.sr_status = &cs
}

// SrStatus returns the value of the "sr_status" field in the mutation.
func (m *IcpTestMutation) SrStatus() (r constants.ElementStatus, exists bool) {
	v := m.sr_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSrStatus returns the old "sr_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSrStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrStatus: %w", err)
	}
	return oldValue.SrStatus, nil
}

// ClearSrStatus clears the value of the "sr_status" field.
func (m *IcpTestMutation) ClearSrStatus() {
	m.sr_status = nil
	m.clearedFields[icptest.FieldSrStatus] = struct{}{}
}

// SrStatusCleared returns if the "sr_status" field was cleared in this mutation.
func (m *IcpTestMutation) SrStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSrStatus]
	return ok
}

// ResetSrStatus resets all changes to the "sr_status" field.
func (m *IcpTestMutation) ResetSrStatus() {
	m.sr_status = nil
	delete(m.clearedFields, icptest.FieldSrStatus)
}

// SetB sets the "b" field.
func (m *IcpTestMutation) SetB(f float64) {
	m.b = &f
	m.addb = nil
}

// B returns the value of the "b" field in the mutation.
func (m *IcpTestMutation) B() (r float64, exists bool) {
	v := m.b
	if v == nil {
		return
	}
	return *v, true
}

// OldB returns the old "b" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldB(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldB: %w", err)
	}
	return oldValue.B, nil
}

// AddB adds f to the "b" field.
func (m *IcpTestMutation) AddB(f float64) {
	if m.addb != nil {
		*m.addb += f
	} else {
		m.addb = &f
	}
}

// AddedB returns the value that was added to the "b" field in this mutation.
func (m *IcpTestMutation) AddedB() (r float64, exists bool) {
	v := m.addb
	if v == nil {
		return
	}
	return *v, true
}

// ClearB clears the value of the "b" field.
func (m *IcpTestMutation) ClearB() {
	m.b = nil
	m.addb = nil
	m.clearedFields[icptest.FieldB] = struct{}{}
}

// BCleared returns if the "b" field was cleared in this mutation.
func (m *IcpTestMutation) BCleared() bool {
	_, ok := m.clearedFields[icptest.FieldB]
	return ok
}

// ResetB resets all changes to the "b" field.
func (m *IcpTestMutation) ResetB() {
	m.b = nil
	m.addb = nil
	delete(m.clearedFields, icptest.FieldB)
}

// SetBStatus sets the "b_status" field.
func (m *IcpTestMutation) SetBStatus(cs constants.ElementStatus) {
	m.b_status = &cs
}

// BStatus returns the value of the "b_status" field in the mutation.
func (m *IcpTestMutation) BStatus() (r constants.ElementStatus, exists bool) {
	v := m.b_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBStatus returns the old "b_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBStatus: %w", err)
	}
	return oldValue.BStatus, nil
}

// ClearBStatus clears the value of the "b_status" field.
func (m *IcpTestMutation) ClearBStatus() {
	m.b_status = nil
	m.clearedFields[icptest.FieldBStatus] = struct{}{}
}

// BStatusCleared returns if the "b_status" field was cleared in this mutation.
func (m *IcpTestMutation) BStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBStatus]
	return ok
}

// ResetBStatus resets all changes to the "b_status" field.
func (m *IcpTestMutation) ResetBStatus() {
	m.b_status = nil
	delete(m.clearedFields, icptest.FieldBStatus)
}

// SetF sets the "f" field.
func (m *IcpTestMutation) SetF(f float64) {
	m.f = &f
	m.addf = nil
}

// F returns the value of the "f" field in the mutation.
func (m *IcpTestMutation) F() (r float64, exists bool) {
	v := m.f
	if v == nil {
		return
	}
	return *v, true
}

// OldF returns the old "f" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldF(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldF is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldF requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldF: %w", err)
	}
	return oldValue.F, nil
}

// AddF adds f to the "f" field.
func (m *IcpTestMutation) AddF(f float64) {
	if m.addf != nil {
		*m.addf += f
	} else {
		m.addf = &f
	}
}

// AddedF returns the value that was added to the "f" field in this mutation.
func (m *IcpTestMutation) AddedF() (r float64, exists bool) {
	v := m.addf
	if v == nil {
		return
	}
	return *v, true
}

// ClearF clears the value of the "f" field.
func (m *IcpTestMutation) ClearF() {
	m.f = nil
	m.addf = nil
	m.clearedFields[icptest.FieldF] = struct{}{}
}

// FCleared returns if the "f" field was cleared in this mutation.
func (m *IcpTestMutation) FCleared() bool {
	_, ok := m.clearedFields[icptest.FieldF]
	return ok
}

// ResetF resets all changes to the "f" field.
func (m *IcpTestMutation) ResetF() {
	m.f = nil
	m.addf = nil
	delete(m.clearedFields, icptest.FieldF)
}

// SetFStatus sets the "f_status" field.
func (m *IcpTestMutation) SetFStatus(cs constants.ElementStatus) {
	m.f_status = &cs
}

// FStatus returns the value of the "f_status" field in the mutation.
func (m *IcpTestMutation) FStatus() (r constants.ElementStatus, exists bool) {
	v := m.f_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFStatus returns the old "f_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldFStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFStatus: %w", err)
	}
	return oldValue.FStatus, nil
}

// ClearFStatus clears the value of the "f_status" field.
func (m *IcpTestMutation) ClearFStatus() {
	m.f_status = nil
	m.clearedFields[icptest.FieldFStatus] = struct{}{}
}

// FStatusCleared returns if the "f_status" field was cleared in this mutation.
func (m *IcpTestMutation) FStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldFStatus]
	return ok
}

// ResetFStatus resets all changes to the "f_status" field.
func (m *IcpTestMutation) ResetFStatus() {
	m.f_status = nil
	delete(m.clearedFields, icptest.FieldFStatus)
}

// SetLi sets the "li" field.
func (m *IcpTestMutation) SetLi(f float64) {
	m.li = &f
	m.addli = nil
}

// Li returns the value of the "li" field in the mutation.
func (m *IcpTestMutation) Li() (r float64, exists bool) {
	v := m.li
	if v == nil {
		return
	}
	return *v, true
}

// OldLi returns the old "li" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldLi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLi: %w", err)
	}
	return oldValue.Li, nil
}

// AddLi adds f to the "li" field.
func (m *IcpTestMutation) AddLi(f float64) {
	if m.addli != nil {
		*m.addli += f
	} else {
		m.addli = &f
	}
}

// AddedLi returns the value that was added to the "li" field in this mutation.
func (m *IcpTestMutation) AddedLi() (r float64, exists bool) {
	v := m.addli
	if v == nil {
		return
	}
	return *v, true
}

// ClearLi clears the value of the "li" field.
func (m *IcpTestMutation) ClearLi() {
	m.li = nil
	m.addli = nil
	m.clearedFields[icptest.FieldLi] = struct{}{}
}

// LiCleared returns if the "li" field was cleared in this mutation.
func (m *IcpTestMutation) LiCleared() bool {
	_, ok := m.clearedFields[icptest.FieldLi]
	return ok
}

// ResetLi resets all changes to the "li" field.
func (m *IcpTestMutation) ResetLi() {
	m.li = nil
	m.addli = nil
	delete(m.clearedFields, icptest.FieldLi)
}

// SetLiStatus sets the "li_status" field.
func (m *IcpTestMutation) SetLiStatus(cs constants.ElementStatus) {
	m.li_status = &cs
}

// LiStatus returns the value of the "li_status" field in the mutation.
func (m *IcpTestMutation) LiStatus() (r constants.ElementStatus, exists bool) {
	v := m.li_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLiStatus returns the old "li_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldLiStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLiStatus: %w", err)
	}
	return oldValue.LiStatus, nil
}

// ClearLiStatus clears the value of the "li_status" field.
func (m *IcpTestMutation) ClearLiStatus() {
	m.li_status = nil
	m.clearedFields[icptest.FieldLiStatus] = struct{}{}
}

// LiStatusCleared returns if the "li_status" field was cleared in this mutation.
func (m *IcpTestMutation) LiStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldLiStatus]
	return ok
}

// ResetLiStatus resets all changes to the "li_status" field.
func (m *IcpTestMutation) ResetLiStatus() {
	m.li_status = nil
	delete(m.clearedFields, icptest.FieldLiStatus)
}

// SetSi sets the "si" field.
func (m *IcpTestMutation) SetSi(f float64) {
	m.si = &f
	m.addsi = nil
}

// Si returns the value of the "si" field in the mutation.
func (m *IcpTestMutation) Si() (r float64, exists bool) {
	v := m.si
	if v == nil {
		return
	}
	return *v, true
}

// OldSi returns the old "si" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSi: %w", err)
	}
	return oldValue.Si, nil
}

// AddSi adds f to the "si" field.
func (m *IcpTestMutation) AddSi(f float64) {
	if m.addsi != nil {
		*m.addsi += f
	} else {
		m.addsi = &f
	}
}

// AddedSi returns the value that was added to the "si" field in this mutation.
func (m *IcpTestMutation) AddedSi() (r float64, exists bool) {
	v := m.addsi
	if v == nil {
		return
	}
	return *v, true
}

// ClearSi clears the value of the "si" field.
func (m *IcpTestMutation) ClearSi() {
	m.si = nil
	m.addsi = nil
	m.clearedFields[icptest.FieldSi] = struct{}{}
}

// SiCleared returns if the "si" field was cleared in this mutation.
func (m *IcpTestMutation) SiCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSi]
	return ok
}

// ResetSi resets all changes to the "si" field.
func (m *IcpTestMutation) ResetSi() {
	m.si = nil
	m.addsi = nil
	delete(m.clearedFields, icptest.FieldSi)
}

// SetSiStatus sets the "si_status" field.
func (m *IcpTestMutation) SetSiStatus(cs constants.ElementStatus) {
	m.si_status = &cs
}

// SiStatus returns the value of the "si_status" field in the mutation.
func (m *IcpTestMutation) SiStatus() (r constants.ElementStatus, exists bool) {
	v := m.si_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSiStatus returns the old "si_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSiStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiStatus: %w", err)
	}
	return oldValue.SiStatus, nil
}

// ClearSiStatus clears the value of the "si_status" field.
func (m *IcpTestMutation) ClearSiStatus() {
	m.si_status = nil
	m.clearedFields[icptest.FieldSiStatus] = struct{}{}
}

// SiStatusCleared returns if the "si_status" field was cleared in this mutation.
func (m *IcpTestMutation) SiStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSiStatus]
	return ok
}

// ResetSiStatus resets all changes to the "si_status" field.
func (m *IcpTestMutation) ResetSiStatus() {
	m.si_status = nil
	delete(m.clearedFields, icptest.FieldSiStatus)
}

// SetI sets the "i" field.
func (m *IcpTestMutation) SetI(f float64) {
	m.i = &f
	m.addi = nil
}

// I returns the value of the "i" field in the mutation.
func (m *IcpTestMutation) I() (r float64, exists bool) {
	v := m.i
	if v == nil {
		return
	}
	return *v, true
}

// OldI returns the old "i" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldI(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldI: %w", err)
	}
	return oldValue.I, nil
}

// AddI adds f to the "i" field.
func (m *IcpTestMutation) AddI(f float64) {
	if m.addi != nil {
		*m.addi += f
	} else {
		m.addi = &f
	}
}

// AddedI returns the value that was added to the "i" field in this mutation.
func (m *IcpTestMutation) AddedI() (r float64, exists bool) {
	v := m.addi
	if v == nil {
		return
	}
	return *v, true
}

// ClearI clears the value of the "i" field.
func (m *IcpTestMutation) ClearI() {
	m.i = nil
	m.addi = nil
	m.clearedFields[icptest.FieldI] = struct{}{}
}

// ICleared returns if the "i" field was cleared in this mutation.
func (m *IcpTestMutation) ICleared() bool {
	_, ok := m.clearedFields[icptest.FieldI]
	return ok
}

// ResetI resets all changes to the "i" field.
func (m *IcpTestMutation) ResetI() {
	m.i = nil
	m.addi = nil
	delete(m.clearedFields, icptest.FieldI)
}

// SetIStatus sets the "i_status" field.
func (m *IcpTestMutation) SetIStatus(cs constants.ElementStatus) {
	m.i_status = &cs
}

// IStatus returns the value of the "i_status" field in the mutation.
func (m *IcpTestMutation) IStatus() (r constants.ElementStatus, exists bool) {
	v := m.i_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIStatus returns the old "i_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldIStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIStatus: %w", err)
	}
	return oldValue.IStatus, nil
}

// ClearIStatus clears the value of the "i_status" field.
func (m *IcpTestMutation) ClearIStatus() {
	m.i_status = nil
	m.clearedFields[icptest.FieldIStatus] = struct{}{}
}

// IStatusCleared returns if the "i_status" field was cleared in this mutation.
func (m *IcpTestMutation) IStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldIStatus]
	return ok
}

// ResetIStatus resets all changes to the "i_status" field.
func (m *IcpTestMutation) ResetIStatus() {
	m.i_status = nil
	delete(m.clearedFields, icptest.FieldIStatus)
}

// SetBa sets the "ba" field.
func (m *IcpTestMutation) SetBa(f float64) {
	m.ba = &f
	m.addba = nil
}

// Ba returns the value of the "ba" field in the mutation.
func (m *IcpTestMutation) Ba() (r float64, exists bool) {
	v := m.ba
	if v == nil {
		return
	}
	return *v, true
}

// OldBa returns the old "ba" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBa: %w", err)
	}
	return oldValue.Ba, nil
}

// AddBa adds f to the "ba" field.
func (m *IcpTestMutation) AddBa(f float64) {
	if m.addba != nil {
		*m.addba += f
	} else {
		m.addba = &f
	}
}

// AddedBa returns the value that was added to the "ba" field in this mutation.
func (m *IcpTestMutation) AddedBa() (r float64, exists bool) {
	v := m.addba
	if v == nil {
		return
	}
	return *v, true
}

// ClearBa clears the value of the "ba" field.
func (m *IcpTestMutation) ClearBa() {
	m.ba = nil
	m.addba = nil
	m.clearedFields[icptest.FieldBa] = struct{}{}
}

// BaCleared returns if the "ba" field was cleared in this mutation.
func (m *IcpTestMutation) BaCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBa]
	return ok
}

// ResetBa resets all changes to the "ba" field.
func (m *IcpTestMutation) ResetBa() {
	m.ba = nil
	m.addba = nil
	delete(m.clearedFields, icptest.FieldBa)
}

// SetBaStatus sets the "ba_status" field.
func (m *IcpTestMutation) SetBaStatus(cs constants.ElementStatus) {
	m.ba_status = &cs
}

// BaStatus returns the value of the "ba_status" field in the mutation.
func (m *IcpTestMutation) BaStatus() (r constants.ElementStatus, exists bool) {
	v := m.ba_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBaStatus returns the old "ba_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBaStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaStatus: %w", err)
	}
	return oldValue.BaStatus, nil
}

// ClearBaStatus clears the value of the "ba_status" field.
func (m *IcpTestMutation) ClearBaStatus() {
	m.ba_status = nil
	m.clearedFields[icptest.FieldBaStatus] = struct{}{}
}

// BaStatusCleared returns if the "ba_status" field was cleared in this mutation.
func (m *IcpTestMutation) BaStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBaStatus]
	return ok
}

// ResetBaStatus resets all changes to the "ba_status" field.
func (m *IcpTestMutation) ResetBaStatus() {
	m.ba_status = nil
	delete(m.clearedFields, icptest.FieldBaStatus)
}

// SetMo sets the "mo" field.
func (m *IcpTestMutation) SetMo(f float64) {
	m.mo = &f
	m.addmo = nil
}

// Mo returns the value of the "mo" field in the mutation.
func (m *IcpTestMutation) Mo() (r float64, exists bool) {
	v := m.mo
	if v == nil {
		return
	}
	return *v, true
}

// OldMo returns the old "mo" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMo(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMo: %w", err)
	}
	return oldValue.Mo, nil
}

// AddMo adds f to the "mo" field.
func (m *IcpTestMutation) AddMo(f float64) {
	if m.addmo != nil {
		*m.addmo += f
	} else {
		m.addmo = &f
	}
}

// AddedMo returns the value that was added to the "mo" field in this mutation.
func (m *IcpTestMutation) AddedMo() (r float64, exists bool) {
	v := m.addmo
	if v == nil {
		return
	}
	return *v, true
}

// ClearMo clears the value of the "mo" field.
func (m *IcpTestMutation) ClearMo() {
	m.mo = nil
	m.addmo = nil
	m.clearedFields[icptest.FieldMo] = struct{}{}
}

// MoCleared returns if the "mo" field was cleared in this mutation.
func (m *IcpTestMutation) MoCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMo]
	return ok
}

// ResetMo resets all changes to the "mo" field.
func (m *IcpTestMutation) ResetMo() {
	m.mo = nil
	m.addmo = nil
	delete(m.clearedFields, icptest.FieldMo)
}

// SetMoStatus sets the "mo_status" field.
func (m *IcpTestMutation) SetMoStatus(cs constants.ElementStatus) {
	m.mo_status = &cs
}

// MoStatus returns the value of the "mo_status" field in the mutation.
func (m *IcpTestMutation) MoStatus() (r constants.ElementStatus, exists bool) {
	v := m.mo_status
	if v == nil {
		return
	}
	return *v, true
}

// OldMoStatus returns the old "mo_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMoStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoStatus: %w", err)
	}
	return oldValue.MoStatus, nil
}

// ClearMoStatus clears the value of the "mo_status" field.
func (m *IcpTestMutation) ClearMoStatus() {
	m.mo_status = nil
	m.clearedFields[icptest.FieldMoStatus] = struct{}{}
}

// MoStatusCleared returns if the "mo_status" field was cleared in this mutation.
func (m *IcpTestMutation) MoStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMoStatus]
	return ok
}

// ResetMoStatus resets all changes to the "mo_status" field.
func (m *IcpTestMutation) ResetMoStatus() {
	m.mo_status = nil
	delete(m.clearedFields, icptest.FieldMoStatus)
}

// SetNi sets the "ni" field.
func (m *IcpTestMutation) SetNi(f float64) {
	m.ni = &f
	m.addni = nil
}

// Ni returns the value of the "ni" field in the mutation.
func (m *IcpTestMutation) Ni() (r float64, exists bool) {
	v := m.ni
	if v == nil {
		return
	}
	return *v, true
}

// OldNi returns the old "ni" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNi: %w", err)
	}
	return oldValue.Ni, nil
}

// AddNi adds f to the "ni" field.
func (m *IcpTestMutation) AddNi(f float64) {
	if m.addni != nil {
		*m.addni += f
	} else {
		m.addni = &f
	}
}

// AddedNi returns the value that was added to the "ni" field in this mutation.
func (m *IcpTestMutation) AddedNi() (r float64, exists bool) {
	v := m.addni
	if v == nil {
		return
	}
	return *v, true
}

// ClearNi clears the value of the "ni" field.
func (m *IcpTestMutation) ClearNi() {
	m.ni = nil
	m.addni = nil
	m.clearedFields[icptest.FieldNi] = struct{}{}
}

// NiCleared returns if the "ni" field was cleared in this mutation.
func (m *IcpTestMutation) NiCleared() bool {
	_, ok := m.clearedFields[icptest.FieldNi]
	return ok
}

// ResetNi resets all changes to the "ni" field.
func (m *IcpTestMutation) ResetNi() {
	m.ni = nil
	m.addni = nil
	delete(m.clearedFields, icptest.FieldNi)
}

// SetNiStatus sets the "ni_status" field.
func (m *IcpTestMutation) SetNiStatus(cs constants.ElementStatus) {
	m.ni_status = &cs
}

// NiStatus returns the value of the "ni_status" field in the mutation.
func (m *IcpTestMutation) NiStatus() (r constants.ElementStatus, exists bool) {
	v := m.ni_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNiStatus returns the old "ni_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNiStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNiStatus: %w", err)
	}
	return oldValue.NiStatus, nil
}

// ClearNiStatus clears the value of the "ni_status" field.
func (m *IcpTestMutation) ClearNiStatus() {
	m.ni_status = nil
	m.clearedFields[icptest.FieldNiStatus] = struct{}{}
}

// NiStatusCleared returns if the "ni_status" field was cleared in this mutation.
func (m *IcpTestMutation) NiStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldNiStatus]
	return ok
}

// ResetNiStatus resets all changes to the "ni_status" field.
func (m *IcpTestMutation) ResetNiStatus() {
	m.ni_status = nil
	delete(m.clearedFields, icptest.FieldNiStatus)
}

// SetMn sets the "mn" field.
func (m *IcpTestMutation) SetMn(f float64) {
	m.mn = &f
	m.addmn = nil
}

// Mn returns the value of the "mn" field in the mutation.
func (m *IcpTestMutation) Mn() (r float64, exists bool) {
	v := m.mn
	if v == nil {
		return
	}
	return *v, true
}

// OldMn returns the old "mn" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMn(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMn: %w", err)
	}
	return oldValue.Mn, nil
}

// AddMn adds f to the "mn" field.
func (m *IcpTestMutation) AddMn(f float64) {
	if m.addmn != nil {
		*m.addmn += f
	} else {
		m.addmn = &f
	}
}

// AddedMn returns the value that was added to the "mn" field in this mutation.
func (m *IcpTestMutation) AddedMn() (r float64, exists bool) {
	v := m.addmn
	if v == nil {
		return
	}
	return *v, true
}

// ClearMn clears the value of the "mn" field.
func (m *IcpTestMutation) ClearMn() {
	m.mn = nil
	m.addmn = nil
	m.clearedFields[icptest.FieldMn] = struct{}{}
}

// MnCleared returns if the "mn" field was cleared in this mutation.
func (m *IcpTestMutation) MnCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMn]
	return ok
}

// ResetMn resets all changes to the "mn" field.
func (m *IcpTestMutation) ResetMn() {
	m.mn = nil
	m.addmn = nil
	delete(m.clearedFields, icptest.FieldMn)
}

// SetMnStatus sets the "mn_status" field.
func (m *IcpTestMutation) SetMnStatus(cs constants.ElementStatus) {
	m.mn_status = &cs
}

// MnStatus returns the value of the "mn_status" field in the mutation.
func (m *IcpTestMutation) MnStatus() (r constants.ElementStatus, exists bool) {
	v := m.mn_status
	if v == nil {
		return
	}
	return *v, true
}

// OldMnStatus returns the old "mn_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldMnStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMnStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMnStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMnStatus: %w", err)
	}
	return oldValue.MnStatus, nil
}

// ClearMnStatus clears the value of the "mn_status" field.
func (m *IcpTestMutation) ClearMnStatus() {
	m.mn_status = nil
	m.clearedFields[icptest.FieldMnStatus] = struct{}{}
}

// MnStatusCleared returns if the "mn_status" field was cleared in this mutation.
func (m *IcpTestMutation) MnStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldMnStatus]
	return ok
}

// ResetMnStatus resets all changes to the "mn_status" field.
func (m *IcpTestMutation) ResetMnStatus() {
	m.mn_status = nil
	delete(m.clearedFields, icptest.FieldMnStatus)
}

// SetAs sets the "as" field.
func (m *IcpTestMutation) SetAs(f float64) {
	m.as = &f
	m.addas = nil
}

// As returns the value of the "as" field in the mutation.
func (m *IcpTestMutation) As() (r float64, exists bool) {
	v := m.as
	if v == nil {
		return
	}
	return *v, true
}

// OldAs returns the old "as" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAs(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAs: %w", err)
	}
	return oldValue.As, nil
}

// AddAs adds f to the "as" field.
func (m *IcpTestMutation) AddAs(f float64) {
	if m.addas != nil {
		*m.addas += f
	} else {
		m.addas = &f
	}
}

// AddedAs returns the value that was added to the "as" field in this mutation.
func (m *IcpTestMutation) AddedAs() (r float64, exists bool) {
	v := m.addas
	if v == nil {
		return
	}
	return *v, true
}

// ClearAs clears the value of the "as" field.
func (m *IcpTestMutation) ClearAs() {
	m.as = nil
	m.addas = nil
	m.clearedFields[icptest.FieldAs] = struct{}{}
}

// AsCleared returns if the "as" field was cleared in this mutation.
func (m *IcpTestMutation) AsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAs]
	return ok
}

// ResetAs resets all changes to the "as" field.
func (m *IcpTestMutation) ResetAs() {
	m.as = nil
	m.addas = nil
	delete(m.clearedFields, icptest.FieldAs)
}

// SetAsStatus sets the "as_status" field.
func (m *IcpTestMutation) SetAsStatus(cs constants.ElementStatus) {
	m.as_status = &cs
}

// AsStatus returns the value of the "as_status" field in the mutation.
func (m *IcpTestMutation) AsStatus() (r constants.ElementStatus, exists bool) {
	v := m.as_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAsStatus returns the old "as_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAsStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsStatus: %w", err)
	}
	return oldValue.AsStatus, nil
}

// ClearAsStatus clears the value of the "as_status" field.
func (m *IcpTestMutation) ClearAsStatus() {
	m.as_status = nil
	m.clearedFields[icptest.FieldAsStatus] = struct{}{}
}

// AsStatusCleared returns if the "as_status" field was cleared in this mutation.
func (m *IcpTestMutation) AsStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAsStatus]
	return ok
}

// ResetAsStatus resets all changes to the "as_status" field.
func (m *IcpTestMutation) ResetAsStatus() {
	m.as_status = nil
	delete(m.clearedFields, icptest.FieldAsStatus)
}

// SetBe sets the "be" field.
func (m *IcpTestMutation) SetBe(f float64) {
	m.be = &f
	m.addbe = nil
}

// Be returns the value of the "be" field in the mutation.
func (m *IcpTestMutation) Be() (r float64, exists bool) {
	v := m.be
	if v == nil {
		return
	}
	return *v, true
}

// OldBe returns the old "be" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBe(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBe: %w", err)
	}
	return oldValue.Be, nil
}

// AddBe adds f to the "be" field.
func (m *IcpTestMutation) AddBe(f float64) {
	if m.addbe != nil {
		*m.addbe += f
	} else {
		m.addbe = &f
	}
}

// AddedBe returns the value that was added to the "be" field in this mutation.
func (m *IcpTestMutation) AddedBe() (r float64, exists bool) {
	v := m.addbe
	if v == nil {
		return
	}
	return *v, true
}

// ClearBe clears the value of the "be" field.
func (m *IcpTestMutation) ClearBe() {
	m.be = nil
	m.addbe = nil
	m.clearedFields[icptest.FieldBe] = struct{}{}
}

// BeCleared returns if the "be" field was cleared in this mutation.
func (m *IcpTestMutation) BeCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBe]
	return ok
}

// ResetBe resets all changes to the "be" field.
func (m *IcpTestMutation) ResetBe() {
	m.be = nil
	m.addbe = nil
	delete(m.clearedFields, icptest.FieldBe)
}

// SetBeStatus sets the "be_status" field.
func (m *IcpTestMutation) SetBeStatus(cs constants.ElementStatus) {
	m.be_status = &cs
}

// BeStatus returns the value of the "be_status" field in the mutation.
func (m *IcpTestMutation) BeStatus() (r constants.ElementStatus, exists bool) {
	v := m.be_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBeStatus returns the old "be_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBeStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeStatus: %w", err)
	}
	return oldValue.BeStatus, nil
}

// ClearBeStatus clears the value of the "be_status" field.
func (m *IcpTestMutation) ClearBeStatus() {
	m.be_status = nil
	m.clearedFields[icptest.FieldBeStatus] = struct{}{}
}

// BeStatusCleared returns if the "be_status" field was cleared in this mutation.
func (m *IcpTestMutation) BeStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBeStatus]
	return ok
}

// ResetBeStatus resets all changes to the "be_status" field.
func (m *IcpTestMutation) ResetBeStatus() {
	m.be_status = nil
	delete(m.clearedFields, icptest.FieldBeStatus)
}

// SetCr sets the "cr" field.
func (m *IcpTestMutation) SetCr(f float64) {
	m.cr = &f
	m.addcr = nil
}

// Cr returns the value of the "cr" field in the mutation.
func (m *IcpTestMutation) Cr() (r float64, exists bool) {
	v := m.cr
	if v == nil {
		return
	}
	return *v, true
}

// OldCr returns the old "cr" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCr: %w", err)
	}
	return oldValue.Cr, nil
}

// AddCr adds f to the "cr" field.
func (m *IcpTestMutation) AddCr(f float64) {
	if m.addcr != nil {
		*m.addcr += f
	} else {
		m.addcr = &f
	}
}

// AddedCr returns the value that was added to the "cr" field in this mutation.
func (m *IcpTestMutation) AddedCr() (r float64, exists bool) {
	v := m.addcr
	if v == nil {
		return
	}
	return *v, true
}

// ClearCr clears the value of the "cr" field.
func (m *IcpTestMutation) ClearCr() {
	m.cr = nil
	m.addcr = nil
	m.clearedFields[icptest.FieldCr] = struct{}{}
}

// CrCleared returns if the "cr" field was cleared in this mutation.
func (m *IcpTestMutation) CrCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCr]
	return ok
}

// ResetCr resets all changes to the "cr" field.
func (m *IcpTestMutation) ResetCr() {
	m.cr = nil
	m.addcr = nil
	delete(m.clearedFields, icptest.FieldCr)
}

// SetCrStatus sets the "cr_status" field.
func (m *IcpTestMutation) SetCrStatus(cs constants.ElementStatus) {
	m.cr_status = &cs
}

// CrStatus returns the value of the "cr_status" field in the mutation.
func (m *IcpTestMutation) CrStatus() (r constants.ElementStatus, exists bool) {
	v := m.cr_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCrStatus returns the old "cr_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCrStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrStatus: %w", err)
	}
	return oldValue.CrStatus, nil
}

// ClearCrStatus clears the value of the "cr_status" field.
func (m *IcpTestMutation) ClearCrStatus() {
	m.cr_status = nil
	m.clearedFields[icptest.FieldCrStatus] = struct{}{}
}

// CrStatusCleared returns if the "cr_status" field was cleared in this mutation.
func (m *IcpTestMutation) CrStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCrStatus]
	return ok
}

// ResetCrStatus resets all changes to the "cr_status" field.
func (m *IcpTestMutation) ResetCrStatus() {
	m.cr_status = nil
	delete(m.clearedFields, icptest.FieldCrStatus)
}

// SetCo sets the "co" field.
func (m *IcpTestMutation) SetCo(f float64) {
	m.co = &f
	m.addco = nil
}

// Co returns the value of the "co" field in the mutation.
func (m *IcpTestMutation) Co() (r float64, exists bool) {
	v := m.co
	if v == nil {
		return
	}
	return *v, true
}

// OldCo returns the old "co" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCo(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCo: %w", err)
	}
	return oldValue.Co, nil
}

// AddCo adds f to the "co" field.
func (m *IcpTestMutation) AddCo(f float64) {
	if m.addco != nil {
		*m.addco += f
	} else {
		m.addco = &f
	}
}

// AddedCo returns the value that was added to the "co" field in this mutation.
func (m *IcpTestMutation) AddedCo() (r float64, exists bool) {
	v := m.addco
	if v == nil {
		return
	}
	return *v, true
}

// ClearCo clears the value of the "co" field.
func (m *IcpTestMutation) ClearCo() {
	m.co = nil
	m.addco = nil
	m.clearedFields[icptest.FieldCo] = struct{}{}
}

// CoCleared returns if the "co" field was cleared in this mutation.
func (m *IcpTestMutation) CoCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCo]
	return ok
}

// ResetCo resets all changes to the "co" field.
func (m *IcpTestMutation) ResetCo() {
	m.co = nil
	m.addco = nil
	delete(m.clearedFields, icptest.FieldCo)
}

// SetCoStatus sets the "co_status" field.
func (m *IcpTestMutation) SetCoStatus(cs constants.ElementStatus) {
	m.co_status = &cs
}

// CoStatus returns the value of the "co_status" field in the mutation.
func (m *IcpTestMutation) CoStatus() (r constants.ElementStatus, exists bool) {
	v := m.co_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCoStatus returns the old "co_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCoStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoStatus: %w", err)
	}
	return oldValue.CoStatus, nil
}

// ClearCoStatus clears the value of the "co_status" field.
func (m *IcpTestMutation) ClearCoStatus() {
	m.co_status = nil
	m.clearedFields[icptest.FieldCoStatus] = struct{}{}
}

// CoStatusCleared returns if the "co_status" field was cleared in this mutation.
func (m *IcpTestMutation) CoStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCoStatus]
	return ok
}

// ResetCoStatus resets all changes to the "co_status" field.
func (m *IcpTestMutation) ResetCoStatus() {
	m.co_status = nil
	delete(m.clearedFields, icptest.FieldCoStatus)
}

// SetFe sets the "fe" field.
func (m *IcpTestMutation) SetFe(f float64) {
	m.fe = &f
	m.addfe = nil
}

// Fe returns the value of the "fe" field in the mutation.
func (m *IcpTestMutation) Fe() (r float64, exists bool) {
	v := m.fe
	if v == nil {
		return
	}
	return *v, true
}

// OldFe returns the old "fe" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldFe(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFe: %w", err)
	}
	return oldValue.Fe, nil
}

// AddFe adds f to the "fe" field.
func (m *IcpTestMutation) AddFe(f float64) {
	if m.addfe != nil {
		*m.addfe += f
	} else {
		m.addfe = &f
	}
}

// AddedFe returns the value that was added to the "fe" field in this mutation.
func (m *IcpTestMutation) AddedFe() (r float64, exists bool) {
	v := m.addfe
	if v == nil {
		return
	}
	return *v, true
}

// ClearFe clears the value of the "fe" field.
func (m *IcpTestMutation) ClearFe() {
	m.fe = nil
	m.addfe = nil
	m.clearedFields[icptest.FieldFe] = struct{}{}
}

// FeCleared returns if the "fe" field was cleared in this mutation.
func (m *IcpTestMutation) FeCleared() bool {
	_, ok := m.clearedFields[icptest.FieldFe]
	return ok
}

// ResetFe resets all changes to the "fe" field.
func (m *IcpTestMutation) ResetFe() {
	m.fe = nil
	m.addfe = nil
	delete(m.clearedFields, icptest.FieldFe)
}

// SetFeStatus sets the "fe_status" field.
func (m *IcpTestMutation) SetFeStatus(cs constants.ElementStatus) {
	m.fe_status = &cs
}

// FeStatus returns the value of the "fe_status" field in the mutation.
func (m *IcpTestMutation) FeStatus() (r constants.ElementStatus, exists bool) {
	v := m.fe_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFeStatus returns the old "fe_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldFeStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeStatus: %w", err)
	}
	return oldValue.FeStatus, nil
}

// ClearFeStatus clears the value of the "fe_status" field.
func (m *IcpTestMutation) ClearFeStatus() {
	m.fe_status = nil
	m.clearedFields[icptest.FieldFeStatus] = struct{}{}
}

// FeStatusCleared returns if the "fe_status" field was cleared in this mutation.
func (m *IcpTestMutation) FeStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldFeStatus]
	return ok
}

// ResetFeStatus resets all changes to the "fe_status" field.
func (m *IcpTestMutation) ResetFeStatus() {
	m.fe_status = nil
	delete(m.clearedFields, icptest.FieldFeStatus)
}

// SetCu sets the "cu" field.
func (m *IcpTestMutation) SetCu(f float64) {
	m.cu = &f
	m.addcu = nil
}

// Cu returns the value of the "cu" field in the mutation.
func (m *IcpTestMutation) Cu() (r float64, exists bool) {
	v := m.cu
	if v == nil {
		return
	}
	return *v, true
}

// OldCu returns the old "cu" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCu(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCu: %w", err)
	}
	return oldValue.Cu, nil
}

// AddCu adds f to the "cu" field.
func (m *IcpTestMutation) AddCu(f float64) {
	if m.addcu != nil {
		*m.addcu += f
	} else {
		m.addcu = &f
	}
}

// AddedCu returns the value that was added to the "cu" field in this mutation.
func (m *IcpTestMutation) AddedCu() (r float64, exists bool) {
	v := m.addcu
	if v == nil {
		return
	}
	return *v, true
}

// ClearCu clears the value of the "cu" field.
func (m *IcpTestMutation) ClearCu() {
	m.cu = nil
	m.addcu = nil
	m.clearedFields[icptest.FieldCu] = struct{}{}
}

// CuCleared returns if the "cu" field was cleared in this mutation.
func (m *IcpTestMutation) CuCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCu]
	return ok
}

// ResetCu resets all changes to the "cu" field.
func (m *IcpTestMutation) ResetCu() {
	m.cu = nil
	m.addcu = nil
	delete(m.clearedFields, icptest.FieldCu)
}

// SetCuStatus sets the "cu_status" field.
func (m *IcpTestMutation) SetCuStatus(cs constants.ElementStatus) {
	m.cu_status = &cs
}

// CuStatus returns the value of the "cu_status" field in the mutation.
func (m *IcpTestMutation) CuStatus() (r constants.ElementStatus, exists bool) {
	v := m.cu_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCuStatus returns the old "cu_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCuStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuStatus: %w", err)
	}
	return oldValue.CuStatus, nil
}

// ClearCuStatus clears the value of the "cu_status" field.
func (m *IcpTestMutation) ClearCuStatus() {
	m.cu_status = nil
	m.clearedFields[icptest.FieldCuStatus] = struct{}{}
}

// CuStatusCleared returns if the "cu_status" field was cleared in this mutation.
func (m *IcpTestMutation) CuStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCuStatus]
	return ok
}

// ResetCuStatus resets all changes to the "cu_status" field.
func (m *IcpTestMutation) ResetCuStatus() {
	m.cu_status = nil
	delete(m.clearedFields, icptest.FieldCuStatus)
}

// SetSe sets the "se" field.
func (m *IcpTestMutation) SetSe(f float64) {
	m.se = &f
	m.addse = nil
}

// Se returns the value of the "se" field in the mutation.
func (m *IcpTestMutation) Se() (r float64, exists bool) {
	v := m.se
	if v == nil {
		return
	}
	return *v, true
}

// OldSe returns the old "se" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSe(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSe: %w", err)
	}
	return oldValue.Se, nil
}

// AddSe adds f to the "se" field.
func (m *IcpTestMutation) AddSe(f float64) {
	if m.addse != nil {
		*m.addse += f
	} else {
		m.addse = &f
	}
}

// AddedSe returns the value that was added to the "se" field in this mutation.
func (m *IcpTestMutation) AddedSe() (r float64, exists bool) {
	v := m.addse
	if v == nil {
		return
	}
	return *v, true
}

// ClearSe clears the value of the "se" field.
func (m *IcpTestMutation) ClearSe() {
	m.se = nil
	m.addse = nil
	m.clearedFields[icptest.FieldSe] = struct{}{}
}

// SeCleared returns if the "se" field was cleared in this mutation.
func (m *IcpTestMutation) SeCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSe]
	return ok
}

// ResetSe resets all changes to the "se" field.
func (m *IcpTestMutation) ResetSe() {
	m.se = nil
	m.addse = nil
	delete(m.clearedFields, icptest.FieldSe)
}

// SetSeStatus sets the "se_status" field.
func (m *IcpTestMutation) SetSeStatus(cs constants.ElementStatus) {
	m.se_status = &cs
}

// SeStatus returns the value of the "se_status" field in the mutation.
func (m *IcpTestMutation) SeStatus() (r constants.ElementStatus, exists bool) {
	v := m.se_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSeStatus returns the old "se_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSeStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeStatus: %w", err)
	}
	return oldValue.SeStatus, nil
}

// ClearSeStatus clears the value of the "se_status" field.
func (m *IcpTestMutation) ClearSeStatus() {
	m.se_status = nil
	m.clearedFields[icptest.FieldSeStatus] = struct{}{}
}

// SeStatusCleared returns if the "se_status" field was cleared in this mutation.
func (m *IcpTestMutation) SeStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSeStatus]
	return ok
}

// ResetSeStatus resets all changes to the "se_status" field.
func (m *IcpTestMutation) ResetSeStatus() {
	m.se_status = nil
	delete(m.clearedFields, icptest.FieldSeStatus)
}

// SetAg sets the "ag" field.
func (m *IcpTestMutation) SetAg(f float64) {
	m.ag = &f
	m.addag = nil
}

// Ag returns the value of the "ag" field in the mutation.
func (m *IcpTestMutation) Ag() (r float64, exists bool) {
	v := m.ag
	if v == nil {
		return
	}
	return *v, true
}

// OldAg returns the old "ag" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAg: %w", err)
	}
	return oldValue.Ag, nil
}

// AddAg adds f to the "ag" field.
func (m *IcpTestMutation) AddAg(f float64) {
	if m.addag != nil {
		*m.addag += f
	} else {
		m.addag = &f
	}
}

// AddedAg returns the value that was added to the "ag" field in this mutation.
func (m *IcpTestMutation) AddedAg() (r float64, exists bool) {
	v := m.addag
	if v == nil {
		return
	}
	return *v, true
}

// ClearAg clears the value of the "ag" field.
func (m *IcpTestMutation) ClearAg() {
	m.ag = nil
	m.addag = nil
	m.clearedFields[icptest.FieldAg] = struct{}{}
}

// AgCleared returns if the "ag" field was cleared in this mutation.
func (m *IcpTestMutation) AgCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAg]
	return ok
}

// ResetAg resets all changes to the "ag" field.
func (m *IcpTestMutation) ResetAg() {
	m.ag = nil
	m.addag = nil
	delete(m.clearedFields, icptest.FieldAg)
}

// SetAgStatus sets the "ag_status" field.
func (m *IcpTestMutation) SetAgStatus(cs constants.ElementStatus) {
	m.ag_status = &cs
}

// AgStatus returns the value of the "ag_status" field in the mutation.
func (m *IcpTestMutation) AgStatus() (r constants.ElementStatus, exists bool) {
	v := m.ag_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAgStatus returns the old "ag_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAgStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgStatus: %w", err)
	}
	return oldValue.AgStatus, nil
}

// ClearAgStatus clears the value of the "ag_status" field.
func (m *IcpTestMutation) ClearAgStatus() {
	m.ag_status = nil
	m.clearedFields[icptest.FieldAgStatus] = struct{}{}
}

// AgStatusCleared returns if the "ag_status" field was cleared in this mutation.
func (m *IcpTestMutation) AgStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAgStatus]
	return ok
}

// ResetAgStatus resets all changes to the "ag_status" field.
func (m *IcpTestMutation) ResetAgStatus() {
	m.ag_status = nil
	delete(m.clearedFields, icptest.FieldAgStatus)
}

// SetV sets the "v" field.
func (m *IcpTestMutation) SetV(f float64) {
	m.v = &f
	m.addv = nil
}

// V returns the value of the "v" field in the mutation.
func (m *IcpTestMutation) V() (r float64, exists bool) {
	v := m.v
	if v == nil {
		return
	}
	return *v, true
}

// OldV returns the old "v" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldV(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldV is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldV requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldV: %w", err)
	}
	return oldValue.V, nil
}

// AddV adds f to the "v" field.
func (m *IcpTestMutation) AddV(f float64) {
	if m.addv != nil {
		*m.addv += f
	} else {
		m.addv = &f
	}
}

// AddedV returns the value that was added to the "v" field in this mutation.
func (m *IcpTestMutation) AddedV() (r float64, exists bool) {
	v := m.addv
	if v == nil {
		return
	}
	return *v, true
}

// ClearV clears the value of the "v" field.
func (m *IcpTestMutation) ClearV() {
	m.v = nil
	m.addv = nil
	m.clearedFields[icptest.FieldV] = struct{}{}
}

// VCleared returns if the "v" field was cleared in this mutation.
func (m *IcpTestMutation) VCleared() bool {
	_, ok := m.clearedFields[icptest.FieldV]
	return ok
}

// ResetV resets all changes to the "v" field.
func (m *IcpTestMutation) ResetV() {
	m.v = nil
	m.addv = nil
	delete(m.clearedFields, icptest.FieldV)
}

// SetVStatus sets the "v_status" field.
func (m *IcpTestMutation) SetVStatus(cs constants.ElementStatus) {
	m.v_status = &cs
}

// VStatus returns the value of the "v_status" field in the mutation.
func (m *IcpTestMutation) VStatus() (r constants.ElementStatus, exists bool) {
	v := m.v_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVStatus returns the old "v_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldVStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVStatus: %w", err)
	}
	return oldValue.VStatus, nil
}

// ClearVStatus clears the value of the "v_status" field.
func (m *IcpTestMutation) ClearVStatus() {
	m.v_status = nil
	m.clearedFields[icptest.FieldVStatus] = struct{}{}
}

// VStatusCleared returns if the "v_status" field was cleared in this mutation.
func (m *IcpTestMutation) VStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldVStatus]
	return ok
}

// ResetVStatus resets all changes to the "v_status" field.
func (m *IcpTestMutation) ResetVStatus() {
	m.v_status = nil
	delete(m.clearedFields, icptest.FieldVStatus)
}

// SetZn sets the "zn" field.
func (m *IcpTestMutation) SetZn(f float64) {
	m.zn = &f
	m.addzn = nil
}

// Zn returns the value of the "zn" field in the mutation.
func (m *IcpTestMutation) Zn() (r float64, exists bool) {
	v := m.zn
	if v == nil {
		return
	}
	return *v, true
}

// OldZn returns the old "zn" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldZn(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZn: %w", err)
	}
	return oldValue.Zn, nil
}

// AddZn adds f to the "zn" field.
func (m *IcpTestMutation) AddZn(f float64) {
	if m.addzn != nil {
		*m.addzn += f
	} else {
		m.addzn = &f
	}
}

// AddedZn returns the value that was added to the "zn" field in this mutation.
func (m *IcpTestMutation) AddedZn() (r float64, exists bool) {
	v := m.addzn
	if v == nil {
		return
	}
	return *v, true
}

// ClearZn clears the value of the "zn" field.
func (m *IcpTestMutation) ClearZn() {
	m.zn = nil
	m.addzn = nil
	m.clearedFields[icptest.FieldZn] = struct{}{}
}

// ZnCleared returns if the "zn" field was cleared in this mutation.
func (m *IcpTestMutation) ZnCleared() bool {
	_, ok := m.clearedFields[icptest.FieldZn]
	return ok
}

// ResetZn resets all changes to the "zn" field.
func (m *IcpTestMutation) ResetZn() {
	m.zn = nil
	m.addzn = nil
	delete(m.clearedFields, icptest.FieldZn)
}

// SetZnStatus sets the "zn_status" field.
func (m *IcpTestMutation) SetZnStatus(cs constants.ElementStatus) {
	m.zn_status = &cs
}

// ZnStatus returns the value of the "zn_status" field in the mutation.
func (m *IcpTestMutation) ZnStatus() (r constants.ElementStatus, exists bool) {
	v := m.zn_status
	if v == nil {
		return
	}
	return *v, true
}

// OldZnStatus returns the old "zn_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldZnStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZnStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZnStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZnStatus: %w", err)
	}
	return oldValue.ZnStatus, nil
}

// ClearZnStatus clears the value of the "zn_status" field.
func (m *IcpTestMutation) ClearZnStatus() {
	m.zn_status = nil
	m.clearedFields[icptest.FieldZnStatus] = struct{}{}
}

// ZnStatusCleared returns if the "zn_status" field was cleared in this mutation.
func (m *IcpTestMutation) ZnStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldZnStatus]
	return ok
}

// ResetZnStatus resets all changes to the "zn_status" field.
func (m *IcpTestMutation) ResetZnStatus() {
	m.zn_status = nil
	delete(m.clearedFields, icptest.FieldZnStatus)
}

// SetSn sets the "sn" field.
func (m *IcpTestMutation) SetSn(f float64) {
	m.sn = &f
	m.addsn = nil
}

// Sn returns the value of the "sn" field in the mutation.
func (m *IcpTestMutation) Sn() (r float64, exists bool) {
	v := m.sn
	if v == nil {
		return
	}
	return *v, true
}

// OldSn returns the old "sn" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSn(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSn: %w", err)
	}
	return oldValue.Sn, nil
}

// AddSn adds f to the "sn" field.
func (m *IcpTestMutation) AddSn(f float64) {
	if m.addsn != nil {
		*m.addsn += f
	} else {
		m.addsn = &f
	}
}

// AddedSn returns the value that was added to the "sn" field in this mutation.
func (m *IcpTestMutation) AddedSn() (r float64, exists bool) {
	v := m.addsn
	if v == nil {
		return
	}
	return *v, true
}

// ClearSn clears the value of the "sn" field.
func (m *IcpTestMutation) ClearSn() {
	m.sn = nil
	m.addsn = nil
	m.clearedFields[icptest.FieldSn] = struct{}{}
}

// SnCleared returns if the "sn" field was cleared in this mutation.
func (m *IcpTestMutation) SnCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSn]
	return ok
}

// ResetSn resets all changes to the "sn" field.
func (m *IcpTestMutation) ResetSn() {
	m.sn = nil
	m.addsn = nil
	delete(m.clearedFields, icptest.FieldSn)
}

// SetSnStatus sets the "sn_status" field.
func (m *IcpTestMutation) SetSnStatus(cs constants.ElementStatus) {
	m.sn_status = &cs
}

// SnStatus returns the value of the "sn_status" field in the mutation.
func (m *IcpTestMutation) SnStatus() (r constants.ElementStatus, exists bool) {
	v := m.sn_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSnStatus returns the old "sn_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSnStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnStatus: %w", err)
	}
	return oldValue.SnStatus, nil
}

// ClearSnStatus clears the value of the "sn_status" field.
func (m *IcpTestMutation) ClearSnStatus() {
	m.sn_status = nil
	m.clearedFields[icptest.FieldSnStatus] = struct{}{}
}

// SnStatusCleared returns if the "sn_status" field was cleared in this mutation.
func (m *IcpTestMutation) SnStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSnStatus]
	return ok
}

// ResetSnStatus resets all changes to the "sn_status" field.
func (m *IcpTestMutation) ResetSnStatus() {
	m.sn_status = nil
	delete(m.clearedFields, icptest.FieldSnStatus)
}

// SetNo3 sets the "no3" field.
func (m *IcpTestMutation) SetNo3(f float64) {
	m.no3 = &f
	m.addno3 = nil
}

// No3 returns the value of the "no3" field in the mutation.
func (m *IcpTestMutation) No3() (r float64, exists bool) {
	v := m.no3
	if v == nil {
		return
	}
	return *v, true
}

// OldNo3 returns the old "no3" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNo3(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNo3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNo3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNo3: %w", err)
	}
	return oldValue.No3, nil
}

// AddNo3 adds f to the "no3" field.
func (m *IcpTestMutation) AddNo3(f float64) {
	if m.addno3 != nil {
		*m.addno3 += f
	} else {
		m.addno3 = &f
	}
}

// AddedNo3 returns the value that was added to the "no3" field in this mutation.
func (m *IcpTestMutation) AddedNo3() (r float64, exists bool) {
	v := m.addno3
	if v == nil {
		return
	}
	return *v, true
}

// ClearNo3 clears the value of the "no3" field.
func (m *IcpTestMutation) ClearNo3() {
	m.no3 = nil
	m.addno3 = nil
	m.clearedFields[icptest.FieldNo3] = struct{}{}
}

// No3Cleared returns if the "no3" field was cleared in this mutation.
func (m *IcpTestMutation) No3Cleared() bool {
	_, ok := m.clearedFields[icptest.FieldNo3]
	return ok
}

// ResetNo3 resets all changes to the "no3" field.
func (m *IcpTestMutation) ResetNo3() {
	m.no3 = nil
	m.addno3 = nil
	delete(m.clearedFields, icptest.FieldNo3)
}

// SetNo3Status sets the "no3_status" field.
func (m *IcpTestMutation) SetNo3Status(cs constants.ElementStatus) {
	m.no3_status = &cs
}

// No3Status returns the value of the "no3_status" field in the mutation.
func (m *IcpTestMutation) No3Status() (r constants.ElementStatus, exists bool) {
	v := m.no3_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNo3Status returns the old "no3_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldNo3Status(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNo3Status is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNo3Status requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNo3Status: %w", err)
	}
	return oldValue.No3Status, nil
}

// ClearNo3Status clears the value of the "no3_status" field.
func (m *IcpTestMutation) ClearNo3Status() {
	m.no3_status = nil
	m.clearedFields[icptest.FieldNo3Status] = struct{}{}
}

// No3StatusCleared returns if the "no3_status" field was cleared in this mutation.
func (m *IcpTestMutation) No3StatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldNo3Status]
	return ok
}

// ResetNo3Status resets all changes to the "no3_status" field.
func (m *IcpTestMutation) ResetNo3Status() {
	m.no3_status = nil
	delete(m.clearedFields, icptest.FieldNo3Status)
}

// SetP sets the "p" field.
func (m *IcpTestMutation) SetP(f float64) {
	m.p = &f
	m.addp = nil
}

// P returns the value of the "p" field in the mutation.
func (m *IcpTestMutation) P() (r float64, exists bool) {
	v := m.p
	if v == nil {
		return
	}
	return *v, true
}

// OldP returns the old "p" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldP(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP: %w", err)
	}
	return oldValue.P, nil
}

// AddP adds f to the "p" field.
func (m *IcpTestMutation) AddP(f float64) {
	if m.addp != nil {
		*m.addp += f
	} else {
		m.addp = &f
	}
}

// AddedP returns the value that was added to the "p" field in this mutation.
func (m *IcpTestMutation) AddedP() (r float64, exists bool) {
	v := m.addp
	if v == nil {
		return
	}
	return *v, true
}

// ClearP clears the value of the "p" field.
func (m *IcpTestMutation) ClearP() {
	m.p = nil
	m.addp = nil
	m.clearedFields[icptest.FieldP] = struct{}{}
}

// PCleared returns if the "p" field was cleared in this mutation.
func (m *IcpTestMutation) PCleared() bool {
	_, ok := m.clearedFields[icptest.FieldP]
	return ok
}

// ResetP resets all changes to the "p" field.
func (m *IcpTestMutation) ResetP() {
	m.p = nil
	m.addp = nil
	delete(m.clearedFields, icptest.FieldP)
}

// SetPStatus sets the "p_status" field.
func (m *IcpTestMutation) SetPStatus(cs constants.ElementStatus) {
	m.p_status = &cs
}

// PStatus returns the value of the "p_status" field in the mutation.
func (m *IcpTestMutation) PStatus() (r constants.ElementStatus, exists bool) {
	v := m.p_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPStatus returns the old "p_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPStatus: %w", err)
	}
	return oldValue.PStatus, nil
}

// ClearPStatus clears the value of the "p_status" field.
func (m *IcpTestMutation) ClearPStatus() {
	m.p_status = nil
	m.clearedFields[icptest.FieldPStatus] = struct{}{}
}

// PStatusCleared returns if the "p_status" field was cleared in this mutation.
func (m *IcpTestMutation) PStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPStatus]
	return ok
}

// ResetPStatus resets all changes to the "p_status" field.
func (m *IcpTestMutation) ResetPStatus() {
	m.p_status = nil
	delete(m.clearedFields, icptest.FieldPStatus)
}

// SetPo4 sets the "po4" field.
func (m *IcpTestMutation) SetPo4(f float64) {
	m.po4 = &f
	m.addpo4 = nil
}

// Po4 returns the value of the "po4" field in the mutation.
func (m *IcpTestMutation) Po4() (r float64, exists bool) {
	v := m.po4
	if v == nil {
		return
	}
	return *v, true
}

// OldPo4 returns the old "po4" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPo4(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPo4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPo4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPo4: %w", err)
	}
	return oldValue.Po4, nil
}

// AddPo4 adds f to the "po4" field.
func (m *IcpTestMutation) AddPo4(f float64) {
	if m.addpo4 != nil {
		*m.addpo4 += f
	} else {
		m.addpo4 = &f
	}
}

// AddedPo4 returns the value that was added to the "po4" field in this mutation.
func (m *IcpTestMutation) AddedPo4() (r float64, exists bool) {
	v := m.addpo4
	if v == nil {
		return
	}
	return *v, true
}

// ClearPo4 clears the value of the "po4" field.
func (m *IcpTestMutation) ClearPo4() {
	m.po4 = nil
	m.addpo4 = nil
	m.clearedFields[icptest.FieldPo4] = struct{}{}
}

// Po4Cleared returns if the "po4" field was cleared in this mutation.
func (m *IcpTestMutation) Po4Cleared() bool {
	_, ok := m.clearedFields[icptest.FieldPo4]
	return ok
}

// ResetPo4 resets all changes to the "po4" field.
func (m *IcpTestMutation) ResetPo4() {
	m.po4 = nil
	m.addpo4 = nil
	delete(m.clearedFields, icptest.FieldPo4)
}

// SetPo4Status sets the "po4_status" field.
func (m *IcpTestMutation) SetPo4Status(cs constants.ElementStatus) {
	m.po4_status = &cs
}

// Po4Status returns the value of the "po4_status" field in the mutation.
func (m *IcpTestMutation) Po4Status() (r constants.ElementStatus, exists bool) {
	v := m.po4_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPo4Status returns the old "po4_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPo4Status(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPo4Status is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPo4Status requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPo4Status: %w", err)
	}
	return oldValue.Po4Status, nil
}

// ClearPo4Status clears the value of the "po4_status" field.
func (m *IcpTestMutation) ClearPo4Status() {
	m.po4_status = nil
	m.clearedFields[icptest.FieldPo4Status] = struct{}{}
}

// Po4StatusCleared returns if the "po4_status" field was cleared in this mutation.
func (m *IcpTestMutation) Po4StatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPo4Status]
	return ok
}

// ResetPo4Status resets all changes to the "po4_status" field.
func (m *IcpTestMutation) ResetPo4Status() {
	m.po4_status = nil
	delete(m.clearedFields, icptest.FieldPo4Status)
}

// SetAl sets the "al" field.
func (m *IcpTestMutation) SetAl(f float64) {
	m.al = &f
	m.addal = nil
}

// Al returns the value of the "al" field in the mutation.
func (m *IcpTestMutation) Al() (r float64, exists bool) {
	v := m.al
	if v == nil {
		return
	}
	return *v, true
}

// OldAl returns the old "al" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAl(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAl: %w", err)
	}
	return oldValue.Al, nil
}

// AddAl adds f to the "al" field.
func (m *IcpTestMutation) AddAl(f float64) {
	if m.addal != nil {
		*m.addal += f
	} else {
		m.addal = &f
	}
}

// AddedAl returns the value that was added to the "al" field in this mutation.
func (m *IcpTestMutation) AddedAl() (r float64, exists bool) {
	v := m.addal
	if v == nil {
		return
	}
	return *v, true
}

// ClearAl clears the value of the "al" field.
func (m *IcpTestMutation) ClearAl() {
	m.al = nil
	m.addal = nil
	m.clearedFields[icptest.FieldAl] = struct{}{}
}

// AlCleared returns if the "al" field was cleared in this mutation.
func (m *IcpTestMutation) AlCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAl]
	return ok
}

// ResetAl resets all changes to the "al" field.
func (m *IcpTestMutation) ResetAl() {
	m.al = nil
	m.addal = nil
	delete(m.clearedFields, icptest.FieldAl)
}

// SetAlStatus sets the "al_status" field.
func (m *IcpTestMutation) SetAlStatus(cs constants.ElementStatus) {
	m.al_status = &cs
}

// AlStatus returns the value of the "al_status" field in the mutation.
func (m *IcpTestMutation) AlStatus() (r constants.ElementStatus, exists bool) {
	v := m.al_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAlStatus returns the old "al_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldAlStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlStatus: %w", err)
	}
	return oldValue.AlStatus, nil
}

// ClearAlStatus clears the value of the "al_status" field.
func (m *IcpTestMutation) ClearAlStatus() {
	m.al_status = nil
	m.clearedFields[icptest.FieldAlStatus] = struct{}{}
}

// AlStatusCleared returns if the "al_status" field was cleared in this mutation.
func (m *IcpTestMutation) AlStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldAlStatus]
	return ok
}

// ResetAlStatus resets all changes to the "al_status" field.
func (m *IcpTestMutation) ResetAlStatus() {
	m.al_status = nil
	delete(m.clearedFields, icptest.FieldAlStatus)
}

// SetSb sets the "sb" field.
func (m *IcpTestMutation) SetSb(f float64) {
	m.sb = &f
	m.addsb = nil
}

// Sb returns the value of the "sb" field in the mutation.
func (m *IcpTestMutation) Sb() (r float64, exists bool) {
	v := m.sb
	if v == nil {
		return
	}
	return *v, true
}

// OldSb returns the old "sb" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSb(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSb: %w", err)
	}
	return oldValue.Sb, nil
}

// AddSb adds f to the "sb" field.
func (m *IcpTestMutation) AddSb(f float64) {
	if m.addsb != nil {
		*m.addsb += f
	} else {
		m.addsb = &f
	}
}

// AddedSb returns the value that was added to the "sb" field in this mutation.
func (m *IcpTestMutation) AddedSb() (r float64, exists bool) {
	v := m.addsb
	if v == nil {
		return
	}
	return *v, true
}

// ClearSb clears the value of the "sb" field.
func (m *IcpTestMutation) ClearSb() {
	m.sb = nil
	m.addsb = nil
	m.clearedFields[icptest.FieldSb] = struct{}{}
}

// SbCleared returns if the "sb" field was cleared in this mutation.
func (m *IcpTestMutation) SbCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSb]
	return ok
}

// ResetSb resets all changes to the "sb" field.
func (m *IcpTestMutation) ResetSb() {
	m.sb = nil
	m.addsb = nil
	delete(m.clearedFields, icptest.FieldSb)
}

// SetSbStatus sets the "sb_status" field.
func (m *IcpTestMutation) SetSbStatus(cs constants.ElementStatus) {
	m.sb_status = &cs
}

// SbStatus returns the value of the "sb_status" field in the mutation.
func (m *IcpTestMutation) SbStatus() (r constants.ElementStatus, exists bool) {
	v := m.sb_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSbStatus returns the old "sb_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldSbStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSbStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSbStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSbStatus: %w", err)
	}
	return oldValue.SbStatus, nil
}

// ClearSbStatus clears the value of the "sb_status" field.
func (m *IcpTestMutation) ClearSbStatus() {
	m.sb_status = nil
	m.clearedFields[icptest.FieldSbStatus] = struct{}{}
}

// SbStatusCleared returns if the "sb_status" field was cleared in this mutation.
func (m *IcpTestMutation) SbStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldSbStatus]
	return ok
}

// ResetSbStatus resets all changes to the "sb_status" field.
func (m *IcpTestMutation) ResetSbStatus() {
	m.sb_status = nil
	delete(m.clearedFields, icptest.FieldSbStatus)
}

// SetBi sets the "bi" field.
func (m *IcpTestMutation) SetBi(f float64) {
	m.bi = &f
	m.addbi = nil
}

// Bi returns the value of the "bi" field in the mutation.
func (m *IcpTestMutation) Bi() (r float64, exists bool) {
	v := m.bi
	if v == nil {
		return
	}
	return *v, true
}

// OldBi returns the old "bi" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBi: %w", err)
	}
	return oldValue.Bi, nil
}

// AddBi adds f to the "bi" field.
func (m *IcpTestMutation) AddBi(f float64) {
	if m.addbi != nil {
		*m.addbi += f
	} else {
		m.addbi = &f
	}
}

// AddedBi returns the value that was added to the "bi" field in this mutation.
func (m *IcpTestMutation) AddedBi() (r float64, exists bool) {
	v := m.addbi
	if v == nil {
		return
	}
	return *v, true
}

// ClearBi clears the value of the "bi" field.
func (m *IcpTestMutation) ClearBi() {
	m.bi = nil
	m.addbi = nil
	m.clearedFields[icptest.FieldBi] = struct{}{}
}

// BiCleared returns if the "bi" field was cleared in this mutation.
func (m *IcpTestMutation) BiCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBi]
	return ok
}

// ResetBi resets all changes to the "bi" field.
func (m *IcpTestMutation) ResetBi() {
	m.bi = nil
	m.addbi = nil
	delete(m.clearedFields, icptest.FieldBi)
}

// SetBiStatus sets the "bi_status" field.
func (m *IcpTestMutation) SetBiStatus(cs constants.ElementStatus) {
	m.bi_status = &cs
}

// BiStatus returns the value of the "bi_status" field in the mutation.
func (m *IcpTestMutation) BiStatus() (r constants.ElementStatus, exists bool) {
	v := m.bi_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBiStatus returns the old "bi_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldBiStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiStatus: %w", err)
	}
	return oldValue.BiStatus, nil
}

// ClearBiStatus clears the value of the "bi_status" field.
func (m *IcpTestMutation) ClearBiStatus() {
	m.bi_status = nil
	m.clearedFields[icptest.FieldBiStatus] = struct{}{}
}

// BiStatusCleared returns if the "bi_status" field was cleared in this mutation.
func (m *IcpTestMutation) BiStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldBiStatus]
	return ok
}

// ResetBiStatus resets all changes to the "bi_status" field.
func (m *IcpTestMutation) ResetBiStatus() {
	m.bi_status = nil
	delete(m.clearedFields, icptest.FieldBiStatus)
}

// SetPb sets the "pb" field.
func (m *IcpTestMutation) SetPb(f float64) {
	m.pb = &f
	m.addpb = nil
}

// Pb returns the value of the "pb" field in the mutation.
func (m *IcpTestMutation) Pb() (r float64, exists bool) {
	v := m.pb
	if v == nil {
		return
	}
	return *v, true
}

// OldPb returns the old "pb" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPb(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPb: %w", err)
	}
	return oldValue.Pb, nil
}

// AddPb adds f to the "pb" field.
func (m *IcpTestMutation) AddPb(f float64) {
	if m.addpb != nil {
		*m.addpb += f
	} else {
		m.addpb = &f
	}
}

// AddedPb returns the value that was added to the "pb" field in this mutation.
func (m *IcpTestMutation) AddedPb() (r float64, exists bool) {
	v := m.addpb
	if v == nil {
		return
	}
	return *v, true
}

// ClearPb clears the value of the "pb" field.
func (m *IcpTestMutation) ClearPb() {
	m.pb = nil
	m.addpb = nil
	m.clearedFields[icptest.FieldPb] = struct{}{}
}

// PbCleared returns if the "pb" field was cleared in this mutation.
func (m *IcpTestMutation) PbCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPb]
	return ok
}

// ResetPb resets all changes to the "pb" field.
func (m *IcpTestMutation) ResetPb() {
	m.pb = nil
	m.addpb = nil
	delete(m.clearedFields, icptest.FieldPb)
}

// SetPbStatus sets the "pb_status" field.
func (m *IcpTestMutation) SetPbStatus(cs constants.ElementStatus) {
	m.pb_status = &cs
}

// PbStatus returns the value of the "pb_status" field in the mutation.
func (m *IcpTestMutation) PbStatus() (r constants.ElementStatus, exists bool) {
	v := m.pb_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPbStatus returns the old "pb_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPbStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPbStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPbStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPbStatus: %w", err)
	}
	return oldValue.PbStatus, nil
}

// ClearPbStatus clears the value of the "pb_status" field.
func (m *IcpTestMutation) ClearPbStatus() {
	m.pb_status = nil
	m.clearedFields[icptest.FieldPbStatus] = struct{}{}
}

// PbStatusCleared returns if the "pb_status" field was cleared in this mutation.
func (m *IcpTestMutation) PbStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPbStatus]
	return ok
}

// ResetPbStatus resets all changes to the "pb_status" field.
func (m *IcpTestMutation) ResetPbStatus() {
	m.pb_status = nil
	delete(m.clearedFields, icptest.FieldPbStatus)
}

// SetCd sets the "cd" field.
func (m *IcpTestMutation) SetCd(f float64) {
	m.cd = &f
	m.addcd = nil
}

// Cd returns the value of the "cd" field in the mutation.
func (m *IcpTestMutation) Cd() (r float64, exists bool) {
	v := m.cd
	if v == nil {
		return
	}
	return *v, true
}

// OldCd returns the old "cd" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCd: %w", err)
	}
	return oldValue.Cd, nil
}

// AddCd adds f to the "cd" field.
func (m *IcpTestMutation) AddCd(f float64) {
	if m.addcd != nil {
		*m.addcd += f
	} else {
		m.addcd = &f
	}
}

// AddedCd returns the value that was added to the "cd" field in this mutation.
func (m *IcpTestMutation) AddedCd() (r float64, exists bool) {
	v := m.addcd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCd clears the value of the "cd" field.
func (m *IcpTestMutation) ClearCd() {
	m.cd = nil
	m.addcd = nil
	m.clearedFields[icptest.FieldCd] = struct{}{}
}

// CdCleared returns if the "cd" field was cleared in this mutation.
func (m *IcpTestMutation) CdCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCd]
	return ok
}

// ResetCd resets all changes to the "cd" field.
func (m *IcpTestMutation) ResetCd() {
	m.cd = nil
	m.addcd = nil
	delete(m.clearedFields, icptest.FieldCd)
}

// SetCdStatus sets the "cd_status" field.
func (m *IcpTestMutation) SetCdStatus(cs constants.ElementStatus) {
	m.cd_status = &cs
}

// CdStatus returns the value of the "cd_status" field in the mutation.
func (m *IcpTestMutation) CdStatus() (r constants.ElementStatus, exists bool) {
	v := m.cd_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCdStatus returns the old "cd_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCdStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCdStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCdStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCdStatus: %w", err)
	}
	return oldValue.CdStatus, nil
}

// ClearCdStatus clears the value of the "cd_status" field.
func (m *IcpTestMutation) ClearCdStatus() {
	m.cd_status = nil
	m.clearedFields[icptest.FieldCdStatus] = struct{}{}
}

// CdStatusCleared returns if the "cd_status" field was cleared in this mutation.
func (m *IcpTestMutation) CdStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldCdStatus]
	return ok
}

// ResetCdStatus resets all changes to the "cd_status" field.
func (m *IcpTestMutation) ResetCdStatus() {
	m.cd_status = nil
	delete(m.clearedFields, icptest.FieldCdStatus)
}

// SetLa sets the "la" field.
func (m *IcpTestMutation) SetLa(f float64) {
	m.la = &f
	m.addla = nil
}

// La returns the value of the "la" field in the mutation.
func (m *IcpTestMutation) La() (r float64, exists bool) {
	v := m.la
	if v == nil {
		return
	}
	return *v, true
}

// OldLa returns the old "la" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldLa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLa: %w", err)
	}
	return oldValue.La, nil
}

// AddLa adds f to the "la" field.
func (m *IcpTestMutation) AddLa(f float64) {
	if m.addla != nil {
		*m.addla += f
	} else {
		m.addla = &f
	}
}

// AddedLa returns the value that was added to the "la" field in this mutation.
func (m *IcpTestMutation) AddedLa() (r float64, exists bool) {
	v := m.addla
	if v == nil {
		return
	}
	return *v, true
}

// ClearLa clears the value of the "la" field.
func (m *IcpTestMutation) ClearLa() {
	m.la = nil
	m.addla = nil
	m.clearedFields[icptest.FieldLa] = struct{}{}
}

// LaCleared returns if the "la" field was cleared in this mutation.
func (m *IcpTestMutation) LaCleared() bool {
	_, ok := m.clearedFields[icptest.FieldLa]
	return ok
}

// ResetLa resets all changes to the "la" field.
func (m *IcpTestMutation) ResetLa() {
	m.la = nil
	m.addla = nil
	delete(m.clearedFields, icptest.FieldLa)
}

// SetLaStatus sets the "la_status" field.
func (m *IcpTestMutation) SetLaStatus(cs constants.ElementStatus) {
	m.la_status = &cs
}

// LaStatus returns the value of the "la_status" field in the mutation.
func (m *IcpTestMutation) LaStatus() (r constants.ElementStatus, exists bool) {
	v := m.la_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLaStatus returns the old "la_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldLaStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaStatus: %w", err)
	}
	return oldValue.LaStatus, nil
}

// ClearLaStatus clears the value of the "la_status" field.
func (m *IcpTestMutation) ClearLaStatus() {
	m.la_status = nil
	m.clearedFields[icptest.FieldLaStatus] = struct{}{}
}

// LaStatusCleared returns if the "la_status" field was cleared in this mutation.
func (m *IcpTestMutation) LaStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldLaStatus]
	return ok
}

// ResetLaStatus resets all changes to the "la_status" field.
func (m *IcpTestMutation) ResetLaStatus() {
	m.la_status = nil
	delete(m.clearedFields, icptest.FieldLaStatus)
}

// SetTl sets the "tl" field.
func (m *IcpTestMutation) SetTl(f float64) {
	m.tl = &f
	m.addtl = nil
}

// Tl returns the value of the "tl" field in the mutation.
func (m *IcpTestMutation) Tl() (r float64, exists bool) {
	v := m.tl
	if v == nil {
		return
	}
	return *v, true
}

// OldTl returns the old "tl" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTl(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTl: %w", err)
	}
	return oldValue.Tl, nil
}

// AddTl adds f to the "tl" field.
func (m *IcpTestMutation) AddTl(f float64) {
	if m.addtl != nil {
		*m.addtl += f
	} else {
		m.addtl = &f
	}
}

// AddedTl returns the value that was added to the "tl" field in this mutation.
func (m *IcpTestMutation) AddedTl() (r float64, exists bool) {
	v := m.addtl
	if v == nil {
		return
	}
	return *v, true
}

// ClearTl clears the value of the "tl" field.
func (m *IcpTestMutation) ClearTl() {
	m.tl = nil
	m.addtl = nil
	m.clearedFields[icptest.FieldTl] = struct{}{}
}

// TlCleared returns if the "tl" field was cleared in this mutation.
func (m *IcpTestMutation) TlCleared() bool {
	_, ok := m.clearedFields[icptest.FieldTl]
	return ok
}

// ResetTl resets all changes to the "tl" field.
func (m *IcpTestMutation) ResetTl() {
	m.tl = nil
	m.addtl = nil
	delete(m.clearedFields, icptest.FieldTl)
}

// SetTlStatus sets the "tl_status" field.
func (m *IcpTestMutation) SetTlStatus(cs constants.ElementStatus) {
	m.tl_status = &cs
}

// TlStatus returns the value of the "tl_status" field in the mutation.
func (m *IcpTestMutation) TlStatus() (r constants.ElementStatus, exists bool) {
	v := m.tl_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTlStatus returns the old "tl_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTlStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTlStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTlStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTlStatus: %w", err)
	}
	return oldValue.TlStatus, nil
}

// ClearTlStatus clears the value of the "tl_status" field.
func (m *IcpTestMutation) ClearTlStatus() {
	m.tl_status = nil
	m.clearedFields[icptest.FieldTlStatus] = struct{}{}
}

// TlStatusCleared returns if the "tl_status" field was cleared in this mutation.
func (m *IcpTestMutation) TlStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldTlStatus]
	return ok
}

// ResetTlStatus resets all changes to the "tl_status" field.
func (m *IcpTestMutation) ResetTlStatus() {
	m.tl_status = nil
	delete(m.clearedFields, icptest.FieldTlStatus)
}

// SetTi sets the "ti" field.
func (m *IcpTestMutation) SetTi(f float64) {
	m.ti = &f
	m.addti = nil
}

// Ti returns the value of the "ti" field in the mutation.
func (m *IcpTestMutation) Ti() (r float64, exists bool) {
	v := m.ti
	if v == nil {
		return
	}
	return *v, true
}

// OldTi returns the old "ti" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTi: %w", err)
	}
	return oldValue.Ti, nil
}

// AddTi adds f to the "ti" field.
func (m *IcpTestMutation) AddTi(f float64) {
	if m.addti != nil {
		*m.addti += f
	} else {
		m.addti = &f
	}
}

// AddedTi returns the value that was added to the "ti" field in this mutation.
func (m *IcpTestMutation) AddedTi() (r float64, exists bool) {
	v := m.addti
	if v == nil {
		return
	}
	return *v, true
}

// ClearTi clears the value of the "ti" field.
func (m *IcpTestMutation) ClearTi() {
	m.ti = nil
	m.addti = nil
	m.clearedFields[icptest.FieldTi] = struct{}{}
}

// TiCleared returns if the "ti" field was cleared in this mutation.
func (m *IcpTestMutation) TiCleared() bool {
	_, ok := m.clearedFields[icptest.FieldTi]
	return ok
}

// ResetTi resets all changes to the "ti" field.
func (m *IcpTestMutation) ResetTi() {
	m.ti = nil
	m.addti = nil
	delete(m.clearedFields, icptest.FieldTi)
}

// SetTiStatus sets the "ti_status" field.
func (m *IcpTestMutation) SetTiStatus(cs constants.ElementStatus) {
	m.ti_status = &cs
}

// TiStatus returns the value of the "ti_status" field in the mutation.
func (m *IcpTestMutation) TiStatus() (r constants.ElementStatus, exists bool) {
	v := m.ti_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTiStatus returns the old "ti_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldTiStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTiStatus: %w", err)
	}
	return oldValue.TiStatus, nil
}

// ClearTiStatus clears the value of the "ti_status" field.
func (m *IcpTestMutation) ClearTiStatus() {
	m.ti_status = nil
	m.clearedFields[icptest.FieldTiStatus] = struct{}{}
}

// TiStatusCleared returns if the "ti_status" field was cleared in this mutation.
func (m *IcpTestMutation) TiStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldTiStatus]
	return ok
}

// ResetTiStatus resets all changes to the "ti_status" field.
func (m *IcpTestMutation) ResetTiStatus() {
	m.ti_status = nil
	delete(m.clearedFields, icptest.FieldTiStatus)
}

// SetW sets the "w" field.
func (m *IcpTestMutation) SetW(f float64) {
	m.w = &f
	m.addw = nil
}

// W returns the value of the "w" field in the mutation.
func (m *IcpTestMutation) W() (r float64, exists bool) {
	v := m.w
	if v == nil {
		return
	}
	return *v, true
}

// OldW returns the old "w" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldW(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldW is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldW requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldW: %w", err)
	}
	return oldValue.W, nil
}

// AddW adds f to the "w" field.
func (m *IcpTestMutation) AddW(f float64) {
	if m.addw != nil {
		*m.addw += f
	} else {
		m.addw = &f
	}
}

// AddedW returns the value that was added to the "w" field in this mutation.
func (m *IcpTestMutation) AddedW() (r float64, exists bool) {
	v := m.addw
	if v == nil {
		return
	}
	return *v, true
}

// ClearW clears the value of the "w" field.
func (m *IcpTestMutation) ClearW() {
	m.w = nil
	m.addw = nil
	m.clearedFields[icptest.FieldW] = struct{}{}
}

// WCleared returns if the "w" field was cleared in this mutation.
func (m *IcpTestMutation) WCleared() bool {
	_, ok := m.clearedFields[icptest.FieldW]
	return ok
}

// ResetW resets all changes to the "w" field.
func (m *IcpTestMutation) ResetW() {
	m.w = nil
	m.addw = nil
	delete(m.clearedFields, icptest.FieldW)
}

// SetWStatus sets the "w_status" field.
func (m *IcpTestMutation) SetWStatus(cs constants.ElementStatus) {
	m.w_status = &cs
}

// WStatus returns the value of the "w_status" field in the mutation.
func (m *IcpTestMutation) WStatus() (r constants.ElementStatus, exists bool) {
	v := m.w_status
	if v == nil {
		return
	}
	return *v, true
}

// OldWStatus returns the old "w_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldWStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWStatus: %w", err)
	}
	return oldValue.WStatus, nil
}

// ClearWStatus clears the value of the "w_status" field.
func (m *IcpTestMutation) ClearWStatus() {
	m.w_status = nil
	m.clearedFields[icptest.FieldWStatus] = struct{}{}
}

// WStatusCleared returns if the "w_status" field was cleared in this mutation.
func (m *IcpTestMutation) WStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldWStatus]
	return ok
}

// ResetWStatus resets all changes to the "w_status" field.
func (m *IcpTestMutation) ResetWStatus() {
	m.w_status = nil
	delete(m.clearedFields, icptest.FieldWStatus)
}

// SetHg sets the "hg" field.
func (m *IcpTestMutation) SetHg(f float64) {
	m.hg = &f
	m.addhg = nil
}

// Hg returns the value of the "hg" field in the mutation.
func (m *IcpTestMutation) Hg() (r float64, exists bool) {
	v := m.hg
	if v == nil {
		return
	}
	return *v, true
}

// OldHg returns the old "hg" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldHg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHg: %w", err)
	}
	return oldValue.Hg, nil
}

// AddHg adds f to the "hg" field.
func (m *IcpTestMutation) AddHg(f float64) {
	if m.addhg != nil {
		*m.addhg += f
	} else {
		m.addhg = &f
	}
}

// AddedHg returns the value that was added to the "hg" field in this mutation.
func (m *IcpTestMutation) AddedHg() (r float64, exists bool) {
	v := m.addhg
	if v == nil {
		return
	}
	return *v, true
}

// ClearHg clears the value of the "hg" field.
func (m *IcpTestMutation) ClearHg() {
	m.hg = nil
	m.addhg = nil
	m.clearedFields[icptest.FieldHg] = struct{}{}
}

// HgCleared returns if the "hg" field was cleared in this mutation.
func (m *IcpTestMutation) HgCleared() bool {
	_, ok := m.clearedFields[icptest.FieldHg]
	return ok
}

// ResetHg resets all changes to the "hg" field.
func (m *IcpTestMutation) ResetHg() {
	m.hg = nil
	m.addhg = nil
	delete(m.clearedFields, icptest.FieldHg)
}

// SetHgStatus sets the "hg_status" field.
func (m *IcpTestMutation) SetHgStatus(cs constants.ElementStatus) {
	m.hg_status = &cs
}

// HgStatus returns the value of the "hg_status" field in the mutation.
func (m *IcpTestMutation) HgStatus() (r constants.ElementStatus, exists bool) {
	v := m.hg_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHgStatus returns the old "hg_status" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldHgStatus(ctx context.Context) (v *constants.ElementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHgStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHgStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHgStatus: %w", err)
	}
	return oldValue.HgStatus, nil
}

// ClearHgStatus clears the value of the "hg_status" field.
func (m *IcpTestMutation) ClearHgStatus() {
	m.hg_status = nil
	m.clearedFields[icptest.FieldHgStatus] = struct{}{}
}

// HgStatusCleared returns if the "hg_status" field was cleared in this mutation.
func (m *IcpTestMutation) HgStatusCleared() bool {
	_, ok := m.clearedFields[icptest.FieldHgStatus]
	return ok
}

// ResetHgStatus resets all changes to the "hg_status" field.
func (m *IcpTestMutation) ResetHgStatus() {
	m.hg_status = nil
	delete(m.clearedFields, icptest.FieldHgStatus)
}

// SetRecommendations sets the "recommendations" field.
func (m *IcpTestMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *IcpTestMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *IcpTestMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *IcpTestMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *IcpTestMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[icptest.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *IcpTestMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *IcpTestMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, icptest.FieldRecommendations)
}

// SetDosingInstructions sets the "dosing_instructions" field.
func (m *IcpTestMutation) SetDosingInstructions(s string) {
	m.dosing_instructions = &s
}

// DosingInstructions returns the value of the "dosing_instructions" field in the mutation.
func (m *IcpTestMutation) DosingInstructions() (r string, exists bool) {
	v := m.dosing_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldDosingInstructions returns the old "dosing_instructions" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldDosingInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosingInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosingInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosingInstructions: %w", err)
	}
	return oldValue.DosingInstructions, nil
}

// ClearDosingInstructions clears the value of the "dosing_instructions" field.
func (m *IcpTestMutation) ClearDosingInstructions() {
	m.dosing_instructions = nil
	m.clearedFields[icptest.FieldDosingInstructions] = struct{}{}
}

// DosingInstructionsCleared returns if the "dosing_instructions" field was cleared in this mutation.
func (m *IcpTestMutation) DosingInstructionsCleared() bool {
	_, ok := m.clearedFields[icptest.FieldDosingInstructions]
	return ok
}

// ResetDosingInstructions resets all changes to the "dosing_instructions" field.
func (m *IcpTestMutation) ResetDosingInstructions() {
	m.dosing_instructions = nil
	delete(m.clearedFields, icptest.FieldDosingInstructions)
}

// SetPdfFilename sets the "pdf_filename" field.
func (m *IcpTestMutation) SetPdfFilename(s string) {
	m.pdf_filename = &s
}

// PdfFilename returns the value of the "pdf_filename" field in the mutation.
func (m *IcpTestMutation) PdfFilename() (r string, exists bool) {
	v := m.pdf_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfFilename returns the old "pdf_filename" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPdfFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfFilename: %w", err)
	}
	return oldValue.PdfFilename, nil
}

// ClearPdfFilename clears the value of the "pdf_filename" field.
func (m *IcpTestMutation) ClearPdfFilename() {
	m.pdf_filename = nil
	m.clearedFields[icptest.FieldPdfFilename] = struct{}{}
}

// PdfFilenameCleared returns if the "pdf_filename" field was cleared in this mutation.
func (m *IcpTestMutation) PdfFilenameCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPdfFilename]
	return ok
}

// ResetPdfFilename resets all changes to the "pdf_filename" field.
func (m *IcpTestMutation) ResetPdfFilename() {
	m.pdf_filename = nil
	delete(m.clearedFields, icptest.FieldPdfFilename)
}

// SetPdfPath sets the "pdf_path" field.
func (m *IcpTestMutation) SetPdfPath(s string) {
	m.pdf_path = &s
}

// PdfPath returns the value of the "pdf_path" field in the mutation.
func (m *IcpTestMutation) PdfPath() (r string, exists bool) {
	v := m.pdf_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfPath returns the old "pdf_path" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldPdfPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfPath: %w", err)
	}
	return oldValue.PdfPath, nil
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (m *IcpTestMutation) ClearPdfPath() {
	m.pdf_path = nil
	m.clearedFields[icptest.FieldPdfPath] = struct{}{}
}

// PdfPathCleared returns if the "pdf_path" field was cleared in this mutation.
func (m *IcpTestMutation) PdfPathCleared() bool {
	_, ok := m.clearedFields[icptest.FieldPdfPath]
	return ok
}

// ResetPdfPath resets all changes to the "pdf_path" field.
func (m *IcpTestMutation) ResetPdfPath() {
	m.pdf_path = nil
	delete(m.clearedFields, icptest.FieldPdfPath)
}

// SetCreatedAt sets the "created_at" field.
func (m *IcpTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IcpTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IcpTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IcpTestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IcpTestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IcpTest entity.
// If the IcpTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IcpTestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IcpTestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTank clears the "tank" edge to the Tank entity.
func (m *IcpTestMutation) ClearTank() {
	m.clearedtank = true
	m.clearedFields[icptest.FieldTankID] = struct{}{}
}

// TankCleared reports if the "tank" edge to the Tank entity was cleared.
func (m *IcpTestMutation) TankCleared() bool {
	return m.clearedtank
}

// TankIDs returns the "tank" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TankID instead. It exists only for internal usage by the builders.
func (m *IcpTestMutation) TankIDs() (ids []uuid.UUID) {
	if id := m.tank; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTank resets all changes to the "tank" edge.
func (m *IcpTestMutation) ResetTank() {
	m.tank = nil
	m.clearedtank = false
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (m *IcpTestMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[icptest.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ReportFile entity was cleared.
func (m *IcpTestMutation) FileCleared() bool {
	return m.FileIDCleared() || m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *IcpTestMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *IcpTestMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the IcpTestMutation builder.
func (m *IcpTestMutation) Where(ps ...predicate.IcpTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IcpTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IcpTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IcpTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IcpTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IcpTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IcpTest).
func (m *IcpTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IcpTestMutation) Fields() []string {
	fields := make([]string, 0, 106)
	if m.tank != nil {
		fields = append(fields, icptest.FieldTankID)
	}
	if m.file != nil {
		fields = append(fields, icptest.FieldFileID)
	}
	if m.test_date != nil {
		fields = append(fields, icptest.FieldTestDate)
	}
	if m.lab_name != nil {
		fields = append(fields, icptest.FieldLabName)
	}
	if m.test_id != nil {
		fields = append(fields, icptest.FieldTestID)
	}
	if m.water_type != nil {
		fields = append(fields, icptest.FieldWaterType)
	}
	if m.sample_date != nil {
		fields = append(fields, icptest.FieldSampleDate)
	}
	if m.received_date != nil {
		fields = append(fields, icptest.FieldReceivedDate)
	}
	if m.evaluated_date != nil {
		fields = append(fields, icptest.FieldEvaluatedDate)
	}
	if m.score_major_elements != nil {
		fields = append(fields, icptest.FieldScoreMajorElements)
	}
	if m.score_minor_elements != nil {
		fields = append(fields, icptest.FieldScoreMinorElements)
	}
	if m.score_pollutants != nil {
		fields = append(fields, icptest.FieldScorePollutants)
	}
	if m.score_base_elements != nil {
		fields = append(fields, icptest.FieldScoreBaseElements)
	}
	if m.score_overall != nil {
		fields = append(fields, icptest.FieldScoreOverall)
	}
	if m.salinity != nil {
		fields = append(fields, icptest.FieldSalinity)
	}
	if m.salinity_status != nil {
		fields = append(fields, icptest.FieldSalinityStatus)
	}
	if m.kh != nil {
		fields = append(fields, icptest.FieldKh)
	}
	if m.kh_status != nil {
		fields = append(fields, icptest.FieldKhStatus)
	}
	if m.cl != nil {
		fields = append(fields, icptest.FieldCl)
	}
	if m.cl_status != nil {
		fields = append(fields, icptest.FieldClStatus)
	}
	if m.na != nil {
		fields = append(fields, icptest.FieldNa)
	}
	if m.na_status != nil {
		fields = append(fields, icptest.FieldNaStatus)
	}
	if m.mg != nil {
		fields = append(fields, icptest.FieldMg)
	}
	if m.mg_status != nil {
		fields = append(fields, icptest.FieldMgStatus)
	}
	if m.s != nil {
		fields = append(fields, icptest.FieldS)
	}
	if m.s_status != nil {
		fields = append(fields, icptest.FieldSStatus)
	}
	if m.ca != nil {
		fields = append(fields, icptest.FieldCa)
	}
	if m.ca_status != nil {
		fields = append(fields, icptest.FieldCaStatus)
	}
	if m.k != nil {
		fields = append(fields, icptest.FieldK)
	}
	if m.k_status != nil {
		fields = append(fields, icptest.FieldKStatus)
	}
	if m.br != nil {
		fields = append(fields, icptest.FieldBr)
	}
	if m.br_status != nil {
		fields = append(fields, icptest.FieldBrStatus)
	}
	if m.sr != nil {
		fields = append(fields, icptest.FieldSr)
	}
	if m.sr_status != nil {
		fields = append(fields, icptest.FieldSrStatus)
	}
	if m.b != nil {
		fields = append(fields, icptest.FieldB)
	}
	if m.b_status != nil {
		fields = append(fields, icptest.FieldBStatus)
	}
	if m.f != nil {
		fields = append(fields, icptest.FieldF)
	}
	if m.f_status != nil {
		fields = append(fields, icptest.FieldFStatus)
	}
	if m.li != nil {
		fields = append(fields, icptest.FieldLi)
	}
	if m.li_status != nil {
		fields = append(fields, icptest.FieldLiStatus)
	}
	if m.si != nil {
		fields = append(fields, icptest.FieldSi)
	}
	if m.si_status != nil {
		fields = append(fields, icptest.FieldSiStatus)
	}
	if m.i != nil {
		fields = append(fields, icptest.FieldI)
	}
	if m.i_status != nil {
		fields = append(fields, icptest.FieldIStatus)
	}
	if m.ba != nil {
		fields = append(fields, icptest.FieldBa)
	}
	if m.ba_status != nil {
		fields = append(fields, icptest.FieldBaStatus)
	}
	if m.mo != nil {
		fields = append(fields, icptest.FieldMo)
	}
	if m.mo_status != nil {
		fields = append(fields, icptest.FieldMoStatus)
	}
	if m.ni != nil {
		fields = append(fields, icptest.FieldNi)
	}
	if m.ni_status != nil {
		fields = append(fields, icptest.FieldNiStatus)
	}
	if m.mn != nil {
		fields = append(fields, icptest.FieldMn)
	}
	if m.mn_status != nil {
		fields = append(fields, icptest.FieldMnStatus)
	}
	if m.as != nil {
		fields = append(fields, icptest.FieldAs)
	}
	if m.as_status != nil {
		fields = append(fields, icptest.FieldAsStatus)
	}
	if m.be != nil {
		fields = append(fields, icptest.FieldBe)
	}
	if m.be_status != nil {
		fields = append(fields, icptest.FieldBeStatus)
	}
	if m.cr != nil {
		fields = append(fields, icptest.FieldCr)
	}
	if m.cr_status != nil {
		fields = append(fields, icptest.FieldCrStatus)
	}
	if m.co != nil {
		fields = append(fields, icptest.FieldCo)
	}
	if m.co_status != nil {
		fields = append(fields, icptest.FieldCoStatus)
	}
	if m.fe != nil {
		fields = append(fields, icptest.FieldFe)
	}
	if m.fe_status != nil {
		fields = append(fields, icptest.FieldFeStatus)
	}
	if m.cu != nil {
		fields = append(fields, icptest.FieldCu)
	}
	if m.cu_status != nil {
		fields = append(fields, icptest.FieldCuStatus)
	}
	if m.se != nil {
		fields = append(fields, icptest.FieldSe)
	}
	if m.se_status != nil {
		fields = append(fields, icptest.FieldSeStatus)
	}
	if m.ag != nil {
		fields = append(fields, icptest.FieldAg)
	}
	if m.ag_status != nil {
		fields = append(fields, icptest.FieldAgStatus)
	}
	if m.v != nil {
		fields = append(fields, icptest.FieldV)
	}
	if m.v_status != nil {
		fields = append(fields, icptest.FieldVStatus)
	}
	if m.zn != nil {
		fields = append(fields, icptest.FieldZn)
	}
	if m.zn_status != nil {
		fields = append(fields, icptest.FieldZnStatus)
	}
	if m.sn != nil {
		fields = append(fields, icptest.FieldSn)
	}
	if m.sn_status != nil {
		fields = append(fields, icptest.FieldSnStatus)
	}
	if m.no3 != nil {
		fields = append(fields, icptest.FieldNo3)
	}
	if m.no3_status != nil {
		fields = append(fields, icptest.FieldNo3Status)
	}
	if m.p != nil {
		fields = append(fields, icptest.FieldP)
	}
	if m.p_status != nil {
		fields = append(fields, icptest.FieldPStatus)
	}
	if m.po4 != nil {
		fields = append(fields, icptest.FieldPo4)
	}
	if m.po4_status != nil {
		fields = append(fields, icptest.FieldPo4Status)
	}
	if m.al != nil {
		fields = append(fields, icptest.FieldAl)
	}
	if m.al_status != nil {
		fields = append(fields, icptest.FieldAlStatus)
	}
	if m.sb != nil {
		fields = append(fields, icptest.FieldSb)
	}
	if m.sb_status != nil {
		fields = append(fields, icptest.FieldSbStatus)
	}
	if m.bi != nil {
		fields = append(fields, icptest.FieldBi)
	}
	if m.bi_status != nil {
		fields = append(fields, icptest.FieldBiStatus)
	}
	if m.pb != nil {
		fields = append(fields, icptest.FieldPb)
	}
	if m.pb_status != nil {
		fields = append(fields, icptest.FieldPbStatus)
	}
	if m.cd != nil {
		fields = append(fields, icptest.FieldCd)
	}
	if m.cd_status != nil {
		fields = append(fields, icptest.FieldCdStatus)
	}
	if m.la != nil {
		fields = append(fields, icptest.FieldLa)
	}
	if m.la_status != nil {
		fields = append(fields, icptest.FieldLaStatus)
	}
	if m.tl != nil {
		fields = append(fields, icptest.FieldTl)
	}
	if m.tl_status != nil {
		fields = append(fields, icptest.FieldTlStatus)
	}
	if m.ti != nil {
		fields = append(fields, icptest.FieldTi)
	}
	if m.ti_status != nil {
		fields = append(fields, icptest.FieldTiStatus)
	}
	if m.w != nil {
		fields = append(fields, icptest.FieldW)
	}
	if m.w_status != nil {
		fields = append(fields, icptest.FieldWStatus)
	}
	if m.hg != nil {
		fields = append(fields, icptest.FieldHg)
	}
	if m.hg_status != nil {
		fields = append(fields, icptest.FieldHgStatus)
	}
	if m.recommendations != nil {
		fields = append(fields, icptest.FieldRecommendations)
	}
	if m.dosing_instructions != nil {
		fields = append(fields, icptest.FieldDosingInstructions)
	}
	if m.pdf_filename != nil {
		fields = append(fields, icptest.FieldPdfFilename)
	}
	if m.pdf_path != nil {
		fields = append(fields, icptest.FieldPdfPath)
	}
	if m.created_at != nil {
		fields = append(fields, icptest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, icptest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IcpTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case icptest.FieldTankID:
		return m.TankID()
	case icptest.FieldFileID:
		return m.FileID()
	case icptest.FieldTestDate:
		return m.TestDate()
	case icptest.FieldLabName:
		return m.LabName()
	case icptest.FieldTestID:
		return m.TestID()
	case icptest.FieldWaterType:
		return m.WaterType()
	case icptest.FieldSampleDate:
		return m.SampleDate()
	case icptest.FieldReceivedDate:
		return m.ReceivedDate()
	case icptest.FieldEvaluatedDate:
		return m.EvaluatedDate()
	case icptest.FieldScoreMajorElements:
		return m.ScoreMajorElements()
	case icptest.FieldScoreMinorElements:
		return m.ScoreMinorElements()
	case icptest.FieldScorePollutants:
		return m.ScorePollutants()
	case icptest.FieldScoreBaseElements:
		return m.ScoreBaseElements()
	case icptest.FieldScoreOverall:
		return m.ScoreOverall()
	case icptest.FieldSalinity:
		return m.Salinity()
	case icptest.FieldSalinityStatus:
		return m.SalinityStatus()
	case icptest.FieldKh:
		return m.Kh()
	case icptest.FieldKhStatus:
		return m.KhStatus()
	case icptest.FieldCl:
		return m.Cl()
	case icptest.FieldClStatus:
		return m.ClStatus()
	case icptest.FieldNa:
		return m.Na()
	case icptest.FieldNaStatus:
		return m.NaStatus()
	case icptest.FieldMg:
		return m.Mg()
	case icptest.FieldMgStatus:
		return m.MgStatus()
	case icptest.FieldS:
		return m.S()
	case icptest.FieldSStatus:
		return m.SStatus()
	case icptest.FieldCa:
		return m.Ca()
	case icptest.FieldCaStatus:
		return m.CaStatus()
	case icptest.FieldK:
		return m.K()
	case icptest.FieldKStatus:
		return m.KStatus()
	case icptest.FieldBr:
		return m.Br()
	case icptest.FieldBrStatus:
		return m.BrStatus()
	case icptest.FieldSr:
		return m.Sr()
	case icptest.FieldSrStatus:
		return m.SrStatus()
	case icptest.FieldB:
		return m.B()
	case icptest.FieldBStatus:
		return m.BStatus()
	case icptest.FieldF:
		return m.F()
	case icptest.FieldFStatus:
		return m.FStatus()
	case icptest.FieldLi:
		return m.Li()
	case icptest.FieldLiStatus:
		return m.LiStatus()
	case icptest.FieldSi:
		return m.Si()
	case icptest.FieldSiStatus:
		return m.SiStatus()
	case icptest.FieldI:
		return m.I()
	case icptest.FieldIStatus:
		return m.IStatus()
	case icptest.FieldBa:
		return m.Ba()
	case icptest.FieldBaStatus:
		return m.BaStatus()
	case icptest.FieldMo:
		return m.Mo()
	case icptest.FieldMoStatus:
		return m.MoStatus()
	case icptest.FieldNi:
		return m.Ni()
	case icptest.FieldNiStatus:
		return m.NiStatus()
	case icptest.FieldMn:
		return m.Mn()
	case icptest.FieldMnStatus:
		return m.MnStatus()
	case icptest.FieldAs:
		return m.As()
	case icptest.FieldAsStatus:
		return m.AsStatus()
	case icptest.FieldBe:
		return m.Be()
	case icptest.FieldBeStatus:
		return m.BeStatus()
	case icptest.FieldCr:
		return m.Cr()
	case icptest.FieldCrStatus:
		return m.CrStatus()
	case icptest.FieldCo:
		return m.Co()
	case icptest.FieldCoStatus:
		return m.CoStatus()
	case icptest.FieldFe:
		return m.Fe()
	case icptest.FieldFeStatus:
		return m.FeStatus()
	case icptest.FieldCu:
		return m.Cu()
	case icptest.FieldCuStatus:
		return m.CuStatus()
	case icptest.FieldSe:
		return m.Se()
	case icptest.FieldSeStatus:
		return m.SeStatus()
	case icptest.FieldAg:
		return m.Ag()
	case icptest.FieldAgStatus:
		return m.AgStatus()
	case icptest.FieldV:
		return m.V()
	case icptest.FieldVStatus:
		return m.VStatus()
	case icptest.FieldZn:
		return m.Zn()
	case icptest.FieldZnStatus:
		return m.ZnStatus()
	case icptest.FieldSn:
		return m.Sn()
	case icptest.FieldSnStatus:
		return m.SnStatus()
	case icptest.FieldNo3:
		return m.No3()
	case icptest.FieldNo3Status:
		return m.No3Status()
	case icptest.FieldP:
		return m.P()
	case icptest.FieldPStatus:
		return m.PStatus()
	case icptest.FieldPo4:
		return m.Po4()
	case icptest.FieldPo4Status:
		return m.Po4Status()
	case icptest.FieldAl:
		return m.Al()
	case icptest.FieldAlStatus:
		return m.AlStatus()
	case icptest.FieldSb:
		return m.Sb()
	case icptest.FieldSbStatus:
		return m.SbStatus()
	case icptest.FieldBi:
		return m.Bi()
	case icptest.FieldBiStatus:
		return m.BiStatus()
	case icptest.FieldPb:
		return m.Pb()
	case icptest.FieldPbStatus:
		return m.PbStatus()
	case icptest.FieldCd:
		return m.Cd()
	case icptest.FieldCdStatus:
		return m.CdStatus()
	case icptest.FieldLa:
		return m.La()
	case icptest.FieldLaStatus:
		return m.LaStatus()
	case icptest.FieldTl:
		return m.Tl()
	case icptest.FieldTlStatus:
		return m.TlStatus()
	case icptest.FieldTi:
		return m.Ti()
	case icptest.FieldTiStatus:
		return m.TiStatus()
	case icptest.FieldW:
		return m.W()
	case icptest.FieldWStatus:
		return m.WStatus()
	case icptest.FieldHg:
		return m.Hg()
	case icptest.FieldHgStatus:
		return m.HgStatus()
	case icptest.FieldRecommendations:
		return m.Recommendations()
	case icptest.FieldDosingInstructions:
		return m.DosingInstructions()
	case icptest.FieldPdfFilename:
		return m.PdfFilename()
	case icptest.FieldPdfPath:
		return m.PdfPath()
	case icptest.FieldCreatedAt:
		return m.CreatedAt()
	case icptest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IcpTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case icptest.FieldTankID:
		return m.OldTankID(ctx)
	case icptest.FieldFileID:
		return m.OldFileID(ctx)
	case icptest.FieldTestDate:
		return m.OldTestDate(ctx)
	case icptest.FieldLabName:
		return m.OldLabName(ctx)
	case icptest.FieldTestID:
		return m.OldTestID(ctx)
	case icptest.FieldWaterType:
		return m.OldWaterType(ctx)
	case icptest.FieldSampleDate:
		return m.OldSampleDate(ctx)
	case icptest.FieldReceivedDate:
		return m.OldReceivedDate(ctx)
	case icptest.FieldEvaluatedDate:
		return m.OldEvaluatedDate(ctx)
	case icptest.FieldScoreMajorElements:
		return m.OldScoreMajorElements(ctx)
	case icptest.FieldScoreMinorElements:
		return m.OldScoreMinorElements(ctx)
	case icptest.FieldScorePollutants:
		return m.OldScorePollutants(ctx)
	case icptest.FieldScoreBaseElements:
		return m.OldScoreBaseElements(ctx)
	case icptest.FieldScoreOverall:
		return m.OldScoreOverall(ctx)
	case icptest.FieldSalinity:
		return m.OldSalinity(ctx)
	case icptest.FieldSalinityStatus:
		return m.OldSalinityStatus(ctx)
	case icptest.FieldKh:
		return m.OldKh(ctx)
	case icptest.FieldKhStatus:
		return m.OldKhStatus(ctx)
	case icptest.FieldCl:
		return m.OldCl(ctx)
	case icptest.FieldClStatus:
		return m.OldClStatus(ctx)
	case icptest.FieldNa:
		return m.OldNa(ctx)
	case icptest.FieldNaStatus:
		return m.OldNaStatus(ctx)
	case icptest.FieldMg:
		return m.OldMg(ctx)
	case icptest.FieldMgStatus:
		return m.OldMgStatus(ctx)
	case icptest.FieldS:
		return m.OldS(ctx)
	case icptest.FieldSStatus:
		return m.OldSStatus(ctx)
	case icptest.FieldCa:
		return m.OldCa(ctx)
	case icptest.FieldCaStatus:
		return m.OldCaStatus(ctx)
	case icptest.FieldK:
		return m.OldK(ctx)
	case icptest.FieldKStatus:
		return m.OldKStatus(ctx)
	case icptest.FieldBr:
		return m.OldBr(ctx)
	case icptest.FieldBrStatus:
		return m.OldBrStatus(ctx)
	case icptest.FieldSr:
		return m.OldSr(ctx)
	case icptest.FieldSrStatus:
		return m.OldSrStatus(ctx)
	case icptest.FieldB:
		return m.OldB(ctx)
	case icptest.FieldBStatus:
		return m.OldBStatus(ctx)
	case icptest.FieldF:
		return m.OldF(ctx)
	case icptest.FieldFStatus:
		return m.OldFStatus(ctx)
	case icptest.FieldLi:
		return m.OldLi(ctx)
	case icptest.FieldLiStatus:
		return m.OldLiStatus(ctx)
	case icptest.FieldSi:
		return m.OldSi(ctx)
	case icptest.FieldSiStatus:
		return m.OldSiStatus(ctx)
	case icptest.FieldI:
		return m.OldI(ctx)
	case icptest.FieldIStatus:
		return m.OldIStatus(ctx)
	case icptest.FieldBa:
		return m.OldBa(ctx)
	case icptest.FieldBaStatus:
		return m.OldBaStatus(ctx)
	case icptest.FieldMo:
		return m.OldMo(ctx)
	case icptest.FieldMoStatus:
		return m.OldMoStatus(ctx)
	case icptest.FieldNi:
		return m.OldNi(ctx)
	case icptest.FieldNiStatus:
		return m.OldNiStatus(ctx)
	case icptest.FieldMn:
		return m.OldMn(ctx)
	case icptest.FieldMnStatus:
		return m.OldMnStatus(ctx)
	case icptest.FieldAs:
		return m.OldAs(ctx)
	case icptest.FieldAsStatus:
		return m.OldAsStatus(ctx)
	case icptest.FieldBe:
		return m.OldBe(ctx)
	case icptest.FieldBeStatus:
		return m.OldBeStatus(ctx)
	case icptest.FieldCr:
		return m.OldCr(ctx)
	case icptest.FieldCrStatus:
		return m.OldCrStatus(ctx)
	case icptest.FieldCo:
		return m.OldCo(ctx)
	case icptest.FieldCoStatus:
		return m.OldCoStatus(ctx)
	case icptest.FieldFe:
		return m.OldFe(ctx)
	case icptest.FieldFeStatus:
		return m.OldFeStatus(ctx)
	case icptest.FieldCu:
		return m.OldCu(ctx)
	case icptest.FieldCuStatus:
		return m.OldCuStatus(ctx)
	case icptest.FieldSe:
		return m.OldSe(ctx)
	case icptest.FieldSeStatus:
		return m.OldSeStatus(ctx)
	case icptest.FieldAg:
		return m.OldAg(ctx)
	case icptest.FieldAgStatus:
		return m.OldAgStatus(ctx)
	case icptest.FieldV:
		return m.OldV(ctx)
	case icptest.FieldVStatus:
		return m.OldVStatus(ctx)
	case icptest.FieldZn:
		return m.OldZn(ctx)
	case icptest.FieldZnStatus:
		return m.OldZnStatus(ctx)
	case icptest.FieldSn:
		return m.OldSn(ctx)
	case icptest.FieldSnStatus:
		return m.OldSnStatus(ctx)
	case icptest.FieldNo3:
		return m.OldNo3(ctx)
	case icptest.FieldNo3Status:
		return m.OldNo3Status(ctx)
	case icptest.FieldP:
		return m.OldP(ctx)
	case icptest.FieldPStatus:
		return m.OldPStatus(ctx)
	case icptest.FieldPo4:
		return m.OldPo4(ctx)
	case icptest.FieldPo4Status:
		return m.OldPo4Status(ctx)
	case icptest.FieldAl:
		return m.OldAl(ctx)
	case icptest.FieldAlStatus:
		return m.OldAlStatus(ctx)
	case icptest.FieldSb:
		return m.OldSb(ctx)
	case icptest.FieldSbStatus:
		return m.OldSbStatus(ctx)
	case icptest.FieldBi:
		return m.OldBi(ctx)
	case icptest.FieldBiStatus:
		return m.OldBiStatus(ctx)
	case icptest.FieldPb:
		return m.OldPb(ctx)
	case icptest.FieldPbStatus:
		return m.OldPbStatus(ctx)
	case icptest.FieldCd:
		return m.OldCd(ctx)
	case icptest.FieldCdStatus:
		return m.OldCdStatus(ctx)
	case icptest.FieldLa:
		return m.OldLa(ctx)
	case icptest.FieldLaStatus:
		return m.OldLaStatus(ctx)
	case icptest.FieldTl:
		return m.OldTl(ctx)
	case icptest.FieldTlStatus:
		return m.OldTlStatus(ctx)
	case icptest.FieldTi:
		return m.OldTi(ctx)
	case icptest.FieldTiStatus:
		return m.OldTiStatus(ctx)
	case icptest.FieldW:
		return m.OldW(ctx)
	case icptest.FieldWStatus:
		return m.OldWStatus(ctx)
	case icptest.FieldHg:
		return m.OldHg(ctx)
	case icptest.FieldHgStatus:
		return m.OldHgStatus(ctx)
	case icptest.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case icptest.FieldDosingInstructions:
		return m.OldDosingInstructions(ctx)
	case icptest.FieldPdfFilename:
		return m.OldPdfFilename(ctx)
	case icptest.FieldPdfPath:
		return m.OldPdfPath(ctx)
	case icptest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case icptest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IcpTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IcpTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case icptest.FieldTankID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTankID(v)
		return nil
	case icptest.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case icptest.FieldTestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDate(v)
		return nil
	case icptest.FieldLabName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabName(v)
		return nil
	case icptest.FieldTestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case icptest.FieldWaterType:
		v, ok := value.(constants.WaterType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterType(v)
		return nil
	case icptest.FieldSampleDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleDate(v)
		return nil
	case icptest.FieldReceivedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedDate(v)
		return nil
	case icptest.FieldEvaluatedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedDate(v)
		return nil
	case icptest.FieldScoreMajorElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreMajorElements(v)
		return nil
	case icptest.FieldScoreMinorElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreMinorElements(v)
		return nil
	case icptest.FieldScorePollutants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorePollutants(v)
		return nil
	case icptest.FieldScoreBaseElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreBaseElements(v)
		return nil
	case icptest.FieldScoreOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreOverall(v)
		return nil
	case icptest.FieldSalinity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalinity(v)
		return nil
	case icptest.FieldSalinityStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalinityStatus(v)
		return nil
	case icptest.FieldKh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKh(v)
		return nil
	case icptest.FieldKhStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKhStatus(v)
		return nil
	case icptest.FieldCl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCl(v)
		return nil
	case icptest.FieldClStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClStatus(v)
		return nil
	case icptest.FieldNa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNa(v)
		return nil
	case icptest.FieldNaStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNaStatus(v)
		return nil
	case icptest.FieldMg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMg(v)
		return nil
	case icptest.FieldMgStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMgStatus(v)
		return nil
	case icptest.FieldS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS(v)
		return nil
	case icptest.FieldSStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSStatus(v)
		return nil
	case icptest.FieldCa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCa(v)
		return nil
	case icptest.FieldCaStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaStatus(v)
		return nil
	case icptest.FieldK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetK(v)
		return nil
	case icptest.FieldKStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKStatus(v)
		return nil
	case icptest.FieldBr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBr(v)
		return nil
	case icptest.FieldBrStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrStatus(v)
		return nil
	case icptest.FieldSr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSr(v)
		return nil
	case icptest.FieldSrStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrStatus(v)
		return nil
	case icptest.FieldB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetB(v)
		return nil
	case icptest.FieldBStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBStatus(v)
		return nil
	case icptest.FieldF:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetF(v)
		return nil
	case icptest.FieldFStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFStatus(v)
		return nil
	case icptest.FieldLi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLi(v)
		return nil
	case icptest.FieldLiStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLiStatus(v)
		return nil
	case icptest.FieldSi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSi(v)
		return nil
	case icptest.FieldSiStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiStatus(v)
		return nil
	case icptest.FieldI:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetI(v)
		return nil
	case icptest.FieldIStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIStatus(v)
		return nil
	case icptest.FieldBa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBa(v)
		return nil
	case icptest.FieldBaStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaStatus(v)
		return nil
	case icptest.FieldMo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMo(v)
		return nil
	case icptest.FieldMoStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoStatus(v)
		return nil
	case icptest.FieldNi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNi(v)
		return nil
	case icptest.FieldNiStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNiStatus(v)
		return nil
	case icptest.FieldMn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMn(v)
		return nil
	case icptest.FieldMnStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMnStatus(v)
		return nil
	case icptest.FieldAs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAs(v)
		return nil
	case icptest.FieldAsStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsStatus(v)
		return nil
	case icptest.FieldBe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBe(v)
		return nil
	case icptest.FieldBeStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeStatus(v)
		return nil
	case icptest.FieldCr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCr(v)
		return nil
	case icptest.FieldCrStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrStatus(v)
		return nil
	case icptest.FieldCo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCo(v)
		return nil
	case icptest.FieldCoStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoStatus(v)
		return nil
	case icptest.FieldFe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFe(v)
		return nil
	case icptest.FieldFeStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeStatus(v)
		return nil
	case icptest.FieldCu:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCu(v)
		return nil
	case icptest.FieldCuStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuStatus(v)
		return nil
	case icptest.FieldSe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSe(v)
		return nil
	case icptest.FieldSeStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeStatus(v)
		return nil
	case icptest.FieldAg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAg(v)
		return nil
	case icptest.FieldAgStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgStatus(v)
		return nil
	case icptest.FieldV:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetV(v)
		return nil
	case icptest.FieldVStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVStatus(v)
		return nil
	case icptest.FieldZn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZn(v)
		return nil
	case icptest.FieldZnStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZnStatus(v)
		return nil
	case icptest.FieldSn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSn(v)
		return nil
	case icptest.FieldSnStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnStatus(v)
		return nil
	case icptest.FieldNo3:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNo3(v)
		return nil
	case icptest.FieldNo3Status:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNo3Status(v)
		return nil
	case icptest.FieldP:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP(v)
		return nil
	case icptest.FieldPStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPStatus(v)
		return nil
	case icptest.FieldPo4:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPo4(v)
		return nil
	case icptest.FieldPo4Status:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPo4Status(v)
		return nil
	case icptest.FieldAl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAl(v)
		return nil
	case icptest.FieldAlStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlStatus(v)
		return nil
	case icptest.FieldSb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSb(v)
		return nil
	case icptest.FieldSbStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSbStatus(v)
		return nil
	case icptest.FieldBi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBi(v)
		return nil
	case icptest.FieldBiStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiStatus(v)
		return nil
	case icptest.FieldPb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPb(v)
		return nil
	case icptest.FieldPbStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPbStatus(v)
		return nil
	case icptest.FieldCd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCd(v)
		return nil
	case icptest.FieldCdStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCdStatus(v)
		return nil
	case icptest.FieldLa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLa(v)
		return nil
	case icptest.FieldLaStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaStatus(v)
		return nil
	case icptest.FieldTl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTl(v)
		return nil
	case icptest.FieldTlStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTlStatus(v)
		return nil
	case icptest.FieldTi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTi(v)
		return nil
	case icptest.FieldTiStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTiStatus(v)
		return nil
	case icptest.FieldW:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetW(v)
		return nil
	case icptest.FieldWStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWStatus(v)
		return nil
	case icptest.FieldHg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHg(v)
		return nil
	case icptest.FieldHgStatus:
		v, ok := value.(constants.ElementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHgStatus(v)
		return nil
	case icptest.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case icptest.FieldDosingInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosingInstructions(v)
		return nil
	case icptest.FieldPdfFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfFilename(v)
		return nil
	case icptest.FieldPdfPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfPath(v)
		return nil
	case icptest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case icptest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IcpTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IcpTestMutation) AddedFields() []string {
	var fields []string
	if m.addscore_major_elements != nil {
		fields = append(fields, icptest.FieldScoreMajorElements)
	}
	if m.addscore_minor_elements != nil {
		fields = append(fields, icptest.FieldScoreMinorElements)
	}
	if m.addscore_pollutants != nil {
		fields = append(fields, icptest.FieldScorePollutants)
	}
	if m.addscore_base_elements != nil {
		fields = append(fields, icptest.FieldScoreBaseElements)
	}
	if m.addscore_overall != nil {
		fields = append(fields, icptest.FieldScoreOverall)
	}
	if m.addsalinity != nil {
		fields = append(fields, icptest.FieldSalinity)
	}
	if m.addkh != nil {
		fields = append(fields, icptest.FieldKh)
	}
	if m.addcl != nil {
		fields = append(fields, icptest.FieldCl)
	}
	if m.addna != nil {
		fields = append(fields, icptest.FieldNa)
	}
	if m.addmg != nil {
		fields = append(fields, icptest.FieldMg)
	}
	if m.adds != nil {
		fields = append(fields, icptest.FieldS)
	}
	if m.addca != nil {
		fields = append(fields, icptest.FieldCa)
	}
	if m.addk != nil {
		fields = append(fields, icptest.FieldK)
	}
	if m.addbr != nil {
		fields = append(fields, icptest.FieldBr)
	}
	if m.addsr != nil {
		fields = append(fields, icptest.FieldSr)
	}
	if m.addb != nil {
		fields = append(fields, icptest.FieldB)
	}
	if m.addf != nil {
		fields = append(fields, icptest.FieldF)
	}
	if m.addli != nil {
		fields = append(fields, icptest.FieldLi)
	}
	if m.addsi != nil {
		fields = append(fields, icptest.FieldSi)
	}
	if m.addi != nil {
		fields = append(fields, icptest.FieldI)
	}
	if m.addba != nil {
		fields = append(fields, icptest.FieldBa)
	}
	if m.addmo != nil {
		fields = append(fields, icptest.FieldMo)
	}
	if m.addni != nil {
		fields = append(fields, icptest.FieldNi)
	}
	if m.addmn != nil {
		fields = append(fields, icptest.FieldMn)
	}
	if m.addas != nil {
		fields = append(fields, icptest.FieldAs)
	}
	if m.addbe != nil {
		fields = append(fields, icptest.FieldBe)
	}
	if m.addcr != nil {
		fields = append(fields, icptest.FieldCr)
	}
	if m.addco != nil {
		fields = append(fields, icptest.FieldCo)
	}
	if m.addfe != nil {
		fields = append(fields, icptest.FieldFe)
	}
	if m.addcu != nil {
		fields = append(fields, icptest.FieldCu)
	}
	if m.addse != nil {
		fields = append(fields, icptest.FieldSe)
	}
	if m.addag != nil {
		fields = append(fields, icptest.FieldAg)
	}
	if m.addv != nil {
		fields = append(fields, icptest.FieldV)
	}
	if m.addzn != nil {
		fields = append(fields, icptest.FieldZn)
	}
	if m.addsn != nil {
		fields = append(fields, icptest.FieldSn)
	}
	if m.addno3 != nil {
		fields = append(fields, icptest.FieldNo3)
	}
	if m.addp != nil {
		fields = append(fields, icptest.FieldP)
	}
	if m.addpo4 != nil {
		fields = append(fields, icptest.FieldPo4)
	}
	if m.addal != nil {
		fields = append(fields, icptest.FieldAl)
	}
	if m.addsb != nil {
		fields = append(fields, icptest.FieldSb)
	}
	if m.addbi != nil {
		fields = append(fields, icptest.FieldBi)
	}
	if m.addpb != nil {
		fields = append(fields, icptest.FieldPb)
	}
	if m.addcd != nil {
		fields = append(fields, icptest.FieldCd)
	}
	if m.addla != nil {
		fields = append(fields, icptest.FieldLa)
	}
	if m.addtl != nil {
		fields = append(fields, icptest.FieldTl)
	}
	if m.addti != nil {
		fields = append(fields, icptest.FieldTi)
	}
	if m.addw != nil {
		fields = append(fields, icptest.FieldW)
	}
	if m.addhg != nil {
		fields = append(fields, icptest.FieldHg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IcpTestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case icptest.FieldScoreMajorElements:
		return m.AddedScoreMajorElements()
	case icptest.FieldScoreMinorElements:
		return m.AddedScoreMinorElements()
	case icptest.FieldScorePollutants:
		return m.AddedScorePollutants()
	case icptest.FieldScoreBaseElements:
		return m.AddedScoreBaseElements()
	case icptest.FieldScoreOverall:
		return m.AddedScoreOverall()
	case icptest.FieldSalinity:
		return m.AddedSalinity()
	case icptest.FieldKh:
		return m.AddedKh()
	case icptest.FieldCl:
		return m.AddedCl()
	case icptest.FieldNa:
		return m.AddedNa()
	case icptest.FieldMg:
		return m.AddedMg()
	case icptest.FieldS:
		return m.AddedS()
	case icptest.FieldCa:
		return m.AddedCa()
	case icptest.FieldK:
		return m.AddedK()
	case icptest.FieldBr:
		return m.AddedBr()
	case icptest.FieldSr:
		return m.AddedSr()
	case icptest.FieldB:
		return m.AddedB()
	case icptest.FieldF:
		return m.AddedF()
	case icptest.FieldLi:
		return m.AddedLi()
	case icptest.FieldSi:
		return m.AddedSi()
	case icptest.FieldI:
		return m.AddedI()
	case icptest.FieldBa:
		return m.AddedBa()
	case icptest.FieldMo:
		return m.AddedMo()
	case icptest.FieldNi:
		return m.AddedNi()
	case icptest.FieldMn:
		return m.AddedMn()
	case icptest.FieldAs:
		return m.AddedAs()
	case icptest.FieldBe:
		return m.AddedBe()
	case icptest.FieldCr:
		return m.AddedCr()
	case icptest.FieldCo:
		return m.AddedCo()
	case icptest.FieldFe:
		return m.AddedFe()
	case icptest.FieldCu:
		return m.AddedCu()
	case icptest.FieldSe:
		return m.AddedSe()
	case icptest.FieldAg:
		return m.AddedAg()
	case icptest.FieldV:
		return m.AddedV()
	case icptest.FieldZn:
		return m.AddedZn()
	case icptest.FieldSn:
		return m.AddedSn()
	case icptest.FieldNo3:
		return m.AddedNo3()
	case icptest.FieldP:
		return m.AddedP()
	case icptest.FieldPo4:
		return m.AddedPo4()
	case icptest.FieldAl:
		return m.AddedAl()
	case icptest.FieldSb:
		return m.AddedSb()
	case icptest.FieldBi:
		return m.AddedBi()
	case icptest.FieldPb:
		return m.AddedPb()
	case icptest.FieldCd:
		return m.AddedCd()
	case icptest.FieldLa:
		return m.AddedLa()
	case icptest.FieldTl:
		return m.AddedTl()
	case icptest.FieldTi:
		return m.AddedTi()
	case icptest.FieldW:
		return m.AddedW()
	case icptest.FieldHg:
		return m.AddedHg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IcpTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case icptest.FieldScoreMajorElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreMajorElements(v)
		return nil
	case icptest.FieldScoreMinorElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreMinorElements(v)
		return nil
	case icptest.FieldScorePollutants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScorePollutants(v)
		return nil
	case icptest.FieldScoreBaseElements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreBaseElements(v)
		return nil
	case icptest.FieldScoreOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreOverall(v)
		return nil
	case icptest.FieldSalinity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalinity(v)
		return nil
	case icptest.FieldKh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKh(v)
		return nil
	case icptest.FieldCl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCl(v)
		return nil
	case icptest.FieldNa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNa(v)
		return nil
	case icptest.FieldMg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMg(v)
		return nil
	case icptest.FieldS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddS(v)
		return nil
	case icptest.FieldCa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCa(v)
		return nil
	case icptest.FieldK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddK(v)
		return nil
	case icptest.FieldBr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBr(v)
		return nil
	case icptest.FieldSr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSr(v)
		return nil
	case icptest.FieldB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddB(v)
		return nil
	case icptest.FieldF:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddF(v)
		return nil
	case icptest.FieldLi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLi(v)
		return nil
	case icptest.FieldSi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSi(v)
		return nil
	case icptest.FieldI:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddI(v)
		return nil
	case icptest.FieldBa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBa(v)
		return nil
	case icptest.FieldMo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMo(v)
		return nil
	case icptest.FieldNi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNi(v)
		return nil
	case icptest.FieldMn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMn(v)
		return nil
	case icptest.FieldAs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAs(v)
		return nil
	case icptest.FieldBe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBe(v)
		return nil
	case icptest.FieldCr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCr(v)
		return nil
	case icptest.FieldCo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCo(v)
		return nil
	case icptest.FieldFe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFe(v)
		return nil
	case icptest.FieldCu:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCu(v)
		return nil
	case icptest.FieldSe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSe(v)
		return nil
	case icptest.FieldAg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAg(v)
		return nil
	case icptest.FieldV:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddV(v)
		return nil
	case icptest.FieldZn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddZn(v)
		return nil
	case icptest.FieldSn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSn(v)
		return nil
	case icptest.FieldNo3:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNo3(v)
		return nil
	case icptest.FieldP:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddP(v)
		return nil
	case icptest.FieldPo4:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPo4(v)
		return nil
	case icptest.FieldAl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAl(v)
		return nil
	case icptest.FieldSb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSb(v)
		return nil
	case icptest.FieldBi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBi(v)
		return nil
	case icptest.FieldPb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPb(v)
		return nil
	case icptest.FieldCd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCd(v)
		return nil
	case icptest.FieldLa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLa(v)
		return nil
	case icptest.FieldTl:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTl(v)
		return nil
	case icptest.FieldTi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTi(v)
		return nil
	case icptest.FieldW:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddW(v)
		return nil
	case icptest.FieldHg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHg(v)
		return nil
	}
	return fmt.Errorf("unknown IcpTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IcpTestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(icptest.FieldFileID) {
		fields = append(fields, icptest.FieldFileID)
	}
	if m.FieldCleared(icptest.FieldTestID) {
		fields = append(fields, icptest.FieldTestID)
	}
	if m.FieldCleared(icptest.FieldSampleDate) {
		fields = append(fields, icptest.FieldSampleDate)
	}
	if m.FieldCleared(icptest.FieldReceivedDate) {
		fields = append(fields, icptest.FieldReceivedDate)
	}
	if m.FieldCleared(icptest.FieldEvaluatedDate) {
		fields = append(fields, icptest.FieldEvaluatedDate)
	}
	if m.FieldCleared(icptest.FieldScoreMajorElements) {
		fields = append(fields, icptest.FieldScoreMajorElements)
	}
	if m.FieldCleared(icptest.FieldScoreMinorElements) {
		fields = append(fields, icptest.FieldScoreMinorElements)
	}
	if m.FieldCleared(icptest.FieldScorePollutants) {
		fields = append(fields, icptest.FieldScorePollutants)
	}
	if m.FieldCleared(icptest.FieldScoreBaseElements) {
		fields = append(fields, icptest.FieldScoreBaseElements)
	}
	if m.FieldCleared(icptest.FieldScoreOverall) {
		fields = append(fields, icptest.FieldScoreOverall)
	}
	if m.FieldCleared(icptest.FieldSalinity) {
		fields = append(fields, icptest.FieldSalinity)
	}
	if m.FieldCleared(icptest.FieldSalinityStatus) {
		fields = append(fields, icptest.FieldSalinityStatus)
	}
	if m.FieldCleared(icptest.FieldKh) {
		fields = append(fields, icptest.FieldKh)
	}
	if m.FieldCleared(icptest.FieldKhStatus) {
		fields = append(fields, icptest.FieldKhStatus)
	}
	if m.FieldCleared(icptest.FieldCl) {
		fields = append(fields, icptest.FieldCl)
	}
	if m.FieldCleared(icptest.FieldClStatus) {
		fields = append(fields, icptest.FieldClStatus)
	}
	if m.FieldCleared(icptest.FieldNa) {
		fields = append(fields, icptest.FieldNa)
	}
	if m.FieldCleared(icptest.FieldNaStatus) {
		fields = append(fields, icptest.FieldNaStatus)
	}
	if m.FieldCleared(icptest.FieldMg) {
		fields = append(fields, icptest.FieldMg)
	}
	if m.FieldCleared(icptest.FieldMgStatus) {
		fields = append(fields, icptest.FieldMgStatus)
	}
	if m.FieldCleared(icptest.FieldS) {
		fields = append(fields, icptest.FieldS)
	}
	if m.FieldCleared(icptest.FieldSStatus) {
		fields = append(fields, icptest.FieldSStatus)
	}
	if m.FieldCleared(icptest.FieldCa) {
		fields = append(fields, icptest.FieldCa)
	}
	if m.FieldCleared(icptest.FieldCaStatus) {
		fields = append(fields, icptest.FieldCaStatus)
	}
	if m.FieldCleared(icptest.FieldK) {
		fields = append(fields, icptest.FieldK)
	}
	if m.FieldCleared(icptest.FieldKStatus) {
		fields = append(fields, icptest.FieldKStatus)
	}
	if m.FieldCleared(icptest.FieldBr) {
		fields = append(fields, icptest.FieldBr)
	}
	if m.FieldCleared(icptest.FieldBrStatus) {
		fields = append(fields, icptest.FieldBrStatus)
	}
	if m.FieldCleared(icptest.FieldSr) {
		fields = append(fields, icptest.FieldSr)
	}
	if m.FieldCleared(icptest.FieldSrStatus) {
		fields = append(fields, icptest.FieldSrStatus)
	}
	if m.FieldCleared(icptest.FieldB) {
		fields = append(fields, icptest.FieldB)
	}
	if m.FieldCleared(icptest.FieldBStatus) {
		fields = append(fields, icptest.FieldBStatus)
	}
	if m.FieldCleared(icptest.FieldF) {
		fields = append(fields, icptest.FieldF)
	}
	if m.FieldCleared(icptest.FieldFStatus) {
		fields = append(fields, icptest.FieldFStatus)
	}
	if m.FieldCleared(icptest.FieldLi) {
		fields = append(fields, icptest.FieldLi)
	}
	if m.FieldCleared(icptest.FieldLiStatus) {
		fields = append(fields, icptest.FieldLiStatus)
	}
	if m.FieldCleared(icptest.FieldSi) {
		fields = append(fields, icptest.FieldSi)
	}
	if m.FieldCleared(icptest.FieldSiStatus) {
		fields = append(fields, icptest.FieldSiStatus)
	}
	if m.FieldCleared(icptest.FieldI) {
		fields = append(fields, icptest.FieldI)
	}
	if m.FieldCleared(icptest.FieldIStatus) {
		fields = append(fields, icptest.FieldIStatus)
	}
	if m.FieldCleared(icptest.FieldBa) {
		fields = append(fields, icptest.FieldBa)
	}
	if m.FieldCleared(icptest.FieldBaStatus) {
		fields = append(fields, icptest.FieldBaStatus)
	}
	if m.FieldCleared(icptest.FieldMo) {
		fields = append(fields, icptest.FieldMo)
	}
	if m.FieldCleared(icptest.FieldMoStatus) {
		fields = append(fields, icptest.FieldMoStatus)
	}
	if m.FieldCleared(icptest.FieldNi) {
		fields = append(fields, icptest.FieldNi)
	}
	if m.FieldCleared(icptest.FieldNiStatus) {
		fields = append(fields, icptest.FieldNiStatus)
	}
	if m.FieldCleared(icptest.FieldMn) {
		fields = append(fields, icptest.FieldMn)
	}
	if m.FieldCleared(icptest.FieldMnStatus) {
		fields = append(fields, icptest.FieldMnStatus)
	}
	if m.FieldCleared(icptest.FieldAs) {
		fields = append(fields, icptest.FieldAs)
	}
	if m.FieldCleared(icptest.FieldAsStatus) {
		fields = append(fields, icptest.FieldAsStatus)
	}
	if m.FieldCleared(icptest.FieldBe) {
		fields = append(fields, icptest.FieldBe)
	}
	if m.FieldCleared(icptest.FieldBeStatus) {
		fields = append(fields, icptest.FieldBeStatus)
	}
	if m.FieldCleared(icptest.FieldCr) {
		fields = append(fields, icptest.FieldCr)
	}
	if m.FieldCleared(icptest.FieldCrStatus) {
		fields = append(fields, icptest.FieldCrStatus)
	}
	if m.FieldCleared(icptest.FieldCo) {
		fields = append(fields, icptest.FieldCo)
	}
	if m.FieldCleared(icptest.FieldCoStatus) {
		fields = append(fields, icptest.FieldCoStatus)
	}
	if m.FieldCleared(icptest.FieldFe) {
		fields = append(fields, icptest.FieldFe)
	}
	if m.FieldCleared(icptest.FieldFeStatus) {
		fields = append(fields, icptest.FieldFeStatus)
	}
	if m.FieldCleared(icptest.FieldCu) {
		fields = append(fields, icptest.FieldCu)
	}
	if m.FieldCleared(icptest.FieldCuStatus) {
		fields = append(fields, icptest.FieldCuStatus)
	}
	if m.FieldCleared(icptest.FieldSe) {
		fields = append(fields, icptest.FieldSe)
	}
	if m.FieldCleared(icptest.FieldSeStatus) {
		fields = append(fields, icptest.FieldSeStatus)
	}
	if m.FieldCleared(icptest.FieldAg) {
		fields = append(fields, icptest.FieldAg)
	}
	if m.FieldCleared(icptest.FieldAgStatus) {
		fields = append(fields, icptest.FieldAgStatus)
	}
	if m.FieldCleared(icptest.FieldV) {
		fields = append(fields, icptest.FieldV)
	}
	if m.FieldCleared(icptest.FieldVStatus) {
		fields = append(fields, icptest.FieldVStatus)
	}
	if m.FieldCleared(icptest.FieldZn) {
		fields = append(fields, icptest.FieldZn)
	}
	if m.FieldCleared(icptest.FieldZnStatus) {
		fields = append(fields, icptest.FieldZnStatus)
	}
	if m.FieldCleared(icptest.FieldSn) {
		fields = append(fields, icptest.FieldSn)
	}
	if m.FieldCleared(icptest.FieldSnStatus) {
		fields = append(fields, icptest.FieldSnStatus)
	}
	if m.FieldCleared(icptest.FieldNo3) {
		fields = append(fields, icptest.FieldNo3)
	}
	if m.FieldCleared(icptest.FieldNo3Status) {
		fields = append(fields, icptest.FieldNo3Status)
	}
	if m.FieldCleared(icptest.FieldP) {
		fields = append(fields, icptest.FieldP)
	}
	if m.FieldCleared(icptest.FieldPStatus) {
		fields = append(fields, icptest.FieldPStatus)
	}
	if m.FieldCleared(icptest.FieldPo4) {
		fields = append(fields, icptest.FieldPo4)
	}
	if m.FieldCleared(icptest.FieldPo4Status) {
		fields = append(fields, icptest.FieldPo4Status)
	}
	if m.FieldCleared(icptest.FieldAl) {
		fields = append(fields, icptest.FieldAl)
	}
	if m.FieldCleared(icptest.FieldAlStatus) {
		fields = append(fields, icptest.FieldAlStatus)
	}
	if m.FieldCleared(icptest.FieldSb) {
		fields = append(fields, icptest.FieldSb)
	}
	if m.FieldCleared(icptest.FieldSbStatus) {
		fields = append(fields, icptest.FieldSbStatus)
	}
	if m.FieldCleared(icptest.FieldBi) {
		fields = append(fields, icptest.FieldBi)
	}
	if m.FieldCleared(icptest.FieldBiStatus) {
		fields = append(fields, icptest.FieldBiStatus)
	}
	if m.FieldCleared(icptest.FieldPb) {
		fields = append(fields, icptest.FieldPb)
	}
	if m.FieldCleared(icptest.FieldPbStatus) {
		fields = append(fields, icptest.FieldPbStatus)
	}
	if m.FieldCleared(icptest.FieldCd) {
		fields = append(fields, icptest.FieldCd)
	}
	if m.FieldCleared(icptest.FieldCdStatus) {
		fields = append(fields, icptest.FieldCdStatus)
	}
	if m.FieldCleared(icptest.FieldLa) {
		fields = append(fields, icptest.FieldLa)
	}
	if m.FieldCleared(icptest.FieldLaStatus) {
		fields = append(fields, icptest.FieldLaStatus)
	}
	if m.FieldCleared(icptest.FieldTl) {
		fields = append(fields, icptest.FieldTl)
	}
	if m.FieldCleared(icptest.FieldTlStatus) {
		fields = append(fields, icptest.FieldTlStatus)
	}
	if m.FieldCleared(icptest.FieldTi) {
		fields = append(fields, icptest.FieldTi)
	}
	if m.FieldCleared(icptest.FieldTiStatus) {
		fields = append(fields, icptest.FieldTiStatus)
	}
	if m.FieldCleared(icptest.FieldW) {
		fields = append(fields, icptest.FieldW)
	}
	if m.FieldCleared(icptest.FieldWStatus) {
		fields = append(fields, icptest.FieldWStatus)
	}
	if m.FieldCleared(icptest.FieldHg) {
		fields = append(fields, icptest.FieldHg)
	}
	if m.FieldCleared(icptest.FieldHgStatus) {
		fields = append(fields, icptest.FieldHgStatus)
	}
	if m.FieldCleared(icptest.FieldRecommendations) {
		fields = append(fields, icptest.FieldRecommendations)
	}
	if m.FieldCleared(icptest.FieldDosingInstructions) {
		fields = append(fields, icptest.FieldDosingInstructions)
	}
	if m.FieldCleared(icptest.FieldPdfFilename) {
		fields = append(fields, icptest.FieldPdfFilename)
	}
	if m.FieldCleared(icptest.FieldPdfPath) {
		fields = append(fields, icptest.FieldPdfPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IcpTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IcpTestMutation) ClearField(name string) error {
	switch name {
	case icptest.FieldFileID:
		m.ClearFileID()
		return nil
	case icptest.FieldTestID:
		m.ClearTestID()
		return nil
	case icptest.FieldSampleDate:
		m.ClearSampleDate()
		return nil
	case icptest.FieldReceivedDate:
		m.ClearReceivedDate()
		return nil
	case icptest.FieldEvaluatedDate:
		m.ClearEvaluatedDate()
		return nil
	case icptest.FieldScoreMajorElements:
		m.ClearScoreMajorElements()
		return nil
	case icptest.FieldScoreMinorElements:
		m.ClearScoreMinorElements()
		return nil
	case icptest.FieldScorePollutants:
		m.ClearScorePollutants()
		return nil
	case icptest.FieldScoreBaseElements:
		m.ClearScoreBaseElements()
		return nil
	case icptest.FieldScoreOverall:
		m.ClearScoreOverall()
		return nil
	case icptest.FieldSalinity:
		m.ClearSalinity()
		return nil
	case icptest.FieldSalinityStatus:
		m.ClearSalinityStatus()
		return nil
	case icptest.FieldKh:
		m.ClearKh()
		return nil
	case icptest.FieldKhStatus:
		m.ClearKhStatus()
		return nil
	case icptest.FieldCl:
		m.ClearCl()
		return nil
	case icptest.FieldClStatus:
		m.ClearClStatus()
		return nil
	case icptest.FieldNa:
		m.ClearNa()
		return nil
	case icptest.FieldNaStatus:
		m.ClearNaStatus()
		return nil
	case icptest.FieldMg:
		m.ClearMg()
		return nil
	case icptest.FieldMgStatus:
		m.ClearMgStatus()
		return nil
	case icptest.FieldS:
		m.ClearS()
		return nil
	case icptest.FieldSStatus:
		m.ClearSStatus()
		return nil
	case icptest.FieldCa:
		m.ClearCa()
		return nil
	case icptest.FieldCaStatus:
		m.ClearCaStatus()
		return nil
	case icptest.FieldK:
		m.ClearK()
		return nil
	case icptest.FieldKStatus:
		m.ClearKStatus()
		return nil
	case icptest.FieldBr:
		m.ClearBr()
		return nil
	case icptest.FieldBrStatus:
		m.ClearBrStatus()
		return nil
	case icptest.FieldSr:
		m.ClearSr()
		return nil
	case icptest.FieldSrStatus:
		m.ClearSrStatus()
		return nil
	case icptest.FieldB:
		m.ClearB()
		return nil
	case icptest.FieldBStatus:
		m.ClearBStatus()
		return nil
	case icptest.FieldF:
		m.ClearF()
		return nil
	case icptest.FieldFStatus:
		m.ClearFStatus()
		return nil
	case icptest.FieldLi:
		m.ClearLi()
		return nil
	case icptest.FieldLiStatus:
		m.ClearLiStatus()
		return nil
	case icptest.FieldSi:
		m.ClearSi()
		return nil
	case icptest.FieldSiStatus:
		m.ClearSiStatus()
		return nil
	case icptest.FieldI:
		m.ClearI()
		return nil
	case icptest.FieldIStatus:
		m.ClearIStatus()
		return nil
	case icptest.FieldBa:
		m.ClearBa()
		return nil
	case icptest.FieldBaStatus:
		m.ClearBaStatus()
		return nil
	case icptest.FieldMo:
		m.ClearMo()
		return nil
	case icptest.FieldMoStatus:
		m.ClearMoStatus()
		return nil
	case icptest.FieldNi:
		m.ClearNi()
		return nil
	case icptest.FieldNiStatus:
		m.ClearNiStatus()
		return nil
	case icptest.FieldMn:
		m.ClearMn()
		return nil
	case icptest.FieldMnStatus:
		m.ClearMnStatus()
		return nil
	case icptest.FieldAs:
		m.ClearAs()
		return nil
	case icptest.FieldAsStatus:
		m.ClearAsStatus()
		return nil
	case icptest.FieldBe:
		m.ClearBe()
		return nil
	case icptest.FieldBeStatus:
		m.ClearBeStatus()
		return nil
	case icptest.FieldCr:
		m.ClearCr()
		return nil
	case icptest.FieldCrStatus:
		m.ClearCrStatus()
		return nil
	case icptest.FieldCo:
		m.ClearCo()
		return nil
	case icptest.FieldCoStatus:
		m.ClearCoStatus()
		return nil
	case icptest.FieldFe:
		m.ClearFe()
		return nil
	case icptest.FieldFeStatus:
		m.ClearFeStatus()
		return nil
	case icptest.FieldCu:
		m.ClearCu()
		return nil
	case icptest.FieldCuStatus:
		m.ClearCuStatus()
		return nil
	case icptest.FieldSe:
		m.ClearSe()
		return nil
	case icptest.FieldSeStatus:
		m.ClearSeStatus()
		return nil
	case icptest.FieldAg:
		m.ClearAg()
		return nil
	case icptest.FieldAgStatus:
		m.ClearAgStatus()
		return nil
	case icptest.FieldV:
		m.ClearV()
		return nil
	case icptest.FieldVStatus:
		m.ClearVStatus()
		return nil
	case icptest.FieldZn:
		m.ClearZn()
		return nil
	case icptest.FieldZnStatus:
		m.ClearZnStatus()
		return nil
	case icptest.FieldSn:
		m.ClearSn()
		return nil
	case icptest.FieldSnStatus:
		m.ClearSnStatus()
		return nil
	case icptest.FieldNo3:
		m.ClearNo3()
		return nil
	case icptest.FieldNo3Status:
		m.ClearNo3Status()
		return nil
	case icptest.FieldP:
		m.ClearP()
		return nil
	case icptest.FieldPStatus:
		m.ClearPStatus()
		return nil
	case icptest.FieldPo4:
		m.ClearPo4()
		return nil
	case icptest.FieldPo4Status:
		m.ClearPo4Status()
		return nil
	case icptest.FieldAl:
		m.ClearAl()
		return nil
	case icptest.FieldAlStatus:
		m.ClearAlStatus()
		return nil
	case icptest.FieldSb:
		m.ClearSb()
		return nil
	case icptest.FieldSbStatus:
		m.ClearSbStatus()
		return nil
	case icptest.FieldBi:
		m.ClearBi()
		return nil
	case icptest.FieldBiStatus:
		m.ClearBiStatus()
		return nil
	case icptest.FieldPb:
		m.ClearPb()
		return nil
	case icptest.FieldPbStatus:
		m.ClearPbStatus()
		return nil
	case icptest.FieldCd:
		m.ClearCd()
		return nil
	case icptest.FieldCdStatus:
		m.ClearCdStatus()
		return nil
	case icptest.FieldLa:
		m.ClearLa()
		return nil
	case icptest.FieldLaStatus:
		m.ClearLaStatus()
		return nil
	case icptest.FieldTl:
		m.ClearTl()
		return nil
	case icptest.FieldTlStatus:
		m.ClearTlStatus()
		return nil
	case icptest.FieldTi:
		m.ClearTi()
		return nil
	case icptest.FieldTiStatus:
		m.ClearTiStatus()
		return nil
	case icptest.FieldW:
		m.ClearW()
		return nil
	case icptest.FieldWStatus:
		m.ClearWStatus()
		return nil
	case icptest.FieldHg:
		m.ClearHg()
		return nil
	case icptest.FieldHgStatus:
		m.ClearHgStatus()
		return nil
	case icptest.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case icptest.FieldDosingInstructions:
		m.ClearDosingInstructions()
		return nil
	case icptest.FieldPdfFilename:
		m.ClearPdfFilename()
		return nil
	case icptest.FieldPdfPath:
		m.ClearPdfPath()
		return nil
	}
	return fmt.Errorf("unknown IcpTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IcpTestMutation) ResetField(name string) error {
	switch name {
	case icptest.FieldTankID:
		m.ResetTankID()
		return nil
	case icptest.FieldFileID:
		m.ResetFileID()
		return nil
	case icptest.FieldTestDate:
		m.ResetTestDate()
		return nil
	case icptest.FieldLabName:
		m.ResetLabName()
		return nil
	case icptest.FieldTestID:
		m.ResetTestID()
		return nil
	case icptest.FieldWaterType:
		m.ResetWaterType()
		return nil
	case icptest.FieldSampleDate:
		m.ResetSampleDate()
		return nil
	case icptest.FieldReceivedDate:
		m.ResetReceivedDate()
		return nil
	case icptest.FieldEvaluatedDate:
		m.ResetEvaluatedDate()
		return nil
	case icptest.FieldScoreMajorElements:
		m.ResetScoreMajorElements()
		return nil
	case icptest.FieldScoreMinorElements:
		m.ResetScoreMinorElements()
		return nil
	case icptest.FieldScorePollutants:
		m.ResetScorePollutants()
		return nil
	case icptest.FieldScoreBaseElements:
		m.ResetScoreBaseElements()
		return nil
	case icptest.FieldScoreOverall:
		m.ResetScoreOverall()
		return nil
	case icptest.FieldSalinity:
		m.ResetSalinity()
		return nil
	case icptest.FieldSalinityStatus:
		m.ResetSalinityStatus()
		return nil
	case icptest.FieldKh:
		m.ResetKh()
		return nil
	case icptest.FieldKhStatus:
		m.ResetKhStatus()
		return nil
	case icptest.FieldCl:
		m.ResetCl()
		return nil
	case icptest.FieldClStatus:
		m.ResetClStatus()
		return nil
	case icptest.FieldNa:
		m.ResetNa()
		return nil
	case icptest.FieldNaStatus:
		m.ResetNaStatus()
		return nil
	case icptest.FieldMg:
		m.ResetMg()
		return nil
	case icptest.FieldMgStatus:
		m.ResetMgStatus()
		return nil
	case icptest.FieldS:
		m.ResetS()
		return nil
	case icptest.FieldSStatus:
		m.ResetSStatus()
		return nil
	case icptest.FieldCa:
		m.ResetCa()
		return nil
	case icptest.FieldCaStatus:
		m.ResetCaStatus()
		return nil
	case icptest.FieldK:
		m.ResetK()
		return nil
	case icptest.FieldKStatus:
		m.ResetKStatus()
		return nil
	case icptest.FieldBr:
		m.ResetBr()
		return nil
	case icptest.FieldBrStatus:
		m.ResetBrStatus()
		return nil
	case icptest.FieldSr:
		m.ResetSr()
		return nil
	case icptest.FieldSrStatus:
		m.ResetSrStatus()
		return nil
	case icptest.FieldB:
		m.ResetB()
		return nil
	case icptest.FieldBStatus:
		m.ResetBStatus()
		return nil
	case icptest.FieldF:
		m.ResetF()
		return nil
	case icptest.FieldFStatus:
		m.ResetFStatus()
		return nil
	case icptest.FieldLi:
		m.ResetLi()
		return nil
	case icptest.FieldLiStatus:
		m.ResetLiStatus()
		return nil
	case icptest.FieldSi:
		m.ResetSi()
		return nil
	case icptest.FieldSiStatus:
		m.ResetSiStatus()
		return nil
	case icptest.FieldI:
		m.ResetI()
		return nil
	case icptest.FieldIStatus:
		m.ResetIStatus()
		return nil
	case icptest.FieldBa:
		m.ResetBa()
		return nil
	case icptest.FieldBaStatus:
		m.ResetBaStatus()
		return nil
	case icptest.FieldMo:
		m.ResetMo()
		return nil
	case icptest.FieldMoStatus:
		m.ResetMoStatus()
		return nil
	case icptest.FieldNi:
		m.ResetNi()
		return nil
	case icptest.FieldNiStatus:
		m.ResetNiStatus()
		return nil
	case icptest.FieldMn:
		m.ResetMn()
		return nil
	case icptest.FieldMnStatus:
		m.ResetMnStatus()
		return nil
	case icptest.FieldAs:
		m.ResetAs()
		return nil
	case icptest.FieldAsStatus:
		m.ResetAsStatus()
		return nil
	case icptest.FieldBe:
		m.ResetBe()
		return nil
	case icptest.FieldBeStatus:
		m.ResetBeStatus()
		return nil
	case icptest.FieldCr:
		m.ResetCr()
		return nil
	case icptest.FieldCrStatus:
		m.ResetCrStatus()
		return nil
	case icptest.FieldCo:
		m.ResetCo()
		return nil
	case icptest.FieldCoStatus:
		m.ResetCoStatus()
		return nil
	case icptest.FieldFe:
		m.ResetFe()
		return nil
	case icptest.FieldFeStatus:
		m.ResetFeStatus()
		return nil
	case icptest.FieldCu:
		m.ResetCu()
		return nil
	case icptest.FieldCuStatus:
		m.ResetCuStatus()
		return nil
	case icptest.FieldSe:
		m.ResetSe()
		return nil
	case icptest.FieldSeStatus:
		m.ResetSeStatus()
		return nil
	case icptest.FieldAg:
		m.ResetAg()
		return nil
	case icptest.FieldAgStatus:
		m.ResetAgStatus()
		return nil
	case icptest.FieldV:
		m.ResetV()
		return nil
	case icptest.FieldVStatus:
		m.ResetVStatus()
		return nil
	case icptest.FieldZn:
		m.ResetZn()
		return nil
	case icptest.FieldZnStatus:
		m.ResetZnStatus()
		return nil
	case icptest.FieldSn:
		m.ResetSn()
		return nil
	case icptest.FieldSnStatus:
		m.ResetSnStatus()
		return nil
	case icptest.FieldNo3:
		m.ResetNo3()
		return nil
	case icptest.FieldNo3Status:
		m.ResetNo3Status()
		return nil
	case icptest.FieldP:
		m.ResetP()
		return nil
	case icptest.FieldPStatus:
		m.ResetPStatus()
		return nil
	case icptest.FieldPo4:
		m.ResetPo4()
		return nil
	case icptest.FieldPo4Status:
		m.ResetPo4Status()
		return nil
	case icptest.FieldAl:
		m.ResetAl()
		return nil
	case icptest.FieldAlStatus:
		m.ResetAlStatus()
		return nil
	case icptest.FieldSb:
		m.ResetSb()
		return nil
	case icptest.FieldSbStatus:
		m.ResetSbStatus()
		return nil
	case icptest.FieldBi:
		m.ResetBi()
		return nil
	case icptest.FieldBiStatus:
		m.ResetBiStatus()
		return nil
	case icptest.FieldPb:
		m.ResetPb()
		return nil
	case icptest.FieldPbStatus:
		m.ResetPbStatus()
		return nil
	case icptest.FieldCd:
		m.ResetCd()
		return nil
	case icptest.FieldCdStatus:
		m.ResetCdStatus()
		return nil
	case icptest.FieldLa:
		m.ResetLa()
		return nil
	case icptest.FieldLaStatus:
		m.ResetLaStatus()
		return nil
	case icptest.FieldTl:
		m.ResetTl()
		return nil
	case icptest.FieldTlStatus:
		m.ResetTlStatus()
		return nil
	case icptest.FieldTi:
		m.ResetTi()
		return nil
	case icptest.FieldTiStatus:
		m.ResetTiStatus()
		return nil
	case icptest.FieldW:
		m.ResetW()
		return nil
	case icptest.FieldWStatus:
		m.ResetWStatus()
		return nil
	case icptest.FieldHg:
		m.ResetHg()
		return nil
	case icptest.FieldHgStatus:
		m.ResetHgStatus()
		return nil
	case icptest.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case icptest.FieldDosingInstructions:
		m.ResetDosingInstructions()
		return nil
	case icptest.FieldPdfFilename:
		m.ResetPdfFilename()
		return nil
	case icptest.FieldPdfPath:
		m.ResetPdfPath()
		return nil
	case icptest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case icptest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IcpTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IcpTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tank != nil {
		edges = append(edges, icptest.EdgeTank)
	}
	if m.file != nil {
		edges = append(edges, icptest.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IcpTestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case icptest.EdgeTank:
		if id := m.tank; id != nil {
			return []ent.Value{*id}
		}
	case icptest.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IcpTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IcpTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IcpTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtank {
		edges = append(edges, icptest.EdgeTank)
	}
	if m.clearedfile {
		edges = append(edges, icptest.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IcpTestMutation) EdgeCleared(name string) bool {
	switch name {
	case icptest.EdgeTank:
		return m.clearedtank
	case icptest.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IcpTestMutation) ClearEdge(name string) error {
	switch name {
	case icptest.EdgeTank:
		m.ClearTank()
		return nil
	case icptest.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown IcpTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IcpTestMutation) ResetEdge(name string) error {
	switch name {
	case icptest.EdgeTank:
		m.ResetTank()
		return nil
	case icptest.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown IcpTest edge %s", name)
}

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	format            *string
	started_at        *time.Time
	finished_at       *time.Time
	status            *string
	error_message     *string
	raw_text          *string
	pages             *int
	addpages          *int
	records_count     *int
	addrecords_count  *int
	parsed_json       *json.RawMessage
	appendparsed_json json.RawMessage
	clearedFields     map[string]struct{}
	file              *uuid.UUID
	clearedfile       bool
	tank              *uuid.UUID
	clearedtank       bool
	done              bool
	oldValue          func(context.Context) (*ParseJob, error)
	predicates        []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ParseJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ParseJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ParseJobMutation) ResetFileID() {
	m.file = nil
}

// SetTankID sets the "tank_id" field.
func (m *ParseJobMutation) SetTankID(u uuid.UUID) {
	m.tank = &u
}

// TankID returns the value of the "tank_id" field in the mutation.
func (m *ParseJobMutation) TankID() (r uuid.UUID, exists bool) {
	v := m.tank
	if v == nil {
		return
	}
	return *v, true
}

// OldTankID returns the old "tank_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldTankID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTankID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTankID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTankID: %w", err)
	}
	return oldValue.TankID, nil
}

// ResetTankID resets all changes to the "tank_id" field.
func (m *ParseJobMutation) ResetTankID() {
	m.tank = nil
}

// SetFormat sets the "format" field.
func (m *ParseJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ParseJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ParseJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ParseJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[parsejob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ParseJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, parsejob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetRawText sets the "raw_text" field.
func (m *ParseJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ParseJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ParseJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[parsejob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ParseJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ParseJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, parsejob.FieldRawText)
}

// SetPages sets the "pages" field.
func (m *ParseJobMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ParseJobMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldPages(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *ParseJobMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *ParseJobMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ClearPages clears the value of the "pages" field.
func (m *ParseJobMutation) ClearPages() {
	m.pages = nil
	m.addpages = nil
	m.clearedFields[parsejob.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *ParseJobMutation) PagesCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *ParseJobMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
	delete(m.clearedFields, parsejob.FieldPages)
}

// SetRecordsCount sets the "records_count" field.
func (m *ParseJobMutation) SetRecordsCount(i int) {
	m.records_count = &i
	m.addrecords_count = nil
}

// RecordsCount returns the value of the "records_count" field in the mutation.
func (m *ParseJobMutation) RecordsCount() (r int, exists bool) {
	v := m.records_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsCount returns the old "records_count" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldRecordsCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsCount: %w", err)
	}
	return oldValue.RecordsCount, nil
}

// AddRecordsCount adds i to the "records_count" field.
func (m *ParseJobMutation) AddRecordsCount(i int) {
	if m.addrecords_count != nil {
		*m.addrecords_count += i
	} else {
		m.addrecords_count = &i
	}
}

// AddedRecordsCount returns the value that was added to the "records_count" field in this mutation.
func (m *ParseJobMutation) AddedRecordsCount() (r int, exists bool) {
	v := m.addrecords_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecordsCount clears the value of the "records_count" field.
func (m *ParseJobMutation) ClearRecordsCount() {
	m.records_count = nil
	m.addrecords_count = nil
	m.clearedFields[parsejob.FieldRecordsCount] = struct{}{}
}

// RecordsCountCleared returns if the "records_count" field was cleared in this mutation.
func (m *ParseJobMutation) RecordsCountCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldRecordsCount]
	return ok
}

// ResetRecordsCount resets all changes to the "records_count" field.
func (m *ParseJobMutation) ResetRecordsCount() {
	m.records_count = nil
	m.addrecords_count = nil
	delete(m.clearedFields, parsejob.FieldRecordsCount)
}

// SetParsedJSON sets the "parsed_json" field.
func (m *ParseJobMutation) SetParsedJSON(jm json.RawMessage) {
	m.parsed_json = &jm
	m.appendparsed_json = nil
}

// ParsedJSON returns the value of the "parsed_json" field in the mutation.
func (m *ParseJobMutation) ParsedJSON() (r json.RawMessage, exists bool) {
	v := m.parsed_json
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedJSON returns the old "parsed_json" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldParsedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedJSON: %w", err)
	}
	return oldValue.ParsedJSON, nil
}

// AppendParsedJSON adds jm to the "parsed_json" field.
func (m *ParseJobMutation) AppendParsedJSON(jm json.RawMessage) {
	m.appendparsed_json = append(m.appendparsed_json, jm...)
}

// AppendedParsedJSON returns the list of values that were appended to the "parsed_json" field in this mutation.
func (m *ParseJobMutation) AppendedParsedJSON() (json.RawMessage, bool) {
	if len(m.appendparsed_json) == 0 {
		return nil, false
	}
	return m.appendparsed_json, true
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (m *ParseJobMutation) ClearParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	m.clearedFields[parsejob.FieldParsedJSON] = struct{}{}
}

// ParsedJSONCleared returns if the "parsed_json" field was cleared in this mutation.
func (m *ParseJobMutation) ParsedJSONCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldParsedJSON]
	return ok
}

// ResetParsedJSON resets all changes to the "parsed_json" field.
func (m *ParseJobMutation) ResetParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	delete(m.clearedFields, parsejob.FieldParsedJSON)
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (m *ParseJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[parsejob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ReportFile entity was cleared.
func (m *ParseJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ParseJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearTank clears the "tank" edge to the Tank entity.
func (m *ParseJobMutation) ClearTank() {
	m.clearedtank = true
	m.clearedFields[parsejob.FieldTankID] = struct{}{}
}

// TankCleared reports if the "tank" edge to the Tank entity was cleared.
func (m *ParseJobMutation) TankCleared() bool {
	return m.clearedtank
}

// TankIDs returns the "tank" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TankID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) TankIDs() (ids []uuid.UUID) {
	if id := m.tank; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTank resets all changes to the "tank" edge.
func (m *ParseJobMutation) ResetTank() {
	m.tank = nil
	m.clearedtank = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file != nil {
		fields = append(fields, parsejob.FieldFileID)
	}
	if m.tank != nil {
		fields = append(fields, parsejob.FieldTankID)
	}
	if m.format != nil {
		fields = append(fields, parsejob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.raw_text != nil {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.pages != nil {
		fields = append(fields, parsejob.FieldPages)
	}
	if m.records_count != nil {
		fields = append(fields, parsejob.FieldRecordsCount)
	}
	if m.parsed_json != nil {
		fields = append(fields, parsejob.FieldParsedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldFileID:
		return m.FileID()
	case parsejob.FieldTankID:
		return m.TankID()
	case parsejob.FieldFormat:
		return m.Format()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldRawText:
		return m.RawText()
	case parsejob.FieldPages:
		return m.Pages()
	case parsejob.FieldRecordsCount:
		return m.RecordsCount()
	case parsejob.FieldParsedJSON:
		return m.ParsedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldFileID:
		return m.OldFileID(ctx)
	case parsejob.FieldTankID:
		return m.OldTankID(ctx)
	case parsejob.FieldFormat:
		return m.OldFormat(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldRawText:
		return m.OldRawText(ctx)
	case parsejob.FieldPages:
		return m.OldPages(ctx)
	case parsejob.FieldRecordsCount:
		return m.OldRecordsCount(ctx)
	case parsejob.FieldParsedJSON:
		return m.OldParsedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case parsejob.FieldTankID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTankID(v)
		return nil
	case parsejob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case parsejob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case parsejob.FieldRecordsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsCount(v)
		return nil
	case parsejob.FieldParsedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	var fields []string
	if m.addpages != nil {
		fields = append(fields, parsejob.FieldPages)
	}
	if m.addrecords_count != nil {
		fields = append(fields, parsejob.FieldRecordsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldPages:
		return m.AddedPages()
	case parsejob.FieldRecordsCount:
		return m.AddedRecordsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	case parsejob.FieldRecordsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsCount(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.FieldCleared(parsejob.FieldStatus) {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldRawText) {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.FieldCleared(parsejob.FieldPages) {
		fields = append(fields, parsejob.FieldPages)
	}
	if m.FieldCleared(parsejob.FieldRecordsCount) {
		fields = append(fields, parsejob.FieldRecordsCount)
	}
	if m.FieldCleared(parsejob.FieldParsedJSON) {
		fields = append(fields, parsejob.FieldParsedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ClearStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldRawText:
		m.ClearRawText()
		return nil
	case parsejob.FieldPages:
		m.ClearPages()
		return nil
	case parsejob.FieldRecordsCount:
		m.ClearRecordsCount()
		return nil
	case parsejob.FieldParsedJSON:
		m.ClearParsedJSON()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldFileID:
		m.ResetFileID()
		return nil
	case parsejob.FieldTankID:
		m.ResetTankID()
		return nil
	case parsejob.FieldFormat:
		m.ResetFormat()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldRawText:
		m.ResetRawText()
		return nil
	case parsejob.FieldPages:
		m.ResetPages()
		return nil
	case parsejob.FieldRecordsCount:
		m.ResetRecordsCount()
		return nil
	case parsejob.FieldParsedJSON:
		m.ResetParsedJSON()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.tank != nil {
		edges = append(edges, parsejob.EdgeTank)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case parsejob.EdgeTank:
		if id := m.tank; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.clearedtank {
		edges = append(edges, parsejob.EdgeTank)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeFile:
		return m.clearedfile
	case parsejob.EdgeTank:
		return m.clearedtank
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ClearFile()
		return nil
	case parsejob.EdgeTank:
		m.ClearTank()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ResetFile()
		return nil
	case parsejob.EdgeTank:
		m.ResetTank()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}

// ReportFileMutation represents an operation that mutates the ReportFile nodes in the graph.
type ReportFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	tank          *uuid.UUID
	clearedtank   bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	tests         map[uuid.UUID]struct{}
	removedtests  map[uuid.UUID]struct{}
	clearedtests  bool
	done          bool
	oldValue      func(context.Context) (*ReportFile, error)
	predicates    []predicate.ReportFile
}

var _ ent.Mutation = (*ReportFileMutation)(nil)

// reportfileOption allows management of the mutation configuration using functional options.
type reportfileOption func(*ReportFileMutation)

// newReportFileMutation creates new mutation for the ReportFile entity.
func newReportFileMutation(c config, op Op, opts ...reportfileOption) *ReportFileMutation {
	m := &ReportFileMutation{
		config:        c,
		op:            op,
		typ:           TypeReportFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportFileID sets the ID field of the mutation.
func withReportFileID(id uuid.UUID) reportfileOption {
	return func(m *ReportFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportFile
		)
		m.oldValue = func(ctx context.Context) (*ReportFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportFile sets the old ReportFile of the mutation.
func withReportFile(node *ReportFile) reportfileOption {
	return func(m *ReportFileMutation) {
		m.oldValue = func(context.Context) (*ReportFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportFile entities.
func (m *ReportFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTankID sets the "tank_id" field.
func (m *ReportFileMutation) SetTankID(u uuid.UUID) {
	m.tank = &u
}

// TankID returns the value of the "tank_id" field in the mutation.
func (m *ReportFileMutation) TankID() (r uuid.UUID, exists bool) {
	v := m.tank
	if v == nil {
		return
	}
	return *v, true
}

// OldTankID returns the old "tank_id" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldTankID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTankID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTankID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTankID: %w", err)
	}
	return oldValue.TankID, nil
}

// ResetTankID resets all changes to the "tank_id" field.
func (m *ReportFileMutation) ResetTankID() {
	m.tank = nil
}

// SetSourcePath sets the "source_path" field.
func (m *ReportFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ReportFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ReportFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ReportFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ReportFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ReportFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ReportFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ReportFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ReportFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ReportFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ReportFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ReportFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ReportFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ReportFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ReportFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ReportFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ReportFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ReportFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ReportFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ReportFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearTank clears the "tank" edge to the Tank entity.
func (m *ReportFileMutation) ClearTank() {
	m.clearedtank = true
	m.clearedFields[reportfile.FieldTankID] = struct{}{}
}

// TankCleared reports if the "tank" edge to the Tank entity was cleared.
func (m *ReportFileMutation) TankCleared() bool {
	return m.clearedtank
}

// TankIDs returns the "tank" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TankID instead. It exists only for internal usage by the builders.
func (m *ReportFileMutation) TankIDs() (ids []uuid.UUID) {
	if id := m.tank; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTank resets all changes to the "tank" edge.
func (m *ReportFileMutation) ResetTank() {
	m.tank = nil
	m.clearedtank = false
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *ReportFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *ReportFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *ReportFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *ReportFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *ReportFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ReportFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ReportFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddTestIDs adds the "tests" edge to the IcpTest entity by ids.
func (m *ReportFileMutation) AddTestIDs(ids ...uuid.UUID) {
	if m.tests == nil {
		m.tests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tests[ids[i]] = struct{}{}
	}
}

// ClearTests clears the "tests" edge to the IcpTest entity.
func (m *ReportFileMutation) ClearTests() {
	m.clearedtests = true
}

// TestsCleared reports if the "tests" edge to the IcpTest entity was cleared.
func (m *ReportFileMutation) TestsCleared() bool {
	return m.clearedtests
}

// RemoveTestIDs removes the "tests" edge to the IcpTest entity by IDs.
func (m *ReportFileMutation) RemoveTestIDs(ids ...uuid.UUID) {
	if m.removedtests == nil {
		m.removedtests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tests, ids[i])
		m.removedtests[ids[i]] = struct{}{}
	}
}

// RemovedTests returns the removed IDs of the "tests" edge to the IcpTest entity.
func (m *ReportFileMutation) RemovedTestsIDs() (ids []uuid.UUID) {
	for id := range m.removedtests {
		ids = append(ids, id)
	}
	return
}

// TestsIDs returns the "tests" edge IDs in the mutation.
func (m *ReportFileMutation) TestsIDs() (ids []uuid.UUID) {
	for id := range m.tests {
		ids = append(ids, id)
	}
	return
}

// ResetTests resets all changes to the "tests" edge.
func (m *ReportFileMutation) ResetTests() {
	m.tests = nil
	m.clearedtests = false
	m.removedtests = nil
}

// Where appends a list predicates to the ReportFileMutation builder.
func (m *ReportFileMutation) Where(ps ...predicate.ReportFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportFile).
func (m *ReportFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tank != nil {
		fields = append(fields, reportfile.FieldTankID)
	}
	if m.source_path != nil {
		fields = append(fields, reportfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, reportfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, reportfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, reportfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, reportfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, reportfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportfile.FieldTankID:
		return m.TankID()
	case reportfile.FieldSourcePath:
		return m.SourcePath()
	case reportfile.FieldContentHash:
		return m.ContentHash()
	case reportfile.FieldFilename:
		return m.Filename()
	case reportfile.FieldFileExt:
		return m.FileExt()
	case reportfile.FieldFileSize:
		return m.FileSize()
	case reportfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportfile.FieldTankID:
		return m.OldTankID(ctx)
	case reportfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case reportfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case reportfile.FieldFilename:
		return m.OldFilename(ctx)
	case reportfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case reportfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case reportfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportfile.FieldTankID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTankID(v)
		return nil
	case reportfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case reportfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case reportfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case reportfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case reportfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case reportfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, reportfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ReportFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportFileMutation) ResetField(name string) error {
	switch name {
	case reportfile.FieldTankID:
		m.ResetTankID()
		return nil
	case reportfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case reportfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case reportfile.FieldFilename:
		m.ResetFilename()
		return nil
	case reportfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case reportfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case reportfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tank != nil {
		edges = append(edges, reportfile.EdgeTank)
	}
	if m.jobs != nil {
		edges = append(edges, reportfile.EdgeJobs)
	}
	if m.tests != nil {
		edges = append(edges, reportfile.EdgeTests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportfile.EdgeTank:
		if id := m.tank; id != nil {
			return []ent.Value{*id}
		}
	case reportfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case reportfile.EdgeTests:
		ids := make([]ent.Value, 0, len(m.tests))
		for id := range m.tests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, reportfile.EdgeJobs)
	}
	if m.removedtests != nil {
		edges = append(edges, reportfile.EdgeTests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reportfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case reportfile.EdgeTests:
		ids := make([]ent.Value, 0, len(m.removedtests))
		for id := range m.removedtests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtank {
		edges = append(edges, reportfile.EdgeTank)
	}
	if m.clearedjobs {
		edges = append(edges, reportfile.EdgeJobs)
	}
	if m.clearedtests {
		edges = append(edges, reportfile.EdgeTests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportFileMutation) EdgeCleared(name string) bool {
	switch name {
	case reportfile.EdgeTank:
		return m.clearedtank
	case reportfile.EdgeJobs:
		return m.clearedjobs
	case reportfile.EdgeTests:
		return m.clearedtests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportFileMutation) ClearEdge(name string) error {
	switch name {
	case reportfile.EdgeTank:
		m.ClearTank()
		return nil
	}
	return fmt.Errorf("unknown ReportFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportFileMutation) ResetEdge(name string) error {
	switch name {
	case reportfile.EdgeTank:
		m.ResetTank()
		return nil
	case reportfile.EdgeJobs:
		m.ResetJobs()
		return nil
	case reportfile.EdgeTests:
		m.ResetTests()
		return nil
	}
	return fmt.Errorf("unknown ReportFile edge %s", name)
}

// TankMutation represents an operation that mutates the Tank nodes in the graph.
type TankMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	volume_liters    *float64
	addvolume_liters *float64
	description      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	tests            map[uuid.UUID]struct{}
	removedtests     map[uuid.UUID]struct{}
	clearedtests     bool
	files            map[uuid.UUID]struct{}
	removedfiles     map[uuid.UUID]struct{}
	clearedfiles     bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Tank, error)
	predicates       []predicate.Tank
}

var _ ent.Mutation = (*TankMutation)(nil)

// tankOption allows management of the mutation configuration using functional options.
type tankOption func(*TankMutation)

// newTankMutation creates new mutation for the Tank entity.
func newTankMutation(c config, op Op, opts ...tankOption) *TankMutation {
	m := &TankMutation{
		config:        c,
		op:            op,
		typ:           TypeTank,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTankID sets the ID field of the mutation.
func withTankID(id uuid.UUID) tankOption {
	return func(m *TankMutation) {
		var (
			err   error
			once  sync.Once
			value *Tank
		)
		m.oldValue = func(ctx context.Context) (*Tank, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tank.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTank sets the old Tank of the mutation.
func withTank(node *Tank) tankOption {
	return func(m *TankMutation) {
		m.oldValue = func(context.Context) (*Tank, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TankMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TankMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tank entities.
func (m *TankMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TankMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TankMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tank.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TankMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TankMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tank entity.
// If the Tank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TankMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TankMutation) ResetName() {
	m.name = nil
}

// SetVolumeLiters sets the "volume_liters" field.
func (m *TankMutation) SetVolumeLiters(f float64) {
	m.volume_liters = &f
	m.addvolume_liters = nil
}

// VolumeLiters returns the value of the "volume_liters" field in the mutation.
func (m *TankMutation) VolumeLiters() (r float64, exists bool) {
	v := m.volume_liters
	if v == nil {
		return
	}
	return *v, true
}

// OldVolumeLiters returns the old "volume_liters" field's value of the Tank entity.
// If the Tank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TankMutation) OldVolumeLiters(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolumeLiters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolumeLiters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolumeLiters: %w", err)
	}
	return oldValue.VolumeLiters, nil
}

// AddVolumeLiters adds f to the "volume_liters" field.
func (m *TankMutation) AddVolumeLiters(f float64) {
	if m.addvolume_liters != nil {
		*m.addvolume_liters += f
	} else {
		m.addvolume_liters = &f
	}
}

// AddedVolumeLiters returns the value that was added to the "volume_liters" field in this mutation.
func (m *TankMutation) AddedVolumeLiters() (r float64, exists bool) {
	v := m.addvolume_liters
	if v == nil {
		return
	}
	return *v, true
}

// ClearVolumeLiters clears the value of the "volume_liters" field.
func (m *TankMutation) ClearVolumeLiters() {
	m.volume_liters = nil
	m.addvolume_liters = nil
	m.clearedFields[tank.FieldVolumeLiters] = struct{}{}
}

// VolumeLitersCleared returns if the "volume_liters" field was cleared in this mutation.
func (m *TankMutation) VolumeLitersCleared() bool {
	_, ok := m.clearedFields[tank.FieldVolumeLiters]
	return ok
}

// ResetVolumeLiters resets all changes to the "volume_liters" field.
func (m *TankMutation) ResetVolumeLiters() {
	m.volume_liters = nil
	m.addvolume_liters = nil
	delete(m.clearedFields, tank.FieldVolumeLiters)
}

// SetDescription sets the "description" field.
func (m *TankMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TankMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Tank entity.
// If the Tank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TankMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TankMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tank.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TankMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tank.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TankMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tank.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *TankMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TankMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tank entity.
// If the Tank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TankMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TankMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TankMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TankMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tank entity.
// If the Tank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TankMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TankMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTestIDs adds the "tests" edge to the IcpTest entity by ids.
func (m *TankMutation) AddTestIDs(ids ...uuid.UUID) {
	if m.tests == nil {
		m.tests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tests[ids[i]] = struct{}{}
	}
}

// ClearTests clears the "tests" edge to the IcpTest entity.
func (m *TankMutation) ClearTests() {
	m.clearedtests = true
}

// TestsCleared reports if the "tests" edge to the IcpTest entity was cleared.
func (m *TankMutation) TestsCleared() bool {
	return m.clearedtests
}

// RemoveTestIDs removes the "tests" edge to the IcpTest entity by IDs.
func (m *TankMutation) RemoveTestIDs(ids ...uuid.UUID) {
	if m.removedtests == nil {
		m.removedtests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tests, ids[i])
		m.removedtests[ids[i]] = struct{}{}
	}
}

// RemovedTests returns the removed IDs of the "tests" edge to the IcpTest entity.
func (m *TankMutation) RemovedTestsIDs() (ids []uuid.UUID) {
	for id := range m.removedtests {
		ids = append(ids, id)
	}
	return
}

// TestsIDs returns the "tests" edge IDs in the mutation.
func (m *TankMutation) TestsIDs() (ids []uuid.UUID) {
	for id := range m.tests {
		ids = append(ids, id)
	}
	return
}

// ResetTests resets all changes to the "tests" edge.
func (m *TankMutation) ResetTests() {
	m.tests = nil
	m.clearedtests = false
	m.removedtests = nil
}

// AddFileIDs adds the "files" edge to the ReportFile entity by ids.
func (m *TankMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the ReportFile entity.
func (m *TankMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the ReportFile entity was cleared.
func (m *TankMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the ReportFile entity by IDs.
func (m *TankMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the ReportFile entity.
func (m *TankMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *TankMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *TankMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *TankMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *TankMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *TankMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *TankMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *TankMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *TankMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *TankMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the TankMutation builder.
func (m *TankMutation) Where(ps ...predicate.Tank) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TankMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TankMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tank, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TankMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TankMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tank).
func (m *TankMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TankMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, tank.FieldName)
	}
	if m.volume_liters != nil {
		fields = append(fields, tank.FieldVolumeLiters)
	}
	if m.description != nil {
		fields = append(fields, tank.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, tank.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tank.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TankMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tank.FieldName:
		return m.Name()
	case tank.FieldVolumeLiters:
		return m.VolumeLiters()
	case tank.FieldDescription:
		return m.Description()
	case tank.FieldCreatedAt:
		return m.CreatedAt()
	case tank.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TankMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tank.FieldName:
		return m.OldName(ctx)
	case tank.FieldVolumeLiters:
		return m.OldVolumeLiters(ctx)
	case tank.FieldDescription:
		return m.OldDescription(ctx)
	case tank.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tank.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tank field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TankMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tank.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tank.FieldVolumeLiters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolumeLiters(v)
		return nil
	case tank.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tank.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tank.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tank field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TankMutation) AddedFields() []string {
	var fields []string
	if m.addvolume_liters != nil {
		fields = append(fields, tank.FieldVolumeLiters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TankMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tank.FieldVolumeLiters:
		return m.AddedVolumeLiters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TankMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tank.FieldVolumeLiters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolumeLiters(v)
		return nil
	}
	return fmt.Errorf("unknown Tank numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TankMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tank.FieldVolumeLiters) {
		fields = append(fields, tank.FieldVolumeLiters)
	}
	if m.FieldCleared(tank.FieldDescription) {
		fields = append(fields, tank.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TankMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TankMutation) ClearField(name string) error {
	switch name {
	case tank.FieldVolumeLiters:
		m.ClearVolumeLiters()
		return nil
	case tank.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Tank nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TankMutation) ResetField(name string) error {
	switch name {
	case tank.FieldName:
		m.ResetName()
		return nil
	case tank.FieldVolumeLiters:
		m.ResetVolumeLiters()
		return nil
	case tank.FieldDescription:
		m.ResetDescription()
		return nil
	case tank.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tank.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tank field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TankMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tests != nil {
		edges = append(edges, tank.EdgeTests)
	}
	if m.files != nil {
		edges = append(edges, tank.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, tank.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TankMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tank.EdgeTests:
		ids := make([]ent.Value, 0, len(m.tests))
		for id := range m.tests {
			ids = append(ids, id)
		}
		return ids
	case tank.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case tank.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TankMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtests != nil {
		edges = append(edges, tank.EdgeTests)
	}
	if m.removedfiles != nil {
		edges = append(edges, tank.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, tank.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TankMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tank.EdgeTests:
		ids := make([]ent.Value, 0, len(m.removedtests))
		for id := range m.removedtests {
			ids = append(ids, id)
		}
		return ids
	case tank.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case tank.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TankMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtests {
		edges = append(edges, tank.EdgeTests)
	}
	if m.clearedfiles {
		edges = append(edges, tank.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, tank.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TankMutation) EdgeCleared(name string) bool {
	switch name {
	case tank.EdgeTests:
		return m.clearedtests
	case tank.EdgeFiles:
		return m.clearedfiles
	case tank.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TankMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tank unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TankMutation) ResetEdge(name string) error {
	switch name {
	case tank.EdgeTests:
		m.ResetTests()
		return nil
	case tank.EdgeFiles:
		m.ResetFiles()
		return nil
	case tank.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Tank edge %s", name)
}
