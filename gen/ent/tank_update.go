// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/parsejob"
	"github.com/reefwatch/icp-tracker/gen/ent/predicate"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// TankUpdate is the builder for updating Tank entities.
type TankUpdate struct {
	config
	hooks    []Hook
	mutation *TankMutation
}

// Where appends a list predicates to the TankUpdate builder.
func (_u *TankUpdate) Where(ps ...predicate.Tank) *TankUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TankUpdate) SetName(v string) *TankUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TankUpdate) SetNillableName(v *string) *TankUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVolumeLiters sets the "volume_liters" field.
func (_u *TankUpdate) SetVolumeLiters(v float64) *TankUpdate {
	_u.mutation.ResetVolumeLiters()
	_u.mutation.SetVolumeLiters(v)
	return _u
}

// SetNillableVolumeLiters sets the "volume_liters" field if the given value is not nil.
func (_u *TankUpdate) SetNillableVolumeLiters(v *float64) *TankUpdate {
	if v != nil {
		_u.SetVolumeLiters(*v)
	}
	return _u
}

// AddVolumeLiters adds value to the "volume_liters" field.
func (_u *TankUpdate) AddVolumeLiters(v float64) *TankUpdate {
	_u.mutation.AddVolumeLiters(v)
	return _u
}

// ClearVolumeLiters clears the value of the "volume_liters" field.
func (_u *TankUpdate) ClearVolumeLiters() *TankUpdate {
	_u.mutation.ClearVolumeLiters()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TankUpdate) SetDescription(v string) *TankUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TankUpdate) SetNillableDescription(v *string) *TankUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TankUpdate) ClearDescription() *TankUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TankUpdate) SetCreatedAt(v time.Time) *TankUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TankUpdate) SetNillableCreatedAt(v *time.Time) *TankUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TankUpdate) SetUpdatedAt(v time.Time) *TankUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTestIDs adds the "tests" edge to the IcpTest entity by IDs.
func (_u *TankUpdate) AddTestIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.AddTestIDs(ids...)
	return _u
}

// AddTests adds the "tests" edges to the IcpTest entity.
func (_u *TankUpdate) AddTests(v ...*IcpTest) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestIDs(ids...)
}

// AddFileIDs adds the "files" edge to the ReportFile entity by IDs.
func (_u *TankUpdate) AddFileIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ReportFile entity.
func (_u *TankUpdate) AddFiles(v ...*ReportFile) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *TankUpdate) AddJobIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *TankUpdate) AddJobs(v ...*ParseJob) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TankMutation object of the builder.
func (_u *TankUpdate) Mutation() *TankMutation {
	return _u.mutation
}

// ClearTests clears all "tests" edges to the IcpTest entity.
func (_u *TankUpdate) ClearTests() *TankUpdate {
	_u.mutation.ClearTests()
	return _u
}

// RemoveTestIDs removes the "tests" edge to IcpTest entities by IDs.
func (_u *TankUpdate) RemoveTestIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.RemoveTestIDs(ids...)
	return _u
}

// RemoveTests removes "tests" edges to IcpTest entities.
func (_u *TankUpdate) RemoveTests(v ...*IcpTest) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestIDs(ids...)
}

// ClearFiles clears all "files" edges to the ReportFile entity.
func (_u *TankUpdate) ClearFiles() *TankUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ReportFile entities by IDs.
func (_u *TankUpdate) RemoveFileIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ReportFile entities.
func (_u *TankUpdate) RemoveFiles(v ...*ReportFile) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *TankUpdate) ClearJobs() *TankUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *TankUpdate) RemoveJobIDs(ids ...uuid.UUID) *TankUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *TankUpdate) RemoveJobs(v ...*ParseJob) *TankUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TankUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TankUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TankUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TankUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TankUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tank.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TankUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tank.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tank.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TankUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tank.Table, tank.Columns, sqlgraph.NewFieldSpec(tank.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tank.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VolumeLiters(); ok {
		_spec.SetField(tank.FieldVolumeLiters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolumeLiters(); ok {
		_spec.AddField(tank.FieldVolumeLiters, field.TypeFloat64, value)
	}
	if _u.mutation.VolumeLitersCleared() {
		_spec.ClearField(tank.FieldVolumeLiters, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tank.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tank.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tank.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tank.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestsIDs(); len(nodes) > 0 && !_u.mutation.TestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TankUpdateOne is the builder for updating a single Tank entity.
type TankUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TankMutation
}

// SetName sets the "name" field.
func (_u *TankUpdateOne) SetName(v string) *TankUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TankUpdateOne) SetNillableName(v *string) *TankUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVolumeLiters sets the "volume_liters" field.
func (_u *TankUpdateOne) SetVolumeLiters(v float64) *TankUpdateOne {
	_u.mutation.ResetVolumeLiters()
	_u.mutation.SetVolumeLiters(v)
	return _u
}

// SetNillableVolumeLiters sets the "volume_liters" field if the given value is not nil.
func (_u *TankUpdateOne) SetNillableVolumeLiters(v *float64) *TankUpdateOne {
	if v != nil {
		_u.SetVolumeLiters(*v)
	}
	return _u
}

// AddVolumeLiters adds value to the "volume_liters" field.
func (_u *TankUpdateOne) AddVolumeLiters(v float64) *TankUpdateOne {
	_u.mutation.AddVolumeLiters(v)
	return _u
}

// ClearVolumeLiters clears the value of the "volume_liters" field.
func (_u *TankUpdateOne) ClearVolumeLiters() *TankUpdateOne {
	_u.mutation.ClearVolumeLiters()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TankUpdateOne) SetDescription(v string) *TankUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TankUpdateOne) SetNillableDescription(v *string) *TankUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TankUpdateOne) ClearDescription() *TankUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TankUpdateOne) SetCreatedAt(v time.Time) *TankUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TankUpdateOne) SetNillableCreatedAt(v *time.Time) *TankUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TankUpdateOne) SetUpdatedAt(v time.Time) *TankUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTestIDs adds the "tests" edge to the IcpTest entity by IDs.
func (_u *TankUpdateOne) AddTestIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.AddTestIDs(ids...)
	return _u
}

// AddTests adds the "tests" edges to the IcpTest entity.
func (_u *TankUpdateOne) AddTests(v ...*IcpTest) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestIDs(ids...)
}

// AddFileIDs adds the "files" edge to the ReportFile entity by IDs.
func (_u *TankUpdateOne) AddFileIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ReportFile entity.
func (_u *TankUpdateOne) AddFiles(v ...*ReportFile) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *TankUpdateOne) AddJobIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *TankUpdateOne) AddJobs(v ...*ParseJob) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TankMutation object of the builder.
func (_u *TankUpdateOne) Mutation() *TankMutation {
	return _u.mutation
}

// ClearTests clears all "tests" edges to the IcpTest entity.
func (_u *TankUpdateOne) ClearTests() *TankUpdateOne {
	_u.mutation.ClearTests()
	return _u
}

// RemoveTestIDs removes the "tests" edge to IcpTest entities by IDs.
func (_u *TankUpdateOne) RemoveTestIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.RemoveTestIDs(ids...)
	return _u
}

// RemoveTests removes "tests" edges to IcpTest entities.
func (_u *TankUpdateOne) RemoveTests(v ...*IcpTest) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestIDs(ids...)
}

// ClearFiles clears all "files" edges to the ReportFile entity.
func (_u *TankUpdateOne) ClearFiles() *TankUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ReportFile entities by IDs.
func (_u *TankUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ReportFile entities.
func (_u *TankUpdateOne) RemoveFiles(v ...*ReportFile) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *TankUpdateOne) ClearJobs() *TankUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *TankUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *TankUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *TankUpdateOne) RemoveJobs(v ...*ParseJob) *TankUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the TankUpdate builder.
func (_u *TankUpdateOne) Where(ps ...predicate.Tank) *TankUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TankUpdateOne) Select(field string, fields ...string) *TankUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tank entity.
func (_u *TankUpdateOne) Save(ctx context.Context) (*Tank, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TankUpdateOne) SaveX(ctx context.Context) *Tank {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TankUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TankUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TankUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tank.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TankUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tank.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tank.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TankUpdateOne) sqlSave(ctx context.Context) (_node *Tank, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tank.Table, tank.Columns, sqlgraph.NewFieldSpec(tank.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tank.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tank.FieldID)
		for _, f := range fields {
			if !tank.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tank.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tank.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VolumeLiters(); ok {
		_spec.SetField(tank.FieldVolumeLiters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolumeLiters(); ok {
		_spec.AddField(tank.FieldVolumeLiters, field.TypeFloat64, value)
	}
	if _u.mutation.VolumeLitersCleared() {
		_spec.ClearField(tank.FieldVolumeLiters, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tank.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tank.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tank.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tank.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestsIDs(); len(nodes) > 0 && !_u.mutation.TestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.TestsTable,
			Columns: []string{tank.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.FilesTable,
			Columns: []string{tank.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tank.JobsTable,
			Columns: []string{tank.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tank{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
