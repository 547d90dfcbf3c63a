// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/predicate"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// IcpTestQuery is the builder for querying IcpTest entities.
type IcpTestQuery struct {
	config
	ctx        *QueryContext
	order      []icptest.OrderOption
	inters     []Interceptor
	predicates []predicate.IcpTest
	withTank   *TankQuery
	withFile   *ReportFileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IcpTestQuery builder.
func (_q *IcpTestQuery) Where(ps ...predicate.IcpTest) *IcpTestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *IcpTestQuery) Limit(limit int) *IcpTestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *IcpTestQuery) Offset(offset int) *IcpTestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *IcpTestQuery) Unique(unique bool) *IcpTestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *IcpTestQuery) Order(o ...icptest.OrderOption) *IcpTestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTank chains the current query on the "tank" edge.
func (_q *IcpTestQuery) QueryTank() *TankQuery {
	query := (&TankClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(icptest.Table, icptest.FieldID, selector),
			sqlgraph.To(tank.Table, tank.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, icptest.TankTable, icptest.TankColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFile chains the current query on the "file" edge.
func (_q *IcpTestQuery) QueryFile() *ReportFileQuery {
	query := (&ReportFileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(icptest.Table, icptest.FieldID, selector),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, icptest.FileTable, icptest.FileColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first IcpTest entity from the query.
// Returns a *NotFoundError when no IcpTest was found.
func (_q *IcpTestQuery) First(ctx context.Context) (*IcpTest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{icptest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *IcpTestQuery) FirstX(ctx context.Context) *IcpTest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IcpTest ID from the query.
// Returns a *NotFoundError when no IcpTest ID was found.
func (_q *IcpTestQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{icptest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *IcpTestQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IcpTest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IcpTest entity is found.
// Returns a *NotFoundError when no IcpTest entities are found.
func (_q *IcpTestQuery) Only(ctx context.Context) (*IcpTest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{icptest.Label}
	default:
		return nil, &NotSingularError{icptest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *IcpTestQuery) OnlyX(ctx context.Context) *IcpTest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IcpTest ID in the query.
// Returns a *NotSingularError when more than one IcpTest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *IcpTestQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{icptest.Label}
	default:
		err = &NotSingularError{icptest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *IcpTestQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IcpTests.
func (_q *IcpTestQuery) All(ctx context.Context) ([]*IcpTest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IcpTest, *IcpTestQuery]()
	return withInterceptors[[]*IcpTest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *IcpTestQuery) AllX(ctx context.Context) []*IcpTest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IcpTest IDs.
func (_q *IcpTestQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(icptest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *IcpTestQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *IcpTestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*IcpTestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *IcpTestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *IcpTestQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *IcpTestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IcpTestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *IcpTestQuery) Clone() *IcpTestQuery {
	if _q == nil {
		return nil
	}
	return &IcpTestQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]icptest.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.IcpTest{}, _q.predicates...),
		withTank:   _q.withTank.Clone(),
		withFile:   _q.withFile.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTank tells the query-builder to eager-load the nodes that are connected to
// the "tank" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IcpTestQuery) WithTank(opts ...func(*TankQuery)) *IcpTestQuery {
	query := (&TankClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTank = query
	return _q
}

// WithFile tells the query-builder to eager-load the nodes that are connected to
// the "file" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IcpTestQuery) WithFile(opts ...func(*ReportFileQuery)) *IcpTestQuery {
	query := (&ReportFileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFile = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TankID uuid.UUID `json:"tank_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IcpTest.Query().
//		GroupBy(icptest.FieldTankID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *IcpTestQuery) GroupBy(field string, fields ...string) *IcpTestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IcpTestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = icptest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TankID uuid.UUID `json:"tank_id,omitempty"`
//	}
//
//	client.IcpTest.Query().
//		Select(icptest.FieldTankID).
//		Scan(ctx, &v)
func (_q *IcpTestQuery) Select(fields ...string) *IcpTestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &IcpTestSelect{IcpTestQuery: _q}
	sbuild.label = icptest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IcpTestSelect configured with the given aggregations.
func (_q *IcpTestQuery) Aggregate(fns ...AggregateFunc) *IcpTestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *IcpTestQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !icptest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *IcpTestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IcpTest, error) {
	var (
		nodes       = []*IcpTest{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withTank != nil,
			_q.withFile != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IcpTest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IcpTest{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTank; query != nil {
		if err := _q.loadTank(ctx, query, nodes, nil,
			func(n *IcpTest, e *Tank) { n.Edges.Tank = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFile; query != nil {
		if err := _q.loadFile(ctx, query, nodes, nil,
			func(n *IcpTest, e *ReportFile) { n.Edges.File = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *IcpTestQuery) loadTank(ctx context.Context, query *TankQuery, nodes []*IcpTest, init func(*IcpTest), assign func(*IcpTest, *Tank)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*IcpTest)
	for i := range nodes {
		fk := nodes[i].TankID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(tank.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tank_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *IcpTestQuery) loadFile(ctx context.Context, query *ReportFileQuery, nodes []*IcpTest, init func(*IcpTest), assign func(*IcpTest, *ReportFile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*IcpTest)
	for i := range nodes {
		if nodes[i].FileID == nil {
			continue
		}
		fk := *nodes[i].FileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(reportfile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "file_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *IcpTestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *IcpTestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(icptest.Table, icptest.Columns, sqlgraph.NewFieldSpec(icptest.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, icptest.FieldID)
		for i := range fields {
			if fields[i] != icptest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTank != nil {
			_spec.Node.AddColumnOnce(icptest.FieldTankID)
		}
		if _q.withFile != nil {
			_spec.Node.AddColumnOnce(icptest.FieldFileID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *IcpTestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(icptest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = icptest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IcpTestGroupBy is the group-by builder for IcpTest entities.
type IcpTestGroupBy struct {
	selector
	build *IcpTestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *IcpTestGroupBy) Aggregate(fns ...AggregateFunc) *IcpTestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *IcpTestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IcpTestQuery, *IcpTestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *IcpTestGroupBy) sqlScan(ctx context.Context, root *IcpTestQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IcpTestSelect is the builder for selecting fields of IcpTest entities.
type IcpTestSelect struct {
	*IcpTestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *IcpTestSelect) Aggregate(fns ...AggregateFunc) *IcpTestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *IcpTestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IcpTestQuery, *IcpTestSelect](ctx, _s.IcpTestQuery, _s, _s.inters, v)
}

func (_s *IcpTestSelect) sqlScan(ctx context.Context, root *IcpTestQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
