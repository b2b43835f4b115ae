// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/territory"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AreaQuery is the builder for querying Area entities.
type AreaQuery struct {
	config
	ctx           *QueryContext
	order         []area.OrderOption
	inters        []Interceptor
	predicates    []predicate.Area
	withTerritory *TerritoryQuery
	withBranches  *BranchQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AreaQuery builder.
func (_q *AreaQuery) Where(ps ...predicate.Area) *AreaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AreaQuery) Limit(limit int) *AreaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AreaQuery) Offset(offset int) *AreaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AreaQuery) Unique(unique bool) *AreaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AreaQuery) Order(o ...area.OrderOption) *AreaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTerritory chains the current query on the "territory" edge.
func (_q *AreaQuery) QueryTerritory() *TerritoryQuery {
	query := (&TerritoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(area.Table, area.FieldID, selector),
			sqlgraph.To(territory.Table, territory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, area.TerritoryTable, area.TerritoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBranches chains the current query on the "branches" edge.
func (_q *AreaQuery) QueryBranches() *BranchQuery {
	query := (&BranchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(area.Table, area.FieldID, selector),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, area.BranchesTable, area.BranchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Area entity from the query.
// Returns a *NotFoundError when no Area was found.
func (_q *AreaQuery) First(ctx context.Context) (*Area, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{area.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AreaQuery) FirstX(ctx context.Context) *Area {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Area ID from the query.
// Returns a *NotFoundError when no Area ID was found.
func (_q *AreaQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{area.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AreaQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Area entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Area entity is found.
// Returns a *NotFoundError when no Area entities are found.
func (_q *AreaQuery) Only(ctx context.Context) (*Area, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{area.Label}
	default:
		return nil, &NotSingularError{area.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AreaQuery) OnlyX(ctx context.Context) *Area {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Area ID in the query.
// Returns a *NotSingularError when more than one Area ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AreaQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{area.Label}
	default:
		err = &NotSingularError{area.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AreaQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Areas.
func (_q *AreaQuery) All(ctx context.Context) ([]*Area, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Area, *AreaQuery]()
	return withInterceptors[[]*Area](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AreaQuery) AllX(ctx context.Context) []*Area {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Area IDs.
func (_q *AreaQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(area.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AreaQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AreaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AreaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AreaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AreaQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AreaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AreaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AreaQuery) Clone() *AreaQuery {
	if _q == nil {
		return nil
	}
	return &AreaQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]area.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Area{}, _q.predicates...),
		withTerritory: _q.withTerritory.Clone(),
		withBranches:  _q.withBranches.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTerritory tells the query-builder to eager-load the nodes that are connected to
// the "territory" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AreaQuery) WithTerritory(opts ...func(*TerritoryQuery)) *AreaQuery {
	query := (&TerritoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTerritory = query
	return _q
}

// WithBranches tells the query-builder to eager-load the nodes that are connected to
// the "branches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AreaQuery) WithBranches(opts ...func(*BranchQuery)) *AreaQuery {
	query := (&BranchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBranches = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TerritoryID uuid.UUID `json:"territory_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Area.Query().
//		GroupBy(area.FieldTerritoryID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AreaQuery) GroupBy(field string, fields ...string) *AreaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AreaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = area.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TerritoryID uuid.UUID `json:"territory_id,omitempty"`
//	}
//
//	client.Area.Query().
//		Select(area.FieldTerritoryID).
//		Scan(ctx, &v)
func (_q *AreaQuery) Select(fields ...string) *AreaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AreaSelect{AreaQuery: _q}
	sbuild.label = area.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AreaSelect configured with the given aggregations.
func (_q *AreaQuery) Aggregate(fns ...AggregateFunc) *AreaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AreaQuery) prepareQuery(ctx context.Context) error {
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
		if !area.ValidColumn(f) {
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

func (_q *AreaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Area, error) {
	var (
		nodes       = []*Area{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withTerritory != nil,
			_q.withBranches != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Area).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Area{config: _q.config}
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
	if query := _q.withTerritory; query != nil {
		if err := _q.loadTerritory(ctx, query, nodes, nil,
			func(n *Area, e *Territory) { n.Edges.Territory = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBranches; query != nil {
		if err := _q.loadBranches(ctx, query, nodes,
			func(n *Area) { n.Edges.Branches = []*Branch{} },
			func(n *Area, e *Branch) { n.Edges.Branches = append(n.Edges.Branches, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AreaQuery) loadTerritory(ctx context.Context, query *TerritoryQuery, nodes []*Area, init func(*Area), assign func(*Area, *Territory)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Area)
	for i := range nodes {
		fk := nodes[i].TerritoryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(territory.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "territory_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AreaQuery) loadBranches(ctx context.Context, query *BranchQuery, nodes []*Area, init func(*Area), assign func(*Area, *Branch)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Area)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(branch.FieldAreaID)
	}
	query.Where(predicate.Branch(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(area.BranchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AreaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "area_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AreaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AreaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(area.Table, area.Columns, sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, area.FieldID)
		for i := range fields {
			if fields[i] != area.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTerritory != nil {
			_spec.Node.AddColumnOnce(area.FieldTerritoryID)
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

func (_q *AreaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(area.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = area.Columns
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

// AreaGroupBy is the group-by builder for Area entities.
type AreaGroupBy struct {
	selector
	build *AreaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AreaGroupBy) Aggregate(fns ...AggregateFunc) *AreaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AreaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AreaQuery, *AreaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AreaGroupBy) sqlScan(ctx context.Context, root *AreaQuery, v any) error {
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

// AreaSelect is the builder for selecting fields of Area entities.
type AreaSelect struct {
	*AreaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AreaSelect) Aggregate(fns ...AggregateFunc) *AreaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AreaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AreaQuery, *AreaSelect](ctx, _s.AreaQuery, _s, _s.inters, v)
}

func (_s *AreaSelect) sqlScan(ctx context.Context, root *AreaQuery, v any) error {
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
