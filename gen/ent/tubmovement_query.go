// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/tubmovement"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TubMovementQuery is the builder for querying TubMovement entities.
type TubMovementQuery struct {
	config
	ctx        *QueryContext
	order      []tubmovement.OrderOption
	inters     []Interceptor
	predicates []predicate.TubMovement
	withBranch *BranchQuery
	withFlavor *FlavorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TubMovementQuery builder.
func (_q *TubMovementQuery) Where(ps ...predicate.TubMovement) *TubMovementQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TubMovementQuery) Limit(limit int) *TubMovementQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TubMovementQuery) Offset(offset int) *TubMovementQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TubMovementQuery) Unique(unique bool) *TubMovementQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TubMovementQuery) Order(o ...tubmovement.OrderOption) *TubMovementQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBranch chains the current query on the "branch" edge.
func (_q *TubMovementQuery) QueryBranch() *BranchQuery {
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
			sqlgraph.From(tubmovement.Table, tubmovement.FieldID, selector),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tubmovement.BranchTable, tubmovement.BranchColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFlavor chains the current query on the "flavor" edge.
func (_q *TubMovementQuery) QueryFlavor() *FlavorQuery {
	query := (&FlavorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(tubmovement.Table, tubmovement.FieldID, selector),
			sqlgraph.To(flavor.Table, flavor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tubmovement.FlavorTable, tubmovement.FlavorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TubMovement entity from the query.
// Returns a *NotFoundError when no TubMovement was found.
func (_q *TubMovementQuery) First(ctx context.Context) (*TubMovement, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tubmovement.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TubMovementQuery) FirstX(ctx context.Context) *TubMovement {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TubMovement ID from the query.
// Returns a *NotFoundError when no TubMovement ID was found.
func (_q *TubMovementQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tubmovement.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TubMovementQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TubMovement entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TubMovement entity is found.
// Returns a *NotFoundError when no TubMovement entities are found.
func (_q *TubMovementQuery) Only(ctx context.Context) (*TubMovement, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tubmovement.Label}
	default:
		return nil, &NotSingularError{tubmovement.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TubMovementQuery) OnlyX(ctx context.Context) *TubMovement {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TubMovement ID in the query.
// Returns a *NotSingularError when more than one TubMovement ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TubMovementQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tubmovement.Label}
	default:
		err = &NotSingularError{tubmovement.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TubMovementQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TubMovements.
func (_q *TubMovementQuery) All(ctx context.Context) ([]*TubMovement, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TubMovement, *TubMovementQuery]()
	return withInterceptors[[]*TubMovement](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TubMovementQuery) AllX(ctx context.Context) []*TubMovement {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TubMovement IDs.
func (_q *TubMovementQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(tubmovement.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TubMovementQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TubMovementQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TubMovementQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TubMovementQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TubMovementQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TubMovementQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TubMovementQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TubMovementQuery) Clone() *TubMovementQuery {
	if _q == nil {
		return nil
	}
	return &TubMovementQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]tubmovement.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TubMovement{}, _q.predicates...),
		withBranch: _q.withBranch.Clone(),
		withFlavor: _q.withFlavor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBranch tells the query-builder to eager-load the nodes that are connected to
// the "branch" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TubMovementQuery) WithBranch(opts ...func(*BranchQuery)) *TubMovementQuery {
	query := (&BranchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBranch = query
	return _q
}

// WithFlavor tells the query-builder to eager-load the nodes that are connected to
// the "flavor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TubMovementQuery) WithFlavor(opts ...func(*FlavorQuery)) *TubMovementQuery {
	query := (&FlavorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFlavor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BranchID uuid.UUID `json:"branch_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TubMovement.Query().
//		GroupBy(tubmovement.FieldBranchID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TubMovementQuery) GroupBy(field string, fields ...string) *TubMovementGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TubMovementGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = tubmovement.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BranchID uuid.UUID `json:"branch_id,omitempty"`
//	}
//
//	client.TubMovement.Query().
//		Select(tubmovement.FieldBranchID).
//		Scan(ctx, &v)
func (_q *TubMovementQuery) Select(fields ...string) *TubMovementSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TubMovementSelect{TubMovementQuery: _q}
	sbuild.label = tubmovement.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TubMovementSelect configured with the given aggregations.
func (_q *TubMovementQuery) Aggregate(fns ...AggregateFunc) *TubMovementSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TubMovementQuery) prepareQuery(ctx context.Context) error {
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
		if !tubmovement.ValidColumn(f) {
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

func (_q *TubMovementQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TubMovement, error) {
	var (
		nodes       = []*TubMovement{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBranch != nil,
			_q.withFlavor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TubMovement).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TubMovement{config: _q.config}
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
	if query := _q.withBranch; query != nil {
		if err := _q.loadBranch(ctx, query, nodes, nil,
			func(n *TubMovement, e *Branch) { n.Edges.Branch = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFlavor; query != nil {
		if err := _q.loadFlavor(ctx, query, nodes, nil,
			func(n *TubMovement, e *Flavor) { n.Edges.Flavor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TubMovementQuery) loadBranch(ctx context.Context, query *BranchQuery, nodes []*TubMovement, init func(*TubMovement), assign func(*TubMovement, *Branch)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TubMovement)
	for i := range nodes {
		fk := nodes[i].BranchID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(branch.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "branch_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TubMovementQuery) loadFlavor(ctx context.Context, query *FlavorQuery, nodes []*TubMovement, init func(*TubMovement), assign func(*TubMovement, *Flavor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TubMovement)
	for i := range nodes {
		fk := nodes[i].FlavorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(flavor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "flavor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TubMovementQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TubMovementQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tubmovement.Table, tubmovement.Columns, sqlgraph.NewFieldSpec(tubmovement.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tubmovement.FieldID)
		for i := range fields {
			if fields[i] != tubmovement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBranch != nil {
			_spec.Node.AddColumnOnce(tubmovement.FieldBranchID)
		}
		if _q.withFlavor != nil {
			_spec.Node.AddColumnOnce(tubmovement.FieldFlavorID)
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

func (_q *TubMovementQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(tubmovement.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = tubmovement.Columns
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

// TubMovementGroupBy is the group-by builder for TubMovement entities.
type TubMovementGroupBy struct {
	selector
	build *TubMovementQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TubMovementGroupBy) Aggregate(fns ...AggregateFunc) *TubMovementGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TubMovementGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TubMovementQuery, *TubMovementGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TubMovementGroupBy) sqlScan(ctx context.Context, root *TubMovementQuery, v any) error {
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

// TubMovementSelect is the builder for selecting fields of TubMovement entities.
type TubMovementSelect struct {
	*TubMovementQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TubMovementSelect) Aggregate(fns ...AggregateFunc) *TubMovementSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TubMovementSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TubMovementQuery, *TubMovementSelect](ctx, _s.TubMovementQuery, _s, _s.inters, v)
}

func (_s *TubMovementSelect) sqlScan(ctx context.Context, root *TubMovementQuery, v any) error {
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
