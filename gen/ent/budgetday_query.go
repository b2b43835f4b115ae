// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/predicate"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BudgetDayQuery is the builder for querying BudgetDay entities.
type BudgetDayQuery struct {
	config
	ctx        *QueryContext
	order      []budgetday.OrderOption
	inters     []Interceptor
	predicates []predicate.BudgetDay
	withBranch *BranchQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BudgetDayQuery builder.
func (_q *BudgetDayQuery) Where(ps ...predicate.BudgetDay) *BudgetDayQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BudgetDayQuery) Limit(limit int) *BudgetDayQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BudgetDayQuery) Offset(offset int) *BudgetDayQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BudgetDayQuery) Unique(unique bool) *BudgetDayQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BudgetDayQuery) Order(o ...budgetday.OrderOption) *BudgetDayQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBranch chains the current query on the "branch" edge.
func (_q *BudgetDayQuery) QueryBranch() *BranchQuery {
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
			sqlgraph.From(budgetday.Table, budgetday.FieldID, selector),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, budgetday.BranchTable, budgetday.BranchColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BudgetDay entity from the query.
// Returns a *NotFoundError when no BudgetDay was found.
func (_q *BudgetDayQuery) First(ctx context.Context) (*BudgetDay, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{budgetday.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BudgetDayQuery) FirstX(ctx context.Context) *BudgetDay {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BudgetDay ID from the query.
// Returns a *NotFoundError when no BudgetDay ID was found.
func (_q *BudgetDayQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{budgetday.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BudgetDayQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BudgetDay entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BudgetDay entity is found.
// Returns a *NotFoundError when no BudgetDay entities are found.
func (_q *BudgetDayQuery) Only(ctx context.Context) (*BudgetDay, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{budgetday.Label}
	default:
		return nil, &NotSingularError{budgetday.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BudgetDayQuery) OnlyX(ctx context.Context) *BudgetDay {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BudgetDay ID in the query.
// Returns a *NotSingularError when more than one BudgetDay ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BudgetDayQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{budgetday.Label}
	default:
		err = &NotSingularError{budgetday.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BudgetDayQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BudgetDays.
func (_q *BudgetDayQuery) All(ctx context.Context) ([]*BudgetDay, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BudgetDay, *BudgetDayQuery]()
	return withInterceptors[[]*BudgetDay](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BudgetDayQuery) AllX(ctx context.Context) []*BudgetDay {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BudgetDay IDs.
func (_q *BudgetDayQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(budgetday.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BudgetDayQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BudgetDayQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BudgetDayQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BudgetDayQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BudgetDayQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BudgetDayQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BudgetDayQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BudgetDayQuery) Clone() *BudgetDayQuery {
	if _q == nil {
		return nil
	}
	return &BudgetDayQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]budgetday.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.BudgetDay{}, _q.predicates...),
		withBranch: _q.withBranch.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBranch tells the query-builder to eager-load the nodes that are connected to
// the "branch" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BudgetDayQuery) WithBranch(opts ...func(*BranchQuery)) *BudgetDayQuery {
	query := (&BranchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBranch = query
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
//	client.BudgetDay.Query().
//		GroupBy(budgetday.FieldBranchID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BudgetDayQuery) GroupBy(field string, fields ...string) *BudgetDayGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BudgetDayGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = budgetday.Label
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
//	client.BudgetDay.Query().
//		Select(budgetday.FieldBranchID).
//		Scan(ctx, &v)
func (_q *BudgetDayQuery) Select(fields ...string) *BudgetDaySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BudgetDaySelect{BudgetDayQuery: _q}
	sbuild.label = budgetday.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BudgetDaySelect configured with the given aggregations.
func (_q *BudgetDayQuery) Aggregate(fns ...AggregateFunc) *BudgetDaySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BudgetDayQuery) prepareQuery(ctx context.Context) error {
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
		if !budgetday.ValidColumn(f) {
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

func (_q *BudgetDayQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BudgetDay, error) {
	var (
		nodes       = []*BudgetDay{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withBranch != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BudgetDay).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BudgetDay{config: _q.config}
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
			func(n *BudgetDay, e *Branch) { n.Edges.Branch = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BudgetDayQuery) loadBranch(ctx context.Context, query *BranchQuery, nodes []*BudgetDay, init func(*BudgetDay), assign func(*BudgetDay, *Branch)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BudgetDay)
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

func (_q *BudgetDayQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BudgetDayQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(budgetday.Table, budgetday.Columns, sqlgraph.NewFieldSpec(budgetday.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetday.FieldID)
		for i := range fields {
			if fields[i] != budgetday.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBranch != nil {
			_spec.Node.AddColumnOnce(budgetday.FieldBranchID)
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

func (_q *BudgetDayQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(budgetday.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = budgetday.Columns
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

// BudgetDayGroupBy is the group-by builder for BudgetDay entities.
type BudgetDayGroupBy struct {
	selector
	build *BudgetDayQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BudgetDayGroupBy) Aggregate(fns ...AggregateFunc) *BudgetDayGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BudgetDayGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BudgetDayQuery, *BudgetDayGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BudgetDayGroupBy) sqlScan(ctx context.Context, root *BudgetDayQuery, v any) error {
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

// BudgetDaySelect is the builder for selecting fields of BudgetDay entities.
type BudgetDaySelect struct {
	*BudgetDayQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BudgetDaySelect) Aggregate(fns ...AggregateFunc) *BudgetDaySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BudgetDaySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BudgetDayQuery, *BudgetDaySelect](ctx, _s.BudgetDayQuery, _s, _s.inters, v)
}

func (_s *BudgetDaySelect) sqlScan(ctx context.Context, root *BudgetDayQuery, v any) error {
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
