// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/salesrecord"
	"salestracker/gen/ent/tubmovement"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BranchQuery is the builder for querying Branch entities.
type BranchQuery struct {
	config
	ctx            *QueryContext
	order          []branch.OrderOption
	inters         []Interceptor
	predicates     []predicate.Branch
	withArea       *AreaQuery
	withSales      *SalesRecordQuery
	withBudgetDays *BudgetDayQuery
	withMovements  *TubMovementQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BranchQuery builder.
func (_q *BranchQuery) Where(ps ...predicate.Branch) *BranchQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BranchQuery) Limit(limit int) *BranchQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BranchQuery) Offset(offset int) *BranchQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BranchQuery) Unique(unique bool) *BranchQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BranchQuery) Order(o ...branch.OrderOption) *BranchQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryArea chains the current query on the "area" edge.
func (_q *BranchQuery) QueryArea() *AreaQuery {
	query := (&AreaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, selector),
			sqlgraph.To(area.Table, area.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, branch.AreaTable, branch.AreaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySales chains the current query on the "sales" edge.
func (_q *BranchQuery) QuerySales() *SalesRecordQuery {
	query := (&SalesRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, selector),
			sqlgraph.To(salesrecord.Table, salesrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.SalesTable, branch.SalesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBudgetDays chains the current query on the "budget_days" edge.
func (_q *BranchQuery) QueryBudgetDays() *BudgetDayQuery {
	query := (&BudgetDayClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, selector),
			sqlgraph.To(budgetday.Table, budgetday.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.BudgetDaysTable, branch.BudgetDaysColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMovements chains the current query on the "movements" edge.
func (_q *BranchQuery) QueryMovements() *TubMovementQuery {
	query := (&TubMovementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, selector),
			sqlgraph.To(tubmovement.Table, tubmovement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.MovementsTable, branch.MovementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Branch entity from the query.
// Returns a *NotFoundError when no Branch was found.
func (_q *BranchQuery) First(ctx context.Context) (*Branch, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{branch.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BranchQuery) FirstX(ctx context.Context) *Branch {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Branch ID from the query.
// Returns a *NotFoundError when no Branch ID was found.
func (_q *BranchQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{branch.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BranchQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Branch entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Branch entity is found.
// Returns a *NotFoundError when no Branch entities are found.
func (_q *BranchQuery) Only(ctx context.Context) (*Branch, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{branch.Label}
	default:
		return nil, &NotSingularError{branch.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BranchQuery) OnlyX(ctx context.Context) *Branch {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Branch ID in the query.
// Returns a *NotSingularError when more than one Branch ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BranchQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{branch.Label}
	default:
		err = &NotSingularError{branch.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BranchQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Branches.
func (_q *BranchQuery) All(ctx context.Context) ([]*Branch, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Branch, *BranchQuery]()
	return withInterceptors[[]*Branch](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BranchQuery) AllX(ctx context.Context) []*Branch {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Branch IDs.
func (_q *BranchQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(branch.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BranchQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BranchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BranchQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BranchQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BranchQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BranchQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BranchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BranchQuery) Clone() *BranchQuery {
	if _q == nil {
		return nil
	}
	return &BranchQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]branch.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Branch{}, _q.predicates...),
		withArea:       _q.withArea.Clone(),
		withSales:      _q.withSales.Clone(),
		withBudgetDays: _q.withBudgetDays.Clone(),
		withMovements:  _q.withMovements.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithArea tells the query-builder to eager-load the nodes that are connected to
// the "area" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BranchQuery) WithArea(opts ...func(*AreaQuery)) *BranchQuery {
	query := (&AreaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArea = query
	return _q
}

// WithSales tells the query-builder to eager-load the nodes that are connected to
// the "sales" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BranchQuery) WithSales(opts ...func(*SalesRecordQuery)) *BranchQuery {
	query := (&SalesRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSales = query
	return _q
}

// WithBudgetDays tells the query-builder to eager-load the nodes that are connected to
// the "budget_days" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BranchQuery) WithBudgetDays(opts ...func(*BudgetDayQuery)) *BranchQuery {
	query := (&BudgetDayClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBudgetDays = query
	return _q
}

// WithMovements tells the query-builder to eager-load the nodes that are connected to
// the "movements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BranchQuery) WithMovements(opts ...func(*TubMovementQuery)) *BranchQuery {
	query := (&TubMovementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMovements = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AreaID uuid.UUID `json:"area_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Branch.Query().
//		GroupBy(branch.FieldAreaID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BranchQuery) GroupBy(field string, fields ...string) *BranchGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BranchGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = branch.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AreaID uuid.UUID `json:"area_id,omitempty"`
//	}
//
//	client.Branch.Query().
//		Select(branch.FieldAreaID).
//		Scan(ctx, &v)
func (_q *BranchQuery) Select(fields ...string) *BranchSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BranchSelect{BranchQuery: _q}
	sbuild.label = branch.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BranchSelect configured with the given aggregations.
func (_q *BranchQuery) Aggregate(fns ...AggregateFunc) *BranchSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BranchQuery) prepareQuery(ctx context.Context) error {
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
		if !branch.ValidColumn(f) {
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

func (_q *BranchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Branch, error) {
	var (
		nodes       = []*Branch{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withArea != nil,
			_q.withSales != nil,
			_q.withBudgetDays != nil,
			_q.withMovements != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Branch).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Branch{config: _q.config}
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
	if query := _q.withArea; query != nil {
		if err := _q.loadArea(ctx, query, nodes, nil,
			func(n *Branch, e *Area) { n.Edges.Area = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSales; query != nil {
		if err := _q.loadSales(ctx, query, nodes,
			func(n *Branch) { n.Edges.Sales = []*SalesRecord{} },
			func(n *Branch, e *SalesRecord) { n.Edges.Sales = append(n.Edges.Sales, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBudgetDays; query != nil {
		if err := _q.loadBudgetDays(ctx, query, nodes,
			func(n *Branch) { n.Edges.BudgetDays = []*BudgetDay{} },
			func(n *Branch, e *BudgetDay) { n.Edges.BudgetDays = append(n.Edges.BudgetDays, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMovements; query != nil {
		if err := _q.loadMovements(ctx, query, nodes,
			func(n *Branch) { n.Edges.Movements = []*TubMovement{} },
			func(n *Branch, e *TubMovement) { n.Edges.Movements = append(n.Edges.Movements, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BranchQuery) loadArea(ctx context.Context, query *AreaQuery, nodes []*Branch, init func(*Branch), assign func(*Branch, *Area)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Branch)
	for i := range nodes {
		fk := nodes[i].AreaID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(area.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "area_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BranchQuery) loadSales(ctx context.Context, query *SalesRecordQuery, nodes []*Branch, init func(*Branch), assign func(*Branch, *SalesRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Branch)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(salesrecord.FieldBranchID)
	}
	query.Where(predicate.SalesRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(branch.SalesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BranchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "branch_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BranchQuery) loadBudgetDays(ctx context.Context, query *BudgetDayQuery, nodes []*Branch, init func(*Branch), assign func(*Branch, *BudgetDay)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Branch)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(budgetday.FieldBranchID)
	}
	query.Where(predicate.BudgetDay(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(branch.BudgetDaysColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BranchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "branch_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BranchQuery) loadMovements(ctx context.Context, query *TubMovementQuery, nodes []*Branch, init func(*Branch), assign func(*Branch, *TubMovement)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Branch)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(tubmovement.FieldBranchID)
	}
	query.Where(predicate.TubMovement(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(branch.MovementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BranchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "branch_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BranchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BranchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(branch.Table, branch.Columns, sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, branch.FieldID)
		for i := range fields {
			if fields[i] != branch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withArea != nil {
			_spec.Node.AddColumnOnce(branch.FieldAreaID)
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

func (_q *BranchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(branch.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = branch.Columns
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

// BranchGroupBy is the group-by builder for Branch entities.
type BranchGroupBy struct {
	selector
	build *BranchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BranchGroupBy) Aggregate(fns ...AggregateFunc) *BranchGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BranchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BranchQuery, *BranchGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BranchGroupBy) sqlScan(ctx context.Context, root *BranchQuery, v any) error {
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

// BranchSelect is the builder for selecting fields of Branch entities.
type BranchSelect struct {
	*BranchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BranchSelect) Aggregate(fns ...AggregateFunc) *BranchSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BranchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BranchQuery, *BranchSelect](ctx, _s.BranchQuery, _s, _s.inters, v)
}

func (_s *BranchSelect) sqlScan(ctx context.Context, root *BranchQuery, v any) error {
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
