// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"salestracker/gen/ent/migrate"

	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/salesrecord"
	"salestracker/gen/ent/territory"
	"salestracker/gen/ent/tubmovement"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Area is the client for interacting with the Area builders.
	Area *AreaClient
	// Branch is the client for interacting with the Branch builders.
	Branch *BranchClient
	// BudgetDay is the client for interacting with the BudgetDay builders.
	BudgetDay *BudgetDayClient
	// Flavor is the client for interacting with the Flavor builders.
	Flavor *FlavorClient
	// SalesRecord is the client for interacting with the SalesRecord builders.
	SalesRecord *SalesRecordClient
	// Territory is the client for interacting with the Territory builders.
	Territory *TerritoryClient
	// TubMovement is the client for interacting with the TubMovement builders.
	TubMovement *TubMovementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Area = NewAreaClient(c.config)
	c.Branch = NewBranchClient(c.config)
	c.BudgetDay = NewBudgetDayClient(c.config)
	c.Flavor = NewFlavorClient(c.config)
	c.SalesRecord = NewSalesRecordClient(c.config)
	c.Territory = NewTerritoryClient(c.config)
	c.TubMovement = NewTubMovementClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Area:        NewAreaClient(cfg),
		Branch:      NewBranchClient(cfg),
		BudgetDay:   NewBudgetDayClient(cfg),
		Flavor:      NewFlavorClient(cfg),
		SalesRecord: NewSalesRecordClient(cfg),
		Territory:   NewTerritoryClient(cfg),
		TubMovement: NewTubMovementClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Area:        NewAreaClient(cfg),
		Branch:      NewBranchClient(cfg),
		BudgetDay:   NewBudgetDayClient(cfg),
		Flavor:      NewFlavorClient(cfg),
		SalesRecord: NewSalesRecordClient(cfg),
		Territory:   NewTerritoryClient(cfg),
		TubMovement: NewTubMovementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Area.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Area, c.Branch, c.BudgetDay, c.Flavor, c.SalesRecord, c.Territory,
		c.TubMovement,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Area, c.Branch, c.BudgetDay, c.Flavor, c.SalesRecord, c.Territory,
		c.TubMovement,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AreaMutation:
		return c.Area.mutate(ctx, m)
	case *BranchMutation:
		return c.Branch.mutate(ctx, m)
	case *BudgetDayMutation:
		return c.BudgetDay.mutate(ctx, m)
	case *FlavorMutation:
		return c.Flavor.mutate(ctx, m)
	case *SalesRecordMutation:
		return c.SalesRecord.mutate(ctx, m)
	case *TerritoryMutation:
		return c.Territory.mutate(ctx, m)
	case *TubMovementMutation:
		return c.TubMovement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AreaClient is a client for the Area schema.
type AreaClient struct {
	config
}

// NewAreaClient returns a client for the Area from the given config.
func NewAreaClient(c config) *AreaClient {
	return &AreaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `area.Hooks(f(g(h())))`.
func (c *AreaClient) Use(hooks ...Hook) {
	c.hooks.Area = append(c.hooks.Area, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `area.Intercept(f(g(h())))`.
func (c *AreaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Area = append(c.inters.Area, interceptors...)
}

// Create returns a builder for creating a Area entity.
func (c *AreaClient) Create() *AreaCreate {
	mutation := newAreaMutation(c.config, OpCreate)
	return &AreaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Area entities.
func (c *AreaClient) CreateBulk(builders ...*AreaCreate) *AreaCreateBulk {
	return &AreaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AreaClient) MapCreateBulk(slice any, setFunc func(*AreaCreate, int)) *AreaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AreaCreateBulk{err: fmt.Errorf("calling to AreaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AreaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AreaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Area.
func (c *AreaClient) Update() *AreaUpdate {
	mutation := newAreaMutation(c.config, OpUpdate)
	return &AreaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AreaClient) UpdateOne(_m *Area) *AreaUpdateOne {
	mutation := newAreaMutation(c.config, OpUpdateOne, withArea(_m))
	return &AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AreaClient) UpdateOneID(id uuid.UUID) *AreaUpdateOne {
	mutation := newAreaMutation(c.config, OpUpdateOne, withAreaID(id))
	return &AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Area.
func (c *AreaClient) Delete() *AreaDelete {
	mutation := newAreaMutation(c.config, OpDelete)
	return &AreaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AreaClient) DeleteOne(_m *Area) *AreaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AreaClient) DeleteOneID(id uuid.UUID) *AreaDeleteOne {
	builder := c.Delete().Where(area.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AreaDeleteOne{builder}
}

// Query returns a query builder for Area.
func (c *AreaClient) Query() *AreaQuery {
	return &AreaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArea},
		inters: c.Interceptors(),
	}
}

// Get returns a Area entity by its id.
func (c *AreaClient) Get(ctx context.Context, id uuid.UUID) (*Area, error) {
	return c.Query().Where(area.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AreaClient) GetX(ctx context.Context, id uuid.UUID) *Area {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTerritory queries the territory edge of a Area.
func (c *AreaClient) QueryTerritory(_m *Area) *TerritoryQuery {
	query := (&TerritoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(area.Table, area.FieldID, id),
			sqlgraph.To(territory.Table, territory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, area.TerritoryTable, area.TerritoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBranches queries the branches edge of a Area.
func (c *AreaClient) QueryBranches(_m *Area) *BranchQuery {
	query := (&BranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(area.Table, area.FieldID, id),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, area.BranchesTable, area.BranchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AreaClient) Hooks() []Hook {
	return c.hooks.Area
}

// Interceptors returns the client interceptors.
func (c *AreaClient) Interceptors() []Interceptor {
	return c.inters.Area
}

func (c *AreaClient) mutate(ctx context.Context, m *AreaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AreaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AreaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AreaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Area mutation op: %q", m.Op())
	}
}

// BranchClient is a client for the Branch schema.
type BranchClient struct {
	config
}

// NewBranchClient returns a client for the Branch from the given config.
func NewBranchClient(c config) *BranchClient {
	return &BranchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `branch.Hooks(f(g(h())))`.
func (c *BranchClient) Use(hooks ...Hook) {
	c.hooks.Branch = append(c.hooks.Branch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `branch.Intercept(f(g(h())))`.
func (c *BranchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Branch = append(c.inters.Branch, interceptors...)
}

// Create returns a builder for creating a Branch entity.
func (c *BranchClient) Create() *BranchCreate {
	mutation := newBranchMutation(c.config, OpCreate)
	return &BranchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Branch entities.
func (c *BranchClient) CreateBulk(builders ...*BranchCreate) *BranchCreateBulk {
	return &BranchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BranchClient) MapCreateBulk(slice any, setFunc func(*BranchCreate, int)) *BranchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BranchCreateBulk{err: fmt.Errorf("calling to BranchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BranchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BranchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Branch.
func (c *BranchClient) Update() *BranchUpdate {
	mutation := newBranchMutation(c.config, OpUpdate)
	return &BranchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BranchClient) UpdateOne(_m *Branch) *BranchUpdateOne {
	mutation := newBranchMutation(c.config, OpUpdateOne, withBranch(_m))
	return &BranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BranchClient) UpdateOneID(id uuid.UUID) *BranchUpdateOne {
	mutation := newBranchMutation(c.config, OpUpdateOne, withBranchID(id))
	return &BranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Branch.
func (c *BranchClient) Delete() *BranchDelete {
	mutation := newBranchMutation(c.config, OpDelete)
	return &BranchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BranchClient) DeleteOne(_m *Branch) *BranchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BranchClient) DeleteOneID(id uuid.UUID) *BranchDeleteOne {
	builder := c.Delete().Where(branch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BranchDeleteOne{builder}
}

// Query returns a query builder for Branch.
func (c *BranchClient) Query() *BranchQuery {
	return &BranchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBranch},
		inters: c.Interceptors(),
	}
}

// Get returns a Branch entity by its id.
func (c *BranchClient) Get(ctx context.Context, id uuid.UUID) (*Branch, error) {
	return c.Query().Where(branch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BranchClient) GetX(ctx context.Context, id uuid.UUID) *Branch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArea queries the area edge of a Branch.
func (c *BranchClient) QueryArea(_m *Branch) *AreaQuery {
	query := (&AreaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, id),
			sqlgraph.To(area.Table, area.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, branch.AreaTable, branch.AreaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySales queries the sales edge of a Branch.
func (c *BranchClient) QuerySales(_m *Branch) *SalesRecordQuery {
	query := (&SalesRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, id),
			sqlgraph.To(salesrecord.Table, salesrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.SalesTable, branch.SalesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBudgetDays queries the budget_days edge of a Branch.
func (c *BranchClient) QueryBudgetDays(_m *Branch) *BudgetDayQuery {
	query := (&BudgetDayClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, id),
			sqlgraph.To(budgetday.Table, budgetday.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.BudgetDaysTable, branch.BudgetDaysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMovements queries the movements edge of a Branch.
func (c *BranchClient) QueryMovements(_m *Branch) *TubMovementQuery {
	query := (&TubMovementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branch.Table, branch.FieldID, id),
			sqlgraph.To(tubmovement.Table, tubmovement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, branch.MovementsTable, branch.MovementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BranchClient) Hooks() []Hook {
	return c.hooks.Branch
}

// Interceptors returns the client interceptors.
func (c *BranchClient) Interceptors() []Interceptor {
	return c.inters.Branch
}

func (c *BranchClient) mutate(ctx context.Context, m *BranchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BranchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BranchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BranchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Branch mutation op: %q", m.Op())
	}
}

// BudgetDayClient is a client for the BudgetDay schema.
type BudgetDayClient struct {
	config
}

// NewBudgetDayClient returns a client for the BudgetDay from the given config.
func NewBudgetDayClient(c config) *BudgetDayClient {
	return &BudgetDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budgetday.Hooks(f(g(h())))`.
func (c *BudgetDayClient) Use(hooks ...Hook) {
	c.hooks.BudgetDay = append(c.hooks.BudgetDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budgetday.Intercept(f(g(h())))`.
func (c *BudgetDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.BudgetDay = append(c.inters.BudgetDay, interceptors...)
}

// Create returns a builder for creating a BudgetDay entity.
func (c *BudgetDayClient) Create() *BudgetDayCreate {
	mutation := newBudgetDayMutation(c.config, OpCreate)
	return &BudgetDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BudgetDay entities.
func (c *BudgetDayClient) CreateBulk(builders ...*BudgetDayCreate) *BudgetDayCreateBulk {
	return &BudgetDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetDayClient) MapCreateBulk(slice any, setFunc func(*BudgetDayCreate, int)) *BudgetDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetDayCreateBulk{err: fmt.Errorf("calling to BudgetDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BudgetDay.
func (c *BudgetDayClient) Update() *BudgetDayUpdate {
	mutation := newBudgetDayMutation(c.config, OpUpdate)
	return &BudgetDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetDayClient) UpdateOne(_m *BudgetDay) *BudgetDayUpdateOne {
	mutation := newBudgetDayMutation(c.config, OpUpdateOne, withBudgetDay(_m))
	return &BudgetDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetDayClient) UpdateOneID(id uuid.UUID) *BudgetDayUpdateOne {
	mutation := newBudgetDayMutation(c.config, OpUpdateOne, withBudgetDayID(id))
	return &BudgetDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BudgetDay.
func (c *BudgetDayClient) Delete() *BudgetDayDelete {
	mutation := newBudgetDayMutation(c.config, OpDelete)
	return &BudgetDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetDayClient) DeleteOne(_m *BudgetDay) *BudgetDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetDayClient) DeleteOneID(id uuid.UUID) *BudgetDayDeleteOne {
	builder := c.Delete().Where(budgetday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetDayDeleteOne{builder}
}

// Query returns a query builder for BudgetDay.
func (c *BudgetDayClient) Query() *BudgetDayQuery {
	return &BudgetDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudgetDay},
		inters: c.Interceptors(),
	}
}

// Get returns a BudgetDay entity by its id.
func (c *BudgetDayClient) Get(ctx context.Context, id uuid.UUID) (*BudgetDay, error) {
	return c.Query().Where(budgetday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetDayClient) GetX(ctx context.Context, id uuid.UUID) *BudgetDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBranch queries the branch edge of a BudgetDay.
func (c *BudgetDayClient) QueryBranch(_m *BudgetDay) *BranchQuery {
	query := (&BranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(budgetday.Table, budgetday.FieldID, id),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, budgetday.BranchTable, budgetday.BranchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BudgetDayClient) Hooks() []Hook {
	return c.hooks.BudgetDay
}

// Interceptors returns the client interceptors.
func (c *BudgetDayClient) Interceptors() []Interceptor {
	return c.inters.BudgetDay
}

func (c *BudgetDayClient) mutate(ctx context.Context, m *BudgetDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BudgetDay mutation op: %q", m.Op())
	}
}

// FlavorClient is a client for the Flavor schema.
type FlavorClient struct {
	config
}

// NewFlavorClient returns a client for the Flavor from the given config.
func NewFlavorClient(c config) *FlavorClient {
	return &FlavorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flavor.Hooks(f(g(h())))`.
func (c *FlavorClient) Use(hooks ...Hook) {
	c.hooks.Flavor = append(c.hooks.Flavor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flavor.Intercept(f(g(h())))`.
func (c *FlavorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flavor = append(c.inters.Flavor, interceptors...)
}

// Create returns a builder for creating a Flavor entity.
func (c *FlavorClient) Create() *FlavorCreate {
	mutation := newFlavorMutation(c.config, OpCreate)
	return &FlavorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flavor entities.
func (c *FlavorClient) CreateBulk(builders ...*FlavorCreate) *FlavorCreateBulk {
	return &FlavorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlavorClient) MapCreateBulk(slice any, setFunc func(*FlavorCreate, int)) *FlavorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlavorCreateBulk{err: fmt.Errorf("calling to FlavorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlavorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlavorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flavor.
func (c *FlavorClient) Update() *FlavorUpdate {
	mutation := newFlavorMutation(c.config, OpUpdate)
	return &FlavorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlavorClient) UpdateOne(_m *Flavor) *FlavorUpdateOne {
	mutation := newFlavorMutation(c.config, OpUpdateOne, withFlavor(_m))
	return &FlavorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlavorClient) UpdateOneID(id uuid.UUID) *FlavorUpdateOne {
	mutation := newFlavorMutation(c.config, OpUpdateOne, withFlavorID(id))
	return &FlavorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flavor.
func (c *FlavorClient) Delete() *FlavorDelete {
	mutation := newFlavorMutation(c.config, OpDelete)
	return &FlavorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlavorClient) DeleteOne(_m *Flavor) *FlavorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlavorClient) DeleteOneID(id uuid.UUID) *FlavorDeleteOne {
	builder := c.Delete().Where(flavor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlavorDeleteOne{builder}
}

// Query returns a query builder for Flavor.
func (c *FlavorClient) Query() *FlavorQuery {
	return &FlavorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlavor},
		inters: c.Interceptors(),
	}
}

// Get returns a Flavor entity by its id.
func (c *FlavorClient) Get(ctx context.Context, id uuid.UUID) (*Flavor, error) {
	return c.Query().Where(flavor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlavorClient) GetX(ctx context.Context, id uuid.UUID) *Flavor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMovements queries the movements edge of a Flavor.
func (c *FlavorClient) QueryMovements(_m *Flavor) *TubMovementQuery {
	query := (&TubMovementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flavor.Table, flavor.FieldID, id),
			sqlgraph.To(tubmovement.Table, tubmovement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, flavor.MovementsTable, flavor.MovementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlavorClient) Hooks() []Hook {
	return c.hooks.Flavor
}

// Interceptors returns the client interceptors.
func (c *FlavorClient) Interceptors() []Interceptor {
	return c.inters.Flavor
}

func (c *FlavorClient) mutate(ctx context.Context, m *FlavorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlavorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlavorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlavorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlavorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Flavor mutation op: %q", m.Op())
	}
}

// SalesRecordClient is a client for the SalesRecord schema.
type SalesRecordClient struct {
	config
}

// NewSalesRecordClient returns a client for the SalesRecord from the given config.
func NewSalesRecordClient(c config) *SalesRecordClient {
	return &SalesRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `salesrecord.Hooks(f(g(h())))`.
func (c *SalesRecordClient) Use(hooks ...Hook) {
	c.hooks.SalesRecord = append(c.hooks.SalesRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `salesrecord.Intercept(f(g(h())))`.
func (c *SalesRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SalesRecord = append(c.inters.SalesRecord, interceptors...)
}

// Create returns a builder for creating a SalesRecord entity.
func (c *SalesRecordClient) Create() *SalesRecordCreate {
	mutation := newSalesRecordMutation(c.config, OpCreate)
	return &SalesRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SalesRecord entities.
func (c *SalesRecordClient) CreateBulk(builders ...*SalesRecordCreate) *SalesRecordCreateBulk {
	return &SalesRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SalesRecordClient) MapCreateBulk(slice any, setFunc func(*SalesRecordCreate, int)) *SalesRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SalesRecordCreateBulk{err: fmt.Errorf("calling to SalesRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SalesRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SalesRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SalesRecord.
func (c *SalesRecordClient) Update() *SalesRecordUpdate {
	mutation := newSalesRecordMutation(c.config, OpUpdate)
	return &SalesRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SalesRecordClient) UpdateOne(_m *SalesRecord) *SalesRecordUpdateOne {
	mutation := newSalesRecordMutation(c.config, OpUpdateOne, withSalesRecord(_m))
	return &SalesRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SalesRecordClient) UpdateOneID(id uuid.UUID) *SalesRecordUpdateOne {
	mutation := newSalesRecordMutation(c.config, OpUpdateOne, withSalesRecordID(id))
	return &SalesRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SalesRecord.
func (c *SalesRecordClient) Delete() *SalesRecordDelete {
	mutation := newSalesRecordMutation(c.config, OpDelete)
	return &SalesRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SalesRecordClient) DeleteOne(_m *SalesRecord) *SalesRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SalesRecordClient) DeleteOneID(id uuid.UUID) *SalesRecordDeleteOne {
	builder := c.Delete().Where(salesrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SalesRecordDeleteOne{builder}
}

// Query returns a query builder for SalesRecord.
func (c *SalesRecordClient) Query() *SalesRecordQuery {
	return &SalesRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSalesRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SalesRecord entity by its id.
func (c *SalesRecordClient) Get(ctx context.Context, id uuid.UUID) (*SalesRecord, error) {
	return c.Query().Where(salesrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SalesRecordClient) GetX(ctx context.Context, id uuid.UUID) *SalesRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBranch queries the branch edge of a SalesRecord.
func (c *SalesRecordClient) QueryBranch(_m *SalesRecord) *BranchQuery {
	query := (&BranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(salesrecord.Table, salesrecord.FieldID, id),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, salesrecord.BranchTable, salesrecord.BranchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SalesRecordClient) Hooks() []Hook {
	return c.hooks.SalesRecord
}

// Interceptors returns the client interceptors.
func (c *SalesRecordClient) Interceptors() []Interceptor {
	return c.inters.SalesRecord
}

func (c *SalesRecordClient) mutate(ctx context.Context, m *SalesRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SalesRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SalesRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SalesRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SalesRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SalesRecord mutation op: %q", m.Op())
	}
}

// TerritoryClient is a client for the Territory schema.
type TerritoryClient struct {
	config
}

// NewTerritoryClient returns a client for the Territory from the given config.
func NewTerritoryClient(c config) *TerritoryClient {
	return &TerritoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `territory.Hooks(f(g(h())))`.
func (c *TerritoryClient) Use(hooks ...Hook) {
	c.hooks.Territory = append(c.hooks.Territory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `territory.Intercept(f(g(h())))`.
func (c *TerritoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Territory = append(c.inters.Territory, interceptors...)
}

// Create returns a builder for creating a Territory entity.
func (c *TerritoryClient) Create() *TerritoryCreate {
	mutation := newTerritoryMutation(c.config, OpCreate)
	return &TerritoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Territory entities.
func (c *TerritoryClient) CreateBulk(builders ...*TerritoryCreate) *TerritoryCreateBulk {
	return &TerritoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TerritoryClient) MapCreateBulk(slice any, setFunc func(*TerritoryCreate, int)) *TerritoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TerritoryCreateBulk{err: fmt.Errorf("calling to TerritoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TerritoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TerritoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Territory.
func (c *TerritoryClient) Update() *TerritoryUpdate {
	mutation := newTerritoryMutation(c.config, OpUpdate)
	return &TerritoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TerritoryClient) UpdateOne(_m *Territory) *TerritoryUpdateOne {
	mutation := newTerritoryMutation(c.config, OpUpdateOne, withTerritory(_m))
	return &TerritoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TerritoryClient) UpdateOneID(id uuid.UUID) *TerritoryUpdateOne {
	mutation := newTerritoryMutation(c.config, OpUpdateOne, withTerritoryID(id))
	return &TerritoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Territory.
func (c *TerritoryClient) Delete() *TerritoryDelete {
	mutation := newTerritoryMutation(c.config, OpDelete)
	return &TerritoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TerritoryClient) DeleteOne(_m *Territory) *TerritoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TerritoryClient) DeleteOneID(id uuid.UUID) *TerritoryDeleteOne {
	builder := c.Delete().Where(territory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TerritoryDeleteOne{builder}
}

// Query returns a query builder for Territory.
func (c *TerritoryClient) Query() *TerritoryQuery {
	return &TerritoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTerritory},
		inters: c.Interceptors(),
	}
}

// Get returns a Territory entity by its id.
func (c *TerritoryClient) Get(ctx context.Context, id uuid.UUID) (*Territory, error) {
	return c.Query().Where(territory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TerritoryClient) GetX(ctx context.Context, id uuid.UUID) *Territory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAreas queries the areas edge of a Territory.
func (c *TerritoryClient) QueryAreas(_m *Territory) *AreaQuery {
	query := (&AreaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(territory.Table, territory.FieldID, id),
			sqlgraph.To(area.Table, area.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, territory.AreasTable, territory.AreasColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TerritoryClient) Hooks() []Hook {
	return c.hooks.Territory
}

// Interceptors returns the client interceptors.
func (c *TerritoryClient) Interceptors() []Interceptor {
	return c.inters.Territory
}

func (c *TerritoryClient) mutate(ctx context.Context, m *TerritoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TerritoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TerritoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TerritoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TerritoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Territory mutation op: %q", m.Op())
	}
}

// TubMovementClient is a client for the TubMovement schema.
type TubMovementClient struct {
	config
}

// NewTubMovementClient returns a client for the TubMovement from the given config.
func NewTubMovementClient(c config) *TubMovementClient {
	return &TubMovementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tubmovement.Hooks(f(g(h())))`.
func (c *TubMovementClient) Use(hooks ...Hook) {
	c.hooks.TubMovement = append(c.hooks.TubMovement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tubmovement.Intercept(f(g(h())))`.
func (c *TubMovementClient) Intercept(interceptors ...Interceptor) {
	c.inters.TubMovement = append(c.inters.TubMovement, interceptors...)
}

// Create returns a builder for creating a TubMovement entity.
func (c *TubMovementClient) Create() *TubMovementCreate {
	mutation := newTubMovementMutation(c.config, OpCreate)
	return &TubMovementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TubMovement entities.
func (c *TubMovementClient) CreateBulk(builders ...*TubMovementCreate) *TubMovementCreateBulk {
	return &TubMovementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TubMovementClient) MapCreateBulk(slice any, setFunc func(*TubMovementCreate, int)) *TubMovementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TubMovementCreateBulk{err: fmt.Errorf("calling to TubMovementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TubMovementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TubMovementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TubMovement.
func (c *TubMovementClient) Update() *TubMovementUpdate {
	mutation := newTubMovementMutation(c.config, OpUpdate)
	return &TubMovementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TubMovementClient) UpdateOne(_m *TubMovement) *TubMovementUpdateOne {
	mutation := newTubMovementMutation(c.config, OpUpdateOne, withTubMovement(_m))
	return &TubMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TubMovementClient) UpdateOneID(id uuid.UUID) *TubMovementUpdateOne {
	mutation := newTubMovementMutation(c.config, OpUpdateOne, withTubMovementID(id))
	return &TubMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TubMovement.
func (c *TubMovementClient) Delete() *TubMovementDelete {
	mutation := newTubMovementMutation(c.config, OpDelete)
	return &TubMovementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TubMovementClient) DeleteOne(_m *TubMovement) *TubMovementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TubMovementClient) DeleteOneID(id uuid.UUID) *TubMovementDeleteOne {
	builder := c.Delete().Where(tubmovement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TubMovementDeleteOne{builder}
}

// Query returns a query builder for TubMovement.
func (c *TubMovementClient) Query() *TubMovementQuery {
	return &TubMovementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTubMovement},
		inters: c.Interceptors(),
	}
}

// Get returns a TubMovement entity by its id.
func (c *TubMovementClient) Get(ctx context.Context, id uuid.UUID) (*TubMovement, error) {
	return c.Query().Where(tubmovement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TubMovementClient) GetX(ctx context.Context, id uuid.UUID) *TubMovement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBranch queries the branch edge of a TubMovement.
func (c *TubMovementClient) QueryBranch(_m *TubMovement) *BranchQuery {
	query := (&BranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tubmovement.Table, tubmovement.FieldID, id),
			sqlgraph.To(branch.Table, branch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tubmovement.BranchTable, tubmovement.BranchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFlavor queries the flavor edge of a TubMovement.
func (c *TubMovementClient) QueryFlavor(_m *TubMovement) *FlavorQuery {
	query := (&FlavorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tubmovement.Table, tubmovement.FieldID, id),
			sqlgraph.To(flavor.Table, flavor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tubmovement.FlavorTable, tubmovement.FlavorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TubMovementClient) Hooks() []Hook {
	return c.hooks.TubMovement
}

// Interceptors returns the client interceptors.
func (c *TubMovementClient) Interceptors() []Interceptor {
	return c.inters.TubMovement
}

func (c *TubMovementClient) mutate(ctx context.Context, m *TubMovementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TubMovementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TubMovementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TubMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TubMovementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TubMovement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Area, Branch, BudgetDay, Flavor, SalesRecord, Territory, TubMovement []ent.Hook
	}
	inters struct {
		Area, Branch, BudgetDay, Flavor, SalesRecord, Territory,
		TubMovement []ent.Interceptor
	}
)
