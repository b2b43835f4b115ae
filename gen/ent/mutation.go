// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/predicate"
	"salestracker/gen/ent/salesrecord"
	"salestracker/gen/ent/territory"
	"salestracker/gen/ent/tubmovement"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArea        = "Area"
	TypeBranch      = "Branch"
	TypeBudgetDay   = "BudgetDay"
	TypeFlavor      = "Flavor"
	TypeSalesRecord = "SalesRecord"
	TypeTerritory   = "Territory"
	TypeTubMovement = "TubMovement"
)

// AreaMutation represents an operation that mutates the Area nodes in the graph.
type AreaMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	territory        *uuid.UUID
	clearedterritory bool
	branches         map[uuid.UUID]struct{}
	removedbranches  map[uuid.UUID]struct{}
	clearedbranches  bool
	done             bool
	oldValue         func(context.Context) (*Area, error)
	predicates       []predicate.Area
}

var _ ent.Mutation = (*AreaMutation)(nil)

// areaOption allows management of the mutation configuration using functional options.
type areaOption func(*AreaMutation)

// newAreaMutation creates new mutation for the Area entity.
func newAreaMutation(c config, op Op, opts ...areaOption) *AreaMutation {
	m := &AreaMutation{
		config:        c,
		op:            op,
		typ:           TypeArea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAreaID sets the ID field of the mutation.
func withAreaID(id uuid.UUID) areaOption {
	return func(m *AreaMutation) {
		var (
			err   error
			once  sync.Once
			value *Area
		)
		m.oldValue = func(ctx context.Context) (*Area, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Area.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArea sets the old Area of the mutation.
func withArea(node *Area) areaOption {
	return func(m *AreaMutation) {
		m.oldValue = func(context.Context) (*Area, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AreaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AreaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Area entities.
func (m *AreaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AreaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AreaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Area.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTerritoryID sets the "territory_id" field.
func (m *AreaMutation) SetTerritoryID(u uuid.UUID) {
	m.territory = &u
}

// TerritoryID returns the value of the "territory_id" field in the mutation.
func (m *AreaMutation) TerritoryID() (r uuid.UUID, exists bool) {
	v := m.territory
	if v == nil {
		return
	}
	return *v, true
}

// OldTerritoryID returns the old "territory_id" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldTerritoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerritoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerritoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerritoryID: %w", err)
	}
	return oldValue.TerritoryID, nil
}

// ResetTerritoryID resets all changes to the "territory_id" field.
func (m *AreaMutation) ResetTerritoryID() {
	m.territory = nil
}

// SetName sets the "name" field.
func (m *AreaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AreaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *AreaMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AreaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AreaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AreaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AreaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AreaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AreaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTerritory clears the "territory" edge to the Territory entity.
func (m *AreaMutation) ClearTerritory() {
	m.clearedterritory = true
	m.clearedFields[area.FieldTerritoryID] = struct{}{}
}

// TerritoryCleared reports if the "territory" edge to the Territory entity was cleared.
func (m *AreaMutation) TerritoryCleared() bool {
	return m.clearedterritory
}

// TerritoryIDs returns the "territory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TerritoryID instead. It exists only for internal usage by the builders.
func (m *AreaMutation) TerritoryIDs() (ids []uuid.UUID) {
	if id := m.territory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTerritory resets all changes to the "territory" edge.
func (m *AreaMutation) ResetTerritory() {
	m.territory = nil
	m.clearedterritory = false
}

// AddBranchIDs adds the "branches" edge to the Branch entity by ids.
func (m *AreaMutation) AddBranchIDs(ids ...uuid.UUID) {
	if m.branches == nil {
		m.branches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.branches[ids[i]] = struct{}{}
	}
}

// ClearBranches clears the "branches" edge to the Branch entity.
func (m *AreaMutation) ClearBranches() {
	m.clearedbranches = true
}

// BranchesCleared reports if the "branches" edge to the Branch entity was cleared.
func (m *AreaMutation) BranchesCleared() bool {
	return m.clearedbranches
}

// RemoveBranchIDs removes the "branches" edge to the Branch entity by IDs.
func (m *AreaMutation) RemoveBranchIDs(ids ...uuid.UUID) {
	if m.removedbranches == nil {
		m.removedbranches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.branches, ids[i])
		m.removedbranches[ids[i]] = struct{}{}
	}
}

// RemovedBranches returns the removed IDs of the "branches" edge to the Branch entity.
func (m *AreaMutation) RemovedBranchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbranches {
		ids = append(ids, id)
	}
	return
}

// BranchesIDs returns the "branches" edge IDs in the mutation.
func (m *AreaMutation) BranchesIDs() (ids []uuid.UUID) {
	for id := range m.branches {
		ids = append(ids, id)
	}
	return
}

// ResetBranches resets all changes to the "branches" edge.
func (m *AreaMutation) ResetBranches() {
	m.branches = nil
	m.clearedbranches = false
	m.removedbranches = nil
}

// Where appends a list predicates to the AreaMutation builder.
func (m *AreaMutation) Where(ps ...predicate.Area) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AreaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AreaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Area, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AreaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AreaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Area).
func (m *AreaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AreaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.territory != nil {
		fields = append(fields, area.FieldTerritoryID)
	}
	if m.name != nil {
		fields = append(fields, area.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, area.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, area.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AreaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case area.FieldTerritoryID:
		return m.TerritoryID()
	case area.FieldName:
		return m.Name()
	case area.FieldCreatedAt:
		return m.CreatedAt()
	case area.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AreaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case area.FieldTerritoryID:
		return m.OldTerritoryID(ctx)
	case area.FieldName:
		return m.OldName(ctx)
	case area.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case area.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Area field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case area.FieldTerritoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerritoryID(v)
		return nil
	case area.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case area.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case area.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AreaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AreaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Area numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AreaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AreaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AreaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Area nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AreaMutation) ResetField(name string) error {
	switch name {
	case area.FieldTerritoryID:
		m.ResetTerritoryID()
		return nil
	case area.FieldName:
		m.ResetName()
		return nil
	case area.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case area.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AreaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.territory != nil {
		edges = append(edges, area.EdgeTerritory)
	}
	if m.branches != nil {
		edges = append(edges, area.EdgeBranches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AreaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case area.EdgeTerritory:
		if id := m.territory; id != nil {
			return []ent.Value{*id}
		}
	case area.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.branches))
		for id := range m.branches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AreaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbranches != nil {
		edges = append(edges, area.EdgeBranches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AreaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case area.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.removedbranches))
		for id := range m.removedbranches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AreaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedterritory {
		edges = append(edges, area.EdgeTerritory)
	}
	if m.clearedbranches {
		edges = append(edges, area.EdgeBranches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AreaMutation) EdgeCleared(name string) bool {
	switch name {
	case area.EdgeTerritory:
		return m.clearedterritory
	case area.EdgeBranches:
		return m.clearedbranches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AreaMutation) ClearEdge(name string) error {
	switch name {
	case area.EdgeTerritory:
		m.ClearTerritory()
		return nil
	}
	return fmt.Errorf("unknown Area unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AreaMutation) ResetEdge(name string) error {
	switch name {
	case area.EdgeTerritory:
		m.ResetTerritory()
		return nil
	case area.EdgeBranches:
		m.ResetBranches()
		return nil
	}
	return fmt.Errorf("unknown Area edge %s", name)
}

// BranchMutation represents an operation that mutates the Branch nodes in the graph.
type BranchMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	code               *string
	active             *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	area               *uuid.UUID
	clearedarea        bool
	sales              map[uuid.UUID]struct{}
	removedsales       map[uuid.UUID]struct{}
	clearedsales       bool
	budget_days        map[uuid.UUID]struct{}
	removedbudget_days map[uuid.UUID]struct{}
	clearedbudget_days bool
	movements          map[uuid.UUID]struct{}
	removedmovements   map[uuid.UUID]struct{}
	clearedmovements   bool
	done               bool
	oldValue           func(context.Context) (*Branch, error)
	predicates         []predicate.Branch
}

var _ ent.Mutation = (*BranchMutation)(nil)

// branchOption allows management of the mutation configuration using functional options.
type branchOption func(*BranchMutation)

// newBranchMutation creates new mutation for the Branch entity.
func newBranchMutation(c config, op Op, opts ...branchOption) *BranchMutation {
	m := &BranchMutation{
		config:        c,
		op:            op,
		typ:           TypeBranch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBranchID sets the ID field of the mutation.
func withBranchID(id uuid.UUID) branchOption {
	return func(m *BranchMutation) {
		var (
			err   error
			once  sync.Once
			value *Branch
		)
		m.oldValue = func(ctx context.Context) (*Branch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Branch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBranch sets the old Branch of the mutation.
func withBranch(node *Branch) branchOption {
	return func(m *BranchMutation) {
		m.oldValue = func(context.Context) (*Branch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BranchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BranchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Branch entities.
func (m *BranchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BranchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BranchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Branch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAreaID sets the "area_id" field.
func (m *BranchMutation) SetAreaID(u uuid.UUID) {
	m.area = &u
}

// AreaID returns the value of the "area_id" field in the mutation.
func (m *BranchMutation) AreaID() (r uuid.UUID, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaID returns the old "area_id" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldAreaID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaID: %w", err)
	}
	return oldValue.AreaID, nil
}

// ResetAreaID resets all changes to the "area_id" field.
func (m *BranchMutation) ResetAreaID() {
	m.area = nil
}

// SetName sets the "name" field.
func (m *BranchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BranchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *BranchMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *BranchMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *BranchMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ClearCode clears the value of the "code" field.
func (m *BranchMutation) ClearCode() {
	m.code = nil
	m.clearedFields[branch.FieldCode] = struct{}{}
}

// CodeCleared returns if the "code" field was cleared in this mutation.
func (m *BranchMutation) CodeCleared() bool {
	_, ok := m.clearedFields[branch.FieldCode]
	return ok
}

// ResetCode resets all changes to the "code" field.
func (m *BranchMutation) ResetCode() {
	m.code = nil
	delete(m.clearedFields, branch.FieldCode)
}

// SetActive sets the "active" field.
func (m *BranchMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *BranchMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *BranchMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BranchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BranchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BranchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BranchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BranchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BranchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearArea clears the "area" edge to the Area entity.
func (m *BranchMutation) ClearArea() {
	m.clearedarea = true
	m.clearedFields[branch.FieldAreaID] = struct{}{}
}

// AreaCleared reports if the "area" edge to the Area entity was cleared.
func (m *BranchMutation) AreaCleared() bool {
	return m.clearedarea
}

// AreaIDs returns the "area" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AreaID instead. It exists only for internal usage by the builders.
func (m *BranchMutation) AreaIDs() (ids []uuid.UUID) {
	if id := m.area; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArea resets all changes to the "area" edge.
func (m *BranchMutation) ResetArea() {
	m.area = nil
	m.clearedarea = false
}

// AddSaleIDs adds the "sales" edge to the SalesRecord entity by ids.
func (m *BranchMutation) AddSaleIDs(ids ...uuid.UUID) {
	if m.sales == nil {
		m.sales = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sales[ids[i]] = struct{}{}
	}
}

// ClearSales clears the "sales" edge to the SalesRecord entity.
func (m *BranchMutation) ClearSales() {
	m.clearedsales = true
}

// SalesCleared reports if the "sales" edge to the SalesRecord entity was cleared.
func (m *BranchMutation) SalesCleared() bool {
	return m.clearedsales
}

// RemoveSaleIDs removes the "sales" edge to the SalesRecord entity by IDs.
func (m *BranchMutation) RemoveSaleIDs(ids ...uuid.UUID) {
	if m.removedsales == nil {
		m.removedsales = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sales, ids[i])
		m.removedsales[ids[i]] = struct{}{}
	}
}

// RemovedSales returns the removed IDs of the "sales" edge to the SalesRecord entity.
func (m *BranchMutation) RemovedSalesIDs() (ids []uuid.UUID) {
	for id := range m.removedsales {
		ids = append(ids, id)
	}
	return
}

// SalesIDs returns the "sales" edge IDs in the mutation.
func (m *BranchMutation) SalesIDs() (ids []uuid.UUID) {
	for id := range m.sales {
		ids = append(ids, id)
	}
	return
}

// ResetSales resets all changes to the "sales" edge.
func (m *BranchMutation) ResetSales() {
	m.sales = nil
	m.clearedsales = false
	m.removedsales = nil
}

// AddBudgetDayIDs adds the "budget_days" edge to the BudgetDay entity by ids.
func (m *BranchMutation) AddBudgetDayIDs(ids ...uuid.UUID) {
	if m.budget_days == nil {
		m.budget_days = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.budget_days[ids[i]] = struct{}{}
	}
}

// ClearBudgetDays clears the "budget_days" edge to the BudgetDay entity.
func (m *BranchMutation) ClearBudgetDays() {
	m.clearedbudget_days = true
}

// BudgetDaysCleared reports if the "budget_days" edge to the BudgetDay entity was cleared.
func (m *BranchMutation) BudgetDaysCleared() bool {
	return m.clearedbudget_days
}

// RemoveBudgetDayIDs removes the "budget_days" edge to the BudgetDay entity by IDs.
func (m *BranchMutation) RemoveBudgetDayIDs(ids ...uuid.UUID) {
	if m.removedbudget_days == nil {
		m.removedbudget_days = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.budget_days, ids[i])
		m.removedbudget_days[ids[i]] = struct{}{}
	}
}

// RemovedBudgetDays returns the removed IDs of the "budget_days" edge to the BudgetDay entity.
func (m *BranchMutation) RemovedBudgetDaysIDs() (ids []uuid.UUID) {
	for id := range m.removedbudget_days {
		ids = append(ids, id)
	}
	return
}

// BudgetDaysIDs returns the "budget_days" edge IDs in the mutation.
func (m *BranchMutation) BudgetDaysIDs() (ids []uuid.UUID) {
	for id := range m.budget_days {
		ids = append(ids, id)
	}
	return
}

// ResetBudgetDays resets all changes to the "budget_days" edge.
func (m *BranchMutation) ResetBudgetDays() {
	m.budget_days = nil
	m.clearedbudget_days = false
	m.removedbudget_days = nil
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by ids.
func (m *BranchMutation) AddMovementIDs(ids ...uuid.UUID) {
	if m.movements == nil {
		m.movements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.movements[ids[i]] = struct{}{}
	}
}

// ClearMovements clears the "movements" edge to the TubMovement entity.
func (m *BranchMutation) ClearMovements() {
	m.clearedmovements = true
}

// MovementsCleared reports if the "movements" edge to the TubMovement entity was cleared.
func (m *BranchMutation) MovementsCleared() bool {
	return m.clearedmovements
}

// RemoveMovementIDs removes the "movements" edge to the TubMovement entity by IDs.
func (m *BranchMutation) RemoveMovementIDs(ids ...uuid.UUID) {
	if m.removedmovements == nil {
		m.removedmovements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.movements, ids[i])
		m.removedmovements[ids[i]] = struct{}{}
	}
}

// RemovedMovements returns the removed IDs of the "movements" edge to the TubMovement entity.
func (m *BranchMutation) RemovedMovementsIDs() (ids []uuid.UUID) {
	for id := range m.removedmovements {
		ids = append(ids, id)
	}
	return
}

// MovementsIDs returns the "movements" edge IDs in the mutation.
func (m *BranchMutation) MovementsIDs() (ids []uuid.UUID) {
	for id := range m.movements {
		ids = append(ids, id)
	}
	return
}

// ResetMovements resets all changes to the "movements" edge.
func (m *BranchMutation) ResetMovements() {
	m.movements = nil
	m.clearedmovements = false
	m.removedmovements = nil
}

// Where appends a list predicates to the BranchMutation builder.
func (m *BranchMutation) Where(ps ...predicate.Branch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BranchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BranchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Branch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BranchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BranchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Branch).
func (m *BranchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BranchMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.area != nil {
		fields = append(fields, branch.FieldAreaID)
	}
	if m.name != nil {
		fields = append(fields, branch.FieldName)
	}
	if m.code != nil {
		fields = append(fields, branch.FieldCode)
	}
	if m.active != nil {
		fields = append(fields, branch.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, branch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, branch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BranchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case branch.FieldAreaID:
		return m.AreaID()
	case branch.FieldName:
		return m.Name()
	case branch.FieldCode:
		return m.Code()
	case branch.FieldActive:
		return m.Active()
	case branch.FieldCreatedAt:
		return m.CreatedAt()
	case branch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BranchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case branch.FieldAreaID:
		return m.OldAreaID(ctx)
	case branch.FieldName:
		return m.OldName(ctx)
	case branch.FieldCode:
		return m.OldCode(ctx)
	case branch.FieldActive:
		return m.OldActive(ctx)
	case branch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case branch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Branch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case branch.FieldAreaID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaID(v)
		return nil
	case branch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case branch.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case branch.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case branch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case branch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Branch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BranchMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BranchMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Branch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BranchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(branch.FieldCode) {
		fields = append(fields, branch.FieldCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BranchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BranchMutation) ClearField(name string) error {
	switch name {
	case branch.FieldCode:
		m.ClearCode()
		return nil
	}
	return fmt.Errorf("unknown Branch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BranchMutation) ResetField(name string) error {
	switch name {
	case branch.FieldAreaID:
		m.ResetAreaID()
		return nil
	case branch.FieldName:
		m.ResetName()
		return nil
	case branch.FieldCode:
		m.ResetCode()
		return nil
	case branch.FieldActive:
		m.ResetActive()
		return nil
	case branch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case branch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Branch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BranchMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.area != nil {
		edges = append(edges, branch.EdgeArea)
	}
	if m.sales != nil {
		edges = append(edges, branch.EdgeSales)
	}
	if m.budget_days != nil {
		edges = append(edges, branch.EdgeBudgetDays)
	}
	if m.movements != nil {
		edges = append(edges, branch.EdgeMovements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BranchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case branch.EdgeArea:
		if id := m.area; id != nil {
			return []ent.Value{*id}
		}
	case branch.EdgeSales:
		ids := make([]ent.Value, 0, len(m.sales))
		for id := range m.sales {
			ids = append(ids, id)
		}
		return ids
	case branch.EdgeBudgetDays:
		ids := make([]ent.Value, 0, len(m.budget_days))
		for id := range m.budget_days {
			ids = append(ids, id)
		}
		return ids
	case branch.EdgeMovements:
		ids := make([]ent.Value, 0, len(m.movements))
		for id := range m.movements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BranchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsales != nil {
		edges = append(edges, branch.EdgeSales)
	}
	if m.removedbudget_days != nil {
		edges = append(edges, branch.EdgeBudgetDays)
	}
	if m.removedmovements != nil {
		edges = append(edges, branch.EdgeMovements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BranchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case branch.EdgeSales:
		ids := make([]ent.Value, 0, len(m.removedsales))
		for id := range m.removedsales {
			ids = append(ids, id)
		}
		return ids
	case branch.EdgeBudgetDays:
		ids := make([]ent.Value, 0, len(m.removedbudget_days))
		for id := range m.removedbudget_days {
			ids = append(ids, id)
		}
		return ids
	case branch.EdgeMovements:
		ids := make([]ent.Value, 0, len(m.removedmovements))
		for id := range m.removedmovements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BranchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedarea {
		edges = append(edges, branch.EdgeArea)
	}
	if m.clearedsales {
		edges = append(edges, branch.EdgeSales)
	}
	if m.clearedbudget_days {
		edges = append(edges, branch.EdgeBudgetDays)
	}
	if m.clearedmovements {
		edges = append(edges, branch.EdgeMovements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BranchMutation) EdgeCleared(name string) bool {
	switch name {
	case branch.EdgeArea:
		return m.clearedarea
	case branch.EdgeSales:
		return m.clearedsales
	case branch.EdgeBudgetDays:
		return m.clearedbudget_days
	case branch.EdgeMovements:
		return m.clearedmovements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BranchMutation) ClearEdge(name string) error {
	switch name {
	case branch.EdgeArea:
		m.ClearArea()
		return nil
	}
	return fmt.Errorf("unknown Branch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BranchMutation) ResetEdge(name string) error {
	switch name {
	case branch.EdgeArea:
		m.ResetArea()
		return nil
	case branch.EdgeSales:
		m.ResetSales()
		return nil
	case branch.EdgeBudgetDays:
		m.ResetBudgetDays()
		return nil
	case branch.EdgeMovements:
		m.ResetMovements()
		return nil
	}
	return fmt.Errorf("unknown Branch edge %s", name)
}

// BudgetDayMutation represents an operation that mutates the BudgetDay nodes in the graph.
type BudgetDayMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	business_date         *time.Time
	weekday               *string
	budget_amount         *float64
	addbudget_amount      *float64
	budget_guest_count    *int
	addbudget_guest_count *int
	ly_sales              *float64
	addly_sales           *float64
	ly_guest_count        *int
	addly_guest_count     *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	branch                *uuid.UUID
	clearedbranch         bool
	done                  bool
	oldValue              func(context.Context) (*BudgetDay, error)
	predicates            []predicate.BudgetDay
}

var _ ent.Mutation = (*BudgetDayMutation)(nil)

// budgetdayOption allows management of the mutation configuration using functional options.
type budgetdayOption func(*BudgetDayMutation)

// newBudgetDayMutation creates new mutation for the BudgetDay entity.
func newBudgetDayMutation(c config, op Op, opts ...budgetdayOption) *BudgetDayMutation {
	m := &BudgetDayMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetDayID sets the ID field of the mutation.
func withBudgetDayID(id uuid.UUID) budgetdayOption {
	return func(m *BudgetDayMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetDay
		)
		m.oldValue = func(ctx context.Context) (*BudgetDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetDay sets the old BudgetDay of the mutation.
func withBudgetDay(node *BudgetDay) budgetdayOption {
	return func(m *BudgetDayMutation) {
		m.oldValue = func(context.Context) (*BudgetDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BudgetDay entities.
func (m *BudgetDayMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetDayMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetDayMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBranchID sets the "branch_id" field.
func (m *BudgetDayMutation) SetBranchID(u uuid.UUID) {
	m.branch = &u
}

// BranchID returns the value of the "branch_id" field in the mutation.
func (m *BudgetDayMutation) BranchID() (r uuid.UUID, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchID returns the old "branch_id" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldBranchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchID: %w", err)
	}
	return oldValue.BranchID, nil
}

// ResetBranchID resets all changes to the "branch_id" field.
func (m *BudgetDayMutation) ResetBranchID() {
	m.branch = nil
}

// SetBusinessDate sets the "business_date" field.
func (m *BudgetDayMutation) SetBusinessDate(t time.Time) {
	m.business_date = &t
}

// BusinessDate returns the value of the "business_date" field in the mutation.
func (m *BudgetDayMutation) BusinessDate() (r time.Time, exists bool) {
	v := m.business_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessDate returns the old "business_date" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldBusinessDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessDate: %w", err)
	}
	return oldValue.BusinessDate, nil
}

// ResetBusinessDate resets all changes to the "business_date" field.
func (m *BudgetDayMutation) ResetBusinessDate() {
	m.business_date = nil
}

// SetWeekday sets the "weekday" field.
func (m *BudgetDayMutation) SetWeekday(s string) {
	m.weekday = &s
}

// Weekday returns the value of the "weekday" field in the mutation.
func (m *BudgetDayMutation) Weekday() (r string, exists bool) {
	v := m.weekday
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekday returns the old "weekday" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldWeekday(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekday: %w", err)
	}
	return oldValue.Weekday, nil
}

// ResetWeekday resets all changes to the "weekday" field.
func (m *BudgetDayMutation) ResetWeekday() {
	m.weekday = nil
}

// SetBudgetAmount sets the "budget_amount" field.
func (m *BudgetDayMutation) SetBudgetAmount(f float64) {
	m.budget_amount = &f
	m.addbudget_amount = nil
}

// BudgetAmount returns the value of the "budget_amount" field in the mutation.
func (m *BudgetDayMutation) BudgetAmount() (r float64, exists bool) {
	v := m.budget_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetAmount returns the old "budget_amount" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldBudgetAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetAmount: %w", err)
	}
	return oldValue.BudgetAmount, nil
}

// AddBudgetAmount adds f to the "budget_amount" field.
func (m *BudgetDayMutation) AddBudgetAmount(f float64) {
	if m.addbudget_amount != nil {
		*m.addbudget_amount += f
	} else {
		m.addbudget_amount = &f
	}
}

// AddedBudgetAmount returns the value that was added to the "budget_amount" field in this mutation.
func (m *BudgetDayMutation) AddedBudgetAmount() (r float64, exists bool) {
	v := m.addbudget_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetAmount resets all changes to the "budget_amount" field.
func (m *BudgetDayMutation) ResetBudgetAmount() {
	m.budget_amount = nil
	m.addbudget_amount = nil
}

// SetBudgetGuestCount sets the "budget_guest_count" field.
func (m *BudgetDayMutation) SetBudgetGuestCount(i int) {
	m.budget_guest_count = &i
	m.addbudget_guest_count = nil
}

// BudgetGuestCount returns the value of the "budget_guest_count" field in the mutation.
func (m *BudgetDayMutation) BudgetGuestCount() (r int, exists bool) {
	v := m.budget_guest_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetGuestCount returns the old "budget_guest_count" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldBudgetGuestCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetGuestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetGuestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetGuestCount: %w", err)
	}
	return oldValue.BudgetGuestCount, nil
}

// AddBudgetGuestCount adds i to the "budget_guest_count" field.
func (m *BudgetDayMutation) AddBudgetGuestCount(i int) {
	if m.addbudget_guest_count != nil {
		*m.addbudget_guest_count += i
	} else {
		m.addbudget_guest_count = &i
	}
}

// AddedBudgetGuestCount returns the value that was added to the "budget_guest_count" field in this mutation.
func (m *BudgetDayMutation) AddedBudgetGuestCount() (r int, exists bool) {
	v := m.addbudget_guest_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearBudgetGuestCount clears the value of the "budget_guest_count" field.
func (m *BudgetDayMutation) ClearBudgetGuestCount() {
	m.budget_guest_count = nil
	m.addbudget_guest_count = nil
	m.clearedFields[budgetday.FieldBudgetGuestCount] = struct{}{}
}

// BudgetGuestCountCleared returns if the "budget_guest_count" field was cleared in this mutation.
func (m *BudgetDayMutation) BudgetGuestCountCleared() bool {
	_, ok := m.clearedFields[budgetday.FieldBudgetGuestCount]
	return ok
}

// ResetBudgetGuestCount resets all changes to the "budget_guest_count" field.
func (m *BudgetDayMutation) ResetBudgetGuestCount() {
	m.budget_guest_count = nil
	m.addbudget_guest_count = nil
	delete(m.clearedFields, budgetday.FieldBudgetGuestCount)
}

// SetLySales sets the "ly_sales" field.
func (m *BudgetDayMutation) SetLySales(f float64) {
	m.ly_sales = &f
	m.addly_sales = nil
}

// LySales returns the value of the "ly_sales" field in the mutation.
func (m *BudgetDayMutation) LySales() (r float64, exists bool) {
	v := m.ly_sales
	if v == nil {
		return
	}
	return *v, true
}

// OldLySales returns the old "ly_sales" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldLySales(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLySales is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLySales requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLySales: %w", err)
	}
	return oldValue.LySales, nil
}

// AddLySales adds f to the "ly_sales" field.
func (m *BudgetDayMutation) AddLySales(f float64) {
	if m.addly_sales != nil {
		*m.addly_sales += f
	} else {
		m.addly_sales = &f
	}
}

// AddedLySales returns the value that was added to the "ly_sales" field in this mutation.
func (m *BudgetDayMutation) AddedLySales() (r float64, exists bool) {
	v := m.addly_sales
	if v == nil {
		return
	}
	return *v, true
}

// ClearLySales clears the value of the "ly_sales" field.
func (m *BudgetDayMutation) ClearLySales() {
	m.ly_sales = nil
	m.addly_sales = nil
	m.clearedFields[budgetday.FieldLySales] = struct{}{}
}

// LySalesCleared returns if the "ly_sales" field was cleared in this mutation.
func (m *BudgetDayMutation) LySalesCleared() bool {
	_, ok := m.clearedFields[budgetday.FieldLySales]
	return ok
}

// ResetLySales resets all changes to the "ly_sales" field.
func (m *BudgetDayMutation) ResetLySales() {
	m.ly_sales = nil
	m.addly_sales = nil
	delete(m.clearedFields, budgetday.FieldLySales)
}

// SetLyGuestCount sets the "ly_guest_count" field.
func (m *BudgetDayMutation) SetLyGuestCount(i int) {
	m.ly_guest_count = &i
	m.addly_guest_count = nil
}

// LyGuestCount returns the value of the "ly_guest_count" field in the mutation.
func (m *BudgetDayMutation) LyGuestCount() (r int, exists bool) {
	v := m.ly_guest_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLyGuestCount returns the old "ly_guest_count" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldLyGuestCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLyGuestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLyGuestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLyGuestCount: %w", err)
	}
	return oldValue.LyGuestCount, nil
}

// AddLyGuestCount adds i to the "ly_guest_count" field.
func (m *BudgetDayMutation) AddLyGuestCount(i int) {
	if m.addly_guest_count != nil {
		*m.addly_guest_count += i
	} else {
		m.addly_guest_count = &i
	}
}

// AddedLyGuestCount returns the value that was added to the "ly_guest_count" field in this mutation.
func (m *BudgetDayMutation) AddedLyGuestCount() (r int, exists bool) {
	v := m.addly_guest_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearLyGuestCount clears the value of the "ly_guest_count" field.
func (m *BudgetDayMutation) ClearLyGuestCount() {
	m.ly_guest_count = nil
	m.addly_guest_count = nil
	m.clearedFields[budgetday.FieldLyGuestCount] = struct{}{}
}

// LyGuestCountCleared returns if the "ly_guest_count" field was cleared in this mutation.
func (m *BudgetDayMutation) LyGuestCountCleared() bool {
	_, ok := m.clearedFields[budgetday.FieldLyGuestCount]
	return ok
}

// ResetLyGuestCount resets all changes to the "ly_guest_count" field.
func (m *BudgetDayMutation) ResetLyGuestCount() {
	m.ly_guest_count = nil
	m.addly_guest_count = nil
	delete(m.clearedFields, budgetday.FieldLyGuestCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *BudgetDayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BudgetDayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BudgetDayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetDayMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetDayMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BudgetDay entity.
// If the BudgetDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetDayMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BudgetDayMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (m *BudgetDayMutation) ClearBranch() {
	m.clearedbranch = true
	m.clearedFields[budgetday.FieldBranchID] = struct{}{}
}

// BranchCleared reports if the "branch" edge to the Branch entity was cleared.
func (m *BudgetDayMutation) BranchCleared() bool {
	return m.clearedbranch
}

// BranchIDs returns the "branch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BranchID instead. It exists only for internal usage by the builders.
func (m *BudgetDayMutation) BranchIDs() (ids []uuid.UUID) {
	if id := m.branch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBranch resets all changes to the "branch" edge.
func (m *BudgetDayMutation) ResetBranch() {
	m.branch = nil
	m.clearedbranch = false
}

// Where appends a list predicates to the BudgetDayMutation builder.
func (m *BudgetDayMutation) Where(ps ...predicate.BudgetDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetDay).
func (m *BudgetDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetDayMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.branch != nil {
		fields = append(fields, budgetday.FieldBranchID)
	}
	if m.business_date != nil {
		fields = append(fields, budgetday.FieldBusinessDate)
	}
	if m.weekday != nil {
		fields = append(fields, budgetday.FieldWeekday)
	}
	if m.budget_amount != nil {
		fields = append(fields, budgetday.FieldBudgetAmount)
	}
	if m.budget_guest_count != nil {
		fields = append(fields, budgetday.FieldBudgetGuestCount)
	}
	if m.ly_sales != nil {
		fields = append(fields, budgetday.FieldLySales)
	}
	if m.ly_guest_count != nil {
		fields = append(fields, budgetday.FieldLyGuestCount)
	}
	if m.created_at != nil {
		fields = append(fields, budgetday.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, budgetday.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetday.FieldBranchID:
		return m.BranchID()
	case budgetday.FieldBusinessDate:
		return m.BusinessDate()
	case budgetday.FieldWeekday:
		return m.Weekday()
	case budgetday.FieldBudgetAmount:
		return m.BudgetAmount()
	case budgetday.FieldBudgetGuestCount:
		return m.BudgetGuestCount()
	case budgetday.FieldLySales:
		return m.LySales()
	case budgetday.FieldLyGuestCount:
		return m.LyGuestCount()
	case budgetday.FieldCreatedAt:
		return m.CreatedAt()
	case budgetday.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetday.FieldBranchID:
		return m.OldBranchID(ctx)
	case budgetday.FieldBusinessDate:
		return m.OldBusinessDate(ctx)
	case budgetday.FieldWeekday:
		return m.OldWeekday(ctx)
	case budgetday.FieldBudgetAmount:
		return m.OldBudgetAmount(ctx)
	case budgetday.FieldBudgetGuestCount:
		return m.OldBudgetGuestCount(ctx)
	case budgetday.FieldLySales:
		return m.OldLySales(ctx)
	case budgetday.FieldLyGuestCount:
		return m.OldLyGuestCount(ctx)
	case budgetday.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case budgetday.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetday.FieldBranchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchID(v)
		return nil
	case budgetday.FieldBusinessDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessDate(v)
		return nil
	case budgetday.FieldWeekday:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekday(v)
		return nil
	case budgetday.FieldBudgetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetAmount(v)
		return nil
	case budgetday.FieldBudgetGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetGuestCount(v)
		return nil
	case budgetday.FieldLySales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLySales(v)
		return nil
	case budgetday.FieldLyGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLyGuestCount(v)
		return nil
	case budgetday.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case budgetday.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetDayMutation) AddedFields() []string {
	var fields []string
	if m.addbudget_amount != nil {
		fields = append(fields, budgetday.FieldBudgetAmount)
	}
	if m.addbudget_guest_count != nil {
		fields = append(fields, budgetday.FieldBudgetGuestCount)
	}
	if m.addly_sales != nil {
		fields = append(fields, budgetday.FieldLySales)
	}
	if m.addly_guest_count != nil {
		fields = append(fields, budgetday.FieldLyGuestCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetDayMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetday.FieldBudgetAmount:
		return m.AddedBudgetAmount()
	case budgetday.FieldBudgetGuestCount:
		return m.AddedBudgetGuestCount()
	case budgetday.FieldLySales:
		return m.AddedLySales()
	case budgetday.FieldLyGuestCount:
		return m.AddedLyGuestCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetday.FieldBudgetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetAmount(v)
		return nil
	case budgetday.FieldBudgetGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetGuestCount(v)
		return nil
	case budgetday.FieldLySales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLySales(v)
		return nil
	case budgetday.FieldLyGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLyGuestCount(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetDayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(budgetday.FieldBudgetGuestCount) {
		fields = append(fields, budgetday.FieldBudgetGuestCount)
	}
	if m.FieldCleared(budgetday.FieldLySales) {
		fields = append(fields, budgetday.FieldLySales)
	}
	if m.FieldCleared(budgetday.FieldLyGuestCount) {
		fields = append(fields, budgetday.FieldLyGuestCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetDayMutation) ClearField(name string) error {
	switch name {
	case budgetday.FieldBudgetGuestCount:
		m.ClearBudgetGuestCount()
		return nil
	case budgetday.FieldLySales:
		m.ClearLySales()
		return nil
	case budgetday.FieldLyGuestCount:
		m.ClearLyGuestCount()
		return nil
	}
	return fmt.Errorf("unknown BudgetDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetDayMutation) ResetField(name string) error {
	switch name {
	case budgetday.FieldBranchID:
		m.ResetBranchID()
		return nil
	case budgetday.FieldBusinessDate:
		m.ResetBusinessDate()
		return nil
	case budgetday.FieldWeekday:
		m.ResetWeekday()
		return nil
	case budgetday.FieldBudgetAmount:
		m.ResetBudgetAmount()
		return nil
	case budgetday.FieldBudgetGuestCount:
		m.ResetBudgetGuestCount()
		return nil
	case budgetday.FieldLySales:
		m.ResetLySales()
		return nil
	case budgetday.FieldLyGuestCount:
		m.ResetLyGuestCount()
		return nil
	case budgetday.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case budgetday.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.branch != nil {
		edges = append(edges, budgetday.EdgeBranch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetDayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case budgetday.EdgeBranch:
		if id := m.branch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetDayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbranch {
		edges = append(edges, budgetday.EdgeBranch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetDayMutation) EdgeCleared(name string) bool {
	switch name {
	case budgetday.EdgeBranch:
		return m.clearedbranch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetDayMutation) ClearEdge(name string) error {
	switch name {
	case budgetday.EdgeBranch:
		m.ClearBranch()
		return nil
	}
	return fmt.Errorf("unknown BudgetDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetDayMutation) ResetEdge(name string) error {
	switch name {
	case budgetday.EdgeBranch:
		m.ResetBranch()
		return nil
	}
	return fmt.Errorf("unknown BudgetDay edge %s", name)
}

// FlavorMutation represents an operation that mutates the Flavor nodes in the graph.
type FlavorMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	seasonal         *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	movements        map[uuid.UUID]struct{}
	removedmovements map[uuid.UUID]struct{}
	clearedmovements bool
	done             bool
	oldValue         func(context.Context) (*Flavor, error)
	predicates       []predicate.Flavor
}

var _ ent.Mutation = (*FlavorMutation)(nil)

// flavorOption allows management of the mutation configuration using functional options.
type flavorOption func(*FlavorMutation)

// newFlavorMutation creates new mutation for the Flavor entity.
func newFlavorMutation(c config, op Op, opts ...flavorOption) *FlavorMutation {
	m := &FlavorMutation{
		config:        c,
		op:            op,
		typ:           TypeFlavor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlavorID sets the ID field of the mutation.
func withFlavorID(id uuid.UUID) flavorOption {
	return func(m *FlavorMutation) {
		var (
			err   error
			once  sync.Once
			value *Flavor
		)
		m.oldValue = func(ctx context.Context) (*Flavor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Flavor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlavor sets the old Flavor of the mutation.
func withFlavor(node *Flavor) flavorOption {
	return func(m *FlavorMutation) {
		m.oldValue = func(context.Context) (*Flavor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlavorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlavorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Flavor entities.
func (m *FlavorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlavorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlavorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Flavor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FlavorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FlavorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Flavor entity.
// If the Flavor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlavorMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *FlavorMutation) ResetName() {
	m.name = nil
}

// SetSeasonal sets the "seasonal" field.
func (m *FlavorMutation) SetSeasonal(b bool) {
	m.seasonal = &b
}

// Seasonal returns the value of the "seasonal" field in the mutation.
func (m *FlavorMutation) Seasonal() (r bool, exists bool) {
	v := m.seasonal
	if v == nil {
		return
	}
	return *v, true
}

// OldSeasonal returns the old "seasonal" field's value of the Flavor entity.
// If the Flavor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlavorMutation) OldSeasonal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeasonal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeasonal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeasonal: %w", err)
	}
	return oldValue.Seasonal, nil
}

// ResetSeasonal resets all changes to the "seasonal" field.
func (m *FlavorMutation) ResetSeasonal() {
	m.seasonal = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FlavorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlavorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Flavor entity.
// If the Flavor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlavorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FlavorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FlavorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FlavorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Flavor entity.
// If the Flavor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlavorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FlavorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMovementIDs adds the "movements" edge to the TubMovement entity by ids.
func (m *FlavorMutation) AddMovementIDs(ids ...uuid.UUID) {
	if m.movements == nil {
		m.movements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.movements[ids[i]] = struct{}{}
	}
}

// ClearMovements clears the "movements" edge to the TubMovement entity.
func (m *FlavorMutation) ClearMovements() {
	m.clearedmovements = true
}

// MovementsCleared reports if the "movements" edge to the TubMovement entity was cleared.
func (m *FlavorMutation) MovementsCleared() bool {
	return m.clearedmovements
}

// RemoveMovementIDs removes the "movements" edge to the TubMovement entity by IDs.
func (m *FlavorMutation) RemoveMovementIDs(ids ...uuid.UUID) {
	if m.removedmovements == nil {
		m.removedmovements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.movements, ids[i])
		m.removedmovements[ids[i]] = struct{}{}
	}
}

// RemovedMovements returns the removed IDs of the "movements" edge to the TubMovement entity.
func (m *FlavorMutation) RemovedMovementsIDs() (ids []uuid.UUID) {
	for id := range m.removedmovements {
		ids = append(ids, id)
	}
	return
}

// MovementsIDs returns the "movements" edge IDs in the mutation.
func (m *FlavorMutation) MovementsIDs() (ids []uuid.UUID) {
	for id := range m.movements {
		ids = append(ids, id)
	}
	return
}

// ResetMovements resets all changes to the "movements" edge.
func (m *FlavorMutation) ResetMovements() {
	m.movements = nil
	m.clearedmovements = false
	m.removedmovements = nil
}

// Where appends a list predicates to the FlavorMutation builder.
func (m *FlavorMutation) Where(ps ...predicate.Flavor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlavorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlavorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Flavor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlavorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlavorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Flavor).
func (m *FlavorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlavorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, flavor.FieldName)
	}
	if m.seasonal != nil {
		fields = append(fields, flavor.FieldSeasonal)
	}
	if m.created_at != nil {
		fields = append(fields, flavor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, flavor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlavorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flavor.FieldName:
		return m.Name()
	case flavor.FieldSeasonal:
		return m.Seasonal()
	case flavor.FieldCreatedAt:
		return m.CreatedAt()
	case flavor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlavorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flavor.FieldName:
		return m.OldName(ctx)
	case flavor.FieldSeasonal:
		return m.OldSeasonal(ctx)
	case flavor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flavor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Flavor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlavorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flavor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case flavor.FieldSeasonal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeasonal(v)
		return nil
	case flavor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flavor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Flavor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlavorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlavorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlavorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Flavor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlavorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlavorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlavorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Flavor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlavorMutation) ResetField(name string) error {
	switch name {
	case flavor.FieldName:
		m.ResetName()
		return nil
	case flavor.FieldSeasonal:
		m.ResetSeasonal()
		return nil
	case flavor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flavor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Flavor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlavorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.movements != nil {
		edges = append(edges, flavor.EdgeMovements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlavorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flavor.EdgeMovements:
		ids := make([]ent.Value, 0, len(m.movements))
		for id := range m.movements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlavorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmovements != nil {
		edges = append(edges, flavor.EdgeMovements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlavorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case flavor.EdgeMovements:
		ids := make([]ent.Value, 0, len(m.removedmovements))
		for id := range m.removedmovements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlavorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmovements {
		edges = append(edges, flavor.EdgeMovements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlavorMutation) EdgeCleared(name string) bool {
	switch name {
	case flavor.EdgeMovements:
		return m.clearedmovements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlavorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Flavor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlavorMutation) ResetEdge(name string) error {
	switch name {
	case flavor.EdgeMovements:
		m.ResetMovements()
		return nil
	}
	return fmt.Errorf("unknown Flavor edge %s", name)
}

// SalesRecordMutation represents an operation that mutates the SalesRecord nodes in the graph.
type SalesRecordMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	business_date            *time.Time
	window                   *string
	kind                     *string
	gross_sales              *float64
	addgross_sales           *float64
	net_sales                *float64
	addnet_sales             *float64
	guest_count              *int
	addguest_count           *int
	cash_sales               *float64
	addcash_sales            *float64
	categories               *json.RawMessage
	appendcategories         json.RawMessage
	status                   *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	branch_raw               *string
	branch_match             *bool
	raw_text                 *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	branch                   *uuid.UUID
	clearedbranch            bool
	done                     bool
	oldValue                 func(context.Context) (*SalesRecord, error)
	predicates               []predicate.SalesRecord
}

var _ ent.Mutation = (*SalesRecordMutation)(nil)

// salesrecordOption allows management of the mutation configuration using functional options.
type salesrecordOption func(*SalesRecordMutation)

// newSalesRecordMutation creates new mutation for the SalesRecord entity.
func newSalesRecordMutation(c config, op Op, opts ...salesrecordOption) *SalesRecordMutation {
	m := &SalesRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSalesRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSalesRecordID sets the ID field of the mutation.
func withSalesRecordID(id uuid.UUID) salesrecordOption {
	return func(m *SalesRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SalesRecord
		)
		m.oldValue = func(ctx context.Context) (*SalesRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SalesRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSalesRecord sets the old SalesRecord of the mutation.
func withSalesRecord(node *SalesRecord) salesrecordOption {
	return func(m *SalesRecordMutation) {
		m.oldValue = func(context.Context) (*SalesRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SalesRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SalesRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SalesRecord entities.
func (m *SalesRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SalesRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SalesRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SalesRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBranchID sets the "branch_id" field.
func (m *SalesRecordMutation) SetBranchID(u uuid.UUID) {
	m.branch = &u
}

// BranchID returns the value of the "branch_id" field in the mutation.
func (m *SalesRecordMutation) BranchID() (r uuid.UUID, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchID returns the old "branch_id" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldBranchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchID: %w", err)
	}
	return oldValue.BranchID, nil
}

// ResetBranchID resets all changes to the "branch_id" field.
func (m *SalesRecordMutation) ResetBranchID() {
	m.branch = nil
}

// SetBusinessDate sets the "business_date" field.
func (m *SalesRecordMutation) SetBusinessDate(t time.Time) {
	m.business_date = &t
}

// BusinessDate returns the value of the "business_date" field in the mutation.
func (m *SalesRecordMutation) BusinessDate() (r time.Time, exists bool) {
	v := m.business_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessDate returns the old "business_date" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldBusinessDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessDate: %w", err)
	}
	return oldValue.BusinessDate, nil
}

// ResetBusinessDate resets all changes to the "business_date" field.
func (m *SalesRecordMutation) ResetBusinessDate() {
	m.business_date = nil
}

// SetWindow sets the "window" field.
func (m *SalesRecordMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *SalesRecordMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *SalesRecordMutation) ResetWindow() {
	m.window = nil
}

// SetKind sets the "kind" field.
func (m *SalesRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SalesRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SalesRecordMutation) ResetKind() {
	m.kind = nil
}

// SetGrossSales sets the "gross_sales" field.
func (m *SalesRecordMutation) SetGrossSales(f float64) {
	m.gross_sales = &f
	m.addgross_sales = nil
}

// GrossSales returns the value of the "gross_sales" field in the mutation.
func (m *SalesRecordMutation) GrossSales() (r float64, exists bool) {
	v := m.gross_sales
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossSales returns the old "gross_sales" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldGrossSales(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossSales is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossSales requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossSales: %w", err)
	}
	return oldValue.GrossSales, nil
}

// AddGrossSales adds f to the "gross_sales" field.
func (m *SalesRecordMutation) AddGrossSales(f float64) {
	if m.addgross_sales != nil {
		*m.addgross_sales += f
	} else {
		m.addgross_sales = &f
	}
}

// AddedGrossSales returns the value that was added to the "gross_sales" field in this mutation.
func (m *SalesRecordMutation) AddedGrossSales() (r float64, exists bool) {
	v := m.addgross_sales
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrossSales clears the value of the "gross_sales" field.
func (m *SalesRecordMutation) ClearGrossSales() {
	m.gross_sales = nil
	m.addgross_sales = nil
	m.clearedFields[salesrecord.FieldGrossSales] = struct{}{}
}

// GrossSalesCleared returns if the "gross_sales" field was cleared in this mutation.
func (m *SalesRecordMutation) GrossSalesCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldGrossSales]
	return ok
}

// ResetGrossSales resets all changes to the "gross_sales" field.
func (m *SalesRecordMutation) ResetGrossSales() {
	m.gross_sales = nil
	m.addgross_sales = nil
	delete(m.clearedFields, salesrecord.FieldGrossSales)
}

// SetNetSales sets the "net_sales" field.
func (m *SalesRecordMutation) SetNetSales(f float64) {
	m.net_sales = &f
	m.addnet_sales = nil
}

// NetSales returns the value of the "net_sales" field in the mutation.
func (m *SalesRecordMutation) NetSales() (r float64, exists bool) {
	v := m.net_sales
	if v == nil {
		return
	}
	return *v, true
}

// OldNetSales returns the old "net_sales" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldNetSales(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetSales is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetSales requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetSales: %w", err)
	}
	return oldValue.NetSales, nil
}

// AddNetSales adds f to the "net_sales" field.
func (m *SalesRecordMutation) AddNetSales(f float64) {
	if m.addnet_sales != nil {
		*m.addnet_sales += f
	} else {
		m.addnet_sales = &f
	}
}

// AddedNetSales returns the value that was added to the "net_sales" field in this mutation.
func (m *SalesRecordMutation) AddedNetSales() (r float64, exists bool) {
	v := m.addnet_sales
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetSales clears the value of the "net_sales" field.
func (m *SalesRecordMutation) ClearNetSales() {
	m.net_sales = nil
	m.addnet_sales = nil
	m.clearedFields[salesrecord.FieldNetSales] = struct{}{}
}

// NetSalesCleared returns if the "net_sales" field was cleared in this mutation.
func (m *SalesRecordMutation) NetSalesCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldNetSales]
	return ok
}

// ResetNetSales resets all changes to the "net_sales" field.
func (m *SalesRecordMutation) ResetNetSales() {
	m.net_sales = nil
	m.addnet_sales = nil
	delete(m.clearedFields, salesrecord.FieldNetSales)
}

// SetGuestCount sets the "guest_count" field.
func (m *SalesRecordMutation) SetGuestCount(i int) {
	m.guest_count = &i
	m.addguest_count = nil
}

// GuestCount returns the value of the "guest_count" field in the mutation.
func (m *SalesRecordMutation) GuestCount() (r int, exists bool) {
	v := m.guest_count
	if v == nil {
		return
	}
	return *v, true
}

// OldGuestCount returns the old "guest_count" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldGuestCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuestCount: %w", err)
	}
	return oldValue.GuestCount, nil
}

// AddGuestCount adds i to the "guest_count" field.
func (m *SalesRecordMutation) AddGuestCount(i int) {
	if m.addguest_count != nil {
		*m.addguest_count += i
	} else {
		m.addguest_count = &i
	}
}

// AddedGuestCount returns the value that was added to the "guest_count" field in this mutation.
func (m *SalesRecordMutation) AddedGuestCount() (r int, exists bool) {
	v := m.addguest_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearGuestCount clears the value of the "guest_count" field.
func (m *SalesRecordMutation) ClearGuestCount() {
	m.guest_count = nil
	m.addguest_count = nil
	m.clearedFields[salesrecord.FieldGuestCount] = struct{}{}
}

// GuestCountCleared returns if the "guest_count" field was cleared in this mutation.
func (m *SalesRecordMutation) GuestCountCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldGuestCount]
	return ok
}

// ResetGuestCount resets all changes to the "guest_count" field.
func (m *SalesRecordMutation) ResetGuestCount() {
	m.guest_count = nil
	m.addguest_count = nil
	delete(m.clearedFields, salesrecord.FieldGuestCount)
}

// SetCashSales sets the "cash_sales" field.
func (m *SalesRecordMutation) SetCashSales(f float64) {
	m.cash_sales = &f
	m.addcash_sales = nil
}

// CashSales returns the value of the "cash_sales" field in the mutation.
func (m *SalesRecordMutation) CashSales() (r float64, exists bool) {
	v := m.cash_sales
	if v == nil {
		return
	}
	return *v, true
}

// OldCashSales returns the old "cash_sales" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldCashSales(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashSales is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashSales requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashSales: %w", err)
	}
	return oldValue.CashSales, nil
}

// AddCashSales adds f to the "cash_sales" field.
func (m *SalesRecordMutation) AddCashSales(f float64) {
	if m.addcash_sales != nil {
		*m.addcash_sales += f
	} else {
		m.addcash_sales = &f
	}
}

// AddedCashSales returns the value that was added to the "cash_sales" field in this mutation.
func (m *SalesRecordMutation) AddedCashSales() (r float64, exists bool) {
	v := m.addcash_sales
	if v == nil {
		return
	}
	return *v, true
}

// ClearCashSales clears the value of the "cash_sales" field.
func (m *SalesRecordMutation) ClearCashSales() {
	m.cash_sales = nil
	m.addcash_sales = nil
	m.clearedFields[salesrecord.FieldCashSales] = struct{}{}
}

// CashSalesCleared returns if the "cash_sales" field was cleared in this mutation.
func (m *SalesRecordMutation) CashSalesCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldCashSales]
	return ok
}

// ResetCashSales resets all changes to the "cash_sales" field.
func (m *SalesRecordMutation) ResetCashSales() {
	m.cash_sales = nil
	m.addcash_sales = nil
	delete(m.clearedFields, salesrecord.FieldCashSales)
}

// SetCategories sets the "categories" field.
func (m *SalesRecordMutation) SetCategories(jm json.RawMessage) {
	m.categories = &jm
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *SalesRecordMutation) Categories() (r json.RawMessage, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldCategories(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds jm to the "categories" field.
func (m *SalesRecordMutation) AppendCategories(jm json.RawMessage) {
	m.appendcategories = append(m.appendcategories, jm...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *SalesRecordMutation) AppendedCategories() (json.RawMessage, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *SalesRecordMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[salesrecord.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *SalesRecordMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *SalesRecordMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, salesrecord.FieldCategories)
}

// SetStatus sets the "status" field.
func (m *SalesRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SalesRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
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

// ResetStatus resets all changes to the "status" field.
func (m *SalesRecordMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *SalesRecordMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *SalesRecordMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *SalesRecordMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *SalesRecordMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *SalesRecordMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[salesrecord.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *SalesRecordMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *SalesRecordMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, salesrecord.FieldExtractionConfidence)
}

// SetBranchRaw sets the "branch_raw" field.
func (m *SalesRecordMutation) SetBranchRaw(s string) {
	m.branch_raw = &s
}

// BranchRaw returns the value of the "branch_raw" field in the mutation.
func (m *SalesRecordMutation) BranchRaw() (r string, exists bool) {
	v := m.branch_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchRaw returns the old "branch_raw" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldBranchRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchRaw: %w", err)
	}
	return oldValue.BranchRaw, nil
}

// ClearBranchRaw clears the value of the "branch_raw" field.
func (m *SalesRecordMutation) ClearBranchRaw() {
	m.branch_raw = nil
	m.clearedFields[salesrecord.FieldBranchRaw] = struct{}{}
}

// BranchRawCleared returns if the "branch_raw" field was cleared in this mutation.
func (m *SalesRecordMutation) BranchRawCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldBranchRaw]
	return ok
}

// ResetBranchRaw resets all changes to the "branch_raw" field.
func (m *SalesRecordMutation) ResetBranchRaw() {
	m.branch_raw = nil
	delete(m.clearedFields, salesrecord.FieldBranchRaw)
}

// SetBranchMatch sets the "branch_match" field.
func (m *SalesRecordMutation) SetBranchMatch(b bool) {
	m.branch_match = &b
}

// BranchMatch returns the value of the "branch_match" field in the mutation.
func (m *SalesRecordMutation) BranchMatch() (r bool, exists bool) {
	v := m.branch_match
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchMatch returns the old "branch_match" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldBranchMatch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchMatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchMatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchMatch: %w", err)
	}
	return oldValue.BranchMatch, nil
}

// ResetBranchMatch resets all changes to the "branch_match" field.
func (m *SalesRecordMutation) ResetBranchMatch() {
	m.branch_match = nil
}

// SetRawText sets the "raw_text" field.
func (m *SalesRecordMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *SalesRecordMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldRawText(ctx context.Context) (v *string, err error) {
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
func (m *SalesRecordMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[salesrecord.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *SalesRecordMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[salesrecord.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *SalesRecordMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, salesrecord.FieldRawText)
}

// SetCreatedAt sets the "created_at" field.
func (m *SalesRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SalesRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SalesRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SalesRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SalesRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SalesRecord entity.
// If the SalesRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SalesRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (m *SalesRecordMutation) ClearBranch() {
	m.clearedbranch = true
	m.clearedFields[salesrecord.FieldBranchID] = struct{}{}
}

// BranchCleared reports if the "branch" edge to the Branch entity was cleared.
func (m *SalesRecordMutation) BranchCleared() bool {
	return m.clearedbranch
}

// BranchIDs returns the "branch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BranchID instead. It exists only for internal usage by the builders.
func (m *SalesRecordMutation) BranchIDs() (ids []uuid.UUID) {
	if id := m.branch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBranch resets all changes to the "branch" edge.
func (m *SalesRecordMutation) ResetBranch() {
	m.branch = nil
	m.clearedbranch = false
}

// Where appends a list predicates to the SalesRecordMutation builder.
func (m *SalesRecordMutation) Where(ps ...predicate.SalesRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SalesRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SalesRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SalesRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SalesRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SalesRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SalesRecord).
func (m *SalesRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SalesRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.branch != nil {
		fields = append(fields, salesrecord.FieldBranchID)
	}
	if m.business_date != nil {
		fields = append(fields, salesrecord.FieldBusinessDate)
	}
	if m.window != nil {
		fields = append(fields, salesrecord.FieldWindow)
	}
	if m.kind != nil {
		fields = append(fields, salesrecord.FieldKind)
	}
	if m.gross_sales != nil {
		fields = append(fields, salesrecord.FieldGrossSales)
	}
	if m.net_sales != nil {
		fields = append(fields, salesrecord.FieldNetSales)
	}
	if m.guest_count != nil {
		fields = append(fields, salesrecord.FieldGuestCount)
	}
	if m.cash_sales != nil {
		fields = append(fields, salesrecord.FieldCashSales)
	}
	if m.categories != nil {
		fields = append(fields, salesrecord.FieldCategories)
	}
	if m.status != nil {
		fields = append(fields, salesrecord.FieldStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, salesrecord.FieldExtractionConfidence)
	}
	if m.branch_raw != nil {
		fields = append(fields, salesrecord.FieldBranchRaw)
	}
	if m.branch_match != nil {
		fields = append(fields, salesrecord.FieldBranchMatch)
	}
	if m.raw_text != nil {
		fields = append(fields, salesrecord.FieldRawText)
	}
	if m.created_at != nil {
		fields = append(fields, salesrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, salesrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SalesRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case salesrecord.FieldBranchID:
		return m.BranchID()
	case salesrecord.FieldBusinessDate:
		return m.BusinessDate()
	case salesrecord.FieldWindow:
		return m.Window()
	case salesrecord.FieldKind:
		return m.Kind()
	case salesrecord.FieldGrossSales:
		return m.GrossSales()
	case salesrecord.FieldNetSales:
		return m.NetSales()
	case salesrecord.FieldGuestCount:
		return m.GuestCount()
	case salesrecord.FieldCashSales:
		return m.CashSales()
	case salesrecord.FieldCategories:
		return m.Categories()
	case salesrecord.FieldStatus:
		return m.Status()
	case salesrecord.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case salesrecord.FieldBranchRaw:
		return m.BranchRaw()
	case salesrecord.FieldBranchMatch:
		return m.BranchMatch()
	case salesrecord.FieldRawText:
		return m.RawText()
	case salesrecord.FieldCreatedAt:
		return m.CreatedAt()
	case salesrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SalesRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case salesrecord.FieldBranchID:
		return m.OldBranchID(ctx)
	case salesrecord.FieldBusinessDate:
		return m.OldBusinessDate(ctx)
	case salesrecord.FieldWindow:
		return m.OldWindow(ctx)
	case salesrecord.FieldKind:
		return m.OldKind(ctx)
	case salesrecord.FieldGrossSales:
		return m.OldGrossSales(ctx)
	case salesrecord.FieldNetSales:
		return m.OldNetSales(ctx)
	case salesrecord.FieldGuestCount:
		return m.OldGuestCount(ctx)
	case salesrecord.FieldCashSales:
		return m.OldCashSales(ctx)
	case salesrecord.FieldCategories:
		return m.OldCategories(ctx)
	case salesrecord.FieldStatus:
		return m.OldStatus(ctx)
	case salesrecord.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case salesrecord.FieldBranchRaw:
		return m.OldBranchRaw(ctx)
	case salesrecord.FieldBranchMatch:
		return m.OldBranchMatch(ctx)
	case salesrecord.FieldRawText:
		return m.OldRawText(ctx)
	case salesrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case salesrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SalesRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case salesrecord.FieldBranchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchID(v)
		return nil
	case salesrecord.FieldBusinessDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessDate(v)
		return nil
	case salesrecord.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case salesrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case salesrecord.FieldGrossSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossSales(v)
		return nil
	case salesrecord.FieldNetSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetSales(v)
		return nil
	case salesrecord.FieldGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuestCount(v)
		return nil
	case salesrecord.FieldCashSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashSales(v)
		return nil
	case salesrecord.FieldCategories:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case salesrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case salesrecord.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case salesrecord.FieldBranchRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchRaw(v)
		return nil
	case salesrecord.FieldBranchMatch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchMatch(v)
		return nil
	case salesrecord.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case salesrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case salesrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SalesRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SalesRecordMutation) AddedFields() []string {
	var fields []string
	if m.addgross_sales != nil {
		fields = append(fields, salesrecord.FieldGrossSales)
	}
	if m.addnet_sales != nil {
		fields = append(fields, salesrecord.FieldNetSales)
	}
	if m.addguest_count != nil {
		fields = append(fields, salesrecord.FieldGuestCount)
	}
	if m.addcash_sales != nil {
		fields = append(fields, salesrecord.FieldCashSales)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, salesrecord.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SalesRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case salesrecord.FieldGrossSales:
		return m.AddedGrossSales()
	case salesrecord.FieldNetSales:
		return m.AddedNetSales()
	case salesrecord.FieldGuestCount:
		return m.AddedGuestCount()
	case salesrecord.FieldCashSales:
		return m.AddedCashSales()
	case salesrecord.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case salesrecord.FieldGrossSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossSales(v)
		return nil
	case salesrecord.FieldNetSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetSales(v)
		return nil
	case salesrecord.FieldGuestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGuestCount(v)
		return nil
	case salesrecord.FieldCashSales:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashSales(v)
		return nil
	case salesrecord.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown SalesRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SalesRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(salesrecord.FieldGrossSales) {
		fields = append(fields, salesrecord.FieldGrossSales)
	}
	if m.FieldCleared(salesrecord.FieldNetSales) {
		fields = append(fields, salesrecord.FieldNetSales)
	}
	if m.FieldCleared(salesrecord.FieldGuestCount) {
		fields = append(fields, salesrecord.FieldGuestCount)
	}
	if m.FieldCleared(salesrecord.FieldCashSales) {
		fields = append(fields, salesrecord.FieldCashSales)
	}
	if m.FieldCleared(salesrecord.FieldCategories) {
		fields = append(fields, salesrecord.FieldCategories)
	}
	if m.FieldCleared(salesrecord.FieldExtractionConfidence) {
		fields = append(fields, salesrecord.FieldExtractionConfidence)
	}
	if m.FieldCleared(salesrecord.FieldBranchRaw) {
		fields = append(fields, salesrecord.FieldBranchRaw)
	}
	if m.FieldCleared(salesrecord.FieldRawText) {
		fields = append(fields, salesrecord.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SalesRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SalesRecordMutation) ClearField(name string) error {
	switch name {
	case salesrecord.FieldGrossSales:
		m.ClearGrossSales()
		return nil
	case salesrecord.FieldNetSales:
		m.ClearNetSales()
		return nil
	case salesrecord.FieldGuestCount:
		m.ClearGuestCount()
		return nil
	case salesrecord.FieldCashSales:
		m.ClearCashSales()
		return nil
	case salesrecord.FieldCategories:
		m.ClearCategories()
		return nil
	case salesrecord.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case salesrecord.FieldBranchRaw:
		m.ClearBranchRaw()
		return nil
	case salesrecord.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown SalesRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SalesRecordMutation) ResetField(name string) error {
	switch name {
	case salesrecord.FieldBranchID:
		m.ResetBranchID()
		return nil
	case salesrecord.FieldBusinessDate:
		m.ResetBusinessDate()
		return nil
	case salesrecord.FieldWindow:
		m.ResetWindow()
		return nil
	case salesrecord.FieldKind:
		m.ResetKind()
		return nil
	case salesrecord.FieldGrossSales:
		m.ResetGrossSales()
		return nil
	case salesrecord.FieldNetSales:
		m.ResetNetSales()
		return nil
	case salesrecord.FieldGuestCount:
		m.ResetGuestCount()
		return nil
	case salesrecord.FieldCashSales:
		m.ResetCashSales()
		return nil
	case salesrecord.FieldCategories:
		m.ResetCategories()
		return nil
	case salesrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case salesrecord.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case salesrecord.FieldBranchRaw:
		m.ResetBranchRaw()
		return nil
	case salesrecord.FieldBranchMatch:
		m.ResetBranchMatch()
		return nil
	case salesrecord.FieldRawText:
		m.ResetRawText()
		return nil
	case salesrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case salesrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SalesRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SalesRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.branch != nil {
		edges = append(edges, salesrecord.EdgeBranch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SalesRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case salesrecord.EdgeBranch:
		if id := m.branch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SalesRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SalesRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SalesRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbranch {
		edges = append(edges, salesrecord.EdgeBranch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SalesRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case salesrecord.EdgeBranch:
		return m.clearedbranch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SalesRecordMutation) ClearEdge(name string) error {
	switch name {
	case salesrecord.EdgeBranch:
		m.ClearBranch()
		return nil
	}
	return fmt.Errorf("unknown SalesRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SalesRecordMutation) ResetEdge(name string) error {
	switch name {
	case salesrecord.EdgeBranch:
		m.ResetBranch()
		return nil
	}
	return fmt.Errorf("unknown SalesRecord edge %s", name)
}

// TerritoryMutation represents an operation that mutates the Territory nodes in the graph.
type TerritoryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	areas         map[uuid.UUID]struct{}
	removedareas  map[uuid.UUID]struct{}
	clearedareas  bool
	done          bool
	oldValue      func(context.Context) (*Territory, error)
	predicates    []predicate.Territory
}

var _ ent.Mutation = (*TerritoryMutation)(nil)

// territoryOption allows management of the mutation configuration using functional options.
type territoryOption func(*TerritoryMutation)

// newTerritoryMutation creates new mutation for the Territory entity.
func newTerritoryMutation(c config, op Op, opts ...territoryOption) *TerritoryMutation {
	m := &TerritoryMutation{
		config:        c,
		op:            op,
		typ:           TypeTerritory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTerritoryID sets the ID field of the mutation.
func withTerritoryID(id uuid.UUID) territoryOption {
	return func(m *TerritoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Territory
		)
		m.oldValue = func(ctx context.Context) (*Territory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Territory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTerritory sets the old Territory of the mutation.
func withTerritory(node *Territory) territoryOption {
	return func(m *TerritoryMutation) {
		m.oldValue = func(context.Context) (*Territory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TerritoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TerritoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Territory entities.
func (m *TerritoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TerritoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TerritoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Territory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TerritoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TerritoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Territory entity.
// If the Territory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerritoryMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *TerritoryMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TerritoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TerritoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Territory entity.
// If the Territory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerritoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TerritoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TerritoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TerritoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Territory entity.
// If the Territory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerritoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TerritoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAreaIDs adds the "areas" edge to the Area entity by ids.
func (m *TerritoryMutation) AddAreaIDs(ids ...uuid.UUID) {
	if m.areas == nil {
		m.areas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.areas[ids[i]] = struct{}{}
	}
}

// ClearAreas clears the "areas" edge to the Area entity.
func (m *TerritoryMutation) ClearAreas() {
	m.clearedareas = true
}

// AreasCleared reports if the "areas" edge to the Area entity was cleared.
func (m *TerritoryMutation) AreasCleared() bool {
	return m.clearedareas
}

// RemoveAreaIDs removes the "areas" edge to the Area entity by IDs.
func (m *TerritoryMutation) RemoveAreaIDs(ids ...uuid.UUID) {
	if m.removedareas == nil {
		m.removedareas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.areas, ids[i])
		m.removedareas[ids[i]] = struct{}{}
	}
}

// RemovedAreas returns the removed IDs of the "areas" edge to the Area entity.
func (m *TerritoryMutation) RemovedAreasIDs() (ids []uuid.UUID) {
	for id := range m.removedareas {
		ids = append(ids, id)
	}
	return
}

// AreasIDs returns the "areas" edge IDs in the mutation.
func (m *TerritoryMutation) AreasIDs() (ids []uuid.UUID) {
	for id := range m.areas {
		ids = append(ids, id)
	}
	return
}

// ResetAreas resets all changes to the "areas" edge.
func (m *TerritoryMutation) ResetAreas() {
	m.areas = nil
	m.clearedareas = false
	m.removedareas = nil
}

// Where appends a list predicates to the TerritoryMutation builder.
func (m *TerritoryMutation) Where(ps ...predicate.Territory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TerritoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TerritoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Territory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TerritoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TerritoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Territory).
func (m *TerritoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TerritoryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, territory.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, territory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, territory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TerritoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case territory.FieldName:
		return m.Name()
	case territory.FieldCreatedAt:
		return m.CreatedAt()
	case territory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TerritoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case territory.FieldName:
		return m.OldName(ctx)
	case territory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case territory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Territory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TerritoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case territory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case territory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case territory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Territory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TerritoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TerritoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TerritoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Territory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TerritoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TerritoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TerritoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Territory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TerritoryMutation) ResetField(name string) error {
	switch name {
	case territory.FieldName:
		m.ResetName()
		return nil
	case territory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case territory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Territory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TerritoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.areas != nil {
		edges = append(edges, territory.EdgeAreas)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TerritoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case territory.EdgeAreas:
		ids := make([]ent.Value, 0, len(m.areas))
		for id := range m.areas {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TerritoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedareas != nil {
		edges = append(edges, territory.EdgeAreas)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TerritoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case territory.EdgeAreas:
		ids := make([]ent.Value, 0, len(m.removedareas))
		for id := range m.removedareas {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TerritoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedareas {
		edges = append(edges, territory.EdgeAreas)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TerritoryMutation) EdgeCleared(name string) bool {
	switch name {
	case territory.EdgeAreas:
		return m.clearedareas
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TerritoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Territory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TerritoryMutation) ResetEdge(name string) error {
	switch name {
	case territory.EdgeAreas:
		m.ResetAreas()
		return nil
	}
	return fmt.Errorf("unknown Territory edge %s", name)
}

// TubMovementMutation represents an operation that mutates the TubMovement nodes in the graph.
type TubMovementMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	kind          *string
	quantity      *int
	addquantity   *int
	note          *string
	moved_at      *time.Time
	clearedFields map[string]struct{}
	branch        *uuid.UUID
	clearedbranch bool
	flavor        *uuid.UUID
	clearedflavor bool
	done          bool
	oldValue      func(context.Context) (*TubMovement, error)
	predicates    []predicate.TubMovement
}

var _ ent.Mutation = (*TubMovementMutation)(nil)

// tubmovementOption allows management of the mutation configuration using functional options.
type tubmovementOption func(*TubMovementMutation)

// newTubMovementMutation creates new mutation for the TubMovement entity.
func newTubMovementMutation(c config, op Op, opts ...tubmovementOption) *TubMovementMutation {
	m := &TubMovementMutation{
		config:        c,
		op:            op,
		typ:           TypeTubMovement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTubMovementID sets the ID field of the mutation.
func withTubMovementID(id uuid.UUID) tubmovementOption {
	return func(m *TubMovementMutation) {
		var (
			err   error
			once  sync.Once
			value *TubMovement
		)
		m.oldValue = func(ctx context.Context) (*TubMovement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TubMovement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTubMovement sets the old TubMovement of the mutation.
func withTubMovement(node *TubMovement) tubmovementOption {
	return func(m *TubMovementMutation) {
		m.oldValue = func(context.Context) (*TubMovement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TubMovementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TubMovementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TubMovement entities.
func (m *TubMovementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TubMovementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TubMovementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TubMovement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBranchID sets the "branch_id" field.
func (m *TubMovementMutation) SetBranchID(u uuid.UUID) {
	m.branch = &u
}

// BranchID returns the value of the "branch_id" field in the mutation.
func (m *TubMovementMutation) BranchID() (r uuid.UUID, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchID returns the old "branch_id" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldBranchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchID: %w", err)
	}
	return oldValue.BranchID, nil
}

// ResetBranchID resets all changes to the "branch_id" field.
func (m *TubMovementMutation) ResetBranchID() {
	m.branch = nil
}

// SetFlavorID sets the "flavor_id" field.
func (m *TubMovementMutation) SetFlavorID(u uuid.UUID) {
	m.flavor = &u
}

// FlavorID returns the value of the "flavor_id" field in the mutation.
func (m *TubMovementMutation) FlavorID() (r uuid.UUID, exists bool) {
	v := m.flavor
	if v == nil {
		return
	}
	return *v, true
}

// OldFlavorID returns the old "flavor_id" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldFlavorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlavorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlavorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlavorID: %w", err)
	}
	return oldValue.FlavorID, nil
}

// ResetFlavorID resets all changes to the "flavor_id" field.
func (m *TubMovementMutation) ResetFlavorID() {
	m.flavor = nil
}

// SetKind sets the "kind" field.
func (m *TubMovementMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TubMovementMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TubMovementMutation) ResetKind() {
	m.kind = nil
}

// SetQuantity sets the "quantity" field.
func (m *TubMovementMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *TubMovementMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *TubMovementMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *TubMovementMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *TubMovementMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetNote sets the "note" field.
func (m *TubMovementMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *TubMovementMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *TubMovementMutation) ClearNote() {
	m.note = nil
	m.clearedFields[tubmovement.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *TubMovementMutation) NoteCleared() bool {
	_, ok := m.clearedFields[tubmovement.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *TubMovementMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, tubmovement.FieldNote)
}

// SetMovedAt sets the "moved_at" field.
func (m *TubMovementMutation) SetMovedAt(t time.Time) {
	m.moved_at = &t
}

// MovedAt returns the value of the "moved_at" field in the mutation.
func (m *TubMovementMutation) MovedAt() (r time.Time, exists bool) {
	v := m.moved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMovedAt returns the old "moved_at" field's value of the TubMovement entity.
// If the TubMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TubMovementMutation) OldMovedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMovedAt: %w", err)
	}
	return oldValue.MovedAt, nil
}

// ResetMovedAt resets all changes to the "moved_at" field.
func (m *TubMovementMutation) ResetMovedAt() {
	m.moved_at = nil
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (m *TubMovementMutation) ClearBranch() {
	m.clearedbranch = true
	m.clearedFields[tubmovement.FieldBranchID] = struct{}{}
}

// BranchCleared reports if the "branch" edge to the Branch entity was cleared.
func (m *TubMovementMutation) BranchCleared() bool {
	return m.clearedbranch
}

// BranchIDs returns the "branch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BranchID instead. It exists only for internal usage by the builders.
func (m *TubMovementMutation) BranchIDs() (ids []uuid.UUID) {
	if id := m.branch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBranch resets all changes to the "branch" edge.
func (m *TubMovementMutation) ResetBranch() {
	m.branch = nil
	m.clearedbranch = false
}

// ClearFlavor clears the "flavor" edge to the Flavor entity.
func (m *TubMovementMutation) ClearFlavor() {
	m.clearedflavor = true
	m.clearedFields[tubmovement.FieldFlavorID] = struct{}{}
}

// FlavorCleared reports if the "flavor" edge to the Flavor entity was cleared.
func (m *TubMovementMutation) FlavorCleared() bool {
	return m.clearedflavor
}

// FlavorIDs returns the "flavor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlavorID instead. It exists only for internal usage by the builders.
func (m *TubMovementMutation) FlavorIDs() (ids []uuid.UUID) {
	if id := m.flavor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlavor resets all changes to the "flavor" edge.
func (m *TubMovementMutation) ResetFlavor() {
	m.flavor = nil
	m.clearedflavor = false
}

// Where appends a list predicates to the TubMovementMutation builder.
func (m *TubMovementMutation) Where(ps ...predicate.TubMovement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TubMovementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TubMovementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TubMovement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TubMovementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TubMovementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TubMovement).
func (m *TubMovementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TubMovementMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.branch != nil {
		fields = append(fields, tubmovement.FieldBranchID)
	}
	if m.flavor != nil {
		fields = append(fields, tubmovement.FieldFlavorID)
	}
	if m.kind != nil {
		fields = append(fields, tubmovement.FieldKind)
	}
	if m.quantity != nil {
		fields = append(fields, tubmovement.FieldQuantity)
	}
	if m.note != nil {
		fields = append(fields, tubmovement.FieldNote)
	}
	if m.moved_at != nil {
		fields = append(fields, tubmovement.FieldMovedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TubMovementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tubmovement.FieldBranchID:
		return m.BranchID()
	case tubmovement.FieldFlavorID:
		return m.FlavorID()
	case tubmovement.FieldKind:
		return m.Kind()
	case tubmovement.FieldQuantity:
		return m.Quantity()
	case tubmovement.FieldNote:
		return m.Note()
	case tubmovement.FieldMovedAt:
		return m.MovedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TubMovementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tubmovement.FieldBranchID:
		return m.OldBranchID(ctx)
	case tubmovement.FieldFlavorID:
		return m.OldFlavorID(ctx)
	case tubmovement.FieldKind:
		return m.OldKind(ctx)
	case tubmovement.FieldQuantity:
		return m.OldQuantity(ctx)
	case tubmovement.FieldNote:
		return m.OldNote(ctx)
	case tubmovement.FieldMovedAt:
		return m.OldMovedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TubMovement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TubMovementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tubmovement.FieldBranchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchID(v)
		return nil
	case tubmovement.FieldFlavorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlavorID(v)
		return nil
	case tubmovement.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case tubmovement.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case tubmovement.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case tubmovement.FieldMovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMovedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TubMovement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TubMovementMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, tubmovement.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TubMovementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tubmovement.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TubMovementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tubmovement.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown TubMovement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TubMovementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tubmovement.FieldNote) {
		fields = append(fields, tubmovement.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TubMovementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TubMovementMutation) ClearField(name string) error {
	switch name {
	case tubmovement.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown TubMovement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TubMovementMutation) ResetField(name string) error {
	switch name {
	case tubmovement.FieldBranchID:
		m.ResetBranchID()
		return nil
	case tubmovement.FieldFlavorID:
		m.ResetFlavorID()
		return nil
	case tubmovement.FieldKind:
		m.ResetKind()
		return nil
	case tubmovement.FieldQuantity:
		m.ResetQuantity()
		return nil
	case tubmovement.FieldNote:
		m.ResetNote()
		return nil
	case tubmovement.FieldMovedAt:
		m.ResetMovedAt()
		return nil
	}
	return fmt.Errorf("unknown TubMovement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TubMovementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.branch != nil {
		edges = append(edges, tubmovement.EdgeBranch)
	}
	if m.flavor != nil {
		edges = append(edges, tubmovement.EdgeFlavor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TubMovementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tubmovement.EdgeBranch:
		if id := m.branch; id != nil {
			return []ent.Value{*id}
		}
	case tubmovement.EdgeFlavor:
		if id := m.flavor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TubMovementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TubMovementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TubMovementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbranch {
		edges = append(edges, tubmovement.EdgeBranch)
	}
	if m.clearedflavor {
		edges = append(edges, tubmovement.EdgeFlavor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TubMovementMutation) EdgeCleared(name string) bool {
	switch name {
	case tubmovement.EdgeBranch:
		return m.clearedbranch
	case tubmovement.EdgeFlavor:
		return m.clearedflavor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TubMovementMutation) ClearEdge(name string) error {
	switch name {
	case tubmovement.EdgeBranch:
		m.ClearBranch()
		return nil
	case tubmovement.EdgeFlavor:
		m.ClearFlavor()
		return nil
	}
	return fmt.Errorf("unknown TubMovement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TubMovementMutation) ResetEdge(name string) error {
	switch name {
	case tubmovement.EdgeBranch:
		m.ResetBranch()
		return nil
	case tubmovement.EdgeFlavor:
		m.ResetFlavor()
		return nil
	}
	return fmt.Errorf("unknown TubMovement edge %s", name)
}
