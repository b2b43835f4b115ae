// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Area is the predicate function for area builders.
type Area func(*sql.Selector)

// Branch is the predicate function for branch builders.
type Branch func(*sql.Selector)

// BudgetDay is the predicate function for budgetday builders.
type BudgetDay func(*sql.Selector)

// Flavor is the predicate function for flavor builders.
type Flavor func(*sql.Selector)

// SalesRecord is the predicate function for salesrecord builders.
type SalesRecord func(*sql.Selector)

// Territory is the predicate function for territory builders.
type Territory func(*sql.Selector)

// TubMovement is the predicate function for tubmovement builders.
type TubMovement func(*sql.Selector)
