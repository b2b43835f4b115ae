// Code generated by ent, DO NOT EDIT.

package ent

import (
	"salestracker/db/ent/schema"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/budgetday"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/salesrecord"
	"salestracker/gen/ent/territory"
	"salestracker/gen/ent/tubmovement"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	areaFields := schema.Area{}.Fields()
	_ = areaFields
	// areaDescName is the schema descriptor for name field.
	areaDescName := areaFields[2].Descriptor()
	// area.NameValidator is a validator for the "name" field. It is called by the builders before save.
	area.NameValidator = areaDescName.Validators[0].(func(string) error)
	// areaDescCreatedAt is the schema descriptor for created_at field.
	areaDescCreatedAt := areaFields[3].Descriptor()
	// area.DefaultCreatedAt holds the default value on creation for the created_at field.
	area.DefaultCreatedAt = areaDescCreatedAt.Default.(func() time.Time)
	// areaDescUpdatedAt is the schema descriptor for updated_at field.
	areaDescUpdatedAt := areaFields[4].Descriptor()
	// area.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	area.DefaultUpdatedAt = areaDescUpdatedAt.Default.(func() time.Time)
	// area.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	area.UpdateDefaultUpdatedAt = areaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// areaDescID is the schema descriptor for id field.
	areaDescID := areaFields[0].Descriptor()
	// area.DefaultID holds the default value on creation for the id field.
	area.DefaultID = areaDescID.Default.(func() uuid.UUID)
	branchFields := schema.Branch{}.Fields()
	_ = branchFields
	// branchDescName is the schema descriptor for name field.
	branchDescName := branchFields[2].Descriptor()
	// branch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	branch.NameValidator = branchDescName.Validators[0].(func(string) error)
	// branchDescActive is the schema descriptor for active field.
	branchDescActive := branchFields[4].Descriptor()
	// branch.DefaultActive holds the default value on creation for the active field.
	branch.DefaultActive = branchDescActive.Default.(bool)
	// branchDescCreatedAt is the schema descriptor for created_at field.
	branchDescCreatedAt := branchFields[5].Descriptor()
	// branch.DefaultCreatedAt holds the default value on creation for the created_at field.
	branch.DefaultCreatedAt = branchDescCreatedAt.Default.(func() time.Time)
	// branchDescUpdatedAt is the schema descriptor for updated_at field.
	branchDescUpdatedAt := branchFields[6].Descriptor()
	// branch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	branch.DefaultUpdatedAt = branchDescUpdatedAt.Default.(func() time.Time)
	// branch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	branch.UpdateDefaultUpdatedAt = branchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// branchDescID is the schema descriptor for id field.
	branchDescID := branchFields[0].Descriptor()
	// branch.DefaultID holds the default value on creation for the id field.
	branch.DefaultID = branchDescID.Default.(func() uuid.UUID)
	budgetdayFields := schema.BudgetDay{}.Fields()
	_ = budgetdayFields
	// budgetdayDescWeekday is the schema descriptor for weekday field.
	budgetdayDescWeekday := budgetdayFields[3].Descriptor()
	// budgetday.WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	budgetday.WeekdayValidator = budgetdayDescWeekday.Validators[0].(func(string) error)
	// budgetdayDescCreatedAt is the schema descriptor for created_at field.
	budgetdayDescCreatedAt := budgetdayFields[8].Descriptor()
	// budgetday.DefaultCreatedAt holds the default value on creation for the created_at field.
	budgetday.DefaultCreatedAt = budgetdayDescCreatedAt.Default.(func() time.Time)
	// budgetdayDescUpdatedAt is the schema descriptor for updated_at field.
	budgetdayDescUpdatedAt := budgetdayFields[9].Descriptor()
	// budgetday.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetday.DefaultUpdatedAt = budgetdayDescUpdatedAt.Default.(func() time.Time)
	// budgetday.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetday.UpdateDefaultUpdatedAt = budgetdayDescUpdatedAt.UpdateDefault.(func() time.Time)
	// budgetdayDescID is the schema descriptor for id field.
	budgetdayDescID := budgetdayFields[0].Descriptor()
	// budgetday.DefaultID holds the default value on creation for the id field.
	budgetday.DefaultID = budgetdayDescID.Default.(func() uuid.UUID)
	flavorFields := schema.Flavor{}.Fields()
	_ = flavorFields
	// flavorDescName is the schema descriptor for name field.
	flavorDescName := flavorFields[1].Descriptor()
	// flavor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	flavor.NameValidator = flavorDescName.Validators[0].(func(string) error)
	// flavorDescSeasonal is the schema descriptor for seasonal field.
	flavorDescSeasonal := flavorFields[2].Descriptor()
	// flavor.DefaultSeasonal holds the default value on creation for the seasonal field.
	flavor.DefaultSeasonal = flavorDescSeasonal.Default.(bool)
	// flavorDescCreatedAt is the schema descriptor for created_at field.
	flavorDescCreatedAt := flavorFields[3].Descriptor()
	// flavor.DefaultCreatedAt holds the default value on creation for the created_at field.
	flavor.DefaultCreatedAt = flavorDescCreatedAt.Default.(func() time.Time)
	// flavorDescUpdatedAt is the schema descriptor for updated_at field.
	flavorDescUpdatedAt := flavorFields[4].Descriptor()
	// flavor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	flavor.DefaultUpdatedAt = flavorDescUpdatedAt.Default.(func() time.Time)
	// flavor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	flavor.UpdateDefaultUpdatedAt = flavorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// flavorDescID is the schema descriptor for id field.
	flavorDescID := flavorFields[0].Descriptor()
	// flavor.DefaultID holds the default value on creation for the id field.
	flavor.DefaultID = flavorDescID.Default.(func() uuid.UUID)
	salesrecordFields := schema.SalesRecord{}.Fields()
	_ = salesrecordFields
	// salesrecordDescWindow is the schema descriptor for window field.
	salesrecordDescWindow := salesrecordFields[3].Descriptor()
	// salesrecord.WindowValidator is a validator for the "window" field. It is called by the builders before save.
	salesrecord.WindowValidator = func() func(string) error {
		validators := salesrecordDescWindow.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(window string) error {
			for _, fn := range fns {
				if err := fn(window); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// salesrecordDescKind is the schema descriptor for kind field.
	salesrecordDescKind := salesrecordFields[4].Descriptor()
	// salesrecord.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	salesrecord.KindValidator = func() func(string) error {
		validators := salesrecordDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// salesrecordDescStatus is the schema descriptor for status field.
	salesrecordDescStatus := salesrecordFields[10].Descriptor()
	// salesrecord.DefaultStatus holds the default value on creation for the status field.
	salesrecord.DefaultStatus = salesrecordDescStatus.Default.(string)
	// salesrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	salesrecord.StatusValidator = func() func(string) error {
		validators := salesrecordDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// salesrecordDescBranchMatch is the schema descriptor for branch_match field.
	salesrecordDescBranchMatch := salesrecordFields[13].Descriptor()
	// salesrecord.DefaultBranchMatch holds the default value on creation for the branch_match field.
	salesrecord.DefaultBranchMatch = salesrecordDescBranchMatch.Default.(bool)
	// salesrecordDescCreatedAt is the schema descriptor for created_at field.
	salesrecordDescCreatedAt := salesrecordFields[15].Descriptor()
	// salesrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	salesrecord.DefaultCreatedAt = salesrecordDescCreatedAt.Default.(func() time.Time)
	// salesrecordDescUpdatedAt is the schema descriptor for updated_at field.
	salesrecordDescUpdatedAt := salesrecordFields[16].Descriptor()
	// salesrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	salesrecord.DefaultUpdatedAt = salesrecordDescUpdatedAt.Default.(func() time.Time)
	// salesrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	salesrecord.UpdateDefaultUpdatedAt = salesrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// salesrecordDescID is the schema descriptor for id field.
	salesrecordDescID := salesrecordFields[0].Descriptor()
	// salesrecord.DefaultID holds the default value on creation for the id field.
	salesrecord.DefaultID = salesrecordDescID.Default.(func() uuid.UUID)
	territoryFields := schema.Territory{}.Fields()
	_ = territoryFields
	// territoryDescName is the schema descriptor for name field.
	territoryDescName := territoryFields[1].Descriptor()
	// territory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	territory.NameValidator = territoryDescName.Validators[0].(func(string) error)
	// territoryDescCreatedAt is the schema descriptor for created_at field.
	territoryDescCreatedAt := territoryFields[2].Descriptor()
	// territory.DefaultCreatedAt holds the default value on creation for the created_at field.
	territory.DefaultCreatedAt = territoryDescCreatedAt.Default.(func() time.Time)
	// territoryDescUpdatedAt is the schema descriptor for updated_at field.
	territoryDescUpdatedAt := territoryFields[3].Descriptor()
	// territory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	territory.DefaultUpdatedAt = territoryDescUpdatedAt.Default.(func() time.Time)
	// territory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	territory.UpdateDefaultUpdatedAt = territoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// territoryDescID is the schema descriptor for id field.
	territoryDescID := territoryFields[0].Descriptor()
	// territory.DefaultID holds the default value on creation for the id field.
	territory.DefaultID = territoryDescID.Default.(func() uuid.UUID)
	tubmovementFields := schema.TubMovement{}.Fields()
	_ = tubmovementFields
	// tubmovementDescKind is the schema descriptor for kind field.
	tubmovementDescKind := tubmovementFields[3].Descriptor()
	// tubmovement.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	tubmovement.KindValidator = func() func(string) error {
		validators := tubmovementDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tubmovementDescMovedAt is the schema descriptor for moved_at field.
	tubmovementDescMovedAt := tubmovementFields[6].Descriptor()
	// tubmovement.DefaultMovedAt holds the default value on creation for the moved_at field.
	tubmovement.DefaultMovedAt = tubmovementDescMovedAt.Default.(func() time.Time)
	// tubmovementDescID is the schema descriptor for id field.
	tubmovementDescID := tubmovementFields[0].Descriptor()
	// tubmovement.DefaultID holds the default value on creation for the id field.
	tubmovement.DefaultID = tubmovementDescID.Default.(func() uuid.UUID)
}
