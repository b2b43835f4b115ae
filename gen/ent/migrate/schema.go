// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AreasColumns holds the columns for the "areas" table.
	AreasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "territory_id", Type: field.TypeUUID},
	}
	// AreasTable holds the schema information for the "areas" table.
	AreasTable = &schema.Table{
		Name:       "areas",
		Columns:    AreasColumns,
		PrimaryKey: []*schema.Column{AreasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "areas_territories_areas",
				Columns:    []*schema.Column{AreasColumns[4]},
				RefColumns: []*schema.Column{TerritoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// BranchesColumns holds the columns for the "branches" table.
	BranchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "area_id", Type: field.TypeUUID},
	}
	// BranchesTable holds the schema information for the "branches" table.
	BranchesTable = &schema.Table{
		Name:       "branches",
		Columns:    BranchesColumns,
		PrimaryKey: []*schema.Column{BranchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "branches_areas_branches",
				Columns:    []*schema.Column{BranchesColumns[6]},
				RefColumns: []*schema.Column{AreasColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "branch_area_id_name",
				Unique:  true,
				Columns: []*schema.Column{BranchesColumns[6], BranchesColumns[1]},
			},
		},
	}
	// BudgetDaysColumns holds the columns for the "budget_days" table.
	BudgetDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "business_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "weekday", Type: field.TypeString},
		{Name: "budget_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "budget_guest_count", Type: field.TypeInt, Nullable: true},
		{Name: "ly_sales", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "ly_guest_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "branch_id", Type: field.TypeUUID},
	}
	// BudgetDaysTable holds the schema information for the "budget_days" table.
	BudgetDaysTable = &schema.Table{
		Name:       "budget_days",
		Columns:    BudgetDaysColumns,
		PrimaryKey: []*schema.Column{BudgetDaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "budget_days_branches_budget_days",
				Columns:    []*schema.Column{BudgetDaysColumns[9]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "budgetday_branch_id_business_date",
				Unique:  true,
				Columns: []*schema.Column{BudgetDaysColumns[9], BudgetDaysColumns[1]},
			},
		},
	}
	// FlavorsColumns holds the columns for the "flavors" table.
	FlavorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "seasonal", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FlavorsTable holds the schema information for the "flavors" table.
	FlavorsTable = &schema.Table{
		Name:       "flavors",
		Columns:    FlavorsColumns,
		PrimaryKey: []*schema.Column{FlavorsColumns[0]},
	}
	// SalesRecordsColumns holds the columns for the "sales_records" table.
	SalesRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "business_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "window", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "gross_sales", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "net_sales", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "guest_count", Type: field.TypeInt, Nullable: true},
		{Name: "cash_sales", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "branch_raw", Type: field.TypeString, Nullable: true},
		{Name: "branch_match", Type: field.TypeBool, Default: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "branch_id", Type: field.TypeUUID},
	}
	// SalesRecordsTable holds the schema information for the "sales_records" table.
	SalesRecordsTable = &schema.Table{
		Name:       "sales_records",
		Columns:    SalesRecordsColumns,
		PrimaryKey: []*schema.Column{SalesRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sales_records_branches_sales",
				Columns:    []*schema.Column{SalesRecordsColumns[16]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "salesrecord_branch_id_business_date_window_kind",
				Unique:  true,
				Columns: []*schema.Column{SalesRecordsColumns[16], SalesRecordsColumns[1], SalesRecordsColumns[2], SalesRecordsColumns[3]},
			},
			{
				Name:    "salesrecord_status",
				Unique:  false,
				Columns: []*schema.Column{SalesRecordsColumns[9]},
			},
		},
	}
	// TerritoriesColumns holds the columns for the "territories" table.
	TerritoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TerritoriesTable holds the schema information for the "territories" table.
	TerritoriesTable = &schema.Table{
		Name:       "territories",
		Columns:    TerritoriesColumns,
		PrimaryKey: []*schema.Column{TerritoriesColumns[0]},
	}
	// TubMovementsColumns holds the columns for the "tub_movements" table.
	TubMovementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "moved_at", Type: field.TypeTime},
		{Name: "branch_id", Type: field.TypeUUID},
		{Name: "flavor_id", Type: field.TypeUUID},
	}
	// TubMovementsTable holds the schema information for the "tub_movements" table.
	TubMovementsTable = &schema.Table{
		Name:       "tub_movements",
		Columns:    TubMovementsColumns,
		PrimaryKey: []*schema.Column{TubMovementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tub_movements_branches_movements",
				Columns:    []*schema.Column{TubMovementsColumns[5]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tub_movements_flavors_movements",
				Columns:    []*schema.Column{TubMovementsColumns[6]},
				RefColumns: []*schema.Column{FlavorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tubmovement_branch_id_flavor_id_moved_at",
				Unique:  false,
				Columns: []*schema.Column{TubMovementsColumns[5], TubMovementsColumns[6], TubMovementsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AreasTable,
		BranchesTable,
		BudgetDaysTable,
		FlavorsTable,
		SalesRecordsTable,
		TerritoriesTable,
		TubMovementsTable,
	}
)

func init() {
	AreasTable.ForeignKeys[0].RefTable = TerritoriesTable
	AreasTable.Annotation = &entsql.Annotation{
		Table: "areas",
	}
	BranchesTable.ForeignKeys[0].RefTable = AreasTable
	BranchesTable.Annotation = &entsql.Annotation{
		Table: "branches",
	}
	BudgetDaysTable.ForeignKeys[0].RefTable = BranchesTable
	BudgetDaysTable.Annotation = &entsql.Annotation{
		Table: "budget_days",
	}
	FlavorsTable.Annotation = &entsql.Annotation{
		Table: "flavors",
	}
	SalesRecordsTable.ForeignKeys[0].RefTable = BranchesTable
	SalesRecordsTable.Annotation = &entsql.Annotation{
		Table: "sales_records",
	}
	TerritoriesTable.Annotation = &entsql.Annotation{
		Table: "territories",
	}
	TubMovementsTable.ForeignKeys[0].RefTable = BranchesTable
	TubMovementsTable.ForeignKeys[1].RefTable = FlavorsTable
	TubMovementsTable.Annotation = &entsql.Annotation{
		Table: "tub_movements",
	}
}
