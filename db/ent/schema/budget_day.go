package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type BudgetDay struct{ ent.Schema }

func (BudgetDay) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "budget_days"},
	}
}

func (BudgetDay) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("branch_id", uuid.UUID{}),
		field.Time("business_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("weekday").NotEmpty(),
		field.Float("budget_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("budget_guest_count").Optional().Nillable(),
		field.Float("ly_sales").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("ly_guest_count").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BudgetDay) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("budget_days").
			Field("branch_id").
			Required().
			Unique(),
	}
}

func (BudgetDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("branch_id", "business_date").Unique(),
	}
}
