package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Branch struct{ ent.Schema }

func (Branch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "branches"},
	}
}

func (Branch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("area_id", uuid.UUID{}),
		// Canonical name; spelling alternates are separated by "/",
		// e.g. "LAMCY/LANCY PLAZA".
		field.String("name").NotEmpty(),
		field.String("code").Optional().Nillable(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Branch) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY branches -> ONE area (FK: branches.area_id)
		edge.From("area", Area.Type).
			Ref("branches").
			Field("area_id").
			Required().
			Unique(),
		edge.To("sales", SalesRecord.Type),
		edge.To("budget_days", BudgetDay.Type),
		edge.To("movements", TubMovement.Type),
	}
}

func (Branch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("area_id", "name").Unique(),
	}
}
