package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Area struct{ ent.Schema }

func (Area) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "areas"},
	}
}

func (Area) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("territory_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Area) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY areas -> ONE territory (FK: areas.territory_id)
		edge.From("territory", Territory.Type).
			Ref("areas").
			Field("territory_id").
			Required().
			Unique(),
		edge.To("branches", Branch.Type),
	}
}
