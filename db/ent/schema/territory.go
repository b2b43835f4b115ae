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

type Territory struct{ ent.Schema }

func (Territory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "territories"},
	}
}

func (Territory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Territory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("areas", Area.Type),
	}
}
