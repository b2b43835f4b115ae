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

type Flavor struct{ ent.Schema }

func (Flavor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "flavors"},
	}
}

func (Flavor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.Bool("seasonal").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Flavor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("movements", TubMovement.Type),
	}
}
