package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"salestracker/constants"
	"salestracker/db/ent/schema/utils"

	"github.com/google/uuid"
)

type TubMovement struct{ ent.Schema }

func (TubMovement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tub_movements"},
	}
}

func (TubMovement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("branch_id", uuid.UUID{}),
		field.UUID("flavor_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.MovementKinds...)),
		// Signed tub count; ADJUST rows may be negative.
		field.Int("quantity"),
		field.String("note").Optional().Nillable(),
		field.Time("moved_at").Default(time.Now).Immutable(),
	}
}

func (TubMovement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("movements").
			Field("branch_id").
			Required().
			Unique(),
		edge.From("flavor", Flavor.Type).
			Ref("movements").
			Field("flavor_id").
			Required().
			Unique(),
	}
}

func (TubMovement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("branch_id", "flavor_id", "moved_at"),
	}
}
