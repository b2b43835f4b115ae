package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"salestracker/constants"
	"salestracker/db/ent/schema/utils"

	"github.com/google/uuid"
)

type SalesRecord struct{ ent.Schema }

func (SalesRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sales_records"},
	}
}

func (SalesRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("branch_id", uuid.UUID{}),
		field.Time("business_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("window").NotEmpty().
			Validate(utils.EnumValidator(constants.SalesWindows...)),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.ReceiptKinds...)),
		field.Float("gross_sales").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("net_sales").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("guest_count").Optional().Nillable(),
		field.Float("cash_sales").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.JSON("categories", json.RawMessage{}).Optional(),
		field.String("status").NotEmpty().
			Default(string(constants.SubmissionPending)).
			Validate(utils.EnumValidator(constants.SubmissionStatuses...)),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.String("branch_raw").Optional().Nillable(),
		field.Bool("branch_match").Default(true),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SalesRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("sales").
			Field("branch_id").
			Required().
			Unique(),
	}
}

func (SalesRecord) Indexes() []ent.Index {
	return []ent.Index{
		// One submission per branch, day, window and format.
		index.Fields("branch_id", "business_date", "window", "kind").Unique(),
		index.Fields("status"),
	}
}
