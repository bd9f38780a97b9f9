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
)

type Loan struct{ ent.Schema }

func (Loan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "loans"},
	}
}

func (Loan) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so queries can filter without loading the edge
		field.Int("paragraph_id"),
		field.String("bank_name").Optional().Nillable(),
		field.Time("deal_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("deal_type").Optional().Nillable(),
		field.String("loan_type").Optional().Nillable(),
		field.Bool("card_usage").Optional().Nillable(),
		field.Float("loan_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("loan_currency").Optional().Nillable().MinLen(3).MaxLen(3),
		field.Time("termination_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("loan_status").Optional().Nillable(),
		field.Time("extracted_at").Default(time.Now).Immutable(),
	}
}

func (Loan) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY loans -> ONE paragraph (FK: loans.paragraph_id)
		edge.From("paragraph", Paragraph.Type).
			Ref("loans").
			Field("paragraph_id").
			Required().
			Unique(),
	}
}

func (Loan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("paragraph_id"),
	}
}
