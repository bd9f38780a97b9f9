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

	"github.com/joseph-ayodele/loans-extractor/constants"
	"github.com/joseph-ayodele/loans-extractor/db/ent/schema/utils"
)

type Paragraph struct{ ent.Schema }

func (Paragraph) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "paragraphs"},
	}
}

func (Paragraph) Fields() []ent.Field {
	return []ent.Field{
		// implicit auto-increment int id
		field.Int("page_number").Positive().Immutable(),
		field.String("content").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// sha256 over page number + normalized content, hex-encoded
		field.String("fingerprint").NotEmpty().Immutable().MaxLen(64),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ParagraphStatuses...)),
		field.String("error_detail").Optional().Nillable(),
		field.Time("extracted_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Paragraph) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE paragraph -> MANY loans
		edge.To("loans", Loan.Type),
	}
}

func (Paragraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").Unique(),
		index.Fields("status"),
		index.Fields("page_number", "status"),
	}
}
