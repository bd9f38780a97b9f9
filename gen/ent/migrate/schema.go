// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LoansColumns holds the columns for the "loans" table.
	LoansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "deal_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "deal_type", Type: field.TypeString, Nullable: true},
		{Name: "loan_type", Type: field.TypeString, Nullable: true},
		{Name: "card_usage", Type: field.TypeBool, Nullable: true},
		{Name: "loan_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "loan_currency", Type: field.TypeString, Nullable: true, Size: 3},
		{Name: "termination_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "loan_status", Type: field.TypeString, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "paragraph_id", Type: field.TypeInt},
	}
	// LoansTable holds the schema information for the "loans" table.
	LoansTable = &schema.Table{
		Name:       "loans",
		Columns:    LoansColumns,
		PrimaryKey: []*schema.Column{LoansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "loans_paragraphs_loans",
				Columns:    []*schema.Column{LoansColumns[11]},
				RefColumns: []*schema.Column{ParagraphsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "loan_paragraph_id",
				Unique:  false,
				Columns: []*schema.Column{LoansColumns[11]},
			},
		},
	}
	// ParagraphsColumns holds the columns for the "paragraphs" table.
	ParagraphsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "fingerprint", Type: field.TypeString, Size: 64},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ParagraphsTable holds the schema information for the "paragraphs" table.
	ParagraphsTable = &schema.Table{
		Name:       "paragraphs",
		Columns:    ParagraphsColumns,
		PrimaryKey: []*schema.Column{ParagraphsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paragraph_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{ParagraphsColumns[3]},
			},
			{
				Name:    "paragraph_status",
				Unique:  false,
				Columns: []*schema.Column{ParagraphsColumns[4]},
			},
			{
				Name:    "paragraph_page_number_status",
				Unique:  false,
				Columns: []*schema.Column{ParagraphsColumns[1], ParagraphsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LoansTable,
		ParagraphsTable,
	}
)

func init() {
	LoansTable.ForeignKeys[0].RefTable = ParagraphsTable
	LoansTable.Annotation = &entsql.Annotation{
		Table: "loans",
	}
	ParagraphsTable.Annotation = &entsql.Annotation{
		Table: "paragraphs",
	}
}
