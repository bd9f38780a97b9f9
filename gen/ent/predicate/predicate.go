// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Loan is the predicate function for loan builders.
type Loan func(*sql.Selector)

// Paragraph is the predicate function for paragraph builders.
type Paragraph func(*sql.Selector)
