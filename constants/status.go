package constants

// ParagraphStatus is the canonical status for rows in paragraphs.
type ParagraphStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ParagraphStatus = "PENDING"    // extracted, waiting for the model
	StatusProcessing ParagraphStatus = "PROCESSING" // claimed by the current run
	StatusDone       ParagraphStatus = "DONE"       // parsed; zero or more loan rows written
	StatusError      ParagraphStatus = "ERROR"      // terminal for this run; reset is an operator action
)

// ParagraphStatuses holds every valid value for the paragraphs.status column.
var ParagraphStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusDone),
	string(StatusError),
}

// LoanStatus is the derived lifecycle of an extracted loan.
type LoanStatus string

const (
	LoanActive LoanStatus = "Active"
	LoanClosed LoanStatus = "Closed"
)
