package model

type LoanEventType string

const (
	LoanEventLent     LoanEventType = "LENT"
	LoanEventReturned LoanEventType = "RETURNED"
)

// LoanEvent is published after every successful lend or return.
type LoanEvent struct {
	Type LoanEventType `json:"type"`
	Loan LoanView      `json:"loan"`
	// UserDebt is the user's accumulated debt after the operation.
	UserDebt int `json:"userDebt"`
}

type LoanCommandType string

const (
	LoanCommandLend   LoanCommandType = "lend"
	LoanCommandReturn LoanCommandType = "return"
)

// LoanCommand is a lend or return request delivered through the message queue.
type LoanCommand struct {
	Type     LoanCommandType `json:"type" validate:"required,oneof=lend return"`
	UserID   string          `json:"userId" validate:"required"`
	BookID   string          `json:"bookId" validate:"required"`
	BranchID string          `json:"branchId" validate:"required"`
	// Date is the loan date for lend (optional) or the return date for return.
	Date string `json:"date" validate:"omitempty,date"`
}
