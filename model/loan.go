// model/loan.go
package model

import "time"

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
)

type Loan struct {
	ID         string     `json:"id"`
	BookID     string     `json:"book_id"`
	UserID     string     `json:"user_id"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     LoanStatus `json:"status"`
	Notes      string     `json:"notes,omitempty"`
}

// IsOverdue reports whether the loan is active and past due at the given
// instant. Overdue is never stored as a status.
func (l Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanActive && now.After(l.DueDate)
}
