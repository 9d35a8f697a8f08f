package model

// Stats is the derived summary of the current library state. TotalBooks counts
// physical copies, not distinct titles.
type Stats struct {
	TotalBooks       int              `json:"total_books"`
	TotalUsers       int              `json:"total_users"`
	ActiveLoans      int              `json:"active_loans"`
	OverdueLoans     int              `json:"overdue_loans"`
	BooksPerCategory map[string]int   `json:"books_per_category"`
	UsersByType      map[UserType]int `json:"users_by_type"`
}
