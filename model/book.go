// model/book.go
package model

type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	PublishedYear   int    `json:"published_year"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Description     string `json:"description,omitempty"`
	CoverURL        string `json:"cover_url,omitempty"`
}

// HasAvailableCopies reports whether at least one copy can be lent out.
func (b Book) HasAvailableCopies() bool { return b.AvailableCopies > 0 }

// CopiesInUse is the number of copies currently on loan.
func (b Book) CopiesInUse() int { return b.TotalCopies - b.AvailableCopies }

// BookPatch carries a partial update; nil fields are left untouched.
type BookPatch struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	Category        *string `json:"category,omitempty"`
	PublishedYear   *int    `json:"published_year,omitempty"`
	TotalCopies     *int    `json:"total_copies,omitempty"`
	AvailableCopies *int    `json:"available_copies,omitempty"`
	Description     *string `json:"description,omitempty"`
	CoverURL        *string `json:"cover_url,omitempty"`
}
