package book

import "github.com/edlesonjrr/Bibliotech/model"

type CreateBookReq struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	ISBN            string `json:"isbn" validate:"required"`
	Category        string `json:"category" validate:"required"`
	PublishedYear   int    `json:"published_year" validate:"required"`
	TotalCopies     int    `json:"total_copies" validate:"required,gte=1"`
	AvailableCopies int    `json:"available_copies" validate:"gte=0"`
	Description     string `json:"description"`
	CoverURL        string `json:"cover_url"`
}

func (r CreateBookReq) toBook() model.Book {
	return model.Book{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		Category:        r.Category,
		PublishedYear:   r.PublishedYear,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
		Description:     r.Description,
		CoverURL:        r.CoverURL,
	}
}
