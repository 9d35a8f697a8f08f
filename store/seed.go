package store

import (
	"time"

	"github.com/edlesonjrr/Bibliotech/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed is the fixture the service starts with. It is passed to New by the
// caller, never baked into the Library itself.
func Seed() Snapshot {
	returned := date(2024, time.February, 5)
	return Snapshot{
		Books: []model.Book{
			{
				ID:              "1",
				Title:           "Dom Casmurro",
				Author:          "Machado de Assis",
				ISBN:            "9788525406958",
				Category:        "Literatura",
				PublishedYear:   1899,
				TotalCopies:     5,
				AvailableCopies: 3,
				Description:     "Romance clássico da literatura brasileira",
			},
			{
				ID:              "2",
				Title:           "1984",
				Author:          "George Orwell",
				ISBN:            "9780451524935",
				Category:        "Ficção",
				PublishedYear:   1949,
				TotalCopies:     8,
				AvailableCopies: 6,
				Description:     "Distopia clássica sobre vigilância e totalitarismo",
			},
			{
				ID:              "3",
				Title:           "Clean Code",
				Author:          "Robert C. Martin",
				ISBN:            "9780132350884",
				Category:        "Tecnologia",
				PublishedYear:   2008,
				TotalCopies:     4,
				AvailableCopies: 2,
				Description:     "Guia para escrever código limpo e mantível",
			},
		},
		Users: []model.User{
			{
				ID:               "1",
				Name:             "Ana Silva",
				Email:            "ana.silva@biblioteca.com",
				Phone:            "(11) 99999-9999",
				Type:             model.TypeAdmin,
				RegistrationDate: date(2023, time.January, 15),
				IsActive:         true,
			},
			{
				ID:               "2",
				Name:             "Carlos Santos",
				Email:            "carlos.santos@biblioteca.com",
				Phone:            "(11) 88888-8888",
				Type:             model.TypeLibrarian,
				RegistrationDate: date(2023, time.February, 20),
				IsActive:         true,
			},
			{
				ID:               "3",
				Name:             "Maria Oliveira",
				Email:            "maria.oliveira@email.com",
				Phone:            "(11) 77777-7777",
				Type:             model.TypeMember,
				RegistrationDate: date(2023, time.March, 10),
				IsActive:         true,
			},
		},
		Loans: []model.Loan{
			{
				ID:       "1",
				BookID:   "1",
				UserID:   "3",
				LoanDate: date(2024, time.January, 15),
				DueDate:  date(2024, time.February, 15),
				Status:   model.LoanActive,
			},
			{
				ID:         "2",
				BookID:     "3",
				UserID:     "3",
				LoanDate:   date(2024, time.January, 10),
				DueDate:    date(2024, time.February, 10),
				ReturnDate: &returned,
				Status:     model.LoanReturned,
			},
		},
	}
}
