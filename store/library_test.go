package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edlesonjrr/Bibliotech/model"
	"github.com/edlesonjrr/Bibliotech/store"
)

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func seedOneBook(available, total int) store.Snapshot {
	return store.Snapshot{
		Books: []model.Book{{
			ID:              "b1",
			Title:           "Dom Casmurro",
			Author:          "Machado de Assis",
			ISBN:            "9788525406958",
			Category:        "Literatura",
			TotalCopies:     total,
			AvailableCopies: available,
		}},
		Users: []model.User{{
			ID:       "u1",
			Name:     "Maria Oliveira",
			Email:    "maria.oliveira@email.com",
			Type:     model.TypeMember,
			IsActive: true,
		}},
	}
}

func TestCreateLoan_Success(t *testing.T) {
	lib := store.New(seedOneBook(3, 5), store.WithClock(fixedClock()))

	loan, err := lib.CreateLoan("b1", "u1")
	require.NoError(t, err)
	require.NotEmpty(t, loan.ID)
	require.Equal(t, "b1", loan.BookID)
	require.Equal(t, "u1", loan.UserID)
	require.Equal(t, model.LoanActive, loan.Status)
	require.Equal(t, testNow, loan.LoanDate)
	require.Equal(t, testNow.Add(store.LoanPeriod), loan.DueDate)
	require.Nil(t, loan.ReturnDate)

	b, ok := lib.BookByID("b1")
	require.True(t, ok)
	require.Equal(t, 2, b.AvailableCopies)
	require.Len(t, lib.Loans(), 1)
}

func TestCreateLoan_NoCopies(t *testing.T) {
	lib := store.New(seedOneBook(0, 5))

	_, err := lib.CreateLoan("b1", "u1")
	require.ErrorIs(t, err, store.ErrNoCopies)

	b, _ := lib.BookByID("b1")
	require.Equal(t, 0, b.AvailableCopies)
	require.Empty(t, lib.Loans())
}

func TestCreateLoan_UnknownBook(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	_, err := lib.CreateLoan("nope", "u1")
	require.ErrorIs(t, err, store.ErrBookNotFound)
	require.Empty(t, lib.Loans())
}

func TestCreateLoan_UnknownUser(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	_, err := lib.CreateLoan("b1", "nope")
	require.ErrorIs(t, err, store.ErrUserNotFound)

	b, _ := lib.BookByID("b1")
	require.Equal(t, 3, b.AvailableCopies)
	require.Empty(t, lib.Loans())
}

func TestCreateLoan_ExhaustsCopies(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	for i := 0; i < 3; i++ {
		_, err := lib.CreateLoan("b1", "u1")
		require.NoError(t, err)
	}
	_, err := lib.CreateLoan("b1", "u1")
	require.ErrorIs(t, err, store.ErrNoCopies)
	require.Len(t, lib.Loans(), 3)
}

func TestReturnLoan_Success(t *testing.T) {
	lib := store.New(seedOneBook(3, 5), store.WithClock(fixedClock()))

	loan, err := lib.CreateLoan("b1", "u1")
	require.NoError(t, err)

	returned, err := lib.ReturnLoan(loan.ID)
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	require.Equal(t, testNow, *returned.ReturnDate)

	b, _ := lib.BookByID("b1")
	require.Equal(t, 3, b.AvailableCopies)
}

func TestReturnLoan_Twice(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	loan, err := lib.CreateLoan("b1", "u1")
	require.NoError(t, err)

	_, err = lib.ReturnLoan(loan.ID)
	require.NoError(t, err)

	// the second return must not hand back another copy
	_, err = lib.ReturnLoan(loan.ID)
	require.ErrorIs(t, err, store.ErrAlreadyReturned)

	b, _ := lib.BookByID("b1")
	require.Equal(t, 3, b.AvailableCopies)
}

func TestReturnLoan_Unknown(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	_, err := lib.ReturnLoan("nope")
	require.ErrorIs(t, err, store.ErrLoanNotFound)
}

func TestLoanLifecycle_CopyBoundsHold(t *testing.T) {
	lib := store.New(seedOneBook(2, 2))

	// interleave creates and returns; the invariant 0 <= available <= total
	// must hold after every step
	var open []string
	for i := 0; i < 20; i++ {
		if i%3 == 2 && len(open) > 0 {
			_, err := lib.ReturnLoan(open[0])
			require.NoError(t, err)
			open = open[1:]
		} else {
			loan, err := lib.CreateLoan("b1", "u1")
			if err != nil {
				require.ErrorIs(t, err, store.ErrNoCopies)
			} else {
				open = append(open, loan.ID)
			}
		}
		b, _ := lib.BookByID("b1")
		require.GreaterOrEqual(t, b.AvailableCopies, 0)
		require.LessOrEqual(t, b.AvailableCopies, b.TotalCopies)
	}
}

func TestSearchBooks(t *testing.T) {
	lib := store.New(store.Seed())

	got := lib.SearchBooks("clean")
	require.Len(t, got, 1)
	require.Equal(t, "Clean Code", got[0].Title)

	got = lib.SearchBooks("machado")
	require.Len(t, got, 1)
	require.Equal(t, "Dom Casmurro", got[0].Title)

	// ISBN matches on substring
	got = lib.SearchBooks("9780451524935")
	require.Len(t, got, 1)
	require.Equal(t, "1984", got[0].Title)

	require.Empty(t, lib.SearchBooks("zzz-no-match"))

	// empty query matches everything, insertion order preserved
	got = lib.SearchBooks("")
	require.Len(t, got, 3)
	require.Equal(t, "Dom Casmurro", got[0].Title)
	require.Equal(t, "1984", got[1].Title)
	require.Equal(t, "Clean Code", got[2].Title)
}

func TestAddBook_AssignsID(t *testing.T) {
	lib := store.New(store.Snapshot{})

	b := lib.AddBook(model.Book{Title: "Refactoring", Author: "Martin Fowler", TotalCopies: 2, AvailableCopies: 2})
	require.NotEmpty(t, b.ID)

	got, ok := lib.BookByID(b.ID)
	require.True(t, ok)
	require.Equal(t, "Refactoring", got.Title)
}

func TestAddUser_StampsRegistrationDate(t *testing.T) {
	lib := store.New(store.Snapshot{}, store.WithClock(fixedClock()))

	u := lib.AddUser(model.User{Name: "Novo Membro", Email: "novo@email.com", Type: model.TypeMember, IsActive: true})
	require.NotEmpty(t, u.ID)
	require.Equal(t, testNow, u.RegistrationDate)
}

func TestUpdateBook_MergesPatch(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	title := "Dom Casmurro (ed. revista)"
	total := 6
	lib.UpdateBook("b1", model.BookPatch{Title: &title, TotalCopies: &total})

	b, _ := lib.BookByID("b1")
	require.Equal(t, title, b.Title)
	require.Equal(t, 6, b.TotalCopies)
	// untouched fields survive the merge
	require.Equal(t, "Machado de Assis", b.Author)
	require.Equal(t, 3, b.AvailableCopies)
}

func TestUpdateBook_UnknownIDIsNoop(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	title := "ignored"
	lib.UpdateBook("nope", model.BookPatch{Title: &title})
	require.Len(t, lib.Books(), 1)

	b, _ := lib.BookByID("b1")
	require.Equal(t, "Dom Casmurro", b.Title)
}

func TestDeleteBook_RejectedWhileOnLoan(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	loan, err := lib.CreateLoan("b1", "u1")
	require.NoError(t, err)

	require.ErrorIs(t, lib.DeleteBook("b1"), store.ErrBookHasLoans)
	_, ok := lib.BookByID("b1")
	require.True(t, ok)

	_, err = lib.ReturnLoan(loan.ID)
	require.NoError(t, err)

	require.NoError(t, lib.DeleteBook("b1"))
	_, ok = lib.BookByID("b1")
	require.False(t, ok)
}

func TestDeleteBook_UnknownIDIsNoop(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))
	require.NoError(t, lib.DeleteBook("nope"))
	require.Len(t, lib.Books(), 1)
}

func TestDeleteUser_RejectedWhileBorrowing(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	loan, err := lib.CreateLoan("b1", "u1")
	require.NoError(t, err)

	require.ErrorIs(t, lib.DeleteUser("u1"), store.ErrUserHasLoans)

	_, err = lib.ReturnLoan(loan.ID)
	require.NoError(t, err)

	require.NoError(t, lib.DeleteUser("u1"))
	_, ok := lib.UserByID("u1")
	require.False(t, ok)
}

func TestUpdateUser_RegistrationDateImmutable(t *testing.T) {
	lib := store.New(store.Seed())

	name := "Maria O. Santos"
	lib.UpdateUser("3", model.UserPatch{Name: &name})

	u, ok := lib.UserByID("3")
	require.True(t, ok)
	require.Equal(t, name, u.Name)
	require.Equal(t, time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC), u.RegistrationDate)
}

func TestUserLoans(t *testing.T) {
	lib := store.New(store.Seed())

	loans := lib.UserLoans("3")
	require.Len(t, loans, 2)
	require.Equal(t, model.LoanActive, loans[0].Status)
	require.Equal(t, model.LoanReturned, loans[1].Status)

	require.Empty(t, lib.UserLoans("1"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	lib := store.New(seedOneBook(3, 5))

	books := lib.Books()
	books[0].Title = "mutated"

	b, _ := lib.BookByID("b1")
	require.Equal(t, "Dom Casmurro", b.Title)
}
