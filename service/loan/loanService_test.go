package loansvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edlesonjrr/Bibliotech/model"
	loansvc "github.com/edlesonjrr/Bibliotech/service/loan"
	"github.com/edlesonjrr/Bibliotech/store"
)

func seed() store.Snapshot {
	return store.Snapshot{
		Books: []model.Book{
			{ID: "b1", Title: "Dom Casmurro", Author: "Machado de Assis", TotalCopies: 2, AvailableCopies: 2},
			{ID: "b2", Title: "1984", Author: "George Orwell", TotalCopies: 1, AvailableCopies: 0},
		},
		Users: []model.User{
			{ID: "admin", Name: "Ana Silva", Type: model.TypeAdmin, IsActive: true},
			{ID: "m1", Name: "Maria Oliveira", Type: model.TypeMember, IsActive: true},
			{ID: "m2", Name: "José Souza", Type: model.TypeMember, IsActive: true},
		},
	}
}

func actor(lib *store.Library, id string) *model.User {
	u, ok := lib.UserByID(id)
	if !ok {
		return nil
	}
	return &u
}

func TestCreate_MemberForSelf(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	ln, err := svc.Create(context.Background(), actor(lib, "m1"), "b1", "m1")
	require.NoError(t, err)
	require.Equal(t, "m1", ln.UserID)
	require.Equal(t, model.LoanActive, ln.Status)
}

func TestCreate_MemberForOtherIsForbidden(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	_, err := svc.Create(context.Background(), actor(lib, "m1"), "b1", "m2")
	require.Equal(t, loansvc.ErrNotOwner, loansvc.Code(err))
	require.Empty(t, lib.Loans())
}

func TestCreate_NoSessionIsForbidden(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	_, err := svc.Create(context.Background(), nil, "b1", "m1")
	require.Equal(t, loansvc.ErrNotOwner, loansvc.Code(err))
}

func TestCreate_StaffForAnyone(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	ln, err := svc.Create(context.Background(), actor(lib, "admin"), "b1", "m2")
	require.NoError(t, err)
	require.Equal(t, "m2", ln.UserID)
}

func TestCreate_ErrorMapping(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)
	adm := actor(lib, "admin")

	_, err := svc.Create(context.Background(), adm, "b2", "m1")
	require.Equal(t, loansvc.ErrNoCopies, loansvc.Code(err))

	_, err = svc.Create(context.Background(), adm, "nope", "m1")
	require.Equal(t, loansvc.ErrBookNotFound, loansvc.Code(err))

	_, err = svc.Create(context.Background(), adm, "b1", "nope")
	require.Equal(t, loansvc.ErrUserNotFound, loansvc.Code(err))
}

func TestReturn_OwnerAndStaff(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	ln, err := svc.Create(context.Background(), actor(lib, "m1"), "b1", "m1")
	require.NoError(t, err)

	// another member may not return it
	_, err = svc.Return(context.Background(), actor(lib, "m2"), ln.ID)
	require.Equal(t, loansvc.ErrNotOwner, loansvc.Code(err))

	// the owner may
	got, err := svc.Return(context.Background(), actor(lib, "m1"), ln.ID)
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, got.Status)

	// staff may return anyone's loan
	ln2, err := svc.Create(context.Background(), actor(lib, "m2"), "b1", "m2")
	require.NoError(t, err)
	_, err = svc.Return(context.Background(), actor(lib, "admin"), ln2.ID)
	require.NoError(t, err)
}

func TestReturn_AlreadyReturned(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	ln, err := svc.Create(context.Background(), actor(lib, "m1"), "b1", "m1")
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), actor(lib, "m1"), ln.ID)
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), actor(lib, "m1"), ln.ID)
	require.Equal(t, loansvc.ErrAlreadyReturned, loansvc.Code(err))
}

func TestReturn_UnknownLoan(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	_, err := svc.Return(context.Background(), actor(lib, "admin"), "nope")
	require.Equal(t, loansvc.ErrLoanNotFound, loansvc.Code(err))

	_, err = svc.Return(context.Background(), actor(lib, "m1"), "nope")
	require.Equal(t, loansvc.ErrLoanNotFound, loansvc.Code(err))
}

func TestMyLoans_JoinsBookAndUser(t *testing.T) {
	lib := store.New(seed())
	svc := loansvc.New(lib)

	_, err := svc.Create(context.Background(), actor(lib, "m1"), "b1", "m1")
	require.NoError(t, err)

	rows, err := svc.MyLoans(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Book)
	require.Equal(t, "Dom Casmurro", rows[0].Book.Title)
	require.NotNil(t, rows[0].User)
	require.False(t, rows[0].Overdue)

	rows, err = svc.MyLoans(context.Background(), "m2")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestList_FilterAndSort(t *testing.T) {
	clock := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	lib := store.New(seed(), store.WithClock(func() time.Time { return clock }))
	svc := loansvc.New(lib)
	adm := actor(lib, "admin")

	first, err := svc.Create(context.Background(), adm, "b1", "m1")
	require.NoError(t, err)

	clock = clock.Add(24 * time.Hour)
	second, err := svc.Create(context.Background(), adm, "b1", "m2")
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), adm, first.ID)
	require.NoError(t, err)

	// newest first
	all, err := svc.List(context.Background(), loansvc.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)

	active, err := svc.List(context.Background(), loansvc.Filter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, second.ID, active[0].ID)

	returned, err := svc.List(context.Background(), loansvc.Filter{Status: "returned"})
	require.NoError(t, err)
	require.Len(t, returned, 1)
	require.Equal(t, first.ID, returned[0].ID)

	// text filter matches book title or user name, case-insensitive
	byUser, err := svc.List(context.Background(), loansvc.Filter{Query: "josé"})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	require.Equal(t, second.ID, byUser[0].ID)

	byTitle, err := svc.List(context.Background(), loansvc.Filter{Query: "dom casmurro"})
	require.NoError(t, err)
	require.Len(t, byTitle, 2)

	none, err := svc.List(context.Background(), loansvc.Filter{Query: "zzz-no-match"})
	require.NoError(t, err)
	require.Empty(t, none)
}
