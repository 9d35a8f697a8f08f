// Package policy maps user roles to permitted actions. The capability table
// is the single source of truth; callers gate UI actions and endpoints with
// it, independent of the store's own invariants.
package policy

import "github.com/edlesonjrr/Bibliotech/model"

type Action string

const (
	ManageUsers    Action = "manage_users"
	ManageBooks    Action = "manage_books"
	ManageAllLoans Action = "manage_all_loans"
	ViewAllUsers   Action = "view_all_users"
)

var capabilities = map[model.UserType]map[Action]bool{
	model.TypeAdmin: {
		ManageUsers:    true,
		ManageBooks:    true,
		ManageAllLoans: true,
		ViewAllUsers:   true,
	},
	model.TypeLibrarian: {
		ManageBooks:    true,
		ManageAllLoans: true,
		ViewAllUsers:   true,
	},
	// members only act on their own loans, which is not a table capability
	model.TypeMember: {},
}

// Can reports whether the user may perform the action. Without a session
// (nil user) every capability is denied.
func Can(u *model.User, a Action) bool {
	if u == nil {
		return false
	}
	return capabilities[u.Type][a]
}

func CanManageUsers(u *model.User) bool    { return Can(u, ManageUsers) }
func CanManageBooks(u *model.User) bool    { return Can(u, ManageBooks) }
func CanManageAllLoans(u *model.User) bool { return Can(u, ManageAllLoans) }
func CanViewAllUsers(u *model.User) bool   { return Can(u, ViewAllUsers) }
