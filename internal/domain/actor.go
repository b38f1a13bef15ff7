package domain

import "slices"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// Actor is the authenticated caller as supplied by the identity provider.
type Actor struct {
	ID    string `json:"id"`
	Roles []Role `json:"roles"`
}

func (a Actor) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if slices.Contains(a.Roles, role) {
			return true
		}
	}

	return false
}
