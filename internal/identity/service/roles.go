package service

import "github.com/irendoro/trpis-tdd/internal/identity/domain"

// RoleAssigner hands out the admin role to the first account ever registered
// and user to everyone after. The decision is sticky: once admin has been
// assigned it is never assigned again, even if that account is later
// deleted. Callers must serialize access (the identity service does).
type RoleAssigner struct {
	adminAssigned bool
}

func NewRoleAssigner() *RoleAssigner { return &RoleAssigner{} }

func (r *RoleAssigner) Assign() domain.Role {
	if !r.adminAssigned {
		r.adminAssigned = true
		return domain.RoleAdmin
	}
	return domain.RoleUser
}
