package models

import (
	"fmt"
	"time"
)

// Role is a named capability tag held by an account. Authorization checks
// test set membership only; there is no role hierarchy.
type Role string

const (
	RoleUser       Role = "USER"
	RoleManagement Role = "MANAGEMENT"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole validates a role name against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleManagement, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Roles is an ordered set of role tags.
type Roles []Role

// Contains reports whether the set holds the given role.
func (r Roles) Contains(role Role) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the set holds at least one of the given roles.
func (r Roles) HasAny(roles ...Role) bool {
	for _, want := range roles {
		if r.Contains(want) {
			return true
		}
	}
	return false
}

// Strings converts the role set to plain strings for storage.
func (r Roles) Strings() []string {
	out := make([]string, len(r))
	for i, role := range r {
		out[i] = string(role)
	}
	return out
}

// RolesFromStrings converts stored role names back to a role set.
func RolesFromStrings(values []string) Roles {
	out := make(Roles, len(values))
	for i, v := range values {
		out[i] = Role(v)
	}
	return out
}

// User defines the account model based on the 'users' table
type User struct {
	ID                 int64     `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"` // Unique
	Password           string    `json:"-" db:"password"`        // Hashed password (excluded from JSON)
	Roles              Roles     `json:"roles" db:"roles"`
	AccountExpired     bool      `json:"accountExpired" db:"account_expired"`
	AccountLocked      bool      `json:"accountLocked" db:"account_locked"`
	CredentialsExpired bool      `json:"credentialsExpired" db:"credentials_expired"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// CanAuthenticate reports whether the account may log in: none of the
// lock/expire flags may be set.
func (u *User) CanAuthenticate() bool {
	return !u.AccountExpired && !u.AccountLocked && !u.CredentialsExpired
}

// Principal is the authenticated identity associated with the current
// request. Anonymous requests carry no principal.
type Principal struct {
	UserID   int64
	Username string
	Roles    Roles
}
