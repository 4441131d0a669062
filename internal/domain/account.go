package domain

import (
	"fmt"

	"cadizaccesible/pkg/e"
)

type Role string

const (
	RoleCitizen Role = "CITIZEN"
	RoleAdmin   Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCitizen, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, e.ErrParse)
}

// Account is a registered user. Email is the primary identifier and
// is never case-folded by the store.
type Account struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Secret string `json:"-"`
	Role   Role   `json:"role"`
}
