// Package user describes the signed-in principal: who they are and which role they act in.
package user

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"parcelhub/internal/pkg/errs"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleDriver   Role = "driver"
	RoleCustomer Role = "customer"
)

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleVendor, RoleDriver, RoleCustomer}
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AllRoles(), r) {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

// User is a verified principal. For vendors and drivers ID doubles as the vendor or
// driver identifier used on parcels.
type User struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

func (u User) Validate() error {
	var roleErr error
	if _, err := ParseRole(string(u.Role)); err != nil {
		roleErr = err
	}
	return errors.Join(
		requiredField("id", u.ID),
		requiredField("email", u.Email),
		roleErr,
	)
}

// HasRole reports whether the user acts in any of roles.
func (u User) HasRole(roles ...Role) bool {
	return slices.Contains(roles, u.Role)
}

func requiredField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
