// Package credentials verifies email and password pairs against a fixed account list
// holding bcrypt hashes.
package credentials

import (
	"context"
	"fmt"
	"strings"

	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

type Account struct {
	User         user.User
	PasswordHash []byte
}

// StaticVerifier implements ports.CredentialVerifier over an in-memory account list.
type StaticVerifier struct {
	accounts map[string]Account
}

func NewStaticVerifier(accounts []Account) (*StaticVerifier, error) {
	byEmail := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		a.User.Email = strings.ToLower(strings.TrimSpace(a.User.Email))
		if err := a.User.Validate(); err != nil {
			return nil, fmt.Errorf("account %q: %w", a.User.Email, err)
		}
		if _, err := bcrypt.Cost(a.PasswordHash); err != nil {
			return nil, fmt.Errorf("account %q: %w", a.User.Email, err)
		}
		if _, dup := byEmail[a.User.Email]; dup {
			return nil, fmt.Errorf("account %q is listed twice", a.User.Email)
		}
		byEmail[a.User.Email] = a
	}
	return &StaticVerifier{accounts: byEmail}, nil
}

// Verify returns ports.ErrInvalidCredentials for unknown emails and wrong passwords alike.
func (v *StaticVerifier) Verify(_ context.Context, email, password string) (user.User, error) {
	account, ok := v.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return user.User{}, ports.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return user.User{}, ports.ErrInvalidCredentials
	}
	return account.User, nil
}

// ParseAccounts reads a comma-separated list of id:email:role:bcryptHash entries.
// The display name is the local part of the email.
func ParseAccounts(list string) ([]Account, error) {
	var accounts []Account
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("account entry %q: want id:email:role:bcryptHash", entry)
		}
		role, err := user.ParseRole(parts[2])
		if err != nil {
			return nil, fmt.Errorf("account entry %q: %w", parts[1], err)
		}

		email := strings.TrimSpace(parts[1])
		name, _, _ := strings.Cut(email, "@")
		accounts = append(accounts, Account{
			User: user.User{
				ID:    strings.TrimSpace(parts[0]),
				Email: email,
				Name:  name,
				Role:  role,
			},
			PasswordHash: []byte(strings.TrimSpace(parts[3])),
		})
	}
	return accounts, nil
}

type demoUser struct {
	user     user.User
	password string
}

var demoUsers = []demoUser{
	{user.User{ID: "1", Email: "admin@teacheazy.com", Name: "Admin User", Role: user.RoleAdmin}, "admin123"},
	{user.User{ID: "2", Email: "vendor@teacheazy.com", Name: "Vendor User", Role: user.RoleVendor}, "vendor123"},
	{user.User{ID: "3", Email: "driver@teacheazy.com", Name: "Driver User", Role: user.RoleDriver}, "driver123"},
	{user.User{ID: "4", Email: "customer@teacheazy.com", Name: "Customer User", Role: user.RoleCustomer}, "customer123"},
}

// DemoAccounts hashes the four demo logins, one per role, at the given bcrypt cost.
func DemoAccounts(cost int) ([]Account, error) {
	accounts := make([]Account, 0, len(demoUsers))
	for _, d := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), cost)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, Account{User: d.user, PasswordHash: hash})
	}
	return accounts, nil
}
