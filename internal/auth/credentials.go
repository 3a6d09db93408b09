package auth

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Account struct {
	Username string
	// bcrypt-encoded
	PasswordHash string
	Roles        []string
}

func (a Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CredentialStore holds the fixed account list. It is loaded once at
// startup and read-only afterwards.
type CredentialStore struct {
	accounts map[string]Account
}

// LoadCredentialStore builds the two-account policy from the environment:
// AUTH_USER_PASSWORD_HASH and AUTH_ADMIN_PASSWORD_HASH must carry
// bcrypt-encoded passwords for the "user" and "admin" accounts.
func LoadCredentialStore() (*CredentialStore, error) {
	userHash := os.Getenv("AUTH_USER_PASSWORD_HASH")
	adminHash := os.Getenv("AUTH_ADMIN_PASSWORD_HASH")
	if userHash == "" || adminHash == "" {
		return nil, errors.New("AUTH_USER_PASSWORD_HASH and AUTH_ADMIN_PASSWORD_HASH must be set")
	}

	return NewCredentialStore(
		Account{Username: "user", PasswordHash: userHash, Roles: []string{RoleUser}},
		Account{Username: "admin", PasswordHash: adminHash, Roles: []string{RoleUser, RoleAdmin}},
	), nil
}

func NewCredentialStore(accounts ...Account) *CredentialStore {
	store := &CredentialStore{accounts: make(map[string]Account, len(accounts))}
	for _, account := range accounts {
		store.accounts[account.Username] = account
	}
	return store
}

// Verify checks the password against the stored hash and returns the
// matching account.
func (s *CredentialStore) Verify(username, password string) (*Account, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &account, nil
}

// Lookup returns the account without checking a password, for token
// validation.
func (s *CredentialStore) Lookup(username string) (*Account, bool) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, false
	}
	return &account, true
}
