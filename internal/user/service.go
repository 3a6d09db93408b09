package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLength = 30
	minUsernameLength = 3
	bcryptCost        = 12
)

var (
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrUsernameLength        = fmt.Errorf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPasswordRequired      = errors.New("password cannot be empty")
	ErrUserHasExpenses       = errors.New("user is referenced by existing expenses")
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service interface {
	Register(username, password, email, firstName, lastName string) (*User, error)
	GetUserByID(userID int64) (*User, error)
	GetAllUsers() ([]User, error)
	DeleteUser(userID int64) error
	DoesUserExistByID(userID int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func (s *service) Register(username, password, email, firstName, lastName string) (*User, error) {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, ErrUsernameLength
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	exists, err := s.repo.userExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// GetUserByID returns nil without an error when no user exists.
func (s *service) GetUserByID(userID int64) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetAllUsers() ([]User, error) {
	users, err := s.repo.getAllUsers()
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []User{}, nil
	}
	return users, nil
}

// DeleteUser deletes by identifier and does not report a missing id.
// A user still owning expenses cannot be removed.
func (s *service) DeleteUser(userID int64) error {
	return s.repo.deleteUser(userID)
}

func (s *service) DoesUserExistByID(userID int64) (bool, error) {
	return s.repo.userExistsByID(userID)
}
