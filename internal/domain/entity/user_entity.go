package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/oksasatya/go-user-api/pkg/helpers"
)

var (
	ErrEmailRequired    = errors.New("users must have an email address")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes long")
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID          string
	Email       string
	Password    string
	Name        string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserOption sets an optional field on a user under construction.
type UserOption func(*User)

// WithName sets the display name.
func WithName(name string) UserOption {
	return func(u *User) { u.Name = name }
}

// WithActive overrides the default active flag.
func WithActive(active bool) UserOption {
	return func(u *User) { u.IsActive = active }
}

// NormalizeEmail lower-cases the domain part of an address and leaves the
// local part untouched. Input without an "@" is only trimmed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// NewUser builds an active, unprivileged user with a hashed password.
func NewUser(email, password string, opts ...UserOption) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	u := &User{Email: email, IsActive: true}
	for _, opt := range opts {
		opt(u)
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// NewSuperuser builds a user carrying the staff and superuser flags.
func NewSuperuser(email, password string, opts ...UserOption) (*User, error) {
	u, err := NewUser(email, password, opts...)
	if err != nil {
		return nil, err
	}
	u.IsStaff = true
	u.IsSuperuser = true
	return u, nil
}

// SetPassword replaces the stored hash with a hash of plain.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return ErrPasswordRequired
	}
	if len(plain) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	if u.Password == "" {
		return false
	}
	return helpers.CompareHashAndPassword(u.Password, plain)
}
