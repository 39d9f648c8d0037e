package domain

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("the provided credentials are incorrect")

// User models an authenticated actor. The stock workflow reads users only
// for releaser attribution and never mutates them.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Firstname    string    `bun:"firstname,notnull" json:"firstname"`
	Lastname     string    `bun:"lastname,notnull" json:"lastname"`
	Username     string    `bun:"username,unique,notnull" json:"username"`
	Role         string    `bun:"role,notnull" json:"role"`
	PasswordHash string    `bun:"password,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// DisplayName is the "first last" form stored as the releaser on ledger rows.
func (u *User) DisplayName() string {
	return u.Firstname + " " + u.Lastname
}
