package domain

import (
	"context"
	"time"
)

// User represents a registered account. Password always holds a bcrypt
// digest, never plaintext. The token subject is the email.
type User struct {
	ID         int64
	UUID       string
	Username   string
	Email      string
	Password   string
	CreateTime time.Time
	DelFlag    bool
}

// UserRepository defines the interface for user data persistence.
// Lookups exclude soft-deleted rows and return (nil, nil) on a miss.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUUID(ctx context.Context, uuid string) (*User, error)
}
