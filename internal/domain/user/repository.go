package user

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	// First returns the oldest user record, or ErrUserNotFound when the
	// table is empty.
	First(ctx context.Context) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
