package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/tracklite/tracklite/internal/shared/biztime"
)

// Default identity used as the comment author when no users exist. There is
// no authentication in this application; the first user record stands in for
// the current user.
const (
	DefaultName  = "System User"
	DefaultEmail = "system@example.com"
)

type User struct {
	id        uint
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %s", email)
	}

	now := biztime.NowUTC()
	return &User{
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewDefaultUser builds the fallback identity.
func NewDefaultUser() *User {
	u, _ := NewUser(DefaultName, DefaultEmail)
	return u
}

func ReconstructUser(id uint, name, email string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
