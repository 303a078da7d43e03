package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	ListWithTaskCount(ctx context.Context) ([]UserWithTaskCount, error)
}

// User represents a stored user. Password holds the credential hash and is
// never serialized.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary returns the public owner view of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is the denormalized owner view attached to tasks.
type UserSummary struct {
	ID    int64
	Name  string
	Email string
}

// UserWithTaskCount is a listing row with the number of tasks the user owns.
type UserWithTaskCount struct {
	User
	TasksCount int64
}
