package model

import (
	"time"

	"github.com/job000/wedding2025-backend/internal/shared"
)

type User struct {
	ID        int64       `db:"id"`
	UserName  string      `db:"username"`
	Password  string      `db:"password_hash"`
	Role      shared.Role `db:"role"`
	CreatedAt time.Time   `db:"created_at"`
}

func (u *User) IsAdmin() bool { return u.Role == shared.RoleAdmin }
