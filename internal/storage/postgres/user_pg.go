package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

const userColumns = `id, username, password_hash, role, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	if err := row.Scan(&u.ID, &u.UserName, &u.Password, &role, &u.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	u.Role = shared.Role(role)
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *model.User) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.UserName, u.Password, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt)
	return mapErr(err)
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(s.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE id=$1`, id))
}

func (s *Storage) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE username=$1`, username))
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Storage) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE users
		 SET password_hash=$1
		 WHERE id=$2`,
		hash, id))
}

func (s *Storage) UpdateRole(ctx context.Context, id int64, role shared.Role) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE users
		 SET role=$1
		 WHERE id=$2`,
		string(role), id))
}

// DeleteUser relies on ON DELETE CASCADE for media, comments, albums and memberships.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id))
}
