package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/job000/wedding2025-backend/internal/model"
)

const commentColumns = `c.id, c.media_id, c.user_id, u.username, c.comment, c.created_at, c.updated_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.MediaID, &c.UserID, &c.UserName, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (s *Storage) CreateComment(ctx context.Context, c *model.Comment) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO comments (media_id, user_id, comment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.MediaID, c.UserID, c.Body, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	return mapErr(err)
}

func (s *Storage) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	return scanComment(s.DB.QueryRow(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`, id))
}

func (s *Storage) ListComments(ctx context.Context, mediaID int64) ([]model.Comment, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.media_id = $1
		 ORDER BY c.created_at, c.id`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (s *Storage) UpdateComment(ctx context.Context, id int64, body string, updatedAt time.Time) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE comments
		 SET comment = $1, updated_at = $2
		 WHERE id = $3`,
		body, updatedAt, id))
}

func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id))
}
