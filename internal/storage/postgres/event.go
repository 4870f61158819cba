package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/job000/wedding2025-backend/internal/model"
)

func collectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	return v, mapErr(err)
}

func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (s *Storage) CreateRSVP(ctx context.Context, r *model.RSVP) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO rsvps (name, email, attending, allergies, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		r.Name, r.Email, r.Attending, r.Allergies, r.CreatedAt,
	).Scan(&r.ID)
	return mapErr(err)
}

func (s *Storage) GetRSVP(ctx context.Context, id int64) (*model.RSVP, error) {
	return collectOne[model.RSVP](s.DB.Query(ctx,
		`SELECT id, name, email, attending, allergies, created_at FROM rsvps WHERE id = $1`, id))
}

func (s *Storage) ListRSVPs(ctx context.Context) ([]model.RSVP, error) {
	return collectAll[model.RSVP](s.DB.Query(ctx,
		`SELECT id, name, email, attending, allergies, created_at FROM rsvps ORDER BY id`))
}

func (s *Storage) UpdateRSVP(ctx context.Context, r *model.RSVP) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE rsvps
		 SET attending = $1, allergies = $2
		 WHERE id = $3`,
		r.Attending, r.Allergies, r.ID))
}

func (s *Storage) DeleteRSVP(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM rsvps WHERE id = $1`, id))
}

func (s *Storage) CreateInfo(ctx context.Context, i *model.Info) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO info (title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		i.Title, i.Content, i.CreatedAt, i.UpdatedAt,
	).Scan(&i.ID)
	return mapErr(err)
}

func (s *Storage) GetInfo(ctx context.Context, id int64) (*model.Info, error) {
	return collectOne[model.Info](s.DB.Query(ctx,
		`SELECT id, title, content, created_at, updated_at FROM info WHERE id = $1`, id))
}

func (s *Storage) ListInfo(ctx context.Context) ([]model.Info, error) {
	return collectAll[model.Info](s.DB.Query(ctx,
		`SELECT id, title, content, created_at, updated_at FROM info ORDER BY id`))
}

func (s *Storage) UpdateInfo(ctx context.Context, i *model.Info) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE info
		 SET title = $1, content = $2, updated_at = $3
		 WHERE id = $4`,
		i.Title, i.Content, i.UpdatedAt, i.ID))
}

func (s *Storage) DeleteInfo(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM info WHERE id = $1`, id))
}

func (s *Storage) CreateFAQ(ctx context.Context, f *model.FAQ) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO faq (question, answer, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		f.Question, f.Answer, f.CreatedAt,
	).Scan(&f.ID)
	return mapErr(err)
}

func (s *Storage) GetFAQ(ctx context.Context, id int64) (*model.FAQ, error) {
	return collectOne[model.FAQ](s.DB.Query(ctx,
		`SELECT id, question, answer, created_at FROM faq WHERE id = $1`, id))
}

func (s *Storage) ListFAQ(ctx context.Context) ([]model.FAQ, error) {
	return collectAll[model.FAQ](s.DB.Query(ctx,
		`SELECT id, question, answer, created_at FROM faq ORDER BY id`))
}

func (s *Storage) UpdateFAQ(ctx context.Context, f *model.FAQ) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE faq
		 SET question = $1, answer = $2
		 WHERE id = $3`,
		f.Question, f.Answer, f.ID))
}

func (s *Storage) DeleteFAQ(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM faq WHERE id = $1`, id))
}
