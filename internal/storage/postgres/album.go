package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

const albumColumns = `a.id, a.title, a.description, a.created_by, u.username, a.created_at,
	a.visibility, a.cover_media_id,
	(SELECT COUNT(*) FROM album_media am WHERE am.album_id = a.id) AS media_count`

const albumFrom = ` FROM albums a JOIN users u ON u.id = a.created_by`

func scanAlbum(row pgx.Row) (*model.Album, error) {
	var (
		a   model.Album
		vis string
	)
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.CreatorID, &a.CreatorName, &a.CreatedAt,
		&vis, &a.CoverMediaID, &a.MediaCount); err != nil {
		return nil, mapErr(err)
	}
	a.Visibility = shared.Visibility(vis)
	return &a, nil
}

// insertMembers writes one row per id with position = index in one statement.
func insertMembers(ctx context.Context, tx pgx.Tx, albumID int64, mediaIDs []int64) error {
	if len(mediaIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO album_media (album_id, media_id, position)
		 SELECT $1, ids.media_id, ids.ord - 1
		 FROM unnest($2::bigint[]) WITH ORDINALITY AS ids(media_id, ord)`,
		albumID, mediaIDs)
	return mapErr(err)
}

func (s *Storage) CreateAlbum(ctx context.Context, a *model.Album, mediaIDs []int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO albums (title, description, created_by, created_at, visibility, cover_media_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		a.Title, a.Description, a.CreatorID, a.CreatedAt, string(a.Visibility), a.CoverMediaID,
	).Scan(&a.ID)
	if err != nil {
		return mapErr(err)
	}
	if err := insertMembers(ctx, tx, a.ID, mediaIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Storage) GetAlbum(ctx context.Context, id int64) (*model.Album, error) {
	return scanAlbum(s.DB.QueryRow(ctx, `SELECT `+albumColumns+albumFrom+` WHERE a.id = $1`, id))
}

func (s *Storage) ListAlbumMembers(ctx context.Context, albumID int64) ([]model.AlbumMember, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT am.position, am.added_at, `+mediaColumns+`
		 FROM album_media am
		 JOIN media m ON m.id = am.media_id
		 JOIN users u ON u.id = m.uploaded_by
		 WHERE am.album_id = $1
		 ORDER BY am.position`, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.AlbumMember{}
	for rows.Next() {
		var member model.AlbumMember
		m, err := scanMedia(rows, &member.Position, &member.AddedAt)
		if err != nil {
			return nil, err
		}
		member.Media = *m
		result = append(result, member)
	}
	return result, rows.Err()
}

func albumListQuery(f model.AlbumFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	switch {
	case f.Scope.All:
	case f.Scope.ViewerID != 0:
		args = append(args, f.Scope.ViewerID)
		where = append(where, fmt.Sprintf("(a.visibility = 'public' OR a.created_by = $%d)", len(args)))
	default:
		where = append(where, "a.visibility = 'public'")
	}
	if f.Visibility != "" {
		args = append(args, string(f.Visibility))
		where = append(where, fmt.Sprintf("a.visibility = $%d", len(args)))
	}

	query := `SELECT ` + albumColumns + albumFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	return query + ` ORDER BY a.id`, args
}

func (s *Storage) ListAlbums(ctx context.Context, f model.AlbumFilter) ([]model.Album, error) {
	query, args := albumListQuery(f)
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Album{}
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

// UpdateAlbum locks the album row with the header UPDATE before replacing
// memberships, so concurrent replaces on one album run one after another.
func (s *Storage) UpdateAlbum(ctx context.Context, a *model.Album, mediaIDs *[]int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = affected(tx.Exec(ctx,
		`UPDATE albums
		 SET title = $1, description = $2, visibility = $3, cover_media_id = $4
		 WHERE id = $5`,
		a.Title, a.Description, string(a.Visibility), a.CoverMediaID, a.ID))
	if err != nil {
		return err
	}
	if mediaIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM album_media WHERE album_id = $1`, a.ID); err != nil {
			return err
		}
		if err := insertMembers(ctx, tx, a.ID, *mediaIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Storage) DeleteAlbum(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id))
}
