package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

const mediaColumns = `m.id, m.title, m.description, m.filename, m.media_type, m.content_type, m.file_size,
	m.width, m.height, m.duration, m.thumbnail_url, m.uploaded_by, u.username, m.upload_time,
	m.visibility, m.likes, m.tags,
	(SELECT COUNT(*) FROM comments c WHERE c.media_id = m.id) AS comment_count`

const mediaFrom = ` FROM media m JOIN users u ON u.id = m.uploaded_by`

// scanMedia reads mediaColumns, after any leading columns given in extra.
func scanMedia(row pgx.Row, extra ...any) (*model.MediaItem, error) {
	var (
		m         model.MediaItem
		kind, vis string
	)
	dest := append(extra,
		&m.ID, &m.Title, &m.Description, &m.FileName, &kind, &m.ContentType, &m.FileSize,
		&m.Width, &m.Height, &m.Duration, &m.ThumbnailURL, &m.UploaderID, &m.UploaderName, &m.UploadedAt,
		&vis, &m.Likes, &m.Tags, &m.CommentCount)
	if err := row.Scan(dest...); err != nil {
		return nil, mapErr(err)
	}
	m.Kind = shared.MediaKind(kind)
	m.Visibility = shared.Visibility(vis)
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return &m, nil
}

func tagsArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (s *Storage) CreateMedia(ctx context.Context, m *model.MediaItem) error {
	err := s.DB.QueryRow(ctx,
		`INSERT INTO media
		 (title, description, filename, media_type, content_type, file_size, width, height,
		  duration, thumbnail_url, uploaded_by, upload_time, visibility, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		m.Title, m.Description, m.FileName, string(m.Kind), m.ContentType, m.FileSize, m.Width, m.Height,
		m.Duration, m.ThumbnailURL, m.UploaderID, m.UploadedAt, string(m.Visibility), tagsArg(m.Tags),
	).Scan(&m.ID)
	return mapErr(err)
}

func (s *Storage) GetMedia(ctx context.Context, id int64) (*model.MediaItem, error) {
	return scanMedia(s.DB.QueryRow(ctx, `SELECT `+mediaColumns+mediaFrom+` WHERE m.id = $1`, id))
}

// escapeLike makes the user's text match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// mediaListQuery builds the listing/search statement for f.
func mediaListQuery(f model.MediaFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	switch {
	case f.Scope.All:
	case f.Scope.ViewerID != 0:
		add("(m.visibility = 'public' OR m.uploaded_by = $%d)", f.Scope.ViewerID)
	default:
		where = append(where, "m.visibility = 'public'")
	}
	if f.Kind != "" {
		add("m.media_type = $%d", string(f.Kind))
	}
	if f.Visibility != "" {
		add("m.visibility = $%d", string(f.Visibility))
	}
	if len(f.Tags) > 0 {
		add("m.tags @> $%d", f.Tags)
	}
	if f.Query != "" {
		add("(m.title ILIKE $%[1]d OR m.description ILIKE $%[1]d)", "%"+escapeLike(f.Query)+"%")
	}
	if f.UploaderName != "" {
		add("u.username = $%d", f.UploaderName)
	}

	query := `SELECT ` + mediaColumns + mediaFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	switch f.Sort {
	case shared.SortUploadedNew:
		query += " ORDER BY m.upload_time DESC, m.id DESC"
	case shared.SortUploadedOld:
		query += " ORDER BY m.upload_time ASC, m.id ASC"
	case shared.SortNameAZ:
		query += " ORDER BY m.title ASC, m.id ASC"
	case shared.SortNameZA:
		query += " ORDER BY m.title DESC, m.id ASC"
	default:
		query += " ORDER BY m.id ASC"
	}
	return query, args
}

func (s *Storage) ListMedia(ctx context.Context, f model.MediaFilter) ([]model.MediaItem, error) {
	query, args := mediaListQuery(f)
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.MediaItem{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

func (s *Storage) UpdateMedia(ctx context.Context, m *model.MediaItem) error {
	return affected(s.DB.Exec(ctx,
		`UPDATE media
		 SET title = $1, description = $2, media_type = $3, tags = $4, visibility = $5, thumbnail_url = $6
		 WHERE id = $7`,
		m.Title, m.Description, string(m.Kind), tagsArg(m.Tags), string(m.Visibility), m.ThumbnailURL, m.ID))
}

func (s *Storage) DeleteMedia(ctx context.Context, id int64) error {
	return affected(s.DB.Exec(ctx, `DELETE FROM media WHERE id = $1`, id))
}

// IncrementLikes is a single UPDATE, so concurrent likes never overwrite each other.
func (s *Storage) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	var likes int64
	err := s.DB.QueryRow(ctx,
		`UPDATE media SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id,
	).Scan(&likes)
	return likes, mapErr(err)
}

func (s *Storage) MediaFileNamesByUploader(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.DB.Query(ctx, `SELECT filename FROM media WHERE uploaded_by = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
