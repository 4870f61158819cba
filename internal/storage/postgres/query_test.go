package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
	"github.com/job000/wedding2025-backend/internal/shared"
	"github.com/job000/wedding2025-backend/internal/storage"
)

var (
	_ service.UserStore    = (*Storage)(nil)
	_ service.MediaStore   = (*Storage)(nil)
	_ service.CommentStore = (*Storage)(nil)
	_ service.AlbumStore   = (*Storage)(nil)
	_ service.RSVPStore    = (*Storage)(nil)
	_ service.InfoStore    = (*Storage)(nil)
	_ service.FAQStore     = (*Storage)(nil)
)

func TestMediaListQuery_Scope(t *testing.T) {
	q, args := mediaListQuery(model.MediaFilter{})
	assert.Contains(t, q, "WHERE m.visibility = 'public'")
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(q, "ORDER BY m.id ASC"))

	q, args = mediaListQuery(model.MediaFilter{Scope: access.ListScope{ViewerID: 7}})
	assert.Contains(t, q, "(m.visibility = 'public' OR m.uploaded_by = $1)")
	assert.Equal(t, []any{int64(7)}, args)

	q, args = mediaListQuery(model.MediaFilter{Scope: access.ListScope{All: true}})
	assert.NotContains(t, q, "m.visibility = 'public'")
	assert.Empty(t, args)
}

func TestMediaListQuery_Filters(t *testing.T) {
	q, args := mediaListQuery(model.MediaFilter{
		Scope:        access.ListScope{All: true},
		Kind:         shared.KindVideo,
		Tags:         []string{"party", "dance"},
		Query:        "50%_off",
		UploaderName: "alice",
		Sort:         shared.SortUploadedNew,
	})

	assert.Contains(t, q, "m.media_type = $1")
	assert.Contains(t, q, "m.tags @> $2")
	assert.Contains(t, q, "(m.title ILIKE $3 OR m.description ILIKE $3)")
	assert.Contains(t, q, "u.username = $4")
	assert.True(t, strings.HasSuffix(q, "ORDER BY m.upload_time DESC, m.id DESC"))
	assert.Equal(t, []any{"video", []string{"party", "dance"}, `%50\%\_off%`, "alice"}, args)
}

func TestAlbumListQuery(t *testing.T) {
	q, args := albumListQuery(model.AlbumFilter{Scope: access.ListScope{ViewerID: 3}, Visibility: shared.VisibilityPrivate})
	assert.Contains(t, q, "(a.visibility = 'public' OR a.created_by = $1) AND a.visibility = $2")
	assert.Equal(t, []any{int64(3), "private"}, args)

	q, _ = albumListQuery(model.AlbumFilter{})
	assert.Contains(t, q, "WHERE a.visibility = 'public'")
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23505"}), storage.ErrDuplicate)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23503"}), storage.ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
	assert.NoError(t, mapErr(nil))
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "wedding", Password: "p@ss", Name: "gallery",
		SSLMode: "disable", ConnectTimeout: time.Second}
	assert.Equal(t, "postgres://wedding:p%40ss@db:5432/gallery?sslmode=disable", cfg.DSN())
}
