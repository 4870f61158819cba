package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/service"
	"github.com/job000/wedding2025-backend/internal/shared"
	"github.com/job000/wedding2025-backend/internal/storage/local"
	"github.com/job000/wedding2025-backend/internal/storage/memory"
)

type env struct {
	store    *memory.Storage
	blobs    service.BlobStore
	tokens   *service.TokenManager
	users    *service.UserService
	media    *service.MediaService
	comments *service.CommentService
	albums   *service.AlbumService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	blobs, err := local.New(afero.NewMemMapFs(), "uploads", "http://test")
	require.NoError(t, err)
	return newEnvWithBlobs(t, blobs)
}

func newEnvWithBlobs(t *testing.T, blobs service.BlobStore) *env {
	t.Helper()
	store := memory.New()
	log := zap.NewNop().Sugar()
	tokens := service.NewTokenManager("test-secret", time.Hour)
	return &env{
		store:    store,
		blobs:    blobs,
		tokens:   tokens,
		users:    service.NewUserService(store, store, blobs, tokens, log),
		media:    service.NewMediaService(store, store, blobs, log),
		comments: service.NewCommentService(store, store),
		albums:   service.NewAlbumService(store, store),
	}
}

// user registers name and returns it as a requester, promoted when role is admin.
func (e *env) user(t *testing.T, name string, role shared.Role) access.Requester {
	t.Helper()
	ctx := context.Background()
	u, err := e.users.Register(ctx, name, "password")
	require.NoError(t, err)
	if role == shared.RoleAdmin {
		require.NoError(t, e.store.UpdateRole(ctx, u.ID, shared.RoleAdmin))
	}
	return access.Requester{UserID: u.ID, Username: u.UserName, Role: role}
}

func (e *env) upload(t *testing.T, r access.Requester, title, visibility string) int64 {
	t.Helper()
	m, err := e.media.Upload(context.Background(), r, service.UploadInput{
		Title:      title,
		MediaType:  "image",
		Visibility: visibility,
		FileName:   title + ".jpg",
		Data:       []byte("not really a jpeg"),
	})
	require.NoError(t, err)
	return m.ID
}

// makePrivate uploads a public item as the owner, then flips it to private.
func (e *env) makePrivate(t *testing.T, r access.Requester, title string) int64 {
	t.Helper()
	id := e.upload(t, r, title, "public")
	private := "private"
	_, err := e.media.Update(context.Background(), r, id, service.UpdateMediaInput{Visibility: &private})
	require.NoError(t, err)
	return id
}

// failingBlobs saves normally but never manages to delete.
type failingBlobs struct {
	service.BlobStore
	deletes int
}

func (f *failingBlobs) Delete(context.Context, string) error {
	f.deletes++
	return errors.New("bucket unavailable")
}

func ptr[T any](v T) *T { return &v }
