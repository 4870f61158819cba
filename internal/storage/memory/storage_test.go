package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func seed(t *testing.T, s *Storage) (*model.User, *model.MediaItem) {
	t.Helper()
	ctx := context.Background()
	u := &model.User{UserName: "alice", Password: "x", Role: shared.RoleUser}
	require.NoError(t, s.CreateUser(ctx, u))
	m := &model.MediaItem{Title: "Dance", Kind: shared.KindImage, FileName: "a.jpg",
		UploaderID: u.ID, Visibility: shared.VisibilityPublic, Tags: []string{"party", "dance"}}
	require.NoError(t, s.CreateMedia(ctx, m))
	return u, m
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := New()
	seed(t, s)
	err := s.CreateUser(context.Background(), &model.User{UserName: "alice"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestDeleteMedia_Cascades(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, m := seed(t, s)

	c := &model.Comment{MediaID: m.ID, UserID: u.ID, Body: "nice"}
	require.NoError(t, s.CreateComment(ctx, c))
	a := &model.Album{Title: "A", CreatorID: u.ID, Visibility: shared.VisibilityPublic, CoverMediaID: &m.ID}
	require.NoError(t, s.CreateAlbum(ctx, a, []int64{m.ID}))

	require.NoError(t, s.DeleteMedia(ctx, m.ID))

	_, err := s.GetComment(ctx, c.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	members, err := s.ListAlbumMembers(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
	got, err := s.GetAlbum(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, got.MediaCount)
	assert.Nil(t, got.CoverMediaID)
}

func TestCreateAlbum_MissingMediaWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, m := seed(t, s)

	a := &model.Album{Title: "A", CreatorID: u.ID, Visibility: shared.VisibilityPublic}
	err := s.CreateAlbum(ctx, a, []int64{m.ID, 404})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	albums, err := s.ListAlbums(ctx, model.AlbumFilter{Scope: access.ListScope{All: true}})
	require.NoError(t, err)
	assert.Empty(t, albums)
}

func TestIncrementLikes_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, m := seed(t, s)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.IncrementLikes(ctx, m.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.GetMedia(ctx, m.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, got.Likes)
}

func TestListMedia_Filters(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, _ := seed(t, s)
	desc := "Cutting the CAKE"
	require.NoError(t, s.CreateMedia(ctx, &model.MediaItem{Title: "Cake", Description: &desc, Kind: shared.KindVideo,
		UploaderID: u.ID, Visibility: shared.VisibilityPrivate, Tags: []string{"party"}}))

	all := access.ListScope{All: true}

	list, err := s.ListMedia(ctx, model.MediaFilter{Scope: all, Tags: []string{"party", "dance"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dance", list[0].Title)

	list, err = s.ListMedia(ctx, model.MediaFilter{Scope: all, Query: "cake"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, shared.KindVideo, list[0].Kind)

	list, err = s.ListMedia(ctx, model.MediaFilter{Scope: access.ListScope{}})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = s.ListMedia(ctx, model.MediaFilter{Scope: all, UploaderName: "alice", Sort: shared.SortNameAZ})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cake", list[0].Title)
}

func TestDeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, m := seed(t, s)

	bob := &model.User{UserName: "bob", Role: shared.RoleUser}
	require.NoError(t, s.CreateUser(ctx, bob))
	require.NoError(t, s.CreateComment(ctx, &model.Comment{MediaID: m.ID, UserID: bob.ID, Body: "hi"}))
	a := &model.Album{Title: "A", CreatorID: u.ID, Visibility: shared.VisibilityPublic}
	require.NoError(t, s.CreateAlbum(ctx, a, []int64{m.ID}))

	require.NoError(t, s.DeleteUser(ctx, u.ID))

	_, err := s.GetMedia(ctx, m.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetAlbum(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	comments, err := s.ListComments(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
