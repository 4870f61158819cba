package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

type AlbumService struct {
	Storage AlbumStore
	Media   MediaStore
}

func NewAlbumService(s AlbumStore, media MediaStore) *AlbumService {
	return &AlbumService{Storage: s, Media: media}
}

type CreateAlbumInput struct {
	Title        string
	Description  *string
	Visibility   string
	MediaIDs     []int64
	CoverMediaID *int64
}

type UpdateAlbumInput struct {
	Title        *string
	Description  *string
	Visibility   *string
	MediaIDs     *[]int64
	CoverMediaID *int64
}

// checkMedia fails on the first id that is missing or that r cannot view.
func (s *AlbumService) checkMedia(ctx context.Context, r access.Requester, ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return validation("Media %d listed more than once", id)
		}
		seen[id] = struct{}{}

		m, err := s.Media.GetMedia(ctx, id)
		if err != nil {
			return storeErr("get media", err, "Media "+strconv.FormatInt(id, 10))
		}
		if !access.CanView(m, r) {
			return forbidden("Access denied to media %d", id)
		}
	}
	return nil
}

func (s *AlbumService) checkCover(ctx context.Context, r access.Requester, id *int64) error {
	if id == nil {
		return nil
	}
	m, err := s.Media.GetMedia(ctx, *id)
	if err != nil {
		return storeErr("get media", err, "Cover media")
	}
	if !access.CanView(m, r) {
		return forbidden("Access denied to cover media")
	}
	return nil
}

// Create validates every member first; the header and memberships are then
// written in one transaction, so a failure leaves no album behind.
func (s *AlbumService) Create(ctx context.Context, r access.Requester, in CreateAlbumInput) (*model.Album, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validation("Title is required")
	}
	visibility := shared.VisibilityPublic
	if in.Visibility != "" {
		v, err := shared.ParseVisibility(in.Visibility)
		if err != nil {
			return nil, validation("Invalid visibility")
		}
		visibility = v
	}
	if err := s.checkMedia(ctx, r, in.MediaIDs); err != nil {
		return nil, err
	}
	if err := s.checkCover(ctx, r, in.CoverMediaID); err != nil {
		return nil, err
	}

	a := &model.Album{
		Title:        title,
		Description:  in.Description,
		CreatorID:    r.UserID,
		CreatorName:  r.Username,
		CreatedAt:    time.Now().UTC(),
		Visibility:   visibility,
		CoverMediaID: in.CoverMediaID,
	}
	if err := s.Storage.CreateAlbum(ctx, a, in.MediaIDs); err != nil {
		return nil, storeErr("create album", err, "Media")
	}
	return s.Get(ctx, r, a.ID)
}

// Get returns the album with the members r may view, ordered by position.
func (s *AlbumService) Get(ctx context.Context, r access.Requester, id int64) (*model.Album, error) {
	a, err := s.Storage.GetAlbum(ctx, id)
	if err != nil {
		return nil, storeErr("get album", err, "Album")
	}
	if !access.CanView(a, r) {
		return nil, forbidden("Access denied")
	}
	members, err := s.Storage.ListAlbumMembers(ctx, id)
	if err != nil {
		return nil, storeErr("list album members", err, "")
	}
	a.Members = access.FilterVisible(members, r)
	return a, nil
}

func (s *AlbumService) List(ctx context.Context, r access.Requester, visibility string) ([]model.Album, error) {
	f := model.AlbumFilter{Scope: access.ScopeFor(r)}
	if visibility != "" {
		v, err := shared.ParseVisibility(visibility)
		if err != nil {
			return nil, validation("Invalid visibility")
		}
		f.Visibility = v
	}
	albums, err := s.Storage.ListAlbums(ctx, f)
	return albums, storeErr("list albums", err, "")
}

// Update applies a partial patch. A media_ids list replaces the membership
// wholesale with positions 0..n-1 in the given order.
func (s *AlbumService) Update(ctx context.Context, r access.Requester, id int64, in UpdateAlbumInput) (*model.Album, error) {
	a, err := s.Storage.GetAlbum(ctx, id)
	if err != nil {
		return nil, storeErr("get album", err, "Album")
	}
	if !access.CanModify(a, r) {
		return nil, forbidden("Permission denied")
	}

	var patch model.AlbumPatch
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, validation("Title cannot be empty")
		}
		patch.Title = &title
	}
	patch.Description = in.Description
	if in.Visibility != nil {
		v, err := shared.ParseVisibility(*in.Visibility)
		if err != nil {
			return nil, validation("Invalid visibility")
		}
		if !access.CanChangeVisibility(a, r) {
			return nil, forbidden("Only the owner or an admin can change visibility")
		}
		patch.Visibility = &v
	}
	if in.MediaIDs != nil {
		if err := s.checkMedia(ctx, r, *in.MediaIDs); err != nil {
			return nil, err
		}
		patch.MediaIDs = in.MediaIDs
	}
	if err := s.checkCover(ctx, r, in.CoverMediaID); err != nil {
		return nil, err
	}
	patch.CoverMediaID = in.CoverMediaID

	patch.Apply(a)
	if err := s.Storage.UpdateAlbum(ctx, a, patch.MediaIDs); err != nil {
		return nil, storeErr("update album", err, "Album")
	}
	return s.Get(ctx, r, id)
}

func (s *AlbumService) Delete(ctx context.Context, r access.Requester, id int64) error {
	a, err := s.Storage.GetAlbum(ctx, id)
	if err != nil {
		return storeErr("get album", err, "Album")
	}
	if !access.CanModify(a, r) {
		return forbidden("Permission denied")
	}
	return storeErr("delete album", s.Storage.DeleteAlbum(ctx, id), "Album")
}
