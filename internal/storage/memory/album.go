package memory

import (
	"context"
	"sort"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/storage"
)

// checkRefs must be called with mu held. Nothing is written when it fails.
func (s *Storage) checkRefs(a *model.Album, mediaIDs []int64) error {
	for _, id := range mediaIDs {
		if _, ok := s.media[id]; !ok {
			return storage.ErrNotFound
		}
	}
	if a.CoverMediaID != nil {
		if _, ok := s.media[*a.CoverMediaID]; !ok {
			return storage.ErrNotFound
		}
	}
	return nil
}

func rows(mediaIDs []int64) []membership {
	now := time.Now().UTC()
	out := make([]membership, len(mediaIDs))
	for i, id := range mediaIDs {
		out[i] = membership{mediaID: id, position: i, addedAt: now}
	}
	return out
}

func (s *Storage) CreateAlbum(_ context.Context, a *model.Album, mediaIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[a.CreatorID]; !ok {
		return storage.ErrNotFound
	}
	if err := s.checkRefs(a, mediaIDs); err != nil {
		return err
	}
	a.ID = s.next("albums")
	a.CreatedAt = nowIfZero(a.CreatedAt)
	cp := *a
	cp.Members = nil
	s.albums[a.ID] = &cp
	s.members[a.ID] = rows(mediaIDs)
	return nil
}

// albumView must be called with mu held.
func (s *Storage) albumView(a *model.Album) model.Album {
	cp := *a
	cp.CreatorName = s.userName(a.CreatorID)
	cp.MediaCount = len(s.members[a.ID])
	cp.Members = nil
	return cp
}

func (s *Storage) GetAlbum(_ context.Context, id int64) (*model.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.albums[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := s.albumView(a)
	return &v, nil
}

func (s *Storage) ListAlbumMembers(_ context.Context, albumID int64) ([]model.AlbumMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[albumID]; !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]model.AlbumMember, 0, len(s.members[albumID]))
	for _, r := range s.members[albumID] {
		m, ok := s.media[r.mediaID]
		if !ok {
			continue
		}
		out = append(out, model.AlbumMember{Position: r.position, AddedAt: r.addedAt, Media: s.mediaView(m)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *Storage) ListAlbums(_ context.Context, f model.AlbumFilter) ([]model.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Album, 0)
	for _, a := range s.albums {
		if !f.Scope.Allows(a) {
			continue
		}
		if f.Visibility != "" && a.Visibility != f.Visibility {
			continue
		}
		out = append(out, s.albumView(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) UpdateAlbum(_ context.Context, a *model.Album, mediaIDs *[]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.albums[a.ID]
	if !ok {
		return storage.ErrNotFound
	}
	var ids []int64
	if mediaIDs != nil {
		ids = *mediaIDs
	}
	if err := s.checkRefs(a, ids); err != nil {
		return err
	}
	cur.Title = a.Title
	cur.Description = a.Description
	cur.Visibility = a.Visibility
	cur.CoverMediaID = a.CoverMediaID
	if mediaIDs != nil {
		s.members[a.ID] = rows(ids)
	}
	return nil
}

func (s *Storage) DeleteAlbum(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.albums, id)
	delete(s.members, id)
	return nil
}
