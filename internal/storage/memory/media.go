package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
	"github.com/job000/wedding2025-backend/internal/storage"
)

// mediaView must be called with mu held.
func (s *Storage) mediaView(m *model.MediaItem) model.MediaItem {
	cp := *m
	cp.Tags = append([]string{}, m.Tags...)
	cp.UploaderName = s.userName(m.UploaderID)
	cp.CommentCount = 0
	for _, c := range s.comments {
		if c.MediaID == m.ID {
			cp.CommentCount++
		}
	}
	cp.Comments = nil
	return cp
}

func (s *Storage) CreateMedia(_ context.Context, m *model.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[m.UploaderID]; !ok {
		return storage.ErrNotFound
	}
	m.ID = s.next("media")
	m.UploadedAt = nowIfZero(m.UploadedAt)
	cp := *m
	cp.Tags = append([]string{}, m.Tags...)
	s.media[m.ID] = &cp
	return nil
}

func (s *Storage) GetMedia(_ context.Context, id int64) (*model.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.media[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := s.mediaView(m)
	return &v, nil
}

func matches(m model.MediaItem, f model.MediaFilter) bool {
	if !f.Scope.Allows(&m) {
		return false
	}
	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}
	if f.Visibility != "" && m.Visibility != f.Visibility {
		return false
	}
	if f.UploaderName != "" && m.UploaderName != f.UploaderName {
		return false
	}
	for _, want := range f.Tags {
		found := false
		for _, t := range m.Tags {
			if t == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		desc := ""
		if m.Description != nil {
			desc = *m.Description
		}
		if !strings.Contains(strings.ToLower(m.Title), q) && !strings.Contains(strings.ToLower(desc), q) {
			return false
		}
	}
	return true
}

func sortMedia(items []model.MediaItem, opt shared.SortOption) {
	var less func(a, b model.MediaItem) bool
	switch opt {
	case shared.SortUploadedNew:
		less = func(a, b model.MediaItem) bool {
			if a.UploadedAt.Equal(b.UploadedAt) {
				return a.ID > b.ID
			}
			return a.UploadedAt.After(b.UploadedAt)
		}
	case shared.SortUploadedOld:
		less = func(a, b model.MediaItem) bool {
			if a.UploadedAt.Equal(b.UploadedAt) {
				return a.ID < b.ID
			}
			return a.UploadedAt.Before(b.UploadedAt)
		}
	case shared.SortNameAZ:
		less = func(a, b model.MediaItem) bool {
			if a.Title == b.Title {
				return a.ID < b.ID
			}
			return a.Title < b.Title
		}
	case shared.SortNameZA:
		less = func(a, b model.MediaItem) bool {
			if a.Title == b.Title {
				return a.ID < b.ID
			}
			return a.Title > b.Title
		}
	default:
		less = func(a, b model.MediaItem) bool { return a.ID < b.ID }
	}
	sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func (s *Storage) ListMedia(_ context.Context, f model.MediaFilter) ([]model.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.MediaItem, 0)
	for _, m := range s.media {
		v := s.mediaView(m)
		if matches(v, f) {
			out = append(out, v)
		}
	}
	sortMedia(out, f.Sort)
	return out, nil
}

func (s *Storage) UpdateMedia(_ context.Context, m *model.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.media[m.ID]
	if !ok {
		return storage.ErrNotFound
	}
	cur.Title = m.Title
	cur.Description = m.Description
	cur.Kind = m.Kind
	cur.Tags = append([]string{}, m.Tags...)
	cur.Visibility = m.Visibility
	cur.ThumbnailURL = m.ThumbnailURL
	return nil
}

func (s *Storage) DeleteMedia(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[id]; !ok {
		return storage.ErrNotFound
	}
	s.deleteMediaLocked(id)
	return nil
}

// deleteMediaLocked removes the item, its comments and memberships, and clears
// album covers pointing at it.
func (s *Storage) deleteMediaLocked(id int64) {
	delete(s.media, id)
	for cid, c := range s.comments {
		if c.MediaID == id {
			delete(s.comments, cid)
		}
	}
	for aid, rows := range s.members {
		kept := rows[:0]
		for _, r := range rows {
			if r.mediaID != id {
				kept = append(kept, r)
			}
		}
		s.members[aid] = kept
	}
	for _, a := range s.albums {
		if a.CoverMediaID != nil && *a.CoverMediaID == id {
			a.CoverMediaID = nil
		}
	}
}

func (s *Storage) IncrementLikes(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.media[id]
	if !ok {
		return 0, storage.ErrNotFound
	}
	m.Likes++
	return m.Likes, nil
}

func (s *Storage) MediaFileNamesByUploader(_ context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, m := range s.media {
		if m.UploaderID == userID {
			out = append(out, m.FileName)
		}
	}
	sort.Strings(out)
	return out, nil
}
