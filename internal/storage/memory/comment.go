package memory

import (
	"context"
	"sort"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/storage"
)

func (s *Storage) CreateComment(_ context.Context, c *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[c.MediaID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.users[c.UserID]; !ok {
		return storage.ErrNotFound
	}
	c.ID = s.next("comments")
	cp := *c
	s.comments[c.ID] = &cp
	return nil
}

func (s *Storage) GetComment(_ context.Context, id int64) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *c
	cp.UserName = s.userName(c.UserID)
	return &cp, nil
}

func (s *Storage) ListComments(_ context.Context, mediaID int64) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Comment, 0)
	for _, c := range s.comments {
		if c.MediaID == mediaID {
			cp := *c
			cp.UserName = s.userName(c.UserID)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) UpdateComment(_ context.Context, id int64, body string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return storage.ErrNotFound
	}
	c.Body = body
	c.UpdatedAt = updatedAt
	return nil
}

func (s *Storage) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}
