package memory

import (
	"context"
	"sort"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
	"github.com/job000/wedding2025-backend/internal/storage"
)

func (s *Storage) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.UserName == u.UserName {
			return storage.ErrDuplicate
		}
	}
	u.ID = s.next("users")
	u.CreatedAt = nowIfZero(u.CreatedAt)
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Storage) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Storage) GetUserByName(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.UserName == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Storage) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) UpdatePassword(_ context.Context, id int64, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (s *Storage) UpdateRole(_ context.Context, id int64, role shared.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.Role = role
	return nil
}

// DeleteUser cascades to the user's media, comments and albums.
func (s *Storage) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	for mid, m := range s.media {
		if m.UploaderID == id {
			s.deleteMediaLocked(mid)
		}
	}
	for cid, c := range s.comments {
		if c.UserID == id {
			delete(s.comments, cid)
		}
	}
	for aid, a := range s.albums {
		if a.CreatorID == id {
			delete(s.albums, aid)
			delete(s.members, aid)
		}
	}
	delete(s.users, id)
	return nil
}
