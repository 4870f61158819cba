package memory

import (
	"context"
	"sort"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/storage"
)

func (s *Storage) CreateRSVP(_ context.Context, r *model.RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rsvps {
		if existing.Email == r.Email {
			return storage.ErrDuplicate
		}
	}
	r.ID = s.next("rsvps")
	r.CreatedAt = nowIfZero(r.CreatedAt)
	cp := *r
	s.rsvps[r.ID] = &cp
	return nil
}

func (s *Storage) GetRSVP(_ context.Context, id int64) (*model.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rsvps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *Storage) ListRSVPs(_ context.Context) ([]model.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.RSVP, 0, len(s.rsvps))
	for _, r := range s.rsvps {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) UpdateRSVP(_ context.Context, r *model.RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.rsvps[r.ID]
	if !ok {
		return storage.ErrNotFound
	}
	cur.Attending = r.Attending
	cur.Allergies = r.Allergies
	return nil
}

func (s *Storage) DeleteRSVP(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rsvps[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.rsvps, id)
	return nil
}

func (s *Storage) CreateInfo(_ context.Context, i *model.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.ID = s.next("info")
	cp := *i
	s.info[i.ID] = &cp
	return nil
}

func (s *Storage) GetInfo(_ context.Context, id int64) (*model.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.info[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (s *Storage) ListInfo(_ context.Context) ([]model.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Info, 0, len(s.info))
	for _, i := range s.info {
		out = append(out, *i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (s *Storage) UpdateInfo(_ context.Context, i *model.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.info[i.ID]; !ok {
		return storage.ErrNotFound
	}
	cp := *i
	s.info[i.ID] = &cp
	return nil
}

func (s *Storage) DeleteInfo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.info[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.info, id)
	return nil
}

func (s *Storage) CreateFAQ(_ context.Context, f *model.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.next("faq")
	cp := *f
	s.faq[f.ID] = &cp
	return nil
}

func (s *Storage) GetFAQ(_ context.Context, id int64) (*model.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.faq[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *Storage) ListFAQ(_ context.Context) ([]model.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.FAQ, 0, len(s.faq))
	for _, f := range s.faq {
		out = append(out, *f)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (s *Storage) UpdateFAQ(_ context.Context, f *model.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.faq[f.ID]; !ok {
		return storage.ErrNotFound
	}
	cp := *f
	s.faq[f.ID] = &cp
	return nil
}

func (s *Storage) DeleteFAQ(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.faq[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.faq, id)
	return nil
}
