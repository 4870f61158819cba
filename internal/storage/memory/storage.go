// Package memory keeps every table in process memory behind one mutex. It
// mirrors the postgres store's semantics, including cascades and
// all-or-nothing album writes, and backs tests and local runs.
package memory

import (
	"sync"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
)

type membership struct {
	mediaID  int64
	position int
	addedAt  time.Time
}

type Storage struct {
	mu  sync.Mutex
	seq map[string]int64

	users    map[int64]*model.User
	media    map[int64]*model.MediaItem
	comments map[int64]*model.Comment
	albums   map[int64]*model.Album
	members  map[int64][]membership // album id -> rows
	rsvps    map[int64]*model.RSVP
	info     map[int64]*model.Info
	faq      map[int64]*model.FAQ
}

func New() *Storage {
	return &Storage{
		seq:      make(map[string]int64),
		users:    make(map[int64]*model.User),
		media:    make(map[int64]*model.MediaItem),
		comments: make(map[int64]*model.Comment),
		albums:   make(map[int64]*model.Album),
		members:  make(map[int64][]membership),
		rsvps:    make(map[int64]*model.RSVP),
		info:     make(map[int64]*model.Info),
		faq:      make(map[int64]*model.FAQ),
	}
}

// next must be called with mu held.
func (s *Storage) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Storage) userName(id int64) string {
	if u, ok := s.users[id]; ok {
		return u.UserName
	}
	return ""
}

func nowIfZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
