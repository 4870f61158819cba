package service

import (
	"context"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

// Store lookups return storage.ErrNotFound for missing rows and
// storage.ErrDuplicate for unique violations.

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateRole(ctx context.Context, id int64, role shared.Role) error
	// DeleteUser removes the user and everything they own.
	DeleteUser(ctx context.Context, id int64) error
}

type MediaStore interface {
	CreateMedia(ctx context.Context, m *model.MediaItem) error
	GetMedia(ctx context.Context, id int64) (*model.MediaItem, error)
	ListMedia(ctx context.Context, f model.MediaFilter) ([]model.MediaItem, error)
	UpdateMedia(ctx context.Context, m *model.MediaItem) error
	// DeleteMedia cascades to comments and album memberships.
	DeleteMedia(ctx context.Context, id int64) error
	// IncrementLikes adds exactly one like in a single atomic step and returns the new total.
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	MediaFileNamesByUploader(ctx context.Context, userID int64) ([]string, error)
}

type CommentStore interface {
	CreateComment(ctx context.Context, c *model.Comment) error
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	ListComments(ctx context.Context, mediaID int64) ([]model.Comment, error)
	UpdateComment(ctx context.Context, id int64, body string, updatedAt time.Time) error
	DeleteComment(ctx context.Context, id int64) error
}

type AlbumStore interface {
	// CreateAlbum writes the header and one membership per id (position = index)
	// in one transaction.
	CreateAlbum(ctx context.Context, a *model.Album, mediaIDs []int64) error
	GetAlbum(ctx context.Context, id int64) (*model.Album, error)
	// ListAlbumMembers returns every membership of the album ordered by position.
	ListAlbumMembers(ctx context.Context, albumID int64) ([]model.AlbumMember, error)
	ListAlbums(ctx context.Context, f model.AlbumFilter) ([]model.Album, error)
	// UpdateAlbum writes the header and, when mediaIDs is non-nil, replaces all
	// memberships, in one transaction.
	UpdateAlbum(ctx context.Context, a *model.Album, mediaIDs *[]int64) error
	DeleteAlbum(ctx context.Context, id int64) error
}

type RSVPStore interface {
	CreateRSVP(ctx context.Context, r *model.RSVP) error
	GetRSVP(ctx context.Context, id int64) (*model.RSVP, error)
	ListRSVPs(ctx context.Context) ([]model.RSVP, error)
	UpdateRSVP(ctx context.Context, r *model.RSVP) error
	DeleteRSVP(ctx context.Context, id int64) error
}

type InfoStore interface {
	CreateInfo(ctx context.Context, i *model.Info) error
	GetInfo(ctx context.Context, id int64) (*model.Info, error)
	ListInfo(ctx context.Context) ([]model.Info, error)
	UpdateInfo(ctx context.Context, i *model.Info) error
	DeleteInfo(ctx context.Context, id int64) error
}

type FAQStore interface {
	CreateFAQ(ctx context.Context, f *model.FAQ) error
	GetFAQ(ctx context.Context, id int64) (*model.FAQ, error)
	ListFAQ(ctx context.Context) ([]model.FAQ, error)
	UpdateFAQ(ctx context.Context, f *model.FAQ) error
	DeleteFAQ(ctx context.Context, id int64) error
}

// BlobStore keeps uploaded file bytes. The catalog only records the returned reference.
type BlobStore interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
