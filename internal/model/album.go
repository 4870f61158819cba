package model

import (
	"time"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/shared"
)

type Album struct {
	ID           int64
	Title        string
	Description  *string
	CreatorID    int64
	CreatorName  string
	CreatedAt    time.Time
	Visibility   shared.Visibility
	CoverMediaID *int64

	// MediaCount counts every membership row, visible to the viewer or not.
	MediaCount int
	Members    []AlbumMember
}

func (a *Album) OwnerID() int64                     { return a.CreatorID }
func (a *Album) VisibilityLevel() shared.Visibility { return a.Visibility }

type AlbumMember struct {
	Position int
	AddedAt  time.Time
	Media    MediaItem
}

func (m AlbumMember) OwnerID() int64                     { return m.Media.UploaderID }
func (m AlbumMember) VisibilityLevel() shared.Visibility { return m.Media.Visibility }

type AlbumFilter struct {
	Scope      access.ListScope
	Visibility shared.Visibility
}

// AlbumPatch holds the fields of a partial album update. A non-nil MediaIDs
// replaces the whole membership list in the given order.
type AlbumPatch struct {
	Title        *string
	Description  *string
	Visibility   *shared.Visibility
	CoverMediaID *int64
	MediaIDs     *[]int64
}

func (p AlbumPatch) Apply(a *Album) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Visibility != nil {
		a.Visibility = *p.Visibility
	}
	if p.CoverMediaID != nil {
		a.CoverMediaID = p.CoverMediaID
	}
}
