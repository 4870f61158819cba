package model

import (
	"time"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/shared"
)

type MediaItem struct {
	ID           int64
	Title        string
	Description  *string
	FileName     string // blob store reference
	Kind         shared.MediaKind
	ContentType  string
	FileSize     int64
	Width        *int
	Height       *int
	Duration     *float64
	ThumbnailURL *string
	UploaderID   int64
	UploaderName string
	UploadedAt   time.Time
	Visibility   shared.Visibility
	Likes        int64
	Tags         []string

	CommentCount int
	Comments     []Comment
}

func (m *MediaItem) OwnerID() int64                     { return m.UploaderID }
func (m *MediaItem) VisibilityLevel() shared.Visibility { return m.Visibility }

// MediaFilter narrows listings and searches. Zero fields do not filter.
type MediaFilter struct {
	Scope        access.ListScope
	Kind         shared.MediaKind
	Visibility   shared.Visibility
	Tags         []string // item must carry every tag
	Query        string   // case-insensitive substring of title or description
	UploaderName string
	Sort         shared.SortOption
}

// MediaPatch holds the fields of a partial update; nil means unchanged.
type MediaPatch struct {
	Title        *string
	Description  *string
	Kind         *shared.MediaKind
	Tags         *[]string
	Visibility   *shared.Visibility
	ThumbnailURL *string
}

func (p MediaPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Kind == nil &&
		p.Tags == nil && p.Visibility == nil && p.ThumbnailURL == nil
}

// Apply copies the set fields onto m.
func (p MediaPatch) Apply(m *MediaItem) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Kind != nil {
		m.Kind = *p.Kind
	}
	if p.Tags != nil {
		m.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Visibility != nil {
		m.Visibility = *p.Visibility
	}
	if p.ThumbnailURL != nil {
		m.ThumbnailURL = p.ThumbnailURL
	}
}
