package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/metrics"
	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
)

type MediaService struct {
	Storage  MediaStore
	Comments CommentStore
	Blobs    BlobStore
	log      *zap.SugaredLogger
}

func NewMediaService(s MediaStore, comments CommentStore, blobs BlobStore, log *zap.SugaredLogger) *MediaService {
	return &MediaService{Storage: s, Comments: comments, Blobs: blobs, log: log}
}

type UploadInput struct {
	Title        string
	Description  *string
	MediaType    string
	Visibility   string
	Tags         []string
	Duration     *float64
	ThumbnailURL *string

	FileName    string
	ContentType string
	Data        []byte
}

type ListInput struct {
	MediaType  string
	Visibility string
	Tags       []string
	Sort       string
}

type SearchInput struct {
	Query      string
	MediaType  string
	Tags       []string
	UploadedBy string
}

type UpdateMediaInput struct {
	Title        *string
	Description  *string
	MediaType    *string
	Tags         *[]string
	Visibility   *string
	ThumbnailURL *string
}

func (s *MediaService) Upload(ctx context.Context, r access.Requester, in UploadInput) (*model.MediaItem, error) {
	if len(in.Data) == 0 {
		return nil, validation("No file provided")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validation("Title is required")
	}
	if strings.TrimSpace(in.MediaType) == "" {
		return nil, validation("Media type is required")
	}
	kind, err := shared.ParseMediaKind(in.MediaType)
	if err != nil {
		return nil, validation("Invalid media type")
	}
	visibility := shared.VisibilityPublic
	if in.Visibility != "" {
		if visibility, err = shared.ParseVisibility(in.Visibility); err != nil {
			return nil, validation("Invalid visibility")
		}
	}
	if visibility == shared.VisibilityPrivate && !access.CanUploadPrivate(r) {
		return nil, forbidden("Only admin can upload private media")
	}

	item := &model.MediaItem{
		Title:        title,
		Description:  in.Description,
		Kind:         kind,
		ContentType:  in.ContentType,
		FileSize:     int64(len(in.Data)),
		Duration:     in.Duration,
		ThumbnailURL: in.ThumbnailURL,
		UploaderID:   r.UserID,
		UploaderName: r.Username,
		UploadedAt:   time.Now().UTC(),
		Visibility:   visibility,
		Tags:         normalizeTags(in.Tags),
	}
	if kind == shared.KindImage {
		if img, err := imaging.Decode(bytes.NewReader(in.Data)); err == nil {
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			item.Width, item.Height = &w, &h
		}
	}

	ref, err := s.Blobs.Save(ctx, in.FileName, in.ContentType, in.Data)
	if err != nil {
		return nil, &StoreError{Op: "save file", Err: err}
	}
	item.FileName = ref

	if err := s.Storage.CreateMedia(ctx, item); err != nil {
		if derr := s.Blobs.Delete(ctx, ref); derr != nil {
			s.log.Warnw("failed to remove orphan file", "ref", ref, "error", derr)
		}
		return nil, storeErr("create media", err, "")
	}
	metrics.Uploads.WithLabelValues(kind.String()).Inc()
	s.log.Infow("media uploaded", "media_id", item.ID, "kind", kind, "user_id", r.UserID)
	return item, nil
}

func (s *MediaService) List(ctx context.Context, r access.Requester, in ListInput) ([]model.MediaItem, error) {
	f := model.MediaFilter{
		Scope: access.ScopeFor(r),
		Tags:  normalizeTags(in.Tags),
		Sort:  shared.ParseSort(in.Sort),
	}
	var err error
	if in.MediaType != "" {
		if f.Kind, err = shared.ParseMediaKind(in.MediaType); err != nil {
			return nil, validation("Invalid media type")
		}
	}
	if in.Visibility != "" {
		if f.Visibility, err = shared.ParseVisibility(in.Visibility); err != nil {
			return nil, validation("Invalid visibility")
		}
	}
	items, err := s.Storage.ListMedia(ctx, f)
	return items, storeErr("list media", err, "")
}

// Search matches q against title and description, newest uploads first.
func (s *MediaService) Search(ctx context.Context, r access.Requester, in SearchInput) ([]model.MediaItem, error) {
	f := model.MediaFilter{
		Scope:        access.ScopeFor(r),
		Query:        strings.TrimSpace(in.Query),
		Tags:         normalizeTags(in.Tags),
		UploaderName: strings.TrimSpace(in.UploadedBy),
		Sort:         shared.SortUploadedNew,
	}
	if in.MediaType != "" {
		kind, err := shared.ParseMediaKind(in.MediaType)
		if err != nil {
			return nil, validation("Invalid media type")
		}
		f.Kind = kind
	}
	items, err := s.Storage.ListMedia(ctx, f)
	return items, storeErr("search media", err, "")
}

func (s *MediaService) load(ctx context.Context, id int64) (*model.MediaItem, error) {
	m, err := s.Storage.GetMedia(ctx, id)
	if err != nil {
		return nil, storeErr("get media", err, "Media")
	}
	return m, nil
}

// Get returns the item with its comments.
func (s *MediaService) Get(ctx context.Context, r access.Requester, id int64) (*model.MediaItem, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanView(m, r) {
		return nil, forbidden("Access denied")
	}
	comments, err := s.Comments.ListComments(ctx, id)
	if err != nil {
		return nil, storeErr("list comments", err, "")
	}
	m.Comments = comments
	m.CommentCount = len(comments)
	return m, nil
}

// Update applies a partial patch. Every check runs before the single write, so a
// rejected patch leaves all fields untouched.
func (s *MediaService) Update(ctx context.Context, r access.Requester, id int64, in UpdateMediaInput) (*model.MediaItem, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(m, r) {
		return nil, forbidden("Permission denied")
	}

	var patch model.MediaPatch
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, validation("Title cannot be empty")
		}
		patch.Title = &title
	}
	patch.Description = in.Description
	patch.ThumbnailURL = in.ThumbnailURL
	if in.MediaType != nil {
		kind, err := shared.ParseMediaKind(*in.MediaType)
		if err != nil {
			return nil, validation("Invalid media type")
		}
		patch.Kind = &kind
	}
	if in.Tags != nil {
		tags := normalizeTags(*in.Tags)
		patch.Tags = &tags
	}
	if in.Visibility != nil {
		v, err := shared.ParseVisibility(*in.Visibility)
		if err != nil {
			return nil, validation("Invalid visibility")
		}
		if !access.CanChangeVisibility(m, r) {
			return nil, forbidden("Only the owner or an admin can change visibility")
		}
		patch.Visibility = &v
	}
	if patch.Empty() {
		return m, nil
	}

	patch.Apply(m)
	if err := s.Storage.UpdateMedia(ctx, m); err != nil {
		return nil, storeErr("update media", err, "Media")
	}
	return m, nil
}

// Delete removes the stored file first. A blob failure is logged and the row is
// deleted anyway; comments and album memberships go with it.
func (s *MediaService) Delete(ctx context.Context, r access.Requester, id int64) error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanModify(m, r) {
		return forbidden("Permission denied")
	}
	if err := s.Blobs.Delete(ctx, m.FileName); err != nil {
		s.log.Warnw("failed to delete stored file", "media_id", id, "ref", m.FileName, "error", err)
	}
	if err := s.Storage.DeleteMedia(ctx, id); err != nil {
		return storeErr("delete media", err, "Media")
	}
	s.log.Infow("media deleted", "media_id", id, "user_id", r.UserID)
	return nil
}

// Like adds one like. Repeated likes by the same user all count.
func (s *MediaService) Like(ctx context.Context, r access.Requester, id int64) (int64, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return 0, err
	}
	if !access.CanView(m, r) {
		return 0, forbidden("Access denied")
	}
	likes, err := s.Storage.IncrementLikes(ctx, id)
	if err != nil {
		return 0, storeErr("like media", err, "Media")
	}
	metrics.Likes.Inc()
	return likes, nil
}

// URL resolves the public address of a stored file.
func (s *MediaService) URL(ref string) string {
	return s.Blobs.URL(ref)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
