package service

import (
	"context"
	"strings"
	"time"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/model"
)

type CommentService struct {
	Storage CommentStore
	Media   MediaStore
}

func NewCommentService(s CommentStore, media MediaStore) *CommentService {
	return &CommentService{Storage: s, Media: media}
}

// Add requires the author to be able to view the media item.
func (s *CommentService) Add(ctx context.Context, r access.Requester, mediaID int64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validation("Comment text is required")
	}
	m, err := s.Media.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, storeErr("get media", err, "Media")
	}
	if !access.CanView(m, r) {
		return nil, forbidden("Access denied")
	}
	now := time.Now().UTC()
	c := &model.Comment{
		MediaID:   mediaID,
		UserID:    r.UserID,
		UserName:  r.Username,
		Body:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Storage.CreateComment(ctx, c); err != nil {
		return nil, storeErr("create comment", err, "Media")
	}
	return c, nil
}

func (s *CommentService) load(ctx context.Context, mediaID, commentID int64) (*model.Comment, error) {
	c, err := s.Storage.GetComment(ctx, commentID)
	if err != nil {
		return nil, storeErr("get comment", err, "Comment")
	}
	if c.MediaID != mediaID {
		return nil, notFound("Comment not found")
	}
	return c, nil
}

func (s *CommentService) Edit(ctx context.Context, r access.Requester, mediaID, commentID int64, text string) (*model.Comment, error) {
	c, err := s.load(ctx, mediaID, commentID)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(c, r) {
		return nil, forbidden("Permission denied")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validation("Comment text is required")
	}
	c.Body = text
	c.UpdatedAt = time.Now().UTC()
	if err := s.Storage.UpdateComment(ctx, c.ID, c.Body, c.UpdatedAt); err != nil {
		return nil, storeErr("update comment", err, "Comment")
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, r access.Requester, mediaID, commentID int64) error {
	c, err := s.load(ctx, mediaID, commentID)
	if err != nil {
		return err
	}
	if !access.CanModify(c, r) {
		return forbidden("Permission denied")
	}
	return storeErr("delete comment", s.Storage.DeleteComment(ctx, c.ID), "Comment")
}
