package service

import (
	"context"
	"strings"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
)

// InfoService manages the static information pages.
type InfoService struct {
	Storage InfoStore
}

func NewInfoService(s InfoStore) *InfoService {
	return &InfoService{Storage: s}
}

func (s *InfoService) Create(ctx context.Context, title, content string) (*model.Info, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, validation("Title and content are required")
	}
	now := time.Now().UTC()
	i := &model.Info{Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	if err := s.Storage.CreateInfo(ctx, i); err != nil {
		return nil, storeErr("create info", err, "")
	}
	return i, nil
}

func (s *InfoService) Get(ctx context.Context, id int64) (*model.Info, error) {
	i, err := s.Storage.GetInfo(ctx, id)
	return i, storeErr("get info", err, "Info")
}

func (s *InfoService) List(ctx context.Context) ([]model.Info, error) {
	list, err := s.Storage.ListInfo(ctx)
	return list, storeErr("list info", err, "")
}

func (s *InfoService) Update(ctx context.Context, id int64, patch model.InfoPatch) (*model.Info, error) {
	i, err := s.Storage.GetInfo(ctx, id)
	if err != nil {
		return nil, storeErr("get info", err, "Info")
	}
	if patch.Title != nil {
		if i.Title = strings.TrimSpace(*patch.Title); i.Title == "" {
			return nil, validation("Title cannot be empty")
		}
	}
	if patch.Content != nil {
		if i.Content = strings.TrimSpace(*patch.Content); i.Content == "" {
			return nil, validation("Content cannot be empty")
		}
	}
	i.UpdatedAt = time.Now().UTC()
	if err := s.Storage.UpdateInfo(ctx, i); err != nil {
		return nil, storeErr("update info", err, "Info")
	}
	return i, nil
}

func (s *InfoService) Delete(ctx context.Context, id int64) error {
	return storeErr("delete info", s.Storage.DeleteInfo(ctx, id), "Info")
}

type FAQService struct {
	Storage FAQStore
}

func NewFAQService(s FAQStore) *FAQService {
	return &FAQService{Storage: s}
}

func (s *FAQService) Create(ctx context.Context, question, answer string) (*model.FAQ, error) {
	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return nil, validation("Question and answer are required")
	}
	f := &model.FAQ{Question: question, Answer: answer, CreatedAt: time.Now().UTC()}
	if err := s.Storage.CreateFAQ(ctx, f); err != nil {
		return nil, storeErr("create faq", err, "")
	}
	return f, nil
}

func (s *FAQService) Get(ctx context.Context, id int64) (*model.FAQ, error) {
	f, err := s.Storage.GetFAQ(ctx, id)
	return f, storeErr("get faq", err, "FAQ")
}

func (s *FAQService) List(ctx context.Context) ([]model.FAQ, error) {
	list, err := s.Storage.ListFAQ(ctx)
	return list, storeErr("list faq", err, "")
}

func (s *FAQService) Update(ctx context.Context, id int64, patch model.FAQPatch) (*model.FAQ, error) {
	f, err := s.Storage.GetFAQ(ctx, id)
	if err != nil {
		return nil, storeErr("get faq", err, "FAQ")
	}
	if patch.Question != nil {
		if f.Question = strings.TrimSpace(*patch.Question); f.Question == "" {
			return nil, validation("Question cannot be empty")
		}
	}
	if patch.Answer != nil {
		if f.Answer = strings.TrimSpace(*patch.Answer); f.Answer == "" {
			return nil, validation("Answer cannot be empty")
		}
	}
	if err := s.Storage.UpdateFAQ(ctx, f); err != nil {
		return nil, storeErr("update faq", err, "FAQ")
	}
	return f, nil
}

func (s *FAQService) Delete(ctx context.Context, id int64) error {
	return storeErr("delete faq", s.Storage.DeleteFAQ(ctx, id), "FAQ")
}
