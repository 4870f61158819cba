package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/storage"
)

type RSVPService struct {
	Storage RSVPStore
}

func NewRSVPService(s RSVPStore) *RSVPService {
	return &RSVPService{Storage: s}
}

type RSVPInput struct {
	Name      string
	Email     string
	Attending *bool
	Allergies *string
}

// Create is open to anonymous guests. One answer per email address.
func (s *RSVPService) Create(ctx context.Context, in RSVPInput) (*model.RSVP, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Attending == nil {
		return nil, validation("Missing required fields")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validation("Invalid email address")
	}
	r := &model.RSVP{
		Name:      name,
		Email:     email,
		Attending: *in.Attending,
		Allergies: in.Allergies,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Storage.CreateRSVP(ctx, r); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, newError(ErrConflict, "RSVP already exists for this email")
		}
		return nil, storeErr("create rsvp", err, "")
	}
	return r, nil
}

func (s *RSVPService) Get(ctx context.Context, id int64) (*model.RSVP, error) {
	r, err := s.Storage.GetRSVP(ctx, id)
	return r, storeErr("get rsvp", err, "RSVP")
}

func (s *RSVPService) List(ctx context.Context) ([]model.RSVP, error) {
	list, err := s.Storage.ListRSVPs(ctx)
	return list, storeErr("list rsvp", err, "")
}

func (s *RSVPService) Update(ctx context.Context, id int64, patch model.RSVPPatch) (*model.RSVP, error) {
	r, err := s.Storage.GetRSVP(ctx, id)
	if err != nil {
		return nil, storeErr("get rsvp", err, "RSVP")
	}
	if patch.Attending != nil {
		r.Attending = *patch.Attending
	}
	if patch.Allergies != nil {
		r.Allergies = patch.Allergies
	}
	if err := s.Storage.UpdateRSVP(ctx, r); err != nil {
		return nil, storeErr("update rsvp", err, "RSVP")
	}
	return r, nil
}

func (s *RSVPService) Delete(ctx context.Context, id int64) error {
	return storeErr("delete rsvp", s.Storage.DeleteRSVP(ctx, id), "RSVP")
}
