package handler

import (
	"github.com/job000/wedding2025-backend/internal/model"
)

func userResponse(u *model.User) model.UserResponse {
	return model.UserResponse{ID: u.ID, UserName: u.UserName, Role: u.Role.String(), CreatedAt: u.CreatedAt}
}

func commentResponse(c *model.Comment) model.CommentResponse {
	return model.CommentResponse{
		ID:        c.ID,
		Comment:   c.Body,
		User:      c.UserName,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *Handler) mediaResponse(m *model.MediaItem) model.MediaResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	resp := model.MediaResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		FileName:     m.FileName,
		URL:          h.media.URL(m.FileName),
		MediaType:    m.Kind.String(),
		ContentType:  m.ContentType,
		FileSize:     m.FileSize,
		Width:        m.Width,
		Height:       m.Height,
		Duration:     m.Duration,
		ThumbnailURL: m.ThumbnailURL,
		UploadedBy:   m.UploaderName,
		UploadTime:   m.UploadedAt,
		Visibility:   m.Visibility.String(),
		Likes:        m.Likes,
		Tags:         tags,
		CommentCount: m.CommentCount,
	}
	for i := range m.Comments {
		resp.Comments = append(resp.Comments, commentResponse(&m.Comments[i]))
	}
	return resp
}

func (h *Handler) mediaList(items []model.MediaItem) []model.MediaResponse {
	out := make([]model.MediaResponse, 0, len(items))
	for i := range items {
		out = append(out, h.mediaResponse(&items[i]))
	}
	return out
}

// albumResponse includes the member list only for detail views.
func (h *Handler) albumResponse(a *model.Album, detail bool) model.AlbumResponse {
	resp := model.AlbumResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		CreatedBy:    a.CreatorName,
		CreatedAt:    a.CreatedAt,
		Visibility:   a.Visibility.String(),
		CoverMediaID: a.CoverMediaID,
		MediaCount:   a.MediaCount,
	}
	if detail {
		resp.Media = make([]model.AlbumMediaResponse, 0, len(a.Members))
		for _, m := range a.Members {
			resp.Media = append(resp.Media, model.AlbumMediaResponse{
				ID:        m.Media.ID,
				Title:     m.Media.Title,
				FileName:  m.Media.FileName,
				URL:       h.media.URL(m.Media.FileName),
				MediaType: m.Media.Kind.String(),
				Position:  m.Position,
				AddedAt:   m.AddedAt,
			})
		}
	}
	return resp
}

func rsvpResponse(r *model.RSVP) model.RSVPResponse {
	return model.RSVPResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Attending: r.Attending,
		Allergies: r.Allergies,
		CreatedAt: r.CreatedAt,
	}
}

func infoResponse(i *model.Info) model.InfoResponse {
	return model.InfoResponse{ID: i.ID, Title: i.Title, Content: i.Content, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
}

func faqResponse(f *model.FAQ) model.FAQResponse {
	return model.FAQResponse{ID: f.ID, Question: f.Question, Answer: f.Answer, CreatedAt: f.CreatedAt}
}
