package model

import "time"

// ErrorMessage is the body of every failed request
// @Description API error message
type ErrorMessage struct {
	Error string `json:"error" example:"Invalid credentials"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Media deleted successfully"`
}

// RegisterRequest holds the data for a new account
// @Description New user registration
type RegisterRequest struct {
	UserName string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

// LoginRequest holds user credentials
// @Description Login request
type LoginRequest struct {
	UserName string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

// TokenResponse carries the access token
// @Description Issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.sig"`
}

type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	UserName  string    `json:"username" example:"alice"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" example:"password123"`
	NewPassword string `json:"new_password" example:"password456"`
}

type SetRoleRequest struct {
	Role string `json:"role" example:"admin"`
}

// MediaResponse describes one gallery item
// @Description Gallery media item
type MediaResponse struct {
	ID           int64             `json:"id" example:"5"`
	Title        string            `json:"title" example:"Dance"`
	Description  *string           `json:"description"`
	FileName     string            `json:"filename" example:"0b4e7a0e-5b1c-4a4e-9a77-6f2c1d3b8e11.jpg"`
	URL          string            `json:"url" example:"http://localhost:8080/uploads/0b4e7a0e-5b1c-4a4e-9a77-6f2c1d3b8e11.jpg"`
	MediaType    string            `json:"media_type" example:"image"`
	ContentType  string            `json:"content_type" example:"image/jpeg"`
	FileSize     int64             `json:"file_size" example:"204800"`
	Width        *int              `json:"width"`
	Height       *int              `json:"height"`
	Duration     *float64          `json:"duration"`
	ThumbnailURL *string           `json:"thumbnail_url"`
	UploadedBy   string            `json:"uploaded_by" example:"alice"`
	UploadTime   time.Time         `json:"upload_time"`
	Visibility   string            `json:"visibility" example:"public"`
	Likes        int64             `json:"likes" example:"3"`
	Tags         []string          `json:"tags"`
	CommentCount int               `json:"comment_count" example:"2"`
	Comments     []CommentResponse `json:"comments,omitempty"`
}

type UploadResponse struct {
	Message string        `json:"message" example:"Media uploaded successfully"`
	Media   MediaResponse `json:"media"`
}

// UpdateMediaRequest is a partial update; omitted fields stay unchanged
// @Description Media metadata update
type UpdateMediaRequest struct {
	Title        *string   `json:"title" example:"First dance"`
	Description  *string   `json:"description"`
	MediaType    *string   `json:"media_type" example:"video"`
	Tags         *[]string `json:"tags"`
	Visibility   *string   `json:"visibility" example:"private"`
	ThumbnailURL *string   `json:"thumbnail_url"`
}

type CommentRequest struct {
	Comment string `json:"comment" example:"Beautiful!"`
}

type CommentResponse struct {
	ID        int64     `json:"id" example:"1"`
	Comment   string    `json:"comment" example:"Beautiful!"`
	User      string    `json:"user" example:"bob"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LikeResponse struct {
	Message string `json:"message" example:"Media liked successfully"`
	Likes   int64  `json:"likes" example:"4"`
}

// CreateAlbumRequest creates an album from existing media
// @Description Album creation
type CreateAlbumRequest struct {
	Title        string  `json:"title" example:"Ceremony"`
	Description  *string `json:"description"`
	Visibility   string  `json:"visibility" example:"public"`
	MediaIDs     []int64 `json:"media_ids" example:"5,6"`
	CoverMediaID *int64  `json:"cover_media_id"`
}

// UpdateAlbumRequest is a partial update; media_ids replaces the whole member list
// @Description Album update
type UpdateAlbumRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Visibility   *string  `json:"visibility"`
	MediaIDs     *[]int64 `json:"media_ids"`
	CoverMediaID *int64   `json:"cover_media_id"`
}

type AlbumMediaResponse struct {
	ID        int64     `json:"id" example:"5"`
	Title     string    `json:"title" example:"Dance"`
	FileName  string    `json:"filename"`
	URL       string    `json:"url"`
	MediaType string    `json:"media_type" example:"image"`
	Position  int       `json:"position" example:"0"`
	AddedAt   time.Time `json:"added_at"`
}

type AlbumResponse struct {
	ID           int64                `json:"id" example:"1"`
	Title        string               `json:"title" example:"Ceremony"`
	Description  *string              `json:"description"`
	CreatedBy    string               `json:"created_by" example:"alice"`
	CreatedAt    time.Time            `json:"created_at"`
	Visibility   string               `json:"visibility" example:"public"`
	CoverMediaID *int64               `json:"cover_media_id"`
	MediaCount   int                  `json:"media_count" example:"2"`
	Media        []AlbumMediaResponse `json:"media,omitempty"`
}

type RSVPRequest struct {
	Name      string  `json:"name" example:"Kari Nordmann"`
	Email     string  `json:"email" example:"kari@example.com"`
	Attending *bool   `json:"attending" example:"true"`
	Allergies *string `json:"allergies" example:"nuts"`
}

type RSVPUpdateRequest struct {
	Attending *bool   `json:"attending"`
	Allergies *string `json:"allergies"`
}

type RSVPResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Attending bool      `json:"attending"`
	Allergies *string   `json:"allergies"`
	CreatedAt time.Time `json:"created_at"`
}

type InfoRequest struct {
	Title   string `json:"title" example:"Venue"`
	Content string `json:"content" example:"The ceremony starts at 14:00."`
}

type InfoUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type InfoResponse struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQRequest struct {
	Question string `json:"question" example:"Is there parking?"`
	Answer   string `json:"answer" example:"Yes, next to the venue."`
}

type FAQUpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type FAQResponse struct {
	ID        int64     `json:"id" example:"1"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
