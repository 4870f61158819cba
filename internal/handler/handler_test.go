package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
	"github.com/job000/wedding2025-backend/internal/storage/local"
	"github.com/job000/wedding2025-backend/internal/storage/memory"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	blobs, err := local.New(afero.NewMemMapFs(), "uploads", "http://test")
	require.NoError(t, err)
	log := zap.NewNop().Sugar()
	tokens := service.NewTokenManager("test-secret", time.Hour)

	users := service.NewUserService(store, store, blobs, tokens, log)
	require.NoError(t, users.EnsureAdmin(context.Background(), "admin", "adminpass"))

	h := NewHandler(Services{
		Users:    users,
		Media:    service.NewMediaService(store, store, blobs, log),
		Comments: service.NewCommentService(store, store),
		Albums:   service.NewAlbumService(store, store),
		RSVP:     service.NewRSVPService(store),
		Info:     service.NewInfoService(store),
		FAQ:      service.NewFAQService(store),
	}, log, 1<<20)

	return &testServer{
		t:      t,
		store:  store,
		router: NewRouter(h, RouterConfig{AllowOrigins: []string{"http://localhost:3000"}, Uploads: blobs.FileSystem()}),
	}
}

func (s *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, token)
}

func (s *testServer) login(username, password string) string {
	w := s.json(http.MethodPost, "/auth/login", "", model.LoginRequest{UserName: username, Password: password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp model.TokenResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func (s *testServer) signup(username string) string {
	w := s.json(http.MethodPost, "/auth/register", "", model.RegisterRequest{UserName: username, Password: "password"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return s.login(username, "password")
}

func (s *testServer) upload(token string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", "dance.jpg")
	require.NoError(s.t, err)
	_, err = fw.Write([]byte("jpeg bytes"))
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req, token)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestGalleryVisibilityScenario(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")
	admin := s.login("admin", "adminpass")

	w := s.upload(alice, map[string]string{"title": "Dance", "media_type": "image", "visibility": "public"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	uploaded := decode[model.UploadResponse](t, w)
	assert.Equal(t, "alice", uploaded.Media.UploadedBy)
	assert.Equal(t, "http://test/uploads/"+uploaded.Media.FileName, uploaded.Media.URL)
	path := fmt.Sprintf("/gallery/media/%d", uploaded.Media.ID)

	w = s.json(http.MethodGet, "/gallery/media", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]model.MediaResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Dance", list[0].Title)

	assert.Equal(t, http.StatusForbidden, s.json(http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusOK, s.json(http.MethodGet, path, bob, nil).Code)

	w = s.json(http.MethodPut, path, alice, model.UpdateMediaRequest{Visibility: strPtr("private")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusForbidden, s.json(http.MethodGet, path, bob, nil).Code)
	assert.Equal(t, http.StatusOK, s.json(http.MethodGet, path, alice, nil).Code)
	assert.Equal(t, http.StatusOK, s.json(http.MethodGet, path, admin, nil).Code)

	w = s.json(http.MethodGet, "/gallery/media", "", nil)
	assert.Empty(t, decode[[]model.MediaResponse](t, w))
	w = s.json(http.MethodGet, "/gallery/media", alice, nil)
	assert.Len(t, decode[[]model.MediaResponse](t, w), 1)
}

func TestUpload_Errors(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")

	w := s.upload("", map[string]string{"title": "Dance", "media_type": "image"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.upload(alice, map[string]string{"title": "Dance", "media_type": "image", "visibility": "private"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only admin can upload private media", decode[model.ErrorMessage](t, w).Error)

	w = s.upload(alice, map[string]string{"title": "Dance", "media_type": "audio"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid media type", decode[model.ErrorMessage](t, w).Error)

	w = s.upload(alice, map[string]string{"title": "Dance", "media_type": "video", "duration": "long"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusBadRequest, s.do(req, alice).Code)
}

func TestAuth_TokenHandling(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")

	w := s.json(http.MethodPost, "/auth/register", "", model.RegisterRequest{UserName: "alice", Password: "password"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.json(http.MethodPost, "/auth/login", "", model.LoginRequest{UserName: "alice", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.json(http.MethodGet, "/auth/me", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[model.UserResponse](t, w)
	assert.Equal(t, "alice", me.UserName)
	assert.Equal(t, "user", me.Role)

	assert.Equal(t, http.StatusUnauthorized, s.json(http.MethodGet, "/auth/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.json(http.MethodGet, "/gallery/media", "garbage", nil).Code)

	assert.Equal(t, http.StatusForbidden, s.json(http.MethodGet, "/auth/users", alice, nil).Code)
	admin := s.login("admin", "adminpass")
	w = s.json(http.MethodGet, "/auth/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.UserResponse](t, w), 2)
}

func TestCommentsAndLikes(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	w := s.upload(alice, map[string]string{"title": "Dance", "media_type": "image"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[model.UploadResponse](t, w).Media.ID
	base := fmt.Sprintf("/gallery/media/%d", id)

	assert.Equal(t, http.StatusUnauthorized, s.json(http.MethodPost, base+"/like", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		s.json(http.MethodPost, base+"/comments", "", model.CommentRequest{Comment: "hi"}).Code)

	w = s.json(http.MethodPost, base+"/like", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.json(http.MethodPost, base+"/like", bob, nil)
	assert.Equal(t, int64(2), decode[model.LikeResponse](t, w).Likes)

	w = s.json(http.MethodPost, base+"/comments", bob, model.CommentRequest{Comment: "Beautiful!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	comment := decode[model.CommentResponse](t, w)
	assert.Equal(t, "bob", comment.User)

	commentPath := fmt.Sprintf("%s/comments/%d", base, comment.ID)
	assert.Equal(t, http.StatusForbidden,
		s.json(http.MethodPut, commentPath, alice, model.CommentRequest{Comment: "edited"}).Code)
	w = s.json(http.MethodPut, commentPath, bob, model.CommentRequest{Comment: "Stunning!"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.json(http.MethodGet, base, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[model.MediaResponse](t, w)
	assert.Equal(t, int64(2), detail.Likes)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Stunning!", detail.Comments[0].Comment)

	assert.Equal(t, http.StatusOK, s.json(http.MethodDelete, commentPath, bob, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodDelete, commentPath, bob, nil).Code)
}

func TestAlbumCreate_PrivateMemberRejected(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")
	admin := s.login("admin", "adminpass")

	w := s.upload(bob, map[string]string{"title": "Mine", "media_type": "image"})
	require.Equal(t, http.StatusCreated, w.Code)
	mine := decode[model.UploadResponse](t, w).Media.ID

	w = s.upload(admin, map[string]string{"title": "Hidden", "media_type": "image", "visibility": "private"})
	require.Equal(t, http.StatusCreated, w.Code)
	hidden := decode[model.UploadResponse](t, w).Media.ID

	w = s.json(http.MethodPost, "/gallery/albums", bob, model.CreateAlbumRequest{Title: "Party", MediaIDs: []int64{mine, hidden}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.json(http.MethodGet, "/gallery/albums", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.AlbumResponse](t, w))

	w = s.json(http.MethodPost, "/gallery/albums", alice, model.CreateAlbumRequest{Title: "Party", MediaIDs: []int64{mine, 999}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlbumLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	var ids []int64
	for _, title := range []string{"One", "Two"} {
		w := s.upload(alice, map[string]string{"title": title, "media_type": "image"})
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decode[model.UploadResponse](t, w).Media.ID)
	}

	w := s.json(http.MethodPost, "/gallery/albums", alice, model.CreateAlbumRequest{Title: "Ceremony", MediaIDs: ids, CoverMediaID: &ids[0]})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	album := decode[model.AlbumResponse](t, w)
	assert.Equal(t, "alice", album.CreatedBy)
	require.Len(t, album.Media, 2)
	assert.Equal(t, ids[0], album.Media[0].ID)
	path := fmt.Sprintf("/gallery/albums/%d", album.ID)

	reversed := []int64{ids[1], ids[0]}
	w = s.json(http.MethodPut, path, alice, model.UpdateAlbumRequest{MediaIDs: &reversed})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	album = decode[model.AlbumResponse](t, w)
	assert.Equal(t, ids[1], album.Media[0].ID)
	assert.Equal(t, 1, album.Media[1].Position)

	assert.Equal(t, http.StatusForbidden, s.json(http.MethodPut, path, bob, model.UpdateAlbumRequest{Title: strPtr("x")}).Code)

	w = s.json(http.MethodGet, "/gallery/albums", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]model.AlbumResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].MediaCount)
	assert.Nil(t, list[0].Media)

	assert.Equal(t, http.StatusForbidden, s.json(http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusOK, s.json(http.MethodDelete, path, alice, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodGet, path, alice, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.json(http.MethodGet, "/gallery/albums/abc", alice, nil).Code)
}

func TestSearch(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")

	for _, title := range []string{"First dance", "Cake"} {
		require.Equal(t, http.StatusCreated, s.upload(alice, map[string]string{"title": title, "media_type": "image"}).Code)
	}

	w := s.json(http.MethodGet, "/gallery/search?q=DANCE", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[[]model.MediaResponse](t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "First dance", results[0].Title)

	w = s.json(http.MethodGet, "/gallery/search?q=dance&uploaded_by=bob", "", nil)
	assert.Empty(t, decode[[]model.MediaResponse](t, w))
}

func TestRSVPInfoFAQ(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	yes := true

	w := s.json(http.MethodPost, "/rsvp", "", model.RSVPRequest{Name: "Kari", Email: "kari@example.com", Attending: &yes})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.json(http.MethodPost, "/rsvp", "", model.RSVPRequest{Name: "Kari", Email: "kari@example.com", Attending: &yes})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RSVP already exists for this email", decode[model.ErrorMessage](t, w).Error)

	assert.Equal(t, http.StatusUnauthorized, s.json(http.MethodGet, "/rsvp", "", nil).Code)
	w = s.json(http.MethodGet, "/rsvp", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.RSVPResponse](t, w), 1)

	assert.Equal(t, http.StatusUnauthorized,
		s.json(http.MethodPost, "/info", "", model.InfoRequest{Title: "Venue", Content: "City hall"}).Code)
	w = s.json(http.MethodPost, "/info", alice, model.InfoRequest{Title: "Venue", Content: "City hall"})
	require.Equal(t, http.StatusCreated, w.Code)
	info := decode[model.InfoResponse](t, w)
	w = s.json(http.MethodGet, fmt.Sprintf("/info/%d", info.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "City hall", decode[model.InfoResponse](t, w).Content)

	w = s.json(http.MethodPost, "/faq", alice, model.FAQRequest{Question: "Parking?", Answer: "Yes"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.json(http.MethodGet, "/faq", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.FAQResponse](t, w), 1)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodGet, "/faq/42", "", nil).Code)
}

func TestHealthAndUploads(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")

	w := s.json(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = s.upload(alice, map[string]string{"title": "Dance", "media_type": "image"})
	require.Equal(t, http.StatusCreated, w.Code)
	name := decode[model.UploadResponse](t, w).Media.FileName

	w = s.do(httptest.NewRequest(http.MethodGet, "/uploads/"+name, nil), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg bytes", w.Body.String())
}

func strPtr(s string) *string { return &s }
