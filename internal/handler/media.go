package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
)

// splitList accepts both repeated parameters and comma separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func optionalForm(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok && v != "" {
		return &v
	}
	return nil
}

// UploadMedia godoc
// @Summary Upload a media file
// @Tags gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Param title formData string true "Title"
// @Param media_type formData string true "image, video or text"
// @Param description formData string false "Description"
// @Param visibility formData string false "public (default) or private"
// @Param tags formData []string false "Tags"
// @Param duration formData number false "Duration in seconds"
// @Param thumbnail_url formData string false "Thumbnail URL"
// @Success 201 {object} model.UploadResponse
// @Failure 400 {object} model.ErrorMessage
// @Failure 403 {object} model.ErrorMessage
// @Router /gallery/upload [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		abortWithError(c, http.StatusBadRequest, "No file provided")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.respondError(c, err)
		return
	}

	in := service.UploadInput{
		Title:        c.PostForm("title"),
		Description:  optionalForm(c, "description"),
		MediaType:    c.PostForm("media_type"),
		Visibility:   c.PostForm("visibility"),
		Tags:         splitList(c.PostFormArray("tags")),
		ThumbnailURL: optionalForm(c, "thumbnail_url"),
		FileName:     fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Data:         data,
	}
	if in.ContentType == "" || in.ContentType == "application/octet-stream" {
		in.ContentType = http.DetectContentType(data)
	}
	if d := optionalForm(c, "duration"); d != nil {
		v, err := strconv.ParseFloat(*d, 64)
		if err != nil || v < 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid duration")
			return
		}
		in.Duration = &v
	}

	m, err := h.media.Upload(c.Request.Context(), requester(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.UploadResponse{Message: "Media uploaded successfully", Media: h.mediaResponse(m)})
}

// ListMedia godoc
// @Summary List media visible to the caller
// @Tags gallery
// @Produce json
// @Param type query string false "image, video or text"
// @Param visibility query string false "public or private"
// @Param tags query []string false "Items must carry every tag"
// @Param sort query string false "natural, uploaded_new, uploaded_old, name_az, name_za"
// @Success 200 {array} model.MediaResponse
// @Router /gallery/media [get]
func (h *Handler) ListMedia(c *gin.Context) {
	items, err := h.media.List(c.Request.Context(), requester(c), service.ListInput{
		MediaType:  c.Query("type"),
		Visibility: c.Query("visibility"),
		Tags:       splitList(c.QueryArray("tags")),
		Sort:       c.Query("sort"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mediaList(items))
}

// GetMedia godoc
// @Summary Media detail with comments
// @Tags gallery
// @Security BearerAuth
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} model.MediaResponse
// @Failure 403 {object} model.ErrorMessage
// @Failure 404 {object} model.ErrorMessage
// @Router /gallery/media/{id} [get]
func (h *Handler) GetMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.media.Get(c.Request.Context(), requester(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mediaResponse(m))
}

// UpdateMedia godoc
// @Summary Update media metadata
// @Tags gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Media ID"
// @Param input body model.UpdateMediaRequest true "Fields to change"
// @Success 200 {object} model.MediaResponse
// @Router /gallery/media/{id} [put]
func (h *Handler) UpdateMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.UpdateMediaRequest
	if !bindJSON(c, &input) {
		return
	}
	m, err := h.media.Update(c.Request.Context(), requester(c), id, service.UpdateMediaInput{
		Title:        input.Title,
		Description:  input.Description,
		MediaType:    input.MediaType,
		Tags:         input.Tags,
		Visibility:   input.Visibility,
		ThumbnailURL: input.ThumbnailURL,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mediaResponse(m))
}

// @Summary Delete media
// @Tags gallery
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} model.MessageResponse
// @Router /gallery/media/{id} [delete]
func (h *Handler) DeleteMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.media.Delete(c.Request.Context(), requester(c), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Media deleted successfully"})
}

// @Summary Like a media item
// @Tags gallery
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} model.LikeResponse
// @Router /gallery/media/{id}/like [post]
func (h *Handler) LikeMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	likes, err := h.media.Like(c.Request.Context(), requester(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.LikeResponse{Message: "Media liked successfully", Likes: likes})
}

// @Summary Search media by text, type, tags and uploader
// @Tags gallery
// @Param q query string false "Matched against title and description"
// @Param type query string false "image, video or text"
// @Param tags query []string false "Tags"
// @Param uploaded_by query string false "Uploader username"
// @Success 200 {array} model.MediaResponse
// @Router /gallery/search [get]
func (h *Handler) SearchMedia(c *gin.Context) {
	items, err := h.media.Search(c.Request.Context(), requester(c), service.SearchInput{
		Query:      c.Query("q"),
		MediaType:  c.Query("type"),
		Tags:       splitList(c.QueryArray("tags")),
		UploadedBy: c.Query("uploaded_by"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mediaList(items))
}

// @Summary Comment on a media item
// @Tags gallery
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Param input body model.CommentRequest true "Comment"
// @Success 201 {object} model.CommentResponse
// @Router /gallery/media/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.CommentRequest
	if !bindJSON(c, &input) {
		return
	}
	comment, err := h.comments.Add(c.Request.Context(), requester(c), id, input.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentResponse(comment))
}

func (h *Handler) EditComment(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	var input model.CommentRequest
	if !bindJSON(c, &input) {
		return
	}
	comment, err := h.comments.Edit(c.Request.Context(), requester(c), mediaID, commentID, input.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentResponse(comment))
}

func (h *Handler) DeleteComment(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), requester(c), mediaID, commentID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Comment deleted"})
}
