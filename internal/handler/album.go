package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
)

// CreateAlbum godoc
// @Summary Create an album from existing media
// @Tags albums
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body model.CreateAlbumRequest true "Album"
// @Success 201 {object} model.AlbumResponse
// @Failure 403 {object} model.ErrorMessage
// @Failure 404 {object} model.ErrorMessage
// @Router /gallery/albums [post]
func (h *Handler) CreateAlbum(c *gin.Context) {
	var input model.CreateAlbumRequest
	if !bindJSON(c, &input) {
		return
	}
	a, err := h.albums.Create(c.Request.Context(), requester(c), service.CreateAlbumInput{
		Title:        input.Title,
		Description:  input.Description,
		Visibility:   input.Visibility,
		MediaIDs:     input.MediaIDs,
		CoverMediaID: input.CoverMediaID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.albumResponse(a, true))
}

// @Summary List albums visible to the caller
// @Tags albums
// @Param visibility query string false "public or private"
// @Success 200 {array} model.AlbumResponse
// @Router /gallery/albums [get]
func (h *Handler) ListAlbums(c *gin.Context) {
	albums, err := h.albums.List(c.Request.Context(), requester(c), c.Query("visibility"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]model.AlbumResponse, 0, len(albums))
	for i := range albums {
		out = append(out, h.albumResponse(&albums[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Album detail with the members the caller may view
// @Tags albums
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Success 200 {object} model.AlbumResponse
// @Router /gallery/albums/{id} [get]
func (h *Handler) GetAlbum(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.albums.Get(c.Request.Context(), requester(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.albumResponse(a, true))
}

// @Summary Update an album; media_ids replaces the member list
// @Tags albums
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param input body model.UpdateAlbumRequest true "Fields to change"
// @Success 200 {object} model.AlbumResponse
// @Router /gallery/albums/{id} [put]
func (h *Handler) UpdateAlbum(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.UpdateAlbumRequest
	if !bindJSON(c, &input) {
		return
	}
	a, err := h.albums.Update(c.Request.Context(), requester(c), id, service.UpdateAlbumInput{
		Title:        input.Title,
		Description:  input.Description,
		Visibility:   input.Visibility,
		MediaIDs:     input.MediaIDs,
		CoverMediaID: input.CoverMediaID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.albumResponse(a, true))
}

// @Summary Delete an album; its media are kept
// @Tags albums
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Success 200 {object} model.MessageResponse
// @Router /gallery/albums/{id} [delete]
func (h *Handler) DeleteAlbum(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.albums.Delete(c.Request.Context(), requester(c), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Album deleted successfully"})
}
