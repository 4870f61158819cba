package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
)

// CreateRSVP is open to guests without an account.
// @Summary Answer the invitation
// @Tags rsvp
// @Param input body model.RSVPRequest true "RSVP"
// @Success 201 {object} model.RSVPResponse
// @Failure 400 {object} model.ErrorMessage
// @Router /rsvp [post]
func (h *Handler) CreateRSVP(c *gin.Context) {
	var input model.RSVPRequest
	if !bindJSON(c, &input) {
		return
	}
	r, err := h.rsvp.Create(c.Request.Context(), service.RSVPInput{
		Name:      input.Name,
		Email:     input.Email,
		Attending: input.Attending,
		Allergies: input.Allergies,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rsvpResponse(r))
}

func (h *Handler) ListRSVPs(c *gin.Context) {
	list, err := h.rsvp.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]model.RSVPResponse, 0, len(list))
	for i := range list {
		out = append(out, rsvpResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetRSVP(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.rsvp.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsvpResponse(r))
}

func (h *Handler) UpdateRSVP(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.RSVPUpdateRequest
	if !bindJSON(c, &input) {
		return
	}
	r, err := h.rsvp.Update(c.Request.Context(), id, model.RSVPPatch{Attending: input.Attending, Allergies: input.Allergies})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsvpResponse(r))
}

func (h *Handler) DeleteRSVP(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.rsvp.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "RSVP deleted"})
}

// @Summary Create an information page
// @Tags info
// @Security BearerAuth
// @Param input body model.InfoRequest true "Page"
// @Success 201 {object} model.InfoResponse
// @Router /info [post]
func (h *Handler) CreateInfo(c *gin.Context) {
	var input model.InfoRequest
	if !bindJSON(c, &input) {
		return
	}
	i, err := h.info.Create(c.Request.Context(), input.Title, input.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, infoResponse(i))
}

func (h *Handler) ListInfo(c *gin.Context) {
	list, err := h.info.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]model.InfoResponse, 0, len(list))
	for i := range list {
		out = append(out, infoResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetInfo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	i, err := h.info.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, infoResponse(i))
}

func (h *Handler) UpdateInfo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.InfoUpdateRequest
	if !bindJSON(c, &input) {
		return
	}
	i, err := h.info.Update(c.Request.Context(), id, model.InfoPatch{Title: input.Title, Content: input.Content})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, infoResponse(i))
}

func (h *Handler) DeleteInfo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.info.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Info deleted"})
}

// @Summary Add a question to the FAQ
// @Tags faq
// @Security BearerAuth
// @Param input body model.FAQRequest true "Question and answer"
// @Success 201 {object} model.FAQResponse
// @Router /faq [post]
func (h *Handler) CreateFAQ(c *gin.Context) {
	var input model.FAQRequest
	if !bindJSON(c, &input) {
		return
	}
	f, err := h.faq.Create(c.Request.Context(), input.Question, input.Answer)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faqResponse(f))
}

func (h *Handler) ListFAQ(c *gin.Context) {
	list, err := h.faq.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]model.FAQResponse, 0, len(list))
	for i := range list {
		out = append(out, faqResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetFAQ(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.faq.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqResponse(f))
}

func (h *Handler) UpdateFAQ(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.FAQUpdateRequest
	if !bindJSON(c, &input) {
		return
	}
	f, err := h.faq.Update(c.Request.Context(), id, model.FAQPatch{Question: input.Question, Answer: input.Answer})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqResponse(f))
}

func (h *Handler) DeleteFAQ(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.faq.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "FAQ deleted"})
}
