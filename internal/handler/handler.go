package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/service"
)

type Services struct {
	Users    *service.UserService
	Media    *service.MediaService
	Comments *service.CommentService
	Albums   *service.AlbumService
	RSVP     *service.RSVPService
	Info     *service.InfoService
	FAQ      *service.FAQService
}

type Handler struct {
	users    *service.UserService
	media    *service.MediaService
	comments *service.CommentService
	albums   *service.AlbumService
	rsvp     *service.RSVPService
	info     *service.InfoService
	faq      *service.FAQService

	log            *zap.SugaredLogger
	maxUploadBytes int64
}

func NewHandler(s Services, log *zap.SugaredLogger, maxUploadBytes int64) *Handler {
	return &Handler{
		users:          s.Users,
		media:          s.Media,
		comments:       s.Comments,
		albums:         s.Albums,
		rsvp:           s.RSVP,
		info:           s.Info,
		faq:            s.FAQ,
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

const requesterKey = "requester"

// requester returns the caller set by OptionalAuth, anonymous when unset.
func requester(c *gin.Context) access.Requester {
	if v, ok := c.Get(requesterKey); ok {
		if r, ok := v.(access.Requester); ok {
			return r
		}
	}
	return access.Anonymous()
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, model.ErrorMessage{Error: msg})
}

// respondError maps service error kinds onto statuses. Anything unclassified
// is logged and answered with a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		h.log.Errorw("request failed",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"error", err,
		)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	msg := http.StatusText(status)
	var se *service.Error
	if errors.As(err, &se) {
		msg = se.Msg
	}
	abortWithError(c, status, msg)
}

// pathID parses an int64 path parameter, answering 400 itself when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid input")
		return false
	}
	return true
}
