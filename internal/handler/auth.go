package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/job000/wedding2025-backend/internal/model"
)

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.RegisterRequest true "Credentials"
// @Success 201 {object} model.UserResponse
// @Failure 400 {object} model.ErrorMessage
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input model.RegisterRequest
	if !bindJSON(c, &input) {
		return
	}
	u, err := h.users.Register(c.Request.Context(), input.UserName, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userResponse(u))
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.LoginRequest true "Credentials"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} model.ErrorMessage
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input model.LoginRequest
	if !bindJSON(c, &input) {
		return
	}
	token, err := h.users.Login(c.Request.Context(), input.UserName, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: token})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.UserResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	u, err := h.users.Me(c.Request.Context(), requester(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse(u))
}

// @Summary Change own password
// @Tags auth
// @Security BearerAuth
// @Param input body model.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} model.MessageResponse
// @Router /auth/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	var input model.ChangePasswordRequest
	if !bindJSON(c, &input) {
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), requester(c), input.OldPassword, input.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Password updated"})
}

// @Summary List users (admin)
// @Tags auth
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Router /auth/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), requester(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Change a user's role (admin)
// @Tags auth
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body model.SetRoleRequest true "New role"
// @Success 200 {object} model.UserResponse
// @Router /auth/users/{id}/role [put]
func (h *Handler) SetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input model.SetRoleRequest
	if !bindJSON(c, &input) {
		return
	}
	u, err := h.users.SetRole(c.Request.Context(), requester(c), id, input.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse(u))
}

// @Summary Delete a user and everything they own (admin)
// @Tags auth
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.MessageResponse
// @Router /auth/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), requester(c), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "User deleted"})
}
