package api

import (
	"errors"
	"net/http"

	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/handler/middleware"
	"furnistore/internal/usecase/commands"
	"furnistore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Update own profile
// @Description Change the authenticated user's name, address or payment method
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List users
// @Description List every registered user (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Failure 403 {object} map[string]string
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.userQueries.List(c.Request.Context()))
}

// @Summary Update user
// @Description Update any user's profile or role by email (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminUpdateUserRequest true "User fields"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req reqdto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.userCommands.Update(c.Request.Context(), req)
	if err != nil {
		h.writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete user
// @Description Remove a user by email (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.AdminDeleteUserRequest true "User email"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	var req reqdto.AdminDeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), req.Email); err != nil {
		h.writeUserError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrNoUpdatedFields):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No fields provided for update",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
