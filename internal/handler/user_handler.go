package handler

import (
	"log"
	"net/http"

	"acme_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the create-user form and the admin user listing
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	state := h.service.CreateUser(c.Request.Context(), nil, formFields(c))
	if state.Success != "" {
		// No redirect here: the caller stays on the form and renders the
		// success message.
		c.JSON(http.StatusCreated, state)
		return
	}
	if len(state.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	c.JSON(http.StatusInternalServerError, state)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// RegisterUserRoutes registers user routes. Creating a user is public
// (the sign-up form links from the login page); the listing is admin-only.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.POST("/users", h.CreateUser)

	adminRoutes := rg.Group("/users")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("", h.ListUsers)
	}
}
