package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dailydiet/daily-diet-api/internal/middleware"
	"github.com/dailydiet/daily-diet-api/internal/service"
)

// sessionTTL is the lifetime of the sessionId cookie.
const sessionTTL = 7 * 24 * 60 * 60 // 7 days in seconds

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.Register)
}

// Register creates a user and issues its session cookie. Registration is
// the only authentication flow: the cookie set here is the credential for
// every later request.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Email '%s' already exists.", req.Email)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.SetCookie(middleware.SessionCookie, user.SessionID.String(), sessionTTL, "/", "", false, false)
	c.Status(http.StatusCreated)
}
