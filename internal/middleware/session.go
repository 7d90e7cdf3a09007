package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/internal/models"
)

// SessionCookie is the cookie carrying the session id issued at registration.
const SessionCookie = "sessionId"

const currentUserKey = "currentUser"

// SessionAuth resolves the caller from the sessionId cookie and stores the
// matching user in the request context. Requests without a cookie, or with a
// session id no user row matches, are rejected with 401 before the handler
// runs.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Session id is missing!"})
			return
		}

		var user models.User
		if err := db.Where("session_id = ?", sessionID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. User not found!"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by SessionAuth for this request
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
