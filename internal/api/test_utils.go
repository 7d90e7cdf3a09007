package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dailydiet/daily-diet-api/internal/database"
	"github.com/dailydiet/daily-diet-api/internal/middleware"
)

// setupTestRouter builds a fully wired router over a fresh in-memory sqlite
// database. The database name is derived from the test name so parallel
// tests never share state.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupAPI(router, db)
	return router, db
}

// doJSON performs a request with a JSON body and an optional session cookie.
func doJSON(router *gin.Engine, method, path, body, sessionID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionID})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the public route and returns the
// session id issued in the response cookie.
func registerUser(t *testing.T, router *gin.Engine, name, email string) string {
	w := doJSON(router, "POST", "/users", fmt.Sprintf(`{"name":%q,"email":%q}`, name, email), "")
	require.Equal(t, http.StatusCreated, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie.Value
		}
	}
	t.Fatalf("no %s cookie in registration response", middleware.SessionCookie)
	return ""
}
