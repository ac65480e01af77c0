package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/projectdesk/pma_backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. sessionKey holds the resolved session for the request.
const (
	userIDKey  = contextKey("userID")
	sessionKey = contextKey("session")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetSessionFromContext retrieves the resolved session for the request.
// The zero session (unauthenticated) is returned when none is set.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	return getSessionFromCtx(c.Request.Context())
}

func getSessionFromCtx(ctx context.Context) (domain.Session, bool) {
	sessVal := ctx.Value(sessionKey)
	if sessVal == nil {
		return domain.Session{}, false
	}
	sess, ok := sessVal.(domain.Session)
	if !ok {
		return domain.Session{}, false
	}
	return sess, true
}
