package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated caller's subject in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
