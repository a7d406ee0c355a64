package auth

import "github.com/gin-gonic/gin"

const (
	subjectKey = "authSubject"
	nameKey    = "authName"
)

// GetSubject returns the authenticated token subject or empty string.
// It is always empty when authentication is disabled.
func GetSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

// GetName returns the display name carried by the token or empty string.
func GetName(c *gin.Context) string {
	return c.GetString(nameKey)
}
