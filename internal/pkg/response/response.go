package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the acknowledgement payload the reservation client expects.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Fail writes an error body. The message is user-facing and goes out verbatim.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
