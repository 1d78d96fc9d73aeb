package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, result, message},
// plus {pagination} on paginated lists.

// Pagination is attached to list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Count int64 `json:"count"`
}

func respondOK(c *gin.Context, result interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result, "message": message})
}

func respondCreated(c *gin.Context, result interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result, "message": message})
}

// respondList uses 203 for an empty-but-successful page, distinguishing
// "no data" from other outcomes.
func respondList(c *gin.Context, result interface{}, itemCount int, p Pagination) {
	status := http.StatusOK
	if itemCount == 0 {
		status = http.StatusNonAuthoritativeInfo
	}
	c.JSON(status, gin.H{"success": true, "result": result, "pagination": p})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondUnhandled passes the underlying message through on 500. Debugging
// convenience, not a hardened posture.
func respondUnhandled(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, err.Error())
}
