package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The mutating HTML routes redirect; only the delete endpoints and the
// health check speak JSON.

// JSONDeleted acknowledges a completed delete.
func JSONDeleted(ctx *gin.Context, id uint) {
	ctx.JSON(http.StatusOK, gin.H{"deleted": id})
}

// JSONNotFound reports a missing entity without raising.
func JSONNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, gin.H{"error": message})
}

// JSONError reports an unexpected failure with a generic message.
func JSONError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
