package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

// lastSeenResolution bounds how often a user's last_seen column is rewritten.
const lastSeenResolution = time.Minute

// TouchLastSeen refreshes users.last_seen after successful authenticated page
// views. Runs after the handler so it never delays the response body.
func TouchLastSeen(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/static/") {
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			return
		}
		now := time.Now()
		if now.Sub(user.LastSeen) < lastSeenResolution {
			return
		}
		err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("last_seen", now).Error
		if err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("failed to touch last_seen for user %d: %v", user.ID, err)
		}
	}
}
