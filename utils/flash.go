package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash categories understood by the templates.
var flashCategories = []string{"success", "error", "info", "warning"}

// FlashMessage is one user-facing notice queued in the session.
type FlashMessage struct {
	Category string
	Message  string
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil && Sugar != nil {
		Sugar.Warnf("failed to save session flash: %v", err)
	}
}

// TakeFlashes drains all queued flash messages, oldest first per category.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	var out []FlashMessage
	for _, category := range flashCategories {
		for _, raw := range session.Flashes(category) {
			if msg, ok := raw.(string); ok {
				out = append(out, FlashMessage{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := session.Save(); err != nil && Sugar != nil {
			Sugar.Warnf("failed to save session after draining flashes: %v", err)
		}
	}
	return out
}
