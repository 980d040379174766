package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/utils"
)

// render wraps c.HTML, injecting the data every template expects: the
// current user (nil when anonymous) and any queued flash messages.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		user, _ := middleware.CurrentUser(c)
		data["User"] = user
	}
	data["Flashes"] = utils.TakeFlashes(c)
	c.HTML(status, name, data)
}

// renderNotFound answers a missing entity on an HTML route.
func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}

// renderServerError answers an unexpected storage failure with a generic
// page; the cause is logged, never shown.
func renderServerError(c *gin.Context, err error) {
	utils.Sugar.Errorf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
}

// paramID parses the numeric :id path segment.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
