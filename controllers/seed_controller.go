package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placehub/placehub/forms"
	"github.com/placehub/placehub/seeder"
	"github.com/placehub/placehub/utils"
)

// seedRedirects maps a seeded resource to the page that shows its rows.
var seedRedirects = map[string]string{
	"users":    "/",
	"posts":    "/posts",
	"comments": "/posts",
	"albums":   "/albums",
	"photos":   "/albums",
	"todos":    "/todos",
}

// SeedController triggers the dataset import from the reference API.
type SeedController struct {
	seeder *seeder.Seeder
}

// NewSeedController creates a SeedController.
func NewSeedController(s *seeder.Seeder) *SeedController {
	return &SeedController{seeder: s}
}

// Seed tops the :resource table up to the requested count, then returns to
// the page listing that resource. The outcome is reported as a flash.
func (s *SeedController) Seed(c *gin.Context) {
	resource := c.Param("resource")
	back, known := seedRedirects[resource]
	if !known {
		renderNotFound(c)
		return
	}

	var form forms.SeedForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		utils.Flash(c, "error", "Seed count must be between 1 and 500.")
		c.Redirect(http.StatusFound, back)
		return
	}

	ctx := c.Request.Context()
	var n int
	var err error
	switch resource {
	case "users":
		users, e := s.seeder.Users(ctx, form.Count)
		n, err = len(users), e
	case "posts":
		posts, e := s.seeder.Posts(ctx, form.Count)
		n, err = len(posts), e
	case "comments":
		comments, e := s.seeder.Comments(ctx, form.Count)
		n, err = len(comments), e
	case "albums":
		albums, e := s.seeder.Albums(ctx, form.Count)
		n, err = len(albums), e
	case "photos":
		photos, e := s.seeder.Photos(ctx, form.Count)
		n, err = len(photos), e
	case "todos":
		todos, e := s.seeder.Todos(ctx, form.Count)
		n, err = len(todos), e
	}

	if err != nil {
		utils.Sugar.Errorf("seeding %s failed: %v", resource, err)
		utils.Flash(c, "error", fmt.Sprintf("Seeding %s failed, try again later.", resource))
	} else {
		utils.Flash(c, "success", fmt.Sprintf("%s table holds %d seeded rows.", resource, n))
	}
	c.Redirect(http.StatusFound, back)
}
