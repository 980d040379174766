package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/forms"
	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

const commentsPerPage = 10

// PostController serves the post feed, single-post pages with their comment
// threads, and the authoring routes.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a PostController.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// List shows the feed, newest first, with the new-post form for signed-in
// visitors.
func (p *PostController) List(c *gin.Context) {
	p.renderList(c, http.StatusOK, forms.PostForm{}, forms.Errors{})
}

// Create adds a post for the authenticated user. The body is sanitized
// before storage since templates render it as HTML.
func (p *PostController) Create(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.PostForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		p.renderList(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	post := models.Post{
		UserID: uid,
		Title:  form.Title,
		Body:   utils.Sanitize(form.Body),
	}
	if err := p.db.Create(&post).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post is now live!")
	c.Redirect(http.StatusFound, "/posts")
}

func (p *PostController) renderList(c *gin.Context, status int, form forms.PostForm, errs forms.Errors) {
	var total int64
	if err := p.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}
	pg := utils.Paginate(utils.ParsePage(c.Query("page")), postsPerPage, total)

	var posts []models.Post
	err := p.db.Preload("User").
		Order("date DESC").
		Offset(pg.Offset()).Limit(pg.PageSize).
		Find(&posts).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "posts.html", gin.H{
		"Title":      "Posts",
		"Posts":      posts,
		"Pagination": pg,
		"Form":       form,
		"Errors":     errs,
	})
}

// Detail shows one post and a page of its comments, oldest first. page=-1
// jumps to the last page so a freshly posted comment is visible.
func (p *PostController) Detail(c *gin.Context) {
	p.renderDetail(c, http.StatusOK, forms.CommentForm{}, forms.Errors{})
}

// CreateComment attaches a comment to a post. Commenting is open to
// anonymous visitors, matching the imported dataset where comments carry
// their own name and email.
func (p *PostController) CreateComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	// The comment must land on an existing post; a missing id is a 404, not
	// a constraint failure at insert time.
	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		renderServerError(c, err)
		return
	}

	var form forms.CommentForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		p.renderDetail(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		Name:   form.Name,
		Email:  form.Email,
		Body:   utils.Sanitize(form.Body),
	}
	if err := p.db.Create(&comment).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Your comment has been published.")
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(uint64(id), 10)+"?page=-1")
}

func (p *PostController) renderDetail(c *gin.Context, status int, form forms.CommentForm, errs forms.Errors) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	var post models.Post
	if err := p.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		renderServerError(c, err)
		return
	}

	var total int64
	if err := p.db.Model(&models.Comment{}).Where("post_id = ?", id).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}

	page := 1
	if raw := c.Query("page"); raw == "-1" {
		page = utils.LastPage(total, commentsPerPage)
	} else {
		page = utils.ParsePage(raw)
	}
	pg := utils.Paginate(page, commentsPerPage, total)

	var comments []models.Comment
	err := p.db.Where("post_id = ?", id).
		Order("date ASC").
		Offset(pg.Offset()).Limit(pg.PageSize).
		Find(&comments).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "post_detail.html", gin.H{
		"Title":      post.Title,
		"Post":       &post,
		"Comments":   comments,
		"Pagination": pg,
		"Form":       form,
		"Errors":     errs,
	})
}

// ShowEdit renders the edit form for the author's own post.
func (p *PostController) ShowEdit(c *gin.Context) {
	post, ok := p.ownPost(c)
	if !ok {
		return
	}
	form := forms.PostForm{Title: post.Title, Body: post.Body}
	render(c, http.StatusOK, "post_edit.html", gin.H{
		"Title":  "Edit Post",
		"Post":   post,
		"Form":   form,
		"Errors": forms.Errors{},
	})
}

// Edit updates the author's own post.
func (p *PostController) Edit(c *gin.Context) {
	post, ok := p.ownPost(c)
	if !ok {
		return
	}

	var form forms.PostForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		render(c, http.StatusUnprocessableEntity, "post_edit.html", gin.H{
			"Title":  "Edit Post",
			"Post":   post,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	err := p.db.Model(post).Updates(map[string]interface{}{
		"title": form.Title,
		"body":  utils.Sanitize(form.Body),
	}).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been updated.")
	c.Redirect(http.StatusFound, "/posts")
}

// ownPost loads the :id post and verifies the requester wrote it. A post
// someone else owns renders as missing rather than forbidden.
func (p *PostController) ownPost(c *gin.Context) (*models.Post, bool) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return nil, false
	}
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return nil, false
		}
		renderServerError(c, err)
		return nil, false
	}
	if post.UserID != uid {
		renderNotFound(c)
		return nil, false
	}
	return &post, true
}

// Delete removes a post and its comments.
func (p *PostController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONNotFound(c, "post not found")
		return
	}

	res := p.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete post %d: %v", id, res.Error)
		utils.JSONError(c, "could not delete post")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONNotFound(c, "post not found")
		return
	}

	utils.JSONDeleted(c, id)
}
