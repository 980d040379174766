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

const (
	albumsPerPage = 6
	photosPerPage = 8
)

// AlbumController serves the album gallery and the photos inside an album.
type AlbumController struct {
	db *gorm.DB
}

// NewAlbumController creates an AlbumController.
func NewAlbumController(db *gorm.DB) *AlbumController {
	return &AlbumController{db: db}
}

// List shows all albums, newest first, with the new-album form for
// signed-in visitors.
func (a *AlbumController) List(c *gin.Context) {
	a.renderList(c, http.StatusOK, forms.AlbumForm{}, forms.Errors{})
}

// Create adds an album for the authenticated user.
func (a *AlbumController) Create(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.AlbumForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		a.renderList(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	album := models.Album{UserID: uid, Title: form.Title}
	if err := a.db.Create(&album).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Album created.")
	c.Redirect(http.StatusFound, "/albums/"+strconv.FormatUint(uint64(album.ID), 10))
}

func (a *AlbumController) renderList(c *gin.Context, status int, form forms.AlbumForm, errs forms.Errors) {
	var total int64
	if err := a.db.Model(&models.Album{}).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}
	pg := utils.Paginate(utils.ParsePage(c.Query("page")), albumsPerPage, total)

	var albums []models.Album
	err := a.db.Preload("User").
		Order("date DESC").
		Offset(pg.Offset()).Limit(pg.PageSize).
		Find(&albums).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "albums.html", gin.H{
		"Title":      "Albums",
		"Albums":     albums,
		"Pagination": pg,
		"Form":       form,
		"Errors":     errs,
	})
}

// Detail shows one album and a page of its photos in upload order.
func (a *AlbumController) Detail(c *gin.Context) {
	a.renderDetail(c, http.StatusOK, forms.PhotoForm{}, forms.Errors{})
}

// CreatePhoto adds a photo, by URL, to an album owned by the requester.
func (a *AlbumController) CreatePhoto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var album models.Album
	if err := a.db.First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		renderServerError(c, err)
		return
	}
	if album.UserID != uid {
		renderNotFound(c)
		return
	}

	var form forms.PhotoForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		a.renderDetail(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	photo := models.Photo{
		AlbumID:      album.ID,
		Title:        form.Title,
		URL:          form.URL,
		ThumbnailURL: form.ThumbnailURL,
	}
	if err := a.db.Create(&photo).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Photo added to the album.")
	c.Redirect(http.StatusFound, "/albums/"+strconv.FormatUint(uint64(album.ID), 10)+"?page=-1")
}

func (a *AlbumController) renderDetail(c *gin.Context, status int, form forms.PhotoForm, errs forms.Errors) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	var album models.Album
	if err := a.db.Preload("User").First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		renderServerError(c, err)
		return
	}

	var total int64
	if err := a.db.Model(&models.Photo{}).Where("album_id = ?", id).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}

	page := 1
	if raw := c.Query("page"); raw == "-1" {
		page = utils.LastPage(total, photosPerPage)
	} else {
		page = utils.ParsePage(raw)
	}
	pg := utils.Paginate(page, photosPerPage, total)

	var photos []models.Photo
	err := a.db.Where("album_id = ?", id).
		Order("date ASC").
		Offset(pg.Offset()).Limit(pg.PageSize).
		Find(&photos).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "album_detail.html", gin.H{
		"Title":      album.Title,
		"Album":      &album,
		"Photos":     photos,
		"Pagination": pg,
		"Form":       form,
		"Errors":     errs,
	})
}

// Delete removes an album and its photos.
func (a *AlbumController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONNotFound(c, "album not found")
		return
	}

	res := a.db.Delete(&models.Album{}, id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete album %d: %v", id, res.Error)
		utils.JSONError(c, "could not delete album")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONNotFound(c, "album not found")
		return
	}

	utils.JSONDeleted(c, id)
}
