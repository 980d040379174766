package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/forms"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

const (
	usersPerPage = 5
	postsPerPage = 10
)

// UserController serves the member directory, registration, public profiles
// and account deletion.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a UserController.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// storeLookup adapts the users table to the uniqueness checks the
// registration form runs.
type storeLookup struct {
	db *gorm.DB
}

func (s storeLookup) EmailTaken(email string) (bool, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (s storeLookup) UsernameTaken(username string) (bool, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

// Home lists members newest first alongside the registration form.
func (u *UserController) Home(c *gin.Context) {
	u.renderHome(c, http.StatusOK, forms.AddUserForm{}, forms.Errors{})
}

// CreateUser registers an account from the home page form. On any validation
// failure the page re-renders with the submitted values and inline errors.
func (u *UserController) CreateUser(c *gin.Context) {
	var form forms.AddUserForm
	_ = c.ShouldBind(&form)

	lookup := storeLookup{db: u.db}
	errs, err := form.Validate(lookup)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if !errs.Any() {
		hash, err := utils.HashPassword(form.Password)
		if err != nil {
			renderServerError(c, err)
			return
		}
		user := models.User{
			Name:               form.Name,
			Username:           form.Username,
			Email:              strings.ToLower(form.Email),
			Street:             form.Street,
			Suite:              form.Suite,
			City:               form.City,
			Zipcode:            form.Zipcode,
			Lat:                form.Lat,
			Lng:                form.Lng,
			Phone:              form.Phone,
			Website:            form.Website,
			CompanyName:        form.CompanyName,
			CompanyCatchPhrase: form.CompanyCatchPhrase,
			CompanyBS:          form.CompanyBS,
			PasswordHash:       hash,
		}
		err = u.db.Create(&user).Error
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost the race between the lookup and the insert. Either unique
			// index can be the one that fired, so rerun both lookups to blame
			// the right field.
			if taken, _ := lookup.EmailTaken(user.Email); taken {
				errs["Email"] = "Email already registered."
			}
			if taken, _ := lookup.UsernameTaken(user.Username); taken {
				errs["Username"] = "Username already in use."
			}
			if !errs.Any() {
				errs["Username"] = "Username already in use."
			}
		case err != nil:
			renderServerError(c, err)
			return
		default:
			utils.Sugar.Infof("registered user %s (id=%d)", user.Username, user.ID)
			utils.Flash(c, "success", "Account created, you can now log in.")
			c.Redirect(http.StatusFound, "/")
			return
		}
	}

	u.renderHome(c, http.StatusUnprocessableEntity, form, errs)
}

func (u *UserController) renderHome(c *gin.Context, status int, form forms.AddUserForm, errs forms.Errors) {
	var total int64
	if err := u.db.Model(&models.User{}).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}
	p := utils.Paginate(utils.ParsePage(c.Query("page")), usersPerPage, total)

	var users []models.User
	err := u.db.Order("member_since DESC").Offset(p.Offset()).Limit(p.PageSize).Find(&users).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "home.html", gin.H{
		"Title":      "Home",
		"Users":      users,
		"Pagination": p,
		"Form":       form,
		"Errors":     errs,
	})
}

// Profile shows a user's public page with their posts, newest first.
func (u *UserController) Profile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := u.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		renderServerError(c, err)
		return
	}

	var total int64
	if err := u.db.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}
	p := utils.Paginate(utils.ParsePage(c.Query("page")), postsPerPage, total)

	var posts []models.Post
	err := u.db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&posts).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Title":      user.Username,
		"Profile":    &user,
		"Posts":      posts,
		"Pagination": p,
	})
}

// DeleteUser removes an account and, through the foreign keys, everything it
// owns. Responds with JSON for the inline confirmation script.
func (u *UserController) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONNotFound(c, "user not found")
		return
	}

	res := u.db.Delete(&models.User{}, id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete user %d: %v", id, res.Error)
		utils.JSONError(c, "could not delete user")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONNotFound(c, "user not found")
		return
	}

	utils.Sugar.Infof("deleted user %d", id)
	utils.JSONDeleted(c, id)
}
