package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/forms"
	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

// AuthController handles login, logout and the current user's profile edits.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// ShowLogin renders the login form. A visitor that is already signed in is
// sent to their profile instead.
func (a *AuthController) ShowLogin(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, profilePath(user))
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"Title":  "Log In",
		"Form":   forms.LoginForm{},
		"Errors": forms.Errors{},
	})
}

// Login verifies the credential pair and establishes the session. Failures
// report one generic message so the response never reveals whether the email
// or the password was wrong.
func (a *AuthController) Login(c *gin.Context) {
	var form forms.LoginForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); errs.Any() {
		render(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Title":  "Log In",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	var user models.User
	err := a.db.Where("email = ?", strings.ToLower(form.Email)).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		renderServerError(c, err)
		return
	}
	if err != nil || !utils.CheckPassword(user.PasswordHash, form.Password) {
		utils.Flash(c, "error", "Invalid email or password.")
		render(c, http.StatusOK, "login.html", gin.H{
			"Title":  "Log In",
			"Form":   form,
			"Errors": forms.Errors{},
		})
		return
	}

	if err := middleware.Login(c, user.ID, form.Remember); err != nil {
		renderServerError(c, err)
		return
	}
	utils.Flash(c, "success", "Logged in successfully!")
	c.Redirect(http.StatusFound, profilePath(&user))
}

// Logout clears the session and returns to the home page.
func (a *AuthController) Logout(c *gin.Context) {
	if err := middleware.Logout(c); err != nil {
		utils.Sugar.Warnf("failed to clear session on logout: %v", err)
	}
	utils.Flash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

// ShowEditProfile renders the profile form pre-populated with the current
// user's values.
func (a *AuthController) ShowEditProfile(c *gin.Context) {
	user, ok := a.requireUser(c)
	if !ok {
		return
	}
	form := forms.EditProfileForm{
		Name:        user.Name,
		Username:    user.Username,
		City:        user.City,
		Phone:       user.Phone,
		CompanyName: user.CompanyName,
		CompanyBS:   user.CompanyBS,
	}
	render(c, http.StatusOK, "profile_edit.html", gin.H{
		"Title":  "Edit Profile",
		"Form":   form,
		"Errors": forms.Errors{},
	})
}

// UpdateProfile applies the submitted subset of profile columns. Columns the
// form does not carry keep their stored values.
func (a *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := a.requireUser(c)
	if !ok {
		return
	}

	var form forms.EditProfileForm
	_ = c.ShouldBind(&form)
	errs := form.Validate()
	if !errs.Any() {
		err := a.db.Model(user).Updates(map[string]interface{}{
			"name":         form.Name,
			"username":     form.Username,
			"city":         form.City,
			"phone":        form.Phone,
			"company_name": form.CompanyName,
			"company_bs":   form.CompanyBS,
		}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			errs["Username"] = "Username already in use."
		} else if err != nil {
			renderServerError(c, err)
			return
		}
	}

	if errs.Any() {
		render(c, http.StatusUnprocessableEntity, "profile_edit.html", gin.H{
			"Title":  "Edit Profile",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	utils.Flash(c, "success", "Your profile has been updated!")
	c.Redirect(http.StatusFound, "/users/"+form.Username)
}

// requireUser loads the authenticated user record, rendering a generic error
// when the session id no longer resolves to a row.
func (a *AuthController) requireUser(c *gin.Context) (*models.User, bool) {
	if user, ok := middleware.CurrentUser(c); ok {
		return user, true
	}
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}
	var user models.User
	if err := a.db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return nil, false
		}
		renderServerError(c, err)
		return nil, false
	}
	return &user, true
}

func profilePath(user *models.User) string {
	if user.Username == "" {
		return "/"
	}
	return "/users/" + user.Username
}
