package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

const (
	// sessionUserIDKey is the session entry holding the authenticated user id.
	sessionUserIDKey = "userID"
	// ContextUserIDKey is the key used to store the authenticated user ID in Gin context.
	ContextUserIDKey = "user_id"
	// ContextUserKey stores the loaded user record inside Gin context.
	ContextUserKey = "current_user"
)

// SessionUser resolves the session cookie into an explicit current-user value
// on the request context. It never aborts; unauthenticated requests simply
// continue without a user. Broken session state is cleared.
func SessionUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(sessionUserIDKey)
		if raw == nil {
			c.Next()
			return
		}

		uid, ok := raw.(uint)
		if !ok {
			clearSession(c)
			c.Next()
			return
		}

		var user models.User
		if err := db.First(&user, uid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Account deleted while the cookie was still live.
				clearSession(c)
			} else {
				utils.Sugar.Errorf("failed to load session user %d: %v", uid, err)
			}
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, &user)
		c.Next()
	}
}

// AuthRequired guards a route group: unauthenticated requests are redirected
// to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(sessionUserIDKey)
		if raw == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		uid, ok := raw.(uint)
		if !ok {
			clearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, uid)
		c.Next()
	}
}

// CurrentUser returns the user record loaded by SessionUser, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := raw.(*models.User)
	return user, ok
}

// CurrentUserID returns the authenticated user id set by AuthRequired or
// SessionUser.
func CurrentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := raw.(uint)
	return uid, ok
}

// Login writes the user id into the session. A non-remembered session lasts
// only until the browser closes.
func Login(c *gin.Context, userID uint, remember bool) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, userID)
	if !remember {
		opts := sessionOptions()
		opts.MaxAge = 0
		session.Options(opts)
	}
	return session.Save()
}

// Logout drops the user id and expires the cookie.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserIDKey)
	opts := sessionOptions()
	opts.MaxAge = -1
	session.Options(opts)
	return session.Save()
}

func clearSession(c *gin.Context) {
	if err := Logout(c); err != nil {
		utils.Sugar.Warnf("failed to clear session: %v", err)
	}
}

func sessionOptions() sessions.Options {
	return sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
