package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Post{}, &models.Comment{},
		&models.Album{}, &models.Photo{}, &models.Todo{},
	))
	return db
}

// newTestRouter mirrors the production middleware chain and the routes the
// handler tests exercise, with a backdoor sign-in route instead of the
// password flow.
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	utils.Sugar = utils.Logger.Sugar()

	r := gin.New()
	r.LoadHTMLGlob("../web/templates/*.html")
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	r.Use(middleware.SessionUser(db))

	users := NewUserController(db)
	auth := NewAuthController(db)
	posts := NewPostController(db)
	albums := NewAlbumController(db)
	todos := NewTodoController(db)

	r.GET("/backdoor/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok || middleware.Login(c, id, true) != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	r.POST("/posts/:id/comments", posts.CreateComment)

	authed := r.Group("/", middleware.AuthRequired())
	{
		authed.GET("/profile/edit", auth.ShowEditProfile)
		authed.POST("/profile/edit", auth.UpdateProfile)
		authed.POST("/users/:id/delete", users.DeleteUser)
		authed.POST("/posts/:id/delete", posts.Delete)
		authed.POST("/albums/:id/delete", albums.Delete)
		authed.POST("/todos/:id/delete", todos.Delete)
	}
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Leanne Graham",
		Username: username,
		Email:    strings.ToLower(username) + "@example.com",
		Street:   "Kulas Light",
		Suite:    "Apt. 556",
		City:     "Gwenborough",
		Zipcode:  "92998-3874",
		Phone:    "1-770-736-8031",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func signIn(t *testing.T, r *gin.Engine, userID uint) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/backdoor/%d", userID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteMissingEntityAnswersJSONNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "Bret")
	cookies := signIn(t, r, user.ID)

	tests := []struct {
		path string
		body string
	}{
		{"/users/9999/delete", `{"error": "user not found"}`},
		{"/posts/9999/delete", `{"error": "post not found"}`},
		{"/albums/9999/delete", `{"error": "album not found"}`},
		{"/todos/9999/delete", `{"error": "todo not found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := postForm(r, tt.path, url.Values{}, cookies)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestDeletePostRemovesRow(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "Bret")
	cookies := signIn(t, r, user.ID)

	post := models.Post{UserID: user.ID, Title: "first", Body: "body"}
	require.NoError(t, db.Create(&post).Error)

	w := postForm(r, fmt.Sprintf("/posts/%d/delete", post.ID), url.Values{}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"deleted": %d}`, post.ID), w.Body.String())

	var n int64
	require.NoError(t, db.Model(&models.Post{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateProfileKeepsUntouchedColumns(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "Bret")
	cookies := signIn(t, r, user.ID)

	form := url.Values{
		"name":         {"Leanne G."},
		"username":     {"Bret2"},
		"city":         {"New City"},
		"phone":        {"555-0000"},
		"company_name": {"Acme"},
		"company_bs":   {"synergize"},
	}
	w := postForm(r, "/profile/edit", form, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/Bret2", w.Header().Get("Location"))

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, "Leanne G.", got.Name)
	assert.Equal(t, "Bret2", got.Username)
	assert.Equal(t, "New City", got.City)
	assert.Equal(t, "555-0000", got.Phone)

	// Columns the form does not carry keep their stored values.
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Street, got.Street)
	assert.Equal(t, user.Suite, got.Suite)
	assert.Equal(t, user.Zipcode, got.Zipcode)
}

func TestCreateCommentOnMissingPostIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	form := url.Values{
		"name":  {"Visitor"},
		"email": {"visitor@example.com"},
		"body":  {"hello"},
	}
	w := postForm(r, "/posts/9999/comments", form, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateCommentOnExistingPostRedirects(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "Bret")

	post := models.Post{UserID: user.ID, Title: "first", Body: "body"}
	require.NoError(t, db.Create(&post).Error)

	form := url.Values{
		"name":  {"Visitor"},
		"email": {"visitor@example.com"},
		"body":  {"hello"},
	}
	w := postForm(r, fmt.Sprintf("/posts/%d/comments", post.ID), form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d?page=-1", post.ID), w.Header().Get("Location"))

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
