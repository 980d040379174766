package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/config"
	"github.com/placehub/placehub/controllers"
	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/seeder"
	"github.com/placehub/placehub/utils"
)

// SetupRouter wires middleware, templates and every route of the application.
func SetupRouter(cfg config.AppConfig, db *gorm.DB, seed *seeder.Seeder) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.New()

	accessLogger, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel,
		cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err != nil {
		utils.Sugar.Fatalf("failed to init access logger: %v", err)
	}
	r.Use(middleware.RequestID())
	r.Use(utils.Ginzap(accessLogger, "2006-01-02 15:04:05", true))
	r.Use(utils.RecoveryWithZap(accessLogger, true))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("placehub_session", store))
	r.Use(middleware.SessionUser(db))
	r.Use(middleware.TouchLastSeen(db))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	users := controllers.NewUserController(db)
	auth := controllers.NewAuthController(db)
	posts := controllers.NewPostController(db)
	albums := controllers.NewAlbumController(db)
	todos := controllers.NewTodoController(db)
	seeds := controllers.NewSeedController(seed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages.
	r.GET("/", users.Home)
	r.POST("/", users.CreateUser)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/users/:username", users.Profile)
	r.GET("/posts", posts.List)
	r.GET("/posts/:id", posts.Detail)
	r.POST("/posts/:id/comments", posts.CreateComment)
	r.GET("/albums", albums.List)
	r.GET("/albums/:id", albums.Detail)
	r.GET("/todos", todos.List)

	// Routes that require a session.
	authed := r.Group("/", middleware.AuthRequired())
	{
		authed.GET("/logout", auth.Logout)
		authed.GET("/profile/edit", auth.ShowEditProfile)
		authed.POST("/profile/edit", auth.UpdateProfile)
		authed.POST("/users/:id/delete", users.DeleteUser)
		authed.POST("/posts", posts.Create)
		authed.GET("/posts/:id/edit", posts.ShowEdit)
		authed.POST("/posts/:id/edit", posts.Edit)
		authed.POST("/posts/:id/delete", posts.Delete)
		authed.POST("/albums", albums.Create)
		authed.POST("/albums/:id/photos", albums.CreatePhoto)
		authed.POST("/albums/:id/delete", albums.Delete)
		authed.POST("/todos", todos.Create)
		authed.POST("/todos/:id/delete", todos.Delete)
		authed.POST("/seed/:resource", seeds.Seed)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
	})

	return r
}
