package routes

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/config"
	"github.com/supanugit/Blog-Frontend/controllers"
	"github.com/supanugit/Blog-Frontend/middleware"
	"github.com/supanugit/Blog-Frontend/utils"
	"github.com/supanugit/Blog-Frontend/views"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(client *api.Client) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}
	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.SetFuncMap(template.FuncMap{
		"statusClass": func(s views.Status) string {
			switch s.Severity {
			case views.SeveritySuccess:
				return "alert-success"
			case views.SeverityError:
				return "alert-error"
			case views.SeverityWarning:
				return "alert-warning"
			}
			return ""
		},
	})
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	blogController := controllers.NewBlogController(client)
	authController := controllers.NewAuthController(client)

	r.GET("/", blogController.List)
	r.GET("/blog", blogController.List)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.GET("/login", authController.LoginForm)
	authGroup.POST("/login", authController.LoginSubmit)
	authGroup.GET("/register", authController.RegisterForm)
	authGroup.POST("/register", authController.RegisterSubmit)
	r.POST("/logout", authController.Logout)

	r.GET("/blog/create-blog", blogController.CreateForm)
	r.POST("/blog/create-blog", blogController.CreateSubmit)

	// Session-cookie presence gates every post-specific page; the backend
	// still makes the real authorization call on each API request.
	guarded := r.Group("/blog")
	guarded.Use(middleware.SessionGuard())
	guarded.GET("/:id", blogController.Detail)
	guarded.POST("/:id/comments", blogController.CommentSubmit)
	guarded.POST("/:id/delete", blogController.Delete)
	guarded.GET("/edit/:id", blogController.EditForm)
	guarded.POST("/edit/:id", blogController.EditSubmit)

	// Unknown paths fall back to the list page, like the SPA entry point.
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "static asset not found"})
			return
		}
		blogController.List(ctx)
	})

	return r
}
