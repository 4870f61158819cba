package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/job000/wedding2025-backend/internal/metrics"
)

type RouterConfig struct {
	AllowOrigins []string
	// Uploads serves locally stored files under /uploads. Nil when files live in S3.
	Uploads http.FileSystem
	Swagger bool
}

// corsConfig allows any origin, without credentials, when none are configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(h.log))
	r.Use(RequestLogger(h.log))
	r.Use(metrics.Middleware())

	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if cfg.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Uploads != nil {
		r.StaticFS("/uploads", cfg.Uploads)
	}

	api := r.Group("/")
	api.Use(h.OptionalAuth())
	auth := h.RequireAuth()

	// Accounts
	users := api.Group("/auth")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/me", auth, h.Me)
		users.PUT("/password", auth, h.ChangePassword)
		users.GET("/users", auth, h.ListUsers)
		users.PUT("/users/:id/role", auth, h.SetRole)
		users.DELETE("/users/:id", auth, h.DeleteUser)
	}

	gallery := api.Group("/gallery")
	{
		gallery.POST("/upload", auth, h.UploadMedia)
		gallery.GET("/media", h.ListMedia)
		gallery.GET("/media/:id", h.GetMedia)
		gallery.PUT("/media/:id", auth, h.UpdateMedia)
		gallery.DELETE("/media/:id", auth, h.DeleteMedia)
		gallery.POST("/media/:id/like", auth, h.LikeMedia)
		gallery.POST("/media/:id/comments", auth, h.AddComment)
		gallery.PUT("/media/:id/comments/:comment_id", auth, h.EditComment)
		gallery.DELETE("/media/:id/comments/:comment_id", auth, h.DeleteComment)
		gallery.GET("/search", h.SearchMedia)

		gallery.POST("/albums", auth, h.CreateAlbum)
		gallery.GET("/albums", h.ListAlbums)
		gallery.GET("/albums/:id", h.GetAlbum)
		gallery.PUT("/albums/:id", auth, h.UpdateAlbum)
		gallery.DELETE("/albums/:id", auth, h.DeleteAlbum)
	}

	rsvp := api.Group("/rsvp")
	{
		rsvp.POST("", h.CreateRSVP)
		rsvp.GET("", auth, h.ListRSVPs)
		rsvp.GET("/:id", auth, h.GetRSVP)
		rsvp.PUT("/:id", auth, h.UpdateRSVP)
		rsvp.DELETE("/:id", auth, h.DeleteRSVP)
	}

	info := api.Group("/info")
	{
		info.POST("", auth, h.CreateInfo)
		info.GET("", h.ListInfo)
		info.GET("/:id", h.GetInfo)
		info.PUT("/:id", auth, h.UpdateInfo)
		info.DELETE("/:id", auth, h.DeleteInfo)
	}

	faq := api.Group("/faq")
	{
		faq.POST("", auth, h.CreateFAQ)
		faq.GET("", h.ListFAQ)
		faq.GET("/:id", h.GetFAQ)
		faq.PUT("/:id", auth, h.UpdateFAQ)
		faq.DELETE("/:id", auth, h.DeleteFAQ)
	}

	return r
}
