package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chirpnet/chirp/internal/db"
	"github.com/chirpnet/chirp/internal/service"
	"github.com/chirpnet/chirp/internal/session"
	"github.com/chirpnet/chirp/pkg/config"
	"github.com/chirpnet/chirp/pkg/logging"
)

// Router sets up API routes
type Router struct {
	auth       *service.AuthService
	posts      *service.PostService
	comments   *service.CommentService
	likes      *service.LikeService
	sessions   session.Store
	sessionCfg config.SessionConfig
	logger     *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, sessions session.Store, sessionCfg config.SessionConfig) *Router {
	return &Router{
		auth:       service.NewAuthService(database.DB),
		posts:      service.NewPostService(database.DB),
		comments:   service.NewCommentService(database.DB),
		likes:      service.NewLikeService(database.DB),
		sessions:   sessions,
		sessionCfg: sessionCfg,
		logger:     logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)

	api := engine.Group("/api")
	api.Use(r.resolveSession())

	auth := api.Group("/auth")
	auth.POST("/register", r.register)
	auth.POST("/login", r.login)
	auth.POST("/logout", r.logout)
	auth.GET("/current", r.current)

	posts := api.Group("/posts")
	posts.GET("", r.listPosts)
	posts.POST("", requireAuth, r.createPost)
	posts.GET("/:id/comments", r.listComments)
	posts.POST("/:id/comments", requireAuth, r.createComment)
	posts.POST("/:id/likes", requireAuth, r.toggleLike)

	hashtags := api.Group("/hashtags")
	hashtags.GET("/trending", r.listTrendingHashtags)
	hashtags.POST("/suggest", r.suggestHashtags)
	hashtags.GET("/:tag/posts", r.listPostsByHashtag)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "chirp-api",
	})
}

// businessError translates a service failure into a status code and an
// error body. Unknown hashtags answer 404; every other business-rule
// failure answers 400 with its message; anything else is an internal
// error.
func (r *Router) businessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHashtagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		r.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
