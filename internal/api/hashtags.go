package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirp/internal/service"
	"github.com/chirpnet/chirp/pkg/telemetry"
)

type suggestRequest struct {
	Content string `json:"content" binding:"required"`
}

// listPostsByHashtag handles GET /api/hashtags/:tag/posts. Unknown tags
// answer 404; this is the one endpoint where not-found is not folded
// into 400.
func (r *Router) listPostsByHashtag(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "hashtags.posts")
	defer span.End()

	views, err := r.posts.GetPostsByHashtag(ctx, c.Param("tag"), currentUsername(c))
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponses(views))
}

// listTrendingHashtags handles GET /api/hashtags/trending
func (r *Router) listTrendingHashtags(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "hashtags.trending")
	defer span.End()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	tags, err := r.posts.TrendingHashtags(ctx, limit)
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// suggestHashtags handles POST /api/hashtags/suggest
func (r *Router) suggestHashtags(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "hashtags.suggest")
	defer span.End()

	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": service.SuggestHashtags(req.Content)})
}
