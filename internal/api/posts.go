package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirp/internal/service"
	"github.com/chirpnet/chirp/pkg/telemetry"
)

type createPostRequest struct {
	Content  string   `json:"content" binding:"required,max=280"`
	Hashtags []string `json:"hashtags"`
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// createPost handles POST /api/posts
func (r *Router) createPost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.create")
	defer span.End()

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := r.posts.CreatePost(ctx, req.Content, req.Hashtags, currentUsername(c))
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(service.PostView{Post: post}))
}

// listPosts handles GET /api/posts; anonymous viewers see every post with
// likedByCurrentUser false
func (r *Router) listPosts(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.list")
	defer span.End()

	views, err := r.posts.GetAllPosts(ctx, currentUsername(c))
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponses(views))
}

// createComment handles POST /api/posts/:id/comments
func (r *Router) createComment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "comments.create")
	defer span.End()

	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := r.comments.CreateComment(ctx, postID, req.Content, currentUsername(c))
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(comment))
}

// listComments handles GET /api/posts/:id/comments
func (r *Router) listComments(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "comments.list")
	defer span.End()

	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	comments, err := r.comments.ListComments(ctx, postID)
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentResponses(comments))
}

// toggleLike handles POST /api/posts/:id/likes
func (r *Router) toggleLike(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "likes.toggle")
	defer span.End()

	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	liked, err := r.likes.ToggleLike(ctx, postID, currentUsername(c))
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// postIDParam parses the :id path parameter, answering 400 when it is
// not numeric
func postIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return 0, false
	}
	return id, true
}
