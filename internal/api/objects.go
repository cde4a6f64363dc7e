package api

import (
	"time"

	"github.com/chirpnet/chirp/internal/models"
	"github.com/chirpnet/chirp/internal/service"
)

// PostResponse is the wire shape for a post in feeds and hashtag lookups
type PostResponse struct {
	ID                 int64     `json:"id"`
	Content            string    `json:"content"`
	Username           string    `json:"username"`
	FullName           string    `json:"fullName"`
	CreatedAt          time.Time `json:"createdAt"`
	LikeCount          int64     `json:"likeCount"`
	CommentCount       int64     `json:"commentCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	Hashtags           []string  `json:"hashtags"`
}

// CommentResponse is the wire shape for a comment
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// newPostResponse projects an annotated post onto the wire shape
func newPostResponse(view service.PostView) PostResponse {
	post := view.Post

	tags := make([]string, len(post.Hashtags))
	for i, h := range post.Hashtags {
		tags[i] = h.Tag
	}

	resp := PostResponse{
		ID:                 post.ID,
		Content:            post.Content,
		CreatedAt:          post.CreatedAt,
		LikeCount:          view.LikeCount,
		CommentCount:       view.CommentCount,
		LikedByCurrentUser: view.LikedByViewer,
		Hashtags:           tags,
	}
	if post.User != nil {
		resp.Username = post.User.Username
		resp.FullName = post.User.FullName
	}
	return resp
}

func newPostResponses(views []service.PostView) []PostResponse {
	responses := make([]PostResponse, len(views))
	for i, v := range views {
		responses[i] = newPostResponse(v)
	}
	return responses
}

// newCommentResponse projects a comment onto the wire shape
func newCommentResponse(comment *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		resp.Username = comment.User.Username
		resp.FullName = comment.User.FullName
	}
	return resp
}

func newCommentResponses(comments []*models.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = newCommentResponse(c)
	}
	return responses
}
