package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/chirpnet/chirp/internal/db"
	"github.com/chirpnet/chirp/internal/models"
)

// CommentService handles comment creation and listing
type CommentService struct {
	db       *gorm.DB
	comments *db.CommentRepository
	posts    *db.PostRepository
	users    *db.UserRepository
}

// NewCommentService creates a new comment service
func NewCommentService(database *gorm.DB) *CommentService {
	repo := db.NewRepository(database)
	return &CommentService{
		db:       database,
		comments: db.NewCommentRepository(repo),
		posts:    db.NewPostRepository(repo),
		users:    db.NewUserRepository(repo),
	}
}

// CreateComment persists a new comment linked to the post and author.
// Fails with ErrUserNotFound or ErrPostNotFound when either reference is
// missing.
func (s *CommentService) CreateComment(ctx context.Context, postID int64, content, authorUsername string) (*models.Comment, error) {
	var comment *models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		users := db.NewUserRepository(repo)
		posts := db.NewPostRepository(repo)
		comments := db.NewCommentRepository(repo)

		author, err := users.GetByUsername(ctx, authorUsername)
		if err != nil {
			return fmt.Errorf("lookup author: %w", err)
		}
		if author == nil {
			return ErrUserNotFound
		}

		post, err := posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("lookup post: %w", err)
		}
		if post == nil {
			return ErrPostNotFound
		}

		comment = &models.Comment{
			Content: content,
			UserID:  author.ID,
			PostID:  post.ID,
			User:    author,
		}
		return comments.Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments for a post ordered by creation time
// descending, with the commenting user loaded. Fails with ErrPostNotFound
// when the post does not exist.
func (s *CommentService) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("lookup post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return s.comments.ListByPostNewest(ctx, postID)
}
