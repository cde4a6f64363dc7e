package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/chirpnet/chirp/internal/db"
	"github.com/chirpnet/chirp/internal/models"
)

// LikeService handles the like toggle
type LikeService struct {
	db *gorm.DB
}

// NewLikeService creates a new like service
func NewLikeService(database *gorm.DB) *LikeService {
	return &LikeService{db: database}
}

// ToggleLike flips the like state for the (user, post) pair and reports
// the resulting state: true when the call liked the post, false when it
// unliked it. The existence check is a fast path; the unique index on
// (user_id, post_id) holds the invariant under concurrent toggles. Fails
// with ErrUserNotFound or ErrPostNotFound when either reference is
// missing.
func (s *LikeService) ToggleLike(ctx context.Context, postID int64, username string) (bool, error) {
	var liked bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		users := db.NewUserRepository(repo)
		posts := db.NewPostRepository(repo)
		likes := db.NewLikeRepository(repo)

		user, err := users.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("lookup user: %w", err)
		}
		if user == nil {
			return ErrUserNotFound
		}

		post, err := posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("lookup post: %w", err)
		}
		if post == nil {
			return ErrPostNotFound
		}

		exists, err := likes.Exists(ctx, user.ID, post.ID)
		if err != nil {
			return fmt.Errorf("lookup like: %w", err)
		}

		if exists {
			liked = false
			return likes.Delete(ctx, user.ID, post.ID)
		}

		liked = true
		return likes.Create(ctx, &models.Like{UserID: user.ID, PostID: post.ID})
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}
