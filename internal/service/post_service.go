package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/chirpnet/chirp/internal/db"
	"github.com/chirpnet/chirp/internal/models"
)

// PostView is a post annotated with its derived counts and whether the
// viewing user has liked it. LikedByViewer is false for anonymous viewers.
type PostView struct {
	Post          *models.Post
	LikeCount     int64
	CommentCount  int64
	LikedByViewer bool
}

// PostService handles post creation and feed queries
type PostService struct {
	db       *gorm.DB
	posts    *db.PostRepository
	users    *db.UserRepository
	hashtags *db.HashtagRepository
	likes    *db.LikeRepository
	comments *db.CommentRepository
}

// NewPostService creates a new post service
func NewPostService(database *gorm.DB) *PostService {
	repo := db.NewRepository(database)
	return &PostService{
		db:       database,
		posts:    db.NewPostRepository(repo),
		users:    db.NewUserRepository(repo),
		hashtags: db.NewHashtagRepository(repo),
		likes:    db.NewLikeRepository(repo),
		comments: db.NewCommentRepository(repo),
	}
}

// CreatePost persists a new post for the author, resolving each supplied
// hashtag through NormalizeTag and get-or-create. Tags that normalize to
// the empty string are skipped. Fails with ErrUserNotFound when the
// author username has no matching user.
func (s *PostService) CreatePost(ctx context.Context, content string, hashtagNames []string, authorUsername string) (*models.Post, error) {
	var post *models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		users := db.NewUserRepository(repo)
		hashtags := db.NewHashtagRepository(repo)
		posts := db.NewPostRepository(repo)

		author, err := users.GetByUsername(ctx, authorUsername)
		if err != nil {
			return fmt.Errorf("lookup author: %w", err)
		}
		if author == nil {
			return ErrUserNotFound
		}

		post = &models.Post{
			Content: content,
			UserID:  author.ID,
			User:    author,
		}

		seen := make(map[string]bool)
		for _, name := range hashtagNames {
			tag := NormalizeTag(name)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true

			hashtag, err := hashtags.GetOrCreate(ctx, tag)
			if err != nil {
				return fmt.Errorf("get or create hashtag %q: %w", tag, err)
			}
			post.Hashtags = append(post.Hashtags, *hashtag)
		}

		return posts.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetAllPosts returns every post ordered by creation time descending,
// annotated for the viewer. viewerUsername may be empty for anonymous
// requests.
func (s *PostService) GetAllPosts(ctx context.Context, viewerUsername string) ([]PostView, error) {
	posts, err := s.posts.ListNewest(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.annotate(ctx, posts, viewerUsername)
}

// GetPostsByHashtag returns the posts carrying a tag, newest first,
// annotated for the viewer. The tag text goes through the same
// normalization as the creation path. Fails with ErrHashtagNotFound when
// the normalized tag has no row.
func (s *PostService) GetPostsByHashtag(ctx context.Context, tagText, viewerUsername string) ([]PostView, error) {
	tag := NormalizeTag(tagText)

	hashtag, err := s.hashtags.GetByTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("lookup hashtag: %w", err)
	}
	if hashtag == nil {
		return nil, ErrHashtagNotFound
	}

	posts, err := s.posts.ListByHashtag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("list posts by hashtag: %w", err)
	}
	return s.annotate(ctx, posts, viewerUsername)
}

// TrendingHashtags returns tags ordered by post count descending
func (s *PostService) TrendingHashtags(ctx context.Context, limit int) ([]db.TagCount, error) {
	if limit < 1 {
		limit = 10
	}
	return s.hashtags.ListTrending(ctx, limit)
}

// annotate decorates posts with derived counts and the viewer's like state
func (s *PostService) annotate(ctx context.Context, posts []*models.Post, viewerUsername string) ([]PostView, error) {
	postIDs := make([]int64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	likeCounts, err := s.likes.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	commentCounts, err := s.comments.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	likedByViewer := make(map[int64]bool)
	if viewerUsername != "" {
		viewer, err := s.users.GetByUsername(ctx, viewerUsername)
		if err != nil {
			return nil, fmt.Errorf("lookup viewer: %w", err)
		}
		if viewer != nil {
			likedByViewer, err = s.likes.ListPostIDsLikedBy(ctx, viewer.ID, postIDs)
			if err != nil {
				return nil, fmt.Errorf("lookup viewer likes: %w", err)
			}
		}
	}

	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{
			Post:          p,
			LikeCount:     likeCounts[p.ID],
			CommentCount:  commentCounts[p.ID],
			LikedByViewer: likedByViewer[p.ID],
		}
	}
	return views, nil
}
