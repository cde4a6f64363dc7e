package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chirpnet/chirp/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create creates a new post together with its hashtag associations
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	// Associated hashtags already exist; only the join rows are written.
	return r.db.WithContext(ctx).Omit("Hashtags.*").Create(post).Error
}

// ListNewest retrieves all posts ordered by creation time descending
func (r *PostRepository) ListNewest(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Hashtags").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByHashtag retrieves the posts associated with a normalized tag,
// ordered by creation time descending
func (r *PostRepository) ListByHashtag(ctx context.Context, tag string) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Select("posts.*").
		Preload("User").
		Preload("Hashtags").
		Joins("JOIN post_hashtags ph ON ph.post_id = posts.id").
		Joins("JOIN hashtags h ON h.id = ph.hashtag_id").
		Where("h.tag = ?", tag).
		Order("posts.created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// HashtagRepository provides hashtag-related database operations
type HashtagRepository struct {
	*Repository
}

// NewHashtagRepository creates a new hashtag repository
func NewHashtagRepository(repo *Repository) *HashtagRepository {
	return &HashtagRepository{Repository: repo}
}

// GetByTag retrieves a hashtag by its normalized tag text
func (r *HashtagRepository) GetByTag(ctx context.Context, tag string) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	if err := r.db.WithContext(ctx).Where("tag = ?", tag).First(&hashtag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hashtag, nil
}

// GetOrCreate returns the hashtag row for a normalized tag, creating it if
// absent. A concurrent create of the same tag is tolerated: the insert does
// nothing on conflict and the winning row is read back.
func (r *HashtagRepository) GetOrCreate(ctx context.Context, tag string) (*models.Hashtag, error) {
	hashtag := &models.Hashtag{Tag: tag}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(hashtag).Error; err != nil {
		return nil, err
	}
	if hashtag.ID != 0 {
		return hashtag, nil
	}
	return r.GetByTag(ctx, tag)
}

// TagCount pairs a tag with the number of posts using it
type TagCount struct {
	Tag       string `gorm:"column:tag" json:"tag"`
	PostCount int64  `gorm:"column:post_count" json:"postCount"`
}

// ListTrending retrieves tags ordered by associated post count descending
func (r *HashtagRepository) ListTrending(ctx context.Context, limit int) ([]TagCount, error) {
	var results []TagCount
	if err := r.db.WithContext(ctx).
		Table("hashtags").
		Select("hashtags.tag, COUNT(ph.post_id) AS post_count").
		Joins("JOIN post_hashtags ph ON ph.hashtag_id = hashtags.id").
		Group("hashtags.id, hashtags.tag").
		Order("post_count DESC, hashtags.tag ASC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// LikeRepository provides like-related database operations
type LikeRepository struct {
	*Repository
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(repo *Repository) *LikeRepository {
	return &LikeRepository{Repository: repo}
}

// Exists reports whether a like exists for the (user, post) pair
func (r *LikeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a like. A concurrent insert of the same (user, post) pair
// hits the unique index and is treated as already in the desired state.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

// Delete removes the like for the (user, post) pair
func (r *LikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
}

// CountByPostIDs returns the like count per post for the given post IDs
func (r *LikeRepository) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return countByPostIDs(r.db.WithContext(ctx), "likes", postIDs)
}

// ListPostIDsLikedBy returns which of the given posts the user has liked
func (r *LikeRepository) ListPostIDsLikedBy(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if len(postIDs) == 0 {
		return liked, nil
	}
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByPostNewest retrieves the comments for a post ordered by creation
// time descending, with the commenting user preloaded
func (r *CommentRepository) ListByPostNewest(ctx context.Context, postID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPostIDs returns the comment count per post for the given post IDs
func (r *CommentRepository) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return countByPostIDs(r.db.WithContext(ctx), "comments", postIDs)
}

func countByPostIDs(db *gorm.DB, table string, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PostID int64 `gorm:"column:post_id"`
		N      int64 `gorm:"column:n"`
	}
	if err := db.
		Table(table).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}
