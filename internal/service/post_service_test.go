package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chirpnet/chirp/internal/models"
)

func registerUser(t *testing.T, auth *AuthService, username string) *models.User {
	t.Helper()
	user, err := auth.Register(context.Background(), username, username+"@x.com", "pw", "User "+username)
	if err != nil {
		t.Fatalf("Register(%q) error: %v", username, err)
	}
	return user
}

func TestCreatePostNormalizesHashtags(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)
	posts := NewPostService(gdb)

	registerUser(t, auth, "alice")

	post, err := posts.CreatePost(ctx, "hello", []string{"#Hello-World!", "hello world", "HELLOWORLD", "#!?"}, "alice")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	// The three equivalent spellings collapse to one tag; the
	// punctuation-only tag is skipped.
	if len(post.Hashtags) != 1 {
		t.Fatalf("Expected 1 hashtag on post, got %d", len(post.Hashtags))
	}
	if post.Hashtags[0].Tag != "helloworld" {
		t.Errorf("Hashtag = %q, want %q", post.Hashtags[0].Tag, "helloworld")
	}

	// A second post with an equivalent spelling reuses the same row
	if _, err := posts.CreatePost(ctx, "again", []string{"hello_world"}, "alice"); err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	var tagCount int64
	gdb.Model(&models.Hashtag{}).Count(&tagCount)
	if tagCount != 1 {
		t.Errorf("Expected exactly 1 hashtag row, got %d", tagCount)
	}

	views, err := posts.GetPostsByHashtag(ctx, "#Hello-World!", "")
	if err != nil {
		t.Fatalf("GetPostsByHashtag() error: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("Expected both posts under the shared tag, got %d", len(views))
	}
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	posts := NewPostService(gdb)

	if _, err := posts.CreatePost(ctx, "hello", nil, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("CreatePost() for unknown author = %v, want ErrUserNotFound", err)
	}

	var count int64
	gdb.Model(&models.Post{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no post rows, got %d", count)
	}
}

func TestGetAllPostsOrdering(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)
	posts := NewPostService(gdb)

	registerUser(t, auth, "alice")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		post, err := posts.CreatePost(ctx, content, nil, "alice")
		if err != nil {
			t.Fatalf("CreatePost(%q) error: %v", content, err)
		}
		// Pin distinct creation times for a deterministic order
		if err := gdb.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error; err != nil {
			t.Fatalf("pin created_at: %v", err)
		}
	}

	views, err := posts.GetAllPosts(ctx, "")
	if err != nil {
		t.Fatalf("GetAllPosts() error: %v", err)
	}

	want := []string{"third", "second", "first"}
	if len(views) != len(want) {
		t.Fatalf("Expected %d posts, got %d", len(want), len(views))
	}
	for i, w := range want {
		if views[i].Post.Content != w {
			t.Errorf("views[%d].Content = %q, want %q", i, views[i].Post.Content, w)
		}
	}
}

func TestGetAllPostsViewerAnnotation(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)
	posts := NewPostService(gdb)
	likes := NewLikeService(gdb)
	comments := NewCommentService(gdb)

	registerUser(t, auth, "alice")
	registerUser(t, auth, "bob")

	post, err := posts.CreatePost(ctx, "hello", nil, "alice")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}
	if _, err := likes.ToggleLike(ctx, post.ID, "bob"); err != nil {
		t.Fatalf("ToggleLike() error: %v", err)
	}
	if _, err := comments.CreateComment(ctx, post.ID, "nice", "bob"); err != nil {
		t.Fatalf("CreateComment() error: %v", err)
	}

	tests := []struct {
		name   string
		viewer string
		liked  bool
	}{
		{name: "liking viewer", viewer: "bob", liked: true},
		{name: "non-liking viewer", viewer: "alice", liked: false},
		{name: "anonymous viewer", viewer: "", liked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := posts.GetAllPosts(ctx, tt.viewer)
			if err != nil {
				t.Fatalf("GetAllPosts() error: %v", err)
			}
			if len(views) != 1 {
				t.Fatalf("Expected 1 post, got %d", len(views))
			}
			v := views[0]
			if v.LikedByViewer != tt.liked {
				t.Errorf("LikedByViewer = %v, want %v", v.LikedByViewer, tt.liked)
			}
			if v.LikeCount != 1 {
				t.Errorf("LikeCount = %d, want 1", v.LikeCount)
			}
			if v.CommentCount != 1 {
				t.Errorf("CommentCount = %d, want 1", v.CommentCount)
			}
		})
	}
}

func TestGetPostsByHashtagUnknownTag(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	posts := NewPostService(gdb)

	if _, err := posts.GetPostsByHashtag(ctx, "nosuchtag", ""); !errors.Is(err, ErrHashtagNotFound) {
		t.Errorf("GetPostsByHashtag() = %v, want ErrHashtagNotFound", err)
	}
}

func TestTrendingHashtags(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)
	posts := NewPostService(gdb)

	registerUser(t, auth, "alice")

	for _, tags := range [][]string{
		{"golang", "testing"},
		{"golang"},
		{"golang", "web"},
	} {
		if _, err := posts.CreatePost(ctx, "post", tags, "alice"); err != nil {
			t.Fatalf("CreatePost() error: %v", err)
		}
	}

	trending, err := posts.TrendingHashtags(ctx, 2)
	if err != nil {
		t.Fatalf("TrendingHashtags() error: %v", err)
	}
	if len(trending) != 2 {
		t.Fatalf("Expected 2 trending tags, got %d", len(trending))
	}
	if trending[0].Tag != "golang" || trending[0].PostCount != 3 {
		t.Errorf("Top tag = %q (%d posts), want golang (3)", trending[0].Tag, trending[0].PostCount)
	}
}
