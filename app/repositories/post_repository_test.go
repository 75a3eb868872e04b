package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/app/models"
)

func TestPostRepositoryCreate(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormPostRepository(db)

	post := &models.Post{
		Title:   "First Post",
		Content: "Hello from the repository test",
	}
	require.NoError(t, repo.Create(post))

	assert.NotZero(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())

	found, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Post", found.Title)
	assert.Equal(t, "Hello from the repository test", found.Content)
	assert.Equal(t, int64(0), found.CommentCount)
}

func TestPostRepositoryGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormPostRepository(db)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepositoryListWithCounts(t *testing.T) {
	db := openTestDB(t)
	postRepo := NewGormPostRepository(db)
	commentRepo := NewGormCommentRepository(db)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := &models.Post{Title: "Oldest", Content: "a", CreatedAt: base}
	middle := &models.Post{Title: "Middle", Content: "b", CreatedAt: base.Add(time.Hour)}
	newest := &models.Post{Title: "Newest", Content: "c", CreatedAt: base.Add(2 * time.Hour)}
	for _, p := range []*models.Post{oldest, middle, newest} {
		require.NoError(t, postRepo.Create(p))
	}

	for i := 0; i < 2; i++ {
		require.NoError(t, commentRepo.Create(&models.Comment{
			PostID:     middle.ID,
			AuthorName: "Ann",
			Content:    "comment",
		}))
	}
	require.NoError(t, commentRepo.Create(&models.Comment{
		PostID:     oldest.ID,
		AuthorName: "Bob",
		Content:    "comment",
	}))

	posts, err := postRepo.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Most recent first.
	assert.Equal(t, "Newest", posts[0].Title)
	assert.Equal(t, "Middle", posts[1].Title)
	assert.Equal(t, "Oldest", posts[2].Title)

	assert.Equal(t, int64(0), posts[0].CommentCount)
	assert.Equal(t, int64(2), posts[1].CommentCount)
	assert.Equal(t, int64(1), posts[2].CommentCount)
}

func TestPostRepositoryGetByIDCountsComments(t *testing.T) {
	db := openTestDB(t)
	postRepo := NewGormPostRepository(db)
	commentRepo := NewGormCommentRepository(db)

	post := &models.Post{Title: "Counted", Content: "content"}
	require.NoError(t, postRepo.Create(post))
	require.NoError(t, commentRepo.Create(&models.Comment{
		PostID:     post.ID,
		AuthorName: "Ann",
		Content:    "Nice!",
	}))

	found, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.CommentCount)
}

func TestPostRepositoryListEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormPostRepository(db)

	posts, err := repo.ListWithCounts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}
