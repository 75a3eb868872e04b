package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/repositories/mock"
)

func newCommentService(t *testing.T) (*CommentService, *models.Post, *mock.Store) {
	t.Helper()
	store := mock.NewStore()
	postService := NewPostService(store.Posts(), store.Comments())
	post := &models.Post{Title: "Parent", Content: "content"}
	require.NoError(t, postService.CreatePost(post))
	return NewCommentService(store.Comments(), store.Posts()), post, store
}

func TestCommentServiceCreate(t *testing.T) {
	service, post, _ := newCommentService(t)

	comment := &models.Comment{
		PostID:     post.ID,
		AuthorName: " Ann ",
		Content:    " Nice! ",
	}
	require.NoError(t, service.CreateComment(comment))

	assert.NotZero(t, comment.ID)
	assert.Equal(t, "Ann", comment.AuthorName)
	assert.Equal(t, "Nice!", comment.Content)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentServiceCreateUnknownPost(t *testing.T) {
	service, _, store := newCommentService(t)

	err := service.CreateComment(&models.Comment{
		PostID:     99,
		AuthorName: "Ann",
		Content:    "Nice!",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	comments, listErr := store.Comments().ListByPost(99)
	require.NoError(t, listErr)
	assert.Empty(t, comments)
}

func TestCommentServiceNotFoundBeforeValidation(t *testing.T) {
	service, _, _ := newCommentService(t)

	// Both failures apply; the unknown post wins.
	err := service.CreateComment(&models.Comment{PostID: 99})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCommentServiceCreateInvalidFields(t *testing.T) {
	service, post, store := newCommentService(t)

	err := service.CreateComment(&models.Comment{
		PostID:     post.ID,
		AuthorName: "  ",
		Content:    "",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "author_name")
	assert.Contains(t, verr.Fields, "content")

	comments, listErr := store.Comments().ListByPost(post.ID)
	require.NoError(t, listErr)
	assert.Empty(t, comments)
}
