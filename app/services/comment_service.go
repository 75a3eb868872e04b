package services

import (
	"blogapi/app/models"
	"blogapi/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates and inserts a new comment on an existing
// post. The post existence check runs before body validation, so an
// unknown post reports not-found even when the body is also invalid.
// No write occurs on either failure.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return err
	}

	comment.Trim()
	if err := comment.Validate(); err != nil {
		return asValidationError(err)
	}

	return s.commentRepo.Create(comment)
}
