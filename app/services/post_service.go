package services

import (
	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates and inserts a new post. Fields are trimmed
// before validation and persisted trimmed. On validation failure
// nothing is written and the error names the offending fields.
func (s *PostService) CreatePost(post *models.Post) error {
	post.Trim()
	if err := post.Validate(); err != nil {
		return asValidationError(err)
	}
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID together with its comments in
// chronological order, oldest first. The comments load in one query,
// not one per comment.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves all posts, most recent first, each annotated with
// its live comment count
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.ListWithCounts()
}
