package repositories

import (
	"gorm.io/gorm"

	"blogapi/app/models"
)

// GormCommentRepository implements CommentRepository on a relational database
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create inserts a new comment. The parent post is re-verified inside
// the same transaction as the insert, so a comment can never be written
// against a post the store does not hold.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return tx.Create(comment).Error
	})
}

// ListByPost retrieves all comments for a post in chronological order,
// oldest first
func (r *GormCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
