package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/app/models"
)

// GormPostRepository implements PostRepository on a relational database
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// withCommentCount annotates a posts query with the live comment count.
// The count is computed by the database in the same round trip as the
// post fetch, never by a per-post query.
func withCommentCount(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Post{}).
		Select("posts.*, COUNT(comments.id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id")
}

// Create inserts a new post. The database assigns the ID and both
// timestamps.
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID, annotated with its comment count
func (r *GormPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := withCommentCount(r.db).
		Where("posts.id = ?", id).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListWithCounts retrieves all posts, newest first, each annotated with
// its comment count in a single aggregating query
func (r *GormPostRepository) ListWithCounts() ([]*models.Post, error) {
	var posts []*models.Post
	err := withCommentCount(r.db).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
