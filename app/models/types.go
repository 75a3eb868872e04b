package models

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Post represents a blog post with comments.
//
// CommentCount is derived from the comments table at read time; it is
// read-only for GORM and excluded from migration so no counter column
// exists to drift out of sync.
type Post struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Content      string     `gorm:"type:text;not null" json:"content" validate:"required"`
	CommentCount int64      `gorm:"->;-:migration" json:"comment_count"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Comments     []*Comment `gorm:"foreignKey:PostID" json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	PostID     int       `gorm:"not null;index:idx_comments_post_created,priority:1" json:"post_id" validate:"required,gt=0"`
	AuthorName string    `gorm:"size:100;not null" json:"author_name" validate:"required,max=100"`
	Content    string    `gorm:"type:text;not null" json:"content" validate:"required"`
	CreatedAt  time.Time `gorm:"index:idx_comments_post_created,priority:2" json:"created_at"`
}

// validate is shared by all model Validate methods. Field names in
// validation errors use the JSON tag so they match the wire contract.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
