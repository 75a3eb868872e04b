package mock

import (
	"sort"
	"sync"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// Store is an in-memory stand-in for the relational database, shared by
// a PostRepository and a CommentRepository so derived comment counts see
// both tables. Setting Err makes every operation fail with it, which is
// how tests exercise the store-error path.
type Store struct {
	mu            sync.RWMutex
	posts         map[int]*models.Post
	comments      map[int]*models.Comment
	nextPostID    int
	nextCommentID int

	Err error
}

func NewStore() *Store {
	return &Store{
		posts:         make(map[int]*models.Post),
		comments:      make(map[int]*models.Comment),
		nextPostID:    1,
		nextCommentID: 1,
	}
}

func (s *Store) Posts() *PostRepository       { return &PostRepository{s: s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

func (s *Store) countComments(postID int) int64 {
	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

type PostRepository struct {
	s *Store
}

type CommentRepository struct {
	s *Store
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if m.s.Err != nil {
		return m.s.Err
	}
	post.ID = m.s.nextPostID
	m.s.nextPostID++
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = now
	}
	stored := *post
	m.s.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	if m.s.Err != nil {
		return nil, m.s.Err
	}
	post, exists := m.s.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *post
	found.CommentCount = m.s.countComments(id)
	return &found, nil
}

func (m *PostRepository) ListWithCounts() ([]*models.Post, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	if m.s.Err != nil {
		return nil, m.s.Err
	}
	posts := make([]*models.Post, 0, len(m.s.posts))
	for _, post := range m.s.posts {
		found := *post
		found.CommentCount = m.s.countComments(post.ID)
		posts = append(posts, &found)
	}
	// Newest first, matching the relational repository's ordering.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if m.s.Err != nil {
		return m.s.Err
	}
	if _, exists := m.s.posts[comment.PostID]; !exists {
		return repositories.ErrNotFound
	}
	comment.ID = m.s.nextCommentID
	m.s.nextCommentID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	stored := *comment
	m.s.comments[comment.ID] = &stored
	return nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	if m.s.Err != nil {
		return nil, m.s.Err
	}
	var comments []*models.Comment
	for _, comment := range m.s.comments {
		if comment.PostID == postID {
			found := *comment
			comments = append(comments, &found)
		}
	}
	// Oldest first, matching the relational repository's ordering.
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
