package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"
)

// timeFormat is the fixed ISO-8601 UTC serialization for every
// timestamp on the wire: second precision, trailing Z.
const timeFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// postSummary is the list-view representation of a post.
type postSummary struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	CommentCount int64  `json:"comment_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// postDetail adds the nested, chronologically ordered comments. The
// comments array is always present, even when empty.
type postDetail struct {
	postSummary
	Comments []commentResponse `json:"comments"`
}

type commentResponse struct {
	ID         int    `json:"id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

func newPostSummary(post *models.Post) postSummary {
	return postSummary{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		CommentCount: post.CommentCount,
		CreatedAt:    formatTime(post.CreatedAt),
		UpdatedAt:    formatTime(post.UpdatedAt),
	}
}

func newPostDetail(post *models.Post) postDetail {
	comments := make([]commentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, newCommentResponse(comment))
	}
	return postDetail{
		postSummary: newPostSummary(post),
		Comments:    comments,
	}
}

func newCommentResponse(comment *models.Comment) commentResponse {
	return commentResponse{
		ID:         comment.ID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  formatTime(comment.CreatedAt),
	}
}

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps the error taxonomy onto response codes:
// validation failures to 400 with per-field reasons, unknown records to
// 404, anything else to a logged 500.
func sendServiceError(w http.ResponseWriter, err error, notFoundMsg, serverMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verr.Fields})
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("%s: %v", serverMsg, err)
		sendError(w, http.StatusInternalServerError, serverMsg)
	}
}
