package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapi/app/models"
	"blogapi/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type createCommentRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// Create handles adding a comment to an existing post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	comment := models.Comment{
		PostID:     postID,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	}
	if err := cc.commentService.CreateComment(&comment); err != nil {
		sendServiceError(w, err, "post not found", "failed to create comment")
		return
	}

	sendJSON(w, http.StatusCreated, newCommentResponse(&comment))
}
