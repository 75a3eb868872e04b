package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapi/app/models"
	"blogapi/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Index handles listing all posts, most recent first, each with its
// live comment count
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		log.Printf("failed to fetch posts: %v", err)
		sendError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	summaries := make([]postSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, newPostSummary(post))
	}
	sendJSON(w, http.StatusOK, summaries)
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, err, "post not found", "failed to fetch post")
		return
	}

	sendJSON(w, http.StatusOK, newPostDetail(post))
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := pc.postService.CreatePost(&post); err != nil {
		sendServiceError(w, err, "post not found", "failed to create post")
		return
	}

	sendJSON(w, http.StatusCreated, newPostDetail(&post))
}
