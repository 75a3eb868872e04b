package routes

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/services"
)

// SetupRoutes wires repositories, services and controllers onto a
// router. The database handle is injected rather than opened here so
// tests can substitute their own store.
func SetupRoutes(db *gorm.DB) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/posts/", postController.Index).Methods("GET")
	api.HandleFunc("/posts/", postController.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/", postController.Show).Methods("GET")
	api.HandleFunc("/posts/{postId:[0-9]+}/comments/", commentController.Create).Methods("POST")

	return router
}
