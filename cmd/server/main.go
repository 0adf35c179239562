package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/whisprhq/whispr/internal/config"
	"github.com/whisprhq/whispr/internal/database"
	postgresrepo "github.com/whisprhq/whispr/internal/repository/postgres"
	"github.com/whisprhq/whispr/internal/service"
	"github.com/whisprhq/whispr/internal/storage"
	"github.com/whisprhq/whispr/internal/transport/http/handlers"
	"github.com/whisprhq/whispr/internal/transport/http/middleware"
	"github.com/whisprhq/whispr/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	commentRepo := postgresrepo.NewCommentRepo(pool)
	likeRepo := postgresrepo.NewLikeRepo(pool)
	bookmarkRepo := postgresrepo.NewBookmarkRepo(pool)
	repostRepo := postgresrepo.NewRepostRepo(pool)

	// File storage for uploaded images
	files := storage.NewFileStore(cfg.UploadDir)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, postRepo, userRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, postRepo, userRepo)
	repostService := service.NewRepostService(repostRepo, postRepo, userRepo)

	// Real-time fan-out
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)
	commentService.SetNotifier(notifier)
	likeService.SetNotifier(notifier)
	bookmarkService.SetNotifier(notifier)
	repostService.SetNotifier(notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, files)
	postHandler := handlers.NewPostHandler(postService, files)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	repostHandler := handlers.NewRepostHandler(repostService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret, userRepo)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /user/register", authHandler.Register)
	mux.HandleFunc("POST /user/login", authHandler.Login)

	// Static uploads
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir+"/uploads"))))

	// Protected - User
	mux.Handle("GET /user/me", auth(http.HandlerFunc(userHandler.Me)))
	mux.Handle("PUT /user/me", auth(http.HandlerFunc(userHandler.UpdateMe)))
	mux.Handle("PUT /user/me/password", auth(http.HandlerFunc(userHandler.ChangePassword)))
	mux.Handle("DELETE /user/me", auth(http.HandlerFunc(userHandler.DeleteMe)))
	mux.Handle("GET /user/verify", auth(http.HandlerFunc(userHandler.Verify)))

	// Protected - Posts
	mux.Handle("POST /posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /posts", auth(http.HandlerFunc(postHandler.List)))
	mux.Handle("GET /posts/{id}", auth(http.HandlerFunc(postHandler.Get)))
	mux.Handle("PUT /posts/{id}", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("GET /posts/user/{userId}", auth(http.HandlerFunc(postHandler.ListByUser)))
	mux.Handle("GET /posts/count/{userId}", auth(http.HandlerFunc(postHandler.CountByUser)))
	mux.Handle("GET /posts/hashtags/{postId}", auth(http.HandlerFunc(postHandler.Hashtags)))

	// Protected - Likes
	mux.Handle("POST /likes", auth(http.HandlerFunc(likeHandler.Create)))
	mux.Handle("DELETE /likes", auth(http.HandlerFunc(likeHandler.Delete)))
	mux.Handle("GET /likes", auth(http.HandlerFunc(likeHandler.List)))
	mux.Handle("GET /likes/status/{postId}", auth(http.HandlerFunc(likeHandler.Status)))
	mux.Handle("GET /likes/count/{postId}", auth(http.HandlerFunc(likeHandler.Count)))

	// Protected - Bookmarks
	mux.Handle("POST /bookmarks/{postId}", auth(http.HandlerFunc(bookmarkHandler.Add)))
	mux.Handle("DELETE /bookmarks/{postId}", auth(http.HandlerFunc(bookmarkHandler.Remove)))
	mux.Handle("GET /bookmarks", auth(http.HandlerFunc(bookmarkHandler.List)))
	mux.Handle("GET /bookmarks/{userId}", auth(http.HandlerFunc(bookmarkHandler.ListByUser)))
	mux.Handle("GET /bookmarks/{postId}/status", auth(http.HandlerFunc(bookmarkHandler.Status)))
	mux.Handle("GET /bookmarks/{postId}/count", auth(http.HandlerFunc(bookmarkHandler.Count)))

	// Protected - Comments
	mux.Handle("POST /comments", auth(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("GET /comments", auth(http.HandlerFunc(commentHandler.List)))
	mux.Handle("GET /comments/{id}", auth(http.HandlerFunc(commentHandler.Get)))
	mux.Handle("PUT /comments/{id}", auth(http.HandlerFunc(commentHandler.Update)))
	mux.Handle("DELETE /comments/{id}", auth(http.HandlerFunc(commentHandler.Delete)))
	mux.Handle("GET /comments/post/{postId}", auth(http.HandlerFunc(commentHandler.ListByPost)))
	mux.Handle("GET /comments/user/{userId}", auth(http.HandlerFunc(commentHandler.ListByUser)))
	mux.Handle("GET /comments/count/{postId}", auth(http.HandlerFunc(commentHandler.Count)))

	// Protected - Reposts
	mux.Handle("POST /reposts", auth(http.HandlerFunc(repostHandler.Create)))
	mux.Handle("GET /reposts", auth(http.HandlerFunc(repostHandler.List)))
	mux.Handle("GET /reposts/{id}", auth(http.HandlerFunc(repostHandler.Get)))
	mux.Handle("PUT /reposts/{id}", auth(http.HandlerFunc(repostHandler.Update)))
	mux.Handle("DELETE /reposts/{id}", auth(http.HandlerFunc(repostHandler.Delete)))

	// Real-time notifications
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, cfg.ClientOrigin, userRepo))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(cfg.ClientOrigin)(mux)))
}
