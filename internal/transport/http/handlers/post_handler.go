package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/service"
	"github.com/whisprhq/whispr/internal/storage"
	"github.com/whisprhq/whispr/internal/transport/http/middleware"
	"github.com/whisprhq/whispr/pkg/validator"
)

type PostHandler struct {
	postService *service.PostService
	files       *storage.FileStore
}

func NewPostHandler(postService *service.PostService, files *storage.FileStore) *PostHandler {
	return &PostHandler{postService: postService, files: files}
}

// Create accepts a multipart form: content, a JSON-encoded hashtags
// array and an optional image.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	content := r.FormValue("content")
	if errs := validator.ValidatePost(content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	var hashtags []string
	if raw := r.FormValue("hashtags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &hashtags); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_HASHTAGS", "Hashtags must be a JSON array of strings")
			return
		}
	}

	input := service.CreatePostInput{Content: content, Hashtags: hashtags}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		path, err := h.files.SaveImage(file, header, "posts")
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) {
				writeError(w, http.StatusBadRequest, "UNSUPPORTED_TYPE", err.Error())
			} else {
				log.Printf("ERROR save post image: %v", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
			}
			return
		}
		input.Image = &path
	}

	post, err := h.postService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR create post: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list posts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		} else {
			log.Printf("ERROR get post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	posts, err := h.postService.ListByAuthor(r.Context(), authorID)
	if err != nil {
		log.Printf("ERROR list posts by user: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) CountByUser(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	count, err := h.postService.CountByAuthor(r.Context(), authorID)
	if err != nil {
		log.Printf("ERROR count posts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *PostHandler) Hashtags(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("postId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	hashtags, err := h.postService.Hashtags(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		} else {
			log.Printf("ERROR get hashtags: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"hashtags": hashtags})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var body struct {
		Content  *string  `json:"content"`
		Hashtags []string `json:"hashtags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if body.Content != nil {
		if errs := validator.ValidatePost(*body.Content); errs.HasErrors() {
			writeValidationErrors(w, errs)
			return
		}
	}

	post, err := h.postService.Update(r.Context(), userID, postID, service.UpdatePostInput{
		Content:  body.Content,
		Hashtags: body.Hashtags,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can update this post")
		default:
			log.Printf("ERROR update post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can delete this post")
		default:
			log.Printf("ERROR delete post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
