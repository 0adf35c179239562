package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/service"
	"github.com/whisprhq/whispr/internal/transport/http/middleware"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("postId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.bookmarkService.Add(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrAlreadyBookmarked):
			writeError(w, http.StatusConflict, "ALREADY_BOOKMARKED", "Post already bookmarked")
		default:
			log.Printf("ERROR add bookmark: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Post bookmarked"})
}

func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("postId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.bookmarkService.Remove(r.Context(), userID, postID); err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Bookmark not found")
		} else {
			log.Printf("ERROR remove bookmark: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	posts, err := h.bookmarkService.ListPosts(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list bookmarks: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// ListByUser serves another user's bookmarked posts; bookmark lists
// are not private.
func (h *BookmarkHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	posts, err := h.bookmarkService.ListPosts(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list bookmarks by user: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *BookmarkHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("postId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	isBookmarked, err := h.bookmarkService.Status(r.Context(), userID, postID)
	if err != nil {
		log.Printf("ERROR bookmark status: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isBookmarked": isBookmarked})
}

func (h *BookmarkHandler) Count(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("postId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	count, err := h.bookmarkService.Count(r.Context(), postID)
	if err != nil {
		log.Printf("ERROR bookmark count: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}
