package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/service"
	"github.com/whisprhq/whispr/internal/transport/http/middleware"
	"github.com/whisprhq/whispr/pkg/validator"
)

type RepostHandler struct {
	repostService *service.RepostService
}

func NewRepostHandler(repostService *service.RepostService) *RepostHandler {
	return &RepostHandler{repostService: repostService}
}

func (h *RepostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var body struct {
		Content        string `json:"content"`
		OriginalPostID string `json:"originalPostId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateRepost(body.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	originalPostID, err := uuid.Parse(body.OriginalPostID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	repost, err := h.repostService.Create(r.Context(), userID, service.CreateRepostInput{
		Content:        body.Content,
		OriginalPostID: originalPostID,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Original post not found")
		} else {
			log.Printf("ERROR create repost: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, repost)
}

func (h *RepostHandler) List(w http.ResponseWriter, r *http.Request) {
	reposts, err := h.repostService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list reposts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, reposts)
}

func (h *RepostHandler) Get(w http.ResponseWriter, r *http.Request) {
	repostID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid repost ID")
		return
	}

	repost, err := h.repostService.GetByID(r.Context(), repostID)
	if err != nil {
		if errors.Is(err, service.ErrRepostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Repost not found")
		} else {
			log.Printf("ERROR get repost: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, repost)
}

func (h *RepostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	repostID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid repost ID")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateRepost(body.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	repost, err := h.repostService.Update(r.Context(), userID, repostID, body.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRepostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Repost not found")
		case errors.Is(err, service.ErrNotRepostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can update this repost")
		default:
			log.Printf("ERROR update repost: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, repost)
}

func (h *RepostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	repostID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid repost ID")
		return
	}

	if err := h.repostService.Delete(r.Context(), userID, repostID); err != nil {
		switch {
		case errors.Is(err, service.ErrRepostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Repost not found")
		case errors.Is(err, service.ErrNotRepostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can delete this repost")
		default:
			log.Printf("ERROR delete repost: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
