package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/whisprhq/whispr/internal/service"
	"github.com/whisprhq/whispr/internal/storage"
	"github.com/whisprhq/whispr/internal/transport/http/middleware"
	"github.com/whisprhq/whispr/pkg/validator"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UserHandler struct {
	userService *service.UserService
	files       *storage.FileStore
}

func NewUserHandler(userService *service.UserService, files *storage.FileStore) *UserHandler {
	return &UserHandler{userService: userService, files: files}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR get profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Verify confirms the presented token still maps to a live account.
// The auth middleware has already done the real work.
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.Me(w, r)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	var input service.UpdateProfileInput
	if v, ok := formValue(r, "username"); ok {
		if errs := validator.ValidateUsername(v); errs.HasErrors() {
			writeValidationErrors(w, errs)
			return
		}
		input.Username = &v
	}
	if v, ok := formValue(r, "firstname"); ok {
		input.Firstname = &v
	}
	if v, ok := formValue(r, "lastname"); ok {
		input.Lastname = &v
	}
	if v, ok := formValue(r, "bio"); ok {
		if errs := validator.ValidateBio(v); errs.HasErrors() {
			writeValidationErrors(w, errs)
			return
		}
		input.Bio = &v
	}

	if file, header, err := r.FormFile("profilePicture"); err == nil {
		defer file.Close()

		path, err := h.files.SaveImage(file, header, "profiles")
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) {
				writeError(w, http.StatusBadRequest, "UNSUPPORTED_TYPE", err.Error())
			} else {
				log.Printf("ERROR save profile picture: %v", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
			}
			return
		}
		input.ProfilePicture = &path
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		} else {
			log.Printf("ERROR update profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePassword(body.NewPassword); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			writeError(w, http.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
		} else {
			log.Printf("ERROR change password: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.userService.DeleteAccount(r.Context(), userID); err != nil {
		log.Printf("ERROR delete account: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// formValue distinguishes an absent multipart field from an empty one.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
