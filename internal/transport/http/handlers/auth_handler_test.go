package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/service"
)

type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(newMemUserRepo(), "test-secret", time.Hour)
	return NewAuthHandler(svc)
}

func post(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterThenLoginFlow(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(t, h.Register, "/user/register",
		`{"username":"alice","email":"Alice@Example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"token"`)
	require.Contains(t, rec.Body.String(), `"alice"`)
	// The password hash never leaves the server.
	require.NotContains(t, rec.Body.String(), "passwordHash")
	require.NotContains(t, rec.Body.String(), "secret-pass")

	// Login matches the stored lowercased email.
	rec = post(t, h.Login, "/user/login",
		`{"email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"token"`)
}

func TestRegisterValidation(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(t, h.Register, "/user/register",
		`{"username":"al","email":"bad","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(t, h.Register, "/user/register",
		`{"username":"alice","email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, h.Register, "/user/register",
		`{"username":"alice2","email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(t, h.Register, "/user/register",
		`{"username":"alice","email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, h.Login, "/user/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginMalformedBody(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(t, h.Login, "/user/login", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_JSON")
}
