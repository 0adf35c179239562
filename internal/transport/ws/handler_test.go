package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/whisprhq/whispr/internal/domain"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) error { return nil }
func (r *stubUserRepo) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	return r.user, nil
}
func (r *stubUserRepo) GetByEmail(context.Context, string) (*domain.User, error) { return nil, nil }
func (r *stubUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Update(context.Context, *domain.User) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestServeWSMissingToken(t *testing.T) {
	handler := ServeWS(NewHub(), testSecret, "http://localhost:5173", &stubUserRepo{})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServeWSGarbageToken(t *testing.T) {
	handler := ServeWS(NewHub(), testSecret, "http://localhost:5173", &stubUserRepo{})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/ws?token=not-a-jwt", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServeWSDeletedAccount(t *testing.T) {
	// The token verifies, but the account behind it is gone: no channel.
	handler := ServeWS(NewHub(), testSecret, "http://localhost:5173", &stubUserRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws?token="+signToken(t, uuid.New()), nil)
	handler(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "user no longer exists")
}

func TestServeWSExistingAccountReachesUpgrade(t *testing.T) {
	userID := uuid.New()
	repo := &stubUserRepo{user: &domain.User{ID: userID, Username: "alice"}}
	handler := ServeWS(NewHub(), testSecret, "http://localhost:5173", repo)

	// A plain GET fails the websocket handshake, but only after the
	// auth checks have passed.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws?token="+signToken(t, userID), nil)
	handler(rec, req)

	require.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
