package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reelmark/reelmark-go/internal/crypto"
	"github.com/reelmark/reelmark-go/internal/middleware"
	"github.com/reelmark/reelmark-go/internal/model"
	"github.com/reelmark/reelmark-go/internal/repository"
	"github.com/reelmark/reelmark-go/internal/service"
)

const testSecret = "test-secret"

// newTestRouter wires the full route table over nil database handles. Only
// requests that never reach the store may be exercised.
func newTestRouter() http.Handler {
	userRepo := repository.NewUserRepository(nil)
	movieRepo := repository.NewMovieRepository(nil)

	auth := NewAuthHandler(service.NewAuthService(userRepo, testSecret, time.Hour))
	movie := NewMovieHandler(service.NewMovieService(movieRepo))
	bookmark := NewBookmarkHandler(service.NewBookmarkService(movieRepo))

	return NewRouter(auth, movie, bookmark, testSecret)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body["message"]
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}

	msg := decodeMessage(t, rec)
	if msg != "Method GET not allowed on /api/auth/register" {
		t.Errorf("message = %q", msg)
	}
}

func TestMethodNotAllowedOnBookmarkRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/movie/series", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/bookmark/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if msg := decodeMessage(t, rec); msg != "Unauthorized" {
		t.Errorf("message = %q, want %q", msg, "Unauthorized")
	}
}

func TestProtectedRouteWrongScheme(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r := newTestRouter()

	body := `{"email":"a@b.com","password":"secret1","repeatPassword":"secret2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid input data" {
		t.Errorf("message = %q, want %q", msg, "Invalid input data")
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	r := newTestRouter()

	body := `{"email":"not-an-email","password":"secret1","repeatPassword":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := decodeMessage(t, rec); msg != "Please Provide a valid email" {
		t.Errorf("message = %q, want %q", msg, "Please Provide a valid email")
	}
}

func TestRegisterMalformedBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid input data" {
		t.Errorf("message = %q, want %q", msg, "Invalid input data")
	}
}

func TestUserReflectsTokenSubject(t *testing.T) {
	r := newTestRouter()

	userID := int64(42)
	token, err := crypto.GenerateToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if resp.ID != userID {
		t.Errorf("id = %d, want %d", resp.ID, userID)
	}
}

func TestBookmarkAddNonNumericID(t *testing.T) {
	r := newTestRouter()

	token, err := crypto.GenerateToken(7, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookmark/add/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := decodeMessage(t, rec); msg != "No Movie with ID:abc" {
		t.Errorf("message = %q, want %q", msg, "No Movie with ID:abc")
	}
}

func TestHandleUserWithoutIdentity(t *testing.T) {
	auth := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(nil), testSecret, time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	auth.HandleUser(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleUserWithIdentityContext(t *testing.T) {
	auth := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(nil), testSecret, time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/user", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	auth.HandleUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if resp.ID != 7 {
		t.Errorf("id = %d, want 7", resp.ID)
	}
}
