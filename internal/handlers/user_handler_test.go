package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"billingBack/internal/models"
	"billingBack/internal/services"
)

type stubUserStore struct {
	user      models.User
	lookupErr error
	sessions  int
}

func (s *stubUserStore) CreateUser(ctx context.Context, user models.User) (int, error) {
	return 1, nil
}

func (s *stubUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if s.lookupErr != nil {
		return models.User{}, s.lookupErr
	}
	if s.user.Email != email {
		return models.User{}, models.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserStore) SetSession(ctx context.Context, userID int, session models.Session) error {
	s.sessions++
	return nil
}

func (s *stubUserStore) DeleteSession(ctx context.Context, userID int) error {
	return nil
}

func newTestUserHandler(store *stubUserStore) *UserHandler {
	return &UserHandler{Service: &services.UserService{UserRepo: store, SigningKey: "test-signing-key"}}
}

func signInRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/user/sign_in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignInInvalidCredentialsMessage(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	store := &stubUserStore{user: models.User{ID: 1, Email: "ada@example.com", Password: string(hash), Role: "user"}}
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.SignIn(rec, signInRequest(`{"email":"ada@example.com","password":"wrong"}`))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "Invalid credentials." {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestSignInBlockedAccountMessage(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	store := &stubUserStore{user: models.User{ID: 1, Email: "ada@example.com", Password: string(hash), Role: "user", Blocked: true}}
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.SignIn(rec, signInRequest(`{"email":"ada@example.com","password":"secret"}`))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Someting went wrong") {
		t.Errorf("expected fallback auth message, got %q", rec.Body.String())
	}
}

func TestSignInInfrastructureErrorIsGeneric(t *testing.T) {
	store := &stubUserStore{lookupErr: errors.New("connection refused")}
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.SignIn(rec, signInRequest(`{"email":"ada@example.com","password":"secret"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("store detail leaked to the client: %q", rec.Body.String())
	}
}

func TestSignInSuccessReturnsTokens(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	store := &stubUserStore{user: models.User{ID: 1, Email: "ada@example.com", Password: string(hash), Role: "user"}}
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.SignIn(rec, signInRequest(`{"email":"ada@example.com","password":"secret"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var tokens models.Tokens
	if err := json.Unmarshal(rec.Body.Bytes(), &tokens); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Errorf("expected both tokens, got %#v", tokens)
	}
	if store.sessions != 1 {
		t.Errorf("expected one persisted session, got %d", store.sessions)
	}
}
