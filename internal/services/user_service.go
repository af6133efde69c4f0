package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"billingBack/internal/models"
	"billingBack/utils"
)

// UserStore is the slice of the user repository the auth flow needs.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (int, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	SetSession(ctx context.Context, userID int, session models.Session) error
	DeleteSession(ctx context.Context, userID int) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	SigningKey   string
	AccessTTL    time.Duration
}

const (
	msgInvalidCredentials = "Invalid credentials."
	msgAuthFallback       = "Someting went wrong"
)

const sessionTTL = 24 * 30 * 2 * time.Hour

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	_, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return models.User{}, models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}

	userID, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID = userID
	user.Password = ""
	return user, nil
}

// SignIn verifies the credentials, issues an access token and persists a
// refresh session. Authentication failures come back as *models.AuthError;
// anything else is an infrastructure error.
func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.Tokens{}, &models.AuthError{Category: models.AuthCategoryCredentials, Err: err}
	}
	if err != nil {
		return models.Tokens{}, err
	}

	if user.Blocked {
		return models.Tokens{}, &models.AuthError{Category: models.AuthCategoryDisabled}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, &models.AuthError{Category: models.AuthCategoryCredentials, Err: err}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.accessTTL()).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		log.Printf("sign token: %v", err)
		return models.Tokens{}, err
	}

	return s.createSession(ctx, user, accessToken)
}

// Authenticate runs SignIn and maps categorized authentication failures to
// the fixed user-facing messages. The returned message is empty on success;
// non-auth errors propagate unchanged for generic handling upstream.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.Tokens, string, error) {
	tokens, err := s.SignIn(ctx, email, password)
	if err != nil {
		var authErr *models.AuthError
		if errors.As(err, &authErr) {
			if authErr.Category == models.AuthCategoryCredentials {
				return models.Tokens{}, msgInvalidCredentials, nil
			}
			return models.Tokens{}, msgAuthFallback, nil
		}
		return models.Tokens{}, "", err
	}
	return tokens, "", nil
}

func (s *UserService) UserLogOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) createSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	res := models.Tokens{AccessToken: accessToken}

	// UUID fallback when no token manager is wired.
	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		var err error
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.Tokens{}, err
		}
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}

	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return models.Tokens{}, &models.AuthError{Category: models.AuthCategorySession, Err: err}
	}
	return res, nil
}

func (s *UserService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return 120 * time.Minute
}
