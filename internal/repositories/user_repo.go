package repositories

import (
	"context"
	"database/sql"
	"errors"

	"billingBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (int, error) {
	query := `INSERT INTO users (name, email, password, role, created_at) VALUES (?, ?, ?, ?, NOW())`
	res, err := r.DB.ExecContext(ctx, query, user.Name, user.Email, user.Password, user.Role)
	if err != nil {
		if isDuplicateEntryError(err) {
			return 0, models.ErrDuplicateEmail
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password, role, blocked, created_at FROM users WHERE email = ?`
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Blocked, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

// SetSession stores the refresh session for the user, replacing any
// previous one. One session row per user.
func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, refresh_token, expires_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)`
	_, err := r.DB.ExecContext(ctx, query, userID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
		SELECT sessions.user_id, users.role, sessions.refresh_token, sessions.expires_at
		FROM sessions
		JOIN users ON sessions.user_id = users.id
		WHERE sessions.refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	return session, err
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
