package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopluxe/backend/internal/model"
)

// UserRepo encapsulates all database queries on the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,email,password_hash,ip_address,device_fingerprint,email_verified,verification_code,session_token,session_expires,created_at"

// Create inserts a freshly registered, unverified user. The caller is
// expected to have hashed the password and generated the verification
// code. Duplicate emails surface as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, ip_address, device_fingerprint, email_verified, verification_code, created_at) VALUES (?,?,?,?,?,?,?,?)",
		u.ID, u.Email, u.PasswordHash, u.IPAddress, u.DeviceFingerprint, u.EmailVerified, u.VerificationCode, u.CreatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by normalized email. ErrUserNotFound is
// returned when no row matches.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
}

// GetBySessionToken fetches the user owning the given session token.
// Expiry is not checked here; callers compare session_expires against
// the current time.
func (r *UserRepo) GetBySessionToken(ctx context.Context, token string) (model.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE session_token=? LIMIT 1", token)
}

// MarkVerified consumes the verification code: the email_verified flag
// is set, the code is cleared and the first session is stored.
func (r *UserRepo) MarkVerified(ctx context.Context, email, token string, exp time.Time) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET email_verified=1, verification_code=NULL, session_token=?, session_expires=? WHERE email=?",
		token, exp, email)
	return err
}

// UpdateSession overwrites the trust anchors (IP, device fingerprint)
// together with a newly minted session token and expiry. Used on any
// login that does not qualify for auto-login.
func (r *UserRepo) UpdateSession(ctx context.Context, email, ip, fingerprint, token string, exp time.Time) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET ip_address=?, device_fingerprint=?, session_token=?, session_expires=? WHERE email=?",
		ip, fingerprint, token, exp, email)
	return err
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var (
		u       model.User
		code    sql.NullString
		token   sql.NullString
		expires sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.IPAddress, &u.DeviceFingerprint,
		&u.EmailVerified, &code, &token, &expires, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	if code.Valid {
		u.VerificationCode = &code.String
	}
	if token.Valid {
		u.SessionToken = &token.String
	}
	if expires.Valid {
		t := expires.Time
		u.SessionExpires = &t
	}
	return u, nil
}
