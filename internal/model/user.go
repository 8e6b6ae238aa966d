package model

import "time"

// User represents a shopper account as stored in the `users` table.
// Each field corresponds to a column. The json tags are omitted because
// these structs are used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// A session is valid only while SessionToken is non-nil and
// SessionExpires lies in the future. The verification code is cleared
// (set to NULL) once the email has been confirmed.
//
// Fields:
//  ID                – UUID primary key of the user.
//  Email             – unique email address (stored lower-cased).
//  PasswordHash      – bcrypt hashed password.
//  IPAddress         – client IP recorded at signup / last fresh login.
//  DeviceFingerprint – opaque client-supplied device identifier.
//  EmailVerified     – whether the verification code has been consumed.
//  VerificationCode  – pending 5-digit code (nil once verified).
//  SessionToken      – opaque bearer token of the current session (nullable).
//  SessionExpires    – expiry of the current session (nullable).
//  CreatedAt         – timestamp of creation.
type User struct {
	ID                string     // users.id
	Email             string     // users.email
	PasswordHash      string     // users.password_hash
	IPAddress         string     // users.ip_address
	DeviceFingerprint string     // users.device_fingerprint
	EmailVerified     bool       // users.email_verified
	VerificationCode  *string    // users.verification_code (nullable)
	SessionToken      *string    // users.session_token (nullable)
	SessionExpires    *time.Time // users.session_expires (nullable)
	CreatedAt         time.Time  // users.created_at
}

// HasValidSession reports whether the user holds an unexpired session
// at the given instant. Both the token and the expiry must be present.
func (u *User) HasValidSession(now time.Time) bool {
	return u.SessionToken != nil && u.SessionExpires != nil && now.Before(*u.SessionExpires)
}
