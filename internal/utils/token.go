package utils // package utils provides helper functions for tokens, codes and masking

import (
	"crypto/rand"     // secure random number generation
	"encoding/base64" // URL-safe encoding for session tokens
	"fmt"             // formatting for codes and masked numbers
	"math/big"        // uniform integer sampling over crypto/rand
	"strings"         // string utilities for masking
	"time"            // session expiry arithmetic
)

// SessionTTL is how long a freshly minted session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Session is an opaque bearer credential handed to a verified user.
// Token carries no claims; the server recognizes it only by looking it
// up against the stored copy. Exp is the UTC expiration time.
type Session struct {
	Token string    // opaque URL-safe token returned to the client
	Exp   time.Time // UTC expiration time
}

// NewSession mints a session token from 32 bytes of cryptographically
// secure randomness, base64url-encoded without padding, expiring
// SessionTTL from now.
func NewSession() (Session, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return Session{}, err
	}
	return Session{
		Token: base64.RawURLEncoding.EncodeToString(buf),
		Exp:   time.Now().UTC().Add(SessionTTL),
	}, nil
}

// NewVerificationCode returns a 5-digit numeric code sampled uniformly
// from [10000, 99999]. The code is emailed to the user and must be
// echoed back verbatim to confirm the address.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+10000), nil
}

// NewAffiliateCode returns a referral code of the form LUX followed by
// 4 random digits (LUX1000–LUX9999). Uniqueness is enforced by the
// caller against the store; collisions are possible in the 9000-value
// space.
func NewAffiliateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("LUX%d", n.Int64()+1000), nil
}

// MaskCardNumber reduces a card number to its last 4 digits with the
// rest replaced by mask groups, e.g. "****-****-****-1234". Numbers
// shorter than 4 digits are masked entirely.
func MaskCardNumber(number string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(digits) < 4 {
		return "****-****-****-****"
	}
	return "****-****-****-" + digits[len(digits)-4:]
}
