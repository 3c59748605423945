package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authshell "github.com/projecthealth/authshell"
)

// ErrTokenInvalid is returned by Verify for any token that does not parse,
// does not verify, or carries an invalid role.
var ErrTokenInvalid = errors.New("session token invalid")

// TokenCodec signs and verifies the optional session cookie. HS256 only; the
// cookie is advisory and binds a browser to a session ID, it is not an access
// token.
type TokenCodec struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenCodec validates the signing key and returns a codec. ttl <= 0
// defaults to 24h.
func NewTokenCodec(key []byte, issuer string, ttl time.Duration) (*TokenCodec, error) {
	if len(key) < 32 {
		return nil, errors.New("hs256 key must be at least 32 bytes")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{key: key, issuer: issuer, ttl: ttl}, nil
}

// Issue signs a token for sess. The session ID becomes the subject claim.
func (c *TokenCodec) Issue(sess authshell.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: sess.Email,
		Name:  sess.Name,
		Role:  string(sess.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.ID,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Verify parses and verifies a token, returning the embedded session.
func (c *TokenCodec) Verify(token string) (authshell.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return authshell.Session{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	role, err := authshell.ParseRole(claims.Role)
	if err != nil {
		return authshell.Session{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return authshell.Session{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return authshell.Session{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}, nil
}

// TokenGuard behaves like Guard but additionally requires a valid session
// cookie whose subject matches the active session ID. A missing or stale
// cookie redirects like a missing session.
func TokenGuard(store *authshell.Store, codec *TokenCodec, entryPath string) func(http.Handler) http.Handler {
	if entryPath == "" {
		entryPath = "/login"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || codec == nil {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}

			sess, ok := store.CurrentUser()
			if !ok {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}

			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}
			fromToken, err := codec.Verify(cookie.Value)
			if err != nil || fromToken.ID != sess.ID {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
