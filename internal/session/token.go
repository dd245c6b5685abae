package session

import (
	"errors"
	"strings"

	"poi-finder-api/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

const op = "session"

// Claims is the token payload issued by the account system.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens signed with a shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured.
func (v *Verifier) Enabled() bool {
	return v != nil && len(v.secret) > 0
}

// Verify parses a bearer token into a Session.
func (v *Verifier) Verify(token string) (*Session, error) {
	if !v.Enabled() {
		return nil, apperr.Unauthorized(op, "authentication is not configured")
	}
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, apperr.Unauthorized(op, "missing token")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return nil, apperr.Wrap(apperr.KindUnauthorized, op, "invalid token", err)
	}
	if claims.Subject == "" {
		return nil, apperr.Unauthorized(op, "token has no subject")
	}

	return &Session{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}

// Issue signs a token for s. The account system owns issuance in production;
// this exists for local tooling and tests.
func (v *Verifier) Issue(s Session, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = s.UserID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:            s.Email,
		Name:             s.DisplayName,
		RegisteredClaims: claims,
	})
	return token.SignedString(v.secret)
}
