package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"churchattendance/internal/domain"
)

var errInvalidToken = errors.New("invalid or expired token")

type jwtClaims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// JWT signs and verifies HS256 session tokens. The role is embedded so that it
// is resolved once per sign-in.
type JWT struct {
	secret []byte
	now    func() time.Time
}

// NewJWT returns a JWT issuer and verifier for the given secret.
func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

var (
	_ domain.TokenIssuer   = (*JWT)(nil)
	_ domain.TokenVerifier = (*JWT)(nil)
)

func (j *JWT) Issue(identity *domain.Identity, expiry time.Duration) (string, *domain.TokenClaims, error) {
	now := j.now()
	tokenID := uuid.NewString()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   identity.AuthID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email:  identity.Email,
		UserID: identity.UserID,
		Role:   identity.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, toDomainClaims(&claims), nil
}

func (j *JWT) Verify(tokenString string) (*domain.TokenClaims, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, errInvalidToken
	}
	return toDomainClaims(claims), nil
}

func toDomainClaims(c *jwtClaims) *domain.TokenClaims {
	out := &domain.TokenClaims{
		TokenID: c.ID,
		AuthID:  c.Subject,
		UserID:  c.UserID,
		Email:   c.Email,
		Role:    c.Role,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
