package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/growtiva/crm-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the JWT payload: subject carries the numeric user id, role
// and city ride alongside the registered claims.
type tokenClaims struct {
	Role string `json:"role"`
	City string `json:"city,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// self-contained: there is no revocation list, a token stays valid until its
// embedded expiry regardless of later account changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding claims with expiry = now + TTL.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now().UTC()
	tc := tokenClaims{
		Role: string(claims.Role),
		City: claims.City,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry is reported as domain.ErrTokenExpired, distinct from every other
// failure, so callers can prompt re-authentication instead of treating it as
// a hard auth error.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.Claims{}, domain.ErrTokenInvalid
	}

	role, err := domain.ParseRole(tc.Role)
	if err != nil {
		return domain.Claims{}, domain.ErrTokenInvalid
	}
	userID, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil {
		return domain.Claims{}, domain.ErrTokenInvalid
	}

	return domain.Claims{UserID: userID, Role: role, City: tc.City}, nil
}
