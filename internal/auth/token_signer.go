package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skyward/opsportal/internal/constants"
)

const tokenIssuer = "opsportal"

var ErrInvalidToken = errors.New("invalid token")

type signedClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssuedToken is returned to the client when a token is minted
type IssuedToken struct {
	Token     string    `json:"token"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenSigner issues and validates HS256 bearer tokens for pilots
type TokenSigner struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenSigner creates a signer. An empty secret is rejected.
func NewTokenSigner(secretKey []byte, ttl time.Duration) (*TokenSigner, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenSigner{secretKey: secretKey, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for pilotID with role
func (s *TokenSigner) Issue(pilotID string, role constants.Role) (*IssuedToken, error) {
	if pilotID == "" {
		return nil, errors.New("pilot id is required")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	tokenID := uuid.New().String()

	claims := signedClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   pilotID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &IssuedToken{Token: tokenString, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// Validate parses a token and returns its claims
func (s *TokenSigner) Validate(tokenString string) (*TokenClaims, error) {
	var claims signedClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	role := constants.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}

	return &TokenClaims{
		PilotUUID: claims.Subject,
		RoleValue: role,
		TokenID:   claims.ID,
	}, nil
}
