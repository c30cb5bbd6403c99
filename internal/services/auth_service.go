package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/models/entities"
)

// AuthService mints API keys and exchanges them for bearer tokens
type AuthService struct {
	keys   *repositories.KeysRepo
	signer *auth.TokenSigner
}

func NewAuthService(keys *repositories.KeysRepo, signer *auth.TokenSigner) *AuthService {
	return &AuthService{keys: keys, signer: signer}
}

// CreateAPIKey stores a new active key for pilotID. An empty pilotID creates a
// service key that is not bound to a pilot.
func (s *AuthService) CreateAPIKey(ctx context.Context, pilotID string, role constants.Role) (string, error) {
	if !role.Valid() {
		return "", validationError("unknown role %q", role)
	}

	key := strings.ReplaceAll(uuid.New().String(), "-", "")
	record := entities.ApiKey{
		ApiKey:  key,
		Status:  true,
		PilotID: sql.NullString{String: pilotID, Valid: pilotID != ""},
		Role:    role,
	}
	if err := s.keys.Create(ctx, record); err != nil {
		return "", dbError(err)
	}
	return key, nil
}

// RevokeAPIKey disables a key
func (s *AuthService) RevokeAPIKey(ctx context.Context, key string) error {
	revoked, err := s.keys.Revoke(ctx, key)
	if err != nil {
		return dbError(err)
	}
	if !revoked {
		return notFoundError("api key")
	}
	return nil
}

// IssueToken signs a bearer token for an already authenticated caller
func (s *AuthService) IssueToken(claims auth.UserClaims) (*auth.IssuedToken, error) {
	if s.signer == nil {
		return nil, &ServiceError{Code: constants.ErrCodeUnauthorized, Message: "token issuing is disabled"}
	}
	if claims == nil || claims.PilotID() == "" {
		return nil, &ServiceError{Code: constants.ErrCodeUnauthorized, Message: "a pilot-bound API key is required"}
	}
	token, err := s.signer.Issue(claims.PilotID(), claims.Role())
	if err != nil {
		return nil, &ServiceError{Code: constants.ErrCodeUnauthorized, Message: "failed to issue token", Err: err}
	}
	return token, nil
}
