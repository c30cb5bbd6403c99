package auth

import "skyward/opsportal/internal/constants"

// UserClaims is what every authenticated request carries, regardless of how it authenticated
type UserClaims interface {
	PilotID() string
	Role() constants.Role
	Source() string
	IsAdmin() bool
}

// TokenClaims come from a bearer token issued by TokenSigner
type TokenClaims struct {
	PilotUUID string
	RoleValue constants.Role
	TokenID   string
}

func (c *TokenClaims) PilotID() string      { return c.PilotUUID }
func (c *TokenClaims) Role() constants.Role { return c.RoleValue }
func (c *TokenClaims) Source() string       { return "TOKEN" }
func (c *TokenClaims) IsAdmin() bool        { return c.RoleValue == constants.RoleAdmin }

// APIKeyClaims come from an X-API-Key lookup
type APIKeyClaims struct {
	PilotUUID string
	RoleValue constants.Role
}

func (c *APIKeyClaims) PilotID() string      { return c.PilotUUID }
func (c *APIKeyClaims) Role() constants.Role { return c.RoleValue }
func (c *APIKeyClaims) Source() string       { return "API_KEY" }
func (c *APIKeyClaims) IsAdmin() bool        { return c.RoleValue == constants.RoleAdmin }
