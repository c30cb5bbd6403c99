package entities

import (
	"database/sql"

	"skyward/opsportal/internal/constants"
)

// ApiKey is a row of api_keys. The id column is the key itself.
type ApiKey struct {
	ApiKey  string         `db:"id"`
	Status  bool           `db:"status"`
	PilotID sql.NullString `db:"pilot_id"`
	Role    constants.Role `db:"role"`
}
