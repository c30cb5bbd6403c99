package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"skyward/opsportal/internal/models/entities"
)

const (
	getStatusByAPIKey = `SELECT id, status, pilot_id, role FROM api_keys WHERE id = ?`
	insertAPIKey      = `INSERT INTO api_keys (id, status, pilot_id, role) VALUES (?, ?, ?, ?)`
	revokeAPIKey      = `UPDATE api_keys SET status = FALSE WHERE id = ?`
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

// GetStatus returns the key row, or nil when the key does not exist
func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(getStatusByAPIKey), key).StructScan(&keyRes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &keyRes, nil
}

func (r *KeysRepo) Create(ctx context.Context, key entities.ApiKey) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertAPIKey), key.ApiKey, key.Status, key.PilotID, key.Role)
	return err
}

// Revoke disables a key. It reports false when no such key exists.
func (r *KeysRepo) Revoke(ctx context.Context, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(revokeAPIKey), key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *KeysRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
