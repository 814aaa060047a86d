package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/gcalsync/entity"
)

// ConfigRepository handles the single calendrier_config row
type ConfigRepository struct {
	DB database.IDatabase
}

// NewConfigRepository creates a new repository instance
func NewConfigRepository(db database.IDatabase) *ConfigRepository {
	return &ConfigRepository{DB: db}
}

// ConfigRepositoryInterface defines the repository contract
type ConfigRepositoryInterface interface {
	GetSyncConfig(ctx context.Context) (*entity.SyncConfig, error)
	SaveSyncConfig(ctx context.Context, cfg *entity.SyncConfig) error
	TouchLastSync(ctx context.Context, at time.Time) error
}

// GetSyncConfig decodes the stored JSON configuration. A missing row or an
// unreadable payload yields the default configuration, never an error.
func (r *ConfigRepository) GetSyncConfig(ctx context.Context) (*entity.SyncConfig, error) {
	query := `SELECT id, config_json, derniere_synchro FROM calendrier_config WHERE id = 1`

	var row entity.CalendrierConfigRow
	err := r.DB.GetContext(ctx, &row, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return entity.DefaultSyncConfig(), nil
		}
		logger.Error("ConfigRepository:GetSyncConfig", err)
		return nil, err
	}

	if row.ConfigJSON == nil || *row.ConfigJSON == "" {
		return entity.DefaultSyncConfig(), nil
	}

	var cfg entity.SyncConfig
	if err := json.Unmarshal([]byte(*row.ConfigJSON), &cfg); err != nil {
		logger.Warn("ConfigRepository:GetSyncConfig invalid payload, using defaults", "error", err)
		return entity.DefaultSyncConfig(), nil
	}

	return &cfg, nil
}

func (r *ConfigRepository) SaveSyncConfig(ctx context.Context, cfg *entity.SyncConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO calendrier_config (id, config_json)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET config_json = EXCLUDED.config_json
	`
	if err := r.DB.ExecContext(ctx, query, string(payload)); err != nil {
		logger.Error("ConfigRepository:SaveSyncConfig", err)
		return err
	}
	return nil
}

func (r *ConfigRepository) TouchLastSync(ctx context.Context, at time.Time) error {
	query := `
		INSERT INTO calendrier_config (id, derniere_synchro)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET derniere_synchro = EXCLUDED.derniere_synchro
	`
	if err := r.DB.ExecContext(ctx, query, at); err != nil {
		logger.Error("ConfigRepository:TouchLastSync", err)
		return err
	}
	return nil
}
