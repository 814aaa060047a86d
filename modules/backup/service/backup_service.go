package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gestion-api/core/database"
	"gestion-api/core/errors"
	"gestion-api/core/logger"
	"gestion-api/core/storage"
	"gestion-api/modules/backup/entity"
	"gestion-api/modules/backup/repository"
)

// Tables included in the export, in dependency order.
var backupTables = []string{
	"clients",
	"prestations",
	"sessions_prestation",
	"gcal_blocages",
	"calendrier_config",
	"indisponibilites",
	"documents",
}

// BackupService exports the business tables as one JSON object and pushes
// it to the S3 bucket.
type BackupService struct {
	db    database.IDatabase
	repo  repository.SauvegardeRepositoryInterface
	store storage.ObjectStorage
}

// BackupServiceInterface defines the service contract
type BackupServiceInterface interface {
	Run(ctx context.Context) (*entity.Sauvegarde, *errors.AppError)
	List(ctx context.Context, limit int) ([]entity.Sauvegarde, *errors.AppError)
}

// NewBackupService creates a new backup service
func NewBackupService(db database.IDatabase, repo repository.SauvegardeRepositoryInterface, store storage.ObjectStorage) BackupServiceInterface {
	return &BackupService{db: db, repo: repo, store: store}
}

// Run performs one backup. Failures are recorded in the sauvegardes table
// with the error message so the history shows them.
func (s *BackupService) Run(ctx context.Context) (*entity.Sauvegarde, *errors.AppError) {
	started := time.Now()
	name := fmt.Sprintf("backup-%s.json", started.Format("20060102-150405"))
	key := "sauvegardes/" + name

	payload, err := s.export(ctx)
	if err != nil {
		return s.record(ctx, name, nil, nil, entity.StatutErreur, err.Error())
	}

	size := int64(len(payload))
	if err := s.store.Put(ctx, key, bytes.NewReader(payload), size, "application/json"); err != nil {
		return s.record(ctx, name, &size, nil, entity.StatutErreur, err.Error())
	}

	logger.Info("BackupService:Run",
		"fichier", name,
		"octets", size,
		"duree", time.Since(started).String(),
	)
	return s.record(ctx, name, &size, &key, entity.StatutOK, "")
}

func (s *BackupService) List(ctx context.Context, limit int) ([]entity.Sauvegarde, *errors.AppError) {
	sauvegardes, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des sauvegardes impossible", err)
	}
	return sauvegardes, nil
}

// export reads every backup table into a JSON document keyed by table name.
func (s *BackupService) export(ctx context.Context) ([]byte, error) {
	dump := make(map[string][]map[string]any, len(backupTables))

	for _, table := range backupTables {
		rows, err := s.db.SQLx().QueryxContext(ctx, "SELECT * FROM "+table)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", table, err)
		}

		records := []map[string]any{}
		for rows.Next() {
			record := map[string]any{}
			if err := rows.MapScan(record); err != nil {
				rows.Close()
				return nil, fmt.Errorf("export %s: %w", table, err)
			}
			for k, v := range record {
				if b, ok := v.([]byte); ok {
					record[k] = string(b)
				}
			}
			records = append(records, record)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("export %s: %w", table, err)
		}
		dump[table] = records
	}

	return json.Marshal(map[string]any{
		"exported_at": time.Now().Format(time.RFC3339),
		"tables":      dump,
	})
}

func (s *BackupService) record(ctx context.Context, name string, size *int64, key *string, statut, note string) (*entity.Sauvegarde, *errors.AppError) {
	sauvegarde := &entity.Sauvegarde{
		NomFichier:   name,
		TailleOctets: size,
		CheminS3:     key,
		Statut:       &statut,
	}
	if note != "" {
		sauvegarde.Notes = &note
	}

	created, err := s.repo.Create(ctx, sauvegarde)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Enregistrement de la sauvegarde impossible", err)
	}
	if statut == entity.StatutErreur {
		return created, errors.NewAppError(errors.ErrInternalServer, "Sauvegarde en échec : "+note, nil)
	}
	return created, nil
}
