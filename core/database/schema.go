package database

import (
	"context"

	"gestion-api/core/logger"
)

// Startup migration. Every statement is idempotent so the schema can be
// applied on every boot against an existing database.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(80) UNIQUE NOT NULL,
		password_hash VARCHAR(256) NOT NULL,
		nom VARCHAR(100),
		email VARCHAR(120),
		role VARCHAR(20) NOT NULL DEFAULT 'admin',
		actif BOOLEAN NOT NULL DEFAULT TRUE,
		derniere_connexion TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nom VARCHAR(100) NOT NULL,
		prenom VARCHAR(100),
		entreprise VARCHAR(200),
		email VARCHAR(120),
		telephone VARCHAR(20),
		adresse TEXT,
		code_postal VARCHAR(10),
		ville VARCHAR(100),
		notes TEXT,
		statut_client VARCHAR(50) NOT NULL DEFAULT 'Client',
		date_conversion TIMESTAMP,
		delai_paiement_jours INTEGER NOT NULL DEFAULT 30,
		calendrier_google VARCHAR(500),
		actif BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS prestations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		titre VARCHAR(200) NOT NULL,
		description TEXT,
		type_prestation VARCHAR(100),
		demandeur VARCHAR(200),
		adresse_prestation TEXT,
		code_postal_prestation VARCHAR(10),
		ville_prestation VARCHAR(100),
		statut VARCHAR(50) NOT NULL DEFAULT 'Planifiée',
		date_debut TIMESTAMP NOT NULL,
		date_fin TIMESTAMP,
		duree_heures DOUBLE PRECISION,
		journee_entiere BOOLEAN NOT NULL DEFAULT FALSE,
		calendrier_id VARCHAR(500),
		gcal_event_id VARCHAR(500),
		gcal_synced BOOLEAN NOT NULL DEFAULT FALSE,
		gcal_last_sync TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions_prestation (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		prestation_id UUID NOT NULL REFERENCES prestations(id) ON DELETE CASCADE,
		date_debut TIMESTAMP NOT NULL,
		date_fin TIMESTAMP,
		duree_heures DOUBLE PRECISION,
		journee_complete BOOLEAN NOT NULL DEFAULT FALSE,
		ordre INTEGER NOT NULL DEFAULT 0,
		gcal_event_id VARCHAR(500),
		gcal_event_ids TEXT,
		gcal_synced BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS gcal_blocages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		prestation_id UUID NOT NULL REFERENCES prestations(id) ON DELETE CASCADE,
		calendar_id VARCHAR(500) NOT NULL,
		event_id VARCHAR(500) NOT NULL,
		calendar_name VARCHAR(200),
		date_creation TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS calendrier_config (
		id INTEGER PRIMARY KEY DEFAULT 1,
		config_json TEXT,
		derniere_synchro TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS indisponibilites (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		date_debut DATE NOT NULL,
		date_fin DATE NOT NULL,
		motif VARCHAR(100) NOT NULL,
		note TEXT,
		gcal_events TEXT,
		date_creation TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		prestation_id UUID NOT NULL REFERENCES prestations(id) ON DELETE CASCADE,
		nom_fichier VARCHAR(500) NOT NULL,
		nom_original VARCHAR(200) NOT NULL,
		type_document VARCHAR(50),
		taille_octets BIGINT,
		notes TEXT,
		date_upload TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sauvegardes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nom_fichier VARCHAR(200) NOT NULL,
		taille_octets BIGINT,
		chemin_s3 VARCHAR(500),
		statut VARCHAR(50),
		notes TEXT,
		date_sauvegarde TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prestations_client ON prestations(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_prestation ON sessions_prestation(prestation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blocages_prestation ON gcal_blocages(prestation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_prestation ON documents(prestation_id)`,
}

// Migrate applies the schema statements in order.
func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := d.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:Migrate", "error", err)
			return err
		}
	}
	logger.Info("Database schema up to date", "statements", len(schemaStatements))
	return nil
}
