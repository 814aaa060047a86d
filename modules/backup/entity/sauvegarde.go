package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sauvegarde records one database export pushed to the S3 bucket.
type Sauvegarde struct {
	ID             uuid.UUID `db:"id" json:"id"`
	NomFichier     string    `db:"nom_fichier" json:"nom_fichier"`
	TailleOctets   *int64    `db:"taille_octets" json:"taille_octets,omitempty"`
	CheminS3       *string   `db:"chemin_s3" json:"chemin_s3,omitempty"`
	Statut         *string   `db:"statut" json:"statut,omitempty"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
	DateSauvegarde time.Time `db:"date_sauvegarde" json:"date_sauvegarde"`
}

const (
	StatutOK     = "OK"
	StatutErreur = "Erreur"
)
