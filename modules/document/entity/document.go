package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file attached to a prestation, stored in the S3 bucket
// under documents/<prestation-id>/<nom_fichier>.
type Document struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PrestationID uuid.UUID `db:"prestation_id" json:"prestation_id"`
	NomFichier   string    `db:"nom_fichier" json:"nom_fichier"`
	NomOriginal  string    `db:"nom_original" json:"nom_original"`
	TypeDocument *string   `db:"type_document" json:"type_document,omitempty"`
	TailleOctets *int64    `db:"taille_octets" json:"taille_octets,omitempty"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	DateUpload   time.Time `db:"date_upload" json:"date_upload"`
}

// StorageKey is the object key in the bucket.
func (d *Document) StorageKey() string {
	return "documents/" + d.PrestationID.String() + "/" + d.NomFichier
}
