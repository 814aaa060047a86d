package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account of the application.
type User struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Username          string     `db:"username" json:"username"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	Nom               *string    `db:"nom" json:"nom,omitempty"`
	Email             *string    `db:"email" json:"email,omitempty"`
	Role              string     `db:"role" json:"role"`
	Actif             bool       `db:"actif" json:"actif"`
	DerniereConnexion *time.Time `db:"derniere_connexion" json:"derniere_connexion,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}
