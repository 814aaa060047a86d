package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer or prospect of the business.
type Client struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Nom                string     `db:"nom" json:"nom"`
	Prenom             *string    `db:"prenom" json:"prenom,omitempty"`
	Entreprise         *string    `db:"entreprise" json:"entreprise,omitempty"`
	Email              *string    `db:"email" json:"email,omitempty"`
	Telephone          *string    `db:"telephone" json:"telephone,omitempty"`
	Adresse            *string    `db:"adresse" json:"adresse,omitempty"`
	CodePostal         *string    `db:"code_postal" json:"code_postal,omitempty"`
	Ville              *string    `db:"ville" json:"ville,omitempty"`
	Notes              *string    `db:"notes" json:"notes,omitempty"`
	StatutClient       string     `db:"statut_client" json:"statut_client"`
	DateConversion     *time.Time `db:"date_conversion" json:"date_conversion,omitempty"`
	DelaiPaiementJours int        `db:"delai_paiement_jours" json:"delai_paiement_jours"`
	// Dedicated Google calendar for this client, when one exists.
	CalendrierGoogle *string   `db:"calendrier_google" json:"calendrier_google,omitempty"`
	Actif            bool      `db:"actif" json:"actif"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName renders "Prénom Nom", or just "Nom" when no first name is set.
func (c *Client) DisplayName() string {
	if c.Prenom != nil && *c.Prenom != "" {
		return *c.Prenom + " " + c.Nom
	}
	return c.Nom
}
