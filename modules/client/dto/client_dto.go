package dto

// ClientRequest creates or updates a client. Nom is the only mandatory
// field; everything else mirrors the paper form.
type ClientRequest struct {
	Nom                string  `json:"nom"`
	Prenom             *string `json:"prenom,omitempty"`
	Entreprise         *string `json:"entreprise,omitempty"`
	Email              *string `json:"email,omitempty"`
	Telephone          *string `json:"telephone,omitempty"`
	Adresse            *string `json:"adresse,omitempty"`
	CodePostal         *string `json:"code_postal,omitempty"`
	Ville              *string `json:"ville,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	StatutClient       string  `json:"statut_client,omitempty"`
	DelaiPaiementJours *int    `json:"delai_paiement_jours,omitempty"`
	CalendrierGoogle   *string `json:"calendrier_google,omitempty"`
}
