package models

// Factor is a medical risk factor from the reference catalog. Factors flagged
// FamilyRelevant can also be reported as family-history factors.
type Factor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	FamilyRelevant bool   `json:"-"`
}
