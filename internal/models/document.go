package models

import "time"

// DocumentEntity is the top level of the three-level document library:
// entity owns named groups, groups hold ordered documents.
type DocumentEntity struct {
	ID        string           `json:"id" db:"id"`
	CompanyID string           `json:"company_id" db:"company_id"`
	Name      string           `json:"name" db:"name"`
	Groups    []*DocumentGroup `json:"groups"`
}

// DocumentGroup is a named folder within an entity.
type DocumentGroup struct {
	ID        string            `json:"id" db:"id"`
	EntityID  string            `json:"-" db:"entity_id"`
	Name      string            `json:"name" db:"name"`
	Documents []*DocumentRecord `json:"documents"`
}

// DocumentRecord is a single library document. Its ID is unique within the
// group, not globally.
type DocumentRecord struct {
	ID          string     `json:"id" db:"id"`
	GroupID     string     `json:"-" db:"group_id"`
	Title       string     `json:"title" db:"title"`
	Version     string     `json:"version" db:"version"`
	Date        *time.Time `json:"date,omitempty" db:"doc_date"`
	Description string     `json:"description" db:"description"`
	URL         string     `json:"url" db:"url"`
	FileName    *string    `json:"file_name,omitempty" db:"file_name"`
}

// DocumentEntitySummary attaches computed counts to an entity for listings.
type DocumentEntitySummary struct {
	Entity        *DocumentEntity `json:"entity"`
	GroupCount    int             `json:"group_count"`
	DocumentCount int             `json:"document_count"`
}

// Insurance is a payer contact card.
type Insurance struct {
	ID        string    `json:"id" db:"id"`
	CompanyID string    `json:"company_id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	PortalURL string    `json:"portal_url" db:"portal_url"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
