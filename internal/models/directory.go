package models

// Directory entry group tags. The group field is the partition key for
// presentation: an entry belongs to exactly one bucket.
const (
	DirectoryGroupCorporate = "corporate"
	DirectoryGroupFrontDesk = "frontdesk"
	DirectoryGroupOffices   = "offices"
)

// DirectoryGroups lists the valid group tags.
var DirectoryGroups = []string{DirectoryGroupCorporate, DirectoryGroupFrontDesk, DirectoryGroupOffices}

// DirectoryEntity owns a flat list of entries, typically one entity per
// clinic.
type DirectoryEntity struct {
	ID        string `json:"id" db:"id"`
	CompanyID string `json:"company_id" db:"company_id"`
	Name      string `json:"name" db:"name"`
	SeedOrder int    `json:"-" db:"seed_order"`
}

// DirectoryEntry is one phone-book row. Order defines display sequence
// within its group and is not globally unique.
type DirectoryEntry struct {
	ID         string `json:"id" db:"id"`
	EntityID   string `json:"entity_id" db:"entity_id"`
	Group      string `json:"group" db:"group_tag"`
	Location   string `json:"location" db:"location"`
	Phone      string `json:"phone" db:"phone"`
	Extension  string `json:"extension" db:"extension"`
	Department string `json:"department" db:"department"`
	Employee   string `json:"employee" db:"employee"`
	Order      int    `json:"order" db:"sort_order"`
}

// DirectoryView is the nested response shape for one entity: its entries
// routed into the three named buckets.
type DirectoryView struct {
	Entity    *DirectoryEntity  `json:"entity"`
	Corporate []*DirectoryEntry `json:"corporate"`
	FrontDesk []*DirectoryEntry `json:"frontdesk"`
	Offices   []*DirectoryEntry `json:"offices"`
}

// ValidDirectoryGroup reports whether g is a known group tag.
func ValidDirectoryGroup(g string) bool {
	for _, v := range DirectoryGroups {
		if v == g {
			return true
		}
	}
	return false
}
