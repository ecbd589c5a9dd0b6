// Package models defines data structures for catalog report extraction
// and rule evaluation.
package models

// BulletSlots is the fixed number of bullet point slots per record.
// Slot position is meaningful (slot 1 carries the hero benefit), so
// missing bullets are kept as empty strings, never dropped.
const BulletSlots = 5

// LineageRole describes a record's place in a variation family.
type LineageRole string

const (
	// RoleStandalone marks a record with no variation relationship.
	RoleStandalone LineageRole = "standalone"
	// RoleParent marks a variation parent row.
	RoleParent LineageRole = "parent"
	// RoleChild marks a variation child row.
	RoleChild LineageRole = "child"
	// RoleUnknown marks a parentage value that could not be classified.
	RoleUnknown LineageRole = "unknown"
)

// Record represents one normalized catalog entry.
type Record struct {
	// Position is the 1-based source row number.
	Position int `json:"row"`
	// Identifier is the SKU; non-empty for any retained record.
	Identifier string `json:"sku"`
	// Classification is the product type label.
	Classification string `json:"product_type,omitempty"`
	// Subclassification is the item type keyword.
	Subclassification string `json:"item_type,omitempty"`
	// DisplayName is the listing title.
	DisplayName string `json:"title,omitempty"`
	// Brand is the brand attribute.
	Brand string `json:"brand,omitempty"`
	// LineageRole is the variation role derived from the parentage column.
	LineageRole LineageRole `json:"lineage_role"`
	// LineageParentID references the parent record's identifier, if any.
	LineageParentID string `json:"parent_sku,omitempty"`
	// Status is the free-text lifecycle marker from the source.
	Status string `json:"status,omitempty"`
	// BulletPoints holds the five bullet slots in order.
	BulletPoints [BulletSlots]string `json:"bullet_points"`
	// Fields maps every declared column header to its value for this row.
	// It is the authoritative source; the named attributes above are
	// convenience projections.
	Fields map[string]string `json:"fields"`
}

// Field returns the value of a declared header, or "" when the header
// was never declared for the sheet.
func (r Record) Field(name string) string {
	return r.Fields[name]
}
