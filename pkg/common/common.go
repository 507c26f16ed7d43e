package common

import "time"

// Folder groups the entities and relationships of one investigation.
// All analysis runs are scoped to a single folder.
type Folder struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntityRecord represents one investigative entity as stored: a person,
// organization, location, or any other relevant concept inside a folder.
//
// Attributes is an arbitrary key/value bag that is carried through the
// system opaquely; the analysis engine never interprets it.
type EntityRecord struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
	X          *float64       `json:"x,omitempty"`
	Y          *float64       `json:"y,omitempty"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

// RelationshipRecord represents a typed connection between two entities.
//
// Relationships are stored directed (FromEntity -> ToEntity). Strength is
// one of "weak", "medium" or "strong"; an empty value is treated as medium.
type RelationshipRecord struct {
	ID          string `json:"id"`
	FromEntity  string `json:"from_entity"`
	ToEntity    string `json:"to_entity"`
	Type        string `json:"type"`
	Strength    string `json:"strength,omitempty"`
	Description string `json:"description,omitempty"`
}

// Relationship strength tiers.
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)
