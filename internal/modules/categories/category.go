package categories

import (
	"encoding/json"
	"time"
)

// Property is a named attribute defined on a category (e.g. "color") together
// with the values a product under that category may pick from. Order matters:
// the admin panel renders properties in the order they were defined.
type Property struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Category struct {
	ID             string    `gorm:"type:char(36);primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	PropertiesJSON []byte    `gorm:"type:json"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (Category) TableName() string { return "categories" }

// Properties decodes the stored JSON list. A missing or empty column is an
// empty list, not an error.
func (c Category) Properties() []Property {
	if len(c.PropertiesJSON) == 0 {
		return []Property{}
	}
	var props []Property
	if err := json.Unmarshal(c.PropertiesJSON, &props); err != nil {
		return []Property{}
	}
	return props
}

func encodeProperties(props []Property) ([]byte, error) {
	if props == nil {
		props = []Property{}
	}
	return json.Marshal(props)
}
