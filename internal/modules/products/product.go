package products

import (
	"encoding/json"
	"time"
)

type Product struct {
	ID             string    `gorm:"type:char(36);primaryKey"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	PriceCents     int64     `gorm:"not null"`
	ImagesJSON     []byte    `gorm:"type:json"`
	CategoryID     *string   `gorm:"type:char(36);index:ix_products_category_id"`
	PropertiesJSON []byte    `gorm:"type:json"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// Images decodes the stored URL list, preserving upload order.
func (p Product) Images() []string {
	if len(p.ImagesJSON) == 0 {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal(p.ImagesJSON, &urls); err != nil {
		return []string{}
	}
	return urls
}

// Properties decodes the stored property-name -> selected-value mapping.
// Values for properties no longer defined on the category stay in the map
// until the product is saved with a new mapping.
func (p Product) Properties() map[string]string {
	if len(p.PropertiesJSON) == 0 {
		return map[string]string{}
	}
	var props map[string]string
	if err := json.Unmarshal(p.PropertiesJSON, &props); err != nil {
		return map[string]string{}
	}
	return props
}

func encodeImages(urls []string) ([]byte, error) {
	if urls == nil {
		urls = []string{}
	}
	return json.Marshal(urls)
}

func encodeProperties(props map[string]string) ([]byte, error) {
	if props == nil {
		props = map[string]string{}
	}
	return json.Marshal(props)
}
