package settings

import "time"

// Names of the settings the storefront reads. Each is its own row.
const (
	FeaturedProductID = "featuredProductId"
	ShippingFee       = "shippingFee"
)

type Setting struct {
	Name      string    `gorm:"type:varchar(64);primaryKey" json:"name"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Setting) TableName() string { return "settings" }
