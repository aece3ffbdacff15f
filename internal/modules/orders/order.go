package orders

import (
	"encoding/json"
	"time"
)

// LineItem is the snapshot of a purchased product taken by the storefront
// checkout at the time of purchase. Orders reference products only through
// this denormalized data, so later product edits never rewrite history.
type LineItem struct {
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// Order rows are written by the storefront checkout; the admin surface only
// reads them.
type Order struct {
	ID            string    `gorm:"type:char(36);primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	StreetAddress string    `gorm:"type:varchar(255)"`
	City          string    `gorm:"type:varchar(128)"`
	PostalCode    string    `gorm:"type:varchar(32)"`
	Country       string    `gorm:"type:varchar(64)"`
	Paid          bool      `gorm:"not null;default:false"`
	LineItemsJSON []byte    `gorm:"type:json"`
	CreatedAt     time.Time `gorm:"not null;index:ix_orders_created_at"`
}

func (Order) TableName() string { return "orders" }

func (o Order) LineItems() []LineItem {
	if len(o.LineItemsJSON) == 0 {
		return []LineItem{}
	}
	var items []LineItem
	if err := json.Unmarshal(o.LineItemsJSON, &items); err != nil {
		return []LineItem{}
	}
	return items
}

// TotalCents is the order revenue: sum over line items of qty x unit price.
func (o Order) TotalCents() int64 {
	var total int64
	for _, li := range o.LineItems() {
		total += int64(li.Quantity) * li.UnitPriceCents
	}
	return total
}

func EncodeLineItems(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}
