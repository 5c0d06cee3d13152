package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemOption adalah tambahan per item, modifier harganya boleh negatif
// (mis. "Less Sugar" -0.25) maupun positif ("Extra Egg" +1.00).
type MenuItemOption struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	MenuItemID    uint            `gorm:"not null;index" json:"menu_item_id"`
	OptionName    string          `gorm:"type:varchar(255);not null" json:"option_name"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"price_modifier"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}
