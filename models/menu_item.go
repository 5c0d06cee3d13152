package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Jenis item yang dijual di kedai.
const (
	ItemTypeFriedRice = "fried_rice"
	ItemTypeCurry     = "curry"
	ItemTypeSnack     = "snack"
	ItemTypeTea       = "tea"
)

type MenuItem struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Name      string           `gorm:"type:varchar(255);not null" json:"name"`
	BasePrice decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"base_price"`
	ItemType  string           `gorm:"type:varchar(20);not null" json:"item_type"`
	Options   []MenuItemOption `gorm:"foreignKey:MenuItemID" json:"options,omitempty"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`
}

// ValidItemType memeriksa apakah item_type dikenal.
func ValidItemType(t string) bool {
	switch t {
	case ItemTypeFriedRice, ItemTypeCurry, ItemTypeSnack, ItemTypeTea:
		return true
	}
	return false
}
