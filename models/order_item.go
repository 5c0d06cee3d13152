package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OptionIDList disimpan sebagai array JSON di kolom text, mengikuti format
// payload klien ("[1,3]").
type OptionIDList []uint

func (l OptionIDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *OptionIDList) Scan(value interface{}) error {
	if value == nil {
		*l = OptionIDList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for OptionIDList", value)
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Order disembunyikan dari JSON agar tidak nested rekursif
	Order      *Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	// SelectedOptions dan ItemTotal dibekukan saat order dibuat; perubahan
	// katalog setelahnya tidak mengubah nilai historis ini.
	SelectedOptions OptionIDList    `gorm:"type:text" json:"selected_options"`
	ItemTotal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"item_total"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}
