package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status order bergerak satu arah: pending -> ready -> completed.
const (
	OrderStatusPending   = "pending"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	// IsReady/IsCompleted hanya proyeksi dari Status untuk kompatibilitas
	// payload lama; satu-satunya sumber kebenaran tetap kolom status.
	IsReady     bool        `gorm:"-" json:"is_ready"`
	IsCompleted bool        `gorm:"-" json:"is_completed"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

// AfterFind mengisi flag turunan setiap kali order dibaca dari DB.
func (o *Order) AfterFind(tx *gorm.DB) error {
	o.SyncStatusFlags()
	return nil
}

func (o *Order) SyncStatusFlags() {
	o.IsReady = o.Status == OrderStatusReady
	o.IsCompleted = o.Status == OrderStatusCompleted
}
