package models

import (
	"time"
)

// Customer dibuat sekali per kunjungan; tidak ada dedupe berdasarkan phone,
// pelanggan yang datang lagi boleh membuat record baru.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
