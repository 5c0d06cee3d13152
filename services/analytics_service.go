package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type DailyTotals struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int64           `json:"total_quantity"`
}

type MenuItemStats struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ItemType      string `json:"item_type"`
	TotalQuantity int64  `json:"total_quantity"`
	OrderCount    int64  `json:"order_count"`
}

// DailyTotals merekap order dalam satu "hari bisnis": jam 12 siang sampai
// jam 12 siang hari berikutnya, bukan tengah malam. Order jam 23:50 dan
// order jam 00:30 setelahnya masuk shift yang sama.
func (s *AnalyticsService) DailyTotals(date time.Time) (DailyTotals, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	var totals DailyTotals
	err := s.DB.Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM((
				SELECT SUM(quantity)
				FROM order_items
				WHERE order_items.order_id = orders.id
			)), 0) AS total_quantity
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, start, end).Scan(&totals).Error
	if err != nil {
		return DailyTotals{}, err
	}
	return totals, nil
}

// MenuAnalytics menghitung popularitas per menu item. LEFT JOIN dari
// menu_items supaya item tanpa penjualan tetap muncul dengan nol.
//
// Catatan: filter tanggal di sini memakai DATE(created_at) biasa, BUKAN
// jendela 12:00-12:00 milik DailyTotals. Dua semantik ini memang berbeda
// untuk order antara tengah malam dan jam 12 siang; dipertahankan begitu
// sampai product owner minta disamakan.
func (s *AnalyticsService) MenuAnalytics(date string) ([]MenuItemStats, error) {
	query := `
		SELECT
			mi.id,
			mi.name,
			mi.item_type,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity,
			COUNT(oi.id) AS order_count
		FROM menu_items mi
		LEFT JOIN order_items oi ON mi.id = oi.menu_item_id
		LEFT JOIN orders o ON oi.order_id = o.id
	`
	args := []interface{}{}
	if date != "" {
		query += " WHERE DATE(o.created_at) = ?"
		args = append(args, date)
	}
	query += `
		GROUP BY mi.id, mi.name, mi.item_type
		ORDER BY total_quantity DESC, mi.name ASC
	`

	var stats []MenuItemStats
	if err := s.DB.Raw(query, args...).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
