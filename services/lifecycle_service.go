package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/models"
)

// LifecycleService memegang state machine status order:
// pending -> ready -> completed, tidak pernah mundur.
type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// MarkReady -> pending => ready. Order yang sudah ready/completed ditolak
// dengan ErrInvalidTransition (varian bulk di bawah diam saja untuk kasus itu).
func (s *LifecycleService) MarkReady(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: %s -> ready", ErrInvalidTransition, order.Status)
	}

	order.Status = models.OrderStatusReady
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	order.SyncStatusFlags()
	return &order, nil
}

// MarkAllReady memindahkan semua order pending ke ready dalam satu UPDATE,
// dan mengembalikan jumlah baris yang terpengaruh. Nol bukan error; order
// yang masuk setelah snapshot UPDATE tetap pending untuk siklus berikutnya.
func (s *LifecycleService) MarkAllReady() (int64, error) {
	res := s.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Update("status", models.OrderStatusReady)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Complete -> pending/ready => completed. Staff boleh menyelesaikan order
// tanpa lewat ready dulu. Idempotent: order yang sudah completed dibiarkan.
func (s *LifecycleService) Complete(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Status == models.OrderStatusCompleted {
		order.SyncStatusFlags()
		return &order, nil
	}

	order.Status = models.OrderStatusCompleted
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	order.SyncStatusFlags()
	return &order, nil
}
