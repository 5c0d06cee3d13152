package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// OrderItemInput adalah satu baris keranjang dari klien. Sengaja tidak ada
// field harga di sini.
type OrderItemInput struct {
	MenuItemID      uint
	Quantity        int
	SelectedOptions []uint
}

// OrderFilter untuk listing admin. String kosong berarti filter tidak dipakai.
type OrderFilter struct {
	CustomerName string // substring, case-insensitive
	Date         string // YYYY-MM-DD, dibandingkan dengan DATE(created_at)
}

// CreateOrder memvalidasi semua item, menghitung total dari katalog, lalu
// menulis order + seluruh order_items dalam satu transaksi. Kalau satu baris
// gagal, semuanya di-rollback — tidak boleh ada order tanpa item.
func (s *OrderService) CreateOrder(customerID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrCustomerNotFound, customerID)
		}
		return nil, err
	}

	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, in := range items {
			var menuItem models.MenuItem
			if err := tx.Preload("Options").First(&menuItem, in.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: menu item %d", ErrMenuItemNotFound, in.MenuItemID)
				}
				return err
			}

			lineTotal, err := ComputeLineTotal(menuItem, in.SelectedOptions, in.Quantity)
			if err != nil {
				return err
			}

			total = total.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID:      menuItem.ID,
				Quantity:        in.Quantity,
				SelectedOptions: models.OptionIDList(in.SelectedOptions),
				ItemTotal:       lineTotal,
			})
		}

		order = models.Order{
			CustomerID:  customerID,
			Status:      models.OrderStatusPending,
			TotalAmount: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.OrderItems = orderItems
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.SyncStatusFlags()
	return &order, nil
}

// GetOrder -> satu order dengan item-itemnya.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrdersByCustomer -> order milik satu customer, terbaru dulu.
func (s *OrderService) ListOrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrders untuk tampilan admin: selalu memuat customer dan detail item,
// filter opsional nama customer (contains) dan tanggal kalender.
func (s *OrderService) ListOrders(filter OrderFilter) ([]models.Order, error) {
	query := s.DB.Model(&models.Order{}).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Preload("Customer").
		Preload("OrderItems").
		Preload("OrderItems.MenuItem")

	if filter.CustomerName != "" {
		query = query.Where("LOWER(customers.name) LIKE ?",
			"%"+strings.ToLower(filter.CustomerName)+"%")
	}
	if filter.Date != "" {
		query = query.Where("DATE(orders.created_at) = ?", filter.Date)
	}

	var orders []models.Order
	if err := query.Order("orders.created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder menghapus item dulu baru order-nya, dalam satu transaksi,
// supaya tidak ada baris item yatim.
func (s *OrderService) DeleteOrder(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
