package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/services"
	"github.com/phonemyintzaw/teashop-app/utils"
)

type AdminController struct {
	DB        *gorm.DB
	Orders    *services.OrderService
	Lifecycle *services.LifecycleService
	Analytics *services.AnalyticsService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		DB:        db,
		Orders:    services.NewOrderService(db),
		Lifecycle: services.NewLifecycleService(db),
		Analytics: services.NewAnalyticsService(db),
	}
}

// ListOrders -> semua order untuk manajemen, filter opsional
// ?customer_name= (substring) dan ?date= (YYYY-MM-DD).
func (ac *AdminController) ListOrders(c *gin.Context) {
	filter := services.OrderFilter{
		CustomerName: c.Query("customer_name"),
		Date:         c.Query("date"),
	}

	orders, err := ac.Orders.ListOrders(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// MarkAllReady -> semua order pending jadi ready sekaligus. Nol order
// pending bukan error, count-nya saja yang nol.
func (ac *AdminController) MarkAllReady(c *gin.Context) {
	count, err := ac.Lifecycle.MarkAllReady()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Orders marked ready"
	if count == 0 {
		message = "No pending orders"
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"success":        true,
		"affected_count": count,
	})
}

// MarkReady -> satu order pending => ready.
func (ac *AdminController) MarkReady(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := ac.Lifecycle.MarkReady(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order marked ready", order)
}

// CompleteOrder -> order => completed. Idempotent.
func (ac *AdminController) CompleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := ac.Lifecycle.Complete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

// DeleteOrder -> hapus permanen, item-item ikut terhapus.
func (ac *AdminController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := ac.Orders.DeleteOrder(uint(id)); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

// GetDailyTotals -> rekap hari bisnis (jam 12 siang s/d jam 12 siang
// besoknya). ?date=YYYY-MM-DD, default hari ini.
func (ac *AdminController) GetDailyTotals(c *gin.Context) {
	date := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	totals, err := ac.Analytics.DailyTotals(date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Daily totals", totals)
}

// GetMenuAnalytics -> popularitas per menu item, filter ?date= opsional
// (tanggal kalender, bukan jendela 12-12).
func (ac *AdminController) GetMenuAnalytics(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
	}

	stats, err := ac.Analytics.MenuAnalytics(date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu analytics", stats)
}
