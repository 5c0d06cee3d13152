package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/services"
	"github.com/phonemyintzaw/teashop-app/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

type orderItemRequest struct {
	MenuItemID      uint   `json:"menu_item_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	SelectedOptions []uint `json:"selected_options"`
}

type createOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	Items      []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder -> submit keranjang. Total dihitung ulang di server dari
// katalog; field harga apa pun dari klien diabaikan karena memang tidak
// pernah di-bind.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.OrderItemInput{
			MenuItemID:      it.MenuItemID,
			Quantity:        it.Quantity,
			SelectedOptions: it.SelectedOptions,
		})
	}

	order, err := oc.Orders.CreateOrder(req.CustomerID, items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyItems),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownOption),
			errors.Is(err, services.ErrMenuItemNotFound),
			errors.Is(err, services.ErrCustomerNotFound):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.ErrorLogger.Printf("create order failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError,
				errors.New("failed to submit order, please try again"))
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail satu order dengan item-itemnya.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetCustomerOrders -> riwayat order satu customer, terbaru dulu.
func (oc *OrderController) GetCustomerOrders(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customer_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	orders, err := oc.Orders.ListOrdersByCustomer(uint(customerID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer orders", orders)
}
