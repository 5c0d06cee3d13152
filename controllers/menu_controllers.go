package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/models"
	"github.com/phonemyintzaw/teashop-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> seluruh katalog beserta opsinya, urut item_type lalu nama.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_item_options.option_name ASC")
	}).Order("item_type, name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu list", items)
}

type menuItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
	ItemType  string          `json:"item_type" binding:"required"`
}

// CreateMenuItem (admin)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if !models.ValidItemType(req.ItemType) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item_type"))
		return
	}
	if req.BasePrice.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("base_price must not be negative"))
		return
	}

	item := models.MenuItem{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		ItemType:  req.ItemType,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem (admin). Order lama tidak ikut berubah, item_total sudah
// dibekukan di order_items.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if !models.ValidItemType(req.ItemType) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item_type"))
		return
	}
	if req.BasePrice.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("base_price must not be negative"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	item.Name = req.Name
	item.BasePrice = req.BasePrice
	item.ItemType = req.ItemType
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem (admin) -> hapus opsi-opsinya dulu, lalu item-nya, dalam
// satu transaksi. Order item historis tidak disentuh.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"menu_id": id})
}

type optionRequest struct {
	OptionName    string          `json:"option_name" binding:"required"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// CreateOption (admin) -> opsi baru untuk satu menu item. Modifier boleh
// negatif.
func (mc *MenuController) CreateOption(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, menuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	option := models.MenuItemOption{
		MenuItemID:    item.ID,
		OptionName:    req.OptionName,
		PriceModifier: req.PriceModifier,
	}
	if err := mc.DB.Create(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Option created", option)
}

// UpdateOption (admin)
func (mc *MenuController) UpdateOption(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("option_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option id"))
		return
	}

	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	var option models.MenuItemOption
	if err := mc.DB.First(&option, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("option not found"))
		return
	}

	option.OptionName = req.OptionName
	option.PriceModifier = req.PriceModifier
	if err := mc.DB.Save(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Option updated", option)
}

// DeleteOption (admin)
func (mc *MenuController) DeleteOption(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("option_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option id"))
		return
	}

	res := mc.DB.Delete(&models.MenuItemOption{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("option not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Option deleted", gin.H{"option_id": id})
}
