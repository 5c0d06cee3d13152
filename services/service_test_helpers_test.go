package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/models"
)

// setupTestDB membuka sqlite in-memory terpisah per test. Nama DSN unik
// supaya pool koneksi gorm tetap menunjuk database yang sama.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Customer{},
		&models.MenuItem{},
		&models.MenuItemOption{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: "0912345678"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, itemType, price string) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:      name,
		BasePrice: decimal.RequireFromString(price),
		ItemType:  itemType,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedOption(t *testing.T, db *gorm.DB, menuItemID uint, name, modifier string) models.MenuItemOption {
	t.Helper()
	opt := models.MenuItemOption{
		MenuItemID:    menuItemID,
		OptionName:    name,
		PriceModifier: decimal.RequireFromString(modifier),
	}
	require.NoError(t, db.Create(&opt).Error)
	return opt
}
