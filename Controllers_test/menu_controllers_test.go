package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonemyintzaw/teashop-app/models"
)

func TestGetMenuGroupsOptions(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	seedCatalog(t, db)

	w := doJSON(t, r, "GET", "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Fried Rice", item["name"])
	options := item["options"].([]interface{})
	require.Len(t, options, 1)
	assert.Equal(t, "Extra Egg", options[0].(map[string]interface{})["option_name"])
}

func TestAdminCreateMenuItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := adminToken(t)

	w := doJSON(t, r, "POST", "/admin/menu", token, map[string]interface{}{
		"name":       "Milk Tea",
		"base_price": 1.50,
		"item_type":  "tea",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// item_type di luar enum ditolak
	w = doJSON(t, r, "POST", "/admin/menu", token, map[string]interface{}{
		"name":       "Pizza",
		"base_price": 8.00,
		"item_type":  "pizza",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tanpa token -> 401, katalog tidak berubah
	w = doJSON(t, r, "POST", "/admin/menu", "", map[string]interface{}{
		"name":       "Shan Noodle",
		"base_price": 3.00,
		"item_type":  "snack",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminDeleteMenuItemCascadesOptions(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := adminToken(t)
	item, _, _ := seedCatalog(t, db)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/admin/menu/%d", item.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var optCount int64
	db.Model(&models.MenuItemOption{}).Count(&optCount)
	assert.Equal(t, int64(0), optCount, "options must be deleted with their menu item")

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/admin/menu/%d", item.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminManageOptions(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t, db)
	token := adminToken(t)
	item, option, _ := seedCatalog(t, db)

	// Opsi baru dengan modifier negatif
	w := doJSON(t, r, "POST", fmt.Sprintf("/admin/menu/%d/options", item.ID), token, map[string]interface{}{
		"option_name":    "Less Oil",
		"price_modifier": -0.50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Update
	w = doJSON(t, r, "PUT", fmt.Sprintf("/admin/menu/options/%d", option.ID), token, map[string]interface{}{
		"option_name":    "Double Egg",
		"price_modifier": 2.00,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Double Egg", data["option_name"])

	// Delete
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/admin/menu/options/%d", option.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/admin/menu/options/%d", option.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Opsi untuk menu item yang tidak ada
	w = doJSON(t, r, "POST", "/admin/menu/999/options", token, map[string]interface{}{
		"option_name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
