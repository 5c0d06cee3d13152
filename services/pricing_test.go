package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/phonemyintzaw/teashop-app/models"
)

func friedRiceWithEgg() models.MenuItem {
	return models.MenuItem{
		ID:        1,
		Name:      "Fried Rice",
		BasePrice: decimal.RequireFromString("5.00"),
		ItemType:  models.ItemTypeFriedRice,
		Options: []models.MenuItemOption{
			{ID: 10, MenuItemID: 1, OptionName: "Extra Egg", PriceModifier: decimal.RequireFromString("1.00")},
			{ID: 11, MenuItemID: 1, OptionName: "Less Oil", PriceModifier: decimal.RequireFromString("-0.50")},
		},
	}
}

func TestComputeLineTotalBasic(t *testing.T) {
	item := friedRiceWithEgg()

	total, err := ComputeLineTotal(item, nil, 1)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5.00").Equal(total), "got %s", total)
}

func TestComputeLineTotalWithOptionAndQuantity(t *testing.T) {
	item := friedRiceWithEgg()

	// 2 * (5.00 + 1.00) = 12.00
	total, err := ComputeLineTotal(item, []uint{10}, 2)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.00").Equal(total), "got %s", total)
}

func TestComputeLineTotalNegativeModifier(t *testing.T) {
	item := friedRiceWithEgg()

	// 3 * (5.00 + 1.00 - 0.50) = 16.50
	total, err := ComputeLineTotal(item, []uint{10, 11}, 3)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("16.50").Equal(total), "got %s", total)
}

func TestComputeLineTotalDedupesRepeatedOptions(t *testing.T) {
	item := friedRiceWithEgg()

	// id opsi adalah himpunan: [10,10] = satu telur, bukan dua
	total, err := ComputeLineTotal(item, []uint{10, 10}, 1)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6.00").Equal(total), "got %s", total)

	total, err = ComputeLineTotal(item, []uint{10, 11, 10, 11}, 2)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("11.00").Equal(total), "got %s", total)
}

func TestComputeLineTotalRejectsBadQuantity(t *testing.T) {
	item := friedRiceWithEgg()

	for _, qty := range []int{0, -1, -100} {
		_, err := ComputeLineTotal(item, nil, qty)
		assert.True(t, errors.Is(err, ErrInvalidQuantity), "qty=%d: %v", qty, err)
	}
}

func TestComputeLineTotalRejectsUnknownOption(t *testing.T) {
	item := friedRiceWithEgg()

	// 99 bukan opsi milik item ini
	_, err := ComputeLineTotal(item, []uint{10, 99}, 1)
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Contains(t, err.Error(), "99")
}

// Formula harus tahan untuk sembarang subset opsi dan quantity.
func TestComputeLineTotalFormula(t *testing.T) {
	item := friedRiceWithEgg()

	subsets := [][]uint{nil, {10}, {11}, {10, 11}}
	for _, subset := range subsets {
		for qty := 1; qty <= 5; qty++ {
			expected := item.BasePrice
			for _, id := range subset {
				for _, opt := range item.Options {
					if opt.ID == id {
						expected = expected.Add(opt.PriceModifier)
					}
				}
			}
			expected = expected.Mul(decimal.NewFromInt(int64(qty)))

			total, err := ComputeLineTotal(item, subset, qty)
			assert.NoError(t, err)
			assert.True(t, expected.Equal(total),
				"subset=%v qty=%d: expected %s got %s", subset, qty, expected, total)
		}
	}
}
