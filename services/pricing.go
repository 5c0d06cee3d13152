package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phonemyintzaw/teashop-app/models"
)

// ComputeLineTotal menghitung harga satu baris order:
//
//	unit_price = base_price + sum(price_modifier opsi terpilih)
//	line_total = unit_price * quantity
//
// Murni, tanpa I/O. Opsi item harus sudah dimuat di item.Options; id opsi
// yang tidak dimiliki item ditolak dengan ErrUnknownOption. Id opsi adalah
// himpunan: id yang dikirim dobel hanya dihitung satu kali. Harga klien
// tidak pernah dipakai, total selalu dihitung ulang dari katalog.
func ComputeLineTotal(item models.MenuItem, selected []uint, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	unitPrice := item.BasePrice
	seen := make(map[uint]bool, len(selected))
	for _, optID := range selected {
		if seen[optID] {
			continue
		}
		seen[optID] = true
		opt, ok := findOption(item.Options, optID)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: option %d, menu item %d", ErrUnknownOption, optID, item.ID)
		}
		unitPrice = unitPrice.Add(opt.PriceModifier)
	}

	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

func findOption(options []models.MenuItemOption, id uint) (models.MenuItemOption, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return models.MenuItemOption{}, false
}
