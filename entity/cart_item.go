package entity

import (
	"gorm.io/gorm"
)

// CartItem holds at most one row per (cart, product); the composite unique
// index backs the merge-on-add rule at the storage level.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_product"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product   Product `json:"product"`

	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}
