package entity

import (
	"gorm.io/gorm"
)

// Cart is unique to its user; TotalPrice mirrors the sum of Items' TotalPrice.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	TotalPrice float64 `json:"totalPrice"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
