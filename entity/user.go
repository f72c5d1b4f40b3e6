package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	About    string `json:"about"`
	City     string `json:"city"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// relations, preload only when needed
	BillingAddresses []BillingAddress `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Cart             *Cart            `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
