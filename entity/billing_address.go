package entity

import (
	"gorm.io/gorm"
)

// BillingAddress: a user may keep many, but at most one carries the default flag.
type BillingAddress struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	BillingName  string `json:"billingName"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   int    `json:"postalCode"`
	MobileNumber string `json:"mobileNumber"`

	Default bool `gorm:"column:is_default" json:"default"`
}
