package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func addressBody(name string, isDefault bool) map[string]any {
	return map[string]any{
		"billingName":    name,
		"address1":       "1 Main St",
		"address2":       "",
		"city":           "Chennai",
		"state":          "TN",
		"postalCode":     600001,
		"mobileNumber":   "9876543210",
		"defaultAddress": isDefault,
	}
}

func userDefaults(t *testing.T, db *gorm.DB, userID uint) []entity.BillingAddress {
	t.Helper()

	var addrs []entity.BillingAddress
	err := db.Where("user_id = ? AND is_default = ?", userID, true).Find(&addrs).Error
	assert.NoError(t, err)
	return addrs
}

func TestAddressCreateAndDefaultFlow(t *testing.T) {
	r, db, cfg := setupRouter(t)
	user, token := registerUser(t, db, cfg, "alice", "user")

	w := doJSON(r, http.MethodPost, "/api/billingaddress", token, addressBody("Home", true))
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Address Added Successfully", decodeBody(t, w)["message"])

	// second default demotes the first
	w = doJSON(r, http.MethodPost, "/api/billingaddress", token, addressBody("Office", true))
	assertStatus(t, w, http.StatusOK)

	defaults := userDefaults(t, db, user.ID)
	assert.Len(t, defaults, 1)
	assert.Equal(t, "Office", defaults[0].BillingName)

	// promote back explicitly
	var home entity.BillingAddress
	assert.NoError(t, db.Where("user_id = ? AND billing_name = ?", user.ID, "Home").First(&home).Error)

	w = doJSON(r, http.MethodPut, "/api/billingaddress/default", token, map[string]any{"addressId": home.ID})
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Default address updated", decodeBody(t, w)["message"])

	defaults = userDefaults(t, db, user.ID)
	assert.Len(t, defaults, 1)
	assert.Equal(t, "Home", defaults[0].BillingName)
}

func TestAddressUpdateAndDelete(t *testing.T) {
	r, db, cfg := setupRouter(t)
	user, token := registerUser(t, db, cfg, "alice", "user")

	w := doJSON(r, http.MethodPost, "/api/billingaddress", token, addressBody("Home", false))
	assertStatus(t, w, http.StatusOK)

	var home entity.BillingAddress
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&home).Error)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/billingaddress/%d", home.ID), token, addressBody("Home Renamed", false))
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Address updated", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/billingaddress/%d", home.ID), token, nil)
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Deleted successfully", decodeBody(t, w)["message"])

	var count int64
	db.Model(&entity.BillingAddress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSetDefaultForeignAddressOverHTTP(t *testing.T) {
	r, db, cfg := setupRouter(t)
	_, aliceToken := registerUser(t, db, cfg, "alice", "user")
	bob, bobToken := registerUser(t, db, cfg, "bob", "user")

	w := doJSON(r, http.MethodPost, "/api/billingaddress", bobToken, addressBody("Bob Home", true))
	assertStatus(t, w, http.StatusOK)

	var theirs entity.BillingAddress
	assert.NoError(t, db.Where("user_id = ?", bob.ID).First(&theirs).Error)

	w = doJSON(r, http.MethodPut, "/api/billingaddress/default", aliceToken, map[string]any{"addressId": theirs.ID})
	assertStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Address not found", decodeBody(t, w)["message"])

	// bob's address is untouched
	var reloaded entity.BillingAddress
	assert.NoError(t, db.First(&reloaded, theirs.ID).Error)
	assert.True(t, reloaded.Default)
}
