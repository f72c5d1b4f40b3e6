package repository

import (
	"testing"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedAddress(t *testing.T, db *gorm.DB, userID uint, name string, isDefault bool) *entity.BillingAddress {
	t.Helper()

	addr := entity.BillingAddress{
		UserID:       userID,
		BillingName:  name,
		Address1:     "1 Main St",
		City:         "Chennai",
		State:        "TN",
		PostalCode:   600001,
		MobileNumber: "9876543210",
		Default:      isDefault,
	}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return &addr
}

func countDefaults(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	err := db.Model(&entity.BillingAddress{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&count).Error
	assert.NoError(t, err)
	return count
}

func TestSetDefaultPromotesAndDemotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	user, _ := seedUserWithCart(t, db, "alice")
	a := seedAddress(t, db, user.ID, "Home", true)
	b := seedAddress(t, db, user.ID, "Office", false)

	assert.NoError(t, repo.SetDefault(user.ID, b.ID))

	var reA, reB entity.BillingAddress
	assert.NoError(t, db.First(&reA, a.ID).Error)
	assert.NoError(t, db.First(&reB, b.ID).Error)
	assert.False(t, reA.Default)
	assert.True(t, reB.Default)
	assert.Equal(t, int64(1), countDefaults(t, db, user.ID))
}

func TestSetDefaultWithoutPrior(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	user, _ := seedUserWithCart(t, db, "alice")
	a := seedAddress(t, db, user.ID, "Home", false)

	assert.NoError(t, repo.SetDefault(user.ID, a.ID))

	var reA entity.BillingAddress
	assert.NoError(t, db.First(&reA, a.ID).Error)
	assert.True(t, reA.Default)
	assert.Equal(t, int64(1), countDefaults(t, db, user.ID))
}

func TestSetDefaultIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	user, _ := seedUserWithCart(t, db, "alice")
	a := seedAddress(t, db, user.ID, "Home", true)

	assert.NoError(t, repo.SetDefault(user.ID, a.ID))
	assert.NoError(t, repo.SetDefault(user.ID, a.ID))

	var reA entity.BillingAddress
	assert.NoError(t, db.First(&reA, a.ID).Error)
	assert.True(t, reA.Default)
	assert.Equal(t, int64(1), countDefaults(t, db, user.ID))
}

func TestSetDefaultForeignAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	alice, _ := seedUserWithCart(t, db, "alice")
	bob, _ := seedUserWithCart(t, db, "bob")
	aliceHome := seedAddress(t, db, alice.ID, "Home", true)
	bobHome := seedAddress(t, db, bob.ID, "Home", true)

	// promoting someone else's address must fail and mutate nothing
	err := repo.SetDefault(alice.ID, bobHome.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)

	var reAlice, reBob entity.BillingAddress
	assert.NoError(t, db.First(&reAlice, aliceHome.ID).Error)
	assert.NoError(t, db.First(&reBob, bobHome.ID).Error)
	assert.True(t, reAlice.Default)
	assert.True(t, reBob.Default)
	assert.Equal(t, int64(1), countDefaults(t, db, alice.ID))
	assert.Equal(t, int64(1), countDefaults(t, db, bob.ID))
}

func TestSetDefaultUnknownAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	user, _ := seedUserWithCart(t, db, "alice")

	err := repo.SetDefault(user.ID, 12345)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestClearDefaultWithoutPriorIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingAddressRepository(db)
	user, _ := seedUserWithCart(t, db, "alice")
	seedAddress(t, db, user.ID, "Home", false)

	assert.NoError(t, repo.ClearDefault(db, user.ID, 0))
	assert.Equal(t, int64(0), countDefaults(t, db, user.ID))
}
