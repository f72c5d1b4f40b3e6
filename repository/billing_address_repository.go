package repository

import (
	"errors"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

type BillingAddressRepository struct{ DB *gorm.DB }

func NewBillingAddressRepository(db *gorm.DB) *BillingAddressRepository {
	return &BillingAddressRepository{DB: db}
}

func (r *BillingAddressRepository) ListByUser(userID uint) ([]entity.BillingAddress, error) {
	var addrs []entity.BillingAddress
	if err := r.DB.Where("user_id = ?", userID).Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}

// FindByUser loads an address only when it belongs to the user.
func (r *BillingAddressRepository) FindByUser(tx *gorm.DB, id, userID uint) (*entity.BillingAddress, error) {
	var addr entity.BillingAddress
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &addr, nil
}

// ClearDefault drops the default flag from the user's current default address,
// skipping exceptID. Clearing when no default exists is a no-op.
func (r *BillingAddressRepository) ClearDefault(tx *gorm.DB, userID, exceptID uint) error {
	return tx.Model(&entity.BillingAddress{}).
		Where("user_id = ? AND is_default = ? AND id <> ?", userID, true, exceptID).
		Update("is_default", false).Error
}

// SetDefault promotes the address to the user's default. The previous holder
// is cleared first, inside the same transaction, so a user never ends up with
// two defaults.
func (r *BillingAddressRepository) SetDefault(userID, addressID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		target, err := r.FindByUser(tx, addressID, userID)
		if err != nil {
			return err
		}

		if err := r.ClearDefault(tx, userID, target.ID); err != nil {
			return err
		}

		target.Default = true
		return tx.Save(target).Error
	})
}
