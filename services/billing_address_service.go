package services

import (
	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"gorm.io/gorm"
)

type BillingAddressIn struct {
	BillingName    string `json:"billingName" binding:"required"`
	Address1       string `json:"address1" binding:"required"`
	Address2       string `json:"address2"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	PostalCode     int    `json:"postalCode" binding:"required"`
	MobileNumber   string `json:"mobileNumber" binding:"required"`
	DefaultAddress bool   `json:"defaultAddress"`
}

type BillingAddressService struct {
	DB   *gorm.DB
	Repo *repository.BillingAddressRepository
}

func NewBillingAddressService(db *gorm.DB, r *repository.BillingAddressRepository) *BillingAddressService {
	return &BillingAddressService{DB: db, Repo: r}
}

func (s *BillingAddressService) List(userID uint) ([]entity.BillingAddress, error) {
	return s.Repo.ListByUser(userID)
}

func (s *BillingAddressService) Get(userID, id uint) (*entity.BillingAddress, error) {
	return s.Repo.FindByUser(s.DB, id, userID)
}

// Create stores a new address; when the request marks it default, the previous
// default is cleared in the same transaction before the row is written.
func (s *BillingAddressService) Create(userID uint, in *BillingAddressIn) (*entity.BillingAddress, error) {
	addr := &entity.BillingAddress{
		UserID:       userID,
		BillingName:  in.BillingName,
		Address1:     in.Address1,
		Address2:     in.Address2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		MobileNumber: in.MobileNumber,
		Default:      in.DefaultAddress,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.DefaultAddress {
			if err := s.Repo.ClearDefault(tx, userID, 0); err != nil {
				return err
			}
		}
		return tx.Create(addr).Error
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// Update rewrites the address fields. A true defaultAddress flag promotes the
// row (clearing the previous default first); a false flag leaves the current
// default designation untouched.
func (s *BillingAddressService) Update(userID, id uint, in *BillingAddressIn) (*entity.BillingAddress, error) {
	var addr *entity.BillingAddress
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		addr, err = s.Repo.FindByUser(tx, id, userID)
		if err != nil {
			return err
		}

		if in.DefaultAddress {
			if err := s.Repo.ClearDefault(tx, userID, addr.ID); err != nil {
				return err
			}
			addr.Default = true
		}

		addr.BillingName = in.BillingName
		addr.Address1 = in.Address1
		addr.Address2 = in.Address2
		addr.City = in.City
		addr.State = in.State
		addr.PostalCode = in.PostalCode
		addr.MobileNumber = in.MobileNumber

		return tx.Save(addr).Error
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// Delete removes the address. Deleting the default never promotes another
// address; the user may be left with no default.
func (s *BillingAddressService) Delete(userID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		addr, err := s.Repo.FindByUser(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(addr).Error
	})
}

func (s *BillingAddressService) SetDefault(userID, addressID uint) error {
	return s.Repo.SetDefault(userID, addressID)
}
