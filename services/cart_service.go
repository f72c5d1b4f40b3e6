package services

import (
	"errors"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"gorm.io/gorm"
)

// Cart operations accepted by POST /api/cartitem.
const (
	CartOpAdd    = "add"
	CartOpUpdate = "update"
	CartOpDelete = "delete"
)

var ErrUnknownCartOperation = errors.New("unknown cart operation")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	if _, err := s.CartRepo.GetOrCreateCart(s.DB, userID); err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

// Apply resolves the user's cart and dispatches the operation into the
// aggregation engine; every line-item insert pairs with its cart update inside
// one transaction.
func (s *CartService) Apply(userID uint, op string, req *repository.CartItemRequest) (*repository.CartResponse, error) {
	var res *repository.CartResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		switch op {
		case CartOpAdd:
			res, err = s.CartRepo.Add(tx, cart, req)
		case CartOpUpdate:
			res, err = s.CartRepo.Update(tx, cart, req)
		case CartOpDelete:
			res, err = s.CartRepo.Remove(tx, cart, req)
		default:
			err = ErrUnknownCartOperation
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
