package repository

import (
	"errors"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartItemRequest identifies the product and quantity of a cart mutation.
// Quantity is optional on add; the engine falls back to 1.
type CartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CartResponse is built fresh per operation.
type CartResponse struct {
	Message string `json:"message"`
}

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems loads the user's cart with items and their products.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart reads the user's cart, creating an empty one on first access.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, TotalPrice: 0}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Add inserts a new line for the product, or merges into the existing one by
// delegating to Update (add of a present product overwrites the quantity, it
// never duplicates the line). The cart total grows by the new line's total.
func (r *CartRepository) Add(tx *gorm.DB, cart *entity.Cart, req *CartItemRequest) (*CartResponse, error) {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&exist).Error
	if err == nil {
		return r.Update(tx, cart, req)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var product entity.Product
	if err := tx.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// by default quantity is 1
	qty := req.Quantity
	if qty <= 1 {
		qty = 1
	}
	lineTotal := float64(qty) * product.Price

	item := entity.CartItem{
		CartID:     cart.ID,
		ProductID:  product.ID,
		Quantity:   qty,
		TotalPrice: lineTotal,
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, err
	}

	cart.TotalPrice += lineTotal
	if err := tx.Save(cart).Error; err != nil {
		return nil, err
	}

	return &CartResponse{Message: "Product added"}, nil
}

// Update overwrites the line's quantity (no minimum applied here; only Add
// falls back to 1) and recomputes the cart total from every line currently in
// the cart, so the stored total reconverges even if it had drifted.
func (r *CartRepository) Update(tx *gorm.DB, cart *entity.Cart, req *CartItemRequest) (*CartResponse, error) {
	var product entity.Product
	if err := tx.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var item entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	item.Quantity = req.Quantity
	item.TotalPrice = float64(req.Quantity) * product.Price
	if err := tx.Save(&item).Error; err != nil {
		return nil, err
	}

	var items []entity.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}

	cart.TotalPrice = total
	if err := tx.Save(cart).Error; err != nil {
		return nil, err
	}

	return &CartResponse{Message: "Product updated"}, nil
}

// Remove deletes the line and subtracts its total from the cart; the delta is
// locally known, so no full re-sum is needed here.
func (r *CartRepository) Remove(tx *gorm.DB, cart *entity.Cart, req *CartItemRequest) (*CartResponse, error) {
	var item entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	cart.TotalPrice -= item.TotalPrice

	// hard delete: a soft-deleted row would still occupy the unique
	// (cart_id, product_id) slot and block re-adding the product
	if err := tx.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	if err := tx.Save(cart).Error; err != nil {
		return nil, err
	}

	return &CartResponse{Message: "Product deleted"}, nil
}
