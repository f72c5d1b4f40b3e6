package repository

import (
	"github.com/ramkumarm15/OnlineShopping/entity"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ListActive returns products visible to the storefront.
func (r *ProductRepository) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(p *entity.Product) error {
	return r.DB.Delete(p).Error
}
