package services

import (
	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/ramkumarm15/OnlineShopping/repository"
)

type ProductIn struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
}

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List() ([]entity.Product, error) {
	return s.Repo.ListActive()
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	return s.Repo.FindByID(id)
}

// Create stores a new product; products start active.
func (s *ProductService) Create(in *ProductIn) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		IsActive:    true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(id uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Slug = in.Slug
	p.Description = in.Description
	p.Price = in.Price
	p.Image = in.Image

	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(id uint) error {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(p)
}
