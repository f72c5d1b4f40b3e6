package controllers

import (
	"errors"
	"strconv"

	"github.com/ramkumarm15/OnlineShopping/pkg/resp"
	"github.com/ramkumarm15/OnlineShopping/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /api/products (public)
func (p *ProductController) List(c *gin.Context) {
	products, err := p.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(products) == 0 {
		resp.NotFound(c, "Product not available right now")
		return
	}
	resp.OK(c, products)
}

// GET /api/products/:id (public)
func (p *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := p.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /api/products (admin)
func (p *ProductController) Create(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := p.Svc.Create(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Product created")
}

// PUT /api/products/:id (admin)
func (p *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := p.Svc.Update(id, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Product updated")
}

// DELETE /api/products/:id (admin)
func (p *ProductController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := p.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Product deleted")
}
