package controllers

import (
	"errors"
	"net/http"

	"github.com/ramkumarm15/OnlineShopping/pkg/resp"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"github.com/ramkumarm15/OnlineShopping/services"
	"github.com/ramkumarm15/OnlineShopping/utils"

	"github.com/gin-gonic/gin"
)

type DefaultAddressRequest struct {
	AddressID uint `json:"addressId" binding:"required"`
}

type BillingAddressController struct{ Svc *services.BillingAddressService }

func NewBillingAddressController(s *services.BillingAddressService) *BillingAddressController {
	return &BillingAddressController{Svc: s}
}

// GET /api/billingaddress
func (h *BillingAddressController) List(c *gin.Context) {
	addrs, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

// GET /api/billingaddress/:id
func (h *BillingAddressController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	addr, err := h.Svc.Get(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			resp.NotFound(c, "Address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addr)
}

// POST /api/billingaddress
func (h *BillingAddressController) Create(c *gin.Context) {
	var req services.BillingAddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := h.Svc.Create(utils.CurrentUserID(c), &req); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Address Added Successfully"})
}

// PUT /api/billingaddress/:id
func (h *BillingAddressController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.BillingAddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := h.Svc.Update(utils.CurrentUserID(c), id, &req); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			resp.NotFound(c, "Cannot find the address")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Address updated")
}

// DELETE /api/billingaddress/:id
func (h *BillingAddressController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(utils.CurrentUserID(c), id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			resp.NotFound(c, "Address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Deleted successfully")
}

// PUT /api/billingaddress/default
func (h *BillingAddressController) SetDefault(c *gin.Context) {
	var req DefaultAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetDefault(utils.CurrentUserID(c), req.AddressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			resp.NotFound(c, "Address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Default address updated")
}
