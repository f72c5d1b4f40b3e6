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

// CartPayload carries one cart mutation: operation add|update|delete plus the
// product/quantity it applies to.
type CartPayload struct {
	Operation string                     `json:"operation" binding:"required"`
	Data      repository.CartItemRequest `json:"data" binding:"required"`
}

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cartitem
func (h *CartController) Apply(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var payload CartPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.Apply(uid, payload.Operation, &payload.Data)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			resp.NotFound(c, "Product not found")
		case errors.Is(err, repository.ErrCartItemNotFound):
			resp.NotFound(c, "Product not found in cart")
		case errors.Is(err, services.ErrUnknownCartOperation):
			resp.BadRequest(c, "Cannot add product right now")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": res.Message})
}
