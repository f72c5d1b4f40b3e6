package controllers

import (
	"errors"
	"net/http"

	"github.com/ramkumarm15/OnlineShopping/pkg/resp"
	"github.com/ramkumarm15/OnlineShopping/services"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/authentication/token
func (a *AuthController) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "Username and Password is incorrect. Try again")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"accessToken": token,
		"username":    user.Username,
		"userId":      user.ID,
	})
}
