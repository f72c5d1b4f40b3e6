package controllers

import (
	"errors"
	"net/http"

	"github.com/ramkumarm15/OnlineShopping/pkg/resp"
	"github.com/ramkumarm15/OnlineShopping/services"
	"github.com/ramkumarm15/OnlineShopping/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PasswordUpdateRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// POST /api/users (public)
func (u *UserController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.Svc.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			resp.BadRequest(c, "Username already exists")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Profile created successfully", "user": user})
}

// GET /api/users/me
func (u *UserController) Me(c *gin.Context) {
	user, err := u.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "No user found")
		return
	}
	resp.OK(c, user)
}

// PUT /api/users/update
func (u *UserController) Update(c *gin.Context) {
	var req services.UserUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.Svc.Update(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No user found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Profile updated", "user": user})
}

// PATCH /api/users/update/password
func (u *UserController) UpdatePassword(c *gin.Context) {
	var req PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := u.Svc.UpdatePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordConfirmation):
			resp.BadRequest(c, "Password doesn't match. ReType")
		case errors.Is(err, services.ErrOldPasswordIncorrect):
			resp.BadRequest(c, "Old password is incorrect")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "User not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Message(c, "Password Updated")
}

// DELETE /api/users/delete
func (u *UserController) Delete(c *gin.Context) {
	if err := u.Svc.Delete(utils.CurrentUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "User not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Deleted user")
}
