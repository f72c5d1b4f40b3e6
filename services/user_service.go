package services

import (
	"errors"
	"strings"

	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrPasswordConfirmation = errors.New("passwords do not match")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
)

type RegisterIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	About    string `json:"about"`
	City     string `json:"city"`
}

type UserUpdateIn struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	About string `json:"about"`
	City  string `json:"city"`
}

type UserService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository) *UserService {
	return &UserService{DB: db, Repo: repo}
}

// Register creates the user and their cart in one transaction; every account
// starts with an empty zero-total cart.
func (s *UserService) Register(in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		About:    in.About,
		City:     in.City,
		Role:     "user",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		cart := entity.Cart{UserID: user.ID, TotalPrice: 0}
		return tx.Create(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}

func (s *UserService) Update(userID uint, in *UserUpdateIn) (*entity.User, error) {
	updates := map[string]any{
		"name":  strings.TrimSpace(in.Name),
		"email": strings.TrimSpace(in.Email),
		"about": in.About,
		"city":  in.City,
	}
	if err := s.Repo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(userID)
}

// UpdatePassword requires the old password and a matching confirmation.
func (s *UserService) UpdatePassword(userID uint, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordConfirmation
	}

	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrOldPasswordIncorrect
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.Repo.Update(userID, map[string]any{"password": string(hashed)})
}

// Delete removes the user and cascades their cart, cart items and billing
// addresses in one transaction. Deletes are unscoped: the username and cart
// rows carry unique indexes, and a soft-deleted row would keep the slot
// occupied and block re-registration.
func (s *UserService) Delete(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if err == nil {
			if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&cart).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.BillingAddress{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.User{}, userID).Error
	})
}
