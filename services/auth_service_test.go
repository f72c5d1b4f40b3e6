package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"github.com/stretchr/testify/assert"
)

func TestLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, newUserService(db), "alice")

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	token, loggedIn, err := svc.Login("alice", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, "user", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	registerUser(t, newUserService(db), "alice")

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	_, _, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	_, _, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
