package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramkumarm15/OnlineShopping/configs"
	"github.com/ramkumarm15/OnlineShopping/entity"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"github.com/ramkumarm15/OnlineShopping/routes"
	"github.com/ramkumarm15/OnlineShopping/services"
	"github.com/ramkumarm15/OnlineShopping/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq uint64

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrltest%d?mode=memory&cache=shared", atomic.AddUint64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.BillingAddress{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func registerUser(t *testing.T, db *gorm.DB, cfg *configs.Config, username, role string) (*entity.User, string) {
	t.Helper()

	svc := services.NewUserService(db, repository.NewUserRepository(db))
	user, err := svc.Register(&services.RegisterIn{
		Username: username,
		Password: "secret123",
		Name:     "Test User",
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	if role != "user" {
		if err := db.Model(user).Update("role", role).Error; err != nil {
			t.Fatalf("set role: %v", err)
		}
		user.Role = role
	}

	token, err := utils.GenerateToken(user.ID, user.Role, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()

	p := entity.Product{Name: name, Slug: name, Price: price, IsActive: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return &p
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
