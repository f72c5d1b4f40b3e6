package routes

import (
	"github.com/ramkumarm15/OnlineShopping/configs"
	"github.com/ramkumarm15/OnlineShopping/controllers"
	"github.com/ramkumarm15/OnlineShopping/middlewares"
	"github.com/ramkumarm15/OnlineShopping/repository"
	"github.com/ramkumarm15/OnlineShopping/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	addressRepo := repository.NewBillingAddressRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(db, userRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(db, cartRepo)
	addressSvc := services.NewBillingAddressService(db, addressRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	addressCtrl := controllers.NewBillingAddressController(addressSvc)

	userAuth := middlewares.AuthMiddleware(cfg.JWTSecret, "user", "admin")
	adminAuth := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Authentication (public)
	api.POST("/authentication/token", authCtrl.Token)

	// Users
	api.POST("/users", userCtrl.Register)
	users := api.Group("/users", userAuth)
	{
		users.GET("/me", userCtrl.Me)
		users.PUT("/update", userCtrl.Update)
		users.PATCH("/update/password", userCtrl.UpdatePassword)
		users.DELETE("/delete", userCtrl.Delete)
	}

	// Products (public reads, admin writes)
	api.GET("/products", productCtrl.List)
	api.GET("/products/:id", productCtrl.Get)
	products := api.Group("/products", adminAuth)
	{
		products.POST("", productCtrl.Create)
		products.PUT("/:id", productCtrl.Update)
		products.DELETE("/:id", productCtrl.Delete)
	}

	// Cart
	api.GET("/cart", userAuth, cartCtrl.Get)
	api.POST("/cartitem", userAuth, cartCtrl.Apply)

	// Billing addresses
	addresses := api.Group("/billingaddress", userAuth)
	{
		addresses.GET("", addressCtrl.List)
		addresses.GET("/:id", addressCtrl.Get)
		addresses.POST("", addressCtrl.Create)
		addresses.PUT("/default", addressCtrl.SetDefault)
		addresses.PUT("/:id", addressCtrl.Update)
		addresses.DELETE("/:id", addressCtrl.Delete)
	}
}
