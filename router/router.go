package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/config"
	"github.com/phonemyintzaw/teashop-app/controllers"
	"github.com/phonemyintzaw/teashop-app/middlewares"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global (50 request per detik per IP), dipasang sebelum
	// route didaftarkan supaya semua handler melewatinya.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER (tanpa auth) --
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)

	r.GET("/menu", menuCtrl.GetMenu)

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/orders/customer/:customer_id", orderCtrl.GetCustomerOrders)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	// Auth dulu, lalu cek allow-list email — semuanya sebelum handler
	// menyentuh database.
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	admin.Use(middlewares.AdminOnly(cfg.AdminEmails))

	admin.GET("/profile", userCtrl.GetProfile)

	// Manajemen katalog
	admin.POST("/menu", menuCtrl.CreateMenuItem)
	admin.PUT("/menu/:menu_id", menuCtrl.UpdateMenuItem)
	admin.DELETE("/menu/:menu_id", menuCtrl.DeleteMenuItem)
	admin.POST("/menu/:menu_id/options", menuCtrl.CreateOption)
	admin.PUT("/menu/options/:option_id", menuCtrl.UpdateOption)
	admin.DELETE("/menu/options/:option_id", menuCtrl.DeleteOption)

	// Manajemen order
	admin.GET("/orders", adminCtrl.ListOrders)
	admin.POST("/orders/mark-all-ready", adminCtrl.MarkAllReady)
	admin.POST("/orders/:order_id/ready", adminCtrl.MarkReady)
	admin.POST("/orders/:order_id/complete", adminCtrl.CompleteOrder)
	admin.DELETE("/orders/:order_id", adminCtrl.DeleteOrder)

	// Analytics
	admin.GET("/daily-totals", adminCtrl.GetDailyTotals)
	admin.GET("/menu-analytics", adminCtrl.GetMenuAnalytics)

	return r
}
