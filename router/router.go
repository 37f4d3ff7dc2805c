package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"pagamentos/api"
	"pagamentos/config"
	_ "pagamentos/docs"
	"pagamentos/export"
	"pagamentos/middleware"
	"pagamentos/repository"
	"pagamentos/service"
)

// Login attempts allowed per client IP and window
const (
	loginMaxAttempts = 10
	loginWindow      = time.Minute
)

// SetupRouter wires repositories, services and handlers on db.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(slog.Default()))
	r.Use(middleware.Metrics())
	r.Use(CORSMiddleware())

	payments := service.NewPaymentService(repository.NewPaymentRepository(db))
	auth := service.NewAuthService(repository.NewUserRepository(db))
	receipts := export.NewReceiptRenderer(export.ReceiptOptions{
		LogoPath: cfg.Receipt.LogoPath,
		Location: cfg.Receipt.Location(),
		Compress: cfg.Receipt.Compress,
	})

	authHandler := api.NewAuthHandler(cfg, auth)
	paymentHandler := api.NewPaymentHandler(payments)
	exportHandler := api.NewExportHandler(payments, receipts, service.NewEmailService(&cfg.Email))

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", middleware.LoginRateLimit(loginMaxAttempts, loginWindow), authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			p := authorized.Group("/payments")
			{
				p.POST("", paymentHandler.Create)
				p.GET("", paymentHandler.List)
				p.GET("/export/excel", exportHandler.ExportExcel)
				p.GET("/:id", paymentHandler.Get)
				p.PUT("/:id", paymentHandler.Update)
				p.DELETE("/:id", paymentHandler.Delete)
				p.GET("/:id/receipt", exportHandler.Receipt)
				p.POST("/:id/receipt/email", exportHandler.EmailReceipt)
			}
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		status, body := http.StatusOK, gin.H{"status": "ok"}
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, body = http.StatusServiceUnavailable, gin.H{"status": "database unavailable"}
		}
		c.JSON(status, body)
	})

	return r
}

// CORSMiddleware CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
