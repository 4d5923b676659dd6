package main

import (
	"context"
	"gin-tourbooking/controllers"
	"gin-tourbooking/infra"
	"gin-tourbooking/middlewares"
	"gin-tourbooking/models"
	"gin-tourbooking/repositories"
	"gin-tourbooking/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, config *infra.Config) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, config.SecretKey, config.AdminEmails)
	authController := controllers.NewAuthController(authService)

	tourRepository := repositories.NewTourRepository(db)
	tourService := services.NewTourService(tourRepository)
	tourController := controllers.NewTourController(tourService, config.UploadDir)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository)
	cartController := controllers.NewCartController(cartService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", config.UploadDir)

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	authRequired := middlewares.AuthMiddleware(authService)
	adminRequired := middlewares.AdminRequired()

	r.GET("/users", authRequired, adminRequired, authController.ListUsers)

	tourRouter := r.Group("/tours")
	tourAdminRouter := r.Group("/tours", authRequired, adminRequired)

	tourRouter.GET("", tourController.FindAll)
	tourRouter.GET("/:id", tourController.FindById)
	tourRouter.GET("/:id/images", tourController.FindImages)
	tourRouter.GET("/:id/schedules", tourController.FindSchedules)
	tourAdminRouter.POST("", tourController.Create)
	tourAdminRouter.PUT("/:id", tourController.Update)
	tourAdminRouter.DELETE("/:id", tourController.Delete)
	tourAdminRouter.POST("/:id/images", tourController.UploadImage)
	tourAdminRouter.POST("/:id/schedules", tourController.CreateSchedule)

	cartRouter := r.Group("/cart", authRequired)
	cartRouter.GET("", cartController.GetCart)
	cartRouter.POST("/add", cartController.AddItem)
	cartRouter.DELETE("/remove/:tourId", cartController.RemoveItem)

	return r
}

func main() {
	infra.Initialize()

	config, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Tour{},
			&models.TourImage{},
			&models.TourSchedule{},
			&models.Cart{},
			&models.CartItem{},
		); err != nil {
			panic("Failed to migrate database")
		}
	}

	r := setupRouter(db, config)

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
