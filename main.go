package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CesarAntIT/SmallDeliverySystem/config"
	"github.com/CesarAntIT/SmallDeliverySystem/database"
	"github.com/CesarAntIT/SmallDeliverySystem/logger"
	"github.com/CesarAntIT/SmallDeliverySystem/middleware"
	"github.com/CesarAntIT/SmallDeliverySystem/repository"
	"github.com/CesarAntIT/SmallDeliverySystem/routes"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}

	productService := services.NewProductService(repository.NewProductRepository(db), log)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(middleware.Prometheus())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-Id"},
		AllowCredentials: false,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, db, productService)

	log.Infof("server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
