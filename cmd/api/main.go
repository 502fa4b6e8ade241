package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tenine/internal/config"
	"tenine/internal/database"
	"tenine/internal/middleware"
	"tenine/internal/modules/notification"
	"tenine/internal/modules/reservation"
)

func main() {
	// Local development reads credentials from .env; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&reservation.Reservation{}); err != nil {
		log.Fatal(err)
	}

	mailer := notification.NewMailer(cfg.EmailUser, cfg.EmailPassword)
	repo := reservation.NewRepository(db)
	service := reservation.NewService(repo, mailer, cfg.PublicBaseURL)
	handler := reservation.NewHandler(service)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		handler.RegisterRoutes(api)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
