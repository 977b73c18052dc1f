package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/recommendation_fx"
	"tripmate/cmd/fx/storage_fx"
	"tripmate/cmd/fx/upload_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		storage_fx.Module,
		account_fx.Module,
		recommendation_fx.Module,
		upload_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendationController *controllers.RecommendationController,
	uploadController *controllers.UploadController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendationController, uploadController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationController *controllers.RecommendationController,
	uploadController *controllers.UploadController,
	accountController *controllers.AccountController) {

	api := r.Group("/api")

	api.POST("/upload-itinerary", uploadController.UploadItineraryHandler)

	api.POST("/recommendations", recommendationController.CreateRecommendationHandler)
	api.GET("/recommendations", recommendationController.ListRecommendationsHandler)
	api.GET("/recommendations/:id", recommendationController.GetRecommendationHandler)

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
}
