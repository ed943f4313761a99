package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"steamwiki/cmd/fx/config_fx"
	"steamwiki/cmd/fx/content_fx"
	"steamwiki/cmd/fx/controllers_fx"
	"steamwiki/cmd/fx/db_fx"
	"steamwiki/cmd/fx/migration_fx"
	"steamwiki/cmd/fx/steam_fx"
	"steamwiki/cmd/fx/storage_fx"
	"steamwiki/cmd/fx/users_fx"
	"steamwiki/internal/api/controllers"
	"steamwiki/internal/config"
	"steamwiki/internal/repositories"
	"steamwiki/pkg/middleware"
	"steamwiki/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		steam_fx.Module,
		users_fx.Module,
		content_fx.Module,
		migration_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	authController *controllers.AuthController,
	wikiController *controllers.WikiController,
	userRepo repositories.UserRepository,
	signer *utils.SessionSigner) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AuthMiddleware(userRepo, signer))

	RegisterRoutes(r, authController, wikiController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	wikiController *controllers.WikiController) {

	r.Any("/auth", authController.Handle)
	r.Any("/wiki", wikiController.Dispatch)
}
