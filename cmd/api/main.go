package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/auth"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/stock"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/anmolvishvas/gestion-entreprise-sub000/internal/interfaces/http"
	"github.com/anmolvishvas/gestion-entreprise-sub000/pkg/config"
	"github.com/anmolvishvas/gestion-entreprise-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	itemTypeRepo := postgres.NewItemTypeRepository(pool)
	prixRepo := postgres.NewPrixRepository(pool)
	stockItemRepo := postgres.NewStockItemRepository(pool)
	colorStockRepo := postgres.NewColorStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	colorMovementRepo := postgres.NewColorStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo, transactionRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, fournisseurRepo)
	itemTypeUC := usecase.NewItemTypeUseCase(itemTypeRepo)
	prixUC := usecase.NewPrixUseCase(prixRepo)
	stockUC := stock.NewUseCase(stockItemRepo, colorStockRepo, movementRepo, colorMovementRepo, itemTypeRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Entreprise API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FournisseurUC: fournisseurUC,
		TransactionUC: transactionUC,
		ItemTypeUC:    itemTypeUC,
		PrixUC:        prixUC,
		StockUC:       stockUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
