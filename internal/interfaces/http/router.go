package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/auth"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/stock"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	FournisseurUC *usecase.FournisseurUseCase
	TransactionUC *usecase.TransactionUseCase
	ItemTypeUC    *usecase.ItemTypeUseCase
	PrixUC        *usecase.PrixUseCase
	StockUC       *stock.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Fournisseurs
	fournisseurs := protected.Group("/fournisseurs")
	fournisseurHandler := NewFournisseurHandler(deps.FournisseurUC)
	fournisseurs.Get("/", fournisseurHandler.List)
	fournisseurs.Post("/", fournisseurHandler.Create)
	fournisseurs.Get("/:id", fournisseurHandler.GetByID)
	fournisseurs.Get("/:id/solde", fournisseurHandler.Solde)
	fournisseurs.Put("/:id", fournisseurHandler.Update)
	fournisseurs.Delete("/:id", fournisseurHandler.Delete)

	// Transactions (achats et virements)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Types d'articles
	itemTypes := protected.Group("/item_types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypeUC)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Post("/", itemTypeHandler.Create)
	itemTypes.Get("/:id", itemTypeHandler.GetByID)
	itemTypes.Put("/:id", itemTypeHandler.Update)
	itemTypes.Delete("/:id", itemTypeHandler.Delete)

	// Stock : articles, couleurs, mouvements, inventaires
	stockHandler := NewStockHandler(deps.StockUC)

	stockItems := protected.Group("/stock_items")
	stockItems.Get("/", stockHandler.ListItems)
	stockItems.Post("/", stockHandler.CreateItem)
	stockItems.Get("/:id", stockHandler.GetItem)
	stockItems.Put("/:id", stockHandler.UpdateItem)
	stockItems.Delete("/:id", stockHandler.DeleteItem)
	stockItems.Post("/:id/reset", stockHandler.ResetItem)

	colorStocks := protected.Group("/color_stocks")
	colorStocks.Post("/", stockHandler.CreateColor)
	colorStocks.Put("/:id", stockHandler.UpdateColor)
	colorStocks.Delete("/:id", stockHandler.DeleteColor)
	colorStocks.Post("/:id/reset", stockHandler.ResetColor)

	protected.Get("/stock_movements", stockHandler.ListMovements)
	protected.Post("/stock_movements", stockHandler.CreateMovement)
	protected.Get("/color_stock_movements", stockHandler.ListColorMovements)
	protected.Post("/color_stock_movements", stockHandler.CreateMovement)

	// Prix (fournitures et appareils)
	prix := protected.Group("/prix")
	prixHandler := NewPrixHandler(deps.PrixUC)
	prix.Get("/", prixHandler.List)
	prix.Post("/", prixHandler.Create)
	prix.Get("/:id", prixHandler.GetByID)
	prix.Put("/:id", prixHandler.Update)
	prix.Delete("/:id", prixHandler.Delete)
}
