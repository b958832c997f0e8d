package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/stock"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// StockHandler gère les requêtes HTTP du stock : articles, couleurs,
// mouvements et inventaires (protégé).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

func stockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la ressource existe déjà"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "état incompatible avec l'opération"})
	case domain.ErrStockInsuffisant:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFFISANT", Message: "stock insuffisant pour cette sortie"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreateItem godoc
// @Summary      Créer un article de stock
// @Tags         stock_items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "reference, name, type (IRI ou objet), location, unit, stockInitial, hasColors, colorStocks"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock_items [post]
func (h *StockHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListItems godoc
// @Summary      Lister les articles de stock
// @Tags         stock_items
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Recherche sur référence et nom"
// @Param        location      query  string  false  "Cotona | Maison | Avishay | Avenir | all"
// @Param        type          query  string  false  "Filtrer par ID de type"
// @Param        sort          query  string  false  "name | reference | stock"  default(name)
// @Param        order         query  string  false  "asc | desc"
// @Param        page          query  int     false  "Page"                      default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"            default(20)
// @Success      200  {object}  dto.Collection[dto.StockItemResponse]
// @Router       /api/stock_items [get]
func (h *StockHandler) ListItems(c *fiber.Ctx) error {
	all, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.MatchText(p.Search, func(i dto.StockItemResponse) []string {
			return []string{i.Reference, i.Name}
		}),
		listing.MatchCategory(c.Query("location"), func(i dto.StockItemResponse) string {
			return i.Location
		}),
		listing.MatchCategory(c.Query("type"), func(i dto.StockItemResponse) string {
			return i.Type.ID
		}),
	)
	col := listing.NewCollator()
	var less func(a, b dto.StockItemResponse) bool
	switch p.Sort {
	case "reference":
		less = func(a, b dto.StockItemResponse) bool { return col.Less(a.Reference, b.Reference) }
	case "stock":
		less = func(a, b dto.StockItemResponse) bool { return itemStock(a) < itemStock(b) }
	default:
		less = func(a, b dto.StockItemResponse) bool { return col.Less(a.Name, b.Name) }
	}
	sorted := listing.SortBy(filtered, less, p.Desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}

// itemStock clé de tri numérique : restant si renseigné, sinon initial.
func itemStock(i dto.StockItemResponse) int {
	if i.StockRestant != nil {
		return *i.StockRestant
	}
	return i.StockInitial
}

// GetItem godoc
// @Summary      Obtenir un article par ID
// @Tags         stock_items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock_items/{id} [get]
func (h *StockHandler) GetItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "article introuvable"})
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Remplacer un article
// @Description  PUT complet. Pour un article à couleurs, colorStocks restate la
//
//	liste des couleurs à garder : les couleurs absentes sont supprimées avec
//	leurs mouvements.
//
// @Tags         stock_items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'article"
// @Param        body  body  dto.UpdateStockItemRequest  true  "entité complète"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock_items/{id} [put]
func (h *StockHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return stockError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "article introuvable"})
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Supprimer un article
// @Tags         stock_items
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'article"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock_items/{id} [delete]
func (h *StockHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetItem godoc
// @Summary      Inventaire manuel d'un article simple
// @Description  Pose le stock à newValue, remet les compteurs à zéro et efface
//
//	l'historique de mouvements de l'article. Refusé pour un article à couleurs.
//
// @Tags         stock_items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'article"
// @Param        body  body  dto.ResetInventoryRequest  true  "newValue"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock_items/{id}/reset [post]
func (h *StockHandler) ResetItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.ResetInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ResetStockItem(c.Context(), id, in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// CreateColor godoc
// @Summary      Ajouter une couleur à un article
// @Tags         color_stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColorStockRequest  true  "stockItem (IRI ou objet), color, stockInitial"
// @Success      201   {object}  dto.ColorStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/color_stocks [post]
func (h *StockHandler) CreateColor(c *fiber.Ctx) error {
	var in dto.CreateColorStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.AddColor(c.Context(), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateColor godoc
// @Summary      Remplacer une couleur
// @Tags         color_stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la couleur"
// @Param        body  body  dto.UpdateColorStockRequest  true  "color, stockInitial"
// @Success      200   {object}  dto.ColorStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/color_stocks/{id} [put]
func (h *StockHandler) UpdateColor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.UpdateColorStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.UpdateColor(c.Context(), id, in)
	if err != nil {
		return stockError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "couleur introuvable"})
	}
	return c.JSON(out)
}

// DeleteColor godoc
// @Summary      Supprimer une couleur et ses mouvements
// @Tags         color_stocks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la couleur"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/color_stocks/{id} [delete]
func (h *StockHandler) DeleteColor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.DeleteColor(c.Context(), id); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetColor godoc
// @Summary      Inventaire manuel d'une couleur
// @Description  Pose le stock de la couleur à newValue, efface l'historique de
//
//	cette couleur seulement et re-résout les agrégats du parent. Les autres
//	couleurs gardent leur historique.
//
// @Tags         color_stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la couleur"
// @Param        body  body  dto.ResetInventoryRequest  true  "newValue"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/color_stocks/{id}/reset [post]
func (h *StockHandler) ResetColor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.ResetInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ResetColorStock(c.Context(), id, in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// CreateMovement godoc
// @Summary      Enregistrer un mouvement (entrée ou sortie)
// @Description  Cible soit un article simple (stockItem), soit une couleur
//
//	(colorStock), soit une nouvelle couleur (stockItem + newColor, entrée
//	seulement). Une sortie qui dépasse le stock courant est refusée.
//
// @Tags         stock_movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "cible, date, type, quantity, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock_movements [post]
func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Lister les mouvements d'articles
// @Tags         stock_movements
// @Security     Bearer
// @Produce      json
// @Param        dateFrom      query  string  false  "Borne basse incluse (2006-01-02)"
// @Param        dateTo        query  string  false  "Borne haute incluse (2006-01-02)"
// @Param        page          query  int     false  "Page"            default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"  default(20)
// @Success      200  {object}  dto.Collection[dto.MovementResponse]
// @Router       /api/stock_movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	all, err := h.uc.ListItemMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.movementCollection(c, all)
}

// ListColorMovements godoc
// @Summary      Lister les mouvements de couleurs
// @Tags         color_stock_movements
// @Security     Bearer
// @Produce      json
// @Param        dateFrom      query  string  false  "Borne basse incluse (2006-01-02)"
// @Param        dateTo        query  string  false  "Borne haute incluse (2006-01-02)"
// @Param        page          query  int     false  "Page"            default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"  default(20)
// @Success      200  {object}  dto.Collection[dto.MovementResponse]
// @Router       /api/color_stock_movements [get]
func (h *StockHandler) ListColorMovements(c *fiber.Ctx) error {
	all, err := h.uc.ListColorMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.movementCollection(c, all)
}

func (h *StockHandler) movementCollection(c *fiber.Ctx, all []dto.MovementResponse) error {
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.InDateRange(p.DateFrom, p.DateTo, func(m dto.MovementResponse) time.Time {
			return m.Date
		}),
	)
	// Du plus récent au plus ancien sauf order=asc explicite.
	desc := c.Query("order") != "asc"
	sorted := listing.SortBy(filtered, func(a, b dto.MovementResponse) bool {
		return a.Date.Before(b.Date)
	}, desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}
