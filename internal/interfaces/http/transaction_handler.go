package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// TransactionHandler gère les requêtes HTTP des transactions (protégé).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construit le handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une transaction (achat ou virement)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "date, fournisseur (IRI ou objet), achat, virement"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date, fournisseur et montants positifs sont requis"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les transactions
// @Description  Le reste de chaque ligne est recalculé à la lecture depuis le
//
//	grand livre du fournisseur, jamais lu du snapshot stocké.
//
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Recherche sur description et fournisseur"
// @Param        fournisseur   query  string  false  "Filtrer par ID fournisseur"
// @Param        dateFrom      query  string  false  "Borne basse incluse (2006-01-02)"
// @Param        dateTo        query  string  false  "Borne haute incluse (2006-01-02)"
// @Param        sort          query  string  false  "date | achat | virement"  default(date)
// @Param        order         query  string  false  "asc | desc"
// @Param        page          query  int     false  "Page"                     default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"           default(20)
// @Success      200  {object}  dto.Collection[dto.TransactionResponse]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	all, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.MatchText(p.Search, func(t dto.TransactionResponse) []string {
			return []string{t.Description, t.Fournisseur.Code, t.Fournisseur.Nom}
		}),
		listing.MatchCategory(c.Query("fournisseur"), func(t dto.TransactionResponse) string {
			return t.Fournisseur.ID
		}),
		listing.InDateRange(p.DateFrom, p.DateTo, func(t dto.TransactionResponse) time.Time {
			return t.Date
		}),
	)
	var less func(a, b dto.TransactionResponse) bool
	switch p.Sort {
	case "achat":
		less = func(a, b dto.TransactionResponse) bool { return a.Achat.LessThan(b.Achat) }
	case "virement":
		less = func(a, b dto.TransactionResponse) bool { return a.Virement.LessThan(b.Virement) }
	default:
		less = func(a, b dto.TransactionResponse) bool { return a.Date.Before(b.Date) }
	}
	sorted := listing.SortBy(filtered, less, p.Desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}

// GetByID godoc
// @Summary      Obtenir une transaction par ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transaction"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transaction introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Remplacer une transaction
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transaction"
// @Param        body  body  dto.TransactionRequest  true  "date, fournisseur, achat, virement"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date, fournisseur et montants positifs sont requis"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transaction introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une transaction
// @Tags         transactions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transaction"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transaction introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
