package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// FournisseurHandler gère les requêtes HTTP des fournisseurs (protégé).
type FournisseurHandler struct {
	uc *usecase.FournisseurUseCase
}

// NewFournisseurHandler construit le handler.
func NewFournisseurHandler(uc *usecase.FournisseurUseCase) *FournisseurHandler {
	return &FournisseurHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FournisseurRequest  true  "code, nom"
// @Success      201   {object}  dto.FournisseurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fournisseurs [post]
func (h *FournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.FournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce code fournisseur existe déjà"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code et nom sont requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les fournisseurs
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Recherche sur code et nom"
// @Param        sort          query  string  false  "nom | code | reste"  default(nom)
// @Param        order         query  string  false  "asc | desc"
// @Param        page          query  int     false  "Page"                default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"      default(20)
// @Success      200  {object}  dto.Collection[dto.FournisseurResponse]
// @Router       /api/fournisseurs [get]
func (h *FournisseurHandler) List(c *fiber.Ctx) error {
	all, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.MatchText(p.Search, func(f dto.FournisseurResponse) []string {
			return []string{f.Code, f.Nom}
		}),
	)
	col := listing.NewCollator()
	var less func(a, b dto.FournisseurResponse) bool
	switch p.Sort {
	case "code":
		less = func(a, b dto.FournisseurResponse) bool { return col.Less(a.Code, b.Code) }
	case "reste":
		less = func(a, b dto.FournisseurResponse) bool { return a.Reste.LessThan(b.Reste) }
	default:
		less = func(a, b dto.FournisseurResponse) bool { return col.Less(a.Nom, b.Nom) }
	}
	sorted := listing.SortBy(filtered, less, p.Desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}

// GetByID godoc
// @Summary      Obtenir un fournisseur par ID
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.FournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [get]
func (h *FournisseurHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
	}
	return c.JSON(out)
}

// Solde godoc
// @Summary      Solde cumulé d'un fournisseur (reste à payer)
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.SoldeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id}/solde [get]
func (h *FournisseurHandler) Solde(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.Solde(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Remplacer un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du fournisseur"
// @Param        body  body  dto.FournisseurRequest  true  "code, nom"
// @Success      200   {object}  dto.FournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [put]
func (h *FournisseurHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.FournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce code fournisseur existe déjà"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code et nom sont requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Param        id  path  string  true  "ID du fournisseur"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [delete]
func (h *FournisseurHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
