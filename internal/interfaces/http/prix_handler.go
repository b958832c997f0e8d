package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// PrixHandler gère les requêtes HTTP des prix (protégé).
type PrixHandler struct {
	uc *usecase.PrixUseCase
}

// NewPrixHandler construit le handler.
func NewPrixHandler(uc *usecase.PrixUseCase) *PrixHandler {
	return &PrixHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un prix
// @Tags         prix
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PrixRequest  true  "type (fourniture|appareil), nomArticle, montants"
// @Success      201   {object}  dto.PrixResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prix [post]
func (h *PrixHandler) Create(c *fiber.Ctx) error {
	var in dto.PrixRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type (fourniture|appareil), nomArticle et montants positifs sont requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les prix
// @Tags         prix
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Recherche sur nomArticle et référence"
// @Param        type          query  string  false  "fourniture | appareil | all"
// @Param        sort          query  string  false  "nomArticle | reference"  default(nomArticle)
// @Param        order         query  string  false  "asc | desc"
// @Param        page          query  int     false  "Page"                    default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"          default(20)
// @Success      200  {object}  dto.Collection[dto.PrixResponse]
// @Router       /api/prix [get]
func (h *PrixHandler) List(c *fiber.Ctx) error {
	all, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.MatchText(p.Search, func(x dto.PrixResponse) []string {
			return []string{x.NomArticle, x.Reference}
		}),
		listing.MatchCategory(c.Query("type"), func(x dto.PrixResponse) string {
			return x.Type
		}),
	)
	col := listing.NewCollator()
	var less func(a, b dto.PrixResponse) bool
	switch p.Sort {
	case "reference":
		less = func(a, b dto.PrixResponse) bool { return col.Less(a.Reference, b.Reference) }
	default:
		less = func(a, b dto.PrixResponse) bool { return col.Less(a.NomArticle, b.NomArticle) }
	}
	sorted := listing.SortBy(filtered, less, p.Desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}

// GetByID godoc
// @Summary      Obtenir un prix par ID
// @Tags         prix
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du prix"
// @Success      200  {object}  dto.PrixResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prix/{id} [get]
func (h *PrixHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prix introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Remplacer un prix
// @Tags         prix
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du prix"
// @Param        body  body  dto.PrixRequest  true  "type, nomArticle, montants"
// @Success      200   {object}  dto.PrixResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prix/{id} [put]
func (h *PrixHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.PrixRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type (fourniture|appareil), nomArticle et montants positifs sont requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prix introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un prix
// @Tags         prix
// @Security     Bearer
// @Param        id  path  string  true  "ID du prix"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prix/{id} [delete]
func (h *PrixHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prix introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
