package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// ItemTypeHandler gère les requêtes HTTP des types d'articles (protégé).
type ItemTypeHandler struct {
	uc *usecase.ItemTypeUseCase
}

// NewItemTypeHandler construit le handler.
func NewItemTypeHandler(uc *usecase.ItemTypeUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un type d'article
// @Tags         item_types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemTypeRequest  true  "name, description"
// @Success      201   {object}  dto.ItemTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/item_types [post]
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce nom de type existe déjà"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name est requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les types d'articles
// @Tags         item_types
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Recherche sur le nom"
// @Param        page          query  int     false  "Page"            default(1)
// @Param        itemsPerPage  query  int     false  "Taille de page"  default(20)
// @Success      200  {object}  dto.Collection[dto.ItemTypeResponse]
// @Router       /api/item_types [get]
func (h *ItemTypeHandler) List(c *fiber.Ctx) error {
	all, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	p := parseListParams(c)
	filtered := listing.Filter(all,
		listing.MatchText(p.Search, func(t dto.ItemTypeResponse) []string {
			return []string{t.Name, t.Description}
		}),
	)
	col := listing.NewCollator()
	sorted := listing.SortBy(filtered, func(a, b dto.ItemTypeResponse) bool {
		return col.Less(a.Name, b.Name)
	}, p.Desc)
	page := listing.Paginate(sorted, p.Page, p.PerPage)
	return c.JSON(dto.NewCollection(page.Items, page.TotalItems))
}

// GetByID godoc
// @Summary      Obtenir un type d'article par ID
// @Tags         item_types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du type"
// @Success      200  {object}  dto.ItemTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item_types/{id} [get]
func (h *ItemTypeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "type introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Remplacer un type d'article
// @Tags         item_types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du type"
// @Param        body  body  dto.ItemTypeRequest  true  "name, description"
// @Success      200   {object}  dto.ItemTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/item_types/{id} [put]
func (h *ItemTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.ItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce nom de type existe déjà"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name est requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "type introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un type d'article
// @Tags         item_types
// @Security     Bearer
// @Param        id  path  string  true  "ID du type"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item_types/{id} [delete]
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "type introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
