package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// listParams porte les paramètres communs des endpoints de liste :
// recherche texte, bornes de dates, tri et pagination.
type listParams struct {
	Search   string
	Sort     string
	Desc     bool
	Page     int
	PerPage  int
	DateFrom *time.Time
	DateTo   *time.Time
}

// parseListParams lit les query params des listes. itemsPerPage vaut 20 par
// défaut, order=desc inverse le tri, les dates sont au format 2006-01-02
// (bornes inclusives, absentes = ouvertes).
func parseListParams(c *fiber.Ctx) listParams {
	p := listParams{
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Desc:    c.Query("order") == "desc",
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("itemsPerPage", 20),
	}
	if from := c.Query("dateFrom"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			p.DateFrom = &t
		}
	}
	if to := c.Query("dateTo"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			// Les entités portent des horodatages complets : la borne haute
			// s'étend à la fin de la journée pour rester inclusive.
			t = t.Add(24*time.Hour - time.Nanosecond)
			p.DateTo = &t
		}
	}
	return p
}
