package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — invariant hasColors
// ──────────────────────────────────────────────────────────────────────────────

// Un article à couleurs garde ses propres quantités à 0; les quantités vivent
// dans ses ColorStock, créés avec restant = initial.
func TestCreate_ArticleColore(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateStockItemRequest{
		Reference:    "TIS-01",
		Name:         "Tissu",
		Type:         dto.Ref{ID: f.typeID},
		Location:     entity.LocationCotona,
		Unit:         entity.UnitBal,
		StockInitial: 99, // ignoré pour un article coloré
		HasColors:    true,
		ColorStocks: []dto.ColorStockInput{
			{Color: "rouge", StockInitial: 10},
			{Color: "bleu", StockInitial: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.StockInitial, "les quantités du parent sont forcées à 0")
	require.Len(t, out.ColorStocks, 2)
	for _, cs := range out.ColorStocks {
		assert.Equal(t, cs.StockInitial, cs.StockRestant)
	}
	assert.Empty(t, out.Niveau, "pas de niveau scalaire pour un article coloré")
}

// hasColors et colorStocks vont ensemble, dans les deux sens.
func TestCreate_CoherenceCouleurs(t *testing.T) {
	f := newFixture()
	base := dto.CreateStockItemRequest{
		Reference: "R1", Name: "N1",
		Type:     dto.Ref{ID: f.typeID},
		Location: entity.LocationCotona,
		Unit:     entity.UnitPiece,
	}

	avec := base
	avec.HasColors = true
	_, err := f.uc.Create(context.Background(), avec)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "hasColors sans couleurs")

	sans := base
	sans.ColorStocks = []dto.ColorStockInput{{Color: "rouge"}}
	_, err = f.uc.Create(context.Background(), sans)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "couleurs sans hasColors")
}

// Un article simple est classé par niveau à la lecture.
func TestCreate_ArticleSimpleAvecNiveau(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateStockItemRequest{
		Reference:    "AMP-01",
		Name:         "Ampoule",
		Type:         dto.Ref{ID: f.typeID},
		Location:     entity.LocationAvenir,
		Unit:         entity.UnitPiece,
		StockInitial: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "critique", out.Niveau)
}

func TestCreate_TypeInconnu(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), dto.CreateStockItemRequest{
		Reference: "R1", Name: "N1",
		Type:     dto.Ref{ID: "absent"},
		Location: entity.LocationCotona,
		Unit:     entity.UnitPiece,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_EmplacementEtUnite(t *testing.T) {
	f := newFixture()
	in := dto.CreateStockItemRequest{
		Reference: "R1", Name: "N1",
		Type:     dto.Ref{ID: f.typeID},
		Location: "Entrepôt", // hors liste
		Unit:     entity.UnitPiece,
	}
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Location = entity.LocationCotona
	in.Unit = "palette"
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — réconciliation des couleurs restatées
// ──────────────────────────────────────────────────────────────────────────────

// Le PUT restate la liste des couleurs à garder : une couleur absente de la
// liste est supprimée avec tout son historique de mouvements.
func TestUpdate_CouleurAbsenteSupprimee(t *testing.T) {
	f := newFixture()
	item, ids := f.seedColoredItem(map[string]int{"rouge": 10, "bleu": 5})

	// Historique sur la couleur condamnée.
	_, err := f.uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ColorStock: dto.Ref{ID: ids["bleu"]},
		Date:       jourMouvement,
		Type:       entity.MovementTypeSortie,
		Quantity:   1,
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), item.ID, dto.UpdateStockItemRequest{
		Reference: item.Reference,
		Name:      item.Name,
		Type:      dto.Ref{ID: f.typeID},
		Location:  item.Location,
		Unit:      item.Unit,
		HasColors: true,
		ColorStocks: []dto.Ref{
			{ID: ids["rouge"]}, // bleu n'est pas restaté
		},
	})
	require.NoError(t, err)

	bleu, _ := f.colors.GetByID(ids["bleu"])
	assert.Nil(t, bleu, "la couleur non restatée est supprimée")
	movs, _ := f.colorMovs.ListByColorStock(ids["bleu"])
	assert.Empty(t, movs, "ses mouvements suivent en cascade")

	rouge, _ := f.colors.GetByID(ids["rouge"])
	require.NotNil(t, rouge)
	assert.Equal(t, 10, rouge.StockRestant)
}

// Repasser hasColors à faux restate une liste de couleurs vide : les
// sous-stocks existants et leurs mouvements sont supprimés, jamais laissés
// orphelins, et l'article redevient un article simple.
func TestUpdate_DesactivationDesCouleurs(t *testing.T) {
	f := newFixture()
	item, ids := f.seedColoredItem(map[string]int{"rouge": 10})

	_, err := f.uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ColorStock: dto.Ref{ID: ids["rouge"]},
		Date:       jourMouvement,
		Type:       entity.MovementTypeSortie,
		Quantity:   2,
	})
	require.NoError(t, err)

	// Un restant scalaire à 0 traîne des écritures faites pendant la vie
	// colorée de l'article.
	zero := 0
	item.StockRestant = &zero
	require.NoError(t, f.items.Update(item))

	out, err := f.uc.Update(context.Background(), item.ID, dto.UpdateStockItemRequest{
		Reference:    item.Reference,
		Name:         item.Name,
		Type:         dto.Ref{ID: f.typeID},
		Location:     item.Location,
		Unit:         item.Unit,
		HasColors:    false,
		StockInitial: 30,
	})
	require.NoError(t, err)

	rouge, _ := f.colors.GetByID(ids["rouge"])
	assert.Nil(t, rouge, "aucune couleur ne survit à la désactivation")
	movs, _ := f.colorMovs.ListByColorStock(ids["rouge"])
	assert.Empty(t, movs, "ses mouvements suivent en cascade")

	assert.False(t, out.HasColors)
	assert.Equal(t, 30, out.StockInitial)
	assert.Nil(t, out.StockRestant, "le restant repart de l'initial")
	assert.Equal(t, "bas", out.Niveau)
}

// Restater la couleur d'un autre article est un incohérence rejetée.
func TestUpdate_CouleurEtrangereRejetee(t *testing.T) {
	f := newFixture()
	item, _ := f.seedColoredItem(map[string]int{"rouge": 10})
	_, autresIDs := f.seedColoredItem(map[string]int{"vert": 3})

	_, err := f.uc.Update(context.Background(), item.ID, dto.UpdateStockItemRequest{
		Reference: item.Reference,
		Name:      item.Name,
		Type:      dto.Ref{ID: f.typeID},
		Location:  item.Location,
		Unit:      item.Unit,
		HasColors: true,
		ColorStocks: []dto.Ref{
			{ID: autresIDs["vert"]},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddColor / UpdateColor
// ──────────────────────────────────────────────────────────────────────────────

// La paire (article, couleur) est unique.
func TestAddColor_Dupliquee(t *testing.T) {
	f := newFixture()
	item, _ := f.seedColoredItem(map[string]int{"rouge": 10})

	_, err := f.uc.AddColor(context.Background(), dto.CreateColorStockRequest{
		StockItem: dto.Ref{ID: item.ID},
		Color:     "rouge",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Pas de couleur sur un article simple.
func TestAddColor_ArticleSimple(t *testing.T) {
	f := newFixture()
	item := f.seedItem(10, nil)

	_, err := f.uc.AddColor(context.Background(), dto.CreateColorStockRequest{
		StockItem: dto.Ref{ID: item.ID},
		Color:     "rouge",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Changer le stock initial d'une couleur répercute le delta sur le restant :
// les mouvements passés restent comptés.
func TestUpdateColor_DeltaSurRestant(t *testing.T) {
	f := newFixture()
	_, ids := f.seedColoredItem(map[string]int{"rouge": 10})

	// Une sortie de 4 : restant 6.
	_, err := f.uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ColorStock: dto.Ref{ID: ids["rouge"]},
		Date:       jourMouvement,
		Type:       entity.MovementTypeSortie,
		Quantity:   4,
	})
	require.NoError(t, err)

	out, err := f.uc.UpdateColor(context.Background(), ids["rouge"], dto.UpdateColorStockRequest{
		Color:        "bordeaux",
		StockInitial: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "bordeaux", out.Color)
	assert.Equal(t, 15, out.StockInitial)
	assert.Equal(t, 11, out.StockRestant, "restant 6 + delta initial +5")
}

// Renommer vers une couleur déjà portée par une sœur est refusé.
func TestUpdateColor_RenommageEnDoublon(t *testing.T) {
	f := newFixture()
	_, ids := f.seedColoredItem(map[string]int{"rouge": 10, "bleu": 5})

	_, err := f.uc.UpdateColor(context.Background(), ids["rouge"], dto.UpdateColorStockRequest{
		Color:        "bleu",
		StockInitial: 10,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
