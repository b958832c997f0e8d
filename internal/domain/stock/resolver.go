// Package stock implémente la résolution de la quantité courante d'un article
// et sa classification par seuils (service de domaine).
package stock

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// Niveaux de stock pour l'alerte visuelle.
const (
	NiveauCritique = "critique"
	NiveauBas      = "bas"
	NiveauNormal   = "normal"
)

// Seuils de classification.
const (
	SeuilCritique = 10
	SeuilBas      = 30
)

// CurrentStock renvoie la quantité courante d'un article non coloré :
// StockRestant si présent, sinon StockInitial (le serveur peut omettre
// StockRestant tant qu'aucun mouvement n'existe).
// Pour un article à couleurs il n'existe pas de scalaire autoritaire côté
// parent; l'appelant doit descendre dans les ColorStock, et ok vaut false.
func CurrentStock(item *entity.StockItem) (int, bool) {
	if item == nil || item.HasColors {
		return 0, false
	}
	if item.StockRestant != nil {
		return *item.StockRestant, true
	}
	return item.StockInitial, true
}

// Classify classe une quantité : <= 10 critique, <= 30 bas, sinon normal.
func Classify(n int) string {
	switch {
	case n <= SeuilCritique:
		return NiveauCritique
	case n <= SeuilBas:
		return NiveauBas
	default:
		return NiveauNormal
	}
}
