package stock

import (
	"context"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de BD en lui passant des
// repositories liés à cette transaction. Garantit l'atomicité du moteur de
// mouvements (entrées / sorties). Les resets d'inventaire, eux, restent des
// étapes séquentielles non transactionnelles (voir DESIGN.md).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		colorRepo repository.ColorStockRepository,
		movRepo repository.StockMovementRepository,
		colorMovRepo repository.ColorStockMovementRepository,
	) error) error
}
