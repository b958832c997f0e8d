// Package ledger implémente le calcul du « reste à payer » cumulé par
// fournisseur (service de domaine). Le champ Reste stocké sur une transaction
// n'est qu'un instantané pris à sa création et n'est pas corrigé
// rétroactivement; tout affichage cumulé repasse par ici.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
)

// Totaux porte les cumuls séparés d'achats et de virements d'un fournisseur.
type Totaux struct {
	TotalAchats    decimal.Decimal
	TotalVirements decimal.Decimal
}

// Reste renvoie le solde signé : positif = le fournisseur reste à payer.
func (t Totaux) Reste() decimal.Decimal {
	return t.TotalAchats.Sub(t.TotalVirements)
}

// TotauxAsOf filtre les transactions du fournisseur, les trie par date
// croissante (tri stable : à date égale, l'ordre d'entrée est conservé, les
// dates saisies n'ont pas de précision horaire garantie), puis cumule achats
// et virements en s'arrêtant après la transaction cible incluse.
// Si targetTxID est vide ou absent de la liste, tout l'historique est cumulé.
func TotauxAsOf(txs []entity.Transaction, fournisseurID, targetTxID string) Totaux {
	own := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.FournisseurID == fournisseurID {
			own = append(own, tx)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Date.Before(own[j].Date)
	})

	t := Totaux{TotalAchats: decimal.Zero, TotalVirements: decimal.Zero}
	for _, tx := range own {
		t.TotalAchats = t.TotalAchats.Add(tx.Achat)
		t.TotalVirements = t.TotalVirements.Add(tx.Virement)
		if targetTxID != "" && tx.ID == targetTxID {
			break
		}
	}
	return t
}

// ResteAsOf renvoie le solde cumulé à la transaction cible incluse.
// Un fournisseur sans transaction donne 0.
func ResteAsOf(txs []entity.Transaction, fournisseurID, targetTxID string) decimal.Decimal {
	return TotauxAsOf(txs, fournisseurID, targetTxID).Reste()
}

// ResteFinal renvoie le solde cumulé après la dernière transaction
// chronologique du fournisseur (valeur affichée dans la liste fournisseurs).
func ResteFinal(txs []entity.Transaction, fournisseurID string) decimal.Decimal {
	return TotauxAsOf(txs, fournisseurID, "").Reste()
}
