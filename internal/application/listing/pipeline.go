// Package listing implémente le pipeline filtre / tri / pagination partagé
// par toutes les pages de liste (fournisseurs, articles, transactions, prix,
// mouvements). Le pipeline opère en mémoire sur la collection complète; les
// prédicats sont purs, le tri est stable, la pagination est un simple
// découpage de slice.
package listing

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Predicate prédicat de filtrage pur.
type Predicate[T any] func(T) bool

// Filter applique la conjonction des prédicats. Le résultat est un nouveau
// slice; les prédicats étant purs, filtrer deux fois donne le même résultat
// que filtrer une fois.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		keep := true
		for _, p := range preds {
			if !p(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

// MatchText recherche textuelle : sous-chaîne insensible à la casse sur un ou
// plusieurs champs. Un terme vide accepte tout.
func MatchText[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(it T) bool {
		if term == "" {
			return true
		}
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// MatchCategory filtre catégoriel : égalité exacte, ou tout si la valeur est
// vide ou "all".
func MatchCategory[T any](value string, field func(T) string) Predicate[T] {
	return func(it T) bool {
		if value == "" || value == "all" {
			return true
		}
		return field(it) == value
	}
}

// InDateRange borne inclusive sur une date; une borne nil est ouverte.
func InDateRange[T any](from, to *time.Time, date func(T) time.Time) Predicate[T] {
	return func(it T) bool {
		d := date(it)
		if from != nil && d.Before(*from) {
			return false
		}
		if to != nil && d.After(*to) {
			return false
		}
		return true
	}
}

// SortBy trie une copie du slice (tri stable : les égalités gardent l'ordre
// d'entrée). desc inverse la comparaison.
func SortBy[T any](items []T, less func(a, b T) bool, desc bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	cmp := less
	if desc {
		cmp = func(a, b T) bool { return less(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return out
}

// Collator comparaison de chaînes selon la locale française (accents, casse).
// Non partageable entre goroutines : en construire un par requête.
type Collator struct {
	c *collate.Collator
}

// NewCollator construit le collateur (français, casse ignorée).
func NewCollator() *Collator {
	return &Collator{c: collate.New(language.French, collate.IgnoreCase)}
}

// Less compare deux chaînes selon la locale.
func (c *Collator) Less(a, b string) bool {
	return c.c.CompareString(a, b) < 0
}

// Page résultat paginé.
type Page[T any] struct {
	Items      []T
	TotalItems int
	Page       int
	PerPage    int
	TotalPages int
}

// Paginate découpe la page demandée. page et perPage invalides retombent sur
// 1 et 20. Une page au-delà de la fin renvoie des items vides avec les vrais
// totaux : pas de clamp, le client voit qu'il a dépassé (épinglé par les
// tests; voir DESIGN.md).
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= total {
		return Page[T]{Items: []T{}, TotalItems: total, Page: page, PerPage: perPage, TotalPages: totalPages}
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return Page[T]{Items: items[start:end], TotalItems: total, Page: page, PerPage: perPage, TotalPages: totalPages}
}
