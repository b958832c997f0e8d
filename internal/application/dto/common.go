package dto

import (
	"encoding/json"
	"strings"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// Collection enveloppe de collection à la JSON-LD : la liste complète des
// membres plus le total. Le client consomme toujours member en entier.
type Collection[T any] struct {
	Member     []T `json:"member"`
	TotalItems int `json:"totalItems"`
}

// NewCollection construit l'enveloppe. Un slice nil devient un tableau vide
// pour que le JSON émette [] et non null.
func NewCollection[T any](member []T, total int) Collection[T] {
	if member == nil {
		member = []T{}
	}
	return Collection[T]{Member: member, TotalItems: total}
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Ref référence d'entité normalisée à la frontière. Le backend accepte en
// entrée soit une chaîne IRI ("/api/item_types/{id}"), soit l'objet étendu
// ({"id": ..., "name": ...}); après décodage la logique aval ne branche plus
// jamais sur la forme.
type Ref struct {
	ID   string
	Name string
	IRI  string
}

// refObject forme étendue acceptée en entrée et émise en sortie.
type refObject struct {
	AtID string `json:"@id,omitempty"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepte les deux formes de référence et normalise en {ID, Name}.
func (r *Ref) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ref{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var iri string
		if err := json.Unmarshal(b, &iri); err != nil {
			return err
		}
		*r = Ref{ID: IRIID(iri), IRI: iri}
		return nil
	}
	var obj refObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	id := obj.ID
	iri := obj.AtID
	if id == "" && iri != "" {
		id = IRIID(iri)
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	*r = Ref{ID: id, Name: obj.Name, IRI: iri}
	return nil
}

// MarshalJSON émet la forme étendue.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(refObject{AtID: r.IRI, ID: r.ID, Name: r.Name})
}

// IsZero indique une référence absente.
func (r Ref) IsZero() bool { return r.ID == "" }

// DisplayName renvoie le nom d'affichage : le nom embarqué si l'objet étendu
// le portait, sinon le résultat de lookup sur l'ID extrait de l'IRI. Les deux
// formes d'une même référence donnent donc le même nom.
func (r Ref) DisplayName(lookup func(id string) string) string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID == "" || lookup == nil {
		return ""
	}
	return lookup(r.ID)
}

// IRIID extrait l'identifiant d'une IRI ("/api/item_types/42" -> "42").
func IRIID(iri string) string {
	iri = strings.TrimRight(iri, "/")
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
