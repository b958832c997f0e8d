package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Ref — normalisation IRI / objet étendu
// ──────────────────────────────────────────────────────────────────────────────

// Les deux formes d'une même référence donnent le même résultat après décodage.
func TestRef_DeuxFormesEquivalentes(t *testing.T) {
	var depuisIRI, depuisObjet dto.Ref

	require.NoError(t, json.Unmarshal([]byte(`"/api/item_types/42"`), &depuisIRI))
	require.NoError(t, json.Unmarshal([]byte(`{"@id": "/api/item_types/42"}`), &depuisObjet))

	assert.Equal(t, "42", depuisIRI.ID)
	assert.Equal(t, depuisIRI.ID, depuisObjet.ID)

	lookup := func(id string) string {
		if id == "42" {
			return "fourniture"
		}
		return ""
	}
	assert.Equal(t, depuisIRI.DisplayName(lookup), depuisObjet.DisplayName(lookup))
}

func TestRef_ObjetEtenduAvecNom(t *testing.T) {
	var r dto.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id": "42", "name": "fourniture"}`), &r))

	assert.Equal(t, "42", r.ID)
	// Le nom embarqué court-circuite le lookup.
	assert.Equal(t, "fourniture", r.DisplayName(func(string) string { return "autre" }))
}

func TestRef_ObjetSansIdentifiant(t *testing.T) {
	var r dto.Ref
	err := json.Unmarshal([]byte(`{"name": "fourniture"}`), &r)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRef_Null(t *testing.T) {
	var r dto.Ref
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsZero())
}

// La sortie est toujours la forme étendue, jamais une chaîne nue.
func TestRef_MarshalFormeEtendue(t *testing.T) {
	b, err := json.Marshal(dto.Ref{ID: "42", Name: "fourniture", IRI: "/api/item_types/42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"@id": "/api/item_types/42", "id": "42", "name": "fourniture"}`, string(b))
}

func TestIRIID(t *testing.T) {
	assert.Equal(t, "42", dto.IRIID("/api/item_types/42"))
	assert.Equal(t, "42", dto.IRIID("/api/item_types/42/"))
	assert.Equal(t, "42", dto.IRIID("42"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Collection
// ──────────────────────────────────────────────────────────────────────────────

// member vide doit sortir [] et non null.
func TestNewCollection_SliceNil(t *testing.T) {
	b, err := json.Marshal(dto.NewCollection[string](nil, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"member": [], "totalItems": 0}`, string(b))
}

// totalItems compte la collection filtrée, pas la page.
func TestNewCollection_TotalIndependantDeLaPage(t *testing.T) {
	c := dto.NewCollection([]string{"a", "b"}, 7)
	assert.Len(t, c.Member, 2)
	assert.Equal(t, 7, c.TotalItems)
}
