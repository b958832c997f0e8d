package listing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/listing"
)

type article struct {
	Nom      string
	Location string
	Stock    int
	Date     time.Time
}

var corpus = []article{
	{Nom: "Écrou laiton", Location: "Cotona", Stock: 5, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	{Nom: "Vis inox", Location: "Maison", Stock: 40, Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	{Nom: "écran LED", Location: "Cotona", Stock: 15, Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	{Nom: "Ampoule", Location: "Avenir", Stock: 120, Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Filter — prédicats purs, conjonction
// ──────────────────────────────────────────────────────────────────────────────

// La recherche textuelle est une sous-chaîne insensible à la casse; un terme
// vide accepte tout.
func TestMatchText(t *testing.T) {
	nom := func(a article) []string { return []string{a.Nom} }

	got := listing.Filter(corpus, listing.MatchText("écr", nom))
	require.Len(t, got, 2, "écr matche Écrou et écran, la casse est ignorée")

	got = listing.Filter(corpus, listing.MatchText("", nom))
	assert.Len(t, got, len(corpus), "terme vide : aucun filtrage")

	got = listing.Filter(corpus, listing.MatchText("introuvable", nom))
	assert.Empty(t, got)
}

// Filtre catégoriel : égalité exacte, "all" et vide sont neutres.
func TestMatchCategory(t *testing.T) {
	loc := func(a article) string { return a.Location }

	assert.Len(t, listing.Filter(corpus, listing.MatchCategory("Cotona", loc)), 2)
	assert.Len(t, listing.Filter(corpus, listing.MatchCategory("all", loc)), len(corpus))
	assert.Len(t, listing.Filter(corpus, listing.MatchCategory("", loc)), len(corpus))
}

// Bornes de dates inclusives, borne nil ouverte.
func TestInDateRange(t *testing.T) {
	date := func(a article) time.Time { return a.Date }
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	got := listing.Filter(corpus, listing.InDateRange(&from, &to, date))
	require.Len(t, got, 2, "les deux bornes sont incluses")
	assert.Equal(t, "Vis inox", got[0].Nom)
	assert.Equal(t, "écran LED", got[1].Nom)

	got = listing.Filter(corpus, listing.InDateRange(nil, &to, date))
	assert.Len(t, got, 3, "borne basse absente : ouverte")
}

// Filtrer est idempotent : refiltrer un résultat ne change rien.
func TestFilter_Idempotent(t *testing.T) {
	nom := func(a article) []string { return []string{a.Nom} }
	p := listing.MatchText("o", nom)

	once := listing.Filter(corpus, p)
	twice := listing.Filter(once, p)
	assert.Equal(t, once, twice)
}

// Plusieurs prédicats : conjonction.
func TestFilter_Conjonction(t *testing.T) {
	got := listing.Filter(corpus,
		listing.MatchCategory("Cotona", func(a article) string { return a.Location }),
		listing.InDateRange(nil, nil, func(a article) time.Time { return a.Date }),
		listing.MatchText("écran", func(a article) []string { return []string{a.Nom} }),
	)
	require.Len(t, got, 1)
	assert.Equal(t, "écran LED", got[0].Nom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SortBy — stable, sur copie, collation française
// ──────────────────────────────────────────────────────────────────────────────

// Le tri n'altère jamais le slice d'entrée.
func TestSortBy_CopieSansMutation(t *testing.T) {
	in := []int{3, 1, 2}
	out := listing.SortBy(in, func(a, b int) bool { return a < b }, false)

	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in, "l'entrée reste intacte")
}

// desc inverse l'ordre.
func TestSortBy_Desc(t *testing.T) {
	out := listing.SortBy([]int{1, 3, 2}, func(a, b int) bool { return a < b }, true)
	assert.Equal(t, []int{3, 2, 1}, out)
}

// À clé égale l'ordre d'entrée est conservé (tri stable).
func TestSortBy_Stable(t *testing.T) {
	type kv struct {
		K int
		V string
	}
	in := []kv{{1, "a"}, {0, "b"}, {1, "c"}, {0, "d"}}
	out := listing.SortBy(in, func(a, b kv) bool { return a.K < b.K }, false)
	assert.Equal(t, []kv{{0, "b"}, {0, "d"}, {1, "a"}, {1, "c"}}, out)
}

// La collation française place é après e mais avant f, casse ignorée.
func TestCollator_LocaleFrancaise(t *testing.T) {
	col := listing.NewCollator()
	noms := []string{"Étagère", "Zinc", "ampoule", "écrou", "Vis"}
	out := listing.SortBy(noms, col.Less, false)
	assert.Equal(t, []string{"ampoule", "écrou", "Étagère", "Vis", "Zinc"}, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Paginate — fenêtre simple, pas de clamp
// ──────────────────────────────────────────────────────────────────────────────

func TestPaginate_Fenetre(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	p1 := listing.Paginate(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, p1.Items)
	assert.Equal(t, 7, p1.TotalItems)
	assert.Equal(t, 3, p1.TotalPages)

	p3 := listing.Paginate(items, 3, 3)
	assert.Equal(t, []int{7}, p3.Items, "la dernière page est partielle")
}

// Une page au-delà de la fin renvoie des items vides avec les vrais totaux :
// le numéro demandé n'est pas ramené à la dernière page.
func TestPaginate_PageHorsBornesNonClampee(t *testing.T) {
	items := []int{1, 2, 3}

	p := listing.Paginate(items, 9, 2)
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.TotalItems)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 9, p.Page, "le numéro demandé est conservé tel quel")
}

// Valeurs invalides : retombée sur page 1 et 20 par page.
func TestPaginate_Defauts(t *testing.T) {
	items := make([]int, 25)

	p := listing.Paginate(items, 0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Len(t, p.Items, 20)
}

// Les pages successives sont disjointes et couvrent tout.
func TestPaginate_Partition(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	var union []int
	for page := 1; page <= 3; page++ {
		union = append(union, listing.Paginate(items, page, 2).Items...)
	}
	assert.Equal(t, items, union)
}

// Composition filtre puis pagination : 12 articles retenus sur 15, perPage 10,
// deux pages disjointes dont l'union couvre tous les retenus dans l'ordre.
func TestFiltrePuisPagination_Composition(t *testing.T) {
	items := make([]article, 0, 15)
	for i := 1; i <= 15; i++ {
		loc := "Cotona"
		if i%5 == 0 {
			loc = "Maison"
		}
		items = append(items, article{Nom: "A", Location: loc, Stock: i})
	}

	retenus := listing.Filter(items, listing.MatchCategory("Cotona", func(a article) string { return a.Location }))
	require.Len(t, retenus, 12)

	p1 := listing.Paginate(retenus, 1, 10)
	p2 := listing.Paginate(retenus, 2, 10)

	assert.Len(t, p1.Items, 10)
	assert.Len(t, p2.Items, 2)
	assert.Equal(t, 12, p1.TotalItems)
	assert.Equal(t, 2, p1.TotalPages)

	union := append(append([]article{}, p1.Items...), p2.Items...)
	vus := map[int]bool{}
	for _, a := range union {
		assert.False(t, vus[a.Stock], "les pages sont disjointes")
		vus[a.Stock] = true
	}
	assert.Equal(t, retenus, union,
		"l'union des pages restitue la collection filtrée dans l'ordre")
}
