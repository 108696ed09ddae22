package services

import (
	"testing"

	"shopfront/app/models"

	"github.com/shopspring/decimal"
)

func product(id uint, popularity, trend uint, price string) models.Product {
	return models.Product{
		ID:         id,
		Name:       "p",
		Price:      decimal.RequireFromString(price),
		Popularity: popularity,
		TrendScore: trend,
	}
}

func ids(products []models.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []models.Product, want []uint) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestSelectProductsPopular(t *testing.T) {
	candidates := []models.Product{
		product(1, 5, 0, "10.00"),
		product(2, 9, 0, "10.00"),
	}
	got := SelectProducts(candidates, SortPopular, -1)
	assertIDs(t, got, []uint{2, 1})
}

func TestSelectProductsPopularTieBreaksOnNewerID(t *testing.T) {
	candidates := []models.Product{
		product(1, 7, 0, "10.00"),
		product(3, 7, 0, "10.00"),
		product(2, 7, 0, "10.00"),
	}
	got := SelectProducts(candidates, SortPopular, -1)
	assertIDs(t, got, []uint{3, 2, 1})
}

func TestSelectProductsTrend(t *testing.T) {
	candidates := []models.Product{
		product(1, 0, 2, "10.00"),
		product(2, 0, 8, "10.00"),
		product(3, 0, 5, "10.00"),
	}
	got := SelectProducts(candidates, SortTrend, -1)
	assertIDs(t, got, []uint{2, 3, 1})
}

func TestSelectProductsPriceAsc(t *testing.T) {
	candidates := []models.Product{
		product(1, 0, 0, "30.00"),
		product(2, 0, 0, "10.00"),
		product(4, 0, 0, "10.00"),
		product(3, 0, 0, "20.00"),
	}
	got := SelectProducts(candidates, SortPriceAsc, -1)
	// Equal prices keep the older product first.
	assertIDs(t, got, []uint{2, 4, 3, 1})
}

func TestSelectProductsPriceDesc(t *testing.T) {
	candidates := []models.Product{
		product(1, 0, 0, "30.00"),
		product(2, 0, 0, "10.00"),
		product(4, 0, 0, "10.00"),
		product(3, 0, 0, "20.00"),
	}
	got := SelectProducts(candidates, SortPriceDesc, -1)
	assertIDs(t, got, []uint{1, 3, 4, 2})
}

func TestSelectProductsNewestIsDefault(t *testing.T) {
	candidates := []models.Product{
		product(2, 0, 0, "10.00"),
		product(5, 0, 0, "10.00"),
		product(1, 0, 0, "10.00"),
	}
	for _, key := range []string{SortNewest, "", "garbage"} {
		got := SelectProducts(candidates, key, -1)
		assertIDs(t, got, []uint{5, 2, 1})
	}
}

func TestSelectProductsLimit(t *testing.T) {
	candidates := []models.Product{
		product(1, 0, 0, "10.00"),
		product(2, 0, 0, "10.00"),
		product(3, 0, 0, "10.00"),
	}

	got := SelectProducts(candidates, SortNewest, 2)
	assertIDs(t, got, []uint{3, 2})

	if got := SelectProducts(candidates, SortNewest, 0); len(got) != 0 {
		t.Fatalf("limit 0 returned %d products", len(got))
	}
	if got := SelectProducts(candidates, SortNewest, 10); len(got) != 3 {
		t.Fatalf("oversized limit returned %d products", len(got))
	}
}

func TestSelectProductsLeavesInputUntouched(t *testing.T) {
	candidates := []models.Product{
		product(1, 1, 0, "10.00"),
		product(2, 9, 0, "10.00"),
	}
	SelectProducts(candidates, SortPopular, 1)
	assertIDs(t, candidates, []uint{1, 2})
}

func TestSectionSortKey(t *testing.T) {
	cases := map[string]string{
		models.SectionKindPopular:  SortPopular,
		models.SectionKindTrend:    SortTrend,
		models.SectionKindNewest:   SortNewest,
		models.SectionKindCategory: SortNewest,
		"unknown":                  SortNewest,
	}
	for kind, want := range cases {
		if got := sectionSortKey(kind); got != want {
			t.Errorf("sectionSortKey(%q) = %q, want %q", kind, got, want)
		}
	}
}
