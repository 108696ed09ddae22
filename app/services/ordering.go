package services

import (
	"sort"

	"shopfront/app/models"
)

// Sort keys accepted by sections and carousel category sources.
const (
	SortNewest    = "newest"
	SortPopular   = "popular"
	SortTrend     = "trend"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// SelectProducts orders candidates by sortKey and truncates to limit. An
// unknown key degrades to newest rather than failing the caller. The input
// slice is left untouched.
func SelectProducts(candidates []models.Product, sortKey string, limit int) []models.Product {
	out := make([]models.Product, len(candidates))
	copy(out, candidates)

	switch sortKey {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Popularity != out[j].Popularity {
				return out[i].Popularity > out[j].Popularity
			}
			return out[i].ID > out[j].ID
		})
	case SortTrend:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].TrendScore != out[j].TrendScore {
				return out[i].TrendScore > out[j].TrendScore
			}
			return out[i].ID > out[j].ID
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			if c := out[i].Price.Cmp(out[j].Price); c != 0 {
				return c < 0
			}
			return out[i].ID < out[j].ID
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if c := out[i].Price.Cmp(out[j].Price); c != 0 {
				return c > 0
			}
			return out[i].ID > out[j].ID
		})
	default: // newest, and the fallback for anything unrecognized
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	}

	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// sectionSortKey maps a home-section kind onto a product sort key. Category
// sections list their products newest-first.
func sectionSortKey(kind string) string {
	switch kind {
	case models.SectionKindPopular:
		return SortPopular
	case models.SectionKindTrend:
		return SortTrend
	default:
		return SortNewest
	}
}
