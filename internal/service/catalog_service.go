package service

import (
	"sort"
	"strings"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
)

// CategoryAll matches every category, same as leaving the filter empty.
const CategoryAll = "All"

// Price bracket labels, as the market feed filter presents them.
const (
	PriceAll    = "All"
	PriceUnder5 = "Under $5"
	Price5To10  = "$5-$10"
	Price10To20 = "$10-$20"
	PriceOver20 = "Over $20"
)

// Sort keys for the market feed. Anything unrecognized sorts newest first.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortPopular   = "popular"
)

// CatalogQuery is the set of filters a buyer can apply to the market feed.
// Zero values ("" or "All") match everything.
type CatalogQuery struct {
	Search     string
	Category   string
	PriceRange string
	SortBy     string
}

type CatalogService struct {
	catalog *repository.Catalog
}

func NewCatalogService(catalog *repository.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Search applies q to the catalog and returns the matches, sorted. The
// catalog itself is never mutated.
func (s *CatalogService) Search(q CatalogQuery) []model.Product {
	return SortProducts(FilterProducts(s.catalog.List(), q), q.SortBy)
}

func (s *CatalogService) Get(id string) (model.Product, error) {
	return s.catalog.Get(id)
}

// Count is the full catalog size, for "showing X of Y" headers.
func (s *CatalogService) Count() int {
	return len(s.catalog.List())
}

// FilterProducts keeps the products matching every filter in q: free-text
// against name or description (case-insensitive), category equality and
// price bracket.
func FilterProducts(products []model.Product, q CatalogQuery) []model.Product {
	term := strings.ToLower(q.Search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if !matchesPrice(p.Price, q.PriceRange) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesPrice(price float64, bracket string) bool {
	switch bracket {
	case PriceUnder5:
		return price < 5
	case Price5To10:
		return price >= 5 && price <= 10
	case Price10To20:
		return price > 10 && price <= 20
	case PriceOver20:
		return price > 20
	default:
		return true
	}
}

// SortProducts returns a sorted copy of products. Harvest dates are
// YYYY-MM-DD strings, so newest-first is a plain string comparison.
func SortProducts(products []model.Product, sortBy string) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortBy {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		case SortPopular:
			return a.ReviewCount > b.ReviewCount
		default:
			return a.HarvestDate > b.HarvestDate
		}
	})
	return out
}
