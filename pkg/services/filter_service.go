package services

import (
	"math"

	"shopmate-api/pkg/models"
)

// similarLimit caps GET /products/:id/similar results.
const similarLimit = 5

// FilterService applies structured filters to a catalog snapshot. It
// holds no state; catalog records are never mutated and output order
// follows catalog order.
type FilterService struct{}

// NewFilterService creates a filter engine.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// FilterProducts returns the subset of catalog matching filters. Set
// fields are applied as a conjunction; when no field is set at all the
// raw message is used as a keyword search instead. The result is
// capped to MaxResults. An empty result is a valid outcome.
func (fs *FilterService) FilterProducts(catalog []models.Product, filters models.Filters, message string) []models.Product {
	matched := make([]models.Product, 0, len(catalog))

	if filters.IsEmpty() {
		for _, p := range catalog {
			if MatchesKeyword(p, message) {
				matched = append(matched, p)
				if len(matched) >= MaxResults {
					break
				}
			}
		}
		return matched
	}

	for _, p := range catalog {
		if matchesFilters(p, filters) {
			matched = append(matched, p)
			if len(matched) >= MaxResults {
				break
			}
		}
	}
	return matched
}

// matchesFilters checks every set filter field against the product.
func matchesFilters(p models.Product, f models.Filters) bool {
	if f.Category != nil && !models.ContainsFold(p.Category, *f.Category) {
		return false
	}
	if f.Subcategory != nil && !models.ContainsFold(p.Subcategory, *f.Subcategory) {
		return false
	}
	if f.Color != nil && !models.ContainsFold(p.Color, *f.Color) {
		return false
	}
	if f.Brand != nil && !models.ContainsFold(p.Brand, *f.Brand) {
		return false
	}
	if f.Size != nil && !hasSize(p.Sizes, *f.Size) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.EcoFriendly != nil && *f.EcoFriendly && !p.EcoFriendly {
		return false
	}
	return true
}

// hasSize requires an exact size entry, not substring containment:
// "M" must not match "XM" or "One Size".
func hasSize(sizes []string, want string) bool {
	for _, size := range sizes {
		if size == want {
			return true
		}
	}
	return false
}

// SimilarProducts returns up to five products related to the target by
// category or brand containment, or by a price within 30% of the
// target's. The target itself is excluded. Category comparison uses
// the same substring containment as the filter engine.
func (fs *FilterService) SimilarProducts(catalog []models.Product, target models.Product) []models.Product {
	similar := make([]models.Product, 0, similarLimit)

	for _, p := range catalog {
		if p.ID == target.ID {
			continue
		}
		if isSimilar(p, target) {
			similar = append(similar, p)
			if len(similar) >= similarLimit {
				break
			}
		}
	}
	return similar
}

func isSimilar(p, target models.Product) bool {
	if models.ContainsFold(p.Category, target.Category) {
		return true
	}
	if models.ContainsFold(p.Brand, target.Brand) {
		return true
	}
	return math.Abs(float64(p.Price-target.Price)) <= 0.3*float64(target.Price)
}
