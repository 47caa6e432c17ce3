package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"shopmate-api/pkg/models"
)

// MaxResults caps every product list handed to the UI.
const MaxResults = 30

// CatalogService owns the immutable seed catalog and extends it per
// request with records fetched from the external product API. The seed
// list is read-only after construction; every returned slice is a
// fresh request-scoped value.
type CatalogService struct {
	seed       []models.Product
	apiBaseURL string
	client     *http.Client
}

// DefaultProductAPIURL is the external product API endpoint.
const DefaultProductAPIURL = "https://fakestoreapi.com"

// NewCatalogService creates a catalog service over the given seed list.
// apiBaseURL is the external product API to extend the catalog from.
func NewCatalogService(seed []models.Product, apiBaseURL string) *CatalogService {
	return &CatalogService{
		seed:       seed,
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SeedSize returns the number of seed products.
func (cs *CatalogService) SeedSize() int {
	return len(cs.seed)
}

// Seed returns a copy of the seed catalog. Callers may reorder or trim
// the copy freely without touching the shared list.
func (cs *CatalogService) Seed() []models.Product {
	seed := make([]models.Product, len(cs.seed))
	copy(seed, cs.seed)
	return seed
}

// fakeStoreProduct mirrors the external product API payload.
type fakeStoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// GetCatalog returns the request's catalog snapshot: seed products
// first, externally fetched products appended in fetch order. A failed
// external fetch degrades to the seed list alone. When queryHint is
// non-empty the snapshot is narrowed by keyword containment before the
// cap is applied.
func (cs *CatalogService) GetCatalog(queryHint string) []models.Product {
	snapshot := make([]models.Product, 0, len(cs.seed)+20)
	snapshot = append(snapshot, cs.seed...)

	external := fallbackTo[[]models.Product]("product API", nil, cs.fetchExternalProducts)
	snapshot = append(snapshot, external...)

	if queryHint != "" {
		narrowed := make([]models.Product, 0, len(snapshot))
		for _, p := range snapshot {
			if MatchesKeyword(p, queryHint) {
				narrowed = append(narrowed, p)
			}
		}
		snapshot = narrowed
	}

	if len(snapshot) > MaxResults {
		snapshot = snapshot[:MaxResults]
	}
	return snapshot
}

// FindByID looks a product up in the seed catalog.
func (cs *CatalogService) FindByID(id string) (models.Product, bool) {
	for _, p := range cs.seed {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// fetchExternalProducts pulls the external product API and normalizes
// each record into the catalog shape.
func (cs *CatalogService) fetchExternalProducts() ([]models.Product, error) {
	resp, err := cs.client.Get(cs.apiBaseURL + "/products")
	if err != nil {
		return nil, fmt.Errorf("product API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product API response: %w", err)
	}

	var raw []fakeStoreProduct
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse product API response: %w", err)
	}

	products := make([]models.Product, 0, len(raw))
	for _, item := range raw {
		products = append(products, normalizeExternalProduct(item))
	}
	return products, nil
}

// normalizeExternalProduct maps an external record into the catalog
// product shape. Prices arrive in dollars and are scaled to whole
// rupees; missing brand and sizes are defaulted deterministically from
// the record id so repeated fetches stay stable.
func normalizeExternalProduct(item fakeStoreProduct) models.Product {
	price := int(item.Price * 83)

	sizeSets := [][]string{
		{"S", "M", "L"},
		{"M", "L", "XL"},
		{"One Size"},
	}

	return models.Product{
		ID:            fmt.Sprintf("fakestore-%d", item.ID),
		Name:          item.Title,
		Category:      item.Category,
		Subcategory:   item.Category,
		Color:         "assorted",
		Price:         price,
		OriginalPrice: price,
		Image:         item.Image,
		Description:   item.Description,
		Rating:        item.Rating.Rate,
		Reviews:       item.Rating.Count,
		InStock:       true,
		Brand:         "FakeStore",
		Sizes:         sizeSets[item.ID%len(sizeSets)],
		EcoFriendly:   false,
		Discount:      0,
		Source:        "fakestore",
	}
}

// MatchesKeyword reports whether the query occurs in any of the
// product's descriptive fields. Used by the keyword fallback of the
// filter engine and by the catalog query hint.
func MatchesKeyword(p models.Product, query string) bool {
	return models.ContainsFold(p.Name, query) ||
		models.ContainsFold(p.Category, query) ||
		models.ContainsFold(p.Subcategory, query) ||
		models.ContainsFold(p.Brand, query) ||
		models.ContainsFold(p.Color, query)
}

// LoadSeedCatalog returns the seed catalog, preferring an xlsx override
// file when one is present. Any problem with the file degrades to the
// built-in seed.
func LoadSeedCatalog(path string) []models.Product {
	if path != "" {
		if products, err := LoadCatalogFromXLSX(path); err == nil && len(products) > 0 {
			log.Printf("Loaded %d seed products from %s", len(products), path)
			return products
		} else if err != nil {
			log.Printf("Catalog file %s not used, falling back to built-in seed: %v", path, err)
		}
	}
	return DefaultSeedCatalog()
}
