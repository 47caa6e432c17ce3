package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"shopmate-api/pkg/models"
)

// Completer is the language-model dependency of the pipeline. It is
// satisfied by openai.Client and by test stubs.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}

const extractorSystemPrompt = `You are a shopping filter extraction engine. Given a user message, respond with a single JSON object and nothing else, using exactly these keys:
{"category": ..., "subcategory": ..., "color": ..., "brand": ..., "size": ..., "minPrice": ..., "maxPrice": ..., "ecoFriendly": ...}
Use null for any field you cannot infer from the message. Prices are integers in rupees. ecoFriendly is true only when the user explicitly asks for sustainable or eco-friendly products.`

// Deterministic extraction vocabularies. Declaration order is the
// tie-break: the first entry found as a case-insensitive substring wins.
var (
	knownColors        = []string{"red", "blue", "black", "white", "green", "yellow", "brown", "grey", "pink"}
	knownCategories    = []string{"clothing", "footwear", "accessories"}
	knownSubcategories = []string{"sneakers", "jackets", "tshirts", "jeans", "bags", "shoes"}
	knownBrands        = []string{"denimco", "urbanstyle", "ecowear", "stridemax", "roadworn"}
	ecoKeywords        = []string{"eco", "sustainable", "organic", "environment", "recycled"}

	pricePattern = regexp.MustCompile(`\d{3,5}`)
)

// ExtractorService derives structured filters from free text, using
// the language model when available and degrading to keyword matching
// on any failure. ExtractFilters never returns an error.
type ExtractorService struct {
	llm Completer
}

// NewExtractorService creates an extractor. llm may be nil, in which
// case only the deterministic path is used.
func NewExtractorService(llm Completer) *ExtractorService {
	return &ExtractorService{llm: llm}
}

// ExtractFilters derives a filter object from a user message.
func (es *ExtractorService) ExtractFilters(ctx context.Context, message string) models.Filters {
	if es.llm != nil {
		if filters, err := es.extractWithLLM(ctx, message); err == nil {
			return filters
		} else {
			log.Printf("LLM filter extraction failed, using keyword extraction: %v", err)
		}
	}
	return es.extractWithKeywords(message)
}

// extractWithLLM asks the model for a JSON filter object and parses it.
func (es *ExtractorService) extractWithLLM(ctx context.Context, message string) (models.Filters, error) {
	content, err := es.llm.Complete(ctx, extractorSystemPrompt, message, 200, 0)
	if err != nil {
		return models.Filters{}, err
	}

	var filters models.Filters
	if err := json.Unmarshal([]byte(extractJSONObject(content)), &filters); err != nil {
		return models.Filters{}, err
	}
	return filters, nil
}

// extractJSONObject trims a model response down to the first JSON
// object it contains, tolerating code fences and prose around it.
func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

// extractWithKeywords is the deterministic fallback path. It always
// terminates with a well-formed (possibly all-unset) filter object.
func (es *ExtractorService) extractWithKeywords(message string) models.Filters {
	msg := strings.ToLower(message)
	var filters models.Filters

	if color := firstContained(msg, knownColors); color != "" {
		filters.Color = &color
	}
	if category := firstContained(msg, knownCategories); category != "" {
		filters.Category = &category
	}
	if subcategory := firstContained(msg, knownSubcategories); subcategory != "" {
		filters.Subcategory = &subcategory
	}
	if brand := firstContained(msg, knownBrands); brand != "" {
		filters.Brand = &brand
	}

	if match := pricePattern.FindString(msg); match != "" {
		if price, err := strconv.Atoi(match); err == nil {
			filters.MaxPrice = &price
		}
	}

	// ecoFriendly is only ever set when true: an absent keyword means
	// "not specified", not "explicitly false".
	for _, keyword := range ecoKeywords {
		if strings.Contains(msg, keyword) {
			eco := true
			filters.EcoFriendly = &eco
			break
		}
	}

	return filters
}

// firstContained returns the first vocabulary entry found in msg.
func firstContained(msg string, vocabulary []string) string {
	for _, entry := range vocabulary {
		if strings.Contains(msg, entry) {
			return entry
		}
	}
	return ""
}
