package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubCompleter is a canned language-model for tests.
type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string, _ int, _ float32) (string, error) {
	return s.response, s.err
}

func TestExtractFiltersKeywordFallback(t *testing.T) {
	es := NewExtractorService(nil)

	filters := es.ExtractFilters(context.Background(), "Show me blue jeans under Rs.1800")

	assert.Nil(t, filters.Category)
	if assert.NotNil(t, filters.Subcategory) {
		assert.Equal(t, "jeans", *filters.Subcategory)
	}
	if assert.NotNil(t, filters.Color) {
		assert.Equal(t, "blue", *filters.Color)
	}
	if assert.NotNil(t, filters.MaxPrice) {
		assert.Equal(t, 1800, *filters.MaxPrice)
	}
	assert.Nil(t, filters.EcoFriendly)
}

func TestExtractFiltersNoTokensIsAllUnset(t *testing.T) {
	es := NewExtractorService(nil)

	filters := es.ExtractFilters(context.Background(), "tell me something nice")

	assert.True(t, filters.IsEmpty(), "message without recognized tokens must yield an all-unset filter object")
}

func TestExtractFiltersEcoKeyword(t *testing.T) {
	es := NewExtractorService(nil)

	filters := es.ExtractFilters(context.Background(), "any sustainable bags?")

	if assert.NotNil(t, filters.EcoFriendly) {
		assert.True(t, *filters.EcoFriendly)
	}
	if assert.NotNil(t, filters.Subcategory) {
		assert.Equal(t, "bags", *filters.Subcategory)
	}
}

func TestExtractFiltersNoPriceNeverFails(t *testing.T) {
	es := NewExtractorService(nil)

	filters := es.ExtractFilters(context.Background(), "red jackets please")

	assert.Nil(t, filters.MaxPrice, "absent price must stay unset, not zero")
	if assert.NotNil(t, filters.Color) {
		assert.Equal(t, "red", *filters.Color)
	}
}

func TestExtractFiltersLLMPath(t *testing.T) {
	llm := &stubCompleter{response: `{"category": "clothing", "subcategory": "jeans", "color": "blue", "brand": null, "size": null, "minPrice": null, "maxPrice": 1800, "ecoFriendly": null}`}
	es := NewExtractorService(llm)

	filters := es.ExtractFilters(context.Background(), "Show me blue jeans under Rs.1800")

	if assert.NotNil(t, filters.Category) {
		assert.Equal(t, "clothing", *filters.Category)
	}
	if assert.NotNil(t, filters.MaxPrice) {
		assert.Equal(t, 1800, *filters.MaxPrice)
	}
	assert.Nil(t, filters.Brand)
	assert.Nil(t, filters.EcoFriendly)
}

func TestExtractFiltersLLMCodeFence(t *testing.T) {
	llm := &stubCompleter{response: "```json\n{\"color\": \"black\", \"maxPrice\": 2000}\n```"}
	es := NewExtractorService(llm)

	filters := es.ExtractFilters(context.Background(), "black stuff under 2000")

	if assert.NotNil(t, filters.Color) {
		assert.Equal(t, "black", *filters.Color)
	}
}

func TestExtractFiltersLLMErrorFallsBack(t *testing.T) {
	llm := &stubCompleter{err: errors.New("connection refused")}
	es := NewExtractorService(llm)

	filters := es.ExtractFilters(context.Background(), "green sneakers")

	if assert.NotNil(t, filters.Color) {
		assert.Equal(t, "green", *filters.Color)
	}
	if assert.NotNil(t, filters.Subcategory) {
		assert.Equal(t, "sneakers", *filters.Subcategory)
	}
}

func TestExtractFiltersLLMGarbageFallsBack(t *testing.T) {
	llm := &stubCompleter{response: "I am sorry, I cannot help with that."}
	es := NewExtractorService(llm)

	filters := es.ExtractFilters(context.Background(), "yellow bags under 1000")

	if assert.NotNil(t, filters.Color) {
		assert.Equal(t, "yellow", *filters.Color)
	}
	if assert.NotNil(t, filters.MaxPrice) {
		assert.Equal(t, 1000, *filters.MaxPrice)
	}
}
