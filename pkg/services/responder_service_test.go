package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopmate-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

// unreachableProviders returns a provider service whose every endpoint
// fails immediately.
func unreachableProviders() *ProviderService {
	ps := NewProviderService("", "")
	ps.weatherBaseURL = "http://127.0.0.1:0"
	ps.newsBaseURL = "http://127.0.0.1:0"
	ps.jokeBaseURL = "http://127.0.0.1:0"
	ps.factBaseURL = "http://127.0.0.1:0"
	return ps
}

func TestComposeJokeIntentFallback(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, products := rs.Compose(context.Background(), "Tell me a joke", DefaultSeedCatalog())

	assert.Equal(t, "Here's one for you: "+FallbackJoke, reply)
	assert.Empty(t, products, "intent replies carry no product list")
}

func TestComposeFactIntentFallback(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, products := rs.Compose(context.Background(), "Give me an interesting fact", nil)

	assert.Equal(t, "Did you know? "+FallbackFact, reply)
	assert.Empty(t, products)
}

func TestComposeWeatherIntentUnavailable(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, products := rs.Compose(context.Background(), "what's the weather in mumbai?", nil)

	assert.Contains(t, reply, "Mumbai")
	assert.Contains(t, reply, "couldn't fetch the weather")
	assert.Empty(t, products)
}

func TestComposeWeatherIntentWithProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Delhi","main":{"temp":31.2,"feels_like":34.0,"humidity":62},"weather":[{"main":"Haze","description":"haze"}],"wind":{"speed":3.1}}`))
	}))
	defer server.Close()

	ps := unreachableProviders()
	ps.weatherAPIKey = "test-key"
	ps.weatherBaseURL = server.URL

	rs := NewResponderService(nil, ps)
	reply, _ := rs.Compose(context.Background(), "weather today?", nil)

	assert.Contains(t, reply, "31°C")
	assert.Contains(t, reply, "Delhi")
	assert.Contains(t, reply, "haze")
}

func TestComposeWeatherTakesPriorityOverJoke(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, _ := rs.Compose(context.Background(), "tell me a funny joke about the weather", nil)

	assert.Contains(t, reply, "weather", "weather intent must win by declaration order")
	assert.NotContains(t, reply, FallbackJoke)
}

func TestComposeNewsIntentNumberedList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","articles":[{"title":"Monsoon arrives early","url":"http://a","source":{"name":"The Daily"}},{"title":"Markets rally","url":"http://b","source":{"name":"BizWire"}}]}`))
	}))
	defer server.Close()

	ps := unreachableProviders()
	ps.newsAPIKey = "test-key"
	ps.newsBaseURL = server.URL

	rs := NewResponderService(nil, ps)
	reply, products := rs.Compose(context.Background(), "any news today?", nil)

	assert.Contains(t, reply, "1. Monsoon arrives early (The Daily)")
	assert.Contains(t, reply, "2. Markets rally (BizWire)")
	assert.Empty(t, products)
}

func TestComposeGreetingWithoutLLM(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, products := rs.Compose(context.Background(), "hello", nil)

	assert.Contains(t, reply, "ShopMate")
	assert.Empty(t, products)
}

func TestComposeProductSummaryWithoutLLM(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	matched := []models.Product{
		{ID: "p5", Name: "Eco Canvas Sneakers", EcoFriendly: true, Discount: 10},
		{ID: "p6", Name: "Red Bomber Jacket", Discount: 34},
	}

	reply, products := rs.Compose(context.Background(), "show me some products", matched)

	assert.Contains(t, reply, "2 products")
	assert.Contains(t, reply, "1 of them are eco-friendly")
	assert.Len(t, products, 2)
}

func TestComposeNoMatchesWithoutLLM(t *testing.T) {
	rs := NewResponderService(nil, unreachableProviders())

	reply, products := rs.Compose(context.Background(), "find me purple jeans", nil)

	assert.Contains(t, reply, "couldn't find matching products")
	assert.Empty(t, products)
}

func TestComposeGroundedLLMReply(t *testing.T) {
	llm := &stubCompleter{response: "The Classic Blue Jeans at Rs.1299 are a great pick!"}
	rs := NewResponderService(llm, unreachableProviders())

	matched := []models.Product{{ID: "p1", Name: "Classic Blue Jeans", Price: 1299}}
	reply, products := rs.Compose(context.Background(), "show me blue jeans", matched)

	assert.Equal(t, "The Classic Blue Jeans at Rs.1299 are a great pick!", reply)
	assert.Len(t, products, 1)
}

func TestComposeLLMFailureStillReplies(t *testing.T) {
	llm := &stubCompleter{err: errors.New("credential rejected")}
	rs := NewResponderService(llm, unreachableProviders())

	for _, message := range []string{"show me jeans", "hello", "what time is it", "blah blah"} {
		reply, _ := rs.Compose(context.Background(), message, nil)
		assert.NotEmpty(t, reply, "message %q must still get a reply", message)
	}
}

func TestGroundingContextFormat(t *testing.T) {
	got := groundingContext([]models.Product{
		{Name: "Eco Canvas Sneakers", Price: 1799, Category: "footwear", Brand: "EcoWear", Rating: 4.2, Discount: 10, EcoFriendly: true},
	})

	assert.True(t, strings.Contains(got, "Eco Canvas Sneakers"))
	assert.True(t, strings.Contains(got, "Rs.1799"))
	assert.True(t, strings.Contains(got, "eco-friendly: true"))
}
