package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchWeatherParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Mumbai", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"name": "Mumbai",
			"main": {"temp": 29.4, "feels_like": 33.1, "humidity": 78},
			"weather": [{"main": "Haze", "description": "haze"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer server.Close()

	ps := NewProviderService("test-key", "")
	ps.weatherBaseURL = server.URL

	report, err := ps.FetchWeather("Mumbai")
	assert.NoError(t, err)
	assert.Equal(t, "Mumbai", report.City)
	assert.Equal(t, 29.4, report.Temperature)
	assert.Equal(t, 33.1, report.FeelsLike)
	assert.Equal(t, 78, report.Humidity)
	assert.Equal(t, "haze", report.Condition)
	assert.Equal(t, 4.2, report.WindSpeed)
}

func TestFetchWeatherWithoutAPIKey(t *testing.T) {
	ps := NewProviderService("", "")

	_, err := ps.FetchWeather("Delhi")
	assert.Error(t, err)

	assert.Nil(t, ps.Weather("Delhi"))
}

func TestFetchNewsHonorsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "in", r.URL.Query().Get("country"))
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "First", "url": "http://n/1", "source": {"name": "Paper A"}},
				{"title": "Second", "url": "http://n/2", "source": {"name": "Paper B"}},
				{"title": "Third", "url": "http://n/3", "source": {"name": "Paper C"}}
			]
		}`))
	}))
	defer server.Close()

	ps := NewProviderService("", "test-key")
	ps.newsBaseURL = server.URL

	headlines, err := ps.FetchNews("technology", 2)
	assert.NoError(t, err)
	if assert.Len(t, headlines, 2) {
		assert.Equal(t, "First", headlines[0].Title)
		assert.Equal(t, "Paper A", headlines[0].Source)
	}
}

func TestFetchNewsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "articles": []}`))
	}))
	defer server.Close()

	ps := NewProviderService("", "test-key")
	ps.newsBaseURL = server.URL

	_, err := ps.FetchNews("sports", 5)
	assert.Error(t, err)
	assert.Nil(t, ps.News("sports", 5))
}

func TestJokeCombinesSetupAndPunchline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random_joke", r.URL.Path)
		w.Write([]byte(`{"setup": "Why do Go programmers wear glasses?", "punchline": "Because they can't C."}`))
	}))
	defer server.Close()

	ps := NewProviderService("", "")
	ps.jokeBaseURL = server.URL

	assert.Equal(t, "Why do Go programmers wear glasses? Because they can't C.", ps.Joke())
}

func TestJokeFallsBackWhenUnreachable(t *testing.T) {
	ps := NewProviderService("", "")
	ps.jokeBaseURL = "http://127.0.0.1:0"

	assert.Equal(t, FallbackJoke, ps.Joke())
}

func TestFactFallsBackOnEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": ""}`))
	}))
	defer server.Close()

	ps := NewProviderService("", "")
	ps.factBaseURL = server.URL

	assert.Equal(t, FallbackFact, ps.Fact())
}

func TestFactParsesText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/facts/random", r.URL.Path)
		w.Write([]byte(`{"text": "Honey never spoils."}`))
	}))
	defer server.Close()

	ps := NewProviderService("", "")
	ps.factBaseURL = server.URL

	assert.Equal(t, "Honey never spoils.", ps.Fact())
}
