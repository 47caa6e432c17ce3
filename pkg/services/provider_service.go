package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"shopmate-api/pkg/models"
)

// Canned values substituted when a provider cannot be reached. The
// weather fallback is a nil report, which callers must treat as a
// valid "unavailable" outcome.
const (
	FallbackJoke = "Why did the shopper bring a ladder to the store? Because the prices were too high! 😄"
	FallbackFact = "Here's a fun fact: the world's oldest known pair of trousers is over 3,000 years old!"
)

// fallbackTo runs call and substitutes fallback on any error. Every
// outbound provider call in the pipeline goes through this wrapper so
// the degrade-don't-fail contract is enforced in one place.
func fallbackTo[T any](name string, fallback T, call func() (T, error)) T {
	value, err := call()
	if err != nil {
		log.Printf("%s provider unavailable, using fallback: %v", name, err)
		return fallback
	}
	return value
}

// ProviderService wraps the third-party weather, news, joke and fact
// APIs. The Fetch* methods surface errors for the dedicated REST
// endpoints; the plain methods apply the canned fallback and never fail.
type ProviderService struct {
	weatherAPIKey  string
	newsAPIKey     string
	weatherBaseURL string
	newsBaseURL    string
	jokeBaseURL    string
	factBaseURL    string
	client         *http.Client
}

// NewProviderService creates a provider service with the public API
// endpoints. Keys may be empty; the affected fetchers then fail and
// fall back without issuing a request.
func NewProviderService(weatherAPIKey, newsAPIKey string) *ProviderService {
	return &ProviderService{
		weatherAPIKey:  weatherAPIKey,
		newsAPIKey:     newsAPIKey,
		weatherBaseURL: "https://api.openweathermap.org/data/2.5",
		newsBaseURL:    "https://newsapi.org/v2",
		jokeBaseURL:    "https://official-joke-api.appspot.com",
		factBaseURL:    "https://uselessfacts.jsph.pl",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// openWeatherMapResponse is the subset of the current-weather payload
// the assistant uses.
type openWeatherMapResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// newsAPIResponse is the subset of the top-headlines payload in use.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

type jokeAPIResponse struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

type factAPIResponse struct {
	Text string `json:"text"`
}

// FetchWeather fetches the current weather for a city.
func (ps *ProviderService) FetchWeather(city string) (*models.WeatherReport, error) {
	if ps.weatherAPIKey == "" {
		return nil, fmt.Errorf("weather API key is not configured")
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		ps.weatherBaseURL, url.QueryEscape(city), ps.weatherAPIKey)

	var payload openWeatherMapResponse
	if err := ps.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}

	report := &models.WeatherReport{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if report.City == "" {
		report.City = city
	}
	if len(payload.Weather) > 0 {
		report.Condition = payload.Weather[0].Description
	}

	return report, nil
}

// Weather returns the current weather for a city, or nil when the
// provider is unavailable.
func (ps *ProviderService) Weather(city string) *models.WeatherReport {
	return fallbackTo[*models.WeatherReport]("weather", nil, func() (*models.WeatherReport, error) {
		return ps.FetchWeather(city)
	})
}

// FetchNews fetches up to limit top headlines for a category.
func (ps *ProviderService) FetchNews(category string, limit int) ([]models.Headline, error) {
	if ps.newsAPIKey == "" {
		return nil, fmt.Errorf("news API key is not configured")
	}

	endpoint := fmt.Sprintf("%s/top-headlines?country=in&category=%s&pageSize=%d&apiKey=%s",
		ps.newsBaseURL, url.QueryEscape(category), limit, ps.newsAPIKey)

	var payload newsAPIResponse
	if err := ps.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("news API returned status %q", payload.Status)
	}

	headlines := make([]models.Headline, 0, limit)
	for _, article := range payload.Articles {
		headlines = append(headlines, models.Headline{
			Title:  article.Title,
			Source: article.Source.Name,
			URL:    article.URL,
		})
		if len(headlines) >= limit {
			break
		}
	}

	return headlines, nil
}

// News returns top headlines, or nil when the provider is unavailable.
func (ps *ProviderService) News(category string, limit int) []models.Headline {
	return fallbackTo[[]models.Headline]("news", nil, func() ([]models.Headline, error) {
		return ps.FetchNews(category, limit)
	})
}

// FetchJoke fetches a random joke.
func (ps *ProviderService) FetchJoke() (string, error) {
	var payload jokeAPIResponse
	if err := ps.getJSON(ps.jokeBaseURL+"/random_joke", &payload); err != nil {
		return "", err
	}
	if payload.Setup == "" {
		return "", fmt.Errorf("joke API returned an empty joke")
	}
	return payload.Setup + " " + payload.Punchline, nil
}

// Joke returns a random joke, or the canned joke on failure.
func (ps *ProviderService) Joke() string {
	return fallbackTo("joke", FallbackJoke, ps.FetchJoke)
}

// FetchFact fetches a random fact.
func (ps *ProviderService) FetchFact() (string, error) {
	var payload factAPIResponse
	if err := ps.getJSON(ps.factBaseURL+"/api/v2/facts/random", &payload); err != nil {
		return "", err
	}
	if payload.Text == "" {
		return "", fmt.Errorf("fact API returned an empty fact")
	}
	return payload.Text, nil
}

// Fact returns a random fact, or the canned fact on failure.
func (ps *ProviderService) Fact() string {
	return fallbackTo("fact", FallbackFact, ps.FetchFact)
}

// getJSON issues a GET request and decodes the JSON body.
func (ps *ProviderService) getJSON(endpoint string, out interface{}) error {
	resp, err := ps.client.Get(endpoint)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}
