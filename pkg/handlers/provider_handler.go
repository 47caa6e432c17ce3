package handlers

import (
	"net/http"

	"shopmate-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes the third-party data fetchers as dedicated
// REST endpoints. Weather and news have no standalone fallback value,
// so their failures surface as 404/500 here; joke and fact always have
// a canned value and never fail.
type ProviderHandler struct {
	providers *services.ProviderService
}

// NewProviderHandler creates a provider handler.
func NewProviderHandler(providers *services.ProviderService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// GetWeather handles GET /weather/:city.
func (h *ProviderHandler) GetWeather(c *gin.Context) {
	city := c.Param("city")

	report, err := h.providers.FetchWeather(city)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "weather data unavailable for " + city})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetNews handles GET /news/:category.
func (h *ProviderHandler) GetNews(c *gin.Context) {
	category := c.Param("category")

	headlines, err := h.providers.FetchNews(category, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "news data unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "headlines": headlines})
}

// GetJoke handles GET /joke. The canned joke applies on provider
// failure, so this endpoint always succeeds.
func (h *ProviderHandler) GetJoke(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"joke": h.providers.Joke()})
}

// GetFact handles GET /fact.
func (h *ProviderHandler) GetFact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fact": h.providers.Fact()})
}
