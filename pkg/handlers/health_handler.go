package handlers

import (
	"net/http"

	config "shopmate-api/configs"

	"github.com/gin-gonic/gin"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// HealthCheck returns a handler serving the static capability and
// version descriptor. Capability flags reflect which credentials were
// configured at startup; absent credentials mean the corresponding
// component runs on its fallback path.
func HealthCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ShopMate API",
			"version": Version,
			"capabilities": gin.H{
				"llm":     cfg.OpenAIAPIKey != "",
				"weather": cfg.OpenWeatherMapAPIKey != "",
				"news":    cfg.NewsAPIKey != "",
				"joke":    true,
				"fact":    true,
			},
		})
	}
}
