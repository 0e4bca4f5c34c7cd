package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notewise/notewise/engine/infra/server/routes"
	"github.com/notewise/notewise/engine/task"
	"github.com/notewise/notewise/pkg/config"
	"github.com/notewise/notewise/pkg/version"
)

// createInfoHandler serves the root info payload describing the service and
// its endpoints.
func createInfoHandler(cfg *config.Config) gin.HandlerFunc {
	kinds := task.RoutedKinds()
	tasks := make([]string, 0, len(kinds))
	for _, k := range kinds {
		tasks = append(tasks, string(k))
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "notewise",
			"status":  "ok",
			"version": version.GetVersion(),
			"tasks":   tasks,
			"endpoints": gin.H{
				"health": routes.Health(),
				"ai":     routes.Assist(),
			},
		})
	}
}

// createHealthHandler reports liveness and whether an upstream credential is
// configured.
func createHealthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		configured := cfg.LLM.APIKeyConfigured()
		message := "Service is ready"
		if !configured {
			message = "API key is not configured"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"apiKeyConfigured": configured,
			"message":          message,
		})
	}
}
