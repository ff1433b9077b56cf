package routes

import (
	"os"

	"constructhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathProjects  = "/projects"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.GET("/:id/transitions", estimateHandler.GetTransitions)
		estimates.PATCH("/:id/status", estimateHandler.UpdateStatus)
		estimates.POST("/:id/convert", estimateHandler.ConvertEstimate)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
