package routes

import (
	"aviniti_tools/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAI          = "/ai"
	PathEstimates   = "/estimates"
	PathCatalog     = "/catalog"
	PathNudges      = "/nudges"
	PathTransitions = "/transitions"
)

func addToolRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
	nudgeHandler *handlers.NudgeHandler,
	transitionHandler *handlers.TransitionHandler,
) {
	aiGroup := rg.Group(PathAI)
	{
		aiGroup.POST("/estimate", estimateHandler.GenerateEstimate)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/recalculate", estimateHandler.RecalculateEstimate)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/features", catalogHandler.ListFeatures)
		catalog.GET("/categories", catalogHandler.ListCategories)
	}

	nudges := rg.Group(PathNudges)
	{
		nudges.POST("/evaluate", nudgeHandler.EvaluateNudges)
		nudges.POST("/dismiss", nudgeHandler.DismissNudge)
	}

	transitions := rg.Group(PathTransitions)
	{
		transitions.POST("/preview", transitionHandler.PreviewTransition)
	}
}
