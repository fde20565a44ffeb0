// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/AmbientEg/navigation-service/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler *handler.NavigationHandler
	BuildingHandler   *handler.BuildingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler *handler.NavigationHandler
	buildingHandler   *handler.BuildingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler: params.NavigationHandler,
		buildingHandler:   params.BuildingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/buildings", r.buildingHandler.ListBuildings)
		api.GET("/buildings/:id", r.buildingHandler.GetBuilding)
		api.GET("/buildings/:id/floors", r.buildingHandler.ListFloors)
		api.GET("/floors/:id/pois", r.buildingHandler.ListPOIs)
		api.GET("/waypoint-categories", r.buildingHandler.ListWaypointCategories)

		navigationGroup := api.Group("/navigation")
		navigationGroup.POST("/route", r.navigationHandler.Route)
		navigationGroup.POST("/cache/invalidate/:buildingId", r.navigationHandler.InvalidateCache)
	}
}
