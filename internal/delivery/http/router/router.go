// Package router registers the API routes.
package router

import (
	"tablescout/internal/delivery/http/router/handler"
	"tablescout/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler     *handler.PlaceHandler
	QuotaHandler     *handler.QuotaHandler
	CallerMiddleware *middleware.CallerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler     *handler.PlaceHandler
	quotaHandler     *handler.QuotaHandler
	callerMiddleware *middleware.CallerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:     params.PlaceHandler,
		quotaHandler:     params.QuotaHandler,
		callerMiddleware: params.CallerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/v1")

	// Discovery is public
	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("/search", r.placeHandler.SearchNearby)
		placesGroup.GET("/nearby", r.placeHandler.QueryByProximity)
		placesGroup.POST("/enrich", r.placeHandler.Enrich)
		placesGroup.GET("/:id", r.placeHandler.GetPlace)
		placesGroup.GET("/:id/view", r.placeHandler.GetView)
	}

	// Operator and scoring routes act on behalf of a caller
	callerPlaces := apiV1.Group("/places", r.callerMiddleware.RequireCaller)
	{
		callerPlaces.PUT("/:id/claim", r.placeHandler.UpdateClaim)
		callerPlaces.DELETE("/:id/claim", r.placeHandler.WithdrawClaim)
		callerPlaces.POST("/:id/score", r.placeHandler.ScorePlace)
	}

	quotaGroup := apiV1.Group("/quota", r.callerMiddleware.RequireCaller)
	{
		quotaGroup.GET("", r.quotaHandler.CheckQuota)
		quotaGroup.POST("/reserve", r.quotaHandler.ReserveQuota)
		quotaGroup.POST("/refund", r.quotaHandler.RefundQuota)
	}
}
