package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/delivery/http/response"
	"tablescout/internal/domain/entity"
	"tablescout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	SearchUC     usecase.SearchUsecase
	EnrichmentUC usecase.EnrichmentUsecase
	ClaimUC      usecase.ClaimUsecase
	ScoringUC    usecase.ScoringUsecase
	Logger       *slog.Logger
}

// PlaceHandler serves search, enrichment, claim and scoring endpoints.
type PlaceHandler struct {
	searchUC     usecase.SearchUsecase
	enrichmentUC usecase.EnrichmentUsecase
	claimUC      usecase.ClaimUsecase
	scoringUC    usecase.ScoringUsecase
	logger       *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		searchUC:     params.SearchUC,
		enrichmentUC: params.EnrichmentUC,
		claimUC:      params.ClaimUC,
		scoringUC:    params.ScoringUC,
		logger:       params.Logger,
	}
}

// NearbyRequest is a proximity lookup over cached places.
type NearbyRequest struct {
	Lat   float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lng   float64 `query:"lng" validate:"gte=-180,lte=180"`
	Limit int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// EnrichRequest lists the places to bring to the rich level.
type EnrichRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,required,max=256"`
}

// ScoreRequest carries the caller's free-form dining preferences.
type ScoreRequest struct {
	Preferences string `json:"preferences" validate:"max=2000"`
}

// PlacesResponse is a list of places.
type PlacesResponse struct {
	Places []*entity.Place `json:"places"`
}

// SearchNearby handles GET /v1/places/search
func (h *PlaceHandler) SearchNearby(c echo.Context) error {
	var input usecase.SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.searchUC.SearchNearby(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// QueryByProximity handles GET /v1/places/nearby
func (h *PlaceHandler) QueryByProximity(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid proximity parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	places, err := h.searchUC.QueryByProximity(c.Request().Context(), req.Lat, req.Lng, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PlacesResponse{Places: places})
}

// Enrich handles POST /v1/places/enrich
func (h *PlaceHandler) Enrich(c echo.Context) error {
	var req EnrichRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrichment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	places, err := h.enrichmentUC.Enrich(c.Request().Context(), req.IDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PlacesResponse{Places: places})
}

// GetPlace handles GET /v1/places/:id
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	id, ok := placeID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	place, err := h.enrichmentUC.GetOrFetchEntity(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, place)
}

// GetView handles GET /v1/places/:id/view
func (h *PlaceHandler) GetView(c echo.Context) error {
	id, ok := placeID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	view, err := h.claimUC.ResolveClaimed(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateClaim handles PUT /v1/places/:id/claim
func (h *PlaceHandler) UpdateClaim(c echo.Context) error {
	operatorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	id, ok := placeID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	var input usecase.ClaimInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.claimUC.UpdateClaim(c.Request().Context(), id, operatorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// WithdrawClaim handles DELETE /v1/places/:id/claim
func (h *PlaceHandler) WithdrawClaim(c echo.Context) error {
	operatorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	id, ok := placeID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	view, err := h.claimUC.UpdateClaim(c.Request().Context(), id, operatorID, nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ScorePlace handles POST /v1/places/:id/score
func (h *PlaceHandler) ScorePlace(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	id, ok := placeID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scoring input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.scoringUC.ScorePlace(c.Request().Context(), userID, id, req.Preferences)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func placeID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))

	return id, id != ""
}
