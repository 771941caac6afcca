package controllers

import (
	"log/slog"
	"net/http"

	"thecommons/internal/delivery/http/helpers"
	"thecommons/internal/domain"
)

// RegionTownsResponse is the response body for GET /regions/{region}/towns.
type RegionTownsResponse struct {
	Region *domain.Region     `json:"region"`
	Towns  []*domain.TownCard `json:"towns"`
}

// RegionTownsSuccessResponse is the success response envelope for GET /regions/{region}/towns (200).
type RegionTownsSuccessResponse struct {
	Data  RegionTownsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// TownPageSuccessResponse is the success response envelope for GET /towns/{town} (200).
type TownPageSuccessResponse struct {
	Data  *domain.TownPage  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TownController struct {
	Logger *slog.Logger
	Towns  domain.TownService
	Events domain.EventService
	Now    Clock
}

func NewTownController(logger *slog.Logger, towns domain.TownService, events domain.EventService, now Clock) *TownController {
	return &TownController{
		Logger: logger,
		Towns:  towns,
		Events: events,
		Now:    now,
	}
}

// ListRegionTowns godoc
// @Summary List the towns of a region
// @Description Returns the region and its visible towns, active first. Passive towns are flagged coming_soon and are not interactive.
// @Tags towns
// @Produce json
// @Param region path string true "Region slug"
// @Success 200 {object} controllers.RegionTownsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /regions/{region}/towns [get]
func (c *TownController) ListRegionTowns(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("region")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing region")
		return
	}
	region, towns, err := c.Towns.ListRegionTowns(r.Context(), slug)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegionTownsResponse{Region: region, Towns: towns})
}

// GetTownPage godoc
// @Summary Get a town page
// @Description Returns the town with its events grouped into this_week, next_week and later, its latest bulletin posts and its business directory.
// @Tags towns
// @Produce json
// @Param town path string true "Town slug"
// @Success 200 {object} controllers.TownPageSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town} [get]
func (c *TownController) GetTownPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	page, err := c.Events.TownPage(r.Context(), slug, c.Now())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}
