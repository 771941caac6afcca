package controllers

import (
	"log/slog"
	"net/http"

	"thecommons/internal/delivery/http/helpers"
	"thecommons/internal/domain"
)

// ListBusinessesSuccessResponse is the success response envelope for GET /towns/{town}/businesses (200).
type ListBusinessesSuccessResponse struct {
	Data  []*domain.Business `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type BusinessController struct {
	Logger  *slog.Logger
	Service domain.BusinessService
}

func NewBusinessController(logger *slog.Logger, svc domain.BusinessService) *BusinessController {
	return &BusinessController{Logger: logger, Service: svc}
}

// ListBusinesses godoc
// @Summary List a town's businesses
// @Description Ordered by name. tags keeps businesses carrying any of the given tags.
// @Tags businesses
// @Produce json
// @Param town path string true "Town slug"
// @Param tags query string false "Comma-separated tag slugs"
// @Success 200 {object} controllers.ListBusinessesSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town}/businesses [get]
func (c *BusinessController) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	businesses, err := c.Service.ListBusinesses(r.Context(), slug, helpers.QueryList(r, "tags"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, businesses)
}
