package controllers

import (
	"net/http"

	"thecommons/internal/delivery/http/helpers"
	"thecommons/internal/domain"
)

// ListTagsSuccessResponse is the success response envelope for GET /tags (200).
type ListTagsSuccessResponse struct {
	Data  []domain.Tag      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TagController struct {
	Catalog domain.TagCatalog
}

func NewTagController(catalog domain.TagCatalog) *TagController {
	return &TagController{Catalog: catalog}
}

// ListTags godoc
// @Summary List known tags
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.ListTagsSuccessResponse
// @Router /tags [get]
func (c *TagController) ListTags(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.List())
}
