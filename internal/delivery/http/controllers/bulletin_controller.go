package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"thecommons/internal/delivery/http/helpers"
	"thecommons/internal/domain"
)

// Bulletin post field limits.
const (
	maxPostTitle   = 200
	maxPostContent = 5000
	maxPostName    = 120
)

// CreatePostRequest is the request body for POST /towns/{town}/posts.
type CreatePostRequest struct {
	Title         string `json:"title"`
	OrgName       string `json:"org_name"`
	SubmitterName string `json:"submitter_name"`
	Content       string `json:"content"`
}

// Validate implements Validator. Returns error messages for required and length rules.
func (req CreatePostRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	} else if utf8.RuneCountInString(req.Title) > maxPostTitle {
		errs = append(errs, "title is too long")
	}
	if strings.TrimSpace(req.Content) == "" {
		errs = append(errs, "content is required")
	} else if utf8.RuneCountInString(req.Content) > maxPostContent {
		errs = append(errs, "content is too long")
	}
	if utf8.RuneCountInString(req.OrgName) > maxPostName {
		errs = append(errs, "org_name is too long")
	}
	if utf8.RuneCountInString(req.SubmitterName) > maxPostName {
		errs = append(errs, "submitter_name is too long")
	}
	return errs
}

// ListPostsResponse is the response body for GET /towns/{town}/posts.
type ListPostsResponse struct {
	Items      []*domain.BulletinPost `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListPostsSuccessResponse is the success response envelope for GET /towns/{town}/posts (200).
type ListPostsSuccessResponse struct {
	Data  ListPostsResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreatePostSuccessResponse is the success response envelope for POST /towns/{town}/posts (201).
type CreatePostSuccessResponse struct {
	Data  *domain.BulletinPost `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type BulletinController struct {
	Logger  *slog.Logger
	Service domain.BulletinService
}

func NewBulletinController(logger *slog.Logger, svc domain.BulletinService) *BulletinController {
	return &BulletinController{Logger: logger, Service: svc}
}

// ListPosts godoc
// @Summary List a town's bulletin board
// @Description Newest posts first, paginated.
// @Tags bulletin
// @Produce json
// @Param town path string true "Town slug"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 50)"
// @Success 200 {object} controllers.ListPostsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town}/posts [get]
func (c *BulletinController) ListPosts(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	params := helpers.ParsePagination(r)
	posts, total, err := c.Service.ListPosts(r.Context(), slug, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPostsResponse{
		Items:      posts,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// CreatePost godoc
// @Summary Post to a town's bulletin board
// @Tags bulletin
// @Accept json
// @Produce json
// @Param town path string true "Town slug"
// @Param post body CreatePostRequest true "Post"
// @Success 201 {object} controllers.CreatePostSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town}/posts [post]
func (c *BulletinController) CreatePost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	var req CreatePostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post := domain.NewBulletinPost("", req.Title, req.OrgName, req.SubmitterName, req.Content)
	if err := c.Service.CreatePost(r.Context(), slug, post); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}
