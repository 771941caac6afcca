package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"thecommons/internal/adapters/icalfeed"
	"thecommons/internal/calendar"
	"thecommons/internal/delivery/http/helpers"
	"thecommons/internal/domain"
)

// TownEventsResponse is the response body for GET /towns/{town}/events.
type TownEventsResponse struct {
	Town   *domain.Town        `json:"town"`
	Events domain.EventBuckets `json:"events"`
}

// TownEventsSuccessResponse is the success response envelope for GET /towns/{town}/events (200).
type TownEventsSuccessResponse struct {
	Data  TownEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RegionEventsSuccessResponse is the success response envelope for GET /regions/{region}/events (200).
type RegionEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Now     Clock
}

func NewEventController(logger *slog.Logger, svc domain.EventService, now Clock) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     now,
	}
}

// ListRegionEvents godoc
// @Summary List and filter a region's events
// @Description Returns events of the region's visible towns sorted by start time. towns narrows to the given town IDs, tags keeps events carrying any of the given tags, time is one of all, weekday, weekend, this-week, next-week.
// @Tags events
// @Produce json
// @Param region path string true "Region slug"
// @Param towns query string false "Comma-separated town IDs (UUID)"
// @Param tags query string false "Comma-separated tag slugs"
// @Param time query string false "Time window" Enums(all, weekday, weekend, this-week, next-week)
// @Success 200 {object} controllers.RegionEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /regions/{region}/events [get]
func (c *EventController) ListRegionEvents(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("region")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing region")
		return
	}
	towns := helpers.QueryList(r, "towns")
	for _, id := range towns {
		if err := uuid.Validate(id); err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "towns must be UUIDs: "+id)
			return
		}
	}
	window, err := calendar.ParseTimeWindow(r.URL.Query().Get("time"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	criteria := domain.EventCriteria{
		Towns: towns,
		Tags:  helpers.QueryList(r, "tags"),
		Time:  window,
	}
	events, err := c.Service.RegionEvents(r.Context(), slug, criteria, c.Now())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListTownEvents godoc
// @Summary List a town's events grouped by week
// @Description Groups the town's events into this_week, next_week and later. Weeks run Sunday through Saturday.
// @Tags events
// @Produce json
// @Param town path string true "Town slug"
// @Success 200 {object} controllers.TownEventsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town}/events [get]
func (c *EventController) ListTownEvents(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	town, buckets, err := c.Service.TownEvents(r.Context(), slug, c.Now())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TownEventsResponse{Town: town, Events: buckets})
}

// TownCalendar godoc
// @Summary Subscribe to a town's events
// @Description iCalendar feed of the town's events from today on.
// @Tags events
// @Produce text/calendar
// @Param town path string true "Town slug"
// @Success 200 {string} string "VCALENDAR"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (town not active yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /towns/{town}/events.ics [get]
func (c *EventController) TownCalendar(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("town")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing town")
		return
	}
	now := c.Now()
	town, events, err := c.Service.UpcomingTownEvents(r.Context(), slug, now)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+town.Slug+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(icalfeed.Render(town, events, now)))
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := uuid.Validate(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be a UUID")
		return
	}
	event, err := c.Service.EventByID(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
