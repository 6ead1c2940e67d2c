package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateEventRequest is the request body for POST /event. Field names follow
// the wire names the browser client sends.
type CreateEventRequest struct {
	EventID     int      `json:"EventID"`
	OrganizerID int      `json:"OrganizerID"`
	EventDate   string   `json:"EventDate"`
	Expense     *float64 `json:"Expense"`
	EventTime   string   `json:"EventTime"`
	EventName   string   `json:"EventName"`
}

// Validate implements Validator. Format rules live in the service layer.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.EventID == 0 {
		errs = append(errs, "EventID is required")
	}
	if c.OrganizerID == 0 {
		errs = append(errs, "OrganizerID is required")
	}
	if c.EventName == "" {
		errs = append(errs, "EventName is required")
	}
	return errs
}

// ListEventsSuccessResponse is the success response envelope for GET /event (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventSummariesSuccessResponse is the success response envelope for GET /eventSummaries (200).
type EventSummariesSuccessResponse struct {
	Data  []*domain.EventSummary `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /event [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event by ID
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be an integer")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description The organizer must already exist and the EventID must be unused.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate EventID or unknown organizer)"
// @Router /event [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		EventID:     req.EventID,
		OrganizerID: req.OrganizerID,
		EventDate:   &req.EventDate,
		Expense:     req.Expense,
		EventTime:   &req.EventTime,
		EventName:   req.EventName,
	}
	if err := c.Service.AddEvent(r.Context(), event); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Description Body carries only the fields to change (OrganizerID, EventDate, Expense, EventTime, EventName).
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body object true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be an integer")
		return
	}
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), eventID, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "event updated"})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (dependent rows exist)"
// @Router /event/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be an integer")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "event deleted"})
}

// EventSummaries godoc
// @Summary Event summaries with average rating
// @Description Optional filters: minAverageRating, organizerId, eventName (case-insensitive substring). Events without feedback have a null AverageRating unless minAverageRating is set.
// @Tags events
// @Produce json
// @Param minAverageRating query number false "Minimum average rating [0,5]"
// @Param organizerId query int false "Organizer ID"
// @Param eventName query string false "Event name substring"
// @Success 200 {object} controllers.EventSummariesSuccessResponse "data is an array of summaries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /eventSummaries [get]
func (c *EventController) EventSummaries(w http.ResponseWriter, r *http.Request) {
	var filter domain.SummaryFilter
	q := r.URL.Query()
	if raw := strings.TrimSpace(q.Get("minAverageRating")); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "minAverageRating must be a number")
			return
		}
		filter.MinAverageRating = &min
	}
	if raw := strings.TrimSpace(q.Get("organizerId")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "organizerId must be an integer")
			return
		}
		filter.OrganizerID = &id
	}
	filter.EventName = strings.TrimSpace(q.Get("eventName"))

	summaries, err := c.Service.EventSummaries(r.Context(), filter)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if summaries == nil {
		summaries = []*domain.EventSummary{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// SearchEvents godoc
// @Summary Search events by organizer and/or name
// @Tags events
// @Produce json
// @Param organizerId query int false "Organizer ID"
// @Param eventName query string false "Event name substring"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events"
// @Router /event/search [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var organizerID *int
	if raw := strings.TrimSpace(q.Get("organizerId")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "organizerId must be an integer")
			return
		}
		organizerID = &id
	}
	events, err := c.Service.SearchEvents(r.Context(), organizerID, strings.TrimSpace(q.Get("eventName")))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// HighRatedDetailed godoc
// @Summary Events with an average rating above a threshold
// @Tags events
// @Produce json
// @Param ratingThreshold path number true "Rating threshold [0,5]"
// @Success 200 {object} helpers.APIResponse "data is an array of rated events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /event/high-rated-detailed/{ratingThreshold} [get]
func (c *EventController) HighRatedDetailed(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.ParseFloat(r.PathValue("ratingThreshold"), 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "ratingThreshold must be a number")
		return
	}
	rated, err := c.Service.HighRatedDetailed(r.Context(), threshold)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if rated == nil {
		rated = []*domain.RatedEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rated)
}
