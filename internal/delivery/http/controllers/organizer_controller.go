package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateOrganizerRequest is the request body for POST /organizer.
type CreateOrganizerRequest struct {
	OrganizerID      int     `json:"OrganizerID"`
	OrganizerName    *string `json:"OrganizerName"`
	OrganizerEmail   string  `json:"OrganizerEmail"`
	OrganizerPhoneNo *string `json:"OrganizerPhoneNo"`
}

// Validate implements Validator.
func (c CreateOrganizerRequest) Validate() []string {
	var errs []string
	if c.OrganizerID == 0 {
		errs = append(errs, "OrganizerID is required")
	}
	if c.OrganizerEmail == "" {
		errs = append(errs, "OrganizerEmail is required")
	}
	return errs
}

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// ListOrganizers godoc
// @Summary List all organizers
// @Tags organizers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of organizers"
// @Router /organizer [get]
func (c *OrganizerController) ListOrganizers(w http.ResponseWriter, r *http.Request) {
	organizers, err := c.Service.ListOrganizers(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if organizers == nil {
		organizers = []*domain.Organizer{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizers)
}

// CreateOrganizer godoc
// @Summary Create a new organizer
// @Tags organizers
// @Accept json
// @Produce json
// @Param organizer body CreateOrganizerRequest true "Organizer data"
// @Success 201 {object} helpers.APIResponse "data contains the created organizer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate key)"
// @Router /organizer [post]
func (c *OrganizerController) CreateOrganizer(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	organizer := &domain.Organizer{
		OrganizerID: req.OrganizerID,
		Name:        req.OrganizerName,
		Email:       req.OrganizerEmail,
		PhoneNo:     req.OrganizerPhoneNo,
	}
	if err := c.Service.AddOrganizer(r.Context(), organizer); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, organizer)
}

// UpdateOrganizer godoc
// @Summary Partially update an organizer
// @Tags organizers
// @Accept json
// @Produce json
// @Param organizerID path int true "Organizer ID"
// @Param body body object true "Fields to update (OrganizerName, OrganizerEmail, OrganizerPhoneNo)"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /organizer/{organizerID} [put]
func (c *OrganizerController) UpdateOrganizer(w http.ResponseWriter, r *http.Request) {
	organizerID, err := strconv.Atoi(r.PathValue("organizerID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "organizerID must be an integer")
		return
	}
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdateOrganizer(r.Context(), organizerID, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "organizer updated"})
}

// DeleteOrganizer godoc
// @Summary Delete an organizer
// @Description Fails with 409 while events or team members still reference the organizer.
// @Tags organizers
// @Produce json
// @Param organizerID path int true "Organizer ID"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (dependent rows exist)"
// @Router /organizer/{organizerID} [delete]
func (c *OrganizerController) DeleteOrganizer(w http.ResponseWriter, r *http.Request) {
	organizerID, err := strconv.Atoi(r.PathValue("organizerID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "organizerID must be an integer")
		return
	}
	if err := c.Service.DeleteOrganizer(r.Context(), organizerID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "organizer deleted"})
}

// TotalEvents godoc
// @Summary Total events per organizer
// @Description Organizers with no events appear with a count of zero.
// @Tags organizers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of organizer event counts"
// @Router /organizers/total-events [get]
func (c *OrganizerController) TotalEvents(w http.ResponseWriter, r *http.Request) {
	counts, err := c.Service.TotalEventsPerOrganizer(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if counts == nil {
		counts = []*domain.OrganizerEventCount{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}

// HighestAverageRatingResponse is the data payload for GET /organizers/highest-average-rating.
// HighestAverageRating is null when no organizer has rated events.
type HighestAverageRatingResponse struct {
	HighestAverageRating *float64 `json:"HighestAverageRating"`
}

// HighestAverageRating godoc
// @Summary Highest average event rating across organizers
// @Tags organizers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the highest average rating (null when no feedback exists)"
// @Router /organizers/highest-average-rating [get]
func (c *OrganizerController) HighestAverageRating(w http.ResponseWriter, r *http.Request) {
	highest, err := c.Service.HighestAverageRating(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HighestAverageRatingResponse{HighestAverageRating: highest})
}

// ContactDetails godoc
// @Summary Organizer contact details
// @Tags organizers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of organizer contacts"
// @Router /organizers/contact-detail [get]
func (c *OrganizerController) ContactDetails(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.Service.ContactDetails(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if contacts == nil {
		contacts = []*domain.OrganizerContact{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contacts)
}
