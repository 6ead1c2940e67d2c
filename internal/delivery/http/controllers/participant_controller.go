package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateParticipantRequest is the request body for POST /participant.
type CreateParticipantRequest struct {
	ParticipantID    int     `json:"ParticipantID"`
	ParticipantName  *string `json:"ParticipantName"`
	ParticipantEmail *string `json:"ParticipantEmail"`
}

// Validate implements Validator.
func (c CreateParticipantRequest) Validate() []string {
	if c.ParticipantID == 0 {
		return []string{"ParticipantID is required"}
	}
	return nil
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// ListParticipants godoc
// @Summary List all participants
// @Tags participants
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of participants"
// @Router /participant [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.ListParticipants(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// CreateParticipant godoc
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body CreateParticipantRequest true "Participant data"
// @Success 201 {object} helpers.APIResponse "data contains the created participant"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate key or name/email pair)"
// @Router /participant [post]
func (c *ParticipantController) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req CreateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant := &domain.Participant{
		ParticipantID: req.ParticipantID,
		Name:          req.ParticipantName,
		Email:         req.ParticipantEmail,
	}
	if err := c.Service.AddParticipant(r.Context(), participant); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// UpdateParticipant godoc
// @Summary Partially update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path int true "Participant ID"
// @Param body body object true "Fields to update (ParticipantName, ParticipantEmail)"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /participant/{participantID} [put]
func (c *ParticipantController) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := strconv.Atoi(r.PathValue("participantID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "participantID must be an integer")
		return
	}
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdateParticipant(r.Context(), participantID, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "participant updated"})
}

// DeleteParticipant godoc
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Param participantID path int true "Participant ID"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (attendance rows exist)"
// @Router /participant/{participantID} [delete]
func (c *ParticipantController) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := strconv.Atoi(r.PathValue("participantID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "participantID must be an integer")
		return
	}
	if err := c.Service.DeleteParticipant(r.Context(), participantID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "participant deleted"})
}
