package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateFeedbackRequest is the request body for POST /feedback. The comment
// field keeps the wire name "Feedback" the browser client sends.
type CreateFeedbackRequest struct {
	FeedbackID int     `json:"FeedbackID"`
	EventID    *int    `json:"EventID"`
	Rating     *int    `json:"Rating"`
	Feedback   *string `json:"Feedback"`
}

// Validate implements Validator.
func (c CreateFeedbackRequest) Validate() []string {
	if c.FeedbackID == 0 {
		return []string{"FeedbackID is required"}
	}
	return nil
}

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{
		Logger:  logger,
		Service: svc,
	}
}

// ListFeedback godoc
// @Summary List all feedback
// @Tags feedback
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of feedback rows"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := c.Service.ListFeedback(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if feedback == nil {
		feedback = []*domain.Feedback{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, feedback)
}

// CreateFeedback godoc
// @Summary Create a feedback row
// @Description Rating must be between 0 and 5; the referenced event must exist.
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} helpers.APIResponse "data contains the created feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (rating out of range)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /feedback [post]
func (c *FeedbackController) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req CreateFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	feedback := &domain.Feedback{
		FeedbackID: req.FeedbackID,
		EventID:    req.EventID,
		Rating:     req.Rating,
		Comment:    req.Feedback,
	}
	if err := c.Service.AddFeedback(r.Context(), feedback); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, feedback)
}

// UpdateFeedback godoc
// @Summary Partially update a feedback row
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedbackID path int true "Feedback ID"
// @Param body body object true "Fields to update (EventID, Rating, Feedback)"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /feedback/{feedbackID} [put]
func (c *FeedbackController) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := strconv.Atoi(r.PathValue("feedbackID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "feedbackID must be an integer")
		return
	}
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdateFeedback(r.Context(), feedbackID, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "feedback updated"})
}

// DeleteFeedback godoc
// @Summary Delete a feedback row
// @Tags feedback
// @Produce json
// @Param feedbackID path int true "Feedback ID"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /feedback/{feedbackID} [delete]
func (c *FeedbackController) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := strconv.Atoi(r.PathValue("feedbackID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "feedbackID must be an integer")
		return
	}
	if err := c.Service.DeleteFeedback(r.Context(), feedbackID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "feedback deleted"})
}
