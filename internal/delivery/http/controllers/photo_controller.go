package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreatePhotoRequest is the request body for POST /Photo.
type CreatePhotoRequest struct {
	PhotoID     int     `json:"PhotoID"`
	EventID     *int    `json:"EventID"`
	Description *string `json:"Description"`
}

// Validate implements Validator.
func (c CreatePhotoRequest) Validate() []string {
	if c.PhotoID == 0 {
		return []string{"PhotoID is required"}
	}
	return nil
}

type PhotoController struct {
	Logger  *slog.Logger
	Service domain.PhotoService
}

func NewPhotoController(logger *slog.Logger, svc domain.PhotoService) *PhotoController {
	return &PhotoController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPhotos godoc
// @Summary List all event photos
// @Tags photos
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of photos"
// @Router /Photo [get]
func (c *PhotoController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := c.Service.ListPhotos(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if photos == nil {
		photos = []*domain.EventPhoto{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, photos)
}

// CreatePhoto godoc
// @Summary Create an event photo
// @Tags photos
// @Accept json
// @Produce json
// @Param photo body CreatePhotoRequest true "Photo data"
// @Success 201 {object} helpers.APIResponse "data contains the created photo"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /Photo [post]
func (c *PhotoController) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req CreatePhotoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	photo := &domain.EventPhoto{
		PhotoID:     req.PhotoID,
		EventID:     req.EventID,
		Description: req.Description,
	}
	if err := c.Service.AddPhoto(r.Context(), photo); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, photo)
}

// UpdatePhoto godoc
// @Summary Partially update an event photo
// @Tags photos
// @Accept json
// @Produce json
// @Param photoID path int true "Photo ID"
// @Param body body object true "Fields to update (EventID, Description)"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /Photo/{photoID} [put]
func (c *PhotoController) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.Atoi(r.PathValue("photoID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "photoID must be an integer")
		return
	}
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdatePhoto(r.Context(), photoID, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "photo updated"})
}

// DeletePhoto godoc
// @Summary Delete an event photo
// @Tags photos
// @Produce json
// @Param photoID path int true "Photo ID"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /Photo/{photoID} [delete]
func (c *PhotoController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.Atoi(r.PathValue("photoID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "photoID must be an integer")
		return
	}
	if err := c.Service.DeletePhoto(r.Context(), photoID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "photo deleted"})
}
