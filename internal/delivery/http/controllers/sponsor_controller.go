package controllers

import (
	"log/slog"
	"net/http"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateSponsorRequest is the request body for POST /sponsor.
type CreateSponsorRequest struct {
	SponsorName    string  `json:"SponsorName"`
	SponsorPhoneNo string  `json:"SponsorPhoneNo"`
	SponsorEmail   *string `json:"SponsorEmail"`
}

// Validate implements Validator.
func (c CreateSponsorRequest) Validate() []string {
	var errs []string
	if c.SponsorName == "" {
		errs = append(errs, "SponsorName is required")
	}
	if c.SponsorPhoneNo == "" {
		errs = append(errs, "SponsorPhoneNo is required")
	}
	return errs
}

type SponsorController struct {
	Logger  *slog.Logger
	Service domain.SponsorService
}

func NewSponsorController(logger *slog.Logger, svc domain.SponsorService) *SponsorController {
	return &SponsorController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSponsors godoc
// @Summary List all sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of sponsors"
// @Router /sponsor [get]
func (c *SponsorController) ListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := c.Service.ListSponsors(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if sponsors == nil {
		sponsors = []*domain.Sponsor{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// CreateSponsor godoc
// @Summary Create a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Param sponsor body CreateSponsorRequest true "Sponsor data"
// @Success 201 {object} helpers.APIResponse "data contains the created sponsor"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate key)"
// @Router /sponsor [post]
func (c *SponsorController) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	var req CreateSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sponsor := &domain.Sponsor{
		SponsorName:    req.SponsorName,
		SponsorPhoneNo: req.SponsorPhoneNo,
		Email:          req.SponsorEmail,
	}
	if err := c.Service.AddSponsor(r.Context(), sponsor); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sponsor)
}

// UpdateSponsor godoc
// @Summary Partially update a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Param sponsorName path string true "Sponsor name"
// @Param sponsorPhoneNo path string true "Sponsor phone number"
// @Param body body object true "Fields to update (SponsorEmail)"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sponsor/{sponsorName}/{sponsorPhoneNo} [put]
func (c *SponsorController) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorName := r.PathValue("sponsorName")
	sponsorPhoneNo := r.PathValue("sponsorPhoneNo")
	var fields map[string]any
	if !helpers.DecodeFields(w, r, &fields) {
		return
	}
	if err := c.Service.UpdateSponsor(r.Context(), sponsorName, sponsorPhoneNo, fields); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "sponsor updated"})
}

// DeleteSponsor godoc
// @Summary Delete a sponsor
// @Tags sponsors
// @Produce json
// @Param sponsorName path string true "Sponsor name"
// @Param sponsorPhoneNo path string true "Sponsor phone number"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (support records exist)"
// @Router /sponsor/{sponsorName}/{sponsorPhoneNo} [delete]
func (c *SponsorController) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorName := r.PathValue("sponsorName")
	sponsorPhoneNo := r.PathValue("sponsorPhoneNo")
	if err := c.Service.DeleteSponsor(r.Context(), sponsorName, sponsorPhoneNo); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "sponsor deleted"})
}

// AllTypesSupported godoc
// @Summary Sponsors supporting every sponsorship type
// @Description Returns sponsors whose support records cover every sponsorship type present in the support table.
// @Tags sponsors
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of sponsors"
// @Router /sponsors/all-types-supported [get]
func (c *SponsorController) AllTypesSupported(w http.ResponseWriter, r *http.Request) {
	sponsors, err := c.Service.SponsorsSupportingAllTypes(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if sponsors == nil {
		sponsors = []*domain.Sponsor{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// ListSupport godoc
// @Summary List a sponsor's support records
// @Tags sponsors
// @Produce json
// @Param sponsorName path string true "Sponsor name"
// @Param sponsorPhoneNo path string true "Sponsor phone number"
// @Success 200 {object} helpers.APIResponse "data is an array of support records"
// @Router /sponsor/{sponsorName}/{sponsorPhoneNo}/support [get]
func (c *SponsorController) ListSupport(w http.ResponseWriter, r *http.Request) {
	sponsorName := r.PathValue("sponsorName")
	sponsorPhoneNo := r.PathValue("sponsorPhoneNo")
	support, err := c.Service.ListSponsorSupport(r.Context(), sponsorName, sponsorPhoneNo)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if support == nil {
		support = []*domain.SponsorSupport{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, support)
}
