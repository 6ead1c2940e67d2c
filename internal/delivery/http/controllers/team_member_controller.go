package controllers

import (
	"log/slog"
	"net/http"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// CreateTeamMemberRequest is the request body for POST /teamMember. Role and
// Attribute are optional; when present the member is also written to the
// matching role table (Speaker/Photographer/Volunteer) in the same transaction.
type CreateTeamMemberRequest struct {
	MemberName    string   `json:"MemberName"`
	MemberPhoneNo string   `json:"MemberPhoneNo"`
	OrganizerID   *int     `json:"OrganizerID"`
	StaffEmail    *string  `json:"StaffEmail"`
	PayRate       *float64 `json:"PayRate"`
	Role          *string  `json:"Role"`
	Attribute     *string  `json:"Attribute"`
}

// Validate implements Validator.
func (c CreateTeamMemberRequest) Validate() []string {
	var errs []string
	if c.MemberName == "" {
		errs = append(errs, "MemberName is required")
	}
	if c.MemberPhoneNo == "" {
		errs = append(errs, "MemberPhoneNo is required")
	}
	if (c.Role == nil) != (c.Attribute == nil) {
		errs = append(errs, "Role and Attribute must be provided together")
	}
	return errs
}

// UpdateTeamMemberRequest is the request body for PUT
// /teamMember/{memberName}/{memberPhoneNo}. Fields carries the base-table
// columns to change; Role/Attribute upsert the role row.
type UpdateTeamMemberRequest struct {
	Fields    map[string]any `json:"Fields"`
	Role      *string        `json:"Role"`
	Attribute *string        `json:"Attribute"`
}

// Validate implements Validator.
func (u UpdateTeamMemberRequest) Validate() []string {
	var errs []string
	if (u.Role == nil) != (u.Attribute == nil) {
		errs = append(errs, "Role and Attribute must be provided together")
	}
	if len(u.Fields) == 0 && u.Role == nil {
		errs = append(errs, "nothing to update")
	}
	return errs
}

type TeamMemberController struct {
	Logger  *slog.Logger
	Service domain.TeamMemberService
}

func NewTeamMemberController(logger *slog.Logger, svc domain.TeamMemberService) *TeamMemberController {
	return &TeamMemberController{
		Logger:  logger,
		Service: svc,
	}
}

func roleDetail(role, attribute *string) *domain.RoleDetail {
	if role == nil || attribute == nil {
		return nil
	}
	return &domain.RoleDetail{Role: domain.MemberRole(*role), Attribute: *attribute}
}

// ListTeamMembers godoc
// @Summary List all team members
// @Tags team-members
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of team members"
// @Router /teamMember [get]
func (c *TeamMemberController) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListTeamMembers(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// CreateTeamMember godoc
// @Summary Create a team member
// @Description Optionally classifies the member as Speaker, Photographer, or Volunteer; the base row and role row are written atomically.
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} helpers.APIResponse "data contains the created member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /teamMember [post]
func (c *TeamMemberController) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member := &domain.TeamMember{
		MemberName:    req.MemberName,
		MemberPhoneNo: req.MemberPhoneNo,
		OrganizerID:   req.OrganizerID,
		StaffEmail:    req.StaffEmail,
		PayRate:       req.PayRate,
	}
	if err := c.Service.AddTeamMember(r.Context(), member, roleDetail(req.Role, req.Attribute)); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, member)
}

// UpdateTeamMember godoc
// @Summary Update a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param memberName path string true "Member name"
// @Param memberPhoneNo path string true "Member phone number"
// @Param body body UpdateTeamMemberRequest true "Fields and/or role to update"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teamMember/{memberName}/{memberPhoneNo} [put]
func (c *TeamMemberController) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	memberName := r.PathValue("memberName")
	memberPhoneNo := r.PathValue("memberPhoneNo")
	var req UpdateTeamMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateTeamMember(r.Context(), memberName, memberPhoneNo, req.Fields, roleDetail(req.Role, req.Attribute)); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "team member updated"})
}

// DeleteTeamMember godoc
// @Summary Delete a team member
// @Description Removes the member's role rows and the base row together.
// @Tags team-members
// @Produce json
// @Param memberName path string true "Member name"
// @Param memberPhoneNo path string true "Member phone number"
// @Success 200 {object} helpers.APIResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teamMember/{memberName}/{memberPhoneNo} [delete]
func (c *TeamMemberController) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	memberName := r.PathValue("memberName")
	memberPhoneNo := r.PathValue("memberPhoneNo")
	if err := c.Service.DeleteTeamMember(r.Context(), memberName, memberPhoneNo); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "team member deleted"})
}
