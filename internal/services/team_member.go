package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type teamMemberService struct {
	memberRepo     domain.TeamMemberRepository
	organizerRepo  domain.OrganizerRepository
	contextTimeout time.Duration
}

func NewTeamMemberService(memberRepo domain.TeamMemberRepository, organizerRepo domain.OrganizerRepository, timeout time.Duration) domain.TeamMemberService {
	return &teamMemberService{
		memberRepo:     memberRepo,
		organizerRepo:  organizerRepo,
		contextTimeout: timeout,
	}
}

func (s *teamMemberService) ListTeamMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.memberRepo.ListAll(ctx)
}

func (s *teamMemberService) AddTeamMember(ctx context.Context, m *domain.TeamMember, role *domain.RoleDetail) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if m.MemberName == "" {
		return invalidf("MemberName is required")
	}
	if !validPhone(m.MemberPhoneNo) {
		return invalidf("MemberPhoneNo must be ten digits")
	}
	if role != nil {
		if !domain.ValidRole(role.Role) {
			return invalidf("Role must be one of Speaker, Photographer, Volunteer")
		}
		if role.Attribute == "" {
			return invalidf("role attribute is required")
		}
	}
	if m.OrganizerID != nil {
		exists, err := s.organizerRepo.Exists(ctx, *m.OrganizerID)
		if err != nil {
			return fmt.Errorf("check organizer: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: OrganizerID %d", domain.ErrForeignKeyMissing, *m.OrganizerID)
		}
	}
	return s.memberRepo.Create(ctx, m, role)
}

// memberUpdatableFields lists the JSON field names accepted by
// UpdateTeamMember. The composite key is not updatable.
var memberUpdatableFields = []string{"OrganizerID", "StaffEmail", "PayRate"}

func memberAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if err := checkKnownFields(fields, memberUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range memberUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch name {
		case "OrganizerID":
			id, err := intValue(v)
			if err != nil || id <= 0 {
				return nil, invalidf("OrganizerID must be a positive integer")
			}
			out = append(out, domain.FieldAssignment{Column: "organizer_id", Value: id})
		case "StaffEmail":
			e, err := stringValue(v)
			if err != nil {
				return nil, invalidf("StaffEmail must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "staff_email", Value: e})
		case "PayRate":
			r, err := floatValue(v)
			if err != nil || r < 0 {
				return nil, invalidf("PayRate must be a non-negative number")
			}
			out = append(out, domain.FieldAssignment{Column: "pay_rate", Value: r})
		}
	}
	return out, nil
}

func (s *teamMemberService) UpdateTeamMember(ctx context.Context, memberName, memberPhoneNo string, fields map[string]any, role *domain.RoleDetail) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if memberName == "" || memberPhoneNo == "" {
		return invalidf("member name and phone number are required")
	}
	if len(fields) == 0 && role == nil {
		return invalidf("no update fields provided")
	}
	if role != nil {
		if !domain.ValidRole(role.Role) {
			return invalidf("Role must be one of Speaker, Photographer, Volunteer")
		}
		if role.Attribute == "" {
			return invalidf("role attribute is required")
		}
	}
	assignments, err := memberAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.memberRepo.Update(ctx, memberName, memberPhoneNo, assignments, role)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *teamMemberService) DeleteTeamMember(ctx context.Context, memberName, memberPhoneNo string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if memberName == "" || memberPhoneNo == "" {
		return invalidf("member name and phone number are required")
	}
	return s.memberRepo.Delete(ctx, memberName, memberPhoneNo)
}
