package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type organizerService struct {
	organizerRepo  domain.OrganizerRepository
	contextTimeout time.Duration
}

func NewOrganizerService(organizerRepo domain.OrganizerRepository, timeout time.Duration) domain.OrganizerService {
	return &organizerService{
		organizerRepo:  organizerRepo,
		contextTimeout: timeout,
	}
}

func (s *organizerService) ListOrganizers(ctx context.Context) ([]*domain.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.organizerRepo.ListAll(ctx)
}

func (s *organizerService) AddOrganizer(ctx context.Context, o *domain.Organizer) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if o.OrganizerID <= 0 {
		return invalidf("OrganizerID is required and must be a positive integer")
	}
	if o.Email == "" {
		return invalidf("OrganizerEmail is required")
	}
	if o.PhoneNo != nil && !validPhone(*o.PhoneNo) {
		return invalidf("OrganizerPhoneNo must be ten digits")
	}
	return s.organizerRepo.Create(ctx, o)
}

// organizerUpdatableFields lists the JSON field names accepted by
// UpdateOrganizer. The primary key is not updatable.
var organizerUpdatableFields = []string{"OrganizerName", "OrganizerEmail", "OrganizerPhoneNo"}

func organizerAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, organizerUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range organizerUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch name {
		case "OrganizerName":
			n, err := stringValue(v)
			if err != nil {
				return nil, invalidf("OrganizerName must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "organizer_name", Value: n})
		case "OrganizerEmail":
			e, err := stringValue(v)
			if err != nil || e == "" {
				return nil, invalidf("OrganizerEmail must be a non-empty string")
			}
			out = append(out, domain.FieldAssignment{Column: "organizer_email", Value: e})
		case "OrganizerPhoneNo":
			p, err := stringValue(v)
			if err != nil || !validPhone(p) {
				return nil, invalidf("OrganizerPhoneNo must be ten digits")
			}
			out = append(out, domain.FieldAssignment{Column: "organizer_phone_no", Value: p})
		}
	}
	return out, nil
}

func (s *organizerService) UpdateOrganizer(ctx context.Context, organizerID int, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := organizerAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.organizerRepo.Update(ctx, organizerID, assignments)
	if err != nil {
		return fmt.Errorf("update organizer: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *organizerService) DeleteOrganizer(ctx context.Context, organizerID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.organizerRepo.Delete(ctx, organizerID)
}

func (s *organizerService) TotalEventsPerOrganizer(ctx context.Context) ([]*domain.OrganizerEventCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.organizerRepo.TotalEventsPerOrganizer(ctx)
}

func (s *organizerService) HighestAverageRating(ctx context.Context) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.organizerRepo.HighestAverageRating(ctx)
}

func (s *organizerService) ContactDetails(ctx context.Context) ([]*domain.OrganizerContact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.organizerRepo.ContactDetails(ctx)
}
