package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type sponsorService struct {
	sponsorRepo    domain.SponsorRepository
	contextTimeout time.Duration
}

func NewSponsorService(sponsorRepo domain.SponsorRepository, timeout time.Duration) domain.SponsorService {
	return &sponsorService{
		sponsorRepo:    sponsorRepo,
		contextTimeout: timeout,
	}
}

func (s *sponsorService) ListSponsors(ctx context.Context) ([]*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sponsorRepo.ListAll(ctx)
}

func (s *sponsorService) AddSponsor(ctx context.Context, sp *domain.Sponsor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sp.SponsorName == "" {
		return invalidf("SponsorName is required")
	}
	if !validPhone(sp.SponsorPhoneNo) {
		return invalidf("SponsorPhoneNo must be ten digits")
	}
	return s.sponsorRepo.Create(ctx, sp)
}

// sponsorUpdatableFields lists the JSON field names accepted by UpdateSponsor.
// The composite key is not updatable.
var sponsorUpdatableFields = []string{"SponsorEmail"}

func sponsorAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, sponsorUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	if v, ok := fields["SponsorEmail"]; ok {
		e, err := stringValue(v)
		if err != nil || e == "" {
			return nil, invalidf("SponsorEmail must be a non-empty string")
		}
		out = append(out, domain.FieldAssignment{Column: "sponsor_email", Value: e})
	}
	return out, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, sponsorName, sponsorPhoneNo string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sponsorName == "" || sponsorPhoneNo == "" {
		return invalidf("sponsor name and phone number are required")
	}
	assignments, err := sponsorAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.sponsorRepo.Update(ctx, sponsorName, sponsorPhoneNo, assignments)
	if err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, sponsorName, sponsorPhoneNo string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sponsorName == "" || sponsorPhoneNo == "" {
		return invalidf("sponsor name and phone number are required")
	}
	return s.sponsorRepo.Delete(ctx, sponsorName, sponsorPhoneNo)
}

func (s *sponsorService) SponsorsSupportingAllTypes(ctx context.Context) ([]*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sponsorRepo.SupportingAllTypes(ctx)
}

func (s *sponsorService) ListSponsorSupport(ctx context.Context, sponsorName, sponsorPhoneNo string) ([]*domain.SponsorSupport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sponsorName == "" || sponsorPhoneNo == "" {
		return nil, invalidf("sponsor name and phone number are required")
	}
	return s.sponsorRepo.ListSupport(ctx, sponsorName, sponsorPhoneNo)
}
