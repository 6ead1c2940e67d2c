package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewParticipantService(participantRepo domain.ParticipantRepository, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *participantService) ListParticipants(ctx context.Context) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.participantRepo.ListAll(ctx)
}

func (s *participantService) AddParticipant(ctx context.Context, p *domain.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.ParticipantID <= 0 {
		return invalidf("ParticipantID is required and must be a positive integer")
	}
	return s.participantRepo.Create(ctx, p)
}

var participantUpdatableFields = []string{"ParticipantName", "ParticipantEmail"}

func participantAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, participantUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range participantUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch name {
		case "ParticipantName":
			n, err := stringValue(v)
			if err != nil {
				return nil, invalidf("ParticipantName must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "participant_name", Value: n})
		case "ParticipantEmail":
			e, err := stringValue(v)
			if err != nil {
				return nil, invalidf("ParticipantEmail must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "participant_email", Value: e})
		}
	}
	return out, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, participantID int, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := participantAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.participantRepo.Update(ctx, participantID, assignments)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, participantID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.participantRepo.Delete(ctx, participantID)
}
