package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type feedbackService struct {
	feedbackRepo   domain.FeedbackRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewFeedbackService(feedbackRepo domain.FeedbackRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.FeedbackService {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.feedbackRepo.ListAll(ctx)
}

// AddFeedback enforces the rating bounds before the row is written. Ratings
// outside [0,5] never reach storage, so the averages reported elsewhere stay
// within the same bounds.
func (s *feedbackService) AddFeedback(ctx context.Context, f *domain.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if f.FeedbackID <= 0 {
		return invalidf("FeedbackID is required and must be a positive integer")
	}
	if f.Rating != nil && !validRating(*f.Rating) {
		return invalidf("Rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	if f.EventID != nil {
		exists, err := s.eventRepo.Exists(ctx, *f.EventID)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: EventID %d", domain.ErrForeignKeyMissing, *f.EventID)
		}
	}
	return s.feedbackRepo.Create(ctx, f)
}

var feedbackUpdatableFields = []string{"EventID", "Rating", "Feedback"}

func feedbackAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, feedbackUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range feedbackUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch name {
		case "EventID":
			id, err := intValue(v)
			if err != nil || id <= 0 {
				return nil, invalidf("EventID must be a positive integer")
			}
			out = append(out, domain.FieldAssignment{Column: "event_id", Value: id})
		case "Rating":
			r, err := intValue(v)
			if err != nil || !validRating(r) {
				return nil, invalidf("Rating must be an integer between %d and %d", domain.MinRating, domain.MaxRating)
			}
			out = append(out, domain.FieldAssignment{Column: "rating", Value: r})
		case "Feedback":
			c, err := stringValue(v)
			if err != nil {
				return nil, invalidf("Feedback must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "feedback", Value: c})
		}
	}
	return out, nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, feedbackID int, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := feedbackAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.feedbackRepo.Update(ctx, feedbackID, assignments)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, feedbackID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.feedbackRepo.Delete(ctx, feedbackID)
}
