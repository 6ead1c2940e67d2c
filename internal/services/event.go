package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	organizerRepo  domain.OrganizerRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, organizerRepo domain.OrganizerRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		organizerRepo:  organizerRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.ListAll(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, eventID int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetByID(ctx, eventID)
}

// AddEvent validates the event, pre-checks that the organizer exists and the
// EventID is unused, then inserts the row.
func (s *eventService) AddEvent(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if e.EventID <= 0 {
		return invalidf("EventID is required and must be a positive integer")
	}
	if e.OrganizerID <= 0 {
		return invalidf("OrganizerID is required and must be a positive integer")
	}
	if e.EventDate == nil || !validDate(*e.EventDate) {
		return invalidf("EventDate is required in YYYY-MM-DD format")
	}
	if e.EventTime == nil || !validTime(*e.EventTime) {
		return invalidf("EventTime is required in HH:MM format")
	}
	if e.EventName == "" {
		return invalidf("EventName is required")
	}
	if len(e.EventName) > maxEventNameLen {
		return invalidf("EventName too long, maximum %d characters", maxEventNameLen)
	}

	exists, err := s.organizerRepo.Exists(ctx, e.OrganizerID)
	if err != nil {
		return fmt.Errorf("check organizer: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: OrganizerID %d", domain.ErrForeignKeyMissing, e.OrganizerID)
	}
	taken, err := s.eventRepo.Exists(ctx, e.EventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: EventID %d", domain.ErrDuplicateKey, e.EventID)
	}

	return s.eventRepo.Create(ctx, e)
}

// eventUpdatableFields lists the JSON field names accepted by UpdateEvent, in
// the column order assignments are bound.
var eventUpdatableFields = []string{"OrganizerID", "EventDate", "Expense", "EventTime", "EventName"}

func eventAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, eventUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range eventUpdatableFields {
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
		case "EventDate":
			d, err := stringValue(v)
			if err != nil || !validDate(d) {
				return nil, invalidf("EventDate must be in YYYY-MM-DD format")
			}
			out = append(out, domain.FieldAssignment{Column: "event_date", Value: d})
		case "Expense":
			exp, err := floatValue(v)
			if err != nil {
				return nil, invalidf("Expense must be a number")
			}
			out = append(out, domain.FieldAssignment{Column: "expense", Value: exp})
		case "EventTime":
			t, err := stringValue(v)
			if err != nil || !validTime(t) {
				return nil, invalidf("EventTime must be in HH:MM format")
			}
			out = append(out, domain.FieldAssignment{Column: "event_time", Value: t})
		case "EventName":
			n, err := stringValue(v)
			if err != nil || n == "" || len(n) > maxEventNameLen {
				return nil, invalidf("EventName must be a non-empty string of at most %d characters", maxEventNameLen)
			}
			out = append(out, domain.FieldAssignment{Column: "event_name", Value: n})
		}
	}
	return out, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID int, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := eventAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.eventRepo.Update(ctx, eventID, assignments)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.Delete(ctx, eventID)
}

func (s *eventService) EventSummaries(ctx context.Context, filter domain.SummaryFilter) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if filter.MinAverageRating != nil {
		if *filter.MinAverageRating < domain.MinRating || *filter.MinAverageRating > domain.MaxRating {
			return nil, invalidf("minAverageRating must be between %d and %d", domain.MinRating, domain.MaxRating)
		}
	}
	return s.eventRepo.Summaries(ctx, filter)
}

// HighRatedDetailed rejects thresholds outside the rating bounds before any
// statement is issued.
func (s *eventService) HighRatedDetailed(ctx context.Context, threshold float64) ([]*domain.RatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if threshold < domain.MinRating || threshold > domain.MaxRating {
		return nil, invalidf("rating threshold must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	return s.eventRepo.HighRatedDetailed(ctx, threshold)
}

func (s *eventService) SearchEvents(ctx context.Context, organizerID *int, eventName string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.Search(ctx, organizerID, eventName)
}
