package domain

import "context"

// Event represents an organized event. EventDate is a YYYY-MM-DD string and
// EventTime an HH:MM string on the wire; both are nullable in the schema.
type Event struct {
	EventID     int      `json:"EventID"`
	OrganizerID int      `json:"OrganizerID"`
	EventDate   *string  `json:"EventDate"`
	Expense     *float64 `json:"Expense"`
	EventTime   *string  `json:"EventTime"`
	EventName   string   `json:"EventName"`
}

// EventSummary is one row of the event-summaries report. AverageRating is nil
// for events with no feedback, otherwise rounded to one decimal place.
type EventSummary struct {
	EventID       int      `json:"EventID"`
	EventName     string   `json:"EventName"`
	EventDate     *string  `json:"EventDate"`
	EventTime     *string  `json:"EventTime"`
	OrganizerName *string  `json:"OrganizerName"`
	AverageRating *float64 `json:"AverageRating"`
}

// SummaryFilter holds the optional filters of the event-summaries report.
// MinAverageRating applies after aggregation; the others before.
type SummaryFilter struct {
	MinAverageRating *float64
	OrganizerID      *int
	EventName        string
}

// RatedEvent is one row of the high-rated-events-detailed report: the full
// event tuple plus its average rating.
type RatedEvent struct {
	Event
	AverageRating float64 `json:"AverageRating"`
}

// EventRepository defines storage operations for events and the event-centric
// reports.
type EventRepository interface {
	ListAll(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, eventID int) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, eventID int, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, eventID int) error
	Exists(ctx context.Context, eventID int) (bool, error)
	Summaries(ctx context.Context, filter SummaryFilter) ([]*EventSummary, error)
	HighRatedDetailed(ctx context.Context, threshold float64) ([]*RatedEvent, error)
	Search(ctx context.Context, organizerID *int, eventName string) ([]*Event, error)
}

// EventService defines event CRUD, search, and reporting operations.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, eventID int) (*Event, error)
	AddEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, eventID int, fields map[string]any) error
	DeleteEvent(ctx context.Context, eventID int) error
	EventSummaries(ctx context.Context, filter SummaryFilter) ([]*EventSummary, error)
	HighRatedDetailed(ctx context.Context, threshold float64) ([]*RatedEvent, error)
	SearchEvents(ctx context.Context, organizerID *int, eventName string) ([]*Event, error)
}
