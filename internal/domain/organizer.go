package domain

import "context"

// Organizer represents an event organizer. Name and PhoneNo are nullable in the
// schema; (Name, PhoneNo) is unique.
type Organizer struct {
	OrganizerID int     `json:"OrganizerID"`
	Name        *string `json:"OrganizerName"`
	Email       string  `json:"OrganizerEmail"`
	PhoneNo     *string `json:"OrganizerPhoneNo"`
}

// OrganizerEventCount is one row of the total-events-per-organizer report.
// Organizers with no events appear with TotalEvents 0.
type OrganizerEventCount struct {
	OrganizerID int     `json:"OrganizerID"`
	Name        *string `json:"OrganizerName"`
	TotalEvents int     `json:"TotalEvents"`
}

// OrganizerContact is one row of the organizer contact-detail report.
type OrganizerContact struct {
	Name    *string `json:"OrganizerName"`
	Email   string  `json:"OrganizerEmail"`
	PhoneNo *string `json:"OrganizerPhoneNo"`
}

// OrganizerRepository defines storage operations for organizers and the
// organizer-centric reports.
type OrganizerRepository interface {
	ListAll(ctx context.Context) ([]*Organizer, error)
	Create(ctx context.Context, o *Organizer) error
	Update(ctx context.Context, organizerID int, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, organizerID int) error
	Exists(ctx context.Context, organizerID int) (bool, error)
	TotalEventsPerOrganizer(ctx context.Context) ([]*OrganizerEventCount, error)
	HighestAverageRating(ctx context.Context) (*float64, error)
	ContactDetails(ctx context.Context) ([]*OrganizerContact, error)
}

// OrganizerService defines organizer CRUD and reporting operations.
type OrganizerService interface {
	ListOrganizers(ctx context.Context) ([]*Organizer, error)
	AddOrganizer(ctx context.Context, o *Organizer) error
	UpdateOrganizer(ctx context.Context, organizerID int, fields map[string]any) error
	DeleteOrganizer(ctx context.Context, organizerID int) error
	TotalEventsPerOrganizer(ctx context.Context) ([]*OrganizerEventCount, error)
	HighestAverageRating(ctx context.Context) (*float64, error)
	ContactDetails(ctx context.Context) ([]*OrganizerContact, error)
}
