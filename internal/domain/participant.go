package domain

import "context"

// Participant represents an event attendee. (Name, Email) is unique.
type Participant struct {
	ParticipantID int     `json:"ParticipantID"`
	Name          *string `json:"ParticipantName"`
	Email         *string `json:"ParticipantEmail"`
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	ListAll(ctx context.Context) ([]*Participant, error)
	Create(ctx context.Context, p *Participant) error
	Update(ctx context.Context, participantID int, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, participantID int) error
}

// ParticipantService defines participant CRUD operations.
type ParticipantService interface {
	ListParticipants(ctx context.Context) ([]*Participant, error)
	AddParticipant(ctx context.Context, p *Participant) error
	UpdateParticipant(ctx context.Context, participantID int, fields map[string]any) error
	DeleteParticipant(ctx context.Context, participantID int) error
}
