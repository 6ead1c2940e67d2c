package domain

import "context"

// EventPhoto is one photo attached to an event.
type EventPhoto struct {
	PhotoID     int     `json:"PhotoID"`
	EventID     *int    `json:"EventID"`
	Description *string `json:"Description"`
}

// PhotoRepository defines storage operations for event photos.
type PhotoRepository interface {
	ListAll(ctx context.Context) ([]*EventPhoto, error)
	Create(ctx context.Context, p *EventPhoto) error
	Update(ctx context.Context, photoID int, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, photoID int) error
}

// PhotoService defines event-photo CRUD operations.
type PhotoService interface {
	ListPhotos(ctx context.Context) ([]*EventPhoto, error)
	AddPhoto(ctx context.Context, p *EventPhoto) error
	UpdatePhoto(ctx context.Context, photoID int, fields map[string]any) error
	DeletePhoto(ctx context.Context, photoID int) error
}
