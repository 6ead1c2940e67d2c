package domain

import "context"

// Rating bounds for feedback. Enforced at write time.
const (
	MinRating = 0
	MaxRating = 5
)

// Feedback is one participant comment and rating for an event.
type Feedback struct {
	FeedbackID int     `json:"FeedbackID"`
	EventID    *int    `json:"EventID"`
	Rating     *int    `json:"Rating"`
	Comment    *string `json:"Feedback"`
}

// FeedbackRepository defines storage operations for feedback rows.
type FeedbackRepository interface {
	ListAll(ctx context.Context) ([]*Feedback, error)
	Create(ctx context.Context, f *Feedback) error
	Update(ctx context.Context, feedbackID int, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, feedbackID int) error
}

// FeedbackService defines feedback CRUD operations.
type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]*Feedback, error)
	AddFeedback(ctx context.Context, f *Feedback) error
	UpdateFeedback(ctx context.Context, feedbackID int, fields map[string]any) error
	DeleteFeedback(ctx context.Context, feedbackID int) error
}
