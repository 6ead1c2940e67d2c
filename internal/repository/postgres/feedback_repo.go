package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{DB: db}
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	query := `
		SELECT feedback_id, event_id, rating, feedback
		FROM feedback
		ORDER BY feedback_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	feedback := make([]*domain.Feedback, 0)
	for rows.Next() {
		f := &domain.Feedback{}
		var eventNull, ratingNull sql.NullInt64
		var commentNull sql.NullString
		if err := rows.Scan(&f.FeedbackID, &eventNull, &ratingNull, &commentNull); err != nil {
			return nil, err
		}
		if eventNull.Valid {
			id := int(eventNull.Int64)
			f.EventID = &id
		}
		if ratingNull.Valid {
			rating := int(ratingNull.Int64)
			f.Rating = &rating
		}
		if commentNull.Valid {
			f.Comment = &commentNull.String
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	query := `
		INSERT INTO feedback (feedback_id, event_id, rating, feedback)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, f.FeedbackID, f.EventID, f.Rating, f.Comment)
	return writeError(err)
}

func (r *feedbackRepository) Update(ctx context.Context, feedbackID int, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, feedbackID)
	query := fmt.Sprintf(`UPDATE feedback SET %s WHERE feedback_id = $%d`,
		strings.Join(setClauses, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *feedbackRepository) Delete(ctx context.Context, feedbackID int) error {
	query := `DELETE FROM feedback WHERE feedback_id = $1`
	result, err := r.DB.ExecContext(ctx, query, feedbackID)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
