package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

// dateFormat is the wire format for event dates.
const dateFormat = "2006-01-02"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	e := &domain.Event{}
	var dateNull sql.NullTime
	var expenseNull sql.NullFloat64
	var timeNull sql.NullString
	if err := scan(&e.EventID, &e.OrganizerID, &dateNull, &expenseNull, &timeNull, &e.EventName); err != nil {
		return nil, err
	}
	if dateNull.Valid {
		s := dateNull.Time.Format(dateFormat)
		e.EventDate = &s
	}
	if expenseNull.Valid {
		e.Expense = &expenseNull.Float64
	}
	if timeNull.Valid {
		t := strings.TrimSpace(timeNull.String)
		e.EventTime = &t
	}
	return e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT event_id, organizer_id, event_date, expense, event_time, event_name
		FROM event
		ORDER BY event_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, eventID int) (*domain.Event, error) {
	query := `
		SELECT event_id, organizer_id, event_date, expense, event_time, event_name
		FROM event
		WHERE event_id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, eventID).Scan)
	if err != nil {
		return nil, readError(err)
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO event (event_id, organizer_id, event_date, expense, event_time, event_name)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, e.EventID, e.OrganizerID, e.EventDate, e.Expense, e.EventTime, e.EventName)
	return writeError(err)
}

func (r *eventRepository) Update(ctx context.Context, eventID int, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, eventID)
	query := fmt.Sprintf(`UPDATE event SET %s WHERE event_id = $%d`,
		strings.Join(setClauses, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *eventRepository) Delete(ctx context.Context, eventID int) error {
	query := `DELETE FROM event WHERE event_id = $1`
	result, err := r.DB.ExecContext(ctx, query, eventID)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, eventID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM event WHERE event_id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&exists); err != nil {
		return false, readError(err)
	}
	return exists, nil
}

// Summaries joins events with their organizer and feedback, averages the
// rating per event, and applies the optional filters. Pre-aggregation filters
// (organizer, name substring) go in WHERE; the minimum average goes in HAVING.
func (r *eventRepository) Summaries(ctx context.Context, filter domain.SummaryFilter) ([]*domain.EventSummary, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT e.event_id, e.event_name, e.event_date, e.event_time, o.organizer_name,
		       ROUND(AVG(f.rating)::numeric, 1) AS average_rating
		FROM event e
		LEFT JOIN organizer o ON e.organizer_id = o.organizer_id
		LEFT JOIN feedback f ON e.event_id = f.event_id
	`)
	var conditions []string
	var args []any
	if filter.OrganizerID != nil {
		args = append(args, *filter.OrganizerID)
		conditions = append(conditions, fmt.Sprintf("e.organizer_id = $%d", len(args)))
	}
	if filter.EventName != "" {
		args = append(args, filter.EventName)
		conditions = append(conditions, fmt.Sprintf("e.event_name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	b.WriteString(" GROUP BY e.event_id, e.event_name, e.event_date, e.event_time, o.organizer_name")
	if filter.MinAverageRating != nil {
		args = append(args, *filter.MinAverageRating)
		b.WriteString(fmt.Sprintf(" HAVING AVG(f.rating) >= $%d", len(args)))
	}
	b.WriteString(" ORDER BY e.event_id")

	rows, err := r.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	summaries := make([]*domain.EventSummary, 0)
	for rows.Next() {
		s := &domain.EventSummary{}
		var dateNull sql.NullTime
		var timeNull, organizerNull sql.NullString
		var ratingNull sql.NullFloat64
		if err := rows.Scan(&s.EventID, &s.EventName, &dateNull, &timeNull, &organizerNull, &ratingNull); err != nil {
			return nil, err
		}
		if dateNull.Valid {
			d := dateNull.Time.Format(dateFormat)
			s.EventDate = &d
		}
		if timeNull.Valid {
			t := strings.TrimSpace(timeNull.String)
			s.EventTime = &t
		}
		if organizerNull.Valid {
			s.OrganizerName = &organizerNull.String
		}
		if ratingNull.Valid {
			s.AverageRating = &ratingNull.Float64
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *eventRepository) HighRatedDetailed(ctx context.Context, threshold float64) ([]*domain.RatedEvent, error) {
	query := `
		SELECT e.event_id, e.organizer_id, e.event_date, e.expense, e.event_time, e.event_name,
		       ROUND(AVG(f.rating)::numeric, 1) AS average_rating
		FROM event e
		JOIN feedback f ON e.event_id = f.event_id
		GROUP BY e.event_id, e.organizer_id, e.event_date, e.expense, e.event_time, e.event_name
		HAVING AVG(f.rating) > $1
		ORDER BY average_rating DESC, e.event_id
	`
	rows, err := r.DB.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	rated := make([]*domain.RatedEvent, 0)
	for rows.Next() {
		re := &domain.RatedEvent{}
		var dateNull sql.NullTime
		var expenseNull sql.NullFloat64
		var timeNull sql.NullString
		if err := rows.Scan(&re.EventID, &re.OrganizerID, &dateNull, &expenseNull, &timeNull, &re.EventName, &re.AverageRating); err != nil {
			return nil, err
		}
		if dateNull.Valid {
			d := dateNull.Time.Format(dateFormat)
			re.EventDate = &d
		}
		if expenseNull.Valid {
			re.Expense = &expenseNull.Float64
		}
		if timeNull.Valid {
			t := strings.TrimSpace(timeNull.String)
			re.EventTime = &t
		}
		rated = append(rated, re)
	}
	return rated, rows.Err()
}

func (r *eventRepository) Search(ctx context.Context, organizerID *int, eventName string) ([]*domain.Event, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT event_id, organizer_id, event_date, expense, event_time, event_name
		FROM event
	`)
	var conditions []string
	var args []any
	if organizerID != nil {
		args = append(args, *organizerID)
		conditions = append(conditions, fmt.Sprintf("organizer_id = $%d", len(args)))
	}
	if eventName != "" {
		args = append(args, eventName)
		conditions = append(conditions, fmt.Sprintf("event_name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY event_id")

	rows, err := r.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
