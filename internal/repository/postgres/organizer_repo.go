package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{DB: db}
}

func (r *organizerRepository) ListAll(ctx context.Context) ([]*domain.Organizer, error) {
	query := `
		SELECT organizer_id, organizer_name, organizer_email, organizer_phone_no
		FROM organizer
		ORDER BY organizer_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	organizers := make([]*domain.Organizer, 0)
	for rows.Next() {
		o := &domain.Organizer{}
		var nameNull, phoneNull sql.NullString
		if err := rows.Scan(&o.OrganizerID, &nameNull, &o.Email, &phoneNull); err != nil {
			return nil, err
		}
		if nameNull.Valid {
			o.Name = &nameNull.String
		}
		if phoneNull.Valid {
			o.PhoneNo = &phoneNull.String
		}
		organizers = append(organizers, o)
	}
	return organizers, rows.Err()
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizer (organizer_id, organizer_name, organizer_email, organizer_phone_no)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, o.OrganizerID, o.Name, o.Email, o.PhoneNo)
	return writeError(err)
}

func (r *organizerRepository) Update(ctx context.Context, organizerID int, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, organizerID)
	query := fmt.Sprintf(`UPDATE organizer SET %s WHERE organizer_id = $%d`,
		strings.Join(setClauses, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *organizerRepository) Delete(ctx context.Context, organizerID int) error {
	query := `DELETE FROM organizer WHERE organizer_id = $1`
	result, err := r.DB.ExecContext(ctx, query, organizerID)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *organizerRepository) Exists(ctx context.Context, organizerID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM organizer WHERE organizer_id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, organizerID).Scan(&exists); err != nil {
		return false, readError(err)
	}
	return exists, nil
}

func (r *organizerRepository) TotalEventsPerOrganizer(ctx context.Context) ([]*domain.OrganizerEventCount, error) {
	query := `
		SELECT o.organizer_id, o.organizer_name, COUNT(e.event_id) AS total_events
		FROM organizer o
		LEFT JOIN event e ON o.organizer_id = e.organizer_id
		GROUP BY o.organizer_id, o.organizer_name
		ORDER BY o.organizer_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	counts := make([]*domain.OrganizerEventCount, 0)
	for rows.Next() {
		c := &domain.OrganizerEventCount{}
		var nameNull sql.NullString
		if err := rows.Scan(&c.OrganizerID, &nameNull, &c.TotalEvents); err != nil {
			return nil, err
		}
		if nameNull.Valid {
			c.Name = &nameNull.String
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *organizerRepository) HighestAverageRating(ctx context.Context) (*float64, error) {
	query := `
		SELECT ROUND(MAX(avg_rating), 1)
		FROM (
			SELECT AVG(f.rating)::numeric AS avg_rating
			FROM event e
			JOIN feedback f ON e.event_id = f.event_id
			GROUP BY e.organizer_id
		) per_organizer
	`
	var ratingNull sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&ratingNull); err != nil {
		return nil, readError(err)
	}
	if !ratingNull.Valid {
		return nil, nil
	}
	return &ratingNull.Float64, nil
}

func (r *organizerRepository) ContactDetails(ctx context.Context) ([]*domain.OrganizerContact, error) {
	query := `
		SELECT organizer_name, organizer_email, organizer_phone_no
		FROM organizer
		ORDER BY organizer_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	contacts := make([]*domain.OrganizerContact, 0)
	for rows.Next() {
		c := &domain.OrganizerContact{}
		var nameNull, phoneNull sql.NullString
		if err := rows.Scan(&nameNull, &c.Email, &phoneNull); err != nil {
			return nil, err
		}
		if nameNull.Valid {
			c.Name = &nameNull.String
		}
		if phoneNull.Valid {
			c.PhoneNo = &phoneNull.String
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
