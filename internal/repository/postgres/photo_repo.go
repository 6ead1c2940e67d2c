package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type photoRepository struct {
	DB *sql.DB
}

func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{DB: db}
}

func (r *photoRepository) ListAll(ctx context.Context) ([]*domain.EventPhoto, error) {
	query := `
		SELECT photo_id, event_id, description
		FROM event_photo
		ORDER BY photo_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	photos := make([]*domain.EventPhoto, 0)
	for rows.Next() {
		p := &domain.EventPhoto{}
		var eventNull sql.NullInt64
		var descNull sql.NullString
		if err := rows.Scan(&p.PhotoID, &eventNull, &descNull); err != nil {
			return nil, err
		}
		if eventNull.Valid {
			id := int(eventNull.Int64)
			p.EventID = &id
		}
		if descNull.Valid {
			p.Description = &descNull.String
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *photoRepository) Create(ctx context.Context, p *domain.EventPhoto) error {
	query := `
		INSERT INTO event_photo (photo_id, event_id, description)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, p.PhotoID, p.EventID, p.Description)
	return writeError(err)
}

func (r *photoRepository) Update(ctx context.Context, photoID int, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, photoID)
	query := fmt.Sprintf(`UPDATE event_photo SET %s WHERE photo_id = $%d`,
		strings.Join(setClauses, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *photoRepository) Delete(ctx context.Context, photoID int) error {
	query := `DELETE FROM event_photo WHERE photo_id = $1`
	result, err := r.DB.ExecContext(ctx, query, photoID)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
