package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) ListAll(ctx context.Context) ([]*domain.Participant, error) {
	query := `
		SELECT participant_id, participant_name, participant_email
		FROM participant
		ORDER BY participant_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		var nameNull, emailNull sql.NullString
		if err := rows.Scan(&p.ParticipantID, &nameNull, &emailNull); err != nil {
			return nil, err
		}
		if nameNull.Valid {
			p.Name = &nameNull.String
		}
		if emailNull.Valid {
			p.Email = &emailNull.String
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participant (participant_id, participant_name, participant_email)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, p.ParticipantID, p.Name, p.Email)
	return writeError(err)
}

func (r *participantRepository) Update(ctx context.Context, participantID int, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, participantID)
	query := fmt.Sprintf(`UPDATE participant SET %s WHERE participant_id = $%d`,
		strings.Join(setClauses, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *participantRepository) Delete(ctx context.Context, participantID int) error {
	query := `DELETE FROM participant WHERE participant_id = $1`
	result, err := r.DB.ExecContext(ctx, query, participantID)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
