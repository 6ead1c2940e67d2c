package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

func (r *sponsorRepository) ListAll(ctx context.Context) ([]*domain.Sponsor, error) {
	query := `
		SELECT sponsor_name, sponsor_phone_no, sponsor_email
		FROM sponsor
		ORDER BY sponsor_name, sponsor_phone_no
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		s := &domain.Sponsor{}
		var emailNull sql.NullString
		if err := rows.Scan(&s.SponsorName, &s.SponsorPhoneNo, &emailNull); err != nil {
			return nil, err
		}
		if emailNull.Valid {
			s.Email = &emailNull.String
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	query := `
		INSERT INTO sponsor (sponsor_name, sponsor_phone_no, sponsor_email)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, s.SponsorName, s.SponsorPhoneNo, s.Email)
	return writeError(err)
}

func (r *sponsorRepository) Update(ctx context.Context, sponsorName, sponsorPhoneNo string, fields []domain.FieldAssignment) (int64, error) {
	if len(fields) == 0 {
		return 0, domain.ErrInvalidInput
	}
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+2)
	for i, f := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, sponsorName, sponsorPhoneNo)
	query := fmt.Sprintf(`UPDATE sponsor SET %s WHERE sponsor_name = $%d AND sponsor_phone_no = $%d`,
		strings.Join(setClauses, ", "), len(args)-1, len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeError(err)
	}
	return result.RowsAffected()
}

func (r *sponsorRepository) Delete(ctx context.Context, sponsorName, sponsorPhoneNo string) error {
	query := `DELETE FROM sponsor WHERE sponsor_name = $1 AND sponsor_phone_no = $2`
	result, err := r.DB.ExecContext(ctx, query, sponsorName, sponsorPhoneNo)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SupportingAllTypes is a relational division: a sponsor qualifies only if no
// sponsorship type recorded anywhere in sponsor_support is missing from that
// sponsor's own support rows.
func (r *sponsorRepository) SupportingAllTypes(ctx context.Context) ([]*domain.Sponsor, error) {
	query := `
		SELECT s.sponsor_name, s.sponsor_phone_no, s.sponsor_email
		FROM sponsor s
		WHERE NOT EXISTS (
			SELECT 1
			FROM (SELECT DISTINCT sponsorship_type FROM sponsor_support) t
			WHERE NOT EXISTS (
				SELECT 1
				FROM sponsor_support ss
				WHERE ss.sponsor_name = s.sponsor_name
				  AND ss.sponsor_phone_no = s.sponsor_phone_no
				  AND ss.sponsorship_type = t.sponsorship_type
			)
		)
		ORDER BY s.sponsor_name, s.sponsor_phone_no
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		s := &domain.Sponsor{}
		var emailNull sql.NullString
		if err := rows.Scan(&s.SponsorName, &s.SponsorPhoneNo, &emailNull); err != nil {
			return nil, err
		}
		if emailNull.Valid {
			s.Email = &emailNull.String
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) ListSupport(ctx context.Context, sponsorName, sponsorPhoneNo string) ([]*domain.SponsorSupport, error) {
	query := `
		SELECT event_id, sponsor_name, sponsor_phone_no, sponsorship_type, estimated_value
		FROM sponsor_support
		WHERE sponsor_name = $1 AND sponsor_phone_no = $2
		ORDER BY event_id, sponsorship_type
	`
	rows, err := r.DB.QueryContext(ctx, query, sponsorName, sponsorPhoneNo)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	support := make([]*domain.SponsorSupport, 0)
	for rows.Next() {
		ss := &domain.SponsorSupport{}
		var valueNull sql.NullFloat64
		if err := rows.Scan(&ss.EventID, &ss.SponsorName, &ss.SponsorPhoneNo, &ss.SponsorshipType, &valueNull); err != nil {
			return nil, err
		}
		if valueNull.Valid {
			ss.EstimatedValue = &valueNull.Float64
		}
		support = append(support, ss)
	}
	return support, rows.Err()
}
