package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

// roleTables maps each role subtype to its extension table and attribute
// column. All three tables share the (member_name, member_phone_no) key.
var roleTables = map[domain.MemberRole]struct {
	table  string
	column string
}{
	domain.RoleSpeaker:      {table: "speaker", column: "experience_level"},
	domain.RolePhotographer: {table: "photographer", column: "equipment"},
	domain.RoleVolunteer:    {table: "volunteer", column: "skill"},
}

type teamMemberRepository struct {
	DB *sql.DB
}

func NewTeamMemberRepository(db *sql.DB) domain.TeamMemberRepository {
	return &teamMemberRepository{DB: db}
}

func (r *teamMemberRepository) ListAll(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `
		SELECT member_name, member_phone_no, organizer_id, staff_email, pay_rate
		FROM team_member
		ORDER BY member_name, member_phone_no
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		m := &domain.TeamMember{}
		var organizerNull sql.NullInt64
		var emailNull sql.NullString
		var payNull sql.NullFloat64
		if err := rows.Scan(&m.MemberName, &m.MemberPhoneNo, &organizerNull, &emailNull, &payNull); err != nil {
			return nil, err
		}
		if organizerNull.Valid {
			id := int(organizerNull.Int64)
			m.OrganizerID = &id
		}
		if emailNull.Valid {
			m.StaffEmail = &emailNull.String
		}
		if payNull.Valid {
			m.PayRate = &payNull.Float64
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Create inserts the base row and, when a role is supplied, the role extension
// row in the same transaction so a partial failure leaves no orphan.
func (r *teamMemberRepository) Create(ctx context.Context, m *domain.TeamMember, role *domain.RoleDetail) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return writeError(err)
	}
	defer tx.Rollback()

	baseQuery := `
		INSERT INTO team_member (member_name, member_phone_no, organizer_id, staff_email, pay_rate)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, baseQuery, m.MemberName, m.MemberPhoneNo, m.OrganizerID, m.StaffEmail, m.PayRate); err != nil {
		return writeError(err)
	}
	if role != nil {
		rt, ok := roleTables[role.Role]
		if !ok {
			return domain.ErrInvalidInput
		}
		roleQuery := fmt.Sprintf(`INSERT INTO %s (member_name, member_phone_no, %s) VALUES ($1, $2, $3)`,
			rt.table, rt.column)
		if _, err := tx.ExecContext(ctx, roleQuery, m.MemberName, m.MemberPhoneNo, role.Attribute); err != nil {
			return writeError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return writeError(err)
	}
	return nil
}

// Update applies base-row field assignments and, when a role is supplied,
// upserts the role extension row, all in one transaction. With only a role
// supplied, the base row must still exist.
func (r *teamMemberRepository) Update(ctx context.Context, memberName, memberPhoneNo string, fields []domain.FieldAssignment, role *domain.RoleDetail) (int64, error) {
	if len(fields) == 0 && role == nil {
		return 0, domain.ErrInvalidInput
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, writeError(err)
	}
	defer tx.Rollback()

	var affected int64
	if len(fields) > 0 {
		setClauses := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+2)
		for i, f := range fields {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", f.Column, i+1))
			args = append(args, f.Value)
		}
		args = append(args, memberName, memberPhoneNo)
		query := fmt.Sprintf(`UPDATE team_member SET %s WHERE member_name = $%d AND member_phone_no = $%d`,
			strings.Join(setClauses, ", "), len(args)-1, len(args))
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, writeError(err)
		}
		affected, _ = result.RowsAffected()
		if affected == 0 {
			return 0, nil
		}
	} else {
		var exists bool
		existsQuery := `SELECT EXISTS (SELECT 1 FROM team_member WHERE member_name = $1 AND member_phone_no = $2)`
		if err := tx.QueryRowContext(ctx, existsQuery, memberName, memberPhoneNo).Scan(&exists); err != nil {
			return 0, readError(err)
		}
		if !exists {
			return 0, nil
		}
		affected = 1
	}

	if role != nil {
		rt, ok := roleTables[role.Role]
		if !ok {
			return 0, domain.ErrInvalidInput
		}
		roleQuery := fmt.Sprintf(`
			INSERT INTO %s (member_name, member_phone_no, %s)
			VALUES ($1, $2, $3)
			ON CONFLICT (member_name, member_phone_no) DO UPDATE SET %s = EXCLUDED.%s
		`, rt.table, rt.column, rt.column, rt.column)
		if _, err := tx.ExecContext(ctx, roleQuery, memberName, memberPhoneNo, role.Attribute); err != nil {
			return 0, writeError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, writeError(err)
	}
	return affected, nil
}

// Delete removes the member's role extension rows and the base row together.
func (r *teamMemberRepository) Delete(ctx context.Context, memberName, memberPhoneNo string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return deleteError(err)
	}
	defer tx.Rollback()

	for _, rt := range []string{"speaker", "photographer", "volunteer"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE member_name = $1 AND member_phone_no = $2`, rt)
		if _, err := tx.ExecContext(ctx, query, memberName, memberPhoneNo); err != nil {
			return deleteError(err)
		}
	}
	result, err := tx.ExecContext(ctx,
		`DELETE FROM team_member WHERE member_name = $1 AND member_phone_no = $2`,
		memberName, memberPhoneNo)
	if err != nil {
		return deleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return deleteError(err)
	}
	return nil
}
