package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventcollection/internal/domain"
)

type schemaRepository struct {
	DB *sql.DB
}

func NewSchemaRepository(db *sql.DB) domain.SchemaRepository {
	return &schemaRepository{DB: db}
}

func (r *schemaRepository) ListTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (r *schemaRepository) ListColumns(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`
	rows, err := r.DB.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()
	columns := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, domain.ErrNotFound
	}
	return columns, nil
}

// Project returns all rows of tableName restricted to the requested columns.
// Identifiers cannot be bound as parameters, so both the table and every
// column are checked against information_schema before being quoted into the
// statement; anything not in that allow-list is rejected.
func (r *schemaRepository) Project(ctx context.Context, tableName string, columns []string) ([]map[string]any, error) {
	if len(columns) == 0 {
		return nil, domain.ErrInvalidInput
	}
	known, err := r.ListColumns(ctx, tableName)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(known))
	for _, c := range known {
		allowed[c] = struct{}{}
	}
	quoted := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := allowed[c]; !ok {
			return nil, fmt.Errorf("%w: unknown column %q", domain.ErrInvalidInput, c)
		}
		quoted = append(quoted, fmt.Sprintf("%q", c))
	}

	query := fmt.Sprintf(`SELECT %s FROM %q`, strings.Join(quoted, ", "), tableName)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, c := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
