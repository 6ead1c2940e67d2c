package services

import (
	"context"
	"strings"
	"time"

	"eventcollection/internal/domain"
)

type schemaService struct {
	schemaRepo     domain.SchemaRepository
	contextTimeout time.Duration
}

func NewSchemaService(schemaRepo domain.SchemaRepository, timeout time.Duration) domain.SchemaService {
	return &schemaService{
		schemaRepo:     schemaRepo,
		contextTimeout: timeout,
	}
}

func (s *schemaService) ListTables(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.schemaRepo.ListTables(ctx)
}

func (s *schemaService) ListTableAttributes(ctx context.Context, tableName string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tableName = strings.ToLower(strings.TrimSpace(tableName))
	if tableName == "" {
		return nil, invalidf("table name is required")
	}
	return s.schemaRepo.ListColumns(ctx, tableName)
}

// ProjectTable lowercases the requested identifiers before handing them to the
// repository, which checks them against the live schema.
func (s *schemaService) ProjectTable(ctx context.Context, tableName string, columns []string) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tableName = strings.ToLower(strings.TrimSpace(tableName))
	if tableName == "" {
		return nil, invalidf("table name is required")
	}
	if len(columns) == 0 {
		return nil, invalidf("at least one column is required")
	}
	normalized := make([]string, 0, len(columns))
	for _, c := range columns {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			return nil, invalidf("empty column name")
		}
		normalized = append(normalized, c)
	}
	return s.schemaRepo.Project(ctx, tableName, normalized)
}
