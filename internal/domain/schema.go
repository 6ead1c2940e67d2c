package domain

import "context"

// SchemaRepository exposes live schema metadata and the dynamic projection
// query. Table and column identifiers supplied by callers must be checked
// against the metadata before they are interpolated into SQL text; the
// repository rejects anything not present with ErrNotFound.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	ListColumns(ctx context.Context, tableName string) ([]string, error)
	Project(ctx context.Context, tableName string, columns []string) ([]map[string]any, error)
}

// SchemaService defines schema introspection and dynamic projection operations.
type SchemaService interface {
	ListTables(ctx context.Context) ([]string, error)
	ListTableAttributes(ctx context.Context, tableName string) ([]string, error)
	ProjectTable(ctx context.Context, tableName string, columns []string) ([]map[string]any, error)
}
