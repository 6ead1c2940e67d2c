package postgres

import (
	"context"
	"testing"

	"eventcollection/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSchemaRepository_ListTables(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("event").
			AddRow("organizer"))

	repo := NewSchemaRepository(db)
	got, err := repo.ListTables(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"event", "organizer"}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaRepository_ListColumns(t *testing.T) {
	ctx := context.Background()

	t.Run("known table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM information_schema.columns`).
			WithArgs("organizer").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
				AddRow("organizer_id").
				AddRow("organizer_name"))

		repo := NewSchemaRepository(db)
		got, err := repo.ListColumns(ctx, "organizer")
		require.NoError(t, err)
		require.Equal(t, []string{"organizer_id", "organizer_name"}, got)
	})

	t.Run("unknown table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM information_schema.columns`).
			WithArgs("no_such_table").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

		repo := NewSchemaRepository(db)
		got, err := repo.ListColumns(ctx, "no_such_table")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
	})
}

func TestSchemaRepository_Project(t *testing.T) {
	ctx := context.Background()

	t.Run("allow-listed columns quoted into statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM information_schema.columns`).
			WithArgs("organizer").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
				AddRow("organizer_id").
				AddRow("organizer_name").
				AddRow("organizer_email"))
		mock.ExpectQuery(`SELECT "organizer_id", "organizer_name" FROM "organizer"`).
			WillReturnRows(sqlmock.NewRows([]string{"organizer_id", "organizer_name"}).
				AddRow(1, "UBC Science"))

		repo := NewSchemaRepository(db)
		got, err := repo.Project(ctx, "organizer", []string{"organizer_id", "organizer_name"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "UBC Science", got[0]["organizer_name"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("column not in allow-list is rejected before querying", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM information_schema.columns`).
			WithArgs("organizer").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
				AddRow("organizer_id"))

		repo := NewSchemaRepository(db)
		got, err := repo.Project(ctx, "organizer", []string{"organizer_id; DROP TABLE organizer--"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no columns requested", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewSchemaRepository(db)
		_, err = repo.Project(ctx, "organizer", nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
