package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"eventcollection/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			event: &domain.Event{
				EventID:     101,
				OrganizerID: 1,
				EventDate:   strPtr("2023-12-15"),
				Expense:     floatPtr(5000),
				EventTime:   strPtr("18:00"),
				EventName:   "Tech Expo 2023",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event`).
					WithArgs(101, 1, "2023-12-15", 5000.0, "18:00", "Tech Expo 2023").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate key",
			event: &domain.Event{
				EventID:     101,
				OrganizerID: 1,
				EventDate:   strPtr("2023-12-15"),
				EventTime:   strPtr("18:00"),
				EventName:   "Tech Expo 2023",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "event_pkey"})
			},
			wantErr: domain.ErrDuplicateKey,
		},
		{
			name: "missing organizer",
			event: &domain.Event{
				EventID:     107,
				OrganizerID: 99,
				EventDate:   strPtr("2023-12-15"),
				EventTime:   strPtr("18:00"),
				EventName:   "Orphan Event",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "event_organizer_id_fkey"})
			},
			wantErr: domain.ErrForeignKeyMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT event_id, organizer_id, event_date, expense, event_time, event_name`).
			WithArgs(101).
			WillReturnRows(sqlmock.NewRows([]string{"event_id", "organizer_id", "event_date", "expense", "event_time", "event_name"}).
				AddRow(101, 1, nil, 5000.0, "18:00", "Tech Expo 2023"))

		repo := NewEventRepository(db)
		got, err := repo.GetByID(ctx, 101)
		require.NoError(t, err)
		require.Equal(t, 101, got.EventID)
		require.Equal(t, 1, got.OrganizerID)
		require.Nil(t, got.EventDate)
		require.Equal(t, floatPtr(5000), got.Expense)
		require.Equal(t, strPtr("18:00"), got.EventTime)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT event_id, organizer_id, event_date, expense, event_time, event_name`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		got, err := repo.GetByID(ctx, 999)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("bound set clause", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE event SET organizer_id = \$1, event_name = \$2 WHERE event_id = \$3`).
			WithArgs(2, "Renamed", 101).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		affected, err := repo.Update(ctx, 101, []domain.FieldAssignment{
			{Column: "organizer_id", Value: 2},
			{Column: "event_name", Value: "Renamed"},
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), affected)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no fields", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewEventRepository(db)
		_, err = repo.Update(ctx, 101, nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("zero rows affected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE event SET event_name = \$1 WHERE event_id = \$2`).
			WithArgs("Renamed", 999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		affected, err := repo.Update(ctx, 999, []domain.FieldAssignment{{Column: "event_name", Value: "Renamed"}})
		require.NoError(t, err)
		require.Zero(t, affected)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   106,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event WHERE event_id = \$1`).
					WithArgs(106).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   999,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event WHERE event_id = \$1`).
					WithArgs(999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "dependent rows",
			id:   101,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event WHERE event_id = \$1`).
					WithArgs(101).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "feedback_event_id_fkey"})
			},
			wantErr: domain.ErrHasDependents,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Summaries(t *testing.T) {
	ctx := context.Background()

	summaryColumns := []string{"event_id", "event_name", "event_date", "event_time", "organizer_name", "average_rating"}

	t.Run("no filters, null average kept", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`LEFT JOIN feedback f ON e.event_id = f.event_id`).
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(101, "Tech Expo 2023", nil, "18:00", "UBC Science", 4.0).
				AddRow(107, "Unrated Event", nil, "09:00", "IKB", nil))

		repo := NewEventRepository(db)
		got, err := repo.Summaries(ctx, domain.SummaryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, floatPtr(4.0), got[0].AverageRating)
		require.Nil(t, got[1].AverageRating)
	})

	t.Run("all filters bound in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE e.organizer_id = \$1 AND e.event_name ILIKE '%' \|\| \$2 \|\| '%' GROUP BY .+ HAVING AVG\(f.rating\) >= \$3`).
			WithArgs(1, "Expo", 3.5).
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(101, "Tech Expo 2023", nil, "18:00", "UBC Science", 4.0))

		min := 3.5
		org := 1
		repo := NewEventRepository(db)
		got, err := repo.Summaries(ctx, domain.SummaryFilter{
			MinAverageRating: &min,
			OrganizerID:      &org,
			EventName:        "Expo",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_HighRatedDetailed(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`HAVING AVG\(f.rating\) > \$1`).
		WithArgs(4.0).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "organizer_id", "event_date", "expense", "event_time", "event_name", "average_rating"}).
			AddRow(106, 3, nil, 2500.0, "16:00", "Historical Archives Tour", 4.0))

	repo := NewEventRepository(db)
	got, err := repo.HighRatedDetailed(ctx, 4.0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 106, got[0].EventID)
	require.Equal(t, 4.0, got[0].AverageRating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListAll_Unavailable(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT event_id, organizer_id`).
		WillReturnError(&pq.Error{Code: "08006"})

	repo := NewEventRepository(db)
	got, err := repo.ListAll(ctx)
	require.Nil(t, got)
	require.True(t, errors.Is(err, domain.ErrUnavailable))
}
