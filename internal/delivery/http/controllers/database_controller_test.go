package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSchemaService implements domain.SchemaService for handler tests.
type fakeSchemaService struct {
	tablesErr        error
	tablesResult     []string
	attributesErr    error
	attributesResult []string
	projectErr       error
	projectResult    []map[string]any
	lastTableName    string
	lastColumns      []string
}

func (f *fakeSchemaService) ListTables(ctx context.Context) ([]string, error) {
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tablesResult, nil
}

func (f *fakeSchemaService) ListTableAttributes(ctx context.Context, tableName string) ([]string, error) {
	f.lastTableName = tableName
	if f.attributesErr != nil {
		return nil, f.attributesErr
	}
	return f.attributesResult, nil
}

func (f *fakeSchemaService) ProjectTable(ctx context.Context, tableName string, columns []string) ([]map[string]any, error) {
	f.lastTableName = tableName
	f.lastColumns = columns
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	return f.projectResult, nil
}

func TestDatabaseController_ListTables(t *testing.T) {
	fake := &fakeSchemaService{tablesResult: []string{"event", "organizer"}}
	ctrl := NewDatabaseController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	rr := httptest.NewRecorder()

	ctrl.ListTables(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var tables []string
	require.NoError(t, json.Unmarshal(dataBytes, &tables))
	assert.Equal(t, []string{"event", "organizer"}, tables)
}

func TestDatabaseController_ListTableAttributes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeSchemaService{attributesResult: []string{"event_id", "event_name"}}
		ctrl := NewDatabaseController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "http://test/tables/event/attributes", nil)
		req.SetPathValue("tableName", "event")
		rr := httptest.NewRecorder()

		ctrl.ListTableAttributes(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "event", fake.lastTableName)
	})

	t.Run("unknown table", func(t *testing.T) {
		fake := &fakeSchemaService{attributesErr: domain.ErrNotFound}
		ctrl := NewDatabaseController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "http://test/tables/no_such/attributes", nil)
		req.SetPathValue("tableName", "no_such")
		rr := httptest.NewRecorder()

		ctrl.ListTableAttributes(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestDatabaseController_CustomizedTable(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		fakeErr    error
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeSchemaService)
	}{
		{
			name:       "success splits the column list",
			target:     "/customized-table?tableName=organizer&selectedAttributes=organizer_id,%20organizer_name",
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeSchemaService) {
				assert.Equal(t, "organizer", fake.lastTableName)
				assert.Equal(t, []string{"organizer_id", "organizer_name"}, fake.lastColumns)
			},
		},
		{
			name:       "missing tableName",
			target:     "/customized-table?selectedAttributes=organizer_id",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing selectedAttributes",
			target:     "/customized-table?tableName=organizer",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown column",
			target:     "/customized-table?tableName=organizer&selectedAttributes=no_such_column",
			fakeErr:    domain.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown table",
			target:     "/customized-table?tableName=no_such&selectedAttributes=organizer_id",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSchemaService{projectErr: tt.fakeErr}
			ctrl := NewDatabaseController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			ctrl.CustomizedTable(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				tt.checkCall(t, fake)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}
