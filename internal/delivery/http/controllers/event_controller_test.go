package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listEventsErr       error
	listEventsResult    []*domain.Event
	getEventErr         error
	getEventResult      *domain.Event
	addEventErr         error
	updateEventErr      error
	deleteEventErr      error
	summariesErr        error
	summariesResult     []*domain.EventSummary
	highRatedErr        error
	highRatedResult     []*domain.RatedEvent
	searchErr           error
	searchResult        []*domain.Event
	lastAddEvent        *domain.Event
	lastUpdateEventID   int
	lastUpdateFields    map[string]any
	lastDeleteEventID   int
	lastSummariesFilter domain.SummaryFilter
	lastHighRatedCutoff float64
	lastSearchOrganizer *int
	lastSearchEventName string
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	return f.listEventsResult, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID int) (*domain.Event, error) {
	if f.getEventErr != nil {
		return nil, f.getEventErr
	}
	return f.getEventResult, nil
}

func (f *fakeEventService) AddEvent(ctx context.Context, e *domain.Event) error {
	f.lastAddEvent = e
	return f.addEventErr
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID int, fields map[string]any) error {
	f.lastUpdateEventID = eventID
	f.lastUpdateFields = fields
	return f.updateEventErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID int) error {
	f.lastDeleteEventID = eventID
	return f.deleteEventErr
}

func (f *fakeEventService) EventSummaries(ctx context.Context, filter domain.SummaryFilter) ([]*domain.EventSummary, error) {
	f.lastSummariesFilter = filter
	if f.summariesErr != nil {
		return nil, f.summariesErr
	}
	return f.summariesResult, nil
}

func (f *fakeEventService) HighRatedDetailed(ctx context.Context, threshold float64) ([]*domain.RatedEvent, error) {
	f.lastHighRatedCutoff = threshold
	if f.highRatedErr != nil {
		return nil, f.highRatedErr
	}
	return f.highRatedResult, nil
}

func (f *fakeEventService) SearchEvents(ctx context.Context, organizerID *int, eventName string) ([]*domain.Event, error) {
	f.lastSearchOrganizer = organizerID
	f.lastSearchEventName = eventName
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	return envelope
}

func TestEventController_ListEvents(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		fakeResult []*domain.Event
		wantStatus int
		wantCode   string
		checkData  func(t *testing.T, data any)
	}{
		{
			name:       "success with events",
			fakeResult: []*domain.Event{{EventID: 101, OrganizerID: 1, EventName: "Tech Conference"}},
			wantStatus: http.StatusOK,
			checkData: func(t *testing.T, data any) {
				dataBytes, err := json.Marshal(data)
				require.NoError(t, err)
				var events []domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &events))
				require.Len(t, events, 1)
				assert.Equal(t, 101, events[0].EventID)
				assert.Equal(t, "Tech Conference", events[0].EventName)
			},
		},
		{
			name:       "success empty is an array, not null",
			fakeResult: nil,
			wantStatus: http.StatusOK,
			checkData: func(t *testing.T, data any) {
				arr, ok := data.([]any)
				require.True(t, ok, "data must be an array")
				assert.Len(t, arr, 0)
			},
		},
		{
			name:       "store unreachable",
			fakeErr:    domain.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   helpers.ErrCodeUnavailable,
		},
		{
			name:       "service error",
			fakeErr:    errors.New("scan failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{listEventsErr: tt.fakeErr, listEventsResult: tt.fakeResult}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/event", nil)
			rr := httptest.NewRecorder()

			ctrl.ListEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error, "success response must have error nil")
				tt.checkData(t, envelope.Data)
				return
			}
			require.NotNil(t, envelope.Error, "error response must have error set")
			assert.Equal(t, tt.wantCode, envelope.Error.Code, "error code")
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		fakeResult *domain.Event
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			eventID:    "101",
			fakeResult: &domain.Event{EventID: 101, OrganizerID: 1, EventName: "Tech Conference"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-integer id",
			eventID:    "abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "not found",
			eventID:    "999",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "store unreachable",
			eventID:    "101",
			fakeErr:    domain.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   helpers.ErrCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{getEventErr: tt.fakeErr, getEventResult: tt.fakeResult}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/event/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				assert.Equal(t, 101, event.EventID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeEventService)
	}{
		{
			name:       "success",
			body:       `{"EventID":201,"OrganizerID":1,"EventDate":"2023-12-15","EventTime":"18:00","EventName":"New Event"}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeEventService) {
				require.NotNil(t, fake.lastAddEvent)
				assert.Equal(t, 201, fake.lastAddEvent.EventID)
				assert.Equal(t, "New Event", fake.lastAddEvent.EventName)
			},
		},
		{
			name:       "invalid json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing required fields",
			body:       `{"EventDate":"2023-12-15"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"EventID":201,"OrganizerID":1,"EventName":"New Event","Venue":"Hall A"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "duplicate id",
			body:       `{"EventID":101,"OrganizerID":1,"EventName":"New Event"}`,
			fakeErr:    domain.ErrDuplicateKey,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "unknown organizer",
			body:       `{"EventID":201,"OrganizerID":99,"EventName":"New Event"}`,
			fakeErr:    domain.ErrForeignKeyMissing,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{addEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/event", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				tt.checkCall(t, fake)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeEventService)
	}{
		{
			name:       "success",
			eventID:    "101",
			body:       `{"EventName":"Renamed","Expense":1200.50}`,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeEventService) {
				assert.Equal(t, 101, fake.lastUpdateEventID)
				assert.Equal(t, "Renamed", fake.lastUpdateFields["EventName"])
			},
		},
		{
			name:       "non-integer id",
			eventID:    "abc",
			body:       `{"EventName":"Renamed"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "invalid json",
			eventID:    "101",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown event",
			eventID:    "999",
			body:       `{"EventName":"Renamed"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "rejected field",
			eventID:    "101",
			body:       `{"EventID":5}`,
			fakeErr:    domain.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{updateEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPut, "http://test/event/"+tt.eventID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

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

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", eventID: "101", wantStatus: http.StatusOK},
		{name: "non-integer id", eventID: "abc", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "not found", eventID: "999", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "dependent rows", eventID: "101", fakeErr: domain.ErrHasDependents, wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/event/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, 101, fake.lastDeleteEventID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestEventController_EventSummaries(t *testing.T) {
	t.Run("filters parsed from query string", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/eventSummaries?minAverageRating=3.5&organizerId=2&eventName=conf", nil)
		rr := httptest.NewRecorder()

		ctrl.EventSummaries(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastSummariesFilter.MinAverageRating)
		assert.Equal(t, 3.5, *fake.lastSummariesFilter.MinAverageRating)
		require.NotNil(t, fake.lastSummariesFilter.OrganizerID)
		assert.Equal(t, 2, *fake.lastSummariesFilter.OrganizerID)
		assert.Equal(t, "conf", fake.lastSummariesFilter.EventName)
	})

	t.Run("non-numeric rating filter", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/eventSummaries?minAverageRating=high", nil)
		rr := httptest.NewRecorder()

		ctrl.EventSummaries(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	})

	t.Run("out-of-range filter rejected by service", func(t *testing.T) {
		fake := &fakeEventService{summariesErr: domain.ErrInvalidInput}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/eventSummaries?minAverageRating=6", nil)
		rr := httptest.NewRecorder()

		ctrl.EventSummaries(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/eventSummaries", nil)
		rr := httptest.NewRecorder()

		ctrl.EventSummaries(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		arr, ok := envelope.Data.([]any)
		require.True(t, ok, "data must be an array")
		assert.Len(t, arr, 0)
	})
}

func TestEventController_HighRatedDetailed(t *testing.T) {
	t.Run("threshold parsed from path", func(t *testing.T) {
		fake := &fakeEventService{
			highRatedResult: []*domain.RatedEvent{
				{Event: domain.Event{EventID: 101, EventName: "Tech Conference"}, AverageRating: 4.5},
			},
		}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "http://test/event/high-rated-detailed/4", nil)
		req.SetPathValue("ratingThreshold", "4")
		rr := httptest.NewRecorder()

		ctrl.HighRatedDetailed(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 4.0, fake.lastHighRatedCutoff)
	})

	t.Run("non-numeric threshold", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "http://test/event/high-rated-detailed/high", nil)
		req.SetPathValue("ratingThreshold", "high")
		rr := httptest.NewRecorder()

		ctrl.HighRatedDetailed(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	})
}

func TestEventController_SearchEvents(t *testing.T) {
	t.Run("both filters forwarded", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/event/search?organizerId=1&eventName=tech", nil)
		rr := httptest.NewRecorder()

		ctrl.SearchEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastSearchOrganizer)
		assert.Equal(t, 1, *fake.lastSearchOrganizer)
		assert.Equal(t, "tech", fake.lastSearchEventName)
	})

	t.Run("no filters means nil organizer", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/event/search", nil)
		rr := httptest.NewRecorder()

		ctrl.SearchEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, fake.lastSearchOrganizer)
	})
}
