package handler

import (
	"context"
	"encoding/json"
	"errors"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/model/requestresponse"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, ownerID string, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, ownerID, event)
	if e, ok := args.Get(0).(*model.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, userID, eventID string) (*model.Event, error) {
	args := m.Called(ctx, userID, eventID)
	if e, ok := args.Get(0).(*model.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, userID, cursor string, limit int) ([]*model.Event, string, error) {
	args := m.Called(ctx, userID, cursor, limit)
	if events, ok := args.Get(0).([]*model.Event); ok {
		return events, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

const testEventID = "0d6f2c9a-5a3e-4c55-9a8a-3a0e7f1b2c3d"

var testEvent = &model.Event{
	ID:        testEventID,
	OwnerID:   "u1",
	Title:     "Стоматолог",
	StartsAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	CreatedAt: time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC),
}

// newEventRouter : маршруты событий с подставленным пользователем u1
func newEventRouter(eventService *MockEventService) http.Handler {
	h := NewEventHandler(eventService)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withClaims(req, "u1", "u1@gmail.com"))
		})
	})
	r.Post("/api/events", h.CreateEvent)
	r.Get("/api/events", h.ListEvents)
	r.Get("/api/events/{id}", h.GetEvent)
	r.Delete("/api/events/{id}", h.DeleteEvent)
	return r
}

func TestCreateEvent(t *testing.T) {
	eventService := new(MockEventService)
	eventService.On("CreateEvent", mock.Anything, "u1", mock.MatchedBy(func(e *model.Event) bool {
		return e.Title == "Стоматолог" && e.StartsAt.Equal(testEvent.StartsAt)
	})).Return(testEvent, nil)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/events",
		`{"title":"Стоматолог","starts_at":"2025-09-01T10:00:00Z"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp requestresponse.GetEventResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, testEventID, resp.Data.ID)
	assert.Equal(t, "2025-09-01T10:00:00Z", resp.Data.StartsAt)
	eventService.AssertExpectations(t)
}

func TestCreateEvent_Validation(t *testing.T) {
	eventService := new(MockEventService)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/events", `{"title":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	eventService.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "найдено", err: nil, wantCode: http.StatusOK},
		{name: "чужое событие", err: model.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "нет события", err: model.ErrResourceNotFound, wantCode: http.StatusNotFound},
		{name: "ошибка БД", err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventService := new(MockEventService)
			if tt.err == nil {
				eventService.On("GetEvent", mock.Anything, "u1", testEventID).Return(testEvent, nil)
			} else {
				eventService.On("GetEvent", mock.Anything, "u1", testEventID).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			eventService.AssertExpectations(t)
		})
	}
}

func TestListEvents(t *testing.T) {
	eventService := new(MockEventService)
	eventService.On("ListEvents", mock.Anything, "u1", "c1", 5).
		Return([]*model.Event{testEvent}, "c2", nil)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?cursor=c1&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.ListEventsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "c2", resp.NextCursor)
	require.Len(t, resp.Data.Events, 1)
	assert.Equal(t, testEventID, resp.Data.Events[0].ID)
}

func TestListEvents_InvalidLimit(t *testing.T) {
	eventService := new(MockEventService)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	eventService.AssertNotCalled(t, "ListEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteEvent(t *testing.T) {
	eventService := new(MockEventService)
	eventService.On("DeleteEvent", mock.Anything, "u1", testEventID).Return(nil)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/events/"+testEventID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.DeleteEventResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Response[testEventID])
}

func TestDeleteEvent_Forbidden(t *testing.T) {
	eventService := new(MockEventService)
	eventService.On("DeleteEvent", mock.Anything, "u1", testEventID).Return(model.ErrForbidden)

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/events/"+testEventID, nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListEvents_InvalidCursor(t *testing.T) {
	eventService := new(MockEventService)
	eventService.On("ListEvents", mock.Anything, "u1", "garbage", 0).
		Return(nil, "", fmt.Errorf("[EventService] [EventRepo] курсор без разделителя: %w", model.ErrInvalidCursor))

	rec := httptest.NewRecorder()
	newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?cursor=garbage", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "некорректный курсор", decodeError(t, rec).Error.Text)
}

func TestEventByID_MalformedIDIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
	}{
		{name: "получение", method: http.MethodGet},
		{name: "удаление", method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventService := new(MockEventService)

			rec := httptest.NewRecorder()
			newEventRouter(eventService).ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/events/not-a-uuid", nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "ресурс не найден", decodeError(t, rec).Error.Text)
			eventService.AssertNotCalled(t, "GetEvent", mock.Anything, mock.Anything, mock.Anything)
			eventService.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
