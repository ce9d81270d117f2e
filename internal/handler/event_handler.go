package handler

import (
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/model/requestresponse"
	"event-tracker-auth/internal/ports"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventHandler struct {
	ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService}
}

// CreateEvent godoc
// @Summary Создание события
// @Tags Events
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateEventRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.GetEventResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	event, err := h.EventService.CreateEvent(r.Context(), claims.UserID, &model.Event{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, requestresponse.GetEventResponse{
		Data: requestresponse.EventResponseFromModel(event),
	})
}

// GetEvent godoc
// @Summary Получение события
// @Description Доступно только владельцу события
// @Tags Events
// @Produce json
// @Param id path string true "ID события"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GetEventResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/events/{id} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.EventService.GetEvent(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.GetEventResponse{
		Data: requestresponse.EventResponseFromModel(event),
	})
}

// ListEvents godoc
// @Summary Список событий пользователя
// @Tags Events
// @Produce json
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (по умолчанию 20, максимум 100)"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListEventsResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный limit или курсор"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "некорректный limit")
			return
		}
		limit = parsed
	}

	events, nextCursor, err := h.EventService.ListEvents(r.Context(), claims.UserID, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.ListEventsResponse{}
	resp.Data.Events = make([]requestresponse.EventResponse, 0, len(events))
	for _, event := range events {
		resp.Data.Events = append(resp.Data.Events, requestresponse.EventResponseFromModel(event))
	}
	resp.NextCursor = nextCursor
	resp.Count = len(events)

	sendJSON(w, http.StatusOK, resp)
}

// DeleteEvent godoc
// @Summary Удаление события
// @Description Доступно только владельцу события
// @Tags Events
// @Produce json
// @Param id path string true "ID события"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DeleteEventResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/events/{id} [delete]
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	if err := h.EventService.DeleteEvent(r.Context(), claims.UserID, eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.DeleteEventResponse{
		Response: map[string]bool{eventID: true},
	})
}

// eventIDParam : id не в формате UUID отвечается 404, как отсутствующее событие
func eventIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, model.ErrResourceNotFound)
		return "", false
	}
	return id.String(), true
}
