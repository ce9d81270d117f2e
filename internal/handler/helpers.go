package handler

import (
	"encoding/json"
	"errors"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/model/requestresponse"
	"event-tracker-auth/internal/security"
	"event-tracker-auth/internal/util"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// decodeOptionalJSON : пустое тело допустимо
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
	return err
}

func validateRequest(w http.ResponseWriter, request interface{}) bool {
	if err := validate.Struct(request); err != nil {
		util.Logger.Debugf("[Handler] запрос не прошёл валидацию: %v", err)
		sendErrorResponse(w, http.StatusBadRequest, "некорректные параметры запроса")
		return false
	}
	return true
}

// currentClaims : claims из JWTMiddleware, при отсутствии пишет 401
func currentClaims(w http.ResponseWriter, r *http.Request) (*security.Claims, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return nil, false
	}
	return claims, true
}

// writeServiceError : клиенту не сообщается, какая именно проверка не прошла
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidIdentity),
		errors.Is(err, model.ErrSessionEnded),
		errors.Is(err, model.ErrTokenNotFound):
		sendErrorResponse(w, http.StatusUnauthorized, "не удалось авторизовать пользователя")
	case errors.Is(err, model.ErrForbidden):
		sendErrorResponse(w, http.StatusForbidden, "доступ запрещён")
	case errors.Is(err, model.ErrInvalidCursor):
		sendErrorResponse(w, http.StatusBadRequest, "некорректный курсор")
	case errors.Is(err, model.ErrResourceNotFound):
		sendErrorResponse(w, http.StatusNotFound, "ресурс не найден")
	default:
		util.Logger.Errorf("[Handler] внутренняя ошибка: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

func sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		util.Logger.Warnf("ошибка кодирования ответа: %v", err)
	}
}
