package handler

import (
	"event-tracker-auth/config"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/model/requestresponse"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/util"
	"net/http"
	"time"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookies cookiePolicy
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	cookieConfig config.CookieConfig,
	sessionMaxAge time.Duration,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		newCookiePolicy(cookieConfig, sessionMaxAge),
	}
}

// GoogleLogin godoc
// @Summary Вход через Google
// @Description Проверяет Google ID-токен и выдаёт пару токенов. Мобильные клиенты (X-Client-Type: mobile) получают refresh токен в теле ответа, веб-клиенты в httpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.GoogleLoginRequest true "Тело запроса"
// @Param X-Client-Type header string false "Тип клиента" Enums(web, mobile)
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Не удалось авторизовать пользователя"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/google [post]
func (h *AuthenticationHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.GoogleLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	meta := model.ClientMetadata{UserAgent: r.UserAgent(), RememberMe: req.RememberMe}
	tokens, err := h.AuthenticationService.Login(r.Context(), req.IDToken, meta)
	if err != nil {
		util.Logger.Infof("[AuthenticationHandler] вход не выполнен: %v", err)
		writeServiceError(w, err)
		return
	}

	h.deliverTokens(w, r, tokens)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обменивает refresh токен (из cookie или тела запроса) на новую пару. Старый refresh токен становится недействительным.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса (для мобильных клиентов)"
// @Param X-Client-Type header string false "Тип клиента" Enums(web, mobile)
// @Success 200 {object} requestresponse.LoginResponse "Новые токены"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Сессия завершена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		return
	}

	secret := readCookie(r, refreshTokenCookie)
	if secret == "" {
		secret = req.RefreshToken
	}
	if secret == "" {
		sendErrorResponse(w, http.StatusUnauthorized, "не удалось авторизовать пользователя")
		return
	}

	rememberMe := readCookie(r, rememberMeCookie) == "true"
	if req.RememberMe != nil {
		rememberMe = *req.RememberMe
	}

	meta := model.ClientMetadata{UserAgent: r.UserAgent(), RememberMe: rememberMe}
	tokens, err := h.AuthenticationService.Refresh(r.Context(), secret, meta)
	if err != nil {
		util.Logger.Infof("[AuthenticationHandler] обновление токенов не выполнено: %v", err)
		if !isMobileClient(r) {
			h.cookies.clear(w)
		}
		writeServiceError(w, err)
		return
	}

	h.deliverTokens(w, r, tokens)
}

// Logout godoc
// @Summary Завершение текущей сессии
// @Description Отзывает предъявленный refresh токен и очищает cookie. Отсутствующий или просроченный токен не считается ошибкой, сбой хранилища возвращается как 500.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LogoutRequest false "Тело запроса (для мобильных клиентов)"
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LogoutRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		return
	}

	secret := readCookie(r, refreshTokenCookie)
	if secret == "" {
		secret = req.RefreshToken
	}

	h.cookies.clear(w)

	if err := h.AuthenticationService.Logout(r.Context(), secret); err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.LogoutResponse{}
	resp.Response.LoggedOut = true
	sendJSON(w, http.StatusOK, resp)
}

// LogoutAll godoc
// @Summary Выход на всех устройствах
// @Description Отзывает все refresh токены текущего пользователя
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/logout-all [post]
func (h *AuthenticationHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	if err := h.AuthenticationService.LogoutEverywhere(r.Context(), claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	h.cookies.clear(w)

	resp := requestresponse.LogoutResponse{}
	resp.Response.LoggedOut = true
	sendJSON(w, http.StatusOK, resp)
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает идентификатор и email пользователя из access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.CurrentUserResponse{}
	resp.Response.UserID = claims.UserID
	resp.Response.Email = claims.Email
	sendJSON(w, http.StatusOK, resp)
}

// GetCurrentUserHead godoc
// @Summary Текущий пользователь
// @Description Проверка действительности access токена без тела ответа
// @Tags Authentication
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/me [head]
func (h *AuthenticationHandler) GetCurrentUserHead(w http.ResponseWriter, r *http.Request) {
	h.GetCurrentUser(w, r)
}

// deliverTokens : access токен всегда в теле, refresh в теле только для мобильных клиентов
func (h *AuthenticationHandler) deliverTokens(w http.ResponseWriter, r *http.Request, tokens *model.TokensPair) {
	resp := requestresponse.LoginResponse{}
	resp.Response.AccessToken = tokens.AccessToken

	if isMobileClient(r) {
		resp.Response.RefreshToken = tokens.RefreshToken
	} else {
		h.cookies.set(w, tokens.RefreshToken, tokens.RememberMe)
	}

	w.Header().Set("Cache-Control", "no-store")
	sendJSON(w, http.StatusOK, resp)
}
