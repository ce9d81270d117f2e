package requestresponse

// GoogleLoginRequest : тело запроса на вход через Google
type GoogleLoginRequest struct {
	IDToken    string `json:"id_token" validate:"required" example:"eyJhbGciOiJSUzI1NiIsImtpZCI6..."`
	RememberMe bool   `json:"remember_me" example:"true"`
}

// LoginResponse : ответ на успешную аутентификацию.
// RefreshToken заполняется только для мобильных клиентов
type LoginResponse struct {
	Response struct {
		AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refresh_token,omitempty" example:"vcSi0369y1I62wOpxZFpgZ..."`
	} `json:"response"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	Response struct {
		UserID string `json:"user_id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Email  string `json:"email" example:"user@gmail.com"`
	} `json:"response"`
}

// RefreshTokenRequest : запрос на обновление пары токенов.
// Веб-клиенты передают токен в cookie, тело может быть пустым
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"vcSi0369y1I62wOpxZFpgZ..."`
	RememberMe   *bool  `json:"remember_me,omitempty" example:"true"`
}

// LogoutRequest : запрос на завершение текущей сессии
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" example:"vcSi0369y1I62wOpxZFpgZ..."`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Response struct {
		LoggedOut bool `json:"logged_out" example:"true"`
	} `json:"response"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"401"`
	Text string `json:"text" example:"не удалось авторизовать пользователя"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
