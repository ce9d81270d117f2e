package model

import "errors"

var (
	// ErrTokenNotFound : запись refresh-токена исчезла между проверкой и ротацией
	ErrTokenNotFound = errors.New("refresh токен не найден")

	// ErrSessionEnded : предъявленный refresh-токен отсутствует или просрочен
	ErrSessionEnded = errors.New("сессия завершена")

	// ErrInvalidIdentity : Google ID-токен не прошёл проверку
	ErrInvalidIdentity = errors.New("не удалось подтвердить личность")

	ErrForbidden        = errors.New("доступ запрещён")
	ErrResourceNotFound = errors.New("ресурс не найден")
	ErrUserNotFound     = errors.New("пользователь не найден")
	ErrInvalidCursor    = errors.New("некорректный курсор")
)
