package model

import "time"

// RefreshToken : запись о выданном refresh-токене.
// Сам секрет не хранится, только его SHA-256 хэш.
type RefreshToken struct {
	ID                string     `db:"id" json:"id"`
	TokenHash         string     `db:"token_hash" json:"token_hash"`
	UserID            string     `db:"user_id" json:"user_id"`
	ExpiresAt         time.Time  `db:"expires_at" json:"expires_at"`
	AbsoluteExpiresAt time.Time  `db:"absolute_expires_at" json:"absolute_expires_at"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	UserAgent         *string    `db:"user_agent" json:"user_agent,omitempty"`
	LastUsedAt        *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (для получения новой пары)
	// example: vcSi0369y1I62wOpxZFpgZ...
	RefreshToken string `json:"refreshToken"`

	RememberMe bool `json:"-"`
}

// TokenIdentity : результат успешной проверки refresh-токена
type TokenIdentity struct {
	UserID  string
	TokenID string
}

// ClientMetadata : данные клиента, сопровождающие выдачу токена
type ClientMetadata struct {
	UserAgent  string
	RememberMe bool
}
