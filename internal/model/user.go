package model

import "time"

// User : локальная учётная запись, привязанная к аккаунту Google
type User struct {
	UUID        string    `db:"uuid" json:"uuid"`
	GoogleID    string    `db:"google_id" json:"-"`
	Email       string    `db:"email" json:"email"`
	DisplayName string    `db:"display_name" json:"display_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GoogleIdentity : проверенные данные из Google ID-токена
type GoogleIdentity struct {
	SubjectID   string
	Email       string
	DisplayName string
}
