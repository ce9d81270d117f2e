package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"event-tracker-auth/internal/util"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secretSize = 32

// GenerateSecret : создаёт непрозрачный refresh-секрет (256 бит из crypto/rand)
func GenerateSecret() (string, error) {
	secretBytes := make([]byte, secretSize)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", util.LogError("[TokenCodec] ошибка генерации секрета", err)
	}

	return base64.RawURLEncoding.EncodeToString(secretBytes), nil
}

// HashSecret : SHA-256 хэш секрета в hex, используется как ключ поиска
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// SignAccessToken : подписывает claims алгоритмом HS512, срок жизни отсчитывается от now
func SignAccessToken(claims Claims, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(secretKey)
	if err != nil {
		return "", util.LogError("[TokenCodec] ошибка подписи токена", err)
	}

	return signed, nil
}

// VerifyAccessToken : проверяет подпись и срок действия.
// Любая ошибка означает отсутствие сессии, поэтому возвращается false
func VerifyAccessToken(tokenStr string, secretKey []byte, now time.Time) (*Claims, bool) {
	claims := &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !jwtToken.Valid {
		util.Logger.Debugf("[TokenCodec] невалидный access токен: %v", err)
		return nil, false
	}

	if claims.UserID == "" {
		return nil, false
	}

	return claims, true
}
