package security

import (
	"context"
	"event-tracker-auth/internal/util"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService : выпуск и проверка access токенов, без хранения состояния
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	clock     util.Clock
}

func NewJWTService(secretKey []byte, ttl time.Duration, issuer string, clock util.Clock) *JWTService {
	return &JWTService{
		secretKey: secretKey,
		ttl:       ttl,
		issuer:    issuer,
		clock:     clock,
	}
}

func (service *JWTService) Issue(userID, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  service.issuer,
			Subject: userID,
		},
	}

	return SignAccessToken(claims, service.secretKey, service.ttl, service.clock.Now())
}

func (service *JWTService) Verify(token string) (*Claims, bool) {
	claims, ok := VerifyAccessToken(token, service.secretKey, service.clock.Now())
	if !ok {
		return nil, false
	}

	if service.issuer != "" && claims.Issuer != service.issuer {
		util.Logger.Debugf("[JWTService] неожиданный издатель токена: %s", claims.Issuer)
		return nil, false
	}

	return claims, true
}

type accessTokenVerifier interface {
	Verify(token string) (*Claims, bool)
}

func JWTMiddleware(verifier accessTokenVerifier) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(verifier, next))
	}
}

func handleAuthentication(verifier accessTokenVerifier, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			util.HandleError(writer, "unauthorized", http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, ok := verifier.Verify(token)
		if !ok {
			util.HandleError(writer, "unauthorized", http.StatusUnauthorized)
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
