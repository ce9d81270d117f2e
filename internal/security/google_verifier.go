package security

import (
	"context"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/util"

	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// GoogleVerifier : проверяет Google ID-токен и извлекает данные пользователя
type GoogleVerifier struct {
	clientID string
	validate validateFunc
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// NewGoogleVerifierWithValidator : то же, но с подменяемой функцией проверки
func NewGoogleVerifierWithValidator(clientID string, validate validateFunc) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: validate,
	}
}

// Verify : любая ошибка (сеть, формат, audience) даёт nil
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) *model.GoogleIdentity {
	if idToken == "" {
		return nil
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		util.Logger.Warnf("[GoogleVerifier] ID-токен не прошёл проверку: %v", err)
		return nil
	}

	if payload == nil || payload.Subject == "" {
		return nil
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		util.Logger.Warnf("[GoogleVerifier] email пользователя %s не подтверждён", payload.Subject)
		return nil
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	return &model.GoogleIdentity{
		SubjectID:   payload.Subject,
		Email:       email,
		DisplayName: name,
	}
}
