package handler

import (
	"event-tracker-auth/config"
	"net/http"
	"strconv"
	"time"
)

const (
	refreshTokenCookie = "refresh_token"
	rememberMeCookie   = "remember_me"
	clientTypeHeader   = "X-Client-Type"
	clientTypeMobile   = "mobile"
)

// cookiePolicy : веб-клиенты получают refresh токен только в httpOnly cookie
type cookiePolicy struct {
	secure bool
	path   string
	domain string
	maxAge time.Duration
}

func newCookiePolicy(cfg config.CookieConfig, sessionMaxAge time.Duration) cookiePolicy {
	return cookiePolicy{
		secure: cfg.Secure,
		path:   cfg.RefreshPath,
		domain: cfg.Domain,
		maxAge: sessionMaxAge,
	}
}

func isMobileClient(r *http.Request) bool {
	return r.Header.Get(clientTypeHeader) == clientTypeMobile
}

// set : без "запомнить меня" cookie живёт до закрытия браузера
func (p cookiePolicy) set(w http.ResponseWriter, refreshToken string, rememberMe bool) {
	maxAge := 0
	if rememberMe {
		maxAge = int(p.maxAge.Seconds())
	}

	http.SetCookie(w, p.cookie(refreshTokenCookie, refreshToken, maxAge))
	http.SetCookie(w, p.cookie(rememberMeCookie, strconv.FormatBool(rememberMe), maxAge))
}

func (p cookiePolicy) clear(w http.ResponseWriter) {
	http.SetCookie(w, p.cookie(refreshTokenCookie, "", -1))
	http.SetCookie(w, p.cookie(rememberMeCookie, "", -1))
}

func (p cookiePolicy) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     p.path,
		Domain:   p.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func readCookie(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
