package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey   = "cart_session_id" // string
	SessionCookieName = "cart_session"
)

// CartSession は匿名カート用のセッションIDをcookieで払い出すミドルウェア。
// ログイン不要なので、cookieが無ければ新しいIDを発行してそのまま使う。
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 既存のcookieがあればそれを使う
			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				c.Set(CtxSessionIDKey, cookie.Value)
				return next(c)
			}

			// 新規発行
			id := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(CtxSessionIDKey, id)

			return next(c)
		}
	}
}
