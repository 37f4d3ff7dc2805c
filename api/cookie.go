package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pagamentos/config"
	"pagamentos/middleware"
)

// getCookieOptions cookie security options for the current mode.
// release mode sets Secure; SameSite=Lax blocks cross-site POSTs.
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GlobalConfig
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	setSessionCookie(c, "", -1)
}
