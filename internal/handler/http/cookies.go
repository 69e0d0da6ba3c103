package http

import (
	"github.com/gin-gonic/gin"

	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// setAuthCookies writes the token pair as HTTP-only cookies. Max-age follows
// the configured token lifetimes.
func setAuthCookies(c *gin.Context, cfg usecasecontract.IConfigProvider, accessToken, refreshToken string) {
	domain := cfg.GetCookieDomain()
	secure := cfg.GetCookieSecure()
	c.SetCookie(accessCookieName, accessToken, int(cfg.GetAccessTokenExpiry().Seconds()), "/", domain, secure, true)
	c.SetCookie(refreshCookieName, refreshToken, int(cfg.GetRefreshTokenExpiry().Seconds()), "/", domain, secure, true)
}

// clearAuthCookies expires both auth cookies.
func clearAuthCookies(c *gin.Context, cfg usecasecontract.IConfigProvider) {
	domain := cfg.GetCookieDomain()
	secure := cfg.GetCookieSecure()
	c.SetCookie(accessCookieName, "", -1, "/", domain, secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", domain, secure, true)
}
