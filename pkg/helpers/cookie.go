package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// CookieManager writes and clears the session cookie. In production the
// cookie is Secure with SameSite=Strict; development keeps Lax so local
// HTTP flows work.
type CookieManager struct {
	Domain     string
	Production bool
	Secure     bool
}

func NewCookieManager(domain string, production, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Production: production, Secure: secure}
}

func (m *CookieManager) sameSite() http.SameSite {
	if m.Production {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

func (m *CookieManager) secure() bool {
	return m.Production || m.Secure
}

// SetSession stores the token with a max-age matching the token's own expiry
// window (604800 seconds for the default 7 days).
func (m *CookieManager) SetSession(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(m.sameSite())
	maxAge := int(time.Until(exp).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(SessionCookieName, token, maxAge, "/", m.Domain, m.secure(), true)
}

// Clear expires the session cookie immediately.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.secure(), true)
}
