package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// RequirePageSession guards server-rendered management pages. Unlike the API
// middleware it redirects to the login page instead of answering 401, and
// carries the originally requested path so the login handler can send the
// operator back afterwards.
func RequirePageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := tokenFromRequest(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
}

// RootRedirect sends authenticated visitors of the root path on to the
// management area; everyone else goes to the login page first.
func RootRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := tokenFromRequest(c); ok {
			if _, err := ParseToken(tokenStr); err == nil {
				c.Redirect(http.StatusFound, "/admin")
				return
			}
		}
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape("/admin"))
	}
}
