package handler

import (
	"net/http"
	"sync"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const sessionContextKey = "session"

// TokenVerifier turns a bearer token into a session
type TokenVerifier interface {
	Verify(token string) (*session.Session, error)
}

// Authenticate attaches the caller's session when an Authorization header is
// present. Anonymous requests pass through; invalid tokens are rejected.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		s, err := verifier.Verify(header)
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// RequireSession rejects anonymous requests
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentSession(c) == nil {
			writeError(c, apperr.Unauthorized("session", "sign in required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// IPRateLimiter manages per-IP rate limiters
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{rate: r, burst: burst}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	limiter, ok := i.limiters.Load(ip)
	if !ok {
		limiter, _ = i.limiters.LoadOrStore(ip, rate.NewLimiter(i.rate, i.burst))
	}
	return limiter.(*rate.Limiter)
}

// Middleware rejects requests above the per-IP rate with 429
func (i *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !i.getLimiter(c.ClientIP()).Allow() {
			log.Warn().Str("client_ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("rate_limit_exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
