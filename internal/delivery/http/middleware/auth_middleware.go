package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fenrirlabsnl/airesume/config"
	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/audit"
	"github.com/fenrirlabsnl/airesume/pkg/auth"
)

// AdminAuthMiddleware guards the admin console routes. Tokens are
// issued by Supabase Auth: HS256 tokens verify against the shared
// secret, RS256 tokens against the project JWKS.
func AdminAuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			rejectUnauthorized(c, "Authorization header or auth_token cookie required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			rejectUnauthorized(c, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			rejectUnauthorized(c, "Invalid claims")
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)

		c.Next()
	}
}

func rejectUnauthorized(c *gin.Context, message string) {
	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventUnauthorizedAccess,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: reqIDStr,
		Details:   map[string]interface{}{"path": c.FullPath()},
	})
	response.Error(c, http.StatusUnauthorized, message, nil)
	c.Abort()
}
