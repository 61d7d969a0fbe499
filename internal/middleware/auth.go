package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saripudin14/siwate/internal/dto"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTProtected validates the Authorization bearer token and stores the
// authenticated user id and role in the gin context.
func JWTProtected(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization header missing"})
			return
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(authorization, bearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid authorization header"})
			return
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token claims"})
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub < 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token subject"})
			return
		}
		c.Set(ContextUserID, uint(sub))

		if role, ok := claims["role"].(string); ok {
			c.Set(ContextUserRole, strings.ToLower(strings.TrimSpace(role)))
		}

		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token role is not one of
// the allowed roles. It must run after JWTProtected.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		name, _ := role.(string)
		if _, ok := allowed[name]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// UserIDFromContext reads the authenticated user id set by JWTProtected.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
