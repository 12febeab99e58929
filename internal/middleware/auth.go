package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func validateJWT(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Auth resolves the caller's user ID from a Bearer token, falling back to
// the X-User-ID header set by the gateway. Protected routes reject requests
// that carry neither.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if strings.HasPrefix(tokenString, "Bearer ") {
			tokenString = tokenString[7:]
		}

		if tokenString != "" {
			claims, err := validateJWT(tokenString, secret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			userID := claims.UserID
			// Clean up ObjectID string format if present
			if strings.HasPrefix(userID, "ObjectID(\"") && strings.HasSuffix(userID, "\")") {
				userID = userID[10 : len(userID)-2]
			}
			c.Set("userID", userID)
			c.Next()
			return
		}

		if headerID := c.GetHeader("X-User-ID"); headerID != "" {
			c.Set("userID", headerID)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	}
}

// UserID reads the authenticated user ID set by Auth.
func UserID(c *gin.Context) string {
	if id, ok := c.Get("userID"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return c.GetHeader("X-User-ID")
}
