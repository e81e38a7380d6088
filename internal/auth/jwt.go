// Package auth validates the bearer credential issued by the external identity
// provider and makes its userId and name claims available to handlers.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ctxUserID = "auth.userID"
	ctxName   = "auth.name"
)

// Middleware returns a gin middleware that rejects requests without a valid
// HS256 bearer token and stores the token's userId and name claims on the
// request context.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		rawID, _ := claims["userId"].(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid userId claim"})
			return
		}

		c.Set(ctxUserID, userID)
		if name, ok := claims["name"].(string); ok {
			c.Set(ctxName, name)
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Name returns the authenticated user's display name, if the token carried one.
func Name(c *gin.Context) string {
	v, ok := c.Get(ctxName)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

// NewToken signs an HS256 token carrying the userId and name claims. Token
// issuing lives in the identity provider; this helper exists for tests and
// local tooling.
func NewToken(secret string, userID uuid.UUID, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID.String(),
		"name":   name,
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
