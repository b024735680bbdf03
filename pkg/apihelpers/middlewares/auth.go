package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/Furquan712/geo-survey/pkg/jwt-handling"
	userTypes "github.com/Furquan712/geo-survey/pkg/user-management/types"
)

const HeaderAuthorization = "Authorization"

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("no token found in Authorization header")
		}
	} else {
		return token, errors.New("no Authorization header found")
	}
	return token, nil
}

// GetAndValidateUserJWT extracts the JWT from the request, validates it and
// stores the parsed claims in the gin context.
func GetAndValidateUserJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		parsedToken, ok, err := jwthandling.ValidateUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			return
		}
		c.Set("validatedToken", parsedToken)
	}
}

// GetValidatedUserClaims reads the claims a previous GetAndValidateUserJWT
// stored in the context.
func GetValidatedUserClaims(c *gin.Context) (*jwthandling.UserClaims, bool) {
	tokenValue, ok := c.Get("validatedToken")
	if !ok {
		return nil, false
	}
	claims, ok := tokenValue.(*jwthandling.UserClaims)
	return claims, ok
}

// IsAdminUser rejects requests whose validated token does not carry the ADMIN
// role. The check runs before any data access.
func IsAdminUser() gin.HandlerFunc {
	return requireRole(userTypes.USER_ROLE_ADMIN)
}

// IsAgentUser rejects requests whose validated token does not carry the AGENT
// role.
func IsAgentUser() gin.HandlerFunc {
	return requireRole(userTypes.USER_ROLE_AGENT)
}

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetValidatedUserClaims(c)
		if !ok {
			slog.Warn("requireRole: validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "validatedToken not found in context"})
			return
		}

		if claims.Role != role {
			slog.Warn("role mismatch on protected endpoint",
				slog.String("userID", claims.Subject),
				slog.String("role", claims.Role),
				slog.String("required", role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}
	}
}

// RequirePayload blocks post requests that have no payload attached
func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("RequirePayload Middleware: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}
		c.Next()
	}
}
