package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/pkg/crypto"
	"mise.backend/pkg/jwt"
	"mise.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminKeyHeader carries the admin key for option mutations
	AdminKeyHeader = "X-Admin-Key"
	// IdentityKey is the context key for the caller identity
	IdentityKey = "identity"
)

// IdentityMiddleware attaches the caller identity from a bearer token.
// Requests without a token continue anonymously; a malformed, invalid or
// expired token is rejected.
func IdentityMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			logger.Debug(c.Request.Context(), "Identity token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Abort(c, domainerrors.Unauthorized("Token has expired"))
				return
			}
			response.Abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		identity := &entities.Identity{
			Subject:         claims.Subject,
			Issuer:          claims.Issuer,
			Name:            claims.Name,
			Email:           claims.Email,
			TokenIdentifier: entities.TokenIdentifierFor(claims.Issuer, claims.Subject),
		}
		c.Set(IdentityKey, identity)
		ctx := context.WithValue(c.Request.Context(), logger.SubjectKey, identity.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdentity gets the caller identity from context, or nil for anonymous requests
func GetIdentity(c *gin.Context) *entities.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*entities.Identity)
	return identity
}

// AdminKeyMiddleware requires an X-Admin-Key matching keyHash. An empty keyHash
// leaves the route open.
func AdminKeyMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.Next()
			return
		}
		if !crypto.CheckKey(c.GetHeader(AdminKeyHeader), keyHash) {
			logger.Warn(c.Request.Context(), "Admin key rejected", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("invalid admin key"))
			return
		}
		c.Next()
	}
}
