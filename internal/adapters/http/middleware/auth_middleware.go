package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"snp-mealhub/internal/config"
	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/pkg/jwt"
	"snp-mealhub/internal/pkg/response"
)

// AuthMiddleware creates authentication middleware. The bearer token is
// accepted from the Authorization header or the legacy x-auth-token header;
// older client call sites send one, the other, or both.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", role)

		return c.Next()
	}
}

// extractToken pulls the bearer token out of either supported header
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Get("x-auth-token")
}

// RoleMiddleware creates role-based authorization middleware. A missing
// identity yields 401; a wrong role yields 403.
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// DataEntryOnly middleware allows only the data-entry officer role
func DataEntryOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleDataEntry)
}

// VerificationOnly middleware allows only the verification officer role
func VerificationOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleVerification)
}
