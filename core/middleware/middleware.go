package middleware

import (
	"errors"
	"strings"

	"gestion-api/core/config"
	"gestion-api/core/constants"
	"gestion-api/core/controller"
	apperrors "gestion-api/core/errors"
	"gestion-api/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cfg *config.Config
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// AuthMiddleware validates the Bearer token and stores the claims on the context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, apperrors.ErrMissingAuthorizationHeader, "Authorization header manquant")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, apperrors.ErrInvalidTokenFormat, "Format de token invalide")
			}

			claims, err := utils.ParseToken(m.cfg, parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return controller.NewErrorResponse(401, apperrors.ErrTokenExpired, "Token expiré")
				}
				return controller.NewErrorResponse(401, apperrors.ErrUnauthorized, "Token invalide")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}
