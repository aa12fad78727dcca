package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"teamhub/internal/auth"
	"teamhub/internal/errors"
	"teamhub/internal/handler"
	"teamhub/internal/repository"
)

// jwtAuth enforces a valid session token. Missing or invalid tokens are a
// 401; role denial is decided later and is always a 403.
func jwtAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})
}

// loadUser re-reads the token's user on every request so revoked and
// deactivated accounts lose access before their token expires.
func loadUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			id, err := claims.SubjectID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := userRepo.FindByID(c.Request().Context(), id)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
			}

			handler.SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// requireAction gates a route by the static access policy table.
func requireAction(action auth.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := handler.CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !auth.Authorize(user.Role, action) {
				return c.JSON(http.StatusForbidden, errors.ErrorResponse{Message: "access denied"})
			}
			return next(c)
		}
	}
}
