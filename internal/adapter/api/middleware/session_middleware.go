package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
)

// SessionMiddleware resolves the authenticated uid to its role-bearing
// profile once per request, so handlers and role guards share a single
// lookup instead of re-deriving the user ad hoc.
type SessionMiddleware struct {
	userRepo repository.UserRepository
}

func NewSessionMiddleware(userRepo repository.UserRepository) *SessionMiddleware {
	return &SessionMiddleware{
		userRepo: userRepo,
	}
}

func (m *SessionMiddleware) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "User profile not found")
		}

		c.Set("user", user)

		return next(c)
	}
}

func (m *SessionMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(entity.RoleAdmin, "Admin privileges required", next)
}

func (m *SessionMiddleware) TechnicianOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(entity.RoleTechnician, "Technician privileges required", next)
}

func (m *SessionMiddleware) requireRole(role entity.Role, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if user.Role != role {
			return echo.NewHTTPError(http.StatusForbidden, message)
		}

		return next(c)
	}
}

// CurrentUser pulls the profile the session middleware stored on the context.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get("user").(*entity.User)
	return user, ok
}
