package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hrflow/internal/auth"
	"hrflow/internal/config"
	"hrflow/internal/handler"
)

// protectedPrefixes require a valid session. The application root is matched
// exactly, everything else by prefix.
var protectedPrefixes = []string{
	"/dashboard",
	"/profile",
	"/attendance",
	"/leave",
	"/payroll",
	"/employees",
}

// authPrefixes are the login/signup surfaces that redirect away when a valid
// session already exists.
var authPrefixes = []string{"/login", "/signup"}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *auth.SessionService,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	attendanceHandler *handler.AttendanceHandler,
	leaveHandler *handler.LeaveHandler,
	profileHandler *handler.ProfileHandler,
	employeeHandler *handler.EmployeeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Access gate: parse the session cookie on protected paths, redirect to
	// the login page on any failure.
	e.Use(sessionGate(sessions))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth surfaces: an existing valid session bounces back to the root.
	authed := redirectAuthenticated(sessions)
	e.POST("/signup", authHandler.Signup, authed)
	e.POST("/login", authHandler.Login, authed)
	e.POST("/logout", authHandler.Logout)

	// Dashboard
	e.GET("/", dashboardHandler.Home)

	// Attendance
	e.GET("/attendance", attendanceHandler.Overview)
	e.GET("/attendance/today", attendanceHandler.Today)
	e.GET("/attendance/all", attendanceHandler.AllForDay)
	e.POST("/attendance/check-in", attendanceHandler.CheckIn)
	e.POST("/attendance/check-out", attendanceHandler.CheckOut)

	// Leave
	e.GET("/leave", leaveHandler.Overview)
	e.POST("/leave", leaveHandler.Submit)
	e.GET("/leave/all", leaveHandler.ListAll)
	e.POST("/leave/:id/decision", leaveHandler.Decide)

	// Profile and payroll
	e.GET("/profile", profileHandler.Get)
	e.PUT("/profile", profileHandler.Update)
	e.PUT("/profile/personal", profileHandler.UpdatePersonal)
	e.PUT("/profile/banking", profileHandler.UpdateBanking)
	e.POST("/profile/skills", profileHandler.AddSkill)
	e.DELETE("/profile/skills/:id", profileHandler.RemoveSkill)
	e.GET("/payroll", profileHandler.Payroll)

	// Employee directory (admin)
	e.GET("/employees", employeeHandler.List)
	e.POST("/employees", employeeHandler.Create)
	e.GET("/employees/:id", employeeHandler.Get)
	e.PUT("/employees/:id", employeeHandler.Update)
	e.DELETE("/employees/:id", employeeHandler.Delete)
}

// sessionGate builds the JWT-cookie middleware that guards protected paths
// and stores the resolved identity in the request context.
func sessionGate(sessions *auth.SessionService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper: func(c echo.Context) bool {
			return !isProtectedPath(c.Request().URL.Path)
		},
		SigningKey:  sessions.Secret(),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*auth.SessionClaims)
			if !ok {
				return
			}
			if ident := claims.Identity(); ident != nil {
				auth.StoreIdentity(c, *ident)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}

// redirectAuthenticated bounces requests that already carry a valid session
// back to the application root.
func redirectAuthenticated(sessions *auth.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
				if sessions.Read(cookie.Value) != nil {
					return c.Redirect(http.StatusFound, "/")
				}
			}
			return next(c)
		}
	}
}

func isProtectedPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range authPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
