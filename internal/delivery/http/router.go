package http

import (
	"log/slog"
	"net/http"

	"churchattendance/internal/delivery/http/controllers"
	"churchattendance/internal/delivery/http/middleware"
	"churchattendance/internal/domain"
	"churchattendance/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the route handlers mounted by NewRouter.
type Controllers struct {
	Registration *controllers.RegistrationController
	Attendance   *controllers.AttendanceController
	Schedule     *controllers.ScheduleController
	Family       *controllers.FamilyController
	Account      *controllers.AccountController
	Auth         *controllers.AuthController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Admin routes require an admin session; family routes require any signed-in user.
func NewRouter(c Controllers, auth domain.AuthService, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	signedIn := middleware.RequireAuth(auth, logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return signedIn(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	// Registration wizard (public)
	mux.HandleFunc("POST /registration/drafts", c.Registration.StartDraft)
	mux.HandleFunc("GET /registration/drafts/{draftID}", c.Registration.GetDraft)
	mux.HandleFunc("DELETE /registration/drafts/{draftID}", c.Registration.CancelDraft)
	mux.HandleFunc("PATCH /registration/drafts/{draftID}/guardian", c.Registration.UpdateGuardian)
	mux.HandleFunc("PUT /registration/drafts/{draftID}/event", c.Registration.SelectEvent)
	mux.HandleFunc("POST /registration/drafts/{draftID}/children", c.Registration.AddChild)
	mux.HandleFunc("PATCH /registration/drafts/{draftID}/children/{index}", c.Registration.UpdateChild)
	mux.HandleFunc("DELETE /registration/drafts/{draftID}/children/{index}", c.Registration.RemoveChild)
	mux.HandleFunc("POST /registration/drafts/{draftID}/advance", c.Registration.Advance)
	mux.HandleFunc("POST /registration/drafts/{draftID}/submit", c.Registration.SubmitDraft)
	mux.HandleFunc("GET /registrations/{code}", c.Registration.LookupCode)
	mux.HandleFunc("GET /registrations/{code}/qr.png", c.Registration.CodeQR)

	// Schedule
	mux.HandleFunc("GET /schedule", c.Schedule.List)
	mux.HandleFunc("GET /schedule/latest", c.Schedule.Latest)
	mux.HandleFunc("GET /schedule/{eventID}", c.Schedule.GetByID)
	mux.HandleFunc("POST /admin/schedule", admin(c.Schedule.Create))

	// Attendance and dashboard
	mux.HandleFunc("GET /admin/attendance", admin(c.Attendance.List))
	mux.HandleFunc("GET /admin/attendance/export.xlsx", admin(c.Attendance.Export))
	mux.HandleFunc("POST /admin/attendance/walk-in", admin(c.Attendance.WalkIn))
	mux.HandleFunc("PATCH /admin/attendance/{recordID}", admin(c.Attendance.SetAttended))
	mux.HandleFunc("GET /admin/dashboard/summary", admin(c.Attendance.Summary))

	// Accounts
	mux.HandleFunc("POST /accounts/requests", c.Account.RequestAccount)
	mux.HandleFunc("GET /admin/accounts/pending", admin(c.Account.ListPending))
	mux.HandleFunc("POST /admin/accounts/pending/{accountID}/approve", admin(c.Account.Approve))
	mux.HandleFunc("GET /admin/users", admin(c.Account.ListUsers))

	// Family
	mux.HandleFunc("GET /family", signedIn(c.Family.List))
	mux.HandleFunc("POST /family", signedIn(c.Family.Create))
	mux.HandleFunc("PATCH /family/{memberID}", signedIn(c.Family.Update))
	mux.HandleFunc("DELETE /family/{memberID}", signedIn(c.Family.Delete))

	// Auth
	mux.HandleFunc("POST /auth/sign-in", c.Auth.SignIn)
	mux.HandleFunc("POST /auth/sign-out", c.Auth.SignOut)
	mux.HandleFunc("GET /auth/session", c.Auth.Session)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Healthz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(mux *http.ServeMux, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.LoggingMiddleware(logger, mux))
}
