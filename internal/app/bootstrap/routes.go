// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/campussphere/campussphere/internal/app/features/admin"
	apifeature "github.com/campussphere/campussphere/internal/app/features/api"
	authgooglefeature "github.com/campussphere/campussphere/internal/app/features/authgoogle"
	dashboardfeature "github.com/campussphere/campussphere/internal/app/features/dashboard"
	errorsfeature "github.com/campussphere/campussphere/internal/app/features/errors"
	facultyfeature "github.com/campussphere/campussphere/internal/app/features/faculty"
	healthfeature "github.com/campussphere/campussphere/internal/app/features/health"
	homefeature "github.com/campussphere/campussphere/internal/app/features/home"
	loginfeature "github.com/campussphere/campussphere/internal/app/features/login"
	logoutfeature "github.com/campussphere/campussphere/internal/app/features/logout"
	registerfeature "github.com/campussphere/campussphere/internal/app/features/register"
	studentfeature "github.com/campussphere/campussphere/internal/app/features/student"

	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/prefs"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CampusSphere initializes the template
// engine, applies session middleware, and mounts feature routers for the
// public pages, the JSON API, and the three role dashboards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	prefsMgr, err := prefs.NewManager(appCfg.SessionKey, secure)
	if err != nil {
		logger.Error("preference manager init failed", zap.Error(err))
		return nil, err
	}

	// One working set per signed-in session, seeded with demo data.
	registry := state.NewRegistry()

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(deps.MongoDatabase, sessionMgr, registry, errLog,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, registry, errLog, googleHandler.IsConfigured(), logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, registry, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// JSON API used by external clients and smoke tests
	apiHandler := apifeature.NewHandler(deps.MongoDatabase, sessionMgr, registry, logger)
	r.Mount("/api", apifeature.Routes(apiHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Role fan-out after sign-in
	dashboardHandler := dashboardfeature.NewHandler(logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Role dashboards
	studentHandler := studentfeature.NewHandler(registry, sessionMgr, prefsMgr, errLog, logger)
	r.Mount("/student", studentfeature.Routes(studentHandler, sessionMgr))

	facultyHandler := facultyfeature.NewHandler(registry, sessionMgr, prefsMgr, errLog, logger)
	r.Mount("/faculty", facultyfeature.Routes(facultyHandler, sessionMgr))

	adminHandler := adminfeature.NewHandler(deps.MongoDatabase, registry, sessionMgr, prefsMgr, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))

	return r, nil
}
