package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/transport/middleware"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	Logger *slog.Logger

	Health       *HealthHandler
	Dreams       *DreamHandler
	Discussion   *DiscussionHandler
	Subscription *SubscriptionHandler

	// Auth resolves the bearer token. RateLimit is optional.
	Auth      middleware.Middleware
	RateLimit middleware.Middleware

	CORS         config.CORSConfig
	MaxBodyBytes int64

	// ImageDir is served under ImagePrefix when both are set.
	ImageDir    string
	ImagePrefix string
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		cfg.Auth,
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimit != nil {
			api.Use(cfg.RateLimit)
		}
		api.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

		cfg.Dreams.Routes(api)
		cfg.Discussion.Routes(api)
		api.Get("/subscription-status", cfg.Subscription.Status)
	})

	if cfg.ImageDir != "" && strings.HasPrefix(cfg.ImagePrefix, "/") {
		prefix := strings.TrimRight(cfg.ImagePrefix, "/")
		files := http.StripPrefix(prefix+"/", noDirListing(http.FileServer(http.Dir(cfg.ImageDir))))
		r.Handle(prefix+"/*", files)
	}

	return r
}

// noDirListing hides directory indexes of the image store.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		next.ServeHTTP(w, r)
	})
}
