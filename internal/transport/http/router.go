package http

import (
	"net/http"
	"time"

	"messaging-api/internal/config"
	obsmw "messaging-api/internal/observability/middleware"
	"messaging-api/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg config.Config, auth service.AuthService, users service.UserService, messages service.MessageService, tokens service.TokenService) http.Handler {
	authH := NewAuthHandlers(auth)
	userH := NewUserHandlers(users)
	msgH := NewMessageHandlers(messages)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.WithMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "test"})
	})

	// Login is throttled per IP; everything else relies on the bearer check.
	r.Group(func(pr chi.Router) {
		pr.Use(httprate.LimitByIP(cfg.AuthRatePerMinute, time.Minute))
		pr.Post("/auth", authH.Login)
	})

	// Registration stays open: a caller cannot hold a token before an
	// account exists.
	r.Post("/users", userH.Register)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireAuth(tokens))

		pr.Get("/users", userH.List)
		pr.Get("/users/{limit}/{page}", userH.List)
		pr.Get("/users/{id}", userH.Get)
		pr.Post("/users/update", userH.Update)
		pr.Delete("/users/delete/{id}", userH.Delete)

		pr.Get("/messages/{id}", msgH.Get)
		pr.Post("/messages/post", msgH.Send)
		pr.Post("/messages/read", msgH.MarkRead)
		pr.Post("/messages/delete", msgH.Delete)
		pr.Delete("/messages/{id}", msgH.Delete)
	})

	return r
}
