package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/talentohr/hris-backend-go/internal/handler/http/middleware"
	"github.com/talentohr/hris-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, complianceHandler ComplianceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talentohr"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/compliance", func(r chi.Router) {
				r.Route("/bir/certificates", func(r chi.Router) {
					r.Get("/", complianceHandler.GenerateCertificateBatch)
					r.Post("/snapshot", complianceHandler.SnapshotCertificates)
					r.Get("/{employeeID}", complianceHandler.GenerateCertificate)
				})

				r.Route("/{agency}", func(r chi.Router) {
					r.Get("/reports", complianceHandler.ListReports)
					r.Get("/periods", complianceHandler.GetPeriods)
					r.Route("/reports/{code}", func(r chi.Router) {
						r.Get("/", complianceHandler.Generate)
						r.Get("/preview", complianceHandler.Preview)
						r.Get("/summary", complianceHandler.Summary)
					})
				})
			})
		})
	})

	return r
}
