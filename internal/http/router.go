package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/flowy/internal/http/auth"
	"github.com/MrJamesThe3rd/flowy/internal/http/flow"
	"github.com/MrJamesThe3rd/flowy/internal/http/portfolio"
	"github.com/MrJamesThe3rd/flowy/internal/http/schedule"
)

func New(
	flowsV1 *flow.Handler,
	schedulesV1 *schedule.Handler,
	portfolioV1 *portfolio.Handler,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/flows", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			flowsV1.Routes(r)
		})

		r.Route("/schedules", func(r chi.Router) {
			schedulesV1.Routes(r)
		})

		r.Route("/portfolio", portfolioV1.Routes)
	})

	return router
}
