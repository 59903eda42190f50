package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/anthony-garcia-santos/techstorage/internal/catalog"
	"github.com/anthony-garcia-santos/techstorage/internal/checkout"
	"github.com/anthony-garcia-santos/techstorage/internal/dashboard"
	"github.com/anthony-garcia-santos/techstorage/internal/favorite"
	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/middleware"
	"github.com/anthony-garcia-santos/techstorage/internal/order"
	"github.com/anthony-garcia-santos/techstorage/internal/review"
	"github.com/anthony-garcia-santos/techstorage/internal/user"
)

type Handlers struct {
	User      *user.Handler
	Catalog   *catalog.Handler
	Order     *order.Handler
	Checkout  *checkout.Handler
	Favorite  *favorite.Handler
	Review    *review.Handler
	Dashboard *dashboard.Handler
}

func NewRouter(h Handlers, tokens middleware.TokenParser) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.WithLogging)
	r.Use(chiMiddleware.Recoverer)

	r.Use(middleware.GzipHandler)

	session := middleware.Session(tokens)

	r.Route("/api", func(r chi.Router) {
		products := h.Catalog.Routes()
		products.Get("/{id}/reviews", h.Review.ListReviews)
		products.With(session).Post("/{id}/reviews", h.Review.CreateReview)
		r.Mount("/products", products)
		r.Get("/categories/{slug}/products", h.Catalog.ListByCategory)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.User.Register)
			r.Post("/login", h.User.Login)

			r.Group(func(r chi.Router) {
				r.Use(session)

				r.Post("/checkout", h.Checkout.Checkout)
				r.Mount("/orders", h.Order.Routes())
				r.Mount("/favorites", h.Favorite.Routes())
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(session)
			r.Use(middleware.RequireAdmin)

			r.Mount("/products", h.Catalog.AdminRoutes())
			r.Mount("/orders", h.Order.AdminRoutes())
			r.Get("/metrics", h.Dashboard.GetMetrics)
		})
	})

	return r
}
