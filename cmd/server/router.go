package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mealmasterhq/meal-master-api/internal/api"
	apiMiddleware "github.com/mealmasterhq/meal-master-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Route shapes and auth requirements mirror the
// public API contract.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Credentialed CORS: the session cookie is cross-site, so the
	// allowed origins must be explicit rather than "*".
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, &app.config.Auth)
	mealHandler := api.NewMealHandler(app.mealStore, app.upcomingStore)
	reviewHandler := api.NewReviewHandler(app.reviewStore)
	requestHandler := api.NewRequestHandler(app.requestService, app.requestStore, app.userStore)
	paymentHandler := api.NewPaymentHandler(app.intentService, app.paymentStore, app.membershipSt)

	authMw := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore, app.config.Auth.CookieName)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints.
		r.Post("/auth/access-token", authHandler.AccessToken)
		r.Post("/auth/access-cancel", authHandler.AccessCancel)
		r.Post("/auth/users", authHandler.RegisterUser)
		r.Get("/meals", mealHandler.ListMeals)
		r.Get("/upcoming-meals", mealHandler.ListUpcomingMeals)
		r.Get("/membership", paymentHandler.ListMembershipTiers)
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Post("/review-like-update/{id}", reviewHandler.LikeReview)

		// Token-protected endpoints.
		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)

			r.Get("/meal/{id}", mealHandler.GetMeal)
			r.Post("/meal/like-update/{id}", mealHandler.LikeMeal)
			r.Post("/meal/meal-review-update/{id}", mealHandler.BumpMealReviewCount)

			r.Get("/auth/user/{email}", authHandler.GetUserAccess)
			r.Post("/auth/user/{email}", authHandler.UpdateBadge)

			r.Post("/reviews", reviewHandler.CreateReview)
			r.Patch("/updated-review/{id}", reviewHandler.UpdateReview)
			r.Delete("/auth/review-delete/{id}", reviewHandler.DeleteReview)

			r.Post("/requested-meal", requestHandler.CreateRequest)
			r.Get("/auth/requested-meal", requestHandler.ListRequested)
			r.Delete("/auth/requested-meal/{id}", requestHandler.DeleteRequest)

			r.Post("/auth/create-payment-intent", paymentHandler.CreatePaymentIntent)
			r.Post("/auth/payments-history", paymentHandler.CreatePaymentRecord)
			r.Get("/auth/payments-history/{email}", paymentHandler.ListPayments)

			// Admin-gated endpoints.
			r.Group(func(r chi.Router) {
				r.Use(authMw.RequireAdmin)

				r.Post("/meal", mealHandler.CreateMeal)
				r.Patch("/update-meal/{id}", mealHandler.UpdateMeal)
				r.Delete("/meal/{id}", mealHandler.DeleteMeal)
				r.Post("/upcoming-meal", mealHandler.CreateUpcomingMeal)
				r.Post("/upcoming-meal-publish/{id}", mealHandler.PublishUpcomingMeal)

				r.Get("/auth/users", authHandler.ListUsers)
				r.Patch("/auth/make-admin/{id}", authHandler.MakeAdmin)

				r.Post("/meal-serve/{id}", requestHandler.ServeMeal)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Meal Master API is running")); err != nil {
			app.logger.Error("failed to write banner response", "error", err)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
