package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/config"
	"online-store-frontend/internal/events"
	"online-store-frontend/internal/handlers"
	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg)
	logger.Info().
		Str("env", cfg.Server.Env).
		Str("api_base_url", cfg.API.BaseURL).
		Msg("starting storefront")

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	bus := events.NewBus()
	httpClient := api.NewHTTPClient(cfg.API.Timeout)

	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)
	authMiddleware := middleware.NewAuthMiddleware(cfg.API.BaseURL, httpClient, bus)

	publicHandler := handlers.NewPublicHandler()
	authHandler := handlers.NewAuthHandler()
	cartHandler := handlers.NewCartHandler()
	profileHandler := handlers.NewProfileHandler()
	reviewHandler := handlers.NewReviewHandler()
	adminHandler := handlers.NewAdminHandler(services.NewImageService())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))

	// Assets skip the session and identity work.
	fileServer := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Attach)
		r.Use(authMiddleware.LoadUser)

		r.Get("/", publicHandler.Home)
		r.Get("/products", publicHandler.Products)
		r.Get("/products/{id}", publicHandler.ProductDetail)
		r.Get("/unauthorized", publicHandler.Unauthorized)

		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.LoginSubmit)
		r.Get("/register", authHandler.RegisterPage)
		r.Post("/register", authHandler.RegisterSubmit)
		r.Post("/logout", authHandler.Logout)

		r.Get("/cart", cartHandler.CartPage)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Post("/cart/items/{id}", cartHandler.UpdateItem)
		r.Post("/cart/items/{id}/delete", cartHandler.RemoveItem)
		r.Post("/cart/clear", cartHandler.Clear)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/checkout", cartHandler.Checkout)
			r.Get("/order-success", cartHandler.OrderSuccess)

			r.Get("/profile", profileHandler.ProfilePage)
			r.Post("/profile", profileHandler.UpdateProfile)
			r.Post("/profile/password", profileHandler.ChangePassword)

			r.Post("/reviews", reviewHandler.Create)
			r.Post("/reviews/{id}", reviewHandler.Update)
			r.Post("/reviews/{id}/delete", reviewHandler.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", adminHandler.Dashboard)

			r.Get("/products", adminHandler.Products)
			r.Get("/products/new", adminHandler.NewProductPage)
			r.Post("/products", adminHandler.CreateProduct)
			r.Get("/products/{id}/edit", adminHandler.EditProductPage)
			r.Post("/products/{id}", adminHandler.UpdateProduct)
			r.Post("/products/{id}/delete", adminHandler.DeleteProduct)

			r.Get("/categories", adminHandler.Categories)
			r.Post("/categories", adminHandler.CreateCategory)
			r.Post("/categories/{id}", adminHandler.UpdateCategory)
			r.Post("/categories/{id}/delete", adminHandler.DeleteCategory)

			r.Get("/users", adminHandler.Users)
			r.Post("/users/{id}/upgrade", adminHandler.UpgradeUser)
		})
	})

	r.NotFound(publicHandler.NotFound)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	logger.Info().Str("addr", addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	<-done
}

func newLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
