package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"safesignal/internal/api/handlers/http/admin"
	"safesignal/internal/api/handlers/http/public"
	"safesignal/internal/api/handlers/http/system"
	"safesignal/internal/config"
	"safesignal/internal/geocode"
	"safesignal/internal/middleware"
	"safesignal/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, geocoder geocode.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.ReportService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.ReportService, svc.FavoriteService, svc.AlertService, svc.SettingsService, geocoder)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/reports", func(rr chi.Router) {
				rr.Get("/", adminHandler.AdminReportList)

				rr.Route("/{id}", func(ir chi.Router) {
					ir.Get("/", adminHandler.AdminReportGet)
					ir.Post("/expire", adminHandler.AdminReportExpire)
				})
			})
		})

		// PUBLIC
		api.Route("/reports", func(pr chi.Router) {
			pr.Use(middleware.Limit(5, 10, 5*time.Minute, logger))

			pr.Get("/", publicHandler.ReportList)
			pr.Get("/{id}", publicHandler.ReportGet)

			pr.With(middleware.Integrity(cfg.IntegritySecret, logger)).
				Post("/", publicHandler.ReportCreate)
		})

		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/check", publicHandler.LocationCheck)
		})

		api.Route("/favorites", func(fr chi.Router) {
			fr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			fr.Post("/", publicHandler.FavoriteCreate)
			fr.Get("/", publicHandler.FavoriteList)

			fr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", publicHandler.FavoriteGet)
				ir.Put("/", publicHandler.FavoriteUpdate)
				ir.Delete("/", publicHandler.FavoriteDelete)
			})
		})

		api.Route("/alerts", func(al chi.Router) {
			al.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			al.Get("/", publicHandler.AlertList)
			al.Post("/{id}/viewed", publicHandler.AlertMarkViewed)
		})

		api.Route("/settings", func(sr chi.Router) {
			sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			sr.Get("/", publicHandler.SettingsGet)
			sr.Put("/", publicHandler.SettingsUpdate)
		})

		api.Route("/geocode", func(gr chi.Router) {
			gr.Use(middleware.Limit(2, 5, 5*time.Minute, logger))

			gr.Get("/search", publicHandler.GeocodeSearch)
			gr.Get("/reverse", publicHandler.GeocodeReverse)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
