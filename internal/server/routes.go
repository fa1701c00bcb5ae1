package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scamshield/internal/classifier"
	"scamshield/internal/db"
	"scamshield/internal/handlers"
	"scamshield/internal/handlers/api"
	"scamshield/internal/sms"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, smsService *sms.Service) {
	// Wire the notification and classification chain
	notifier := sms.NewNotifier(smsService, database)
	riskClassifier := classifier.New(database, notifier)

	// Initialize handlers
	checkHandler := api.NewCheckHandler(riskClassifier)
	reportHandler := api.NewReportHandler(database, s.Cfg)
	familyHandler := api.NewFamilyHandler(database)
	smsHandler := api.NewSMSHandler(notifier, smsService)
	probeHandler := handlers.NewProbeHandler(database)

	// JSON API routes
	s.App.Post("/api/check-message", checkHandler.Check)
	s.App.Post("/api/report", reportHandler.Report)
	s.App.Post("/api/save-family", familyHandler.SaveFamily)
	s.App.Post("/api/request-check", smsHandler.RequestCheck)
	s.App.Post("/api/send-sms", smsHandler.Send)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
